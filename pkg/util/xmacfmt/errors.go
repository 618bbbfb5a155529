package xmacfmt

import "errors"

// ErrNoAddressesFound 表示扫描阶段没有找到任何候选子串。
// 与单个候选的解析错误不同，它会终止整个批处理。
var ErrNoAddressesFound = errors.New("xmacfmt: no MAC addresses found in input")
