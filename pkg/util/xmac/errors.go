package xmac

import (
	"errors"
	"fmt"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidLength 表示去除分隔符后的字符数不是 12。
	ErrInvalidLength = errors.New("xmac: invalid MAC address length")

	// ErrInvalidHex 表示长度正确但包含非十六进制字符。
	ErrInvalidHex = errors.New("xmac: invalid hex in MAC address")

	// ErrUnknownNotation 表示无法识别的输出格式名称。
	ErrUnknownNotation = errors.New("xmac: unknown notation")

	// ErrUnknownCasePolicy 表示无法识别的大小写策略名称。
	ErrUnknownCasePolicy = errors.New("xmac: unknown case policy")
)

// ErrorKind 区分解析失败的原因。
type ErrorKind uint8

const (
	// KindInvalidLength 对应 [ErrInvalidLength]。
	KindInvalidLength ErrorKind = iota + 1
	// KindInvalidHex 对应 [ErrInvalidHex]。
	KindInvalidHex
)

// String 返回错误类型名称。
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidLength:
		return "InvalidLength"
	case KindInvalidHex:
		return "InvalidHex"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError 是 [Parse] 返回的错误，携带原始输入用于诊断。
//
// 使用 errors.Is 判断类型：
//
//	if errors.Is(err, xmac.ErrInvalidHex) { ... }
//
// 使用 errors.As 获取原始输入：
//
//	var pe *xmac.ParseError
//	if errors.As(err, &pe) {
//	    fmt.Println(pe.Input)
//	}
type ParseError struct {
	Kind  ErrorKind
	Input string
}

// Error 实现 error 接口，消息中包含原始输入。
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Unwrap(), e.Input)
}

// Unwrap 返回与 Kind 对应的哨兵错误。
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindInvalidLength:
		return ErrInvalidLength
	case KindInvalidHex:
		return ErrInvalidHex
	default:
		return errors.New("xmac: parse error")
	}
}
