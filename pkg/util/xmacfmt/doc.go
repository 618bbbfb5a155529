// Package xmacfmt 把 [xmac] 的扫描、解析、格式化串成一次批处理。
//
// [Run] 对输入文本执行：
//
//  1. 扫描候选子串；一个都没有时返回 [ErrNoAddressesFound]
//  2. 按扫描顺序逐个解析，成功则格式化为一行输出，失败则记录为诊断
//  3. 只要扫描结果非空就视为成功，即使所有候选都解析失败
//
// 单个候选解析失败不会中断批处理：
//
//	res, err := xmacfmt.Run(ctx, text, xmac.NotationCisco, xmac.CasePreserve)
//	if errors.Is(err, xmacfmt.ErrNoAddressesFound) {
//	    // 输入中没有任何形似 MAC 地址的内容
//	}
//	for _, line := range res.Lines() {
//	    fmt.Println(line)
//	}
//	for _, d := range res.Diagnostics() {
//	    fmt.Fprintf(os.Stderr, "Error parsing '%s': %v\n", d.Source, d.Err)
//	}
//
// # 并发
//
// 默认串行处理。[WithConcurrency] 启用并发解析与格式化，
// 每个候选写入预分配的槽位，输出顺序始终与扫描顺序一致。
//
// Run 本身不打印日志、不做 I/O，输出和诊断由调用方决定如何呈现。
package xmacfmt
