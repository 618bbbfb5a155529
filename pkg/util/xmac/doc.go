// Package xmac 在任意文本中识别 MAC 地址，并在四种写法之间转换。
//
// 处理流程分三步，每一步都是纯函数：
//
//   - [Scan] / [ScanMatches]：按三类模式查找候选子串
//   - [Parse]：把候选子串解析为 [Addr]（6 字节 + 12 位大小写记录）
//   - [Format]：按 [Notation] 和 [CasePolicy] 渲染 [Addr]
//
// # 快速示例
//
//	for _, s := range xmac.Scan("gw aa:bb:cc:dd:ee:ff, sw AABB.CCDD.EEFF") {
//	    addr, err := xmac.Parse(s)
//	    if err != nil {
//	        continue
//	    }
//	    fmt.Println(xmac.Format(addr, xmac.NotationCisco, xmac.CasePreserve))
//	}
//	// aabb.ccdd.eeff
//	// AABB.CCDD.EEFF
//
// # 写法
//
//   - [NotationStandard]：aa:bb:cc:dd:ee:ff
//   - [NotationCisco]：aabb.ccdd.eeff
//   - [NotationWindows]：aa-bb-cc-dd-ee-ff
//   - [NotationBare]：aabbccddeeff
//
// # 大小写
//
// [Addr] 记录源文本中每个十六进制位是否为大写。[CasePreserve] 逐位还原，
// 因此 "AA:bb:CC:dd:EE:ff" 转为 Cisco 写法得到 "AAbb.CCdd.EEff"；
// [CaseUpper] 和 [CaseLower] 忽略记录，统一大小写。
//
// # 扫描顺序
//
// 三类模式（分隔、点分、无分隔）各自扫描整个输入，结果按模式族顺序拼接，
// 而不是按文档中的出现顺序。下游的输出顺序依赖这一点，因此作为兼容性约定保留。
//
// # 错误处理
//
// [Parse] 失败返回 *[ParseError]，支持 errors.Is 判断：
//
//	_, err := xmac.Parse("zz:bb:cc:dd:ee:ff")
//	errors.Is(err, xmac.ErrInvalidHex)    // true
//	errors.Is(err, xmac.ErrInvalidLength) // false
//
// 仅支持 EUI-48（6 字节），不支持 EUI-64。不校验地址是否真实分配或可路由。
package xmac
