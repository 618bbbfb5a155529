package xmac

import (
	"fmt"
	"strings"
)

// Notation 定义 MAC 地址的输出格式。
type Notation uint8

const (
	// NotationStandard 冒号分隔：aa:bb:cc:dd:ee:ff（默认）
	NotationStandard Notation = iota
	// NotationCisco 点分隔（Cisco 风格）：aabb.ccdd.eeff
	NotationCisco
	// NotationWindows 短线分隔：aa-bb-cc-dd-ee-ff
	NotationWindows
	// NotationBare 无分隔符：aabbccddeeff
	NotationBare
)

// Notations 按命令行展示顺序列出全部格式。
var Notations = []Notation{NotationStandard, NotationCisco, NotationWindows, NotationBare}

// String 返回格式名称（与命令行子命令一致）。
func (n Notation) String() string {
	switch n {
	case NotationStandard:
		return "standard"
	case NotationCisco:
		return "cisco"
	case NotationWindows:
		return "windows"
	case NotationBare:
		return "bare"
	default:
		return "standard"
	}
}

// ParseNotation 解析格式名称，大小写不敏感，自动去除首尾空白。
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return NotationStandard, nil
	case "cisco":
		return NotationCisco, nil
	case "windows":
		return NotationWindows, nil
	case "bare":
		return NotationBare, nil
	default:
		return NotationStandard, fmt.Errorf("%w: %q", ErrUnknownNotation, s)
	}
}

// CasePolicy 定义输出时十六进制字母的大小写规则。
type CasePolicy uint8

const (
	// CasePreserve 保留源文本中每一位的大小写（默认）。
	CasePreserve CasePolicy = iota
	// CaseUpper 强制大写。
	CaseUpper
	// CaseLower 强制小写。
	CaseLower
)

// String 返回策略名称。
func (p CasePolicy) String() string {
	switch p {
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	default:
		return "preserve"
	}
}

// ParseCasePolicy 解析策略名称（preserve/upper/lower），大小写不敏感。
func ParseCasePolicy(s string) (CasePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preserve", "":
		return CasePreserve, nil
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	default:
		return CasePreserve, fmt.Errorf("%w: %q", ErrUnknownCasePolicy, s)
	}
}

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// layout 描述一种格式：每 group 个十六进制位之间插入 sep。
// group 为 digitCount 时不插入分隔符。
type layout struct {
	sep   byte
	group int
}

// layoutOf 返回格式对应的布局，未知格式按 standard 处理。
func layoutOf(n Notation) layout {
	switch n {
	case NotationCisco:
		return layout{sep: '.', group: 4}
	case NotationWindows:
		return layout{sep: '-', group: 2}
	case NotationBare:
		return layout{group: digitCount}
	default:
		return layout{sep: ':', group: 2}
	}
}

// Format 按格式和大小写策略渲染地址。
//
// 格式化是纯函数：相同参数总是返回相同结果，对同一地址调用不同格式互不影响。
func Format(a Addr, n Notation, p CasePolicy) string {
	digits := a.digits(p)
	l := layoutOf(n)

	// 12 位 + 最多 5 个分隔符
	var buf [digitCount + 5]byte
	w := 0
	for i, d := range digits {
		if i > 0 && i%l.group == 0 {
			buf[w] = l.sep
			w++
		}
		buf[w] = d
		w++
	}
	return string(buf[:w])
}

// digits 返回按策略确定大小写后的 12 个十六进制字符。
func (a Addr) digits(p CasePolicy) [digitCount]byte {
	var out [digitCount]byte
	for i, b := range a.octets {
		hi, lo := i*2, i*2+1
		out[hi] = a.hexDigit(b>>4, hi, p)
		out[lo] = a.hexDigit(b&0x0f, lo, p)
	}
	return out
}

// hexDigit 返回半字节 v 作为第 pos 位时的字符。
func (a Addr) hexDigit(v byte, pos int, p CasePolicy) byte {
	var upper bool
	switch p {
	case CaseUpper:
		upper = true
	case CaseLower:
		upper = false
	default:
		upper = a.IsUpper(pos)
	}
	if upper {
		return hexUpper[v]
	}
	return hexLower[v]
}

// String 返回 standard 格式、保留大小写的字符串表示。
func (a Addr) String() string {
	return Format(a, NotationStandard, CasePreserve)
}

// ToStandard 渲染为 xx:xx:xx:xx:xx:xx。
func (a Addr) ToStandard(p CasePolicy) string { return Format(a, NotationStandard, p) }

// ToCisco 渲染为 xxxx.xxxx.xxxx。
func (a Addr) ToCisco(p CasePolicy) string { return Format(a, NotationCisco, p) }

// ToWindows 渲染为 xx-xx-xx-xx-xx-xx。
func (a Addr) ToWindows(p CasePolicy) string { return Format(a, NotationWindows, p) }

// ToBare 渲染为 xxxxxxxxxxxx。
func (a Addr) ToBare(p CasePolicy) string { return Format(a, NotationBare, p) }
