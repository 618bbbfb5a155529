package xmac

import "fmt"

// Parse 将候选子串解析为 MAC 地址，并记录每个十六进制位的大小写。
//
// 解析前无条件删除所有 '-'、':'、'.' 和空格，不校验分隔符位置，
// 因此 "aa:bb-cc.dd ee:ff" 这类混用分隔符的输入同样可以解析。
//
// 失败时返回 *[ParseError]：
//   - 去除分隔符后长度不为 12：[ErrInvalidLength]（空串、纯空白同样如此）
//   - 存在非十六进制字符：[ErrInvalidHex]
func Parse(s string) (Addr, error) {
	var cleaned [digitCount]byte
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSeparator(c) {
			continue
		}
		if n == digitCount {
			// 已超过 12 位，无需继续扫描
			return Addr{}, &ParseError{Kind: KindInvalidLength, Input: s}
		}
		cleaned[n] = c
		n++
	}
	if n != digitCount {
		return Addr{}, &ParseError{Kind: KindInvalidLength, Input: s}
	}

	var addr Addr
	for i := range 6 {
		hi, lo := cleaned[i*2], cleaned[i*2+1]
		if isUpperASCII(hi) {
			addr.upper |= 1 << (i * 2)
		}
		if isUpperASCII(lo) {
			addr.upper |= 1 << (i*2 + 1)
		}
		b, ok := parseHexByte(hi, lo)
		if !ok {
			return Addr{}, &ParseError{Kind: KindInvalidHex, Input: s}
		}
		addr.octets[i] = b
	}
	return addr, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// isSeparator 报告 c 是否为解析时忽略的分隔符。
func isSeparator(c byte) bool {
	switch c {
	case '-', ':', '.', ' ':
		return true
	default:
		return false
	}
}

func isUpperASCII(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(high, low byte) (byte, bool) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, false
	}
	return byte(h<<4 | l), true
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
