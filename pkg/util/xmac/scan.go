package xmac

import "regexp"

// Family 标识候选子串由哪一类模式匹配得到。
type Family uint8

const (
	// FamilyDelimited 六组两位十六进制，统一以 ':' 或统一以 '-' 分隔。
	FamilyDelimited Family = iota
	// FamilyDotted 三组四位十六进制，以 '.' 分隔。
	FamilyDotted
	// FamilyBare 12 个连续十六进制字符。
	FamilyBare
)

// Families 按扫描顺序列出全部模式族。
var Families = []Family{FamilyDelimited, FamilyDotted, FamilyBare}

// String 返回模式族名称。
func (f Family) String() string {
	switch f {
	case FamilyDelimited:
		return "delimited"
	case FamilyDotted:
		return "dotted"
	case FamilyBare:
		return "bare"
	default:
		return "unknown"
	}
}

// families 按扫描顺序排列的模式。
//
// 设计决策: 分隔族用两个分支分别要求统一使用 ':' 或 '-'，
// 混用分隔符的文本不会被此族匹配。
var families = []struct {
	family Family
	re     *regexp.Regexp
}{
	{FamilyDelimited, regexp.MustCompile(`(?:[0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}|(?:[0-9a-fA-F]{2}-){5}[0-9a-fA-F]{2}`)},
	{FamilyDotted, regexp.MustCompile(`(?:[0-9a-fA-F]{4}\.){2}[0-9a-fA-F]{4}`)},
	{FamilyBare, regexp.MustCompile(`[0-9a-fA-F]{12}`)},
}

// Match 是扫描得到的一个候选子串。
type Match struct {
	// Text 候选子串原文。
	Text string
	// Family 匹配到的模式族。
	Family Family
	// Offset Text 在输入中的字节偏移。
	Offset int
}

// ScanMatches 在 text 中查找所有形似 MAC 地址的子串。
//
// 三类模式各自独立作用于整个输入，结果按模式族顺序拼接
// （先全部分隔族，再全部点分族，最后全部无分隔族），同一族内按出现位置排序。
// 因此结果顺序是族优先，而不是文档顺序。
//
// 匹配是子串匹配而非整词匹配：更长的字母数字串中的 12 位十六进制片段也会被匹配。
// 无匹配时返回 nil。
func ScanMatches(text string) []Match {
	var out []Match
	for _, f := range families {
		for _, loc := range f.re.FindAllStringIndex(text, -1) {
			out = append(out, Match{
				Text:   text[loc[0]:loc[1]],
				Family: f.family,
				Offset: loc[0],
			})
		}
	}
	return out
}

// Scan 与 [ScanMatches] 相同，但只返回子串文本。
func Scan(text string) []string {
	matches := ScanMatches(text)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out
}
