package xmac

// digitCount 是 MAC 地址的十六进制位数（6 字节 × 2）。
const digitCount = 12

// Addr 表示 48 位 MAC 地址及其在源文本中的大小写记录。
//
// Addr 是不可变值类型：
//   - 可直接比较（==），相同字节但大小写不同的两个 Addr 不相等
//   - 复制安全，并发只读安全，无需加锁
//
// 使用 [Parse] 或 [MustParse] 从文本创建；使用 [AddrFrom6] 或
// [AddrWithCase] 从字节创建：
//
//	addr, err := xmac.Parse("AA:bb:CC:dd:EE:ff")
//	addr := xmac.AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})
type Addr struct {
	octets [6]byte

	// upper 的第 i 位表示第 i 个十六进制位（从 octets[0] 高半字节开始）
	// 在源文本中为大写。只使用低 12 位。
	upper uint16
}

// AddrFrom6 从 6 字节数组创建 MAC 地址，所有位记录为小写。
func AddrFrom6(b [6]byte) Addr {
	return Addr{octets: b}
}

// AddrWithCase 从 6 字节数组和 12 个大小写标记创建 MAC 地址。
// upper[i] 为 true 表示第 i 个十六进制位为大写。
func AddrWithCase(b [6]byte, upper [digitCount]bool) Addr {
	a := Addr{octets: b}
	for i, u := range upper {
		if u {
			a.upper |= 1 << i
		}
	}
	return a
}

// Bytes 返回 MAC 地址的 6 字节表示。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.octets
}

// DigitCase 返回 12 个十六进制位的大小写记录，true 表示大写。
// 顺序与源文本中出现的顺序一致。
func (a Addr) DigitCase() [digitCount]bool {
	var out [digitCount]bool
	for i := range digitCount {
		out[i] = a.IsUpper(i)
	}
	return out
}

// IsUpper 报告第 i 个十六进制位在源文本中是否为大写。
// i 超出 [0, 12) 时返回 false。
func (a Addr) IsUpper(i int) bool {
	if i < 0 || i >= digitCount {
		return false
	}
	return a.upper&(1<<i) != 0
}

// Compare 按网络字节序比较两个地址的字节值，忽略大小写记录。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	for i := range 6 {
		if a.octets[i] < b.octets[i] {
			return -1
		}
		if a.octets[i] > b.octets[i] {
			return 1
		}
	}
	return 0
}

// SameOctets 报告 a 与 b 是否为同一硬件地址（忽略大小写记录）。
func (a Addr) SameOctets(b Addr) bool {
	return a.octets == b.octets
}
