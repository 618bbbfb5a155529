package xmac

import "errors"

// ErrNilReceiver 表示在 nil 指针上调用反序列化方法。
var ErrNilReceiver = errors.New("xmac: nil receiver")

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出 standard 格式并保留大小写，slog 文本输出和 JSON 序列化都会使用它。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，接受 [Parse] 支持的全部输入。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出格式名称。
func (n Notation) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，接受 [ParseNotation] 支持的名称。
func (n *Notation) UnmarshalText(text []byte) error {
	if n == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseNotation(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出策略名称。
func (p CasePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，接受 [ParseCasePolicy] 支持的名称。
func (p *CasePolicy) UnmarshalText(text []byte) error {
	if p == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseCasePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
