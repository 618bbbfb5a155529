package xmac

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	want := [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}

	tests := []struct {
		name    string
		input   string
		want    [6]byte
		wantErr error
	}{
		// 四种写法
		{"colon_lower", "aa:bb:cc:dd:ee:ff", want, nil},
		{"colon_upper", "AA:BB:CC:DD:EE:FF", want, nil},
		{"dash", "aa-bb-cc-dd-ee-ff", want, nil},
		{"dot", "aabb.ccdd.eeff", want, nil},
		{"bare", "aabbccddeeff", want, nil},

		// 分隔符整体删除，不校验位置
		{"mixed_separators", "aa:bb-cc.dd ee:ff", want, nil},
		{"odd_positions", "a:ab:bc-cd.de eff", want, nil},
		{"leading_trailing_space", "  aa:bb:cc:dd:ee:ff  ", want, nil},

		// 边界值
		{"all_zero", "00:00:00:00:00:00", [6]byte{}, nil},
		{"all_ff", "ff:ff:ff:ff:ff:ff", [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, nil},
		{"leading_zeros", "01:02:03:04:05:06", [6]byte{1, 2, 3, 4, 5, 6}, nil},

		// 长度错误
		{"empty", "", [6]byte{}, ErrInvalidLength},
		{"only_space", "     ", [6]byte{}, ErrInvalidLength},
		{"five_groups", "aa:bb:cc:dd:ee", [6]byte{}, ErrInvalidLength},
		{"seven_groups", "aa:bb:cc:dd:ee:ff:gg", [6]byte{}, ErrInvalidLength},
		{"eui64", "aa:bb:cc:dd:ee:ff:00:11", [6]byte{}, ErrInvalidLength},
		{"tab_not_separator", "aa:bb:cc:dd:ee:f\tf", [6]byte{}, ErrInvalidLength},

		// 十六进制错误
		{"first_chunk", "zz:bb:cc:dd:ee:ff", [6]byte{}, ErrInvalidHex},
		{"last_chunk", "aa:bb:cc:dd:ee:gg", [6]byte{}, ErrInvalidHex},
		{"plus_sign", "+a:bb:cc:dd:ee:ff", [6]byte{}, ErrInvalidHex},
		{"wrong_separator", "aa;bb;cc;dd;", [6]byte{}, ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error = %v", tt.input, err)
			}
			if got.Bytes() != tt.want {
				t.Errorf("Parse(%q).Bytes() = %x, want %x", tt.input, got.Bytes(), tt.want)
			}
		})
	}
}

func TestParse_DigitCase(t *testing.T) {
	tests := []struct {
		input string
		want  [12]bool
	}{
		{"aa:bb:cc:dd:ee:ff", [12]bool{}},
		{"AA:bb:CC:dd:EE:ff", [12]bool{true, true, false, false, true, true, false, false, true, true, false, false}},
		{"Aa:bB:00:99:Ee:fF", [12]bool{true, false, false, true, false, false, false, false, true, false, false, true}},
		{"AABB.CCDD.EEFF", [12]bool{true, true, true, true, true, true, true, true, true, true, true, true}},
		// 数字不是大写字母
		{"00:11:22:33:44:55", [12]bool{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error = %v", tt.input, err)
			}
			if got := addr.DigitCase(); got != tt.want {
				t.Errorf("DigitCase() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		_, err := Parse("aa:bb:cc:dd:ee")
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("error %T is not *ParseError", err)
		}
		if pe.Kind != KindInvalidLength || pe.Input != "aa:bb:cc:dd:ee" {
			t.Errorf("ParseError = %+v", pe)
		}
		if !strings.Contains(err.Error(), "aa:bb:cc:dd:ee") {
			t.Errorf("Error() = %q, want original input", err.Error())
		}
		if errors.Is(err, ErrInvalidHex) {
			t.Errorf("length error must not match ErrInvalidHex")
		}
	})

	t.Run("hex", func(t *testing.T) {
		_, err := Parse("zz:bb:cc:dd:ee:ff")
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("error %T is not *ParseError", err)
		}
		if pe.Kind != KindInvalidHex {
			t.Errorf("Kind = %v, want %v", pe.Kind, KindInvalidHex)
		}
		if !strings.Contains(err.Error(), "zz:bb:cc:dd:ee:ff") {
			t.Errorf("Error() = %q, want original input", err.Error())
		}
	})

	t.Run("kind_string", func(t *testing.T) {
		if KindInvalidLength.String() != "InvalidLength" || KindInvalidHex.String() != "InvalidHex" {
			t.Errorf("unexpected kind names")
		}
		if ErrorKind(9).String() != "ErrorKind(9)" {
			t.Errorf("ErrorKind(9).String() = %q", ErrorKind(9).String())
		}
	})
}

func TestParse_NonASCII(t *testing.T) {
	// "é" 占两个字节，清理后长度按字节计算
	_, err := Parse("aa:bb:cc:dd:ee:é")
	if !errors.Is(err, ErrInvalidHex) {
		t.Errorf("Parse(non-ascii) error = %v, want ErrInvalidHex", err)
	}
}

func TestMustParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		addr := MustParse("aa:bb:cc:dd:ee:ff")
		if addr.Bytes() != [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff} {
			t.Errorf("MustParse() = %v", addr)
		}
	})

	t.Run("invalid_panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(invalid) did not panic")
			}
		}()
		MustParse("invalid")
	})
}
