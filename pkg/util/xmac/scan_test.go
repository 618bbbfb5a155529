package xmac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"colon", "aa:bb:cc:dd:ee:ff", []string{"aa:bb:cc:dd:ee:ff"}},
		{"dash", "aa-bb-cc-dd-ee-ff", []string{"aa-bb-cc-dd-ee-ff"}},
		{"dot", "aabb.ccdd.eeff", []string{"aabb.ccdd.eeff"}},
		{"bare", "aabbccddeeff", []string{"aabbccddeeff"}},
		{"none", "No MAC addresses here!", nil},
		{"empty", "", nil},
		{"mixed_case", "MAC: AA:BB:CC:DD:EE:FF and also aa:bb:cc:dd:ee:ff",
			[]string{"AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:ff"}},
		{"embedded_in_token", "serial=XYaabbccddeeffZ", []string{"aabbccddeeff"}},
		{"mixed_delimiters_rejected", "aa:bb-cc:dd-ee:ff", nil},
		{"five_groups", "aa:bb:cc:dd:ee", nil},
		{"long_hex_run", "aabbccddeeff001122334455", []string{"aabbccddeeff", "001122334455"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(tt.text))
		})
	}
}

func TestScan_FamilyOrder(t *testing.T) {
	text := "Device 1: aa:bb:cc:dd:ee:ff\nDevice 2: 1122.3344.5566\nDevice 3: aabbccddeeff"

	got := Scan(text)
	assert.Equal(t, []string{"aa:bb:cc:dd:ee:ff", "1122.3344.5566", "aabbccddeeff"}, got)

	// 文档顺序颠倒后，结果仍按模式族排序
	reversed := "first aabbccddeeff then 1122.3344.5566 then aa-bb-cc-dd-ee-ff"
	assert.Equal(t, []string{"aa-bb-cc-dd-ee-ff", "1122.3344.5566", "aabbccddeeff"}, Scan(reversed))
}

func TestScanMatches(t *testing.T) {
	text := "x 0011.2233.4455 y 00:11:22:33:44:55 z"

	matches := ScanMatches(text)
	require.Len(t, matches, 2)

	assert.Equal(t, Match{Text: "00:11:22:33:44:55", Family: FamilyDelimited, Offset: 19}, matches[0])
	assert.Equal(t, Match{Text: "0011.2233.4455", Family: FamilyDotted, Offset: 2}, matches[1])

	for _, m := range matches {
		assert.Equal(t, m.Text, text[m.Offset:m.Offset+len(m.Text)])
	}
}

func TestScan_AllMatchesParse(t *testing.T) {
	text := "a=AA:bb:CC:dd:EE:ff b=aabb.ccdd.eeff c=0123456789AB d=01-23-45-67-89-ab"
	for _, s := range Scan(text) {
		_, err := Parse(s)
		assert.NoError(t, err, "scanner produced unparseable candidate %q", s)
	}
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "delimited", FamilyDelimited.String())
	assert.Equal(t, "dotted", FamilyDotted.String())
	assert.Equal(t, "bare", FamilyBare.String())
	assert.Equal(t, "unknown", Family(9).String())
}

func TestFamilies_MatchScanOrder(t *testing.T) {
	require.Len(t, Families, len(families))
	for i, f := range Families {
		assert.Equal(t, f, families[i].family)
	}
}
