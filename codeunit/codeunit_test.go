package codeunit

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"ascii", "getName", 7},
		{"latin accent", "café", 4},
		{"cjk", "你好", 2},
		{"supplementary", "😀", 2},
		{"mixed", "a😀b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Count(tt.input))
			require.Len(t, Encode(tt.input), tt.expected)
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []uint16
	}{
		{"ascii", "ab", []uint16{0x61, 0x62}},
		{"bmp", "é你", []uint16{0x00E9, 0x4F60}},
		{"surrogate pair", "😀", []uint16{0xD83D, 0xDE00}},
		{"plane 16 max", "\U0010FFFF", []uint16{0xDBFF, 0xDFFF}},
		{"ascii then pair", "a\U00010000", []uint16{0x61, 0xD800, 0xDC00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Encode(tt.input))
		})
	}
}

func TestAppendStringExtends(t *testing.T) {
	dst := []uint16{0x7A}
	dst = AppendString(dst, "a😀")

	require.Equal(t, []uint16{0x7A, 0x61, 0xD83D, 0xDE00}, dst)
}

func TestCompareMatchesEncodedOrder(t *testing.T) {
	// Every pair must order exactly as the encoded unit slices do.
	samples := []string{
		"", "a", "ab", "abc", "b",
		"getName", "getNameAndValue", "getValue",
		"퟿", "", "￿",
		"\U00010000", "\U0001F600", "\U0010FFFF",
		"a￿", "a\U00010000",
	}

	for _, a := range samples {
		for _, b := range samples {
			expected := slices.Compare(Encode(a), Encode(b))
			require.Equal(t, expected, Compare(a, b), "Compare(%q, %q)", a, b)
		}
	}
}

func TestCompareDivergesFromNativeOrder(t *testing.T) {
	// Supplementary-plane characters sort by their high surrogate, below
	// U+E000..U+FFFF; native byte order puts them above.
	require.Negative(t, Compare("\U0001F600", "￿"))
	require.Positive(t, strings.Compare("\U0001F600", "￿"))

	require.Negative(t, Compare("\U00010000", ""))
	require.Positive(t, strings.Compare("\U00010000", ""))

	// Below the surrogate gap both orders agree.
	require.Negative(t, Compare("퟿", ""))
	require.Negative(t, strings.Compare("퟿", ""))
}

func TestSortAndIsSorted(t *testing.T) {
	table := []string{"￿", "zebra", "\U00010000", "alpha", ""}

	require.False(t, IsSorted(table))

	Sort(table)

	require.True(t, IsSorted(table))
	require.Equal(t, []string{"alpha", "zebra", "\U00010000", "", "￿"}, table)

	for i := 1; i < len(table); i++ {
		require.Negative(t, Compare(table[i-1], table[i]))
	}
}
