// Package codeunit converts Go strings to UTF-16 code units and compares
// strings in code unit order.
//
// The trie operates on UTF-16 code units, so table ordering must follow code
// unit order rather than Go's native byte order. The two agree for ASCII and
// most of the Basic Multilingual Plane, but diverge for supplementary-plane
// characters (U+10000 and above): in code unit order they sort by their high
// surrogate (0xD800-0xDBFF) and therefore BEFORE characters in U+E000-U+FFFF,
// while native string comparison sorts them after. Tables built from such
// strings must be sorted with Sort or Compare, not sort.Strings.
package codeunit

import (
	"slices"
	"unicode/utf16"
	"unicode/utf8"
)

// Count returns the number of UTF-16 code units needed to encode s.
// Supplementary-plane characters count as two units (a surrogate pair).
func Count(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r >= 0x10000 {
			n++
		}
	}

	return n
}

// Encode returns the UTF-16 code units of s in a freshly allocated slice.
func Encode(s string) []uint16 {
	return AppendString(make([]uint16, 0, len(s)), s)
}

// AppendString appends the UTF-16 code units of s to dst and returns the
// extended slice. A code unit never takes fewer UTF-8 bytes than UTF-16
// bytes, so len(s) is always a sufficient capacity hint.
func AppendString(dst []uint16, s string) []uint16 {
	// Fast path: ASCII bytes map 1:1 to code units.
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return appendRunes(dst, s[i:])
		}

		dst = append(dst, uint16(c))
	}

	return dst
}

func appendRunes(dst []uint16, s string) []uint16 {
	for _, r := range s {
		dst = utf16.AppendRune(dst, r)
	}

	return dst
}

// Compare returns -1, 0, or +1 ordering a and b by their UTF-16 code units.
// It allocates nothing and is equivalent to slices.Compare(Encode(a), Encode(b)).
func Compare(a, b string) int {
	// ASCII prefixes order identically in byte and code unit space.
	i := 0
	for i < len(a) && i < len(b) {
		ca, cb := a[i], b[i]
		if ca >= utf8.RuneSelf || cb >= utf8.RuneSelf {
			return compareRunes(a[i:], b[i:])
		}

		if ca != cb {
			if ca < cb {
				return -1
			}

			return 1
		}

		i++
	}

	return compareLen(len(a)-i, len(b)-i)
}

func compareRunes(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)

		if ra != rb {
			ua, ub := leadUnit(ra), leadUnit(rb)
			if ua != ub {
				if ua < ub {
					return -1
				}

				return 1
			}
			// Equal lead units mean both runes are supplementary and share
			// a high surrogate; the trailing unit then orders like the
			// code point.
			if ra < rb {
				return -1
			}

			return 1
		}

		a, b = a[na:], b[nb:]
	}

	return compareLen(len(a), len(b))
}

func compareLen(a, b int) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// leadUnit returns the first UTF-16 code unit of r.
func leadUnit(r rune) uint16 {
	if r < 0x10000 {
		return uint16(r)
	}

	return uint16(0xD800 + (r-0x10000)>>10)
}

// Sort sorts table in UTF-16 code unit order, the order Build requires.
func Sort(table []string) {
	slices.SortFunc(table, Compare)
}

// IsSorted reports whether table is in strictly non-descending code unit order.
func IsSorted(table []string) bool {
	return slices.IsSortedFunc(table, Compare)
}
