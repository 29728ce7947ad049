package toc

import "strings"

// Devanagari digit glyphs occupy U+0966 through U+096F; the full script
// block is U+0900 through U+097F.
const (
	devanagariLo   = 0x0900
	devanagariHi   = 0x097F
	devanagariZero = '०'
	devanagariNine = '९'
)

// NormalizeDigits maps every Devanagari digit glyph onto its ASCII
// equivalent and leaves all other runes untouched.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= devanagariZero && r <= devanagariNine {
			b.WriteRune('0' + (r - devanagariZero))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripDevanagari removes every rune in the Devanagari block, digits
// included. Surrounding whitespace is kept; callers trim afterwards.
func StripDevanagari(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= devanagariLo && r <= devanagariHi {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
