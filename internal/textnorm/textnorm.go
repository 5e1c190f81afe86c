// Package textnorm provides the text normalization primitives shared by the
// quality checker and the glossary extractor: markup stripping, a
// whitespace-insensitive comparison key, visible-character counting, and
// ASCII-density measurement.
package textnorm

import (
	"strings"
	"unicode"
)

// StripMarkup deletes every occurrence of the emphasis markers "**" and "//"
// from s. Removal is unconditional: markers do not need to come in pairs, so
// a "//" inside a URL is deleted as well. This is a known limitation of the
// heuristic, kept on purpose.
func StripMarkup(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	return strings.ReplaceAll(s, "//", "")
}

// NormalizeKey removes all whitespace from s and lowercases the result.
// The returned string is a comparison key for the untranslated-equality
// test only; it is never shown to the user.
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// CharLen returns the number of visible (non-whitespace) runes in s.
// All length and ratio math uses this count, not the raw byte length.
func CharLen(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// ASCIIRatio returns the fraction of visible runes in s whose code point is
// below 128. Whitespace is excluded from both sides of the fraction. An
// empty or all-whitespace string yields 0.0.
func ASCIIRatio(s string) float64 {
	ascii, total := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r < 128 {
			ascii++
		}
	}
	if total == 0 {
		return 0.0
	}
	return float64(ascii) / float64(total)
}
