// Package glossary mines candidate terminology pairs from extracted
// translation units. Candidate tokens are matched per language side by an
// ordered list of character-class matchers; units with exactly one
// candidate on each side contribute an aligned pair, all other candidates
// are collected as unmatched.
package glossary

import "strings"

// A matcher reports the rune length of a candidate token starting at
// position i, or 0 when it does not match there. Matchers are tried in
// priority order at each scan position; the first match wins and the scan
// resumes after it, which reproduces ordered-alternation regex semantics.
type matcher func(runes []rune, i int) int

// sourceMatchers recognize Latin-script term candidates, highest
// priority first.
var sourceMatchers = []matcher{
	matchSCPLiteral,
	matchCapitalizedWord, // optionally hyphen-joined to a second one
	matchUppercaseRun,
	matchCamelCasePair,
	matchCapitalizedWithDigits,
}

// targetMatchers recognize Japanese-script term candidates, highest
// priority first.
var targetMatchers = []matcher{
	matchKatakanaRun,
	matchKanjiKatakana,
	matchKanjiRun,
}

// sourceStopWords is the closed list of capitalized function words that are
// never terminology.
var sourceStopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"The", "A", "An", "And", "Or", "But", "If", "Of", "For", "To",
		"In", "On", "At", "It", "You", "I", "We", "He", "She", "They",
		"Them", "Is", "Are", "Am", "Be", "Been", "Was", "Were", "This",
		"That", "These", "Those", "My", "Your", "Our", "Their", "With",
		"As", "Not", "Have", "Has", "Had", "Will", "Can", "Do", "Did",
		"So", "All", "Any",
	} {
		sourceStopWords[w] = struct{}{}
	}
}

// SourceCandidates extracts term candidates from a source-language text:
// the literal "SCP", capitalized words (optionally hyphen-joined pairs),
// all-uppercase runs, CamelCase compounds, and capitalized words followed
// by digits. Candidates shorter than two characters or present in the
// stop-word list are rejected. The result is deduplicated preserving
// first-seen order.
func SourceCandidates(text string) []string {
	set := newOrderedSet()
	for _, tok := range scan(text, sourceMatchers) {
		tok = strings.Trim(tok, "-")
		if len([]rune(tok)) < 2 {
			continue
		}
		if _, stop := sourceStopWords[tok]; stop {
			continue
		}
		set.add(tok)
	}
	return set.values()
}

// TargetCandidates extracts term candidates from a Japanese target text:
// katakana runs, kanji runs with an optional katakana tail, and plain
// kanji runs. Purely hiragana sequences (grammatical particles) and
// single characters are rejected. The result is deduplicated preserving
// first-seen order.
func TargetCandidates(text string) []string {
	set := newOrderedSet()
	for _, tok := range scan(text, targetMatchers) {
		if allHiragana(tok) {
			continue
		}
		if len([]rune(tok)) < 2 {
			continue
		}
		set.add(tok)
	}
	return set.values()
}

// scan runs the matcher list over text and returns all non-overlapping
// raw tokens in document order.
func scan(text string, matchers []matcher) []string {
	runes := []rune(text)
	var tokens []string
	for i := 0; i < len(runes); {
		matched := false
		for _, m := range matchers {
			if n := m(runes, i); n > 0 {
				tokens = append(tokens, string(runes[i:i+n]))
				i += n
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return tokens
}

// --- Latin-script matchers ---

func matchSCPLiteral(runes []rune, i int) int {
	if i+3 <= len(runes) && runes[i] == 'S' && runes[i+1] == 'C' && runes[i+2] == 'P' {
		return 3
	}
	return 0
}

// matchCapitalizedWord matches [A-Z][a-z]+ optionally followed by a hyphen
// and a second capitalized word.
func matchCapitalizedWord(runes []rune, i int) int {
	n := capLower(runes, i)
	if n == 0 {
		return 0
	}
	j := i + n
	if j+1 < len(runes) && runes[j] == '-' {
		if m := capLower(runes, j+1); m > 0 {
			return n + 1 + m
		}
	}
	return n
}

func matchUppercaseRun(runes []rune, i int) int {
	n := 0
	for i+n < len(runes) && isUpper(runes[i+n]) {
		n++
	}
	if n >= 2 {
		return n
	}
	return 0
}

func matchCamelCasePair(runes []rune, i int) int {
	first := capLower(runes, i)
	if first == 0 {
		return 0
	}
	second := capLower(runes, i+first)
	if second == 0 {
		return 0
	}
	return first + second
}

func matchCapitalizedWithDigits(runes []rune, i int) int {
	n := capLower(runes, i)
	if n == 0 {
		return 0
	}
	d := 0
	for i+n+d < len(runes) && isDigit(runes[i+n+d]) {
		d++
	}
	if d == 0 {
		return 0
	}
	return n + d
}

// capLower matches one uppercase letter followed by one or more lowercase
// letters, returning the matched length or 0.
func capLower(runes []rune, i int) int {
	if i >= len(runes) || !isUpper(runes[i]) {
		return 0
	}
	n := 1
	for i+n < len(runes) && isLower(runes[i+n]) {
		n++
	}
	if n < 2 {
		return 0
	}
	return n
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// --- Japanese-script matchers ---

// Katakana covers the main block plus the prolonged sound mark.
func isKatakana(r rune) bool {
	return (r >= 0x30A1 && r <= 0x30FA) || r == 0x30FC
}

// Kanji covers the CJK unified ideographs block.
func isKanji(r rune) bool { return r >= 0x4E00 && r <= 0x9FFF }

func isHiragana(r rune) bool { return r >= 0x3040 && r <= 0x309F }

func matchKatakanaRun(runes []rune, i int) int {
	n := 0
	for i+n < len(runes) && isKatakana(runes[i+n]) {
		n++
	}
	if n >= 2 {
		return n
	}
	return 0
}

// matchKanjiKatakana matches one or more kanji optionally followed by a
// katakana tail. A lone kanji matches here and is dropped later by the
// minimum-length filter.
func matchKanjiKatakana(runes []rune, i int) int {
	n := 0
	for i+n < len(runes) && isKanji(runes[i+n]) {
		n++
	}
	if n == 0 {
		return 0
	}
	for i+n < len(runes) && isKatakana(runes[i+n]) {
		n++
	}
	return n
}

func matchKanjiRun(runes []rune, i int) int {
	n := 0
	for i+n < len(runes) && isKanji(runes[i+n]) {
		n++
	}
	if n >= 2 {
		return n
	}
	return 0
}

func allHiragana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isHiragana(r) {
			return false
		}
	}
	return true
}

// orderedSet is an insertion-ordered string set used for per-unit
// candidate deduplication.
type orderedSet struct {
	seen  map[string]struct{}
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *orderedSet) values() []string { return s.order }
