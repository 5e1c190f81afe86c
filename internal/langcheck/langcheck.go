// Package langcheck verifies that the target side of a corpus is actually
// written in the declared target language.
package langcheck

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/perevir/internal/xliff"
)

// minSampleRunes is the minimum sample size for a reliable detection.
// Smaller corpora are reported as inconclusive rather than mismatched.
const minSampleRunes = 20

// maxSampleRunes caps the text handed to the detector; a few thousand
// characters are plenty for a stable result.
const maxSampleRunes = 4000

// Checker detects the dominant language of target texts. The underlying
// detector is expensive to build; reuse the instance.
type Checker struct {
	det lingua.LanguageDetector
}

// New creates a Checker considering all languages lingua knows.
func New() *Checker {
	det := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()
	return &Checker{det: det}
}

// Result is the outcome of one verification.
type Result struct {
	// Detected is the ISO 639-1 code of the dominant target language,
	// empty when detection was inconclusive.
	Detected string
	// Match is true when Detected equals the expected code
	// (case-insensitive). Only meaningful when Conclusive is true.
	Match bool
	// Conclusive is false when the sample was too small or the detector
	// could not settle on a language.
	Conclusive bool
}

// VerifyTarget samples the target texts of units and checks them against
// the expected ISO 639-1 language code.
func (c *Checker) VerifyTarget(units []xliff.Unit, expected string) Result {
	var b strings.Builder
	for _, u := range units {
		if b.Len() >= maxSampleRunes {
			break
		}
		b.WriteString(u.Target)
		b.WriteString(" ")
	}

	sample := strings.TrimSpace(b.String())
	runes := []rune(sample)
	if len(runes) < minSampleRunes {
		return Result{}
	}
	if len(runes) > maxSampleRunes {
		sample = string(runes[:maxSampleRunes])
	}

	lang, ok := c.det.DetectLanguageOf(sample)
	if !ok {
		return Result{}
	}

	detected := lang.IsoCode639_1().String()
	return Result{
		Detected:   strings.ToLower(detected),
		Match:      strings.EqualFold(detected, expected),
		Conclusive: true,
	}
}
