// Package quality flags likely translation problems in extracted units:
// targets equal to their source, targets suspiciously dominated by ASCII
// letters, and target/source length ratios outside an expected band.
package quality

import (
	"math"
	"strings"

	"github.com/valpere/perevir/internal/textnorm"
	"github.com/valpere/perevir/internal/xliff"
)

const previewLen = 60

// Config holds the classification thresholds. They are caller-supplied
// policy, not properties of the units themselves.
type Config struct {
	MinRatio       float64
	MaxRatio       float64
	ASCIIThreshold float64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{MinRatio: 0.3, MaxRatio: 2.5, ASCIIThreshold: 0.7}
}

// UnitReport is the per-unit classification result. Ratio is rounded to
// three decimals; previews show the first 60 visible characters of the
// cleaned texts with newlines collapsed to spaces.
type UnitReport struct {
	ID            string  `json:"id"`
	SourceChars   int     `json:"source_chars"`
	TargetChars   int     `json:"target_chars"`
	Ratio         float64 `json:"ratio"`
	Untranslated  bool    `json:"untranslated"`
	ASCIIHeavy    bool    `json:"ascii_heavy"`
	RatioFlag     bool    `json:"ratio_flag"`
	SourcePreview string  `json:"source_preview"`
	TargetPreview string  `json:"target_preview"`
}

// Summary aggregates all unit reports of one run.
type Summary struct {
	Units        int     `json:"units"`
	Untranslated int     `json:"untranslated"`
	ASCIIHeavy   int     `json:"ascii_heavy"`
	RatioFlags   int     `json:"ratio_flags"`
	AvgRatio     float64 `json:"avg_ratio"`
	MinRatio     float64 `json:"min_ratio"`
	MaxRatio     float64 `json:"max_ratio"`
}

// Analyze classifies every unit and returns the per-unit reports together
// with the aggregate summary. An empty unit list yields a zero-filled
// summary; the function is total over any string content.
func Analyze(units []xliff.Unit, cfg Config) ([]UnitReport, Summary) {
	reports := make([]UnitReport, 0, len(units))
	ratios := make([]float64, 0, len(units))
	var summary Summary

	for _, u := range units {
		srcClean := textnorm.StripMarkup(u.Source)
		tgtClean := textnorm.StripMarkup(u.Target)

		srcKey := textnorm.NormalizeKey(srcClean)
		tgtKey := textnorm.NormalizeKey(tgtClean)
		untranslated := srcKey == tgtKey && srcKey != ""

		asciiHeavy := textnorm.ASCIIRatio(tgtClean) >= cfg.ASCIIThreshold &&
			containsASCIILetter(tgtClean)

		// Floor the source length to 1 so empty sources never divide by zero.
		srcLen := textnorm.CharLen(srcClean)
		if srcLen < 1 {
			srcLen = 1
		}
		tgtLen := textnorm.CharLen(tgtClean)
		ratio := float64(tgtLen) / float64(srcLen)
		ratioFlag := ratio < cfg.MinRatio || ratio > cfg.MaxRatio

		if untranslated {
			summary.Untranslated++
		}
		if asciiHeavy {
			summary.ASCIIHeavy++
		}
		if ratioFlag {
			summary.RatioFlags++
		}
		ratios = append(ratios, ratio)

		reports = append(reports, UnitReport{
			ID:            u.ID,
			SourceChars:   srcLen,
			TargetChars:   tgtLen,
			Ratio:         round3(ratio),
			Untranslated:  untranslated,
			ASCIIHeavy:    asciiHeavy,
			RatioFlag:     ratioFlag,
			SourcePreview: preview(srcClean),
			TargetPreview: preview(tgtClean),
		})
	}

	summary.Units = len(reports)
	if len(ratios) > 0 {
		sum, min, max := 0.0, ratios[0], ratios[0]
		for _, r := range ratios {
			sum += r
			if r < min {
				min = r
			}
			if r > max {
				max = r
			}
		}
		summary.AvgRatio = round3(sum / float64(len(ratios)))
		summary.MinRatio = round3(min)
		summary.MaxRatio = round3(max)
	}
	return reports, summary
}

func containsASCIILetter(s string) bool {
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return true
		}
	}
	return false
}

func preview(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
	runes := []rune(s)
	if len(runes) > previewLen {
		return string(runes[:previewLen])
	}
	return s
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
