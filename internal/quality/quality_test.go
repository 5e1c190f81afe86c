package quality

import (
	"strings"
	"testing"

	"github.com/valpere/perevir/internal/xliff"
)

func analyzeOne(t *testing.T, source, target string) UnitReport {
	t.Helper()
	reports, _ := Analyze([]xliff.Unit{{ID: "1", Source: source, Target: target}}, DefaultConfig())
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	return reports[0]
}

func TestAnalyze_IdenticalTexts(t *testing.T) {
	r := analyzeOne(t, "Hello World", "Hello World")
	if !r.Untranslated {
		t.Error("identical source and target should be flagged untranslated")
	}
	if r.Ratio != 1.0 {
		t.Errorf("expected ratio 1.0, got %f", r.Ratio)
	}
}

func TestAnalyze_WhitespaceInsensitiveEquality(t *testing.T) {
	r := analyzeOne(t, "Hello  World", "hello\nworld")
	if !r.Untranslated {
		t.Error("equality test should ignore whitespace and case")
	}
}

func TestAnalyze_EmptyTextsNotUntranslated(t *testing.T) {
	r := analyzeOne(t, "", "")
	if r.Untranslated {
		t.Error("two empty texts must not be flagged untranslated")
	}
}

func TestAnalyze_MarkupStrippedBeforeComparison(t *testing.T) {
	r := analyzeOne(t, "**Hello** World", "Hello //World//")
	if !r.Untranslated {
		t.Error("markup must be stripped before the equality test")
	}
}

func TestAnalyze_TranslatedTextNotFlagged(t *testing.T) {
	r := analyzeOne(t, "Hello World", "こんにちは世界")
	if r.Untranslated {
		t.Error("translated text must not be flagged untranslated")
	}
	if r.ASCIIHeavy {
		t.Error("all-Japanese target must not be flagged ascii_heavy")
	}
}

func TestAnalyze_ASCIIHeavy(t *testing.T) {
	r := analyzeOne(t, "The Foundation", "The Foundation facility")
	if !r.ASCIIHeavy {
		t.Error("fully ASCII target should be flagged ascii_heavy")
	}
}

func TestAnalyze_ASCIIHeavyNeedsLetter(t *testing.T) {
	// Digits and punctuation alone push the ratio to 1.0, but without an
	// ASCII letter the flag must stay off.
	r := analyzeOne(t, "Hello World", "1234-5678!")
	if r.ASCIIHeavy {
		t.Error("target without ASCII letters must not be flagged ascii_heavy")
	}
}

func TestAnalyze_RatioTooShort(t *testing.T) {
	// 20 visible source chars, 5 visible target chars: 0.25 < 0.3.
	r := analyzeOne(t, "Site-19 Containment AB", "五文字です")
	if r.SourceChars != 20 {
		t.Fatalf("expected 20 source chars, got %d", r.SourceChars)
	}
	if r.Ratio != 0.25 {
		t.Errorf("expected ratio 0.25, got %f", r.Ratio)
	}
	if !r.RatioFlag {
		t.Error("ratio 0.25 should be flagged under the default 0.3 minimum")
	}
}

func TestAnalyze_EmptySourceFloored(t *testing.T) {
	r := analyzeOne(t, "", "abc")
	if r.SourceChars != 1 {
		t.Errorf("empty source should be floored to 1, got %d", r.SourceChars)
	}
	if r.Ratio != 3.0 {
		t.Errorf("expected ratio 3.0, got %f", r.Ratio)
	}
	if !r.RatioFlag {
		t.Error("ratio 3.0 should be flagged under the default 2.5 maximum")
	}
}

func TestAnalyze_Previews(t *testing.T) {
	long := strings.Repeat("abcde ", 20) // 120 chars
	r := analyzeOne(t, "line one\nline two", long)
	if strings.Contains(r.SourcePreview, "\n") {
		t.Errorf("preview must collapse newlines: %q", r.SourcePreview)
	}
	if got := len([]rune(r.TargetPreview)); got != 60 {
		t.Errorf("preview should be truncated to 60 runes, got %d", got)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	reports, summary := Analyze(nil, DefaultConfig())
	if len(reports) != 0 {
		t.Errorf("expected no reports, got %d", len(reports))
	}
	if summary != (Summary{}) {
		t.Errorf("expected zero-filled summary, got %+v", summary)
	}
}

func TestAnalyze_SummaryAggregates(t *testing.T) {
	units := []xliff.Unit{
		{ID: "1", Source: "Hello World", Target: "Hello World"},       // untranslated + ascii
		{ID: "2", Source: "Hello World", Target: "こんにちは世界です"},         // ok
		{ID: "3", Source: "A long source sentence here", Target: "短"}, // ratio
	}
	reports, summary := Analyze(units, DefaultConfig())

	if summary.Units != 3 {
		t.Errorf("expected 3 units, got %d", summary.Units)
	}
	if summary.Untranslated != 1 {
		t.Errorf("expected 1 untranslated, got %d", summary.Untranslated)
	}
	if summary.ASCIIHeavy != 1 {
		t.Errorf("expected 1 ascii_heavy, got %d", summary.ASCIIHeavy)
	}
	if summary.RatioFlags != 1 {
		t.Errorf("expected 1 ratio_flag, got %d", summary.RatioFlags)
	}
	if summary.MinRatio > summary.AvgRatio || summary.AvgRatio > summary.MaxRatio {
		t.Errorf("summary ratios out of order: %+v", summary)
	}
	if len(reports) != 3 {
		t.Errorf("expected 3 reports, got %d", len(reports))
	}
}

func TestAnalyze_CustomThresholds(t *testing.T) {
	cfg := Config{MinRatio: 0.9, MaxRatio: 1.1, ASCIIThreshold: 0.5}
	reports, _ := Analyze([]xliff.Unit{
		{ID: "1", Source: "abcdefghij", Target: "abcde"}, // ratio 0.5
	}, cfg)
	if !reports[0].RatioFlag {
		t.Error("ratio 0.5 should be flagged with min_ratio 0.9")
	}
}
