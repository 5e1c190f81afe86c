// Package report serializes quality and glossary results to the TSV and
// JSON formats consumed by build tooling. It only reads the structures the
// analyses produce.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/valpere/perevir/internal/glossary"
	"github.com/valpere/perevir/internal/quality"
)

// WriteQualityTSV writes the per-unit report table, one row per unit,
// booleans as 1/0 and ratios with three decimals.
func WriteQualityTSV(w io.Writer, reports []quality.UnitReport) error {
	header := []string{
		"id", "src_chars", "tgt_chars", "ratio",
		"untranslated", "ascii_heavy", "ratio_flag",
		"source_preview", "target_preview",
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, r := range reports {
		row := []string{
			r.ID,
			fmt.Sprintf("%d", r.SourceChars),
			fmt.Sprintf("%d", r.TargetChars),
			fmt.Sprintf("%.3f", r.Ratio),
			boolCell(r.Untranslated),
			boolCell(r.ASCIIHeavy),
			boolCell(r.RatioFlag),
			r.SourcePreview,
			r.TargetPreview,
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteQualitySummary prints the aggregate block, one "key: value" line per
// field, preceded by a "# Summary" marker.
func WriteQualitySummary(w io.Writer, s quality.Summary) {
	fmt.Fprintf(w, "\n# Summary\n")
	fmt.Fprintf(w, "units: %d\n", s.Units)
	fmt.Fprintf(w, "untranslated: %d\n", s.Untranslated)
	fmt.Fprintf(w, "ascii_heavy: %d\n", s.ASCIIHeavy)
	fmt.Fprintf(w, "ratio_flags: %d\n", s.RatioFlags)
	fmt.Fprintf(w, "avg_ratio: %.3f\n", s.AvgRatio)
	fmt.Fprintf(w, "min_ratio: %.3f\n", s.MinRatio)
	fmt.Fprintf(w, "max_ratio: %.3f\n", s.MaxRatio)
}

// qualityPayload is the JSON report shape: the summary block followed by
// the per-unit details.
type qualityPayload struct {
	Summary quality.Summary      `json:"summary"`
	Units   []quality.UnitReport `json:"units"`
}

// WriteQualityJSON writes the JSON report to path, creating parent
// directories as needed.
func WriteQualityJSON(path string, reports []quality.UnitReport, summary quality.Summary) error {
	if reports == nil {
		reports = []quality.UnitReport{}
	}
	data, err := json.MarshalIndent(qualityPayload{Summary: summary, Units: reports}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Glossary report file names, kept stable for downstream tooling.
const (
	PairsFile           = "glossary_pairs.tsv"
	SourceUnmatchedFile = "glossary_en_unmatched.tsv"
	TargetUnmatchedFile = "glossary_ja_unmatched.tsv"
)

// WriteGlossary writes the three glossary tables into dir, creating it if
// missing. Rows follow the deterministic ordering of the glossary package.
func WriteGlossary(dir string, g *glossary.Glossary) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("source_term\ttarget_term\tcount\texample_ids\n")
	for _, p := range g.SortedPairs() {
		fmt.Fprintf(&b, "%s\t%s\t%d\t%s\n", p.Source, p.Target, p.Count, strings.Join(p.SortedIDs(), ","))
	}
	if err := os.WriteFile(filepath.Join(dir, PairsFile), []byte(b.String()), 0644); err != nil {
		return err
	}

	if err := writeUnmatched(filepath.Join(dir, SourceUnmatchedFile), "en_term", g.SourceUnmatched); err != nil {
		return err
	}
	return writeUnmatched(filepath.Join(dir, TargetUnmatchedFile), "ja_term", g.TargetUnmatched)
}

func writeUnmatched(path, header string, bin map[string]map[string]struct{}) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\tcount\texample_ids\n", header)
	for _, term := range glossary.SortUnmatched(bin) {
		fmt.Fprintf(&b, "%s\t%d\t%s\n", term.Term, len(term.IDs), strings.Join(term.IDs, ","))
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func boolCell(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
