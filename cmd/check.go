/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/valpere/perevir/internal/langcheck"
	"github.com/valpere/perevir/internal/quality"
	"github.com/valpere/perevir/internal/report"
	"github.com/valpere/perevir/internal/store"
	"github.com/valpere/perevir/internal/xliff"
)

var (
	checkInputFile  string
	checkMinRatio   float64
	checkMaxRatio   float64
	checkASCIIRatio float64
	checkJSONPath   string
	checkExpectLang string
	checkDBPath     string
	checkNoHistory  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check translation consistency and length differences",
	Long: `Check an XLIFF file for likely translation problems.

For every translation unit the checker reports visible character counts,
the target/source length ratio and three heuristic flags:

  untranslated  target equals source after markup stripping and normalization
  ascii_heavy   target is dominated by ASCII letters (suspicious for
                non-Latin target languages)
  ratio_flag    length ratio outside the [--min-ratio, --max-ratio] band

The per-unit table goes to stdout as TSV; the aggregate summary goes to
stderr. The command always exits 0 on a successful run so it can be used
in builds without failing them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := xliff.Parse(checkInputFile)
		if err != nil {
			return err
		}
		units := xliff.Extract(doc)

		cfg := quality.Config{
			MinRatio:       checkMinRatio,
			MaxRatio:       checkMaxRatio,
			ASCIIThreshold: checkASCIIRatio,
		}
		reports, summary := quality.Analyze(units, cfg)

		if err := report.WriteQualityTSV(os.Stdout, reports); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		report.WriteQualitySummary(os.Stderr, summary)

		if checkJSONPath != "" {
			if err := report.WriteQualityJSON(checkJSONPath, reports, summary); err != nil {
				return fmt.Errorf("failed to write JSON report: %w", err)
			}
		}

		if checkExpectLang != "" {
			res := langcheck.New().VerifyTarget(units, checkExpectLang)
			switch {
			case !res.Conclusive:
				fmt.Fprintf(os.Stderr, "Language check inconclusive (sample too small)\n")
			case res.Match:
				fmt.Fprintf(os.Stderr, "Target language verified: %s\n", res.Detected)
			default:
				fmt.Fprintf(os.Stderr, "Warning: expected target language %s but detected %s\n",
					checkExpectLang, res.Detected)
			}
		}

		if !checkNoHistory && checkDBPath != "" {
			if err := saveCheckRun(checkDBPath, checkInputFile, summary); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record run: %v\n", err)
			}
		}
		return nil
	},
}

func saveCheckRun(dbPath, inputFile string, summary quality.Summary) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return err
	}
	db, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	run := store.Run{
		ID:           uuid.New().String(),
		InputFile:    inputFile,
		Units:        summary.Units,
		Untranslated: summary.Untranslated,
		ASCIIHeavy:   summary.ASCIIHeavy,
		RatioFlags:   summary.RatioFlags,
		AvgRatio:     summary.AvgRatio,
		MinRatio:     summary.MinRatio,
		MaxRatio:     summary.MaxRatio,
	}
	if err := db.SaveRun(context.Background(), run); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Recorded run %s\n", run.ID)
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkInputFile, "input", "i", "", "Input XLIFF file (required)")
	checkCmd.Flags().Float64Var(&checkMinRatio, "min-ratio", 0.3, "Minimum acceptable target/source char ratio")
	checkCmd.Flags().Float64Var(&checkMaxRatio, "max-ratio", 2.5, "Maximum acceptable target/source char ratio")
	checkCmd.Flags().Float64Var(&checkASCIIRatio, "ascii-ratio", 0.7, "ASCII char proportion threshold to mark ascii_heavy")
	checkCmd.Flags().StringVar(&checkJSONPath, "json", "", "Optional path to write JSON summary + per-unit details")
	checkCmd.Flags().StringVar(&checkExpectLang, "expect-lang", "", "Verify the target texts are in this ISO 639-1 language")
	checkCmd.Flags().StringVar(&checkDBPath, "db", "./data/perevir.db", "Database path for run history")
	checkCmd.Flags().BoolVar(&checkNoHistory, "no-history", false, "Do not record this run in the history database")

	checkCmd.MarkFlagRequired("input")
}
