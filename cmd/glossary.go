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
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/perevir/internal/glossary"
	"github.com/valpere/perevir/internal/report"
	"github.com/valpere/perevir/internal/store"
	"github.com/valpere/perevir/internal/xliff"
)

var (
	glossaryInputFile string
	glossaryOutDir    string
	glossaryDBPath    string
	glossaryNoStore   bool
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Mine candidate terminology pairs from an XLIFF file",
	Long: `Extract candidate terminology pairs from an XLIFF file.

Per translation unit, term candidates are collected on both sides with
lightweight token heuristics. A unit with exactly one candidate per side
yields an aligned pair; all other candidates are reported as unmatched.

Three TSV files are written into the output directory:
  glossary_pairs.tsv          aligned (source_term, target_term) pairs
  glossary_en_unmatched.tsv   unmatched source-side candidates
  glossary_ja_unmatched.tsv   unmatched target-side candidates`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := xliff.Parse(glossaryInputFile)
		if err != nil {
			return err
		}
		units := xliff.Extract(doc)

		g := glossary.Build(units)

		if err := report.WriteGlossary(glossaryOutDir, g); err != nil {
			return fmt.Errorf("failed to write glossary: %w", err)
		}
		for _, name := range []string{report.PairsFile, report.SourceUnmatchedFile, report.TargetUnmatchedFile} {
			fmt.Printf("Wrote: %s\n", filepath.Join(glossaryOutDir, name))
		}

		if !glossaryNoStore && glossaryDBPath != "" {
			if err := saveMinedPairs(glossaryDBPath, glossaryInputFile, g); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record mined terms: %v\n", err)
			}
		}
		return nil
	},
}

func saveMinedPairs(dbPath, inputFile string, g *glossary.Glossary) error {
	if len(g.Pairs) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return err
	}
	db, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	for _, p := range g.SortedPairs() {
		ids := strings.Join(p.SortedIDs(), ",")
		if err := db.SaveMinedTerm(ctx, p.Source, p.Target, p.Count, ids, inputFile); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "Recorded %d mined pairs\n", len(g.Pairs))
	return nil
}

func init() {
	rootCmd.AddCommand(glossaryCmd)

	glossaryCmd.Flags().StringVarP(&glossaryInputFile, "input", "i", "", "Input XLIFF file (required)")
	glossaryCmd.Flags().StringVarP(&glossaryOutDir, "out-dir", "o", "build/glossary", "Output directory for the glossary TSV files")
	glossaryCmd.Flags().StringVar(&glossaryDBPath, "db", "./data/perevir.db", "Database path for mined term persistence")
	glossaryCmd.Flags().BoolVar(&glossaryNoStore, "no-store", false, "Do not persist mined pairs to the database")

	glossaryCmd.MarkFlagRequired("input")
}
