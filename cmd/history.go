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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/perevir/internal/store"
)

var historyDBPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect stored check runs and mined terms",
	Long:  `List, inspect, and clear check-run summaries recorded by "perevir check".`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded check runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(historyDBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		runs, err := db.ListRuns(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILE\tUNITS\tUNTRANSLATED\tASCII\tRATIO\tAVG\tWHEN")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.3f\t%s\n",
				r.ID, r.InputFile, r.Units, r.Untranslated, r.ASCIIHeavy,
				r.RatioFlags, r.AvgRatio, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded check run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(historyDBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		run, err := db.GetRun(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:           %s\n", run.ID)
		fmt.Printf("File:         %s\n", run.InputFile)
		fmt.Printf("Units:        %d\n", run.Units)
		fmt.Printf("Untranslated: %d\n", run.Untranslated)
		fmt.Printf("ASCII-heavy:  %d\n", run.ASCIIHeavy)
		fmt.Printf("Ratio flags:  %d\n", run.RatioFlags)
		fmt.Printf("Avg ratio:    %.3f\n", run.AvgRatio)
		fmt.Printf("Min ratio:    %.3f\n", run.MinRatio)
		fmt.Printf("Max ratio:    %.3f\n", run.MaxRatio)
		fmt.Printf("When:         %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded check runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(historyDBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		n, err := db.ClearRuns(context.Background())
		if err != nil {
			return fmt.Errorf("failed to clear runs: %w", err)
		}
		fmt.Printf("Cleared %d runs.\n", n)
		return nil
	},
}

var historyTermsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List mined glossary pairs accumulated across runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(historyDBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		terms, err := db.ListMinedTerms(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list terms: %w", err)
		}

		if len(terms) == 0 {
			fmt.Println("No mined terms.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SOURCE TERM\tTARGET TERM\tCOUNT\tEXAMPLE IDS\tFILE")
		for _, t := range terms {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				t.SourceTerm, t.TargetTerm, t.Count, t.ExampleIDs, t.InputFile)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.PersistentFlags().StringVar(&historyDBPath, "db", "./data/perevir.db", "Database path")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyTermsCmd)
}
