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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/perevir/internal/xliff"
)

var (
	extractInputFile string
	extractSep       string
	extractNoEmpty   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract target texts from an XLIFF file",
	Long: `Extract the contents of all <target> elements in document order and
write them to tgt.txt next to the input file.

The extraction is namespace-agnostic and picks up targets regardless of
the XLIFF version. Use --sep to change the separator between targets;
the literal escapes \n, \t and \0 are recognized.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := xliff.Parse(extractInputFile)
		if err != nil {
			return err
		}

		targets := xliff.Targets(doc)
		if extractNoEmpty {
			kept := targets[:0]
			for _, t := range targets {
				if strings.TrimSpace(t) != "" {
					kept = append(kept, t)
				}
			}
			targets = kept
		}

		sep := unescapeSep(extractSep)
		out := strings.Join(targets, sep)
		if !strings.HasSuffix(sep, "\n") {
			out += "\n"
		}

		outputPath := filepath.Join(filepath.Dir(extractInputFile), "tgt.txt")
		if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		fmt.Printf("Wrote %d targets to %s\n", len(targets), outputPath)
		return nil
	},
}

// unescapeSep maps the literal two-character escapes a shell delivers into
// their real separator characters.
func unescapeSep(sep string) string {
	switch sep {
	case `\0`:
		return "\x00"
	case `\n`:
		return "\n"
	case `\t`:
		return "\t"
	}
	return sep
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractInputFile, "input", "i", "", "Input XLIFF file (required)")
	extractCmd.Flags().StringVar(&extractSep, "sep", "\n", "Separator between targets (default: newline)")
	extractCmd.Flags().BoolVar(&extractNoEmpty, "no-empty", false, "Skip empty targets")

	extractCmd.MarkFlagRequired("input")
}
