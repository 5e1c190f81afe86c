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

	"github.com/valpere/perevir/internal/segmenter"
	"github.com/valpere/perevir/internal/xliff"
)

var (
	exportInputFile  string
	exportSourceLang string
	exportTargetLang string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Split a text file into sentences and export an XLIFF skeleton",
	Long: `Split a UTF-8 text file into sentences and write an XLIFF 1.2 document
to translation.xml next to the input file.

Each sentence becomes one trans-unit; the target is prefilled with the
source text so the file can be handed to a translator as-is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(exportInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text := string(data)
		if strings.TrimSpace(text) == "" {
			fmt.Fprintf(os.Stderr, "Input file is empty, nothing to export\n")
			return nil
		}

		seg, err := segmenter.New()
		if err != nil {
			return err
		}
		sentences := seg.Split(text)

		sk := xliff.Skeleton{
			Original:   filepath.Base(exportInputFile),
			SourceLang: exportSourceLang,
			TargetLang: exportTargetLang,
			Sentences:  sentences,
		}

		outputPath := filepath.Join(filepath.Dir(exportInputFile), "translation.xml")
		if err := os.WriteFile(outputPath, []byte(sk.Render()), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		fmt.Printf("Wrote %d sentences to %s\n", len(sentences), outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportInputFile, "input", "i", "", "Input text file (required)")
	exportCmd.Flags().StringVar(&exportSourceLang, "source-lang", "en-US", "Source language attribute for the XLIFF file")
	exportCmd.Flags().StringVar(&exportTargetLang, "target-lang", "ja", "Target language attribute for the XLIFF file")

	exportCmd.MarkFlagRequired("input")
}
