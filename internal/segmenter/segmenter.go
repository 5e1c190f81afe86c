// Package segmenter splits raw text into an ordered sequence of sentence
// strings. It wraps a trained punkt tokenizer; callers only see the
// resulting sentence slice.
package segmenter

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter produces sentences from raw text. The tokenizer is expensive
// to build; reuse the instance.
type Segmenter struct {
	tok *sentences.DefaultSentenceTokenizer
}

// New creates a Segmenter backed by the English punkt model.
func New() (*Segmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sentence tokenizer: %w", err)
	}
	return &Segmenter{tok: tok}, nil
}

// Split returns the sentences of text in order, whitespace preserved.
// When the tokenizer produces nothing for a non-blank text, the whole
// text is returned as a single sentence.
func (s *Segmenter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var result []string
	for _, sent := range s.tok.Tokenize(text) {
		if sent.Text != "" {
			result = append(result, sent.Text)
		}
	}
	if len(result) == 0 {
		result = append(result, text)
	}
	return result
}
