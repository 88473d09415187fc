package tokenizer

import (
	"fmt"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Punkt splits text into sentences using a trained English Punkt model.
// It handles abbreviations ("Dr.", "e.g.") and decimal numbers that the
// regex splitter would cut mid-sentence.
type Punkt struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunkt creates a Punkt tokenizer with the embedded English training data.
func NewPunkt() (*Punkt, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &Punkt{tokenizer: tok}, nil
}

// Split returns the sentences of text in order of appearance.
func (p *Punkt) Split(text string) []string {
	tokens := p.tokenizer.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		out = append(out, s.Text)
	}
	return out
}
