// Package tokenizer provides sentence tokenization implementations.
// The primary implementation uses a trained Punkt model; a regex splitter
// serves as the fallback when the model cannot be loaded.
package tokenizer

import "log/slog"

// Tokenizer splits text into an ordered sequence of sentence strings.
// Implementations must preserve the order of appearance and may return
// sentences with surrounding whitespace; callers trim and drop empties.
type Tokenizer interface {
	Split(text string) []string
}

// Select returns the best available tokenizer: the Punkt tokenizer when its
// model loads, otherwise the regex splitter. Selection happens once at
// process start and the chosen tokenizer is used for every request.
func Select() Tokenizer {
	punkt, err := NewPunkt()
	if err != nil {
		slog.Warn("punkt tokenizer unavailable, falling back to regex splitter",
			slog.String("error", err.Error()))
		return NewRegex()
	}

	slog.Info("sentence tokenizer initialized",
		slog.String("implementation", "punkt"))
	return punkt
}
