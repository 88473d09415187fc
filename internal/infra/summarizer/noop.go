package summarizer

import (
	"context"
	"log/slog"
	"strings"

	"docsum/internal/utils/text"
)

// NoOp is a deterministic summarizer used when no API key is configured.
// It returns a truncated excerpt of the input instead of an abstractive
// summary, which keeps the pipeline usable in development and tests.
type NoOp struct{}

// NewNoOp creates a summarizer that truncates instead of calling a model.
func NewNoOp() *NoOp {
	slog.Warn("no summarizer api key configured, falling back to truncation")
	return &NoOp{}
}

// Summarize returns the leading maxLength characters of the input.
func (n *NoOp) Summarize(_ context.Context, input string, maxLength, _ int) (string, error) {
	return text.Truncate(strings.TrimSpace(input), maxLength), nil
}
