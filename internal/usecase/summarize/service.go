// Package summarize implements the summarization pipeline: tier-aware
// orchestration of direct and chunked summarization with per-stage
// fallbacks, so a model failure degrades the summary instead of failing
// the request.
package summarize

import (
	"context"
	"log/slog"
	"strings"

	"docsum/internal/config"
	"docsum/internal/observability/metrics"
	"docsum/internal/utils/text"
)

const (
	// Texts shorter than this are returned verbatim instead of summarized.
	verbatimThreshold = 150

	// Texts shorter than this are summarized with a single model call.
	directThreshold = 2000

	// Chunks with fewer words than this pass through unsummarized.
	minChunkWords = 10

	// Per-chunk summarization bounds are capped at these values.
	chunkMaxLengthCap = 100
	chunkMinLengthCap = 20

	// Per-chunk fallback keeps this many characters of the raw chunk.
	chunkFallbackChars = 100

	// EmptySummary is returned when chunking yields no usable content.
	EmptySummary = "No content to summarize."
)

// Summarizer is the model-backed capability the orchestrator drives.
// Implementations are treated as unreliable per call; every call site
// here has its own fallback.
type Summarizer interface {
	Summarize(ctx context.Context, input string, maxLength, minLength int) (string, error)
}

// Service orchestrates document summarization across length tiers.
type Service struct {
	Summarizer  Summarizer
	Tiers       *config.Tiers
	ChunkBudget int
}

// NewService creates a summarization service with the given capability
// and configuration.
func NewService(summarizer Summarizer, tiers *config.Tiers, chunkBudget int) Service {
	return Service{
		Summarizer:  summarizer,
		Tiers:       tiers,
		ChunkBudget: chunkBudget,
	}
}

// Summarize produces a final summary of input at the requested tier.
// Unknown tier names resolve to the medium tier. The resolved tier name
// is returned alongside the summary for response metadata.
//
// Model failures never propagate: a failed direct call falls back to a
// truncated excerpt, and a failed chunk call falls back to that chunk's
// leading characters. Only invalid chunking configuration returns an
// error.
func (s Service) Summarize(ctx context.Context, input, tierName string) (string, config.Tier, error) {
	resolved, params := s.Tiers.Params(tierName)

	summary, err := s.summarize(ctx, input, params)
	if err != nil {
		return "", resolved, err
	}
	return summary, resolved, nil
}

func (s Service) summarize(ctx context.Context, input string, params config.TierParams) (string, error) {
	length := text.CountRunes(input)

	// Very short texts are already their own summary.
	if length < verbatimThreshold {
		metrics.RecordSummarizationMode("verbatim")
		return text.Truncate(input, params.MaxLength), nil
	}

	if length < directThreshold {
		summary, err := s.Summarizer.Summarize(ctx, input, params.MaxLength, params.MinLength)
		if err != nil {
			slog.Warn("direct summarization failed, using truncated excerpt",
				slog.Int("input_length", length),
				slog.String("error", err.Error()))
			metrics.RecordSummarizationFallback("direct")
			return text.Truncate(input, params.MaxLength), nil
		}
		metrics.RecordSummarizationMode("direct")
		return summary, nil
	}

	return s.summarizeChunked(ctx, input, params)
}

func (s Service) summarizeChunked(ctx context.Context, input string, params config.TierParams) (string, error) {
	chunks, err := ChunkText(input, s.ChunkBudget)
	if err != nil {
		return "", err
	}

	if len(chunks) == 0 {
		return EmptySummary, nil
	}

	metrics.RecordSummarizationMode("chunked")
	metrics.RecordChunkCount(len(chunks))

	chunkMax := min(chunkMaxLengthCap, params.MaxLength)
	chunkMin := min(chunkMinLengthCap, params.MinLength)

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if text.CountWords(chunk) < minChunkWords {
			partials = append(partials, chunk)
			continue
		}

		partial, err := s.Summarizer.Summarize(ctx, chunk, chunkMax, chunkMin)
		if err != nil {
			slog.Warn("chunk summarization failed, using truncated chunk",
				slog.Int("chunk_index", i),
				slog.Int("chunk_length", text.CountRunes(chunk)),
				slog.String("error", err.Error()))
			metrics.RecordSummarizationFallback("chunk")
			partials = append(partials, text.Truncate(chunk, chunkFallbackChars))
			continue
		}
		partials = append(partials, partial)
	}

	if len(partials) == 1 {
		return partials[0], nil
	}

	combined := strings.Join(partials, " ")
	return text.Truncate(combined, params.MaxLength), nil
}
