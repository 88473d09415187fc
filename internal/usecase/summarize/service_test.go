package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/config"
)

// fakeSummarizer records calls and returns canned results or errors.
type fakeSummarizer struct {
	calls   int
	failAll bool
	result  string
}

func (f *fakeSummarizer) Summarize(_ context.Context, input string, maxLength, _ int) (string, error) {
	f.calls++
	if f.failAll {
		return "", errors.New("model unavailable")
	}
	if f.result != "" {
		return f.result, nil
	}
	// Deterministic stand-in summary bounded by maxLength.
	runes := []rune("summary of: " + input)
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	return string(runes), nil
}

func defaultTiers() *config.Tiers {
	return config.LoadTiers()
}

func TestSummarize_VerbatimForShortText(t *testing.T) {
	// Arrange
	fake := &fakeSummarizer{}
	svc := NewService(fake, defaultTiers(), 1200)
	input := "A short note that needs no model."

	// Act
	summary, resolved, err := svc.Summarize(context.Background(), input, "short")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, input, summary)
	assert.Equal(t, config.TierShort, resolved)
	assert.Zero(t, fake.calls, "short texts must not reach the model")
}

func TestSummarize_UnknownTierResolvesToMedium(t *testing.T) {
	// Arrange
	fake := &fakeSummarizer{}
	svc := NewService(fake, defaultTiers(), 1200)

	// Act
	_, resolved, err := svc.Summarize(context.Background(), "tiny", "extreme")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, config.TierMedium, resolved)
}

func TestSummarize_DirectPath(t *testing.T) {
	// Arrange: between the verbatim and chunking thresholds
	fake := &fakeSummarizer{result: "a concise abstract"}
	svc := NewService(fake, defaultTiers(), 1200)
	input := strings.Repeat("sentence text ", 40)

	// Act
	summary, _, err := svc.Summarize(context.Background(), input, "medium")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "a concise abstract", summary)
	assert.Equal(t, 1, fake.calls)
}

func TestSummarize_DirectFailureFallsBackToExcerpt(t *testing.T) {
	// Arrange
	fake := &fakeSummarizer{failAll: true}
	svc := NewService(fake, defaultTiers(), 1200)
	input := strings.Repeat("sentence text ", 40)

	// Act
	summary, _, err := svc.Summarize(context.Background(), input, "short")

	// Assert: fallback is the input truncated to the tier maximum
	require.NoError(t, err)
	assert.Equal(t, string([]rune(input)[:80]), summary)
}

func TestSummarize_ChunkedPath(t *testing.T) {
	// Arrange: long enough to force chunking, every chunk has >=10 words
	fake := &fakeSummarizer{result: "part"}
	svc := NewService(fake, defaultTiers(), 1200)
	input := strings.Repeat("the quick brown fox jumps over the lazy dog again. ", 60)

	// Act
	summary, _, err := svc.Summarize(context.Background(), input, "long")

	// Assert: partials joined with spaces, bounded by the tier maximum
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fake.calls, 2, "chunked input should trigger multiple model calls")
	assert.True(t, strings.HasPrefix(summary, "part part"))
	assert.LessOrEqual(t, len([]rune(summary)), 300)
}

func TestSummarize_ChunkFailureFallsBackPerChunk(t *testing.T) {
	// Arrange
	fake := &fakeSummarizer{failAll: true}
	svc := NewService(fake, defaultTiers(), 1200)
	input := strings.Repeat("the quick brown fox jumps over the lazy dog again. ", 60)

	// Act
	summary, _, err := svc.Summarize(context.Background(), input, "medium")

	// Assert: each chunk degrades to its first characters, request succeeds
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
	assert.True(t, strings.HasPrefix(summary, "the quick brown fox"))
}

func TestSummarize_ShortChunksPassThrough(t *testing.T) {
	// Arrange: newline-separated fragments shorter than ten words each
	fragment := "tiny fragment line\n"
	input := strings.Repeat(fragment, 150)
	fake := &fakeSummarizer{}
	svc := NewService(fake, defaultTiers(), len(fragment)+2)

	// Act
	summary, _, err := svc.Summarize(context.Background(), input, "medium")

	// Assert: fragments pass straight through the chunk loop
	require.NoError(t, err)
	assert.Zero(t, fake.calls)
	assert.True(t, strings.HasPrefix(summary, "tiny fragment line"))
}

func TestSummarize_WhitespaceOnlyLongInput(t *testing.T) {
	// Arrange: chunking a whitespace run yields no chunks at all
	fake := &fakeSummarizer{}
	svc := NewService(fake, defaultTiers(), 1200)
	input := strings.Repeat(" ", 3000)

	// Act
	summary, _, err := svc.Summarize(context.Background(), input, "medium")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, EmptySummary, summary)
}

func TestSummarize_InvalidChunkBudget(t *testing.T) {
	// Arrange
	fake := &fakeSummarizer{}
	svc := NewService(fake, defaultTiers(), 0)
	input := strings.Repeat("long document body text ", 200)

	// Act
	_, _, err := svc.Summarize(context.Background(), input, "medium")

	// Assert
	assert.ErrorIs(t, err, ErrInvalidChunkBudget)
}
