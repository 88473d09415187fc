// Package summarizer provides AI-powered text summarization implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability patterns.
// Every adapter accepts per-call length bounds so the orchestrator can request
// tighter summaries for individual chunks than for whole documents, with
// comprehensive observability through structured logging and Prometheus metrics.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"docsum/internal/resilience/circuitbreaker"
	"docsum/internal/resilience/retry"
	"docsum/internal/utils/text"
	pkgconfig "docsum/pkg/config"
)

// ClaudeConfig holds configuration parameters for the Claude adapter.
// Configuration is loaded from environment variables with fallback to defaults.
type ClaudeConfig struct {
	// Model is the Claude API model identifier to use for summarization.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// Validate implements the Config interface.
func (c *ClaudeConfig) Validate() error {
	return validateCommon(c.Model, c.MaxTokens, c.Timeout)
}

// LoadClaudeConfig loads configuration from environment variables.
//
// Environment variables:
//   - SUMMARIZER_CLAUDE_MODEL: model identifier (default: claude sonnet)
//   - SUMMARIZER_MAX_TOKENS: response token cap (default: 1024)
//   - SUMMARIZER_TIMEOUT: per-call timeout (default: 60s)
func LoadClaudeConfig() ClaudeConfig {
	return ClaudeConfig{
		Model:     pkgconfig.GetEnvString("SUMMARIZER_CLAUDE_MODEL", string(anthropic.ModelClaudeSonnet4_5_20250929)),
		MaxTokens: pkgconfig.GetEnvInt("SUMMARIZER_MAX_TOKENS", 1024),
		Timeout:   pkgconfig.GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}
}

// Claude implements summarization using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          ClaudeConfig
	metricsRecorder MetricsRecorder
}

// NewClaude creates a new Claude adapter with the given API key.
// It automatically configures circuit breaker, retry logic, and metrics recording.
func NewClaude(apiKey string) *Claude {
	config := LoadClaudeConfig()

	slog.Info("initialized claude summarizer",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens),
		slog.Duration("timeout", config.Timeout))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Breaker exposes the circuit breaker for health reporting.
func (c *Claude) Breaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}

// Summarize generates a summary of the given text between minLength and
// maxLength characters using Claude. It uses circuit breaker and retry
// logic; callers are expected to apply their own fallback when it fails.
func (c *Claude) Summarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doSummarize(ctx, input, maxLength, minLength)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("claude summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (c *Claude) doSummarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	// Unique ID for correlating the log lines of one model call
	callID := uuid.New().String()

	truncated := input
	if text.CountRunes(input) > maxPromptChars {
		truncated = text.Truncate(input, maxPromptChars)
		slog.Warn("input truncated for claude api",
			slog.String("call_id", callID),
			slog.Int("original_length", text.CountRunes(input)),
			slog.Int("truncated_length", maxPromptChars))
	}

	prompt := buildPrompt(truncated, maxLength, minLength)

	slog.InfoContext(ctx, "starting summarization",
		slog.String("call_id", callID),
		slog.Int("input_length", text.CountRunes(truncated)),
		slog.Int("max_length", maxLength),
		slog.Int("min_length", minLength))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "summarization failed",
			slog.String("call_id", callID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "claude api returned empty response",
			slog.String("call_id", callID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "claude api returned unexpected response type",
			slog.String("call_id", callID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	summary := textBlock.Text
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= maxLength

	slog.InfoContext(ctx, "summarization completed",
		slog.String("call_id", callID),
		slog.Int("summary_length", summaryLength),
		slog.Int("max_length", maxLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordLength(summaryLength)
	c.metricsRecorder.RecordDuration(duration)
	c.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		c.metricsRecorder.RecordLimitExceeded()
	}

	return summary, nil
}
