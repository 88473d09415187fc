package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"docsum/internal/resilience/circuitbreaker"
	"docsum/internal/resilience/retry"
	"docsum/internal/utils/text"
	pkgconfig "docsum/pkg/config"
)

// OpenAIConfig holds configuration parameters for the OpenAI adapter.
type OpenAIConfig struct {
	// Model is the chat completion model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// Validate implements the Config interface.
func (c *OpenAIConfig) Validate() error {
	return validateCommon(c.Model, c.MaxTokens, c.Timeout)
}

// LoadOpenAIConfig loads configuration from environment variables.
//
// Environment variables:
//   - SUMMARIZER_OPENAI_MODEL: model identifier (default: gpt-4o-mini)
//   - SUMMARIZER_MAX_TOKENS: response token cap (default: 1024)
//   - SUMMARIZER_TIMEOUT: per-call timeout (default: 60s)
func LoadOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model:     pkgconfig.GetEnvString("SUMMARIZER_OPENAI_MODEL", openai.GPT4oMini),
		MaxTokens: pkgconfig.GetEnvInt("SUMMARIZER_MAX_TOKENS", 1024),
		Timeout:   pkgconfig.GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}
}

// OpenAI implements summarization using OpenAI's chat completion API.
// It mirrors the Claude adapter's reliability patterns so the two are
// interchangeable at startup.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          OpenAIConfig
	metricsRecorder MetricsRecorder
}

// NewOpenAI creates a new OpenAI adapter with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	config := LoadOpenAIConfig()

	slog.Info("initialized openai summarizer",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens),
		slog.Duration("timeout", config.Timeout))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Breaker exposes the circuit breaker for health reporting.
func (o *OpenAI) Breaker() *circuitbreaker.CircuitBreaker {
	return o.circuitBreaker
}

// Summarize generates a summary of the given text between minLength and
// maxLength characters using OpenAI chat completions.
func (o *OpenAI) Summarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doSummarize(ctx, input, maxLength, minLength)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("openai summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

func (o *OpenAI) doSummarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	callID := uuid.New().String()

	truncated := input
	if text.CountRunes(input) > maxPromptChars {
		truncated = text.Truncate(input, maxPromptChars)
		slog.Warn("input truncated for openai api",
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

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "summarization failed",
			slog.String("call_id", callID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "openai api returned empty response",
			slog.String("call_id", callID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("openai api returned empty response")
	}

	summary := resp.Choices[0].Message.Content
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= maxLength

	slog.InfoContext(ctx, "summarization completed",
		slog.String("call_id", callID),
		slog.Int("summary_length", summaryLength),
		slog.Int("max_length", maxLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	o.metricsRecorder.RecordLength(summaryLength)
	o.metricsRecorder.RecordDuration(duration)
	o.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		o.metricsRecorder.RecordLimitExceeded()
	}

	return summary, nil
}
