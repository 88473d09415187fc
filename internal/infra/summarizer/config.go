package summarizer

import (
	"fmt"
	"time"
)

// Config is the common shape of provider configuration.
// Both the Claude and OpenAI adapters validate through this interface so
// that misconfiguration fails the same way regardless of provider.
type Config interface {
	// Validate validates the configuration and returns an error if invalid.
	Validate() error
}

const (
	// maxPromptChars caps the text sent in a single model call. The
	// orchestrator's chunking keeps inputs far below this; the cap is a
	// final safety net against token-limit errors.
	maxPromptChars = 10000
)

// buildPrompt constructs the summarization prompt for a single call.
// minLength and maxLength are target bounds in characters; the model is
// instructed to return only the summary text.
func buildPrompt(text string, maxLength, minLength int) string {
	return fmt.Sprintf(
		"Summarize the following text in %d to %d characters. Respond with only the summary, no preamble:\n%s",
		minLength, maxLength, text)
}

// validateCommon checks the fields shared by all provider configurations.
func validateCommon(model string, maxTokens int, timeout time.Duration) error {
	if model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if maxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", maxTokens)
	}
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", timeout)
	}
	return nil
}
