package summarizer

import (
	"log/slog"
	"os"

	"docsum/internal/resilience/circuitbreaker"
	pkgconfig "docsum/pkg/config"
)

// Provider bundles the selected summarization capability with the
// metadata health reporting needs.
type Provider struct {
	Summarizer Summarizer
	Name       string
	Breaker    *circuitbreaker.CircuitBreaker
}

// Select chooses the summarization capability at startup.
//
// SUMMARIZER_PROVIDER forces a provider ("claude", "openai", "noop").
// Without it, selection falls back on API key presence: ANTHROPIC_API_KEY
// first, then OPENAI_API_KEY, then the truncating no-op. The chosen
// capability is wrapped with serialization and rate limiting so a single
// shared instance can back all requests.
func Select() Provider {
	provider := pkgconfig.GetEnvString("SUMMARIZER_PROVIDER", "")

	var selected Provider

	switch provider {
	case "claude":
		c := NewClaude(os.Getenv("ANTHROPIC_API_KEY"))
		selected = Provider{Summarizer: c, Name: "claude", Breaker: c.Breaker()}
	case "openai":
		o := NewOpenAI(os.Getenv("OPENAI_API_KEY"))
		selected = Provider{Summarizer: o, Name: "openai", Breaker: o.Breaker()}
	case "noop":
		selected = Provider{Summarizer: NewNoOp(), Name: "noop"}
	case "":
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			c := NewClaude(key)
			selected = Provider{Summarizer: c, Name: "claude", Breaker: c.Breaker()}
		} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			o := NewOpenAI(key)
			selected = Provider{Summarizer: o, Name: "openai", Breaker: o.Breaker()}
		} else {
			selected = Provider{Summarizer: NewNoOp(), Name: "noop"}
		}
	default:
		slog.Warn("unknown summarizer provider, falling back to truncation",
			slog.String("provider", provider))
		selected = Provider{Summarizer: NewNoOp(), Name: "noop"}
	}

	selected.Summarizer = NewThrottled(NewSerialized(selected.Summarizer))
	return selected
}
