package summarizer

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	pkgconfig "docsum/pkg/config"
)

// Throttled wraps a summarizer with a token bucket rate limiter so chunked
// documents do not burst dozens of model calls at once. Waits respect the
// caller's context deadline.
type Throttled struct {
	inner   Summarizer
	limiter *rate.Limiter
}

// NewThrottled wraps the given summarizer with a rate limiter.
//
// Environment variables:
//   - SUMMARIZER_RATE_PER_SEC: sustained calls per second (default: 2)
//   - SUMMARIZER_RATE_BURST: burst size (default: 4)
func NewThrottled(inner Summarizer) *Throttled {
	perSec := pkgconfig.GetEnvInt("SUMMARIZER_RATE_PER_SEC", 2)
	burst := pkgconfig.GetEnvInt("SUMMARIZER_RATE_BURST", 4)
	if perSec <= 0 {
		perSec = 2
	}
	if burst <= 0 {
		burst = 4
	}

	slog.Info("summarizer rate limit configured",
		slog.Int("per_second", perSec),
		slog.Int("burst", burst))

	return &Throttled{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSec), burst),
	}
}

// Summarize blocks until the rate limiter admits the call, then delegates.
func (t *Throttled) Summarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("summarizer rate limit wait: %w", err)
	}
	return t.inner.Summarize(ctx, input, maxLength, minLength)
}
