package summarizer

import (
	"context"
	"sync"
)

// Summarizer is the capability the wrappers in this package decorate.
// It matches the interface declared by the summarize usecase.
type Summarizer interface {
	Summarize(ctx context.Context, input string, maxLength, minLength int) (string, error)
}

// Serialized wraps a summarizer that is not safe for concurrent use and
// allows at most one in-flight call. HTTP handlers run on separate
// goroutines, so every request for the shared capability funnels through
// the same mutex.
type Serialized struct {
	mu    sync.Mutex
	inner Summarizer
}

// NewSerialized wraps the given summarizer with a mutual exclusion guard.
func NewSerialized(inner Summarizer) *Serialized {
	return &Serialized{inner: inner}
}

// Summarize delegates to the wrapped summarizer while holding the lock.
func (s *Serialized) Summarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Summarize(ctx, input, maxLength, minLength)
}
