package logging

import (
	"context"
	"log/slog"
	"testing"

	"docsum/internal/handler/http/requestid"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
}

func TestNewLogger_DebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := NewLogger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level to be enabled when LOG_LEVEL=debug")
	}
}

func TestWithRequestID(t *testing.T) {
	base := NewLogger()

	// Without a request ID the logger is returned unchanged
	ctx := context.Background()
	if got := WithRequestID(ctx, base); got != base {
		t.Error("expected same logger when context has no request ID")
	}

	// With a request ID a derived logger is returned
	ctx = requestid.WithRequestID(ctx, "req-123")
	if got := WithRequestID(ctx, base); got == base {
		t.Error("expected derived logger when context carries a request ID")
	}
}

func TestFromContext(t *testing.T) {
	logger := NewTextLogger()
	ctx := WithLogger(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext() did not return the stored logger")
	}

	// Fallback to default logger when nothing stored
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext() returned nil for empty context")
	}
}
