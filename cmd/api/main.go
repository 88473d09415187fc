package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docsum/internal/config"
	hhttp "docsum/internal/handler/http"
	hdocument "docsum/internal/handler/http/document"
	"docsum/internal/handler/http/requestid"
	"docsum/internal/infra/extractor"
	"docsum/internal/infra/summarizer"
	"docsum/internal/infra/tokenizer"
	"docsum/internal/observability/logging"
	"docsum/internal/observability/tracing"
	"docsum/internal/usecase/highlight"
	"docsum/internal/usecase/summarize"
	pkgconfig "docsum/pkg/config"
)

func main() {
	logger := initLogger()

	version := getVersion()
	handler := setupServer(logger, version)

	runServer(logger, handler, version)
}

// initLogger initializes the shared structured logger and installs it as
// the process default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer builds the pipeline services and returns the HTTP handler
// with all routes and middleware applied.
func setupServer(logger *slog.Logger, version string) http.Handler {
	tiers := config.LoadTiers()
	pipeline := config.LoadPipeline()

	// Shared across all requests. The provider wrapper already serializes
	// and throttles access to the model API.
	provider := summarizer.Select()

	summarizeSvc := summarize.NewService(provider.Summarizer, tiers, pipeline.ChunkBudget)
	highlightSvc := highlight.NewService(tokenizer.Select())

	mux := http.NewServeMux()

	hdocument.Register(mux, summarizeSvc, highlightSvc, extractor.New(), pipeline)

	healthHandler := &hhttp.HealthHandler{
		Version:  version,
		Provider: provider.Name,
	}
	if provider.Breaker != nil {
		healthHandler.Breaker = provider.Breaker
	}
	mux.Handle("GET /api/health", healthHandler)
	mux.Handle("GET /api/supported_formats", hhttp.FormatsHandler{
		MaxUploadBytes: pipeline.MaxUploadBytes,
	})
	mux.Handle("GET /healthz", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/", hhttp.NotFoundHandler{})

	return applyMiddleware(logger, mux, pipeline)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Tracing → Recovery →
// Logging → Input Validation → Body Limit → Timeout → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, pipeline config.Pipeline) http.Handler {
	allowedOrigins := pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"})
	requestTimeout := pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", 5*time.Minute)

	logger.Info("http middleware configured",
		slog.Any("cors_allowed_origins", allowedOrigins),
		slog.Int64("max_upload_bytes", pipeline.MaxUploadBytes),
		slog.Duration("request_timeout", requestTimeout))

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.LimitRequestBody(pipeline.MaxUploadBytes)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(allowedOrigins)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := pkgconfig.GetEnvString("LISTEN_ADDR", ":8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
