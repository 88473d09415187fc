// Package http provides HTTP handlers and middleware for the summarization
// service. It includes the document endpoints, health checks, metrics
// collection, and shared middleware.
package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// serviceName identifies this service in health check responses.
const serviceName = "Document Summarization API"

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Service   string                 `json:"service"`   // Service name
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`            // "healthy", "degraded", or "unhealthy"
	Message string                 `json:"message,omitempty"` // Optional status message
	Details map[string]interface{} `json:"details,omitempty"` // Optional additional details
}

// BreakerStater reports the state of a circuit breaker guarding an
// upstream model API.
type BreakerStater interface {
	IsOpen() bool
	Name() string
}

// HealthHandler handles health check endpoint requests. It reports the
// configured summarization provider and the state of its circuit breaker.
// An open breaker is reported as degraded, not unhealthy: uploads still
// work through the truncation fallbacks.
type HealthHandler struct {
	Version  string
	Provider string // "claude", "openai", or "noop"

	// Breaker is optional; the noop provider has none.
	Breaker BreakerStater
}

// ServeHTTP returns the application health status.
// Returns 200 OK if healthy or degraded, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)

	checks["summarizer"] = h.checkSummarizer()

	status := "healthy"
	statusCode := http.StatusOK
	for _, check := range checks {
		if check.Status == "unhealthy" {
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	response := HealthResponse{
		Status:    status,
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("health: failed to encode response: %v", err)
	}
}

// checkSummarizer reports the provider configuration and breaker state.
func (h *HealthHandler) checkSummarizer() CheckStatus {
	details := map[string]interface{}{
		"provider": h.Provider,
	}

	if h.Provider == "noop" {
		return CheckStatus{
			Status:  "degraded",
			Message: "no model API configured, summaries are truncated excerpts",
			Details: details,
		}
	}

	if h.Breaker != nil {
		details["circuit_breaker"] = h.Breaker.Name()
		if h.Breaker.IsOpen() {
			details["circuit_open"] = true
			return CheckStatus{
				Status:  "degraded",
				Message: "model API circuit breaker open, fallbacks active",
				Details: details,
			}
		}
	}

	return CheckStatus{
		Status:  "healthy",
		Details: details,
	}
}

// LiveHandler handles Kubernetes liveness probe requests.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
