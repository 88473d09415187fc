// Package tracing provides OpenTelemetry tracing integration for HTTP handlers.
//
// The middleware extracts W3C Trace Context headers from incoming requests,
// creates a server span per request, and echoes the trace ID back to clients
// via the X-Trace-Id response header so that log entries, metrics, and traces
// for one document upload can be correlated.
//
// No exporter is configured here; the application uses the OpenTelemetry API
// only, so spans become visible as soon as an SDK tracer provider is
// registered by the operator.
package tracing
