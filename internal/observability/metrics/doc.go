// Package metrics provides Prometheus metrics for the summarization pipeline.
//
// All metrics are registered with the default Prometheus registry via
// promauto and exposed by the /metrics HTTP endpoint. Fallback counters make
// the pipeline's degradation behavior observable: a spike in
// summarization_fallbacks_total or highlight_fallbacks_total indicates model
// or scoring trouble even though requests keep succeeding.
package metrics
