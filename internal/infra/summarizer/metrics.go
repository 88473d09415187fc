package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder defines the interface for recording summarization metrics.
// This interface abstracts the metrics recording implementation, enabling:
//   - Mocking in unit tests (inject mock recorder instead of Prometheus)
//   - Swapping metrics systems without touching the adapters
//   - Reusability across providers (Claude, OpenAI)
type MetricsRecorder interface {
	// RecordLength records the length of a generated summary in characters.
	RecordLength(length int)

	// RecordLimitExceeded increments the counter when a summary exceeds the
	// requested maximum length.
	RecordLimitExceeded()

	// RecordCompliance records whether a summary stayed within the requested
	// maximum length. Used to calculate the compliance ratio gauge.
	RecordCompliance(withinLimit bool)

	// RecordDuration records the time taken by one model call.
	RecordDuration(duration time.Duration)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
// This is the production implementation.
type PrometheusMetrics struct {
	lengthHistogram   prometheus.Histogram
	exceededCounter   prometheus.Counter
	complianceGauge   prometheus.Gauge
	durationHistogram prometheus.Histogram

	mu     sync.Mutex
	total  int64
	within int64
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist.
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist.
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// getOrCreateGauge gets an existing gauge or creates a new one if it doesn't exist.
func getOrCreateGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	if err := prometheus.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge)
		}
		return promauto.NewGauge(opts)
	}
	return g
}

// NewPrometheusMetrics creates a new Prometheus-based metrics recorder.
// Uses a singleton to avoid duplicate metric registration when multiple
// adapters are constructed (e.g., during provider fallback at startup).
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			lengthHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "document_summary_length_characters",
				Help:    "Distribution of model summary lengths in characters (Unicode runes)",
				Buckets: []float64{20, 50, 80, 120, 180, 250, 300, 500},
			}),
			exceededCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "document_summary_limit_exceeded_total",
				Help: "Total number of model summaries exceeding the requested maximum length",
			}),
			complianceGauge: getOrCreateGauge(prometheus.GaugeOpts{
				Name: "document_summary_length_compliance_ratio",
				Help: "Ratio of model summaries within the requested maximum length",
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "document_summary_model_call_duration_seconds",
				Help:    "Time taken by a single summarization model call",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength records the length of a generated summary in characters.
func (m *PrometheusMetrics) RecordLength(length int) {
	m.lengthHistogram.Observe(float64(length))
}

// RecordLimitExceeded increments the limit-exceeded counter.
func (m *PrometheusMetrics) RecordLimitExceeded() {
	m.exceededCounter.Inc()
}

// RecordCompliance updates the compliance ratio gauge.
func (m *PrometheusMetrics) RecordCompliance(withinLimit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	if withinLimit {
		m.within++
	}
	m.complianceGauge.Set(float64(m.within) / float64(m.total))
}

// RecordDuration records the time taken by one model call.
func (m *PrometheusMetrics) RecordDuration(duration time.Duration) {
	m.durationHistogram.Observe(duration.Seconds())
}

// NoOpMetrics implements MetricsRecorder without recording anything.
// Useful in tests that exercise the adapters directly.
type NoOpMetrics struct{}

// RecordLength does nothing.
func (NoOpMetrics) RecordLength(int) {}

// RecordLimitExceeded does nothing.
func (NoOpMetrics) RecordLimitExceeded() {}

// RecordCompliance does nothing.
func (NoOpMetrics) RecordCompliance(bool) {}

// RecordDuration does nothing.
func (NoOpMetrics) RecordDuration(time.Duration) {}
