package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics record the behavior of the document summarization
// pipeline: how documents are processed, which summarization mode was
// taken, and how often degradation fallbacks fire. Fallbacks are expected
// behavior under model failure, so they are counted rather than surfaced
// as errors.
var (
	documentsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_processed_total",
			Help: "Total number of documents processed, by file type and result",
		},
		[]string{"file_type", "status"},
	)

	extractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_extraction_duration_seconds",
			Help:    "Time taken to extract text from an uploaded document",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
	)

	summarizationModeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarization_mode_total",
			Help: "Summarization decisions by mode (verbatim, direct, chunked)",
		},
		[]string{"mode"},
	)

	summarizationFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarization_fallbacks_total",
			Help: "Model-call failures absorbed by truncation fallbacks, by stage",
		},
		[]string{"stage"},
	)

	chunksPerDocument = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarization_chunks_per_document",
			Help:    "Number of chunks produced per long document",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		},
	)

	highlightFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "highlight_fallbacks_total",
			Help: "Highlight scoring failures absorbed by the first-k fallback",
		},
	)

	highlightDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "highlight_scoring_duration_seconds",
			Help:    "Time taken to score and rank highlight sentences",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)
)

// RecordDocumentProcessed records the outcome of processing one uploaded document.
func RecordDocumentProcessed(fileType string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	documentsProcessedTotal.WithLabelValues(fileType, status).Inc()
}

// RecordExtractionDuration records the time taken to extract text from a document.
func RecordExtractionDuration(duration time.Duration) {
	extractionDuration.Observe(duration.Seconds())
}

// RecordSummarizationMode records which orchestrator path handled a document.
// Mode is one of "verbatim", "direct", or "chunked".
func RecordSummarizationMode(mode string) {
	summarizationModeTotal.WithLabelValues(mode).Inc()
}

// RecordSummarizationFallback records a model-call failure that was absorbed
// by a truncation fallback. Stage is "direct" or "chunk".
func RecordSummarizationFallback(stage string) {
	summarizationFallbacksTotal.WithLabelValues(stage).Inc()
}

// RecordChunkCount records the number of chunks a long document was split into.
func RecordChunkCount(count int) {
	chunksPerDocument.Observe(float64(count))
}

// RecordHighlightFallback records a highlight scoring failure that was
// absorbed by the first-k fallback.
func RecordHighlightFallback() {
	highlightFallbacksTotal.Inc()
}

// RecordHighlightDuration records the time taken to rank highlight sentences.
func RecordHighlightDuration(duration time.Duration) {
	highlightDuration.Observe(duration.Seconds())
}
