package document

import (
	"net/http"

	"docsum/internal/config"
	"docsum/internal/infra/extractor"
	"docsum/internal/usecase/highlight"
	"docsum/internal/usecase/summarize"
)

// Register registers the document endpoints with the given mux.
func Register(
	mux *http.ServeMux,
	summarizeSvc summarize.Service,
	highlightSvc highlight.Service,
	ext *extractor.Extractor,
	pipeline config.Pipeline,
) {
	mux.Handle("POST /api/summarize", SummarizeHandler{
		Summarize: summarizeSvc,
		Highlight: highlightSvc,
		Extractor: ext,
		Pipeline:  pipeline,
	})
	mux.Handle("POST /api/batch_summarize", BatchHandler{})
}
