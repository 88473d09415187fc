package document

import (
	"net/http"

	"docsum/internal/handler/http/respond"
)

// BatchHandler is the placeholder for multi-document processing.
type BatchHandler struct{}

// ServeHTTP always reports the feature as unavailable.
func (h BatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusNotImplemented, map[string]string{
		"error":   "batch processing not implemented yet",
		"message": "this feature is under development",
	})
}
