package http

import (
	"fmt"
	"net/http"

	"docsum/internal/handler/http/respond"
)

// FormatsHandler reports which upload formats and summary lengths the
// service accepts, and the upload size cap.
type FormatsHandler struct {
	// MaxUploadBytes is the request body cap enforced by the middleware.
	MaxUploadBytes int64
}

// ServeHTTP returns the supported file extensions, summary tiers, and the
// maximum accepted file size.
func (h FormatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"supported_formats": []string{".pdf", ".txt"},
		"summary_lengths":   []string{"short", "medium", "long"},
		"max_file_size":     fmt.Sprintf("%dMB", h.MaxUploadBytes>>20),
	})
}
