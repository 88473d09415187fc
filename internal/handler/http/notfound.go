package http

import (
	"net/http"

	"docsum/internal/handler/http/respond"
)

// NotFoundHandler returns a JSON 404 for any route the mux does not know.
type NotFoundHandler struct{}

// ServeHTTP writes the JSON not-found response.
func (h NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusNotFound, map[string]string{
		"error": "endpoint not found",
	})
}
