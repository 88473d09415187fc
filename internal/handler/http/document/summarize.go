package document

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"docsum/internal/config"
	"docsum/internal/domain/entity"
	"docsum/internal/handler/http/respond"
	"docsum/internal/infra/extractor"
	"docsum/internal/observability/logging"
	"docsum/internal/observability/metrics"
	"docsum/internal/usecase/highlight"
	"docsum/internal/usecase/summarize"
	"docsum/internal/utils/text"
)

// excerptChars is how much of the extracted text is echoed back to the
// client for display next to the highlights.
const excerptChars = 2000

// unsafeFilenameChars matches everything that is stripped from uploaded
// filenames before they are echoed in responses or logs.
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SummarizeHandler accepts a multipart document upload and returns its
// summary with highlight sentences.
type SummarizeHandler struct {
	Summarize summarize.Service
	Highlight highlight.Service
	Extractor *extractor.Extractor
	Pipeline  config.Pipeline
}

// ServeHTTP processes a document upload.
//
// Request: multipart/form-data with a "file" part (.pdf or .txt) and an
// optional "length" field (short, medium, long; default medium).
// Responses: 200 with the summary payload, 400 for client mistakes,
// 413 for oversized uploads, 500 for pipeline failures.
func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	file, header, err := r.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			respond.SafeError(w, http.StatusRequestEntityTooLarge,
				errors.New("file size too large"))
			return
		}
		respond.SafeError(w, http.StatusBadRequest,
			&entity.ValidationError{Field: "file", Message: "file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		respond.SafeError(w, http.StatusBadRequest,
			&entity.ValidationError{Field: "file", Message: "file is required"})
		return
	}

	fileType, ok := fileTypeFromName(header.Filename)
	if !ok {
		respond.SafeError(w, http.StatusBadRequest,
			&entity.ValidationError{
				Field:   "file",
				Message: "unsupported file type, supported formats: pdf, txt",
			})
		return
	}

	tierName := r.FormValue("length")

	logger.InfoContext(r.Context(), "processing document",
		slog.String("file_name", sanitizeFilename(header.Filename)),
		slog.String("file_type", string(fileType)),
		slog.String("length", tierName),
		slog.Int64("size_bytes", header.Size))

	payload, err := io.ReadAll(file)
	if err != nil {
		if isBodyTooLarge(err) {
			metrics.RecordDocumentProcessed(string(fileType), false)
			respond.SafeError(w, http.StatusRequestEntityTooLarge,
				errors.New("file size too large"))
			return
		}
		metrics.RecordDocumentProcessed(string(fileType), false)
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid file upload"))
		return
	}

	extractStart := time.Now()
	content, err := h.Extractor.Extract(payload, fileType)
	metrics.RecordExtractionDuration(time.Since(extractStart))
	if err != nil {
		metrics.RecordDocumentProcessed(string(fileType), false)
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest,
				"failed to extract text from file", err))
		return
	}

	if extractor.IsEmpty(content) {
		metrics.RecordDocumentProcessed(string(fileType), false)
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest,
				"no readable text content found in the document",
				entity.ErrEmptyContent))
		return
	}

	summary, resolvedTier, err := h.Summarize.Summarize(r.Context(), content, tierName)
	if err != nil {
		metrics.RecordDocumentProcessed(string(fileType), false)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	result := entity.SummaryResult{
		Summary:        summary,
		Highlights:     h.Highlight.TopK(content, summary, h.Pipeline.HighlightCount),
		OriginalLength: text.CountRunes(content),
		SummaryLength:  text.CountRunes(summary),
	}

	metrics.RecordDocumentProcessed(string(fileType), true)

	respond.JSON(w, http.StatusOK, newSummarizeResponse(
		result,
		text.Truncate(content, excerptChars),
		sanitizeFilename(header.Filename),
		string(resolvedTier),
	))
}

// fileTypeFromName maps a filename extension to a supported file type.
func fileTypeFromName(name string) (entity.FileType, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return entity.FileTypePDF, true
	case ".txt":
		return entity.FileTypeText, true
	default:
		return "", false
	}
}

// sanitizeFilename strips directory components and unsafe characters so
// client-controlled names are safe to echo back and log.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	cleaned := unsafeFilenameChars.ReplaceAllString(base, "_")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return "upload"
	}
	return cleaned
}

// isBodyTooLarge reports whether the error came from the request body cap.
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
