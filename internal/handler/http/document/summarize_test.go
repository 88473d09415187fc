package document

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/config"
	"docsum/internal/infra/extractor"
	"docsum/internal/infra/tokenizer"
	"docsum/internal/usecase/highlight"
	"docsum/internal/usecase/summarize"
)

type stubSummarizer struct{}

func (stubSummarizer) Summarize(_ context.Context, input string, maxLength, _ int) (string, error) {
	runes := []rune(input)
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	return string(runes), nil
}

func newHandler() SummarizeHandler {
	return SummarizeHandler{
		Summarize: summarize.NewService(stubSummarizer{}, config.LoadTiers(), 1200),
		Highlight: highlight.NewService(tokenizer.Select()),
		Extractor: extractor.New(),
		Pipeline:  config.Pipeline{ChunkBudget: 1200, HighlightCount: 5, MaxUploadBytes: 100 << 20},
	}
}

// uploadRequest builds a multipart request with one file part and an
// optional length field.
func uploadRequest(t *testing.T, filename, content, length string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	if length != "" {
		require.NoError(t, mw.WriteField("length", length))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSummarizeHandler_TextUpload(t *testing.T) {
	// Arrange
	h := newHandler()
	content := "The report covers quarterly revenue. Sales grew in every region. " +
		"New product lines contributed most of the growth."
	req := uploadRequest(t, "report.txt", content, "short")
	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Summary)
	assert.Equal(t, "short", resp.Metadata.SummaryType)
	assert.Equal(t, "report.txt", resp.Metadata.FileName)
	assert.Equal(t, len([]rune(content)), resp.Metadata.OriginalLength)
	assert.Equal(t, len(resp.Highlights), resp.Metadata.HighlightCount)
	assert.Equal(t, content, resp.OriginalExcerpt)
}

func TestSummarizeHandler_DefaultsToMedium(t *testing.T) {
	// Arrange
	h := newHandler()
	req := uploadRequest(t, "notes.txt", "A very small note.", "")
	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	var resp SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "medium", resp.Metadata.SummaryType)
}

func TestSummarizeHandler_RepeatedUploadsProduceIdenticalResults(t *testing.T) {
	// Arrange: the stub summarizer is deterministic, so the whole pipeline
	// must return byte-identical responses for the same document.
	h := newHandler()
	content := "Quarterly revenue grew across all regions. The hardware division " +
		"led the growth with record shipments. Operating costs stayed flat " +
		"despite the expanded headcount. Management expects the trend to " +
		"continue into the next quarter."

	run := func() string {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, uploadRequest(t, "report.txt", content, "short"))
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	// Act
	first := run()
	second := run()

	// Assert
	assert.Equal(t, first, second)
}

func TestSummarizeHandler_MissingFile(t *testing.T) {
	// Arrange
	h := newHandler()
	req := uploadRequest(t, "", "", "short")
	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "field 'file'")
	assert.Contains(t, rec.Body.String(), "file is required")
}

func TestSummarizeHandler_UnsupportedExtension(t *testing.T) {
	// Arrange
	h := newHandler()
	req := uploadRequest(t, "report.docx", "content", "")
	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestSummarizeHandler_EmptyDocument(t *testing.T) {
	// Arrange
	h := newHandler()
	req := uploadRequest(t, "empty.txt", "   \n  ", "")
	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no readable text content")
}

func TestSummarizeHandler_CorruptPDF(t *testing.T) {
	// Arrange: a .pdf that is not a PDF at all
	h := newHandler()
	req := uploadRequest(t, "broken.pdf", "definitely not a pdf", "")
	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to extract text")
}

func TestBatchHandler_NotImplemented(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodPost, "/api/batch_summarize", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	// Act
	BatchHandler{}.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Contains(t, rec.Body.String(), "not implemented")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name kept", in: "report.txt", want: "report.txt"},
		{name: "path components stripped", in: "../../etc/passwd.txt", want: "passwd.txt"},
		{name: "windows separators stripped", in: `C:\uploads\q3 report.pdf`, want: "q3_report.pdf"},
		{name: "unicode replaced", in: "レポート.pdf", want: "pdf"},
		{name: "empty after cleaning", in: "***", want: "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}
