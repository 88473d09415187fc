package extractor

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"docsum/internal/domain/entity"
)

// extractPDF extracts text from a PDF payload, page by page in order.
// Page texts are joined with a newline separator. Pages that yield no
// extractable text (scanned images, empty pages) contribute nothing and are
// not treated as errors; only a failure to open the document itself is.
func extractPDF(payload []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", entity.ErrExtraction, err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Single unreadable page is not fatal; the rest of the
			// document may still summarize fine.
			slog.Warn("failed to extract pdf page, skipping",
				slog.Int("page", pageNum),
				slog.String("error", err.Error()))
			continue
		}

		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
