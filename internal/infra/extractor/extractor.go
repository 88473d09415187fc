// Package extractor converts uploaded document payloads into plain text.
// It supports PDF documents (per-page text extraction) and plain-text files
// (UTF-8 decoding that drops undecodable byte sequences).
package extractor

import (
	"fmt"
	"strings"

	"docsum/internal/domain/entity"
)

// Extractor turns a raw document payload into a single decoded text string.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract produces the text content of the payload according to its declared
// file type. Parse and decode failures wrap entity.ErrExtraction.
//
// Extract never judges emptiness: a well-formed PDF with no extractable text
// yields an empty string and a nil error. Callers decide whether empty
// content is acceptable (the HTTP handler rejects it with IsEmpty).
func (e *Extractor) Extract(payload []byte, fileType entity.FileType) (string, error) {
	switch fileType {
	case entity.FileTypePDF:
		return extractPDF(payload)
	case entity.FileTypeText:
		return extractPlainText(payload), nil
	default:
		return "", fmt.Errorf("%w: unsupported file type %q", entity.ErrInvalidInput, fileType)
	}
}

// IsEmpty reports whether extracted text contains no readable content.
// Whitespace-only text counts as empty.
func IsEmpty(text string) bool {
	return strings.TrimSpace(text) == ""
}
