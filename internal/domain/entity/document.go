// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects of the summarization pipeline: the
// extracted document, the highlight sentences, and the summary result, along with
// their validation rules and domain-specific errors.
package entity

// FileType identifies the declared type of an uploaded document.
type FileType string

const (
	// FileTypePDF is a PDF document whose pages are extracted in order.
	FileTypePDF FileType = "pdf"
	// FileTypeText is a plain-text document decoded as UTF-8.
	FileTypeText FileType = "txt"
)

// Valid reports whether the file type is one the extractor supports.
func (t FileType) Valid() bool {
	return t == FileTypePDF || t == FileTypeText
}

// Highlight is a sentence from the original document judged relevant to the
// generated summary. Index is the sentence's 0-based position in order of
// appearance; Score is the combined similarity and position weight.
type Highlight struct {
	Index    int     `json:"index"`
	Sentence string  `json:"sentence"`
	Score    float64 `json:"score"`
}

// SummaryResult is the complete output of the pipeline for one document.
type SummaryResult struct {
	Summary    string
	Highlights []Highlight

	// OriginalLength is the extracted document length in runes.
	OriginalLength int
	// SummaryLength is the summary length in runes.
	SummaryLength int
}
