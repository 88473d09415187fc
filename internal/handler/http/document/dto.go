// Package document provides HTTP handlers for the document summarization
// endpoints, including the multipart upload handler and the batch placeholder.
package document

import "docsum/internal/domain/entity"

// SummarizeResponse is the JSON structure returned for a summarized document.
type SummarizeResponse struct {
	Summary         string             `json:"summary"`
	Highlights      []entity.Highlight `json:"highlights"`
	OriginalExcerpt string             `json:"original_excerpt"`
	Metadata        Metadata           `json:"metadata"`
}

// Metadata describes the processed document and the pipeline parameters used.
type Metadata struct {
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
	HighlightCount int    `json:"highlight_count"`
	FileName       string `json:"file_name"`
	SummaryType    string `json:"summary_type"`
}

// newSummarizeResponse maps a pipeline result onto the response structure.
func newSummarizeResponse(result entity.SummaryResult, excerpt, fileName, summaryType string) SummarizeResponse {
	return SummarizeResponse{
		Summary:         result.Summary,
		Highlights:      result.Highlights,
		OriginalExcerpt: excerpt,
		Metadata: Metadata{
			OriginalLength: result.OriginalLength,
			SummaryLength:  result.SummaryLength,
			HighlightCount: len(result.Highlights),
			FileName:       fileName,
			SummaryType:    summaryType,
		},
	}
}
