// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for character and word counting
// and length-bounded truncation shared by the extraction, summarization,
// and highlighting pipeline stages.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This function correctly handles multi-byte characters including accented
// letters, CJK text, and emoji by counting runes instead of bytes.
//
// All character limits in the summarization pipeline (tier bounds, chunk
// budgets, fallback truncation) are expressed in runes so that behavior is
// consistent for non-ASCII documents.
//
// Examples:
//
//	CountRunes("hello")    // returns 5 (ASCII text)
//	CountRunes("café")     // returns 4 (accented text)
//	CountRunes("")         // returns 0 (empty string)
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words in the given text.
// Consecutive whitespace is treated as a single separator, matching
// strings.Fields semantics.
//
// The orchestrator uses this to skip summarizing chunks that are too short
// to produce a meaningful abstract.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
