package tokenizer

import "regexp"

// sentenceEnd matches a terminal punctuation mark followed by whitespace.
// The split keeps the punctuation with the preceding sentence.
var sentenceEnd = regexp.MustCompile(`[.!?][\s]+`)

// Regex is a heuristic sentence splitter that cuts after '.', '!' or '?'
// followed by whitespace. It mis-splits abbreviations but requires no model
// data, which makes it the safe fallback implementation.
type Regex struct{}

// NewRegex creates a regex-based sentence splitter.
func NewRegex() *Regex {
	return &Regex{}
}

// Split returns the sentences of text in order of appearance.
func (r *Regex) Split(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	prev := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		// Keep the punctuation character, drop the trailing whitespace.
		out = append(out, text[prev:loc[0]+1])
		prev = loc[1]
	}
	if prev < len(text) {
		out = append(out, text[prev:])
	}
	return out
}
