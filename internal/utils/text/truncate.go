package text

// Truncate returns s cut to at most limit runes.
// If s already fits within the limit, it is returned unchanged.
// A non-positive limit returns the empty string.
//
// The pipeline relies on Truncate for every degradation path: verbatim
// short-text summaries, per-chunk fallbacks, and the final joined summary.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
