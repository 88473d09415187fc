package summarize

import "strings"

// ChunkText splits text into boundary-respecting chunks of at most budget
// characters. Within each window it prefers splitting after the last
// newline, then after the last ". " sentence end, then after the last
// space; only when no boundary exists does it cut hard at the budget.
// Chunks are trimmed of surrounding whitespace and empty chunks are
// dropped, but scan positions stay contiguous so the untrimmed slices
// reconstruct the input exactly.
//
// Lengths are measured in characters, not bytes, so multibyte text never
// splits mid-rune.
func ChunkText(text string, budget int) ([]string, error) {
	if budget <= 0 {
		return nil, ErrInvalidChunkBudget
	}

	runes := []rune(text)
	n := len(runes)

	var chunks []string
	start := 0

	for start < n {
		end := start + budget
		if end > n {
			end = n
		}

		if end < n {
			splitAt := lastBoundary(runes, start, end)
			if splitAt == -1 {
				splitAt = end
			} else {
				// Keep the boundary character in the current chunk.
				splitAt++
			}
			end = splitAt
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		// Force progress so the loop terminates even if the computed
		// end never moved past the current position.
		if end == start {
			end++
		}
		start = end
	}

	return chunks, nil
}

// lastBoundary returns the index of the preferred split character in
// runes[start:end), or -1 if the window contains no boundary at all.
func lastBoundary(runes []rune, start, end int) int {
	for i := end - 1; i >= start; i-- {
		if runes[i] == '\n' {
			return i
		}
	}
	for i := end - 2; i >= start; i-- {
		if runes[i] == '.' && runes[i+1] == ' ' {
			return i
		}
	}
	for i := end - 1; i >= start; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
