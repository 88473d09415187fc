package summarize

import "errors"

// ErrInvalidChunkBudget indicates the chunker was configured with a
// non-positive character budget. This is a caller bug, not a model
// failure, so it is surfaced instead of absorbed by a fallback.
var ErrInvalidChunkBudget = errors.New("chunk budget must be positive")
