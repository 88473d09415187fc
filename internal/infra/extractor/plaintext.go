package extractor

import "bytes"

// extractPlainText decodes the payload as UTF-8, dropping invalid byte
// sequences instead of failing. Documents saved in legacy encodings lose
// the affected bytes but still produce usable text.
func extractPlainText(payload []byte) string {
	return string(bytes.ToValidUTF8(payload, nil))
}
