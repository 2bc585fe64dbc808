package retrieval

import "strings"

const (
	// DefaultChunkSize is the sliding window size in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is how many characters consecutive chunks share.
	DefaultChunkOverlap = 200
)

// Chunk splits text into overlapping fixed-size windows. The step between
// window starts is size-overlap; a trailing partial chunk is kept when it
// is non-empty after trimming.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 5
	}

	step := size - overlap

	// Window bounds are in characters, not bytes, so multi-byte text never
	// gets a rune split across chunks.
	runes := []rune(text)

	var chunks []string
	for i := 0; i < len(runes); i += step {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunk := string(runes[i:end])
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
