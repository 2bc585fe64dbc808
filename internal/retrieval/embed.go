package retrieval

import (
	"context"
	"hash/fnv"
	"strings"
)

// Embedder turns text into a fixed-length numeric vector for similarity
// ranking. Implementations must return vectors of a consistent dimension.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// hashDimension is the vector length of the fallback embedder.
const hashDimension = 300

// HashEmbedder is the fallback embedding scheme: a bag of hashed words.
// Each lowercase whitespace token increments the slot at hash(token) mod
// the dimension. Crude and collision-prone; it exists so the retriever
// works without any external embedding service, and it is not a substitute
// for a real embedding model.
type HashEmbedder struct{}

func (HashEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, hashDimension)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%hashDimension]++
	}
	return vec, nil
}
