package retrieval

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/abhisek/quizforge/internal/logger"
)

// ErrNoIndex is returned by Query when no document has been indexed.
// Retrying is pointless without new data, so this surfaces immediately.
var ErrNoIndex = errors.New("no documents indexed: load a document first")

// ScoredChunk pairs a text chunk with its similarity to the query.
type ScoredChunk struct {
	Chunk string
	Score float64
}

// Retriever ranks document chunks by cosine similarity to a query.
// An instance owns one index at a time; Index replaces it wholesale.
// Not safe for concurrent use.
type Retriever struct {
	embedder Embedder
	chunks   []string
	vectors  [][]float64
}

// NewRetriever creates a Retriever with the given embedder.
// A nil embedder falls back to the hash-based scheme.
func NewRetriever(embedder Embedder) *Retriever {
	if embedder == nil {
		embedder = HashEmbedder{}
	}
	return &Retriever{embedder: embedder}
}

// Index builds a fresh index over the given chunks, discarding any prior
// index even if embedding fails partway through.
func (r *Retriever) Index(ctx context.Context, chunks []string) error {
	r.chunks = nil
	r.vectors = nil

	if len(chunks) == 0 {
		return fmt.Errorf("no chunks provided")
	}

	vectors := make([][]float64, len(chunks))
	for i, chunk := range chunks {
		vec, err := r.embedder.Embed(ctx, chunk)
		if err != nil {
			return fmt.Errorf("embed chunk %d: %w", i, err)
		}
		vectors[i] = vec
	}

	r.chunks = chunks
	r.vectors = vectors

	logger.Get().Info("indexed document", zap.Int("chunks", len(chunks)))
	return nil
}

// Query returns up to topK chunks ranked by descending similarity to text.
// Chunks with similarity <= 0 are dropped, so fewer than topK results
// (including none) is possible. Returns ErrNoIndex when nothing is indexed.
func (r *Retriever) Query(ctx context.Context, text string, topK int) ([]ScoredChunk, error) {
	if len(r.chunks) == 0 {
		return nil, ErrNoIndex
	}

	queryVec, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored := make([]ScoredChunk, len(r.chunks))
	for i, chunk := range r.chunks {
		scored[i] = ScoredChunk{
			Chunk: chunk,
			Score: cosineSimilarity(queryVec, r.vectors[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	var results []ScoredChunk
	for _, sc := range scored {
		if sc.Score <= 0 {
			break
		}
		results = append(results, sc)
		if len(results) == topK {
			break
		}
	}

	logger.Get().Debug("retrieval query",
		zap.Int("top_k", topK),
		zap.Int("results", len(results)),
	)
	return results, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 when either vector has zero norm, avoiding division by zero.
func cosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
