package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/question"
)

// Difficulty calibrates how demanding a generated question should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes a user-supplied difficulty label.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium, or hard)", s)
	}
}

// Request holds all context needed to generate one question. It is built
// once by the caller and never mutated by the engine.
type Request struct {
	// Topic is the subject matter for topic-only generation.
	Topic string

	// Context carries retrieved document chunks for grounded generation.
	// When non-empty, Query replaces Topic as the subject.
	Context string

	// Query is the subject within the document context.
	Query string

	// Difficulty is the target difficulty level.
	Difficulty Difficulty

	// Kind selects the question variant to generate.
	Kind question.Kind
}

// Grounded reports whether this request carries document context.
func (r Request) Grounded() bool {
	return r.Context != ""
}

// subject returns the topic label used in prompts and logs.
func (r Request) subject() string {
	if r.Grounded() {
		return r.Query
	}
	return r.Topic
}
