package cmd

import (
	"fmt"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/question"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/abhisek/quizforge/internal/tracker"
	"github.com/spf13/cobra"
)

// openStore opens the SQLite event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openTracker opens the quiz history tracker at the resolved path.
func openTracker(cmd *cobra.Command) (*tracker.Tracker, error) {
	historyPath, err := resolveHistoryPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve history path: %w", err)
	}
	return tracker.Open(historyPath), nil
}

// buildGenerator opens the store and constructs an LLM-backed generator.
// The returned cleanup closes the store and must be deferred by the caller.
func buildGenerator(cmd *cobra.Command) (*quizgen.Generator, func(), error) {
	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), s.EventRepo())
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	return gen, func() { s.Close() }, nil
}

// parseKind maps the --type flag to a question kind.
func parseKind(s string) (question.Kind, error) {
	switch s {
	case "choice", "multiple-choice", "mc":
		return question.KindChoice, nil
	case "blank", "fill-blank", "fb":
		return question.KindBlank, nil
	default:
		return "", fmt.Errorf("unknown question type %q (want choice or blank)", s)
	}
}
