package cmd

import (
	"os"
	"path/filepath"

	"github.com/abhisek/quizforge/internal/logger"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "AI quiz generator and study tracker",
	Long:  "QuizForge — generate multiple-choice and fill-in-the-blank quizzes with an LLM, run them in the terminal, and track performance over time.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitializeFromEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFORGE_DB env var)")
	rootCmd.PersistentFlags().String("history", "", "Path to quiz history JSON file (overrides QUIZFORGE_HISTORY env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveHistoryPath returns the quiz history path using --history flag,
// then QUIZFORGE_HISTORY env var, then the default XDG path.
func resolveHistoryPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("history"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("QUIZFORGE_HISTORY"); p != "" {
		return p, store.EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(dataHome, "quizforge", "history.json")
	return p, store.EnsureDir(p)
}
