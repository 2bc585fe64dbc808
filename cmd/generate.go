package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/quizforge/internal/question"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate quiz questions for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")

		req, err := buildRequest(cmd, topic)
		if err != nil {
			return err
		}

		gen, cleanup, err := buildGenerator(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		questions := gen.GenerateBatch(cmd.Context(), req, count)
		if len(questions) == 0 {
			return fmt.Errorf("no questions could be generated for %q", topic)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(questions)
		}

		for i, q := range questions {
			printQuestion(i+1, q)
			fmt.Printf("   Answer: %s\n\n", q.Answer)
		}
		if len(questions) < count {
			fmt.Printf("Generated %d of %d requested questions.\n", len(questions), count)
		}
		return nil
	},
}

// buildRequest assembles a generation request from the shared
// topic/difficulty/type flags.
func buildRequest(cmd *cobra.Command, topic string) (quizgen.Request, error) {
	diffFlag, _ := cmd.Flags().GetString("difficulty")
	kindFlag, _ := cmd.Flags().GetString("type")

	difficulty, err := quizgen.ParseDifficulty(diffFlag)
	if err != nil {
		return quizgen.Request{}, err
	}
	kind, err := parseKind(kindFlag)
	if err != nil {
		return quizgen.Request{}, err
	}

	return quizgen.Request{
		Topic:      topic,
		Difficulty: difficulty,
		Kind:       kind,
	}, nil
}

func printQuestion(number int, q *question.Question) {
	fmt.Printf("%d. %s\n", number, q.Text)
	if q.Kind == question.KindChoice {
		for j, opt := range q.Options {
			fmt.Printf("   %c) %s\n", 'A'+j, opt)
		}
	}
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic to generate questions about")
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, or hard")
	generateCmd.Flags().String("type", "choice", "Question type: choice or blank")
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions to generate")
	generateCmd.Flags().Bool("json", false, "Print questions as JSON instead of text")
}
