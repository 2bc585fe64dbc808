package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/quizforge/internal/question"
	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run an interactive quiz and record the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		count, _ := cmd.Flags().GetInt("count")
		csvPath, _ := cmd.Flags().GetString("csv")

		req, err := buildRequest(cmd, topic)
		if err != nil {
			return err
		}

		gen, cleanup, err := buildGenerator(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		fmt.Printf("Generating %d %s questions on %q...\n\n", count, req.Difficulty, topic)
		questions := gen.GenerateBatch(cmd.Context(), req, count)
		if len(questions) == 0 {
			return fmt.Errorf("no questions could be generated for %q", topic)
		}

		mgr := quiz.NewManager(topic, string(req.Difficulty), questions)
		if err := runSession(mgr); err != nil {
			return err
		}

		t, err := openTracker(cmd)
		if err != nil {
			return err
		}

		results, attempt, err := mgr.Record(t)
		printResults(results, attempt.Accuracy)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not save quiz history:", err)
		}

		if csvPath != "" {
			if err := exportCSV(csvPath, results); err != nil {
				return err
			}
			fmt.Printf("Results written to %s\n", csvPath)
		}
		return nil
	},
}

// runSession prompts for an answer to each question on stdin.
func runSession(mgr *quiz.Manager) error {
	scanner := bufio.NewScanner(os.Stdin)

	for i := 0; i < mgr.Len(); i++ {
		q := mgr.Question(i)
		printQuestion(i+1, q)

		prompt := "Your answer: "
		if q.Kind == question.KindChoice {
			prompt = "Your answer (A-D or text): "
		}
		fmt.Print(prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return fmt.Errorf("input closed before quiz finished")
		}

		answer := strings.TrimSpace(scanner.Text())
		if q.Kind == question.KindChoice {
			answer = resolveChoice(q, answer)
		}
		if err := mgr.Answer(i, answer); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// resolveChoice maps a single letter A-D to the option text; anything else
// passes through as a literal answer.
func resolveChoice(q *question.Question, answer string) string {
	if len(answer) != 1 {
		return answer
	}
	idx := int(answer[0]|0x20) - 'a'
	if idx >= 0 && idx < len(q.Options) {
		return q.Options[idx]
	}
	return answer
}

func printResults(results []quiz.Result, accuracy float64) {
	fmt.Println(strings.Repeat("─", 60))
	correct := 0
	for _, r := range results {
		mark := "✗"
		if r.Correct {
			mark = "✓"
			correct++
		}
		fmt.Printf("%s %d. %s\n", mark, r.Number, r.Question)
		if !r.Correct {
			fmt.Printf("    Your answer:    %s\n", r.UserAnswer)
			fmt.Printf("    Correct answer: %s\n", r.CorrectAnswer)
		}
	}
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("Score: %d/%d (%.1f%%)\n", correct, len(results), accuracy)
}

func exportCSV(path string, results []quiz.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}

	if err := quiz.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	quizCmd.Flags().StringP("topic", "t", "", "Topic to quiz on")
	quizCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, or hard")
	quizCmd.Flags().String("type", "choice", "Question type: choice or blank")
	quizCmd.Flags().IntP("count", "n", 5, "Number of questions")
	quizCmd.Flags().String("csv", "", "Write graded results to a CSV file")
}
