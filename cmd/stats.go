package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/tracker"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		weak, _ := cmd.Flags().GetBool("weak")
		strong, _ := cmd.Flags().GetBool("strong")
		recent, _ := cmd.Flags().GetInt("recent")

		t, err := openTracker(cmd)
		if err != nil {
			return err
		}

		switch {
		case weak:
			printAreas("Weak Areas (below 70%)", t.WeakAreas(70))
		case strong:
			printAreas("Strong Areas (80% and above)", t.StrongAreas(80))
		case recent > 0:
			printRecent(t.Recent(recent))
		case topic != "":
			printStats(fmt.Sprintf("Stats for %q", topic), t.TopicStats(topic))
		default:
			printStats("Overall Stats", t.OverallStats())
		}
		return nil
	},
}

func printStats(title string, s tracker.Stats) {
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", 48))

	if s.TotalAttempts == 0 {
		fmt.Println("No quiz attempts recorded yet.")
		return
	}

	fmt.Printf("%-24s %d\n", "Attempts:", s.TotalAttempts)
	fmt.Printf("%-24s %d/%d\n", "Questions correct:", s.TotalCorrect, s.TotalQuestions)
	fmt.Printf("%-24s %.1f%%\n", "Average accuracy:", s.AverageAccuracy)
	fmt.Printf("%-24s %.1f%%\n", "Best accuracy:", s.BestAccuracy)
	fmt.Printf("%-24s %.1f%%\n", "Worst accuracy:", s.WorstAccuracy)
	fmt.Printf("%-24s %.0fs\n", "Total time:", s.TotalTime)
	fmt.Printf("%-24s %.0fs\n", "Avg time per quiz:", s.AverageTimePerAttempt)

	if len(s.Topics) > 0 {
		fmt.Printf("%-24s %s\n", "Topics:", strings.Join(s.Topics, ", "))
	}
	if len(s.DifficultyDistribution) > 0 {
		fmt.Println()
		fmt.Println("By difficulty:")
		for _, d := range []string{"easy", "medium", "hard"} {
			if n, ok := s.DifficultyDistribution[d]; ok {
				fmt.Printf("  %-8s %d\n", d, n)
			}
		}
	}
}

func printAreas(title string, areas []tracker.TopicAccuracy) {
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", 48))

	if len(areas) == 0 {
		fmt.Println("Nothing to show yet.")
		return
	}
	for _, a := range areas {
		fmt.Printf("%-32s %6.1f%%\n", a.Topic, a.Accuracy)
	}
}

func printRecent(attempts []tracker.Attempt) {
	if len(attempts) == 0 {
		fmt.Println("No quiz attempts recorded yet.")
		return
	}

	fmt.Printf("%-19s  %-20s  %-8s  %-8s  %7s\n",
		"Timestamp", "Topic", "Type", "Level", "Score")
	fmt.Println(strings.Repeat("─", 72))

	for _, a := range attempts {
		topic := a.Topic
		if len(topic) > 20 {
			topic = topic[:20]
		}
		fmt.Printf("%-19s  %-20s  %-8s  %-8s  %2d/%-2d (%.0f%%)\n",
			a.Timestamp.Local().Format("2006-01-02 15:04:05"),
			topic,
			a.QuestionType,
			a.Difficulty,
			a.CorrectAnswers,
			a.TotalQuestions,
			a.Accuracy,
		)
	}
}

func init() {
	statsCmd.Flags().StringP("topic", "t", "", "Show stats for one topic")
	statsCmd.Flags().Bool("weak", false, "List topics with average accuracy below 70%")
	statsCmd.Flags().Bool("strong", false, "List topics with average accuracy of 80% or more")
	statsCmd.Flags().IntP("recent", "r", 0, "Show the N most recent attempts")
}
