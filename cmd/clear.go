package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		t, err := openTracker(cmd)
		if err != nil {
			return err
		}

		if t.Count() == 0 {
			fmt.Println("No quiz history to clear.")
			return nil
		}

		if !force {
			fmt.Printf("Delete %d recorded attempts? [y/N] ", t.Count())
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := t.Clear(); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Println("Quiz history cleared.")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
