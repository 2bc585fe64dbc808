package quiz

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteCSV writes graded results as CSV with a header row. Options are
// joined with "; " so a row stays flat.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	header := []string{"number", "question", "type", "options", "user_answer", "correct_answer", "is_correct"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Number),
			r.Question,
			string(r.Type),
			strings.Join(r.Options, "; "),
			r.UserAnswer,
			r.CorrectAnswer,
			strconv.FormatBool(r.Correct),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.Number, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
