package quiz

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/abhisek/quizforge/internal/question"
)

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{
			Number:        1,
			Question:      "What is the capital of France?",
			Type:          question.KindChoice,
			Options:       []string{"Paris", "London", "Berlin", "Madrid"},
			UserAnswer:    "Paris",
			CorrectAnswer: "Paris",
			Correct:       true,
		},
		{
			Number:        2,
			Question:      `The "capital" of Spain is _____.`,
			Type:          question.KindBlank,
			UserAnswer:    "Barcelona",
			CorrectAnswer: "Madrid",
			Correct:       false,
		},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	if rows[0][0] != "number" || rows[0][6] != "is_correct" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][4] != "Paris" || rows[1][6] != "true" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][1] != `The "capital" of Spain is _____.` {
		t.Errorf("quoting broke the question text: %q", rows[2][1])
	}
	if rows[2][3] != "" {
		t.Errorf("blank question should have empty options cell, got %q", rows[2][3])
	}
	if rows[1][3] != "Paris; London; Berlin; Madrid" {
		t.Errorf("unexpected options cell: %q", rows[1][3])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "number,") {
		t.Errorf("expected header only, got %q", buf.String())
	}
}
