package question

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SchemaError describes why a candidate failed validation. Field names the
// rule that failed; Message is a human-readable reason.
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ParseError indicates the candidate was not valid JSON at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse question JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// placeholderAnswers are generic answers the model sometimes emits instead
// of a real answer for blank questions. Matched case-insensitively.
var placeholderAnswers = map[string]bool{
	"answer": true,
	"blank":  true,
	"fill":   true,
	"here":   true,
}

// Parse validates raw JSON as a question of the given kind and returns the
// validated Question. It is the only constructor for Question values.
func Parse(kind Kind, raw []byte) (*Question, error) {
	switch kind {
	case KindChoice:
		return parseChoice(raw)
	case KindBlank:
		return parseBlank(raw)
	default:
		return nil, &SchemaError{Field: "kind", Message: fmt.Sprintf("unknown question kind %q", kind)}
	}
}

func parseChoice(raw []byte) (*Question, error) {
	if err := validateShape("choice-question", choiceSchema, raw); err != nil {
		return nil, err
	}

	var c choiceCandidate
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, &ParseError{Err: err}
	}

	text := strings.TrimSpace(c.Question)
	if n := utf8.RuneCountInString(text); n < 10 || n > 500 {
		return nil, &SchemaError{
			Field:   "question",
			Message: fmt.Sprintf("text must be 10-500 characters, got %d", n),
		}
	}

	if len(c.Options) != 4 {
		return nil, &SchemaError{
			Field:   "options",
			Message: fmt.Sprintf("must have exactly 4 options, got %d", len(c.Options)),
		}
	}

	options := make([]string, len(c.Options))
	seen := make(map[string]bool, len(c.Options))
	for i, opt := range c.Options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return nil, &SchemaError{
				Field:   "options",
				Message: fmt.Sprintf("option %d is empty", i+1),
			}
		}
		if seen[opt] {
			return nil, &SchemaError{
				Field:   "options",
				Message: fmt.Sprintf("duplicate option %q", opt),
			}
		}
		seen[opt] = true
		options[i] = opt
	}

	answer := strings.TrimSpace(c.CorrectAnswer)
	if !seen[answer] {
		return nil, &SchemaError{
			Field:   "correct_answer",
			Message: fmt.Sprintf("%q does not match any option", answer),
		}
	}

	return &Question{
		Kind:    KindChoice,
		Text:    text,
		Options: options,
		Answer:  answer,
	}, nil
}

func parseBlank(raw []byte) (*Question, error) {
	if err := validateShape("blank-question", blankSchema, raw); err != nil {
		return nil, err
	}

	var b blankCandidate
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, &ParseError{Err: err}
	}

	text := strings.TrimSpace(b.Question)
	if n := utf8.RuneCountInString(text); n < 15 || n > 500 {
		return nil, &SchemaError{
			Field:   "question",
			Message: fmt.Sprintf("text must be 15-500 characters, got %d", n),
		}
	}

	switch n := strings.Count(text, BlankMarker); {
	case n == 0:
		return nil, &SchemaError{
			Field:   "question",
			Message: fmt.Sprintf("missing blank marker %q", BlankMarker),
		}
	case n > 1:
		return nil, &SchemaError{
			Field:   "question",
			Message: fmt.Sprintf("expected exactly one blank marker %q, found %d", BlankMarker, n),
		}
	}

	answer := strings.TrimSpace(b.Answer)
	if answer == "" {
		return nil, &SchemaError{Field: "answer", Message: "answer is empty"}
	}
	if placeholderAnswers[strings.ToLower(answer)] {
		return nil, &SchemaError{
			Field:   "answer",
			Message: fmt.Sprintf("%q looks like a placeholder, not an actual answer", answer),
		}
	}

	return &Question{
		Kind:   KindBlank,
		Text:   text,
		Answer: answer,
	}, nil
}
