// Package quiz runs a quiz session over a set of generated questions:
// it collects answers, grades them, and records the outcome.
package quiz

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/quizforge/internal/question"
	"github.com/abhisek/quizforge/internal/tracker"
)

// Result is the graded outcome for a single question.
type Result struct {
	Number        int
	Question      string
	Type          question.Kind
	Options       []string
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
}

// Manager owns one quiz session: the question set, recorded answers, and
// grading.
type Manager struct {
	Topic      string
	Difficulty string

	questions []*question.Question
	answers   []string
	started   time.Time
	now       func() time.Time
}

// NewManager starts a session over the given questions. The start time is
// captured immediately so TimeTaken covers the whole session.
func NewManager(topic, difficulty string, questions []*question.Question) *Manager {
	m := &Manager{
		Topic:      topic,
		Difficulty: difficulty,
		questions:  questions,
		answers:    make([]string, len(questions)),
		now:        time.Now,
	}
	m.started = m.now()
	return m
}

// Len returns the number of questions in the session.
func (m *Manager) Len() int {
	return len(m.questions)
}

// Question returns the question at index i.
func (m *Manager) Question(i int) *question.Question {
	return m.questions[i]
}

// Answer records the user's answer for question i.
func (m *Manager) Answer(i int, answer string) error {
	if i < 0 || i >= len(m.questions) {
		return fmt.Errorf("question index %d out of range [0,%d)", i, len(m.questions))
	}
	m.answers[i] = answer
	return nil
}

// Evaluate grades every question against its recorded answer. Choice
// questions require an exact option match; blank answers compare
// case-insensitively after trimming.
func (m *Manager) Evaluate() []Result {
	results := make([]Result, len(m.questions))
	for i, q := range m.questions {
		results[i] = Result{
			Number:        i + 1,
			Question:      q.Text,
			Type:          q.Kind,
			Options:       q.Options,
			UserAnswer:    m.answers[i],
			CorrectAnswer: q.Answer,
			Correct:       grade(q, m.answers[i]),
		}
	}
	return results
}

func grade(q *question.Question, answer string) bool {
	switch q.Kind {
	case question.KindBlank:
		return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.Answer))
	default:
		return strings.TrimSpace(answer) == q.Answer
	}
}

// Record grades the session and persists it to the tracker. It returns the
// graded results alongside the stored attempt; a persistence failure still
// returns both so the session outcome can be shown.
func (m *Manager) Record(t *tracker.Tracker) ([]Result, *tracker.Attempt, error) {
	results := m.Evaluate()

	correct := 0
	details := make([]tracker.QuestionDetail, len(results))
	for i, r := range results {
		if r.Correct {
			correct++
		}
		details[i] = tracker.QuestionDetail{
			Number:        r.Number,
			Question:      r.Question,
			QuestionType:  string(r.Type),
			UserAnswer:    r.UserAnswer,
			CorrectAnswer: r.CorrectAnswer,
			Correct:       r.Correct,
		}
	}

	kind := ""
	if len(m.questions) > 0 {
		kind = string(m.questions[0].Kind)
	}

	attempt, err := t.Record(tracker.RecordInput{
		Topic:          m.Topic,
		QuestionType:   kind,
		Difficulty:     m.Difficulty,
		TotalQuestions: len(results),
		CorrectAnswers: correct,
		TimeTaken:      m.now().Sub(m.started).Seconds(),
		Questions:      details,
	})
	return results, attempt, err
}
