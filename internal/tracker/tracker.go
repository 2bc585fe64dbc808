package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizforge/internal/logger"
)

// PersistenceError indicates the durable write of the attempt log failed.
// The in-memory log is already updated when this is returned, so the
// tracker remains the source of truth for the rest of the process; callers
// should surface the inconsistency to the user.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist attempt log to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// QuestionDetail is the per-question record embedded in an Attempt.
type QuestionDetail struct {
	Number        int    `json:"question_number"`
	Question      string `json:"question"`
	QuestionType  string `json:"question_type"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"is_correct"`
}

// Attempt is one completed, scored quiz session. Immutable once recorded;
// the log is append-only and only ever bulk-cleared.
type Attempt struct {
	ID             string           `json:"id"`
	Topic          string           `json:"topic"`
	QuestionType   string           `json:"question_type"`
	Difficulty     string           `json:"difficulty"`
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	Accuracy       float64          `json:"accuracy"`
	TimeTaken      float64          `json:"time_taken_seconds"`
	Timestamp      time.Time        `json:"timestamp"`
	Questions      []QuestionDetail `json:"questions_data"`
}

// RecordInput holds the caller-supplied fields of an attempt. ID,
// accuracy, and timestamp are derived by Record.
type RecordInput struct {
	Topic          string
	QuestionType   string
	Difficulty     string
	TotalQuestions int
	CorrectAnswers int
	TimeTaken      float64
	Questions      []QuestionDetail
}

// Tracker owns the attempt log and its on-disk mirror: one JSON array,
// read wholesale on open and rewritten wholesale on every mutation.
// Not safe for concurrent use.
type Tracker struct {
	path     string
	attempts []Attempt
	now      func() time.Time
}

// Open creates a Tracker backed by the given file. A missing or corrupt
// file is treated as an empty log, never a fatal error.
func Open(path string) *Tracker {
	t := &Tracker{path: path, now: time.Now}
	t.load()
	return t
}

func (t *Tracker) load() {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Get().Warn("could not read attempt log, starting empty",
				zap.String("path", t.path), zap.Error(err))
		}
		return
	}

	var attempts []Attempt
	if err := json.Unmarshal(data, &attempts); err != nil {
		logger.Get().Warn("attempt log is corrupt, starting empty",
			zap.String("path", t.path), zap.Error(err))
		return
	}
	t.attempts = attempts
}

func (t *Tracker) save() error {
	data, err := json.MarshalIndent(t.attempts, "", "  ")
	if err != nil {
		return &PersistenceError{Path: t.path, Err: err}
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return &PersistenceError{Path: t.path, Err: err}
	}
	return nil
}

// Record computes the derived fields, appends the attempt to the log, and
// persists the full log. The in-memory append always happens first, so on
// a *PersistenceError the returned attempt is still recorded in memory.
func (t *Tracker) Record(in RecordInput) (*Attempt, error) {
	accuracy := 0.0
	if in.TotalQuestions > 0 {
		accuracy = float64(in.CorrectAnswers) / float64(in.TotalQuestions) * 100
	}

	attempt := Attempt{
		ID:             uuid.NewString(),
		Topic:          in.Topic,
		QuestionType:   in.QuestionType,
		Difficulty:     in.Difficulty,
		TotalQuestions: in.TotalQuestions,
		CorrectAnswers: in.CorrectAnswers,
		Accuracy:       accuracy,
		TimeTaken:      in.TimeTaken,
		Timestamp:      t.now(),
		Questions:      in.Questions,
	}

	t.attempts = append(t.attempts, attempt)

	if err := t.save(); err != nil {
		return &attempt, err
	}

	logger.Get().Info("recorded quiz attempt",
		zap.String("id", attempt.ID),
		zap.String("topic", attempt.Topic),
		zap.Float64("accuracy", attempt.Accuracy),
	)
	return &attempt, nil
}

// Clear empties the log and persists the empty state. Irreversible.
func (t *Tracker) Clear() error {
	t.attempts = nil
	return t.save()
}

// Count returns the number of recorded attempts.
func (t *Tracker) Count() int {
	return len(t.attempts)
}
