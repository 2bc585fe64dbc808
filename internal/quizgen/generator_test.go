package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/question"
)

func choiceJSON() string {
	return `{
		"question": "What is the capital of France?",
		"options": ["Paris", "London", "Berlin", "Madrid"],
		"correct_answer": "Paris"
	}`
}

func blankJSON() string {
	return `{
		"question": "The capital of France is _____.",
		"answer": "Paris"
	}`
}

func choiceRequest() Request {
	return Request{
		Topic:      "geography",
		Difficulty: DifficultyMedium,
		Kind:       question.KindChoice,
	}
}

// testConfig returns the default retry policy with a sleep recorder so no
// test waits on the wall clock.
func testConfig(slept *[]time.Duration) Config {
	cfg := DefaultConfig()
	cfg.Sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return cfg
}

func TestGenerate_FirstAttemptSucceeds(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(llm.MockResponse{Content: choiceJSON()})
	gen := New(mock, testConfig(&slept))

	q, err := gen.Generate(context.Background(), choiceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "Paris" {
		t.Errorf("expected answer Paris, got %q", q.Answer)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
	if len(slept) != 0 {
		t.Errorf("expected no backoff, slept %v", slept)
	}
}

func TestGenerate_RetriesWithExponentialBackoff(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "not valid json"},
		llm.MockResponse{Err: errors.New("rate limited")},
		llm.MockResponse{Content: choiceJSON()},
	)
	gen := New(mock, testConfig(&slept))

	q, err := gen.Generate(context.Background(), choiceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q == nil {
		t.Fatal("expected question after retries")
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}

	want := []time.Duration{1 * time.Second, 2 * time.Second}
	if len(slept) != len(want) {
		t.Fatalf("expected %d backoff sleeps, got %v", len(want), slept)
	}
	for i, d := range want {
		if slept[i] != d {
			t.Errorf("backoff %d: expected %v, got %v", i, d, slept[i])
		}
	}
}

func TestGenerate_ExhaustsAttempts(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "garbage"},
		llm.MockResponse{Content: "garbage"},
		llm.MockResponse{Content: "garbage"},
	)
	gen := New(mock, testConfig(&slept))

	_, err := gen.Generate(context.Background(), choiceRequest())
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T: %v", err, err)
	}
	if genErr.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", genErr.Attempts)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected exactly MaxAttempts calls, got %d", mock.CallCount())
	}
	// No sleep after the final attempt.
	if len(slept) != 2 {
		t.Errorf("expected 2 backoff sleeps, got %v", slept)
	}
}

func TestGenerate_WrapsLastFailure(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "garbage"},
		llm.MockResponse{Content: "garbage"},
		llm.MockResponse{Err: &llm.ErrRateLimit{RetryAfter: time.Second}},
	)
	gen := New(mock, testConfig(&slept))

	_, err := gen.Generate(context.Background(), choiceRequest())
	var rateErr *llm.ErrRateLimit
	if !errors.As(err, &rateErr) {
		t.Errorf("expected wrapped rate limit error, got %v", err)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "garbage"},
		llm.MockResponse{Content: choiceJSON()},
	)
	gen := New(mock, testConfig(&slept))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, choiceRequest())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected no retry after cancellation, got %d calls", mock.CallCount())
	}
}

func TestGenerate_BlankQuestion(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(llm.MockResponse{Content: blankJSON()})
	gen := New(mock, testConfig(&slept))

	q, err := gen.Generate(context.Background(), Request{
		Topic:      "geography",
		Difficulty: DifficultyEasy,
		Kind:       question.KindBlank,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Kind != question.KindBlank {
		t.Errorf("expected blank kind, got %q", q.Kind)
	}
	if strings.Count(q.Text, question.BlankMarker) != 1 {
		t.Errorf("expected exactly one blank marker in %q", q.Text)
	}
}

func TestGenerate_FencedResponse(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "```json\n" + choiceJSON() + "\n```",
	})
	gen := New(mock, testConfig(&slept))

	q, err := gen.Generate(context.Background(), choiceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "Paris" {
		t.Errorf("expected answer Paris, got %q", q.Answer)
	}
}

func TestGenerateBatch_DiscardsFailures(t *testing.T) {
	var slept []time.Duration

	// Item 1 succeeds, item 2 burns all 3 attempts, items 3-5 succeed.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: choiceJSON()},
		llm.MockResponse{Content: "garbage"},
		llm.MockResponse{Content: "garbage"},
		llm.MockResponse{Content: "garbage"},
		llm.MockResponse{Content: choiceJSON()},
		llm.MockResponse{Content: choiceJSON()},
		llm.MockResponse{Content: choiceJSON()},
	)
	gen := New(mock, testConfig(&slept))

	questions := gen.GenerateBatch(context.Background(), choiceRequest(), 5)
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q == nil {
			t.Errorf("question %d is nil", i)
		}
	}
}

func TestGenerateBatch_AllFail(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider() // empty queue: every call errors
	gen := New(mock, testConfig(&slept))

	questions := gen.GenerateBatch(context.Background(), choiceRequest(), 3)
	if len(questions) != 0 {
		t.Errorf("expected no questions, got %d", len(questions))
	}
	if mock.CallCount() != 9 {
		t.Errorf("expected 3 items x 3 attempts = 9 calls, got %d", mock.CallCount())
	}
}

func TestGenerateBatch_Grounded(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: choiceJSON()},
		llm.MockResponse{Content: choiceJSON()},
		llm.MockResponse{Content: choiceJSON()},
	)
	gen := New(mock, testConfig(&slept))

	req := Request{
		Context:    "Paris has been the capital of France since 987.",
		Query:      "capital of France",
		Difficulty: DifficultyMedium,
		Kind:       question.KindChoice,
	}
	questions := gen.GenerateBatch(context.Background(), req, 3)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, call := range mock.Calls {
		if !strings.Contains(call.Messages[0].Content, "DOCUMENT CONTEXT") {
			t.Errorf("call %d: expected grounded prompt", i)
		}
	}
}

func TestGenerate_PromptCarriesConfig(t *testing.T) {
	var slept []time.Duration
	mock := llm.NewMockProvider(llm.MockResponse{Content: choiceJSON()})
	cfg := testConfig(&slept)
	cfg.MaxTokens = 256
	cfg.Temperature = 0.5
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), choiceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("expected Temperature 0.5, got %f", mock.Calls[0].Temperature)
	}
}
