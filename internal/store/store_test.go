package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEvent(purpose string) LLMRequestEventData {
	return LLMRequestEventData{
		Provider:     "groq",
		Model:        "llama-3.1-8b-instant",
		Purpose:      purpose,
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    340,
		Success:      true,
		RequestBody:  "[user]\nGenerate a question",
		ResponseBody: `{"question": "..."}`,
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, testEvent("question-gen")); err != nil {
		t.Fatalf("append: %v", err)
	}
	failed := testEvent("rag-question-gen")
	failed.Success = false
	failed.ErrorMessage = "rate limited"
	if err := repo.AppendLLMRequest(ctx, failed); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Purpose != "rag-question-gen" {
		t.Errorf("expected newest event first, got %q", events[0].Purpose)
	}
	if events[0].Success {
		t.Error("expected failed event")
	}
	if events[0].ErrorMessage != "rate limited" {
		t.Errorf("unexpected error message: %q", events[0].ErrorMessage)
	}
	if events[1].InputTokens != 120 || events[1].OutputTokens != 80 {
		t.Errorf("unexpected token counts: %d/%d", events[1].InputTokens, events[1].OutputTokens)
	}
	if events[1].Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestQueryLLMEvents_Filters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.AppendLLMRequest(ctx, testEvent("question-gen")); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, testEvent("rag-question-gen")); err != nil {
		t.Fatalf("append: %v", err)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 events with limit, got %d", len(limited))
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "rag-question-gen"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Errorf("expected 1 filtered event, got %d", len(byPurpose))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, testEvent("question-gen")); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.RequestBody != "[user]\nGenerate a question" {
		t.Errorf("unexpected request body: %q", e.RequestBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.AppendLLMRequest(ctx, testEvent("question-gen")); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	other := testEvent("rag-question-gen")
	other.Model = "gpt-4o-mini"
	if err := repo.AppendLLMRequest(ctx, other); err != nil {
		t.Fatalf("append: %v", err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose groups, got %d", len(byPurpose))
	}
	for _, st := range byPurpose {
		if st.Purpose == "question-gen" {
			if st.Calls != 2 {
				t.Errorf("expected 2 calls, got %d", st.Calls)
			}
			if st.InputTokens != 240 {
				t.Errorf("expected 240 input tokens, got %d", st.InputTokens)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model groups, got %d", len(byModel))
	}
}
