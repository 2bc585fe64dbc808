package llm

import (
	"context"
	"testing"
)

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "question please"},
		{Role: RoleAssistant, Content: "{...}"},
	})

	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Errorf("expected user role, got %q", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Errorf("expected model role, got %q", contents[1].Role)
	}
	if contents[0].Parts[0].Text != "question please" {
		t.Errorf("unexpected text: %q", contents[0].Parts[0].Text)
	}
}
