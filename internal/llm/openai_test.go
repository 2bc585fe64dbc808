package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestBuildOpenAIMessages(t *testing.T) {
	req := Request{
		System: "You are a quiz generator.",
		Messages: []Message{
			{Role: RoleUser, Content: "Generate a question."},
			{Role: RoleAssistant, Content: "{...}"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("expected system role first, got %q", msgs[0].Role)
	}
	if msgs[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("expected user role, got %q", msgs[1].Role)
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("expected assistant role, got %q", msgs[2].Role)
	}
}

func TestBuildOpenAIMessages_NoSystem(t *testing.T) {
	msgs := buildOpenAIMessages(Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleUser {
		t.Errorf("expected user role, got %q", msgs[0].Role)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gpt-4o-mini", openaiModels); got != "gpt-4o-mini" {
		t.Errorf("unexpected model: %q", got)
	}
	// Unknown names pass through for direct model IDs.
	if got := resolveModel("some-custom-model", openaiModels); got != "some-custom-model" {
		t.Errorf("unexpected model: %q", got)
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNewGroqProvider(t *testing.T) {
	if _, err := NewGroqProvider(GroqConfig{}); err == nil {
		t.Error("expected error for missing API key")
	}

	p, err := NewGroqProvider(GroqConfig{APIKey: "gsk-test", Model: "llama-3.1-8b-instant"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama-3.1-8b-instant" {
		t.Errorf("unexpected model: %q", p.ModelID())
	}
}

func TestMapOpenAIStopReason(t *testing.T) {
	if got := mapOpenAIStopReason(openai.FinishReasonStop); got != "end" {
		t.Errorf("expected end, got %q", got)
	}
	if got := mapOpenAIStopReason(openai.FinishReasonLength); got != "max_tokens" {
		t.Errorf("expected max_tokens, got %q", got)
	}
	if got := mapOpenAIStopReason(openai.FinishReasonContentFilter); got != "end" {
		t.Errorf("expected end fallback, got %q", got)
	}
}
