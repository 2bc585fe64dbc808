package llm

import (
	"context"
	"testing"
)

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("unexpected model: %q", p.ModelID())
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "carrier-pigeon"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProvider_WrapsWithLogging(t *testing.T) {
	repo := &captureRepo{}
	cfg := DefaultConfig()
	cfg.Groq.APIKey = "gsk-test"

	p, err := NewProvider(context.Background(), cfg, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*LoggingProvider); !ok {
		t.Errorf("expected *LoggingProvider, got %T", p)
	}
}

func TestNewProviderFromEnv_NoConfig(t *testing.T) {
	clearKeyEnv(t)
	if _, err := NewProviderFromEnv(context.Background(), nil); err == nil {
		t.Error("expected error with no provider configured")
	}
}
