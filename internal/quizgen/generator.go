package quizgen

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/logger"
	"github.com/abhisek/quizforge/internal/question"
)

// GenerationError is the terminal failure for a single question request:
// every attempt failed and retries are exhausted. It wraps the last
// observed failure.
type GenerationError struct {
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator produces validated quiz questions using an LLM provider.
// Each call drives the full pipeline: prompt, model call, fence cleaning,
// JSON parse, schema validation, and bounded retry with exponential
// backoff. Failed attempts never surface a Question.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate produces a single validated question for the request.
// Returns *GenerationError after MaxAttempts failures.
func (g *Generator) Generate(ctx context.Context, req Request) (*question.Question, error) {
	purpose := "question-gen"
	if req.Grounded() {
		purpose = "rag-question-gen"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	log := logger.Get()
	var lastErr error

	for attempt := 1; attempt <= g.config.MaxAttempts; attempt++ {
		q, err := g.attempt(ctx, llmReq, req.Kind)
		if err == nil {
			return q, nil
		}
		lastErr = err

		log.Warn("generation attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", g.config.MaxAttempts),
			zap.String("subject", req.subject()),
			zap.Error(err),
		)

		if attempt == g.config.MaxAttempts {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		g.sleep(g.backoff(attempt))
	}

	return nil, &GenerationError{Attempts: g.config.MaxAttempts, Err: lastErr}
}

// GenerateBatch calls Generate count times sequentially, discarding
// per-item failures. The returned slice holds the successes in generation
// order and may be shorter than count, or empty.
func (g *Generator) GenerateBatch(ctx context.Context, req Request, count int) []*question.Question {
	log := logger.Get()

	questions := make([]*question.Question, 0, count)
	for i := 1; i <= count; i++ {
		q, err := g.Generate(ctx, req)
		if err != nil {
			log.Error("batch item failed",
				zap.Int("item", i),
				zap.Int("count", count),
				zap.Error(err),
			)
			continue
		}
		questions = append(questions, q)
	}

	log.Info("batch generation finished",
		zap.Int("requested", count),
		zap.Int("generated", len(questions)),
	)
	return questions
}

// attempt runs one full generation attempt: model call, cleaning, parse,
// validation.
func (g *Generator) attempt(ctx context.Context, llmReq llm.Request, kind question.Kind) (*question.Question, error) {
	resp, err := g.provider.Complete(ctx, llmReq)
	if err != nil {
		return nil, err
	}

	cleaned := stripFences(resp.Content)
	return question.Parse(kind, []byte(cleaned))
}

// backoff returns the wait before the attempt after the given one:
// BaseWait * 2^(attempt-1), so 1s, 2s, 4s... with the default config.
func (g *Generator) backoff(attempt int) time.Duration {
	return g.config.BaseWait << (attempt - 1)
}

func (g *Generator) sleep(d time.Duration) {
	if g.config.Sleep != nil {
		g.config.Sleep(d)
		return
	}
	time.Sleep(d)
}
