package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deepak/quizdeck/internal/llm"
	"github.com/deepak/quizdeck/internal/samples"
)

// Config controls the behavior of the Completer.
type Config struct {
	// TargetCount is the exact number of questions every completed set has.
	TargetCount int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		TargetCount: 5,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Completer turns one generative call into an exact-length set of
// well-formed questions, synthesizing the shortfall from the sample bank.
type Completer struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Completer with the given provider and config.
func New(provider llm.Provider, cfg Config) *Completer {
	return &Completer{provider: provider, cfg: cfg}
}

// Complete requests candidate questions for the subject and returns exactly
// cfg.TargetCount well-formed records. Malformed or short model output is
// repaired by dropping bad candidates, truncating extras in model order, and
// synthesizing the shortfall under the fixed category rotation. The only
// error returned is a failed model call (typically llm.ErrProviderUnavailable);
// callers with no provider at all can synthesize a full set directly.
func (c *Completer) Complete(ctx context.Context, subject string, difficulty Difficulty) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(subject, difficulty, c.cfg.TargetCount)},
		},
		Schema:      StudyQuestionsSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	content, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	kept := make([]Question, 0, c.cfg.TargetCount)
	for _, q := range decodeCandidates(content) {
		if structurallyValid(q) {
			kept = append(kept, q)
		}
	}

	// Truncate extras, preserving model order.
	if len(kept) > c.cfg.TargetCount {
		kept = kept[:c.cfg.TargetCount]
	}

	// Synthesize the shortfall, continuing the category rotation where the
	// model's candidates left off.
	if missing := c.cfg.TargetCount - len(kept); missing > 0 {
		cats := samples.CategoriesFor(subject)
		kept = append(kept, Synthesize(subject, cats, difficulty, len(kept), missing)...)
	}

	return kept, nil
}

// generate performs the model call and salvages response content from
// shape-level failures. Schema violations and token-limit truncation still
// carry whatever the model produced; only an unreachable model is an error.
func (c *Completer) generate(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	resp, err := c.provider.Generate(ctx, req)
	if err == nil {
		return resp.Content, nil
	}

	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return invalid.Content, nil
	}
	var truncated *llm.ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return truncated.Content, nil
	}

	return nil, fmt.Errorf("LLM generation failed: %w", err)
}
