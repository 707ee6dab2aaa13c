package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

const questionJSON = `{"question":"Which planet is closest to the sun?",` +
	`"options":["Mercury","Venus","Mars","Jupiter"],"answer":"Mercury",` +
	`"category":"Astronomy","explanation":"Mercury orbits at 0.39 AU."}`

func TestMockProviderReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(questionJSON), Usage: Usage{InputTokens: 120, OutputTokens: 60, TotalTokens: 180}},
		MockResponse{Content: json.RawMessage(`{"subject":"science"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Write a study question about astronomy."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != questionJSON {
		t.Fatalf("unexpected first content: %s", first.Content)
	}
	if first.Usage.InputTokens != 120 || first.Usage.OutputTokens != 60 {
		t.Fatalf("unexpected usage: %+v", first.Usage)
	}
	if first.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Classify the category Astronomy."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"subject":"science"}` {
		t.Fatalf("unexpected second content: %s", second.Content)
	}
}

func TestMockProviderExhaustedScript(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "You write multiple-choice study questions.",
		Messages: []Message{{Role: RoleUser, Content: "Subject: world history"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	if got := mock.Calls[0].System; got != "You write multiple-choice study questions." {
		t.Fatalf("recorded system prompt = %q", got)
	}
	if got := mock.Calls[0].Messages[0].Content; got != "Subject: world history" {
		t.Fatalf("recorded message = %q", got)
	}
}

func TestMockProviderScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
}

func TestPurposeLabel(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("unlabeled context purpose = %q, want unknown", p)
	}

	for _, purpose := range []string{"question-gen", "classify", "set-name"} {
		labeled := WithPurpose(ctx, purpose)
		if p := PurposeFrom(labeled); p != purpose {
			t.Fatalf("PurposeFrom = %q, want %q", p, purpose)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-ant-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "test"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(key, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config with no keys set")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic config, got %+v ok=%v", cfg, ok)
	}

	// Gemini outranks Anthropic when both keys are present.
	t.Setenv("GEMINI_API_KEY", "test")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("expected gemini config, got %+v ok=%v", cfg, ok)
	}
}
