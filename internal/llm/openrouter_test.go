package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.5-flash"}); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("model names pass through unmapped", func(t *testing.T) {
		// OpenRouter model IDs carry a vendor prefix and must not be
		// rewritten by any alias table.
		for _, model := range []string{
			"google/gemini-2.5-flash",
			"anthropic/claude-3-haiku",
			"meta-llama/llama-3-8b",
		} {
			p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", model, err)
			}
			if p.ModelID() != model {
				t.Errorf("ModelID = %q, want %q", p.ModelID(), model)
			}
		}
	})

	t.Run("custom base URL accepted", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.5-flash",
			BaseURL: "https://proxy.example.com/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}
