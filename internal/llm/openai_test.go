package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiStub(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("sk-test")
	config.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-4o-mini",
	}
}

func TestOpenAIGenerate(t *testing.T) {
	questionText := `{"question":"Who painted the Mona Lisa?","options":["Da Vinci","Michelangelo","Raphael","Donatello"],"answer":"Da Vinci"}`
	stub := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-01",
			"object":  "chat.completion",
			"created": 1756700000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": questionText,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     180,
				"completion_tokens": 70,
				"total_tokens":      250,
			},
		})
	})

	resp, err := stub.Generate(context.Background(), Request{
		System:    "You write multiple-choice study questions.",
		Messages:  []Message{{Role: RoleUser, Content: "Subject: art history"}},
		MaxTokens: 1024,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != questionText {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 180 || resp.Usage.OutputTokens != 70 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestOpenAIRateLimited(t *testing.T) {
	stub := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "rate limited",
				"code":    "rate_limit_exceeded",
			},
		})
	})

	_, err := stub.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Subject: art history"}},
		MaxTokens: 256,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
}

func TestOpenAIServerDown(t *testing.T) {
	stub := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "internal error"},
		})
	})

	_, err := stub.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Subject: art history"}},
		MaxTokens: 256,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestOpenAIBaseURLOverride(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "sk-test",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Fatalf("ModelID = %q, want gpt-4o", p.ModelID())
	}
}

func TestOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o-mini"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
