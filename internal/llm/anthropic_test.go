package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicStub(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("sk-ant-test"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-haiku-4-5-20251001",
	}
}

func TestAnthropicGenerate(t *testing.T) {
	questionText := `{"question":"Which gas do plants absorb?","options":["CO2","O2","N2","H2"],"answer":"CO2"}`
	stub := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_01",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": questionText},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  220,
				"output_tokens": 85,
			},
		})
	})

	resp, err := stub.Generate(context.Background(), Request{
		System:    "You write multiple-choice study questions.",
		Messages:  []Message{{Role: RoleUser, Content: "Subject: biology"}},
		MaxTokens: 1024,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != questionText {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 220 || resp.Usage.OutputTokens != 85 || resp.Usage.TotalTokens != 305 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicRateLimited(t *testing.T) {
	stub := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "rate limited"},
		})
	})

	_, err := stub.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Subject: biology"}},
		MaxTokens: 256,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
}

func TestAnthropicServerDown(t *testing.T) {
	stub := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "overloaded"},
		})
	})

	_, err := stub.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Subject: biology"}},
		MaxTokens: 256,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestAnthropicAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		// Full IDs bypass the alias table.
		{"claude-haiku-4-5-20251001", "claude-haiku-4-5-20251001"},
	}
	for _, tt := range tests {
		if got := modelFor(tt.alias, anthropicAliases); got != tt.want {
			t.Errorf("modelFor(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestAnthropicModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-haiku-4-5-20251001"}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
}
