package llm

import (
	"context"
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		// Full IDs bypass the alias table.
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := modelFor(tt.alias, geminiAliases); got != tt.want {
			t.Errorf("modelFor(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestToGeminiSchema(t *testing.T) {
	schema := toGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer":     map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
		},
		"required": []any{"question", "options", "answer"},
	})

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["question"].Type != "STRING" {
		t.Fatalf("question type = %s, want STRING", schema.Properties["question"].Type)
	}
	if schema.Properties["options"].Type != "ARRAY" {
		t.Fatalf("options type = %s, want ARRAY", schema.Properties["options"].Type)
	}
	if schema.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("options items type = %s, want STRING", schema.Properties["options"].Items.Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("difficulty enum = %d values, want 3", len(schema.Properties["difficulty"].Enum))
	}
	if len(schema.Required) != 3 {
		t.Fatalf("required = %d fields, want 3", len(schema.Required))
	}
}

func TestGeminiTypeOfDefaultsToString(t *testing.T) {
	if got := geminiTypeOf("null"); got != "STRING" {
		t.Fatalf("geminiTypeOf(null) = %s, want STRING", got)
	}
}

func TestGeminiRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
