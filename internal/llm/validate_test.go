package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// studyQuestionSchema mirrors the shape used for generated questions:
// question text, four options, an answer, and a difficulty enum.
func studyQuestionSchema() *Schema {
	return &Schema{
		Name:        "study-question",
		Description: "A multiple-choice study question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
				},
				"answer":     map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"question", "options", "answer"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "complete question",
			raw: `{"question":"What is the capital of France?",` +
				`"options":["Paris","Lyon","Nice","Lille"],"answer":"Paris","difficulty":"easy"}`,
		},
		{
			name: "difficulty omitted",
			raw: `{"question":"What is 7*8?",` +
				`"options":["54","56","64","49"],"answer":"56"}`,
		},
		{
			name:    "missing answer",
			raw:     `{"question":"Who wrote Hamlet?","options":["Shakespeare","Marlowe","Jonson","Webster"]}`,
			wantErr: true,
		},
		{
			name:    "options not an array",
			raw:     `{"question":"Who wrote Hamlet?","options":"Shakespeare","answer":"Shakespeare"}`,
			wantErr: true,
		},
		{
			name: "too few options",
			raw: `{"question":"Who wrote Hamlet?",` +
				`"options":["Shakespeare","Marlowe"],"answer":"Shakespeare"}`,
			wantErr: true,
		},
		{
			name: "bad difficulty value",
			raw: `{"question":"What is 7*8?",` +
				`"options":["54","56","64","49"],"answer":"56","difficulty":"brutal"}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			raw:     `Here are your questions: 1. What is...`,
			wantErr: true,
		},
		{
			name:    "empty payload",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(studyQuestionSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if string(invalid.Content) != tt.raw {
				t.Fatalf("error should carry the raw payload, got %s", invalid.Content)
			}
		})
	}
}

func TestValidateResponseNilSchemaPassesThrough(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text, not even JSON`)); err != nil {
		t.Fatalf("nil schema should accept anything, got: %v", err)
	}
}

func TestValidateResponseBatchShape(t *testing.T) {
	schema := &Schema{
		Name:        "study-question-batch",
		Description: "A batch of study questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"study_questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
							"answer":   map[string]any{"type": "string"},
						},
						"required": []any{"question", "answer"},
					},
				},
			},
			"required": []any{"study_questions"},
		},
	}

	valid := json.RawMessage(`{"study_questions":[{"question":"Q1?","answer":"A"},{"question":"Q2?","answer":"B"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := json.RawMessage(`{"study_questions":[{"question":"Q1?"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for item missing required answer")
	}
}
