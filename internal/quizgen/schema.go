package quizgen

import "github.com/deepak/quizdeck/internal/llm"

// StudyQuestionsSchema defines the JSON schema for question-set generation
// responses. The parser still tolerates the historical envelope aliases for
// providers that ignore structured output (see envelope.go).
var StudyQuestionsSchema = &llm.Schema{
	Name:        "study-questions",
	Description: "A batch of multiple-choice study questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"study_questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt, self-contained plain text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 mutually exclusive options",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct option, repeated verbatim from options",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "A short topic label for the question",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct and each distractor is wrong",
						},
					},
					"required":             []any{"question", "options", "answer", "category", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"study_questions"},
		"additionalProperties": false,
	},
}
