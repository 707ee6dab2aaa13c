package taxonomy

import (
	"fmt"
	"strings"

	"github.com/deepak/quizdeck/internal/llm"
)

const inferenceSystemPrompt = `You classify quiz question categories into broad academic subjects.

Given a category name and an example question, answer with the single most likely academic subject as a short phrase of at most 3 words. Do not explain.

Examples:
- category "Algebra", question "Solve for x: 2x + 6 = 14." -> Mathematics
- category "World Wars", question "In which year did World War II end?" -> History
- category "Poetry", question "Who wrote The Raven?" -> Literature
- category "Data Structures", question "Which structure is FIFO?" -> Computer Science
- category "Mechanics", question "What is the SI unit of force?" -> Physics
- category "Cell Biology", question "What organelle produces ATP?" -> Biology
- category "Marketing", question "What does ROI stand for?" -> Business`

// SubjectSchema defines the JSON schema for subject inference responses.
var SubjectSchema = &llm.Schema{
	Name:        "subject-label",
	Description: "The academic subject a quiz category belongs to",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject": map[string]any{
				"type":        "string",
				"description": "The academic subject as a short phrase, at most 3 words",
			},
		},
		"required":             []any{"subject"},
		"additionalProperties": false,
	},
}

// buildInferenceMessage constructs the classification request for one category.
func buildInferenceMessage(categoryName, questionText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", categoryName)
	if questionText != "" {
		fmt.Fprintf(&b, "Question: %s\n", questionText)
	}
	return b.String()
}
