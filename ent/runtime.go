// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/deepak/quizdeck/ent/llmrequestevent"
	"github.com/deepak/quizdeck/ent/quizquestion"
	"github.com/deepak/quizdeck/ent/schema"
	"github.com/deepak/quizdeck/ent/studyset"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizquestionFields := schema.QuizQuestion{}.Fields()
	_ = quizquestionFields
	// quizquestionDescExplanation is the schema descriptor for explanation field.
	quizquestionDescExplanation := quizquestionFields[5].Descriptor()
	// quizquestion.DefaultExplanation holds the default value on creation for the explanation field.
	quizquestion.DefaultExplanation = quizquestionDescExplanation.Default.(string)
	studysetFields := schema.StudySet{}.Fields()
	_ = studysetFields
	// studysetDescGenerated is the schema descriptor for generated field.
	studysetDescGenerated := studysetFields[2].Descriptor()
	// studyset.DefaultGenerated holds the default value on creation for the generated field.
	studyset.DefaultGenerated = studysetDescGenerated.Default.(bool)
	// studysetDescCreatedAt is the schema descriptor for created_at field.
	studysetDescCreatedAt := studysetFields[3].Descriptor()
	// studyset.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyset.DefaultCreatedAt = studysetDescCreatedAt.Default.(func() time.Time)
	// studysetDescID is the schema descriptor for id field.
	studysetDescID := studysetFields[0].Descriptor()
	// studyset.DefaultID holds the default value on creation for the id field.
	studyset.DefaultID = studysetDescID.Default.(func() string)
}
