package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/deepak/quizdeck/internal/llm"
	"github.com/deepak/quizdeck/internal/quizgen"
)

func assertFullSet(t *testing.T, questions []quizgen.Question) {
	t.Helper()
	want := quizgen.DefaultConfig().TargetCount
	if len(questions) != want {
		t.Fatalf("got %d questions, want %d", len(questions), want)
	}
	for i, q := range questions {
		if q.Text == "" {
			t.Fatalf("question %d has no text", i)
		}
		if len(q.Options) != 4 {
			t.Fatalf("question %d has %d options, want 4", i, len(q.Options))
		}
	}
}

func TestBuildQuestionsWithoutProvider(t *testing.T) {
	questions := buildQuestions(context.Background(), nil, "astronomy", quizgen.DifficultyMedium)
	assertFullSet(t, questions)
}

func TestBuildQuestionsProviderDownFallsBack(t *testing.T) {
	// An exhausted mock fails every call with ErrProviderUnavailable. The
	// command must still deliver a full set from the sample bank.
	down := llm.NewMockProvider()

	questions := buildQuestions(context.Background(), down, "astronomy", quizgen.DifficultyMedium)
	assertFullSet(t, questions)
	if down.CallCount() == 0 {
		t.Fatal("provider was never tried")
	}
}

func TestBuildQuestionsUsesProviderOutput(t *testing.T) {
	batch := make([]quizgen.Question, quizgen.DefaultConfig().TargetCount)
	for i := range batch {
		batch[i] = quizgen.Question{
			Text:     fmt.Sprintf("Generated question %d?", i+1),
			Options:  []string{"a", "b", "c", "d"},
			Answer:   "a",
			Category: "Astronomy",
		}
	}
	payload, err := json.Marshal(map[string]any{"study_questions": batch})
	if err != nil {
		t.Fatal(err)
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})

	questions := buildQuestions(context.Background(), mock, "astronomy", quizgen.DifficultyMedium)
	assertFullSet(t, questions)
	if questions[0].Text != "Generated question 1?" {
		t.Fatalf("expected model output to be used, got %q", questions[0].Text)
	}
}
