package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/deepak/quizdeck/internal/llm"
	"github.com/deepak/quizdeck/internal/samples"
)

func questionJSON(n int) string {
	return fmt.Sprintf(`{
		"question": "Question %d?",
		"options": ["A%d", "B%d", "C%d", "D%d"],
		"answer": "A%d",
		"category": "Category %d",
		"explanation": "A%d is correct."
	}`, n, n, n, n, n, n, n, n)
}

func batchJSON(key string, n int) json.RawMessage {
	items := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			items += ","
		}
		items += questionJSON(i)
	}
	return json.RawMessage(fmt.Sprintf(`{"%s": [%s]}`, key, items))
}

func checkCompleted(t *testing.T, qs []Question, want int) {
	t.Helper()
	if len(qs) != want {
		t.Fatalf("expected %d questions, got %d", want, len(qs))
	}
	for i, q := range qs {
		if len(q.Options) != 4 {
			t.Errorf("question %d: expected 4 options, got %d", i, len(q.Options))
		}
		if !structurallyValid(q) {
			t.Errorf("question %d: answer %q not among options %v", i, q.Answer, q.Options)
		}
	}
}

func TestComplete_ExactCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON("study_questions", 5)})
	c := New(mock, DefaultConfig())

	qs, err := c.Complete(context.Background(), "history", DifficultyMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkCompleted(t, qs, 5)
	if qs[0].Text != "Question 0?" {
		t.Errorf("unexpected first question: %q", qs[0].Text)
	}
}

func TestComplete_TruncatesPreservingOrder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON("study_questions", 7)})
	c := New(mock, DefaultConfig())

	qs, err := c.Complete(context.Background(), "history", DifficultyMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkCompleted(t, qs, 5)
	for i := 0; i < 5; i++ {
		if want := fmt.Sprintf("Question %d?", i); qs[i].Text != want {
			t.Errorf("position %d: got %q, want %q", i, qs[i].Text, want)
		}
	}
}

func TestComplete_SynthesizesShortfallWithRotation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON("study_questions", 2)})
	c := New(mock, DefaultConfig())

	qs, err := c.Complete(context.Background(), "history", DifficultyMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkCompleted(t, qs, 5)

	// First two are the model's candidates.
	if qs[0].Text != "Question 0?" || qs[1].Text != "Question 1?" {
		t.Errorf("model candidates not preserved: %q, %q", qs[0].Text, qs[1].Text)
	}

	// The synthesized tail continues the rotation where the candidates left off.
	cats := samples.CategoriesFor("history")
	for i := 2; i < 5; i++ {
		if want := cats[i%len(cats)]; qs[i].Category != want {
			t.Errorf("synthesized question %d: category %q, want %q", i, qs[i].Category, want)
		}
	}
}

func TestComplete_DropsMalformedCandidates(t *testing.T) {
	// Answer not among options, 3 options, empty text: all dropped.
	raw := json.RawMessage(`{"study_questions": [
		{"question": "Bad answer?", "options": ["A", "B", "C", "D"], "answer": "E", "category": "X", "explanation": ""},
		{"question": "Too few?", "options": ["A", "B", "C"], "answer": "A", "category": "X", "explanation": ""},
		{"question": "", "options": ["A", "B", "C", "D"], "answer": "A", "category": "X", "explanation": ""},
		` + questionJSON(0) + `
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	c := New(mock, DefaultConfig())

	qs, err := c.Complete(context.Background(), "science", DifficultyEasy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkCompleted(t, qs, 5)
	if qs[0].Text != "Question 0?" {
		t.Errorf("surviving candidate should come first, got %q", qs[0].Text)
	}
}

func TestComplete_UnparseableResponseSynthesizesAll(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"not even close`)})
	c := New(mock, DefaultConfig())

	qs, err := c.Complete(context.Background(), "mathematics", DifficultyHard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkCompleted(t, qs, 5)

	cats := samples.CategoriesFor("mathematics")
	for i, q := range qs {
		if q.Category != cats[i%len(cats)] {
			t.Errorf("question %d: category %q, want %q", i, q.Category, cats[i%len(cats)])
		}
	}
}

func TestComplete_SalvagesInvalidResponseContent(t *testing.T) {
	// Schema validation failed upstream, but the content still holds a
	// usable (aliased) envelope.
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: batchJSON("questions", 5),
			Err:     errors.New("schema validation failed"),
		},
	})
	c := New(mock, DefaultConfig())

	qs, err := c.Complete(context.Background(), "history", DifficultyMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkCompleted(t, qs, 5)
}

func TestComplete_ProviderUnavailablePropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	c := New(mock, DefaultConfig())

	_, err := c.Complete(context.Background(), "history", DifficultyMedium)
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestDecodeCandidates_EnvelopePriority(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"preferred key", string(batchJSON("study_questions", 3)), 3},
		{"bare array", `[` + questionJSON(0) + `]`, 1},
		{"questions alias", string(batchJSON("questions", 2)), 2},
		{"quiz_questions alias", string(batchJSON("quiz_questions", 4)), 4},
		{"unknown key", `{"items": [` + questionJSON(0) + `]}`, 0},
		{"garbage", `not json`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeCandidates(json.RawMessage(tt.raw))
			if len(got) != tt.want {
				t.Errorf("decoded %d candidates, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDecodeCandidates_PreferredKeyWins(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [` + questionJSON(1) + `],
		"study_questions": [` + questionJSON(0) + `]
	}`)
	got := decodeCandidates(raw)
	if len(got) != 1 || got[0].Text != "Question 0?" {
		t.Fatalf("expected the study_questions envelope to win, got %+v", got)
	}
}

func TestOptions_DecodeFromSerializedString(t *testing.T) {
	direct := []byte(`{"question": "Q?", "options": ["A", "B", "C", "D"], "answer": "A", "category": "", "explanation": ""}`)
	nested := []byte(`{"question": "Q?", "options": "[\"A\", \"B\", \"C\", \"D\"]", "answer": "A", "category": "", "explanation": ""}`)

	var q1, q2 Question
	if err := json.Unmarshal(direct, &q1); err != nil {
		t.Fatalf("direct decode: %v", err)
	}
	if err := json.Unmarshal(nested, &q2); err != nil {
		t.Fatalf("nested decode: %v", err)
	}

	if len(q1.Options) != 4 || len(q2.Options) != 4 {
		t.Fatalf("expected 4 options each, got %d and %d", len(q1.Options), len(q2.Options))
	}
	for i := range q1.Options {
		if q1.Options[i] != q2.Options[i] {
			t.Errorf("option %d differs: %q vs %q", i, q1.Options[i], q2.Options[i])
		}
	}
}

func TestOptions_MalformedDegradesToEmpty(t *testing.T) {
	var q Question
	raw := []byte(`{"question": "Q?", "options": 42, "answer": "A", "category": "", "explanation": ""}`)
	if err := json.Unmarshal(raw, &q); err != nil {
		t.Fatalf("decode should not fail: %v", err)
	}
	if len(q.Options) != 0 {
		t.Errorf("expected empty options, got %v", q.Options)
	}
}
