package quizgen

import (
	"strings"
	"testing"

	"github.com/deepak/quizdeck/internal/samples"
)

func TestSynthesize_MathematicsUsesAlgebraExemplar(t *testing.T) {
	cats := samples.CategoriesFor("mathematics")

	qs := Synthesize("mathematics", cats, DifficultyEasy, 0, 1)
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}

	q := qs[0]
	if !strings.Contains(q.Text, "2x + 6 = 14") {
		t.Errorf("expected the algebra exemplar, got %q", q.Text)
	}
	if q.Answer != "x = 4" {
		t.Errorf("answer = %q, want %q", q.Answer, "x = 4")
	}
	if q.Category != cats[0] {
		t.Errorf("category = %q, want rotation slot 0 = %q", q.Category, cats[0])
	}
}

func TestSynthesize_CategoryRotationWraps(t *testing.T) {
	cats := []string{"One", "Two", "Three"}

	qs := Synthesize("history", cats, DifficultyMedium, 0, 7)
	if len(qs) != 7 {
		t.Fatalf("expected 7 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if want := cats[i%3]; q.Category != want {
			t.Errorf("question %d: category %q, want %q", i, q.Category, want)
		}
	}
}

func TestSynthesize_StartOffsetContinuesRotation(t *testing.T) {
	cats := []string{"One", "Two", "Three"}

	qs := Synthesize("history", cats, DifficultyMedium, 2, 2)
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Category != "Three" || qs[1].Category != "One" {
		t.Errorf("rotation from offset 2 gave %q, %q", qs[0].Category, qs[1].Category)
	}
}

func TestSynthesize_UnknownSubjectGeneratesGenericRecords(t *testing.T) {
	cats := samples.CategoriesFor("basket weaving")

	qs := Synthesize("basket weaving", cats, DifficultyMedium, 0, 5)
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if !structurallyValid(q) {
			t.Errorf("question %d is not structurally valid: %+v", i, q)
		}
		if !strings.Contains(q.Text, "basket weaving") {
			t.Errorf("question %d should reference the subject: %q", i, q.Text)
		}
		if want := "The " + q.Category + " principle"; q.Answer != want {
			t.Errorf("question %d: answer %q, want %q", i, q.Answer, want)
		}
	}
}

func TestSynthesize_AnswerAlwaysAmongOptions(t *testing.T) {
	subjects := []string{"mathematics", "history", "science", "literature", "geography", "programming", "rocketry"}

	for _, subject := range subjects {
		cats := samples.CategoriesFor(subject)
		for _, q := range Synthesize(subject, cats, DifficultyHard, 0, 5) {
			if !structurallyValid(q) {
				t.Errorf("subject %s: invalid record %+v", subject, q)
			}
		}
	}
}

func TestCategoriesFor_KnownAndUnknownSubjects(t *testing.T) {
	tests := []struct {
		subject string
		first   string
	}{
		{"mathematics", "Algebra"},
		{"Advanced Mathematics", "Algebra"},
		{"HISTORY", "Ancient History"},
		{"computer programming", "Data Structures"},
		{"underwater basket weaving", "Fundamentals"},
		{"", "Fundamentals"},
	}

	for _, tt := range tests {
		cats := samples.CategoriesFor(tt.subject)
		if len(cats) != 5 {
			t.Errorf("%q: expected 5 categories, got %d", tt.subject, len(cats))
			continue
		}
		if cats[0] != tt.first {
			t.Errorf("%q: first category %q, want %q", tt.subject, cats[0], tt.first)
		}
	}
}
