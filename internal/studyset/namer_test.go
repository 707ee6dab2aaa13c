package studyset

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/deepak/quizdeck/internal/llm"
	"github.com/deepak/quizdeck/internal/quizgen"
)

func TestNameFor_ModelName(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Ancient Empires Challenge"`),
	})
	namer := NewNamer(mock, DefaultNamerConfig())

	name := namer.NameFor(context.Background(), "history", []quizgen.Question{
		q("Q1?", "Ancient History"),
	})
	if name != "Ancient Empires Challenge" {
		t.Errorf("name = %q, want Ancient Empires Challenge", name)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema != nil {
		t.Error("naming request should not carry a schema")
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "history") || !strings.Contains(prompt, "Ancient History") {
		t.Errorf("prompt missing subject or categories: %q", prompt)
	}
}

func TestNameFor_CleansWrappingNoise(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"  'Ancient Civilizations Quiz'  "`),
	})
	namer := NewNamer(mock, DefaultNamerConfig())

	name := namer.NameFor(context.Background(), "history", nil)
	if name != "Ancient Civilizations Quiz" {
		t.Errorf("name = %q, want Ancient Civilizations Quiz", name)
	}
}

func TestNameFor_OversizeFallsBack(t *testing.T) {
	long := strings.Repeat("Extremely Verbose Naming ", 4)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"` + long + `"`),
	})
	namer := NewNamer(mock, DefaultNamerConfig())

	name := namer.NameFor(context.Background(), "science", []quizgen.Question{
		q("Q1?", "Biology"), q("Q2?", "Chemistry"), q("Q3?", "Physics"),
	})
	if name != "science Study Set: Biology & Chemistry" {
		t.Errorf("name = %q, want two-category fallback", name)
	}
}

func TestNameFor_EmptyAnswerFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"   "`),
	})
	namer := NewNamer(mock, DefaultNamerConfig())

	name := namer.NameFor(context.Background(), "geography", nil)
	if name != "geography Study Set" {
		t.Errorf("name = %q, want geography Study Set", name)
	}
}

func TestNameFor_ProviderErrorUsesDateFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	namer := NewNamer(mock, DefaultNamerConfig())

	name := namer.NameFor(context.Background(), "literature", nil)
	want := "literature Study Set (" + time.Now().Format("Jan 2, 2006") + ")"
	if name != want {
		t.Errorf("name = %q, want %q", name, want)
	}
}

func TestNameFor_NilProvider(t *testing.T) {
	namer := NewNamer(nil, DefaultNamerConfig())

	name := namer.NameFor(context.Background(), "programming", []quizgen.Question{
		q("Q1?", "Data Structures"),
	})
	if name != "programming Study Set: Data Structures" {
		t.Errorf("name = %q, want single-category fallback", name)
	}
}

func TestFallbackName_ShrinksWhenCategoriesOverflow(t *testing.T) {
	cats := []string{"An Extraordinarily Long Category Name", "Another Very Long One"}
	name := fallbackName("mathematics", cats)
	if name != "mathematics Study Set" {
		t.Errorf("name = %q, want bare subject fallback", name)
	}
}

func TestCollectCategories(t *testing.T) {
	questions := []quizgen.Question{
		q("Q1?", "Algebra"),
		q("Q2?", ""),
		q("Q3?", "Algebra"),
		q("Q4?", "Geometry"),
		q("Q5?", "Calculus"),
		q("Q6?", "Statistics"),
	}
	got := collectCategories(questions, 3)
	want := []string{"Algebra", "Geometry", "Calculus"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d = %q, want %q", i, got[i], want[i])
		}
	}
}
