package studyset

import (
	"context"
	"errors"
	"testing"

	"github.com/deepak/quizdeck/internal/quizgen"
	"github.com/deepak/quizdeck/internal/store"
)

type fakeSetRepo struct {
	created   []*store.StudySet
	createErr error
}

func (f *fakeSetRepo) Create(_ context.Context, name string, generated bool) (*store.StudySet, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	set := &store.StudySet{ID: "set-1", Name: name, Generated: generated}
	f.created = append(f.created, set)
	return set, nil
}

func (f *fakeSetRepo) Get(_ context.Context, id string) (*store.StudySet, error) { return nil, nil }
func (f *fakeSetRepo) List(_ context.Context) ([]*store.StudySet, error)         { return nil, nil }

type fakeQuestionRepo struct {
	rows    []*store.QuestionRow
	failOn  map[string]error
	nextID  int
	inserts int
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{failOn: make(map[string]error)}
}

func (f *fakeQuestionRepo) Insert(_ context.Context, row *store.QuestionRow) error {
	f.inserts++
	if err := f.failOn[row.Question]; err != nil {
		return err
	}
	f.nextID++
	row.ID = f.nextID
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeQuestionRepo) BySet(_ context.Context, setID string) ([]*store.QuestionRow, error) {
	return f.rows, nil
}

type fakeResolver struct {
	calls  []string
	result string
}

func (f *fakeResolver) Resolve(_ context.Context, categoryName, _ string) string {
	f.calls = append(f.calls, categoryName)
	if f.result == "" {
		return categoryName
	}
	return f.result
}

func q(text, category string) quizgen.Question {
	return quizgen.Question{
		Text:        text,
		Options:     quizgen.Options{"A", "B", "C", "D"},
		Answer:      "A",
		Category:    category,
		Explanation: "A is correct.",
	}
}

func TestSave_AllDistinct(t *testing.T) {
	sets := &fakeSetRepo{}
	qs := newFakeQuestionRepo()
	resolver := &fakeResolver{}
	svc := NewService(sets, qs, resolver)

	result, err := svc.Save(context.Background(), "My Set", []quizgen.Question{
		q("Q1?", "Algebra"), q("Q2?", "Geometry"), q("Q3?", "Algebra"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SavedCount != 3 {
		t.Errorf("saved = %d, want 3", result.SavedCount)
	}
	if result.StudySetID != "set-1" || result.StudySetName != "My Set" {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(resolver.calls) != 3 {
		t.Errorf("expected 3 resolver calls, got %d", len(resolver.calls))
	}
}

func TestSave_DuplicateTextSkipped(t *testing.T) {
	sets := &fakeSetRepo{}
	qs := newFakeQuestionRepo()
	svc := NewService(sets, qs, &fakeResolver{})

	distinct, err := svc.Save(context.Background(), "A", []quizgen.Question{
		q("Q1?", ""), q("Q2?", ""), q("Q3?", ""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qs2 := newFakeQuestionRepo()
	svc2 := NewService(&fakeSetRepo{}, qs2, &fakeResolver{})
	withDup, err := svc2.Save(context.Background(), "B", []quizgen.Question{
		q("Q1?", ""), q("Q2?", ""), q("Q1?", ""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if withDup.SavedCount != distinct.SavedCount-1 {
		t.Errorf("duplicate list saved %d, distinct list saved %d; want exactly one less",
			withDup.SavedCount, distinct.SavedCount)
	}
}

func TestSave_EmptyListIsFatal(t *testing.T) {
	sets := &fakeSetRepo{}
	svc := NewService(sets, newFakeQuestionRepo(), nil)

	_, err := svc.Save(context.Background(), "Empty", nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if len(sets.created) != 0 {
		t.Error("no study set insert should be attempted for an empty list")
	}
}

func TestSave_StudySetInsertFailureAborts(t *testing.T) {
	sets := &fakeSetRepo{createErr: errors.New("disk full")}
	qs := newFakeQuestionRepo()
	svc := NewService(sets, qs, nil)

	_, err := svc.Save(context.Background(), "Doomed", []quizgen.Question{q("Q1?", "")})
	if err == nil {
		t.Fatal("expected error")
	}
	if qs.inserts != 0 {
		t.Errorf("expected no question inserts after set failure, got %d", qs.inserts)
	}
}

func TestSave_RowFailureContinues(t *testing.T) {
	sets := &fakeSetRepo{}
	qs := newFakeQuestionRepo()
	qs.failOn["Q2?"] = errors.New("constraint violation")
	svc := NewService(sets, qs, nil)

	result, err := svc.Save(context.Background(), "Partial", []quizgen.Question{
		q("Q1?", ""), q("Q2?", ""), q("Q3?", ""),
	})
	if err != nil {
		t.Fatalf("row failure must not abort the batch: %v", err)
	}
	if result.SavedCount != 2 {
		t.Errorf("saved = %d, want 2", result.SavedCount)
	}
}

func TestSave_MalformedQuestionSkipped(t *testing.T) {
	svc := NewService(&fakeSetRepo{}, newFakeQuestionRepo(), nil)

	noOptions := quizgen.Question{Text: "Q-opts?", Answer: "A"}
	noText := quizgen.Question{Options: quizgen.Options{"A", "B", "C", "D"}, Answer: "A"}

	result, err := svc.Save(context.Background(), "Defects", []quizgen.Question{
		q("Q1?", ""), noOptions, noText,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SavedCount != 1 {
		t.Errorf("saved = %d, want 1", result.SavedCount)
	}
}

func TestSave_ResolverResultOnRow(t *testing.T) {
	qs := newFakeQuestionRepo()
	resolver := &fakeResolver{result: "Canonical"}
	svc := NewService(&fakeSetRepo{}, qs, resolver)

	_, err := svc.Save(context.Background(), "Resolved", []quizgen.Question{q("Q1?", "Raw Label")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs.rows) != 1 || qs.rows[0].Category != "Canonical" {
		t.Fatalf("row category = %q, want Canonical", qs.rows[0].Category)
	}
}

func TestSave_NoCategoryNoResolverCall(t *testing.T) {
	resolver := &fakeResolver{}
	svc := NewService(&fakeSetRepo{}, newFakeQuestionRepo(), resolver)

	_, err := svc.Save(context.Background(), "Uncategorized", []quizgen.Question{q("Q1?", "")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolver.calls) != 0 {
		t.Errorf("expected no resolver calls, got %v", resolver.calls)
	}
}
