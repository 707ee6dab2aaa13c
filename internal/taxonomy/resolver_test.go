package taxonomy

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deepak/quizdeck/internal/llm"
	"github.com/deepak/quizdeck/internal/store"
)

// fakeCategoryRepo is an in-memory CategoryRepo that records calls.
type fakeCategoryRepo struct {
	rows       map[string]*store.Category
	nextID     int
	createErr  error
	lookupErr  error
	createCall int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: make(map[string]*store.Category)}
}

func (f *fakeCategoryRepo) ByName(_ context.Context, name string) (*store.Category, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.rows[name], nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, name, subject string) (*store.Category, error) {
	f.createCall++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	c := &store.Category{ID: f.nextID, Name: name, Subject: subject}
	f.rows[name] = c
	return c, nil
}

// fakeSubjectRepo is an in-memory SubjectRepo that records upserts.
type fakeSubjectRepo struct {
	subjects  map[string]int
	upsertErr error
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[string]int)}
}

func (f *fakeSubjectRepo) Upsert(_ context.Context, subject string) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.subjects[subject]++
	return nil
}

func subjectResponse(subject string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{"subject": "` + subject + `"}`)}
}

func TestResolve_LookupHitSkipsInference(t *testing.T) {
	cats := newFakeCategoryRepo()
	cats.rows["Algebra"] = &store.Category{ID: 1, Name: "Algebra", Subject: "Mathematics"}
	subs := newFakeSubjectRepo()
	mock := llm.NewMockProvider() // empty queue: any call would fail

	r := NewResolver(mock, cats, subs, DefaultConfig())

	got := r.Resolve(context.Background(), "Algebra", "Solve for x.")
	if got != "Algebra" {
		t.Fatalf("resolve = %q, want Algebra", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected 0 inference calls, got %d", mock.CallCount())
	}
	if cats.createCall != 0 {
		t.Errorf("expected no create, got %d", cats.createCall)
	}
}

func TestResolve_MissInfersUpsertsAndCreates(t *testing.T) {
	cats := newFakeCategoryRepo()
	subs := newFakeSubjectRepo()
	mock := llm.NewMockProvider(subjectResponse("Mathematics"))

	r := NewResolver(mock, cats, subs, DefaultConfig())

	got := r.Resolve(context.Background(), "Linear Equations", "Solve for x: 2x = 8.")
	if got != "Linear Equations" {
		t.Fatalf("resolve = %q, want Linear Equations", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 inference call, got %d", mock.CallCount())
	}
	if subs.subjects["Mathematics"] != 1 {
		t.Errorf("expected Mathematics upserted once, got %d", subs.subjects["Mathematics"])
	}
	created := cats.rows["Linear Equations"]
	if created == nil || created.Subject != "Mathematics" {
		t.Fatalf("created category = %+v, want subject Mathematics", created)
	}

	// A repeat request finds the row and performs zero inference calls.
	got = r.Resolve(context.Background(), "Linear Equations", "Solve for x: 2x = 8.")
	if got != "Linear Equations" {
		t.Fatalf("second resolve = %q, want Linear Equations", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected still 1 inference call, got %d", mock.CallCount())
	}
	if cats.createCall != 1 {
		t.Errorf("expected exactly 1 create, got %d", cats.createCall)
	}
}

func TestResolve_InferenceFailureCreatesWithoutSubject(t *testing.T) {
	cats := newFakeCategoryRepo()
	subs := newFakeSubjectRepo()
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})

	r := NewResolver(mock, cats, subs, DefaultConfig())

	got := r.Resolve(context.Background(), "Trivia", "")
	if got != "Trivia" {
		t.Fatalf("resolve = %q, want Trivia", got)
	}
	if len(subs.subjects) != 0 {
		t.Errorf("expected no subject upserts, got %v", subs.subjects)
	}
	if created := cats.rows["Trivia"]; created == nil || created.Subject != "" {
		t.Fatalf("created category = %+v, want empty subject", created)
	}
}

func TestResolve_SubjectUpsertFailureStillCreatesCategory(t *testing.T) {
	cats := newFakeCategoryRepo()
	subs := newFakeSubjectRepo()
	subs.upsertErr = errors.New("disk full")
	mock := llm.NewMockProvider(subjectResponse("History"))

	r := NewResolver(mock, cats, subs, DefaultConfig())

	got := r.Resolve(context.Background(), "World Wars", "When did WWII end?")
	if got != "World Wars" {
		t.Fatalf("resolve = %q, want World Wars", got)
	}
	if created := cats.rows["World Wars"]; created == nil || created.Subject != "" {
		t.Fatalf("created category = %+v, want empty subject after upsert failure", created)
	}
}

func TestResolve_CreateFailureReturnsEmpty(t *testing.T) {
	cats := newFakeCategoryRepo()
	cats.createErr = errors.New("constraint violation")
	subs := newFakeSubjectRepo()
	mock := llm.NewMockProvider(subjectResponse("Science"))

	r := NewResolver(mock, cats, subs, DefaultConfig())

	if got := r.Resolve(context.Background(), "Optics", ""); got != "" {
		t.Fatalf("resolve = %q, want empty on create failure", got)
	}
}

func TestResolve_NilProviderSkipsInference(t *testing.T) {
	cats := newFakeCategoryRepo()
	subs := newFakeSubjectRepo()

	r := NewResolver(nil, cats, subs, DefaultConfig())

	if got := r.Resolve(context.Background(), "Grammar", ""); got != "Grammar" {
		t.Fatalf("resolve = %q, want Grammar", got)
	}
	if created := cats.rows["Grammar"]; created == nil || created.Subject != "" {
		t.Fatalf("created category = %+v, want empty subject", created)
	}
}

func TestCleanSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mathematics", "Mathematics"},
		{`"Mathematics"`, "Mathematics"},
		{"'Computer Science'", "Computer Science"},
		{"Physics.", "Physics"},
		{"  History  ", "History"},
		{"The subject is most likely Biology", "The subject is"},
		{"Political Science and Law", "Political Science and Law"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cleanSubject(tt.in); got != tt.want {
			t.Errorf("cleanSubject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
