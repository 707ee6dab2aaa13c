package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStudySetCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudySetRepo()
	ctx := context.Background()

	set, err := repo.Create(ctx, "Biology Basics", true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if set.ID == "" {
		t.Fatal("expected assigned ID")
	}
	if set.Name != "Biology Basics" {
		t.Errorf("name = %q, want %q", set.Name, "Biology Basics")
	}

	got, err := repo.Get(ctx, set.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != set.ID {
		t.Fatalf("get returned %+v, want ID %s", got, set.ID)
	}

	missing, err := repo.Get(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing study set")
	}
}

func TestQuestionInsertAndBySet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	set, err := s.StudySetRepo().Create(ctx, "Physics Set", true)
	if err != nil {
		t.Fatalf("create set: %v", err)
	}

	repo := s.QuestionRepo()
	row := &QuestionRow{
		StudySet:    set.ID,
		Question:    "What is the SI unit of force?",
		Options:     []string{"Newton", "Joule", "Watt", "Pascal"},
		Answer:      "Newton",
		Category:    "Mechanics",
		Explanation: "Force is measured in newtons.",
	}
	if err := repo.Insert(ctx, row); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if row.ID == 0 {
		t.Error("expected assigned row ID")
	}

	// A row without a category is valid.
	if err := repo.Insert(ctx, &QuestionRow{
		StudySet: set.ID,
		Question: "What is the speed of light?",
		Options:  []string{"3e8 m/s", "3e6 m/s", "3e10 m/s", "3e5 m/s"},
		Answer:   "3e8 m/s",
	}); err != nil {
		t.Fatalf("insert without category: %v", err)
	}

	rows, err := repo.BySet(ctx, set.ID)
	if err != nil {
		t.Fatalf("by set: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0].Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(rows[0].Options))
	}
	if rows[1].Category != "" {
		t.Errorf("expected empty category, got %q", rows[1].Category)
	}
}

func TestCategoryLookupAndCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.CategoryRepo()
	ctx := context.Background()

	got, err := repo.ByName(ctx, "Algebra")
	if err != nil {
		t.Fatalf("lookup (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for unknown category")
	}

	created, err := repo.Create(ctx, "Algebra", "Mathematics")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Subject != "Mathematics" {
		t.Errorf("subject = %q, want Mathematics", created.Subject)
	}

	got, err = repo.ByName(ctx, "Algebra")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil || got.Name != "Algebra" {
		t.Fatalf("lookup returned %+v", got)
	}

	// Category without subject.
	noSubj, err := repo.Create(ctx, "Trivia", "")
	if err != nil {
		t.Fatalf("create without subject: %v", err)
	}
	if noSubj.Subject != "" {
		t.Errorf("expected empty subject, got %q", noSubj.Subject)
	}
}

func TestSubjectUpsertIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubjectRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, "History"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	// Second upsert of the same subject must succeed.
	if err := repo.Upsert(ctx, "History"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"question-gen", "classify", "classify"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock",
			Model:    "mock",
			Purpose:  purpose,
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	classify, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "classify", Limit: 1})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(classify) != 1 {
		t.Fatalf("expected 1 event, got %d", len(classify))
	}
	if classify[0].Purpose != "classify" {
		t.Errorf("purpose = %q, want classify", classify[0].Purpose)
	}
}

func TestLLMEventGetAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "question-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "question-gen", InputTokens: 120, OutputTokens: 380, LatencyMs: 1100, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "classify", InputTokens: 40, OutputTokens: 10, LatencyMs: 200, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != all[0].ID {
		t.Fatalf("get returned %+v, want event %d", got, all[0].ID)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := make(map[string]PurposeUsage, len(usage))
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	gen := byPurpose["question-gen"]
	if gen.Calls != 2 || gen.InputTokens != 220 || gen.OutputTokens != 780 {
		t.Errorf("question-gen usage = %+v", gen)
	}
	if gen.AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", gen.AvgLatencyMs)
	}
	if byPurpose["classify"].Calls != 1 {
		t.Errorf("classify usage = %+v", byPurpose["classify"])
	}
}
