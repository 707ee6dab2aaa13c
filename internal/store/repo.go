package store

import (
	"context"
	"time"
)

// StudySet is a persisted named collection of quiz questions.
type StudySet struct {
	ID        string
	Name      string
	Generated bool
	CreatedAt time.Time
}

// QuestionRow is one persisted quiz question.
type QuestionRow struct {
	ID          int
	StudySet    string
	Question    string
	Options     []string
	Answer      string
	Category    string // empty when classification failed
	Explanation string
}

// Category is a taxonomy entry mapping a category name to a subject.
type Category struct {
	ID      int
	Name    string
	Subject string // empty when no subject was inferred
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// StudySetRepo manages study set rows.
type StudySetRepo interface {
	// Create inserts a new study set and returns it with its assigned ID.
	Create(ctx context.Context, name string, generated bool) (*StudySet, error)

	// Get returns the study set with the given ID, or nil if not found.
	Get(ctx context.Context, id string) (*StudySet, error)

	// List returns all study sets, newest first.
	List(ctx context.Context) ([]*StudySet, error)
}

// QuestionRepo manages persisted quiz questions.
type QuestionRepo interface {
	// Insert stores one question row.
	Insert(ctx context.Context, row *QuestionRow) error

	// BySet returns all questions belonging to the given study set.
	BySet(ctx context.Context, setID string) ([]*QuestionRow, error)
}

// CategoryRepo manages taxonomy categories.
type CategoryRepo interface {
	// ByName returns the category with the given name, or nil if absent.
	ByName(ctx context.Context, name string) (*Category, error)

	// Create inserts a category. Subject may be empty.
	Create(ctx context.Context, name, subject string) (*Category, error)
}

// SubjectRepo manages taxonomy subjects.
type SubjectRepo interface {
	// Upsert inserts the subject if it does not already exist.
	// An existing row is success, not failure.
	Upsert(ctx context.Context, subject string) error
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns logged events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}
