package studyset

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/deepak/quizdeck/internal/quizgen"
	"github.com/deepak/quizdeck/internal/store"
)

// ErrNoQuestions is returned when Save is called with an empty question list.
// No partial work is performed.
var ErrNoQuestions = errors.New("study set has no questions")

// CategoryResolver maps a free-text category label to a canonical category
// name, creating taxonomy rows as needed. An empty result means the category
// could not be resolved.
type CategoryResolver interface {
	Resolve(ctx context.Context, categoryName, questionText string) string
}

// SaveResult reports the outcome of persisting one study set.
type SaveResult struct {
	StudySetID   string
	StudySetName string
	SavedCount   int
}

// Service persists completed question sets.
type Service struct {
	sets      store.StudySetRepo
	questions store.QuestionRepo
	resolver  CategoryResolver
}

// NewService creates a Service. The resolver may be nil, in which case
// questions are saved without categories.
func NewService(sets store.StudySetRepo, questions store.QuestionRepo, resolver CategoryResolver) *Service {
	return &Service{sets: sets, questions: questions, resolver: resolver}
}

// Save creates the study set row and walks the questions in order, applying
// text-based deduplication, field validation, and per-question
// classification. A failed study set insert aborts the whole operation;
// failures on individual questions are logged and skipped, so SavedCount may
// be less than len(questions).
func (s *Service) Save(ctx context.Context, name string, questions []quizgen.Question) (*SaveResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	set, err := s.sets.Create(ctx, name, true)
	if err != nil {
		return nil, fmt.Errorf("create study set: %w", err)
	}

	seen := make(map[string]bool, len(questions))
	saved := 0

	for i, q := range questions {
		if seen[q.Text] {
			fmt.Fprintf(os.Stderr, "warning: skipping duplicate question %d: %q\n", i, q.Text)
			continue
		}
		// Record the text before any fallible step so a failed record is
		// not retried as "new" by a later duplicate.
		seen[q.Text] = true

		category := ""
		if q.Category != "" && s.resolver != nil {
			category = s.resolver.Resolve(ctx, q.Category, q.Text)
		}

		if q.Text == "" || len(q.Options) == 0 {
			fmt.Fprintf(os.Stderr, "warning: skipping malformed question %d: missing text or options\n", i)
			continue
		}

		row := &store.QuestionRow{
			StudySet:    set.ID,
			Question:    q.Text,
			Options:     q.Options,
			Answer:      q.Answer,
			Category:    category,
			Explanation: q.Explanation,
		}
		if err := s.questions.Insert(ctx, row); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save question %d: %v\n", i, err)
			continue
		}
		saved++
	}

	return &SaveResult{
		StudySetID:   set.ID,
		StudySetName: set.Name,
		SavedCount:   saved,
	}, nil
}
