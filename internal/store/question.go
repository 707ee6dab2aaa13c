package store

import (
	"context"
	"fmt"

	"github.com/deepak/quizdeck/ent"
	"github.com/deepak/quizdeck/ent/quizquestion"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Insert(ctx context.Context, row *QuestionRow) error {
	create := r.client.QuizQuestion.Create().
		SetStudySet(row.StudySet).
		SetQuestion(row.Question).
		SetOptions(row.Options).
		SetAnswer(row.Answer).
		SetExplanation(row.Explanation)
	if row.Category != "" {
		create.SetCategory(row.Category)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	row.ID = saved.ID
	return nil
}

func (r *questionRepo) BySet(ctx context.Context, setID string) ([]*QuestionRow, error) {
	rows, err := r.client.QuizQuestion.Query().
		Where(quizquestion.StudySet(setID)).
		Order(ent.Asc(quizquestion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for set %s: %w", setID, err)
	}

	out := make([]*QuestionRow, len(rows))
	for i, q := range rows {
		out[i] = &QuestionRow{
			ID:          q.ID,
			StudySet:    q.StudySet,
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Category:    q.Category,
			Explanation: q.Explanation,
		}
	}
	return out, nil
}
