package store

import (
	"context"
	"fmt"

	"github.com/deepak/quizdeck/ent"
	"github.com/deepak/quizdeck/ent/studyset"
)

// studySetRepo implements StudySetRepo using the ent client.
type studySetRepo struct {
	client *ent.Client
}

func (r *studySetRepo) Create(ctx context.Context, name string, generated bool) (*StudySet, error) {
	row, err := r.client.StudySet.Create().
		SetName(name).
		SetGenerated(generated).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create study set: %w", err)
	}
	return entStudySet(row), nil
}

func (r *studySetRepo) Get(ctx context.Context, id string) (*StudySet, error) {
	row, err := r.client.StudySet.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get study set: %w", err)
	}
	return entStudySet(row), nil
}

func (r *studySetRepo) List(ctx context.Context) ([]*StudySet, error) {
	rows, err := r.client.StudySet.Query().
		Order(ent.Desc(studyset.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list study sets: %w", err)
	}
	out := make([]*StudySet, len(rows))
	for i, row := range rows {
		out[i] = entStudySet(row)
	}
	return out, nil
}

func entStudySet(row *ent.StudySet) *StudySet {
	return &StudySet{
		ID:        row.ID,
		Name:      row.Name,
		Generated: row.Generated,
		CreatedAt: row.CreatedAt,
	}
}
