package store

import (
	"context"
	"fmt"

	"github.com/deepak/quizdeck/ent"
	"github.com/deepak/quizdeck/ent/category"
)

// categoryRepo implements CategoryRepo using the ent client.
type categoryRepo struct {
	client *ent.Client
}

func (r *categoryRepo) ByName(ctx context.Context, name string) (*Category, error) {
	row, err := r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup category %q: %w", name, err)
	}
	return entCategory(row), nil
}

func (r *categoryRepo) Create(ctx context.Context, name, subject string) (*Category, error) {
	create := r.client.Category.Create().SetName(name)
	if subject != "" {
		create.SetSubject(subject)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return entCategory(row), nil
}

func entCategory(row *ent.Category) *Category {
	return &Category{
		ID:      row.ID,
		Name:    row.Name,
		Subject: row.Subject,
	}
}
