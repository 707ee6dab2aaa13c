package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deepak/quizdeck/ent"
)

// subjectRepo implements SubjectRepo using the ent client.
type subjectRepo struct {
	client *ent.Client
}

func (r *subjectRepo) Upsert(ctx context.Context, subject string) error {
	err := r.client.Subject.Create().
		SetSubject(subject).
		OnConflict().
		DoNothing().
		Exec(ctx)
	if err != nil {
		// DoNothing reports ErrNoRows when the row already existed.
		if errors.Is(err, sql.ErrNoRows) || ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("upsert subject %q: %w", subject, err)
	}
	return nil
}
