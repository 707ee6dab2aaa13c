// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deepak/quizdeck/ent/quizquestion"
)

// QuizQuestionCreate is the builder for creating a QuizQuestion entity.
type QuizQuestionCreate struct {
	config
	mutation *QuizQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudySet sets the "study_set" field.
func (_c *QuizQuestionCreate) SetStudySet(v string) *QuizQuestionCreate {
	_c.mutation.SetStudySet(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QuizQuestionCreate) SetQuestion(v string) *QuizQuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuizQuestionCreate) SetOptions(v []string) *QuizQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuizQuestionCreate) SetAnswer(v string) *QuizQuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *QuizQuestionCreate) SetCategory(v string) *QuizQuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableCategory(v *string) *QuizQuestionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuizQuestionCreate) SetExplanation(v string) *QuizQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableExplanation(v *string) *QuizQuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_c *QuizQuestionCreate) Mutation() *QuizQuestionMutation {
	return _c.mutation
}

// Save creates the QuizQuestion in the database.
func (_c *QuizQuestionCreate) Save(ctx context.Context) (*QuizQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizQuestionCreate) SaveX(ctx context.Context) *QuizQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizQuestionCreate) defaults() {
	if _, ok := _c.mutation.Explanation(); !ok {
		v := quizquestion.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizQuestionCreate) check() error {
	if _, ok := _c.mutation.StudySet(); !ok {
		return &ValidationError{Name: "study_set", err: errors.New(`ent: missing required field "QuizQuestion.study_set"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QuizQuestion.question"`)}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "QuizQuestion.options"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "QuizQuestion.answer"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "QuizQuestion.explanation"`)}
	}
	return nil
}

func (_c *QuizQuestionCreate) sqlSave(ctx context.Context) (*QuizQuestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizQuestionCreate) createSpec() (*QuizQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizquestion.Table, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.StudySet(); ok {
		_spec.SetField(quizquestion.FieldStudySet, field.TypeString, value)
		_node.StudySet = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(quizquestion.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(quizquestion.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(quizquestion.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizQuestion.Create().
//		SetStudySet(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizQuestionUpsert) {
//			SetStudySet(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizQuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuizQuestionUpsertOne {
	_c.conflict = opts
	return &QuizQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizQuestionCreate) OnConflictColumns(columns ...string) *QuizQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizQuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuizQuestionUpsertOne is the builder for "upsert"-ing
	//  one QuizQuestion node.
	QuizQuestionUpsertOne struct {
		create *QuizQuestionCreate
	}

	// QuizQuestionUpsert is the "OnConflict" setter.
	QuizQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStudySet sets the "study_set" field.
func (u *QuizQuestionUpsert) SetStudySet(v string) *QuizQuestionUpsert {
	u.Set(quizquestion.FieldStudySet, v)
	return u
}

// UpdateStudySet sets the "study_set" field to the value that was provided on create.
func (u *QuizQuestionUpsert) UpdateStudySet() *QuizQuestionUpsert {
	u.SetExcluded(quizquestion.FieldStudySet)
	return u
}

// SetQuestion sets the "question" field.
func (u *QuizQuestionUpsert) SetQuestion(v string) *QuizQuestionUpsert {
	u.Set(quizquestion.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *QuizQuestionUpsert) UpdateQuestion() *QuizQuestionUpsert {
	u.SetExcluded(quizquestion.FieldQuestion)
	return u
}

// SetOptions sets the "options" field.
func (u *QuizQuestionUpsert) SetOptions(v []string) *QuizQuestionUpsert {
	u.Set(quizquestion.FieldOptions, v)
	return u
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuizQuestionUpsert) UpdateOptions() *QuizQuestionUpsert {
	u.SetExcluded(quizquestion.FieldOptions)
	return u
}

// SetAnswer sets the "answer" field.
func (u *QuizQuestionUpsert) SetAnswer(v string) *QuizQuestionUpsert {
	u.Set(quizquestion.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuizQuestionUpsert) UpdateAnswer() *QuizQuestionUpsert {
	u.SetExcluded(quizquestion.FieldAnswer)
	return u
}

// SetCategory sets the "category" field.
func (u *QuizQuestionUpsert) SetCategory(v string) *QuizQuestionUpsert {
	u.Set(quizquestion.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuizQuestionUpsert) UpdateCategory() *QuizQuestionUpsert {
	u.SetExcluded(quizquestion.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *QuizQuestionUpsert) ClearCategory() *QuizQuestionUpsert {
	u.SetNull(quizquestion.FieldCategory)
	return u
}

// SetExplanation sets the "explanation" field.
func (u *QuizQuestionUpsert) SetExplanation(v string) *QuizQuestionUpsert {
	u.Set(quizquestion.FieldExplanation, v)
	return u
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *QuizQuestionUpsert) UpdateExplanation() *QuizQuestionUpsert {
	u.SetExcluded(quizquestion.FieldExplanation)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuizQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizQuestionUpsertOne) UpdateNewValues() *QuizQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuizQuestionUpsertOne) Ignore() *QuizQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizQuestionUpsertOne) DoNothing() *QuizQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizQuestionCreate.OnConflict
// documentation for more info.
func (u *QuizQuestionUpsertOne) Update(set func(*QuizQuestionUpsert)) *QuizQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStudySet sets the "study_set" field.
func (u *QuizQuestionUpsertOne) SetStudySet(v string) *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetStudySet(v)
	})
}

// UpdateStudySet sets the "study_set" field to the value that was provided on create.
func (u *QuizQuestionUpsertOne) UpdateStudySet() *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateStudySet()
	})
}

// SetQuestion sets the "question" field.
func (u *QuizQuestionUpsertOne) SetQuestion(v string) *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *QuizQuestionUpsertOne) UpdateQuestion() *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateQuestion()
	})
}

// SetOptions sets the "options" field.
func (u *QuizQuestionUpsertOne) SetOptions(v []string) *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuizQuestionUpsertOne) UpdateOptions() *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateOptions()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuizQuestionUpsertOne) SetAnswer(v string) *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuizQuestionUpsertOne) UpdateAnswer() *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateAnswer()
	})
}

// SetCategory sets the "category" field.
func (u *QuizQuestionUpsertOne) SetCategory(v string) *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuizQuestionUpsertOne) UpdateCategory() *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *QuizQuestionUpsertOne) ClearCategory() *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.ClearCategory()
	})
}

// SetExplanation sets the "explanation" field.
func (u *QuizQuestionUpsertOne) SetExplanation(v string) *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetExplanation(v)
	})
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *QuizQuestionUpsertOne) UpdateExplanation() *QuizQuestionUpsertOne {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateExplanation()
	})
}

// Exec executes the query.
func (u *QuizQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuizQuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuizQuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuizQuestionCreateBulk is the builder for creating many QuizQuestion entities in bulk.
type QuizQuestionCreateBulk struct {
	config
	err      error
	builders []*QuizQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the QuizQuestion entities in the database.
func (_c *QuizQuestionCreateBulk) Save(ctx context.Context) ([]*QuizQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizQuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizQuestionCreateBulk) SaveX(ctx context.Context) []*QuizQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizQuestionUpsert) {
//			SetStudySet(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuizQuestionUpsertBulk {
	_c.conflict = opts
	return &QuizQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizQuestionCreateBulk) OnConflictColumns(columns ...string) *QuizQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizQuestionUpsertBulk{
		create: _c,
	}
}

// QuizQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of QuizQuestion nodes.
type QuizQuestionUpsertBulk struct {
	create *QuizQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuizQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizQuestionUpsertBulk) UpdateNewValues() *QuizQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuizQuestionUpsertBulk) Ignore() *QuizQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizQuestionUpsertBulk) DoNothing() *QuizQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuizQuestionUpsertBulk) Update(set func(*QuizQuestionUpsert)) *QuizQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStudySet sets the "study_set" field.
func (u *QuizQuestionUpsertBulk) SetStudySet(v string) *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetStudySet(v)
	})
}

// UpdateStudySet sets the "study_set" field to the value that was provided on create.
func (u *QuizQuestionUpsertBulk) UpdateStudySet() *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateStudySet()
	})
}

// SetQuestion sets the "question" field.
func (u *QuizQuestionUpsertBulk) SetQuestion(v string) *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *QuizQuestionUpsertBulk) UpdateQuestion() *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateQuestion()
	})
}

// SetOptions sets the "options" field.
func (u *QuizQuestionUpsertBulk) SetOptions(v []string) *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuizQuestionUpsertBulk) UpdateOptions() *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateOptions()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuizQuestionUpsertBulk) SetAnswer(v string) *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuizQuestionUpsertBulk) UpdateAnswer() *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateAnswer()
	})
}

// SetCategory sets the "category" field.
func (u *QuizQuestionUpsertBulk) SetCategory(v string) *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuizQuestionUpsertBulk) UpdateCategory() *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *QuizQuestionUpsertBulk) ClearCategory() *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.ClearCategory()
	})
}

// SetExplanation sets the "explanation" field.
func (u *QuizQuestionUpsertBulk) SetExplanation(v string) *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.SetExplanation(v)
	})
}

// UpdateExplanation sets the "explanation" field to the value that was provided on create.
func (u *QuizQuestionUpsertBulk) UpdateExplanation() *QuizQuestionUpsertBulk {
	return u.Update(func(s *QuizQuestionUpsert) {
		s.UpdateExplanation()
	})
}

// Exec executes the query.
func (u *QuizQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuizQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
