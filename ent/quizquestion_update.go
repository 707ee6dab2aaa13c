// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/deepak/quizdeck/ent/predicate"
	"github.com/deepak/quizdeck/ent/quizquestion"
)

// QuizQuestionUpdate is the builder for updating QuizQuestion entities.
type QuizQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdate) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudySet sets the "study_set" field.
func (_u *QuizQuestionUpdate) SetStudySet(v string) *QuizQuestionUpdate {
	_u.mutation.SetStudySet(v)
	return _u
}

// SetNillableStudySet sets the "study_set" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableStudySet(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetStudySet(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuizQuestionUpdate) SetQuestion(v string) *QuizQuestionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableQuestion(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuizQuestionUpdate) SetOptions(v []string) *QuizQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuizQuestionUpdate) AppendOptions(v []string) *QuizQuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuizQuestionUpdate) SetAnswer(v string) *QuizQuestionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableAnswer(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuizQuestionUpdate) SetCategory(v string) *QuizQuestionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableCategory(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *QuizQuestionUpdate) ClearCategory() *QuizQuestionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuizQuestionUpdate) SetExplanation(v string) *QuizQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableExplanation(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdate) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudySet(); ok {
		_spec.SetField(quizquestion.FieldStudySet, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(quizquestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizquestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(quizquestion.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(quizquestion.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(quizquestion.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizQuestionUpdateOne is the builder for updating a single QuizQuestion entity.
type QuizQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// SetStudySet sets the "study_set" field.
func (_u *QuizQuestionUpdateOne) SetStudySet(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetStudySet(v)
	return _u
}

// SetNillableStudySet sets the "study_set" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableStudySet(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetStudySet(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuizQuestionUpdateOne) SetQuestion(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableQuestion(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuizQuestionUpdateOne) SetOptions(v []string) *QuizQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuizQuestionUpdateOne) AppendOptions(v []string) *QuizQuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuizQuestionUpdateOne) SetAnswer(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableAnswer(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuizQuestionUpdateOne) SetCategory(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableCategory(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *QuizQuestionUpdateOne) ClearCategory() *QuizQuestionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuizQuestionUpdateOne) SetExplanation(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableExplanation(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdateOne) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdateOne) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizQuestionUpdateOne) Select(field string, fields ...string) *QuizQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizQuestion entity.
func (_u *QuizQuestionUpdateOne) Save(ctx context.Context) (*QuizQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) SaveX(ctx context.Context) *QuizQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizQuestionUpdateOne) sqlSave(ctx context.Context) (_node *QuizQuestion, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizquestion.FieldID)
		for _, f := range fields {
			if !quizquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizquestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudySet(); ok {
		_spec.SetField(quizquestion.FieldStudySet, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(quizquestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizquestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(quizquestion.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(quizquestion.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(quizquestion.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
	}
	_node = &QuizQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
