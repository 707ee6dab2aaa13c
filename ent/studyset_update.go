// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deepak/quizdeck/ent/predicate"
	"github.com/deepak/quizdeck/ent/studyset"
)

// StudySetUpdate is the builder for updating StudySet entities.
type StudySetUpdate struct {
	config
	hooks    []Hook
	mutation *StudySetMutation
}

// Where appends a list predicates to the StudySetUpdate builder.
func (_u *StudySetUpdate) Where(ps ...predicate.StudySet) *StudySetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StudySetUpdate) SetName(v string) *StudySetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudySetUpdate) SetNillableName(v *string) *StudySetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *StudySetUpdate) SetGenerated(v bool) *StudySetUpdate {
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *StudySetUpdate) SetNillableGenerated(v *bool) *StudySetUpdate {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// Mutation returns the StudySetMutation object of the builder.
func (_u *StudySetUpdate) Mutation() *StudySetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StudySetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studyset.Table, studyset.Columns, sqlgraph.NewFieldSpec(studyset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(studyset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(studyset.FieldGenerated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySetUpdateOne is the builder for updating a single StudySet entity.
type StudySetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySetMutation
}

// SetName sets the "name" field.
func (_u *StudySetUpdateOne) SetName(v string) *StudySetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudySetUpdateOne) SetNillableName(v *string) *StudySetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *StudySetUpdateOne) SetGenerated(v bool) *StudySetUpdateOne {
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *StudySetUpdateOne) SetNillableGenerated(v *bool) *StudySetUpdateOne {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// Mutation returns the StudySetMutation object of the builder.
func (_u *StudySetUpdateOne) Mutation() *StudySetMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySetUpdate builder.
func (_u *StudySetUpdateOne) Where(ps ...predicate.StudySet) *StudySetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySetUpdateOne) Select(field string, fields ...string) *StudySetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySet entity.
func (_u *StudySetUpdateOne) Save(ctx context.Context) (*StudySet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySetUpdateOne) SaveX(ctx context.Context) *StudySet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StudySetUpdateOne) sqlSave(ctx context.Context) (_node *StudySet, err error) {
	_spec := sqlgraph.NewUpdateSpec(studyset.Table, studyset.Columns, sqlgraph.NewFieldSpec(studyset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyset.FieldID)
		for _, f := range fields {
			if !studyset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyset.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(studyset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(studyset.FieldGenerated, field.TypeBool, value)
	}
	_node = &StudySet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
