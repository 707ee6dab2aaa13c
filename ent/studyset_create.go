// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deepak/quizdeck/ent/studyset"
)

// StudySetCreate is the builder for creating a StudySet entity.
type StudySetCreate struct {
	config
	mutation *StudySetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *StudySetCreate) SetName(v string) *StudySetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetGenerated sets the "generated" field.
func (_c *StudySetCreate) SetGenerated(v bool) *StudySetCreate {
	_c.mutation.SetGenerated(v)
	return _c
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_c *StudySetCreate) SetNillableGenerated(v *bool) *StudySetCreate {
	if v != nil {
		_c.SetGenerated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudySetCreate) SetCreatedAt(v time.Time) *StudySetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudySetCreate) SetNillableCreatedAt(v *time.Time) *StudySetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudySetCreate) SetID(v string) *StudySetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudySetCreate) SetNillableID(v *string) *StudySetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StudySetMutation object of the builder.
func (_c *StudySetCreate) Mutation() *StudySetMutation {
	return _c.mutation
}

// Save creates the StudySet in the database.
func (_c *StudySetCreate) Save(ctx context.Context) (*StudySet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySetCreate) SaveX(ctx context.Context) *StudySet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySetCreate) defaults() {
	if _, ok := _c.mutation.Generated(); !ok {
		v := studyset.DefaultGenerated
		_c.mutation.SetGenerated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := studyset.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySetCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "StudySet.name"`)}
	}
	if _, ok := _c.mutation.Generated(); !ok {
		return &ValidationError{Name: "generated", err: errors.New(`ent: missing required field "StudySet.generated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudySet.created_at"`)}
	}
	return nil
}

func (_c *StudySetCreate) sqlSave(ctx context.Context) (*StudySet, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StudySet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudySetCreate) createSpec() (*StudySet, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyset.Table, sqlgraph.NewFieldSpec(studyset.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(studyset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Generated(); ok {
		_spec.SetField(studyset.FieldGenerated, field.TypeBool, value)
		_node.Generated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudySet.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudySetUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *StudySetCreate) OnConflict(opts ...sql.ConflictOption) *StudySetUpsertOne {
	_c.conflict = opts
	return &StudySetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudySet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudySetCreate) OnConflictColumns(columns ...string) *StudySetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudySetUpsertOne{
		create: _c,
	}
}

type (
	// StudySetUpsertOne is the builder for "upsert"-ing
	//  one StudySet node.
	StudySetUpsertOne struct {
		create *StudySetCreate
	}

	// StudySetUpsert is the "OnConflict" setter.
	StudySetUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *StudySetUpsert) SetName(v string) *StudySetUpsert {
	u.Set(studyset.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudySetUpsert) UpdateName() *StudySetUpsert {
	u.SetExcluded(studyset.FieldName)
	return u
}

// SetGenerated sets the "generated" field.
func (u *StudySetUpsert) SetGenerated(v bool) *StudySetUpsert {
	u.Set(studyset.FieldGenerated, v)
	return u
}

// UpdateGenerated sets the "generated" field to the value that was provided on create.
func (u *StudySetUpsert) UpdateGenerated() *StudySetUpsert {
	u.SetExcluded(studyset.FieldGenerated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudySet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studyset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudySetUpsertOne) UpdateNewValues() *StudySetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studyset.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(studyset.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudySet.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudySetUpsertOne) Ignore() *StudySetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudySetUpsertOne) DoNothing() *StudySetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudySetCreate.OnConflict
// documentation for more info.
func (u *StudySetUpsertOne) Update(set func(*StudySetUpsert)) *StudySetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudySetUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *StudySetUpsertOne) SetName(v string) *StudySetUpsertOne {
	return u.Update(func(s *StudySetUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudySetUpsertOne) UpdateName() *StudySetUpsertOne {
	return u.Update(func(s *StudySetUpsert) {
		s.UpdateName()
	})
}

// SetGenerated sets the "generated" field.
func (u *StudySetUpsertOne) SetGenerated(v bool) *StudySetUpsertOne {
	return u.Update(func(s *StudySetUpsert) {
		s.SetGenerated(v)
	})
}

// UpdateGenerated sets the "generated" field to the value that was provided on create.
func (u *StudySetUpsertOne) UpdateGenerated() *StudySetUpsertOne {
	return u.Update(func(s *StudySetUpsert) {
		s.UpdateGenerated()
	})
}

// Exec executes the query.
func (u *StudySetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudySetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudySetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudySetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudySetUpsertOne.ID is not supported by MySQL driver. Use StudySetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudySetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudySetCreateBulk is the builder for creating many StudySet entities in bulk.
type StudySetCreateBulk struct {
	config
	err      error
	builders []*StudySetCreate
	conflict []sql.ConflictOption
}

// Save creates the StudySet entities in the database.
func (_c *StudySetCreateBulk) Save(ctx context.Context) ([]*StudySet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySetMutation)
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
func (_c *StudySetCreateBulk) SaveX(ctx context.Context) []*StudySet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudySet.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudySetUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *StudySetCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudySetUpsertBulk {
	_c.conflict = opts
	return &StudySetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudySet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudySetCreateBulk) OnConflictColumns(columns ...string) *StudySetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudySetUpsertBulk{
		create: _c,
	}
}

// StudySetUpsertBulk is the builder for "upsert"-ing
// a bulk of StudySet nodes.
type StudySetUpsertBulk struct {
	create *StudySetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudySet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studyset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudySetUpsertBulk) UpdateNewValues() *StudySetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studyset.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(studyset.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudySet.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudySetUpsertBulk) Ignore() *StudySetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudySetUpsertBulk) DoNothing() *StudySetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudySetCreateBulk.OnConflict
// documentation for more info.
func (u *StudySetUpsertBulk) Update(set func(*StudySetUpsert)) *StudySetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudySetUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *StudySetUpsertBulk) SetName(v string) *StudySetUpsertBulk {
	return u.Update(func(s *StudySetUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudySetUpsertBulk) UpdateName() *StudySetUpsertBulk {
	return u.Update(func(s *StudySetUpsert) {
		s.UpdateName()
	})
}

// SetGenerated sets the "generated" field.
func (u *StudySetUpsertBulk) SetGenerated(v bool) *StudySetUpsertBulk {
	return u.Update(func(s *StudySetUpsert) {
		s.SetGenerated(v)
	})
}

// UpdateGenerated sets the "generated" field to the value that was provided on create.
func (u *StudySetUpsertBulk) UpdateGenerated() *StudySetUpsertBulk {
	return u.Update(func(s *StudySetUpsert) {
		s.UpdateGenerated()
	})
}

// Exec executes the query.
func (u *StudySetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudySetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudySetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudySetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
