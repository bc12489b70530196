// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stackfour/ent/patternstat"
)

// PatternStatCreate is the builder for creating a PatternStat entity.
type PatternStatCreate struct {
	config
	mutation *PatternStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *PatternStatCreate) SetName(v string) *PatternStatCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *PatternStatCreate) SetCorrect(v int) *PatternStatCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *PatternStatCreate) SetNillableCorrect(v *int) *PatternStatCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *PatternStatCreate) SetTotal(v int) *PatternStatCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *PatternStatCreate) SetNillableTotal(v *int) *PatternStatCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// Mutation returns the PatternStatMutation object of the builder.
func (_c *PatternStatCreate) Mutation() *PatternStatMutation {
	return _c.mutation
}

// Save creates the PatternStat in the database.
func (_c *PatternStatCreate) Save(ctx context.Context) (*PatternStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatternStatCreate) SaveX(ctx context.Context) *PatternStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatternStatCreate) defaults() {
	if _, ok := _c.mutation.Correct(); !ok {
		v := patternstat.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := patternstat.DefaultTotal
		_c.mutation.SetTotal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatternStatCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PatternStat.name"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "PatternStat.correct"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "PatternStat.total"`)}
	}
	return nil
}

func (_c *PatternStatCreate) sqlSave(ctx context.Context) (*PatternStat, error) {
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

func (_c *PatternStatCreate) createSpec() (*PatternStat, *sqlgraph.CreateSpec) {
	var (
		_node = &PatternStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patternstat.Table, sqlgraph.NewFieldSpec(patternstat.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(patternstat.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(patternstat.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(patternstat.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatternStat.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatternStatUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PatternStatCreate) OnConflict(opts ...sql.ConflictOption) *PatternStatUpsertOne {
	_c.conflict = opts
	return &PatternStatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatternStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatternStatCreate) OnConflictColumns(columns ...string) *PatternStatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatternStatUpsertOne{
		create: _c,
	}
}

type (
	// PatternStatUpsertOne is the builder for "upsert"-ing
	//  one PatternStat node.
	PatternStatUpsertOne struct {
		create *PatternStatCreate
	}

	// PatternStatUpsert is the "OnConflict" setter.
	PatternStatUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PatternStatUpsert) SetName(v string) *PatternStatUpsert {
	u.Set(patternstat.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatternStatUpsert) UpdateName() *PatternStatUpsert {
	u.SetExcluded(patternstat.FieldName)
	return u
}

// SetCorrect sets the "correct" field.
func (u *PatternStatUpsert) SetCorrect(v int) *PatternStatUpsert {
	u.Set(patternstat.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *PatternStatUpsert) UpdateCorrect() *PatternStatUpsert {
	u.SetExcluded(patternstat.FieldCorrect)
	return u
}

// AddCorrect adds v to the "correct" field.
func (u *PatternStatUpsert) AddCorrect(v int) *PatternStatUpsert {
	u.Add(patternstat.FieldCorrect, v)
	return u
}

// SetTotal sets the "total" field.
func (u *PatternStatUpsert) SetTotal(v int) *PatternStatUpsert {
	u.Set(patternstat.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *PatternStatUpsert) UpdateTotal() *PatternStatUpsert {
	u.SetExcluded(patternstat.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *PatternStatUpsert) AddTotal(v int) *PatternStatUpsert {
	u.Add(patternstat.FieldTotal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PatternStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PatternStatUpsertOne) UpdateNewValues() *PatternStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatternStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatternStatUpsertOne) Ignore() *PatternStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatternStatUpsertOne) DoNothing() *PatternStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatternStatCreate.OnConflict
// documentation for more info.
func (u *PatternStatUpsertOne) Update(set func(*PatternStatUpsert)) *PatternStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatternStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PatternStatUpsertOne) SetName(v string) *PatternStatUpsertOne {
	return u.Update(func(s *PatternStatUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatternStatUpsertOne) UpdateName() *PatternStatUpsertOne {
	return u.Update(func(s *PatternStatUpsert) {
		s.UpdateName()
	})
}

// SetCorrect sets the "correct" field.
func (u *PatternStatUpsertOne) SetCorrect(v int) *PatternStatUpsertOne {
	return u.Update(func(s *PatternStatUpsert) {
		s.SetCorrect(v)
	})
}

// AddCorrect adds v to the "correct" field.
func (u *PatternStatUpsertOne) AddCorrect(v int) *PatternStatUpsertOne {
	return u.Update(func(s *PatternStatUpsert) {
		s.AddCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *PatternStatUpsertOne) UpdateCorrect() *PatternStatUpsertOne {
	return u.Update(func(s *PatternStatUpsert) {
		s.UpdateCorrect()
	})
}

// SetTotal sets the "total" field.
func (u *PatternStatUpsertOne) SetTotal(v int) *PatternStatUpsertOne {
	return u.Update(func(s *PatternStatUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *PatternStatUpsertOne) AddTotal(v int) *PatternStatUpsertOne {
	return u.Update(func(s *PatternStatUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *PatternStatUpsertOne) UpdateTotal() *PatternStatUpsertOne {
	return u.Update(func(s *PatternStatUpsert) {
		s.UpdateTotal()
	})
}

// Exec executes the query.
func (u *PatternStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatternStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatternStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatternStatUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatternStatUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatternStatCreateBulk is the builder for creating many PatternStat entities in bulk.
type PatternStatCreateBulk struct {
	config
	err      error
	builders []*PatternStatCreate
	conflict []sql.ConflictOption
}

// Save creates the PatternStat entities in the database.
func (_c *PatternStatCreateBulk) Save(ctx context.Context) ([]*PatternStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatternStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatternStatMutation)
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
func (_c *PatternStatCreateBulk) SaveX(ctx context.Context) []*PatternStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatternStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatternStatUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PatternStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatternStatUpsertBulk {
	_c.conflict = opts
	return &PatternStatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatternStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatternStatCreateBulk) OnConflictColumns(columns ...string) *PatternStatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatternStatUpsertBulk{
		create: _c,
	}
}

// PatternStatUpsertBulk is the builder for "upsert"-ing
// a bulk of PatternStat nodes.
type PatternStatUpsertBulk struct {
	create *PatternStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatternStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PatternStatUpsertBulk) UpdateNewValues() *PatternStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatternStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatternStatUpsertBulk) Ignore() *PatternStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatternStatUpsertBulk) DoNothing() *PatternStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatternStatCreateBulk.OnConflict
// documentation for more info.
func (u *PatternStatUpsertBulk) Update(set func(*PatternStatUpsert)) *PatternStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatternStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PatternStatUpsertBulk) SetName(v string) *PatternStatUpsertBulk {
	return u.Update(func(s *PatternStatUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatternStatUpsertBulk) UpdateName() *PatternStatUpsertBulk {
	return u.Update(func(s *PatternStatUpsert) {
		s.UpdateName()
	})
}

// SetCorrect sets the "correct" field.
func (u *PatternStatUpsertBulk) SetCorrect(v int) *PatternStatUpsertBulk {
	return u.Update(func(s *PatternStatUpsert) {
		s.SetCorrect(v)
	})
}

// AddCorrect adds v to the "correct" field.
func (u *PatternStatUpsertBulk) AddCorrect(v int) *PatternStatUpsertBulk {
	return u.Update(func(s *PatternStatUpsert) {
		s.AddCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *PatternStatUpsertBulk) UpdateCorrect() *PatternStatUpsertBulk {
	return u.Update(func(s *PatternStatUpsert) {
		s.UpdateCorrect()
	})
}

// SetTotal sets the "total" field.
func (u *PatternStatUpsertBulk) SetTotal(v int) *PatternStatUpsertBulk {
	return u.Update(func(s *PatternStatUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *PatternStatUpsertBulk) AddTotal(v int) *PatternStatUpsertBulk {
	return u.Update(func(s *PatternStatUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *PatternStatUpsertBulk) UpdateTotal() *PatternStatUpsertBulk {
	return u.Update(func(s *PatternStatUpsert) {
		s.UpdateTotal()
	})
}

// Exec executes the query.
func (u *PatternStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PatternStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatternStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatternStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
