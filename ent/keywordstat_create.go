// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stackfour/ent/keywordstat"
)

// KeywordStatCreate is the builder for creating a KeywordStat entity.
type KeywordStatCreate struct {
	config
	mutation *KeywordStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKeyword sets the "keyword" field.
func (_c *KeywordStatCreate) SetKeyword(v string) *KeywordStatCreate {
	_c.mutation.SetKeyword(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *KeywordStatCreate) SetCorrect(v int) *KeywordStatCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *KeywordStatCreate) SetNillableCorrect(v *int) *KeywordStatCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetIncorrect sets the "incorrect" field.
func (_c *KeywordStatCreate) SetIncorrect(v int) *KeywordStatCreate {
	_c.mutation.SetIncorrect(v)
	return _c
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_c *KeywordStatCreate) SetNillableIncorrect(v *int) *KeywordStatCreate {
	if v != nil {
		_c.SetIncorrect(*v)
	}
	return _c
}

// Mutation returns the KeywordStatMutation object of the builder.
func (_c *KeywordStatCreate) Mutation() *KeywordStatMutation {
	return _c.mutation
}

// Save creates the KeywordStat in the database.
func (_c *KeywordStatCreate) Save(ctx context.Context) (*KeywordStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KeywordStatCreate) SaveX(ctx context.Context) *KeywordStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KeywordStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KeywordStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KeywordStatCreate) defaults() {
	if _, ok := _c.mutation.Correct(); !ok {
		v := keywordstat.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		v := keywordstat.DefaultIncorrect
		_c.mutation.SetIncorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KeywordStatCreate) check() error {
	if _, ok := _c.mutation.Keyword(); !ok {
		return &ValidationError{Name: "keyword", err: errors.New(`ent: missing required field "KeywordStat.keyword"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "KeywordStat.correct"`)}
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		return &ValidationError{Name: "incorrect", err: errors.New(`ent: missing required field "KeywordStat.incorrect"`)}
	}
	return nil
}

func (_c *KeywordStatCreate) sqlSave(ctx context.Context) (*KeywordStat, error) {
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

func (_c *KeywordStatCreate) createSpec() (*KeywordStat, *sqlgraph.CreateSpec) {
	var (
		_node = &KeywordStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(keywordstat.Table, sqlgraph.NewFieldSpec(keywordstat.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Keyword(); ok {
		_spec.SetField(keywordstat.FieldKeyword, field.TypeString, value)
		_node.Keyword = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(keywordstat.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Incorrect(); ok {
		_spec.SetField(keywordstat.FieldIncorrect, field.TypeInt, value)
		_node.Incorrect = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KeywordStat.Create().
//		SetKeyword(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KeywordStatUpsert) {
//			SetKeyword(v+v).
//		}).
//		Exec(ctx)
func (_c *KeywordStatCreate) OnConflict(opts ...sql.ConflictOption) *KeywordStatUpsertOne {
	_c.conflict = opts
	return &KeywordStatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KeywordStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *KeywordStatCreate) OnConflictColumns(columns ...string) *KeywordStatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &KeywordStatUpsertOne{
		create: _c,
	}
}

type (
	// KeywordStatUpsertOne is the builder for "upsert"-ing
	//  one KeywordStat node.
	KeywordStatUpsertOne struct {
		create *KeywordStatCreate
	}

	// KeywordStatUpsert is the "OnConflict" setter.
	KeywordStatUpsert struct {
		*sql.UpdateSet
	}
)

// SetKeyword sets the "keyword" field.
func (u *KeywordStatUpsert) SetKeyword(v string) *KeywordStatUpsert {
	u.Set(keywordstat.FieldKeyword, v)
	return u
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordStatUpsert) UpdateKeyword() *KeywordStatUpsert {
	u.SetExcluded(keywordstat.FieldKeyword)
	return u
}

// SetCorrect sets the "correct" field.
func (u *KeywordStatUpsert) SetCorrect(v int) *KeywordStatUpsert {
	u.Set(keywordstat.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *KeywordStatUpsert) UpdateCorrect() *KeywordStatUpsert {
	u.SetExcluded(keywordstat.FieldCorrect)
	return u
}

// AddCorrect adds v to the "correct" field.
func (u *KeywordStatUpsert) AddCorrect(v int) *KeywordStatUpsert {
	u.Add(keywordstat.FieldCorrect, v)
	return u
}

// SetIncorrect sets the "incorrect" field.
func (u *KeywordStatUpsert) SetIncorrect(v int) *KeywordStatUpsert {
	u.Set(keywordstat.FieldIncorrect, v)
	return u
}

// UpdateIncorrect sets the "incorrect" field to the value that was provided on create.
func (u *KeywordStatUpsert) UpdateIncorrect() *KeywordStatUpsert {
	u.SetExcluded(keywordstat.FieldIncorrect)
	return u
}

// AddIncorrect adds v to the "incorrect" field.
func (u *KeywordStatUpsert) AddIncorrect(v int) *KeywordStatUpsert {
	u.Add(keywordstat.FieldIncorrect, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.KeywordStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *KeywordStatUpsertOne) UpdateNewValues() *KeywordStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KeywordStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *KeywordStatUpsertOne) Ignore() *KeywordStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KeywordStatUpsertOne) DoNothing() *KeywordStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KeywordStatCreate.OnConflict
// documentation for more info.
func (u *KeywordStatUpsertOne) Update(set func(*KeywordStatUpsert)) *KeywordStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KeywordStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetKeyword sets the "keyword" field.
func (u *KeywordStatUpsertOne) SetKeyword(v string) *KeywordStatUpsertOne {
	return u.Update(func(s *KeywordStatUpsert) {
		s.SetKeyword(v)
	})
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordStatUpsertOne) UpdateKeyword() *KeywordStatUpsertOne {
	return u.Update(func(s *KeywordStatUpsert) {
		s.UpdateKeyword()
	})
}

// SetCorrect sets the "correct" field.
func (u *KeywordStatUpsertOne) SetCorrect(v int) *KeywordStatUpsertOne {
	return u.Update(func(s *KeywordStatUpsert) {
		s.SetCorrect(v)
	})
}

// AddCorrect adds v to the "correct" field.
func (u *KeywordStatUpsertOne) AddCorrect(v int) *KeywordStatUpsertOne {
	return u.Update(func(s *KeywordStatUpsert) {
		s.AddCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *KeywordStatUpsertOne) UpdateCorrect() *KeywordStatUpsertOne {
	return u.Update(func(s *KeywordStatUpsert) {
		s.UpdateCorrect()
	})
}

// SetIncorrect sets the "incorrect" field.
func (u *KeywordStatUpsertOne) SetIncorrect(v int) *KeywordStatUpsertOne {
	return u.Update(func(s *KeywordStatUpsert) {
		s.SetIncorrect(v)
	})
}

// AddIncorrect adds v to the "incorrect" field.
func (u *KeywordStatUpsertOne) AddIncorrect(v int) *KeywordStatUpsertOne {
	return u.Update(func(s *KeywordStatUpsert) {
		s.AddIncorrect(v)
	})
}

// UpdateIncorrect sets the "incorrect" field to the value that was provided on create.
func (u *KeywordStatUpsertOne) UpdateIncorrect() *KeywordStatUpsertOne {
	return u.Update(func(s *KeywordStatUpsert) {
		s.UpdateIncorrect()
	})
}

// Exec executes the query.
func (u *KeywordStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KeywordStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KeywordStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *KeywordStatUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *KeywordStatUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// KeywordStatCreateBulk is the builder for creating many KeywordStat entities in bulk.
type KeywordStatCreateBulk struct {
	config
	err      error
	builders []*KeywordStatCreate
	conflict []sql.ConflictOption
}

// Save creates the KeywordStat entities in the database.
func (_c *KeywordStatCreateBulk) Save(ctx context.Context) ([]*KeywordStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KeywordStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KeywordStatMutation)
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
func (_c *KeywordStatCreateBulk) SaveX(ctx context.Context) []*KeywordStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KeywordStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KeywordStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KeywordStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KeywordStatUpsert) {
//			SetKeyword(v+v).
//		}).
//		Exec(ctx)
func (_c *KeywordStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *KeywordStatUpsertBulk {
	_c.conflict = opts
	return &KeywordStatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KeywordStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *KeywordStatCreateBulk) OnConflictColumns(columns ...string) *KeywordStatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &KeywordStatUpsertBulk{
		create: _c,
	}
}

// KeywordStatUpsertBulk is the builder for "upsert"-ing
// a bulk of KeywordStat nodes.
type KeywordStatUpsertBulk struct {
	create *KeywordStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.KeywordStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *KeywordStatUpsertBulk) UpdateNewValues() *KeywordStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KeywordStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *KeywordStatUpsertBulk) Ignore() *KeywordStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KeywordStatUpsertBulk) DoNothing() *KeywordStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KeywordStatCreateBulk.OnConflict
// documentation for more info.
func (u *KeywordStatUpsertBulk) Update(set func(*KeywordStatUpsert)) *KeywordStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KeywordStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetKeyword sets the "keyword" field.
func (u *KeywordStatUpsertBulk) SetKeyword(v string) *KeywordStatUpsertBulk {
	return u.Update(func(s *KeywordStatUpsert) {
		s.SetKeyword(v)
	})
}

// UpdateKeyword sets the "keyword" field to the value that was provided on create.
func (u *KeywordStatUpsertBulk) UpdateKeyword() *KeywordStatUpsertBulk {
	return u.Update(func(s *KeywordStatUpsert) {
		s.UpdateKeyword()
	})
}

// SetCorrect sets the "correct" field.
func (u *KeywordStatUpsertBulk) SetCorrect(v int) *KeywordStatUpsertBulk {
	return u.Update(func(s *KeywordStatUpsert) {
		s.SetCorrect(v)
	})
}

// AddCorrect adds v to the "correct" field.
func (u *KeywordStatUpsertBulk) AddCorrect(v int) *KeywordStatUpsertBulk {
	return u.Update(func(s *KeywordStatUpsert) {
		s.AddCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *KeywordStatUpsertBulk) UpdateCorrect() *KeywordStatUpsertBulk {
	return u.Update(func(s *KeywordStatUpsert) {
		s.UpdateCorrect()
	})
}

// SetIncorrect sets the "incorrect" field.
func (u *KeywordStatUpsertBulk) SetIncorrect(v int) *KeywordStatUpsertBulk {
	return u.Update(func(s *KeywordStatUpsert) {
		s.SetIncorrect(v)
	})
}

// AddIncorrect adds v to the "incorrect" field.
func (u *KeywordStatUpsertBulk) AddIncorrect(v int) *KeywordStatUpsertBulk {
	return u.Update(func(s *KeywordStatUpsert) {
		s.AddIncorrect(v)
	})
}

// UpdateIncorrect sets the "incorrect" field to the value that was provided on create.
func (u *KeywordStatUpsertBulk) UpdateIncorrect() *KeywordStatUpsertBulk {
	return u.Update(func(s *KeywordStatUpsert) {
		s.UpdateIncorrect()
	})
}

// Exec executes the query.
func (u *KeywordStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the KeywordStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KeywordStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KeywordStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
