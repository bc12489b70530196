// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stackfour/ent/evaluationrun"
)

// EvaluationRunCreate is the builder for creating a EvaluationRun entity.
type EvaluationRunCreate struct {
	config
	mutation *EvaluationRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *EvaluationRunCreate) SetRunID(v string) *EvaluationRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetAlgorithmVersion sets the "algorithm_version" field.
func (_c *EvaluationRunCreate) SetAlgorithmVersion(v string) *EvaluationRunCreate {
	_c.mutation.SetAlgorithmVersion(v)
	return _c
}

// SetDatasetHash sets the "dataset_hash" field.
func (_c *EvaluationRunCreate) SetDatasetHash(v string) *EvaluationRunCreate {
	_c.mutation.SetDatasetHash(v)
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *EvaluationRunCreate) SetMetrics(v map[string]interface{}) *EvaluationRunCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *EvaluationRunCreate) SetConfig(v map[string]string) *EvaluationRunCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationRunCreate) SetCreatedAt(v time.Time) *EvaluationRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationRunCreate) SetNillableCreatedAt(v *time.Time) *EvaluationRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the EvaluationRunMutation object of the builder.
func (_c *EvaluationRunCreate) Mutation() *EvaluationRunMutation {
	return _c.mutation
}

// Save creates the EvaluationRun in the database.
func (_c *EvaluationRunCreate) Save(ctx context.Context) (*EvaluationRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationRunCreate) SaveX(ctx context.Context) *EvaluationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationRunCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "EvaluationRun.run_id"`)}
	}
	if _, ok := _c.mutation.AlgorithmVersion(); !ok {
		return &ValidationError{Name: "algorithm_version", err: errors.New(`ent: missing required field "EvaluationRun.algorithm_version"`)}
	}
	if _, ok := _c.mutation.DatasetHash(); !ok {
		return &ValidationError{Name: "dataset_hash", err: errors.New(`ent: missing required field "EvaluationRun.dataset_hash"`)}
	}
	if _, ok := _c.mutation.Metrics(); !ok {
		return &ValidationError{Name: "metrics", err: errors.New(`ent: missing required field "EvaluationRun.metrics"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationRun.created_at"`)}
	}
	return nil
}

func (_c *EvaluationRunCreate) sqlSave(ctx context.Context) (*EvaluationRun, error) {
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

func (_c *EvaluationRunCreate) createSpec() (*EvaluationRun, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationrun.Table, sqlgraph.NewFieldSpec(evaluationrun.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(evaluationrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.AlgorithmVersion(); ok {
		_spec.SetField(evaluationrun.FieldAlgorithmVersion, field.TypeString, value)
		_node.AlgorithmVersion = value
	}
	if value, ok := _c.mutation.DatasetHash(); ok {
		_spec.SetField(evaluationrun.FieldDatasetHash, field.TypeString, value)
		_node.DatasetHash = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(evaluationrun.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(evaluationrun.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationRun.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationRunUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationRunCreate) OnConflict(opts ...sql.ConflictOption) *EvaluationRunUpsertOne {
	_c.conflict = opts
	return &EvaluationRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationRunCreate) OnConflictColumns(columns ...string) *EvaluationRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationRunUpsertOne{
		create: _c,
	}
}

type (
	// EvaluationRunUpsertOne is the builder for "upsert"-ing
	//  one EvaluationRun node.
	EvaluationRunUpsertOne struct {
		create *EvaluationRunCreate
	}

	// EvaluationRunUpsert is the "OnConflict" setter.
	EvaluationRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetAlgorithmVersion sets the "algorithm_version" field.
func (u *EvaluationRunUpsert) SetAlgorithmVersion(v string) *EvaluationRunUpsert {
	u.Set(evaluationrun.FieldAlgorithmVersion, v)
	return u
}

// UpdateAlgorithmVersion sets the "algorithm_version" field to the value that was provided on create.
func (u *EvaluationRunUpsert) UpdateAlgorithmVersion() *EvaluationRunUpsert {
	u.SetExcluded(evaluationrun.FieldAlgorithmVersion)
	return u
}

// SetDatasetHash sets the "dataset_hash" field.
func (u *EvaluationRunUpsert) SetDatasetHash(v string) *EvaluationRunUpsert {
	u.Set(evaluationrun.FieldDatasetHash, v)
	return u
}

// UpdateDatasetHash sets the "dataset_hash" field to the value that was provided on create.
func (u *EvaluationRunUpsert) UpdateDatasetHash() *EvaluationRunUpsert {
	u.SetExcluded(evaluationrun.FieldDatasetHash)
	return u
}

// SetMetrics sets the "metrics" field.
func (u *EvaluationRunUpsert) SetMetrics(v map[string]interface{}) *EvaluationRunUpsert {
	u.Set(evaluationrun.FieldMetrics, v)
	return u
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *EvaluationRunUpsert) UpdateMetrics() *EvaluationRunUpsert {
	u.SetExcluded(evaluationrun.FieldMetrics)
	return u
}

// SetConfig sets the "config" field.
func (u *EvaluationRunUpsert) SetConfig(v map[string]string) *EvaluationRunUpsert {
	u.Set(evaluationrun.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *EvaluationRunUpsert) UpdateConfig() *EvaluationRunUpsert {
	u.SetExcluded(evaluationrun.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *EvaluationRunUpsert) ClearConfig() *EvaluationRunUpsert {
	u.SetNull(evaluationrun.FieldConfig)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EvaluationRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EvaluationRunUpsertOne) UpdateNewValues() *EvaluationRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(evaluationrun.FieldRunID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evaluationrun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluationRunUpsertOne) Ignore() *EvaluationRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationRunUpsertOne) DoNothing() *EvaluationRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationRunCreate.OnConflict
// documentation for more info.
func (u *EvaluationRunUpsertOne) Update(set func(*EvaluationRunUpsert)) *EvaluationRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetAlgorithmVersion sets the "algorithm_version" field.
func (u *EvaluationRunUpsertOne) SetAlgorithmVersion(v string) *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.SetAlgorithmVersion(v)
	})
}

// UpdateAlgorithmVersion sets the "algorithm_version" field to the value that was provided on create.
func (u *EvaluationRunUpsertOne) UpdateAlgorithmVersion() *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.UpdateAlgorithmVersion()
	})
}

// SetDatasetHash sets the "dataset_hash" field.
func (u *EvaluationRunUpsertOne) SetDatasetHash(v string) *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.SetDatasetHash(v)
	})
}

// UpdateDatasetHash sets the "dataset_hash" field to the value that was provided on create.
func (u *EvaluationRunUpsertOne) UpdateDatasetHash() *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.UpdateDatasetHash()
	})
}

// SetMetrics sets the "metrics" field.
func (u *EvaluationRunUpsertOne) SetMetrics(v map[string]interface{}) *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *EvaluationRunUpsertOne) UpdateMetrics() *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.UpdateMetrics()
	})
}

// SetConfig sets the "config" field.
func (u *EvaluationRunUpsertOne) SetConfig(v map[string]string) *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *EvaluationRunUpsertOne) UpdateConfig() *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *EvaluationRunUpsertOne) ClearConfig() *EvaluationRunUpsertOne {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.ClearConfig()
	})
}

// Exec executes the query.
func (u *EvaluationRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluationRunUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluationRunUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluationRunCreateBulk is the builder for creating many EvaluationRun entities in bulk.
type EvaluationRunCreateBulk struct {
	config
	err      error
	builders []*EvaluationRunCreate
	conflict []sql.ConflictOption
}

// Save creates the EvaluationRun entities in the database.
func (_c *EvaluationRunCreateBulk) Save(ctx context.Context) ([]*EvaluationRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationRunMutation)
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
func (_c *EvaluationRunCreateBulk) SaveX(ctx context.Context) []*EvaluationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationRunUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluationRunUpsertBulk {
	_c.conflict = opts
	return &EvaluationRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationRunCreateBulk) OnConflictColumns(columns ...string) *EvaluationRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationRunUpsertBulk{
		create: _c,
	}
}

// EvaluationRunUpsertBulk is the builder for "upsert"-ing
// a bulk of EvaluationRun nodes.
type EvaluationRunUpsertBulk struct {
	create *EvaluationRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvaluationRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EvaluationRunUpsertBulk) UpdateNewValues() *EvaluationRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(evaluationrun.FieldRunID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evaluationrun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluationRunUpsertBulk) Ignore() *EvaluationRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationRunUpsertBulk) DoNothing() *EvaluationRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationRunCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluationRunUpsertBulk) Update(set func(*EvaluationRunUpsert)) *EvaluationRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetAlgorithmVersion sets the "algorithm_version" field.
func (u *EvaluationRunUpsertBulk) SetAlgorithmVersion(v string) *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.SetAlgorithmVersion(v)
	})
}

// UpdateAlgorithmVersion sets the "algorithm_version" field to the value that was provided on create.
func (u *EvaluationRunUpsertBulk) UpdateAlgorithmVersion() *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.UpdateAlgorithmVersion()
	})
}

// SetDatasetHash sets the "dataset_hash" field.
func (u *EvaluationRunUpsertBulk) SetDatasetHash(v string) *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.SetDatasetHash(v)
	})
}

// UpdateDatasetHash sets the "dataset_hash" field to the value that was provided on create.
func (u *EvaluationRunUpsertBulk) UpdateDatasetHash() *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.UpdateDatasetHash()
	})
}

// SetMetrics sets the "metrics" field.
func (u *EvaluationRunUpsertBulk) SetMetrics(v map[string]interface{}) *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *EvaluationRunUpsertBulk) UpdateMetrics() *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.UpdateMetrics()
	})
}

// SetConfig sets the "config" field.
func (u *EvaluationRunUpsertBulk) SetConfig(v map[string]string) *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *EvaluationRunUpsertBulk) UpdateConfig() *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *EvaluationRunUpsertBulk) ClearConfig() *EvaluationRunUpsertBulk {
	return u.Update(func(s *EvaluationRunUpsert) {
		s.ClearConfig()
	})
}

// Exec executes the query.
func (u *EvaluationRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluationRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
