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
	"github.com/abhisek/stackfour/ent/predictionevent"
)

// PredictionEventCreate is the builder for creating a PredictionEvent entity.
type PredictionEventCreate struct {
	config
	mutation *PredictionEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *PredictionEventCreate) SetSequence(v int64) *PredictionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PredictionEventCreate) SetTimestamp(v time.Time) *PredictionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PredictionEventCreate) SetNillableTimestamp(v *time.Time) *PredictionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *PredictionEventCreate) SetQuestionID(v string) *PredictionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *PredictionEventCreate) SetQuestionType(v string) *PredictionEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *PredictionEventCreate) SetNillableQuestionType(v *string) *PredictionEventCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetFormat sets the "format" field.
func (_c *PredictionEventCreate) SetFormat(v string) *PredictionEventCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetPredicted sets the "predicted" field.
func (_c *PredictionEventCreate) SetPredicted(v string) *PredictionEventCreate {
	_c.mutation.SetPredicted(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *PredictionEventCreate) SetCorrect(v string) *PredictionEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetWasCorrect sets the "was_correct" field.
func (_c *PredictionEventCreate) SetWasCorrect(v bool) *PredictionEventCreate {
	_c.mutation.SetWasCorrect(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PredictionEventCreate) SetConfidence(v float64) *PredictionEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *PredictionEventCreate) SetNillableConfidence(v *float64) *PredictionEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRules sets the "rules" field.
func (_c *PredictionEventCreate) SetRules(v []string) *PredictionEventCreate {
	_c.mutation.SetRules(v)
	return _c
}

// Mutation returns the PredictionEventMutation object of the builder.
func (_c *PredictionEventCreate) Mutation() *PredictionEventMutation {
	return _c.mutation
}

// Save creates the PredictionEvent in the database.
func (_c *PredictionEventCreate) Save(ctx context.Context) (*PredictionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PredictionEventCreate) SaveX(ctx context.Context) *PredictionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PredictionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := predictionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := predictionevent.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := predictionevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PredictionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PredictionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PredictionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "PredictionEvent.question_id"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "PredictionEvent.question_type"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "PredictionEvent.format"`)}
	}
	if _, ok := _c.mutation.Predicted(); !ok {
		return &ValidationError{Name: "predicted", err: errors.New(`ent: missing required field "PredictionEvent.predicted"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "PredictionEvent.correct"`)}
	}
	if _, ok := _c.mutation.WasCorrect(); !ok {
		return &ValidationError{Name: "was_correct", err: errors.New(`ent: missing required field "PredictionEvent.was_correct"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PredictionEvent.confidence"`)}
	}
	return nil
}

func (_c *PredictionEventCreate) sqlSave(ctx context.Context) (*PredictionEvent, error) {
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

func (_c *PredictionEventCreate) createSpec() (*PredictionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PredictionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(predictionevent.Table, sqlgraph.NewFieldSpec(predictionevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(predictionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(predictionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(predictionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(predictionevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(predictionevent.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Predicted(); ok {
		_spec.SetField(predictionevent.FieldPredicted, field.TypeString, value)
		_node.Predicted = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(predictionevent.FieldCorrect, field.TypeString, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.WasCorrect(); ok {
		_spec.SetField(predictionevent.FieldWasCorrect, field.TypeBool, value)
		_node.WasCorrect = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(predictionevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Rules(); ok {
		_spec.SetField(predictionevent.FieldRules, field.TypeJSON, value)
		_node.Rules = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PredictionEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PredictionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *PredictionEventCreate) OnConflict(opts ...sql.ConflictOption) *PredictionEventUpsertOne {
	_c.conflict = opts
	return &PredictionEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PredictionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PredictionEventCreate) OnConflictColumns(columns ...string) *PredictionEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PredictionEventUpsertOne{
		create: _c,
	}
}

type (
	// PredictionEventUpsertOne is the builder for "upsert"-ing
	//  one PredictionEvent node.
	PredictionEventUpsertOne struct {
		create *PredictionEventCreate
	}

	// PredictionEventUpsert is the "OnConflict" setter.
	PredictionEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionID sets the "question_id" field.
func (u *PredictionEventUpsert) SetQuestionID(v string) *PredictionEventUpsert {
	u.Set(predictionevent.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *PredictionEventUpsert) UpdateQuestionID() *PredictionEventUpsert {
	u.SetExcluded(predictionevent.FieldQuestionID)
	return u
}

// SetQuestionType sets the "question_type" field.
func (u *PredictionEventUpsert) SetQuestionType(v string) *PredictionEventUpsert {
	u.Set(predictionevent.FieldQuestionType, v)
	return u
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *PredictionEventUpsert) UpdateQuestionType() *PredictionEventUpsert {
	u.SetExcluded(predictionevent.FieldQuestionType)
	return u
}

// SetFormat sets the "format" field.
func (u *PredictionEventUpsert) SetFormat(v string) *PredictionEventUpsert {
	u.Set(predictionevent.FieldFormat, v)
	return u
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *PredictionEventUpsert) UpdateFormat() *PredictionEventUpsert {
	u.SetExcluded(predictionevent.FieldFormat)
	return u
}

// SetPredicted sets the "predicted" field.
func (u *PredictionEventUpsert) SetPredicted(v string) *PredictionEventUpsert {
	u.Set(predictionevent.FieldPredicted, v)
	return u
}

// UpdatePredicted sets the "predicted" field to the value that was provided on create.
func (u *PredictionEventUpsert) UpdatePredicted() *PredictionEventUpsert {
	u.SetExcluded(predictionevent.FieldPredicted)
	return u
}

// SetCorrect sets the "correct" field.
func (u *PredictionEventUpsert) SetCorrect(v string) *PredictionEventUpsert {
	u.Set(predictionevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *PredictionEventUpsert) UpdateCorrect() *PredictionEventUpsert {
	u.SetExcluded(predictionevent.FieldCorrect)
	return u
}

// SetWasCorrect sets the "was_correct" field.
func (u *PredictionEventUpsert) SetWasCorrect(v bool) *PredictionEventUpsert {
	u.Set(predictionevent.FieldWasCorrect, v)
	return u
}

// UpdateWasCorrect sets the "was_correct" field to the value that was provided on create.
func (u *PredictionEventUpsert) UpdateWasCorrect() *PredictionEventUpsert {
	u.SetExcluded(predictionevent.FieldWasCorrect)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *PredictionEventUpsert) SetConfidence(v float64) *PredictionEventUpsert {
	u.Set(predictionevent.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PredictionEventUpsert) UpdateConfidence() *PredictionEventUpsert {
	u.SetExcluded(predictionevent.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *PredictionEventUpsert) AddConfidence(v float64) *PredictionEventUpsert {
	u.Add(predictionevent.FieldConfidence, v)
	return u
}

// SetRules sets the "rules" field.
func (u *PredictionEventUpsert) SetRules(v []string) *PredictionEventUpsert {
	u.Set(predictionevent.FieldRules, v)
	return u
}

// UpdateRules sets the "rules" field to the value that was provided on create.
func (u *PredictionEventUpsert) UpdateRules() *PredictionEventUpsert {
	u.SetExcluded(predictionevent.FieldRules)
	return u
}

// ClearRules clears the value of the "rules" field.
func (u *PredictionEventUpsert) ClearRules() *PredictionEventUpsert {
	u.SetNull(predictionevent.FieldRules)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PredictionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PredictionEventUpsertOne) UpdateNewValues() *PredictionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(predictionevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(predictionevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PredictionEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PredictionEventUpsertOne) Ignore() *PredictionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PredictionEventUpsertOne) DoNothing() *PredictionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PredictionEventCreate.OnConflict
// documentation for more info.
func (u *PredictionEventUpsertOne) Update(set func(*PredictionEventUpsert)) *PredictionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PredictionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *PredictionEventUpsertOne) SetQuestionID(v string) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *PredictionEventUpsertOne) UpdateQuestionID() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *PredictionEventUpsertOne) SetQuestionType(v string) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *PredictionEventUpsertOne) UpdateQuestionType() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateQuestionType()
	})
}

// SetFormat sets the "format" field.
func (u *PredictionEventUpsertOne) SetFormat(v string) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *PredictionEventUpsertOne) UpdateFormat() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateFormat()
	})
}

// SetPredicted sets the "predicted" field.
func (u *PredictionEventUpsertOne) SetPredicted(v string) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetPredicted(v)
	})
}

// UpdatePredicted sets the "predicted" field to the value that was provided on create.
func (u *PredictionEventUpsertOne) UpdatePredicted() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdatePredicted()
	})
}

// SetCorrect sets the "correct" field.
func (u *PredictionEventUpsertOne) SetCorrect(v string) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *PredictionEventUpsertOne) UpdateCorrect() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetWasCorrect sets the "was_correct" field.
func (u *PredictionEventUpsertOne) SetWasCorrect(v bool) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetWasCorrect(v)
	})
}

// UpdateWasCorrect sets the "was_correct" field to the value that was provided on create.
func (u *PredictionEventUpsertOne) UpdateWasCorrect() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateWasCorrect()
	})
}

// SetConfidence sets the "confidence" field.
func (u *PredictionEventUpsertOne) SetConfidence(v float64) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *PredictionEventUpsertOne) AddConfidence(v float64) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PredictionEventUpsertOne) UpdateConfidence() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateConfidence()
	})
}

// SetRules sets the "rules" field.
func (u *PredictionEventUpsertOne) SetRules(v []string) *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetRules(v)
	})
}

// UpdateRules sets the "rules" field to the value that was provided on create.
func (u *PredictionEventUpsertOne) UpdateRules() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateRules()
	})
}

// ClearRules clears the value of the "rules" field.
func (u *PredictionEventUpsertOne) ClearRules() *PredictionEventUpsertOne {
	return u.Update(func(s *PredictionEventUpsert) {
		s.ClearRules()
	})
}

// Exec executes the query.
func (u *PredictionEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PredictionEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PredictionEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PredictionEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PredictionEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PredictionEventCreateBulk is the builder for creating many PredictionEvent entities in bulk.
type PredictionEventCreateBulk struct {
	config
	err      error
	builders []*PredictionEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PredictionEvent entities in the database.
func (_c *PredictionEventCreateBulk) Save(ctx context.Context) ([]*PredictionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PredictionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PredictionEventMutation)
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
func (_c *PredictionEventCreateBulk) SaveX(ctx context.Context) []*PredictionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PredictionEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PredictionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *PredictionEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PredictionEventUpsertBulk {
	_c.conflict = opts
	return &PredictionEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PredictionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PredictionEventCreateBulk) OnConflictColumns(columns ...string) *PredictionEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PredictionEventUpsertBulk{
		create: _c,
	}
}

// PredictionEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PredictionEvent nodes.
type PredictionEventUpsertBulk struct {
	create *PredictionEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PredictionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PredictionEventUpsertBulk) UpdateNewValues() *PredictionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(predictionevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(predictionevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PredictionEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PredictionEventUpsertBulk) Ignore() *PredictionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PredictionEventUpsertBulk) DoNothing() *PredictionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PredictionEventCreateBulk.OnConflict
// documentation for more info.
func (u *PredictionEventUpsertBulk) Update(set func(*PredictionEventUpsert)) *PredictionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PredictionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *PredictionEventUpsertBulk) SetQuestionID(v string) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *PredictionEventUpsertBulk) UpdateQuestionID() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *PredictionEventUpsertBulk) SetQuestionType(v string) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *PredictionEventUpsertBulk) UpdateQuestionType() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateQuestionType()
	})
}

// SetFormat sets the "format" field.
func (u *PredictionEventUpsertBulk) SetFormat(v string) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *PredictionEventUpsertBulk) UpdateFormat() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateFormat()
	})
}

// SetPredicted sets the "predicted" field.
func (u *PredictionEventUpsertBulk) SetPredicted(v string) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetPredicted(v)
	})
}

// UpdatePredicted sets the "predicted" field to the value that was provided on create.
func (u *PredictionEventUpsertBulk) UpdatePredicted() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdatePredicted()
	})
}

// SetCorrect sets the "correct" field.
func (u *PredictionEventUpsertBulk) SetCorrect(v string) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *PredictionEventUpsertBulk) UpdateCorrect() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetWasCorrect sets the "was_correct" field.
func (u *PredictionEventUpsertBulk) SetWasCorrect(v bool) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetWasCorrect(v)
	})
}

// UpdateWasCorrect sets the "was_correct" field to the value that was provided on create.
func (u *PredictionEventUpsertBulk) UpdateWasCorrect() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateWasCorrect()
	})
}

// SetConfidence sets the "confidence" field.
func (u *PredictionEventUpsertBulk) SetConfidence(v float64) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *PredictionEventUpsertBulk) AddConfidence(v float64) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PredictionEventUpsertBulk) UpdateConfidence() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateConfidence()
	})
}

// SetRules sets the "rules" field.
func (u *PredictionEventUpsertBulk) SetRules(v []string) *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.SetRules(v)
	})
}

// UpdateRules sets the "rules" field to the value that was provided on create.
func (u *PredictionEventUpsertBulk) UpdateRules() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.UpdateRules()
	})
}

// ClearRules clears the value of the "rules" field.
func (u *PredictionEventUpsertBulk) ClearRules() *PredictionEventUpsertBulk {
	return u.Update(func(s *PredictionEventUpsert) {
		s.ClearRules()
	})
}

// Exec executes the query.
func (u *PredictionEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PredictionEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PredictionEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PredictionEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
