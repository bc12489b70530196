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
	"github.com/abhisek/stackfour/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQid sets the "qid" field.
func (_c *QuestionCreate) SetQid(v string) *QuestionCreate {
	_c.mutation.SetQid(v)
	return _c
}

// SetStem sets the "stem" field.
func (_c *QuestionCreate) SetStem(v string) *QuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionCreate) SetOptions(v map[string]string) *QuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *QuestionCreate) SetCorrect(v string) *QuestionCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *QuestionCreate) SetFormat(v string) *QuestionCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionCreate) SetQuestionType(v string) *QuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableQuestionType(v *string) *QuestionCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetPublisher sets the "publisher" field.
func (_c *QuestionCreate) SetPublisher(v string) *QuestionCreate {
	_c.mutation.SetPublisher(v)
	return _c
}

// SetNillablePublisher sets the "publisher" field if the given value is not nil.
func (_c *QuestionCreate) SetNillablePublisher(v *string) *QuestionCreate {
	if v != nil {
		_c.SetPublisher(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionCreate) SetTopic(v string) *QuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTopic(v *string) *QuestionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v string) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficulty(v *string) *QuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := question.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.Publisher(); !ok {
		v := question.DefaultPublisher
		_c.mutation.SetPublisher(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := question.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := question.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Qid(); !ok {
		return &ValidationError{Name: "qid", err: errors.New(`ent: missing required field "Question.qid"`)}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "Question.stem"`)}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "Question.options"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Question.correct"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Question.format"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Question.question_type"`)}
	}
	if _, ok := _c.mutation.Publisher(); !ok {
		return &ValidationError{Name: "publisher", err: errors.New(`ent: missing required field "Question.publisher"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Question.topic"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Qid(); ok {
		_spec.SetField(question.FieldQid, field.TypeString, value)
		_node.Qid = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(question.FieldCorrect, field.TypeString, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(question.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Publisher(); ok {
		_spec.SetField(question.FieldPublisher, field.TypeString, value)
		_node.Publisher = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetQid(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetQid(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStem sets the "stem" field.
func (u *QuestionUpsert) SetStem(v string) *QuestionUpsert {
	u.Set(question.FieldStem, v)
	return u
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateStem() *QuestionUpsert {
	u.SetExcluded(question.FieldStem)
	return u
}

// SetOptions sets the "options" field.
func (u *QuestionUpsert) SetOptions(v map[string]string) *QuestionUpsert {
	u.Set(question.FieldOptions, v)
	return u
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateOptions() *QuestionUpsert {
	u.SetExcluded(question.FieldOptions)
	return u
}

// SetCorrect sets the "correct" field.
func (u *QuestionUpsert) SetCorrect(v string) *QuestionUpsert {
	u.Set(question.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateCorrect() *QuestionUpsert {
	u.SetExcluded(question.FieldCorrect)
	return u
}

// SetFormat sets the "format" field.
func (u *QuestionUpsert) SetFormat(v string) *QuestionUpsert {
	u.Set(question.FieldFormat, v)
	return u
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateFormat() *QuestionUpsert {
	u.SetExcluded(question.FieldFormat)
	return u
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionUpsert) SetQuestionType(v string) *QuestionUpsert {
	u.Set(question.FieldQuestionType, v)
	return u
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateQuestionType() *QuestionUpsert {
	u.SetExcluded(question.FieldQuestionType)
	return u
}

// SetPublisher sets the "publisher" field.
func (u *QuestionUpsert) SetPublisher(v string) *QuestionUpsert {
	u.Set(question.FieldPublisher, v)
	return u
}

// UpdatePublisher sets the "publisher" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePublisher() *QuestionUpsert {
	u.SetExcluded(question.FieldPublisher)
	return u
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsert) SetTopic(v string) *QuestionUpsert {
	u.Set(question.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTopic() *QuestionUpsert {
	u.SetExcluded(question.FieldTopic)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsert) SetDifficulty(v string) *QuestionUpsert {
	u.Set(question.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDifficulty() *QuestionUpsert {
	u.SetExcluded(question.FieldDifficulty)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Qid(); exists {
			s.SetIgnore(question.FieldQid)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(question.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStem sets the "stem" field.
func (u *QuestionUpsertOne) SetStem(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetStem(v)
	})
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateStem() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateStem()
	})
}

// SetOptions sets the "options" field.
func (u *QuestionUpsertOne) SetOptions(v map[string]string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateOptions() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptions()
	})
}

// SetCorrect sets the "correct" field.
func (u *QuestionUpsertOne) SetCorrect(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateCorrect() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCorrect()
	})
}

// SetFormat sets the "format" field.
func (u *QuestionUpsertOne) SetFormat(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateFormat() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateFormat()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionUpsertOne) SetQuestionType(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateQuestionType() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetPublisher sets the "publisher" field.
func (u *QuestionUpsertOne) SetPublisher(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPublisher(v)
	})
}

// UpdatePublisher sets the "publisher" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePublisher() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePublisher()
	})
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsertOne) SetTopic(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTopic() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTopic()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertOne) SetDifficulty(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDifficulty() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetQid(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Qid(); exists {
				s.SetIgnore(question.FieldQid)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(question.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStem sets the "stem" field.
func (u *QuestionUpsertBulk) SetStem(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetStem(v)
	})
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateStem() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateStem()
	})
}

// SetOptions sets the "options" field.
func (u *QuestionUpsertBulk) SetOptions(v map[string]string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateOptions() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptions()
	})
}

// SetCorrect sets the "correct" field.
func (u *QuestionUpsertBulk) SetCorrect(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateCorrect() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCorrect()
	})
}

// SetFormat sets the "format" field.
func (u *QuestionUpsertBulk) SetFormat(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateFormat() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateFormat()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionUpsertBulk) SetQuestionType(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateQuestionType() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetPublisher sets the "publisher" field.
func (u *QuestionUpsertBulk) SetPublisher(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPublisher(v)
	})
}

// UpdatePublisher sets the "publisher" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePublisher() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePublisher()
	})
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsertBulk) SetTopic(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTopic() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTopic()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertBulk) SetDifficulty(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDifficulty() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
