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
	"github.com/abhisek/stackfour/ent/predicate"
)

// KeywordStatUpdate is the builder for updating KeywordStat entities.
type KeywordStatUpdate struct {
	config
	hooks    []Hook
	mutation *KeywordStatMutation
}

// Where appends a list predicates to the KeywordStatUpdate builder.
func (_u *KeywordStatUpdate) Where(ps ...predicate.KeywordStat) *KeywordStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKeyword sets the "keyword" field.
func (_u *KeywordStatUpdate) SetKeyword(v string) *KeywordStatUpdate {
	_u.mutation.SetKeyword(v)
	return _u
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_u *KeywordStatUpdate) SetNillableKeyword(v *string) *KeywordStatUpdate {
	if v != nil {
		_u.SetKeyword(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *KeywordStatUpdate) SetCorrect(v int) *KeywordStatUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *KeywordStatUpdate) SetNillableCorrect(v *int) *KeywordStatUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *KeywordStatUpdate) AddCorrect(v int) *KeywordStatUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *KeywordStatUpdate) SetIncorrect(v int) *KeywordStatUpdate {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *KeywordStatUpdate) SetNillableIncorrect(v *int) *KeywordStatUpdate {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *KeywordStatUpdate) AddIncorrect(v int) *KeywordStatUpdate {
	_u.mutation.AddIncorrect(v)
	return _u
}

// Mutation returns the KeywordStatMutation object of the builder.
func (_u *KeywordStatUpdate) Mutation() *KeywordStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KeywordStatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeywordStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KeywordStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeywordStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *KeywordStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(keywordstat.Table, keywordstat.Columns, sqlgraph.NewFieldSpec(keywordstat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Keyword(); ok {
		_spec.SetField(keywordstat.FieldKeyword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(keywordstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(keywordstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(keywordstat.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(keywordstat.FieldIncorrect, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keywordstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KeywordStatUpdateOne is the builder for updating a single KeywordStat entity.
type KeywordStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KeywordStatMutation
}

// SetKeyword sets the "keyword" field.
func (_u *KeywordStatUpdateOne) SetKeyword(v string) *KeywordStatUpdateOne {
	_u.mutation.SetKeyword(v)
	return _u
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_u *KeywordStatUpdateOne) SetNillableKeyword(v *string) *KeywordStatUpdateOne {
	if v != nil {
		_u.SetKeyword(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *KeywordStatUpdateOne) SetCorrect(v int) *KeywordStatUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *KeywordStatUpdateOne) SetNillableCorrect(v *int) *KeywordStatUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *KeywordStatUpdateOne) AddCorrect(v int) *KeywordStatUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *KeywordStatUpdateOne) SetIncorrect(v int) *KeywordStatUpdateOne {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *KeywordStatUpdateOne) SetNillableIncorrect(v *int) *KeywordStatUpdateOne {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *KeywordStatUpdateOne) AddIncorrect(v int) *KeywordStatUpdateOne {
	_u.mutation.AddIncorrect(v)
	return _u
}

// Mutation returns the KeywordStatMutation object of the builder.
func (_u *KeywordStatUpdateOne) Mutation() *KeywordStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the KeywordStatUpdate builder.
func (_u *KeywordStatUpdateOne) Where(ps ...predicate.KeywordStat) *KeywordStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KeywordStatUpdateOne) Select(field string, fields ...string) *KeywordStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KeywordStat entity.
func (_u *KeywordStatUpdateOne) Save(ctx context.Context) (*KeywordStat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeywordStatUpdateOne) SaveX(ctx context.Context) *KeywordStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KeywordStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeywordStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *KeywordStatUpdateOne) sqlSave(ctx context.Context) (_node *KeywordStat, err error) {
	_spec := sqlgraph.NewUpdateSpec(keywordstat.Table, keywordstat.Columns, sqlgraph.NewFieldSpec(keywordstat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KeywordStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, keywordstat.FieldID)
		for _, f := range fields {
			if !keywordstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != keywordstat.FieldID {
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
	if value, ok := _u.mutation.Keyword(); ok {
		_spec.SetField(keywordstat.FieldKeyword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(keywordstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(keywordstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(keywordstat.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(keywordstat.FieldIncorrect, field.TypeInt, value)
	}
	_node = &KeywordStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keywordstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
