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
	"github.com/abhisek/stackfour/ent/predicate"
)

// PatternStatUpdate is the builder for updating PatternStat entities.
type PatternStatUpdate struct {
	config
	hooks    []Hook
	mutation *PatternStatMutation
}

// Where appends a list predicates to the PatternStatUpdate builder.
func (_u *PatternStatUpdate) Where(ps ...predicate.PatternStat) *PatternStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PatternStatUpdate) SetName(v string) *PatternStatUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PatternStatUpdate) SetNillableName(v *string) *PatternStatUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PatternStatUpdate) SetCorrect(v int) *PatternStatUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PatternStatUpdate) SetNillableCorrect(v *int) *PatternStatUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *PatternStatUpdate) AddCorrect(v int) *PatternStatUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *PatternStatUpdate) SetTotal(v int) *PatternStatUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *PatternStatUpdate) SetNillableTotal(v *int) *PatternStatUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *PatternStatUpdate) AddTotal(v int) *PatternStatUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// Mutation returns the PatternStatMutation object of the builder.
func (_u *PatternStatUpdate) Mutation() *PatternStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatternStatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatternStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PatternStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(patternstat.Table, patternstat.Columns, sqlgraph.NewFieldSpec(patternstat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(patternstat.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(patternstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(patternstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(patternstat.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(patternstat.FieldTotal, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patternstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatternStatUpdateOne is the builder for updating a single PatternStat entity.
type PatternStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatternStatMutation
}

// SetName sets the "name" field.
func (_u *PatternStatUpdateOne) SetName(v string) *PatternStatUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PatternStatUpdateOne) SetNillableName(v *string) *PatternStatUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PatternStatUpdateOne) SetCorrect(v int) *PatternStatUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PatternStatUpdateOne) SetNillableCorrect(v *int) *PatternStatUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *PatternStatUpdateOne) AddCorrect(v int) *PatternStatUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *PatternStatUpdateOne) SetTotal(v int) *PatternStatUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *PatternStatUpdateOne) SetNillableTotal(v *int) *PatternStatUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *PatternStatUpdateOne) AddTotal(v int) *PatternStatUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// Mutation returns the PatternStatMutation object of the builder.
func (_u *PatternStatUpdateOne) Mutation() *PatternStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatternStatUpdate builder.
func (_u *PatternStatUpdateOne) Where(ps ...predicate.PatternStat) *PatternStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatternStatUpdateOne) Select(field string, fields ...string) *PatternStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatternStat entity.
func (_u *PatternStatUpdateOne) Save(ctx context.Context) (*PatternStat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternStatUpdateOne) SaveX(ctx context.Context) *PatternStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatternStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PatternStatUpdateOne) sqlSave(ctx context.Context) (_node *PatternStat, err error) {
	_spec := sqlgraph.NewUpdateSpec(patternstat.Table, patternstat.Columns, sqlgraph.NewFieldSpec(patternstat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatternStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patternstat.FieldID)
		for _, f := range fields {
			if !patternstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patternstat.FieldID {
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
		_spec.SetField(patternstat.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(patternstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(patternstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(patternstat.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(patternstat.FieldTotal, field.TypeInt, value)
	}
	_node = &PatternStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patternstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
