// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stackfour/ent/evaluationrun"
	"github.com/abhisek/stackfour/ent/predicate"
)

// EvaluationRunUpdate is the builder for updating EvaluationRun entities.
type EvaluationRunUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationRunMutation
}

// Where appends a list predicates to the EvaluationRunUpdate builder.
func (_u *EvaluationRunUpdate) Where(ps ...predicate.EvaluationRun) *EvaluationRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAlgorithmVersion sets the "algorithm_version" field.
func (_u *EvaluationRunUpdate) SetAlgorithmVersion(v string) *EvaluationRunUpdate {
	_u.mutation.SetAlgorithmVersion(v)
	return _u
}

// SetNillableAlgorithmVersion sets the "algorithm_version" field if the given value is not nil.
func (_u *EvaluationRunUpdate) SetNillableAlgorithmVersion(v *string) *EvaluationRunUpdate {
	if v != nil {
		_u.SetAlgorithmVersion(*v)
	}
	return _u
}

// SetDatasetHash sets the "dataset_hash" field.
func (_u *EvaluationRunUpdate) SetDatasetHash(v string) *EvaluationRunUpdate {
	_u.mutation.SetDatasetHash(v)
	return _u
}

// SetNillableDatasetHash sets the "dataset_hash" field if the given value is not nil.
func (_u *EvaluationRunUpdate) SetNillableDatasetHash(v *string) *EvaluationRunUpdate {
	if v != nil {
		_u.SetDatasetHash(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *EvaluationRunUpdate) SetMetrics(v map[string]interface{}) *EvaluationRunUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *EvaluationRunUpdate) SetConfig(v map[string]string) *EvaluationRunUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *EvaluationRunUpdate) ClearConfig() *EvaluationRunUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// Mutation returns the EvaluationRunMutation object of the builder.
func (_u *EvaluationRunUpdate) Mutation() *EvaluationRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvaluationRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(evaluationrun.Table, evaluationrun.Columns, sqlgraph.NewFieldSpec(evaluationrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlgorithmVersion(); ok {
		_spec.SetField(evaluationrun.FieldAlgorithmVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetHash(); ok {
		_spec.SetField(evaluationrun.FieldDatasetHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(evaluationrun.FieldMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(evaluationrun.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(evaluationrun.FieldConfig, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationRunUpdateOne is the builder for updating a single EvaluationRun entity.
type EvaluationRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationRunMutation
}

// SetAlgorithmVersion sets the "algorithm_version" field.
func (_u *EvaluationRunUpdateOne) SetAlgorithmVersion(v string) *EvaluationRunUpdateOne {
	_u.mutation.SetAlgorithmVersion(v)
	return _u
}

// SetNillableAlgorithmVersion sets the "algorithm_version" field if the given value is not nil.
func (_u *EvaluationRunUpdateOne) SetNillableAlgorithmVersion(v *string) *EvaluationRunUpdateOne {
	if v != nil {
		_u.SetAlgorithmVersion(*v)
	}
	return _u
}

// SetDatasetHash sets the "dataset_hash" field.
func (_u *EvaluationRunUpdateOne) SetDatasetHash(v string) *EvaluationRunUpdateOne {
	_u.mutation.SetDatasetHash(v)
	return _u
}

// SetNillableDatasetHash sets the "dataset_hash" field if the given value is not nil.
func (_u *EvaluationRunUpdateOne) SetNillableDatasetHash(v *string) *EvaluationRunUpdateOne {
	if v != nil {
		_u.SetDatasetHash(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *EvaluationRunUpdateOne) SetMetrics(v map[string]interface{}) *EvaluationRunUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *EvaluationRunUpdateOne) SetConfig(v map[string]string) *EvaluationRunUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *EvaluationRunUpdateOne) ClearConfig() *EvaluationRunUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// Mutation returns the EvaluationRunMutation object of the builder.
func (_u *EvaluationRunUpdateOne) Mutation() *EvaluationRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationRunUpdate builder.
func (_u *EvaluationRunUpdateOne) Where(ps ...predicate.EvaluationRun) *EvaluationRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationRunUpdateOne) Select(field string, fields ...string) *EvaluationRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationRun entity.
func (_u *EvaluationRunUpdateOne) Save(ctx context.Context) (*EvaluationRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationRunUpdateOne) SaveX(ctx context.Context) *EvaluationRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvaluationRunUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationRun, err error) {
	_spec := sqlgraph.NewUpdateSpec(evaluationrun.Table, evaluationrun.Columns, sqlgraph.NewFieldSpec(evaluationrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationrun.FieldID)
		for _, f := range fields {
			if !evaluationrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationrun.FieldID {
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
	if value, ok := _u.mutation.AlgorithmVersion(); ok {
		_spec.SetField(evaluationrun.FieldAlgorithmVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetHash(); ok {
		_spec.SetField(evaluationrun.FieldDatasetHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(evaluationrun.FieldMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(evaluationrun.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(evaluationrun.FieldConfig, field.TypeJSON)
	}
	_node = &EvaluationRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
