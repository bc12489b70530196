// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stackfour/ent/predicate"
	"github.com/abhisek/stackfour/ent/predictionevent"
)

// PredictionEventUpdate is the builder for updating PredictionEvent entities.
type PredictionEventUpdate struct {
	config
	hooks    []Hook
	mutation *PredictionEventMutation
}

// Where appends a list predicates to the PredictionEventUpdate builder.
func (_u *PredictionEventUpdate) Where(ps ...predicate.PredictionEvent) *PredictionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *PredictionEventUpdate) SetQuestionID(v string) *PredictionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableQuestionID(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *PredictionEventUpdate) SetQuestionType(v string) *PredictionEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableQuestionType(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *PredictionEventUpdate) SetFormat(v string) *PredictionEventUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableFormat(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetPredicted sets the "predicted" field.
func (_u *PredictionEventUpdate) SetPredicted(v string) *PredictionEventUpdate {
	_u.mutation.SetPredicted(v)
	return _u
}

// SetNillablePredicted sets the "predicted" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillablePredicted(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetPredicted(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PredictionEventUpdate) SetCorrect(v string) *PredictionEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableCorrect(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetWasCorrect sets the "was_correct" field.
func (_u *PredictionEventUpdate) SetWasCorrect(v bool) *PredictionEventUpdate {
	_u.mutation.SetWasCorrect(v)
	return _u
}

// SetNillableWasCorrect sets the "was_correct" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableWasCorrect(v *bool) *PredictionEventUpdate {
	if v != nil {
		_u.SetWasCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionEventUpdate) SetConfidence(v float64) *PredictionEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableConfidence(v *float64) *PredictionEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionEventUpdate) AddConfidence(v float64) *PredictionEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRules sets the "rules" field.
func (_u *PredictionEventUpdate) SetRules(v []string) *PredictionEventUpdate {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *PredictionEventUpdate) AppendRules(v []string) *PredictionEventUpdate {
	_u.mutation.AppendRules(v)
	return _u
}

// ClearRules clears the value of the "rules" field.
func (_u *PredictionEventUpdate) ClearRules() *PredictionEventUpdate {
	_u.mutation.ClearRules()
	return _u
}

// Mutation returns the PredictionEventMutation object of the builder.
func (_u *PredictionEventUpdate) Mutation() *PredictionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PredictionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PredictionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PredictionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(predictionevent.Table, predictionevent.Columns, sqlgraph.NewFieldSpec(predictionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(predictionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(predictionevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(predictionevent.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Predicted(); ok {
		_spec.SetField(predictionevent.FieldPredicted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(predictionevent.FieldCorrect, field.TypeString, value)
	}
	if value, ok := _u.mutation.WasCorrect(); ok {
		_spec.SetField(predictionevent.FieldWasCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(predictionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(predictionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(predictionevent.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, predictionevent.FieldRules, value)
		})
	}
	if _u.mutation.RulesCleared() {
		_spec.ClearField(predictionevent.FieldRules, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PredictionEventUpdateOne is the builder for updating a single PredictionEvent entity.
type PredictionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PredictionEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *PredictionEventUpdateOne) SetQuestionID(v string) *PredictionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableQuestionID(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *PredictionEventUpdateOne) SetQuestionType(v string) *PredictionEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableQuestionType(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *PredictionEventUpdateOne) SetFormat(v string) *PredictionEventUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableFormat(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetPredicted sets the "predicted" field.
func (_u *PredictionEventUpdateOne) SetPredicted(v string) *PredictionEventUpdateOne {
	_u.mutation.SetPredicted(v)
	return _u
}

// SetNillablePredicted sets the "predicted" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillablePredicted(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetPredicted(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PredictionEventUpdateOne) SetCorrect(v string) *PredictionEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableCorrect(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetWasCorrect sets the "was_correct" field.
func (_u *PredictionEventUpdateOne) SetWasCorrect(v bool) *PredictionEventUpdateOne {
	_u.mutation.SetWasCorrect(v)
	return _u
}

// SetNillableWasCorrect sets the "was_correct" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableWasCorrect(v *bool) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetWasCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionEventUpdateOne) SetConfidence(v float64) *PredictionEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableConfidence(v *float64) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionEventUpdateOne) AddConfidence(v float64) *PredictionEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRules sets the "rules" field.
func (_u *PredictionEventUpdateOne) SetRules(v []string) *PredictionEventUpdateOne {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *PredictionEventUpdateOne) AppendRules(v []string) *PredictionEventUpdateOne {
	_u.mutation.AppendRules(v)
	return _u
}

// ClearRules clears the value of the "rules" field.
func (_u *PredictionEventUpdateOne) ClearRules() *PredictionEventUpdateOne {
	_u.mutation.ClearRules()
	return _u
}

// Mutation returns the PredictionEventMutation object of the builder.
func (_u *PredictionEventUpdateOne) Mutation() *PredictionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PredictionEventUpdate builder.
func (_u *PredictionEventUpdateOne) Where(ps ...predicate.PredictionEvent) *PredictionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PredictionEventUpdateOne) Select(field string, fields ...string) *PredictionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PredictionEvent entity.
func (_u *PredictionEventUpdateOne) Save(ctx context.Context) (*PredictionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionEventUpdateOne) SaveX(ctx context.Context) *PredictionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PredictionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PredictionEventUpdateOne) sqlSave(ctx context.Context) (_node *PredictionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(predictionevent.Table, predictionevent.Columns, sqlgraph.NewFieldSpec(predictionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PredictionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, predictionevent.FieldID)
		for _, f := range fields {
			if !predictionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != predictionevent.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(predictionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(predictionevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(predictionevent.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Predicted(); ok {
		_spec.SetField(predictionevent.FieldPredicted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(predictionevent.FieldCorrect, field.TypeString, value)
	}
	if value, ok := _u.mutation.WasCorrect(); ok {
		_spec.SetField(predictionevent.FieldWasCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(predictionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(predictionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(predictionevent.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, predictionevent.FieldRules, value)
		})
	}
	if _u.mutation.RulesCleared() {
		_spec.ClearField(predictionevent.FieldRules, field.TypeJSON)
	}
	_node = &PredictionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
