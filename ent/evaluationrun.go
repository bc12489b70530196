// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/evaluationrun"
)

// EvaluationRun is the model entity for the EvaluationRun schema.
type EvaluationRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// AlgorithmVersion holds the value of the "algorithm_version" field.
	AlgorithmVersion string `json:"algorithm_version,omitempty"`
	// Fingerprint of the sorted question IDs graded in this run
	DatasetHash string `json:"dataset_hash,omitempty"`
	// Serialized metrics summary
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Run configuration, e.g. test ratio and seed
	Config map[string]string `json:"config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationrun.FieldMetrics, evaluationrun.FieldConfig:
			values[i] = new([]byte)
		case evaluationrun.FieldID:
			values[i] = new(sql.NullInt64)
		case evaluationrun.FieldRunID, evaluationrun.FieldAlgorithmVersion, evaluationrun.FieldDatasetHash:
			values[i] = new(sql.NullString)
		case evaluationrun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationRun fields.
func (_m *EvaluationRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluationrun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case evaluationrun.FieldAlgorithmVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field algorithm_version", values[i])
			} else if value.Valid {
				_m.AlgorithmVersion = value.String
			}
		case evaluationrun.FieldDatasetHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_hash", values[i])
			} else if value.Valid {
				_m.DatasetHash = value.String
			}
		case evaluationrun.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case evaluationrun.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case evaluationrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationRun.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvaluationRun.
// Note that you need to call EvaluationRun.Unwrap() before calling this method if this EvaluationRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationRun) Update() *EvaluationRunUpdateOne {
	return NewEvaluationRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationRun) Unwrap() *EvaluationRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationRun) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("algorithm_version=")
	builder.WriteString(_m.AlgorithmVersion)
	builder.WriteString(", ")
	builder.WriteString("dataset_hash=")
	builder.WriteString(_m.DatasetHash)
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationRuns is a parsable slice of EvaluationRun.
type EvaluationRuns []*EvaluationRun
