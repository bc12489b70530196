// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/predictionevent"
)

// PredictionEvent is the model entity for the PredictionEvent schema.
type PredictionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Corpus identifier of the graded question
	QuestionID string `json:"question_id,omitempty"`
	// QuestionType holds the value of the "question_type" field.
	QuestionType string `json:"question_type,omitempty"`
	// Response format: single, sata, ordered
	Format string `json:"format,omitempty"`
	// Comma-joined predicted option keys
	Predicted string `json:"predicted,omitempty"`
	// Comma-joined correct option keys
	Correct string `json:"correct,omitempty"`
	// WasCorrect holds the value of the "was_correct" field.
	WasCorrect bool `json:"was_correct,omitempty"`
	// Exception confidence when one fired, else the 0.5 baseline
	Confidence float64 `json:"confidence,omitempty"`
	// Scoring rules that fired for the chosen options
	Rules        []string `json:"rules,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PredictionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case predictionevent.FieldRules:
			values[i] = new([]byte)
		case predictionevent.FieldWasCorrect:
			values[i] = new(sql.NullBool)
		case predictionevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case predictionevent.FieldID, predictionevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case predictionevent.FieldQuestionID, predictionevent.FieldQuestionType, predictionevent.FieldFormat, predictionevent.FieldPredicted, predictionevent.FieldCorrect:
			values[i] = new(sql.NullString)
		case predictionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PredictionEvent fields.
func (_m *PredictionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case predictionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case predictionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case predictionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case predictionevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case predictionevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case predictionevent.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case predictionevent.FieldPredicted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field predicted", values[i])
			} else if value.Valid {
				_m.Predicted = value.String
			}
		case predictionevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.String
			}
		case predictionevent.FieldWasCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_correct", values[i])
			} else if value.Valid {
				_m.WasCorrect = value.Bool
			}
		case predictionevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case predictionevent.FieldRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rules); err != nil {
					return fmt.Errorf("unmarshal field rules: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PredictionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PredictionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PredictionEvent.
// Note that you need to call PredictionEvent.Unwrap() before calling this method if this PredictionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PredictionEvent) Update() *PredictionEventUpdateOne {
	return NewPredictionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PredictionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PredictionEvent) Unwrap() *PredictionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PredictionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PredictionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PredictionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("predicted=")
	builder.WriteString(_m.Predicted)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(_m.Correct)
	builder.WriteString(", ")
	builder.WriteString("was_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasCorrect))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rules))
	builder.WriteByte(')')
	return builder.String()
}

// PredictionEvents is a parsable slice of PredictionEvent.
type PredictionEvents []*PredictionEvent
