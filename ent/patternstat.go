// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/patternstat"
)

// PatternStat is the model entity for the PatternStat schema.
type PatternStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Scoring rule name, e.g. stack:AIRWAY or subtle:extreme_vitals
	Name string `json:"name,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Total holds the value of the "total" field.
	Total        int `json:"total,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatternStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patternstat.FieldID, patternstat.FieldCorrect, patternstat.FieldTotal:
			values[i] = new(sql.NullInt64)
		case patternstat.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatternStat fields.
func (_m *PatternStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patternstat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case patternstat.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case patternstat.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case patternstat.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatternStat.
// This includes values selected through modifiers, order, etc.
func (_m *PatternStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PatternStat.
// Note that you need to call PatternStat.Unwrap() before calling this method if this PatternStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatternStat) Update() *PatternStatUpdateOne {
	return NewPatternStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatternStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatternStat) Unwrap() *PatternStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PatternStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatternStat) String() string {
	var builder strings.Builder
	builder.WriteString("PatternStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteByte(')')
	return builder.String()
}

// PatternStats is a parsable slice of PatternStat.
type PatternStats []*PatternStat
