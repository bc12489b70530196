// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/keywordstat"
)

// KeywordStat is the model entity for the KeywordStat schema.
type KeywordStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Keyword holds the value of the "keyword" field.
	Keyword string `json:"keyword,omitempty"`
	// Times the keyword appeared in a missed correct option
	Correct int `json:"correct,omitempty"`
	// Times the keyword appeared in a wrongly chosen option
	Incorrect    int `json:"incorrect,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KeywordStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case keywordstat.FieldID, keywordstat.FieldCorrect, keywordstat.FieldIncorrect:
			values[i] = new(sql.NullInt64)
		case keywordstat.FieldKeyword:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KeywordStat fields.
func (_m *KeywordStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case keywordstat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case keywordstat.FieldKeyword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keyword", values[i])
			} else if value.Valid {
				_m.Keyword = value.String
			}
		case keywordstat.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case keywordstat.FieldIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect", values[i])
			} else if value.Valid {
				_m.Incorrect = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KeywordStat.
// This includes values selected through modifiers, order, etc.
func (_m *KeywordStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KeywordStat.
// Note that you need to call KeywordStat.Unwrap() before calling this method if this KeywordStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KeywordStat) Update() *KeywordStatUpdateOne {
	return NewKeywordStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KeywordStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KeywordStat) Unwrap() *KeywordStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KeywordStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KeywordStat) String() string {
	var builder strings.Builder
	builder.WriteString("KeywordStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("keyword=")
	builder.WriteString(_m.Keyword)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("incorrect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Incorrect))
	builder.WriteByte(')')
	return builder.String()
}

// KeywordStats is a parsable slice of KeywordStat.
type KeywordStats []*KeywordStat
