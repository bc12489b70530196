// Code generated by ent, DO NOT EDIT.

package patternstat

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the patternstat type in the database.
	Label = "pattern_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// Table holds the table name of the patternstat in the database.
	Table = "pattern_stats"
)

// Columns holds all SQL columns for patternstat fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCorrect,
	FieldTotal,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// DefaultTotal holds the default value on creation for the "total" field.
	DefaultTotal int
)

// OrderOption defines the ordering options for the PatternStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}
