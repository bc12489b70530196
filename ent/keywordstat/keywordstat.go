// Code generated by ent, DO NOT EDIT.

package keywordstat

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the keywordstat type in the database.
	Label = "keyword_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKeyword holds the string denoting the keyword field in the database.
	FieldKeyword = "keyword"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldIncorrect holds the string denoting the incorrect field in the database.
	FieldIncorrect = "incorrect"
	// Table holds the table name of the keywordstat in the database.
	Table = "keyword_stats"
)

// Columns holds all SQL columns for keywordstat fields.
var Columns = []string{
	FieldID,
	FieldKeyword,
	FieldCorrect,
	FieldIncorrect,
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
	// DefaultIncorrect holds the default value on creation for the "incorrect" field.
	DefaultIncorrect int
)

// OrderOption defines the ordering options for the KeywordStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKeyword orders the results by the keyword field.
func ByKeyword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyword, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByIncorrect orders the results by the incorrect field.
func ByIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrect, opts...).ToFunc()
}
