// Code generated by ent, DO NOT EDIT.

package predictionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the predictionevent type in the database.
	Label = "prediction_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldPredicted holds the string denoting the predicted field in the database.
	FieldPredicted = "predicted"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldWasCorrect holds the string denoting the was_correct field in the database.
	FieldWasCorrect = "was_correct"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRules holds the string denoting the rules field in the database.
	FieldRules = "rules"
	// Table holds the table name of the predictionevent in the database.
	Table = "prediction_events"
)

// Columns holds all SQL columns for predictionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldQuestionID,
	FieldQuestionType,
	FieldFormat,
	FieldPredicted,
	FieldCorrect,
	FieldWasCorrect,
	FieldConfidence,
	FieldRules,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultQuestionType holds the default value on creation for the "question_type" field.
	DefaultQuestionType string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
)

// OrderOption defines the ordering options for the PredictionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByPredicted orders the results by the predicted field.
func ByPredicted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredicted, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByWasCorrect orders the results by the was_correct field.
func ByWasCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasCorrect, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}
