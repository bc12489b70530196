// Code generated by ent, DO NOT EDIT.

package evaluationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evaluationrun type in the database.
	Label = "evaluation_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldAlgorithmVersion holds the string denoting the algorithm_version field in the database.
	FieldAlgorithmVersion = "algorithm_version"
	// FieldDatasetHash holds the string denoting the dataset_hash field in the database.
	FieldDatasetHash = "dataset_hash"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the evaluationrun in the database.
	Table = "evaluation_runs"
)

// Columns holds all SQL columns for evaluationrun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldAlgorithmVersion,
	FieldDatasetHash,
	FieldMetrics,
	FieldConfig,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the EvaluationRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByAlgorithmVersion orders the results by the algorithm_version field.
func ByAlgorithmVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlgorithmVersion, opts...).ToFunc()
}

// ByDatasetHash orders the results by the dataset_hash field.
func ByDatasetHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
