// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvaluationRunsColumns holds the columns for the "evaluation_runs" table.
	EvaluationRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "algorithm_version", Type: field.TypeString},
		{Name: "dataset_hash", Type: field.TypeString},
		{Name: "metrics", Type: field.TypeJSON},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EvaluationRunsTable holds the schema information for the "evaluation_runs" table.
	EvaluationRunsTable = &schema.Table{
		Name:       "evaluation_runs",
		Columns:    EvaluationRunsColumns,
		PrimaryKey: []*schema.Column{EvaluationRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationrun_dataset_hash",
				Unique:  false,
				Columns: []*schema.Column{EvaluationRunsColumns[3]},
			},
			{
				Name:    "evaluationrun_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvaluationRunsColumns[6]},
			},
		},
	}
	// KeywordStatsColumns holds the columns for the "keyword_stats" table.
	KeywordStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "keyword", Type: field.TypeString, Unique: true},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "incorrect", Type: field.TypeInt, Default: 0},
	}
	// KeywordStatsTable holds the schema information for the "keyword_stats" table.
	KeywordStatsTable = &schema.Table{
		Name:       "keyword_stats",
		Columns:    KeywordStatsColumns,
		PrimaryKey: []*schema.Column{KeywordStatsColumns[0]},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PatternStatsColumns holds the columns for the "pattern_stats" table.
	PatternStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt, Default: 0},
	}
	// PatternStatsTable holds the schema information for the "pattern_stats" table.
	PatternStatsTable = &schema.Table{
		Name:       "pattern_stats",
		Columns:    PatternStatsColumns,
		PrimaryKey: []*schema.Column{PatternStatsColumns[0]},
	}
	// PredictionEventsColumns holds the columns for the "prediction_events" table.
	PredictionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString, Default: ""},
		{Name: "format", Type: field.TypeString},
		{Name: "predicted", Type: field.TypeString},
		{Name: "correct", Type: field.TypeString},
		{Name: "was_correct", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "rules", Type: field.TypeJSON, Nullable: true},
	}
	// PredictionEventsTable holds the schema information for the "prediction_events" table.
	PredictionEventsTable = &schema.Table{
		Name:       "prediction_events",
		Columns:    PredictionEventsColumns,
		PrimaryKey: []*schema.Column{PredictionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "predictionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[1]},
			},
			{
				Name:    "predictionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[2]},
			},
			{
				Name:    "predictionevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[3]},
			},
			{
				Name:    "predictionevent_was_correct",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[8]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "qid", Type: field.TypeString, Unique: true},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString, Default: ""},
		{Name: "publisher", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_format",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[5]},
			},
			{
				Name:    "question_publisher",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvaluationRunsTable,
		KeywordStatsTable,
		LlmRequestEventsTable,
		PatternStatsTable,
		PredictionEventsTable,
		QuestionsTable,
	}
)

func init() {
}
