package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationRun stores the summary of one batch evaluation so runs over the
// same corpus can be compared across algorithm versions.
type EvaluationRun struct {
	ent.Schema
}

func (EvaluationRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable(),
		field.String("algorithm_version"),
		field.String("dataset_hash").
			Comment("Fingerprint of the sorted question IDs graded in this run"),
		field.JSON("metrics", map[string]any{}).
			Comment("Serialized metrics summary"),
		field.JSON("config", map[string]string{}).
			Optional().
			Comment("Run configuration, e.g. test ratio and seed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (EvaluationRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_hash"),
		index.Fields("created_at"),
	}
}
