package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PredictionEvent records one graded prediction, forming the append-only
// feedback log the learning layer is rebuilt from.
type PredictionEvent struct {
	ent.Schema
}

func (PredictionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PredictionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Comment("Corpus identifier of the graded question"),
		field.String("question_type").
			Default(""),
		field.String("format").
			Comment("Response format: single, sata, ordered"),
		field.String("predicted").
			Comment("Comma-joined predicted option keys"),
		field.String("correct").
			Comment("Comma-joined correct option keys"),
		field.Bool("was_correct"),
		field.Float("confidence").
			Default(0).
			Comment("Exception confidence when one fired, else the 0.5 baseline"),
		field.JSON("rules", []string{}).
			Optional().
			Comment("Scoring rules that fired for the chosen options"),
	}
}

func (PredictionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("was_correct"),
	}
}
