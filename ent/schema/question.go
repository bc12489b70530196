package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one exam item in the corpus.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("qid").
			Unique().
			Immutable().
			Comment("Stable corpus identifier"),
		field.Text("stem").
			Comment("Question text"),
		field.JSON("options", map[string]string{}).
			Comment("Option key to option text"),
		field.String("correct").
			Comment("Comma-joined correct option keys, or the full permutation for ordered items"),
		field.String("format").
			Comment("Response format: single, sata, ordered"),
		field.String("question_type").
			Default("").
			Comment("Optional classification, e.g. priority, assessment"),
		field.String("publisher").
			Default(""),
		field.String("topic").
			Default(""),
		field.String("difficulty").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("format"),
		index.Fields("publisher"),
	}
}
