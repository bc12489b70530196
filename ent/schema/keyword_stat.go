package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KeywordStat tracks clinical keywords mined from graded mistakes.
type KeywordStat struct {
	ent.Schema
}

func (KeywordStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("keyword").
			Unique(),
		field.Int("correct").
			Default(0).
			Comment("Times the keyword appeared in a missed correct option"),
		field.Int("incorrect").
			Default(0).
			Comment("Times the keyword appeared in a wrongly chosen option"),
	}
}
