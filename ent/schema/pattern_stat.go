package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PatternStat is the accumulated hit rate of one scoring rule. Rows are
// upserted wholesale when the learning layer saves its state.
type PatternStat struct {
	ent.Schema
}

func (PatternStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Scoring rule name, e.g. stack:AIRWAY or subtle:extreme_vitals"),
		field.Int("correct").
			Default(0),
		field.Int("total").
			Default(0),
	}
}
