// Code generated by ent, DO NOT EDIT.

package keywordstat

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldLTE(FieldID, id))
}

// Keyword applies equality check predicate on the "keyword" field. It's identical to KeywordEQ.
func Keyword(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEQ(FieldKeyword, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEQ(FieldCorrect, v))
}

// Incorrect applies equality check predicate on the "incorrect" field. It's identical to IncorrectEQ.
func Incorrect(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEQ(FieldIncorrect, v))
}

// KeywordEQ applies the EQ predicate on the "keyword" field.
func KeywordEQ(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEQ(FieldKeyword, v))
}

// KeywordNEQ applies the NEQ predicate on the "keyword" field.
func KeywordNEQ(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldNEQ(FieldKeyword, v))
}

// KeywordIn applies the In predicate on the "keyword" field.
func KeywordIn(vs ...string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldIn(FieldKeyword, vs...))
}

// KeywordNotIn applies the NotIn predicate on the "keyword" field.
func KeywordNotIn(vs ...string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldNotIn(FieldKeyword, vs...))
}

// KeywordGT applies the GT predicate on the "keyword" field.
func KeywordGT(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldGT(FieldKeyword, v))
}

// KeywordGTE applies the GTE predicate on the "keyword" field.
func KeywordGTE(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldGTE(FieldKeyword, v))
}

// KeywordLT applies the LT predicate on the "keyword" field.
func KeywordLT(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldLT(FieldKeyword, v))
}

// KeywordLTE applies the LTE predicate on the "keyword" field.
func KeywordLTE(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldLTE(FieldKeyword, v))
}

// KeywordContains applies the Contains predicate on the "keyword" field.
func KeywordContains(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldContains(FieldKeyword, v))
}

// KeywordHasPrefix applies the HasPrefix predicate on the "keyword" field.
func KeywordHasPrefix(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldHasPrefix(FieldKeyword, v))
}

// KeywordHasSuffix applies the HasSuffix predicate on the "keyword" field.
func KeywordHasSuffix(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldHasSuffix(FieldKeyword, v))
}

// KeywordEqualFold applies the EqualFold predicate on the "keyword" field.
func KeywordEqualFold(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEqualFold(FieldKeyword, v))
}

// KeywordContainsFold applies the ContainsFold predicate on the "keyword" field.
func KeywordContainsFold(v string) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldContainsFold(FieldKeyword, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldLTE(FieldCorrect, v))
}

// IncorrectEQ applies the EQ predicate on the "incorrect" field.
func IncorrectEQ(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldEQ(FieldIncorrect, v))
}

// IncorrectNEQ applies the NEQ predicate on the "incorrect" field.
func IncorrectNEQ(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldNEQ(FieldIncorrect, v))
}

// IncorrectIn applies the In predicate on the "incorrect" field.
func IncorrectIn(vs ...int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldIn(FieldIncorrect, vs...))
}

// IncorrectNotIn applies the NotIn predicate on the "incorrect" field.
func IncorrectNotIn(vs ...int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldNotIn(FieldIncorrect, vs...))
}

// IncorrectGT applies the GT predicate on the "incorrect" field.
func IncorrectGT(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldGT(FieldIncorrect, v))
}

// IncorrectGTE applies the GTE predicate on the "incorrect" field.
func IncorrectGTE(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldGTE(FieldIncorrect, v))
}

// IncorrectLT applies the LT predicate on the "incorrect" field.
func IncorrectLT(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldLT(FieldIncorrect, v))
}

// IncorrectLTE applies the LTE predicate on the "incorrect" field.
func IncorrectLTE(v int) predicate.KeywordStat {
	return predicate.KeywordStat(sql.FieldLTE(FieldIncorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KeywordStat) predicate.KeywordStat {
	return predicate.KeywordStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KeywordStat) predicate.KeywordStat {
	return predicate.KeywordStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KeywordStat) predicate.KeywordStat {
	return predicate.KeywordStat(sql.NotPredicates(p))
}
