// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// Qid applies equality check predicate on the "qid" field. It's identical to QidEQ.
func Qid(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQid, v))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrect, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFormat, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// Publisher applies equality check predicate on the "publisher" field. It's identical to PublisherEQ.
func Publisher(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPublisher, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// QidEQ applies the EQ predicate on the "qid" field.
func QidEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQid, v))
}

// QidNEQ applies the NEQ predicate on the "qid" field.
func QidNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQid, v))
}

// QidIn applies the In predicate on the "qid" field.
func QidIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQid, vs...))
}

// QidNotIn applies the NotIn predicate on the "qid" field.
func QidNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQid, vs...))
}

// QidGT applies the GT predicate on the "qid" field.
func QidGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQid, v))
}

// QidGTE applies the GTE predicate on the "qid" field.
func QidGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQid, v))
}

// QidLT applies the LT predicate on the "qid" field.
func QidLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQid, v))
}

// QidLTE applies the LTE predicate on the "qid" field.
func QidLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQid, v))
}

// QidContains applies the Contains predicate on the "qid" field.
func QidContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQid, v))
}

// QidHasPrefix applies the HasPrefix predicate on the "qid" field.
func QidHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQid, v))
}

// QidHasSuffix applies the HasSuffix predicate on the "qid" field.
func QidHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQid, v))
}

// QidEqualFold applies the EqualFold predicate on the "qid" field.
func QidEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQid, v))
}

// QidContainsFold applies the ContainsFold predicate on the "qid" field.
func QidContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQid, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStem, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrect, v))
}

// CorrectContains applies the Contains predicate on the "correct" field.
func CorrectContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCorrect, v))
}

// CorrectHasPrefix applies the HasPrefix predicate on the "correct" field.
func CorrectHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCorrect, v))
}

// CorrectHasSuffix applies the HasSuffix predicate on the "correct" field.
func CorrectHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCorrect, v))
}

// CorrectEqualFold applies the EqualFold predicate on the "correct" field.
func CorrectEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCorrect, v))
}

// CorrectContainsFold applies the ContainsFold predicate on the "correct" field.
func CorrectContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCorrect, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldFormat, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionType, v))
}

// PublisherEQ applies the EQ predicate on the "publisher" field.
func PublisherEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPublisher, v))
}

// PublisherNEQ applies the NEQ predicate on the "publisher" field.
func PublisherNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPublisher, v))
}

// PublisherIn applies the In predicate on the "publisher" field.
func PublisherIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPublisher, vs...))
}

// PublisherNotIn applies the NotIn predicate on the "publisher" field.
func PublisherNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPublisher, vs...))
}

// PublisherGT applies the GT predicate on the "publisher" field.
func PublisherGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPublisher, v))
}

// PublisherGTE applies the GTE predicate on the "publisher" field.
func PublisherGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPublisher, v))
}

// PublisherLT applies the LT predicate on the "publisher" field.
func PublisherLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPublisher, v))
}

// PublisherLTE applies the LTE predicate on the "publisher" field.
func PublisherLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPublisher, v))
}

// PublisherContains applies the Contains predicate on the "publisher" field.
func PublisherContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPublisher, v))
}

// PublisherHasPrefix applies the HasPrefix predicate on the "publisher" field.
func PublisherHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPublisher, v))
}

// PublisherHasSuffix applies the HasSuffix predicate on the "publisher" field.
func PublisherHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPublisher, v))
}

// PublisherEqualFold applies the EqualFold predicate on the "publisher" field.
func PublisherEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPublisher, v))
}

// PublisherContainsFold applies the ContainsFold predicate on the "publisher" field.
func PublisherContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPublisher, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTopic, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDifficulty, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
