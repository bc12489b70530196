// Code generated by ent, DO NOT EDIT.

package predictionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldQuestionType, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldFormat, v))
}

// Predicted applies equality check predicate on the "predicted" field. It's identical to PredictedEQ.
func Predicted(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldPredicted, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldCorrect, v))
}

// WasCorrect applies equality check predicate on the "was_correct" field. It's identical to WasCorrectEQ.
func WasCorrect(v bool) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldWasCorrect, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldConfidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldQuestionType, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldFormat, v))
}

// PredictedEQ applies the EQ predicate on the "predicted" field.
func PredictedEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldPredicted, v))
}

// PredictedNEQ applies the NEQ predicate on the "predicted" field.
func PredictedNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldPredicted, v))
}

// PredictedIn applies the In predicate on the "predicted" field.
func PredictedIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldPredicted, vs...))
}

// PredictedNotIn applies the NotIn predicate on the "predicted" field.
func PredictedNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldPredicted, vs...))
}

// PredictedGT applies the GT predicate on the "predicted" field.
func PredictedGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldPredicted, v))
}

// PredictedGTE applies the GTE predicate on the "predicted" field.
func PredictedGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldPredicted, v))
}

// PredictedLT applies the LT predicate on the "predicted" field.
func PredictedLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldPredicted, v))
}

// PredictedLTE applies the LTE predicate on the "predicted" field.
func PredictedLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldPredicted, v))
}

// PredictedContains applies the Contains predicate on the "predicted" field.
func PredictedContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldPredicted, v))
}

// PredictedHasPrefix applies the HasPrefix predicate on the "predicted" field.
func PredictedHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldPredicted, v))
}

// PredictedHasSuffix applies the HasSuffix predicate on the "predicted" field.
func PredictedHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldPredicted, v))
}

// PredictedEqualFold applies the EqualFold predicate on the "predicted" field.
func PredictedEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldPredicted, v))
}

// PredictedContainsFold applies the ContainsFold predicate on the "predicted" field.
func PredictedContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldPredicted, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldCorrect, v))
}

// CorrectContains applies the Contains predicate on the "correct" field.
func CorrectContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldCorrect, v))
}

// CorrectHasPrefix applies the HasPrefix predicate on the "correct" field.
func CorrectHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldCorrect, v))
}

// CorrectHasSuffix applies the HasSuffix predicate on the "correct" field.
func CorrectHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldCorrect, v))
}

// CorrectEqualFold applies the EqualFold predicate on the "correct" field.
func CorrectEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldCorrect, v))
}

// CorrectContainsFold applies the ContainsFold predicate on the "correct" field.
func CorrectContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldCorrect, v))
}

// WasCorrectEQ applies the EQ predicate on the "was_correct" field.
func WasCorrectEQ(v bool) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldWasCorrect, v))
}

// WasCorrectNEQ applies the NEQ predicate on the "was_correct" field.
func WasCorrectNEQ(v bool) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldWasCorrect, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldConfidence, v))
}

// RulesIsNil applies the IsNil predicate on the "rules" field.
func RulesIsNil() predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIsNull(FieldRules))
}

// RulesNotNil applies the NotNil predicate on the "rules" field.
func RulesNotNil() predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotNull(FieldRules))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.NotPredicates(p))
}
