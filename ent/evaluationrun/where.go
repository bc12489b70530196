// Code generated by ent, DO NOT EDIT.

package evaluationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldRunID, v))
}

// AlgorithmVersion applies equality check predicate on the "algorithm_version" field. It's identical to AlgorithmVersionEQ.
func AlgorithmVersion(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldAlgorithmVersion, v))
}

// DatasetHash applies equality check predicate on the "dataset_hash" field. It's identical to DatasetHashEQ.
func DatasetHash(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldDatasetHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldContainsFold(FieldRunID, v))
}

// AlgorithmVersionEQ applies the EQ predicate on the "algorithm_version" field.
func AlgorithmVersionEQ(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldAlgorithmVersion, v))
}

// AlgorithmVersionNEQ applies the NEQ predicate on the "algorithm_version" field.
func AlgorithmVersionNEQ(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNEQ(FieldAlgorithmVersion, v))
}

// AlgorithmVersionIn applies the In predicate on the "algorithm_version" field.
func AlgorithmVersionIn(vs ...string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldIn(FieldAlgorithmVersion, vs...))
}

// AlgorithmVersionNotIn applies the NotIn predicate on the "algorithm_version" field.
func AlgorithmVersionNotIn(vs ...string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNotIn(FieldAlgorithmVersion, vs...))
}

// AlgorithmVersionGT applies the GT predicate on the "algorithm_version" field.
func AlgorithmVersionGT(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGT(FieldAlgorithmVersion, v))
}

// AlgorithmVersionGTE applies the GTE predicate on the "algorithm_version" field.
func AlgorithmVersionGTE(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGTE(FieldAlgorithmVersion, v))
}

// AlgorithmVersionLT applies the LT predicate on the "algorithm_version" field.
func AlgorithmVersionLT(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLT(FieldAlgorithmVersion, v))
}

// AlgorithmVersionLTE applies the LTE predicate on the "algorithm_version" field.
func AlgorithmVersionLTE(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLTE(FieldAlgorithmVersion, v))
}

// AlgorithmVersionContains applies the Contains predicate on the "algorithm_version" field.
func AlgorithmVersionContains(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldContains(FieldAlgorithmVersion, v))
}

// AlgorithmVersionHasPrefix applies the HasPrefix predicate on the "algorithm_version" field.
func AlgorithmVersionHasPrefix(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldHasPrefix(FieldAlgorithmVersion, v))
}

// AlgorithmVersionHasSuffix applies the HasSuffix predicate on the "algorithm_version" field.
func AlgorithmVersionHasSuffix(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldHasSuffix(FieldAlgorithmVersion, v))
}

// AlgorithmVersionEqualFold applies the EqualFold predicate on the "algorithm_version" field.
func AlgorithmVersionEqualFold(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEqualFold(FieldAlgorithmVersion, v))
}

// AlgorithmVersionContainsFold applies the ContainsFold predicate on the "algorithm_version" field.
func AlgorithmVersionContainsFold(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldContainsFold(FieldAlgorithmVersion, v))
}

// DatasetHashEQ applies the EQ predicate on the "dataset_hash" field.
func DatasetHashEQ(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldDatasetHash, v))
}

// DatasetHashNEQ applies the NEQ predicate on the "dataset_hash" field.
func DatasetHashNEQ(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNEQ(FieldDatasetHash, v))
}

// DatasetHashIn applies the In predicate on the "dataset_hash" field.
func DatasetHashIn(vs ...string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldIn(FieldDatasetHash, vs...))
}

// DatasetHashNotIn applies the NotIn predicate on the "dataset_hash" field.
func DatasetHashNotIn(vs ...string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNotIn(FieldDatasetHash, vs...))
}

// DatasetHashGT applies the GT predicate on the "dataset_hash" field.
func DatasetHashGT(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGT(FieldDatasetHash, v))
}

// DatasetHashGTE applies the GTE predicate on the "dataset_hash" field.
func DatasetHashGTE(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGTE(FieldDatasetHash, v))
}

// DatasetHashLT applies the LT predicate on the "dataset_hash" field.
func DatasetHashLT(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLT(FieldDatasetHash, v))
}

// DatasetHashLTE applies the LTE predicate on the "dataset_hash" field.
func DatasetHashLTE(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLTE(FieldDatasetHash, v))
}

// DatasetHashContains applies the Contains predicate on the "dataset_hash" field.
func DatasetHashContains(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldContains(FieldDatasetHash, v))
}

// DatasetHashHasPrefix applies the HasPrefix predicate on the "dataset_hash" field.
func DatasetHashHasPrefix(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldHasPrefix(FieldDatasetHash, v))
}

// DatasetHashHasSuffix applies the HasSuffix predicate on the "dataset_hash" field.
func DatasetHashHasSuffix(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldHasSuffix(FieldDatasetHash, v))
}

// DatasetHashEqualFold applies the EqualFold predicate on the "dataset_hash" field.
func DatasetHashEqualFold(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEqualFold(FieldDatasetHash, v))
}

// DatasetHashContainsFold applies the ContainsFold predicate on the "dataset_hash" field.
func DatasetHashContainsFold(v string) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldContainsFold(FieldDatasetHash, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNotNull(FieldConfig))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationRun) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationRun) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationRun) predicate.EvaluationRun {
	return predicate.EvaluationRun(sql.NotPredicates(p))
}
