// Code generated by ent, DO NOT EDIT.

package qasummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qawave/qawave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QASummary {
	return predicate.QASummary(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldRunID, v))
}

// PassedScenarios applies equality check predicate on the "passed_scenarios" field. It's identical to PassedScenariosEQ.
func PassedScenarios(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldPassedScenarios, v))
}

// FailedScenarios applies equality check predicate on the "failed_scenarios" field. It's identical to FailedScenariosEQ.
func FailedScenarios(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldFailedScenarios, v))
}

// ErroredScenarios applies equality check predicate on the "errored_scenarios" field. It's identical to ErroredScenariosEQ.
func ErroredScenarios(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldErroredScenarios, v))
}

// NarrativeSummary applies equality check predicate on the "narrative_summary" field. It's identical to NarrativeSummaryEQ.
func NarrativeSummary(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldNarrativeSummary, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldQualityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldContainsFold(FieldRunID, v))
}

// OverallVerdictEQ applies the EQ predicate on the "overall_verdict" field.
func OverallVerdictEQ(v OverallVerdict) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldOverallVerdict, v))
}

// OverallVerdictNEQ applies the NEQ predicate on the "overall_verdict" field.
func OverallVerdictNEQ(v OverallVerdict) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldOverallVerdict, v))
}

// OverallVerdictIn applies the In predicate on the "overall_verdict" field.
func OverallVerdictIn(vs ...OverallVerdict) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldOverallVerdict, vs...))
}

// OverallVerdictNotIn applies the NotIn predicate on the "overall_verdict" field.
func OverallVerdictNotIn(vs ...OverallVerdict) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldOverallVerdict, vs...))
}

// PassedScenariosEQ applies the EQ predicate on the "passed_scenarios" field.
func PassedScenariosEQ(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldPassedScenarios, v))
}

// PassedScenariosNEQ applies the NEQ predicate on the "passed_scenarios" field.
func PassedScenariosNEQ(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldPassedScenarios, v))
}

// PassedScenariosIn applies the In predicate on the "passed_scenarios" field.
func PassedScenariosIn(vs ...int) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldPassedScenarios, vs...))
}

// PassedScenariosNotIn applies the NotIn predicate on the "passed_scenarios" field.
func PassedScenariosNotIn(vs ...int) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldPassedScenarios, vs...))
}

// PassedScenariosGT applies the GT predicate on the "passed_scenarios" field.
func PassedScenariosGT(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldGT(FieldPassedScenarios, v))
}

// PassedScenariosGTE applies the GTE predicate on the "passed_scenarios" field.
func PassedScenariosGTE(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldGTE(FieldPassedScenarios, v))
}

// PassedScenariosLT applies the LT predicate on the "passed_scenarios" field.
func PassedScenariosLT(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldLT(FieldPassedScenarios, v))
}

// PassedScenariosLTE applies the LTE predicate on the "passed_scenarios" field.
func PassedScenariosLTE(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldLTE(FieldPassedScenarios, v))
}

// FailedScenariosEQ applies the EQ predicate on the "failed_scenarios" field.
func FailedScenariosEQ(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldFailedScenarios, v))
}

// FailedScenariosNEQ applies the NEQ predicate on the "failed_scenarios" field.
func FailedScenariosNEQ(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldFailedScenarios, v))
}

// FailedScenariosIn applies the In predicate on the "failed_scenarios" field.
func FailedScenariosIn(vs ...int) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldFailedScenarios, vs...))
}

// FailedScenariosNotIn applies the NotIn predicate on the "failed_scenarios" field.
func FailedScenariosNotIn(vs ...int) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldFailedScenarios, vs...))
}

// FailedScenariosGT applies the GT predicate on the "failed_scenarios" field.
func FailedScenariosGT(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldGT(FieldFailedScenarios, v))
}

// FailedScenariosGTE applies the GTE predicate on the "failed_scenarios" field.
func FailedScenariosGTE(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldGTE(FieldFailedScenarios, v))
}

// FailedScenariosLT applies the LT predicate on the "failed_scenarios" field.
func FailedScenariosLT(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldLT(FieldFailedScenarios, v))
}

// FailedScenariosLTE applies the LTE predicate on the "failed_scenarios" field.
func FailedScenariosLTE(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldLTE(FieldFailedScenarios, v))
}

// ErroredScenariosEQ applies the EQ predicate on the "errored_scenarios" field.
func ErroredScenariosEQ(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldErroredScenarios, v))
}

// ErroredScenariosNEQ applies the NEQ predicate on the "errored_scenarios" field.
func ErroredScenariosNEQ(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldErroredScenarios, v))
}

// ErroredScenariosIn applies the In predicate on the "errored_scenarios" field.
func ErroredScenariosIn(vs ...int) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldErroredScenarios, vs...))
}

// ErroredScenariosNotIn applies the NotIn predicate on the "errored_scenarios" field.
func ErroredScenariosNotIn(vs ...int) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldErroredScenarios, vs...))
}

// ErroredScenariosGT applies the GT predicate on the "errored_scenarios" field.
func ErroredScenariosGT(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldGT(FieldErroredScenarios, v))
}

// ErroredScenariosGTE applies the GTE predicate on the "errored_scenarios" field.
func ErroredScenariosGTE(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldGTE(FieldErroredScenarios, v))
}

// ErroredScenariosLT applies the LT predicate on the "errored_scenarios" field.
func ErroredScenariosLT(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldLT(FieldErroredScenarios, v))
}

// ErroredScenariosLTE applies the LTE predicate on the "errored_scenarios" field.
func ErroredScenariosLTE(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldLTE(FieldErroredScenarios, v))
}

// NarrativeSummaryEQ applies the EQ predicate on the "narrative_summary" field.
func NarrativeSummaryEQ(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldNarrativeSummary, v))
}

// NarrativeSummaryNEQ applies the NEQ predicate on the "narrative_summary" field.
func NarrativeSummaryNEQ(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldNarrativeSummary, v))
}

// NarrativeSummaryIn applies the In predicate on the "narrative_summary" field.
func NarrativeSummaryIn(vs ...string) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldNarrativeSummary, vs...))
}

// NarrativeSummaryNotIn applies the NotIn predicate on the "narrative_summary" field.
func NarrativeSummaryNotIn(vs ...string) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldNarrativeSummary, vs...))
}

// NarrativeSummaryGT applies the GT predicate on the "narrative_summary" field.
func NarrativeSummaryGT(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldGT(FieldNarrativeSummary, v))
}

// NarrativeSummaryGTE applies the GTE predicate on the "narrative_summary" field.
func NarrativeSummaryGTE(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldGTE(FieldNarrativeSummary, v))
}

// NarrativeSummaryLT applies the LT predicate on the "narrative_summary" field.
func NarrativeSummaryLT(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldLT(FieldNarrativeSummary, v))
}

// NarrativeSummaryLTE applies the LTE predicate on the "narrative_summary" field.
func NarrativeSummaryLTE(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldLTE(FieldNarrativeSummary, v))
}

// NarrativeSummaryContains applies the Contains predicate on the "narrative_summary" field.
func NarrativeSummaryContains(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldContains(FieldNarrativeSummary, v))
}

// NarrativeSummaryHasPrefix applies the HasPrefix predicate on the "narrative_summary" field.
func NarrativeSummaryHasPrefix(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldHasPrefix(FieldNarrativeSummary, v))
}

// NarrativeSummaryHasSuffix applies the HasSuffix predicate on the "narrative_summary" field.
func NarrativeSummaryHasSuffix(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldHasSuffix(FieldNarrativeSummary, v))
}

// NarrativeSummaryEqualFold applies the EqualFold predicate on the "narrative_summary" field.
func NarrativeSummaryEqualFold(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldEqualFold(FieldNarrativeSummary, v))
}

// NarrativeSummaryContainsFold applies the ContainsFold predicate on the "narrative_summary" field.
func NarrativeSummaryContainsFold(v string) predicate.QASummary {
	return predicate.QASummary(sql.FieldContainsFold(FieldNarrativeSummary, v))
}

// NarrativeSourceEQ applies the EQ predicate on the "narrative_source" field.
func NarrativeSourceEQ(v NarrativeSource) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldNarrativeSource, v))
}

// NarrativeSourceNEQ applies the NEQ predicate on the "narrative_source" field.
func NarrativeSourceNEQ(v NarrativeSource) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldNarrativeSource, v))
}

// NarrativeSourceIn applies the In predicate on the "narrative_source" field.
func NarrativeSourceIn(vs ...NarrativeSource) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldNarrativeSource, vs...))
}

// NarrativeSourceNotIn applies the NotIn predicate on the "narrative_source" field.
func NarrativeSourceNotIn(vs ...NarrativeSource) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldNarrativeSource, vs...))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.QASummary {
	return predicate.QASummary(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.QASummary {
	return predicate.QASummary(sql.FieldNotNull(FieldRecommendations))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...int) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...int) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v int) predicate.QASummary {
	return predicate.QASummary(sql.FieldLTE(FieldQualityScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QASummary {
	return predicate.QASummary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.QASummary {
	return predicate.QASummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.QARun) predicate.QASummary {
	return predicate.QASummary(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QASummary) predicate.QASummary {
	return predicate.QASummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QASummary) predicate.QASummary {
	return predicate.QASummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QASummary) predicate.QASummary {
	return predicate.QASummary(sql.NotPredicates(p))
}
