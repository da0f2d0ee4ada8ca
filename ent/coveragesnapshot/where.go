// Code generated by ent, DO NOT EDIT.

package coveragesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qawave/qawave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldRunID, v))
}

// OpsTotal applies equality check predicate on the "ops_total" field. It's identical to OpsTotalEQ.
func OpsTotal(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldOpsTotal, v))
}

// OpsCovered applies equality check predicate on the "ops_covered" field. It's identical to OpsCoveredEQ.
func OpsCovered(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldOpsCovered, v))
}

// OpsFailed applies equality check predicate on the "ops_failed" field. It's identical to OpsFailedEQ.
func OpsFailed(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldOpsFailed, v))
}

// ScenariosPassed applies equality check predicate on the "scenarios_passed" field. It's identical to ScenariosPassedEQ.
func ScenariosPassed(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldScenariosPassed, v))
}

// ScenariosFailed applies equality check predicate on the "scenarios_failed" field. It's identical to ScenariosFailedEQ.
func ScenariosFailed(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldScenariosFailed, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldComputedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldContainsFold(FieldRunID, v))
}

// OpsTotalEQ applies the EQ predicate on the "ops_total" field.
func OpsTotalEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldOpsTotal, v))
}

// OpsTotalNEQ applies the NEQ predicate on the "ops_total" field.
func OpsTotalNEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNEQ(FieldOpsTotal, v))
}

// OpsTotalIn applies the In predicate on the "ops_total" field.
func OpsTotalIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIn(FieldOpsTotal, vs...))
}

// OpsTotalNotIn applies the NotIn predicate on the "ops_total" field.
func OpsTotalNotIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotIn(FieldOpsTotal, vs...))
}

// OpsTotalGT applies the GT predicate on the "ops_total" field.
func OpsTotalGT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGT(FieldOpsTotal, v))
}

// OpsTotalGTE applies the GTE predicate on the "ops_total" field.
func OpsTotalGTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGTE(FieldOpsTotal, v))
}

// OpsTotalLT applies the LT predicate on the "ops_total" field.
func OpsTotalLT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLT(FieldOpsTotal, v))
}

// OpsTotalLTE applies the LTE predicate on the "ops_total" field.
func OpsTotalLTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLTE(FieldOpsTotal, v))
}

// OpsCoveredEQ applies the EQ predicate on the "ops_covered" field.
func OpsCoveredEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldOpsCovered, v))
}

// OpsCoveredNEQ applies the NEQ predicate on the "ops_covered" field.
func OpsCoveredNEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNEQ(FieldOpsCovered, v))
}

// OpsCoveredIn applies the In predicate on the "ops_covered" field.
func OpsCoveredIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIn(FieldOpsCovered, vs...))
}

// OpsCoveredNotIn applies the NotIn predicate on the "ops_covered" field.
func OpsCoveredNotIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotIn(FieldOpsCovered, vs...))
}

// OpsCoveredGT applies the GT predicate on the "ops_covered" field.
func OpsCoveredGT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGT(FieldOpsCovered, v))
}

// OpsCoveredGTE applies the GTE predicate on the "ops_covered" field.
func OpsCoveredGTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGTE(FieldOpsCovered, v))
}

// OpsCoveredLT applies the LT predicate on the "ops_covered" field.
func OpsCoveredLT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLT(FieldOpsCovered, v))
}

// OpsCoveredLTE applies the LTE predicate on the "ops_covered" field.
func OpsCoveredLTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLTE(FieldOpsCovered, v))
}

// OpsFailedEQ applies the EQ predicate on the "ops_failed" field.
func OpsFailedEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldOpsFailed, v))
}

// OpsFailedNEQ applies the NEQ predicate on the "ops_failed" field.
func OpsFailedNEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNEQ(FieldOpsFailed, v))
}

// OpsFailedIn applies the In predicate on the "ops_failed" field.
func OpsFailedIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIn(FieldOpsFailed, vs...))
}

// OpsFailedNotIn applies the NotIn predicate on the "ops_failed" field.
func OpsFailedNotIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotIn(FieldOpsFailed, vs...))
}

// OpsFailedGT applies the GT predicate on the "ops_failed" field.
func OpsFailedGT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGT(FieldOpsFailed, v))
}

// OpsFailedGTE applies the GTE predicate on the "ops_failed" field.
func OpsFailedGTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGTE(FieldOpsFailed, v))
}

// OpsFailedLT applies the LT predicate on the "ops_failed" field.
func OpsFailedLT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLT(FieldOpsFailed, v))
}

// OpsFailedLTE applies the LTE predicate on the "ops_failed" field.
func OpsFailedLTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLTE(FieldOpsFailed, v))
}

// UncoveredOpsIsNil applies the IsNil predicate on the "uncovered_ops" field.
func UncoveredOpsIsNil() predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIsNull(FieldUncoveredOps))
}

// UncoveredOpsNotNil applies the NotNil predicate on the "uncovered_ops" field.
func UncoveredOpsNotNil() predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotNull(FieldUncoveredOps))
}

// PerOpStatusIsNil applies the IsNil predicate on the "per_op_status" field.
func PerOpStatusIsNil() predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIsNull(FieldPerOpStatus))
}

// PerOpStatusNotNil applies the NotNil predicate on the "per_op_status" field.
func PerOpStatusNotNil() predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotNull(FieldPerOpStatus))
}

// ScenariosPassedEQ applies the EQ predicate on the "scenarios_passed" field.
func ScenariosPassedEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldScenariosPassed, v))
}

// ScenariosPassedNEQ applies the NEQ predicate on the "scenarios_passed" field.
func ScenariosPassedNEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNEQ(FieldScenariosPassed, v))
}

// ScenariosPassedIn applies the In predicate on the "scenarios_passed" field.
func ScenariosPassedIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIn(FieldScenariosPassed, vs...))
}

// ScenariosPassedNotIn applies the NotIn predicate on the "scenarios_passed" field.
func ScenariosPassedNotIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotIn(FieldScenariosPassed, vs...))
}

// ScenariosPassedGT applies the GT predicate on the "scenarios_passed" field.
func ScenariosPassedGT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGT(FieldScenariosPassed, v))
}

// ScenariosPassedGTE applies the GTE predicate on the "scenarios_passed" field.
func ScenariosPassedGTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGTE(FieldScenariosPassed, v))
}

// ScenariosPassedLT applies the LT predicate on the "scenarios_passed" field.
func ScenariosPassedLT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLT(FieldScenariosPassed, v))
}

// ScenariosPassedLTE applies the LTE predicate on the "scenarios_passed" field.
func ScenariosPassedLTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLTE(FieldScenariosPassed, v))
}

// ScenariosFailedEQ applies the EQ predicate on the "scenarios_failed" field.
func ScenariosFailedEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldScenariosFailed, v))
}

// ScenariosFailedNEQ applies the NEQ predicate on the "scenarios_failed" field.
func ScenariosFailedNEQ(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNEQ(FieldScenariosFailed, v))
}

// ScenariosFailedIn applies the In predicate on the "scenarios_failed" field.
func ScenariosFailedIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIn(FieldScenariosFailed, vs...))
}

// ScenariosFailedNotIn applies the NotIn predicate on the "scenarios_failed" field.
func ScenariosFailedNotIn(vs ...int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotIn(FieldScenariosFailed, vs...))
}

// ScenariosFailedGT applies the GT predicate on the "scenarios_failed" field.
func ScenariosFailedGT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGT(FieldScenariosFailed, v))
}

// ScenariosFailedGTE applies the GTE predicate on the "scenarios_failed" field.
func ScenariosFailedGTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGTE(FieldScenariosFailed, v))
}

// ScenariosFailedLT applies the LT predicate on the "scenarios_failed" field.
func ScenariosFailedLT(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLT(FieldScenariosFailed, v))
}

// ScenariosFailedLTE applies the LTE predicate on the "scenarios_failed" field.
func ScenariosFailedLTE(v int) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLTE(FieldScenariosFailed, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.FieldLTE(FieldComputedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.QARun) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CoverageSnapshot) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CoverageSnapshot) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CoverageSnapshot) predicate.CoverageSnapshot {
	return predicate.CoverageSnapshot(sql.NotPredicates(p))
}
