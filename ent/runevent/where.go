// Code generated by ent, DO NOT EDIT.

package runevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qawave/qawave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldRunID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldSeq, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldScenarioID, v))
}

// StepResultID applies equality check predicate on the "step_result_id" field. It's identical to StepResultIDEQ.
func StepResultID(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldStepResultID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldSeq, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldType, vs...))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotNull(FieldPayload))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldScenarioID, v))
}

// ScenarioIDContains applies the Contains predicate on the "scenario_id" field.
func ScenarioIDContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldScenarioID, v))
}

// ScenarioIDHasPrefix applies the HasPrefix predicate on the "scenario_id" field.
func ScenarioIDHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldScenarioID, v))
}

// ScenarioIDHasSuffix applies the HasSuffix predicate on the "scenario_id" field.
func ScenarioIDHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldScenarioID, v))
}

// ScenarioIDIsNil applies the IsNil predicate on the "scenario_id" field.
func ScenarioIDIsNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIsNull(FieldScenarioID))
}

// ScenarioIDNotNil applies the NotNil predicate on the "scenario_id" field.
func ScenarioIDNotNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotNull(FieldScenarioID))
}

// ScenarioIDEqualFold applies the EqualFold predicate on the "scenario_id" field.
func ScenarioIDEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldScenarioID, v))
}

// ScenarioIDContainsFold applies the ContainsFold predicate on the "scenario_id" field.
func ScenarioIDContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldScenarioID, v))
}

// StepResultIDEQ applies the EQ predicate on the "step_result_id" field.
func StepResultIDEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldStepResultID, v))
}

// StepResultIDNEQ applies the NEQ predicate on the "step_result_id" field.
func StepResultIDNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldStepResultID, v))
}

// StepResultIDIn applies the In predicate on the "step_result_id" field.
func StepResultIDIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldStepResultID, vs...))
}

// StepResultIDNotIn applies the NotIn predicate on the "step_result_id" field.
func StepResultIDNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldStepResultID, vs...))
}

// StepResultIDGT applies the GT predicate on the "step_result_id" field.
func StepResultIDGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldStepResultID, v))
}

// StepResultIDGTE applies the GTE predicate on the "step_result_id" field.
func StepResultIDGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldStepResultID, v))
}

// StepResultIDLT applies the LT predicate on the "step_result_id" field.
func StepResultIDLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldStepResultID, v))
}

// StepResultIDLTE applies the LTE predicate on the "step_result_id" field.
func StepResultIDLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldStepResultID, v))
}

// StepResultIDContains applies the Contains predicate on the "step_result_id" field.
func StepResultIDContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldStepResultID, v))
}

// StepResultIDHasPrefix applies the HasPrefix predicate on the "step_result_id" field.
func StepResultIDHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldStepResultID, v))
}

// StepResultIDHasSuffix applies the HasSuffix predicate on the "step_result_id" field.
func StepResultIDHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldStepResultID, v))
}

// StepResultIDIsNil applies the IsNil predicate on the "step_result_id" field.
func StepResultIDIsNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIsNull(FieldStepResultID))
}

// StepResultIDNotNil applies the NotNil predicate on the "step_result_id" field.
func StepResultIDNotNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotNull(FieldStepResultID))
}

// StepResultIDEqualFold applies the EqualFold predicate on the "step_result_id" field.
func StepResultIDEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldStepResultID, v))
}

// StepResultIDContainsFold applies the ContainsFold predicate on the "step_result_id" field.
func StepResultIDContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldStepResultID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RunEvent {
	return predicate.RunEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.QARun) predicate.RunEvent {
	return predicate.RunEvent(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.NotPredicates(p))
}
