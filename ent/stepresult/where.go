// Code generated by ent, DO NOT EDIT.

package stepresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qawave/qawave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldRunID, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldScenarioID, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldStepIndex, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldName, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldMethod, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldEndpoint, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldAttempts, v))
}

// ActualStatusCode applies equality check predicate on the "actual_status_code" field. It's identical to ActualStatusCodeEQ.
func ActualStatusCode(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldActualStatusCode, v))
}

// ActualBody applies equality check predicate on the "actual_body" field. It's identical to ActualBodyEQ.
func ActualBody(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldActualBody, v))
}

// BodyDigest applies equality check predicate on the "body_digest" field. It's identical to BodyDigestEQ.
func BodyDigest(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldBodyDigest, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldDurationMs, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldFinishedAt, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldFailureReason, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldErrorKind, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldRunID, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldScenarioID, v))
}

// ScenarioIDContains applies the Contains predicate on the "scenario_id" field.
func ScenarioIDContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldScenarioID, v))
}

// ScenarioIDHasPrefix applies the HasPrefix predicate on the "scenario_id" field.
func ScenarioIDHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldScenarioID, v))
}

// ScenarioIDHasSuffix applies the HasSuffix predicate on the "scenario_id" field.
func ScenarioIDHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldScenarioID, v))
}

// ScenarioIDEqualFold applies the EqualFold predicate on the "scenario_id" field.
func ScenarioIDEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldScenarioID, v))
}

// ScenarioIDContainsFold applies the ContainsFold predicate on the "scenario_id" field.
func ScenarioIDContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldScenarioID, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldStepIndex, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldName, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodIsNil applies the IsNil predicate on the "method" field.
func MethodIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldMethod))
}

// MethodNotNil applies the NotNil predicate on the "method" field.
func MethodNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldMethod))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldMethod, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointIsNil applies the IsNil predicate on the "endpoint" field.
func EndpointIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldEndpoint))
}

// EndpointNotNil applies the NotNil predicate on the "endpoint" field.
func EndpointNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldEndpoint))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldEndpoint, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldAttempts, v))
}

// ActualStatusCodeEQ applies the EQ predicate on the "actual_status_code" field.
func ActualStatusCodeEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldActualStatusCode, v))
}

// ActualStatusCodeNEQ applies the NEQ predicate on the "actual_status_code" field.
func ActualStatusCodeNEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldActualStatusCode, v))
}

// ActualStatusCodeIn applies the In predicate on the "actual_status_code" field.
func ActualStatusCodeIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldActualStatusCode, vs...))
}

// ActualStatusCodeNotIn applies the NotIn predicate on the "actual_status_code" field.
func ActualStatusCodeNotIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldActualStatusCode, vs...))
}

// ActualStatusCodeGT applies the GT predicate on the "actual_status_code" field.
func ActualStatusCodeGT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldActualStatusCode, v))
}

// ActualStatusCodeGTE applies the GTE predicate on the "actual_status_code" field.
func ActualStatusCodeGTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldActualStatusCode, v))
}

// ActualStatusCodeLT applies the LT predicate on the "actual_status_code" field.
func ActualStatusCodeLT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldActualStatusCode, v))
}

// ActualStatusCodeLTE applies the LTE predicate on the "actual_status_code" field.
func ActualStatusCodeLTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldActualStatusCode, v))
}

// ActualStatusCodeIsNil applies the IsNil predicate on the "actual_status_code" field.
func ActualStatusCodeIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldActualStatusCode))
}

// ActualStatusCodeNotNil applies the NotNil predicate on the "actual_status_code" field.
func ActualStatusCodeNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldActualStatusCode))
}

// ActualHeadersIsNil applies the IsNil predicate on the "actual_headers" field.
func ActualHeadersIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldActualHeaders))
}

// ActualHeadersNotNil applies the NotNil predicate on the "actual_headers" field.
func ActualHeadersNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldActualHeaders))
}

// ActualBodyEQ applies the EQ predicate on the "actual_body" field.
func ActualBodyEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldActualBody, v))
}

// ActualBodyNEQ applies the NEQ predicate on the "actual_body" field.
func ActualBodyNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldActualBody, v))
}

// ActualBodyIn applies the In predicate on the "actual_body" field.
func ActualBodyIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldActualBody, vs...))
}

// ActualBodyNotIn applies the NotIn predicate on the "actual_body" field.
func ActualBodyNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldActualBody, vs...))
}

// ActualBodyGT applies the GT predicate on the "actual_body" field.
func ActualBodyGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldActualBody, v))
}

// ActualBodyGTE applies the GTE predicate on the "actual_body" field.
func ActualBodyGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldActualBody, v))
}

// ActualBodyLT applies the LT predicate on the "actual_body" field.
func ActualBodyLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldActualBody, v))
}

// ActualBodyLTE applies the LTE predicate on the "actual_body" field.
func ActualBodyLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldActualBody, v))
}

// ActualBodyContains applies the Contains predicate on the "actual_body" field.
func ActualBodyContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldActualBody, v))
}

// ActualBodyHasPrefix applies the HasPrefix predicate on the "actual_body" field.
func ActualBodyHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldActualBody, v))
}

// ActualBodyHasSuffix applies the HasSuffix predicate on the "actual_body" field.
func ActualBodyHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldActualBody, v))
}

// ActualBodyIsNil applies the IsNil predicate on the "actual_body" field.
func ActualBodyIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldActualBody))
}

// ActualBodyNotNil applies the NotNil predicate on the "actual_body" field.
func ActualBodyNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldActualBody))
}

// ActualBodyEqualFold applies the EqualFold predicate on the "actual_body" field.
func ActualBodyEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldActualBody, v))
}

// ActualBodyContainsFold applies the ContainsFold predicate on the "actual_body" field.
func ActualBodyContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldActualBody, v))
}

// BodyDigestEQ applies the EQ predicate on the "body_digest" field.
func BodyDigestEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldBodyDigest, v))
}

// BodyDigestNEQ applies the NEQ predicate on the "body_digest" field.
func BodyDigestNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldBodyDigest, v))
}

// BodyDigestIn applies the In predicate on the "body_digest" field.
func BodyDigestIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldBodyDigest, vs...))
}

// BodyDigestNotIn applies the NotIn predicate on the "body_digest" field.
func BodyDigestNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldBodyDigest, vs...))
}

// BodyDigestGT applies the GT predicate on the "body_digest" field.
func BodyDigestGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldBodyDigest, v))
}

// BodyDigestGTE applies the GTE predicate on the "body_digest" field.
func BodyDigestGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldBodyDigest, v))
}

// BodyDigestLT applies the LT predicate on the "body_digest" field.
func BodyDigestLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldBodyDigest, v))
}

// BodyDigestLTE applies the LTE predicate on the "body_digest" field.
func BodyDigestLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldBodyDigest, v))
}

// BodyDigestContains applies the Contains predicate on the "body_digest" field.
func BodyDigestContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldBodyDigest, v))
}

// BodyDigestHasPrefix applies the HasPrefix predicate on the "body_digest" field.
func BodyDigestHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldBodyDigest, v))
}

// BodyDigestHasSuffix applies the HasSuffix predicate on the "body_digest" field.
func BodyDigestHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldBodyDigest, v))
}

// BodyDigestIsNil applies the IsNil predicate on the "body_digest" field.
func BodyDigestIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldBodyDigest))
}

// BodyDigestNotNil applies the NotNil predicate on the "body_digest" field.
func BodyDigestNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldBodyDigest))
}

// BodyDigestEqualFold applies the EqualFold predicate on the "body_digest" field.
func BodyDigestEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldBodyDigest, v))
}

// BodyDigestContainsFold applies the ContainsFold predicate on the "body_digest" field.
func BodyDigestContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldBodyDigest, v))
}

// AssertionResultsIsNil applies the IsNil predicate on the "assertion_results" field.
func AssertionResultsIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldAssertionResults))
}

// AssertionResultsNotNil applies the NotNil predicate on the "assertion_results" field.
func AssertionResultsNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldAssertionResults))
}

// ExtractedIsNil applies the IsNil predicate on the "extracted" field.
func ExtractedIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldExtracted))
}

// ExtractedNotNil applies the NotNil predicate on the "extracted" field.
func ExtractedNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldExtracted))
}

// UnresolvedIsNil applies the IsNil predicate on the "unresolved" field.
func UnresolvedIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldUnresolved))
}

// UnresolvedNotNil applies the NotNil predicate on the "unresolved" field.
func UnresolvedNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldUnresolved))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldDurationMs, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldFinishedAt, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldFailureReason, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldErrorKind, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.StepResult {
	return predicate.StepResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.QARun) predicate.StepResult {
	return predicate.StepResult(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScenario applies the HasEdge predicate on the "scenario" edge.
func HasScenario() predicate.StepResult {
	return predicate.StepResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScenarioTable, ScenarioColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScenarioWith applies the HasEdge predicate on the "scenario" edge with a given conditions (other predicates).
func HasScenarioWith(preds ...predicate.Scenario) predicate.StepResult {
	return predicate.StepResult(func(s *sql.Selector) {
		step := newScenarioStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepResult) predicate.StepResult {
	return predicate.StepResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepResult) predicate.StepResult {
	return predicate.StepResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepResult) predicate.StepResult {
	return predicate.StepResult(sql.NotPredicates(p))
}
