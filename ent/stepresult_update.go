// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/qawave/qawave/ent/predicate"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
)

// StepResultUpdate is the builder for updating StepResult entities.
type StepResultUpdate struct {
	config
	hooks    []Hook
	mutation *StepResultMutation
}

// Where appends a list predicates to the StepResultUpdate builder.
func (_u *StepResultUpdate) Where(ps ...predicate.StepResult) *StepResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StepResultUpdate) SetName(v string) *StepResultUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableName(v *string) *StepResultUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *StepResultUpdate) ClearName() *StepResultUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetMethod sets the "method" field.
func (_u *StepResultUpdate) SetMethod(v string) *StepResultUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableMethod(v *string) *StepResultUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *StepResultUpdate) ClearMethod() *StepResultUpdate {
	_u.mutation.ClearMethod()
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *StepResultUpdate) SetEndpoint(v string) *StepResultUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableEndpoint(v *string) *StepResultUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// ClearEndpoint clears the value of the "endpoint" field.
func (_u *StepResultUpdate) ClearEndpoint() *StepResultUpdate {
	_u.mutation.ClearEndpoint()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepResultUpdate) SetStatus(v stepresult.Status) *StepResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableStatus(v *stepresult.Status) *StepResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepResultUpdate) SetAttempts(v int) *StepResultUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableAttempts(v *int) *StepResultUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepResultUpdate) AddAttempts(v int) *StepResultUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetActualStatusCode sets the "actual_status_code" field.
func (_u *StepResultUpdate) SetActualStatusCode(v int) *StepResultUpdate {
	_u.mutation.ResetActualStatusCode()
	_u.mutation.SetActualStatusCode(v)
	return _u
}

// SetNillableActualStatusCode sets the "actual_status_code" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableActualStatusCode(v *int) *StepResultUpdate {
	if v != nil {
		_u.SetActualStatusCode(*v)
	}
	return _u
}

// AddActualStatusCode adds value to the "actual_status_code" field.
func (_u *StepResultUpdate) AddActualStatusCode(v int) *StepResultUpdate {
	_u.mutation.AddActualStatusCode(v)
	return _u
}

// ClearActualStatusCode clears the value of the "actual_status_code" field.
func (_u *StepResultUpdate) ClearActualStatusCode() *StepResultUpdate {
	_u.mutation.ClearActualStatusCode()
	return _u
}

// SetActualHeaders sets the "actual_headers" field.
func (_u *StepResultUpdate) SetActualHeaders(v map[string]string) *StepResultUpdate {
	_u.mutation.SetActualHeaders(v)
	return _u
}

// ClearActualHeaders clears the value of the "actual_headers" field.
func (_u *StepResultUpdate) ClearActualHeaders() *StepResultUpdate {
	_u.mutation.ClearActualHeaders()
	return _u
}

// SetActualBody sets the "actual_body" field.
func (_u *StepResultUpdate) SetActualBody(v string) *StepResultUpdate {
	_u.mutation.SetActualBody(v)
	return _u
}

// SetNillableActualBody sets the "actual_body" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableActualBody(v *string) *StepResultUpdate {
	if v != nil {
		_u.SetActualBody(*v)
	}
	return _u
}

// ClearActualBody clears the value of the "actual_body" field.
func (_u *StepResultUpdate) ClearActualBody() *StepResultUpdate {
	_u.mutation.ClearActualBody()
	return _u
}

// SetBodyDigest sets the "body_digest" field.
func (_u *StepResultUpdate) SetBodyDigest(v string) *StepResultUpdate {
	_u.mutation.SetBodyDigest(v)
	return _u
}

// SetNillableBodyDigest sets the "body_digest" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableBodyDigest(v *string) *StepResultUpdate {
	if v != nil {
		_u.SetBodyDigest(*v)
	}
	return _u
}

// ClearBodyDigest clears the value of the "body_digest" field.
func (_u *StepResultUpdate) ClearBodyDigest() *StepResultUpdate {
	_u.mutation.ClearBodyDigest()
	return _u
}

// SetAssertionResults sets the "assertion_results" field.
func (_u *StepResultUpdate) SetAssertionResults(v []models.AssertionResult) *StepResultUpdate {
	_u.mutation.SetAssertionResults(v)
	return _u
}

// AppendAssertionResults appends value to the "assertion_results" field.
func (_u *StepResultUpdate) AppendAssertionResults(v []models.AssertionResult) *StepResultUpdate {
	_u.mutation.AppendAssertionResults(v)
	return _u
}

// ClearAssertionResults clears the value of the "assertion_results" field.
func (_u *StepResultUpdate) ClearAssertionResults() *StepResultUpdate {
	_u.mutation.ClearAssertionResults()
	return _u
}

// SetExtracted sets the "extracted" field.
func (_u *StepResultUpdate) SetExtracted(v map[string]string) *StepResultUpdate {
	_u.mutation.SetExtracted(v)
	return _u
}

// ClearExtracted clears the value of the "extracted" field.
func (_u *StepResultUpdate) ClearExtracted() *StepResultUpdate {
	_u.mutation.ClearExtracted()
	return _u
}

// SetUnresolved sets the "unresolved" field.
func (_u *StepResultUpdate) SetUnresolved(v []string) *StepResultUpdate {
	_u.mutation.SetUnresolved(v)
	return _u
}

// AppendUnresolved appends value to the "unresolved" field.
func (_u *StepResultUpdate) AppendUnresolved(v []string) *StepResultUpdate {
	_u.mutation.AppendUnresolved(v)
	return _u
}

// ClearUnresolved clears the value of the "unresolved" field.
func (_u *StepResultUpdate) ClearUnresolved() *StepResultUpdate {
	_u.mutation.ClearUnresolved()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StepResultUpdate) SetDurationMs(v int64) *StepResultUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableDurationMs(v *int64) *StepResultUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StepResultUpdate) AddDurationMs(v int64) *StepResultUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepResultUpdate) SetStartedAt(v time.Time) *StepResultUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableStartedAt(v *time.Time) *StepResultUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *StepResultUpdate) SetFinishedAt(v time.Time) *StepResultUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableFinishedAt(v *time.Time) *StepResultUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *StepResultUpdate) SetFailureReason(v string) *StepResultUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableFailureReason(v *string) *StepResultUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *StepResultUpdate) ClearFailureReason() *StepResultUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *StepResultUpdate) SetErrorKind(v string) *StepResultUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *StepResultUpdate) SetNillableErrorKind(v *string) *StepResultUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *StepResultUpdate) ClearErrorKind() *StepResultUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// Mutation returns the StepResultMutation object of the builder.
func (_u *StepResultUpdate) Mutation() *StepResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepResult.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepResult.run"`)
	}
	if _u.mutation.ScenarioCleared() && len(_u.mutation.ScenarioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepResult.scenario"`)
	}
	return nil
}

func (_u *StepResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepresult.Table, stepresult.Columns, sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(stepresult.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(stepresult.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(stepresult.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(stepresult.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(stepresult.FieldEndpoint, field.TypeString, value)
	}
	if _u.mutation.EndpointCleared() {
		_spec.ClearField(stepresult.FieldEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(stepresult.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(stepresult.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualStatusCode(); ok {
		_spec.SetField(stepresult.FieldActualStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualStatusCode(); ok {
		_spec.AddField(stepresult.FieldActualStatusCode, field.TypeInt, value)
	}
	if _u.mutation.ActualStatusCodeCleared() {
		_spec.ClearField(stepresult.FieldActualStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ActualHeaders(); ok {
		_spec.SetField(stepresult.FieldActualHeaders, field.TypeJSON, value)
	}
	if _u.mutation.ActualHeadersCleared() {
		_spec.ClearField(stepresult.FieldActualHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActualBody(); ok {
		_spec.SetField(stepresult.FieldActualBody, field.TypeString, value)
	}
	if _u.mutation.ActualBodyCleared() {
		_spec.ClearField(stepresult.FieldActualBody, field.TypeString)
	}
	if value, ok := _u.mutation.BodyDigest(); ok {
		_spec.SetField(stepresult.FieldBodyDigest, field.TypeString, value)
	}
	if _u.mutation.BodyDigestCleared() {
		_spec.ClearField(stepresult.FieldBodyDigest, field.TypeString)
	}
	if value, ok := _u.mutation.AssertionResults(); ok {
		_spec.SetField(stepresult.FieldAssertionResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssertionResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stepresult.FieldAssertionResults, value)
		})
	}
	if _u.mutation.AssertionResultsCleared() {
		_spec.ClearField(stepresult.FieldAssertionResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Extracted(); ok {
		_spec.SetField(stepresult.FieldExtracted, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedCleared() {
		_spec.ClearField(stepresult.FieldExtracted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Unresolved(); ok {
		_spec.SetField(stepresult.FieldUnresolved, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnresolved(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stepresult.FieldUnresolved, value)
		})
	}
	if _u.mutation.UnresolvedCleared() {
		_spec.ClearField(stepresult.FieldUnresolved, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stepresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stepresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stepresult.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(stepresult.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(stepresult.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(stepresult.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(stepresult.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(stepresult.FieldErrorKind, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepResultUpdateOne is the builder for updating a single StepResult entity.
type StepResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepResultMutation
}

// SetName sets the "name" field.
func (_u *StepResultUpdateOne) SetName(v string) *StepResultUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableName(v *string) *StepResultUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *StepResultUpdateOne) ClearName() *StepResultUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetMethod sets the "method" field.
func (_u *StepResultUpdateOne) SetMethod(v string) *StepResultUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableMethod(v *string) *StepResultUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *StepResultUpdateOne) ClearMethod() *StepResultUpdateOne {
	_u.mutation.ClearMethod()
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *StepResultUpdateOne) SetEndpoint(v string) *StepResultUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableEndpoint(v *string) *StepResultUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// ClearEndpoint clears the value of the "endpoint" field.
func (_u *StepResultUpdateOne) ClearEndpoint() *StepResultUpdateOne {
	_u.mutation.ClearEndpoint()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepResultUpdateOne) SetStatus(v stepresult.Status) *StepResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableStatus(v *stepresult.Status) *StepResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepResultUpdateOne) SetAttempts(v int) *StepResultUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableAttempts(v *int) *StepResultUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepResultUpdateOne) AddAttempts(v int) *StepResultUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetActualStatusCode sets the "actual_status_code" field.
func (_u *StepResultUpdateOne) SetActualStatusCode(v int) *StepResultUpdateOne {
	_u.mutation.ResetActualStatusCode()
	_u.mutation.SetActualStatusCode(v)
	return _u
}

// SetNillableActualStatusCode sets the "actual_status_code" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableActualStatusCode(v *int) *StepResultUpdateOne {
	if v != nil {
		_u.SetActualStatusCode(*v)
	}
	return _u
}

// AddActualStatusCode adds value to the "actual_status_code" field.
func (_u *StepResultUpdateOne) AddActualStatusCode(v int) *StepResultUpdateOne {
	_u.mutation.AddActualStatusCode(v)
	return _u
}

// ClearActualStatusCode clears the value of the "actual_status_code" field.
func (_u *StepResultUpdateOne) ClearActualStatusCode() *StepResultUpdateOne {
	_u.mutation.ClearActualStatusCode()
	return _u
}

// SetActualHeaders sets the "actual_headers" field.
func (_u *StepResultUpdateOne) SetActualHeaders(v map[string]string) *StepResultUpdateOne {
	_u.mutation.SetActualHeaders(v)
	return _u
}

// ClearActualHeaders clears the value of the "actual_headers" field.
func (_u *StepResultUpdateOne) ClearActualHeaders() *StepResultUpdateOne {
	_u.mutation.ClearActualHeaders()
	return _u
}

// SetActualBody sets the "actual_body" field.
func (_u *StepResultUpdateOne) SetActualBody(v string) *StepResultUpdateOne {
	_u.mutation.SetActualBody(v)
	return _u
}

// SetNillableActualBody sets the "actual_body" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableActualBody(v *string) *StepResultUpdateOne {
	if v != nil {
		_u.SetActualBody(*v)
	}
	return _u
}

// ClearActualBody clears the value of the "actual_body" field.
func (_u *StepResultUpdateOne) ClearActualBody() *StepResultUpdateOne {
	_u.mutation.ClearActualBody()
	return _u
}

// SetBodyDigest sets the "body_digest" field.
func (_u *StepResultUpdateOne) SetBodyDigest(v string) *StepResultUpdateOne {
	_u.mutation.SetBodyDigest(v)
	return _u
}

// SetNillableBodyDigest sets the "body_digest" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableBodyDigest(v *string) *StepResultUpdateOne {
	if v != nil {
		_u.SetBodyDigest(*v)
	}
	return _u
}

// ClearBodyDigest clears the value of the "body_digest" field.
func (_u *StepResultUpdateOne) ClearBodyDigest() *StepResultUpdateOne {
	_u.mutation.ClearBodyDigest()
	return _u
}

// SetAssertionResults sets the "assertion_results" field.
func (_u *StepResultUpdateOne) SetAssertionResults(v []models.AssertionResult) *StepResultUpdateOne {
	_u.mutation.SetAssertionResults(v)
	return _u
}

// AppendAssertionResults appends value to the "assertion_results" field.
func (_u *StepResultUpdateOne) AppendAssertionResults(v []models.AssertionResult) *StepResultUpdateOne {
	_u.mutation.AppendAssertionResults(v)
	return _u
}

// ClearAssertionResults clears the value of the "assertion_results" field.
func (_u *StepResultUpdateOne) ClearAssertionResults() *StepResultUpdateOne {
	_u.mutation.ClearAssertionResults()
	return _u
}

// SetExtracted sets the "extracted" field.
func (_u *StepResultUpdateOne) SetExtracted(v map[string]string) *StepResultUpdateOne {
	_u.mutation.SetExtracted(v)
	return _u
}

// ClearExtracted clears the value of the "extracted" field.
func (_u *StepResultUpdateOne) ClearExtracted() *StepResultUpdateOne {
	_u.mutation.ClearExtracted()
	return _u
}

// SetUnresolved sets the "unresolved" field.
func (_u *StepResultUpdateOne) SetUnresolved(v []string) *StepResultUpdateOne {
	_u.mutation.SetUnresolved(v)
	return _u
}

// AppendUnresolved appends value to the "unresolved" field.
func (_u *StepResultUpdateOne) AppendUnresolved(v []string) *StepResultUpdateOne {
	_u.mutation.AppendUnresolved(v)
	return _u
}

// ClearUnresolved clears the value of the "unresolved" field.
func (_u *StepResultUpdateOne) ClearUnresolved() *StepResultUpdateOne {
	_u.mutation.ClearUnresolved()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StepResultUpdateOne) SetDurationMs(v int64) *StepResultUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableDurationMs(v *int64) *StepResultUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StepResultUpdateOne) AddDurationMs(v int64) *StepResultUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepResultUpdateOne) SetStartedAt(v time.Time) *StepResultUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableStartedAt(v *time.Time) *StepResultUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *StepResultUpdateOne) SetFinishedAt(v time.Time) *StepResultUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableFinishedAt(v *time.Time) *StepResultUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *StepResultUpdateOne) SetFailureReason(v string) *StepResultUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableFailureReason(v *string) *StepResultUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *StepResultUpdateOne) ClearFailureReason() *StepResultUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *StepResultUpdateOne) SetErrorKind(v string) *StepResultUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *StepResultUpdateOne) SetNillableErrorKind(v *string) *StepResultUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *StepResultUpdateOne) ClearErrorKind() *StepResultUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// Mutation returns the StepResultMutation object of the builder.
func (_u *StepResultUpdateOne) Mutation() *StepResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepResultUpdate builder.
func (_u *StepResultUpdateOne) Where(ps ...predicate.StepResult) *StepResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepResultUpdateOne) Select(field string, fields ...string) *StepResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepResult entity.
func (_u *StepResultUpdateOne) Save(ctx context.Context) (*StepResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepResultUpdateOne) SaveX(ctx context.Context) *StepResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepResult.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepResult.run"`)
	}
	if _u.mutation.ScenarioCleared() && len(_u.mutation.ScenarioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepResult.scenario"`)
	}
	return nil
}

func (_u *StepResultUpdateOne) sqlSave(ctx context.Context) (_node *StepResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepresult.Table, stepresult.Columns, sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepresult.FieldID)
		for _, f := range fields {
			if !stepresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(stepresult.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(stepresult.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(stepresult.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(stepresult.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(stepresult.FieldEndpoint, field.TypeString, value)
	}
	if _u.mutation.EndpointCleared() {
		_spec.ClearField(stepresult.FieldEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(stepresult.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(stepresult.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualStatusCode(); ok {
		_spec.SetField(stepresult.FieldActualStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualStatusCode(); ok {
		_spec.AddField(stepresult.FieldActualStatusCode, field.TypeInt, value)
	}
	if _u.mutation.ActualStatusCodeCleared() {
		_spec.ClearField(stepresult.FieldActualStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ActualHeaders(); ok {
		_spec.SetField(stepresult.FieldActualHeaders, field.TypeJSON, value)
	}
	if _u.mutation.ActualHeadersCleared() {
		_spec.ClearField(stepresult.FieldActualHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActualBody(); ok {
		_spec.SetField(stepresult.FieldActualBody, field.TypeString, value)
	}
	if _u.mutation.ActualBodyCleared() {
		_spec.ClearField(stepresult.FieldActualBody, field.TypeString)
	}
	if value, ok := _u.mutation.BodyDigest(); ok {
		_spec.SetField(stepresult.FieldBodyDigest, field.TypeString, value)
	}
	if _u.mutation.BodyDigestCleared() {
		_spec.ClearField(stepresult.FieldBodyDigest, field.TypeString)
	}
	if value, ok := _u.mutation.AssertionResults(); ok {
		_spec.SetField(stepresult.FieldAssertionResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssertionResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stepresult.FieldAssertionResults, value)
		})
	}
	if _u.mutation.AssertionResultsCleared() {
		_spec.ClearField(stepresult.FieldAssertionResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Extracted(); ok {
		_spec.SetField(stepresult.FieldExtracted, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedCleared() {
		_spec.ClearField(stepresult.FieldExtracted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Unresolved(); ok {
		_spec.SetField(stepresult.FieldUnresolved, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnresolved(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stepresult.FieldUnresolved, value)
		})
	}
	if _u.mutation.UnresolvedCleared() {
		_spec.ClearField(stepresult.FieldUnresolved, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stepresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stepresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stepresult.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(stepresult.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(stepresult.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(stepresult.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(stepresult.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(stepresult.FieldErrorKind, field.TypeString)
	}
	_node = &StepResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
