// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/predicate"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
)

// QARunUpdate is the builder for updating QARun entities.
type QARunUpdate struct {
	config
	hooks    []Hook
	mutation *QARunMutation
}

// Where appends a list predicates to the QARunUpdate builder.
func (_u *QARunUpdate) Where(ps ...predicate.QARun) *QARunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *QARunUpdate) SetName(v string) *QARunUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableName(v *string) *QARunUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *QARunUpdate) SetDescription(v string) *QARunUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableDescription(v *string) *QARunUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *QARunUpdate) ClearDescription() *QARunUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequirementText sets the "requirement_text" field.
func (_u *QARunUpdate) SetRequirementText(v string) *QARunUpdate {
	_u.mutation.SetRequirementText(v)
	return _u
}

// SetNillableRequirementText sets the "requirement_text" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableRequirementText(v *string) *QARunUpdate {
	if v != nil {
		_u.SetRequirementText(*v)
	}
	return _u
}

// ClearRequirementText clears the value of the "requirement_text" field.
func (_u *QARunUpdate) ClearRequirementText() *QARunUpdate {
	_u.mutation.ClearRequirementText()
	return _u
}

// SetSpecSource sets the "spec_source" field.
func (_u *QARunUpdate) SetSpecSource(v qarun.SpecSource) *QARunUpdate {
	_u.mutation.SetSpecSource(v)
	return _u
}

// SetNillableSpecSource sets the "spec_source" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableSpecSource(v *qarun.SpecSource) *QARunUpdate {
	if v != nil {
		_u.SetSpecSource(*v)
	}
	return _u
}

// SetSpecURL sets the "spec_url" field.
func (_u *QARunUpdate) SetSpecURL(v string) *QARunUpdate {
	_u.mutation.SetSpecURL(v)
	return _u
}

// SetNillableSpecURL sets the "spec_url" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableSpecURL(v *string) *QARunUpdate {
	if v != nil {
		_u.SetSpecURL(*v)
	}
	return _u
}

// ClearSpecURL clears the value of the "spec_url" field.
func (_u *QARunUpdate) ClearSpecURL() *QARunUpdate {
	_u.mutation.ClearSpecURL()
	return _u
}

// SetSpecInline sets the "spec_inline" field.
func (_u *QARunUpdate) SetSpecInline(v string) *QARunUpdate {
	_u.mutation.SetSpecInline(v)
	return _u
}

// SetNillableSpecInline sets the "spec_inline" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableSpecInline(v *string) *QARunUpdate {
	if v != nil {
		_u.SetSpecInline(*v)
	}
	return _u
}

// ClearSpecInline clears the value of the "spec_inline" field.
func (_u *QARunUpdate) ClearSpecInline() *QARunUpdate {
	_u.mutation.ClearSpecInline()
	return _u
}

// SetSpecHash sets the "spec_hash" field.
func (_u *QARunUpdate) SetSpecHash(v string) *QARunUpdate {
	_u.mutation.SetSpecHash(v)
	return _u
}

// SetNillableSpecHash sets the "spec_hash" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableSpecHash(v *string) *QARunUpdate {
	if v != nil {
		_u.SetSpecHash(*v)
	}
	return _u
}

// ClearSpecHash clears the value of the "spec_hash" field.
func (_u *QARunUpdate) ClearSpecHash() *QARunUpdate {
	_u.mutation.ClearSpecHash()
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *QARunUpdate) SetBaseURL(v string) *QARunUpdate {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableBaseURL(v *string) *QARunUpdate {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *QARunUpdate) SetMode(v qarun.Mode) *QARunUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableMode(v *qarun.Mode) *QARunUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *QARunUpdate) SetConfig(v models.RunConfig) *QARunUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableConfig(v *models.RunConfig) *QARunUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QARunUpdate) SetStatus(v qarun.Status) *QARunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableStatus(v *qarun.Status) *QARunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *QARunUpdate) SetTriggeredBy(v string) *QARunUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableTriggeredBy(v *string) *QARunUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (_u *QARunUpdate) ClearTriggeredBy() *QARunUpdate {
	_u.mutation.ClearTriggeredBy()
	return _u
}

// SetReplayOf sets the "replay_of" field.
func (_u *QARunUpdate) SetReplayOf(v string) *QARunUpdate {
	_u.mutation.SetReplayOf(v)
	return _u
}

// SetNillableReplayOf sets the "replay_of" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableReplayOf(v *string) *QARunUpdate {
	if v != nil {
		_u.SetReplayOf(*v)
	}
	return _u
}

// ClearReplayOf clears the value of the "replay_of" field.
func (_u *QARunUpdate) ClearReplayOf() *QARunUpdate {
	_u.mutation.ClearReplayOf()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QARunUpdate) SetErrorMessage(v string) *QARunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableErrorMessage(v *string) *QARunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QARunUpdate) ClearErrorMessage() *QARunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *QARunUpdate) SetErrorKind(v string) *QARunUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableErrorKind(v *string) *QARunUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *QARunUpdate) ClearErrorKind() *QARunUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *QARunUpdate) SetWorkerID(v string) *QARunUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableWorkerID(v *string) *QARunUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *QARunUpdate) ClearWorkerID() *QARunUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *QARunUpdate) SetClaimedAt(v time.Time) *QARunUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableClaimedAt(v *time.Time) *QARunUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *QARunUpdate) ClearClaimedAt() *QARunUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *QARunUpdate) SetHeartbeatAt(v time.Time) *QARunUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableHeartbeatAt(v *time.Time) *QARunUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *QARunUpdate) ClearHeartbeatAt() *QARunUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QARunUpdate) SetStartedAt(v time.Time) *QARunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableStartedAt(v *time.Time) *QARunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *QARunUpdate) ClearStartedAt() *QARunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QARunUpdate) SetCompletedAt(v time.Time) *QARunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableCompletedAt(v *time.Time) *QARunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QARunUpdate) ClearCompletedAt() *QARunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *QARunUpdate) SetDurationMs(v int64) *QARunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *QARunUpdate) SetNillableDurationMs(v *int64) *QARunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *QARunUpdate) AddDurationMs(v int64) *QARunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *QARunUpdate) ClearDurationMs() *QARunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// AddScenarioIDs adds the "scenarios" edge to the Scenario entity by IDs.
func (_u *QARunUpdate) AddScenarioIDs(ids ...string) *QARunUpdate {
	_u.mutation.AddScenarioIDs(ids...)
	return _u
}

// AddScenarios adds the "scenarios" edges to the Scenario entity.
func (_u *QARunUpdate) AddScenarios(v ...*Scenario) *QARunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScenarioIDs(ids...)
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_u *QARunUpdate) AddStepResultIDs(ids ...string) *QARunUpdate {
	_u.mutation.AddStepResultIDs(ids...)
	return _u
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_u *QARunUpdate) AddStepResults(v ...*StepResult) *QARunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepResultIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *QARunUpdate) AddEventIDs(ids ...string) *QARunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *QARunUpdate) AddEvents(v ...*RunEvent) *QARunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetPayloadID sets the "payload" edge to the RunPayload entity by ID.
func (_u *QARunUpdate) SetPayloadID(id string) *QARunUpdate {
	_u.mutation.SetPayloadID(id)
	return _u
}

// SetNillablePayloadID sets the "payload" edge to the RunPayload entity by ID if the given value is not nil.
func (_u *QARunUpdate) SetNillablePayloadID(id *string) *QARunUpdate {
	if id != nil {
		_u = _u.SetPayloadID(*id)
	}
	return _u
}

// SetPayload sets the "payload" edge to the RunPayload entity.
func (_u *QARunUpdate) SetPayload(v *RunPayload) *QARunUpdate {
	return _u.SetPayloadID(v.ID)
}

// SetCoverageID sets the "coverage" edge to the CoverageSnapshot entity by ID.
func (_u *QARunUpdate) SetCoverageID(id string) *QARunUpdate {
	_u.mutation.SetCoverageID(id)
	return _u
}

// SetNillableCoverageID sets the "coverage" edge to the CoverageSnapshot entity by ID if the given value is not nil.
func (_u *QARunUpdate) SetNillableCoverageID(id *string) *QARunUpdate {
	if id != nil {
		_u = _u.SetCoverageID(*id)
	}
	return _u
}

// SetCoverage sets the "coverage" edge to the CoverageSnapshot entity.
func (_u *QARunUpdate) SetCoverage(v *CoverageSnapshot) *QARunUpdate {
	return _u.SetCoverageID(v.ID)
}

// SetSummaryID sets the "summary" edge to the QASummary entity by ID.
func (_u *QARunUpdate) SetSummaryID(id string) *QARunUpdate {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the QASummary entity by ID if the given value is not nil.
func (_u *QARunUpdate) SetNillableSummaryID(id *string) *QARunUpdate {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the QASummary entity.
func (_u *QARunUpdate) SetSummary(v *QASummary) *QARunUpdate {
	return _u.SetSummaryID(v.ID)
}

// Mutation returns the QARunMutation object of the builder.
func (_u *QARunUpdate) Mutation() *QARunMutation {
	return _u.mutation
}

// ClearScenarios clears all "scenarios" edges to the Scenario entity.
func (_u *QARunUpdate) ClearScenarios() *QARunUpdate {
	_u.mutation.ClearScenarios()
	return _u
}

// RemoveScenarioIDs removes the "scenarios" edge to Scenario entities by IDs.
func (_u *QARunUpdate) RemoveScenarioIDs(ids ...string) *QARunUpdate {
	_u.mutation.RemoveScenarioIDs(ids...)
	return _u
}

// RemoveScenarios removes "scenarios" edges to Scenario entities.
func (_u *QARunUpdate) RemoveScenarios(v ...*Scenario) *QARunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScenarioIDs(ids...)
}

// ClearStepResults clears all "step_results" edges to the StepResult entity.
func (_u *QARunUpdate) ClearStepResults() *QARunUpdate {
	_u.mutation.ClearStepResults()
	return _u
}

// RemoveStepResultIDs removes the "step_results" edge to StepResult entities by IDs.
func (_u *QARunUpdate) RemoveStepResultIDs(ids ...string) *QARunUpdate {
	_u.mutation.RemoveStepResultIDs(ids...)
	return _u
}

// RemoveStepResults removes "step_results" edges to StepResult entities.
func (_u *QARunUpdate) RemoveStepResults(v ...*StepResult) *QARunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepResultIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *QARunUpdate) ClearEvents() *QARunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *QARunUpdate) RemoveEventIDs(ids ...string) *QARunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *QARunUpdate) RemoveEvents(v ...*RunEvent) *QARunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearPayload clears the "payload" edge to the RunPayload entity.
func (_u *QARunUpdate) ClearPayload() *QARunUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// ClearCoverage clears the "coverage" edge to the CoverageSnapshot entity.
func (_u *QARunUpdate) ClearCoverage() *QARunUpdate {
	_u.mutation.ClearCoverage()
	return _u
}

// ClearSummary clears the "summary" edge to the QASummary entity.
func (_u *QARunUpdate) ClearSummary() *QARunUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QARunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QARunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QARunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QARunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QARunUpdate) check() error {
	if v, ok := _u.mutation.SpecSource(); ok {
		if err := qarun.SpecSourceValidator(v); err != nil {
			return &ValidationError{Name: "spec_source", err: fmt.Errorf(`ent: validator failed for field "QARun.spec_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := qarun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QARun.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Config(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "config", err: fmt.Errorf(`ent: validator failed for field "QARun.config": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := qarun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QARun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QARunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qarun.Table, qarun.Columns, sqlgraph.NewFieldSpec(qarun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(qarun.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(qarun.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(qarun.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RequirementText(); ok {
		_spec.SetField(qarun.FieldRequirementText, field.TypeString, value)
	}
	if _u.mutation.RequirementTextCleared() {
		_spec.ClearField(qarun.FieldRequirementText, field.TypeString)
	}
	if value, ok := _u.mutation.SpecSource(); ok {
		_spec.SetField(qarun.FieldSpecSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpecURL(); ok {
		_spec.SetField(qarun.FieldSpecURL, field.TypeString, value)
	}
	if _u.mutation.SpecURLCleared() {
		_spec.ClearField(qarun.FieldSpecURL, field.TypeString)
	}
	if value, ok := _u.mutation.SpecInline(); ok {
		_spec.SetField(qarun.FieldSpecInline, field.TypeString, value)
	}
	if _u.mutation.SpecInlineCleared() {
		_spec.ClearField(qarun.FieldSpecInline, field.TypeString)
	}
	if value, ok := _u.mutation.SpecHash(); ok {
		_spec.SetField(qarun.FieldSpecHash, field.TypeString, value)
	}
	if _u.mutation.SpecHashCleared() {
		_spec.ClearField(qarun.FieldSpecHash, field.TypeString)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(qarun.FieldBaseURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(qarun.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(qarun.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(qarun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(qarun.FieldTriggeredBy, field.TypeString, value)
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(qarun.FieldTriggeredBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReplayOf(); ok {
		_spec.SetField(qarun.FieldReplayOf, field.TypeString, value)
	}
	if _u.mutation.ReplayOfCleared() {
		_spec.ClearField(qarun.FieldReplayOf, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(qarun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(qarun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(qarun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(qarun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(qarun.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(qarun.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(qarun.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(qarun.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(qarun.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(qarun.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(qarun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(qarun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(qarun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(qarun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(qarun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(qarun.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(qarun.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.ScenariosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.ScenariosTable,
			Columns: []string{qarun.ScenariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScenariosIDs(); len(nodes) > 0 && !_u.mutation.ScenariosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.ScenariosTable,
			Columns: []string{qarun.ScenariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScenariosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.ScenariosTable,
			Columns: []string{qarun.ScenariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.StepResultsTable,
			Columns: []string{qarun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepResultsIDs(); len(nodes) > 0 && !_u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.StepResultsTable,
			Columns: []string{qarun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.StepResultsTable,
			Columns: []string{qarun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.EventsTable,
			Columns: []string{qarun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.EventsTable,
			Columns: []string{qarun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.EventsTable,
			Columns: []string{qarun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PayloadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.PayloadTable,
			Columns: []string{qarun.PayloadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runpayload.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PayloadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.PayloadTable,
			Columns: []string{qarun.PayloadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runpayload.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoverageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.CoverageTable,
			Columns: []string{qarun.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coveragesnapshot.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoverageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.CoverageTable,
			Columns: []string{qarun.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coveragesnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummaryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.SummaryTable,
			Columns: []string{qarun.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qasummary.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.SummaryTable,
			Columns: []string{qarun.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qasummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qarun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QARunUpdateOne is the builder for updating a single QARun entity.
type QARunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QARunMutation
}

// SetName sets the "name" field.
func (_u *QARunUpdateOne) SetName(v string) *QARunUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableName(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *QARunUpdateOne) SetDescription(v string) *QARunUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableDescription(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *QARunUpdateOne) ClearDescription() *QARunUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequirementText sets the "requirement_text" field.
func (_u *QARunUpdateOne) SetRequirementText(v string) *QARunUpdateOne {
	_u.mutation.SetRequirementText(v)
	return _u
}

// SetNillableRequirementText sets the "requirement_text" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableRequirementText(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetRequirementText(*v)
	}
	return _u
}

// ClearRequirementText clears the value of the "requirement_text" field.
func (_u *QARunUpdateOne) ClearRequirementText() *QARunUpdateOne {
	_u.mutation.ClearRequirementText()
	return _u
}

// SetSpecSource sets the "spec_source" field.
func (_u *QARunUpdateOne) SetSpecSource(v qarun.SpecSource) *QARunUpdateOne {
	_u.mutation.SetSpecSource(v)
	return _u
}

// SetNillableSpecSource sets the "spec_source" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableSpecSource(v *qarun.SpecSource) *QARunUpdateOne {
	if v != nil {
		_u.SetSpecSource(*v)
	}
	return _u
}

// SetSpecURL sets the "spec_url" field.
func (_u *QARunUpdateOne) SetSpecURL(v string) *QARunUpdateOne {
	_u.mutation.SetSpecURL(v)
	return _u
}

// SetNillableSpecURL sets the "spec_url" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableSpecURL(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetSpecURL(*v)
	}
	return _u
}

// ClearSpecURL clears the value of the "spec_url" field.
func (_u *QARunUpdateOne) ClearSpecURL() *QARunUpdateOne {
	_u.mutation.ClearSpecURL()
	return _u
}

// SetSpecInline sets the "spec_inline" field.
func (_u *QARunUpdateOne) SetSpecInline(v string) *QARunUpdateOne {
	_u.mutation.SetSpecInline(v)
	return _u
}

// SetNillableSpecInline sets the "spec_inline" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableSpecInline(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetSpecInline(*v)
	}
	return _u
}

// ClearSpecInline clears the value of the "spec_inline" field.
func (_u *QARunUpdateOne) ClearSpecInline() *QARunUpdateOne {
	_u.mutation.ClearSpecInline()
	return _u
}

// SetSpecHash sets the "spec_hash" field.
func (_u *QARunUpdateOne) SetSpecHash(v string) *QARunUpdateOne {
	_u.mutation.SetSpecHash(v)
	return _u
}

// SetNillableSpecHash sets the "spec_hash" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableSpecHash(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetSpecHash(*v)
	}
	return _u
}

// ClearSpecHash clears the value of the "spec_hash" field.
func (_u *QARunUpdateOne) ClearSpecHash() *QARunUpdateOne {
	_u.mutation.ClearSpecHash()
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *QARunUpdateOne) SetBaseURL(v string) *QARunUpdateOne {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableBaseURL(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *QARunUpdateOne) SetMode(v qarun.Mode) *QARunUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableMode(v *qarun.Mode) *QARunUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *QARunUpdateOne) SetConfig(v models.RunConfig) *QARunUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableConfig(v *models.RunConfig) *QARunUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QARunUpdateOne) SetStatus(v qarun.Status) *QARunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableStatus(v *qarun.Status) *QARunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *QARunUpdateOne) SetTriggeredBy(v string) *QARunUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableTriggeredBy(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (_u *QARunUpdateOne) ClearTriggeredBy() *QARunUpdateOne {
	_u.mutation.ClearTriggeredBy()
	return _u
}

// SetReplayOf sets the "replay_of" field.
func (_u *QARunUpdateOne) SetReplayOf(v string) *QARunUpdateOne {
	_u.mutation.SetReplayOf(v)
	return _u
}

// SetNillableReplayOf sets the "replay_of" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableReplayOf(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetReplayOf(*v)
	}
	return _u
}

// ClearReplayOf clears the value of the "replay_of" field.
func (_u *QARunUpdateOne) ClearReplayOf() *QARunUpdateOne {
	_u.mutation.ClearReplayOf()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QARunUpdateOne) SetErrorMessage(v string) *QARunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableErrorMessage(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QARunUpdateOne) ClearErrorMessage() *QARunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *QARunUpdateOne) SetErrorKind(v string) *QARunUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableErrorKind(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *QARunUpdateOne) ClearErrorKind() *QARunUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *QARunUpdateOne) SetWorkerID(v string) *QARunUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableWorkerID(v *string) *QARunUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *QARunUpdateOne) ClearWorkerID() *QARunUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *QARunUpdateOne) SetClaimedAt(v time.Time) *QARunUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableClaimedAt(v *time.Time) *QARunUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *QARunUpdateOne) ClearClaimedAt() *QARunUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *QARunUpdateOne) SetHeartbeatAt(v time.Time) *QARunUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableHeartbeatAt(v *time.Time) *QARunUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *QARunUpdateOne) ClearHeartbeatAt() *QARunUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QARunUpdateOne) SetStartedAt(v time.Time) *QARunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableStartedAt(v *time.Time) *QARunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *QARunUpdateOne) ClearStartedAt() *QARunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QARunUpdateOne) SetCompletedAt(v time.Time) *QARunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableCompletedAt(v *time.Time) *QARunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QARunUpdateOne) ClearCompletedAt() *QARunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *QARunUpdateOne) SetDurationMs(v int64) *QARunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableDurationMs(v *int64) *QARunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *QARunUpdateOne) AddDurationMs(v int64) *QARunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *QARunUpdateOne) ClearDurationMs() *QARunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// AddScenarioIDs adds the "scenarios" edge to the Scenario entity by IDs.
func (_u *QARunUpdateOne) AddScenarioIDs(ids ...string) *QARunUpdateOne {
	_u.mutation.AddScenarioIDs(ids...)
	return _u
}

// AddScenarios adds the "scenarios" edges to the Scenario entity.
func (_u *QARunUpdateOne) AddScenarios(v ...*Scenario) *QARunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScenarioIDs(ids...)
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_u *QARunUpdateOne) AddStepResultIDs(ids ...string) *QARunUpdateOne {
	_u.mutation.AddStepResultIDs(ids...)
	return _u
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_u *QARunUpdateOne) AddStepResults(v ...*StepResult) *QARunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepResultIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *QARunUpdateOne) AddEventIDs(ids ...string) *QARunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *QARunUpdateOne) AddEvents(v ...*RunEvent) *QARunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetPayloadID sets the "payload" edge to the RunPayload entity by ID.
func (_u *QARunUpdateOne) SetPayloadID(id string) *QARunUpdateOne {
	_u.mutation.SetPayloadID(id)
	return _u
}

// SetNillablePayloadID sets the "payload" edge to the RunPayload entity by ID if the given value is not nil.
func (_u *QARunUpdateOne) SetNillablePayloadID(id *string) *QARunUpdateOne {
	if id != nil {
		_u = _u.SetPayloadID(*id)
	}
	return _u
}

// SetPayload sets the "payload" edge to the RunPayload entity.
func (_u *QARunUpdateOne) SetPayload(v *RunPayload) *QARunUpdateOne {
	return _u.SetPayloadID(v.ID)
}

// SetCoverageID sets the "coverage" edge to the CoverageSnapshot entity by ID.
func (_u *QARunUpdateOne) SetCoverageID(id string) *QARunUpdateOne {
	_u.mutation.SetCoverageID(id)
	return _u
}

// SetNillableCoverageID sets the "coverage" edge to the CoverageSnapshot entity by ID if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableCoverageID(id *string) *QARunUpdateOne {
	if id != nil {
		_u = _u.SetCoverageID(*id)
	}
	return _u
}

// SetCoverage sets the "coverage" edge to the CoverageSnapshot entity.
func (_u *QARunUpdateOne) SetCoverage(v *CoverageSnapshot) *QARunUpdateOne {
	return _u.SetCoverageID(v.ID)
}

// SetSummaryID sets the "summary" edge to the QASummary entity by ID.
func (_u *QARunUpdateOne) SetSummaryID(id string) *QARunUpdateOne {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the QASummary entity by ID if the given value is not nil.
func (_u *QARunUpdateOne) SetNillableSummaryID(id *string) *QARunUpdateOne {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the QASummary entity.
func (_u *QARunUpdateOne) SetSummary(v *QASummary) *QARunUpdateOne {
	return _u.SetSummaryID(v.ID)
}

// Mutation returns the QARunMutation object of the builder.
func (_u *QARunUpdateOne) Mutation() *QARunMutation {
	return _u.mutation
}

// ClearScenarios clears all "scenarios" edges to the Scenario entity.
func (_u *QARunUpdateOne) ClearScenarios() *QARunUpdateOne {
	_u.mutation.ClearScenarios()
	return _u
}

// RemoveScenarioIDs removes the "scenarios" edge to Scenario entities by IDs.
func (_u *QARunUpdateOne) RemoveScenarioIDs(ids ...string) *QARunUpdateOne {
	_u.mutation.RemoveScenarioIDs(ids...)
	return _u
}

// RemoveScenarios removes "scenarios" edges to Scenario entities.
func (_u *QARunUpdateOne) RemoveScenarios(v ...*Scenario) *QARunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScenarioIDs(ids...)
}

// ClearStepResults clears all "step_results" edges to the StepResult entity.
func (_u *QARunUpdateOne) ClearStepResults() *QARunUpdateOne {
	_u.mutation.ClearStepResults()
	return _u
}

// RemoveStepResultIDs removes the "step_results" edge to StepResult entities by IDs.
func (_u *QARunUpdateOne) RemoveStepResultIDs(ids ...string) *QARunUpdateOne {
	_u.mutation.RemoveStepResultIDs(ids...)
	return _u
}

// RemoveStepResults removes "step_results" edges to StepResult entities.
func (_u *QARunUpdateOne) RemoveStepResults(v ...*StepResult) *QARunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepResultIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *QARunUpdateOne) ClearEvents() *QARunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *QARunUpdateOne) RemoveEventIDs(ids ...string) *QARunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *QARunUpdateOne) RemoveEvents(v ...*RunEvent) *QARunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearPayload clears the "payload" edge to the RunPayload entity.
func (_u *QARunUpdateOne) ClearPayload() *QARunUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// ClearCoverage clears the "coverage" edge to the CoverageSnapshot entity.
func (_u *QARunUpdateOne) ClearCoverage() *QARunUpdateOne {
	_u.mutation.ClearCoverage()
	return _u
}

// ClearSummary clears the "summary" edge to the QASummary entity.
func (_u *QARunUpdateOne) ClearSummary() *QARunUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// Where appends a list predicates to the QARunUpdate builder.
func (_u *QARunUpdateOne) Where(ps ...predicate.QARun) *QARunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QARunUpdateOne) Select(field string, fields ...string) *QARunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QARun entity.
func (_u *QARunUpdateOne) Save(ctx context.Context) (*QARun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QARunUpdateOne) SaveX(ctx context.Context) *QARun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QARunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QARunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QARunUpdateOne) check() error {
	if v, ok := _u.mutation.SpecSource(); ok {
		if err := qarun.SpecSourceValidator(v); err != nil {
			return &ValidationError{Name: "spec_source", err: fmt.Errorf(`ent: validator failed for field "QARun.spec_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := qarun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QARun.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Config(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "config", err: fmt.Errorf(`ent: validator failed for field "QARun.config": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := qarun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QARun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QARunUpdateOne) sqlSave(ctx context.Context) (_node *QARun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qarun.Table, qarun.Columns, sqlgraph.NewFieldSpec(qarun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QARun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qarun.FieldID)
		for _, f := range fields {
			if !qarun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != qarun.FieldID {
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
		_spec.SetField(qarun.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(qarun.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(qarun.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RequirementText(); ok {
		_spec.SetField(qarun.FieldRequirementText, field.TypeString, value)
	}
	if _u.mutation.RequirementTextCleared() {
		_spec.ClearField(qarun.FieldRequirementText, field.TypeString)
	}
	if value, ok := _u.mutation.SpecSource(); ok {
		_spec.SetField(qarun.FieldSpecSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpecURL(); ok {
		_spec.SetField(qarun.FieldSpecURL, field.TypeString, value)
	}
	if _u.mutation.SpecURLCleared() {
		_spec.ClearField(qarun.FieldSpecURL, field.TypeString)
	}
	if value, ok := _u.mutation.SpecInline(); ok {
		_spec.SetField(qarun.FieldSpecInline, field.TypeString, value)
	}
	if _u.mutation.SpecInlineCleared() {
		_spec.ClearField(qarun.FieldSpecInline, field.TypeString)
	}
	if value, ok := _u.mutation.SpecHash(); ok {
		_spec.SetField(qarun.FieldSpecHash, field.TypeString, value)
	}
	if _u.mutation.SpecHashCleared() {
		_spec.ClearField(qarun.FieldSpecHash, field.TypeString)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(qarun.FieldBaseURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(qarun.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(qarun.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(qarun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(qarun.FieldTriggeredBy, field.TypeString, value)
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(qarun.FieldTriggeredBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReplayOf(); ok {
		_spec.SetField(qarun.FieldReplayOf, field.TypeString, value)
	}
	if _u.mutation.ReplayOfCleared() {
		_spec.ClearField(qarun.FieldReplayOf, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(qarun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(qarun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(qarun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(qarun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(qarun.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(qarun.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(qarun.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(qarun.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(qarun.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(qarun.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(qarun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(qarun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(qarun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(qarun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(qarun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(qarun.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(qarun.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.ScenariosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.ScenariosTable,
			Columns: []string{qarun.ScenariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScenariosIDs(); len(nodes) > 0 && !_u.mutation.ScenariosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.ScenariosTable,
			Columns: []string{qarun.ScenariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScenariosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.ScenariosTable,
			Columns: []string{qarun.ScenariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.StepResultsTable,
			Columns: []string{qarun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepResultsIDs(); len(nodes) > 0 && !_u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.StepResultsTable,
			Columns: []string{qarun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.StepResultsTable,
			Columns: []string{qarun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.EventsTable,
			Columns: []string{qarun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.EventsTable,
			Columns: []string{qarun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qarun.EventsTable,
			Columns: []string{qarun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PayloadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.PayloadTable,
			Columns: []string{qarun.PayloadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runpayload.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PayloadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.PayloadTable,
			Columns: []string{qarun.PayloadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runpayload.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoverageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.CoverageTable,
			Columns: []string{qarun.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coveragesnapshot.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoverageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.CoverageTable,
			Columns: []string{qarun.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coveragesnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummaryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.SummaryTable,
			Columns: []string{qarun.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qasummary.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   qarun.SummaryTable,
			Columns: []string{qarun.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qasummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QARun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qarun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
