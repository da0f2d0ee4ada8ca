// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
)

// QARunCreate is the builder for creating a QARun entity.
type QARunCreate struct {
	config
	mutation *QARunMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *QARunCreate) SetName(v string) *QARunCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *QARunCreate) SetDescription(v string) *QARunCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *QARunCreate) SetNillableDescription(v *string) *QARunCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequirementText sets the "requirement_text" field.
func (_c *QARunCreate) SetRequirementText(v string) *QARunCreate {
	_c.mutation.SetRequirementText(v)
	return _c
}

// SetNillableRequirementText sets the "requirement_text" field if the given value is not nil.
func (_c *QARunCreate) SetNillableRequirementText(v *string) *QARunCreate {
	if v != nil {
		_c.SetRequirementText(*v)
	}
	return _c
}

// SetSpecSource sets the "spec_source" field.
func (_c *QARunCreate) SetSpecSource(v qarun.SpecSource) *QARunCreate {
	_c.mutation.SetSpecSource(v)
	return _c
}

// SetSpecURL sets the "spec_url" field.
func (_c *QARunCreate) SetSpecURL(v string) *QARunCreate {
	_c.mutation.SetSpecURL(v)
	return _c
}

// SetNillableSpecURL sets the "spec_url" field if the given value is not nil.
func (_c *QARunCreate) SetNillableSpecURL(v *string) *QARunCreate {
	if v != nil {
		_c.SetSpecURL(*v)
	}
	return _c
}

// SetSpecInline sets the "spec_inline" field.
func (_c *QARunCreate) SetSpecInline(v string) *QARunCreate {
	_c.mutation.SetSpecInline(v)
	return _c
}

// SetNillableSpecInline sets the "spec_inline" field if the given value is not nil.
func (_c *QARunCreate) SetNillableSpecInline(v *string) *QARunCreate {
	if v != nil {
		_c.SetSpecInline(*v)
	}
	return _c
}

// SetSpecHash sets the "spec_hash" field.
func (_c *QARunCreate) SetSpecHash(v string) *QARunCreate {
	_c.mutation.SetSpecHash(v)
	return _c
}

// SetNillableSpecHash sets the "spec_hash" field if the given value is not nil.
func (_c *QARunCreate) SetNillableSpecHash(v *string) *QARunCreate {
	if v != nil {
		_c.SetSpecHash(*v)
	}
	return _c
}

// SetBaseURL sets the "base_url" field.
func (_c *QARunCreate) SetBaseURL(v string) *QARunCreate {
	_c.mutation.SetBaseURL(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *QARunCreate) SetMode(v qarun.Mode) *QARunCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *QARunCreate) SetNillableMode(v *qarun.Mode) *QARunCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *QARunCreate) SetConfig(v models.RunConfig) *QARunCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QARunCreate) SetStatus(v qarun.Status) *QARunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QARunCreate) SetNillableStatus(v *qarun.Status) *QARunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *QARunCreate) SetTriggeredBy(v string) *QARunCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_c *QARunCreate) SetNillableTriggeredBy(v *string) *QARunCreate {
	if v != nil {
		_c.SetTriggeredBy(*v)
	}
	return _c
}

// SetReplayOf sets the "replay_of" field.
func (_c *QARunCreate) SetReplayOf(v string) *QARunCreate {
	_c.mutation.SetReplayOf(v)
	return _c
}

// SetNillableReplayOf sets the "replay_of" field if the given value is not nil.
func (_c *QARunCreate) SetNillableReplayOf(v *string) *QARunCreate {
	if v != nil {
		_c.SetReplayOf(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QARunCreate) SetErrorMessage(v string) *QARunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QARunCreate) SetNillableErrorMessage(v *string) *QARunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *QARunCreate) SetErrorKind(v string) *QARunCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *QARunCreate) SetNillableErrorKind(v *string) *QARunCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *QARunCreate) SetWorkerID(v string) *QARunCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *QARunCreate) SetNillableWorkerID(v *string) *QARunCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *QARunCreate) SetClaimedAt(v time.Time) *QARunCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *QARunCreate) SetNillableClaimedAt(v *time.Time) *QARunCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *QARunCreate) SetHeartbeatAt(v time.Time) *QARunCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *QARunCreate) SetNillableHeartbeatAt(v *time.Time) *QARunCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QARunCreate) SetCreatedAt(v time.Time) *QARunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QARunCreate) SetNillableCreatedAt(v *time.Time) *QARunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *QARunCreate) SetStartedAt(v time.Time) *QARunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *QARunCreate) SetNillableStartedAt(v *time.Time) *QARunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QARunCreate) SetCompletedAt(v time.Time) *QARunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QARunCreate) SetNillableCompletedAt(v *time.Time) *QARunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *QARunCreate) SetDurationMs(v int64) *QARunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *QARunCreate) SetNillableDurationMs(v *int64) *QARunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QARunCreate) SetID(v string) *QARunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddScenarioIDs adds the "scenarios" edge to the Scenario entity by IDs.
func (_c *QARunCreate) AddScenarioIDs(ids ...string) *QARunCreate {
	_c.mutation.AddScenarioIDs(ids...)
	return _c
}

// AddScenarios adds the "scenarios" edges to the Scenario entity.
func (_c *QARunCreate) AddScenarios(v ...*Scenario) *QARunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScenarioIDs(ids...)
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_c *QARunCreate) AddStepResultIDs(ids ...string) *QARunCreate {
	_c.mutation.AddStepResultIDs(ids...)
	return _c
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_c *QARunCreate) AddStepResults(v ...*StepResult) *QARunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepResultIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_c *QARunCreate) AddEventIDs(ids ...string) *QARunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_c *QARunCreate) AddEvents(v ...*RunEvent) *QARunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// SetPayloadID sets the "payload" edge to the RunPayload entity by ID.
func (_c *QARunCreate) SetPayloadID(id string) *QARunCreate {
	_c.mutation.SetPayloadID(id)
	return _c
}

// SetNillablePayloadID sets the "payload" edge to the RunPayload entity by ID if the given value is not nil.
func (_c *QARunCreate) SetNillablePayloadID(id *string) *QARunCreate {
	if id != nil {
		_c = _c.SetPayloadID(*id)
	}
	return _c
}

// SetPayload sets the "payload" edge to the RunPayload entity.
func (_c *QARunCreate) SetPayload(v *RunPayload) *QARunCreate {
	return _c.SetPayloadID(v.ID)
}

// SetCoverageID sets the "coverage" edge to the CoverageSnapshot entity by ID.
func (_c *QARunCreate) SetCoverageID(id string) *QARunCreate {
	_c.mutation.SetCoverageID(id)
	return _c
}

// SetNillableCoverageID sets the "coverage" edge to the CoverageSnapshot entity by ID if the given value is not nil.
func (_c *QARunCreate) SetNillableCoverageID(id *string) *QARunCreate {
	if id != nil {
		_c = _c.SetCoverageID(*id)
	}
	return _c
}

// SetCoverage sets the "coverage" edge to the CoverageSnapshot entity.
func (_c *QARunCreate) SetCoverage(v *CoverageSnapshot) *QARunCreate {
	return _c.SetCoverageID(v.ID)
}

// SetSummaryID sets the "summary" edge to the QASummary entity by ID.
func (_c *QARunCreate) SetSummaryID(id string) *QARunCreate {
	_c.mutation.SetSummaryID(id)
	return _c
}

// SetNillableSummaryID sets the "summary" edge to the QASummary entity by ID if the given value is not nil.
func (_c *QARunCreate) SetNillableSummaryID(id *string) *QARunCreate {
	if id != nil {
		_c = _c.SetSummaryID(*id)
	}
	return _c
}

// SetSummary sets the "summary" edge to the QASummary entity.
func (_c *QARunCreate) SetSummary(v *QASummary) *QARunCreate {
	return _c.SetSummaryID(v.ID)
}

// Mutation returns the QARunMutation object of the builder.
func (_c *QARunCreate) Mutation() *QARunMutation {
	return _c.mutation
}

// Save creates the QARun in the database.
func (_c *QARunCreate) Save(ctx context.Context) (*QARun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QARunCreate) SaveX(ctx context.Context) *QARun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QARunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QARunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QARunCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := qarun.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := qarun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := qarun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QARunCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "QARun.name"`)}
	}
	if _, ok := _c.mutation.SpecSource(); !ok {
		return &ValidationError{Name: "spec_source", err: errors.New(`ent: missing required field "QARun.spec_source"`)}
	}
	if v, ok := _c.mutation.SpecSource(); ok {
		if err := qarun.SpecSourceValidator(v); err != nil {
			return &ValidationError{Name: "spec_source", err: fmt.Errorf(`ent: validator failed for field "QARun.spec_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseURL(); !ok {
		return &ValidationError{Name: "base_url", err: errors.New(`ent: missing required field "QARun.base_url"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "QARun.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := qarun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QARun.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "QARun.config"`)}
	}
	if v, ok := _c.mutation.Config(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "config", err: fmt.Errorf(`ent: validator failed for field "QARun.config": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QARun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := qarun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QARun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QARun.created_at"`)}
	}
	return nil
}

func (_c *QARunCreate) sqlSave(ctx context.Context) (*QARun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QARun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QARunCreate) createSpec() (*QARun, *sqlgraph.CreateSpec) {
	var (
		_node = &QARun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(qarun.Table, sqlgraph.NewFieldSpec(qarun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(qarun.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(qarun.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.RequirementText(); ok {
		_spec.SetField(qarun.FieldRequirementText, field.TypeString, value)
		_node.RequirementText = &value
	}
	if value, ok := _c.mutation.SpecSource(); ok {
		_spec.SetField(qarun.FieldSpecSource, field.TypeEnum, value)
		_node.SpecSource = value
	}
	if value, ok := _c.mutation.SpecURL(); ok {
		_spec.SetField(qarun.FieldSpecURL, field.TypeString, value)
		_node.SpecURL = &value
	}
	if value, ok := _c.mutation.SpecInline(); ok {
		_spec.SetField(qarun.FieldSpecInline, field.TypeString, value)
		_node.SpecInline = &value
	}
	if value, ok := _c.mutation.SpecHash(); ok {
		_spec.SetField(qarun.FieldSpecHash, field.TypeString, value)
		_node.SpecHash = &value
	}
	if value, ok := _c.mutation.BaseURL(); ok {
		_spec.SetField(qarun.FieldBaseURL, field.TypeString, value)
		_node.BaseURL = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(qarun.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(qarun.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(qarun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(qarun.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.ReplayOf(); ok {
		_spec.SetField(qarun.FieldReplayOf, field.TypeString, value)
		_node.ReplayOf = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(qarun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(qarun.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(qarun.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(qarun.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(qarun.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(qarun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(qarun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(qarun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(qarun.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if nodes := _c.mutation.ScenariosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PayloadIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CoverageIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QARunCreateBulk is the builder for creating many QARun entities in bulk.
type QARunCreateBulk struct {
	config
	err      error
	builders []*QARunCreate
}

// Save creates the QARun entities in the database.
func (_c *QARunCreateBulk) Save(ctx context.Context) ([]*QARun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QARun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QARunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QARunCreateBulk) SaveX(ctx context.Context) []*QARun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QARunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QARunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
