// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
)

// StepResultCreate is the builder for creating a StepResult entity.
type StepResultCreate struct {
	config
	mutation *StepResultMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *StepResultCreate) SetRunID(v string) *StepResultCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *StepResultCreate) SetScenarioID(v string) *StepResultCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *StepResultCreate) SetStepIndex(v int) *StepResultCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetName sets the "name" field.
func (_c *StepResultCreate) SetName(v string) *StepResultCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableName(v *string) *StepResultCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *StepResultCreate) SetMethod(v string) *StepResultCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableMethod(v *string) *StepResultCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *StepResultCreate) SetEndpoint(v string) *StepResultCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableEndpoint(v *string) *StepResultCreate {
	if v != nil {
		_c.SetEndpoint(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepResultCreate) SetStatus(v stepresult.Status) *StepResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *StepResultCreate) SetAttempts(v int) *StepResultCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableAttempts(v *int) *StepResultCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetActualStatusCode sets the "actual_status_code" field.
func (_c *StepResultCreate) SetActualStatusCode(v int) *StepResultCreate {
	_c.mutation.SetActualStatusCode(v)
	return _c
}

// SetNillableActualStatusCode sets the "actual_status_code" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableActualStatusCode(v *int) *StepResultCreate {
	if v != nil {
		_c.SetActualStatusCode(*v)
	}
	return _c
}

// SetActualHeaders sets the "actual_headers" field.
func (_c *StepResultCreate) SetActualHeaders(v map[string]string) *StepResultCreate {
	_c.mutation.SetActualHeaders(v)
	return _c
}

// SetActualBody sets the "actual_body" field.
func (_c *StepResultCreate) SetActualBody(v string) *StepResultCreate {
	_c.mutation.SetActualBody(v)
	return _c
}

// SetNillableActualBody sets the "actual_body" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableActualBody(v *string) *StepResultCreate {
	if v != nil {
		_c.SetActualBody(*v)
	}
	return _c
}

// SetBodyDigest sets the "body_digest" field.
func (_c *StepResultCreate) SetBodyDigest(v string) *StepResultCreate {
	_c.mutation.SetBodyDigest(v)
	return _c
}

// SetNillableBodyDigest sets the "body_digest" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableBodyDigest(v *string) *StepResultCreate {
	if v != nil {
		_c.SetBodyDigest(*v)
	}
	return _c
}

// SetAssertionResults sets the "assertion_results" field.
func (_c *StepResultCreate) SetAssertionResults(v []models.AssertionResult) *StepResultCreate {
	_c.mutation.SetAssertionResults(v)
	return _c
}

// SetExtracted sets the "extracted" field.
func (_c *StepResultCreate) SetExtracted(v map[string]string) *StepResultCreate {
	_c.mutation.SetExtracted(v)
	return _c
}

// SetUnresolved sets the "unresolved" field.
func (_c *StepResultCreate) SetUnresolved(v []string) *StepResultCreate {
	_c.mutation.SetUnresolved(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StepResultCreate) SetDurationMs(v int64) *StepResultCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableDurationMs(v *int64) *StepResultCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepResultCreate) SetStartedAt(v time.Time) *StepResultCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *StepResultCreate) SetFinishedAt(v time.Time) *StepResultCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *StepResultCreate) SetFailureReason(v string) *StepResultCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableFailureReason(v *string) *StepResultCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *StepResultCreate) SetErrorKind(v string) *StepResultCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableErrorKind(v *string) *StepResultCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepResultCreate) SetID(v string) *StepResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the QARun entity.
func (_c *StepResultCreate) SetRun(v *QARun) *StepResultCreate {
	return _c.SetRunID(v.ID)
}

// SetScenario sets the "scenario" edge to the Scenario entity.
func (_c *StepResultCreate) SetScenario(v *Scenario) *StepResultCreate {
	return _c.SetScenarioID(v.ID)
}

// Mutation returns the StepResultMutation object of the builder.
func (_c *StepResultCreate) Mutation() *StepResultMutation {
	return _c.mutation
}

// Save creates the StepResult in the database.
func (_c *StepResultCreate) Save(ctx context.Context) (*StepResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepResultCreate) SaveX(ctx context.Context) *StepResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepResultCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := stepresult.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := stepresult.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepResultCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "StepResult.run_id"`)}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "StepResult.scenario_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "StepResult.step_index"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stepresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "StepResult.attempts"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "StepResult.duration_ms"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StepResult.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "StepResult.finished_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "StepResult.run"`)}
	}
	if len(_c.mutation.ScenarioIDs()) == 0 {
		return &ValidationError{Name: "scenario", err: errors.New(`ent: missing required edge "StepResult.scenario"`)}
	}
	return nil
}

func (_c *StepResultCreate) sqlSave(ctx context.Context) (*StepResult, error) {
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
			return nil, fmt.Errorf("unexpected StepResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepResultCreate) createSpec() (*StepResult, *sqlgraph.CreateSpec) {
	var (
		_node = &StepResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepresult.Table, sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(stepresult.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(stepresult.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(stepresult.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(stepresult.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stepresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(stepresult.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ActualStatusCode(); ok {
		_spec.SetField(stepresult.FieldActualStatusCode, field.TypeInt, value)
		_node.ActualStatusCode = &value
	}
	if value, ok := _c.mutation.ActualHeaders(); ok {
		_spec.SetField(stepresult.FieldActualHeaders, field.TypeJSON, value)
		_node.ActualHeaders = value
	}
	if value, ok := _c.mutation.ActualBody(); ok {
		_spec.SetField(stepresult.FieldActualBody, field.TypeString, value)
		_node.ActualBody = value
	}
	if value, ok := _c.mutation.BodyDigest(); ok {
		_spec.SetField(stepresult.FieldBodyDigest, field.TypeString, value)
		_node.BodyDigest = value
	}
	if value, ok := _c.mutation.AssertionResults(); ok {
		_spec.SetField(stepresult.FieldAssertionResults, field.TypeJSON, value)
		_node.AssertionResults = value
	}
	if value, ok := _c.mutation.Extracted(); ok {
		_spec.SetField(stepresult.FieldExtracted, field.TypeJSON, value)
		_node.Extracted = value
	}
	if value, ok := _c.mutation.Unresolved(); ok {
		_spec.SetField(stepresult.FieldUnresolved, field.TypeJSON, value)
		_node.Unresolved = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stepresult.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stepresult.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(stepresult.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(stepresult.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(stepresult.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepresult.RunTable,
			Columns: []string{stepresult.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qarun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScenarioIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepresult.ScenarioTable,
			Columns: []string{stepresult.ScenarioColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScenarioID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StepResultCreateBulk is the builder for creating many StepResult entities in bulk.
type StepResultCreateBulk struct {
	config
	err      error
	builders []*StepResultCreate
}

// Save creates the StepResult entities in the database.
func (_c *StepResultCreateBulk) Save(ctx context.Context) ([]*StepResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepResultMutation)
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
func (_c *StepResultCreateBulk) SaveX(ctx context.Context) []*StepResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
