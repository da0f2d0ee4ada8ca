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
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
)

// ScenarioUpdate is the builder for updating Scenario entities.
type ScenarioUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioMutation
}

// Where appends a list predicates to the ScenarioUpdate builder.
func (_u *ScenarioUpdate) Where(ps ...predicate.Scenario) *ScenarioUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScenarioUpdate) SetName(v string) *ScenarioUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableName(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScenarioUpdate) SetDescription(v string) *ScenarioUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableDescription(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScenarioUpdate) ClearDescription() *ScenarioUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSource sets the "source" field.
func (_u *ScenarioUpdate) SetSource(v scenario.Source) *ScenarioUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableSource(v *scenario.Source) *ScenarioUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *ScenarioUpdate) SetOperationID(v string) *ScenarioUpdate {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableOperationID(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// ClearOperationID clears the value of the "operation_id" field.
func (_u *ScenarioUpdate) ClearOperationID() *ScenarioUpdate {
	_u.mutation.ClearOperationID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScenarioUpdate) SetStatus(v scenario.Status) *ScenarioUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableStatus(v *scenario.Status) *ScenarioUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ScenarioUpdate) SetTags(v []string) *ScenarioUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ScenarioUpdate) AppendTags(v []string) *ScenarioUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ScenarioUpdate) ClearTags() *ScenarioUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ScenarioUpdate) SetPriority(v int) *ScenarioUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillablePriority(v *int) *ScenarioUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ScenarioUpdate) AddPriority(v int) *ScenarioUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ScenarioUpdate) SetVersion(v int) *ScenarioUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableVersion(v *int) *ScenarioUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ScenarioUpdate) AddVersion(v int) *ScenarioUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ScenarioUpdate) SetSteps(v []models.Step) *ScenarioUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ScenarioUpdate) AppendSteps(v []models.Step) *ScenarioUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_u *ScenarioUpdate) SetGenerationAttempts(v int) *ScenarioUpdate {
	_u.mutation.ResetGenerationAttempts()
	_u.mutation.SetGenerationAttempts(v)
	return _u
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableGenerationAttempts(v *int) *ScenarioUpdate {
	if v != nil {
		_u.SetGenerationAttempts(*v)
	}
	return _u
}

// AddGenerationAttempts adds value to the "generation_attempts" field.
func (_u *ScenarioUpdate) AddGenerationAttempts(v int) *ScenarioUpdate {
	_u.mutation.AddGenerationAttempts(v)
	return _u
}

// SetFailureKinds sets the "failure_kinds" field.
func (_u *ScenarioUpdate) SetFailureKinds(v []string) *ScenarioUpdate {
	_u.mutation.SetFailureKinds(v)
	return _u
}

// AppendFailureKinds appends value to the "failure_kinds" field.
func (_u *ScenarioUpdate) AppendFailureKinds(v []string) *ScenarioUpdate {
	_u.mutation.AppendFailureKinds(v)
	return _u
}

// ClearFailureKinds clears the value of the "failure_kinds" field.
func (_u *ScenarioUpdate) ClearFailureKinds() *ScenarioUpdate {
	_u.mutation.ClearFailureKinds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScenarioUpdate) SetUpdatedAt(v time.Time) *ScenarioUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_u *ScenarioUpdate) AddStepResultIDs(ids ...string) *ScenarioUpdate {
	_u.mutation.AddStepResultIDs(ids...)
	return _u
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_u *ScenarioUpdate) AddStepResults(v ...*StepResult) *ScenarioUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepResultIDs(ids...)
}

// Mutation returns the ScenarioMutation object of the builder.
func (_u *ScenarioUpdate) Mutation() *ScenarioMutation {
	return _u.mutation
}

// ClearStepResults clears all "step_results" edges to the StepResult entity.
func (_u *ScenarioUpdate) ClearStepResults() *ScenarioUpdate {
	_u.mutation.ClearStepResults()
	return _u
}

// RemoveStepResultIDs removes the "step_results" edge to StepResult entities by IDs.
func (_u *ScenarioUpdate) RemoveStepResultIDs(ids ...string) *ScenarioUpdate {
	_u.mutation.RemoveStepResultIDs(ids...)
	return _u
}

// RemoveStepResults removes "step_results" edges to StepResult entities.
func (_u *ScenarioUpdate) RemoveStepResults(v ...*StepResult) *ScenarioUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scenario.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := scenario.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Scenario.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scenario.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Scenario.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Scenario.run"`)
	}
	return nil
}

func (_u *ScenarioUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenario.Table, scenario.Columns, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scenario.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scenario.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(scenario.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(scenario.FieldOperationID, field.TypeString, value)
	}
	if _u.mutation.OperationIDCleared() {
		_spec.ClearField(scenario.FieldOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scenario.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(scenario.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(scenario.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(scenario.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(scenario.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(scenario.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(scenario.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(scenario.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.GenerationAttempts(); ok {
		_spec.SetField(scenario.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationAttempts(); ok {
		_spec.AddField(scenario.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureKinds(); ok {
		_spec.SetField(scenario.FieldFailureKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailureKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldFailureKinds, value)
		})
	}
	if _u.mutation.FailureKindsCleared() {
		_spec.ClearField(scenario.FieldFailureKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scenario.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scenario.StepResultsTable,
			Columns: []string{scenario.StepResultsColumn},
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
			Table:   scenario.StepResultsTable,
			Columns: []string{scenario.StepResultsColumn},
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
			Table:   scenario.StepResultsTable,
			Columns: []string{scenario.StepResultsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioUpdateOne is the builder for updating a single Scenario entity.
type ScenarioUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioMutation
}

// SetName sets the "name" field.
func (_u *ScenarioUpdateOne) SetName(v string) *ScenarioUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableName(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScenarioUpdateOne) SetDescription(v string) *ScenarioUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableDescription(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScenarioUpdateOne) ClearDescription() *ScenarioUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSource sets the "source" field.
func (_u *ScenarioUpdateOne) SetSource(v scenario.Source) *ScenarioUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableSource(v *scenario.Source) *ScenarioUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *ScenarioUpdateOne) SetOperationID(v string) *ScenarioUpdateOne {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableOperationID(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// ClearOperationID clears the value of the "operation_id" field.
func (_u *ScenarioUpdateOne) ClearOperationID() *ScenarioUpdateOne {
	_u.mutation.ClearOperationID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScenarioUpdateOne) SetStatus(v scenario.Status) *ScenarioUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableStatus(v *scenario.Status) *ScenarioUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ScenarioUpdateOne) SetTags(v []string) *ScenarioUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ScenarioUpdateOne) AppendTags(v []string) *ScenarioUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ScenarioUpdateOne) ClearTags() *ScenarioUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ScenarioUpdateOne) SetPriority(v int) *ScenarioUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillablePriority(v *int) *ScenarioUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ScenarioUpdateOne) AddPriority(v int) *ScenarioUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ScenarioUpdateOne) SetVersion(v int) *ScenarioUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableVersion(v *int) *ScenarioUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ScenarioUpdateOne) AddVersion(v int) *ScenarioUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ScenarioUpdateOne) SetSteps(v []models.Step) *ScenarioUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ScenarioUpdateOne) AppendSteps(v []models.Step) *ScenarioUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_u *ScenarioUpdateOne) SetGenerationAttempts(v int) *ScenarioUpdateOne {
	_u.mutation.ResetGenerationAttempts()
	_u.mutation.SetGenerationAttempts(v)
	return _u
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableGenerationAttempts(v *int) *ScenarioUpdateOne {
	if v != nil {
		_u.SetGenerationAttempts(*v)
	}
	return _u
}

// AddGenerationAttempts adds value to the "generation_attempts" field.
func (_u *ScenarioUpdateOne) AddGenerationAttempts(v int) *ScenarioUpdateOne {
	_u.mutation.AddGenerationAttempts(v)
	return _u
}

// SetFailureKinds sets the "failure_kinds" field.
func (_u *ScenarioUpdateOne) SetFailureKinds(v []string) *ScenarioUpdateOne {
	_u.mutation.SetFailureKinds(v)
	return _u
}

// AppendFailureKinds appends value to the "failure_kinds" field.
func (_u *ScenarioUpdateOne) AppendFailureKinds(v []string) *ScenarioUpdateOne {
	_u.mutation.AppendFailureKinds(v)
	return _u
}

// ClearFailureKinds clears the value of the "failure_kinds" field.
func (_u *ScenarioUpdateOne) ClearFailureKinds() *ScenarioUpdateOne {
	_u.mutation.ClearFailureKinds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScenarioUpdateOne) SetUpdatedAt(v time.Time) *ScenarioUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_u *ScenarioUpdateOne) AddStepResultIDs(ids ...string) *ScenarioUpdateOne {
	_u.mutation.AddStepResultIDs(ids...)
	return _u
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_u *ScenarioUpdateOne) AddStepResults(v ...*StepResult) *ScenarioUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepResultIDs(ids...)
}

// Mutation returns the ScenarioMutation object of the builder.
func (_u *ScenarioUpdateOne) Mutation() *ScenarioMutation {
	return _u.mutation
}

// ClearStepResults clears all "step_results" edges to the StepResult entity.
func (_u *ScenarioUpdateOne) ClearStepResults() *ScenarioUpdateOne {
	_u.mutation.ClearStepResults()
	return _u
}

// RemoveStepResultIDs removes the "step_results" edge to StepResult entities by IDs.
func (_u *ScenarioUpdateOne) RemoveStepResultIDs(ids ...string) *ScenarioUpdateOne {
	_u.mutation.RemoveStepResultIDs(ids...)
	return _u
}

// RemoveStepResults removes "step_results" edges to StepResult entities.
func (_u *ScenarioUpdateOne) RemoveStepResults(v ...*StepResult) *ScenarioUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepResultIDs(ids...)
}

// Where appends a list predicates to the ScenarioUpdate builder.
func (_u *ScenarioUpdateOne) Where(ps ...predicate.Scenario) *ScenarioUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioUpdateOne) Select(field string, fields ...string) *ScenarioUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Scenario entity.
func (_u *ScenarioUpdateOne) Save(ctx context.Context) (*Scenario, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioUpdateOne) SaveX(ctx context.Context) *Scenario {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scenario.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := scenario.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Scenario.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scenario.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Scenario.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Scenario.run"`)
	}
	return nil
}

func (_u *ScenarioUpdateOne) sqlSave(ctx context.Context) (_node *Scenario, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenario.Table, scenario.Columns, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Scenario.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenario.FieldID)
		for _, f := range fields {
			if !scenario.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenario.FieldID {
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
		_spec.SetField(scenario.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scenario.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(scenario.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(scenario.FieldOperationID, field.TypeString, value)
	}
	if _u.mutation.OperationIDCleared() {
		_spec.ClearField(scenario.FieldOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scenario.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(scenario.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(scenario.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(scenario.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(scenario.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(scenario.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(scenario.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(scenario.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.GenerationAttempts(); ok {
		_spec.SetField(scenario.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationAttempts(); ok {
		_spec.AddField(scenario.FieldGenerationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureKinds(); ok {
		_spec.SetField(scenario.FieldFailureKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailureKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldFailureKinds, value)
		})
	}
	if _u.mutation.FailureKindsCleared() {
		_spec.ClearField(scenario.FieldFailureKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scenario.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scenario.StepResultsTable,
			Columns: []string{scenario.StepResultsColumn},
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
			Table:   scenario.StepResultsTable,
			Columns: []string{scenario.StepResultsColumn},
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
			Table:   scenario.StepResultsTable,
			Columns: []string{scenario.StepResultsColumn},
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
	_node = &Scenario{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
