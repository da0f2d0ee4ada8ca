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

// ScenarioCreate is the builder for creating a Scenario entity.
type ScenarioCreate struct {
	config
	mutation *ScenarioMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ScenarioCreate) SetRunID(v string) *ScenarioCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ScenarioCreate) SetName(v string) *ScenarioCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ScenarioCreate) SetDescription(v string) *ScenarioCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableDescription(v *string) *ScenarioCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ScenarioCreate) SetSource(v scenario.Source) *ScenarioCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetOperationID sets the "operation_id" field.
func (_c *ScenarioCreate) SetOperationID(v string) *ScenarioCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableOperationID(v *string) *ScenarioCreate {
	if v != nil {
		_c.SetOperationID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScenarioCreate) SetStatus(v scenario.Status) *ScenarioCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableStatus(v *scenario.Status) *ScenarioCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ScenarioCreate) SetTags(v []string) *ScenarioCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ScenarioCreate) SetPriority(v int) *ScenarioCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillablePriority(v *int) *ScenarioCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ScenarioCreate) SetVersion(v int) *ScenarioCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableVersion(v *int) *ScenarioCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *ScenarioCreate) SetSteps(v []models.Step) *ScenarioCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (_c *ScenarioCreate) SetGenerationAttempts(v int) *ScenarioCreate {
	_c.mutation.SetGenerationAttempts(v)
	return _c
}

// SetNillableGenerationAttempts sets the "generation_attempts" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableGenerationAttempts(v *int) *ScenarioCreate {
	if v != nil {
		_c.SetGenerationAttempts(*v)
	}
	return _c
}

// SetFailureKinds sets the "failure_kinds" field.
func (_c *ScenarioCreate) SetFailureKinds(v []string) *ScenarioCreate {
	_c.mutation.SetFailureKinds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScenarioCreate) SetCreatedAt(v time.Time) *ScenarioCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableCreatedAt(v *time.Time) *ScenarioCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScenarioCreate) SetUpdatedAt(v time.Time) *ScenarioCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableUpdatedAt(v *time.Time) *ScenarioCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScenarioCreate) SetID(v string) *ScenarioCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the QARun entity.
func (_c *ScenarioCreate) SetRun(v *QARun) *ScenarioCreate {
	return _c.SetRunID(v.ID)
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_c *ScenarioCreate) AddStepResultIDs(ids ...string) *ScenarioCreate {
	_c.mutation.AddStepResultIDs(ids...)
	return _c
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_c *ScenarioCreate) AddStepResults(v ...*StepResult) *ScenarioCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepResultIDs(ids...)
}

// Mutation returns the ScenarioMutation object of the builder.
func (_c *ScenarioCreate) Mutation() *ScenarioMutation {
	return _c.mutation
}

// Save creates the Scenario in the database.
func (_c *ScenarioCreate) Save(ctx context.Context) (*Scenario, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioCreate) SaveX(ctx context.Context) *Scenario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scenario.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := scenario.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := scenario.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.GenerationAttempts(); !ok {
		v := scenario.DefaultGenerationAttempts
		_c.mutation.SetGenerationAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scenario.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scenario.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Scenario.run_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Scenario.name"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Scenario.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := scenario.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Scenario.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Scenario.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scenario.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Scenario.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Scenario.priority"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Scenario.version"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "Scenario.steps"`)}
	}
	if _, ok := _c.mutation.GenerationAttempts(); !ok {
		return &ValidationError{Name: "generation_attempts", err: errors.New(`ent: missing required field "Scenario.generation_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Scenario.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Scenario.updated_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Scenario.run"`)}
	}
	return nil
}

func (_c *ScenarioCreate) sqlSave(ctx context.Context) (*Scenario, error) {
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
			return nil, fmt.Errorf("unexpected Scenario.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScenarioCreate) createSpec() (*Scenario, *sqlgraph.CreateSpec) {
	var (
		_node = &Scenario{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenario.Table, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scenario.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(scenario.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.OperationID(); ok {
		_spec.SetField(scenario.FieldOperationID, field.TypeString, value)
		_node.OperationID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scenario.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(scenario.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(scenario.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(scenario.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(scenario.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.GenerationAttempts(); ok {
		_spec.SetField(scenario.FieldGenerationAttempts, field.TypeInt, value)
		_node.GenerationAttempts = value
	}
	if value, ok := _c.mutation.FailureKinds(); ok {
		_spec.SetField(scenario.FieldFailureKinds, field.TypeJSON, value)
		_node.FailureKinds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scenario.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scenario.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scenario.RunTable,
			Columns: []string{scenario.RunColumn},
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
	if nodes := _c.mutation.StepResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScenarioCreateBulk is the builder for creating many Scenario entities in bulk.
type ScenarioCreateBulk struct {
	config
	err      error
	builders []*ScenarioCreate
}

// Save creates the Scenario entities in the database.
func (_c *ScenarioCreateBulk) Save(ctx context.Context) ([]*Scenario, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Scenario, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioMutation)
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
func (_c *ScenarioCreateBulk) SaveX(ctx context.Context) []*Scenario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
