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
	"github.com/qawave/qawave/ent/runevent"
)

// RunEventCreate is the builder for creating a RunEvent entity.
type RunEventCreate struct {
	config
	mutation *RunEventMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *RunEventCreate) SetRunID(v string) *RunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *RunEventCreate) SetSeq(v int) *RunEventCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetType sets the "type" field.
func (_c *RunEventCreate) SetType(v runevent.Type) *RunEventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *RunEventCreate) SetPayload(v map[string]interface{}) *RunEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *RunEventCreate) SetScenarioID(v string) *RunEventCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableScenarioID(v *string) *RunEventCreate {
	if v != nil {
		_c.SetScenarioID(*v)
	}
	return _c
}

// SetStepResultID sets the "step_result_id" field.
func (_c *RunEventCreate) SetStepResultID(v string) *RunEventCreate {
	_c.mutation.SetStepResultID(v)
	return _c
}

// SetNillableStepResultID sets the "step_result_id" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableStepResultID(v *string) *RunEventCreate {
	if v != nil {
		_c.SetStepResultID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunEventCreate) SetErrorMessage(v string) *RunEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableErrorMessage(v *string) *RunEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunEventCreate) SetCreatedAt(v time.Time) *RunEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableCreatedAt(v *time.Time) *RunEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunEventCreate) SetID(v string) *RunEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the QARun entity.
func (_c *RunEventCreate) SetRun(v *QARun) *RunEventCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunEventMutation object of the builder.
func (_c *RunEventCreate) Mutation() *RunEventMutation {
	return _c.mutation
}

// Save creates the RunEvent in the database.
func (_c *RunEventCreate) Save(ctx context.Context) (*RunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunEventCreate) SaveX(ctx context.Context) *RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunEventCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "RunEvent.seq"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "RunEvent.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := runevent.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "RunEvent.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunEvent.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunEvent.run"`)}
	}
	return nil
}

func (_c *RunEventCreate) sqlSave(ctx context.Context) (*RunEvent, error) {
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
			return nil, fmt.Errorf("unexpected RunEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunEventCreate) createSpec() (*RunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runevent.Table, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(runevent.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(runevent.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(runevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(runevent.FieldScenarioID, field.TypeString, value)
		_node.ScenarioID = &value
	}
	if value, ok := _c.mutation.StepResultID(); ok {
		_spec.SetField(runevent.FieldStepResultID, field.TypeString, value)
		_node.StepResultID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(runevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runevent.RunTable,
			Columns: []string{runevent.RunColumn},
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
	return _node, _spec
}

// RunEventCreateBulk is the builder for creating many RunEvent entities in bulk.
type RunEventCreateBulk struct {
	config
	err      error
	builders []*RunEventCreate
}

// Save creates the RunEvent entities in the database.
func (_c *RunEventCreateBulk) Save(ctx context.Context) ([]*RunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunEventMutation)
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
func (_c *RunEventCreateBulk) SaveX(ctx context.Context) []*RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
