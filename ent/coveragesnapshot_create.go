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
	"github.com/qawave/qawave/pkg/models"
)

// CoverageSnapshotCreate is the builder for creating a CoverageSnapshot entity.
type CoverageSnapshotCreate struct {
	config
	mutation *CoverageSnapshotMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *CoverageSnapshotCreate) SetRunID(v string) *CoverageSnapshotCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetOpsTotal sets the "ops_total" field.
func (_c *CoverageSnapshotCreate) SetOpsTotal(v int) *CoverageSnapshotCreate {
	_c.mutation.SetOpsTotal(v)
	return _c
}

// SetOpsCovered sets the "ops_covered" field.
func (_c *CoverageSnapshotCreate) SetOpsCovered(v int) *CoverageSnapshotCreate {
	_c.mutation.SetOpsCovered(v)
	return _c
}

// SetOpsFailed sets the "ops_failed" field.
func (_c *CoverageSnapshotCreate) SetOpsFailed(v int) *CoverageSnapshotCreate {
	_c.mutation.SetOpsFailed(v)
	return _c
}

// SetUncoveredOps sets the "uncovered_ops" field.
func (_c *CoverageSnapshotCreate) SetUncoveredOps(v []models.OperationRef) *CoverageSnapshotCreate {
	_c.mutation.SetUncoveredOps(v)
	return _c
}

// SetPerOpStatus sets the "per_op_status" field.
func (_c *CoverageSnapshotCreate) SetPerOpStatus(v map[string]models.OperationOutcome) *CoverageSnapshotCreate {
	_c.mutation.SetPerOpStatus(v)
	return _c
}

// SetScenariosPassed sets the "scenarios_passed" field.
func (_c *CoverageSnapshotCreate) SetScenariosPassed(v int) *CoverageSnapshotCreate {
	_c.mutation.SetScenariosPassed(v)
	return _c
}

// SetScenariosFailed sets the "scenarios_failed" field.
func (_c *CoverageSnapshotCreate) SetScenariosFailed(v int) *CoverageSnapshotCreate {
	_c.mutation.SetScenariosFailed(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *CoverageSnapshotCreate) SetComputedAt(v time.Time) *CoverageSnapshotCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *CoverageSnapshotCreate) SetNillableComputedAt(v *time.Time) *CoverageSnapshotCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CoverageSnapshotCreate) SetID(v string) *CoverageSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the QARun entity.
func (_c *CoverageSnapshotCreate) SetRun(v *QARun) *CoverageSnapshotCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the CoverageSnapshotMutation object of the builder.
func (_c *CoverageSnapshotCreate) Mutation() *CoverageSnapshotMutation {
	return _c.mutation
}

// Save creates the CoverageSnapshot in the database.
func (_c *CoverageSnapshotCreate) Save(ctx context.Context) (*CoverageSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoverageSnapshotCreate) SaveX(ctx context.Context) *CoverageSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoverageSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoverageSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoverageSnapshotCreate) defaults() {
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := coveragesnapshot.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoverageSnapshotCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "CoverageSnapshot.run_id"`)}
	}
	if _, ok := _c.mutation.OpsTotal(); !ok {
		return &ValidationError{Name: "ops_total", err: errors.New(`ent: missing required field "CoverageSnapshot.ops_total"`)}
	}
	if _, ok := _c.mutation.OpsCovered(); !ok {
		return &ValidationError{Name: "ops_covered", err: errors.New(`ent: missing required field "CoverageSnapshot.ops_covered"`)}
	}
	if _, ok := _c.mutation.OpsFailed(); !ok {
		return &ValidationError{Name: "ops_failed", err: errors.New(`ent: missing required field "CoverageSnapshot.ops_failed"`)}
	}
	if _, ok := _c.mutation.ScenariosPassed(); !ok {
		return &ValidationError{Name: "scenarios_passed", err: errors.New(`ent: missing required field "CoverageSnapshot.scenarios_passed"`)}
	}
	if _, ok := _c.mutation.ScenariosFailed(); !ok {
		return &ValidationError{Name: "scenarios_failed", err: errors.New(`ent: missing required field "CoverageSnapshot.scenarios_failed"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "CoverageSnapshot.computed_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "CoverageSnapshot.run"`)}
	}
	return nil
}

func (_c *CoverageSnapshotCreate) sqlSave(ctx context.Context) (*CoverageSnapshot, error) {
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
			return nil, fmt.Errorf("unexpected CoverageSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CoverageSnapshotCreate) createSpec() (*CoverageSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &CoverageSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coveragesnapshot.Table, sqlgraph.NewFieldSpec(coveragesnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OpsTotal(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsTotal, field.TypeInt, value)
		_node.OpsTotal = value
	}
	if value, ok := _c.mutation.OpsCovered(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsCovered, field.TypeInt, value)
		_node.OpsCovered = value
	}
	if value, ok := _c.mutation.OpsFailed(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsFailed, field.TypeInt, value)
		_node.OpsFailed = value
	}
	if value, ok := _c.mutation.UncoveredOps(); ok {
		_spec.SetField(coveragesnapshot.FieldUncoveredOps, field.TypeJSON, value)
		_node.UncoveredOps = value
	}
	if value, ok := _c.mutation.PerOpStatus(); ok {
		_spec.SetField(coveragesnapshot.FieldPerOpStatus, field.TypeJSON, value)
		_node.PerOpStatus = value
	}
	if value, ok := _c.mutation.ScenariosPassed(); ok {
		_spec.SetField(coveragesnapshot.FieldScenariosPassed, field.TypeInt, value)
		_node.ScenariosPassed = value
	}
	if value, ok := _c.mutation.ScenariosFailed(); ok {
		_spec.SetField(coveragesnapshot.FieldScenariosFailed, field.TypeInt, value)
		_node.ScenariosFailed = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(coveragesnapshot.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   coveragesnapshot.RunTable,
			Columns: []string{coveragesnapshot.RunColumn},
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

// CoverageSnapshotCreateBulk is the builder for creating many CoverageSnapshot entities in bulk.
type CoverageSnapshotCreateBulk struct {
	config
	err      error
	builders []*CoverageSnapshotCreate
}

// Save creates the CoverageSnapshot entities in the database.
func (_c *CoverageSnapshotCreateBulk) Save(ctx context.Context) ([]*CoverageSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoverageSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoverageSnapshotMutation)
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
func (_c *CoverageSnapshotCreateBulk) SaveX(ctx context.Context) []*CoverageSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoverageSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoverageSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
