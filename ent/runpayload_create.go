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
	"github.com/qawave/qawave/ent/runpayload"
)

// RunPayloadCreate is the builder for creating a RunPayload entity.
type RunPayloadCreate struct {
	config
	mutation *RunPayloadMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *RunPayloadCreate) SetRunID(v string) *RunPayloadCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *RunPayloadCreate) SetBody(v []byte) *RunPayloadCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *RunPayloadCreate) SetSizeBytes(v int) *RunPayloadCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *RunPayloadCreate) SetContentHash(v string) *RunPayloadCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunPayloadCreate) SetCreatedAt(v time.Time) *RunPayloadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunPayloadCreate) SetNillableCreatedAt(v *time.Time) *RunPayloadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunPayloadCreate) SetID(v string) *RunPayloadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the QARun entity.
func (_c *RunPayloadCreate) SetRun(v *QARun) *RunPayloadCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunPayloadMutation object of the builder.
func (_c *RunPayloadCreate) Mutation() *RunPayloadMutation {
	return _c.mutation
}

// Save creates the RunPayload in the database.
func (_c *RunPayloadCreate) Save(ctx context.Context) (*RunPayload, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunPayloadCreate) SaveX(ctx context.Context) *RunPayload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunPayloadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunPayloadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunPayloadCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runpayload.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunPayloadCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunPayload.run_id"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "RunPayload.body"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "RunPayload.size_bytes"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "RunPayload.content_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunPayload.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunPayload.run"`)}
	}
	return nil
}

func (_c *RunPayloadCreate) sqlSave(ctx context.Context) (*RunPayload, error) {
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
			return nil, fmt.Errorf("unexpected RunPayload.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunPayloadCreate) createSpec() (*RunPayload, *sqlgraph.CreateSpec) {
	var (
		_node = &RunPayload{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runpayload.Table, sqlgraph.NewFieldSpec(runpayload.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(runpayload.FieldBody, field.TypeBytes, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(runpayload.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(runpayload.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runpayload.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   runpayload.RunTable,
			Columns: []string{runpayload.RunColumn},
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

// RunPayloadCreateBulk is the builder for creating many RunPayload entities in bulk.
type RunPayloadCreateBulk struct {
	config
	err      error
	builders []*RunPayloadCreate
}

// Save creates the RunPayload entities in the database.
func (_c *RunPayloadCreateBulk) Save(ctx context.Context) ([]*RunPayload, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunPayload, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunPayloadMutation)
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
func (_c *RunPayloadCreateBulk) SaveX(ctx context.Context) []*RunPayload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunPayloadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunPayloadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
