// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qawave/qawave/ent/predicate"
	"github.com/qawave/qawave/ent/runpayload"
)

// RunPayloadUpdate is the builder for updating RunPayload entities.
type RunPayloadUpdate struct {
	config
	hooks    []Hook
	mutation *RunPayloadMutation
}

// Where appends a list predicates to the RunPayloadUpdate builder.
func (_u *RunPayloadUpdate) Where(ps ...predicate.RunPayload) *RunPayloadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBody sets the "body" field.
func (_u *RunPayloadUpdate) SetBody(v []byte) *RunPayloadUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *RunPayloadUpdate) SetSizeBytes(v int) *RunPayloadUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *RunPayloadUpdate) SetNillableSizeBytes(v *int) *RunPayloadUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *RunPayloadUpdate) AddSizeBytes(v int) *RunPayloadUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *RunPayloadUpdate) SetContentHash(v string) *RunPayloadUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *RunPayloadUpdate) SetNillableContentHash(v *string) *RunPayloadUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// Mutation returns the RunPayloadMutation object of the builder.
func (_u *RunPayloadUpdate) Mutation() *RunPayloadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunPayloadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunPayloadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunPayloadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunPayloadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunPayloadUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunPayload.run"`)
	}
	return nil
}

func (_u *RunPayloadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runpayload.Table, runpayload.Columns, sqlgraph.NewFieldSpec(runpayload.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(runpayload.FieldBody, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(runpayload.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(runpayload.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(runpayload.FieldContentHash, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runpayload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunPayloadUpdateOne is the builder for updating a single RunPayload entity.
type RunPayloadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunPayloadMutation
}

// SetBody sets the "body" field.
func (_u *RunPayloadUpdateOne) SetBody(v []byte) *RunPayloadUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *RunPayloadUpdateOne) SetSizeBytes(v int) *RunPayloadUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *RunPayloadUpdateOne) SetNillableSizeBytes(v *int) *RunPayloadUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *RunPayloadUpdateOne) AddSizeBytes(v int) *RunPayloadUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *RunPayloadUpdateOne) SetContentHash(v string) *RunPayloadUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *RunPayloadUpdateOne) SetNillableContentHash(v *string) *RunPayloadUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// Mutation returns the RunPayloadMutation object of the builder.
func (_u *RunPayloadUpdateOne) Mutation() *RunPayloadMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunPayloadUpdate builder.
func (_u *RunPayloadUpdateOne) Where(ps ...predicate.RunPayload) *RunPayloadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunPayloadUpdateOne) Select(field string, fields ...string) *RunPayloadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunPayload entity.
func (_u *RunPayloadUpdateOne) Save(ctx context.Context) (*RunPayload, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunPayloadUpdateOne) SaveX(ctx context.Context) *RunPayload {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunPayloadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunPayloadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunPayloadUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunPayload.run"`)
	}
	return nil
}

func (_u *RunPayloadUpdateOne) sqlSave(ctx context.Context) (_node *RunPayload, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runpayload.Table, runpayload.Columns, sqlgraph.NewFieldSpec(runpayload.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunPayload.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runpayload.FieldID)
		for _, f := range fields {
			if !runpayload.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runpayload.FieldID {
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
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(runpayload.FieldBody, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(runpayload.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(runpayload.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(runpayload.FieldContentHash, field.TypeString, value)
	}
	_node = &RunPayload{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runpayload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
