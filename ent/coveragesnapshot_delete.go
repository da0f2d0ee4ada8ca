// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/predicate"
)

// CoverageSnapshotDelete is the builder for deleting a CoverageSnapshot entity.
type CoverageSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *CoverageSnapshotMutation
}

// Where appends a list predicates to the CoverageSnapshotDelete builder.
func (_d *CoverageSnapshotDelete) Where(ps ...predicate.CoverageSnapshot) *CoverageSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CoverageSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoverageSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CoverageSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(coveragesnapshot.Table, sqlgraph.NewFieldSpec(coveragesnapshot.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CoverageSnapshotDeleteOne is the builder for deleting a single CoverageSnapshot entity.
type CoverageSnapshotDeleteOne struct {
	_d *CoverageSnapshotDelete
}

// Where appends a list predicates to the CoverageSnapshotDelete builder.
func (_d *CoverageSnapshotDeleteOne) Where(ps ...predicate.CoverageSnapshot) *CoverageSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CoverageSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{coveragesnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoverageSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
