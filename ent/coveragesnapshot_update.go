// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/predicate"
	"github.com/qawave/qawave/pkg/models"
)

// CoverageSnapshotUpdate is the builder for updating CoverageSnapshot entities.
type CoverageSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *CoverageSnapshotMutation
}

// Where appends a list predicates to the CoverageSnapshotUpdate builder.
func (_u *CoverageSnapshotUpdate) Where(ps ...predicate.CoverageSnapshot) *CoverageSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOpsTotal sets the "ops_total" field.
func (_u *CoverageSnapshotUpdate) SetOpsTotal(v int) *CoverageSnapshotUpdate {
	_u.mutation.ResetOpsTotal()
	_u.mutation.SetOpsTotal(v)
	return _u
}

// SetNillableOpsTotal sets the "ops_total" field if the given value is not nil.
func (_u *CoverageSnapshotUpdate) SetNillableOpsTotal(v *int) *CoverageSnapshotUpdate {
	if v != nil {
		_u.SetOpsTotal(*v)
	}
	return _u
}

// AddOpsTotal adds value to the "ops_total" field.
func (_u *CoverageSnapshotUpdate) AddOpsTotal(v int) *CoverageSnapshotUpdate {
	_u.mutation.AddOpsTotal(v)
	return _u
}

// SetOpsCovered sets the "ops_covered" field.
func (_u *CoverageSnapshotUpdate) SetOpsCovered(v int) *CoverageSnapshotUpdate {
	_u.mutation.ResetOpsCovered()
	_u.mutation.SetOpsCovered(v)
	return _u
}

// SetNillableOpsCovered sets the "ops_covered" field if the given value is not nil.
func (_u *CoverageSnapshotUpdate) SetNillableOpsCovered(v *int) *CoverageSnapshotUpdate {
	if v != nil {
		_u.SetOpsCovered(*v)
	}
	return _u
}

// AddOpsCovered adds value to the "ops_covered" field.
func (_u *CoverageSnapshotUpdate) AddOpsCovered(v int) *CoverageSnapshotUpdate {
	_u.mutation.AddOpsCovered(v)
	return _u
}

// SetOpsFailed sets the "ops_failed" field.
func (_u *CoverageSnapshotUpdate) SetOpsFailed(v int) *CoverageSnapshotUpdate {
	_u.mutation.ResetOpsFailed()
	_u.mutation.SetOpsFailed(v)
	return _u
}

// SetNillableOpsFailed sets the "ops_failed" field if the given value is not nil.
func (_u *CoverageSnapshotUpdate) SetNillableOpsFailed(v *int) *CoverageSnapshotUpdate {
	if v != nil {
		_u.SetOpsFailed(*v)
	}
	return _u
}

// AddOpsFailed adds value to the "ops_failed" field.
func (_u *CoverageSnapshotUpdate) AddOpsFailed(v int) *CoverageSnapshotUpdate {
	_u.mutation.AddOpsFailed(v)
	return _u
}

// SetUncoveredOps sets the "uncovered_ops" field.
func (_u *CoverageSnapshotUpdate) SetUncoveredOps(v []models.OperationRef) *CoverageSnapshotUpdate {
	_u.mutation.SetUncoveredOps(v)
	return _u
}

// AppendUncoveredOps appends value to the "uncovered_ops" field.
func (_u *CoverageSnapshotUpdate) AppendUncoveredOps(v []models.OperationRef) *CoverageSnapshotUpdate {
	_u.mutation.AppendUncoveredOps(v)
	return _u
}

// ClearUncoveredOps clears the value of the "uncovered_ops" field.
func (_u *CoverageSnapshotUpdate) ClearUncoveredOps() *CoverageSnapshotUpdate {
	_u.mutation.ClearUncoveredOps()
	return _u
}

// SetPerOpStatus sets the "per_op_status" field.
func (_u *CoverageSnapshotUpdate) SetPerOpStatus(v map[string]models.OperationOutcome) *CoverageSnapshotUpdate {
	_u.mutation.SetPerOpStatus(v)
	return _u
}

// ClearPerOpStatus clears the value of the "per_op_status" field.
func (_u *CoverageSnapshotUpdate) ClearPerOpStatus() *CoverageSnapshotUpdate {
	_u.mutation.ClearPerOpStatus()
	return _u
}

// SetScenariosPassed sets the "scenarios_passed" field.
func (_u *CoverageSnapshotUpdate) SetScenariosPassed(v int) *CoverageSnapshotUpdate {
	_u.mutation.ResetScenariosPassed()
	_u.mutation.SetScenariosPassed(v)
	return _u
}

// SetNillableScenariosPassed sets the "scenarios_passed" field if the given value is not nil.
func (_u *CoverageSnapshotUpdate) SetNillableScenariosPassed(v *int) *CoverageSnapshotUpdate {
	if v != nil {
		_u.SetScenariosPassed(*v)
	}
	return _u
}

// AddScenariosPassed adds value to the "scenarios_passed" field.
func (_u *CoverageSnapshotUpdate) AddScenariosPassed(v int) *CoverageSnapshotUpdate {
	_u.mutation.AddScenariosPassed(v)
	return _u
}

// SetScenariosFailed sets the "scenarios_failed" field.
func (_u *CoverageSnapshotUpdate) SetScenariosFailed(v int) *CoverageSnapshotUpdate {
	_u.mutation.ResetScenariosFailed()
	_u.mutation.SetScenariosFailed(v)
	return _u
}

// SetNillableScenariosFailed sets the "scenarios_failed" field if the given value is not nil.
func (_u *CoverageSnapshotUpdate) SetNillableScenariosFailed(v *int) *CoverageSnapshotUpdate {
	if v != nil {
		_u.SetScenariosFailed(*v)
	}
	return _u
}

// AddScenariosFailed adds value to the "scenarios_failed" field.
func (_u *CoverageSnapshotUpdate) AddScenariosFailed(v int) *CoverageSnapshotUpdate {
	_u.mutation.AddScenariosFailed(v)
	return _u
}

// Mutation returns the CoverageSnapshotMutation object of the builder.
func (_u *CoverageSnapshotUpdate) Mutation() *CoverageSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoverageSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoverageSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoverageSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoverageSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoverageSnapshotUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoverageSnapshot.run"`)
	}
	return nil
}

func (_u *CoverageSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coveragesnapshot.Table, coveragesnapshot.Columns, sqlgraph.NewFieldSpec(coveragesnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OpsTotal(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpsTotal(); ok {
		_spec.AddField(coveragesnapshot.FieldOpsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpsCovered(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsCovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpsCovered(); ok {
		_spec.AddField(coveragesnapshot.FieldOpsCovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpsFailed(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpsFailed(); ok {
		_spec.AddField(coveragesnapshot.FieldOpsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UncoveredOps(); ok {
		_spec.SetField(coveragesnapshot.FieldUncoveredOps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUncoveredOps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coveragesnapshot.FieldUncoveredOps, value)
		})
	}
	if _u.mutation.UncoveredOpsCleared() {
		_spec.ClearField(coveragesnapshot.FieldUncoveredOps, field.TypeJSON)
	}
	if value, ok := _u.mutation.PerOpStatus(); ok {
		_spec.SetField(coveragesnapshot.FieldPerOpStatus, field.TypeJSON, value)
	}
	if _u.mutation.PerOpStatusCleared() {
		_spec.ClearField(coveragesnapshot.FieldPerOpStatus, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScenariosPassed(); ok {
		_spec.SetField(coveragesnapshot.FieldScenariosPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenariosPassed(); ok {
		_spec.AddField(coveragesnapshot.FieldScenariosPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenariosFailed(); ok {
		_spec.SetField(coveragesnapshot.FieldScenariosFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenariosFailed(); ok {
		_spec.AddField(coveragesnapshot.FieldScenariosFailed, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coveragesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoverageSnapshotUpdateOne is the builder for updating a single CoverageSnapshot entity.
type CoverageSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoverageSnapshotMutation
}

// SetOpsTotal sets the "ops_total" field.
func (_u *CoverageSnapshotUpdateOne) SetOpsTotal(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.ResetOpsTotal()
	_u.mutation.SetOpsTotal(v)
	return _u
}

// SetNillableOpsTotal sets the "ops_total" field if the given value is not nil.
func (_u *CoverageSnapshotUpdateOne) SetNillableOpsTotal(v *int) *CoverageSnapshotUpdateOne {
	if v != nil {
		_u.SetOpsTotal(*v)
	}
	return _u
}

// AddOpsTotal adds value to the "ops_total" field.
func (_u *CoverageSnapshotUpdateOne) AddOpsTotal(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.AddOpsTotal(v)
	return _u
}

// SetOpsCovered sets the "ops_covered" field.
func (_u *CoverageSnapshotUpdateOne) SetOpsCovered(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.ResetOpsCovered()
	_u.mutation.SetOpsCovered(v)
	return _u
}

// SetNillableOpsCovered sets the "ops_covered" field if the given value is not nil.
func (_u *CoverageSnapshotUpdateOne) SetNillableOpsCovered(v *int) *CoverageSnapshotUpdateOne {
	if v != nil {
		_u.SetOpsCovered(*v)
	}
	return _u
}

// AddOpsCovered adds value to the "ops_covered" field.
func (_u *CoverageSnapshotUpdateOne) AddOpsCovered(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.AddOpsCovered(v)
	return _u
}

// SetOpsFailed sets the "ops_failed" field.
func (_u *CoverageSnapshotUpdateOne) SetOpsFailed(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.ResetOpsFailed()
	_u.mutation.SetOpsFailed(v)
	return _u
}

// SetNillableOpsFailed sets the "ops_failed" field if the given value is not nil.
func (_u *CoverageSnapshotUpdateOne) SetNillableOpsFailed(v *int) *CoverageSnapshotUpdateOne {
	if v != nil {
		_u.SetOpsFailed(*v)
	}
	return _u
}

// AddOpsFailed adds value to the "ops_failed" field.
func (_u *CoverageSnapshotUpdateOne) AddOpsFailed(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.AddOpsFailed(v)
	return _u
}

// SetUncoveredOps sets the "uncovered_ops" field.
func (_u *CoverageSnapshotUpdateOne) SetUncoveredOps(v []models.OperationRef) *CoverageSnapshotUpdateOne {
	_u.mutation.SetUncoveredOps(v)
	return _u
}

// AppendUncoveredOps appends value to the "uncovered_ops" field.
func (_u *CoverageSnapshotUpdateOne) AppendUncoveredOps(v []models.OperationRef) *CoverageSnapshotUpdateOne {
	_u.mutation.AppendUncoveredOps(v)
	return _u
}

// ClearUncoveredOps clears the value of the "uncovered_ops" field.
func (_u *CoverageSnapshotUpdateOne) ClearUncoveredOps() *CoverageSnapshotUpdateOne {
	_u.mutation.ClearUncoveredOps()
	return _u
}

// SetPerOpStatus sets the "per_op_status" field.
func (_u *CoverageSnapshotUpdateOne) SetPerOpStatus(v map[string]models.OperationOutcome) *CoverageSnapshotUpdateOne {
	_u.mutation.SetPerOpStatus(v)
	return _u
}

// ClearPerOpStatus clears the value of the "per_op_status" field.
func (_u *CoverageSnapshotUpdateOne) ClearPerOpStatus() *CoverageSnapshotUpdateOne {
	_u.mutation.ClearPerOpStatus()
	return _u
}

// SetScenariosPassed sets the "scenarios_passed" field.
func (_u *CoverageSnapshotUpdateOne) SetScenariosPassed(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.ResetScenariosPassed()
	_u.mutation.SetScenariosPassed(v)
	return _u
}

// SetNillableScenariosPassed sets the "scenarios_passed" field if the given value is not nil.
func (_u *CoverageSnapshotUpdateOne) SetNillableScenariosPassed(v *int) *CoverageSnapshotUpdateOne {
	if v != nil {
		_u.SetScenariosPassed(*v)
	}
	return _u
}

// AddScenariosPassed adds value to the "scenarios_passed" field.
func (_u *CoverageSnapshotUpdateOne) AddScenariosPassed(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.AddScenariosPassed(v)
	return _u
}

// SetScenariosFailed sets the "scenarios_failed" field.
func (_u *CoverageSnapshotUpdateOne) SetScenariosFailed(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.ResetScenariosFailed()
	_u.mutation.SetScenariosFailed(v)
	return _u
}

// SetNillableScenariosFailed sets the "scenarios_failed" field if the given value is not nil.
func (_u *CoverageSnapshotUpdateOne) SetNillableScenariosFailed(v *int) *CoverageSnapshotUpdateOne {
	if v != nil {
		_u.SetScenariosFailed(*v)
	}
	return _u
}

// AddScenariosFailed adds value to the "scenarios_failed" field.
func (_u *CoverageSnapshotUpdateOne) AddScenariosFailed(v int) *CoverageSnapshotUpdateOne {
	_u.mutation.AddScenariosFailed(v)
	return _u
}

// Mutation returns the CoverageSnapshotMutation object of the builder.
func (_u *CoverageSnapshotUpdateOne) Mutation() *CoverageSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoverageSnapshotUpdate builder.
func (_u *CoverageSnapshotUpdateOne) Where(ps ...predicate.CoverageSnapshot) *CoverageSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoverageSnapshotUpdateOne) Select(field string, fields ...string) *CoverageSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoverageSnapshot entity.
func (_u *CoverageSnapshotUpdateOne) Save(ctx context.Context) (*CoverageSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoverageSnapshotUpdateOne) SaveX(ctx context.Context) *CoverageSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoverageSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoverageSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoverageSnapshotUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoverageSnapshot.run"`)
	}
	return nil
}

func (_u *CoverageSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *CoverageSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coveragesnapshot.Table, coveragesnapshot.Columns, sqlgraph.NewFieldSpec(coveragesnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoverageSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coveragesnapshot.FieldID)
		for _, f := range fields {
			if !coveragesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coveragesnapshot.FieldID {
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
	if value, ok := _u.mutation.OpsTotal(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpsTotal(); ok {
		_spec.AddField(coveragesnapshot.FieldOpsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpsCovered(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsCovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpsCovered(); ok {
		_spec.AddField(coveragesnapshot.FieldOpsCovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpsFailed(); ok {
		_spec.SetField(coveragesnapshot.FieldOpsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpsFailed(); ok {
		_spec.AddField(coveragesnapshot.FieldOpsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UncoveredOps(); ok {
		_spec.SetField(coveragesnapshot.FieldUncoveredOps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUncoveredOps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coveragesnapshot.FieldUncoveredOps, value)
		})
	}
	if _u.mutation.UncoveredOpsCleared() {
		_spec.ClearField(coveragesnapshot.FieldUncoveredOps, field.TypeJSON)
	}
	if value, ok := _u.mutation.PerOpStatus(); ok {
		_spec.SetField(coveragesnapshot.FieldPerOpStatus, field.TypeJSON, value)
	}
	if _u.mutation.PerOpStatusCleared() {
		_spec.ClearField(coveragesnapshot.FieldPerOpStatus, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScenariosPassed(); ok {
		_spec.SetField(coveragesnapshot.FieldScenariosPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenariosPassed(); ok {
		_spec.AddField(coveragesnapshot.FieldScenariosPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenariosFailed(); ok {
		_spec.SetField(coveragesnapshot.FieldScenariosFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenariosFailed(); ok {
		_spec.AddField(coveragesnapshot.FieldScenariosFailed, field.TypeInt, value)
	}
	_node = &CoverageSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coveragesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
