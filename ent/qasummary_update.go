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
	"github.com/qawave/qawave/ent/predicate"
	"github.com/qawave/qawave/ent/qasummary"
)

// QASummaryUpdate is the builder for updating QASummary entities.
type QASummaryUpdate struct {
	config
	hooks    []Hook
	mutation *QASummaryMutation
}

// Where appends a list predicates to the QASummaryUpdate builder.
func (_u *QASummaryUpdate) Where(ps ...predicate.QASummary) *QASummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOverallVerdict sets the "overall_verdict" field.
func (_u *QASummaryUpdate) SetOverallVerdict(v qasummary.OverallVerdict) *QASummaryUpdate {
	_u.mutation.SetOverallVerdict(v)
	return _u
}

// SetNillableOverallVerdict sets the "overall_verdict" field if the given value is not nil.
func (_u *QASummaryUpdate) SetNillableOverallVerdict(v *qasummary.OverallVerdict) *QASummaryUpdate {
	if v != nil {
		_u.SetOverallVerdict(*v)
	}
	return _u
}

// SetPassedScenarios sets the "passed_scenarios" field.
func (_u *QASummaryUpdate) SetPassedScenarios(v int) *QASummaryUpdate {
	_u.mutation.ResetPassedScenarios()
	_u.mutation.SetPassedScenarios(v)
	return _u
}

// SetNillablePassedScenarios sets the "passed_scenarios" field if the given value is not nil.
func (_u *QASummaryUpdate) SetNillablePassedScenarios(v *int) *QASummaryUpdate {
	if v != nil {
		_u.SetPassedScenarios(*v)
	}
	return _u
}

// AddPassedScenarios adds value to the "passed_scenarios" field.
func (_u *QASummaryUpdate) AddPassedScenarios(v int) *QASummaryUpdate {
	_u.mutation.AddPassedScenarios(v)
	return _u
}

// SetFailedScenarios sets the "failed_scenarios" field.
func (_u *QASummaryUpdate) SetFailedScenarios(v int) *QASummaryUpdate {
	_u.mutation.ResetFailedScenarios()
	_u.mutation.SetFailedScenarios(v)
	return _u
}

// SetNillableFailedScenarios sets the "failed_scenarios" field if the given value is not nil.
func (_u *QASummaryUpdate) SetNillableFailedScenarios(v *int) *QASummaryUpdate {
	if v != nil {
		_u.SetFailedScenarios(*v)
	}
	return _u
}

// AddFailedScenarios adds value to the "failed_scenarios" field.
func (_u *QASummaryUpdate) AddFailedScenarios(v int) *QASummaryUpdate {
	_u.mutation.AddFailedScenarios(v)
	return _u
}

// SetErroredScenarios sets the "errored_scenarios" field.
func (_u *QASummaryUpdate) SetErroredScenarios(v int) *QASummaryUpdate {
	_u.mutation.ResetErroredScenarios()
	_u.mutation.SetErroredScenarios(v)
	return _u
}

// SetNillableErroredScenarios sets the "errored_scenarios" field if the given value is not nil.
func (_u *QASummaryUpdate) SetNillableErroredScenarios(v *int) *QASummaryUpdate {
	if v != nil {
		_u.SetErroredScenarios(*v)
	}
	return _u
}

// AddErroredScenarios adds value to the "errored_scenarios" field.
func (_u *QASummaryUpdate) AddErroredScenarios(v int) *QASummaryUpdate {
	_u.mutation.AddErroredScenarios(v)
	return _u
}

// SetNarrativeSummary sets the "narrative_summary" field.
func (_u *QASummaryUpdate) SetNarrativeSummary(v string) *QASummaryUpdate {
	_u.mutation.SetNarrativeSummary(v)
	return _u
}

// SetNillableNarrativeSummary sets the "narrative_summary" field if the given value is not nil.
func (_u *QASummaryUpdate) SetNillableNarrativeSummary(v *string) *QASummaryUpdate {
	if v != nil {
		_u.SetNarrativeSummary(*v)
	}
	return _u
}

// SetNarrativeSource sets the "narrative_source" field.
func (_u *QASummaryUpdate) SetNarrativeSource(v qasummary.NarrativeSource) *QASummaryUpdate {
	_u.mutation.SetNarrativeSource(v)
	return _u
}

// SetNillableNarrativeSource sets the "narrative_source" field if the given value is not nil.
func (_u *QASummaryUpdate) SetNillableNarrativeSource(v *qasummary.NarrativeSource) *QASummaryUpdate {
	if v != nil {
		_u.SetNarrativeSource(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *QASummaryUpdate) SetRecommendations(v []string) *QASummaryUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *QASummaryUpdate) AppendRecommendations(v []string) *QASummaryUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *QASummaryUpdate) ClearRecommendations() *QASummaryUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *QASummaryUpdate) SetQualityScore(v int) *QASummaryUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *QASummaryUpdate) SetNillableQualityScore(v *int) *QASummaryUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *QASummaryUpdate) AddQualityScore(v int) *QASummaryUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// Mutation returns the QASummaryMutation object of the builder.
func (_u *QASummaryUpdate) Mutation() *QASummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QASummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QASummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QASummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QASummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QASummaryUpdate) check() error {
	if v, ok := _u.mutation.OverallVerdict(); ok {
		if err := qasummary.OverallVerdictValidator(v); err != nil {
			return &ValidationError{Name: "overall_verdict", err: fmt.Errorf(`ent: validator failed for field "QASummary.overall_verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NarrativeSource(); ok {
		if err := qasummary.NarrativeSourceValidator(v); err != nil {
			return &ValidationError{Name: "narrative_source", err: fmt.Errorf(`ent: validator failed for field "QASummary.narrative_source": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QASummary.run"`)
	}
	return nil
}

func (_u *QASummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qasummary.Table, qasummary.Columns, sqlgraph.NewFieldSpec(qasummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OverallVerdict(); ok {
		_spec.SetField(qasummary.FieldOverallVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PassedScenarios(); ok {
		_spec.SetField(qasummary.FieldPassedScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassedScenarios(); ok {
		_spec.AddField(qasummary.FieldPassedScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedScenarios(); ok {
		_spec.SetField(qasummary.FieldFailedScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedScenarios(); ok {
		_spec.AddField(qasummary.FieldFailedScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErroredScenarios(); ok {
		_spec.SetField(qasummary.FieldErroredScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErroredScenarios(); ok {
		_spec.AddField(qasummary.FieldErroredScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NarrativeSummary(); ok {
		_spec.SetField(qasummary.FieldNarrativeSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.NarrativeSource(); ok {
		_spec.SetField(qasummary.FieldNarrativeSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(qasummary.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qasummary.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(qasummary.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(qasummary.FieldQualityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(qasummary.FieldQualityScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qasummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QASummaryUpdateOne is the builder for updating a single QASummary entity.
type QASummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QASummaryMutation
}

// SetOverallVerdict sets the "overall_verdict" field.
func (_u *QASummaryUpdateOne) SetOverallVerdict(v qasummary.OverallVerdict) *QASummaryUpdateOne {
	_u.mutation.SetOverallVerdict(v)
	return _u
}

// SetNillableOverallVerdict sets the "overall_verdict" field if the given value is not nil.
func (_u *QASummaryUpdateOne) SetNillableOverallVerdict(v *qasummary.OverallVerdict) *QASummaryUpdateOne {
	if v != nil {
		_u.SetOverallVerdict(*v)
	}
	return _u
}

// SetPassedScenarios sets the "passed_scenarios" field.
func (_u *QASummaryUpdateOne) SetPassedScenarios(v int) *QASummaryUpdateOne {
	_u.mutation.ResetPassedScenarios()
	_u.mutation.SetPassedScenarios(v)
	return _u
}

// SetNillablePassedScenarios sets the "passed_scenarios" field if the given value is not nil.
func (_u *QASummaryUpdateOne) SetNillablePassedScenarios(v *int) *QASummaryUpdateOne {
	if v != nil {
		_u.SetPassedScenarios(*v)
	}
	return _u
}

// AddPassedScenarios adds value to the "passed_scenarios" field.
func (_u *QASummaryUpdateOne) AddPassedScenarios(v int) *QASummaryUpdateOne {
	_u.mutation.AddPassedScenarios(v)
	return _u
}

// SetFailedScenarios sets the "failed_scenarios" field.
func (_u *QASummaryUpdateOne) SetFailedScenarios(v int) *QASummaryUpdateOne {
	_u.mutation.ResetFailedScenarios()
	_u.mutation.SetFailedScenarios(v)
	return _u
}

// SetNillableFailedScenarios sets the "failed_scenarios" field if the given value is not nil.
func (_u *QASummaryUpdateOne) SetNillableFailedScenarios(v *int) *QASummaryUpdateOne {
	if v != nil {
		_u.SetFailedScenarios(*v)
	}
	return _u
}

// AddFailedScenarios adds value to the "failed_scenarios" field.
func (_u *QASummaryUpdateOne) AddFailedScenarios(v int) *QASummaryUpdateOne {
	_u.mutation.AddFailedScenarios(v)
	return _u
}

// SetErroredScenarios sets the "errored_scenarios" field.
func (_u *QASummaryUpdateOne) SetErroredScenarios(v int) *QASummaryUpdateOne {
	_u.mutation.ResetErroredScenarios()
	_u.mutation.SetErroredScenarios(v)
	return _u
}

// SetNillableErroredScenarios sets the "errored_scenarios" field if the given value is not nil.
func (_u *QASummaryUpdateOne) SetNillableErroredScenarios(v *int) *QASummaryUpdateOne {
	if v != nil {
		_u.SetErroredScenarios(*v)
	}
	return _u
}

// AddErroredScenarios adds value to the "errored_scenarios" field.
func (_u *QASummaryUpdateOne) AddErroredScenarios(v int) *QASummaryUpdateOne {
	_u.mutation.AddErroredScenarios(v)
	return _u
}

// SetNarrativeSummary sets the "narrative_summary" field.
func (_u *QASummaryUpdateOne) SetNarrativeSummary(v string) *QASummaryUpdateOne {
	_u.mutation.SetNarrativeSummary(v)
	return _u
}

// SetNillableNarrativeSummary sets the "narrative_summary" field if the given value is not nil.
func (_u *QASummaryUpdateOne) SetNillableNarrativeSummary(v *string) *QASummaryUpdateOne {
	if v != nil {
		_u.SetNarrativeSummary(*v)
	}
	return _u
}

// SetNarrativeSource sets the "narrative_source" field.
func (_u *QASummaryUpdateOne) SetNarrativeSource(v qasummary.NarrativeSource) *QASummaryUpdateOne {
	_u.mutation.SetNarrativeSource(v)
	return _u
}

// SetNillableNarrativeSource sets the "narrative_source" field if the given value is not nil.
func (_u *QASummaryUpdateOne) SetNillableNarrativeSource(v *qasummary.NarrativeSource) *QASummaryUpdateOne {
	if v != nil {
		_u.SetNarrativeSource(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *QASummaryUpdateOne) SetRecommendations(v []string) *QASummaryUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *QASummaryUpdateOne) AppendRecommendations(v []string) *QASummaryUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *QASummaryUpdateOne) ClearRecommendations() *QASummaryUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *QASummaryUpdateOne) SetQualityScore(v int) *QASummaryUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *QASummaryUpdateOne) SetNillableQualityScore(v *int) *QASummaryUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *QASummaryUpdateOne) AddQualityScore(v int) *QASummaryUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// Mutation returns the QASummaryMutation object of the builder.
func (_u *QASummaryUpdateOne) Mutation() *QASummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the QASummaryUpdate builder.
func (_u *QASummaryUpdateOne) Where(ps ...predicate.QASummary) *QASummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QASummaryUpdateOne) Select(field string, fields ...string) *QASummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QASummary entity.
func (_u *QASummaryUpdateOne) Save(ctx context.Context) (*QASummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QASummaryUpdateOne) SaveX(ctx context.Context) *QASummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QASummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QASummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QASummaryUpdateOne) check() error {
	if v, ok := _u.mutation.OverallVerdict(); ok {
		if err := qasummary.OverallVerdictValidator(v); err != nil {
			return &ValidationError{Name: "overall_verdict", err: fmt.Errorf(`ent: validator failed for field "QASummary.overall_verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NarrativeSource(); ok {
		if err := qasummary.NarrativeSourceValidator(v); err != nil {
			return &ValidationError{Name: "narrative_source", err: fmt.Errorf(`ent: validator failed for field "QASummary.narrative_source": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QASummary.run"`)
	}
	return nil
}

func (_u *QASummaryUpdateOne) sqlSave(ctx context.Context) (_node *QASummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qasummary.Table, qasummary.Columns, sqlgraph.NewFieldSpec(qasummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QASummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qasummary.FieldID)
		for _, f := range fields {
			if !qasummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != qasummary.FieldID {
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
	if value, ok := _u.mutation.OverallVerdict(); ok {
		_spec.SetField(qasummary.FieldOverallVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PassedScenarios(); ok {
		_spec.SetField(qasummary.FieldPassedScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassedScenarios(); ok {
		_spec.AddField(qasummary.FieldPassedScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedScenarios(); ok {
		_spec.SetField(qasummary.FieldFailedScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedScenarios(); ok {
		_spec.AddField(qasummary.FieldFailedScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErroredScenarios(); ok {
		_spec.SetField(qasummary.FieldErroredScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErroredScenarios(); ok {
		_spec.AddField(qasummary.FieldErroredScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NarrativeSummary(); ok {
		_spec.SetField(qasummary.FieldNarrativeSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.NarrativeSource(); ok {
		_spec.SetField(qasummary.FieldNarrativeSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(qasummary.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qasummary.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(qasummary.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(qasummary.FieldQualityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(qasummary.FieldQualityScore, field.TypeInt, value)
	}
	_node = &QASummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qasummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
