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
	"github.com/qawave/qawave/ent/qasummary"
)

// QASummaryCreate is the builder for creating a QASummary entity.
type QASummaryCreate struct {
	config
	mutation *QASummaryMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *QASummaryCreate) SetRunID(v string) *QASummaryCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetOverallVerdict sets the "overall_verdict" field.
func (_c *QASummaryCreate) SetOverallVerdict(v qasummary.OverallVerdict) *QASummaryCreate {
	_c.mutation.SetOverallVerdict(v)
	return _c
}

// SetPassedScenarios sets the "passed_scenarios" field.
func (_c *QASummaryCreate) SetPassedScenarios(v int) *QASummaryCreate {
	_c.mutation.SetPassedScenarios(v)
	return _c
}

// SetFailedScenarios sets the "failed_scenarios" field.
func (_c *QASummaryCreate) SetFailedScenarios(v int) *QASummaryCreate {
	_c.mutation.SetFailedScenarios(v)
	return _c
}

// SetErroredScenarios sets the "errored_scenarios" field.
func (_c *QASummaryCreate) SetErroredScenarios(v int) *QASummaryCreate {
	_c.mutation.SetErroredScenarios(v)
	return _c
}

// SetNarrativeSummary sets the "narrative_summary" field.
func (_c *QASummaryCreate) SetNarrativeSummary(v string) *QASummaryCreate {
	_c.mutation.SetNarrativeSummary(v)
	return _c
}

// SetNarrativeSource sets the "narrative_source" field.
func (_c *QASummaryCreate) SetNarrativeSource(v qasummary.NarrativeSource) *QASummaryCreate {
	_c.mutation.SetNarrativeSource(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *QASummaryCreate) SetRecommendations(v []string) *QASummaryCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *QASummaryCreate) SetQualityScore(v int) *QASummaryCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QASummaryCreate) SetCreatedAt(v time.Time) *QASummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QASummaryCreate) SetNillableCreatedAt(v *time.Time) *QASummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QASummaryCreate) SetID(v string) *QASummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the QARun entity.
func (_c *QASummaryCreate) SetRun(v *QARun) *QASummaryCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the QASummaryMutation object of the builder.
func (_c *QASummaryCreate) Mutation() *QASummaryMutation {
	return _c.mutation
}

// Save creates the QASummary in the database.
func (_c *QASummaryCreate) Save(ctx context.Context) (*QASummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QASummaryCreate) SaveX(ctx context.Context) *QASummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QASummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QASummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QASummaryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := qasummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QASummaryCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "QASummary.run_id"`)}
	}
	if _, ok := _c.mutation.OverallVerdict(); !ok {
		return &ValidationError{Name: "overall_verdict", err: errors.New(`ent: missing required field "QASummary.overall_verdict"`)}
	}
	if v, ok := _c.mutation.OverallVerdict(); ok {
		if err := qasummary.OverallVerdictValidator(v); err != nil {
			return &ValidationError{Name: "overall_verdict", err: fmt.Errorf(`ent: validator failed for field "QASummary.overall_verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassedScenarios(); !ok {
		return &ValidationError{Name: "passed_scenarios", err: errors.New(`ent: missing required field "QASummary.passed_scenarios"`)}
	}
	if _, ok := _c.mutation.FailedScenarios(); !ok {
		return &ValidationError{Name: "failed_scenarios", err: errors.New(`ent: missing required field "QASummary.failed_scenarios"`)}
	}
	if _, ok := _c.mutation.ErroredScenarios(); !ok {
		return &ValidationError{Name: "errored_scenarios", err: errors.New(`ent: missing required field "QASummary.errored_scenarios"`)}
	}
	if _, ok := _c.mutation.NarrativeSummary(); !ok {
		return &ValidationError{Name: "narrative_summary", err: errors.New(`ent: missing required field "QASummary.narrative_summary"`)}
	}
	if _, ok := _c.mutation.NarrativeSource(); !ok {
		return &ValidationError{Name: "narrative_source", err: errors.New(`ent: missing required field "QASummary.narrative_source"`)}
	}
	if v, ok := _c.mutation.NarrativeSource(); ok {
		if err := qasummary.NarrativeSourceValidator(v); err != nil {
			return &ValidationError{Name: "narrative_source", err: fmt.Errorf(`ent: validator failed for field "QASummary.narrative_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "QASummary.quality_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QASummary.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "QASummary.run"`)}
	}
	return nil
}

func (_c *QASummaryCreate) sqlSave(ctx context.Context) (*QASummary, error) {
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
			return nil, fmt.Errorf("unexpected QASummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QASummaryCreate) createSpec() (*QASummary, *sqlgraph.CreateSpec) {
	var (
		_node = &QASummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(qasummary.Table, sqlgraph.NewFieldSpec(qasummary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OverallVerdict(); ok {
		_spec.SetField(qasummary.FieldOverallVerdict, field.TypeEnum, value)
		_node.OverallVerdict = value
	}
	if value, ok := _c.mutation.PassedScenarios(); ok {
		_spec.SetField(qasummary.FieldPassedScenarios, field.TypeInt, value)
		_node.PassedScenarios = value
	}
	if value, ok := _c.mutation.FailedScenarios(); ok {
		_spec.SetField(qasummary.FieldFailedScenarios, field.TypeInt, value)
		_node.FailedScenarios = value
	}
	if value, ok := _c.mutation.ErroredScenarios(); ok {
		_spec.SetField(qasummary.FieldErroredScenarios, field.TypeInt, value)
		_node.ErroredScenarios = value
	}
	if value, ok := _c.mutation.NarrativeSummary(); ok {
		_spec.SetField(qasummary.FieldNarrativeSummary, field.TypeString, value)
		_node.NarrativeSummary = value
	}
	if value, ok := _c.mutation.NarrativeSource(); ok {
		_spec.SetField(qasummary.FieldNarrativeSource, field.TypeEnum, value)
		_node.NarrativeSource = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(qasummary.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(qasummary.FieldQualityScore, field.TypeInt, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(qasummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   qasummary.RunTable,
			Columns: []string{qasummary.RunColumn},
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

// QASummaryCreateBulk is the builder for creating many QASummary entities in bulk.
type QASummaryCreateBulk struct {
	config
	err      error
	builders []*QASummaryCreate
}

// Save creates the QASummary entities in the database.
func (_c *QASummaryCreateBulk) Save(ctx context.Context) ([]*QASummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QASummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QASummaryMutation)
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
func (_c *QASummaryCreateBulk) SaveX(ctx context.Context) []*QASummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QASummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QASummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
