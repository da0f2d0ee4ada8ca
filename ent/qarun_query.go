// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/predicate"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
)

// QARunQuery is the builder for querying QARun entities.
type QARunQuery struct {
	config
	ctx             *QueryContext
	order           []qarun.OrderOption
	inters          []Interceptor
	predicates      []predicate.QARun
	withScenarios   *ScenarioQuery
	withStepResults *StepResultQuery
	withEvents      *RunEventQuery
	withPayload     *RunPayloadQuery
	withCoverage    *CoverageSnapshotQuery
	withSummary     *QASummaryQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QARunQuery builder.
func (_q *QARunQuery) Where(ps ...predicate.QARun) *QARunQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *QARunQuery) Limit(limit int) *QARunQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *QARunQuery) Offset(offset int) *QARunQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *QARunQuery) Unique(unique bool) *QARunQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *QARunQuery) Order(o ...qarun.OrderOption) *QARunQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryScenarios chains the current query on the "scenarios" edge.
func (_q *QARunQuery) QueryScenarios() *ScenarioQuery {
	query := (&ScenarioClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, selector),
			sqlgraph.To(scenario.Table, scenario.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qarun.ScenariosTable, qarun.ScenariosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStepResults chains the current query on the "step_results" edge.
func (_q *QARunQuery) QueryStepResults() *StepResultQuery {
	query := (&StepResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, selector),
			sqlgraph.To(stepresult.Table, stepresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qarun.StepResultsTable, qarun.StepResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *QARunQuery) QueryEvents() *RunEventQuery {
	query := (&RunEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, selector),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qarun.EventsTable, qarun.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPayload chains the current query on the "payload" edge.
func (_q *QARunQuery) QueryPayload() *RunPayloadQuery {
	query := (&RunPayloadClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, selector),
			sqlgraph.To(runpayload.Table, runpayload.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, qarun.PayloadTable, qarun.PayloadColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCoverage chains the current query on the "coverage" edge.
func (_q *QARunQuery) QueryCoverage() *CoverageSnapshotQuery {
	query := (&CoverageSnapshotClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, selector),
			sqlgraph.To(coveragesnapshot.Table, coveragesnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, qarun.CoverageTable, qarun.CoverageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySummary chains the current query on the "summary" edge.
func (_q *QARunQuery) QuerySummary() *QASummaryQuery {
	query := (&QASummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, selector),
			sqlgraph.To(qasummary.Table, qasummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, qarun.SummaryTable, qarun.SummaryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first QARun entity from the query.
// Returns a *NotFoundError when no QARun was found.
func (_q *QARunQuery) First(ctx context.Context) (*QARun, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{qarun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *QARunQuery) FirstX(ctx context.Context) *QARun {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QARun ID from the query.
// Returns a *NotFoundError when no QARun ID was found.
func (_q *QARunQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{qarun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *QARunQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QARun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QARun entity is found.
// Returns a *NotFoundError when no QARun entities are found.
func (_q *QARunQuery) Only(ctx context.Context) (*QARun, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{qarun.Label}
	default:
		return nil, &NotSingularError{qarun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *QARunQuery) OnlyX(ctx context.Context) *QARun {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QARun ID in the query.
// Returns a *NotSingularError when more than one QARun ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *QARunQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{qarun.Label}
	default:
		err = &NotSingularError{qarun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *QARunQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QARuns.
func (_q *QARunQuery) All(ctx context.Context) ([]*QARun, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QARun, *QARunQuery]()
	return withInterceptors[[]*QARun](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *QARunQuery) AllX(ctx context.Context) []*QARun {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QARun IDs.
func (_q *QARunQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(qarun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *QARunQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *QARunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*QARunQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *QARunQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *QARunQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *QARunQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QARunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *QARunQuery) Clone() *QARunQuery {
	if _q == nil {
		return nil
	}
	return &QARunQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]qarun.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.QARun{}, _q.predicates...),
		withScenarios:   _q.withScenarios.Clone(),
		withStepResults: _q.withStepResults.Clone(),
		withEvents:      _q.withEvents.Clone(),
		withPayload:     _q.withPayload.Clone(),
		withCoverage:    _q.withCoverage.Clone(),
		withSummary:     _q.withSummary.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithScenarios tells the query-builder to eager-load the nodes that are connected to
// the "scenarios" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QARunQuery) WithScenarios(opts ...func(*ScenarioQuery)) *QARunQuery {
	query := (&ScenarioClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withScenarios = query
	return _q
}

// WithStepResults tells the query-builder to eager-load the nodes that are connected to
// the "step_results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QARunQuery) WithStepResults(opts ...func(*StepResultQuery)) *QARunQuery {
	query := (&StepResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStepResults = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QARunQuery) WithEvents(opts ...func(*RunEventQuery)) *QARunQuery {
	query := (&RunEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithPayload tells the query-builder to eager-load the nodes that are connected to
// the "payload" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QARunQuery) WithPayload(opts ...func(*RunPayloadQuery)) *QARunQuery {
	query := (&RunPayloadClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPayload = query
	return _q
}

// WithCoverage tells the query-builder to eager-load the nodes that are connected to
// the "coverage" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QARunQuery) WithCoverage(opts ...func(*CoverageSnapshotQuery)) *QARunQuery {
	query := (&CoverageSnapshotClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCoverage = query
	return _q
}

// WithSummary tells the query-builder to eager-load the nodes that are connected to
// the "summary" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QARunQuery) WithSummary(opts ...func(*QASummaryQuery)) *QARunQuery {
	query := (&QASummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSummary = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QARun.Query().
//		GroupBy(qarun.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *QARunQuery) GroupBy(field string, fields ...string) *QARunGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QARunGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = qarun.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.QARun.Query().
//		Select(qarun.FieldName).
//		Scan(ctx, &v)
func (_q *QARunQuery) Select(fields ...string) *QARunSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &QARunSelect{QARunQuery: _q}
	sbuild.label = qarun.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QARunSelect configured with the given aggregations.
func (_q *QARunQuery) Aggregate(fns ...AggregateFunc) *QARunSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *QARunQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !qarun.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *QARunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QARun, error) {
	var (
		nodes       = []*QARun{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withScenarios != nil,
			_q.withStepResults != nil,
			_q.withEvents != nil,
			_q.withPayload != nil,
			_q.withCoverage != nil,
			_q.withSummary != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QARun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QARun{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withScenarios; query != nil {
		if err := _q.loadScenarios(ctx, query, nodes,
			func(n *QARun) { n.Edges.Scenarios = []*Scenario{} },
			func(n *QARun, e *Scenario) { n.Edges.Scenarios = append(n.Edges.Scenarios, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStepResults; query != nil {
		if err := _q.loadStepResults(ctx, query, nodes,
			func(n *QARun) { n.Edges.StepResults = []*StepResult{} },
			func(n *QARun, e *StepResult) { n.Edges.StepResults = append(n.Edges.StepResults, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *QARun) { n.Edges.Events = []*RunEvent{} },
			func(n *QARun, e *RunEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPayload; query != nil {
		if err := _q.loadPayload(ctx, query, nodes, nil,
			func(n *QARun, e *RunPayload) { n.Edges.Payload = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCoverage; query != nil {
		if err := _q.loadCoverage(ctx, query, nodes, nil,
			func(n *QARun, e *CoverageSnapshot) { n.Edges.Coverage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSummary; query != nil {
		if err := _q.loadSummary(ctx, query, nodes, nil,
			func(n *QARun, e *QASummary) { n.Edges.Summary = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *QARunQuery) loadScenarios(ctx context.Context, query *ScenarioQuery, nodes []*QARun, init func(*QARun), assign func(*QARun, *Scenario)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*QARun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(scenario.FieldRunID)
	}
	query.Where(predicate.Scenario(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(qarun.ScenariosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *QARunQuery) loadStepResults(ctx context.Context, query *StepResultQuery, nodes []*QARun, init func(*QARun), assign func(*QARun, *StepResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*QARun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(stepresult.FieldRunID)
	}
	query.Where(predicate.StepResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(qarun.StepResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *QARunQuery) loadEvents(ctx context.Context, query *RunEventQuery, nodes []*QARun, init func(*QARun), assign func(*QARun, *RunEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*QARun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(runevent.FieldRunID)
	}
	query.Where(predicate.RunEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(qarun.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *QARunQuery) loadPayload(ctx context.Context, query *RunPayloadQuery, nodes []*QARun, init func(*QARun), assign func(*QARun, *RunPayload)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*QARun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(runpayload.FieldRunID)
	}
	query.Where(predicate.RunPayload(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(qarun.PayloadColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *QARunQuery) loadCoverage(ctx context.Context, query *CoverageSnapshotQuery, nodes []*QARun, init func(*QARun), assign func(*QARun, *CoverageSnapshot)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*QARun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(coveragesnapshot.FieldRunID)
	}
	query.Where(predicate.CoverageSnapshot(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(qarun.CoverageColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *QARunQuery) loadSummary(ctx context.Context, query *QASummaryQuery, nodes []*QARun, init func(*QARun), assign func(*QARun, *QASummary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*QARun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(qasummary.FieldRunID)
	}
	query.Where(predicate.QASummary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(qarun.SummaryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *QARunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *QARunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(qarun.Table, qarun.Columns, sqlgraph.NewFieldSpec(qarun.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qarun.FieldID)
		for i := range fields {
			if fields[i] != qarun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *QARunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(qarun.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = qarun.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *QARunQuery) ForUpdate(opts ...sql.LockOption) *QARunQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *QARunQuery) ForShare(opts ...sql.LockOption) *QARunQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// QARunGroupBy is the group-by builder for QARun entities.
type QARunGroupBy struct {
	selector
	build *QARunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *QARunGroupBy) Aggregate(fns ...AggregateFunc) *QARunGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *QARunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QARunQuery, *QARunGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *QARunGroupBy) sqlScan(ctx context.Context, root *QARunQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QARunSelect is the builder for selecting fields of QARun entities.
type QARunSelect struct {
	*QARunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *QARunSelect) Aggregate(fns ...AggregateFunc) *QARunSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *QARunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QARunQuery, *QARunSelect](ctx, _s.QARunQuery, _s, _s.inters, v)
}

func (_s *QARunSelect) sqlScan(ctx context.Context, root *QARunQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
