// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/qawave/qawave/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CoverageSnapshot is the client for interacting with the CoverageSnapshot builders.
	CoverageSnapshot *CoverageSnapshotClient
	// QARun is the client for interacting with the QARun builders.
	QARun *QARunClient
	// QASummary is the client for interacting with the QASummary builders.
	QASummary *QASummaryClient
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// RunPayload is the client for interacting with the RunPayload builders.
	RunPayload *RunPayloadClient
	// Scenario is the client for interacting with the Scenario builders.
	Scenario *ScenarioClient
	// StepResult is the client for interacting with the StepResult builders.
	StepResult *StepResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CoverageSnapshot = NewCoverageSnapshotClient(c.config)
	c.QARun = NewQARunClient(c.config)
	c.QASummary = NewQASummaryClient(c.config)
	c.RunEvent = NewRunEventClient(c.config)
	c.RunPayload = NewRunPayloadClient(c.config)
	c.Scenario = NewScenarioClient(c.config)
	c.StepResult = NewStepResultClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CoverageSnapshot: NewCoverageSnapshotClient(cfg),
		QARun:            NewQARunClient(cfg),
		QASummary:        NewQASummaryClient(cfg),
		RunEvent:         NewRunEventClient(cfg),
		RunPayload:       NewRunPayloadClient(cfg),
		Scenario:         NewScenarioClient(cfg),
		StepResult:       NewStepResultClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CoverageSnapshot: NewCoverageSnapshotClient(cfg),
		QARun:            NewQARunClient(cfg),
		QASummary:        NewQASummaryClient(cfg),
		RunEvent:         NewRunEventClient(cfg),
		RunPayload:       NewRunPayloadClient(cfg),
		Scenario:         NewScenarioClient(cfg),
		StepResult:       NewStepResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CoverageSnapshot.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.CoverageSnapshot, c.QARun, c.QASummary, c.RunEvent, c.RunPayload, c.Scenario,
		c.StepResult,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CoverageSnapshot, c.QARun, c.QASummary, c.RunEvent, c.RunPayload, c.Scenario,
		c.StepResult,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CoverageSnapshotMutation:
		return c.CoverageSnapshot.mutate(ctx, m)
	case *QARunMutation:
		return c.QARun.mutate(ctx, m)
	case *QASummaryMutation:
		return c.QASummary.mutate(ctx, m)
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *RunPayloadMutation:
		return c.RunPayload.mutate(ctx, m)
	case *ScenarioMutation:
		return c.Scenario.mutate(ctx, m)
	case *StepResultMutation:
		return c.StepResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CoverageSnapshotClient is a client for the CoverageSnapshot schema.
type CoverageSnapshotClient struct {
	config
}

// NewCoverageSnapshotClient returns a client for the CoverageSnapshot from the given config.
func NewCoverageSnapshotClient(c config) *CoverageSnapshotClient {
	return &CoverageSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coveragesnapshot.Hooks(f(g(h())))`.
func (c *CoverageSnapshotClient) Use(hooks ...Hook) {
	c.hooks.CoverageSnapshot = append(c.hooks.CoverageSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coveragesnapshot.Intercept(f(g(h())))`.
func (c *CoverageSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoverageSnapshot = append(c.inters.CoverageSnapshot, interceptors...)
}

// Create returns a builder for creating a CoverageSnapshot entity.
func (c *CoverageSnapshotClient) Create() *CoverageSnapshotCreate {
	mutation := newCoverageSnapshotMutation(c.config, OpCreate)
	return &CoverageSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoverageSnapshot entities.
func (c *CoverageSnapshotClient) CreateBulk(builders ...*CoverageSnapshotCreate) *CoverageSnapshotCreateBulk {
	return &CoverageSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoverageSnapshotClient) MapCreateBulk(slice any, setFunc func(*CoverageSnapshotCreate, int)) *CoverageSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoverageSnapshotCreateBulk{err: fmt.Errorf("calling to CoverageSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoverageSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoverageSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoverageSnapshot.
func (c *CoverageSnapshotClient) Update() *CoverageSnapshotUpdate {
	mutation := newCoverageSnapshotMutation(c.config, OpUpdate)
	return &CoverageSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoverageSnapshotClient) UpdateOne(_m *CoverageSnapshot) *CoverageSnapshotUpdateOne {
	mutation := newCoverageSnapshotMutation(c.config, OpUpdateOne, withCoverageSnapshot(_m))
	return &CoverageSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoverageSnapshotClient) UpdateOneID(id string) *CoverageSnapshotUpdateOne {
	mutation := newCoverageSnapshotMutation(c.config, OpUpdateOne, withCoverageSnapshotID(id))
	return &CoverageSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoverageSnapshot.
func (c *CoverageSnapshotClient) Delete() *CoverageSnapshotDelete {
	mutation := newCoverageSnapshotMutation(c.config, OpDelete)
	return &CoverageSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoverageSnapshotClient) DeleteOne(_m *CoverageSnapshot) *CoverageSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoverageSnapshotClient) DeleteOneID(id string) *CoverageSnapshotDeleteOne {
	builder := c.Delete().Where(coveragesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoverageSnapshotDeleteOne{builder}
}

// Query returns a query builder for CoverageSnapshot.
func (c *CoverageSnapshotClient) Query() *CoverageSnapshotQuery {
	return &CoverageSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoverageSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a CoverageSnapshot entity by its id.
func (c *CoverageSnapshotClient) Get(ctx context.Context, id string) (*CoverageSnapshot, error) {
	return c.Query().Where(coveragesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoverageSnapshotClient) GetX(ctx context.Context, id string) *CoverageSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a CoverageSnapshot.
func (c *CoverageSnapshotClient) QueryRun(_m *CoverageSnapshot) *QARunQuery {
	query := (&QARunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(coveragesnapshot.Table, coveragesnapshot.FieldID, id),
			sqlgraph.To(qarun.Table, qarun.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, coveragesnapshot.RunTable, coveragesnapshot.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CoverageSnapshotClient) Hooks() []Hook {
	return c.hooks.CoverageSnapshot
}

// Interceptors returns the client interceptors.
func (c *CoverageSnapshotClient) Interceptors() []Interceptor {
	return c.inters.CoverageSnapshot
}

func (c *CoverageSnapshotClient) mutate(ctx context.Context, m *CoverageSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoverageSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoverageSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoverageSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoverageSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoverageSnapshot mutation op: %q", m.Op())
	}
}

// QARunClient is a client for the QARun schema.
type QARunClient struct {
	config
}

// NewQARunClient returns a client for the QARun from the given config.
func NewQARunClient(c config) *QARunClient {
	return &QARunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `qarun.Hooks(f(g(h())))`.
func (c *QARunClient) Use(hooks ...Hook) {
	c.hooks.QARun = append(c.hooks.QARun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `qarun.Intercept(f(g(h())))`.
func (c *QARunClient) Intercept(interceptors ...Interceptor) {
	c.inters.QARun = append(c.inters.QARun, interceptors...)
}

// Create returns a builder for creating a QARun entity.
func (c *QARunClient) Create() *QARunCreate {
	mutation := newQARunMutation(c.config, OpCreate)
	return &QARunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QARun entities.
func (c *QARunClient) CreateBulk(builders ...*QARunCreate) *QARunCreateBulk {
	return &QARunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QARunClient) MapCreateBulk(slice any, setFunc func(*QARunCreate, int)) *QARunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QARunCreateBulk{err: fmt.Errorf("calling to QARunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QARunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QARunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QARun.
func (c *QARunClient) Update() *QARunUpdate {
	mutation := newQARunMutation(c.config, OpUpdate)
	return &QARunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QARunClient) UpdateOne(_m *QARun) *QARunUpdateOne {
	mutation := newQARunMutation(c.config, OpUpdateOne, withQARun(_m))
	return &QARunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QARunClient) UpdateOneID(id string) *QARunUpdateOne {
	mutation := newQARunMutation(c.config, OpUpdateOne, withQARunID(id))
	return &QARunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QARun.
func (c *QARunClient) Delete() *QARunDelete {
	mutation := newQARunMutation(c.config, OpDelete)
	return &QARunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QARunClient) DeleteOne(_m *QARun) *QARunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QARunClient) DeleteOneID(id string) *QARunDeleteOne {
	builder := c.Delete().Where(qarun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QARunDeleteOne{builder}
}

// Query returns a query builder for QARun.
func (c *QARunClient) Query() *QARunQuery {
	return &QARunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQARun},
		inters: c.Interceptors(),
	}
}

// Get returns a QARun entity by its id.
func (c *QARunClient) Get(ctx context.Context, id string) (*QARun, error) {
	return c.Query().Where(qarun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QARunClient) GetX(ctx context.Context, id string) *QARun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScenarios queries the scenarios edge of a QARun.
func (c *QARunClient) QueryScenarios(_m *QARun) *ScenarioQuery {
	query := (&ScenarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, id),
			sqlgraph.To(scenario.Table, scenario.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qarun.ScenariosTable, qarun.ScenariosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStepResults queries the step_results edge of a QARun.
func (c *QARunClient) QueryStepResults(_m *QARun) *StepResultQuery {
	query := (&StepResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, id),
			sqlgraph.To(stepresult.Table, stepresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qarun.StepResultsTable, qarun.StepResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a QARun.
func (c *QARunClient) QueryEvents(_m *QARun) *RunEventQuery {
	query := (&RunEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, id),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qarun.EventsTable, qarun.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPayload queries the payload edge of a QARun.
func (c *QARunClient) QueryPayload(_m *QARun) *RunPayloadQuery {
	query := (&RunPayloadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, id),
			sqlgraph.To(runpayload.Table, runpayload.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, qarun.PayloadTable, qarun.PayloadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCoverage queries the coverage edge of a QARun.
func (c *QARunClient) QueryCoverage(_m *QARun) *CoverageSnapshotQuery {
	query := (&CoverageSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, id),
			sqlgraph.To(coveragesnapshot.Table, coveragesnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, qarun.CoverageTable, qarun.CoverageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySummary queries the summary edge of a QARun.
func (c *QARunClient) QuerySummary(_m *QARun) *QASummaryQuery {
	query := (&QASummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qarun.Table, qarun.FieldID, id),
			sqlgraph.To(qasummary.Table, qasummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, qarun.SummaryTable, qarun.SummaryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QARunClient) Hooks() []Hook {
	return c.hooks.QARun
}

// Interceptors returns the client interceptors.
func (c *QARunClient) Interceptors() []Interceptor {
	return c.inters.QARun
}

func (c *QARunClient) mutate(ctx context.Context, m *QARunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QARunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QARunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QARunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QARunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QARun mutation op: %q", m.Op())
	}
}

// QASummaryClient is a client for the QASummary schema.
type QASummaryClient struct {
	config
}

// NewQASummaryClient returns a client for the QASummary from the given config.
func NewQASummaryClient(c config) *QASummaryClient {
	return &QASummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `qasummary.Hooks(f(g(h())))`.
func (c *QASummaryClient) Use(hooks ...Hook) {
	c.hooks.QASummary = append(c.hooks.QASummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `qasummary.Intercept(f(g(h())))`.
func (c *QASummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.QASummary = append(c.inters.QASummary, interceptors...)
}

// Create returns a builder for creating a QASummary entity.
func (c *QASummaryClient) Create() *QASummaryCreate {
	mutation := newQASummaryMutation(c.config, OpCreate)
	return &QASummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QASummary entities.
func (c *QASummaryClient) CreateBulk(builders ...*QASummaryCreate) *QASummaryCreateBulk {
	return &QASummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QASummaryClient) MapCreateBulk(slice any, setFunc func(*QASummaryCreate, int)) *QASummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QASummaryCreateBulk{err: fmt.Errorf("calling to QASummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QASummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QASummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QASummary.
func (c *QASummaryClient) Update() *QASummaryUpdate {
	mutation := newQASummaryMutation(c.config, OpUpdate)
	return &QASummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QASummaryClient) UpdateOne(_m *QASummary) *QASummaryUpdateOne {
	mutation := newQASummaryMutation(c.config, OpUpdateOne, withQASummary(_m))
	return &QASummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QASummaryClient) UpdateOneID(id string) *QASummaryUpdateOne {
	mutation := newQASummaryMutation(c.config, OpUpdateOne, withQASummaryID(id))
	return &QASummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QASummary.
func (c *QASummaryClient) Delete() *QASummaryDelete {
	mutation := newQASummaryMutation(c.config, OpDelete)
	return &QASummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QASummaryClient) DeleteOne(_m *QASummary) *QASummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QASummaryClient) DeleteOneID(id string) *QASummaryDeleteOne {
	builder := c.Delete().Where(qasummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QASummaryDeleteOne{builder}
}

// Query returns a query builder for QASummary.
func (c *QASummaryClient) Query() *QASummaryQuery {
	return &QASummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQASummary},
		inters: c.Interceptors(),
	}
}

// Get returns a QASummary entity by its id.
func (c *QASummaryClient) Get(ctx context.Context, id string) (*QASummary, error) {
	return c.Query().Where(qasummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QASummaryClient) GetX(ctx context.Context, id string) *QASummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a QASummary.
func (c *QASummaryClient) QueryRun(_m *QASummary) *QARunQuery {
	query := (&QARunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qasummary.Table, qasummary.FieldID, id),
			sqlgraph.To(qarun.Table, qarun.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, qasummary.RunTable, qasummary.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QASummaryClient) Hooks() []Hook {
	return c.hooks.QASummary
}

// Interceptors returns the client interceptors.
func (c *QASummaryClient) Interceptors() []Interceptor {
	return c.inters.QASummary
}

func (c *QASummaryClient) mutate(ctx context.Context, m *QASummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QASummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QASummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QASummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QASummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QASummary mutation op: %q", m.Op())
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id string) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id string) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id string) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id string) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunEvent.
func (c *RunEventClient) QueryRun(_m *RunEvent) *QARunQuery {
	query := (&QARunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runevent.Table, runevent.FieldID, id),
			sqlgraph.To(qarun.Table, qarun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runevent.RunTable, runevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// RunPayloadClient is a client for the RunPayload schema.
type RunPayloadClient struct {
	config
}

// NewRunPayloadClient returns a client for the RunPayload from the given config.
func NewRunPayloadClient(c config) *RunPayloadClient {
	return &RunPayloadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runpayload.Hooks(f(g(h())))`.
func (c *RunPayloadClient) Use(hooks ...Hook) {
	c.hooks.RunPayload = append(c.hooks.RunPayload, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runpayload.Intercept(f(g(h())))`.
func (c *RunPayloadClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunPayload = append(c.inters.RunPayload, interceptors...)
}

// Create returns a builder for creating a RunPayload entity.
func (c *RunPayloadClient) Create() *RunPayloadCreate {
	mutation := newRunPayloadMutation(c.config, OpCreate)
	return &RunPayloadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunPayload entities.
func (c *RunPayloadClient) CreateBulk(builders ...*RunPayloadCreate) *RunPayloadCreateBulk {
	return &RunPayloadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunPayloadClient) MapCreateBulk(slice any, setFunc func(*RunPayloadCreate, int)) *RunPayloadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunPayloadCreateBulk{err: fmt.Errorf("calling to RunPayloadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunPayloadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunPayloadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunPayload.
func (c *RunPayloadClient) Update() *RunPayloadUpdate {
	mutation := newRunPayloadMutation(c.config, OpUpdate)
	return &RunPayloadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunPayloadClient) UpdateOne(_m *RunPayload) *RunPayloadUpdateOne {
	mutation := newRunPayloadMutation(c.config, OpUpdateOne, withRunPayload(_m))
	return &RunPayloadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunPayloadClient) UpdateOneID(id string) *RunPayloadUpdateOne {
	mutation := newRunPayloadMutation(c.config, OpUpdateOne, withRunPayloadID(id))
	return &RunPayloadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunPayload.
func (c *RunPayloadClient) Delete() *RunPayloadDelete {
	mutation := newRunPayloadMutation(c.config, OpDelete)
	return &RunPayloadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunPayloadClient) DeleteOne(_m *RunPayload) *RunPayloadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunPayloadClient) DeleteOneID(id string) *RunPayloadDeleteOne {
	builder := c.Delete().Where(runpayload.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunPayloadDeleteOne{builder}
}

// Query returns a query builder for RunPayload.
func (c *RunPayloadClient) Query() *RunPayloadQuery {
	return &RunPayloadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunPayload},
		inters: c.Interceptors(),
	}
}

// Get returns a RunPayload entity by its id.
func (c *RunPayloadClient) Get(ctx context.Context, id string) (*RunPayload, error) {
	return c.Query().Where(runpayload.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunPayloadClient) GetX(ctx context.Context, id string) *RunPayload {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunPayload.
func (c *RunPayloadClient) QueryRun(_m *RunPayload) *QARunQuery {
	query := (&QARunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runpayload.Table, runpayload.FieldID, id),
			sqlgraph.To(qarun.Table, qarun.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, runpayload.RunTable, runpayload.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunPayloadClient) Hooks() []Hook {
	return c.hooks.RunPayload
}

// Interceptors returns the client interceptors.
func (c *RunPayloadClient) Interceptors() []Interceptor {
	return c.inters.RunPayload
}

func (c *RunPayloadClient) mutate(ctx context.Context, m *RunPayloadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunPayloadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunPayloadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunPayloadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunPayloadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunPayload mutation op: %q", m.Op())
	}
}

// ScenarioClient is a client for the Scenario schema.
type ScenarioClient struct {
	config
}

// NewScenarioClient returns a client for the Scenario from the given config.
func NewScenarioClient(c config) *ScenarioClient {
	return &ScenarioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scenario.Hooks(f(g(h())))`.
func (c *ScenarioClient) Use(hooks ...Hook) {
	c.hooks.Scenario = append(c.hooks.Scenario, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scenario.Intercept(f(g(h())))`.
func (c *ScenarioClient) Intercept(interceptors ...Interceptor) {
	c.inters.Scenario = append(c.inters.Scenario, interceptors...)
}

// Create returns a builder for creating a Scenario entity.
func (c *ScenarioClient) Create() *ScenarioCreate {
	mutation := newScenarioMutation(c.config, OpCreate)
	return &ScenarioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Scenario entities.
func (c *ScenarioClient) CreateBulk(builders ...*ScenarioCreate) *ScenarioCreateBulk {
	return &ScenarioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScenarioClient) MapCreateBulk(slice any, setFunc func(*ScenarioCreate, int)) *ScenarioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScenarioCreateBulk{err: fmt.Errorf("calling to ScenarioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScenarioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScenarioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Scenario.
func (c *ScenarioClient) Update() *ScenarioUpdate {
	mutation := newScenarioMutation(c.config, OpUpdate)
	return &ScenarioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScenarioClient) UpdateOne(_m *Scenario) *ScenarioUpdateOne {
	mutation := newScenarioMutation(c.config, OpUpdateOne, withScenario(_m))
	return &ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScenarioClient) UpdateOneID(id string) *ScenarioUpdateOne {
	mutation := newScenarioMutation(c.config, OpUpdateOne, withScenarioID(id))
	return &ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Scenario.
func (c *ScenarioClient) Delete() *ScenarioDelete {
	mutation := newScenarioMutation(c.config, OpDelete)
	return &ScenarioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScenarioClient) DeleteOne(_m *Scenario) *ScenarioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScenarioClient) DeleteOneID(id string) *ScenarioDeleteOne {
	builder := c.Delete().Where(scenario.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScenarioDeleteOne{builder}
}

// Query returns a query builder for Scenario.
func (c *ScenarioClient) Query() *ScenarioQuery {
	return &ScenarioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScenario},
		inters: c.Interceptors(),
	}
}

// Get returns a Scenario entity by its id.
func (c *ScenarioClient) Get(ctx context.Context, id string) (*Scenario, error) {
	return c.Query().Where(scenario.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScenarioClient) GetX(ctx context.Context, id string) *Scenario {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Scenario.
func (c *ScenarioClient) QueryRun(_m *Scenario) *QARunQuery {
	query := (&QARunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scenario.Table, scenario.FieldID, id),
			sqlgraph.To(qarun.Table, qarun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scenario.RunTable, scenario.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStepResults queries the step_results edge of a Scenario.
func (c *ScenarioClient) QueryStepResults(_m *Scenario) *StepResultQuery {
	query := (&StepResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scenario.Table, scenario.FieldID, id),
			sqlgraph.To(stepresult.Table, stepresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scenario.StepResultsTable, scenario.StepResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScenarioClient) Hooks() []Hook {
	return c.hooks.Scenario
}

// Interceptors returns the client interceptors.
func (c *ScenarioClient) Interceptors() []Interceptor {
	return c.inters.Scenario
}

func (c *ScenarioClient) mutate(ctx context.Context, m *ScenarioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScenarioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScenarioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScenarioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Scenario mutation op: %q", m.Op())
	}
}

// StepResultClient is a client for the StepResult schema.
type StepResultClient struct {
	config
}

// NewStepResultClient returns a client for the StepResult from the given config.
func NewStepResultClient(c config) *StepResultClient {
	return &StepResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepresult.Hooks(f(g(h())))`.
func (c *StepResultClient) Use(hooks ...Hook) {
	c.hooks.StepResult = append(c.hooks.StepResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepresult.Intercept(f(g(h())))`.
func (c *StepResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepResult = append(c.inters.StepResult, interceptors...)
}

// Create returns a builder for creating a StepResult entity.
func (c *StepResultClient) Create() *StepResultCreate {
	mutation := newStepResultMutation(c.config, OpCreate)
	return &StepResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepResult entities.
func (c *StepResultClient) CreateBulk(builders ...*StepResultCreate) *StepResultCreateBulk {
	return &StepResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepResultClient) MapCreateBulk(slice any, setFunc func(*StepResultCreate, int)) *StepResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepResultCreateBulk{err: fmt.Errorf("calling to StepResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepResult.
func (c *StepResultClient) Update() *StepResultUpdate {
	mutation := newStepResultMutation(c.config, OpUpdate)
	return &StepResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepResultClient) UpdateOne(_m *StepResult) *StepResultUpdateOne {
	mutation := newStepResultMutation(c.config, OpUpdateOne, withStepResult(_m))
	return &StepResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepResultClient) UpdateOneID(id string) *StepResultUpdateOne {
	mutation := newStepResultMutation(c.config, OpUpdateOne, withStepResultID(id))
	return &StepResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepResult.
func (c *StepResultClient) Delete() *StepResultDelete {
	mutation := newStepResultMutation(c.config, OpDelete)
	return &StepResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepResultClient) DeleteOne(_m *StepResult) *StepResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepResultClient) DeleteOneID(id string) *StepResultDeleteOne {
	builder := c.Delete().Where(stepresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepResultDeleteOne{builder}
}

// Query returns a query builder for StepResult.
func (c *StepResultClient) Query() *StepResultQuery {
	return &StepResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepResult},
		inters: c.Interceptors(),
	}
}

// Get returns a StepResult entity by its id.
func (c *StepResultClient) Get(ctx context.Context, id string) (*StepResult, error) {
	return c.Query().Where(stepresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepResultClient) GetX(ctx context.Context, id string) *StepResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a StepResult.
func (c *StepResultClient) QueryRun(_m *StepResult) *QARunQuery {
	query := (&QARunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepresult.Table, stepresult.FieldID, id),
			sqlgraph.To(qarun.Table, qarun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepresult.RunTable, stepresult.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScenario queries the scenario edge of a StepResult.
func (c *StepResultClient) QueryScenario(_m *StepResult) *ScenarioQuery {
	query := (&ScenarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepresult.Table, stepresult.FieldID, id),
			sqlgraph.To(scenario.Table, scenario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepresult.ScenarioTable, stepresult.ScenarioColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepResultClient) Hooks() []Hook {
	return c.hooks.StepResult
}

// Interceptors returns the client interceptors.
func (c *StepResultClient) Interceptors() []Interceptor {
	return c.inters.StepResult
}

func (c *StepResultClient) mutate(ctx context.Context, m *StepResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CoverageSnapshot, QARun, QASummary, RunEvent, RunPayload, Scenario,
		StepResult []ent.Hook
	}
	inters struct {
		CoverageSnapshot, QARun, QASummary, RunEvent, RunPayload, Scenario,
		StepResult []ent.Interceptor
	}
)
