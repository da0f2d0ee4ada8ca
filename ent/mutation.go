// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/predicate"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCoverageSnapshot = "CoverageSnapshot"
	TypeQARun            = "QARun"
	TypeQASummary        = "QASummary"
	TypeRunEvent         = "RunEvent"
	TypeRunPayload       = "RunPayload"
	TypeScenario         = "Scenario"
	TypeStepResult       = "StepResult"
)

// CoverageSnapshotMutation represents an operation that mutates the CoverageSnapshot nodes in the graph.
type CoverageSnapshotMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	ops_total           *int
	addops_total        *int
	ops_covered         *int
	addops_covered      *int
	ops_failed          *int
	addops_failed       *int
	uncovered_ops       *[]models.OperationRef
	appenduncovered_ops []models.OperationRef
	per_op_status       *map[string]models.OperationOutcome
	scenarios_passed    *int
	addscenarios_passed *int
	scenarios_failed    *int
	addscenarios_failed *int
	computed_at         *time.Time
	clearedFields       map[string]struct{}
	run                 *string
	clearedrun          bool
	done                bool
	oldValue            func(context.Context) (*CoverageSnapshot, error)
	predicates          []predicate.CoverageSnapshot
}

var _ ent.Mutation = (*CoverageSnapshotMutation)(nil)

// coveragesnapshotOption allows management of the mutation configuration using functional options.
type coveragesnapshotOption func(*CoverageSnapshotMutation)

// newCoverageSnapshotMutation creates new mutation for the CoverageSnapshot entity.
func newCoverageSnapshotMutation(c config, op Op, opts ...coveragesnapshotOption) *CoverageSnapshotMutation {
	m := &CoverageSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeCoverageSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoverageSnapshotID sets the ID field of the mutation.
func withCoverageSnapshotID(id string) coveragesnapshotOption {
	return func(m *CoverageSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *CoverageSnapshot
		)
		m.oldValue = func(ctx context.Context) (*CoverageSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoverageSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoverageSnapshot sets the old CoverageSnapshot of the mutation.
func withCoverageSnapshot(node *CoverageSnapshot) coveragesnapshotOption {
	return func(m *CoverageSnapshotMutation) {
		m.oldValue = func(context.Context) (*CoverageSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoverageSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoverageSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CoverageSnapshot entities.
func (m *CoverageSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoverageSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoverageSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoverageSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *CoverageSnapshotMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *CoverageSnapshotMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *CoverageSnapshotMutation) ResetRunID() {
	m.run = nil
}

// SetOpsTotal sets the "ops_total" field.
func (m *CoverageSnapshotMutation) SetOpsTotal(i int) {
	m.ops_total = &i
	m.addops_total = nil
}

// OpsTotal returns the value of the "ops_total" field in the mutation.
func (m *CoverageSnapshotMutation) OpsTotal() (r int, exists bool) {
	v := m.ops_total
	if v == nil {
		return
	}
	return *v, true
}

// OldOpsTotal returns the old "ops_total" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldOpsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpsTotal: %w", err)
	}
	return oldValue.OpsTotal, nil
}

// AddOpsTotal adds i to the "ops_total" field.
func (m *CoverageSnapshotMutation) AddOpsTotal(i int) {
	if m.addops_total != nil {
		*m.addops_total += i
	} else {
		m.addops_total = &i
	}
}

// AddedOpsTotal returns the value that was added to the "ops_total" field in this mutation.
func (m *CoverageSnapshotMutation) AddedOpsTotal() (r int, exists bool) {
	v := m.addops_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetOpsTotal resets all changes to the "ops_total" field.
func (m *CoverageSnapshotMutation) ResetOpsTotal() {
	m.ops_total = nil
	m.addops_total = nil
}

// SetOpsCovered sets the "ops_covered" field.
func (m *CoverageSnapshotMutation) SetOpsCovered(i int) {
	m.ops_covered = &i
	m.addops_covered = nil
}

// OpsCovered returns the value of the "ops_covered" field in the mutation.
func (m *CoverageSnapshotMutation) OpsCovered() (r int, exists bool) {
	v := m.ops_covered
	if v == nil {
		return
	}
	return *v, true
}

// OldOpsCovered returns the old "ops_covered" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldOpsCovered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpsCovered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpsCovered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpsCovered: %w", err)
	}
	return oldValue.OpsCovered, nil
}

// AddOpsCovered adds i to the "ops_covered" field.
func (m *CoverageSnapshotMutation) AddOpsCovered(i int) {
	if m.addops_covered != nil {
		*m.addops_covered += i
	} else {
		m.addops_covered = &i
	}
}

// AddedOpsCovered returns the value that was added to the "ops_covered" field in this mutation.
func (m *CoverageSnapshotMutation) AddedOpsCovered() (r int, exists bool) {
	v := m.addops_covered
	if v == nil {
		return
	}
	return *v, true
}

// ResetOpsCovered resets all changes to the "ops_covered" field.
func (m *CoverageSnapshotMutation) ResetOpsCovered() {
	m.ops_covered = nil
	m.addops_covered = nil
}

// SetOpsFailed sets the "ops_failed" field.
func (m *CoverageSnapshotMutation) SetOpsFailed(i int) {
	m.ops_failed = &i
	m.addops_failed = nil
}

// OpsFailed returns the value of the "ops_failed" field in the mutation.
func (m *CoverageSnapshotMutation) OpsFailed() (r int, exists bool) {
	v := m.ops_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldOpsFailed returns the old "ops_failed" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldOpsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpsFailed: %w", err)
	}
	return oldValue.OpsFailed, nil
}

// AddOpsFailed adds i to the "ops_failed" field.
func (m *CoverageSnapshotMutation) AddOpsFailed(i int) {
	if m.addops_failed != nil {
		*m.addops_failed += i
	} else {
		m.addops_failed = &i
	}
}

// AddedOpsFailed returns the value that was added to the "ops_failed" field in this mutation.
func (m *CoverageSnapshotMutation) AddedOpsFailed() (r int, exists bool) {
	v := m.addops_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetOpsFailed resets all changes to the "ops_failed" field.
func (m *CoverageSnapshotMutation) ResetOpsFailed() {
	m.ops_failed = nil
	m.addops_failed = nil
}

// SetUncoveredOps sets the "uncovered_ops" field.
func (m *CoverageSnapshotMutation) SetUncoveredOps(mr []models.OperationRef) {
	m.uncovered_ops = &mr
	m.appenduncovered_ops = nil
}

// UncoveredOps returns the value of the "uncovered_ops" field in the mutation.
func (m *CoverageSnapshotMutation) UncoveredOps() (r []models.OperationRef, exists bool) {
	v := m.uncovered_ops
	if v == nil {
		return
	}
	return *v, true
}

// OldUncoveredOps returns the old "uncovered_ops" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldUncoveredOps(ctx context.Context) (v []models.OperationRef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUncoveredOps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUncoveredOps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUncoveredOps: %w", err)
	}
	return oldValue.UncoveredOps, nil
}

// AppendUncoveredOps adds mr to the "uncovered_ops" field.
func (m *CoverageSnapshotMutation) AppendUncoveredOps(mr []models.OperationRef) {
	m.appenduncovered_ops = append(m.appenduncovered_ops, mr...)
}

// AppendedUncoveredOps returns the list of values that were appended to the "uncovered_ops" field in this mutation.
func (m *CoverageSnapshotMutation) AppendedUncoveredOps() ([]models.OperationRef, bool) {
	if len(m.appenduncovered_ops) == 0 {
		return nil, false
	}
	return m.appenduncovered_ops, true
}

// ClearUncoveredOps clears the value of the "uncovered_ops" field.
func (m *CoverageSnapshotMutation) ClearUncoveredOps() {
	m.uncovered_ops = nil
	m.appenduncovered_ops = nil
	m.clearedFields[coveragesnapshot.FieldUncoveredOps] = struct{}{}
}

// UncoveredOpsCleared returns if the "uncovered_ops" field was cleared in this mutation.
func (m *CoverageSnapshotMutation) UncoveredOpsCleared() bool {
	_, ok := m.clearedFields[coveragesnapshot.FieldUncoveredOps]
	return ok
}

// ResetUncoveredOps resets all changes to the "uncovered_ops" field.
func (m *CoverageSnapshotMutation) ResetUncoveredOps() {
	m.uncovered_ops = nil
	m.appenduncovered_ops = nil
	delete(m.clearedFields, coveragesnapshot.FieldUncoveredOps)
}

// SetPerOpStatus sets the "per_op_status" field.
func (m *CoverageSnapshotMutation) SetPerOpStatus(mo map[string]models.OperationOutcome) {
	m.per_op_status = &mo
}

// PerOpStatus returns the value of the "per_op_status" field in the mutation.
func (m *CoverageSnapshotMutation) PerOpStatus() (r map[string]models.OperationOutcome, exists bool) {
	v := m.per_op_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPerOpStatus returns the old "per_op_status" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldPerOpStatus(ctx context.Context) (v map[string]models.OperationOutcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerOpStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerOpStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerOpStatus: %w", err)
	}
	return oldValue.PerOpStatus, nil
}

// ClearPerOpStatus clears the value of the "per_op_status" field.
func (m *CoverageSnapshotMutation) ClearPerOpStatus() {
	m.per_op_status = nil
	m.clearedFields[coveragesnapshot.FieldPerOpStatus] = struct{}{}
}

// PerOpStatusCleared returns if the "per_op_status" field was cleared in this mutation.
func (m *CoverageSnapshotMutation) PerOpStatusCleared() bool {
	_, ok := m.clearedFields[coveragesnapshot.FieldPerOpStatus]
	return ok
}

// ResetPerOpStatus resets all changes to the "per_op_status" field.
func (m *CoverageSnapshotMutation) ResetPerOpStatus() {
	m.per_op_status = nil
	delete(m.clearedFields, coveragesnapshot.FieldPerOpStatus)
}

// SetScenariosPassed sets the "scenarios_passed" field.
func (m *CoverageSnapshotMutation) SetScenariosPassed(i int) {
	m.scenarios_passed = &i
	m.addscenarios_passed = nil
}

// ScenariosPassed returns the value of the "scenarios_passed" field in the mutation.
func (m *CoverageSnapshotMutation) ScenariosPassed() (r int, exists bool) {
	v := m.scenarios_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldScenariosPassed returns the old "scenarios_passed" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldScenariosPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenariosPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenariosPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenariosPassed: %w", err)
	}
	return oldValue.ScenariosPassed, nil
}

// AddScenariosPassed adds i to the "scenarios_passed" field.
func (m *CoverageSnapshotMutation) AddScenariosPassed(i int) {
	if m.addscenarios_passed != nil {
		*m.addscenarios_passed += i
	} else {
		m.addscenarios_passed = &i
	}
}

// AddedScenariosPassed returns the value that was added to the "scenarios_passed" field in this mutation.
func (m *CoverageSnapshotMutation) AddedScenariosPassed() (r int, exists bool) {
	v := m.addscenarios_passed
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenariosPassed resets all changes to the "scenarios_passed" field.
func (m *CoverageSnapshotMutation) ResetScenariosPassed() {
	m.scenarios_passed = nil
	m.addscenarios_passed = nil
}

// SetScenariosFailed sets the "scenarios_failed" field.
func (m *CoverageSnapshotMutation) SetScenariosFailed(i int) {
	m.scenarios_failed = &i
	m.addscenarios_failed = nil
}

// ScenariosFailed returns the value of the "scenarios_failed" field in the mutation.
func (m *CoverageSnapshotMutation) ScenariosFailed() (r int, exists bool) {
	v := m.scenarios_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldScenariosFailed returns the old "scenarios_failed" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldScenariosFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenariosFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenariosFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenariosFailed: %w", err)
	}
	return oldValue.ScenariosFailed, nil
}

// AddScenariosFailed adds i to the "scenarios_failed" field.
func (m *CoverageSnapshotMutation) AddScenariosFailed(i int) {
	if m.addscenarios_failed != nil {
		*m.addscenarios_failed += i
	} else {
		m.addscenarios_failed = &i
	}
}

// AddedScenariosFailed returns the value that was added to the "scenarios_failed" field in this mutation.
func (m *CoverageSnapshotMutation) AddedScenariosFailed() (r int, exists bool) {
	v := m.addscenarios_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenariosFailed resets all changes to the "scenarios_failed" field.
func (m *CoverageSnapshotMutation) ResetScenariosFailed() {
	m.scenarios_failed = nil
	m.addscenarios_failed = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *CoverageSnapshotMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *CoverageSnapshotMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the CoverageSnapshot entity.
// If the CoverageSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageSnapshotMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *CoverageSnapshotMutation) ResetComputedAt() {
	m.computed_at = nil
}

// ClearRun clears the "run" edge to the QARun entity.
func (m *CoverageSnapshotMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[coveragesnapshot.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the QARun entity was cleared.
func (m *CoverageSnapshotMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *CoverageSnapshotMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *CoverageSnapshotMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the CoverageSnapshotMutation builder.
func (m *CoverageSnapshotMutation) Where(ps ...predicate.CoverageSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoverageSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoverageSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoverageSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoverageSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoverageSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoverageSnapshot).
func (m *CoverageSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoverageSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run != nil {
		fields = append(fields, coveragesnapshot.FieldRunID)
	}
	if m.ops_total != nil {
		fields = append(fields, coveragesnapshot.FieldOpsTotal)
	}
	if m.ops_covered != nil {
		fields = append(fields, coveragesnapshot.FieldOpsCovered)
	}
	if m.ops_failed != nil {
		fields = append(fields, coveragesnapshot.FieldOpsFailed)
	}
	if m.uncovered_ops != nil {
		fields = append(fields, coveragesnapshot.FieldUncoveredOps)
	}
	if m.per_op_status != nil {
		fields = append(fields, coveragesnapshot.FieldPerOpStatus)
	}
	if m.scenarios_passed != nil {
		fields = append(fields, coveragesnapshot.FieldScenariosPassed)
	}
	if m.scenarios_failed != nil {
		fields = append(fields, coveragesnapshot.FieldScenariosFailed)
	}
	if m.computed_at != nil {
		fields = append(fields, coveragesnapshot.FieldComputedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoverageSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coveragesnapshot.FieldRunID:
		return m.RunID()
	case coveragesnapshot.FieldOpsTotal:
		return m.OpsTotal()
	case coveragesnapshot.FieldOpsCovered:
		return m.OpsCovered()
	case coveragesnapshot.FieldOpsFailed:
		return m.OpsFailed()
	case coveragesnapshot.FieldUncoveredOps:
		return m.UncoveredOps()
	case coveragesnapshot.FieldPerOpStatus:
		return m.PerOpStatus()
	case coveragesnapshot.FieldScenariosPassed:
		return m.ScenariosPassed()
	case coveragesnapshot.FieldScenariosFailed:
		return m.ScenariosFailed()
	case coveragesnapshot.FieldComputedAt:
		return m.ComputedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoverageSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coveragesnapshot.FieldRunID:
		return m.OldRunID(ctx)
	case coveragesnapshot.FieldOpsTotal:
		return m.OldOpsTotal(ctx)
	case coveragesnapshot.FieldOpsCovered:
		return m.OldOpsCovered(ctx)
	case coveragesnapshot.FieldOpsFailed:
		return m.OldOpsFailed(ctx)
	case coveragesnapshot.FieldUncoveredOps:
		return m.OldUncoveredOps(ctx)
	case coveragesnapshot.FieldPerOpStatus:
		return m.OldPerOpStatus(ctx)
	case coveragesnapshot.FieldScenariosPassed:
		return m.OldScenariosPassed(ctx)
	case coveragesnapshot.FieldScenariosFailed:
		return m.OldScenariosFailed(ctx)
	case coveragesnapshot.FieldComputedAt:
		return m.OldComputedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CoverageSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoverageSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coveragesnapshot.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case coveragesnapshot.FieldOpsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpsTotal(v)
		return nil
	case coveragesnapshot.FieldOpsCovered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpsCovered(v)
		return nil
	case coveragesnapshot.FieldOpsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpsFailed(v)
		return nil
	case coveragesnapshot.FieldUncoveredOps:
		v, ok := value.([]models.OperationRef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUncoveredOps(v)
		return nil
	case coveragesnapshot.FieldPerOpStatus:
		v, ok := value.(map[string]models.OperationOutcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerOpStatus(v)
		return nil
	case coveragesnapshot.FieldScenariosPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenariosPassed(v)
		return nil
	case coveragesnapshot.FieldScenariosFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenariosFailed(v)
		return nil
	case coveragesnapshot.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CoverageSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoverageSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addops_total != nil {
		fields = append(fields, coveragesnapshot.FieldOpsTotal)
	}
	if m.addops_covered != nil {
		fields = append(fields, coveragesnapshot.FieldOpsCovered)
	}
	if m.addops_failed != nil {
		fields = append(fields, coveragesnapshot.FieldOpsFailed)
	}
	if m.addscenarios_passed != nil {
		fields = append(fields, coveragesnapshot.FieldScenariosPassed)
	}
	if m.addscenarios_failed != nil {
		fields = append(fields, coveragesnapshot.FieldScenariosFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoverageSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coveragesnapshot.FieldOpsTotal:
		return m.AddedOpsTotal()
	case coveragesnapshot.FieldOpsCovered:
		return m.AddedOpsCovered()
	case coveragesnapshot.FieldOpsFailed:
		return m.AddedOpsFailed()
	case coveragesnapshot.FieldScenariosPassed:
		return m.AddedScenariosPassed()
	case coveragesnapshot.FieldScenariosFailed:
		return m.AddedScenariosFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoverageSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coveragesnapshot.FieldOpsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpsTotal(v)
		return nil
	case coveragesnapshot.FieldOpsCovered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpsCovered(v)
		return nil
	case coveragesnapshot.FieldOpsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpsFailed(v)
		return nil
	case coveragesnapshot.FieldScenariosPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenariosPassed(v)
		return nil
	case coveragesnapshot.FieldScenariosFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenariosFailed(v)
		return nil
	}
	return fmt.Errorf("unknown CoverageSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoverageSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(coveragesnapshot.FieldUncoveredOps) {
		fields = append(fields, coveragesnapshot.FieldUncoveredOps)
	}
	if m.FieldCleared(coveragesnapshot.FieldPerOpStatus) {
		fields = append(fields, coveragesnapshot.FieldPerOpStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoverageSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoverageSnapshotMutation) ClearField(name string) error {
	switch name {
	case coveragesnapshot.FieldUncoveredOps:
		m.ClearUncoveredOps()
		return nil
	case coveragesnapshot.FieldPerOpStatus:
		m.ClearPerOpStatus()
		return nil
	}
	return fmt.Errorf("unknown CoverageSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoverageSnapshotMutation) ResetField(name string) error {
	switch name {
	case coveragesnapshot.FieldRunID:
		m.ResetRunID()
		return nil
	case coveragesnapshot.FieldOpsTotal:
		m.ResetOpsTotal()
		return nil
	case coveragesnapshot.FieldOpsCovered:
		m.ResetOpsCovered()
		return nil
	case coveragesnapshot.FieldOpsFailed:
		m.ResetOpsFailed()
		return nil
	case coveragesnapshot.FieldUncoveredOps:
		m.ResetUncoveredOps()
		return nil
	case coveragesnapshot.FieldPerOpStatus:
		m.ResetPerOpStatus()
		return nil
	case coveragesnapshot.FieldScenariosPassed:
		m.ResetScenariosPassed()
		return nil
	case coveragesnapshot.FieldScenariosFailed:
		m.ResetScenariosFailed()
		return nil
	case coveragesnapshot.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	}
	return fmt.Errorf("unknown CoverageSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoverageSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, coveragesnapshot.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoverageSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case coveragesnapshot.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoverageSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoverageSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoverageSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, coveragesnapshot.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoverageSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case coveragesnapshot.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoverageSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case coveragesnapshot.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown CoverageSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoverageSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case coveragesnapshot.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown CoverageSnapshot edge %s", name)
}

// QARunMutation represents an operation that mutates the QARun nodes in the graph.
type QARunMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	description         *string
	requirement_text    *string
	spec_source         *qarun.SpecSource
	spec_url            *string
	spec_inline         *string
	spec_hash           *string
	base_url            *string
	mode                *qarun.Mode
	_config             *models.RunConfig
	status              *qarun.Status
	triggered_by        *string
	replay_of           *string
	error_message       *string
	error_kind          *string
	worker_id           *string
	claimed_at          *time.Time
	heartbeat_at        *time.Time
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	duration_ms         *int64
	addduration_ms      *int64
	clearedFields       map[string]struct{}
	scenarios           map[string]struct{}
	removedscenarios    map[string]struct{}
	clearedscenarios    bool
	step_results        map[string]struct{}
	removedstep_results map[string]struct{}
	clearedstep_results bool
	events              map[string]struct{}
	removedevents       map[string]struct{}
	clearedevents       bool
	payload             *string
	clearedpayload      bool
	coverage            *string
	clearedcoverage     bool
	summary             *string
	clearedsummary      bool
	done                bool
	oldValue            func(context.Context) (*QARun, error)
	predicates          []predicate.QARun
}

var _ ent.Mutation = (*QARunMutation)(nil)

// qarunOption allows management of the mutation configuration using functional options.
type qarunOption func(*QARunMutation)

// newQARunMutation creates new mutation for the QARun entity.
func newQARunMutation(c config, op Op, opts ...qarunOption) *QARunMutation {
	m := &QARunMutation{
		config:        c,
		op:            op,
		typ:           TypeQARun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQARunID sets the ID field of the mutation.
func withQARunID(id string) qarunOption {
	return func(m *QARunMutation) {
		var (
			err   error
			once  sync.Once
			value *QARun
		)
		m.oldValue = func(ctx context.Context) (*QARun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QARun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQARun sets the old QARun of the mutation.
func withQARun(node *QARun) qarunOption {
	return func(m *QARunMutation) {
		m.oldValue = func(context.Context) (*QARun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QARunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QARunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QARun entities.
func (m *QARunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QARunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QARunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QARun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *QARunMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *QARunMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *QARunMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *QARunMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *QARunMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *QARunMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[qarun.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *QARunMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[qarun.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *QARunMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, qarun.FieldDescription)
}

// SetRequirementText sets the "requirement_text" field.
func (m *QARunMutation) SetRequirementText(s string) {
	m.requirement_text = &s
}

// RequirementText returns the value of the "requirement_text" field in the mutation.
func (m *QARunMutation) RequirementText() (r string, exists bool) {
	v := m.requirement_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirementText returns the old "requirement_text" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldRequirementText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirementText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirementText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirementText: %w", err)
	}
	return oldValue.RequirementText, nil
}

// ClearRequirementText clears the value of the "requirement_text" field.
func (m *QARunMutation) ClearRequirementText() {
	m.requirement_text = nil
	m.clearedFields[qarun.FieldRequirementText] = struct{}{}
}

// RequirementTextCleared returns if the "requirement_text" field was cleared in this mutation.
func (m *QARunMutation) RequirementTextCleared() bool {
	_, ok := m.clearedFields[qarun.FieldRequirementText]
	return ok
}

// ResetRequirementText resets all changes to the "requirement_text" field.
func (m *QARunMutation) ResetRequirementText() {
	m.requirement_text = nil
	delete(m.clearedFields, qarun.FieldRequirementText)
}

// SetSpecSource sets the "spec_source" field.
func (m *QARunMutation) SetSpecSource(qs qarun.SpecSource) {
	m.spec_source = &qs
}

// SpecSource returns the value of the "spec_source" field in the mutation.
func (m *QARunMutation) SpecSource() (r qarun.SpecSource, exists bool) {
	v := m.spec_source
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecSource returns the old "spec_source" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldSpecSource(ctx context.Context) (v qarun.SpecSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecSource: %w", err)
	}
	return oldValue.SpecSource, nil
}

// ResetSpecSource resets all changes to the "spec_source" field.
func (m *QARunMutation) ResetSpecSource() {
	m.spec_source = nil
}

// SetSpecURL sets the "spec_url" field.
func (m *QARunMutation) SetSpecURL(s string) {
	m.spec_url = &s
}

// SpecURL returns the value of the "spec_url" field in the mutation.
func (m *QARunMutation) SpecURL() (r string, exists bool) {
	v := m.spec_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecURL returns the old "spec_url" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldSpecURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecURL: %w", err)
	}
	return oldValue.SpecURL, nil
}

// ClearSpecURL clears the value of the "spec_url" field.
func (m *QARunMutation) ClearSpecURL() {
	m.spec_url = nil
	m.clearedFields[qarun.FieldSpecURL] = struct{}{}
}

// SpecURLCleared returns if the "spec_url" field was cleared in this mutation.
func (m *QARunMutation) SpecURLCleared() bool {
	_, ok := m.clearedFields[qarun.FieldSpecURL]
	return ok
}

// ResetSpecURL resets all changes to the "spec_url" field.
func (m *QARunMutation) ResetSpecURL() {
	m.spec_url = nil
	delete(m.clearedFields, qarun.FieldSpecURL)
}

// SetSpecInline sets the "spec_inline" field.
func (m *QARunMutation) SetSpecInline(s string) {
	m.spec_inline = &s
}

// SpecInline returns the value of the "spec_inline" field in the mutation.
func (m *QARunMutation) SpecInline() (r string, exists bool) {
	v := m.spec_inline
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecInline returns the old "spec_inline" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldSpecInline(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecInline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecInline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecInline: %w", err)
	}
	return oldValue.SpecInline, nil
}

// ClearSpecInline clears the value of the "spec_inline" field.
func (m *QARunMutation) ClearSpecInline() {
	m.spec_inline = nil
	m.clearedFields[qarun.FieldSpecInline] = struct{}{}
}

// SpecInlineCleared returns if the "spec_inline" field was cleared in this mutation.
func (m *QARunMutation) SpecInlineCleared() bool {
	_, ok := m.clearedFields[qarun.FieldSpecInline]
	return ok
}

// ResetSpecInline resets all changes to the "spec_inline" field.
func (m *QARunMutation) ResetSpecInline() {
	m.spec_inline = nil
	delete(m.clearedFields, qarun.FieldSpecInline)
}

// SetSpecHash sets the "spec_hash" field.
func (m *QARunMutation) SetSpecHash(s string) {
	m.spec_hash = &s
}

// SpecHash returns the value of the "spec_hash" field in the mutation.
func (m *QARunMutation) SpecHash() (r string, exists bool) {
	v := m.spec_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecHash returns the old "spec_hash" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldSpecHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecHash: %w", err)
	}
	return oldValue.SpecHash, nil
}

// ClearSpecHash clears the value of the "spec_hash" field.
func (m *QARunMutation) ClearSpecHash() {
	m.spec_hash = nil
	m.clearedFields[qarun.FieldSpecHash] = struct{}{}
}

// SpecHashCleared returns if the "spec_hash" field was cleared in this mutation.
func (m *QARunMutation) SpecHashCleared() bool {
	_, ok := m.clearedFields[qarun.FieldSpecHash]
	return ok
}

// ResetSpecHash resets all changes to the "spec_hash" field.
func (m *QARunMutation) ResetSpecHash() {
	m.spec_hash = nil
	delete(m.clearedFields, qarun.FieldSpecHash)
}

// SetBaseURL sets the "base_url" field.
func (m *QARunMutation) SetBaseURL(s string) {
	m.base_url = &s
}

// BaseURL returns the value of the "base_url" field in the mutation.
func (m *QARunMutation) BaseURL() (r string, exists bool) {
	v := m.base_url
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseURL returns the old "base_url" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldBaseURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseURL: %w", err)
	}
	return oldValue.BaseURL, nil
}

// ResetBaseURL resets all changes to the "base_url" field.
func (m *QARunMutation) ResetBaseURL() {
	m.base_url = nil
}

// SetMode sets the "mode" field.
func (m *QARunMutation) SetMode(q qarun.Mode) {
	m.mode = &q
}

// Mode returns the value of the "mode" field in the mutation.
func (m *QARunMutation) Mode() (r qarun.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldMode(ctx context.Context) (v qarun.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *QARunMutation) ResetMode() {
	m.mode = nil
}

// SetConfig sets the "config" field.
func (m *QARunMutation) SetConfig(mc models.RunConfig) {
	m._config = &mc
}

// Config returns the value of the "config" field in the mutation.
func (m *QARunMutation) Config() (r models.RunConfig, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldConfig(ctx context.Context) (v models.RunConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *QARunMutation) ResetConfig() {
	m._config = nil
}

// SetStatus sets the "status" field.
func (m *QARunMutation) SetStatus(q qarun.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QARunMutation) Status() (r qarun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldStatus(ctx context.Context) (v qarun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QARunMutation) ResetStatus() {
	m.status = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *QARunMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *QARunMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (m *QARunMutation) ClearTriggeredBy() {
	m.triggered_by = nil
	m.clearedFields[qarun.FieldTriggeredBy] = struct{}{}
}

// TriggeredByCleared returns if the "triggered_by" field was cleared in this mutation.
func (m *QARunMutation) TriggeredByCleared() bool {
	_, ok := m.clearedFields[qarun.FieldTriggeredBy]
	return ok
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *QARunMutation) ResetTriggeredBy() {
	m.triggered_by = nil
	delete(m.clearedFields, qarun.FieldTriggeredBy)
}

// SetReplayOf sets the "replay_of" field.
func (m *QARunMutation) SetReplayOf(s string) {
	m.replay_of = &s
}

// ReplayOf returns the value of the "replay_of" field in the mutation.
func (m *QARunMutation) ReplayOf() (r string, exists bool) {
	v := m.replay_of
	if v == nil {
		return
	}
	return *v, true
}

// OldReplayOf returns the old "replay_of" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldReplayOf(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplayOf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplayOf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplayOf: %w", err)
	}
	return oldValue.ReplayOf, nil
}

// ClearReplayOf clears the value of the "replay_of" field.
func (m *QARunMutation) ClearReplayOf() {
	m.replay_of = nil
	m.clearedFields[qarun.FieldReplayOf] = struct{}{}
}

// ReplayOfCleared returns if the "replay_of" field was cleared in this mutation.
func (m *QARunMutation) ReplayOfCleared() bool {
	_, ok := m.clearedFields[qarun.FieldReplayOf]
	return ok
}

// ResetReplayOf resets all changes to the "replay_of" field.
func (m *QARunMutation) ResetReplayOf() {
	m.replay_of = nil
	delete(m.clearedFields, qarun.FieldReplayOf)
}

// SetErrorMessage sets the "error_message" field.
func (m *QARunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *QARunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *QARunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[qarun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *QARunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[qarun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *QARunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, qarun.FieldErrorMessage)
}

// SetErrorKind sets the "error_kind" field.
func (m *QARunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *QARunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *QARunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[qarun.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *QARunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[qarun.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *QARunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, qarun.FieldErrorKind)
}

// SetWorkerID sets the "worker_id" field.
func (m *QARunMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *QARunMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *QARunMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[qarun.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *QARunMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[qarun.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *QARunMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, qarun.FieldWorkerID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *QARunMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *QARunMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *QARunMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[qarun.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *QARunMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[qarun.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *QARunMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, qarun.FieldClaimedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *QARunMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *QARunMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *QARunMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[qarun.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *QARunMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[qarun.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *QARunMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, qarun.FieldHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *QARunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QARunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QARunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *QARunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *QARunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *QARunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[qarun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *QARunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[qarun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *QARunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, qarun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *QARunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QARunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QARunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[qarun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QARunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[qarun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QARunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, qarun.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *QARunMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *QARunMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the QARun entity.
// If the QARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QARunMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *QARunMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *QARunMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *QARunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[qarun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *QARunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[qarun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *QARunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, qarun.FieldDurationMs)
}

// AddScenarioIDs adds the "scenarios" edge to the Scenario entity by ids.
func (m *QARunMutation) AddScenarioIDs(ids ...string) {
	if m.scenarios == nil {
		m.scenarios = make(map[string]struct{})
	}
	for i := range ids {
		m.scenarios[ids[i]] = struct{}{}
	}
}

// ClearScenarios clears the "scenarios" edge to the Scenario entity.
func (m *QARunMutation) ClearScenarios() {
	m.clearedscenarios = true
}

// ScenariosCleared reports if the "scenarios" edge to the Scenario entity was cleared.
func (m *QARunMutation) ScenariosCleared() bool {
	return m.clearedscenarios
}

// RemoveScenarioIDs removes the "scenarios" edge to the Scenario entity by IDs.
func (m *QARunMutation) RemoveScenarioIDs(ids ...string) {
	if m.removedscenarios == nil {
		m.removedscenarios = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.scenarios, ids[i])
		m.removedscenarios[ids[i]] = struct{}{}
	}
}

// RemovedScenarios returns the removed IDs of the "scenarios" edge to the Scenario entity.
func (m *QARunMutation) RemovedScenariosIDs() (ids []string) {
	for id := range m.removedscenarios {
		ids = append(ids, id)
	}
	return
}

// ScenariosIDs returns the "scenarios" edge IDs in the mutation.
func (m *QARunMutation) ScenariosIDs() (ids []string) {
	for id := range m.scenarios {
		ids = append(ids, id)
	}
	return
}

// ResetScenarios resets all changes to the "scenarios" edge.
func (m *QARunMutation) ResetScenarios() {
	m.scenarios = nil
	m.clearedscenarios = false
	m.removedscenarios = nil
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by ids.
func (m *QARunMutation) AddStepResultIDs(ids ...string) {
	if m.step_results == nil {
		m.step_results = make(map[string]struct{})
	}
	for i := range ids {
		m.step_results[ids[i]] = struct{}{}
	}
}

// ClearStepResults clears the "step_results" edge to the StepResult entity.
func (m *QARunMutation) ClearStepResults() {
	m.clearedstep_results = true
}

// StepResultsCleared reports if the "step_results" edge to the StepResult entity was cleared.
func (m *QARunMutation) StepResultsCleared() bool {
	return m.clearedstep_results
}

// RemoveStepResultIDs removes the "step_results" edge to the StepResult entity by IDs.
func (m *QARunMutation) RemoveStepResultIDs(ids ...string) {
	if m.removedstep_results == nil {
		m.removedstep_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.step_results, ids[i])
		m.removedstep_results[ids[i]] = struct{}{}
	}
}

// RemovedStepResults returns the removed IDs of the "step_results" edge to the StepResult entity.
func (m *QARunMutation) RemovedStepResultsIDs() (ids []string) {
	for id := range m.removedstep_results {
		ids = append(ids, id)
	}
	return
}

// StepResultsIDs returns the "step_results" edge IDs in the mutation.
func (m *QARunMutation) StepResultsIDs() (ids []string) {
	for id := range m.step_results {
		ids = append(ids, id)
	}
	return
}

// ResetStepResults resets all changes to the "step_results" edge.
func (m *QARunMutation) ResetStepResults() {
	m.step_results = nil
	m.clearedstep_results = false
	m.removedstep_results = nil
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *QARunMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *QARunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *QARunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *QARunMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *QARunMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *QARunMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *QARunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// SetPayloadID sets the "payload" edge to the RunPayload entity by id.
func (m *QARunMutation) SetPayloadID(id string) {
	m.payload = &id
}

// ClearPayload clears the "payload" edge to the RunPayload entity.
func (m *QARunMutation) ClearPayload() {
	m.clearedpayload = true
}

// PayloadCleared reports if the "payload" edge to the RunPayload entity was cleared.
func (m *QARunMutation) PayloadCleared() bool {
	return m.clearedpayload
}

// PayloadID returns the "payload" edge ID in the mutation.
func (m *QARunMutation) PayloadID() (id string, exists bool) {
	if m.payload != nil {
		return *m.payload, true
	}
	return
}

// PayloadIDs returns the "payload" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PayloadID instead. It exists only for internal usage by the builders.
func (m *QARunMutation) PayloadIDs() (ids []string) {
	if id := m.payload; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPayload resets all changes to the "payload" edge.
func (m *QARunMutation) ResetPayload() {
	m.payload = nil
	m.clearedpayload = false
}

// SetCoverageID sets the "coverage" edge to the CoverageSnapshot entity by id.
func (m *QARunMutation) SetCoverageID(id string) {
	m.coverage = &id
}

// ClearCoverage clears the "coverage" edge to the CoverageSnapshot entity.
func (m *QARunMutation) ClearCoverage() {
	m.clearedcoverage = true
}

// CoverageCleared reports if the "coverage" edge to the CoverageSnapshot entity was cleared.
func (m *QARunMutation) CoverageCleared() bool {
	return m.clearedcoverage
}

// CoverageID returns the "coverage" edge ID in the mutation.
func (m *QARunMutation) CoverageID() (id string, exists bool) {
	if m.coverage != nil {
		return *m.coverage, true
	}
	return
}

// CoverageIDs returns the "coverage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CoverageID instead. It exists only for internal usage by the builders.
func (m *QARunMutation) CoverageIDs() (ids []string) {
	if id := m.coverage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCoverage resets all changes to the "coverage" edge.
func (m *QARunMutation) ResetCoverage() {
	m.coverage = nil
	m.clearedcoverage = false
}

// SetSummaryID sets the "summary" edge to the QASummary entity by id.
func (m *QARunMutation) SetSummaryID(id string) {
	m.summary = &id
}

// ClearSummary clears the "summary" edge to the QASummary entity.
func (m *QARunMutation) ClearSummary() {
	m.clearedsummary = true
}

// SummaryCleared reports if the "summary" edge to the QASummary entity was cleared.
func (m *QARunMutation) SummaryCleared() bool {
	return m.clearedsummary
}

// SummaryID returns the "summary" edge ID in the mutation.
func (m *QARunMutation) SummaryID() (id string, exists bool) {
	if m.summary != nil {
		return *m.summary, true
	}
	return
}

// SummaryIDs returns the "summary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SummaryID instead. It exists only for internal usage by the builders.
func (m *QARunMutation) SummaryIDs() (ids []string) {
	if id := m.summary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSummary resets all changes to the "summary" edge.
func (m *QARunMutation) ResetSummary() {
	m.summary = nil
	m.clearedsummary = false
}

// Where appends a list predicates to the QARunMutation builder.
func (m *QARunMutation) Where(ps ...predicate.QARun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QARunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QARunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QARun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QARunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QARunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QARun).
func (m *QARunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QARunMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.name != nil {
		fields = append(fields, qarun.FieldName)
	}
	if m.description != nil {
		fields = append(fields, qarun.FieldDescription)
	}
	if m.requirement_text != nil {
		fields = append(fields, qarun.FieldRequirementText)
	}
	if m.spec_source != nil {
		fields = append(fields, qarun.FieldSpecSource)
	}
	if m.spec_url != nil {
		fields = append(fields, qarun.FieldSpecURL)
	}
	if m.spec_inline != nil {
		fields = append(fields, qarun.FieldSpecInline)
	}
	if m.spec_hash != nil {
		fields = append(fields, qarun.FieldSpecHash)
	}
	if m.base_url != nil {
		fields = append(fields, qarun.FieldBaseURL)
	}
	if m.mode != nil {
		fields = append(fields, qarun.FieldMode)
	}
	if m._config != nil {
		fields = append(fields, qarun.FieldConfig)
	}
	if m.status != nil {
		fields = append(fields, qarun.FieldStatus)
	}
	if m.triggered_by != nil {
		fields = append(fields, qarun.FieldTriggeredBy)
	}
	if m.replay_of != nil {
		fields = append(fields, qarun.FieldReplayOf)
	}
	if m.error_message != nil {
		fields = append(fields, qarun.FieldErrorMessage)
	}
	if m.error_kind != nil {
		fields = append(fields, qarun.FieldErrorKind)
	}
	if m.worker_id != nil {
		fields = append(fields, qarun.FieldWorkerID)
	}
	if m.claimed_at != nil {
		fields = append(fields, qarun.FieldClaimedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, qarun.FieldHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, qarun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, qarun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, qarun.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, qarun.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QARunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case qarun.FieldName:
		return m.Name()
	case qarun.FieldDescription:
		return m.Description()
	case qarun.FieldRequirementText:
		return m.RequirementText()
	case qarun.FieldSpecSource:
		return m.SpecSource()
	case qarun.FieldSpecURL:
		return m.SpecURL()
	case qarun.FieldSpecInline:
		return m.SpecInline()
	case qarun.FieldSpecHash:
		return m.SpecHash()
	case qarun.FieldBaseURL:
		return m.BaseURL()
	case qarun.FieldMode:
		return m.Mode()
	case qarun.FieldConfig:
		return m.Config()
	case qarun.FieldStatus:
		return m.Status()
	case qarun.FieldTriggeredBy:
		return m.TriggeredBy()
	case qarun.FieldReplayOf:
		return m.ReplayOf()
	case qarun.FieldErrorMessage:
		return m.ErrorMessage()
	case qarun.FieldErrorKind:
		return m.ErrorKind()
	case qarun.FieldWorkerID:
		return m.WorkerID()
	case qarun.FieldClaimedAt:
		return m.ClaimedAt()
	case qarun.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case qarun.FieldCreatedAt:
		return m.CreatedAt()
	case qarun.FieldStartedAt:
		return m.StartedAt()
	case qarun.FieldCompletedAt:
		return m.CompletedAt()
	case qarun.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QARunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case qarun.FieldName:
		return m.OldName(ctx)
	case qarun.FieldDescription:
		return m.OldDescription(ctx)
	case qarun.FieldRequirementText:
		return m.OldRequirementText(ctx)
	case qarun.FieldSpecSource:
		return m.OldSpecSource(ctx)
	case qarun.FieldSpecURL:
		return m.OldSpecURL(ctx)
	case qarun.FieldSpecInline:
		return m.OldSpecInline(ctx)
	case qarun.FieldSpecHash:
		return m.OldSpecHash(ctx)
	case qarun.FieldBaseURL:
		return m.OldBaseURL(ctx)
	case qarun.FieldMode:
		return m.OldMode(ctx)
	case qarun.FieldConfig:
		return m.OldConfig(ctx)
	case qarun.FieldStatus:
		return m.OldStatus(ctx)
	case qarun.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case qarun.FieldReplayOf:
		return m.OldReplayOf(ctx)
	case qarun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case qarun.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case qarun.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case qarun.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case qarun.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case qarun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case qarun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case qarun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case qarun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown QARun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QARunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case qarun.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case qarun.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case qarun.FieldRequirementText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirementText(v)
		return nil
	case qarun.FieldSpecSource:
		v, ok := value.(qarun.SpecSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecSource(v)
		return nil
	case qarun.FieldSpecURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecURL(v)
		return nil
	case qarun.FieldSpecInline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecInline(v)
		return nil
	case qarun.FieldSpecHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecHash(v)
		return nil
	case qarun.FieldBaseURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseURL(v)
		return nil
	case qarun.FieldMode:
		v, ok := value.(qarun.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case qarun.FieldConfig:
		v, ok := value.(models.RunConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case qarun.FieldStatus:
		v, ok := value.(qarun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case qarun.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case qarun.FieldReplayOf:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplayOf(v)
		return nil
	case qarun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case qarun.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case qarun.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case qarun.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case qarun.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case qarun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case qarun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case qarun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case qarun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown QARun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QARunMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, qarun.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QARunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case qarun.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QARunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case qarun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown QARun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QARunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(qarun.FieldDescription) {
		fields = append(fields, qarun.FieldDescription)
	}
	if m.FieldCleared(qarun.FieldRequirementText) {
		fields = append(fields, qarun.FieldRequirementText)
	}
	if m.FieldCleared(qarun.FieldSpecURL) {
		fields = append(fields, qarun.FieldSpecURL)
	}
	if m.FieldCleared(qarun.FieldSpecInline) {
		fields = append(fields, qarun.FieldSpecInline)
	}
	if m.FieldCleared(qarun.FieldSpecHash) {
		fields = append(fields, qarun.FieldSpecHash)
	}
	if m.FieldCleared(qarun.FieldTriggeredBy) {
		fields = append(fields, qarun.FieldTriggeredBy)
	}
	if m.FieldCleared(qarun.FieldReplayOf) {
		fields = append(fields, qarun.FieldReplayOf)
	}
	if m.FieldCleared(qarun.FieldErrorMessage) {
		fields = append(fields, qarun.FieldErrorMessage)
	}
	if m.FieldCleared(qarun.FieldErrorKind) {
		fields = append(fields, qarun.FieldErrorKind)
	}
	if m.FieldCleared(qarun.FieldWorkerID) {
		fields = append(fields, qarun.FieldWorkerID)
	}
	if m.FieldCleared(qarun.FieldClaimedAt) {
		fields = append(fields, qarun.FieldClaimedAt)
	}
	if m.FieldCleared(qarun.FieldHeartbeatAt) {
		fields = append(fields, qarun.FieldHeartbeatAt)
	}
	if m.FieldCleared(qarun.FieldStartedAt) {
		fields = append(fields, qarun.FieldStartedAt)
	}
	if m.FieldCleared(qarun.FieldCompletedAt) {
		fields = append(fields, qarun.FieldCompletedAt)
	}
	if m.FieldCleared(qarun.FieldDurationMs) {
		fields = append(fields, qarun.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QARunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QARunMutation) ClearField(name string) error {
	switch name {
	case qarun.FieldDescription:
		m.ClearDescription()
		return nil
	case qarun.FieldRequirementText:
		m.ClearRequirementText()
		return nil
	case qarun.FieldSpecURL:
		m.ClearSpecURL()
		return nil
	case qarun.FieldSpecInline:
		m.ClearSpecInline()
		return nil
	case qarun.FieldSpecHash:
		m.ClearSpecHash()
		return nil
	case qarun.FieldTriggeredBy:
		m.ClearTriggeredBy()
		return nil
	case qarun.FieldReplayOf:
		m.ClearReplayOf()
		return nil
	case qarun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case qarun.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case qarun.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case qarun.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case qarun.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case qarun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case qarun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case qarun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown QARun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QARunMutation) ResetField(name string) error {
	switch name {
	case qarun.FieldName:
		m.ResetName()
		return nil
	case qarun.FieldDescription:
		m.ResetDescription()
		return nil
	case qarun.FieldRequirementText:
		m.ResetRequirementText()
		return nil
	case qarun.FieldSpecSource:
		m.ResetSpecSource()
		return nil
	case qarun.FieldSpecURL:
		m.ResetSpecURL()
		return nil
	case qarun.FieldSpecInline:
		m.ResetSpecInline()
		return nil
	case qarun.FieldSpecHash:
		m.ResetSpecHash()
		return nil
	case qarun.FieldBaseURL:
		m.ResetBaseURL()
		return nil
	case qarun.FieldMode:
		m.ResetMode()
		return nil
	case qarun.FieldConfig:
		m.ResetConfig()
		return nil
	case qarun.FieldStatus:
		m.ResetStatus()
		return nil
	case qarun.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case qarun.FieldReplayOf:
		m.ResetReplayOf()
		return nil
	case qarun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case qarun.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case qarun.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case qarun.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case qarun.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case qarun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case qarun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case qarun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case qarun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown QARun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QARunMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.scenarios != nil {
		edges = append(edges, qarun.EdgeScenarios)
	}
	if m.step_results != nil {
		edges = append(edges, qarun.EdgeStepResults)
	}
	if m.events != nil {
		edges = append(edges, qarun.EdgeEvents)
	}
	if m.payload != nil {
		edges = append(edges, qarun.EdgePayload)
	}
	if m.coverage != nil {
		edges = append(edges, qarun.EdgeCoverage)
	}
	if m.summary != nil {
		edges = append(edges, qarun.EdgeSummary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QARunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case qarun.EdgeScenarios:
		ids := make([]ent.Value, 0, len(m.scenarios))
		for id := range m.scenarios {
			ids = append(ids, id)
		}
		return ids
	case qarun.EdgeStepResults:
		ids := make([]ent.Value, 0, len(m.step_results))
		for id := range m.step_results {
			ids = append(ids, id)
		}
		return ids
	case qarun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case qarun.EdgePayload:
		if id := m.payload; id != nil {
			return []ent.Value{*id}
		}
	case qarun.EdgeCoverage:
		if id := m.coverage; id != nil {
			return []ent.Value{*id}
		}
	case qarun.EdgeSummary:
		if id := m.summary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QARunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedscenarios != nil {
		edges = append(edges, qarun.EdgeScenarios)
	}
	if m.removedstep_results != nil {
		edges = append(edges, qarun.EdgeStepResults)
	}
	if m.removedevents != nil {
		edges = append(edges, qarun.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QARunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case qarun.EdgeScenarios:
		ids := make([]ent.Value, 0, len(m.removedscenarios))
		for id := range m.removedscenarios {
			ids = append(ids, id)
		}
		return ids
	case qarun.EdgeStepResults:
		ids := make([]ent.Value, 0, len(m.removedstep_results))
		for id := range m.removedstep_results {
			ids = append(ids, id)
		}
		return ids
	case qarun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QARunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedscenarios {
		edges = append(edges, qarun.EdgeScenarios)
	}
	if m.clearedstep_results {
		edges = append(edges, qarun.EdgeStepResults)
	}
	if m.clearedevents {
		edges = append(edges, qarun.EdgeEvents)
	}
	if m.clearedpayload {
		edges = append(edges, qarun.EdgePayload)
	}
	if m.clearedcoverage {
		edges = append(edges, qarun.EdgeCoverage)
	}
	if m.clearedsummary {
		edges = append(edges, qarun.EdgeSummary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QARunMutation) EdgeCleared(name string) bool {
	switch name {
	case qarun.EdgeScenarios:
		return m.clearedscenarios
	case qarun.EdgeStepResults:
		return m.clearedstep_results
	case qarun.EdgeEvents:
		return m.clearedevents
	case qarun.EdgePayload:
		return m.clearedpayload
	case qarun.EdgeCoverage:
		return m.clearedcoverage
	case qarun.EdgeSummary:
		return m.clearedsummary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QARunMutation) ClearEdge(name string) error {
	switch name {
	case qarun.EdgePayload:
		m.ClearPayload()
		return nil
	case qarun.EdgeCoverage:
		m.ClearCoverage()
		return nil
	case qarun.EdgeSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown QARun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QARunMutation) ResetEdge(name string) error {
	switch name {
	case qarun.EdgeScenarios:
		m.ResetScenarios()
		return nil
	case qarun.EdgeStepResults:
		m.ResetStepResults()
		return nil
	case qarun.EdgeEvents:
		m.ResetEvents()
		return nil
	case qarun.EdgePayload:
		m.ResetPayload()
		return nil
	case qarun.EdgeCoverage:
		m.ResetCoverage()
		return nil
	case qarun.EdgeSummary:
		m.ResetSummary()
		return nil
	}
	return fmt.Errorf("unknown QARun edge %s", name)
}

// QASummaryMutation represents an operation that mutates the QASummary nodes in the graph.
type QASummaryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	overall_verdict       *qasummary.OverallVerdict
	passed_scenarios      *int
	addpassed_scenarios   *int
	failed_scenarios      *int
	addfailed_scenarios   *int
	errored_scenarios     *int
	adderrored_scenarios  *int
	narrative_summary     *string
	narrative_source      *qasummary.NarrativeSource
	recommendations       *[]string
	appendrecommendations []string
	quality_score         *int
	addquality_score      *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	run                   *string
	clearedrun            bool
	done                  bool
	oldValue              func(context.Context) (*QASummary, error)
	predicates            []predicate.QASummary
}

var _ ent.Mutation = (*QASummaryMutation)(nil)

// qasummaryOption allows management of the mutation configuration using functional options.
type qasummaryOption func(*QASummaryMutation)

// newQASummaryMutation creates new mutation for the QASummary entity.
func newQASummaryMutation(c config, op Op, opts ...qasummaryOption) *QASummaryMutation {
	m := &QASummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeQASummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQASummaryID sets the ID field of the mutation.
func withQASummaryID(id string) qasummaryOption {
	return func(m *QASummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *QASummary
		)
		m.oldValue = func(ctx context.Context) (*QASummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QASummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQASummary sets the old QASummary of the mutation.
func withQASummary(node *QASummary) qasummaryOption {
	return func(m *QASummaryMutation) {
		m.oldValue = func(context.Context) (*QASummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QASummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QASummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QASummary entities.
func (m *QASummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QASummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QASummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QASummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *QASummaryMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *QASummaryMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *QASummaryMutation) ResetRunID() {
	m.run = nil
}

// SetOverallVerdict sets the "overall_verdict" field.
func (m *QASummaryMutation) SetOverallVerdict(qv qasummary.OverallVerdict) {
	m.overall_verdict = &qv
}

// OverallVerdict returns the value of the "overall_verdict" field in the mutation.
func (m *QASummaryMutation) OverallVerdict() (r qasummary.OverallVerdict, exists bool) {
	v := m.overall_verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallVerdict returns the old "overall_verdict" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldOverallVerdict(ctx context.Context) (v qasummary.OverallVerdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallVerdict: %w", err)
	}
	return oldValue.OverallVerdict, nil
}

// ResetOverallVerdict resets all changes to the "overall_verdict" field.
func (m *QASummaryMutation) ResetOverallVerdict() {
	m.overall_verdict = nil
}

// SetPassedScenarios sets the "passed_scenarios" field.
func (m *QASummaryMutation) SetPassedScenarios(i int) {
	m.passed_scenarios = &i
	m.addpassed_scenarios = nil
}

// PassedScenarios returns the value of the "passed_scenarios" field in the mutation.
func (m *QASummaryMutation) PassedScenarios() (r int, exists bool) {
	v := m.passed_scenarios
	if v == nil {
		return
	}
	return *v, true
}

// OldPassedScenarios returns the old "passed_scenarios" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldPassedScenarios(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassedScenarios is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassedScenarios requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassedScenarios: %w", err)
	}
	return oldValue.PassedScenarios, nil
}

// AddPassedScenarios adds i to the "passed_scenarios" field.
func (m *QASummaryMutation) AddPassedScenarios(i int) {
	if m.addpassed_scenarios != nil {
		*m.addpassed_scenarios += i
	} else {
		m.addpassed_scenarios = &i
	}
}

// AddedPassedScenarios returns the value that was added to the "passed_scenarios" field in this mutation.
func (m *QASummaryMutation) AddedPassedScenarios() (r int, exists bool) {
	v := m.addpassed_scenarios
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassedScenarios resets all changes to the "passed_scenarios" field.
func (m *QASummaryMutation) ResetPassedScenarios() {
	m.passed_scenarios = nil
	m.addpassed_scenarios = nil
}

// SetFailedScenarios sets the "failed_scenarios" field.
func (m *QASummaryMutation) SetFailedScenarios(i int) {
	m.failed_scenarios = &i
	m.addfailed_scenarios = nil
}

// FailedScenarios returns the value of the "failed_scenarios" field in the mutation.
func (m *QASummaryMutation) FailedScenarios() (r int, exists bool) {
	v := m.failed_scenarios
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedScenarios returns the old "failed_scenarios" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldFailedScenarios(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedScenarios is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedScenarios requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedScenarios: %w", err)
	}
	return oldValue.FailedScenarios, nil
}

// AddFailedScenarios adds i to the "failed_scenarios" field.
func (m *QASummaryMutation) AddFailedScenarios(i int) {
	if m.addfailed_scenarios != nil {
		*m.addfailed_scenarios += i
	} else {
		m.addfailed_scenarios = &i
	}
}

// AddedFailedScenarios returns the value that was added to the "failed_scenarios" field in this mutation.
func (m *QASummaryMutation) AddedFailedScenarios() (r int, exists bool) {
	v := m.addfailed_scenarios
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedScenarios resets all changes to the "failed_scenarios" field.
func (m *QASummaryMutation) ResetFailedScenarios() {
	m.failed_scenarios = nil
	m.addfailed_scenarios = nil
}

// SetErroredScenarios sets the "errored_scenarios" field.
func (m *QASummaryMutation) SetErroredScenarios(i int) {
	m.errored_scenarios = &i
	m.adderrored_scenarios = nil
}

// ErroredScenarios returns the value of the "errored_scenarios" field in the mutation.
func (m *QASummaryMutation) ErroredScenarios() (r int, exists bool) {
	v := m.errored_scenarios
	if v == nil {
		return
	}
	return *v, true
}

// OldErroredScenarios returns the old "errored_scenarios" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldErroredScenarios(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErroredScenarios is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErroredScenarios requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErroredScenarios: %w", err)
	}
	return oldValue.ErroredScenarios, nil
}

// AddErroredScenarios adds i to the "errored_scenarios" field.
func (m *QASummaryMutation) AddErroredScenarios(i int) {
	if m.adderrored_scenarios != nil {
		*m.adderrored_scenarios += i
	} else {
		m.adderrored_scenarios = &i
	}
}

// AddedErroredScenarios returns the value that was added to the "errored_scenarios" field in this mutation.
func (m *QASummaryMutation) AddedErroredScenarios() (r int, exists bool) {
	v := m.adderrored_scenarios
	if v == nil {
		return
	}
	return *v, true
}

// ResetErroredScenarios resets all changes to the "errored_scenarios" field.
func (m *QASummaryMutation) ResetErroredScenarios() {
	m.errored_scenarios = nil
	m.adderrored_scenarios = nil
}

// SetNarrativeSummary sets the "narrative_summary" field.
func (m *QASummaryMutation) SetNarrativeSummary(s string) {
	m.narrative_summary = &s
}

// NarrativeSummary returns the value of the "narrative_summary" field in the mutation.
func (m *QASummaryMutation) NarrativeSummary() (r string, exists bool) {
	v := m.narrative_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrativeSummary returns the old "narrative_summary" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldNarrativeSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrativeSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrativeSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrativeSummary: %w", err)
	}
	return oldValue.NarrativeSummary, nil
}

// ResetNarrativeSummary resets all changes to the "narrative_summary" field.
func (m *QASummaryMutation) ResetNarrativeSummary() {
	m.narrative_summary = nil
}

// SetNarrativeSource sets the "narrative_source" field.
func (m *QASummaryMutation) SetNarrativeSource(qs qasummary.NarrativeSource) {
	m.narrative_source = &qs
}

// NarrativeSource returns the value of the "narrative_source" field in the mutation.
func (m *QASummaryMutation) NarrativeSource() (r qasummary.NarrativeSource, exists bool) {
	v := m.narrative_source
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrativeSource returns the old "narrative_source" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldNarrativeSource(ctx context.Context) (v qasummary.NarrativeSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrativeSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrativeSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrativeSource: %w", err)
	}
	return oldValue.NarrativeSource, nil
}

// ResetNarrativeSource resets all changes to the "narrative_source" field.
func (m *QASummaryMutation) ResetNarrativeSource() {
	m.narrative_source = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *QASummaryMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *QASummaryMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *QASummaryMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *QASummaryMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *QASummaryMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[qasummary.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *QASummaryMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[qasummary.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *QASummaryMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, qasummary.FieldRecommendations)
}

// SetQualityScore sets the "quality_score" field.
func (m *QASummaryMutation) SetQualityScore(i int) {
	m.quality_score = &i
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *QASummaryMutation) QualityScore() (r int, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldQualityScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds i to the "quality_score" field.
func (m *QASummaryMutation) AddQualityScore(i int) {
	if m.addquality_score != nil {
		*m.addquality_score += i
	} else {
		m.addquality_score = &i
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *QASummaryMutation) AddedQualityScore() (r int, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *QASummaryMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QASummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QASummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QASummary entity.
// If the QASummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QASummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QASummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the QARun entity.
func (m *QASummaryMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[qasummary.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the QARun entity was cleared.
func (m *QASummaryMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *QASummaryMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *QASummaryMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the QASummaryMutation builder.
func (m *QASummaryMutation) Where(ps ...predicate.QASummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QASummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QASummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QASummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QASummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QASummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QASummary).
func (m *QASummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QASummaryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run != nil {
		fields = append(fields, qasummary.FieldRunID)
	}
	if m.overall_verdict != nil {
		fields = append(fields, qasummary.FieldOverallVerdict)
	}
	if m.passed_scenarios != nil {
		fields = append(fields, qasummary.FieldPassedScenarios)
	}
	if m.failed_scenarios != nil {
		fields = append(fields, qasummary.FieldFailedScenarios)
	}
	if m.errored_scenarios != nil {
		fields = append(fields, qasummary.FieldErroredScenarios)
	}
	if m.narrative_summary != nil {
		fields = append(fields, qasummary.FieldNarrativeSummary)
	}
	if m.narrative_source != nil {
		fields = append(fields, qasummary.FieldNarrativeSource)
	}
	if m.recommendations != nil {
		fields = append(fields, qasummary.FieldRecommendations)
	}
	if m.quality_score != nil {
		fields = append(fields, qasummary.FieldQualityScore)
	}
	if m.created_at != nil {
		fields = append(fields, qasummary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QASummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case qasummary.FieldRunID:
		return m.RunID()
	case qasummary.FieldOverallVerdict:
		return m.OverallVerdict()
	case qasummary.FieldPassedScenarios:
		return m.PassedScenarios()
	case qasummary.FieldFailedScenarios:
		return m.FailedScenarios()
	case qasummary.FieldErroredScenarios:
		return m.ErroredScenarios()
	case qasummary.FieldNarrativeSummary:
		return m.NarrativeSummary()
	case qasummary.FieldNarrativeSource:
		return m.NarrativeSource()
	case qasummary.FieldRecommendations:
		return m.Recommendations()
	case qasummary.FieldQualityScore:
		return m.QualityScore()
	case qasummary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QASummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case qasummary.FieldRunID:
		return m.OldRunID(ctx)
	case qasummary.FieldOverallVerdict:
		return m.OldOverallVerdict(ctx)
	case qasummary.FieldPassedScenarios:
		return m.OldPassedScenarios(ctx)
	case qasummary.FieldFailedScenarios:
		return m.OldFailedScenarios(ctx)
	case qasummary.FieldErroredScenarios:
		return m.OldErroredScenarios(ctx)
	case qasummary.FieldNarrativeSummary:
		return m.OldNarrativeSummary(ctx)
	case qasummary.FieldNarrativeSource:
		return m.OldNarrativeSource(ctx)
	case qasummary.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case qasummary.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case qasummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QASummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QASummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case qasummary.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case qasummary.FieldOverallVerdict:
		v, ok := value.(qasummary.OverallVerdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallVerdict(v)
		return nil
	case qasummary.FieldPassedScenarios:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassedScenarios(v)
		return nil
	case qasummary.FieldFailedScenarios:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedScenarios(v)
		return nil
	case qasummary.FieldErroredScenarios:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErroredScenarios(v)
		return nil
	case qasummary.FieldNarrativeSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrativeSummary(v)
		return nil
	case qasummary.FieldNarrativeSource:
		v, ok := value.(qasummary.NarrativeSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrativeSource(v)
		return nil
	case qasummary.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case qasummary.FieldQualityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case qasummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QASummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QASummaryMutation) AddedFields() []string {
	var fields []string
	if m.addpassed_scenarios != nil {
		fields = append(fields, qasummary.FieldPassedScenarios)
	}
	if m.addfailed_scenarios != nil {
		fields = append(fields, qasummary.FieldFailedScenarios)
	}
	if m.adderrored_scenarios != nil {
		fields = append(fields, qasummary.FieldErroredScenarios)
	}
	if m.addquality_score != nil {
		fields = append(fields, qasummary.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QASummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case qasummary.FieldPassedScenarios:
		return m.AddedPassedScenarios()
	case qasummary.FieldFailedScenarios:
		return m.AddedFailedScenarios()
	case qasummary.FieldErroredScenarios:
		return m.AddedErroredScenarios()
	case qasummary.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QASummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case qasummary.FieldPassedScenarios:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassedScenarios(v)
		return nil
	case qasummary.FieldFailedScenarios:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedScenarios(v)
		return nil
	case qasummary.FieldErroredScenarios:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErroredScenarios(v)
		return nil
	case qasummary.FieldQualityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown QASummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QASummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(qasummary.FieldRecommendations) {
		fields = append(fields, qasummary.FieldRecommendations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QASummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QASummaryMutation) ClearField(name string) error {
	switch name {
	case qasummary.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	}
	return fmt.Errorf("unknown QASummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QASummaryMutation) ResetField(name string) error {
	switch name {
	case qasummary.FieldRunID:
		m.ResetRunID()
		return nil
	case qasummary.FieldOverallVerdict:
		m.ResetOverallVerdict()
		return nil
	case qasummary.FieldPassedScenarios:
		m.ResetPassedScenarios()
		return nil
	case qasummary.FieldFailedScenarios:
		m.ResetFailedScenarios()
		return nil
	case qasummary.FieldErroredScenarios:
		m.ResetErroredScenarios()
		return nil
	case qasummary.FieldNarrativeSummary:
		m.ResetNarrativeSummary()
		return nil
	case qasummary.FieldNarrativeSource:
		m.ResetNarrativeSource()
		return nil
	case qasummary.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case qasummary.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case qasummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QASummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QASummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, qasummary.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QASummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case qasummary.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QASummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QASummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QASummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, qasummary.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QASummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case qasummary.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QASummaryMutation) ClearEdge(name string) error {
	switch name {
	case qasummary.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown QASummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QASummaryMutation) ResetEdge(name string) error {
	switch name {
	case qasummary.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown QASummary edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	seq            *int
	addseq         *int
	_type          *runevent.Type
	payload        *map[string]interface{}
	scenario_id    *string
	step_result_id *string
	error_message  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*RunEvent, error)
	predicates     []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id string) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunEvent entities.
func (m *RunEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetSeq sets the "seq" field.
func (m *RunEventMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *RunEventMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *RunEventMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *RunEventMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *RunEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetType sets the "type" field.
func (m *RunEventMutation) SetType(r runevent.Type) {
	m._type = &r
}

// GetType returns the value of the "type" field in the mutation.
func (m *RunEventMutation) GetType() (r runevent.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldType(ctx context.Context) (v runevent.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *RunEventMutation) ResetType() {
	m._type = nil
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *RunEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[runevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *RunEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[runevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, runevent.FieldPayload)
}

// SetScenarioID sets the "scenario_id" field.
func (m *RunEventMutation) SetScenarioID(s string) {
	m.scenario_id = &s
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *RunEventMutation) ScenarioID() (r string, exists bool) {
	v := m.scenario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldScenarioID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// ClearScenarioID clears the value of the "scenario_id" field.
func (m *RunEventMutation) ClearScenarioID() {
	m.scenario_id = nil
	m.clearedFields[runevent.FieldScenarioID] = struct{}{}
}

// ScenarioIDCleared returns if the "scenario_id" field was cleared in this mutation.
func (m *RunEventMutation) ScenarioIDCleared() bool {
	_, ok := m.clearedFields[runevent.FieldScenarioID]
	return ok
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *RunEventMutation) ResetScenarioID() {
	m.scenario_id = nil
	delete(m.clearedFields, runevent.FieldScenarioID)
}

// SetStepResultID sets the "step_result_id" field.
func (m *RunEventMutation) SetStepResultID(s string) {
	m.step_result_id = &s
}

// StepResultID returns the value of the "step_result_id" field in the mutation.
func (m *RunEventMutation) StepResultID() (r string, exists bool) {
	v := m.step_result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepResultID returns the old "step_result_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldStepResultID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepResultID: %w", err)
	}
	return oldValue.StepResultID, nil
}

// ClearStepResultID clears the value of the "step_result_id" field.
func (m *RunEventMutation) ClearStepResultID() {
	m.step_result_id = nil
	m.clearedFields[runevent.FieldStepResultID] = struct{}{}
}

// StepResultIDCleared returns if the "step_result_id" field was cleared in this mutation.
func (m *RunEventMutation) StepResultIDCleared() bool {
	_, ok := m.clearedFields[runevent.FieldStepResultID]
	return ok
}

// ResetStepResultID resets all changes to the "step_result_id" field.
func (m *RunEventMutation) ResetStepResultID() {
	m.step_result_id = nil
	delete(m.clearedFields, runevent.FieldStepResultID)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[runevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[runevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, runevent.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the QARun entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the QARun entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.seq != nil {
		fields = append(fields, runevent.FieldSeq)
	}
	if m._type != nil {
		fields = append(fields, runevent.FieldType)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.scenario_id != nil {
		fields = append(fields, runevent.FieldScenarioID)
	}
	if m.step_result_id != nil {
		fields = append(fields, runevent.FieldStepResultID)
	}
	if m.error_message != nil {
		fields = append(fields, runevent.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, runevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldSeq:
		return m.Seq()
	case runevent.FieldType:
		return m.GetType()
	case runevent.FieldPayload:
		return m.Payload()
	case runevent.FieldScenarioID:
		return m.ScenarioID()
	case runevent.FieldStepResultID:
		return m.StepResultID()
	case runevent.FieldErrorMessage:
		return m.ErrorMessage()
	case runevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldSeq:
		return m.OldSeq(ctx)
	case runevent.FieldType:
		return m.OldType(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	case runevent.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case runevent.FieldStepResultID:
		return m.OldStepResultID(ctx)
	case runevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case runevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case runevent.FieldType:
		v, ok := value.(runevent.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runevent.FieldScenarioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case runevent.FieldStepResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepResultID(v)
		return nil
	case runevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case runevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, runevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runevent.FieldPayload) {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.FieldCleared(runevent.FieldScenarioID) {
		fields = append(fields, runevent.FieldScenarioID)
	}
	if m.FieldCleared(runevent.FieldStepResultID) {
		fields = append(fields, runevent.FieldStepResultID)
	}
	if m.FieldCleared(runevent.FieldErrorMessage) {
		fields = append(fields, runevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	switch name {
	case runevent.FieldPayload:
		m.ClearPayload()
		return nil
	case runevent.FieldScenarioID:
		m.ClearScenarioID()
		return nil
	case runevent.FieldStepResultID:
		m.ClearStepResultID()
		return nil
	case runevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldSeq:
		m.ResetSeq()
		return nil
	case runevent.FieldType:
		m.ResetType()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	case runevent.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case runevent.FieldStepResultID:
		m.ResetStepResultID()
		return nil
	case runevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case runevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// RunPayloadMutation represents an operation that mutates the RunPayload nodes in the graph.
type RunPayloadMutation struct {
	config
	op            Op
	typ           string
	id            *string
	body          *[]byte
	size_bytes    *int
	addsize_bytes *int
	content_hash  *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunPayload, error)
	predicates    []predicate.RunPayload
}

var _ ent.Mutation = (*RunPayloadMutation)(nil)

// runpayloadOption allows management of the mutation configuration using functional options.
type runpayloadOption func(*RunPayloadMutation)

// newRunPayloadMutation creates new mutation for the RunPayload entity.
func newRunPayloadMutation(c config, op Op, opts ...runpayloadOption) *RunPayloadMutation {
	m := &RunPayloadMutation{
		config:        c,
		op:            op,
		typ:           TypeRunPayload,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunPayloadID sets the ID field of the mutation.
func withRunPayloadID(id string) runpayloadOption {
	return func(m *RunPayloadMutation) {
		var (
			err   error
			once  sync.Once
			value *RunPayload
		)
		m.oldValue = func(ctx context.Context) (*RunPayload, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunPayload.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunPayload sets the old RunPayload of the mutation.
func withRunPayload(node *RunPayload) runpayloadOption {
	return func(m *RunPayloadMutation) {
		m.oldValue = func(context.Context) (*RunPayload, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunPayloadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunPayloadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunPayload entities.
func (m *RunPayloadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunPayloadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunPayloadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunPayload.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunPayloadMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunPayloadMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunPayload entity.
// If the RunPayload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunPayloadMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunPayloadMutation) ResetRunID() {
	m.run = nil
}

// SetBody sets the "body" field.
func (m *RunPayloadMutation) SetBody(b []byte) {
	m.body = &b
}

// Body returns the value of the "body" field in the mutation.
func (m *RunPayloadMutation) Body() (r []byte, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the RunPayload entity.
// If the RunPayload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunPayloadMutation) OldBody(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *RunPayloadMutation) ResetBody() {
	m.body = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *RunPayloadMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *RunPayloadMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the RunPayload entity.
// If the RunPayload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunPayloadMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *RunPayloadMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *RunPayloadMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *RunPayloadMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetContentHash sets the "content_hash" field.
func (m *RunPayloadMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *RunPayloadMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the RunPayload entity.
// If the RunPayload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunPayloadMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *RunPayloadMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunPayloadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunPayloadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunPayload entity.
// If the RunPayload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunPayloadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunPayloadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the QARun entity.
func (m *RunPayloadMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runpayload.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the QARun entity was cleared.
func (m *RunPayloadMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunPayloadMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunPayloadMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunPayloadMutation builder.
func (m *RunPayloadMutation) Where(ps ...predicate.RunPayload) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunPayloadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunPayloadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunPayload, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunPayloadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunPayloadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunPayload).
func (m *RunPayloadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunPayloadMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.run != nil {
		fields = append(fields, runpayload.FieldRunID)
	}
	if m.body != nil {
		fields = append(fields, runpayload.FieldBody)
	}
	if m.size_bytes != nil {
		fields = append(fields, runpayload.FieldSizeBytes)
	}
	if m.content_hash != nil {
		fields = append(fields, runpayload.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, runpayload.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunPayloadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runpayload.FieldRunID:
		return m.RunID()
	case runpayload.FieldBody:
		return m.Body()
	case runpayload.FieldSizeBytes:
		return m.SizeBytes()
	case runpayload.FieldContentHash:
		return m.ContentHash()
	case runpayload.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunPayloadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runpayload.FieldRunID:
		return m.OldRunID(ctx)
	case runpayload.FieldBody:
		return m.OldBody(ctx)
	case runpayload.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case runpayload.FieldContentHash:
		return m.OldContentHash(ctx)
	case runpayload.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunPayload field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunPayloadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runpayload.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runpayload.FieldBody:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case runpayload.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case runpayload.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case runpayload.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunPayload field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunPayloadMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, runpayload.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunPayloadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runpayload.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunPayloadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runpayload.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown RunPayload numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunPayloadMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunPayloadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunPayloadMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunPayload nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunPayloadMutation) ResetField(name string) error {
	switch name {
	case runpayload.FieldRunID:
		m.ResetRunID()
		return nil
	case runpayload.FieldBody:
		m.ResetBody()
		return nil
	case runpayload.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case runpayload.FieldContentHash:
		m.ResetContentHash()
		return nil
	case runpayload.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunPayload field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunPayloadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runpayload.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunPayloadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runpayload.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunPayloadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunPayloadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunPayloadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runpayload.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunPayloadMutation) EdgeCleared(name string) bool {
	switch name {
	case runpayload.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunPayloadMutation) ClearEdge(name string) error {
	switch name {
	case runpayload.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunPayload unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunPayloadMutation) ResetEdge(name string) error {
	switch name {
	case runpayload.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunPayload edge %s", name)
}

// ScenarioMutation represents an operation that mutates the Scenario nodes in the graph.
type ScenarioMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	description            *string
	source                 *scenario.Source
	operation_id           *string
	status                 *scenario.Status
	tags                   *[]string
	appendtags             []string
	priority               *int
	addpriority            *int
	version                *int
	addversion             *int
	steps                  *[]models.Step
	appendsteps            []models.Step
	generation_attempts    *int
	addgeneration_attempts *int
	failure_kinds          *[]string
	appendfailure_kinds    []string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	run                    *string
	clearedrun             bool
	step_results           map[string]struct{}
	removedstep_results    map[string]struct{}
	clearedstep_results    bool
	done                   bool
	oldValue               func(context.Context) (*Scenario, error)
	predicates             []predicate.Scenario
}

var _ ent.Mutation = (*ScenarioMutation)(nil)

// scenarioOption allows management of the mutation configuration using functional options.
type scenarioOption func(*ScenarioMutation)

// newScenarioMutation creates new mutation for the Scenario entity.
func newScenarioMutation(c config, op Op, opts ...scenarioOption) *ScenarioMutation {
	m := &ScenarioMutation{
		config:        c,
		op:            op,
		typ:           TypeScenario,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioID sets the ID field of the mutation.
func withScenarioID(id string) scenarioOption {
	return func(m *ScenarioMutation) {
		var (
			err   error
			once  sync.Once
			value *Scenario
		)
		m.oldValue = func(ctx context.Context) (*Scenario, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Scenario.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenario sets the old Scenario of the mutation.
func withScenario(node *Scenario) scenarioOption {
	return func(m *ScenarioMutation) {
		m.oldValue = func(context.Context) (*Scenario, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Scenario entities.
func (m *ScenarioMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Scenario.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ScenarioMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ScenarioMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ScenarioMutation) ResetRunID() {
	m.run = nil
}

// SetName sets the "name" field.
func (m *ScenarioMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScenarioMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScenarioMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ScenarioMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ScenarioMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ScenarioMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[scenario.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ScenarioMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[scenario.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ScenarioMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, scenario.FieldDescription)
}

// SetSource sets the "source" field.
func (m *ScenarioMutation) SetSource(s scenario.Source) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ScenarioMutation) Source() (r scenario.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldSource(ctx context.Context) (v scenario.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ScenarioMutation) ResetSource() {
	m.source = nil
}

// SetOperationID sets the "operation_id" field.
func (m *ScenarioMutation) SetOperationID(s string) {
	m.operation_id = &s
}

// OperationID returns the value of the "operation_id" field in the mutation.
func (m *ScenarioMutation) OperationID() (r string, exists bool) {
	v := m.operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationID returns the old "operation_id" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldOperationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationID: %w", err)
	}
	return oldValue.OperationID, nil
}

// ClearOperationID clears the value of the "operation_id" field.
func (m *ScenarioMutation) ClearOperationID() {
	m.operation_id = nil
	m.clearedFields[scenario.FieldOperationID] = struct{}{}
}

// OperationIDCleared returns if the "operation_id" field was cleared in this mutation.
func (m *ScenarioMutation) OperationIDCleared() bool {
	_, ok := m.clearedFields[scenario.FieldOperationID]
	return ok
}

// ResetOperationID resets all changes to the "operation_id" field.
func (m *ScenarioMutation) ResetOperationID() {
	m.operation_id = nil
	delete(m.clearedFields, scenario.FieldOperationID)
}

// SetStatus sets the "status" field.
func (m *ScenarioMutation) SetStatus(s scenario.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScenarioMutation) Status() (r scenario.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldStatus(ctx context.Context) (v scenario.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScenarioMutation) ResetStatus() {
	m.status = nil
}

// SetTags sets the "tags" field.
func (m *ScenarioMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ScenarioMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ScenarioMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ScenarioMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ScenarioMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[scenario.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ScenarioMutation) TagsCleared() bool {
	_, ok := m.clearedFields[scenario.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ScenarioMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, scenario.FieldTags)
}

// SetPriority sets the "priority" field.
func (m *ScenarioMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ScenarioMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ScenarioMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ScenarioMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ScenarioMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetVersion sets the "version" field.
func (m *ScenarioMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ScenarioMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ScenarioMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ScenarioMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ScenarioMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetSteps sets the "steps" field.
func (m *ScenarioMutation) SetSteps(value []models.Step) {
	m.steps = &value
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *ScenarioMutation) Steps() (r []models.Step, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldSteps(ctx context.Context) (v []models.Step, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds value to the "steps" field.
func (m *ScenarioMutation) AppendSteps(value []models.Step) {
	m.appendsteps = append(m.appendsteps, value...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *ScenarioMutation) AppendedSteps() ([]models.Step, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *ScenarioMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// SetGenerationAttempts sets the "generation_attempts" field.
func (m *ScenarioMutation) SetGenerationAttempts(i int) {
	m.generation_attempts = &i
	m.addgeneration_attempts = nil
}

// GenerationAttempts returns the value of the "generation_attempts" field in the mutation.
func (m *ScenarioMutation) GenerationAttempts() (r int, exists bool) {
	v := m.generation_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationAttempts returns the old "generation_attempts" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldGenerationAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationAttempts: %w", err)
	}
	return oldValue.GenerationAttempts, nil
}

// AddGenerationAttempts adds i to the "generation_attempts" field.
func (m *ScenarioMutation) AddGenerationAttempts(i int) {
	if m.addgeneration_attempts != nil {
		*m.addgeneration_attempts += i
	} else {
		m.addgeneration_attempts = &i
	}
}

// AddedGenerationAttempts returns the value that was added to the "generation_attempts" field in this mutation.
func (m *ScenarioMutation) AddedGenerationAttempts() (r int, exists bool) {
	v := m.addgeneration_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetGenerationAttempts resets all changes to the "generation_attempts" field.
func (m *ScenarioMutation) ResetGenerationAttempts() {
	m.generation_attempts = nil
	m.addgeneration_attempts = nil
}

// SetFailureKinds sets the "failure_kinds" field.
func (m *ScenarioMutation) SetFailureKinds(s []string) {
	m.failure_kinds = &s
	m.appendfailure_kinds = nil
}

// FailureKinds returns the value of the "failure_kinds" field in the mutation.
func (m *ScenarioMutation) FailureKinds() (r []string, exists bool) {
	v := m.failure_kinds
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureKinds returns the old "failure_kinds" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldFailureKinds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureKinds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureKinds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureKinds: %w", err)
	}
	return oldValue.FailureKinds, nil
}

// AppendFailureKinds adds s to the "failure_kinds" field.
func (m *ScenarioMutation) AppendFailureKinds(s []string) {
	m.appendfailure_kinds = append(m.appendfailure_kinds, s...)
}

// AppendedFailureKinds returns the list of values that were appended to the "failure_kinds" field in this mutation.
func (m *ScenarioMutation) AppendedFailureKinds() ([]string, bool) {
	if len(m.appendfailure_kinds) == 0 {
		return nil, false
	}
	return m.appendfailure_kinds, true
}

// ClearFailureKinds clears the value of the "failure_kinds" field.
func (m *ScenarioMutation) ClearFailureKinds() {
	m.failure_kinds = nil
	m.appendfailure_kinds = nil
	m.clearedFields[scenario.FieldFailureKinds] = struct{}{}
}

// FailureKindsCleared returns if the "failure_kinds" field was cleared in this mutation.
func (m *ScenarioMutation) FailureKindsCleared() bool {
	_, ok := m.clearedFields[scenario.FieldFailureKinds]
	return ok
}

// ResetFailureKinds resets all changes to the "failure_kinds" field.
func (m *ScenarioMutation) ResetFailureKinds() {
	m.failure_kinds = nil
	m.appendfailure_kinds = nil
	delete(m.clearedFields, scenario.FieldFailureKinds)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScenarioMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScenarioMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScenarioMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScenarioMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScenarioMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScenarioMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRun clears the "run" edge to the QARun entity.
func (m *ScenarioMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[scenario.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the QARun entity was cleared.
func (m *ScenarioMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ScenarioMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ScenarioMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by ids.
func (m *ScenarioMutation) AddStepResultIDs(ids ...string) {
	if m.step_results == nil {
		m.step_results = make(map[string]struct{})
	}
	for i := range ids {
		m.step_results[ids[i]] = struct{}{}
	}
}

// ClearStepResults clears the "step_results" edge to the StepResult entity.
func (m *ScenarioMutation) ClearStepResults() {
	m.clearedstep_results = true
}

// StepResultsCleared reports if the "step_results" edge to the StepResult entity was cleared.
func (m *ScenarioMutation) StepResultsCleared() bool {
	return m.clearedstep_results
}

// RemoveStepResultIDs removes the "step_results" edge to the StepResult entity by IDs.
func (m *ScenarioMutation) RemoveStepResultIDs(ids ...string) {
	if m.removedstep_results == nil {
		m.removedstep_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.step_results, ids[i])
		m.removedstep_results[ids[i]] = struct{}{}
	}
}

// RemovedStepResults returns the removed IDs of the "step_results" edge to the StepResult entity.
func (m *ScenarioMutation) RemovedStepResultsIDs() (ids []string) {
	for id := range m.removedstep_results {
		ids = append(ids, id)
	}
	return
}

// StepResultsIDs returns the "step_results" edge IDs in the mutation.
func (m *ScenarioMutation) StepResultsIDs() (ids []string) {
	for id := range m.step_results {
		ids = append(ids, id)
	}
	return
}

// ResetStepResults resets all changes to the "step_results" edge.
func (m *ScenarioMutation) ResetStepResults() {
	m.step_results = nil
	m.clearedstep_results = false
	m.removedstep_results = nil
}

// Where appends a list predicates to the ScenarioMutation builder.
func (m *ScenarioMutation) Where(ps ...predicate.Scenario) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Scenario, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Scenario).
func (m *ScenarioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.run != nil {
		fields = append(fields, scenario.FieldRunID)
	}
	if m.name != nil {
		fields = append(fields, scenario.FieldName)
	}
	if m.description != nil {
		fields = append(fields, scenario.FieldDescription)
	}
	if m.source != nil {
		fields = append(fields, scenario.FieldSource)
	}
	if m.operation_id != nil {
		fields = append(fields, scenario.FieldOperationID)
	}
	if m.status != nil {
		fields = append(fields, scenario.FieldStatus)
	}
	if m.tags != nil {
		fields = append(fields, scenario.FieldTags)
	}
	if m.priority != nil {
		fields = append(fields, scenario.FieldPriority)
	}
	if m.version != nil {
		fields = append(fields, scenario.FieldVersion)
	}
	if m.steps != nil {
		fields = append(fields, scenario.FieldSteps)
	}
	if m.generation_attempts != nil {
		fields = append(fields, scenario.FieldGenerationAttempts)
	}
	if m.failure_kinds != nil {
		fields = append(fields, scenario.FieldFailureKinds)
	}
	if m.created_at != nil {
		fields = append(fields, scenario.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scenario.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenario.FieldRunID:
		return m.RunID()
	case scenario.FieldName:
		return m.Name()
	case scenario.FieldDescription:
		return m.Description()
	case scenario.FieldSource:
		return m.Source()
	case scenario.FieldOperationID:
		return m.OperationID()
	case scenario.FieldStatus:
		return m.Status()
	case scenario.FieldTags:
		return m.Tags()
	case scenario.FieldPriority:
		return m.Priority()
	case scenario.FieldVersion:
		return m.Version()
	case scenario.FieldSteps:
		return m.Steps()
	case scenario.FieldGenerationAttempts:
		return m.GenerationAttempts()
	case scenario.FieldFailureKinds:
		return m.FailureKinds()
	case scenario.FieldCreatedAt:
		return m.CreatedAt()
	case scenario.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenario.FieldRunID:
		return m.OldRunID(ctx)
	case scenario.FieldName:
		return m.OldName(ctx)
	case scenario.FieldDescription:
		return m.OldDescription(ctx)
	case scenario.FieldSource:
		return m.OldSource(ctx)
	case scenario.FieldOperationID:
		return m.OldOperationID(ctx)
	case scenario.FieldStatus:
		return m.OldStatus(ctx)
	case scenario.FieldTags:
		return m.OldTags(ctx)
	case scenario.FieldPriority:
		return m.OldPriority(ctx)
	case scenario.FieldVersion:
		return m.OldVersion(ctx)
	case scenario.FieldSteps:
		return m.OldSteps(ctx)
	case scenario.FieldGenerationAttempts:
		return m.OldGenerationAttempts(ctx)
	case scenario.FieldFailureKinds:
		return m.OldFailureKinds(ctx)
	case scenario.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scenario.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Scenario field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenario.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case scenario.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scenario.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case scenario.FieldSource:
		v, ok := value.(scenario.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case scenario.FieldOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationID(v)
		return nil
	case scenario.FieldStatus:
		v, ok := value.(scenario.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scenario.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case scenario.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case scenario.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case scenario.FieldSteps:
		v, ok := value.([]models.Step)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case scenario.FieldGenerationAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationAttempts(v)
		return nil
	case scenario.FieldFailureKinds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureKinds(v)
		return nil
	case scenario.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scenario.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Scenario field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, scenario.FieldPriority)
	}
	if m.addversion != nil {
		fields = append(fields, scenario.FieldVersion)
	}
	if m.addgeneration_attempts != nil {
		fields = append(fields, scenario.FieldGenerationAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scenario.FieldPriority:
		return m.AddedPriority()
	case scenario.FieldVersion:
		return m.AddedVersion()
	case scenario.FieldGenerationAttempts:
		return m.AddedGenerationAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scenario.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case scenario.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case scenario.FieldGenerationAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Scenario numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scenario.FieldDescription) {
		fields = append(fields, scenario.FieldDescription)
	}
	if m.FieldCleared(scenario.FieldOperationID) {
		fields = append(fields, scenario.FieldOperationID)
	}
	if m.FieldCleared(scenario.FieldTags) {
		fields = append(fields, scenario.FieldTags)
	}
	if m.FieldCleared(scenario.FieldFailureKinds) {
		fields = append(fields, scenario.FieldFailureKinds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioMutation) ClearField(name string) error {
	switch name {
	case scenario.FieldDescription:
		m.ClearDescription()
		return nil
	case scenario.FieldOperationID:
		m.ClearOperationID()
		return nil
	case scenario.FieldTags:
		m.ClearTags()
		return nil
	case scenario.FieldFailureKinds:
		m.ClearFailureKinds()
		return nil
	}
	return fmt.Errorf("unknown Scenario nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioMutation) ResetField(name string) error {
	switch name {
	case scenario.FieldRunID:
		m.ResetRunID()
		return nil
	case scenario.FieldName:
		m.ResetName()
		return nil
	case scenario.FieldDescription:
		m.ResetDescription()
		return nil
	case scenario.FieldSource:
		m.ResetSource()
		return nil
	case scenario.FieldOperationID:
		m.ResetOperationID()
		return nil
	case scenario.FieldStatus:
		m.ResetStatus()
		return nil
	case scenario.FieldTags:
		m.ResetTags()
		return nil
	case scenario.FieldPriority:
		m.ResetPriority()
		return nil
	case scenario.FieldVersion:
		m.ResetVersion()
		return nil
	case scenario.FieldSteps:
		m.ResetSteps()
		return nil
	case scenario.FieldGenerationAttempts:
		m.ResetGenerationAttempts()
		return nil
	case scenario.FieldFailureKinds:
		m.ResetFailureKinds()
		return nil
	case scenario.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scenario.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Scenario field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, scenario.EdgeRun)
	}
	if m.step_results != nil {
		edges = append(edges, scenario.EdgeStepResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scenario.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case scenario.EdgeStepResults:
		ids := make([]ent.Value, 0, len(m.step_results))
		for id := range m.step_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedstep_results != nil {
		edges = append(edges, scenario.EdgeStepResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scenario.EdgeStepResults:
		ids := make([]ent.Value, 0, len(m.removedstep_results))
		for id := range m.removedstep_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, scenario.EdgeRun)
	}
	if m.clearedstep_results {
		edges = append(edges, scenario.EdgeStepResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioMutation) EdgeCleared(name string) bool {
	switch name {
	case scenario.EdgeRun:
		return m.clearedrun
	case scenario.EdgeStepResults:
		return m.clearedstep_results
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioMutation) ClearEdge(name string) error {
	switch name {
	case scenario.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Scenario unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioMutation) ResetEdge(name string) error {
	switch name {
	case scenario.EdgeRun:
		m.ResetRun()
		return nil
	case scenario.EdgeStepResults:
		m.ResetStepResults()
		return nil
	}
	return fmt.Errorf("unknown Scenario edge %s", name)
}

// StepResultMutation represents an operation that mutates the StepResult nodes in the graph.
type StepResultMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	step_index              *int
	addstep_index           *int
	name                    *string
	method                  *string
	endpoint                *string
	status                  *stepresult.Status
	attempts                *int
	addattempts             *int
	actual_status_code      *int
	addactual_status_code   *int
	actual_headers          *map[string]string
	actual_body             *string
	body_digest             *string
	assertion_results       *[]models.AssertionResult
	appendassertion_results []models.AssertionResult
	extracted               *map[string]string
	unresolved              *[]string
	appendunresolved        []string
	duration_ms             *int64
	addduration_ms          *int64
	started_at              *time.Time
	finished_at             *time.Time
	failure_reason          *string
	error_kind              *string
	clearedFields           map[string]struct{}
	run                     *string
	clearedrun              bool
	scenario                *string
	clearedscenario         bool
	done                    bool
	oldValue                func(context.Context) (*StepResult, error)
	predicates              []predicate.StepResult
}

var _ ent.Mutation = (*StepResultMutation)(nil)

// stepresultOption allows management of the mutation configuration using functional options.
type stepresultOption func(*StepResultMutation)

// newStepResultMutation creates new mutation for the StepResult entity.
func newStepResultMutation(c config, op Op, opts ...stepresultOption) *StepResultMutation {
	m := &StepResultMutation{
		config:        c,
		op:            op,
		typ:           TypeStepResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepResultID sets the ID field of the mutation.
func withStepResultID(id string) stepresultOption {
	return func(m *StepResultMutation) {
		var (
			err   error
			once  sync.Once
			value *StepResult
		)
		m.oldValue = func(ctx context.Context) (*StepResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepResult sets the old StepResult of the mutation.
func withStepResult(node *StepResult) stepresultOption {
	return func(m *StepResultMutation) {
		m.oldValue = func(context.Context) (*StepResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepResult entities.
func (m *StepResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *StepResultMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StepResultMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *StepResultMutation) ResetRunID() {
	m.run = nil
}

// SetScenarioID sets the "scenario_id" field.
func (m *StepResultMutation) SetScenarioID(s string) {
	m.scenario = &s
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *StepResultMutation) ScenarioID() (r string, exists bool) {
	v := m.scenario
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldScenarioID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *StepResultMutation) ResetScenarioID() {
	m.scenario = nil
}

// SetStepIndex sets the "step_index" field.
func (m *StepResultMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *StepResultMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *StepResultMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *StepResultMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *StepResultMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetName sets the "name" field.
func (m *StepResultMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StepResultMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *StepResultMutation) ClearName() {
	m.name = nil
	m.clearedFields[stepresult.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *StepResultMutation) NameCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *StepResultMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, stepresult.FieldName)
}

// SetMethod sets the "method" field.
func (m *StepResultMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *StepResultMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *StepResultMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[stepresult.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *StepResultMutation) MethodCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *StepResultMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, stepresult.FieldMethod)
}

// SetEndpoint sets the "endpoint" field.
func (m *StepResultMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *StepResultMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ClearEndpoint clears the value of the "endpoint" field.
func (m *StepResultMutation) ClearEndpoint() {
	m.endpoint = nil
	m.clearedFields[stepresult.FieldEndpoint] = struct{}{}
}

// EndpointCleared returns if the "endpoint" field was cleared in this mutation.
func (m *StepResultMutation) EndpointCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldEndpoint]
	return ok
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *StepResultMutation) ResetEndpoint() {
	m.endpoint = nil
	delete(m.clearedFields, stepresult.FieldEndpoint)
}

// SetStatus sets the "status" field.
func (m *StepResultMutation) SetStatus(s stepresult.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepResultMutation) Status() (r stepresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldStatus(ctx context.Context) (v stepresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepResultMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *StepResultMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *StepResultMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *StepResultMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *StepResultMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *StepResultMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetActualStatusCode sets the "actual_status_code" field.
func (m *StepResultMutation) SetActualStatusCode(i int) {
	m.actual_status_code = &i
	m.addactual_status_code = nil
}

// ActualStatusCode returns the value of the "actual_status_code" field in the mutation.
func (m *StepResultMutation) ActualStatusCode() (r int, exists bool) {
	v := m.actual_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldActualStatusCode returns the old "actual_status_code" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldActualStatusCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualStatusCode: %w", err)
	}
	return oldValue.ActualStatusCode, nil
}

// AddActualStatusCode adds i to the "actual_status_code" field.
func (m *StepResultMutation) AddActualStatusCode(i int) {
	if m.addactual_status_code != nil {
		*m.addactual_status_code += i
	} else {
		m.addactual_status_code = &i
	}
}

// AddedActualStatusCode returns the value that was added to the "actual_status_code" field in this mutation.
func (m *StepResultMutation) AddedActualStatusCode() (r int, exists bool) {
	v := m.addactual_status_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearActualStatusCode clears the value of the "actual_status_code" field.
func (m *StepResultMutation) ClearActualStatusCode() {
	m.actual_status_code = nil
	m.addactual_status_code = nil
	m.clearedFields[stepresult.FieldActualStatusCode] = struct{}{}
}

// ActualStatusCodeCleared returns if the "actual_status_code" field was cleared in this mutation.
func (m *StepResultMutation) ActualStatusCodeCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldActualStatusCode]
	return ok
}

// ResetActualStatusCode resets all changes to the "actual_status_code" field.
func (m *StepResultMutation) ResetActualStatusCode() {
	m.actual_status_code = nil
	m.addactual_status_code = nil
	delete(m.clearedFields, stepresult.FieldActualStatusCode)
}

// SetActualHeaders sets the "actual_headers" field.
func (m *StepResultMutation) SetActualHeaders(value map[string]string) {
	m.actual_headers = &value
}

// ActualHeaders returns the value of the "actual_headers" field in the mutation.
func (m *StepResultMutation) ActualHeaders() (r map[string]string, exists bool) {
	v := m.actual_headers
	if v == nil {
		return
	}
	return *v, true
}

// OldActualHeaders returns the old "actual_headers" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldActualHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualHeaders: %w", err)
	}
	return oldValue.ActualHeaders, nil
}

// ClearActualHeaders clears the value of the "actual_headers" field.
func (m *StepResultMutation) ClearActualHeaders() {
	m.actual_headers = nil
	m.clearedFields[stepresult.FieldActualHeaders] = struct{}{}
}

// ActualHeadersCleared returns if the "actual_headers" field was cleared in this mutation.
func (m *StepResultMutation) ActualHeadersCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldActualHeaders]
	return ok
}

// ResetActualHeaders resets all changes to the "actual_headers" field.
func (m *StepResultMutation) ResetActualHeaders() {
	m.actual_headers = nil
	delete(m.clearedFields, stepresult.FieldActualHeaders)
}

// SetActualBody sets the "actual_body" field.
func (m *StepResultMutation) SetActualBody(s string) {
	m.actual_body = &s
}

// ActualBody returns the value of the "actual_body" field in the mutation.
func (m *StepResultMutation) ActualBody() (r string, exists bool) {
	v := m.actual_body
	if v == nil {
		return
	}
	return *v, true
}

// OldActualBody returns the old "actual_body" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldActualBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualBody: %w", err)
	}
	return oldValue.ActualBody, nil
}

// ClearActualBody clears the value of the "actual_body" field.
func (m *StepResultMutation) ClearActualBody() {
	m.actual_body = nil
	m.clearedFields[stepresult.FieldActualBody] = struct{}{}
}

// ActualBodyCleared returns if the "actual_body" field was cleared in this mutation.
func (m *StepResultMutation) ActualBodyCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldActualBody]
	return ok
}

// ResetActualBody resets all changes to the "actual_body" field.
func (m *StepResultMutation) ResetActualBody() {
	m.actual_body = nil
	delete(m.clearedFields, stepresult.FieldActualBody)
}

// SetBodyDigest sets the "body_digest" field.
func (m *StepResultMutation) SetBodyDigest(s string) {
	m.body_digest = &s
}

// BodyDigest returns the value of the "body_digest" field in the mutation.
func (m *StepResultMutation) BodyDigest() (r string, exists bool) {
	v := m.body_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyDigest returns the old "body_digest" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldBodyDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyDigest: %w", err)
	}
	return oldValue.BodyDigest, nil
}

// ClearBodyDigest clears the value of the "body_digest" field.
func (m *StepResultMutation) ClearBodyDigest() {
	m.body_digest = nil
	m.clearedFields[stepresult.FieldBodyDigest] = struct{}{}
}

// BodyDigestCleared returns if the "body_digest" field was cleared in this mutation.
func (m *StepResultMutation) BodyDigestCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldBodyDigest]
	return ok
}

// ResetBodyDigest resets all changes to the "body_digest" field.
func (m *StepResultMutation) ResetBodyDigest() {
	m.body_digest = nil
	delete(m.clearedFields, stepresult.FieldBodyDigest)
}

// SetAssertionResults sets the "assertion_results" field.
func (m *StepResultMutation) SetAssertionResults(mr []models.AssertionResult) {
	m.assertion_results = &mr
	m.appendassertion_results = nil
}

// AssertionResults returns the value of the "assertion_results" field in the mutation.
func (m *StepResultMutation) AssertionResults() (r []models.AssertionResult, exists bool) {
	v := m.assertion_results
	if v == nil {
		return
	}
	return *v, true
}

// OldAssertionResults returns the old "assertion_results" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldAssertionResults(ctx context.Context) (v []models.AssertionResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssertionResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssertionResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssertionResults: %w", err)
	}
	return oldValue.AssertionResults, nil
}

// AppendAssertionResults adds mr to the "assertion_results" field.
func (m *StepResultMutation) AppendAssertionResults(mr []models.AssertionResult) {
	m.appendassertion_results = append(m.appendassertion_results, mr...)
}

// AppendedAssertionResults returns the list of values that were appended to the "assertion_results" field in this mutation.
func (m *StepResultMutation) AppendedAssertionResults() ([]models.AssertionResult, bool) {
	if len(m.appendassertion_results) == 0 {
		return nil, false
	}
	return m.appendassertion_results, true
}

// ClearAssertionResults clears the value of the "assertion_results" field.
func (m *StepResultMutation) ClearAssertionResults() {
	m.assertion_results = nil
	m.appendassertion_results = nil
	m.clearedFields[stepresult.FieldAssertionResults] = struct{}{}
}

// AssertionResultsCleared returns if the "assertion_results" field was cleared in this mutation.
func (m *StepResultMutation) AssertionResultsCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldAssertionResults]
	return ok
}

// ResetAssertionResults resets all changes to the "assertion_results" field.
func (m *StepResultMutation) ResetAssertionResults() {
	m.assertion_results = nil
	m.appendassertion_results = nil
	delete(m.clearedFields, stepresult.FieldAssertionResults)
}

// SetExtracted sets the "extracted" field.
func (m *StepResultMutation) SetExtracted(value map[string]string) {
	m.extracted = &value
}

// Extracted returns the value of the "extracted" field in the mutation.
func (m *StepResultMutation) Extracted() (r map[string]string, exists bool) {
	v := m.extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldExtracted returns the old "extracted" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldExtracted(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtracted: %w", err)
	}
	return oldValue.Extracted, nil
}

// ClearExtracted clears the value of the "extracted" field.
func (m *StepResultMutation) ClearExtracted() {
	m.extracted = nil
	m.clearedFields[stepresult.FieldExtracted] = struct{}{}
}

// ExtractedCleared returns if the "extracted" field was cleared in this mutation.
func (m *StepResultMutation) ExtractedCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldExtracted]
	return ok
}

// ResetExtracted resets all changes to the "extracted" field.
func (m *StepResultMutation) ResetExtracted() {
	m.extracted = nil
	delete(m.clearedFields, stepresult.FieldExtracted)
}

// SetUnresolved sets the "unresolved" field.
func (m *StepResultMutation) SetUnresolved(s []string) {
	m.unresolved = &s
	m.appendunresolved = nil
}

// Unresolved returns the value of the "unresolved" field in the mutation.
func (m *StepResultMutation) Unresolved() (r []string, exists bool) {
	v := m.unresolved
	if v == nil {
		return
	}
	return *v, true
}

// OldUnresolved returns the old "unresolved" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldUnresolved(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnresolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnresolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnresolved: %w", err)
	}
	return oldValue.Unresolved, nil
}

// AppendUnresolved adds s to the "unresolved" field.
func (m *StepResultMutation) AppendUnresolved(s []string) {
	m.appendunresolved = append(m.appendunresolved, s...)
}

// AppendedUnresolved returns the list of values that were appended to the "unresolved" field in this mutation.
func (m *StepResultMutation) AppendedUnresolved() ([]string, bool) {
	if len(m.appendunresolved) == 0 {
		return nil, false
	}
	return m.appendunresolved, true
}

// ClearUnresolved clears the value of the "unresolved" field.
func (m *StepResultMutation) ClearUnresolved() {
	m.unresolved = nil
	m.appendunresolved = nil
	m.clearedFields[stepresult.FieldUnresolved] = struct{}{}
}

// UnresolvedCleared returns if the "unresolved" field was cleared in this mutation.
func (m *StepResultMutation) UnresolvedCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldUnresolved]
	return ok
}

// ResetUnresolved resets all changes to the "unresolved" field.
func (m *StepResultMutation) ResetUnresolved() {
	m.unresolved = nil
	m.appendunresolved = nil
	delete(m.clearedFields, stepresult.FieldUnresolved)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StepResultMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StepResultMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StepResultMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StepResultMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StepResultMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StepResultMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepResultMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepResultMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *StepResultMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *StepResultMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldFinishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *StepResultMutation) ResetFinishedAt() {
	m.finished_at = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *StepResultMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *StepResultMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *StepResultMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[stepresult.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *StepResultMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *StepResultMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, stepresult.FieldFailureReason)
}

// SetErrorKind sets the "error_kind" field.
func (m *StepResultMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *StepResultMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *StepResultMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[stepresult.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *StepResultMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *StepResultMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, stepresult.FieldErrorKind)
}

// ClearRun clears the "run" edge to the QARun entity.
func (m *StepResultMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[stepresult.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the QARun entity was cleared.
func (m *StepResultMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StepResultMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StepResultMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// ClearScenario clears the "scenario" edge to the Scenario entity.
func (m *StepResultMutation) ClearScenario() {
	m.clearedscenario = true
	m.clearedFields[stepresult.FieldScenarioID] = struct{}{}
}

// ScenarioCleared reports if the "scenario" edge to the Scenario entity was cleared.
func (m *StepResultMutation) ScenarioCleared() bool {
	return m.clearedscenario
}

// ScenarioIDs returns the "scenario" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScenarioID instead. It exists only for internal usage by the builders.
func (m *StepResultMutation) ScenarioIDs() (ids []string) {
	if id := m.scenario; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScenario resets all changes to the "scenario" edge.
func (m *StepResultMutation) ResetScenario() {
	m.scenario = nil
	m.clearedscenario = false
}

// Where appends a list predicates to the StepResultMutation builder.
func (m *StepResultMutation) Where(ps ...predicate.StepResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepResult).
func (m *StepResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepResultMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.run != nil {
		fields = append(fields, stepresult.FieldRunID)
	}
	if m.scenario != nil {
		fields = append(fields, stepresult.FieldScenarioID)
	}
	if m.step_index != nil {
		fields = append(fields, stepresult.FieldStepIndex)
	}
	if m.name != nil {
		fields = append(fields, stepresult.FieldName)
	}
	if m.method != nil {
		fields = append(fields, stepresult.FieldMethod)
	}
	if m.endpoint != nil {
		fields = append(fields, stepresult.FieldEndpoint)
	}
	if m.status != nil {
		fields = append(fields, stepresult.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, stepresult.FieldAttempts)
	}
	if m.actual_status_code != nil {
		fields = append(fields, stepresult.FieldActualStatusCode)
	}
	if m.actual_headers != nil {
		fields = append(fields, stepresult.FieldActualHeaders)
	}
	if m.actual_body != nil {
		fields = append(fields, stepresult.FieldActualBody)
	}
	if m.body_digest != nil {
		fields = append(fields, stepresult.FieldBodyDigest)
	}
	if m.assertion_results != nil {
		fields = append(fields, stepresult.FieldAssertionResults)
	}
	if m.extracted != nil {
		fields = append(fields, stepresult.FieldExtracted)
	}
	if m.unresolved != nil {
		fields = append(fields, stepresult.FieldUnresolved)
	}
	if m.duration_ms != nil {
		fields = append(fields, stepresult.FieldDurationMs)
	}
	if m.started_at != nil {
		fields = append(fields, stepresult.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, stepresult.FieldFinishedAt)
	}
	if m.failure_reason != nil {
		fields = append(fields, stepresult.FieldFailureReason)
	}
	if m.error_kind != nil {
		fields = append(fields, stepresult.FieldErrorKind)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepresult.FieldRunID:
		return m.RunID()
	case stepresult.FieldScenarioID:
		return m.ScenarioID()
	case stepresult.FieldStepIndex:
		return m.StepIndex()
	case stepresult.FieldName:
		return m.Name()
	case stepresult.FieldMethod:
		return m.Method()
	case stepresult.FieldEndpoint:
		return m.Endpoint()
	case stepresult.FieldStatus:
		return m.Status()
	case stepresult.FieldAttempts:
		return m.Attempts()
	case stepresult.FieldActualStatusCode:
		return m.ActualStatusCode()
	case stepresult.FieldActualHeaders:
		return m.ActualHeaders()
	case stepresult.FieldActualBody:
		return m.ActualBody()
	case stepresult.FieldBodyDigest:
		return m.BodyDigest()
	case stepresult.FieldAssertionResults:
		return m.AssertionResults()
	case stepresult.FieldExtracted:
		return m.Extracted()
	case stepresult.FieldUnresolved:
		return m.Unresolved()
	case stepresult.FieldDurationMs:
		return m.DurationMs()
	case stepresult.FieldStartedAt:
		return m.StartedAt()
	case stepresult.FieldFinishedAt:
		return m.FinishedAt()
	case stepresult.FieldFailureReason:
		return m.FailureReason()
	case stepresult.FieldErrorKind:
		return m.ErrorKind()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepresult.FieldRunID:
		return m.OldRunID(ctx)
	case stepresult.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case stepresult.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case stepresult.FieldName:
		return m.OldName(ctx)
	case stepresult.FieldMethod:
		return m.OldMethod(ctx)
	case stepresult.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case stepresult.FieldStatus:
		return m.OldStatus(ctx)
	case stepresult.FieldAttempts:
		return m.OldAttempts(ctx)
	case stepresult.FieldActualStatusCode:
		return m.OldActualStatusCode(ctx)
	case stepresult.FieldActualHeaders:
		return m.OldActualHeaders(ctx)
	case stepresult.FieldActualBody:
		return m.OldActualBody(ctx)
	case stepresult.FieldBodyDigest:
		return m.OldBodyDigest(ctx)
	case stepresult.FieldAssertionResults:
		return m.OldAssertionResults(ctx)
	case stepresult.FieldExtracted:
		return m.OldExtracted(ctx)
	case stepresult.FieldUnresolved:
		return m.OldUnresolved(ctx)
	case stepresult.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stepresult.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stepresult.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case stepresult.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case stepresult.FieldErrorKind:
		return m.OldErrorKind(ctx)
	}
	return nil, fmt.Errorf("unknown StepResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepresult.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case stepresult.FieldScenarioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case stepresult.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case stepresult.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case stepresult.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case stepresult.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case stepresult.FieldStatus:
		v, ok := value.(stepresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stepresult.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case stepresult.FieldActualStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualStatusCode(v)
		return nil
	case stepresult.FieldActualHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualHeaders(v)
		return nil
	case stepresult.FieldActualBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualBody(v)
		return nil
	case stepresult.FieldBodyDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyDigest(v)
		return nil
	case stepresult.FieldAssertionResults:
		v, ok := value.([]models.AssertionResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssertionResults(v)
		return nil
	case stepresult.FieldExtracted:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtracted(v)
		return nil
	case stepresult.FieldUnresolved:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnresolved(v)
		return nil
	case stepresult.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stepresult.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stepresult.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case stepresult.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case stepresult.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	}
	return fmt.Errorf("unknown StepResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepResultMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, stepresult.FieldStepIndex)
	}
	if m.addattempts != nil {
		fields = append(fields, stepresult.FieldAttempts)
	}
	if m.addactual_status_code != nil {
		fields = append(fields, stepresult.FieldActualStatusCode)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stepresult.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepresult.FieldStepIndex:
		return m.AddedStepIndex()
	case stepresult.FieldAttempts:
		return m.AddedAttempts()
	case stepresult.FieldActualStatusCode:
		return m.AddedActualStatusCode()
	case stepresult.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepresult.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	case stepresult.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case stepresult.FieldActualStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualStatusCode(v)
		return nil
	case stepresult.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown StepResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepresult.FieldName) {
		fields = append(fields, stepresult.FieldName)
	}
	if m.FieldCleared(stepresult.FieldMethod) {
		fields = append(fields, stepresult.FieldMethod)
	}
	if m.FieldCleared(stepresult.FieldEndpoint) {
		fields = append(fields, stepresult.FieldEndpoint)
	}
	if m.FieldCleared(stepresult.FieldActualStatusCode) {
		fields = append(fields, stepresult.FieldActualStatusCode)
	}
	if m.FieldCleared(stepresult.FieldActualHeaders) {
		fields = append(fields, stepresult.FieldActualHeaders)
	}
	if m.FieldCleared(stepresult.FieldActualBody) {
		fields = append(fields, stepresult.FieldActualBody)
	}
	if m.FieldCleared(stepresult.FieldBodyDigest) {
		fields = append(fields, stepresult.FieldBodyDigest)
	}
	if m.FieldCleared(stepresult.FieldAssertionResults) {
		fields = append(fields, stepresult.FieldAssertionResults)
	}
	if m.FieldCleared(stepresult.FieldExtracted) {
		fields = append(fields, stepresult.FieldExtracted)
	}
	if m.FieldCleared(stepresult.FieldUnresolved) {
		fields = append(fields, stepresult.FieldUnresolved)
	}
	if m.FieldCleared(stepresult.FieldFailureReason) {
		fields = append(fields, stepresult.FieldFailureReason)
	}
	if m.FieldCleared(stepresult.FieldErrorKind) {
		fields = append(fields, stepresult.FieldErrorKind)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepResultMutation) ClearField(name string) error {
	switch name {
	case stepresult.FieldName:
		m.ClearName()
		return nil
	case stepresult.FieldMethod:
		m.ClearMethod()
		return nil
	case stepresult.FieldEndpoint:
		m.ClearEndpoint()
		return nil
	case stepresult.FieldActualStatusCode:
		m.ClearActualStatusCode()
		return nil
	case stepresult.FieldActualHeaders:
		m.ClearActualHeaders()
		return nil
	case stepresult.FieldActualBody:
		m.ClearActualBody()
		return nil
	case stepresult.FieldBodyDigest:
		m.ClearBodyDigest()
		return nil
	case stepresult.FieldAssertionResults:
		m.ClearAssertionResults()
		return nil
	case stepresult.FieldExtracted:
		m.ClearExtracted()
		return nil
	case stepresult.FieldUnresolved:
		m.ClearUnresolved()
		return nil
	case stepresult.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case stepresult.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	}
	return fmt.Errorf("unknown StepResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepResultMutation) ResetField(name string) error {
	switch name {
	case stepresult.FieldRunID:
		m.ResetRunID()
		return nil
	case stepresult.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case stepresult.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case stepresult.FieldName:
		m.ResetName()
		return nil
	case stepresult.FieldMethod:
		m.ResetMethod()
		return nil
	case stepresult.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case stepresult.FieldStatus:
		m.ResetStatus()
		return nil
	case stepresult.FieldAttempts:
		m.ResetAttempts()
		return nil
	case stepresult.FieldActualStatusCode:
		m.ResetActualStatusCode()
		return nil
	case stepresult.FieldActualHeaders:
		m.ResetActualHeaders()
		return nil
	case stepresult.FieldActualBody:
		m.ResetActualBody()
		return nil
	case stepresult.FieldBodyDigest:
		m.ResetBodyDigest()
		return nil
	case stepresult.FieldAssertionResults:
		m.ResetAssertionResults()
		return nil
	case stepresult.FieldExtracted:
		m.ResetExtracted()
		return nil
	case stepresult.FieldUnresolved:
		m.ResetUnresolved()
		return nil
	case stepresult.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stepresult.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stepresult.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case stepresult.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case stepresult.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	}
	return fmt.Errorf("unknown StepResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, stepresult.EdgeRun)
	}
	if m.scenario != nil {
		edges = append(edges, stepresult.EdgeScenario)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stepresult.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case stepresult.EdgeScenario:
		if id := m.scenario; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, stepresult.EdgeRun)
	}
	if m.clearedscenario {
		edges = append(edges, stepresult.EdgeScenario)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepResultMutation) EdgeCleared(name string) bool {
	switch name {
	case stepresult.EdgeRun:
		return m.clearedrun
	case stepresult.EdgeScenario:
		return m.clearedscenario
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepResultMutation) ClearEdge(name string) error {
	switch name {
	case stepresult.EdgeRun:
		m.ClearRun()
		return nil
	case stepresult.EdgeScenario:
		m.ClearScenario()
		return nil
	}
	return fmt.Errorf("unknown StepResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepResultMutation) ResetEdge(name string) error {
	switch name {
	case stepresult.EdgeRun:
		m.ResetRun()
		return nil
	case stepresult.EdgeScenario:
		m.ResetScenario()
		return nil
	}
	return fmt.Errorf("unknown StepResult edge %s", name)
}
