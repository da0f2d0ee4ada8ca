// Code generated by ent, DO NOT EDIT.

package coveragesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the coveragesnapshot type in the database.
	Label = "coverage_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "coverage_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldOpsTotal holds the string denoting the ops_total field in the database.
	FieldOpsTotal = "ops_total"
	// FieldOpsCovered holds the string denoting the ops_covered field in the database.
	FieldOpsCovered = "ops_covered"
	// FieldOpsFailed holds the string denoting the ops_failed field in the database.
	FieldOpsFailed = "ops_failed"
	// FieldUncoveredOps holds the string denoting the uncovered_ops field in the database.
	FieldUncoveredOps = "uncovered_ops"
	// FieldPerOpStatus holds the string denoting the per_op_status field in the database.
	FieldPerOpStatus = "per_op_status"
	// FieldScenariosPassed holds the string denoting the scenarios_passed field in the database.
	FieldScenariosPassed = "scenarios_passed"
	// FieldScenariosFailed holds the string denoting the scenarios_failed field in the database.
	FieldScenariosFailed = "scenarios_failed"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// QARunFieldID holds the string denoting the ID field of the QARun.
	QARunFieldID = "run_id"
	// Table holds the table name of the coveragesnapshot in the database.
	Table = "coverage_snapshots"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "coverage_snapshots"
	// RunInverseTable is the table name for the QARun entity.
	// It exists in this package in order to avoid circular dependency with the "qarun" package.
	RunInverseTable = "qa_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for coveragesnapshot fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldOpsTotal,
	FieldOpsCovered,
	FieldOpsFailed,
	FieldUncoveredOps,
	FieldPerOpStatus,
	FieldScenariosPassed,
	FieldScenariosFailed,
	FieldComputedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
)

// OrderOption defines the ordering options for the CoverageSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByOpsTotal orders the results by the ops_total field.
func ByOpsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpsTotal, opts...).ToFunc()
}

// ByOpsCovered orders the results by the ops_covered field.
func ByOpsCovered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpsCovered, opts...).ToFunc()
}

// ByOpsFailed orders the results by the ops_failed field.
func ByOpsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpsFailed, opts...).ToFunc()
}

// ByScenariosPassed orders the results by the scenarios_passed field.
func ByScenariosPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenariosPassed, opts...).ToFunc()
}

// ByScenariosFailed orders the results by the scenarios_failed field.
func ByScenariosFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenariosFailed, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, QARunFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
	)
}
