// Code generated by ent, DO NOT EDIT.

package scenario

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the scenario type in the database.
	Label = "scenario"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scenario_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldOperationID holds the string denoting the operation_id field in the database.
	FieldOperationID = "operation_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldGenerationAttempts holds the string denoting the generation_attempts field in the database.
	FieldGenerationAttempts = "generation_attempts"
	// FieldFailureKinds holds the string denoting the failure_kinds field in the database.
	FieldFailureKinds = "failure_kinds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeStepResults holds the string denoting the step_results edge name in mutations.
	EdgeStepResults = "step_results"
	// QARunFieldID holds the string denoting the ID field of the QARun.
	QARunFieldID = "run_id"
	// StepResultFieldID holds the string denoting the ID field of the StepResult.
	StepResultFieldID = "step_result_id"
	// Table holds the table name of the scenario in the database.
	Table = "scenarios"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "scenarios"
	// RunInverseTable is the table name for the QARun entity.
	// It exists in this package in order to avoid circular dependency with the "qarun" package.
	RunInverseTable = "qa_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// StepResultsTable is the table that holds the step_results relation/edge.
	StepResultsTable = "step_results"
	// StepResultsInverseTable is the table name for the StepResult entity.
	// It exists in this package in order to avoid circular dependency with the "stepresult" package.
	StepResultsInverseTable = "step_results"
	// StepResultsColumn is the table column denoting the step_results relation/edge.
	StepResultsColumn = "scenario_id"
)

// Columns holds all SQL columns for scenario fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldName,
	FieldDescription,
	FieldSource,
	FieldOperationID,
	FieldStatus,
	FieldTags,
	FieldPriority,
	FieldVersion,
	FieldSteps,
	FieldGenerationAttempts,
	FieldFailureKinds,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultGenerationAttempts holds the default value on creation for the "generation_attempts" field.
	DefaultGenerationAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceAiGenerated Source = "ai_generated"
	SourceManual      Source = "manual"
	SourceImported    Source = "imported"
	SourceReplayed    Source = "replayed"
	SourceFallback    Source = "fallback"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceAiGenerated, SourceManual, SourceImported, SourceReplayed, SourceFallback:
		return nil
	default:
		return fmt.Errorf("scenario: invalid enum value for source field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusReady    Status = "ready"
	StatusInvalid  Status = "invalid"
	StatusDisabled Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusReady, StatusInvalid, StatusDisabled:
		return nil
	default:
		return fmt.Errorf("scenario: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Scenario queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByOperationID orders the results by the operation_id field.
func ByOperationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByGenerationAttempts orders the results by the generation_attempts field.
func ByGenerationAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationAttempts, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepResultsCount orders the results by step_results count.
func ByStepResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepResultsStep(), opts...)
	}
}

// ByStepResults orders the results by step_results terms.
func ByStepResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, QARunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newStepResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepResultsInverseTable, StepResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepResultsTable, StepResultsColumn),
	)
}
