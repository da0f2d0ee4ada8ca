// Code generated by ent, DO NOT EDIT.

package stepresult

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stepresult type in the database.
	Label = "step_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_result_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldScenarioID holds the string denoting the scenario_id field in the database.
	FieldScenarioID = "scenario_id"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldEndpoint holds the string denoting the endpoint field in the database.
	FieldEndpoint = "endpoint"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldActualStatusCode holds the string denoting the actual_status_code field in the database.
	FieldActualStatusCode = "actual_status_code"
	// FieldActualHeaders holds the string denoting the actual_headers field in the database.
	FieldActualHeaders = "actual_headers"
	// FieldActualBody holds the string denoting the actual_body field in the database.
	FieldActualBody = "actual_body"
	// FieldBodyDigest holds the string denoting the body_digest field in the database.
	FieldBodyDigest = "body_digest"
	// FieldAssertionResults holds the string denoting the assertion_results field in the database.
	FieldAssertionResults = "assertion_results"
	// FieldExtracted holds the string denoting the extracted field in the database.
	FieldExtracted = "extracted"
	// FieldUnresolved holds the string denoting the unresolved field in the database.
	FieldUnresolved = "unresolved"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeScenario holds the string denoting the scenario edge name in mutations.
	EdgeScenario = "scenario"
	// QARunFieldID holds the string denoting the ID field of the QARun.
	QARunFieldID = "run_id"
	// ScenarioFieldID holds the string denoting the ID field of the Scenario.
	ScenarioFieldID = "scenario_id"
	// Table holds the table name of the stepresult in the database.
	Table = "step_results"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "step_results"
	// RunInverseTable is the table name for the QARun entity.
	// It exists in this package in order to avoid circular dependency with the "qarun" package.
	RunInverseTable = "qa_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// ScenarioTable is the table that holds the scenario relation/edge.
	ScenarioTable = "step_results"
	// ScenarioInverseTable is the table name for the Scenario entity.
	// It exists in this package in order to avoid circular dependency with the "scenario" package.
	ScenarioInverseTable = "scenarios"
	// ScenarioColumn is the table column denoting the scenario relation/edge.
	ScenarioColumn = "scenario_id"
)

// Columns holds all SQL columns for stepresult fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldScenarioID,
	FieldStepIndex,
	FieldName,
	FieldMethod,
	FieldEndpoint,
	FieldStatus,
	FieldAttempts,
	FieldActualStatusCode,
	FieldActualHeaders,
	FieldActualBody,
	FieldBodyDigest,
	FieldAssertionResults,
	FieldExtracted,
	FieldUnresolved,
	FieldDurationMs,
	FieldStartedAt,
	FieldFinishedAt,
	FieldFailureReason,
	FieldErrorKind,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusErrored Status = "errored"
	StatusSkipped Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPassed, StatusFailed, StatusErrored, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("stepresult: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StepResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByScenarioID orders the results by the scenario_id field.
func ByScenarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioID, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByEndpoint orders the results by the endpoint field.
func ByEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpoint, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByActualStatusCode orders the results by the actual_status_code field.
func ByActualStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualStatusCode, opts...).ToFunc()
}

// ByActualBody orders the results by the actual_body field.
func ByActualBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualBody, opts...).ToFunc()
}

// ByBodyDigest orders the results by the body_digest field.
func ByBodyDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyDigest, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByScenarioField orders the results by scenario field.
func ByScenarioField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScenarioStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, QARunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newScenarioStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScenarioInverseTable, ScenarioFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ScenarioTable, ScenarioColumn),
	)
}
