// Code generated by ent, DO NOT EDIT.

package runevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the runevent type in the database.
	Label = "run_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldScenarioID holds the string denoting the scenario_id field in the database.
	FieldScenarioID = "scenario_id"
	// FieldStepResultID holds the string denoting the step_result_id field in the database.
	FieldStepResultID = "step_result_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// QARunFieldID holds the string denoting the ID field of the QARun.
	QARunFieldID = "run_id"
	// Table holds the table name of the runevent in the database.
	Table = "run_events"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "run_events"
	// RunInverseTable is the table name for the QARun entity.
	// It exists in this package in order to avoid circular dependency with the "qarun" package.
	RunInverseTable = "qa_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for runevent fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldSeq,
	FieldType,
	FieldPayload,
	FieldScenarioID,
	FieldStepResultID,
	FieldErrorMessage,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeREQUESTED                  Type = "REQUESTED"
	TypeSPEC_FETCHED               Type = "SPEC_FETCHED"
	TypeSPEC_FETCH_FAILED          Type = "SPEC_FETCH_FAILED"
	TypeSCENARIO_CREATED           Type = "SCENARIO_CREATED"
	TypeSCENARIO_GENERATION_FAILED Type = "SCENARIO_GENERATION_FAILED"
	TypeAI_SUCCESS                 Type = "AI_SUCCESS"
	TypeAI_FAILED                  Type = "AI_FAILED"
	TypeEXECUTION_STARTED          Type = "EXECUTION_STARTED"
	TypeEXECUTION_SUCCESS          Type = "EXECUTION_SUCCESS"
	TypeEXECUTION_FAILED           Type = "EXECUTION_FAILED"
	TypeQA_EVAL_STARTED            Type = "QA_EVAL_STARTED"
	TypeQA_EVAL_DONE               Type = "QA_EVAL_DONE"
	TypeQA_EVAL_FAILED             Type = "QA_EVAL_FAILED"
	TypeCOMPLETE                   Type = "COMPLETE"
	TypeFAILED                     Type = "FAILED"
	TypeCANCELLED                  Type = "CANCELLED"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeREQUESTED, TypeSPEC_FETCHED, TypeSPEC_FETCH_FAILED, TypeSCENARIO_CREATED, TypeSCENARIO_GENERATION_FAILED, TypeAI_SUCCESS, TypeAI_FAILED, TypeEXECUTION_STARTED, TypeEXECUTION_SUCCESS, TypeEXECUTION_FAILED, TypeQA_EVAL_STARTED, TypeQA_EVAL_DONE, TypeQA_EVAL_FAILED, TypeCOMPLETE, TypeFAILED, TypeCANCELLED:
		return nil
	default:
		return fmt.Errorf("runevent: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the RunEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByScenarioID orders the results by the scenario_id field.
func ByScenarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioID, opts...).ToFunc()
}

// ByStepResultID orders the results by the step_result_id field.
func ByStepResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepResultID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
