// Code generated by ent, DO NOT EDIT.

package qarun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the qarun type in the database.
	Label = "qa_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRequirementText holds the string denoting the requirement_text field in the database.
	FieldRequirementText = "requirement_text"
	// FieldSpecSource holds the string denoting the spec_source field in the database.
	FieldSpecSource = "spec_source"
	// FieldSpecURL holds the string denoting the spec_url field in the database.
	FieldSpecURL = "spec_url"
	// FieldSpecInline holds the string denoting the spec_inline field in the database.
	FieldSpecInline = "spec_inline"
	// FieldSpecHash holds the string denoting the spec_hash field in the database.
	FieldSpecHash = "spec_hash"
	// FieldBaseURL holds the string denoting the base_url field in the database.
	FieldBaseURL = "base_url"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldReplayOf holds the string denoting the replay_of field in the database.
	FieldReplayOf = "replay_of"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// EdgeScenarios holds the string denoting the scenarios edge name in mutations.
	EdgeScenarios = "scenarios"
	// EdgeStepResults holds the string denoting the step_results edge name in mutations.
	EdgeStepResults = "step_results"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgePayload holds the string denoting the payload edge name in mutations.
	EdgePayload = "payload"
	// EdgeCoverage holds the string denoting the coverage edge name in mutations.
	EdgeCoverage = "coverage"
	// EdgeSummary holds the string denoting the summary edge name in mutations.
	EdgeSummary = "summary"
	// ScenarioFieldID holds the string denoting the ID field of the Scenario.
	ScenarioFieldID = "scenario_id"
	// StepResultFieldID holds the string denoting the ID field of the StepResult.
	StepResultFieldID = "step_result_id"
	// RunEventFieldID holds the string denoting the ID field of the RunEvent.
	RunEventFieldID = "event_id"
	// RunPayloadFieldID holds the string denoting the ID field of the RunPayload.
	RunPayloadFieldID = "payload_id"
	// CoverageSnapshotFieldID holds the string denoting the ID field of the CoverageSnapshot.
	CoverageSnapshotFieldID = "coverage_id"
	// QASummaryFieldID holds the string denoting the ID field of the QASummary.
	QASummaryFieldID = "summary_id"
	// Table holds the table name of the qarun in the database.
	Table = "qa_runs"
	// ScenariosTable is the table that holds the scenarios relation/edge.
	ScenariosTable = "scenarios"
	// ScenariosInverseTable is the table name for the Scenario entity.
	// It exists in this package in order to avoid circular dependency with the "scenario" package.
	ScenariosInverseTable = "scenarios"
	// ScenariosColumn is the table column denoting the scenarios relation/edge.
	ScenariosColumn = "run_id"
	// StepResultsTable is the table that holds the step_results relation/edge.
	StepResultsTable = "step_results"
	// StepResultsInverseTable is the table name for the StepResult entity.
	// It exists in this package in order to avoid circular dependency with the "stepresult" package.
	StepResultsInverseTable = "step_results"
	// StepResultsColumn is the table column denoting the step_results relation/edge.
	StepResultsColumn = "run_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "run_events"
	// EventsInverseTable is the table name for the RunEvent entity.
	// It exists in this package in order to avoid circular dependency with the "runevent" package.
	EventsInverseTable = "run_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "run_id"
	// PayloadTable is the table that holds the payload relation/edge.
	PayloadTable = "run_payloads"
	// PayloadInverseTable is the table name for the RunPayload entity.
	// It exists in this package in order to avoid circular dependency with the "runpayload" package.
	PayloadInverseTable = "run_payloads"
	// PayloadColumn is the table column denoting the payload relation/edge.
	PayloadColumn = "run_id"
	// CoverageTable is the table that holds the coverage relation/edge.
	CoverageTable = "coverage_snapshots"
	// CoverageInverseTable is the table name for the CoverageSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "coveragesnapshot" package.
	CoverageInverseTable = "coverage_snapshots"
	// CoverageColumn is the table column denoting the coverage relation/edge.
	CoverageColumn = "run_id"
	// SummaryTable is the table that holds the summary relation/edge.
	SummaryTable = "qa_summaries"
	// SummaryInverseTable is the table name for the QASummary entity.
	// It exists in this package in order to avoid circular dependency with the "qasummary" package.
	SummaryInverseTable = "qa_summaries"
	// SummaryColumn is the table column denoting the summary relation/edge.
	SummaryColumn = "run_id"
)

// Columns holds all SQL columns for qarun fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldRequirementText,
	FieldSpecSource,
	FieldSpecURL,
	FieldSpecInline,
	FieldSpecHash,
	FieldBaseURL,
	FieldMode,
	FieldConfig,
	FieldStatus,
	FieldTriggeredBy,
	FieldReplayOf,
	FieldErrorMessage,
	FieldErrorKind,
	FieldWorkerID,
	FieldClaimedAt,
	FieldHeartbeatAt,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
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

// SpecSource defines the type for the "spec_source" enum field.
type SpecSource string

// SpecSource values.
const (
	SpecSourceURL    SpecSource = "url"
	SpecSourceInline SpecSource = "inline"
)

func (ss SpecSource) String() string {
	return string(ss)
}

// SpecSourceValidator is a validator for the "spec_source" field enum values. It is called by the builders before save.
func SpecSourceValidator(ss SpecSource) error {
	switch ss {
	case SpecSourceURL, SpecSourceInline:
		return nil
	default:
		return fmt.Errorf("qarun: invalid enum value for spec_source field: %q", ss)
	}
}

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeStandard is the default value of the Mode enum.
const DefaultMode = ModeStandard

// Mode values.
const (
	ModeStandard    Mode = "standard"
	ModeSecurity    Mode = "security"
	ModePerformance Mode = "performance"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeStandard, ModeSecurity, ModePerformance:
		return nil
	default:
		return fmt.Errorf("qarun: invalid enum value for mode field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRequested is the default value of the Status enum.
const DefaultStatus = StatusRequested

// Status values.
const (
	StatusRequested           Status = "requested"
	StatusSpecFetched         Status = "spec_fetched"
	StatusAiSuccess           Status = "ai_success"
	StatusExecutionInProgress Status = "execution_in_progress"
	StatusExecutionComplete   Status = "execution_complete"
	StatusQaEvalInProgress    Status = "qa_eval_in_progress"
	StatusQaEvalDone          Status = "qa_eval_done"
	StatusComplete            Status = "complete"
	StatusCancelled           Status = "cancelled"
	StatusFailedSpecFetch     Status = "failed_spec_fetch"
	StatusFailedGeneration    Status = "failed_generation"
	StatusFailedExecution     Status = "failed_execution"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRequested, StatusSpecFetched, StatusAiSuccess, StatusExecutionInProgress, StatusExecutionComplete, StatusQaEvalInProgress, StatusQaEvalDone, StatusComplete, StatusCancelled, StatusFailedSpecFetch, StatusFailedGeneration, StatusFailedExecution:
		return nil
	default:
		return fmt.Errorf("qarun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QARun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRequirementText orders the results by the requirement_text field.
func ByRequirementText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequirementText, opts...).ToFunc()
}

// BySpecSource orders the results by the spec_source field.
func BySpecSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecSource, opts...).ToFunc()
}

// BySpecURL orders the results by the spec_url field.
func BySpecURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecURL, opts...).ToFunc()
}

// BySpecInline orders the results by the spec_inline field.
func BySpecInline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecInline, opts...).ToFunc()
}

// BySpecHash orders the results by the spec_hash field.
func BySpecHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecHash, opts...).ToFunc()
}

// ByBaseURL orders the results by the base_url field.
func ByBaseURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseURL, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByReplayOf orders the results by the replay_of field.
func ByReplayOf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplayOf, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByScenariosCount orders the results by scenarios count.
func ByScenariosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScenariosStep(), opts...)
	}
}

// ByScenarios orders the results by scenarios terms.
func ByScenarios(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScenariosStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPayloadField orders the results by payload field.
func ByPayloadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPayloadStep(), sql.OrderByField(field, opts...))
	}
}

// ByCoverageField orders the results by coverage field.
func ByCoverageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCoverageStep(), sql.OrderByField(field, opts...))
	}
}

// BySummaryField orders the results by summary field.
func BySummaryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummaryStep(), sql.OrderByField(field, opts...))
	}
}
func newScenariosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScenariosInverseTable, ScenarioFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScenariosTable, ScenariosColumn),
	)
}
func newStepResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepResultsInverseTable, StepResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepResultsTable, StepResultsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, RunEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newPayloadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PayloadInverseTable, RunPayloadFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PayloadTable, PayloadColumn),
	)
}
func newCoverageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CoverageInverseTable, CoverageSnapshotFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, CoverageTable, CoverageColumn),
	)
}
func newSummaryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummaryInverseTable, QASummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
	)
}
