// Code generated by ent, DO NOT EDIT.

package qasummary

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the qasummary type in the database.
	Label = "qa_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "summary_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldOverallVerdict holds the string denoting the overall_verdict field in the database.
	FieldOverallVerdict = "overall_verdict"
	// FieldPassedScenarios holds the string denoting the passed_scenarios field in the database.
	FieldPassedScenarios = "passed_scenarios"
	// FieldFailedScenarios holds the string denoting the failed_scenarios field in the database.
	FieldFailedScenarios = "failed_scenarios"
	// FieldErroredScenarios holds the string denoting the errored_scenarios field in the database.
	FieldErroredScenarios = "errored_scenarios"
	// FieldNarrativeSummary holds the string denoting the narrative_summary field in the database.
	FieldNarrativeSummary = "narrative_summary"
	// FieldNarrativeSource holds the string denoting the narrative_source field in the database.
	FieldNarrativeSource = "narrative_source"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// QARunFieldID holds the string denoting the ID field of the QARun.
	QARunFieldID = "run_id"
	// Table holds the table name of the qasummary in the database.
	Table = "qa_summaries"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "qa_summaries"
	// RunInverseTable is the table name for the QARun entity.
	// It exists in this package in order to avoid circular dependency with the "qarun" package.
	RunInverseTable = "qa_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for qasummary fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldOverallVerdict,
	FieldPassedScenarios,
	FieldFailedScenarios,
	FieldErroredScenarios,
	FieldNarrativeSummary,
	FieldNarrativeSource,
	FieldRecommendations,
	FieldQualityScore,
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

// OverallVerdict defines the type for the "overall_verdict" enum field.
type OverallVerdict string

// OverallVerdict values.
const (
	OverallVerdictPASS         OverallVerdict = "PASS"
	OverallVerdictFAIL         OverallVerdict = "FAIL"
	OverallVerdictINCONCLUSIVE OverallVerdict = "INCONCLUSIVE"
)

func (ov OverallVerdict) String() string {
	return string(ov)
}

// OverallVerdictValidator is a validator for the "overall_verdict" field enum values. It is called by the builders before save.
func OverallVerdictValidator(ov OverallVerdict) error {
	switch ov {
	case OverallVerdictPASS, OverallVerdictFAIL, OverallVerdictINCONCLUSIVE:
		return nil
	default:
		return fmt.Errorf("qasummary: invalid enum value for overall_verdict field: %q", ov)
	}
}

// NarrativeSource defines the type for the "narrative_source" enum field.
type NarrativeSource string

// NarrativeSource values.
const (
	NarrativeSourceAi       NarrativeSource = "ai"
	NarrativeSourceTemplate NarrativeSource = "template"
)

func (ns NarrativeSource) String() string {
	return string(ns)
}

// NarrativeSourceValidator is a validator for the "narrative_source" field enum values. It is called by the builders before save.
func NarrativeSourceValidator(ns NarrativeSource) error {
	switch ns {
	case NarrativeSourceAi, NarrativeSourceTemplate:
		return nil
	default:
		return fmt.Errorf("qasummary: invalid enum value for narrative_source field: %q", ns)
	}
}

// OrderOption defines the ordering options for the QASummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByOverallVerdict orders the results by the overall_verdict field.
func ByOverallVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallVerdict, opts...).ToFunc()
}

// ByPassedScenarios orders the results by the passed_scenarios field.
func ByPassedScenarios(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassedScenarios, opts...).ToFunc()
}

// ByFailedScenarios orders the results by the failed_scenarios field.
func ByFailedScenarios(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedScenarios, opts...).ToFunc()
}

// ByErroredScenarios orders the results by the errored_scenarios field.
func ByErroredScenarios(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErroredScenarios, opts...).ToFunc()
}

// ByNarrativeSummary orders the results by the narrative_summary field.
func ByNarrativeSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrativeSummary, opts...).ToFunc()
}

// ByNarrativeSource orders the results by the narrative_source field.
func ByNarrativeSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrativeSource, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
	)
}
