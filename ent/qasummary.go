// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
)

// QASummary is the model entity for the QASummary schema.
type QASummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// OverallVerdict holds the value of the "overall_verdict" field.
	OverallVerdict qasummary.OverallVerdict `json:"overall_verdict,omitempty"`
	// PassedScenarios holds the value of the "passed_scenarios" field.
	PassedScenarios int `json:"passed_scenarios,omitempty"`
	// FailedScenarios holds the value of the "failed_scenarios" field.
	FailedScenarios int `json:"failed_scenarios,omitempty"`
	// ErroredScenarios holds the value of the "errored_scenarios" field.
	ErroredScenarios int `json:"errored_scenarios,omitempty"`
	// NarrativeSummary holds the value of the "narrative_summary" field.
	NarrativeSummary string `json:"narrative_summary,omitempty"`
	// Whether the narrative came from the provider or the deterministic template
	NarrativeSource qasummary.NarrativeSource `json:"narrative_source,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// 0..100 composite of pass rate and coverage
	QualityScore int `json:"quality_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QASummaryQuery when eager-loading is set.
	Edges        QASummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QASummaryEdges holds the relations/edges for other nodes in the graph.
type QASummaryEdges struct {
	// Run holds the value of the run edge.
	Run *QARun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QASummaryEdges) RunOrErr() (*QARun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: qarun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QASummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case qasummary.FieldRecommendations:
			values[i] = new([]byte)
		case qasummary.FieldPassedScenarios, qasummary.FieldFailedScenarios, qasummary.FieldErroredScenarios, qasummary.FieldQualityScore:
			values[i] = new(sql.NullInt64)
		case qasummary.FieldID, qasummary.FieldRunID, qasummary.FieldOverallVerdict, qasummary.FieldNarrativeSummary, qasummary.FieldNarrativeSource:
			values[i] = new(sql.NullString)
		case qasummary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QASummary fields.
func (_m *QASummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case qasummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case qasummary.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case qasummary.FieldOverallVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field overall_verdict", values[i])
			} else if value.Valid {
				_m.OverallVerdict = qasummary.OverallVerdict(value.String)
			}
		case qasummary.FieldPassedScenarios:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field passed_scenarios", values[i])
			} else if value.Valid {
				_m.PassedScenarios = int(value.Int64)
			}
		case qasummary.FieldFailedScenarios:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_scenarios", values[i])
			} else if value.Valid {
				_m.FailedScenarios = int(value.Int64)
			}
		case qasummary.FieldErroredScenarios:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errored_scenarios", values[i])
			} else if value.Valid {
				_m.ErroredScenarios = int(value.Int64)
			}
		case qasummary.FieldNarrativeSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_summary", values[i])
			} else if value.Valid {
				_m.NarrativeSummary = value.String
			}
		case qasummary.FieldNarrativeSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_source", values[i])
			} else if value.Valid {
				_m.NarrativeSource = qasummary.NarrativeSource(value.String)
			}
		case qasummary.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case qasummary.FieldQualityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = int(value.Int64)
			}
		case qasummary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QASummary.
// This includes values selected through modifiers, order, etc.
func (_m *QASummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the QASummary entity.
func (_m *QASummary) QueryRun() *QARunQuery {
	return NewQASummaryClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this QASummary.
// Note that you need to call QASummary.Unwrap() before calling this method if this QASummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QASummary) Update() *QASummaryUpdateOne {
	return NewQASummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QASummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QASummary) Unwrap() *QASummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QASummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QASummary) String() string {
	var builder strings.Builder
	builder.WriteString("QASummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("overall_verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallVerdict))
	builder.WriteString(", ")
	builder.WriteString("passed_scenarios=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassedScenarios))
	builder.WriteString(", ")
	builder.WriteString("failed_scenarios=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedScenarios))
	builder.WriteString(", ")
	builder.WriteString("errored_scenarios=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErroredScenarios))
	builder.WriteString(", ")
	builder.WriteString("narrative_summary=")
	builder.WriteString(_m.NarrativeSummary)
	builder.WriteString(", ")
	builder.WriteString("narrative_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.NarrativeSource))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QASummaries is a parsable slice of QASummary.
type QASummaries []*QASummary
