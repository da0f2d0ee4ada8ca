// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/pkg/models"
)

// QARun is the model entity for the QARun schema.
type QARun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Natural-language requirement driving generation (full-text searchable)
	RequirementText *string `json:"requirement_text,omitempty"`
	// SpecSource holds the value of the "spec_source" field.
	SpecSource qarun.SpecSource `json:"spec_source,omitempty"`
	// SpecURL holds the value of the "spec_url" field.
	SpecURL *string `json:"spec_url,omitempty"`
	// SpecInline holds the value of the "spec_inline" field.
	SpecInline *string `json:"spec_inline,omitempty"`
	// SHA-256 of the fetched spec bytes, set at SPEC_FETCHED
	SpecHash *string `json:"spec_hash,omitempty"`
	// BaseURL holds the value of the "base_url" field.
	BaseURL string `json:"base_url,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode qarun.Mode `json:"mode,omitempty"`
	// Effective per-run pipeline options
	Config models.RunConfig `json:"config,omitempty"`
	// Status holds the value of the "status" field.
	Status qarun.Status `json:"status,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy string `json:"triggered_by,omitempty"`
	// Source run whose payload this run re-executes
	ReplayOf *string `json:"replay_of,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// For multi-replica coordination
	WorkerID *string `json:"worker_id,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// For orphan detection
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// When the run was requested
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker started processing
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QARunQuery when eager-loading is set.
	Edges        QARunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QARunEdges holds the relations/edges for other nodes in the graph.
type QARunEdges struct {
	// Scenarios holds the value of the scenarios edge.
	Scenarios []*Scenario `json:"scenarios,omitempty"`
	// StepResults holds the value of the step_results edge.
	StepResults []*StepResult `json:"step_results,omitempty"`
	// Events holds the value of the events edge.
	Events []*RunEvent `json:"events,omitempty"`
	// Payload holds the value of the payload edge.
	Payload *RunPayload `json:"payload,omitempty"`
	// Coverage holds the value of the coverage edge.
	Coverage *CoverageSnapshot `json:"coverage,omitempty"`
	// Summary holds the value of the summary edge.
	Summary *QASummary `json:"summary,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// ScenariosOrErr returns the Scenarios value or an error if the edge
// was not loaded in eager-loading.
func (e QARunEdges) ScenariosOrErr() ([]*Scenario, error) {
	if e.loadedTypes[0] {
		return e.Scenarios, nil
	}
	return nil, &NotLoadedError{edge: "scenarios"}
}

// StepResultsOrErr returns the StepResults value or an error if the edge
// was not loaded in eager-loading.
func (e QARunEdges) StepResultsOrErr() ([]*StepResult, error) {
	if e.loadedTypes[1] {
		return e.StepResults, nil
	}
	return nil, &NotLoadedError{edge: "step_results"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e QARunEdges) EventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// PayloadOrErr returns the Payload value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QARunEdges) PayloadOrErr() (*RunPayload, error) {
	if e.Payload != nil {
		return e.Payload, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: runpayload.Label}
	}
	return nil, &NotLoadedError{edge: "payload"}
}

// CoverageOrErr returns the Coverage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QARunEdges) CoverageOrErr() (*CoverageSnapshot, error) {
	if e.Coverage != nil {
		return e.Coverage, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: coveragesnapshot.Label}
	}
	return nil, &NotLoadedError{edge: "coverage"}
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QARunEdges) SummaryOrErr() (*QASummary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: qasummary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QARun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case qarun.FieldConfig:
			values[i] = new([]byte)
		case qarun.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case qarun.FieldID, qarun.FieldName, qarun.FieldDescription, qarun.FieldRequirementText, qarun.FieldSpecSource, qarun.FieldSpecURL, qarun.FieldSpecInline, qarun.FieldSpecHash, qarun.FieldBaseURL, qarun.FieldMode, qarun.FieldStatus, qarun.FieldTriggeredBy, qarun.FieldReplayOf, qarun.FieldErrorMessage, qarun.FieldErrorKind, qarun.FieldWorkerID:
			values[i] = new(sql.NullString)
		case qarun.FieldClaimedAt, qarun.FieldHeartbeatAt, qarun.FieldCreatedAt, qarun.FieldStartedAt, qarun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QARun fields.
func (_m *QARun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case qarun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case qarun.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case qarun.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case qarun.FieldRequirementText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_text", values[i])
			} else if value.Valid {
				_m.RequirementText = new(string)
				*_m.RequirementText = value.String
			}
		case qarun.FieldSpecSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_source", values[i])
			} else if value.Valid {
				_m.SpecSource = qarun.SpecSource(value.String)
			}
		case qarun.FieldSpecURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_url", values[i])
			} else if value.Valid {
				_m.SpecURL = new(string)
				*_m.SpecURL = value.String
			}
		case qarun.FieldSpecInline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_inline", values[i])
			} else if value.Valid {
				_m.SpecInline = new(string)
				*_m.SpecInline = value.String
			}
		case qarun.FieldSpecHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_hash", values[i])
			} else if value.Valid {
				_m.SpecHash = new(string)
				*_m.SpecHash = value.String
			}
		case qarun.FieldBaseURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_url", values[i])
			} else if value.Valid {
				_m.BaseURL = value.String
			}
		case qarun.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = qarun.Mode(value.String)
			}
		case qarun.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case qarun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = qarun.Status(value.String)
			}
		case qarun.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = value.String
			}
		case qarun.FieldReplayOf:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field replay_of", values[i])
			} else if value.Valid {
				_m.ReplayOf = new(string)
				*_m.ReplayOf = value.String
			}
		case qarun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case qarun.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case qarun.FieldWorkerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_id", values[i])
			} else if value.Valid {
				_m.WorkerID = new(string)
				*_m.WorkerID = value.String
			}
		case qarun.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case qarun.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = new(time.Time)
				*_m.HeartbeatAt = value.Time
			}
		case qarun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case qarun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case qarun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case qarun.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QARun.
// This includes values selected through modifiers, order, etc.
func (_m *QARun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScenarios queries the "scenarios" edge of the QARun entity.
func (_m *QARun) QueryScenarios() *ScenarioQuery {
	return NewQARunClient(_m.config).QueryScenarios(_m)
}

// QueryStepResults queries the "step_results" edge of the QARun entity.
func (_m *QARun) QueryStepResults() *StepResultQuery {
	return NewQARunClient(_m.config).QueryStepResults(_m)
}

// QueryEvents queries the "events" edge of the QARun entity.
func (_m *QARun) QueryEvents() *RunEventQuery {
	return NewQARunClient(_m.config).QueryEvents(_m)
}

// QueryPayload queries the "payload" edge of the QARun entity.
func (_m *QARun) QueryPayload() *RunPayloadQuery {
	return NewQARunClient(_m.config).QueryPayload(_m)
}

// QueryCoverage queries the "coverage" edge of the QARun entity.
func (_m *QARun) QueryCoverage() *CoverageSnapshotQuery {
	return NewQARunClient(_m.config).QueryCoverage(_m)
}

// QuerySummary queries the "summary" edge of the QARun entity.
func (_m *QARun) QuerySummary() *QASummaryQuery {
	return NewQARunClient(_m.config).QuerySummary(_m)
}

// Update returns a builder for updating this QARun.
// Note that you need to call QARun.Unwrap() before calling this method if this QARun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QARun) Update() *QARunUpdateOne {
	return NewQARunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QARun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QARun) Unwrap() *QARun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QARun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QARun) String() string {
	var builder strings.Builder
	builder.WriteString("QARun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RequirementText; v != nil {
		builder.WriteString("requirement_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("spec_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecSource))
	builder.WriteString(", ")
	if v := _m.SpecURL; v != nil {
		builder.WriteString("spec_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SpecInline; v != nil {
		builder.WriteString("spec_inline=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SpecHash; v != nil {
		builder.WriteString("spec_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("base_url=")
	builder.WriteString(_m.BaseURL)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(_m.TriggeredBy)
	builder.WriteString(", ")
	if v := _m.ReplayOf; v != nil {
		builder.WriteString("replay_of=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkerID; v != nil {
		builder.WriteString("worker_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QARuns is a parsable slice of QARun.
type QARuns []*QARun
