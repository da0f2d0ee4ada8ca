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
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
)

// StepResult is the model entity for the StepResult schema.
type StepResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// ScenarioID holds the value of the "scenario_id" field.
	ScenarioID string `json:"scenario_id,omitempty"`
	// StepIndex holds the value of the "step_index" field.
	StepIndex int `json:"step_index,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// Resolved target, or the raw template when resolution failed
	Endpoint string `json:"endpoint,omitempty"`
	// Status holds the value of the "status" field.
	Status stepresult.Status `json:"status,omitempty"`
	// Transport attempts dispatched, including retries
	Attempts int `json:"attempts,omitempty"`
	// ActualStatusCode holds the value of the "actual_status_code" field.
	ActualStatusCode *int `json:"actual_status_code,omitempty"`
	// ActualHeaders holds the value of the "actual_headers" field.
	ActualHeaders map[string]string `json:"actual_headers,omitempty"`
	// Truncated to the configured policy size
	ActualBody string `json:"actual_body,omitempty"`
	// SHA-256 of the full response body, always untruncated
	BodyDigest string `json:"body_digest,omitempty"`
	// AssertionResults holds the value of the "assertion_results" field.
	AssertionResults []models.AssertionResult `json:"assertion_results,omitempty"`
	// Extracted holds the value of the "extracted" field.
	Extracted map[string]string `json:"extracted,omitempty"`
	// Placeholders that never resolved, in first-appearance order
	Unresolved []string `json:"unresolved,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt time.Time `json:"finished_at,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepResultQuery when eager-loading is set.
	Edges        StepResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepResultEdges holds the relations/edges for other nodes in the graph.
type StepResultEdges struct {
	// Run holds the value of the run edge.
	Run *QARun `json:"run,omitempty"`
	// Scenario holds the value of the scenario edge.
	Scenario *Scenario `json:"scenario,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepResultEdges) RunOrErr() (*QARun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: qarun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// ScenarioOrErr returns the Scenario value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepResultEdges) ScenarioOrErr() (*Scenario, error) {
	if e.Scenario != nil {
		return e.Scenario, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: scenario.Label}
	}
	return nil, &NotLoadedError{edge: "scenario"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepresult.FieldActualHeaders, stepresult.FieldAssertionResults, stepresult.FieldExtracted, stepresult.FieldUnresolved:
			values[i] = new([]byte)
		case stepresult.FieldStepIndex, stepresult.FieldAttempts, stepresult.FieldActualStatusCode, stepresult.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case stepresult.FieldID, stepresult.FieldRunID, stepresult.FieldScenarioID, stepresult.FieldName, stepresult.FieldMethod, stepresult.FieldEndpoint, stepresult.FieldStatus, stepresult.FieldActualBody, stepresult.FieldBodyDigest, stepresult.FieldFailureReason, stepresult.FieldErrorKind:
			values[i] = new(sql.NullString)
		case stepresult.FieldStartedAt, stepresult.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepResult fields.
func (_m *StepResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stepresult.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case stepresult.FieldScenarioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = value.String
			}
		case stepresult.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case stepresult.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case stepresult.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		case stepresult.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case stepresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stepresult.Status(value.String)
			}
		case stepresult.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case stepresult.FieldActualStatusCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_status_code", values[i])
			} else if value.Valid {
				_m.ActualStatusCode = new(int)
				*_m.ActualStatusCode = int(value.Int64)
			}
		case stepresult.FieldActualHeaders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actual_headers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActualHeaders); err != nil {
					return fmt.Errorf("unmarshal field actual_headers: %w", err)
				}
			}
		case stepresult.FieldActualBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actual_body", values[i])
			} else if value.Valid {
				_m.ActualBody = value.String
			}
		case stepresult.FieldBodyDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_digest", values[i])
			} else if value.Valid {
				_m.BodyDigest = value.String
			}
		case stepresult.FieldAssertionResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assertion_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssertionResults); err != nil {
					return fmt.Errorf("unmarshal field assertion_results: %w", err)
				}
			}
		case stepresult.FieldExtracted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Extracted); err != nil {
					return fmt.Errorf("unmarshal field extracted: %w", err)
				}
			}
		case stepresult.FieldUnresolved:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field unresolved", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Unresolved); err != nil {
					return fmt.Errorf("unmarshal field unresolved: %w", err)
				}
			}
		case stepresult.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case stepresult.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case stepresult.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		case stepresult.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case stepresult.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepResult.
// This includes values selected through modifiers, order, etc.
func (_m *StepResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the StepResult entity.
func (_m *StepResult) QueryRun() *QARunQuery {
	return NewStepResultClient(_m.config).QueryRun(_m)
}

// QueryScenario queries the "scenario" edge of the StepResult entity.
func (_m *StepResult) QueryScenario() *ScenarioQuery {
	return NewStepResultClient(_m.config).QueryScenario(_m)
}

// Update returns a builder for updating this StepResult.
// Note that you need to call StepResult.Unwrap() before calling this method if this StepResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepResult) Update() *StepResultUpdateOne {
	return NewStepResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepResult) Unwrap() *StepResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepResult) String() string {
	var builder strings.Builder
	builder.WriteString("StepResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("scenario_id=")
	builder.WriteString(_m.ScenarioID)
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	if v := _m.ActualStatusCode; v != nil {
		builder.WriteString("actual_status_code=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("actual_headers=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActualHeaders))
	builder.WriteString(", ")
	builder.WriteString("actual_body=")
	builder.WriteString(_m.ActualBody)
	builder.WriteString(", ")
	builder.WriteString("body_digest=")
	builder.WriteString(_m.BodyDigest)
	builder.WriteString(", ")
	builder.WriteString("assertion_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssertionResults))
	builder.WriteString(", ")
	builder.WriteString("extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extracted))
	builder.WriteString(", ")
	builder.WriteString("unresolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unresolved))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// StepResults is a parsable slice of StepResult.
type StepResults []*StepResult
