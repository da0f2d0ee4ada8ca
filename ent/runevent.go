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
	"github.com/qawave/qawave/ent/runevent"
)

// RunEvent is the model entity for the RunEvent schema.
type RunEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Allocated under the run row lock; gapless per run
	Seq int `json:"seq,omitempty"`
	// Type holds the value of the "type" field.
	Type runevent.Type `json:"type,omitempty"`
	// Structured event data, bounded in size
	Payload map[string]interface{} `json:"payload,omitempty"`
	// ScenarioID holds the value of the "scenario_id" field.
	ScenarioID *string `json:"scenario_id,omitempty"`
	// StepResultID holds the value of the "step_result_id" field.
	StepResultID *string `json:"step_result_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunEventQuery when eager-loading is set.
	Edges        RunEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEventEdges holds the relations/edges for other nodes in the graph.
type RunEventEdges struct {
	// Run holds the value of the run edge.
	Run *QARun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEventEdges) RunOrErr() (*QARun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: qarun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runevent.FieldPayload:
			values[i] = new([]byte)
		case runevent.FieldSeq:
			values[i] = new(sql.NullInt64)
		case runevent.FieldID, runevent.FieldRunID, runevent.FieldType, runevent.FieldScenarioID, runevent.FieldStepResultID, runevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case runevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunEvent fields.
func (_m *RunEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case runevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case runevent.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case runevent.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = runevent.Type(value.String)
			}
		case runevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case runevent.FieldScenarioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = new(string)
				*_m.ScenarioID = value.String
			}
		case runevent.FieldStepResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_result_id", values[i])
			} else if value.Valid {
				_m.StepResultID = new(string)
				*_m.StepResultID = value.String
			}
		case runevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case runevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RunEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RunEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the RunEvent entity.
func (_m *RunEvent) QueryRun() *QARunQuery {
	return NewRunEventClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this RunEvent.
// Note that you need to call RunEvent.Unwrap() before calling this method if this RunEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunEvent) Update() *RunEventUpdateOne {
	return NewRunEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunEvent) Unwrap() *RunEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RunEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	if v := _m.ScenarioID; v != nil {
		builder.WriteString("scenario_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StepResultID; v != nil {
		builder.WriteString("step_result_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RunEvents is a parsable slice of RunEvent.
type RunEvents []*RunEvent
