// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/runpayload"
)

// RunPayload is the model entity for the RunPayload schema.
type RunPayload struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Canonical payload JSON; gzip-compressed above the codec threshold
	Body []byte `json:"body,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int `json:"size_bytes,omitempty"`
	// SHA-256 of the canonical JSON, stable across compression
	ContentHash string `json:"content_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunPayloadQuery when eager-loading is set.
	Edges        RunPayloadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunPayloadEdges holds the relations/edges for other nodes in the graph.
type RunPayloadEdges struct {
	// Run holds the value of the run edge.
	Run *QARun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunPayloadEdges) RunOrErr() (*QARun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: qarun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunPayload) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runpayload.FieldBody:
			values[i] = new([]byte)
		case runpayload.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case runpayload.FieldID, runpayload.FieldRunID, runpayload.FieldContentHash:
			values[i] = new(sql.NullString)
		case runpayload.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunPayload fields.
func (_m *RunPayload) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runpayload.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case runpayload.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case runpayload.FieldBody:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value != nil {
				_m.Body = *value
			}
		case runpayload.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = int(value.Int64)
			}
		case runpayload.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case runpayload.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RunPayload.
// This includes values selected through modifiers, order, etc.
func (_m *RunPayload) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the RunPayload entity.
func (_m *RunPayload) QueryRun() *QARunQuery {
	return NewRunPayloadClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this RunPayload.
// Note that you need to call RunPayload.Unwrap() before calling this method if this RunPayload
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunPayload) Update() *RunPayloadUpdateOne {
	return NewRunPayloadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunPayload entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunPayload) Unwrap() *RunPayload {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunPayload is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunPayload) String() string {
	var builder strings.Builder
	builder.WriteString("RunPayload(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(fmt.Sprintf("%v", _m.Body))
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RunPayloads is a parsable slice of RunPayload.
type RunPayloads []*RunPayload
