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
	"github.com/qawave/qawave/pkg/models"
)

// CoverageSnapshot is the model entity for the CoverageSnapshot schema.
type CoverageSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// OpsTotal holds the value of the "ops_total" field.
	OpsTotal int `json:"ops_total,omitempty"`
	// OpsCovered holds the value of the "ops_covered" field.
	OpsCovered int `json:"ops_covered,omitempty"`
	// OpsFailed holds the value of the "ops_failed" field.
	OpsFailed int `json:"ops_failed,omitempty"`
	// UncoveredOps holds the value of the "uncovered_ops" field.
	UncoveredOps []models.OperationRef `json:"uncovered_ops,omitempty"`
	// "METHOD path" key to COVERED/FAILED/UNTESTED
	PerOpStatus map[string]models.OperationOutcome `json:"per_op_status,omitempty"`
	// ScenariosPassed holds the value of the "scenarios_passed" field.
	ScenariosPassed int `json:"scenarios_passed,omitempty"`
	// ScenariosFailed holds the value of the "scenarios_failed" field.
	ScenariosFailed int `json:"scenarios_failed,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CoverageSnapshotQuery when eager-loading is set.
	Edges        CoverageSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CoverageSnapshotEdges holds the relations/edges for other nodes in the graph.
type CoverageSnapshotEdges struct {
	// Run holds the value of the run edge.
	Run *QARun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CoverageSnapshotEdges) RunOrErr() (*QARun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: qarun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CoverageSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coveragesnapshot.FieldUncoveredOps, coveragesnapshot.FieldPerOpStatus:
			values[i] = new([]byte)
		case coveragesnapshot.FieldOpsTotal, coveragesnapshot.FieldOpsCovered, coveragesnapshot.FieldOpsFailed, coveragesnapshot.FieldScenariosPassed, coveragesnapshot.FieldScenariosFailed:
			values[i] = new(sql.NullInt64)
		case coveragesnapshot.FieldID, coveragesnapshot.FieldRunID:
			values[i] = new(sql.NullString)
		case coveragesnapshot.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CoverageSnapshot fields.
func (_m *CoverageSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coveragesnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case coveragesnapshot.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case coveragesnapshot.FieldOpsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ops_total", values[i])
			} else if value.Valid {
				_m.OpsTotal = int(value.Int64)
			}
		case coveragesnapshot.FieldOpsCovered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ops_covered", values[i])
			} else if value.Valid {
				_m.OpsCovered = int(value.Int64)
			}
		case coveragesnapshot.FieldOpsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ops_failed", values[i])
			} else if value.Valid {
				_m.OpsFailed = int(value.Int64)
			}
		case coveragesnapshot.FieldUncoveredOps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field uncovered_ops", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UncoveredOps); err != nil {
					return fmt.Errorf("unmarshal field uncovered_ops: %w", err)
				}
			}
		case coveragesnapshot.FieldPerOpStatus:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field per_op_status", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PerOpStatus); err != nil {
					return fmt.Errorf("unmarshal field per_op_status: %w", err)
				}
			}
		case coveragesnapshot.FieldScenariosPassed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenarios_passed", values[i])
			} else if value.Valid {
				_m.ScenariosPassed = int(value.Int64)
			}
		case coveragesnapshot.FieldScenariosFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenarios_failed", values[i])
			} else if value.Valid {
				_m.ScenariosFailed = int(value.Int64)
			}
		case coveragesnapshot.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CoverageSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *CoverageSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the CoverageSnapshot entity.
func (_m *CoverageSnapshot) QueryRun() *QARunQuery {
	return NewCoverageSnapshotClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this CoverageSnapshot.
// Note that you need to call CoverageSnapshot.Unwrap() before calling this method if this CoverageSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CoverageSnapshot) Update() *CoverageSnapshotUpdateOne {
	return NewCoverageSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CoverageSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CoverageSnapshot) Unwrap() *CoverageSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CoverageSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CoverageSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("CoverageSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("ops_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpsTotal))
	builder.WriteString(", ")
	builder.WriteString("ops_covered=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpsCovered))
	builder.WriteString(", ")
	builder.WriteString("ops_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpsFailed))
	builder.WriteString(", ")
	builder.WriteString("uncovered_ops=")
	builder.WriteString(fmt.Sprintf("%v", _m.UncoveredOps))
	builder.WriteString(", ")
	builder.WriteString("per_op_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.PerOpStatus))
	builder.WriteString(", ")
	builder.WriteString("scenarios_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScenariosPassed))
	builder.WriteString(", ")
	builder.WriteString("scenarios_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScenariosFailed))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CoverageSnapshots is a parsable slice of CoverageSnapshot.
type CoverageSnapshots []*CoverageSnapshot
