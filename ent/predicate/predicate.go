// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CoverageSnapshot is the predicate function for coveragesnapshot builders.
type CoverageSnapshot func(*sql.Selector)

// QARun is the predicate function for qarun builders.
type QARun func(*sql.Selector)

// QASummary is the predicate function for qasummary builders.
type QASummary func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// RunPayload is the predicate function for runpayload builders.
type RunPayload func(*sql.Selector)

// Scenario is the predicate function for scenario builders.
type Scenario func(*sql.Selector)

// StepResult is the predicate function for stepresult builders.
type StepResult func(*sql.Selector)
