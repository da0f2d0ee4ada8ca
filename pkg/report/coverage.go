// Package report computes the end-of-run artifacts: the per-operation
// coverage snapshot and the QA summary with verdict, quality score,
// recommendations, and narrative.
package report

import (
	"time"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
)

// BuildCoverage classifies every enumerated operation of doc against the
// executed steps. An operation is COVERED when at least one passed step
// exercised it, FAILED when steps reached it but none passed, UNTESTED when
// nothing exercised it. Skipped steps exercise nothing.
//
// doc may be nil (replayed runs carry no spec); the snapshot then reports
// zero operations and only the scenario tallies.
func BuildCoverage(runID string, doc *openapi.Document, outcomes []models.ScenarioOutcome) *models.CoverageSnapshot {
	snap := &models.CoverageSnapshot{
		RunID:       runID,
		PerOpStatus: make(map[string]models.OperationOutcome),
		ComputedAt:  time.Now().UTC(),
	}
	for i := range outcomes {
		if outcomes[i].Passed {
			snap.ScenariosPassed++
		} else {
			snap.ScenariosFailed++
		}
	}
	if doc == nil {
		return snap
	}

	snap.OpsTotal = len(doc.Operations)
	type opState struct {
		exercised bool
		passed    bool
	}
	states := make(map[string]*opState, len(doc.Operations))
	for _, op := range doc.Operations {
		states[op.Ref().Key()] = &opState{}
	}

	for i := range outcomes {
		for j := range outcomes[i].Steps {
			sr := &outcomes[i].Steps[j]
			if sr.Status == models.StepStatusSkipped {
				continue
			}
			op, ok := doc.MatchOperation(sr.Method, sr.Endpoint)
			if !ok {
				continue
			}
			st := states[op.Ref().Key()]
			st.exercised = true
			if sr.Status == models.StepStatusPassed {
				st.passed = true
			}
		}
	}

	for _, op := range doc.Operations {
		ref := op.Ref()
		st := states[ref.Key()]
		switch {
		case st.passed:
			snap.PerOpStatus[ref.Key()] = models.OpCovered
			snap.OpsCovered++
		case st.exercised:
			snap.PerOpStatus[ref.Key()] = models.OpFailed
			snap.OpsFailed++
		default:
			snap.PerOpStatus[ref.Key()] = models.OpUntested
			snap.UncoveredOps = append(snap.UncoveredOps, ref)
		}
	}
	return snap
}
