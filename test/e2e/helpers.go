package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/services"
)

// ────────────────────────────────────────────────────────────
// Run submission
// ────────────────────────────────────────────────────────────

// CreateRun submits a run through the run service and returns the row.
// The queue workers pick it up exactly as they would in production.
func (app *TestApp) CreateRun(t *testing.T, req models.CreateRunRequest) *ent.QARun {
	t.Helper()
	run, err := app.Runs.CreateRun(context.Background(), req)
	require.NoError(t, err)
	return run
}

// ────────────────────────────────────────────────────────────
// Polling helpers
// ────────────────────────────────────────────────────────────

// WaitForRunStatus polls the DB until the run reaches one of the expected
// statuses and returns the one it landed on.
func (app *TestApp) WaitForRunStatus(t *testing.T, runID string, expected ...models.RunStatus) models.RunStatus {
	t.Helper()
	var actual models.RunStatus
	require.Eventually(t, func() bool {
		run, err := app.EntClient.QARun.Get(context.Background(), runID)
		if err != nil {
			return false
		}
		actual = models.RunStatus(run.Status)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"run %s did not reach status %v (last: %s)", runID, expected, actual)
	return actual
}

// WaitForTerminal polls until the run reaches any terminal status and
// returns it. Tests assert on the returned status, so a run that fails
// instead of completing reports the wrong terminal rather than a timeout.
func (app *TestApp) WaitForTerminal(t *testing.T, runID string) models.RunStatus {
	t.Helper()
	return app.WaitForRunStatus(t, runID,
		models.RunStatusComplete,
		models.RunStatusCancelled,
		models.RunStatusFailedSpecFetch,
		models.RunStatusFailedGeneration,
		models.RunStatusFailedExecution,
	)
}

// WaitForNRunsInStatus waits until exactly n runs have the given status.
// The DB query is inlined so transient errors cause a retry rather than
// aborting the test.
func (app *TestApp) WaitForNRunsInStatus(t *testing.T, n int, status models.RunStatus) {
	t.Helper()
	var lastCount int
	require.Eventually(t, func() bool {
		count, err := app.EntClient.QARun.Query().
			Where(qarun.StatusEQ(qarun.Status(status))).
			Count(context.Background())
		if err != nil {
			return false
		}
		lastCount = count
		return lastCount == n
	}, 30*time.Second, 100*time.Millisecond,
		"expected %d runs in status %q, last saw %d", n, status, lastCount)
}

// WaitForScenarioCompletions polls the journal until at least n
// scenario-level completion events exist for the run. Used by cancellation
// tests to cancel only after some scenarios have genuinely finished.
func (app *TestApp) WaitForScenarioCompletions(t *testing.T, runID string, n int) {
	t.Helper()
	var lastCount int
	require.Eventually(t, func() bool {
		count, err := app.EntClient.RunEvent.Query().
			Where(
				runevent.RunIDEQ(runID),
				runevent.TypeIn(
					runevent.Type(models.EventExecutionSuccess),
					runevent.Type(models.EventExecutionFailed),
				),
				runevent.ScenarioIDNotNil(),
			).
			Count(context.Background())
		if err != nil {
			return false
		}
		lastCount = count
		return lastCount >= n
	}, 30*time.Second, 50*time.Millisecond,
		"run %s: expected >=%d scenario completion events, last saw %d", runID, n, lastCount)
}

// ────────────────────────────────────────────────────────────
// Journal queries
// ────────────────────────────────────────────────────────────

// QueryJournal returns the run's full journal ordered by seq.
func (app *TestApp) QueryJournal(t *testing.T, runID string) []*ent.RunEvent {
	t.Helper()
	events, err := app.EntClient.RunEvent.Query().
		Where(runevent.RunIDEQ(runID)).
		Order(ent.Asc(runevent.FieldSeq)).
		All(context.Background())
	require.NoError(t, err)
	return events
}

// JournalTypes projects a journal to its event type sequence.
func JournalTypes(events []*ent.RunEvent) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = string(e.Type)
	}
	return types
}

// EventsOfType filters a journal to one event type, preserving order.
func EventsOfType(events []*ent.RunEvent, typ models.RunEventType) []*ent.RunEvent {
	var out []*ent.RunEvent
	for _, e := range events {
		if string(e.Type) == string(typ) {
			out = append(out, e)
		}
	}
	return out
}

// RequireGaplessSeq asserts the journal seq numbers are 1..n in order.
func RequireGaplessSeq(t *testing.T, events []*ent.RunEvent) {
	t.Helper()
	for i, e := range events {
		require.Equal(t, i+1, e.Seq, "journal seq gap at position %d (type %s)", i, e.Type)
	}
}

// ────────────────────────────────────────────────────────────
// Data queries
// ────────────────────────────────────────────────────────────

// QueryScenarios returns all scenario rows of a run, oldest first.
func (app *TestApp) QueryScenarios(t *testing.T, runID string) []*ent.Scenario {
	t.Helper()
	rows, err := app.EntClient.Scenario.Query().
		Where(scenario.RunIDEQ(runID)).
		Order(ent.Asc(scenario.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// ScenarioByName finds one scenario row by name, failing if absent.
func ScenarioByName(t *testing.T, rows []*ent.Scenario, name string) *ent.Scenario {
	t.Helper()
	for _, row := range rows {
		if row.Name == name {
			return row
		}
	}
	require.Failf(t, "scenario not found", "no scenario named %q among %d rows", name, len(rows))
	return nil
}

// QueryStepResults returns a scenario's step results ordered by step index.
func (app *TestApp) QueryStepResults(t *testing.T, runID, scenarioID string) []*ent.StepResult {
	t.Helper()
	rows, err := app.EntClient.StepResult.Query().
		Where(stepresult.RunIDEQ(runID), stepresult.ScenarioIDEQ(scenarioID)).
		Order(ent.Asc(stepresult.FieldStepIndex)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// GetReport loads the run with its coverage snapshot and QA summary.
func (app *TestApp) GetReport(t *testing.T, runID string) *services.RunReport {
	t.Helper()
	report, err := app.Reports.GetReport(context.Background(), runID)
	require.NoError(t, err)
	return report
}
