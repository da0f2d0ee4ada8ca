package e2e

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Cancellation mid-execution: the journal stays truthful when a run is
// killed with scenarios in flight.
//
// Eight scenarios fan out over four execution workers. The stub answers
// the first two requests and pins every later one, so the stage
// quiesces with two completions, four in-flight scenarios, and two that
// never started. Cancelling then must journal a completion for every
// started scenario before the CANCELLED terminal, and nothing after it.
// ────────────────────────────────────────────────────────────

func TestE2E_CancellationMidExecution(t *testing.T) {
	sut := NewSUTServer(t)
	var admitted atomic.Int32
	sut.Handle("GET /api/ping", func(w http.ResponseWriter, r *http.Request) {
		if admitted.Add(1) <= 2 {
			WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
			return
		}
		<-r.Context().Done()
	})

	aiClient := NewScriptedAIClient()
	aiClient.AddSequential(AIScriptEntry{Text: pingScenarios(8)})

	app := NewTestApp(t, WithAIClient(aiClient))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "cancel-mid-execution",
		SpecSource: models.SpecSourceInline,
		SpecInline: specPing,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{ExecConcurrency: 4, AllowInternal: true},
	})

	// Quiescence: two answered, four pinned inside the stub, two queued.
	app.WaitForScenarioCompletions(t, run.ID, 2)
	require.Eventually(t, func() bool {
		return len(sut.Requests()) == 6
	}, 15*time.Second, 50*time.Millisecond, "expected 2 answered + 4 pinned requests")

	require.True(t, app.WorkerPool.CancelRun(run.ID))
	app.WaitForRunStatus(t, run.ID, models.RunStatusCancelled)

	final, err := app.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, final.ErrorMessage)
	assert.Equal(t, "run cancelled", *final.ErrorMessage)
	require.NotNil(t, final.ErrorKind)
	assert.Equal(t, string(models.ErrKindCancelled), *final.ErrorKind)
	assert.NotNil(t, final.CompletedAt)

	// ═══════════════════════════════════════════════════════
	// Journal accounting: every started scenario has a completion event
	// before the terminal; unstarted scenarios left no trace.
	//
	//   1  REQUESTED
	//   1  SPEC_FETCHED
	//   8  SCENARIO_CREATED
	//   1  AI_SUCCESS
	//   1  EXECUTION_STARTED  (stage)
	//   6  EXECUTION_STARTED  (started scenarios)
	//   2  EXECUTION_SUCCESS  (answered scenarios)
	//   4  EXECUTION_FAILED   (pinned scenarios, errored on cancel)
	//   1  CANCELLED
	// ═══════════════════════════════════════════════════════

	events := app.QueryJournal(t, run.ID)
	require.Len(t, events, 25)
	RequireGaplessSeq(t, events)

	last := events[len(events)-1]
	assert.Equal(t, string(models.EventCancelled), string(last.Type))
	assert.Equal(t, "run cancelled", last.Payload["reason"])
	require.NotNil(t, last.ErrorMessage)
	assert.Equal(t, "run cancelled", *last.ErrorMessage)

	started := EventsOfType(events, models.EventExecutionStarted)
	require.Len(t, started, 7)
	scenarioStarts := 0
	for _, ev := range started {
		if ev.ScenarioID != nil {
			scenarioStarts++
		}
	}
	assert.Equal(t, 6, scenarioStarts, "only started scenarios journal EXECUTION_STARTED")

	// No stage-level EXECUTION_SUCCESS: the stage never closed.
	succeeded := EventsOfType(events, models.EventExecutionSuccess)
	require.Len(t, succeeded, 2)
	for _, ev := range succeeded {
		require.NotNil(t, ev.ScenarioID)
	}

	cancelled := EventsOfType(events, models.EventExecutionFailed)
	require.Len(t, cancelled, 4)
	for _, ev := range cancelled {
		require.NotNil(t, ev.ScenarioID)
		assert.Equal(t, string(models.ErrKindCancelled), ev.Payload["errorKind"])
		require.NotNil(t, ev.ErrorMessage)
		assert.Equal(t, "context canceled", *ev.ErrorMessage)
		assert.EqualValues(t, 1, ev.Payload["stepsErrored"])
	}

	assert.Empty(t, EventsOfType(events, models.EventQAEvalStarted))
	assert.Empty(t, EventsOfType(events, models.EventQAEvalDone))
	assert.Empty(t, EventsOfType(events, models.EventComplete))

	// ═══════════════════════════════════════════════════════
	// Step results mirror the journal: 2 passed, 4 errored, 2 scenarios
	// with no rows at all.
	// ═══════════════════════════════════════════════════════

	scenarios := app.QueryScenarios(t, run.ID)
	require.Len(t, scenarios, 8)
	passed, errored, unstarted := 0, 0, 0
	for _, scn := range scenarios {
		steps := app.QueryStepResults(t, run.ID, scn.ID)
		switch {
		case len(steps) == 0:
			unstarted++
		case string(steps[0].Status) == string(models.StepStatusPassed):
			passed++
		case string(steps[0].Status) == string(models.StepStatusErrored):
			errored++
		}
	}
	assert.Equal(t, 2, passed)
	assert.Equal(t, 4, errored)
	assert.Equal(t, 2, unstarted)

	// The terminal is final: nothing lands in the journal afterwards.
	time.Sleep(500 * time.Millisecond)
	assert.Len(t, app.QueryJournal(t, run.ID), 25)
}
