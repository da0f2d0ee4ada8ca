package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Failure propagation: an assertion failure stops the scenario, fails
// the verdict, and leaves the run COMPLETE.
//
// The SUT answers POST /users with 500, so the chained scenario's first
// step fails its status assertion and the second step is skipped. The
// independent GET scenario still passes, leaving one operation FAILED
// and one COVERED: verdict FAIL, quality score 25.
// ────────────────────────────────────────────────────────────

func TestE2E_FailurePropagation(t *testing.T) {
	sut := NewSUTServer(t)
	sut.HandleJSON("POST /users", http.StatusInternalServerError, map[string]any{"error": "boom"})
	sut.Handle("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id")})
	})

	ai := NewScriptedAIClient()
	ai.AddOperation("POST /users", AIScriptEntry{Text: `[
	  {
	    "name": "create and fetch user",
	    "operationId": "createUser",
	    "steps": [
	      {
	        "index": 0,
	        "name": "create user",
	        "method": "POST",
	        "endpoint": "/users",
	        "body": {"name": "Avery"},
	        "expected": {"status": "201", "bodyFields": {"$.id": "<any>"}},
	        "extractions": {"userId": "$.id"}
	      },
	      {
	        "index": 1,
	        "name": "fetch created user",
	        "method": "GET",
	        "endpoint": "/users/${userId}",
	        "expected": {"status": "200"}
	      }
	    ]
	  }
	]`})
	ai.AddOperation("GET /users/{userId}", AIScriptEntry{Text: `[
	  {
	    "name": "fetch seeded user",
	    "operationId": "getUser",
	    "steps": [
	      {
	        "index": 0,
	        "name": "fetch seeded user",
	        "method": "GET",
	        "endpoint": "/users/u-1",
	        "expected": {"status": "200"}
	      }
	    ]
	  }
	]`})
	ai.AddNarrative(AIScriptEntry{Text: "User creation is broken: the API returns 500 instead of 201."})

	app := NewTestApp(t, WithAIClient(ai))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "user-api-regression",
		SpecSource: models.SpecSourceInline,
		SpecInline: specTwoOps,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	// Execution failures are findings, not pipeline faults: the run must
	// still complete.
	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusComplete, status)

	final, err := app.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Nil(t, final.ErrorMessage)
	assert.Nil(t, final.ErrorKind)

	// ═══════════════════════════════════════════════════════
	// Step results: failed, then skipped
	// ═══════════════════════════════════════════════════════

	scenarios := app.QueryScenarios(t, run.ID)
	require.Len(t, scenarios, 2)
	chained := ScenarioByName(t, scenarios, "create and fetch user")

	steps := app.QueryStepResults(t, run.ID, chained.ID)
	require.Len(t, steps, 2)

	failed := steps[0]
	assert.Equal(t, string(models.StepStatusFailed), string(failed.Status))
	require.NotNil(t, failed.ActualStatusCode)
	assert.Equal(t, http.StatusInternalServerError, *failed.ActualStatusCode)
	require.NotNil(t, failed.ErrorKind)
	assert.Equal(t, string(models.ErrKindAssertion), *failed.ErrorKind)
	require.NotNil(t, failed.FailureReason)
	assert.Contains(t, *failed.FailureReason, `status 500 does not satisfy "201"`)
	// Both declared checks ran and failed: the status mismatch and the
	// missing id field.
	require.Len(t, failed.AssertionResults, 2)
	assert.False(t, failed.AssertionResults[0].Passed)
	assert.False(t, failed.AssertionResults[1].Passed)
	assert.Empty(t, failed.Extracted)

	skipped := steps[1]
	assert.Equal(t, string(models.StepStatusSkipped), string(skipped.Status))
	require.NotNil(t, skipped.FailureReason)
	assert.Equal(t, "previous step failed", *skipped.FailureReason)
	assert.Nil(t, skipped.ErrorKind)
	assert.Nil(t, skipped.ActualStatusCode)

	// The skipped step never reached the SUT.
	assert.Equal(t, 1, sut.CountRequests("POST", "/users"))
	assert.Equal(t, 1, sut.CountRequests("GET", "/users/u-1"))
	assert.Len(t, sut.Requests(), 2)

	// ═══════════════════════════════════════════════════════
	// Journal: EXECUTION_FAILED for the chained scenario
	// ═══════════════════════════════════════════════════════

	events := app.QueryJournal(t, run.ID)
	RequireGaplessSeq(t, events)
	assert.Equal(t, "COMPLETE", string(events[len(events)-1].Type))

	failures := EventsOfType(events, models.EventExecutionFailed)
	require.Len(t, failures, 1)
	fev := failures[0]
	require.NotNil(t, fev.ScenarioID)
	assert.Equal(t, chained.ID, *fev.ScenarioID)
	assert.EqualValues(t, 0, fev.Payload["stepsPassed"])
	assert.EqualValues(t, 1, fev.Payload["stepsFailed"])
	assert.EqualValues(t, 1, fev.Payload["stepsSkipped"])
	assert.Equal(t, string(models.ErrKindAssertion), fev.Payload["errorKind"])
	require.NotNil(t, fev.ErrorMessage)
	assert.Contains(t, *fev.ErrorMessage, "status 500 does not satisfy")

	// Stage transition tallies one passed, one failed.
	successes := EventsOfType(events, models.EventExecutionSuccess)
	require.Len(t, successes, 2) // passing scenario + stage transition
	stage := successes[len(successes)-1]
	assert.Nil(t, stage.ScenarioID)
	assert.EqualValues(t, 2, stage.Payload["scenariosTotal"])
	assert.EqualValues(t, 1, stage.Payload["scenariosPassed"])
	assert.EqualValues(t, 1, stage.Payload["scenariosFailed"])

	// ═══════════════════════════════════════════════════════
	// Report: verdict FAIL, one operation FAILED
	// ═══════════════════════════════════════════════════════

	report := app.GetReport(t, run.ID)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, 2, report.Coverage.OpsTotal)
	assert.Equal(t, 1, report.Coverage.OpsCovered)
	assert.Equal(t, 1, report.Coverage.OpsFailed)
	assert.Equal(t, models.OpFailed, report.Coverage.PerOpStatus["POST /users"])
	assert.Equal(t, models.OpCovered, report.Coverage.PerOpStatus["GET /users/{userId}"])

	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.VerdictFail), string(report.Summary.OverallVerdict))
	assert.Equal(t, 1, report.Summary.PassedScenarios)
	assert.Equal(t, 1, report.Summary.FailedScenarios)
	// Half the scenarios passed, half the operations covered.
	assert.Equal(t, 25, report.Summary.QualityScore)
}
