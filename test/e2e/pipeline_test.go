package e2e

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Pipeline test: the full happy path through every stage.
//
// One inline spec with a single operation, one scripted scenario, one
// scripted narrative. The worker claims the run, the pipeline fetches the
// spec, generates, executes against the SUT stub, evaluates, and lands on
// COMPLETE. The journal must show the exact eleven-event choreography
// with gapless sequence numbers.
// ────────────────────────────────────────────────────────────

func TestE2E_Pipeline(t *testing.T) {
	sut := NewSUTServer(t)
	sut.HandleJSON("POST /api/users", http.StatusCreated, map[string]any{"id": "u-1"})

	ai := NewScriptedAIClient()
	ai.AddSequential(AIScriptEntry{Text: scenarioCreateUser})
	ai.AddNarrative(AIScriptEntry{Text: "All scenarios passed; user creation behaves as specified."})

	app := NewTestApp(t, WithAIClient(ai))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "user-api-smoke",
		SpecSource: models.SpecSourceInline,
		SpecInline: specSingleOp,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusComplete, status)

	// ═══════════════════════════════════════════════════════
	// Run row
	// ═══════════════════════════════════════════════════════

	final, err := app.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.RunStatusComplete), string(final.Status))
	require.NotNil(t, final.SpecHash)
	assert.NotEmpty(t, *final.SpecHash)
	assert.Nil(t, final.ErrorMessage)
	assert.Nil(t, final.ErrorKind)
	require.NotNil(t, final.WorkerID)
	assert.Contains(t, *final.WorkerID, "-worker-")
	assert.NotNil(t, final.StartedAt)
	assert.NotNil(t, final.CompletedAt)
	assert.NotNil(t, final.DurationMs)

	// ═══════════════════════════════════════════════════════
	// Journal choreography
	// ═══════════════════════════════════════════════════════

	events := app.QueryJournal(t, run.ID)
	require.Equal(t, []string{
		"REQUESTED",
		"SPEC_FETCHED",
		"SCENARIO_CREATED",
		"AI_SUCCESS",
		"EXECUTION_STARTED", // stage transition
		"EXECUTION_STARTED", // scenario started
		"EXECUTION_SUCCESS", // scenario finished
		"EXECUTION_SUCCESS", // stage transition
		"QA_EVAL_STARTED",
		"QA_EVAL_DONE",
		"COMPLETE",
	}, JournalTypes(events))
	RequireGaplessSeq(t, events)

	requested := events[0]
	assert.Equal(t, "user-api-smoke", requested.Payload["name"])
	assert.Equal(t, string(models.SpecSourceInline), requested.Payload["specSource"])
	assert.Equal(t, sut.BaseURL(), requested.Payload["baseUrl"])

	fetched := events[1]
	assert.Equal(t, *final.SpecHash, fetched.Payload["specHash"])
	assert.Equal(t, "User API", fetched.Payload["title"])
	assert.Equal(t, "1.0.0", fetched.Payload["version"])
	assert.EqualValues(t, 1, fetched.Payload["opsTotal"])
	assert.EqualValues(t, 1, fetched.Payload["opsEnumerated"])

	created := events[2]
	require.NotNil(t, created.ScenarioID)
	assert.Equal(t, "create user", created.Payload["name"])
	assert.Equal(t, "POST /api/users", created.Payload["operation"])
	assert.Equal(t, string(models.ScenarioSourceAIGenerated), created.Payload["source"])
	assert.EqualValues(t, 1, created.Payload["steps"])
	assert.EqualValues(t, 1, created.Payload["attempts"])

	aiSuccess := events[3]
	assert.EqualValues(t, 1, aiSuccess.Payload["scenarioCount"])
	assert.EqualValues(t, 1, aiSuccess.Payload["opsGenerated"])
	assert.EqualValues(t, 0, aiSuccess.Payload["opsFailed"])
	assert.EqualValues(t, 1, aiSuccess.Payload["attempts"])

	execStage := events[4]
	assert.Nil(t, execStage.ScenarioID)
	assert.EqualValues(t, 1, execStage.Payload["scenarioCount"])
	assert.Equal(t, true, execStage.Payload["parallel"])

	scenarioDone := events[6]
	require.NotNil(t, scenarioDone.ScenarioID)
	assert.EqualValues(t, 1, scenarioDone.Payload["stepsPassed"])
	assert.EqualValues(t, 0, scenarioDone.Payload["stepsFailed"])
	assert.EqualValues(t, 0, scenarioDone.Payload["stepsSkipped"])

	stageDone := events[7]
	assert.Nil(t, stageDone.ScenarioID)
	assert.EqualValues(t, 1, stageDone.Payload["scenariosTotal"])
	assert.EqualValues(t, 1, stageDone.Payload["scenariosPassed"])
	assert.EqualValues(t, 0, stageDone.Payload["scenariosFailed"])

	evalDone := events[9]
	assert.Equal(t, string(models.VerdictPass), evalDone.Payload["verdict"])
	assert.EqualValues(t, 100, evalDone.Payload["coveragePercent"])
	assert.EqualValues(t, 100, evalDone.Payload["qualityScore"])
	assert.Equal(t, string(models.NarrativeSourceAI), evalDone.Payload["narrativeSource"])

	complete := events[10]
	assert.Equal(t, string(models.VerdictPass), complete.Payload["verdict"])
	assert.EqualValues(t, 1, complete.Payload["scenariosPassed"])
	assert.EqualValues(t, 0, complete.Payload["scenariosFailed"])

	// ═══════════════════════════════════════════════════════
	// Persisted scenario and step results
	// ═══════════════════════════════════════════════════════

	scenarios := app.QueryScenarios(t, run.ID)
	require.Len(t, scenarios, 1)
	scn := scenarios[0]
	assert.Equal(t, "create user", scn.Name)
	assert.Equal(t, string(models.ScenarioSourceAIGenerated), string(scn.Source))
	assert.Equal(t, string(models.ScenarioStatusReady), string(scn.Status))
	require.NotNil(t, scn.OperationID)
	assert.Equal(t, "createUser", *scn.OperationID)
	assert.Equal(t, 1, scn.GenerationAttempts)
	assert.Empty(t, scn.FailureKinds)
	require.Len(t, scn.Steps, 1)

	steps := app.QueryStepResults(t, run.ID, scn.ID)
	require.Len(t, steps, 1)
	step := steps[0]
	assert.Equal(t, string(models.StepStatusPassed), string(step.Status))
	assert.Equal(t, 1, step.Attempts)
	require.NotNil(t, step.ActualStatusCode)
	assert.Equal(t, http.StatusCreated, *step.ActualStatusCode)
	assert.Equal(t, sut.BaseURL()+"/api/users", step.Endpoint)
	assert.Contains(t, step.ActualBody, "u-1")
	// WriteJSON emits the body with a trailing newline; the digest covers
	// the exact bytes on the wire.
	assert.Equal(t, models.SHA256Hex([]byte("{\"id\":\"u-1\"}\n")), step.BodyDigest)
	assert.Nil(t, step.FailureReason)
	assert.Nil(t, step.ErrorKind)

	require.Len(t, step.AssertionResults, 2)
	statusCheck := step.AssertionResults[0]
	assert.Equal(t, "status", statusCheck.Locator)
	assert.Equal(t, "201", statusCheck.Expected)
	assert.Equal(t, "201", statusCheck.Actual)
	assert.True(t, statusCheck.Passed)
	bodyCheck := step.AssertionResults[1]
	assert.Equal(t, "$.id", bodyCheck.Locator)
	assert.True(t, bodyCheck.Passed)

	// ═══════════════════════════════════════════════════════
	// Report
	// ═══════════════════════════════════════════════════════

	report := app.GetReport(t, run.ID)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, 1, report.Coverage.OpsTotal)
	assert.Equal(t, 1, report.Coverage.OpsCovered)
	assert.Equal(t, 0, report.Coverage.OpsFailed)
	assert.Empty(t, report.Coverage.UncoveredOps)
	assert.Equal(t, models.OpCovered, report.Coverage.PerOpStatus["POST /api/users"])
	assert.Equal(t, 1, report.Coverage.ScenariosPassed)

	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.VerdictPass), string(report.Summary.OverallVerdict))
	assert.Equal(t, 1, report.Summary.PassedScenarios)
	assert.Equal(t, 0, report.Summary.FailedScenarios)
	assert.Equal(t, 100, report.Summary.QualityScore)
	assert.Equal(t, string(models.NarrativeSourceAI), string(report.Summary.NarrativeSource))
	assert.Equal(t, "All scenarios passed; user creation behaves as specified.", report.Summary.NarrativeSummary)

	// ═══════════════════════════════════════════════════════
	// SUT traffic and AI usage
	// ═══════════════════════════════════════════════════════

	requests := sut.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "POST", requests[0].Method)
	assert.Equal(t, "/api/users", requests[0].Path)
	assert.Contains(t, requests[0].Body, "Avery")

	assert.Equal(t, 2, ai.CallCount())
	gens := ai.GenerationCalls()
	require.Len(t, gens, 1)
	assert.True(t, strings.HasPrefix(gens[0].System, "You are an expert API QA engineer"))
	assert.Contains(t, gens[0].User, "- POST /api/users (operationId: createUser): Create a user")
	require.Len(t, ai.NarrativeCalls(), 1)
}

// ────────────────────────────────────────────────────────────
// Extraction chaining: variables flow between steps.
//
// Two operations. The POST scenario extracts the created user's id and the
// second step fetches /users/${userId}; the GET scenario covers the read
// operation on its own. Both operations end COVERED.
// ────────────────────────────────────────────────────────────

func TestE2E_ExtractionChaining(t *testing.T) {
	sut := NewSUTServer(t)
	sut.HandleJSON("POST /users", http.StatusCreated, map[string]any{"id": "u-42"})
	sut.Handle("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id")})
	})

	ai := NewScriptedAIClient()
	// Generation calls for the two operations run in parallel, so each is
	// routed by the operation named in its prompt.
	ai.AddOperation("POST /users", AIScriptEntry{Text: `[
	  {
	    "name": "create and fetch user",
	    "description": "Creates a user, then fetches it by the extracted id.",
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
	        "expected": {"status": "200", "bodyFields": {"$.id": "${userId}"}}
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
	        "expected": {"status": "200", "bodyFields": {"$.id": "u-1"}}
	      }
	    ]
	  }
	]`})
	ai.AddNarrative(AIScriptEntry{Text: "Both operations verified, including the create-then-read flow."})

	app := NewTestApp(t, WithAIClient(ai))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "user-api-chained",
		SpecSource: models.SpecSourceInline,
		SpecInline: specTwoOps,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusComplete, status)

	// Extracted value flowed into the second step's endpoint.
	scenarios := app.QueryScenarios(t, run.ID)
	require.Len(t, scenarios, 2)
	chained := ScenarioByName(t, scenarios, "create and fetch user")

	steps := app.QueryStepResults(t, run.ID, chained.ID)
	require.Len(t, steps, 2)
	assert.Equal(t, string(models.StepStatusPassed), string(steps[0].Status))
	assert.Equal(t, map[string]string{"userId": "u-42"}, steps[0].Extracted)
	assert.Equal(t, string(models.StepStatusPassed), string(steps[1].Status))
	assert.Equal(t, sut.BaseURL()+"/users/u-42", steps[1].Endpoint)

	// The placeholder token in the expectation resolved against the same
	// extraction.
	require.Len(t, steps[1].AssertionResults, 2)
	idCheck := steps[1].AssertionResults[1]
	assert.Equal(t, "$.id", idCheck.Locator)
	assert.Equal(t, "${userId}", idCheck.Expected)
	assert.Equal(t, "u-42", idCheck.Actual)
	assert.True(t, idCheck.Passed)

	// SUT saw the resolved path, not the template.
	assert.Equal(t, 1, sut.CountRequests("POST", "/users"))
	assert.Equal(t, 1, sut.CountRequests("GET", "/users/u-42"))
	assert.Equal(t, 1, sut.CountRequests("GET", "/users/u-1"))

	// Journal: 14 events; per-scenario ordering interleaves, counts don't.
	events := app.QueryJournal(t, run.ID)
	require.Len(t, events, 14)
	RequireGaplessSeq(t, events)
	assert.Equal(t, "REQUESTED", string(events[0].Type))
	assert.Equal(t, "COMPLETE", string(events[len(events)-1].Type))
	assert.Len(t, EventsOfType(events, models.EventScenarioCreated), 2)
	assert.Len(t, EventsOfType(events, models.EventExecutionSuccess), 3) // 2 scenarios + stage
	assert.Empty(t, EventsOfType(events, models.EventExecutionFailed))

	// Both operations covered.
	report := app.GetReport(t, run.ID)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, 2, report.Coverage.OpsTotal)
	assert.Equal(t, 2, report.Coverage.OpsCovered)
	assert.Equal(t, models.OpCovered, report.Coverage.PerOpStatus["POST /users"])
	assert.Equal(t, models.OpCovered, report.Coverage.PerOpStatus["GET /users/{userId}"])
	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.VerdictPass), string(report.Summary.OverallVerdict))
	assert.Equal(t, 100, report.Summary.QualityScore)
}
