package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/ai"
	"github.com/qawave/qawave/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Provider fallback: a dead AI provider degrades to a synthetic smoke
// scenario instead of failing the run.
//
// The spec is served over HTTP by the SUT itself, exercising the URL
// fetch path. The provider answers 401, which is not retryable, so the
// operation falls back to the synthetic single-step scenario. The smoke
// step passes against the stub and the run still earns full coverage.
// ────────────────────────────────────────────────────────────

func TestE2E_ProviderFallback(t *testing.T) {
	sut := NewSUTServer(t)
	sut.Handle("GET /openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(specSingleOp))
	})
	sut.HandleJSON("POST /api/users", http.StatusCreated, map[string]any{"id": "u-1"})

	aiClient := NewScriptedAIClient()
	aiClient.AddSequential(AIScriptEntry{Error: &ai.ProviderError{StatusCode: 401, Message: "invalid api key"}})
	aiClient.AddNarrative(AIScriptEntry{Text: "Smoke coverage only: the AI provider was unavailable."})

	app := NewTestApp(t, WithAIClient(aiClient))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "provider-down",
		SpecSource: models.SpecSourceURL,
		SpecURL:    sut.BaseURL() + "/openapi.json",
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusComplete, status)

	// The synthetic scenario replaced the generated one.
	scenarios := app.QueryScenarios(t, run.ID)
	require.Len(t, scenarios, 1)
	scn := scenarios[0]
	assert.Equal(t, "fallback smoke test", scn.Name)
	assert.Equal(t, string(models.ScenarioSourceFallback), string(scn.Source))
	assert.Equal(t, 0, scn.GenerationAttempts)
	require.Len(t, scn.Steps, 1)
	assert.Equal(t, "smoke post /api/users", scn.Steps[0].Name)
	assert.Equal(t, models.StatusExpectation(">=100"), scn.Steps[0].Expected.Status)

	steps := app.QueryStepResults(t, run.ID, scn.ID)
	require.Len(t, steps, 1)
	assert.Equal(t, string(models.StepStatusPassed), string(steps[0].Status))
	require.Len(t, steps[0].AssertionResults, 1)
	assert.Equal(t, "status", steps[0].AssertionResults[0].Locator)
	assert.Equal(t, ">=100", steps[0].AssertionResults[0].Expected)

	// Journal marks the fallback and its cause.
	events := app.QueryJournal(t, run.ID)
	RequireGaplessSeq(t, events)
	created := EventsOfType(events, models.EventScenarioCreated)
	require.Len(t, created, 1)
	assert.Equal(t, string(models.ScenarioSourceFallback), created[0].Payload["source"])
	cause, _ := created[0].Payload["cause"].(string)
	assert.Contains(t, cause, "provider returned status 401")

	aiSuccess := EventsOfType(events, models.EventAISuccess)
	require.Len(t, aiSuccess, 1)
	assert.EqualValues(t, 1, aiSuccess[0].Payload["scenarioCount"])
	assert.EqualValues(t, 0, aiSuccess[0].Payload["opsGenerated"])
	assert.EqualValues(t, 1, aiSuccess[0].Payload["opsFallback"])
	kinds, ok := aiSuccess[0].Payload["failureKinds"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, kinds[string(models.ErrKindAIProvider)])

	// Full coverage despite the degraded generation.
	report := app.GetReport(t, run.ID)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, 1, report.Coverage.OpsCovered)
	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.VerdictPass), string(report.Summary.OverallVerdict))

	// 401 is terminal for the attempt: exactly one generation call.
	assert.Len(t, aiClient.GenerationCalls(), 1)

	// Spec fetch plus smoke step.
	assert.Equal(t, 1, sut.CountRequests("GET", "/openapi.json"))
	assert.Equal(t, 1, sut.CountRequests("POST", "/api/users"))
}

// ────────────────────────────────────────────────────────────
// Spec failures: fetch faults and invalid documents take different
// error kinds on the same terminal status.
// ────────────────────────────────────────────────────────────

func TestE2E_SpecFetchFailure(t *testing.T) {
	sut := NewSUTServer(t) // no spec route: the fetch sees a 404

	app := NewTestApp(t)

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "missing-spec",
		SpecSource: models.SpecSourceURL,
		SpecURL:    sut.BaseURL() + "/missing.json",
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusFailedSpecFetch, status)

	final, err := app.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, final.ErrorKind)
	assert.Equal(t, string(models.ErrKindSpecFetch), *final.ErrorKind)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "404")
	assert.Nil(t, final.SpecHash)

	events := app.QueryJournal(t, run.ID)
	require.Equal(t, []string{"REQUESTED", "SPEC_FETCH_FAILED"}, JournalTypes(events))
	RequireGaplessSeq(t, events)
	assert.Equal(t, string(models.ErrKindSpecFetch), events[1].Payload["errorKind"])

	// The pipeline never reached the AI stage.
	assert.Empty(t, app.QueryScenarios(t, run.ID))
	assert.Equal(t, 0, app.AIClient.CallCount())
}

func TestE2E_SpecInvalid(t *testing.T) {
	app := NewTestApp(t)

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "broken-spec",
		SpecSource: models.SpecSourceInline,
		SpecInline: `{"openapi": "3.0.3", "info": {"title": "Broken", "version": "0.0.1"}}`,
		BaseURL:    "http://127.0.0.1:9",
		Config:     models.RunConfig{AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusFailedSpecFetch, status)

	final, err := app.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, final.ErrorKind)
	assert.Equal(t, string(models.ErrKindSpecInvalid), *final.ErrorKind)

	events := app.QueryJournal(t, run.ID)
	require.Equal(t, []string{"REQUESTED", "SPEC_FETCH_FAILED"}, JournalTypes(events))
	assert.Equal(t, string(models.ErrKindSpecInvalid), events[1].Payload["errorKind"])
}

// ────────────────────────────────────────────────────────────
// Empty spec: the document validates but declares no operations, so
// it is rejected as SPEC_INVALID. There is nothing to test against it.
// ────────────────────────────────────────────────────────────

func TestE2E_EmptySpec(t *testing.T) {
	app := NewTestApp(t)

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "empty-spec",
		SpecSource: models.SpecSourceInline,
		SpecInline: `{"openapi": "3.0.3", "info": {"title": "Empty", "version": "1.0.0"}, "paths": {}}`,
		BaseURL:    "http://127.0.0.1:9",
		Config:     models.RunConfig{AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusFailedSpecFetch, status)

	final, err := app.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, final.ErrorKind)
	assert.Equal(t, string(models.ErrKindSpecInvalid), *final.ErrorKind)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "no operations")
	assert.Nil(t, final.SpecHash)

	events := app.QueryJournal(t, run.ID)
	require.Equal(t, []string{"REQUESTED", "SPEC_FETCH_FAILED"}, JournalTypes(events))
	RequireGaplessSeq(t, events)
	assert.Equal(t, string(models.ErrKindSpecInvalid), events[1].Payload["errorKind"])

	// Nothing downstream of the fetch stage ran.
	assert.Empty(t, app.QueryScenarios(t, run.ID))
	assert.Equal(t, 0, app.AIClient.CallCount())
	assert.Nil(t, app.GetReport(t, run.ID).Summary)
}

// ────────────────────────────────────────────────────────────
// Zero scenario budget: the spec has operations but maxScenarios: 0
// enumerates none of them. The run completes vacuously: empty coverage,
// INCONCLUSIVE verdict, no AI generation calls.
// ────────────────────────────────────────────────────────────

func TestE2E_ZeroScenarioBudget(t *testing.T) {
	app := NewTestApp(t)

	zero := 0
	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "zero-budget",
		SpecSource: models.SpecSourceInline,
		SpecInline: specPing,
		BaseURL:    "http://127.0.0.1:9",
		Config:     models.RunConfig{MaxScenarios: &zero, AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusComplete, status)

	events := app.QueryJournal(t, run.ID)
	require.Equal(t, []string{
		"REQUESTED",
		"SPEC_FETCHED",
		"AI_SUCCESS",
		"EXECUTION_STARTED",
		"EXECUTION_SUCCESS",
		"QA_EVAL_STARTED",
		"QA_EVAL_DONE",
		"COMPLETE",
	}, JournalTypes(events))
	RequireGaplessSeq(t, events)
	assert.EqualValues(t, 1, events[1].Payload["opsTotal"])
	assert.EqualValues(t, 0, events[1].Payload["opsEnumerated"])
	assert.EqualValues(t, 0, events[2].Payload["scenarioCount"])
	assert.Equal(t, string(models.VerdictInconclusive), events[6].Payload["verdict"])
	assert.EqualValues(t, 0, events[6].Payload["coveragePercent"])
	assert.Equal(t, string(models.NarrativeSourceTemplate), events[6].Payload["narrativeSource"])

	report := app.GetReport(t, run.ID)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, 1, report.Coverage.OpsTotal)
	assert.Equal(t, 0, report.Coverage.OpsCovered)
	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.VerdictInconclusive), string(report.Summary.OverallVerdict))
	assert.Equal(t, 0, report.Summary.QualityScore)

	// No enumerated operations means no generation calls. The unscripted
	// narrative call fails over to the template.
	assert.Empty(t, app.AIClient.GenerationCalls())
	assert.Len(t, app.AIClient.NarrativeCalls(), 1)
}
