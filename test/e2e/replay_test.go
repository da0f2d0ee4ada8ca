package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/services"
)

// ────────────────────────────────────────────────────────────
// Deterministic replay: a completed run's stored payload re-executes
// without touching the AI provider.
//
// The source run generates and executes one scenario. The replay carries a
// step-for-step copy of that scenario, skips generation entirely (its
// journal never contains AI_SUCCESS), hits the live system a second time,
// and lands on INCONCLUSIVE because a replay has no spec document to
// compute coverage against.
// ────────────────────────────────────────────────────────────

func TestE2E_Replay(t *testing.T) {
	sut := NewSUTServer(t)
	sut.HandleJSON("POST /api/users", http.StatusCreated, map[string]any{"id": "u-1"})

	aiClient := NewScriptedAIClient()
	aiClient.AddSequential(AIScriptEntry{Text: scenarioCreateUser})
	aiClient.AddNarrative(AIScriptEntry{Text: "Source run: user creation works."})
	aiClient.AddNarrative(AIScriptEntry{Text: "Replay: behavior is unchanged."})

	app := NewTestApp(t, WithAIClient(aiClient))

	source := app.CreateRun(t, models.CreateRunRequest{
		Name:       "replayed-run",
		SpecSource: models.SpecSourceInline,
		SpecInline: specSingleOp,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})
	app.WaitForRunStatus(t, source.ID, models.RunStatusComplete)

	replay, err := app.Replays.ReplayRun(context.Background(), source.ID, services.ReplayOptions{TriggeredBy: "e2e-replay"})
	require.NoError(t, err)
	require.NotNil(t, replay.ReplayOf)
	assert.Equal(t, source.ID, *replay.ReplayOf)
	assert.Equal(t, "replayed-run (replay)", replay.Name)
	assert.Equal(t, "e2e-replay", replay.TriggeredBy)

	app.WaitForRunStatus(t, replay.ID, models.RunStatusComplete)

	// The spec hash carries over without a second fetch.
	sourceRow, err := app.EntClient.QARun.Get(context.Background(), source.ID)
	require.NoError(t, err)
	replayRow, err := app.EntClient.QARun.Get(context.Background(), replay.ID)
	require.NoError(t, err)
	require.NotNil(t, sourceRow.SpecHash)
	require.NotNil(t, replayRow.SpecHash)
	assert.Equal(t, *sourceRow.SpecHash, *replayRow.SpecHash)

	// ═══════════════════════════════════════════════════════
	// Replay journal: no AI_SUCCESS event; the last SCENARIO_CREATED
	// rides that status change.
	// ═══════════════════════════════════════════════════════

	events := app.QueryJournal(t, replay.ID)
	require.Equal(t, []string{
		"REQUESTED",
		"SPEC_FETCHED",
		"SCENARIO_CREATED",
		"EXECUTION_STARTED",
		"EXECUTION_STARTED",
		"EXECUTION_SUCCESS",
		"EXECUTION_SUCCESS",
		"QA_EVAL_STARTED",
		"QA_EVAL_DONE",
		"COMPLETE",
	}, JournalTypes(events))
	RequireGaplessSeq(t, events)

	requested := events[0]
	assert.Equal(t, source.ID, requested.Payload["replayOf"])
	assert.Equal(t, sut.BaseURL(), requested.Payload["baseUrl"])
	assert.EqualValues(t, 1, requested.Payload["scenarioCount"])

	fetched := events[1]
	assert.Equal(t, true, fetched.Payload["replay"])
	assert.Equal(t, source.ID, fetched.Payload["replayOf"])
	assert.Equal(t, *sourceRow.SpecHash, fetched.Payload["specHash"])

	created := events[2]
	assert.Equal(t, "create user", created.Payload["name"])
	assert.Equal(t, string(models.ScenarioSourceReplayed), created.Payload["source"])

	// ═══════════════════════════════════════════════════════
	// Scenario copy: fresh row, identical step content
	// ═══════════════════════════════════════════════════════

	sourceScenarios := app.QueryScenarios(t, source.ID)
	replayScenarios := app.QueryScenarios(t, replay.ID)
	require.Len(t, sourceScenarios, 1)
	require.Len(t, replayScenarios, 1)
	assert.NotEqual(t, sourceScenarios[0].ID, replayScenarios[0].ID)
	assert.Equal(t, string(models.ScenarioSourceReplayed), string(replayScenarios[0].Source))

	sourceScenario := services.ScenarioFromEnt(sourceScenarios[0])
	sourceHash, err := sourceScenario.StepsHash()
	require.NoError(t, err)
	replayScenario := services.ScenarioFromEnt(replayScenarios[0])
	replayHash, err := replayScenario.StepsHash()
	require.NoError(t, err)
	assert.Equal(t, sourceHash, replayHash)

	// Both executions hit the live system; only the source consulted the
	// AI for generation.
	steps := app.QueryStepResults(t, replay.ID, replayScenarios[0].ID)
	require.Len(t, steps, 1)
	assert.Equal(t, string(models.StepStatusPassed), string(steps[0].Status))
	assert.Equal(t, 2, sut.CountRequests("POST", "/api/users"))
	assert.Len(t, aiClient.GenerationCalls(), 1)

	// ═══════════════════════════════════════════════════════
	// Replay report: no spec document, so coverage is empty and the
	// verdict degrades to INCONCLUSIVE despite a clean execution.
	// ═══════════════════════════════════════════════════════

	report := app.GetReport(t, replay.ID)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, 0, report.Coverage.OpsTotal)
	assert.Equal(t, 1, report.Coverage.ScenariosPassed)
	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.VerdictInconclusive), string(report.Summary.OverallVerdict))
	assert.Equal(t, 0, report.Summary.QualityScore)
	assert.Equal(t, string(models.NarrativeSourceAI), string(report.Summary.NarrativeSource))
	assert.Equal(t, "Replay: behavior is unchanged.", report.Summary.NarrativeSummary)
}
