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
// Generation retry: an invalid document is corrected on the second
// attempt.
//
// The first scripted response has a scenario without steps, which the
// schema check rejects. The pipeline sends a correction prompt carrying
// the violations; the second response is valid and the run completes.
// No narrative is scripted, so the summary falls back to the template.
// ────────────────────────────────────────────────────────────

func TestE2E_GenerationRetry(t *testing.T) {
	sut := NewSUTServer(t)
	sut.HandleJSON("POST /api/users", http.StatusCreated, map[string]any{"id": "u-1"})

	ai := NewScriptedAIClient()
	ai.AddSequential(AIScriptEntry{Text: scenarioMissingSteps})
	ai.AddSequential(AIScriptEntry{Text: scenarioCreateUser})

	app := NewTestApp(t, WithAIClient(ai))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "retry-once",
		SpecSource: models.SpecSourceInline,
		SpecInline: specSingleOp,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusComplete, status)

	// The scenario records both attempts and the rejected kind.
	scenarios := app.QueryScenarios(t, run.ID)
	require.Len(t, scenarios, 1)
	scn := scenarios[0]
	assert.Equal(t, "create user", scn.Name)
	assert.Equal(t, 2, scn.GenerationAttempts)
	assert.Equal(t, []string{string(models.ErrKindAISchema)}, scn.FailureKinds)
	assert.Equal(t, string(models.ScenarioStatusReady), string(scn.Status))

	// Journal reflects the retried attempt count.
	events := app.QueryJournal(t, run.ID)
	RequireGaplessSeq(t, events)
	created := EventsOfType(events, models.EventScenarioCreated)
	require.Len(t, created, 1)
	assert.EqualValues(t, 2, created[0].Payload["attempts"])
	aiSuccess := EventsOfType(events, models.EventAISuccess)
	require.Len(t, aiSuccess, 1)
	assert.EqualValues(t, 2, aiSuccess[0].Payload["attempts"])
	assert.EqualValues(t, 1, aiSuccess[0].Payload["opsGenerated"])

	// The second AI call was a correction: same system prompt, user prompt
	// quoting the contract violation.
	gens := ai.GenerationCalls()
	require.Len(t, gens, 2)
	assert.Equal(t, gens[0].System, gens[1].System)
	assert.Contains(t, gens[1].User, "Your previous response violated the scenario contract")
	assert.Contains(t, gens[1].User, "has no steps")

	// Narrative fell back to the deterministic template.
	report := app.GetReport(t, run.ID)
	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.NarrativeSourceTemplate), string(report.Summary.NarrativeSource))
	assert.NotEmpty(t, report.Summary.NarrativeSummary)
	assert.Equal(t, string(models.VerdictPass), string(report.Summary.OverallVerdict))

	evalDone := EventsOfType(events, models.EventQAEvalDone)
	require.Len(t, evalDone, 1)
	assert.Equal(t, string(models.NarrativeSourceTemplate), evalDone[0].Payload["narrativeSource"])
}

// ────────────────────────────────────────────────────────────
// Generation exhaustion: every attempt rejected fails the run.
//
// AIVerifyRetries is lowered to 1, so the pipeline gives the provider two
// attempts; both return the same broken document. The single enumerated
// operation fails generation and the run terminates as FAILED_GENERATION
// without ever touching the SUT.
// ────────────────────────────────────────────────────────────

func TestE2E_GenerationExhausted(t *testing.T) {
	sut := NewSUTServer(t)

	ai := NewScriptedAIClient()
	ai.AddSequential(AIScriptEntry{Text: scenarioMissingSteps})
	ai.AddSequential(AIScriptEntry{Text: scenarioMissingSteps})

	app := NewTestApp(t, WithAIClient(ai))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "never-valid",
		SpecSource: models.SpecSourceInline,
		SpecInline: specSingleOp,
		BaseURL:    sut.BaseURL(),
		Config: models.RunConfig{
			AllowInternal:   true,
			AIVerifyRetries: 1,
		},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusFailedGeneration, status)

	final, err := app.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, final.ErrorKind)
	assert.Equal(t, string(models.ErrKindAISchema), *final.ErrorKind)
	require.NotNil(t, final.ErrorMessage)
	assert.Equal(t, "all 1 enumerated operations failed generation", *final.ErrorMessage)

	events := app.QueryJournal(t, run.ID)
	require.Equal(t, []string{
		"REQUESTED",
		"SPEC_FETCHED",
		"SCENARIO_GENERATION_FAILED",
		"AI_FAILED",
	}, JournalTypes(events))
	RequireGaplessSeq(t, events)

	genFailed := events[2]
	assert.Equal(t, "POST /api/users", genFailed.Payload["operation"])
	assert.Equal(t, string(models.ErrKindAISchema), genFailed.Payload["kind"])
	assert.EqualValues(t, 2, genFailed.Payload["attempts"])
	violations, ok := genFailed.Payload["violations"].([]any)
	require.True(t, ok, "violations payload: %v", genFailed.Payload["violations"])
	assert.NotEmpty(t, violations)
	require.NotNil(t, genFailed.ErrorMessage)
	assert.Equal(t, "generation failed for POST /api/users after 2 attempts", *genFailed.ErrorMessage)

	aiFailed := events[3]
	assert.EqualValues(t, 0, aiFailed.Payload["scenarioCount"])
	assert.EqualValues(t, 1, aiFailed.Payload["opsFailed"])
	assert.EqualValues(t, 2, aiFailed.Payload["attempts"])
	kinds, ok := aiFailed.Payload["failureKinds"].(map[string]any)
	require.True(t, ok, "failureKinds payload: %v", aiFailed.Payload["failureKinds"])
	assert.EqualValues(t, 1, kinds[string(models.ErrKindAISchema)])

	// Nothing was persisted or executed.
	assert.Empty(t, app.QueryScenarios(t, run.ID))
	assert.Empty(t, sut.Requests())
	assert.Equal(t, 2, ai.CallCount())

	// Both calls carried the generation system prompt; the second was the
	// correction attempt.
	gens := ai.GenerationCalls()
	require.Len(t, gens, 2)
	for _, g := range gens {
		assert.True(t, strings.HasPrefix(g.System, "You are an expert API QA engineer"))
	}
	assert.Contains(t, gens[1].User, "Your previous response violated the scenario contract")
}
