package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Run deadline: a run that outlives its budget lands on CANCELLED with
// the TIMEOUT kind, and its in-flight scenario is accounted for first.
// ────────────────────────────────────────────────────────────

func TestE2E_RunTimeout(t *testing.T) {
	sut := NewSUTServer(t)
	sut.Handle("GET /api/ping", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done() // never answer
	})

	aiClient := NewScriptedAIClient()
	aiClient.AddSequential(AIScriptEntry{Text: scenarioPingOnce})

	app := NewTestApp(t, WithAIClient(aiClient), WithRunTimeout(2*time.Second))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "deadline-bound",
		SpecSource: models.SpecSourceInline,
		SpecInline: specPing,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	app.WaitForRunStatus(t, run.ID, models.RunStatusCancelled)

	final, err := app.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, final.ErrorMessage)
	assert.Equal(t, "run deadline exceeded", *final.ErrorMessage)
	require.NotNil(t, final.ErrorKind)
	assert.Equal(t, string(models.ErrKindTimeout), *final.ErrorKind)
	assert.NotNil(t, final.CompletedAt)

	// The pinned scenario errors at the deadline and is journaled before
	// the terminal.
	events := app.QueryJournal(t, run.ID)
	require.Equal(t, []string{
		"REQUESTED",
		"SPEC_FETCHED",
		"SCENARIO_CREATED",
		"AI_SUCCESS",
		"EXECUTION_STARTED",
		"EXECUTION_STARTED",
		"EXECUTION_FAILED",
		"CANCELLED",
	}, JournalTypes(events))
	RequireGaplessSeq(t, events)

	failed := events[6]
	require.NotNil(t, failed.ScenarioID)
	assert.Equal(t, string(models.ErrKindTimeout), failed.Payload["errorKind"])
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "context deadline exceeded", *failed.ErrorMessage)

	terminal := events[7]
	assert.Nil(t, terminal.ScenarioID)
	assert.Equal(t, "run deadline exceeded", terminal.Payload["reason"])

	// The step record carries the same kind.
	scenarios := app.QueryScenarios(t, run.ID)
	require.Len(t, scenarios, 1)
	steps := app.QueryStepResults(t, run.ID, scenarios[0].ID)
	require.Len(t, steps, 1)
	assert.Equal(t, string(models.StepStatusErrored), string(steps[0].Status))
	require.NotNil(t, steps[0].ErrorKind)
	assert.Equal(t, string(models.ErrKindTimeout), *steps[0].ErrorKind)
	assert.Nil(t, steps[0].ActualStatusCode)

	// Evaluation never ran.
	assert.Empty(t, EventsOfType(events, models.EventQAEvalStarted))
	assert.Empty(t, aiClient.NarrativeCalls())
}
