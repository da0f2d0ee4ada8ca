package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/database"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/services"
	testdb "github.com/qawave/qawave/test/database"
)

func setupServices(t *testing.T) (*database.Client, *services.RunService, *services.ResultService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewRunService(client.Client, nil), services.NewResultService(client.Client)
}

func createTerminalRun(t *testing.T, client *database.Client, runService *services.RunService, completedAt time.Time) string {
	t.Helper()
	ctx := context.Background()

	run, err := runService.CreateRun(ctx, models.CreateRunRequest{
		RunID:      uuid.New().String(),
		Name:       "retention probe",
		SpecSource: models.SpecSourceInline,
		SpecInline: `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`,
		BaseURL:    "http://sut.internal",
	})
	require.NoError(t, err)

	err = client.QARun.UpdateOneID(run.ID).
		SetStatus(qarun.StatusCancelled).
		SetCompletedAt(completedAt).
		Exec(ctx)
	require.NoError(t, err)

	return run.ID
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		RunRetentionDays: 180,
		BodyRetention:    7 * 24 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}

func TestService_PurgesOldTerminalRuns(t *testing.T) {
	client, runService, resultService := setupServices(t)
	ctx := context.Background()

	runID := createTerminalRun(t, client, runService, time.Now().Add(-200*24*time.Hour))

	svc := NewService(retentionConfig(), runService, resultService)
	svc.runAll(ctx)

	_, err := runService.GetRun(ctx, runID, false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PurgeCascadesToJournal(t *testing.T) {
	client, runService, resultService := setupServices(t)
	ctx := context.Background()

	runID := createTerminalRun(t, client, runService, time.Now().Add(-200*24*time.Hour))

	// CreateRun journaled seq 1; the purge must take it along.
	events, err := runService.ListEvents(ctx, runID, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	svc := NewService(retentionConfig(), runService, resultService)
	svc.runAll(ctx)

	events, err = runService.ListEvents(ctx, runID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, events, "journal rows should cascade with the run")
}

func TestService_PreservesRecentRuns(t *testing.T) {
	client, runService, resultService := setupServices(t)
	ctx := context.Background()

	runID := createTerminalRun(t, client, runService, time.Now())

	svc := NewService(retentionConfig(), runService, resultService)
	svc.runAll(ctx)

	run, err := runService.GetRun(ctx, runID, false)
	require.NoError(t, err)
	assert.Equal(t, runID, run.ID)
}

func TestService_PreservesActiveRunsRegardlessOfAge(t *testing.T) {
	client, runService, resultService := setupServices(t)
	ctx := context.Background()

	run, err := runService.CreateRun(ctx, models.CreateRunRequest{
		RunID:      uuid.New().String(),
		Name:       "still running",
		SpecSource: models.SpecSourceInline,
		SpecInline: `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`,
		BaseURL:    "http://sut.internal",
	})
	require.NoError(t, err)

	// Ancient but non-terminal: retention must not touch it. Orphan
	// recovery owns stuck runs, not the retention sweep. created_at is
	// immutable in the ent schema, so backdate it with raw SQL.
	_, err = client.DB().ExecContext(ctx,
		"UPDATE qa_runs SET created_at = $1 WHERE run_id = $2",
		time.Now().Add(-400*24*time.Hour), run.ID)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), runService, resultService)
	svc.runAll(ctx)

	_, err = runService.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
}

func TestService_ScrubsOldBodies(t *testing.T) {
	client, runService, resultService := setupServices(t)
	ctx := context.Background()

	runID := createTerminalRun(t, client, runService, time.Now())

	scenarioID := uuid.New().String()
	_, err := client.Scenario.Create().
		SetID(scenarioID).
		SetRunID(runID).
		SetName("probe scenario").
		SetSource("ai_generated").
		SetStatus("ready").
		SetSteps([]models.Step{{Name: "get user", Method: models.MethodGet, Endpoint: "/users/1"}}).
		Save(ctx)
	require.NoError(t, err)

	old, err := resultService.RecordStepResult(ctx, models.StepResult{
		RunID:      runID,
		ScenarioID: scenarioID,
		StepIndex:  0,
		Status:     models.StepStatusPassed,
		ActualBody: `{"user":"alice"}`,
		BodyDigest: "abc123",
		StartedAt:  time.Now().Add(-8 * 24 * time.Hour),
		FinishedAt: time.Now().Add(-8 * 24 * time.Hour),
	})
	require.NoError(t, err)

	fresh, err := resultService.RecordStepResult(ctx, models.StepResult{
		RunID:      runID,
		ScenarioID: scenarioID,
		StepIndex:  1,
		Status:     models.StepStatusPassed,
		ActualBody: `{"user":"bob"}`,
		BodyDigest: "def456",
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
	})
	require.NoError(t, err)

	svc := NewService(retentionConfig(), runService, resultService)
	svc.runAll(ctx)

	rows, err := resultService.ListStepResults(ctx, runID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		switch row.ID {
		case old.ID:
			assert.Empty(t, row.ActualBody, "old body excerpt should be scrubbed")
			assert.Equal(t, "abc123", row.BodyDigest, "digest survives the scrub")
		case fresh.ID:
			assert.Equal(t, `{"user":"bob"}`, row.ActualBody, "recent body stays")
		}
	}
}
