package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/database"
	"github.com/qawave/qawave/pkg/models"
	testdb "github.com/qawave/qawave/test/database"
)

// seedRunWithScenario creates a run and one ready scenario to attach step
// results to.
func seedRunWithScenario(t *testing.T, client *database.Client) (runID, scenarioID string) {
	t.Helper()
	ctx := context.Background()
	runService := NewRunService(client.Client, nil)
	scenarioService := NewScenarioService(client.Client)

	run, err := runService.CreateRun(ctx, minimalRunRequest())
	require.NoError(t, err)
	saved, err := scenarioService.SaveScenarios(ctx, run.ID, []ScenarioRecord{{
		Scenario: models.Scenario{
			Name: "seed",
			Steps: []models.Step{
				{Name: "s0", Method: models.MethodGet, Endpoint: "/a"},
				{Name: "s1", Method: models.MethodGet, Endpoint: "/b"},
			},
		},
	}})
	require.NoError(t, err)
	return run.ID, saved[0].ID
}

func TestResultService_RecordStepResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResultService(client.Client)
	ctx := context.Background()

	runID, scenarioID := seedRunWithScenario(t, client)

	t.Run("persists a full result", func(t *testing.T) {
		started := time.Now().Add(-50 * time.Millisecond)
		row, err := service.RecordStepResult(ctx, models.StepResult{
			RunID:            runID,
			ScenarioID:       scenarioID,
			StepIndex:        0,
			Name:             "create user",
			Method:           models.MethodPost,
			Endpoint:         "/users",
			Status:           models.StepStatusFailed,
			Attempts:         2,
			ActualStatusCode: 500,
			ActualHeaders:    map[string]string{"Content-Type": "application/json"},
			ActualBody:       `{"error":"boom"}`,
			BodyDigest:       models.SHA256Hex([]byte(`{"error":"boom"}`)),
			AssertionResults: []models.AssertionResult{
				{Locator: "status", Expected: "201", Actual: "500", Passed: false,
					Reason: "status mismatch"},
			},
			DurationMs:    48,
			StartedAt:     started,
			FinishedAt:    started.Add(48 * time.Millisecond),
			FailureReason: "status mismatch",
			ErrorKind:     models.KindPtr(models.ErrKindAssertion),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, row.ID)
		assert.Equal(t, stepresult.StatusFailed, row.Status)
		assert.Equal(t, 2, row.Attempts)
		require.NotNil(t, row.ActualStatusCode)
		assert.Equal(t, 500, *row.ActualStatusCode)
		require.Len(t, row.AssertionResults, 1)
		assert.False(t, row.AssertionResults[0].Passed)
		require.NotNil(t, row.ErrorKind)
		assert.Equal(t, string(models.ErrKindAssertion), *row.ErrorKind)
	})

	t.Run("fills id and timestamps when absent", func(t *testing.T) {
		row, err := service.RecordStepResult(ctx, models.StepResult{
			RunID:      runID,
			ScenarioID: scenarioID,
			StepIndex:  1,
			Status:     models.StepStatusSkipped,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, row.ID)
		assert.False(t, row.StartedAt.IsZero())
		assert.Equal(t, row.StartedAt, row.FinishedAt)
	})

	t.Run("validates references", func(t *testing.T) {
		_, err := service.RecordStepResult(ctx, models.StepResult{ScenarioID: scenarioID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.RecordStepResult(ctx, models.StepResult{RunID: runID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("round-trips through the domain form", func(t *testing.T) {
		row, err := service.RecordStepResult(ctx, models.StepResult{
			RunID:      runID,
			ScenarioID: scenarioID,
			StepIndex:  0,
			Status:     models.StepStatusErrored,
			Extracted:  map[string]string{"user_id": "u-1"},
			Unresolved: []string{"${extract.token}"},
			ErrorKind:  models.KindPtr(models.ErrKindTimeout),
		})
		require.NoError(t, err)

		r := StepResultFromEnt(row)
		assert.Equal(t, runID, r.RunID)
		assert.Equal(t, models.StepStatusErrored, r.Status)
		assert.Equal(t, map[string]string{"user_id": "u-1"}, r.Extracted)
		assert.Equal(t, []string{"${extract.token}"}, r.Unresolved)
		require.NotNil(t, r.ErrorKind)
		assert.Equal(t, models.ErrKindTimeout, *r.ErrorKind)
	})
}

func TestResultService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResultService(client.Client)
	ctx := context.Background()

	runService := NewRunService(client.Client, nil)
	scenarioService := NewScenarioService(client.Client)
	run, err := runService.CreateRun(ctx, minimalRunRequest())
	require.NoError(t, err)
	saved, err := scenarioService.SaveScenarios(ctx, run.ID, []ScenarioRecord{
		{Scenario: models.Scenario{Name: "a", Steps: []models.Step{
			{Name: "s", Method: models.MethodGet, Endpoint: "/a"}}}},
		{Scenario: models.Scenario{Name: "b", Steps: []models.Step{
			{Name: "s", Method: models.MethodGet, Endpoint: "/b"}}}},
	})
	require.NoError(t, err)

	record := func(t *testing.T, scenarioID string, index int) *ent.StepResult {
		t.Helper()
		row, err := service.RecordStepResult(ctx, models.StepResult{
			RunID:      run.ID,
			ScenarioID: scenarioID,
			StepIndex:  index,
			Status:     models.StepStatusPassed,
		})
		require.NoError(t, err)
		return row
	}
	// Insert out of step order to prove ordering comes from the query.
	record(t, saved[0].ID, 1)
	record(t, saved[0].ID, 0)
	record(t, saved[1].ID, 0)

	t.Run("run listing groups by scenario and orders by step", func(t *testing.T) {
		rows, err := service.ListStepResults(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for i := 1; i < len(rows); i++ {
			if rows[i-1].ScenarioID == rows[i].ScenarioID {
				assert.Less(t, rows[i-1].StepIndex, rows[i].StepIndex)
			} else {
				assert.Less(t, rows[i-1].ScenarioID, rows[i].ScenarioID)
			}
		}
	})

	t.Run("scenario listing orders by step index", func(t *testing.T) {
		rows, err := service.ListScenarioStepResults(ctx, run.ID, saved[0].ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 0, rows[0].StepIndex)
		assert.Equal(t, 1, rows[1].StepIndex)
	})

	t.Run("unknown scenario lists empty", func(t *testing.T) {
		rows, err := service.ListScenarioStepResults(ctx, run.ID, "no-such-scenario")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestResultService_ScrubOldBodiesValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResultService(client.Client)
	ctx := context.Background()

	_, err := service.ScrubOldBodies(ctx, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}
