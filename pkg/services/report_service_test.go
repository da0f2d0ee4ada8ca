package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
	testdb "github.com/qawave/qawave/test/database"
)

func TestReportService(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client, nil)
	service := NewReportService(client.Client)
	ctx := context.Background()

	newRun := func(t *testing.T) string {
		t.Helper()
		run, err := runService.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		return run.ID
	}

	t.Run("saves and loads a coverage snapshot", func(t *testing.T) {
		runID := newRun(t)
		_, err := service.SaveCoverage(ctx, &models.CoverageSnapshot{
			RunID:      runID,
			OpsTotal:   4,
			OpsCovered: 2,
			OpsFailed:  1,
			UncoveredOps: []models.OperationRef{
				{Method: "DELETE", Path: "/users/{id}"},
			},
			PerOpStatus: map[string]models.OperationOutcome{
				"GET /users":         models.OpCovered,
				"POST /users":        models.OpCovered,
				"PUT /users/{id}":    models.OpFailed,
				"DELETE /users/{id}": models.OpUntested,
			},
			ScenariosPassed: 2,
			ScenariosFailed: 1,
		})
		require.NoError(t, err)

		snap, err := service.GetCoverage(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, 4, snap.OpsTotal)
		assert.Equal(t, 2, snap.OpsCovered)
		require.Len(t, snap.UncoveredOps, 1)
		assert.Equal(t, "DELETE", snap.UncoveredOps[0].Method)
		assert.Equal(t, models.OpFailed, snap.PerOpStatus["PUT /users/{id}"])
		assert.False(t, snap.ComputedAt.IsZero())
	})

	t.Run("saves and loads a verdict summary", func(t *testing.T) {
		runID := newRun(t)
		_, err := service.SaveSummary(ctx, &models.QASummary{
			RunID:            runID,
			OverallVerdict:   models.VerdictFail,
			PassedScenarios:  1,
			FailedScenarios:  2,
			ErroredScenarios: 1,
			NarrativeSummary: "Two scenarios failed on status assertions.",
			NarrativeSource:  models.NarrativeSourceAI,
			Recommendations:  []string{"Fix the 500 on POST /users"},
			QualityScore:     38,
		})
		require.NoError(t, err)

		sum, err := service.GetSummary(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, string(models.VerdictFail), string(sum.OverallVerdict))
		assert.Equal(t, 2, sum.FailedScenarios)
		assert.Equal(t, []string{"Fix the 500 on POST /users"}, sum.Recommendations)
		assert.Equal(t, 38, sum.QualityScore)
	})

	t.Run("one artifact of each kind per run", func(t *testing.T) {
		runID := newRun(t)
		snap := &models.CoverageSnapshot{RunID: runID, OpsTotal: 1}
		_, err := service.SaveCoverage(ctx, snap)
		require.NoError(t, err)
		_, err = service.SaveCoverage(ctx, snap)
		assert.ErrorIs(t, err, ErrAlreadyExists)

		sum := &models.QASummary{
			RunID:            runID,
			OverallVerdict:   models.VerdictInconclusive,
			NarrativeSummary: "n",
			NarrativeSource:  models.NarrativeSourceTemplate,
		}
		_, err = service.SaveSummary(ctx, sum)
		require.NoError(t, err)
		_, err = service.SaveSummary(ctx, sum)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("report tolerates missing artifacts", func(t *testing.T) {
		runID := newRun(t)
		report, err := service.GetReport(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, runID, report.Run.ID)
		assert.Nil(t, report.Coverage)
		assert.Nil(t, report.Summary)
	})

	t.Run("unknown run returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetCoverage(ctx, "no-such-run")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = service.GetSummary(ctx, "no-such-run")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = service.GetReport(ctx, "no-such-run")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates run reference", func(t *testing.T) {
		_, err := service.SaveCoverage(ctx, &models.CoverageSnapshot{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		_, err = service.SaveSummary(ctx, nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
