package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/pkg/models"
	testdb "github.com/qawave/qawave/test/database"
)

func TestScenarioService_SaveScenarios(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client, nil)
	service := NewScenarioService(client.Client)
	ctx := context.Background()

	newRun := func(t *testing.T) string {
		t.Helper()
		run, err := runService.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		return run.ID
	}

	t.Run("persists a batch with defaults filled", func(t *testing.T) {
		runID := newRun(t)
		saved, err := service.SaveScenarios(ctx, runID, []ScenarioRecord{
			{
				Scenario: models.Scenario{
					Name:        "list users",
					OperationID: "listUsers",
					Steps: []models.Step{
						{Name: "list", Method: models.MethodGet, Endpoint: "/users",
							Expected: models.Expectation{Status: "200"}},
					},
				},
				GenerationAttempts: 2,
				FailureKinds:       []string{string(models.ErrKindAISchema)},
			},
		})
		require.NoError(t, err)
		require.Len(t, saved, 1)

		row := saved[0]
		assert.NotEmpty(t, row.ID)
		assert.Equal(t, runID, row.RunID)
		assert.Equal(t, scenario.SourceAiGenerated, row.Source)
		assert.Equal(t, scenario.StatusReady, row.Status)
		assert.Equal(t, 1, row.Version)
		assert.Equal(t, 2, row.GenerationAttempts)
		assert.Equal(t, []string{string(models.ErrKindAISchema)}, row.FailureKinds)
	})

	t.Run("normalizes step indices to contiguous order", func(t *testing.T) {
		runID := newRun(t)
		saved, err := service.SaveScenarios(ctx, runID, []ScenarioRecord{{
			Scenario: models.Scenario{
				Name: "reordered",
				Steps: []models.Step{
					{Index: 7, Name: "first", Method: models.MethodGet, Endpoint: "/a"},
					{Index: 3, Name: "second", Method: models.MethodGet, Endpoint: "/b"},
					{Index: 3, Name: "third", Method: models.MethodGet, Endpoint: "/c"},
				},
			},
		}})
		require.NoError(t, err)
		steps := saved[0].Steps
		require.Len(t, steps, 3)
		for i, step := range steps {
			assert.Equal(t, i, step.Index)
		}
		assert.Equal(t, "first", steps[0].Name, "order is preserved, only indices rewritten")
	})

	t.Run("keeps caller-supplied identity and provenance", func(t *testing.T) {
		runID := newRun(t)
		saved, err := service.SaveScenarios(ctx, runID, []ScenarioRecord{{
			Scenario: models.Scenario{
				ID:     "sc-fixed",
				Name:   "manual case",
				Source: models.ScenarioSourceManual,
				Status: models.ScenarioStatusReady,
				Steps: []models.Step{
					{Name: "probe", Method: models.MethodGet, Endpoint: "/healthz"},
				},
			},
		}})
		require.NoError(t, err)
		assert.Equal(t, "sc-fixed", saved[0].ID)
		assert.Equal(t, scenario.SourceManual, saved[0].Source)
	})

	t.Run("identical names are persisted as distinct rows", func(t *testing.T) {
		runID := newRun(t)
		mk := func() ScenarioRecord {
			return ScenarioRecord{Scenario: models.Scenario{
				Name: "duplicate name",
				Steps: []models.Step{
					{Name: "s", Method: models.MethodGet, Endpoint: "/x"},
				},
			}}
		}
		saved, err := service.SaveScenarios(ctx, runID, []ScenarioRecord{mk(), mk()})
		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.NotEqual(t, saved[0].ID, saved[1].ID)
		assert.Equal(t, saved[0].Name, saved[1].Name)
	})

	t.Run("rejects a scenario without steps", func(t *testing.T) {
		runID := newRun(t)
		_, err := service.SaveScenarios(ctx, runID, []ScenarioRecord{{
			Scenario: models.Scenario{Name: "empty"},
		}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		saved, err := service.SaveScenarios(ctx, newRun(t), nil)
		require.NoError(t, err)
		assert.Nil(t, saved)
	})
}

func TestScenarioService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client, nil)
	service := NewScenarioService(client.Client)
	ctx := context.Background()

	run, err := runService.CreateRun(ctx, minimalRunRequest())
	require.NoError(t, err)

	records := make([]ScenarioRecord, 3)
	for i, name := range []string{"alpha", "beta", "gamma"} {
		records[i] = ScenarioRecord{Scenario: models.Scenario{
			Name:     name,
			Priority: i,
			Steps: []models.Step{
				{Name: "s", Method: models.MethodGet, Endpoint: "/" + name},
			},
		}}
	}
	saved, err := service.SaveScenarios(ctx, run.ID, records)
	require.NoError(t, err)

	t.Run("lists scenarios of a run", func(t *testing.T) {
		rows, err := service.ListScenarios(ctx, run.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("gets a scenario by ID", func(t *testing.T) {
		row, err := service.GetScenario(ctx, saved[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "beta", row.Name)
	})

	t.Run("unknown scenario returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetScenario(ctx, "no-such-scenario")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("updates verification status", func(t *testing.T) {
		require.NoError(t, service.UpdateScenarioStatus(ctx, saved[0].ID, models.ScenarioStatusInvalid))

		row, err := service.GetScenario(ctx, saved[0].ID)
		require.NoError(t, err)
		assert.Equal(t, scenario.StatusInvalid, row.Status)
	})

	t.Run("converts rows back to the domain form", func(t *testing.T) {
		row, err := service.GetScenario(ctx, saved[2].ID)
		require.NoError(t, err)

		sc := ScenarioFromEnt(row)
		assert.Equal(t, saved[2].ID, sc.ID)
		assert.Equal(t, run.ID, sc.RunID)
		assert.Equal(t, "gamma", sc.Name)
		assert.Equal(t, models.ScenarioSourceAIGenerated, sc.Source)
		require.Len(t, sc.Steps, 1)
		assert.Equal(t, "/gamma", sc.Steps[0].Endpoint)
	})
}
