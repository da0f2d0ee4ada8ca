package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/pkg/models"
	testdb "github.com/qawave/qawave/test/database"
)

// minimalRunRequest returns a valid inline-spec create request. Tests
// override fields as needed.
func minimalRunRequest() models.CreateRunRequest {
	return models.CreateRunRequest{
		Name:       "checkout smoke",
		SpecSource: models.SpecSourceInline,
		SpecInline: `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`,
		BaseURL:    "http://api.example.com",
	}
}

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	t.Run("creates run in requested status with seq 1 journal event", func(t *testing.T) {
		req := minimalRunRequest()
		req.Description = "smoke coverage of the checkout flow"
		req.RequirementText = "a user can check out a cart"
		req.TriggeredBy = "ci@example.com"

		run, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, req.Name, run.Name)
		assert.Equal(t, qarun.StatusRequested, run.Status)
		assert.Equal(t, qarun.ModeStandard, run.Mode)
		assert.Equal(t, req.BaseURL, run.BaseURL)
		require.NotNil(t, run.Description)
		assert.Equal(t, req.Description, *run.Description)
		assert.Nil(t, run.StartedAt)
		assert.Nil(t, run.CompletedAt)
		assert.Nil(t, run.WorkerID)

		events, err := service.ListEvents(ctx, run.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, 1, events[0].Seq)
		assert.Equal(t, string(models.EventRequested), string(events[0].Type))
		assert.Equal(t, req.Name, events[0].Payload["name"])
	})

	t.Run("persists effective config with defaults filled", func(t *testing.T) {
		req := minimalRunRequest()
		req.Config = models.RunConfig{ExecConcurrency: 3}

		run, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 3, run.Config.ExecConcurrency)
		assert.Equal(t, 10, run.Config.ScenarioBudget())
		assert.Equal(t, 30000, run.Config.StepTimeoutMs)
		assert.True(t, run.Config.StopOnFailure())
	})

	t.Run("honors caller-supplied run ID", func(t *testing.T) {
		req := minimalRunRequest()
		req.RunID = uuid.New().String()

		run, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.RunID, run.ID)
	})

	t.Run("rejects duplicate run ID", func(t *testing.T) {
		req := minimalRunRequest()
		req.RunID = uuid.New().String()

		_, err := service.CreateRun(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateRun(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.CreateRunRequest)
			field  string
		}{
			{
				name:   "missing name",
				mutate: func(r *models.CreateRunRequest) { r.Name = "" },
				field:  "name",
			},
			{
				name: "url source without spec_url",
				mutate: func(r *models.CreateRunRequest) {
					r.SpecSource = models.SpecSourceURL
					r.SpecURL = ""
				},
				field: "spec_url",
			},
			{
				name:   "inline source without spec_inline",
				mutate: func(r *models.CreateRunRequest) { r.SpecInline = "" },
				field:  "spec_inline",
			},
			{
				name:   "unknown spec source",
				mutate: func(r *models.CreateRunRequest) { r.SpecSource = "file" },
				field:  "spec_source",
			},
			{
				name:   "base URL with bad scheme",
				mutate: func(r *models.CreateRunRequest) { r.BaseURL = "ftp://api.example.com" },
				field:  "base_url",
			},
			{
				name: "spec URL with bad scheme",
				mutate: func(r *models.CreateRunRequest) {
					r.SpecSource = models.SpecSourceURL
					r.SpecURL = "file:///etc/passwd"
				},
				field: "spec_url",
			},
			{
				name: "negative scenario budget",
				mutate: func(r *models.CreateRunRequest) {
					bad := -1
					r.Config.MaxScenarios = &bad
				},
				field: "config",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := minimalRunRequest()
				tt.mutate(&req)

				_, err := service.CreateRun(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})
}

func TestRunService_GetRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	run, err := service.CreateRun(ctx, minimalRunRequest())
	require.NoError(t, err)

	t.Run("returns run by ID", func(t *testing.T) {
		got, err := service.GetRun(ctx, run.ID, false)
		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
	})

	t.Run("loads edges when requested", func(t *testing.T) {
		got, err := service.GetRun(ctx, run.ID, true)
		require.NoError(t, err)
		assert.NotNil(t, got.Edges.Scenarios)
		assert.Empty(t, got.Edges.Scenarios)
	})

	t.Run("unknown ID returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetRun(ctx, "no-such-run", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_Transition(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	t.Run("walks the full lifecycle with a gapless journal", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)

		steps := []struct {
			to models.RunStatus
			ev models.RunEventType
		}{
			{models.RunStatusSpecFetched, models.EventSpecFetched},
			{models.RunStatusAISuccess, models.EventAISuccess},
			{models.RunStatusExecutionInProgress, models.EventExecutionStarted},
			{models.RunStatusExecutionComplete, models.EventExecutionSuccess},
			{models.RunStatusQAEvalInProgress, models.EventQAEvalStarted},
			{models.RunStatusQAEvalDone, models.EventQAEvalDone},
			{models.RunStatusComplete, models.EventComplete},
		}
		for _, step := range steps {
			run, err = service.Transition(ctx, run.ID, step.to, models.AppendEventRequest{Type: step.ev})
			require.NoError(t, err, "transition to %s", step.to)
			assert.Equal(t, statusOf(step.to), run.Status)
		}

		require.NotNil(t, run.StartedAt)
		require.NotNil(t, run.CompletedAt)
		require.NotNil(t, run.DurationMs)
		assert.GreaterOrEqual(t, *run.DurationMs, int64(0))

		events, err := service.ListEvents(ctx, run.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, len(steps)+1)
		for i, evt := range events {
			assert.Equal(t, i+1, evt.Seq, "journal seq must be gapless")
		}
		assert.Equal(t, string(models.EventComplete), string(events[len(events)-1].Type))
	})

	t.Run("records spec hash at SPEC_FETCHED", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)

		run, err = service.TransitionSpecFetched(ctx, run.ID, "sha256:deadbeef", models.AppendEventRequest{
			Type: models.EventSpecFetched,
		})
		require.NoError(t, err)
		require.NotNil(t, run.SpecHash)
		assert.Equal(t, "sha256:deadbeef", *run.SpecHash)
	})

	t.Run("rejects illegal moves and leaves the run untouched", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)

		_, err = service.Transition(ctx, run.ID, models.RunStatusExecutionComplete, models.AppendEventRequest{
			Type: models.EventExecutionSuccess,
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)

		got, err := service.GetRun(ctx, run.ID, false)
		require.NoError(t, err)
		assert.Equal(t, qarun.StatusRequested, got.Status)

		events, err := service.ListEvents(ctx, run.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 1, "failed transition must not journal")
	})

	t.Run("rejects unknown target status", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)

		_, err = service.Transition(ctx, run.ID, "finished", models.AppendEventRequest{Type: models.EventComplete})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("terminal runs accept no transitions", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		_, err = service.Transition(ctx, run.ID, models.RunStatusFailedSpecFetch, models.AppendEventRequest{
			Type: models.EventSpecFetchFailed,
		})
		require.NoError(t, err)

		_, err = service.Transition(ctx, run.ID, models.RunStatusSpecFetched, models.AppendEventRequest{
			Type: models.EventSpecFetched,
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("failure transition records error fields and folds errorKind into payload", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)

		run, err = service.Transition(ctx, run.ID, models.RunStatusFailedSpecFetch, models.AppendEventRequest{
			Type:         models.EventSpecFetchFailed,
			ErrorMessage: "fetch timed out",
			ErrorKind:    models.KindPtr(models.ErrKindTimeout),
		})
		require.NoError(t, err)
		require.NotNil(t, run.ErrorMessage)
		assert.Equal(t, "fetch timed out", *run.ErrorMessage)
		require.NotNil(t, run.ErrorKind)
		assert.Equal(t, string(models.ErrKindTimeout), *run.ErrorKind)

		events, err := service.ListEvents(ctx, run.ID, 1, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, string(models.ErrKindTimeout), events[0].Payload["errorKind"])
	})

	t.Run("unknown run returns ErrNotFound", func(t *testing.T) {
		_, err := service.Transition(ctx, "no-such-run", models.RunStatusSpecFetched, models.AppendEventRequest{
			Type: models.EventSpecFetched,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_AppendEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	t.Run("appends without changing status", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)

		evt, err := service.AppendEvent(ctx, run.ID, models.AppendEventRequest{
			Type:    models.EventScenarioCreated,
			Payload: map[string]any{"name": "create user"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, evt.Seq)

		got, err := service.GetRun(ctx, run.ID, false)
		require.NoError(t, err)
		assert.Equal(t, qarun.StatusRequested, got.Status)
	})

	t.Run("carries scenario and step result references", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		scenarios := NewScenarioService(client.Client)
		saved, err := scenarios.SaveScenarios(ctx, run.ID, []ScenarioRecord{{
			Scenario: models.Scenario{
				Name: "get user",
				Steps: []models.Step{
					{Name: "fetch", Method: models.MethodGet, Endpoint: "/users/1"},
				},
			},
		}})
		require.NoError(t, err)

		evt, err := service.AppendEvent(ctx, run.ID, models.AppendEventRequest{
			Type:       models.EventScenarioCreated,
			ScenarioID: saved[0].ID,
		})
		require.NoError(t, err)
		require.NotNil(t, evt.ScenarioID)
		assert.Equal(t, saved[0].ID, *evt.ScenarioID)
	})

	t.Run("terminal run rejects appends", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		_, err = service.CancelRun(ctx, run.ID, "operator request")
		require.NoError(t, err)

		_, err = service.AppendEvent(ctx, run.ID, models.AppendEventRequest{
			Type: models.EventScenarioCreated,
		})
		assert.ErrorIs(t, err, ErrRunTerminal)

		// The terminal event stays last.
		events, err := service.ListEvents(ctx, run.ID, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, string(models.EventCancelled), string(events[len(events)-1].Type))
	})
}

func TestRunService_ListEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	run, err := service.CreateRun(ctx, minimalRunRequest())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = service.AppendEvent(ctx, run.ID, models.AppendEventRequest{
			Type:    models.EventScenarioCreated,
			Payload: map[string]any{"index": i},
		})
		require.NoError(t, err)
	}

	t.Run("returns the journal in seq order", func(t *testing.T) {
		events, err := service.ListEvents(ctx, run.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 6)
		for i, evt := range events {
			assert.Equal(t, i+1, evt.Seq)
		}
	})

	t.Run("sinceSeq resumes after the given seq", func(t *testing.T) {
		events, err := service.ListEvents(ctx, run.ID, 4, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 5, events[0].Seq)
		assert.Equal(t, 6, events[1].Seq)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		events, err := service.ListEvents(ctx, run.ID, 0, 3)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, 3, events[2].Seq)
	})
}

func TestRunService_CancelRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	t.Run("cancels from any non-terminal status", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		_, err = service.Transition(ctx, run.ID, models.RunStatusSpecFetched, models.AppendEventRequest{
			Type: models.EventSpecFetched,
		})
		require.NoError(t, err)

		run, err = service.CancelRun(ctx, run.ID, "operator request")
		require.NoError(t, err)
		assert.Equal(t, qarun.StatusCancelled, run.Status)
		require.NotNil(t, run.ErrorKind)
		assert.Equal(t, string(models.ErrKindCancelled), *run.ErrorKind)
		require.NotNil(t, run.CompletedAt)
	})

	t.Run("cancelling a terminal run is a no-op", func(t *testing.T) {
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		_, err = service.CancelRun(ctx, run.ID, "first")
		require.NoError(t, err)

		got, err := service.CancelRun(ctx, run.ID, "second")
		require.NoError(t, err)
		assert.Equal(t, qarun.StatusCancelled, got.Status)

		events, err := service.ListEvents(ctx, run.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2, "second cancel must not journal")
	})
}

func TestRunService_ClaimNextRequestedRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	t.Run("empty queue claims nothing", func(t *testing.T) {
		run, err := service.ClaimNextRequestedRun(ctx, "worker-1")
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("claims the oldest unclaimed run", func(t *testing.T) {
		first, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		// created_at has microsecond resolution; keep ordering unambiguous
		time.Sleep(5 * time.Millisecond)
		second, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)

		claimed, err := service.ClaimNextRequestedRun(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		require.NotNil(t, claimed.WorkerID)
		assert.Equal(t, "worker-1", *claimed.WorkerID)
		assert.NotNil(t, claimed.ClaimedAt)
		assert.NotNil(t, claimed.HeartbeatAt)
		assert.Equal(t, qarun.StatusRequested, claimed.Status, "claim does not change status")

		claimed, err = service.ClaimNextRequestedRun(ctx, "worker-2")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, second.ID, claimed.ID)

		claimed, err = service.ClaimNextRequestedRun(ctx, "worker-3")
		require.NoError(t, err)
		assert.Nil(t, claimed, "both runs already claimed")
	})
}

func TestRunService_HeartbeatAndRelease(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	run, err := service.CreateRun(ctx, minimalRunRequest())
	require.NoError(t, err)
	claimed, err := service.ClaimNextRequestedRun(ctx, "worker-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("heartbeat refreshes the liveness marker", func(t *testing.T) {
		before := *claimed.HeartbeatAt
		time.Sleep(5 * time.Millisecond)
		require.NoError(t, service.Heartbeat(ctx, run.ID, "worker-1"))

		got, err := service.GetRun(ctx, run.ID, false)
		require.NoError(t, err)
		assert.True(t, got.HeartbeatAt.After(before))
	})

	t.Run("heartbeat from the wrong worker fails", func(t *testing.T) {
		err := service.Heartbeat(ctx, run.ID, "worker-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("release clears the claim for requeue", func(t *testing.T) {
		require.NoError(t, service.ReleaseClaim(ctx, run.ID))

		got, err := service.GetRun(ctx, run.ID, false)
		require.NoError(t, err)
		assert.Nil(t, got.WorkerID)
		assert.Nil(t, got.ClaimedAt)
		assert.Nil(t, got.HeartbeatAt)

		reclaimed, err := service.ClaimNextRequestedRun(ctx, "worker-2")
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		assert.Equal(t, run.ID, reclaimed.ID)
	})

	t.Run("release of unknown run returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, service.ReleaseClaim(ctx, "no-such-run"), ErrNotFound)
	})
}

func TestRunService_FindOrphanedRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	stale := time.Now().Add(-10 * time.Minute)

	makeClaimed := func(t *testing.T, heartbeat time.Time, terminal bool) *ent.QARun {
		t.Helper()
		run, err := service.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		update := client.QARun.UpdateOneID(run.ID).
			SetWorkerID("worker-gone").
			SetClaimedAt(heartbeat).
			SetHeartbeatAt(heartbeat)
		if terminal {
			update.SetStatus(qarun.StatusCancelled).SetCompletedAt(heartbeat)
		}
		run, err = update.Save(ctx)
		require.NoError(t, err)
		return run
	}

	orphan := makeClaimed(t, stale, false)
	fresh := makeClaimed(t, time.Now(), false)
	terminal := makeClaimed(t, stale, true)

	found, err := service.FindOrphanedRuns(ctx, 5*time.Minute)
	require.NoError(t, err)

	ids := make([]string, 0, len(found))
	for _, r := range found {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, orphan.ID)
	assert.NotContains(t, ids, fresh.ID, "fresh heartbeat is not orphaned")
	assert.NotContains(t, ids, terminal.ID, "terminal runs are never orphans")
}

func TestRunService_ListRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	mkRun := func(t *testing.T, mutate func(*models.CreateRunRequest)) *ent.QARun {
		t.Helper()
		req := minimalRunRequest()
		if mutate != nil {
			mutate(&req)
		}
		run, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		return run
	}

	mkRun(t, nil)
	security := mkRun(t, func(r *models.CreateRunRequest) {
		r.Mode = models.RunModeSecurity
		r.TriggeredBy = "nightly"
	})
	cancelled := mkRun(t, nil)
	_, err := service.CancelRun(ctx, cancelled.ID, "cleanup")
	require.NoError(t, err)

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListRuns(ctx, models.RunFilters{Status: models.RunStatusCancelled})
		require.NoError(t, err)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, cancelled.ID, resp.Runs[0].ID)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("filters by mode and trigger", func(t *testing.T) {
		resp, err := service.ListRuns(ctx, models.RunFilters{
			Mode:        models.RunModeSecurity,
			TriggeredBy: "nightly",
		})
		require.NoError(t, err)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, security.ID, resp.Runs[0].ID)
	})

	t.Run("paginates newest first", func(t *testing.T) {
		resp, err := service.ListRuns(ctx, models.RunFilters{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Runs, 2)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Equal(t, 2, resp.Limit)
		assert.True(t, !resp.Runs[0].CreatedAt.Before(resp.Runs[1].CreatedAt))
	})

	t.Run("time window filters", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		resp, err := service.ListRuns(ctx, models.RunFilters{CreatedAfter: &future})
		require.NoError(t, err)
		assert.Empty(t, resp.Runs)
	})
}

func TestRunService_SearchRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	for i, text := range []string{
		"verify the checkout flow applies discount codes",
		"verify user registration sends a confirmation email",
		"inventory levels reconcile after a bulk import",
	} {
		req := minimalRunRequest()
		req.Name = fmt.Sprintf("run-%d", i)
		req.RequirementText = text
		_, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
	}

	runs, err := service.SearchRuns(ctx, "discount checkout", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.NotNil(t, runs[0].RequirementText)
	assert.Contains(t, *runs[0].RequirementText, "discount")

	runs, err = service.SearchRuns(ctx, "verify", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	runs, err = service.SearchRuns(ctx, "nonexistent topic", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
