package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/payload"
	testdb "github.com/qawave/qawave/test/database"
)

// TestRunLifecycleIntegration walks one run through every service the
// pipeline touches, the way the executor does stage by stage.
func TestRunLifecycleIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	runService := NewRunService(client.Client, nil)
	scenarioService := NewScenarioService(client.Client)
	resultService := NewResultService(client.Client)
	payloadService := NewPayloadService(client.Client)
	reportService := NewReportService(client.Client)

	// 1. Request a run
	run, err := runService.CreateRun(ctx, models.CreateRunRequest{
		Name:            "orders api QA",
		RequirementText: "orders can be created and fetched",
		SpecSource:      models.SpecSourceInline,
		SpecInline:      `{"openapi":"3.0.0","info":{"title":"orders","version":"1"},"paths":{}}`,
		BaseURL:         "http://orders.example.com",
	})
	require.NoError(t, err)

	// 2. Spec fetched
	run, err = runService.TransitionSpecFetched(ctx, run.ID, "sha256:cafe", models.AppendEventRequest{
		Type:    models.EventSpecFetched,
		Payload: map[string]any{"operations": 2},
	})
	require.NoError(t, err)
	require.NotNil(t, run.StartedAt)

	// 3. Scenarios generated and journaled
	scenarios := []models.Scenario{
		{
			Name:        "create order",
			OperationID: "createOrder",
			Steps: []models.Step{
				{
					Name:     "create",
					Method:   models.MethodPost,
					Endpoint: "/orders",
					Expected: models.Expectation{Status: "201"},
					Extractions: map[string]string{
						"order_id": "body.id",
					},
				},
			},
		},
		{
			Name:        "fetch order",
			OperationID: "getOrder",
			Steps: []models.Step{
				{
					Name:     "fetch",
					Method:   models.MethodGet,
					Endpoint: "/orders/${extract.order_id}",
					Expected: models.Expectation{Status: "200"},
				},
			},
		},
	}
	records := make([]ScenarioRecord, len(scenarios))
	for i, sc := range scenarios {
		records[i] = ScenarioRecord{Scenario: sc, GenerationAttempts: 1}
	}
	saved, err := scenarioService.SaveScenarios(ctx, run.ID, records)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, sc := range saved {
		_, err = runService.AppendEvent(ctx, run.ID, models.AppendEventRequest{
			Type:       models.EventScenarioCreated,
			ScenarioID: sc.ID,
			Payload:    map[string]any{"name": sc.Name},
		})
		require.NoError(t, err)
	}

	// 4. Payload saved, then AI_SUCCESS
	doc := &payload.Document{
		RunID:    run.ID,
		SpecHash: "sha256:cafe",
		Config:   run.Config,
	}
	for _, sc := range saved {
		doc.Scenarios = append(doc.Scenarios, ScenarioFromEnt(sc))
	}
	_, err = payloadService.SavePayload(ctx, doc)
	require.NoError(t, err)

	run, err = runService.Transition(ctx, run.ID, models.RunStatusAISuccess, models.AppendEventRequest{
		Type:    models.EventAISuccess,
		Payload: map[string]any{"scenarios": 2},
	})
	require.NoError(t, err)

	// 5. Execution
	run, err = runService.Transition(ctx, run.ID, models.RunStatusExecutionInProgress, models.AppendEventRequest{
		Type: models.EventExecutionStarted,
	})
	require.NoError(t, err)

	started := time.Now()
	for i, sc := range saved {
		res, err := resultService.RecordStepResult(ctx, models.StepResult{
			RunID:            run.ID,
			ScenarioID:       sc.ID,
			StepIndex:        0,
			Name:             sc.Name,
			Method:           models.MethodGet,
			Endpoint:         "/orders",
			Status:           models.StepStatusPassed,
			Attempts:         1,
			ActualStatusCode: 200 + i,
			ActualBody:       `{"id":"ord-1"}`,
			BodyDigest:       models.SHA256Hex([]byte(`{"id":"ord-1"}`)),
			AssertionResults: []models.AssertionResult{
				{Locator: "status", Expected: "201", Actual: "201", Passed: true},
			},
			DurationMs: 12,
			StartedAt:  started,
			FinishedAt: started.Add(12 * time.Millisecond),
		})
		require.NoError(t, err)
		_, err = runService.AppendEvent(ctx, run.ID, models.AppendEventRequest{
			Type:         models.EventExecutionSuccess,
			ScenarioID:   sc.ID,
			StepResultID: res.ID,
		})
		require.NoError(t, err)
	}

	run, err = runService.Transition(ctx, run.ID, models.RunStatusExecutionComplete, models.AppendEventRequest{
		Type: models.EventExecutionSuccess,
	})
	require.NoError(t, err)

	// 6. QA evaluation: coverage + verdict
	run, err = runService.Transition(ctx, run.ID, models.RunStatusQAEvalInProgress, models.AppendEventRequest{
		Type: models.EventQAEvalStarted,
	})
	require.NoError(t, err)

	_, err = reportService.SaveCoverage(ctx, &models.CoverageSnapshot{
		RunID:      run.ID,
		OpsTotal:   2,
		OpsCovered: 2,
		PerOpStatus: map[string]models.OperationOutcome{
			"POST /orders":     models.OpCovered,
			"GET /orders/{id}": models.OpCovered,
		},
		ScenariosPassed: 2,
	})
	require.NoError(t, err)

	_, err = reportService.SaveSummary(ctx, &models.QASummary{
		RunID:            run.ID,
		OverallVerdict:   models.VerdictPass,
		PassedScenarios:  2,
		NarrativeSummary: "Both order operations behave as specified.",
		NarrativeSource:  models.NarrativeSourceTemplate,
		QualityScore:     96,
	})
	require.NoError(t, err)

	run, err = runService.Transition(ctx, run.ID, models.RunStatusQAEvalDone, models.AppendEventRequest{
		Type: models.EventQAEvalDone,
	})
	require.NoError(t, err)
	run, err = runService.Transition(ctx, run.ID, models.RunStatusComplete, models.AppendEventRequest{
		Type:    models.EventComplete,
		Payload: map[string]any{"verdict": string(models.VerdictPass)},
	})
	require.NoError(t, err)

	// 7. Everything is attached to the run
	report, err := reportService.GetReport(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, qarun.StatusComplete, report.Run.Status)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, 2, report.Coverage.OpsCovered)
	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.VerdictPass), string(report.Summary.OverallVerdict))

	full, err := runService.GetRun(ctx, run.ID, true)
	require.NoError(t, err)
	assert.Len(t, full.Edges.Scenarios, 2)

	results, err := resultService.ListStepResults(ctx, run.ID)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	events, err := runService.ListEvents(ctx, run.ID, 0, 0)
	require.NoError(t, err)
	for i, evt := range events {
		assert.Equal(t, i+1, evt.Seq, "journal must stay gapless across services")
	}
	assert.Equal(t, string(models.EventComplete), string(events[len(events)-1].Type))
}

// TestConcurrentJournalAppends hammers one run's journal from many
// goroutines. The per-run row lock must serialize seq allocation: afterward
// the journal is exactly 1..n with no gaps and no duplicates.
func TestConcurrentJournalAppends(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	run, err := service.CreateRun(ctx, minimalRunRequest())
	require.NoError(t, err)

	const writers = 8
	const appendsPerWriter = 5

	var wg sync.WaitGroup
	errCh := make(chan error, writers*appendsPerWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < appendsPerWriter; i++ {
				_, err := service.AppendEvent(ctx, run.ID, models.AppendEventRequest{
					Type:    models.EventScenarioCreated,
					Payload: map[string]any{"writer": w, "i": i},
				})
				if err != nil {
					errCh <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("append failed: %v", err)
	}

	events, err := service.ListEvents(ctx, run.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, writers*appendsPerWriter+1)

	seqs := make([]int, len(events))
	for i, evt := range events {
		seqs[i] = evt.Seq
	}
	assert.True(t, sort.IntsAreSorted(seqs))
	for i, seq := range seqs {
		assert.Equal(t, i+1, seq, "seq %d is missing or duplicated", i+1)
	}
}

// TestConcurrentClaims runs several workers against a shared queue.
// SKIP LOCKED must hand every run to exactly one worker.
func TestConcurrentClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client, nil)
	ctx := context.Background()

	const runCount = 6
	for i := 0; i < runCount; i++ {
		req := minimalRunRequest()
		req.Name = fmt.Sprintf("queued-%d", i)
		_, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
	}

	const workers = 4
	var mu sync.Mutex
	claimedBy := make(map[string]string)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			workerID := fmt.Sprintf("worker-%d", w)
			for {
				run, err := service.ClaimNextRequestedRun(ctx, workerID)
				if err != nil {
					t.Errorf("claim failed: %v", err)
					return
				}
				if run == nil {
					return
				}
				mu.Lock()
				if prev, dup := claimedBy[run.ID]; dup {
					t.Errorf("run %s claimed by both %s and %s", run.ID, prev, workerID)
				}
				claimedBy[run.ID] = workerID
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, claimedBy, runCount, "every run claimed exactly once")
}

// TestReplayRoundTrip verifies the stored payload is the replay contract:
// the new run carries step-for-step copies of the source scenarios under
// fresh ids.
func TestReplayRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	runService := NewRunService(client.Client, nil)
	scenarioService := NewScenarioService(client.Client)
	payloadService := NewPayloadService(client.Client)
	replayService := NewReplayService(client.Client, payloadService, nil)

	source, err := runService.CreateRun(ctx, minimalRunRequest())
	require.NoError(t, err)

	saved, err := scenarioService.SaveScenarios(ctx, source.ID, []ScenarioRecord{{
		Scenario: models.Scenario{
			Name: "health probe",
			Steps: []models.Step{
				{Name: "probe", Method: models.MethodGet, Endpoint: "/healthz",
					Expected: models.Expectation{Status: "200"}},
			},
		},
	}})
	require.NoError(t, err)

	sourceDoc := &payload.Document{
		RunID:       source.ID,
		SpecHash:    "sha256:feed",
		Scenarios:   []models.Scenario{ScenarioFromEnt(saved[0])},
		Environment: map[string]string{"API_KEY": "k"},
		Config:      source.Config,
	}
	_, err = payloadService.SavePayload(ctx, sourceDoc)
	require.NoError(t, err)

	t.Run("replay preserves scenarios and marks provenance", func(t *testing.T) {
		replay, err := replayService.ReplayRun(ctx, source.ID, ReplayOptions{TriggeredBy: "qa@example.com"})
		require.NoError(t, err)
		assert.NotEqual(t, source.ID, replay.ID)
		assert.Equal(t, qarun.StatusRequested, replay.Status)
		require.NotNil(t, replay.ReplayOf)
		assert.Equal(t, source.ID, *replay.ReplayOf)
		require.NotNil(t, replay.SpecHash)
		assert.Equal(t, "sha256:feed", *replay.SpecHash)

		replayDoc, err := payloadService.GetPayload(ctx, replay.ID)
		require.NoError(t, err)
		require.Len(t, replayDoc.Scenarios, 1)
		assert.NotEqual(t, saved[0].ID, replayDoc.Scenarios[0].ID, "replay rows get fresh ids")
		assert.Equal(t, ScenarioFromEnt(saved[0]).Steps, replayDoc.Scenarios[0].Steps, "step content is copied verbatim")
		assert.Equal(t, models.ScenarioSourceReplayed, replayDoc.Scenarios[0].Source)
		assert.Equal(t, replay.ID, replayDoc.Scenarios[0].RunID)
		assert.Equal(t, sourceDoc.Environment, replayDoc.Environment)

		replays, err := replayService.ListReplays(ctx, source.ID)
		require.NoError(t, err)
		require.Len(t, replays, 1)
		assert.Equal(t, replay.ID, replays[0].ID)
	})

	t.Run("base URL override is validated", func(t *testing.T) {
		_, err := replayService.ReplayRun(ctx, source.ID, ReplayOptions{BaseURL: "gopher://x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("run without payload is not replayable", func(t *testing.T) {
		bare, err := runService.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)

		_, err = replayService.ReplayRun(ctx, bare.ID, ReplayOptions{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
