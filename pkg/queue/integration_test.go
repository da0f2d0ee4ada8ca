package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/services"
	testdb "github.com/qawave/qawave/test/database"
)

// createTestRun creates a run in requested status through the run service,
// so the seq-1 REQUESTED journal event exists like in production.
func createTestRun(ctx context.Context, t *testing.T, runs *services.RunService) *ent.QARun {
	t.Helper()
	run, err := runs.CreateRun(ctx, models.CreateRunRequest{
		Name:        "queue test run",
		SpecSource:  models.SpecSourceInline,
		SpecInline:  `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`,
		BaseURL:     "http://api.example.test",
		TriggeredBy: "queue-test",
	})
	require.NoError(t, err)
	return run
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentRuns:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		HeartbeatInterval:       30 * time.Second,
		RunTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestClaimNextRequestedRun tests that a worker can atomically claim a
// requested run without changing its status.
func TestClaimNextRequestedRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	run := createTestRun(ctx, t, runs)

	claimed, err := runs.ClaimNextRequestedRun(ctx, "test-pod-worker-0")
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the requested run")
	assert.Equal(t, run.ID, claimed.ID)
	// The claim records ownership but leaves status alone: only the
	// pipeline transitions runs.
	assert.Equal(t, qarun.StatusRequested, claimed.Status)
	require.NotNil(t, claimed.WorkerID)
	assert.Equal(t, "test-pod-worker-0", *claimed.WorkerID)
	assert.NotNil(t, claimed.ClaimedAt)
	assert.NotNil(t, claimed.HeartbeatAt)

	// Second claim should find nothing
	claimed2, err := runs.ClaimNextRequestedRun(ctx, "test-pod-worker-1")
	require.NoError(t, err)
	assert.Nil(t, claimed2, "no more requested runs should be available")
}

// TestConcurrentClaimsDifferentRuns tests that concurrent workers claim
// different runs.
func TestConcurrentClaimsDifferentRuns(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	runIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		r := createTestRun(ctx, t, runs)
		runIDs[r.ID] = struct{}{}
	}

	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			run, err := runs.ClaimNextRequestedRun(ctx, fmt.Sprintf("worker-%d", workerID))
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if run != nil {
				mu.Lock()
				claimed = append(claimed, run.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d found no run to claim", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 runs should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 runs should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "run %s claimed by multiple workers", id)
		seen[id] = struct{}{}
	}
	for _, id := range claimed {
		_, ok := runIDs[id]
		assert.True(t, ok, "claimed run %s was not in original set", id)
	}
}

// TestOrphanRecoveryRequeuesUnstartedRun tests that a claimed run that never
// left REQUESTED returns to the queue instead of failing.
func TestOrphanRecoveryRequeuesUnstartedRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	run := createTestRun(ctx, t, runs)

	// Simulate a crash: claimed long ago, heartbeat never refreshed
	staleBeat := time.Now().Add(-10 * time.Minute)
	_, err := client.QARun.UpdateOneID(run.ID).
		SetWorkerID("crashed-pod-worker-0").
		SetClaimedAt(staleBeat).
		SetHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		runs:   runs,
		config: cfg,
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	// The run is requested and unclaimed again
	updated, err := client.QARun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, qarun.StatusRequested, updated.Status)
	assert.Nil(t, updated.WorkerID)
	assert.Nil(t, updated.HeartbeatAt)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRequeued)
	assert.Equal(t, 0, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestOrphanRecoveryFailsStrandedRun tests that an orphan abandoned
// mid-execution closes with the failure terminal of its stage and the
// matching journal event.
func TestOrphanRecoveryFailsStrandedRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	run := createTestRun(ctx, t, runs)

	// Walk the run into execution, then strand it
	_, err := runs.TransitionSpecFetched(ctx, run.ID, "hash", models.AppendEventRequest{Type: models.EventSpecFetched})
	require.NoError(t, err)
	_, err = runs.Transition(ctx, run.ID, models.RunStatusAISuccess, models.AppendEventRequest{Type: models.EventAISuccess})
	require.NoError(t, err)
	_, err = runs.Transition(ctx, run.ID, models.RunStatusExecutionInProgress, models.AppendEventRequest{Type: models.EventExecutionStarted})
	require.NoError(t, err)

	staleBeat := time.Now().Add(-10 * time.Minute)
	_, err = client.QARun.UpdateOneID(run.ID).
		SetWorkerID("crashed-pod-worker-1").
		SetClaimedAt(staleBeat).
		SetHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		runs:   runs,
		config: cfg,
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.QARun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, qarun.StatusFailedExecution, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "orphaned")
	require.NotNil(t, updated.ErrorKind)
	assert.Equal(t, string(models.ErrKindInternal), *updated.ErrorKind)

	// The terminal journal event was appended
	last, err := client.RunEvent.Query().
		Where(runevent.RunIDEQ(run.ID)).
		Order(ent.Desc(runevent.FieldSeq)).
		First(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(models.EventFailed), string(last.Type))

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestStartupOrphanCleanup tests the one-time startup orphan recovery.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	podID := "startup-test-pod"

	// Runs claimed by this pod's workers before the crash
	var podRuns []string
	for i := 0; i < 3; i++ {
		run := createTestRun(ctx, t, runs)
		_, err := client.QARun.UpdateOneID(run.ID).
			SetWorkerID(fmt.Sprintf("%s-worker-%d", podID, i)).
			SetClaimedAt(time.Now()).
			SetHeartbeatAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
		podRuns = append(podRuns, run.ID)
	}

	// A run claimed by a different pod (should not be affected)
	otherRun := createTestRun(ctx, t, runs)
	_, err := client.QARun.UpdateOneID(otherRun.ID).
		SetWorkerID("other-pod-worker-0").
		SetClaimedAt(time.Now()).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, runs, podID))

	// This pod's claims are released: all runs were still REQUESTED, so
	// they requeue instead of failing
	for _, id := range podRuns {
		r, err := client.QARun.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, qarun.StatusRequested, r.Status, "run %s should be requeued", id)
		assert.Nil(t, r.WorkerID, "run %s should be unclaimed", id)
	}

	// Other pod's claim is untouched
	other, err := client.QARun.Get(ctx, otherRun.ID)
	require.NoError(t, err)
	require.NotNil(t, other.WorkerID)
	assert.Equal(t, "other-pod-worker-0", *other.WorkerID)
}

// mockExecutor drives claimed runs through the full legal status chain,
// like the real pipeline does, and tracks which runs it processed.
type mockExecutor struct {
	runs       *services.RunService
	processed  atomic.Int64
	runsSeen   sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, run *ent.QARun) *ExecutionResult {
	m.processed.Add(1)
	if run != nil {
		m.runsSeen.Store(run.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{Status: models.RunStatusCancelled, Error: ctx.Err()}
		}
	}

	chain := []struct {
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
	for _, step := range chain {
		if ctx.Err() != nil {
			return &ExecutionResult{Status: models.RunStatusCancelled, Error: ctx.Err()}
		}
		if _, err := m.runs.Transition(ctx, run.ID, step.to, models.AppendEventRequest{Type: step.ev}); err != nil {
			return &ExecutionResult{Status: models.RunStatusFailedExecution, Error: err}
		}
	}
	return &ExecutionResult{Status: models.RunStatusComplete}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	for i := 0; i < 3; i++ {
		createTestRun(ctx, t, runs)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{runs: runs}
	pool := NewWorkerPool("test-pod", client, runs, cfg, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for runs to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	completed, err := client.QARun.Query().
		Where(qarun.StatusEQ(qarun.StatusComplete)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, completed, 3, "all 3 runs should be complete")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	for i := 0; i < 5; i++ {
		createTestRun(ctx, t, runs)
	}

	// Use 2 workers matching MaxConcurrentRuns to avoid startup races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentRuns = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test

	releaseCh := make(chan struct{})
	executor := &mockExecutor{runs: runs, releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, runs, cfg, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for runs in progress to reach the cap",
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentRuns) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentRuns), executor.inProgress.Load(),
		"should have exactly MaxConcurrentRuns in progress")

	// DB agrees: exactly MaxConcurrentRuns are claimed and live
	claimed, err := client.QARun.Query().
		Where(
			qarun.StatusIn(nonTerminalStatuses()...),
			qarun.WorkerIDNotNil(),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentRuns, claimed, "DB should show MaxConcurrentRuns claimed")

	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for first batch to complete",
		func() bool { return executor.inProgress.Load() == 0 })

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all runs to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	completedCount, err := client.QARun.Query().
		Where(qarun.StatusEQ(qarun.StatusComplete)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 runs should complete")
}

// TestHeartbeatUpdates tests that heartbeats refresh heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	run := createTestRun(ctx, t, runs)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockExecutor{runs: runs, releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, runs, cfg, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for run to be claimed",
		func() bool {
			r, err := client.QARun.Get(ctx, run.ID)
			require.NoError(t, err)
			return r.WorkerID != nil && r.HeartbeatAt != nil
		})

	r1, err := client.QARun.Get(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, r1.HeartbeatAt)
	initialBeat := *r1.HeartbeatAt

	// Wait for at least one heartbeat (interval is 100ms)
	time.Sleep(250 * time.Millisecond)

	r2, err := client.QARun.Get(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, r2.HeartbeatAt)
	assert.True(t, r2.HeartbeatAt.After(initialBeat), "heartbeat_at should be refreshed")

	close(releaseCh)
	pool.Stop()
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	processed atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.QARun) *ExecutionResult {
	e.processed.Add(1)
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult does not
// panic and that the safety net forces the failure terminal of the stage
// the run was stranded in. A run that never left REQUESTED fails as
// FAILED_SPEC_FETCH.
func TestNilExecutionResultGuard(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	run := createTestRun(ctx, t, runs)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	executor := &nilExecutor{}
	pool := NewWorkerPool("test-pod", client, runs, cfg, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for run to be processed",
		func() bool { return executor.processed.Load() >= 1 })

	pool.Stop()

	updated, err := client.QARun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, qarun.StatusFailedSpecFetch, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "nil result")
}

// TestWorkerSafetyNetRespectsPipelineTerminal verifies the worker does not
// overwrite a terminal status the executor already landed.
func TestWorkerSafetyNetRespectsPipelineTerminal(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	runs := services.NewRunService(client, nil)

	run := createTestRun(ctx, t, runs)

	// Executor cancels the run itself, like the pipeline does
	cancelling := executorFunc(func(ctx context.Context, r *ent.QARun) *ExecutionResult {
		if _, err := runs.CancelRun(ctx, r.ID, "operator requested stop"); err != nil {
			return &ExecutionResult{Status: models.RunStatusFailedExecution, Error: err}
		}
		return &ExecutionResult{Status: models.RunStatusCancelled}
	})

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	pool := NewWorkerPool("test-pod", client, runs, cfg, cancelling)
	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for run to be cancelled",
		func() bool {
			r, err := client.QARun.Get(ctx, run.ID)
			require.NoError(t, err)
			return r.Status == qarun.StatusCancelled
		})

	pool.Stop()

	// The CANCELLED journal event is the last one
	last, err := client.RunEvent.Query().
		Where(runevent.RunIDEQ(run.ID)).
		Order(ent.Desc(runevent.FieldSeq)).
		First(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(models.EventCancelled), string(last.Type))
}

// executorFunc adapts a function to the RunExecutor interface.
type executorFunc func(ctx context.Context, run *ent.QARun) *ExecutionResult

func (f executorFunc) Execute(ctx context.Context, run *ent.QARun) *ExecutionResult {
	return f(ctx, run)
}
