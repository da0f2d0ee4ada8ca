package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

func TestPoolRegisterAndCancelRun(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	// Register a run
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run-1", cancel)

	// Cancel should succeed for registered run
	assert.True(t, pool.CancelRun("run-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown run
	assert.False(t, pool.CancelRun("unknown"))
}

func TestPoolUnregisterRun(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run-1", cancel)

	// Should find it
	assert.True(t, pool.CancelRun("run-1"))

	// Unregister
	pool.UnregisterRun("run-1")

	// Should not find it anymore
	assert.False(t, pool.CancelRun("run-1"))
}

func TestPoolGetActiveRunIDs(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveRunIDs()
	assert.Empty(t, ids)

	// Register runs
	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterRun("run-a", cancel1)
	pool.RegisterRun("run-b", cancel2)

	ids = pool.getActiveRunIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "run-a")
	assert.Contains(t, ids, "run-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestNonTerminalStatuses(t *testing.T) {
	statuses := nonTerminalStatuses()

	// run-in-flight statuses only, no terminals
	for _, st := range statuses {
		assert.False(t, models.RunStatus(st).Terminal(), "status %s should be non-terminal", st)
	}
	assert.Len(t, statuses, 7)
}

func TestFailureTerminalFor(t *testing.T) {
	tests := []struct {
		current    models.RunStatus
		wantStatus models.RunStatus
		wantEvent  models.RunEventType
	}{
		{models.RunStatusRequested, models.RunStatusFailedSpecFetch, models.EventSpecFetchFailed},
		{models.RunStatusSpecFetched, models.RunStatusFailedGeneration, models.EventAIFailed},
		{models.RunStatusAISuccess, models.RunStatusFailedExecution, models.EventFailed},
		{models.RunStatusExecutionInProgress, models.RunStatusFailedExecution, models.EventFailed},
		{models.RunStatusExecutionComplete, models.RunStatusCancelled, models.EventCancelled},
		{models.RunStatusQAEvalInProgress, models.RunStatusCancelled, models.EventCancelled},
		{models.RunStatusQAEvalDone, models.RunStatusCancelled, models.EventCancelled},
	}
	for _, tc := range tests {
		status, evType := failureTerminalFor(tc.current)
		assert.Equal(t, tc.wantStatus, status, "stranded in %s", tc.current)
		assert.Equal(t, tc.wantEvent, evType, "stranded in %s", tc.current)

		// The forced terminal must be a legal transition
		assert.True(t, tc.current.CanTransitionTo(status),
			"%s -> %s must be legal", tc.current, status)
	}
}
