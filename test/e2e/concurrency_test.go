package e2e

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Worker pool concurrency: several runs execute at once, each claimed
// by exactly one worker, and the pool's capacity gate holds surplus
// runs in REQUESTED.
// ────────────────────────────────────────────────────────────

// TestE2E_ConcurrentRuns drives five runs through a three-worker pool.
// The stub pins the first three requests until all three have arrived,
// which proves three runs were in flight simultaneously on three
// distinct workers.
func TestE2E_ConcurrentRuns(t *testing.T) {
	sut := NewSUTServer(t)
	var arrivals atomic.Int32
	release := make(chan struct{})
	sut.Handle("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		if arrivals.Add(1) == 3 {
			close(release)
		}
		select {
		case <-release:
		case <-r.Context().Done():
			return
		}
		WriteJSON(w, http.StatusCreated, map[string]any{"id": "u-1"})
	})

	aiClient := NewScriptedAIClient()
	for i := 0; i < 5; i++ {
		aiClient.AddSequential(AIScriptEntry{Text: scenarioCreateUser})
		aiClient.AddNarrative(AIScriptEntry{Text: "All scenarios passed."})
	}

	app := NewTestApp(t, WithAIClient(aiClient), WithWorkerCount(3), WithMaxConcurrentRuns(3))

	runIDs := make([]string, 5)
	for i := range runIDs {
		run := app.CreateRun(t, models.CreateRunRequest{
			Name:       "concurrent-run",
			SpecSource: models.SpecSourceInline,
			SpecInline: specSingleOp,
			BaseURL:    sut.BaseURL(),
			Config:     models.RunConfig{AllowInternal: true},
		})
		runIDs[i] = run.ID
	}

	app.WaitForNRunsInStatus(t, 5, models.RunStatusComplete)
	assert.Equal(t, 5, sut.CountRequests("POST", "/api/users"))

	// Claims are FIFO, so the first three runs are the pinned ones; their
	// simultaneity means three distinct workers carried them.
	workers := make(map[string]bool)
	for i, id := range runIDs {
		row, err := app.EntClient.QARun.Get(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, row.WorkerID)
		assert.Contains(t, *row.WorkerID, "-worker-")
		if i < 3 {
			workers[*row.WorkerID] = true
		}

		events := app.QueryJournal(t, id)
		RequireGaplessSeq(t, events)
		types := JournalTypes(events)
		assert.Equal(t, "REQUESTED", types[0])
		assert.Equal(t, "COMPLETE", types[len(types)-1])
	}
	assert.Len(t, workers, 3)
}

// TestE2E_CapacityGate holds a third run in REQUESTED while two workers
// are saturated, then admits it once capacity frees.
func TestE2E_CapacityGate(t *testing.T) {
	sut := NewSUTServer(t)
	release := make(chan struct{})
	sut.Handle("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
			return
		}
		WriteJSON(w, http.StatusCreated, map[string]any{"id": "u-1"})
	})

	aiClient := NewScriptedAIClient()
	for i := 0; i < 3; i++ {
		aiClient.AddSequential(AIScriptEntry{Text: scenarioCreateUser})
		aiClient.AddNarrative(AIScriptEntry{Text: "All scenarios passed."})
	}

	app := NewTestApp(t, WithAIClient(aiClient), WithWorkerCount(2))

	runIDs := make([]string, 3)
	for i := range runIDs {
		run := app.CreateRun(t, models.CreateRunRequest{
			Name:       "gated-run",
			SpecSource: models.SpecSourceInline,
			SpecInline: specSingleOp,
			BaseURL:    sut.BaseURL(),
			Config:     models.RunConfig{AllowInternal: true},
		})
		runIDs[i] = run.ID
	}

	// Two runs saturate the pool inside the stub.
	app.WaitForNRunsInStatus(t, 2, models.RunStatusExecutionInProgress)

	// The third stays unclaimed across several poll cycles.
	time.Sleep(700 * time.Millisecond)
	third, err := app.EntClient.QARun.Get(context.Background(), runIDs[2])
	require.NoError(t, err)
	assert.Equal(t, string(models.RunStatusRequested), string(third.Status))
	assert.Nil(t, third.WorkerID)
	assert.Equal(t, 2, sut.CountRequests("POST", "/api/users"))

	close(release)
	app.WaitForNRunsInStatus(t, 3, models.RunStatusComplete)
	assert.Equal(t, 3, sut.CountRequests("POST", "/api/users"))
}
