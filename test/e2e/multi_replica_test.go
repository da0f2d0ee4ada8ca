package e2e

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
	testdb "github.com/qawave/qawave/test/database"
)

// ────────────────────────────────────────────────────────────
// Multi-replica coordination: two pods share one database. FOR UPDATE
// SKIP LOCKED claiming hands each run to exactly one pod, and a cancel
// issued on the pod that is NOT executing the run still lands, with the
// executing pod quiescing at its own deadline.
// ────────────────────────────────────────────────────────────

// TestE2E_MultiReplicaClaiming pins both runs inside the stub at once,
// proving each replica carried one of them.
func TestE2E_MultiReplicaClaiming(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	sut := NewSUTServer(t)
	var arrivals atomic.Int32
	release := make(chan struct{})
	sut.Handle("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		if arrivals.Add(1) == 2 {
			close(release)
		}
		select {
		case <-release:
		case <-r.Context().Done():
			return
		}
		WriteJSON(w, http.StatusCreated, map[string]any{"id": "u-1"})
	})

	scriptedClient := func() *ScriptedAIClient {
		c := NewScriptedAIClient()
		for i := 0; i < 2; i++ {
			c.AddSequential(AIScriptEntry{Text: scenarioCreateUser})
			c.AddNarrative(AIScriptEntry{Text: "All scenarios passed."})
		}
		return c
	}

	appA := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("replica-a"),
		WithWorkerCount(1),
		WithMaxConcurrentRuns(2),
		WithAIClient(scriptedClient()))
	appB := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("replica-b"),
		WithWorkerCount(1),
		WithMaxConcurrentRuns(2),
		WithAIClient(scriptedClient()))

	runIDs := make([]string, 2)
	for i := range runIDs {
		run := appA.CreateRun(t, models.CreateRunRequest{
			Name:       "replicated-run",
			SpecSource: models.SpecSourceInline,
			SpecInline: specSingleOp,
			BaseURL:    sut.BaseURL(),
			Config:     models.RunConfig{AllowInternal: true},
		})
		runIDs[i] = run.ID
	}

	appA.WaitForNRunsInStatus(t, 2, models.RunStatusComplete)

	// One worker per pod, so simultaneous pins mean one run per replica.
	// Reading through the second replica's client doubles as a check that
	// both pods share the schema.
	var workers []string
	for _, id := range runIDs {
		row, err := appB.EntClient.QARun.Get(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, row.WorkerID)
		workers = append(workers, *row.WorkerID)
	}
	assert.ElementsMatch(t, []string{"replica-a-worker-0", "replica-b-worker-0"}, workers)
	assert.Equal(t, 2, sut.CountRequests("POST", "/api/users"))
}

// TestE2E_CrossReplicaCancel cancels a run from the replica that is not
// executing it. The database terminal lands immediately; the executing
// replica only notices at its run deadline, and its late writes are
// rejected without disturbing the journal.
func TestE2E_CrossReplicaCancel(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	sut := NewSUTServer(t)
	sut.Handle("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done() // pin until the executing pod gives up
	})

	scriptedClient := func() *ScriptedAIClient {
		c := NewScriptedAIClient()
		c.AddSequential(AIScriptEntry{Text: scenarioCreateUser})
		c.AddNarrative(AIScriptEntry{Text: "unused"})
		return c
	}

	appA := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("replica-a"),
		WithWorkerCount(1),
		WithRunTimeout(2*time.Second),
		WithAIClient(scriptedClient()))
	appB := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("replica-b"),
		WithWorkerCount(1),
		WithRunTimeout(2*time.Second),
		WithAIClient(scriptedClient()))

	run := appA.CreateRun(t, models.CreateRunRequest{
		Name:       "cross-cancel",
		SpecSource: models.SpecSourceInline,
		SpecInline: specSingleOp,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	appA.WaitForRunStatus(t, run.ID, models.RunStatusExecutionInProgress)

	claimed, err := appA.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, claimed.WorkerID)

	// Cancel from the replica that does NOT hold the run.
	other := appB
	if strings.HasPrefix(*claimed.WorkerID, "replica-b") {
		other = appA
	}
	cancelled, err := other.Runs.CancelRun(context.Background(), run.ID, "operator request")
	require.NoError(t, err)
	assert.Equal(t, string(models.RunStatusCancelled), string(cancelled.Status))

	final, err := appA.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, final.ErrorMessage)
	assert.Equal(t, "operator request", *final.ErrorMessage)
	require.NotNil(t, final.ErrorKind)
	assert.Equal(t, string(models.ErrKindCancelled), *final.ErrorKind)

	// Let the executing pod hit its deadline and try to close the run
	// itself: the terminal must not move and nothing may journal after
	// CANCELLED.
	time.Sleep(3 * time.Second)

	settled, err := appA.EntClient.QARun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.RunStatusCancelled), string(settled.Status))
	assert.Equal(t, "operator request", *settled.ErrorMessage)

	events := appA.QueryJournal(t, run.ID)
	require.Equal(t, []string{
		"REQUESTED",
		"SPEC_FETCHED",
		"SCENARIO_CREATED",
		"AI_SUCCESS",
		"EXECUTION_STARTED",
		"EXECUTION_STARTED",
		"CANCELLED",
	}, JournalTypes(events))
	RequireGaplessSeq(t, events)
	assert.Equal(t, "operator request", events[6].Payload["reason"])
}
