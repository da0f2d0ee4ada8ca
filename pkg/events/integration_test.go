package events

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/database"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/services"
	testdb "github.com/qawave/qawave/test/database"
	"github.com/qawave/qawave/test/util"
)

// streamTestEnv holds all wired-up components for an integration test.
type streamTestEnv struct {
	dbClient *database.Client
	runs     *services.RunService
	broker   *Broker
	listener *NotifyListener
}

// setupStreamTest wires publisher → RunService → listener → broker against
// a real PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamTest(t *testing.T) *streamTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	publisher := NewEventPublisher(dbClient.DB())
	runs := services.NewRunService(dbClient.Client, publisher)

	broker := NewBroker()

	// The listener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, broker)
	require.NoError(t, listener.Start(ctx))
	broker.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &streamTestEnv{
		dbClient: dbClient,
		runs:     runs,
		broker:   broker,
		listener: listener,
	}
}

// subscribe registers a broker subscription and waits for the LISTEN to
// propagate to the dedicated connection, polling instead of sleeping.
func (env *streamTestEnv) subscribe(t *testing.T, channel string) <-chan []byte {
	t.Helper()
	ch, cancel := env.broker.Subscribe(channel)
	t.Cleanup(cancel)

	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 5*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return ch
}

// createStreamTestRun creates a run through the run service, so the seq-1
// REQUESTED journal event is published exactly as in production.
func createStreamTestRun(ctx context.Context, t *testing.T, runs *services.RunService) string {
	t.Helper()
	run, err := runs.CreateRun(ctx, models.CreateRunRequest{
		Name:        "stream test run",
		SpecSource:  models.SpecSourceInline,
		SpecInline:  `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`,
		BaseURL:     "http://api.example.test",
		TriggeredBy: "events-test",
	})
	require.NoError(t, err)
	return run.ID
}

// readEvent reads the next notification from the channel and decodes it.
func readEvent(t *testing.T, ch <-chan []byte, timeout time.Duration) map[string]any {
	t.Helper()
	select {
	case data, ok := <-ch:
		require.True(t, ok, "delivery channel closed")
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(timeout):
		t.Fatal("timed out waiting for notification")
		return nil
	}
}

// readEventForRun reads notifications until one for the given run arrives.
// The global runs channel is database-level, so runs created by other tests
// sharing the database may interleave with ours.
func readEventForRun(t *testing.T, ch <-chan []byte, runID string, timeout time.Duration) map[string]any {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case data, ok := <-ch:
			require.True(t, ok, "delivery channel closed")
			var msg map[string]any
			require.NoError(t, json.Unmarshal(data, &msg))
			if msg["run_id"] == runID {
				return msg
			}
		case <-deadline:
			t.Fatalf("timed out waiting for notification for run %s", runID)
			return nil
		}
	}
}

// --- Tests ---

func TestIntegration_JournalEventReachesSubscriber(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	runID := createStreamTestRun(ctx, t, env.runs)
	ch := env.subscribe(t, RunChannel(runID))

	_, err := env.runs.TransitionSpecFetched(ctx, runID, "sha256:deadbeef", models.AppendEventRequest{
		Type: models.EventSpecFetched,
		Payload: map[string]any{
			"specHash": "sha256:deadbeef",
			"title":    "t",
		},
	})
	require.NoError(t, err)

	// The event arrives via pg_notify → listener → broker
	msg := readEvent(t, ch, 5*time.Second)
	assert.Equal(t, runID, msg["run_id"])
	assert.Equal(t, float64(2), msg["seq"], "transition event follows the seq-1 REQUESTED event")
	assert.Equal(t, string(models.EventSpecFetched), msg["type"])
	payload, ok := msg["payload"].(map[string]any)
	require.True(t, ok, "payload should round-trip as an object")
	assert.Equal(t, "sha256:deadbeef", payload["specHash"])
	assert.NotEmpty(t, msg["created_at"])
}

func TestIntegration_LifecycleMirroredToGlobalChannel(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	runID := createStreamTestRun(ctx, t, env.runs)
	runsCh := env.subscribe(t, RunsChannel)
	runCh := env.subscribe(t, RunChannel(runID))

	// An advisory append: journaled and delivered on the run channel, but
	// not mirrored to the global channel.
	_, err := env.runs.AppendEvent(ctx, runID, models.AppendEventRequest{
		Type: models.EventScenarioGenerationFailed,
		Payload: map[string]any{
			"operation": "GET /orders",
			"kind":      string(models.ErrKindAISchema),
		},
	})
	require.NoError(t, err)

	_, err = env.runs.TransitionSpecFetched(ctx, runID, "sha256:cafe", models.AppendEventRequest{
		Type:    models.EventSpecFetched,
		Payload: map[string]any{"specHash": "sha256:cafe"},
	})
	require.NoError(t, err)

	// Run channel carries both, in commit order.
	msg := readEvent(t, runCh, 5*time.Second)
	assert.Equal(t, string(models.EventScenarioGenerationFailed), msg["type"])
	msg = readEvent(t, runCh, 5*time.Second)
	assert.Equal(t, string(models.EventSpecFetched), msg["type"])

	// Global channel carries only the transition. NOTIFY delivery per
	// channel is commit-ordered, so seeing SPEC_FETCHED first proves the
	// earlier advisory was never mirrored.
	msg = readEventForRun(t, runsCh, runID, 5*time.Second)
	assert.Equal(t, string(models.EventSpecFetched), msg["type"])
}

func TestIntegration_OversizedEventTruncatedAndRecoverable(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	runID := createStreamTestRun(ctx, t, env.runs)
	ch := env.subscribe(t, RunChannel(runID))

	blob := strings.Repeat("v", 9000)
	_, err := env.runs.AppendEvent(ctx, runID, models.AppendEventRequest{
		Type: models.EventScenarioGenerationFailed,
		Payload: map[string]any{
			"operation":  "POST /orders",
			"violations": blob,
		},
	})
	require.NoError(t, err)

	// The notification is the truncation envelope, not the full payload.
	msg := readEvent(t, ch, 5*time.Second)
	assert.Equal(t, true, msg["truncated"])
	assert.Equal(t, runID, msg["run_id"])
	assert.Equal(t, string(models.EventScenarioGenerationFailed), msg["type"])
	seq := int(msg["seq"].(float64))
	assert.Equal(t, 2, seq)

	// The consumer recovers the full record from the journal.
	recovered, err := env.runs.ListEvents(ctx, runID, seq-1, 1)
	require.NoError(t, err)
	require.Len(t, recovered, 1)
	assert.Equal(t, seq, recovered[0].Seq)
	assert.Equal(t, blob, recovered[0].Payload["violations"])
}

func TestIntegration_PublishFailureDoesNotFailJournalWrite(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	// A publisher whose connection pool is closed: every NOTIFY fails.
	broken, err := stdsql.Open("pgx", "host=localhost dbname=unused")
	require.NoError(t, err)
	require.NoError(t, broken.Close())
	publisher := NewEventPublisher(broken)

	err = publisher.PublishRunEvent(ctx, models.RunEvent{RunID: "r", Seq: 1, Type: models.EventRequested})
	assert.Error(t, err, "publisher reports the NOTIFY failure")

	// Wired as the sink, the same failure never reaches the caller: the
	// journal write commits and CreateRun succeeds.
	runs := services.NewRunService(env.dbClient.Client, publisher)
	runID := createStreamTestRun(ctx, t, runs)

	events, err := env.runs.ListEvents(ctx, runID, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(models.EventRequested), string(events[0].Type))
}

func TestIntegration_LateSubscriberBackfillsFromJournal(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	runID := createStreamTestRun(ctx, t, env.runs)

	_, err := env.runs.TransitionSpecFetched(ctx, runID, "sha256:1234", models.AppendEventRequest{
		Type:    models.EventSpecFetched,
		Payload: map[string]any{"specHash": "sha256:1234"},
	})
	require.NoError(t, err)

	_, err = env.runs.Transition(ctx, runID, models.RunStatusAISuccess, models.AppendEventRequest{
		Type:    models.EventAISuccess,
		Payload: map[string]any{"scenarioCount": 3},
	})
	require.NoError(t, err)

	// A subscriber arriving now missed three events. Backfill from the
	// journal, then switch to the live stream.
	ch := env.subscribe(t, RunChannel(runID))

	backfill, err := env.runs.ListEvents(ctx, runID, 0, 100)
	require.NoError(t, err)
	require.Len(t, backfill, 3)
	for i, ev := range backfill {
		assert.Equal(t, i+1, ev.Seq, "journal seq is gapless")
	}
	assert.Equal(t, string(models.EventRequested), string(backfill[0].Type))
	assert.Equal(t, string(models.EventSpecFetched), string(backfill[1].Type))
	assert.Equal(t, string(models.EventAISuccess), string(backfill[2].Type))

	// The next live notification continues where the backfill stopped.
	_, err = env.runs.Transition(ctx, runID, models.RunStatusExecutionInProgress, models.AppendEventRequest{
		Type:    models.EventExecutionStarted,
		Payload: map[string]any{"scenarioCount": 3, "execConcurrency": 2},
	})
	require.NoError(t, err)

	msg := readEvent(t, ch, 5*time.Second)
	assert.Equal(t, float64(4), msg["seq"])
	assert.Equal(t, string(models.EventExecutionStarted), msg["type"])
}
