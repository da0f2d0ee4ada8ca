// Package e2e provides end-to-end test infrastructure for the qawave
// pipeline: a full in-process instance (database, event plumbing, worker
// pool, pipeline executor) driven by a scripted AI provider against a
// local stub of the system under test.
package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/database"
	"github.com/qawave/qawave/pkg/events"
	"github.com/qawave/qawave/pkg/openapi"
	"github.com/qawave/qawave/pkg/pipeline"
	"github.com/qawave/qawave/pkg/queue"
	"github.com/qawave/qawave/pkg/services"
	testdb "github.com/qawave/qawave/test/database"
	"github.com/qawave/qawave/test/util"
)

// TestApp boots a complete qawave instance for e2e testing. Runs are
// created through the run service; the worker pool claims and executes
// them exactly as the daemon would.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Scripted provider standing in for the real AI backend.
	AIClient *ScriptedAIClient

	// Live plumbing, wired exactly as in the daemon.
	EventPublisher *events.EventPublisher
	Broker         *events.Broker
	NotifyListener *events.NotifyListener
	WorkerPool     *queue.WorkerPool

	// Domain services
	Runs      *services.RunService
	Results   *services.ResultService
	Scenarios *services.ScenarioService
	Payloads  *services.PayloadService
	Reports   *services.ReportService
	Replays   *services.ReplayService

	t *testing.T
}

// testAppConfig collects option values before construction.
type testAppConfig struct {
	cfg               *config.Config
	aiClient          *ScriptedAIClient
	workerCount       int
	maxConcurrentRuns int
	runTimeout        time.Duration
	dbClient          *database.Client // injected DB client (for multi-replica tests)
	podID             string           // custom pod ID (for multi-replica tests)
}

// TestAppOption customizes NewTestApp.
type TestAppOption func(*testAppConfig)

// WithConfig replaces the default daemon configuration.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithAIClient sets a pre-scripted AI client.
func WithAIClient(client *ScriptedAIClient) TestAppOption {
	return func(c *testAppConfig) { c.aiClient = client }
}

// WithWorkerCount sizes the claim worker pool.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithMaxConcurrentRuns sets the global concurrent run limit.
func WithMaxConcurrentRuns(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxConcurrentRuns = n }
}

// WithRunTimeout sets the whole-run deadline enforced by the worker.
func WithRunTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.runTimeout = d }
}

// WithDBClient reuses an existing database client instead of creating a
// per-test schema. Multi-replica tests point several TestApp instances at
// one schema this way.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID fixes the replica identity. Multi-replica tests need distinct
// pod IDs so claiming and orphan recovery can tell the replicas apart.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp boots the full stack and schedules teardown on t.Cleanup.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount: 1,
		runTimeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.maxConcurrentRuns == 0 {
		tc.maxConcurrentRuns = tc.workerCount
	}

	if tc.cfg == nil {
		tc.cfg = config.Default()
	}

	// Queue tuning suited to tests: fast polls, short deadlines.
	if tc.cfg.Queue == nil {
		tc.cfg.Queue = config.DefaultQueueConfig()
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	tc.cfg.Queue.MaxConcurrentRuns = tc.maxConcurrentRuns
	tc.cfg.Queue.PollInterval = 100 * time.Millisecond
	tc.cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	tc.cfg.Queue.RunTimeout = tc.runTimeout
	tc.cfg.Queue.HeartbeatInterval = 5 * time.Second
	tc.cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	tc.cfg.Queue.OrphanDetectionInterval = 1 * time.Minute
	tc.cfg.Queue.OrphanThreshold = 1 * time.Minute

	// Default AI client if not provided.
	if tc.aiClient == nil {
		tc.aiClient = NewScriptedAIClient()
	}

	// 1. Database: the wrapped client plus the raw ent client.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Journal writes go through the real publisher against the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())

	// 3. Live event fan-out: broker plus a dedicated LISTEN connection.
	broker := events.NewBroker()
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), broker)
	ctx := context.Background()
	require.NoError(t, notifyListener.Start(ctx))
	broker.SetListener(notifyListener)

	// 4. Domain services.
	runService := services.NewRunService(entClient, eventPublisher)
	resultService := services.NewResultService(entClient)
	scenarioService := services.NewScenarioService(entClient)
	payloadService := services.NewPayloadService(entClient)
	reportService := services.NewReportService(entClient)
	replayService := services.NewReplayService(entClient, payloadService, eventPublisher)

	// 5. Pipeline executor with the scripted provider. Inline specs never
	// touch the network; URL specs resolve against test-local servers.
	fetcher := openapi.NewFetcher()
	executor := pipeline.NewExecutor(tc.cfg, entClient, runService, fetcher, tc.aiClient)

	// 6. Worker pool.
	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-test-%s", t.Name())
	}
	workerPool := queue.NewWorkerPool(podID, entClient, runService, tc.cfg.Queue, executor)
	require.NoError(t, workerPool.Start(ctx))

	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		AIClient:       tc.aiClient,
		EventPublisher: eventPublisher,
		Broker:         broker,
		NotifyListener: notifyListener,
		WorkerPool:     workerPool,
		Runs:           runService,
		Results:        resultService,
		Scenarios:      scenarioService,
		Payloads:       payloadService,
		Reports:        reportService,
		Replays:        replayService,
		t:              t,
	}

	// Tear down in reverse creation order; the schema drop itself is
	// registered by the database helper.
	t.Cleanup(func() {
		workerPool.Stop()
		notifyListener.Stop(context.Background())
	})

	return app
}
