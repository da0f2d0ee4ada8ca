package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/services"
)

// WorkerStatus is what a worker is doing right now.
type WorkerStatus string

// WorkerStatus values.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker claims queued runs one at a time and drives each to a terminal
// status.
type Worker struct {
	id          string
	podID       string
	client      *ent.Client
	runs        *services.RunService
	config      *config.QueueConfig
	runExecutor RunExecutor
	pool        RunRegistry
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Observed by Health; guarded by mu.
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is what a worker needs from the pool to make an executing
// run's cancel function reachable by CancelRun.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker constructs a worker. It stays idle until Start.
func NewWorker(id, podID string, client *ent.Client, runService *services.RunService, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		runs:         runService,
		config:       cfg,
		runExecutor:  executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start launches the claim loop in its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop asks the loop to exit and blocks until it has. Safe to call more
// than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health reports what the worker is doing and how much it has processed.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run claims and processes runs until stopped.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker running")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker stopping")
			return
		case <-ctx.Done():
			log.Info("Worker context cancelled, exiting")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Run processing failed", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep blocks for d, cut short by Stop.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess makes one pass: capacity gate, claim, execute, finalize.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Global capacity gate. The count is racy across workers, but the
	//    worst overshoot is WorkerCount and jittered polling thins it out.
	activeCount, err := w.client.QARun.Query().
		Where(
			qarun.StatusIn(nonTerminalStatuses()...),
			qarun.WorkerIDNotNil(),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next requested run (FOR UPDATE SKIP LOCKED, FIFO). The claim
	//    records ownership only; the pipeline owns every status change.
	run, err := w.runs.ClaimNextRequestedRun(ctx, w.id)
	if err != nil {
		return fmt.Errorf("claiming run: %w", err)
	}
	if run == nil {
		return ErrNoRunsAvailable
	}

	log := slog.With("run_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Bound the whole run by the queue's run timeout.
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// 4. Expose the cancel function so CancelRun can reach this run.
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	// 5. Heartbeat, so the orphan scan can tell a live claim from a dead pod.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, run.ID)

	// 6. Hand the run to the pipeline.
	result := w.runExecutor.Execute(runCtx, run)

	// 6a. Executors must not return nil; recover with a status inferred
	//     from the context state if one does.
	if result == nil {
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: models.RunStatusCancelled,
				Error:  fmt.Errorf("run timed out after %v", w.config.RunTimeout),
			}
		case errors.Is(runCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: models.RunStatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: models.RunStatusFailedExecution,
				Error:  fmt.Errorf("nil result from executor"),
			}
		}
	}

	// 7. Cut the heartbeat before finalizing.
	cancelHeartbeat()

	// 8. Safety net: the pipeline journals its own terminal transitions, so
	//    this writes only when the executor bailed without landing one.
	//    Background context because the run context may already be dead.
	if err := w.ensureTerminal(context.Background(), run.ID, result); err != nil {
		log.Error("Failed to ensure terminal run status", "error", err)
		return err
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run finished", "status", result.Status)
	return nil
}

// runHeartbeat periodically refreshes heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.runs.Heartbeat(ctx, runID, w.id); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "worker_id", w.id, "error", err)
			}
		}
	}
}

// ensureTerminal verifies the run reached a terminal status and forces one
// when it did not. A cancelled result closes as CANCELLED from any state;
// anything else fails as the stage the run was stranded in.
func (w *Worker) ensureTerminal(ctx context.Context, runID string, result *ExecutionResult) error {
	run, err := w.runs.GetRun(ctx, runID, false)
	if err != nil {
		return fmt.Errorf("loading run after execution: %w", err)
	}
	current := models.RunStatus(run.Status)
	if current.Terminal() {
		return nil
	}

	status := models.RunStatusCancelled
	evType := models.EventCancelled
	if result.Status != models.RunStatusCancelled {
		status, evType = failureTerminalFor(current)
	}

	slog.Warn("Worker: forcing terminal run status",
		"run_id", runID,
		"from", current,
		"to", status)

	msg := "worker forced terminal state: executor finished without one"
	if result.Error != nil {
		msg = result.Error.Error()
	}
	_, err = w.runs.Transition(ctx, runID, status, models.AppendEventRequest{
		Type:         evType,
		ErrorMessage: msg,
		ErrorKind:    models.KindPtr(models.ErrKindInternal),
	})
	if errors.Is(err, services.ErrInvalidTransition) {
		// A terminal state landed between the check and the write.
		return nil
	}
	return err
}

// pollInterval is the configured poll base spread uniformly over plus or
// minus the jitter, so workers on one pod do not query in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus records the state change for Health readers.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
