package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/services"
)

// WorkerPool runs the claim workers of one pod plus the background orphan
// scan, and keeps the cancel registry that lets CancelRun reach a run
// executing on this pod.
type WorkerPool struct {
	podID       string
	client      *ent.Client
	runs        *services.RunService
	config      *config.QueueConfig
	runExecutor RunExecutor
	workers     []*Worker
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// activeRuns maps run_id to the cancel function of its execution
	// context while the run is processing on this pod.
	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
	started    bool

	orphans orphanState
}

// NewWorkerPool wires a pool; no goroutines run until Start.
func NewWorkerPool(podID string, client *ent.Client, runService *services.RunService, cfg *config.QueueConfig, executor RunExecutor) *WorkerPool {
	return &WorkerPool{
		podID:       podID,
		client:      client,
		runs:        runService,
		config:      cfg,
		runExecutor: executor,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		stopCh:      make(chan struct{}),
		activeRuns:  make(map[string]context.CancelFunc),
	}
}

// Start launches the claim workers and the periodic orphan scan.
// Calling Start on a running pool is a logged no-op.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool Start called twice", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Worker pool starting", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.runs, p.config, p.runExecutor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool running")
	return nil
}

// Stop drains the pool: workers stop claiming, finish the runs they hold,
// and the orphan scan exits. Blocks until everything has wound down.
func (p *WorkerPool) Stop() {
	slog.Info("Worker pool stopping")

	if active := p.getActiveRunIDs(); len(active) > 0 {
		slog.Info("Worker pool draining active runs",
			"count", len(active),
			"run_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped")
}

// RegisterRun stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterRun(runID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRuns[runID] = cancel
}

// UnregisterRun removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterRun(runID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, runID)
}

// CancelRun triggers context cancellation for a run on this pod.
// Returns true if the run was found and cancelled on this pod.
func (p *WorkerPool) CancelRun(runID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeRuns[runID]; ok {
		cancel()
		return true
	}
	return false
}

// Health snapshots the pool: queue depth, per-worker state, orphan-scan
// counters, and whether the database answered the health queries.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.QARun.Query().
		Where(
			qarun.StatusEQ(qarun.StatusRequested),
			qarun.WorkerIDIsNil(),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Health check queue depth query failed",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeRuns, errA := p.client.QARun.Query().
		Where(
			qarun.StatusIn(nonTerminalStatuses()...),
			qarun.WorkerIDNotNil(),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Health check active runs query failed",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// An unreachable database makes the pod unhealthy even if workers are idle.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeRuns <= p.config.MaxConcurrentRuns && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	orphansRequeued := p.orphans.orphansRequeued
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queued runs query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active runs query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveRuns:       activeRuns,
		MaxConcurrent:    p.config.MaxConcurrentRuns,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
		OrphansRequeued:  orphansRequeued,
	}
}

// getActiveRunIDs returns IDs of currently processing runs (for logging).
func (p *WorkerPool) getActiveRunIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	runs := make([]string, 0, len(p.activeRuns))
	for id := range p.activeRuns {
		runs = append(runs, id)
	}
	return runs
}

// nonTerminalStatuses lists every status an in-flight run can hold.
func nonTerminalStatuses() []qarun.Status {
	statuses := make([]qarun.Status, 0, len(models.AllRunStatuses))
	for _, st := range models.AllRunStatuses {
		if !st.Terminal() {
			statuses = append(statuses, qarun.Status(st))
		}
	}
	return statuses
}
