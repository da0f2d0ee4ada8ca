// Package queue claims requested runs from the database queue and drives
// them through the pipeline, with heartbeats and orphan recovery keeping
// multi-replica deployments honest.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/pkg/models"
)

// Poll outcomes that mean "sleep and try again" rather than failure.
var (
	ErrNoRunsAvailable = errors.New("no runs available")
	ErrAtCapacity      = errors.New("at capacity")
)

// RunExecutor is the interface for run processing.
//
// The executor owns the ENTIRE run lifecycle internally: it drives the
// fetch, generation, execution, and evaluation stages, journals every
// status transition itself, and writes results progressively during
// execution, not at the end. The worker only handles claiming, heartbeat,
// and the terminal safety net.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.QARun) *ExecutionResult
}

// ExecutionResult carries just what the pipeline concluded.
// All intermediate state (scenarios, step results, journal events, the
// coverage snapshot) was already written to the DB by the executor.
type ExecutionResult struct {
	Status models.RunStatus // terminal status the pipeline landed (or tried to)
	Error  error            // error details (if failed/cancelled)
}

// failureTerminalFor maps a stranded non-terminal status to the failure
// terminal its stage owns. Used both by the worker safety net and by
// orphan recovery: a run abandoned mid-stage fails as that stage, while
// late stages (execution already done) close as cancelled so the
// execution record keeps standing.
func failureTerminalFor(current models.RunStatus) (models.RunStatus, models.RunEventType) {
	switch current {
	case models.RunStatusRequested:
		return models.RunStatusFailedSpecFetch, models.EventSpecFetchFailed
	case models.RunStatusSpecFetched:
		return models.RunStatusFailedGeneration, models.EventAIFailed
	case models.RunStatusAISuccess, models.RunStatusExecutionInProgress:
		return models.RunStatusFailedExecution, models.EventFailed
	default:
		return models.RunStatusCancelled, models.EventCancelled
	}
}

// PoolHealth is the pod-level snapshot served by health endpoints.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
	OrphansRequeued  int            `json:"orphans_requeued"`
}

// WorkerHealth is one worker's slice of the pool snapshot.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
