package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/services"
)

// orphanState is the scan bookkeeping surfaced by pool Health.
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
	orphansRequeued  int
}

// runOrphanDetection repeats the orphan scan on a fixed interval until the
// pool stops. Every pod scans independently; recovery is idempotent, so two
// pods finding the same orphan is harmless.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds claimed runs with stale heartbeats and
// recovers each one according to how far it got.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.runs.FindOrphanedRuns(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered, requeued := 0, 0
	for _, run := range orphans {
		reclaimed, err := recoverOrphanedRun(ctx, p.runs, run)
		if err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		if reclaimed {
			requeued++
		} else {
			recovered++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun resolves one orphan. A run still in REQUESTED was
// claimed but never started: its claim is released and it returns to the
// queue (requeued=true). Runs that progressed past REQUESTED cannot be
// resumed and close with the failure terminal of their stranded stage.
func recoverOrphanedRun(ctx context.Context, runs *services.RunService, run *ent.QARun) (requeued bool, err error) {
	log := slog.With("run_id", run.ID, "old_worker_id", deref(run.WorkerID))

	lastHeartbeat := "unknown"
	if run.HeartbeatAt != nil {
		lastHeartbeat = run.HeartbeatAt.Format(time.RFC3339)
	}
	workerID := deref(run.WorkerID)
	if workerID == "" {
		workerID = "unknown"
	}

	current := models.RunStatus(run.Status)
	if current == models.RunStatusRequested {
		if err := runs.ReleaseClaim(ctx, run.ID); err != nil {
			return false, fmt.Errorf("failed to release claim: %w", err)
		}
		log.Warn("Orphaned run requeued", "last_heartbeat", lastHeartbeat)
		return true, nil
	}

	status, evType := failureTerminalFor(current)
	_, err = runs.Transition(ctx, run.ID, status, models.AppendEventRequest{
		Type:         evType,
		Payload:      map[string]any{"orphaned": true, "workerId": workerID},
		ErrorMessage: fmt.Sprintf("orphaned: no heartbeat from worker %s since %s", workerID, lastHeartbeat),
		ErrorKind:    models.KindPtr(models.ErrKindInternal),
	})
	if err != nil {
		return false, fmt.Errorf("failed to close orphaned run as %s: %w", status, err)
	}

	log.Warn("Orphaned run closed",
		"stranded_in", current,
		"terminal_status", status,
		"last_heartbeat", lastHeartbeat)
	return false, nil
}

// CleanupStartupOrphans performs a one-time recovery of runs owned by this
// pod's workers that were in flight when the pod previously crashed. Run it
// at startup, before the pool begins claiming.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, runs *services.RunService, podID string) error {
	orphans, err := client.QARun.Query().
		Where(
			qarun.StatusIn(nonTerminalStatuses()...),
			qarun.WorkerIDNotNil(),
			qarun.WorkerIDHasPrefix(podID+"-worker-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Recovering runs stranded by a previous instance",
		"pod_id", podID,
		"count", len(orphans))

	for _, run := range orphans {
		requeued, err := recoverOrphanedRun(ctx, runs, run)
		if err != nil {
			slog.Error("Failed to recover startup orphan",
				"run_id", run.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "run_id", run.ID, "requeued", requeued)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
