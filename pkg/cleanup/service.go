// Package cleanup enforces the retention policy over finished run data.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/services"
)

// Service is the retention loop. On each tick it hard-deletes terminal
// runs past their retention window (journal, results, and reports cascade
// with them) and scrubs stored response body excerpts past their TTL while
// keeping the digest and assertion record. Both passes are idempotent, so
// several pods running the loop at once do no harm.
type Service struct {
	config        *config.RetentionConfig
	runService    *services.RunService
	resultService *services.ResultService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService wires the loop; nothing runs until Start.
func NewService(
	cfg *config.RetentionConfig,
	runService *services.RunService,
	resultService *services.ResultService,
) *Service {
	return &Service{
		config:        cfg,
		runService:    runService,
		resultService: resultService,
	}
}

// Start launches the loop; a second Start on a running service is a no-op.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention loop running",
		"run_retention_days", s.config.RunRetentionDays,
		"body_retention", s.config.BodyRetention,
		"interval", s.config.CleanupInterval)
}

// Stop cancels the loop and waits for the current pass to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention loop stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOldRuns(ctx)
	s.scrubOldBodies(ctx)
}

func (s *Service) purgeOldRuns(_ context.Context) {
	count, err := s.runService.PurgeOldRuns(context.Background(), s.config.RunRetentionDays)
	if err != nil {
		slog.Error("Retention: purge runs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old runs", "count", count)
	}
}

func (s *Service) scrubOldBodies(_ context.Context) {
	count, err := s.resultService.ScrubOldBodies(context.Background(), s.config.BodyRetention)
	if err != nil {
		slog.Error("Retention: body scrub failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: scrubbed stored bodies", "count", count)
	}
}
