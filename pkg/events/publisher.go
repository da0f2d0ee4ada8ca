package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/qawave/qawave/pkg/models"
)

// maxNotifyBytes is the payload ceiling for pg_notify. PostgreSQL rejects
// payloads over 8000 bytes; the margin absorbs encoding differences
// between the Go string length and the server's byte accounting.
const maxNotifyBytes = 7900

// EventPublisher broadcasts committed journal events via PostgreSQL
// NOTIFY. It implements services.EventSink: the journal row is already
// committed when PublishRunEvent is called, so the publisher never
// persists anything; it only notifies. A failed NOTIFY is logged and
// reported, never retried; consumers recover from the journal.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher wraps the pool that pg_notify statements run on,
// normally database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// lifecycleEvents are the journal event types that accompany a run status
// transition. Only these are mirrored to the global runs channel. Some
// types are reused for scenario-scoped appends (EXECUTION_STARTED fires
// once per run and once per scenario), so routing also requires the event
// to carry no scenario or step scope; see isLifecycle.
var lifecycleEvents = map[models.RunEventType]struct{}{
	models.EventRequested:        {},
	models.EventSpecFetched:      {},
	models.EventSpecFetchFailed:  {},
	models.EventScenarioCreated:  {}, // replayed runs transition on a scenario event
	models.EventAISuccess:        {},
	models.EventAIFailed:         {},
	models.EventExecutionStarted: {},
	models.EventExecutionSuccess: {},
	models.EventQAEvalStarted:    {},
	models.EventQAEvalDone:       {},
	models.EventComplete:         {},
	models.EventFailed:           {},
	models.EventCancelled:        {},
}

// PublishRunEvent broadcasts one committed journal event to the run's
// channel and, for lifecycle transitions, to the global runs channel.
// Both publishes are best-effort: each failure is logged, all channels
// are attempted, and the first error is returned.
func (p *EventPublisher) PublishRunEvent(ctx context.Context, ev models.RunEvent) error {
	payloadJSON, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal run event: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(ev, payloadJSON)
	if err != nil {
		return err
	}

	var firstErr error
	if err := p.notify(ctx, RunChannel(ev.RunID), notifyPayload); err != nil {
		slog.Warn("Failed to publish run event to run channel",
			"run_id", ev.RunID, "seq", ev.Seq, "type", ev.Type, "error", err)
		firstErr = err
	}

	if isLifecycle(ev) {
		if err := p.notify(ctx, RunsChannel, notifyPayload); err != nil {
			slog.Warn("Failed to publish run event to global channel",
				"run_id", ev.RunID, "seq", ev.Seq, "type", ev.Type, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// isLifecycle reports whether the event marks a run status transition.
// Scenario- and step-scoped appends stay on the per-run channel.
func isLifecycle(ev models.RunEvent) bool {
	if ev.ScenarioID != "" || ev.StepResultID != "" {
		return false
	}
	_, ok := lifecycleEvents[ev.Type]
	return ok
}

// notify broadcasts a pre-marshaled payload via pg_notify. No transaction
// is needed: the journal row this payload mirrors is already committed.
func (p *EventPublisher) notify(ctx context.Context, channel, payload string) error {
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, payload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload as-is when it fits within
// PostgreSQL's NOTIFY limit, otherwise a minimal envelope with the
// journal coordinates the consumer needs to re-read the full record.
func truncateIfNeeded(ev models.RunEvent, payloadJSON []byte) (string, error) {
	if len(payloadJSON) <= maxNotifyBytes {
		return string(payloadJSON), nil
	}
	return buildTruncatedPayload(ev)
}

// buildTruncatedPayload creates the truncation envelope. run_id and seq
// identify the journal row; type lets consumers filter without a refetch.
func buildTruncatedPayload(ev models.RunEvent) (string, error) {
	truncated := map[string]any{
		"run_id":    ev.RunID,
		"seq":       ev.Seq,
		"type":      ev.Type,
		"truncated": true,
	}
	b, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload after truncation: %w", err)
	}
	return string(b), nil
}
