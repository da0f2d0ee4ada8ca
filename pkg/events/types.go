// Package events mirrors the run journal onto PostgreSQL NOTIFY channels
// and fans the notifications out to in-process subscribers.
//
// ════════════════════════════════════════════════════════════════
// Delivery contract
// ════════════════════════════════════════════════════════════════
//
// The journal (run_events) is the source of truth. RunService persists
// every event in the same transaction as its status change; only after
// that commit does the publisher broadcast the event via pg_notify. The
// stream is therefore best-effort by construction: a dropped notification
// never loses data, because consumers re-read the journal by
// (run_id, seq) to recover.
//
// Channels:
//
//	runs          - run lifecycle transitions only (listings, monitors)
//	run:{run_id}  - every journal event for that run
//
// Notification payloads are the models.RunEvent JSON. PostgreSQL caps
// NOTIFY payloads at 8000 bytes; an event that would exceed the limit is
// replaced by a truncation envelope carrying only its journal coordinates:
//
//	{"run_id": "...", "seq": 17, "type": "SCENARIO_CREATED", "truncated": true}
//
// A consumer that sees truncated:true fetches the full record with
// RunService.ListEvents(runID, seq-1, 1). Because seq is gapless per run,
// the same call also recovers any notifications a consumer missed: watch
// for seq jumps and backfill from the journal.
package events

// RunsChannel is the channel for run lifecycle transitions. Run listings
// and monitors subscribe here instead of tracking per-run channels.
const RunsChannel = "runs"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}
