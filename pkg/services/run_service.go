package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/pkg/models"
)

// EventSink receives journal events after their transaction commits.
// Delivery is best-effort; the sink must not block for long.
type EventSink interface {
	PublishRunEvent(ctx context.Context, ev models.RunEvent) error
}

// RunService manages the run lifecycle: creation, the status state machine,
// the append-only event journal, and worker claims.
type RunService struct {
	client *ent.Client
	sink   EventSink
}

// NewRunService creates a new RunService. sink may be nil; events are then
// persisted without NOTIFY broadcast.
func NewRunService(client *ent.Client, sink EventSink) *RunService {
	return &RunService{client: client, sink: sink}
}

// statusOf converts a domain status to the generated enum type.
func statusOf(s models.RunStatus) qarun.Status {
	return qarun.Status(string(s))
}

// eventFromEnt converts a journal row to the domain form used for NOTIFY.
func eventFromEnt(e *ent.RunEvent) models.RunEvent {
	ev := models.RunEvent{
		ID:        e.ID,
		RunID:     e.RunID,
		Seq:       e.Seq,
		Type:      models.RunEventType(e.Type),
		Payload:   e.Payload,
		CreatedAt: e.CreatedAt,
	}
	if e.ScenarioID != nil {
		ev.ScenarioID = *e.ScenarioID
	}
	if e.StepResultID != nil {
		ev.StepResultID = *e.StepResultID
	}
	if e.ErrorMessage != nil {
		ev.ErrorMessage = *e.ErrorMessage
	}
	return ev
}

// publish forwards a committed event to the sink, if one is configured.
// Failures are the sink's problem to report; the pipeline never fails on them.
func (s *RunService) publish(ctx context.Context, events ...*ent.RunEvent) {
	if s.sink == nil {
		return
	}
	for _, e := range events {
		_ = s.sink.PublishRunEvent(ctx, eventFromEnt(e))
	}
}

// CreateRun validates the request and creates a run in REQUESTED status with
// its seq=1 REQUESTED journal event, atomically.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.QARun, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	switch req.SpecSource {
	case models.SpecSourceURL:
		if req.SpecURL == "" {
			return nil, NewValidationError("spec_url", "required when spec_source is url")
		}
		if err := models.ValidateBaseURL(req.SpecURL); err != nil {
			return nil, NewValidationError("spec_url", err.Error())
		}
	case models.SpecSourceInline:
		if req.SpecInline == "" {
			return nil, NewValidationError("spec_inline", "required when spec_source is inline")
		}
	default:
		return nil, NewValidationError("spec_source", fmt.Sprintf("must be url or inline, got %q", req.SpecSource))
	}
	if err := models.ValidateBaseURL(req.BaseURL); err != nil {
		return nil, NewValidationError("base_url", err.Error())
	}

	cfg := req.Config.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, NewValidationError("config", err.Error())
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.New().String()
	}

	// The write must land even if the HTTP caller goes away; detach from
	// httpCtx and bound the transaction ourselves.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	runBuilder := tx.QARun.Create().
		SetID(runID).
		SetName(req.Name).
		SetSpecSource(qarun.SpecSource(string(req.SpecSource))).
		SetBaseURL(req.BaseURL).
		SetConfig(cfg).
		SetStatus(statusOf(models.RunStatusRequested))

	if req.Description != "" {
		runBuilder.SetDescription(req.Description)
	}
	if req.RequirementText != "" {
		runBuilder.SetRequirementText(req.RequirementText)
	}
	if req.SpecURL != "" {
		runBuilder.SetSpecURL(req.SpecURL)
	}
	if req.SpecInline != "" {
		runBuilder.SetSpecInline(req.SpecInline)
	}
	if req.Mode != "" {
		runBuilder.SetMode(qarun.Mode(string(req.Mode)))
	}
	if req.TriggeredBy != "" {
		runBuilder.SetTriggeredBy(req.TriggeredBy)
	}

	run, err := runBuilder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	evt, err := tx.RunEvent.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetSeq(1).
		SetType(runevent.Type(string(models.EventRequested))).
		SetPayload(map[string]interface{}{
			"name":       req.Name,
			"specSource": string(req.SpecSource),
			"baseUrl":    req.BaseURL,
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to journal REQUESTED: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit create: %w", err)
	}

	s.publish(httpCtx, evt)
	return run, nil
}

// GetRun retrieves a run by ID with optional edge loading.
func (s *RunService) GetRun(ctx context.Context, runID string, withEdges bool) (*ent.QARun, error) {
	query := s.client.QARun.Query().Where(qarun.IDEQ(runID))

	if withEdges {
		query = query.
			WithScenarios(func(q *ent.ScenarioQuery) {
				q.Order(ent.Asc(scenario.FieldCreatedAt))
			}).
			WithCoverage().
			WithSummary()
	}

	run, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// RunListResponse is a page of runs.
type RunListResponse struct {
	Runs       []*ent.QARun `json:"runs"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// ListRuns lists runs with filtering and pagination, newest first.
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*RunListResponse, error) {
	query := s.client.QARun.Query()

	if filters.Status != "" {
		query = query.Where(qarun.StatusEQ(statusOf(filters.Status)))
	}
	if filters.Mode != "" {
		query = query.Where(qarun.ModeEQ(qarun.Mode(string(filters.Mode))))
	}
	if filters.TriggeredBy != "" {
		query = query.Where(qarun.TriggeredByEQ(filters.TriggeredBy))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(qarun.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(qarun.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(qarun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &RunListResponse{
		Runs:       runs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SearchRuns performs full-text search on the requirement text.
func (s *RunService) SearchRuns(ctx context.Context, query string, limit int) ([]*ent.QARun, error) {
	if limit <= 0 {
		limit = 20
	}

	runs, err := s.client.QARun.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP(
				"to_tsvector('english', COALESCE(requirement_text, '')) @@ plainto_tsquery($1)",
				query,
			))
		}).
		Limit(limit).
		Order(ent.Desc(qarun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search runs: %w", err)
	}

	return runs, nil
}

// Transition moves a run to the next status and journals the accompanying
// event in the same transaction. The run row is locked for the duration, so
// seq allocation and the status check are atomic. Illegal moves fail with
// ErrInvalidTransition and leave the run untouched.
func (s *RunService) Transition(callerCtx context.Context, runID string, to models.RunStatus, ev models.AppendEventRequest) (*ent.QARun, error) {
	return s.transition(callerCtx, runID, to, ev, nil)
}

// TransitionSpecFetched is Transition into SPEC_FETCHED that also records
// the spec hash on the run, in the same transaction.
func (s *RunService) TransitionSpecFetched(callerCtx context.Context, runID, specHash string, ev models.AppendEventRequest) (*ent.QARun, error) {
	return s.transition(callerCtx, runID, models.RunStatusSpecFetched, ev, func(u *ent.QARunUpdateOne) {
		u.SetSpecHash(specHash)
	})
}

func (s *RunService) transition(callerCtx context.Context, runID string, to models.RunStatus, ev models.AppendEventRequest, mutate func(*ent.QARunUpdateOne)) (*ent.QARun, error) {
	if !to.Valid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", to))
	}

	// Detached write context: transitions must land even when the caller's
	// context is already cancelled (the CANCELLED transition in particular).
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := s.lockRun(ctx, tx, runID)
	if err != nil {
		return nil, err
	}

	from := models.RunStatus(run.Status)
	if !from.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	evt, err := s.appendLocked(ctx, tx, run, ev)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	update := tx.QARun.UpdateOneID(runID).SetStatus(statusOf(to))
	if from == models.RunStatusRequested && run.StartedAt == nil {
		update.SetStartedAt(now)
	}
	if ev.ErrorMessage != "" {
		update.SetErrorMessage(ev.ErrorMessage)
	}
	if ev.ErrorKind != nil {
		update.SetErrorKind(string(*ev.ErrorKind))
	}
	if to.Terminal() {
		update.SetCompletedAt(now)
		update.SetDurationMs(now.Sub(run.CreatedAt).Milliseconds())
	}
	if mutate != nil {
		mutate(update)
	}

	run, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update run status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	s.publish(callerCtx, evt)
	return run, nil
}

// AppendEvent journals an event without changing status. Seq allocation
// takes the same run row lock as transitions. Appends against a terminal
// run fail with ErrRunTerminal: the terminal event is always last, even
// when in-flight workers race a cancellation.
func (s *RunService) AppendEvent(callerCtx context.Context, runID string, ev models.AppendEventRequest) (*ent.RunEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := s.lockRun(ctx, tx, runID)
	if err != nil {
		return nil, err
	}
	if st := models.RunStatus(run.Status); st.Terminal() {
		return nil, fmt.Errorf("%w: %s", ErrRunTerminal, st)
	}

	evt, err := s.appendLocked(ctx, tx, run, ev)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event: %w", err)
	}

	s.publish(callerCtx, evt)
	return evt, nil
}

// lockRun loads the run under FOR UPDATE within tx.
func (s *RunService) lockRun(ctx context.Context, tx *ent.Tx, runID string) (*ent.QARun, error) {
	run, err := tx.QARun.Query().
		Where(qarun.IDEQ(runID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock run: %w", err)
	}
	return run, nil
}

// appendLocked inserts the next journal event for a run whose row is already
// locked in tx. Seq is MAX(seq)+1, gapless under the lock.
func (s *RunService) appendLocked(ctx context.Context, tx *ent.Tx, run *ent.QARun, ev models.AppendEventRequest) (*ent.RunEvent, error) {
	seq := 1
	last, err := tx.RunEvent.Query().
		Where(runevent.RunIDEQ(run.ID)).
		Order(ent.Desc(runevent.FieldSeq)).
		First(ctx)
	if err == nil {
		seq = last.Seq + 1
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read latest seq: %w", err)
	}

	payload := ev.Payload
	if ev.ErrorKind != nil {
		if payload == nil {
			payload = map[string]interface{}{}
		}
		payload["errorKind"] = string(*ev.ErrorKind)
	}

	builder := tx.RunEvent.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetSeq(seq).
		SetType(runevent.Type(string(ev.Type)))
	if payload != nil {
		builder.SetPayload(payload)
	}
	if ev.ScenarioID != "" {
		builder.SetScenarioID(ev.ScenarioID)
	}
	if ev.StepResultID != "" {
		builder.SetStepResultID(ev.StepResultID)
	}
	if ev.ErrorMessage != "" {
		builder.SetErrorMessage(ev.ErrorMessage)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to journal %s: %w", ev.Type, err)
	}
	return evt, nil
}

// ListEvents returns a run's journal in seq order, optionally starting after
// sinceSeq. limit <= 0 means no limit.
func (s *RunService) ListEvents(ctx context.Context, runID string, sinceSeq, limit int) ([]*ent.RunEvent, error) {
	query := s.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID), runevent.SeqGT(sinceSeq)).
		Order(ent.Asc(runevent.FieldSeq))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// CancelRun cancels a run from any non-terminal status. Cancelling an
// already-terminal run is a no-op returning the run as-is.
func (s *RunService) CancelRun(ctx context.Context, runID, reason string) (*ent.QARun, error) {
	run, err := s.GetRun(ctx, runID, false)
	if err != nil {
		return nil, err
	}
	if models.RunStatus(run.Status).Terminal() {
		return run, nil
	}

	return s.Transition(ctx, runID, models.RunStatusCancelled, models.AppendEventRequest{
		Type:         models.EventCancelled,
		Payload:      map[string]interface{}{"reason": reason},
		ErrorMessage: reason,
		ErrorKind:    models.KindPtr(models.ErrKindCancelled),
	})
}

// ClaimNextRequestedRun atomically claims the oldest unclaimed REQUESTED run
// for a worker. FOR UPDATE SKIP LOCKED lets concurrent replicas claim
// different runs without blocking each other. Returns (nil, nil) when the
// queue is empty. The status stays REQUESTED; the pipeline owns transitions.
func (s *RunService) ClaimNextRequestedRun(ctx context.Context, workerID string) (*ent.QARun, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := tx.QARun.Query().
		Where(
			qarun.StatusEQ(statusOf(models.RunStatusRequested)),
			qarun.WorkerIDIsNil(),
		).
		Order(ent.Asc(qarun.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Nothing to claim
		}
		return nil, fmt.Errorf("failed to query claimable run: %w", err)
	}

	now := time.Now()
	run, err = tx.QARun.UpdateOneID(run.ID).
		SetWorkerID(workerID).
		SetClaimedAt(now).
		SetHeartbeatAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run claim: %w", err)
	}

	return run, nil
}

// Heartbeat refreshes the claim liveness marker. ErrNotFound means the run
// no longer belongs to this worker.
func (s *RunService) Heartbeat(ctx context.Context, runID, workerID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.QARun.Update().
		Where(
			qarun.IDEQ(runID),
			qarun.WorkerIDEQ(workerID),
		).
		SetHeartbeatAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// ReleaseClaim clears the worker fields so a run can be claimed again.
// Used by orphan recovery to requeue runs that never started processing.
func (s *RunService) ReleaseClaim(ctx context.Context, runID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.QARun.UpdateOneID(runID).
		ClearWorkerID().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to release claim: %w", err)
	}
	return nil
}

// FindOrphanedRuns finds claimed, non-terminal runs whose heartbeat is older
// than staleAfter. Their worker is presumed dead.
func (s *RunService) FindOrphanedRuns(ctx context.Context, staleAfter time.Duration) ([]*ent.QARun, error) {
	threshold := time.Now().Add(-staleAfter)

	var nonTerminal []qarun.Status
	for _, st := range models.AllRunStatuses {
		if !st.Terminal() {
			nonTerminal = append(nonTerminal, statusOf(st))
		}
	}

	runs, err := s.client.QARun.Query().
		Where(
			qarun.StatusIn(nonTerminal...),
			qarun.WorkerIDNotNil(),
			qarun.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned runs: %w", err)
	}

	return runs, nil
}

// PurgeOldRuns hard-deletes terminal runs older than the retention period.
// Scenarios, step results, journal events, payloads, and reports go with
// them via ON DELETE CASCADE.
func (s *RunService) PurgeOldRuns(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention days must be positive, have %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	var terminal []qarun.Status
	for _, st := range models.AllRunStatuses {
		if st.Terminal() {
			terminal = append(terminal, statusOf(st))
		}
	}

	// Bounded delete on its own deadline, detached from the caller.
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.QARun.Delete().
		Where(
			qarun.StatusIn(terminal...),
			qarun.CompletedAtLT(cutoff),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old runs: %w", err)
	}

	return count, nil
}
