package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/payload"
)

// ReplayOptions tune a replay. The zero value replays against the source
// run's base URL.
type ReplayOptions struct {
	// BaseURL overrides the target system; empty keeps the source run's.
	BaseURL string
	// TriggeredBy labels who or what requested the replay.
	TriggeredBy string
}

// ReplayService creates new runs that re-execute a prior run's stored
// payload. The AI stage is skipped entirely; the replayed run executes
// step-for-step copies of the scenarios the source run executed.
type ReplayService struct {
	client   *ent.Client
	payloads *PayloadService
	sink     EventSink
}

// NewReplayService creates a new ReplayService.
func NewReplayService(client *ent.Client, payloads *PayloadService, sink EventSink) *ReplayService {
	return &ReplayService{client: client, payloads: payloads, sink: sink}
}

// ReplayRun creates a REQUESTED run carrying a copy of the source run's
// payload. The new run, its seq=1 REQUESTED event, and the payload row are
// written in one transaction; a replayed run therefore never exists without
// its payload, which is how the pipeline recognizes it.
func (s *ReplayService) ReplayRun(httpCtx context.Context, sourceRunID string, opts ReplayOptions) (*ent.QARun, error) {
	source, err := s.client.QARun.Get(httpCtx, sourceRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load source run: %w", err)
	}

	// GetPayload verifies the stored content hash; a corrupted payload is
	// not replayable.
	doc, err := s.payloads.GetPayload(httpCtx, sourceRunID)
	if err != nil {
		return nil, err
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = source.BaseURL
	}
	if err := models.ValidateBaseURL(baseURL); err != nil {
		return nil, NewValidationError("base_url", err.Error())
	}

	runID := uuid.New().String()

	// Step content and order are copied verbatim from the source payload.
	// Scenario rows belong to exactly one run, so each copy gets a fresh
	// id; the replay run's own payload is the one its execution is checked
	// against.
	replayDoc := &payload.Document{
		RunID:       runID,
		SpecHash:    doc.SpecHash,
		Scenarios:   make([]models.Scenario, len(doc.Scenarios)),
		Environment: doc.Environment,
		Config:      doc.Config,
	}
	for i, sc := range doc.Scenarios {
		sc.ID = uuid.New().String()
		sc.RunID = runID
		sc.Source = models.ScenarioSourceReplayed
		replayDoc.Scenarios[i] = sc
	}

	body, contentHash, err := payload.Encode(replayDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode replay payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	runBuilder := tx.QARun.Create().
		SetID(runID).
		SetName(source.Name + " (replay)").
		SetSpecSource(source.SpecSource).
		SetBaseURL(baseURL).
		SetMode(source.Mode).
		SetConfig(doc.Config).
		SetStatus(statusOf(models.RunStatusRequested)).
		SetReplayOf(sourceRunID)

	if doc.SpecHash != "" {
		runBuilder.SetSpecHash(doc.SpecHash)
	}
	if source.Description != nil {
		runBuilder.SetDescription(*source.Description)
	}
	if source.RequirementText != nil {
		runBuilder.SetRequirementText(*source.RequirementText)
	}
	if source.SpecURL != nil {
		runBuilder.SetSpecURL(*source.SpecURL)
	}
	if source.SpecInline != nil {
		runBuilder.SetSpecInline(*source.SpecInline)
	}
	if opts.TriggeredBy != "" {
		runBuilder.SetTriggeredBy(opts.TriggeredBy)
	}

	run, err := runBuilder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create replay run: %w", err)
	}

	evt, err := tx.RunEvent.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetSeq(1).
		SetType(runevent.Type(string(models.EventRequested))).
		SetPayload(map[string]interface{}{
			"replayOf":      sourceRunID,
			"baseUrl":       baseURL,
			"scenarioCount": len(replayDoc.Scenarios),
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to journal REQUESTED: %w", err)
	}

	_, err = tx.RunPayload.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetBody(body).
		SetSizeBytes(len(body)).
		SetContentHash(contentHash).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save replay payload: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit replay: %w", err)
	}

	if s.sink != nil {
		_ = s.sink.PublishRunEvent(httpCtx, eventFromEnt(evt))
	}
	return run, nil
}

// ListReplays returns the runs that replayed a given source run.
func (s *ReplayService) ListReplays(ctx context.Context, sourceRunID string) ([]*ent.QARun, error) {
	runs, err := s.client.QARun.Query().
		Where(qarun.ReplayOfEQ(sourceRunID)).
		Order(ent.Asc(qarun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list replays: %w", err)
	}
	return runs, nil
}
