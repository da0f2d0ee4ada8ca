package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/stepresult"
	"github.com/qawave/qawave/pkg/models"
)

// ResultService persists per-step execution outcomes.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a new ResultService.
func NewResultService(client *ent.Client) *ResultService {
	return &ResultService{client: client}
}

// RecordStepResult persists one step outcome. The caller is expected to have
// truncated ActualBody already; BodyDigest always covers the full body.
func (s *ResultService) RecordStepResult(httpCtx context.Context, r models.StepResult) (*ent.StepResult, error) {
	if r.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if r.ScenarioID == "" {
		return nil, NewValidationError("scenario_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := r.ID
	if id == "" {
		id = uuid.New().String()
	}
	startedAt := r.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	finishedAt := r.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = startedAt
	}

	builder := s.client.StepResult.Create().
		SetID(id).
		SetRunID(r.RunID).
		SetScenarioID(r.ScenarioID).
		SetStepIndex(r.StepIndex).
		SetStatus(stepresult.Status(string(r.Status))).
		SetAttempts(r.Attempts).
		SetDurationMs(r.DurationMs).
		SetStartedAt(startedAt).
		SetFinishedAt(finishedAt)

	if r.Name != "" {
		builder.SetName(r.Name)
	}
	if r.Method != "" {
		builder.SetMethod(string(r.Method))
	}
	if r.Endpoint != "" {
		builder.SetEndpoint(r.Endpoint)
	}
	if r.ActualStatusCode != 0 {
		builder.SetActualStatusCode(r.ActualStatusCode)
	}
	if len(r.ActualHeaders) > 0 {
		builder.SetActualHeaders(r.ActualHeaders)
	}
	if r.ActualBody != "" {
		builder.SetActualBody(r.ActualBody)
	}
	if r.BodyDigest != "" {
		builder.SetBodyDigest(r.BodyDigest)
	}
	if len(r.AssertionResults) > 0 {
		builder.SetAssertionResults(r.AssertionResults)
	}
	if len(r.Extracted) > 0 {
		builder.SetExtracted(r.Extracted)
	}
	if len(r.Unresolved) > 0 {
		builder.SetUnresolved(r.Unresolved)
	}
	if r.FailureReason != "" {
		builder.SetFailureReason(r.FailureReason)
	}
	if r.ErrorKind != nil {
		builder.SetErrorKind(string(*r.ErrorKind))
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record step result: %w", err)
	}
	return row, nil
}

// ListStepResults returns all step results of a run, grouped by scenario and
// ordered by step index within each.
func (s *ResultService) ListStepResults(ctx context.Context, runID string) ([]*ent.StepResult, error) {
	rows, err := s.client.StepResult.Query().
		Where(stepresult.RunIDEQ(runID)).
		Order(
			ent.Asc(stepresult.FieldScenarioID),
			ent.Asc(stepresult.FieldStepIndex),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step results: %w", err)
	}
	return rows, nil
}

// ListScenarioStepResults returns one scenario's step results for a run in
// step-index order.
func (s *ResultService) ListScenarioStepResults(ctx context.Context, runID, scenarioID string) ([]*ent.StepResult, error) {
	rows, err := s.client.StepResult.Query().
		Where(
			stepresult.RunIDEQ(runID),
			stepresult.ScenarioIDEQ(scenarioID),
		).
		Order(ent.Asc(stepresult.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario step results: %w", err)
	}
	return rows, nil
}

// ScrubOldBodies clears stored response body excerpts on step results older
// than the retention window. The digest and assertion record stay; only the
// raw excerpt goes. Already-scrubbed rows are skipped, so repeated passes
// are cheap.
func (s *ResultService) ScrubOldBodies(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("body retention must be positive, got %v", olderThan)
	}

	cutoff := time.Now().Add(-olderThan)

	scrubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.StepResult.Update().
		Where(
			stepresult.FinishedAtLT(cutoff),
			stepresult.ActualBodyNEQ(""),
		).
		ClearActualBody().
		Save(scrubCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to scrub step result bodies: %w", err)
	}

	return count, nil
}

// StepResultFromEnt converts a row back to the domain form.
func StepResultFromEnt(e *ent.StepResult) models.StepResult {
	r := models.StepResult{
		ID:               e.ID,
		RunID:            e.RunID,
		ScenarioID:       e.ScenarioID,
		StepIndex:        e.StepIndex,
		Name:             e.Name,
		Method:           models.HTTPMethod(e.Method),
		Endpoint:         e.Endpoint,
		Status:           models.StepStatus(e.Status),
		Attempts:         e.Attempts,
		ActualHeaders:    e.ActualHeaders,
		ActualBody:       e.ActualBody,
		BodyDigest:       e.BodyDigest,
		AssertionResults: e.AssertionResults,
		Extracted:        e.Extracted,
		Unresolved:       e.Unresolved,
		DurationMs:       e.DurationMs,
		StartedAt:        e.StartedAt,
		FinishedAt:       e.FinishedAt,
	}
	if e.ActualStatusCode != nil {
		r.ActualStatusCode = *e.ActualStatusCode
	}
	if e.FailureReason != nil {
		r.FailureReason = *e.FailureReason
	}
	if e.ErrorKind != nil {
		kind := models.ErrorKind(*e.ErrorKind)
		r.ErrorKind = &kind
	}
	return r
}
