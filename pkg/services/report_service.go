package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
	"github.com/qawave/qawave/pkg/models"
)

// ReportService persists the QA evaluation artifacts: the coverage snapshot
// and the verdict summary, one of each per run.
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService.
func NewReportService(client *ent.Client) *ReportService {
	return &ReportService{client: client}
}

// SaveCoverage persists a run's coverage snapshot.
func (s *ReportService) SaveCoverage(httpCtx context.Context, snap *models.CoverageSnapshot) (*ent.CoverageSnapshot, error) {
	if snap == nil || snap.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	computedAt := snap.ComputedAt
	if computedAt.IsZero() {
		computedAt = time.Now()
	}

	builder := s.client.CoverageSnapshot.Create().
		SetID(uuid.New().String()).
		SetRunID(snap.RunID).
		SetOpsTotal(snap.OpsTotal).
		SetOpsCovered(snap.OpsCovered).
		SetOpsFailed(snap.OpsFailed).
		SetScenariosPassed(snap.ScenariosPassed).
		SetScenariosFailed(snap.ScenariosFailed).
		SetComputedAt(computedAt)

	if len(snap.UncoveredOps) > 0 {
		builder.SetUncoveredOps(snap.UncoveredOps)
	}
	if len(snap.PerOpStatus) > 0 {
		builder.SetPerOpStatus(snap.PerOpStatus)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save coverage: %w", err)
	}
	return row, nil
}

// SaveSummary persists a run's verdict summary.
func (s *ReportService) SaveSummary(httpCtx context.Context, sum *models.QASummary) (*ent.QASummary, error) {
	if sum == nil || sum.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.QASummary.Create().
		SetID(uuid.New().String()).
		SetRunID(sum.RunID).
		SetOverallVerdict(qasummary.OverallVerdict(string(sum.OverallVerdict))).
		SetPassedScenarios(sum.PassedScenarios).
		SetFailedScenarios(sum.FailedScenarios).
		SetErroredScenarios(sum.ErroredScenarios).
		SetNarrativeSummary(sum.NarrativeSummary).
		SetNarrativeSource(qasummary.NarrativeSource(string(sum.NarrativeSource))).
		SetQualityScore(sum.QualityScore)

	if len(sum.Recommendations) > 0 {
		builder.SetRecommendations(sum.Recommendations)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}
	return row, nil
}

// GetCoverage retrieves a run's coverage snapshot.
func (s *ReportService) GetCoverage(ctx context.Context, runID string) (*ent.CoverageSnapshot, error) {
	row, err := s.client.CoverageSnapshot.Query().
		Where(coveragesnapshot.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get coverage: %w", err)
	}
	return row, nil
}

// GetSummary retrieves a run's verdict summary.
func (s *ReportService) GetSummary(ctx context.Context, runID string) (*ent.QASummary, error) {
	row, err := s.client.QASummary.Query().
		Where(qasummary.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return row, nil
}

// RunReport bundles everything a report consumer needs about a finished run.
type RunReport struct {
	Run      *ent.QARun            `json:"run"`
	Coverage *ent.CoverageSnapshot `json:"coverage,omitempty"`
	Summary  *ent.QASummary        `json:"summary,omitempty"`
}

// GetReport loads the run with its coverage and summary. Missing artifacts
// are nil, which is normal for unfinished or failed runs.
func (s *ReportService) GetReport(ctx context.Context, runID string) (*RunReport, error) {
	run, err := s.client.QARun.Query().
		Where(qarun.IDEQ(runID)).
		WithCoverage().
		WithSummary().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return &RunReport{
		Run:      run,
		Coverage: run.Edges.Coverage,
		Summary:  run.Edges.Summary,
	}, nil
}
