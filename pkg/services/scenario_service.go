package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/pkg/models"
)

// ScenarioRecord pairs a verified scenario with its generation bookkeeping.
type ScenarioRecord struct {
	Scenario models.Scenario
	// GenerationAttempts is the number of verify attempts consumed,
	// including the accepted one. Zero for non-AI sources.
	GenerationAttempts int
	// FailureKinds holds the verifier failure kind per rejected attempt.
	FailureKinds []string
}

// ScenarioService persists and retrieves test scenarios.
type ScenarioService struct {
	client *ent.Client
}

// NewScenarioService creates a new ScenarioService.
func NewScenarioService(client *ent.Client) *ScenarioService {
	return &ScenarioService{client: client}
}

// SaveScenarios persists a batch of scenarios for a run in one transaction.
// Step indices are normalized to 0..n-1 before writing. IDs are assigned
// when the scenario carries none.
func (s *ScenarioService) SaveScenarios(httpCtx context.Context, runID string, records []ScenarioRecord) ([]*ent.Scenario, error) {
	if len(records) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	builders := make([]*ent.ScenarioCreate, 0, len(records))
	for i := range records {
		sc := records[i].Scenario
		sc.NormalizeStepIndices()
		if sc.ID == "" {
			sc.ID = uuid.New().String()
		}
		if sc.Source == "" {
			sc.Source = models.ScenarioSourceAIGenerated
		}
		if sc.Status == "" {
			sc.Status = models.ScenarioStatusReady
		}
		if len(sc.Steps) == 0 {
			return nil, NewValidationError("steps", fmt.Sprintf("scenario %q has no steps", sc.Name))
		}

		b := tx.Scenario.Create().
			SetID(sc.ID).
			SetRunID(runID).
			SetName(sc.Name).
			SetSource(scenario.Source(string(sc.Source))).
			SetStatus(scenario.Status(string(sc.Status))).
			SetPriority(sc.Priority).
			SetSteps(sc.Steps).
			SetGenerationAttempts(records[i].GenerationAttempts)

		if sc.Description != "" {
			b.SetDescription(sc.Description)
		}
		if sc.OperationID != "" {
			b.SetOperationID(sc.OperationID)
		}
		if len(sc.Tags) > 0 {
			b.SetTags(sc.Tags)
		}
		if sc.Version > 0 {
			b.SetVersion(sc.Version)
		}
		if len(records[i].FailureKinds) > 0 {
			b.SetFailureKinds(records[i].FailureKinds)
		}
		builders = append(builders, b)
	}

	rows, err := tx.Scenario.CreateBulk(builders...).Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save scenarios: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit scenarios: %w", err)
	}

	return rows, nil
}

// GetScenario retrieves a scenario by ID.
func (s *ScenarioService) GetScenario(ctx context.Context, scenarioID string) (*ent.Scenario, error) {
	row, err := s.client.Scenario.Get(ctx, scenarioID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}
	return row, nil
}

// ListScenarios returns a run's scenarios in creation order.
func (s *ScenarioService) ListScenarios(ctx context.Context, runID string) ([]*ent.Scenario, error) {
	rows, err := s.client.Scenario.Query().
		Where(scenario.RunIDEQ(runID)).
		Order(ent.Asc(scenario.FieldCreatedAt), ent.Asc(scenario.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return rows, nil
}

// UpdateScenarioStatus marks a scenario's verification state.
func (s *ScenarioService) UpdateScenarioStatus(ctx context.Context, scenarioID string, status models.ScenarioStatus) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Scenario.UpdateOneID(scenarioID).
		SetStatus(scenario.Status(string(status))).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update scenario status: %w", err)
	}
	return nil
}

// ScenarioFromEnt converts a row back to the domain contract form.
func ScenarioFromEnt(e *ent.Scenario) models.Scenario {
	sc := models.Scenario{
		ID:       e.ID,
		RunID:    e.RunID,
		Name:     e.Name,
		Source:   models.ScenarioSource(e.Source),
		Status:   models.ScenarioStatus(e.Status),
		Tags:     e.Tags,
		Priority: e.Priority,
		Version:  e.Version,
		Steps:    e.Steps,
	}
	if e.Description != nil {
		sc.Description = *e.Description
	}
	if e.OperationID != nil {
		sc.OperationID = *e.OperationID
	}
	return sc
}
