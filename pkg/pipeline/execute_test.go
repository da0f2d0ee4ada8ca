package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qawave/qawave/pkg/models"
)

func TestFirstFailure(t *testing.T) {
	tests := []struct {
		name       string
		outcome    models.ScenarioOutcome
		wantReason string
		wantKind   models.ErrorKind
	}{
		{
			name: "all steps passed returns empty",
			outcome: models.ScenarioOutcome{
				Steps: []models.StepResult{
					{Status: models.StepStatusPassed},
					{Status: models.StepStatusPassed},
				},
			},
			wantReason: "",
			wantKind:   "",
		},
		{
			name:       "no steps returns empty",
			outcome:    models.ScenarioOutcome{},
			wantReason: "",
			wantKind:   "",
		},
		{
			name: "failed step without kind defaults to assertion",
			outcome: models.ScenarioOutcome{
				Steps: []models.StepResult{
					{Status: models.StepStatusPassed},
					{Status: models.StepStatusFailed, FailureReason: "status mismatch: want 200 got 404"},
				},
			},
			wantReason: "status mismatch: want 200 got 404",
			wantKind:   models.ErrKindAssertion,
		},
		{
			name: "errored step keeps its own kind",
			outcome: models.ScenarioOutcome{
				Steps: []models.StepResult{
					{
						Status:        models.StepStatusErrored,
						FailureReason: "request timed out after 30s",
						ErrorKind:     models.KindPtr(models.ErrKindTimeout),
					},
				},
			},
			wantReason: "request timed out after 30s",
			wantKind:   models.ErrKindTimeout,
		},
		{
			name: "earliest failing step wins",
			outcome: models.ScenarioOutcome{
				Steps: []models.StepResult{
					{Status: models.StepStatusPassed},
					{
						Status:        models.StepStatusFailed,
						FailureReason: "body field missing",
						ErrorKind:     models.KindPtr(models.ErrKindAssertion),
					},
					{
						Status:        models.StepStatusErrored,
						FailureReason: "connection refused",
						ErrorKind:     models.KindPtr(models.ErrKindNetwork),
					},
				},
			},
			wantReason: "body field missing",
			wantKind:   models.ErrKindAssertion,
		},
		{
			name: "skipped steps are not failures",
			outcome: models.ScenarioOutcome{
				Steps: []models.StepResult{
					{Status: models.StepStatusPassed},
					{Status: models.StepStatusSkipped},
					{Status: models.StepStatusSkipped},
				},
			},
			wantReason: "",
			wantKind:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, kind := firstFailure(tt.outcome)
			assert.Equal(t, tt.wantReason, reason)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestTallyOutcomes(t *testing.T) {
	outcomes := []models.ScenarioOutcome{
		{Passed: true},
		{Passed: true},
		{Errored: true},
		{}, // neither passed nor errored: scored as failed
		{Passed: false, Errored: false},
	}

	passed, failed, errored := tallyOutcomes(outcomes)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 2, failed)
	assert.Equal(t, 1, errored)

	t.Run("empty slice", func(t *testing.T) {
		p, f, e := tallyOutcomes(nil)
		assert.Zero(t, p)
		assert.Zero(t, f)
		assert.Zero(t, e)
	})

	t.Run("errored takes precedence over failed", func(t *testing.T) {
		p, f, e := tallyOutcomes([]models.ScenarioOutcome{{Passed: false, Errored: true}})
		assert.Zero(t, p)
		assert.Zero(t, f)
		assert.Equal(t, 1, e)
	})
}
