package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/ai"
	"github.com/qawave/qawave/pkg/models"
)

type cannedAIClient struct {
	content string
	err     error
	calls   int
}

func (c *cannedAIClient) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.Completion, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &ai.Completion{Content: c.content, Model: "test-model"}, nil
}

func outcomeWith(status models.StepStatus) models.ScenarioOutcome {
	return models.ScenarioOutcome{
		Passed:  status == models.StepStatusPassed,
		Errored: status == models.StepStatusErrored,
		Steps:   []models.StepResult{{Status: status}},
	}
}

func TestComputeVerdict(t *testing.T) {
	tests := []struct {
		name      string
		failed    int
		coverage  float64
		threshold float64
		want      models.Verdict
	}{
		{"all passed with coverage", 0, 90, 80, models.VerdictPass},
		{"coverage exactly at threshold", 0, 80, 80, models.VerdictPass},
		{"any failure is fail", 1, 100, 80, models.VerdictFail},
		{"clean but undercovered", 0, 50, 80, models.VerdictInconclusive},
		{"no operations enumerated", 0, 0, 80, models.VerdictInconclusive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeVerdict(tt.failed, tt.coverage, tt.threshold))
		})
	}
}

func TestQualityScore(t *testing.T) {
	assert.Equal(t, 100, QualityScore(5, 5, 10, 10))
	assert.Equal(t, 48, QualityScore(3, 5, 8, 10))
	assert.Equal(t, 0, QualityScore(0, 0, 0, 0))
	// 100 * (1/3) * (1/2) = 16.67, rounds to 17.
	assert.Equal(t, 17, QualityScore(1, 3, 1, 2))
}

func TestSummaryBuilderCounts(t *testing.T) {
	b := NewSummaryBuilder(nil, nil)
	summary := b.Build(context.Background(), SummaryInput{
		RunID: "run-1",
		Outcomes: []models.ScenarioOutcome{
			outcomeWith(models.StepStatusPassed),
			outcomeWith(models.StepStatusFailed),
			outcomeWith(models.StepStatusErrored),
		},
		Coverage:          &models.CoverageSnapshot{OpsTotal: 4, OpsCovered: 2},
		CoverageThreshold: 80,
	})

	assert.Equal(t, 1, summary.PassedScenarios)
	assert.Equal(t, 1, summary.FailedScenarios)
	assert.Equal(t, 1, summary.ErroredScenarios)
	assert.Equal(t, models.VerdictFail, summary.OverallVerdict)
	// 100 * (1/3) * (2/4) = 16.67 -> 17
	assert.Equal(t, 17, summary.QualityScore)
}

func TestSummaryBuilderFailedStepOutranksErrored(t *testing.T) {
	b := NewSummaryBuilder(nil, nil)
	mixed := models.ScenarioOutcome{
		Passed:  false,
		Errored: true,
		Steps: []models.StepResult{
			{Status: models.StepStatusFailed},
			{Status: models.StepStatusErrored},
		},
	}

	summary := b.Build(context.Background(), SummaryInput{
		RunID:             "run-1",
		Outcomes:          []models.ScenarioOutcome{mixed},
		CoverageThreshold: 80,
	})

	assert.Equal(t, 1, summary.FailedScenarios)
	assert.Zero(t, summary.ErroredScenarios)
}

func TestSummaryBuilderErroredRunCanStillPass(t *testing.T) {
	// Errored scenarios do not force FAIL; coverage decides.
	b := NewSummaryBuilder(nil, nil)
	summary := b.Build(context.Background(), SummaryInput{
		RunID: "run-1",
		Outcomes: []models.ScenarioOutcome{
			outcomeWith(models.StepStatusPassed),
			outcomeWith(models.StepStatusErrored),
		},
		Coverage:          &models.CoverageSnapshot{OpsTotal: 10, OpsCovered: 9},
		CoverageThreshold: 80,
	})

	assert.Equal(t, models.VerdictPass, summary.OverallVerdict)
	assert.Equal(t, 1, summary.ErroredScenarios)
}

func TestSummaryBuilderRecommendations(t *testing.T) {
	b := NewSummaryBuilder(nil, nil)
	scenarios := []models.Scenario{
		{
			Name:   "no body checks",
			Source: models.ScenarioSourceAIGenerated,
			Steps: []models.Step{
				{Method: models.MethodGet, Endpoint: "/users", Expected: models.Expectation{Status: "200"}},
			},
		},
		{
			Name:   "synthetic",
			Source: models.ScenarioSourceFallback,
			Steps: []models.Step{
				{Method: models.MethodGet, Endpoint: "/health", Expected: models.Expectation{Status: ">=100"}},
			},
		},
	}
	outcomes := []models.ScenarioOutcome{
		{
			Passed: false,
			Steps: []models.StepResult{
				{Status: models.StepStatusFailed, Unresolved: []string{"userId"}},
			},
		},
	}

	summary := b.Build(context.Background(), SummaryInput{
		RunID:             "run-1",
		Scenarios:         scenarios,
		Outcomes:          outcomes,
		CoverageThreshold: 80,
	})

	require.Len(t, summary.Recommendations, 3)
	assert.Contains(t, summary.Recommendations[0], "weak assertions")
	assert.Contains(t, summary.Recommendations[1], "placeholder gaps")
	assert.Contains(t, summary.Recommendations[2], "synthetic coverage")
}

func TestSummaryBuilderTemplateNarrative(t *testing.T) {
	b := NewSummaryBuilder(nil, nil)
	summary := b.Build(context.Background(), SummaryInput{
		RunID:             "run-1",
		Outcomes:          []models.ScenarioOutcome{outcomeWith(models.StepStatusPassed)},
		Coverage:          &models.CoverageSnapshot{OpsTotal: 2, OpsCovered: 2},
		CoverageThreshold: 80,
	})

	assert.Equal(t, models.NarrativeSourceTemplate, summary.NarrativeSource)
	assert.Contains(t, summary.NarrativeSummary, "Verdict PASS")
	assert.Contains(t, summary.NarrativeSummary, "1 of 1 scenarios passed")
}

func TestSummaryBuilderAINarrative(t *testing.T) {
	client := &cannedAIClient{content: "All user endpoints behave as expected."}
	b := NewSummaryBuilder(client, nil)

	summary := b.Build(context.Background(), SummaryInput{
		RunID:             "run-1",
		Outcomes:          []models.ScenarioOutcome{outcomeWith(models.StepStatusPassed)},
		Coverage:          &models.CoverageSnapshot{OpsTotal: 1, OpsCovered: 1},
		CoverageThreshold: 80,
	})

	assert.Equal(t, models.NarrativeSourceAI, summary.NarrativeSource)
	assert.Equal(t, "All user endpoints behave as expected.", summary.NarrativeSummary)
	assert.Equal(t, 1, client.calls)
}

func TestSummaryBuilderNarrativeFailsOpen(t *testing.T) {
	client := &cannedAIClient{err: errors.New("provider down")}
	b := NewSummaryBuilder(client, nil)

	start := time.Now()
	summary := b.Build(context.Background(), SummaryInput{
		RunID:             "run-1",
		Outcomes:          []models.ScenarioOutcome{outcomeWith(models.StepStatusPassed)},
		Coverage:          &models.CoverageSnapshot{OpsTotal: 1, OpsCovered: 1},
		CoverageThreshold: 80,
	})

	assert.Equal(t, models.NarrativeSourceTemplate, summary.NarrativeSource)
	assert.Contains(t, summary.NarrativeSummary, "Verdict PASS")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSummaryBuilderBlankAINarrativeFallsBack(t *testing.T) {
	client := &cannedAIClient{content: "   \n"}
	b := NewSummaryBuilder(client, nil)

	summary := b.Build(context.Background(), SummaryInput{
		RunID:             "run-1",
		Outcomes:          nil,
		CoverageThreshold: 80,
	})

	assert.Equal(t, models.NarrativeSourceTemplate, summary.NarrativeSource)
	assert.NotEmpty(t, summary.NarrativeSummary)
}
