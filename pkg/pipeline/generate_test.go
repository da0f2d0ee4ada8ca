package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/pkg/ai"
	"github.com/qawave/qawave/pkg/models"
)

func TestGenerationOutcomeJournalPayload(t *testing.T) {
	t.Run("clean stage omits fallback and failure keys", func(t *testing.T) {
		out := &generationOutcome{
			scenarios:    make([]models.Scenario, 3),
			opsGenerated: 3,
			attempts:     4,
			kinds:        map[models.ErrorKind]int{},
		}

		assert.Equal(t, map[string]any{
			"scenarioCount": 3,
			"opsGenerated":  3,
			"opsFailed":     0,
			"attempts":      4,
		}, out.journalPayload())
	})

	t.Run("degraded stage reports fallbacks and kinds", func(t *testing.T) {
		out := &generationOutcome{
			scenarios:    make([]models.Scenario, 2),
			opsGenerated: 1,
			opsFallback:  1,
			opsFailed:    2,
			attempts:     7,
			kinds: map[models.ErrorKind]int{
				models.ErrKindAISchema:   2,
				models.ErrKindAIProvider: 1,
			},
		}

		p := out.journalPayload()
		assert.Equal(t, 2, p["scenarioCount"])
		assert.Equal(t, 1, p["opsFallback"])
		assert.Equal(t, 2, p["opsFailed"])
		assert.Equal(t, map[string]int{
			"AI_SCHEMA":   2,
			"AI_PROVIDER": 1,
		}, p["failureKinds"])
	})
}

func TestGenerationOutcomeFailureKind(t *testing.T) {
	tests := []struct {
		name  string
		kinds map[models.ErrorKind]int
		want  models.ErrorKind
	}{
		{
			name:  "no recorded kinds falls back to internal",
			kinds: map[models.ErrorKind]int{},
			want:  models.ErrKindInternal,
		},
		{
			name:  "single kind",
			kinds: map[models.ErrorKind]int{models.ErrKindAIProvider: 1},
			want:  models.ErrKindAIProvider,
		},
		{
			name: "dominant kind wins",
			kinds: map[models.ErrorKind]int{
				models.ErrKindTimeout:  1,
				models.ErrKindAISchema: 3,
			},
			want: models.ErrKindAISchema,
		},
		{
			name: "tie resolves deterministically",
			kinds: map[models.ErrorKind]int{
				models.ErrKindAIShape:  2,
				models.ErrKindAISchema: 2,
			},
			want: models.ErrKindAISchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &generationOutcome{kinds: tt.kinds}
			assert.Equal(t, tt.want, out.failureKind())
		})
	}
}

func TestRejectedKinds(t *testing.T) {
	attempts := []ai.VerifyAttempt{
		{Attempt: 1, OK: false, Kind: models.ErrKindAISchema},
		{Attempt: 2, OK: false, Kind: models.ErrKindAIAlignment},
		{Attempt: 3, OK: true},
	}
	assert.Equal(t, []string{"AI_SCHEMA", "AI_ALIGNMENT"}, rejectedKinds(attempts))

	assert.Nil(t, rejectedKinds(nil))
	assert.Nil(t, rejectedKinds([]ai.VerifyAttempt{{Attempt: 1, OK: true}}))
}

func TestRequirementFor(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name string
		run  *ent.QARun
		want string
	}{
		{
			name: "requirement text wins",
			run: &ent.QARun{
				Name:            "checkout-smoke",
				Description:     strPtr("smoke coverage for checkout"),
				RequirementText: strPtr("verify checkout applies discounts"),
			},
			want: "verify checkout applies discounts",
		},
		{
			name: "description is second choice",
			run: &ent.QARun{
				Name:        "checkout-smoke",
				Description: strPtr("smoke coverage for checkout"),
			},
			want: "smoke coverage for checkout",
		},
		{
			name: "empty requirement text is skipped",
			run: &ent.QARun{
				Name:            "checkout-smoke",
				Description:     strPtr("smoke coverage for checkout"),
				RequirementText: strPtr(""),
			},
			want: "smoke coverage for checkout",
		},
		{
			name: "name is the last resort",
			run:  &ent.QARun{Name: "checkout-smoke"},
			want: "checkout-smoke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requirementFor(tt.run))
		})
	}
}
