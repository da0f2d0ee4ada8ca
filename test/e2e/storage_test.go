package e2e

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Storage policy test: response body excerpt truncation.
//
// The SUT answers with a body far larger than the configured excerpt
// limit. Assertions and extractions evaluate against the full response;
// only the stored copy is cut, and the digest still identifies the
// untruncated bytes.
// ────────────────────────────────────────────────────────────

func TestE2E_BodyTruncation(t *testing.T) {
	// ~4KB body whose interesting field sits at the very end, far past
	// the 256-byte excerpt limit configured below.
	blobBody := fmt.Sprintf(`{"filler":%q,"tail":"end-marker"}`, strings.Repeat("x", 4096))

	sut := NewSUTServer(t)
	sut.Handle("GET /api/blob", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(blobBody))
	})

	ai := NewScriptedAIClient()
	ai.AddSequential(AIScriptEntry{Text: scenarioReadBlob})
	ai.AddNarrative(AIScriptEntry{Text: "Blob endpoint verified."})

	cfg := config.Default()
	cfg.Runs.BodyTruncateBytes = 256

	app := NewTestApp(t, WithConfig(cfg), WithAIClient(ai))

	run := app.CreateRun(t, models.CreateRunRequest{
		Name:       "blob-storage",
		SpecSource: models.SpecSourceInline,
		SpecInline: specBlob,
		BaseURL:    sut.BaseURL(),
		Config:     models.RunConfig{AllowInternal: true},
	})

	status := app.WaitForTerminal(t, run.ID)
	require.Equal(t, models.RunStatusComplete, status)

	scenarios := app.QueryScenarios(t, run.ID)
	require.Len(t, scenarios, 1)

	steps := app.QueryStepResults(t, run.ID, scenarios[0].ID)
	require.Len(t, steps, 1)
	step := steps[0]
	assert.Equal(t, string(models.StepStatusPassed), string(step.Status))

	// The stored excerpt is cut at the limit and no longer contains the
	// trailing field the assertion matched on.
	assert.Len(t, step.ActualBody, 256)
	assert.Equal(t, blobBody[:256], step.ActualBody)
	assert.NotContains(t, step.ActualBody, "end-marker")

	// Digest and extraction both saw the full body.
	assert.Equal(t, models.SHA256Hex([]byte(blobBody)), step.BodyDigest)
	assert.Equal(t, "end-marker", step.Extracted["marker"])

	// The body assertion evaluated before truncation, so it passed even
	// though its target is gone from the stored excerpt.
	require.Len(t, step.AssertionResults, 2)
	tailCheck := step.AssertionResults[1]
	assert.Equal(t, "$.tail", tailCheck.Locator)
	assert.Equal(t, "end-marker", tailCheck.Actual)
	assert.True(t, tailCheck.Passed)

	// The run verdict is unaffected by what storage kept.
	report := app.GetReport(t, run.ID)
	require.NotNil(t, report.Summary)
	assert.Equal(t, string(models.VerdictPass), string(report.Summary.OverallVerdict))
}
