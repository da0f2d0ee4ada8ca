package report

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/qawave/qawave/pkg/ai"
	"github.com/qawave/qawave/pkg/models"
)

// narrativeTimeout bounds the optional AI narrative call; the deterministic
// template takes over past it.
const narrativeTimeout = 30 * time.Second

// SummaryInput carries everything the summary is computed from.
type SummaryInput struct {
	RunID string
	// Scenarios are the run's scenario definitions, for assertion-strength
	// and synthetic-origin signals.
	Scenarios []models.Scenario
	Outcomes  []models.ScenarioOutcome
	Coverage  *models.CoverageSnapshot
	// CoverageThreshold is the PASS floor in percent.
	CoverageThreshold float64
}

// SummaryBuilder produces the final QASummary. The verdict, counts, score,
// and recommendations are deterministic; only the narrative may come from
// the AI provider, failing open to a template.
type SummaryBuilder struct {
	client ai.Client
	logger *slog.Logger
}

// NewSummaryBuilder wires a summary builder. client may be nil, which pins
// the narrative to the template.
func NewSummaryBuilder(client ai.Client, logger *slog.Logger) *SummaryBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryBuilder{client: client, logger: logger}
}

// Build computes the summary for one finished run.
func (b *SummaryBuilder) Build(ctx context.Context, in SummaryInput) *models.QASummary {
	summary := &models.QASummary{RunID: in.RunID}
	for i := range in.Outcomes {
		switch classify(&in.Outcomes[i]) {
		case scenarioPassed:
			summary.PassedScenarios++
		case scenarioErrored:
			summary.ErroredScenarios++
		default:
			summary.FailedScenarios++
		}
	}

	coveragePercent := 0.0
	opsCovered, opsTotal := 0, 0
	if in.Coverage != nil {
		coveragePercent = in.Coverage.CoveragePercent()
		opsCovered = in.Coverage.OpsCovered
		opsTotal = in.Coverage.OpsTotal
	}
	summary.OverallVerdict = ComputeVerdict(summary.FailedScenarios, coveragePercent, in.CoverageThreshold)
	summary.QualityScore = QualityScore(summary.PassedScenarios, len(in.Outcomes), opsCovered, opsTotal)
	summary.Recommendations = recommendations(in.Scenarios, in.Outcomes)
	summary.NarrativeSummary, summary.NarrativeSource = b.narrate(ctx, summary, in)
	return summary
}

// ComputeVerdict applies the verdict rule: any failed scenario is FAIL;
// otherwise coverage at or above the threshold is PASS, below it
// INCONCLUSIVE. A run with no enumerated operations has zero coverage and
// lands on INCONCLUSIVE.
func ComputeVerdict(failedScenarios int, coveragePercent, threshold float64) models.Verdict {
	switch {
	case failedScenarios > 0:
		return models.VerdictFail
	case coveragePercent >= threshold:
		return models.VerdictPass
	default:
		return models.VerdictInconclusive
	}
}

// QualityScore is the 0..100 composite of scenario pass rate and operation
// coverage.
func QualityScore(passedScenarios, totalScenarios, opsCovered, opsTotal int) int {
	score := 100 *
		(float64(passedScenarios) / float64(max(1, totalScenarios))) *
		(float64(opsCovered) / float64(max(1, opsTotal)))
	return int(math.Round(score))
}

type scenarioBucket int

const (
	scenarioPassed scenarioBucket = iota
	scenarioFailed
	scenarioErrored
)

// classify buckets a non-passed scenario: any failed step makes it failed,
// otherwise an errored step makes it errored. Assertion failures outrank
// transport faults when both occur.
func classify(o *models.ScenarioOutcome) scenarioBucket {
	if o.Passed {
		return scenarioPassed
	}
	_, failed, errored, _ := o.StepCounts()
	if failed == 0 && errored > 0 {
		return scenarioErrored
	}
	return scenarioFailed
}

func recommendations(scenarios []models.Scenario, outcomes []models.ScenarioOutcome) []string {
	var recs []string

	weak := 0
	synthetic := 0
	for i := range scenarios {
		hasBodyChecks := false
		for j := range scenarios[i].Steps {
			if len(scenarios[i].Steps[j].Expected.BodyFields) > 0 {
				hasBodyChecks = true
				break
			}
		}
		if !hasBodyChecks && len(scenarios[i].Steps) > 0 {
			weak++
		}
		if scenarios[i].Source == models.ScenarioSourceFallback {
			synthetic++
		}
	}
	if weak > 0 {
		recs = append(recs, fmt.Sprintf("weak assertions: %d scenario(s) declare no bodyFields checks; responses are only status-checked", weak))
	}

	gaps := 0
	for i := range outcomes {
		for j := range outcomes[i].Steps {
			if len(outcomes[i].Steps[j].Unresolved) > 0 {
				gaps++
				break
			}
		}
	}
	if gaps > 0 {
		recs = append(recs, fmt.Sprintf("placeholder gaps: %d scenario(s) referenced variables that never resolved", gaps))
	}

	if synthetic > 0 {
		recs = append(recs, fmt.Sprintf("synthetic coverage: %d fallback scenario(s) ran because AI generation was unavailable; results carry reduced confidence", synthetic))
	}
	return recs
}

func (b *SummaryBuilder) narrate(ctx context.Context, summary *models.QASummary, in SummaryInput) (string, models.NarrativeSource) {
	template := templateNarrative(summary, in.Coverage)
	if b.client == nil {
		return template, models.NarrativeSourceTemplate
	}

	callCtx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()
	system, user := ai.BuildNarrativePrompt(narrativeStatistics(summary, in))
	completion, err := b.client.Complete(callCtx, ai.CompletionRequest{System: system, User: user})
	if err != nil {
		b.logger.Warn("narrative generation failed, using template",
			"run_id", in.RunID,
			"error", err)
		return template, models.NarrativeSourceTemplate
	}
	narrative := strings.TrimSpace(completion.Content)
	if narrative == "" {
		return template, models.NarrativeSourceTemplate
	}
	return narrative, models.NarrativeSourceAI
}

func templateNarrative(summary *models.QASummary, coverage *models.CoverageSnapshot) string {
	total := summary.PassedScenarios + summary.FailedScenarios + summary.ErroredScenarios
	var sb strings.Builder
	fmt.Fprintf(&sb, "Verdict %s: %d of %d scenarios passed", summary.OverallVerdict, summary.PassedScenarios, total)
	if summary.FailedScenarios > 0 || summary.ErroredScenarios > 0 {
		fmt.Fprintf(&sb, " (%d failed, %d errored)", summary.FailedScenarios, summary.ErroredScenarios)
	}
	if coverage != nil && coverage.OpsTotal > 0 {
		fmt.Fprintf(&sb, ". Coverage: %d of %d operations (%.1f%%)", coverage.OpsCovered, coverage.OpsTotal, coverage.CoveragePercent())
	} else {
		sb.WriteString(". No operations were enumerated")
	}
	fmt.Fprintf(&sb, ". Quality score %d/100.", summary.QualityScore)
	return sb.String()
}

func narrativeStatistics(summary *models.QASummary, in SummaryInput) string {
	var sb strings.Builder
	total := summary.PassedScenarios + summary.FailedScenarios + summary.ErroredScenarios
	fmt.Fprintf(&sb, "verdict: %s\n", summary.OverallVerdict)
	fmt.Fprintf(&sb, "scenarios: %d total, %d passed, %d failed, %d errored\n", total, summary.PassedScenarios, summary.FailedScenarios, summary.ErroredScenarios)
	if in.Coverage != nil {
		fmt.Fprintf(&sb, "operations: %d total, %d covered, %d failed, %.1f%% coverage\n", in.Coverage.OpsTotal, in.Coverage.OpsCovered, in.Coverage.OpsFailed, in.Coverage.CoveragePercent())
		for _, ref := range in.Coverage.UncoveredOps {
			fmt.Fprintf(&sb, "untested: %s\n", ref.Key())
		}
	}
	for _, rec := range summary.Recommendations {
		fmt.Fprintf(&sb, "signal: %s\n", rec)
	}
	return sb.String()
}
