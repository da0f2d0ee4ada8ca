package models

import "time"

// OperationOutcome is the coverage status of one spec operation.
type OperationOutcome string

const (
	OpCovered  OperationOutcome = "COVERED"
	OpFailed   OperationOutcome = "FAILED"
	OpUntested OperationOutcome = "UNTESTED"
)

// OperationRef identifies a spec operation by method and path template.
type OperationRef struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Key is the canonical "METHOD path" form used in per-operation maps.
func (r OperationRef) Key() string { return r.Method + " " + r.Path }

// CoverageSnapshot is the aggregate per-operation report of a run.
type CoverageSnapshot struct {
	RunID            string                      `json:"run_id"`
	OpsTotal         int                         `json:"ops_total"`
	OpsCovered       int                         `json:"ops_covered"`
	OpsFailed        int                         `json:"ops_failed"`
	UncoveredOps     []OperationRef              `json:"uncovered_ops,omitempty"`
	PerOpStatus      map[string]OperationOutcome `json:"per_op_status,omitempty"`
	ScenariosPassed  int                         `json:"scenarios_passed"`
	ScenariosFailed  int                         `json:"scenarios_failed"`
	ComputedAt       time.Time                   `json:"computed_at"`
}

// CoveragePercent is covered/total in percent; zero when no operations
// were enumerated, which drives the empty-run verdict to INCONCLUSIVE.
func (c *CoverageSnapshot) CoveragePercent() float64 {
	if c.OpsTotal == 0 {
		return 0
	}
	return 100 * float64(c.OpsCovered) / float64(c.OpsTotal)
}

// Verdict is the top-level outcome of a run.
type Verdict string

const (
	VerdictPass         Verdict = "PASS"
	VerdictFail         Verdict = "FAIL"
	VerdictInconclusive Verdict = "INCONCLUSIVE"
)

// NarrativeSource records whether the summary narrative came from the AI
// provider or the deterministic template fallback.
type NarrativeSource string

const (
	NarrativeSourceAI       NarrativeSource = "ai"
	NarrativeSourceTemplate NarrativeSource = "template"
)

// QASummary is the final verdict artifact of a run.
type QASummary struct {
	RunID            string          `json:"run_id"`
	OverallVerdict   Verdict         `json:"overall_verdict"`
	PassedScenarios  int             `json:"passed_scenarios"`
	FailedScenarios  int             `json:"failed_scenarios"`
	ErroredScenarios int             `json:"errored_scenarios"`
	NarrativeSummary string          `json:"narrative_summary"`
	NarrativeSource  NarrativeSource `json:"narrative_source"`
	Recommendations  []string        `json:"recommendations,omitempty"`
	QualityScore     int             `json:"quality_score"`
}
