package models

import "time"

// StepStatus is the outcome class of one executed step.
type StepStatus string

const (
	StepStatusPassed  StepStatus = "passed"
	StepStatusFailed  StepStatus = "failed"
	StepStatusErrored StepStatus = "errored"
	StepStatusSkipped StepStatus = "skipped"
)

// AssertionResult records one evaluated check.
type AssertionResult struct {
	Locator  string `json:"locator"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Passed   bool   `json:"passed"`
	Reason   string `json:"reason,omitempty"`
}

// StepResult is the outcome of executing one step.
type StepResult struct {
	ID         string     `json:"id,omitempty"`
	RunID      string     `json:"run_id"`
	ScenarioID string     `json:"scenario_id"`
	StepIndex  int        `json:"step_index"`
	Name       string     `json:"name,omitempty"`
	Method     HTTPMethod `json:"method,omitempty"`
	// Endpoint is the resolved target of the request, or the raw template
	// when resolution failed before dispatch.
	Endpoint         string            `json:"endpoint,omitempty"`
	Status           StepStatus        `json:"status"`
	Attempts         int               `json:"attempts,omitempty"`
	ActualStatusCode int               `json:"actual_status_code,omitempty"`
	ActualHeaders    map[string]string `json:"actual_headers,omitempty"`
	// ActualBody is truncated to the configured policy size; BodyDigest is
	// always the SHA-256 of the full body.
	ActualBody       string            `json:"actual_body,omitempty"`
	BodyDigest       string            `json:"body_digest,omitempty"`
	AssertionResults []AssertionResult `json:"assertion_results,omitempty"`
	Extracted        map[string]string `json:"extracted,omitempty"`
	// Unresolved lists placeholders that could not be resolved before the
	// request was attempted.
	Unresolved    []string   `json:"unresolved,omitempty"`
	DurationMs    int64      `json:"duration_ms"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    time.Time  `json:"finished_at"`
	FailureReason string     `json:"failure_reason,omitempty"`
	ErrorKind     *ErrorKind `json:"error_kind,omitempty"`
}

// ScenarioOutcome aggregates a scenario's step results.
type ScenarioOutcome struct {
	ScenarioID  string       `json:"scenario_id"`
	RunID       string       `json:"run_id"`
	Name        string       `json:"name"`
	OperationID string       `json:"operation_id,omitempty"`
	Passed      bool         `json:"passed"`
	Errored     bool         `json:"errored"`
	Steps       []StepResult `json:"steps"`
	DurationMs  int64        `json:"duration_ms"`
}

// StepCounts tallies outcomes by class.
func (o *ScenarioOutcome) StepCounts() (passed, failed, errored, skipped int) {
	for i := range o.Steps {
		switch o.Steps[i].Status {
		case StepStatusPassed:
			passed++
		case StepStatusFailed:
			failed++
		case StepStatusErrored:
			errored++
		case StepStatusSkipped:
			skipped++
		}
	}
	return passed, failed, errored, skipped
}
