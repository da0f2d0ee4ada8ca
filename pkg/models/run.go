// Package models defines the domain types shared across the execution core:
// the run lifecycle, the scenario JSON contract, step results, the error
// taxonomy, and the coverage/summary report shapes.
package models

import (
	"fmt"
	"net/url"
	"time"
)

// RunStatus is the lifecycle state of a run. Transitions are validated at
// the journal boundary; see CanTransitionTo.
type RunStatus string

const (
	RunStatusRequested           RunStatus = "requested"
	RunStatusSpecFetched         RunStatus = "spec_fetched"
	RunStatusAISuccess           RunStatus = "ai_success"
	RunStatusExecutionInProgress RunStatus = "execution_in_progress"
	RunStatusExecutionComplete   RunStatus = "execution_complete"
	RunStatusQAEvalInProgress    RunStatus = "qa_eval_in_progress"
	RunStatusQAEvalDone          RunStatus = "qa_eval_done"
	RunStatusComplete            RunStatus = "complete"
	RunStatusCancelled           RunStatus = "cancelled"
	RunStatusFailedSpecFetch     RunStatus = "failed_spec_fetch"
	RunStatusFailedGeneration    RunStatus = "failed_generation"
	RunStatusFailedExecution     RunStatus = "failed_execution"
)

// runTransitions is the legal successor set for each non-terminal status.
// Cancellation is handled separately: every non-terminal status may move to
// RunStatusCancelled.
var runTransitions = map[RunStatus][]RunStatus{
	RunStatusRequested:           {RunStatusSpecFetched, RunStatusFailedSpecFetch},
	RunStatusSpecFetched:         {RunStatusAISuccess, RunStatusFailedGeneration},
	RunStatusAISuccess:           {RunStatusExecutionInProgress, RunStatusFailedExecution},
	RunStatusExecutionInProgress: {RunStatusExecutionComplete, RunStatusFailedExecution},
	RunStatusExecutionComplete:   {RunStatusQAEvalInProgress},
	RunStatusQAEvalInProgress:    {RunStatusQAEvalDone},
	RunStatusQAEvalDone:          {RunStatusComplete},
}

// AllRunStatuses lists every valid status value.
var AllRunStatuses = []RunStatus{
	RunStatusRequested,
	RunStatusSpecFetched,
	RunStatusAISuccess,
	RunStatusExecutionInProgress,
	RunStatusExecutionComplete,
	RunStatusQAEvalInProgress,
	RunStatusQAEvalDone,
	RunStatusComplete,
	RunStatusCancelled,
	RunStatusFailedSpecFetch,
	RunStatusFailedGeneration,
	RunStatusFailedExecution,
}

// Valid reports whether s is a known status value.
func (s RunStatus) Valid() bool {
	for _, v := range AllRunStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether s accepts no further transitions.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunStatusComplete, RunStatusCancelled,
		RunStatusFailedSpecFetch, RunStatusFailedGeneration, RunStatusFailedExecution:
		return true
	}
	return false
}

// CanTransitionTo reports whether the move s → next is legal.
func (s RunStatus) CanTransitionTo(next RunStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == RunStatusCancelled {
		return true
	}
	for _, allowed := range runTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// RunMode selects the flavor of testing a run performs.
type RunMode string

const (
	RunModeStandard    RunMode = "standard"
	RunModeSecurity    RunMode = "security"
	RunModePerformance RunMode = "performance"
)

// SpecSourceKind distinguishes how the OpenAPI document is supplied.
type SpecSourceKind string

const (
	SpecSourceURL    SpecSourceKind = "url"
	SpecSourceInline SpecSourceKind = "inline"
)

// RunConfig carries the per-run pipeline options. Zero values (nil for the
// booleans) mean "use the default"; WithDefaults produces the effective
// config.
type RunConfig struct {
	// MaxScenarios is a pointer so an explicit zero (run with empty
	// coverage, verdict INCONCLUSIVE) survives defaulting.
	MaxScenarios        *int  `json:"maxScenarios,omitempty"`
	MaxStepsPerScenario int   `json:"maxStepsPerScenario,omitempty"`
	ParallelExecution   *bool `json:"parallelExecution,omitempty"`
	StopOnFirstFailure  *bool `json:"stopOnFirstFailure,omitempty"`
	AIConcurrency       int   `json:"aiConcurrency,omitempty"`
	ExecConcurrency     int   `json:"execConcurrency,omitempty"`
	StepTimeoutMs       int   `json:"stepTimeoutMs,omitempty"`
	AIVerifyRetries     int   `json:"aiVerifyRetries,omitempty"`

	// MaxRetries bounds transport-level retries per step.
	MaxRetries int `json:"maxRetries,omitempty"`
	// CoverageThreshold is the PASS verdict floor, percent.
	CoverageThreshold float64 `json:"coverageThreshold,omitempty"`
	// AllowInternal disables the SSRF guard for targets on private ranges.
	AllowInternal bool `json:"allowInternal,omitempty"`
	// Environment seeds ${env.KEY} lookups for every scenario of the run.
	Environment map[string]string `json:"environment,omitempty"`
}

// DefaultRunConfig returns the documented defaults.
func DefaultRunConfig() RunConfig {
	parallel := true
	stopOnFailure := true
	maxScenarios := 10
	return RunConfig{
		MaxScenarios:        &maxScenarios,
		MaxStepsPerScenario: 10,
		ParallelExecution:   &parallel,
		StopOnFirstFailure:  &stopOnFailure,
		AIConcurrency:       5,
		ExecConcurrency:     10,
		StepTimeoutMs:       30000,
		AIVerifyRetries:     2,
		MaxRetries:          2,
		CoverageThreshold:   80,
	}
}

// Parallel resolves ParallelExecution (default true).
func (c RunConfig) Parallel() bool {
	return c.ParallelExecution == nil || *c.ParallelExecution
}

// ScenarioBudget resolves MaxScenarios (default 10). Zero is a legal,
// deliberate budget: the run completes with empty coverage.
func (c RunConfig) ScenarioBudget() int {
	if c.MaxScenarios == nil {
		return 10
	}
	return *c.MaxScenarios
}

// StopOnFailure resolves StopOnFirstFailure (default true).
func (c RunConfig) StopOnFailure() bool {
	return c.StopOnFirstFailure == nil || *c.StopOnFirstFailure
}

// WithDefaults fills unset fields from DefaultRunConfig.
func (c RunConfig) WithDefaults() RunConfig {
	d := DefaultRunConfig()
	if c.ParallelExecution == nil {
		c.ParallelExecution = d.ParallelExecution
	}
	if c.StopOnFirstFailure == nil {
		c.StopOnFirstFailure = d.StopOnFirstFailure
	}
	if c.MaxScenarios == nil {
		c.MaxScenarios = d.MaxScenarios
	}
	if c.MaxStepsPerScenario == 0 {
		c.MaxStepsPerScenario = d.MaxStepsPerScenario
	}
	if c.AIConcurrency == 0 {
		c.AIConcurrency = d.AIConcurrency
	}
	if c.ExecConcurrency == 0 {
		c.ExecConcurrency = d.ExecConcurrency
	}
	if c.StepTimeoutMs == 0 {
		c.StepTimeoutMs = d.StepTimeoutMs
	}
	if c.AIVerifyRetries == 0 {
		c.AIVerifyRetries = d.AIVerifyRetries
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = d.MaxRetries
	}
	if c.CoverageThreshold == 0 {
		c.CoverageThreshold = d.CoverageThreshold
	}
	return c
}

// Validate rejects configs that name impossible bounds. MaxScenarios = 0 is
// legal (the run completes with empty coverage); negatives are not.
func (c RunConfig) Validate() error {
	if c.MaxScenarios != nil && *c.MaxScenarios < 0 {
		return fmt.Errorf("maxScenarios must be >= 0, got %d", *c.MaxScenarios)
	}
	if c.MaxStepsPerScenario < 1 {
		return fmt.Errorf("maxStepsPerScenario must be >= 1, got %d", c.MaxStepsPerScenario)
	}
	if c.AIConcurrency < 1 {
		return fmt.Errorf("aiConcurrency must be >= 1, got %d", c.AIConcurrency)
	}
	if c.ExecConcurrency < 1 {
		return fmt.Errorf("execConcurrency must be >= 1, got %d", c.ExecConcurrency)
	}
	if c.StepTimeoutMs < 1 {
		return fmt.Errorf("stepTimeoutMs must be >= 1, got %d", c.StepTimeoutMs)
	}
	if c.AIVerifyRetries < 0 {
		return fmt.Errorf("aiVerifyRetries must be >= 0, got %d", c.AIVerifyRetries)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("maxRetries must be >= 0, got %d", c.MaxRetries)
	}
	if c.CoverageThreshold < 0 || c.CoverageThreshold > 100 {
		return fmt.Errorf("coverageThreshold must be within 0..100, got %v", c.CoverageThreshold)
	}
	return nil
}

// CreateRunRequest contains the fields for creating a new run.
type CreateRunRequest struct {
	RunID           string         `json:"run_id,omitempty"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	RequirementText string         `json:"requirement_text,omitempty"`
	SpecSource      SpecSourceKind `json:"spec_source"`
	SpecURL         string         `json:"spec_url,omitempty"`
	SpecInline      string         `json:"spec_inline,omitempty"`
	BaseURL         string         `json:"base_url"`
	Mode            RunMode        `json:"mode,omitempty"`
	Config          RunConfig      `json:"config"`
	TriggeredBy     string         `json:"triggered_by,omitempty"`
}

// ValidateBaseURL checks the syntactic http(s) URL invariant.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("malformed base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL has no host")
	}
	return nil
}

// RunFilters contains filtering options for listing runs.
type RunFilters struct {
	Status        RunStatus  `json:"status,omitempty"`
	Mode          RunMode    `json:"mode,omitempty"`
	TriggeredBy   string     `json:"triggered_by,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}
