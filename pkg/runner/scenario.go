package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/qawave/qawave/pkg/models"
)

// skipReason is recorded on steps abandoned after an earlier failure.
const skipReason = "previous step failed"

// OnStep receives each step result as it is produced, in step order.
// Skipped steps are reported too.
type OnStep func(models.StepResult)

// ScenarioExecutor runs scenarios step by step over a shared step executor.
// Each scenario gets a fresh execution context seeded from the run
// environment; extracted variables flow only forward.
type ScenarioExecutor struct {
	steps  *StepExecutor
	logger *slog.Logger
}

// NewScenarioExecutor wires a scenario executor. A nil logger falls back to
// slog.Default.
func NewScenarioExecutor(steps *StepExecutor, logger *slog.Logger) *ScenarioExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScenarioExecutor{steps: steps, logger: logger}
}

// Execute runs all steps of one scenario in index order and aggregates the
// outcome. With stopOnFirstFailure, the first failed or errored step skips
// the remainder. onStep may be nil.
func (se *ScenarioExecutor) Execute(ctx context.Context, scenario *models.Scenario, baseURL string, environment map[string]string, policy Policy, onStep OnStep) models.ScenarioOutcome {
	started := time.Now()
	outcome := models.ScenarioOutcome{
		ScenarioID:  scenario.ID,
		RunID:       scenario.RunID,
		Name:        scenario.Name,
		OperationID: scenario.OperationID,
		Passed:      true,
	}

	compiled := make([]*CompiledStep, len(scenario.Steps))
	declared := make(map[string]int, 4)
	for i := range scenario.Steps {
		compiled[i] = CompileStep(scenario.Steps[i])
	}

	ec := NewExecutionContext(environment)
	emit := func(r models.StepResult) {
		r.RunID = scenario.RunID
		r.ScenarioID = scenario.ID
		outcome.Steps = append(outcome.Steps, r)
		if onStep != nil {
			onStep(r)
		}
	}

	stopped := false
	for i, cs := range compiled {
		step := cs.Step
		if stopped {
			emit(skippedResult(step, skipReason))
			continue
		}
		if ctx.Err() != nil {
			emit(skippedResult(step, "run cancelled"))
			continue
		}

		if name, ok := missingDeclared(cs, ec, declared, i); ok {
			r := failedResult(step, models.ErrKindExtractionMissing,
				fmt.Sprintf("variable %q was declared by an earlier step but never extracted", name))
			emit(r)
			outcome.Passed = false
			if policy.StopOnFirstFailure {
				stopped = true
			}
			continue
		}

		r := se.steps.Execute(ctx, cs, ec, baseURL, policy)
		emit(r)

		for name, value := range r.Extracted {
			ec.Set(name, value)
		}
		for _, ex := range cs.Extractions {
			if _, exists := declared[ex.Name]; !exists {
				declared[ex.Name] = i
			}
		}

		switch r.Status {
		case models.StepStatusPassed:
		case models.StepStatusErrored:
			outcome.Passed = false
			outcome.Errored = true
			if policy.StopOnFirstFailure {
				stopped = true
			}
		default:
			outcome.Passed = false
			if policy.StopOnFirstFailure {
				stopped = true
			}
		}
	}

	outcome.DurationMs = time.Since(started).Milliseconds()
	passed, failed, errored, skipped := outcome.StepCounts()
	se.logger.Info("scenario finished",
		"scenario_id", scenario.ID,
		"scenario_name", scenario.Name,
		"passed", outcome.Passed,
		"steps_passed", passed,
		"steps_failed", failed,
		"steps_errored", errored,
		"steps_skipped", skipped,
		"duration_ms", outcome.DurationMs)
	return outcome
}

// missingDeclared reports a referenced variable that an earlier step
// declared as an extraction but never actually supplied. References to
// names no step declares are left to the resolver, which reports them as
// unresolved placeholders.
func missingDeclared(cs *CompiledStep, ec *ExecutionContext, declared map[string]int, index int) (string, bool) {
	for _, name := range cs.References {
		if ec.Has(name) {
			continue
		}
		if at, ok := declared[name]; ok && at < index {
			return name, true
		}
	}
	return "", false
}

func skippedResult(step models.Step, reason string) models.StepResult {
	now := time.Now()
	return models.StepResult{
		StepIndex:     step.Index,
		Name:          step.Name,
		Method:        step.Method,
		Endpoint:      step.Endpoint,
		Status:        models.StepStatusSkipped,
		FailureReason: reason,
		StartedAt:     now,
		FinishedAt:    now,
	}
}

func failedResult(step models.Step, kind models.ErrorKind, reason string) models.StepResult {
	now := time.Now()
	return models.StepResult{
		StepIndex:     step.Index,
		Name:          step.Name,
		Method:        step.Method,
		Endpoint:      step.Endpoint,
		Status:        models.StepStatusFailed,
		ErrorKind:     models.KindPtr(kind),
		FailureReason: reason,
		StartedAt:     now,
		FinishedAt:    now,
	}
}
