package pipeline

import (
	"context"
	"sync"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
	"github.com/qawave/qawave/pkg/queue"
	"github.com/qawave/qawave/pkg/report"
)

// ────────────────────────────────────────────────────────────
// Execution stage
// ────────────────────────────────────────────────────────────

// executeScenarios drives the execution and evaluation stages shared by
// generated and replayed runs.
func (e *Executor) executeScenarios(ctx context.Context, sc *runScope, scenarios []models.Scenario) *queue.ExecutionResult {
	run := sc.run

	if r := e.mapCancellation(ctx, sc); r != nil {
		return r
	}

	// 1. Enter EXECUTION_IN_PROGRESS
	if _, err := e.runs.Transition(ctx, run.ID, models.RunStatusExecutionInProgress, models.AppendEventRequest{
		Type: models.EventExecutionStarted,
		Payload: map[string]any{
			"scenarioCount":   len(scenarios),
			"execConcurrency": sc.cfg.ExecConcurrency,
			"parallel":        sc.cfg.Parallel(),
		},
	}); err != nil {
		return e.reconcileTransitionFailure(sc, err)
	}

	// 2. Run the scenarios over the worker pool
	outcomes := e.runExecutionStage(ctx, sc, scenarios)

	if r := e.mapCancellation(ctx, sc); r != nil {
		return r
	}

	// 3. Close the stage
	passed, failed, errored := tallyOutcomes(outcomes)
	if _, err := e.runs.Transition(ctx, run.ID, models.RunStatusExecutionComplete, models.AppendEventRequest{
		Type: models.EventExecutionSuccess,
		Payload: map[string]any{
			"scenariosTotal":   len(outcomes),
			"scenariosPassed":  passed,
			"scenariosFailed":  failed,
			"scenariosErrored": errored,
		},
	}); err != nil {
		return e.reconcileTransitionFailure(sc, err)
	}

	// 4. QA evaluation stage
	return e.runEvaluationStage(ctx, sc, scenarios, outcomes)
}

// runExecutionStage fans the scenarios out over the execution workers and
// journals each completion serially. The result channel is the stage's
// backpressure window: workers block once the journal writer lags by more
// than four batches of outstanding outcomes.
//
// On cancellation workers finish the scenario they are on (the runner
// marks its remaining steps skipped) and stop pulling new ones, so
// unstarted scenarios never journal an EXECUTION_STARTED.
func (e *Executor) runExecutionStage(ctx context.Context, sc *runScope, scenarios []models.Scenario) []models.ScenarioOutcome {
	if len(scenarios) == 0 {
		return nil
	}

	workers := min(sc.cfg.ExecConcurrency, len(scenarios))
	if !sc.cfg.Parallel() {
		workers = 1
	}
	workCh := make(chan models.Scenario)
	resultCh := make(chan models.ScenarioOutcome, 4*sc.cfg.ExecConcurrency)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for scenario := range workCh {
				if ctx.Err() != nil {
					return
				}
				e.appendEvent(sc, models.AppendEventRequest{
					Type:       models.EventExecutionStarted,
					ScenarioID: scenario.ID,
					Payload: map[string]any{
						"name":  scenario.Name,
						"steps": len(scenario.Steps),
					},
				})
				resultCh <- e.executeScenario(ctx, sc, scenario)
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, scenario := range scenarios {
			select {
			case workCh <- scenario:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Collector: the only journal writer of the stage.
	outcomes := make([]models.ScenarioOutcome, 0, len(scenarios))
	for outcome := range resultCh {
		outcomes = append(outcomes, outcome)
		e.journalOutcome(sc, outcome)
	}
	return outcomes
}

// executeScenario runs one scenario and persists every step result as it
// is produced. Step persistence failures degrade the record, not the run.
func (e *Executor) executeScenario(ctx context.Context, sc *runScope, scenario models.Scenario) models.ScenarioOutcome {
	logger := sc.logger.With("scenario_id", scenario.ID, "scenario", scenario.Name)

	onStep := func(r models.StepResult) {
		// Assertions and extraction already saw the raw response; only
		// the stored record is scrubbed.
		e.sanitizer.SanitizeResult(&r)
		if _, err := sc.results.RecordStepResult(context.Background(), r); err != nil {
			logger.Warn("Pipeline: failed to record step result",
				"step_index", r.StepIndex,
				"error", err)
		}
	}

	outcome := sc.scenRun.Execute(ctx, &scenario, sc.run.BaseURL, sc.cfg.Environment, sc.policy, onStep)

	passed, failed, errored, skipped := outcome.StepCounts()
	logger.Info("Pipeline: scenario executed",
		"passed", outcome.Passed,
		"steps_passed", passed,
		"steps_failed", failed,
		"steps_errored", errored,
		"steps_skipped", skipped,
		"duration_ms", outcome.DurationMs)
	return outcome
}

// journalOutcome appends the per-scenario completion event.
func (e *Executor) journalOutcome(sc *runScope, outcome models.ScenarioOutcome) {
	passed, failed, errored, skipped := outcome.StepCounts()
	ev := models.AppendEventRequest{
		Type:       models.EventExecutionSuccess,
		ScenarioID: outcome.ScenarioID,
		Payload: map[string]any{
			"name":         outcome.Name,
			"stepsPassed":  passed,
			"stepsFailed":  failed,
			"stepsErrored": errored,
			"stepsSkipped": skipped,
			"durationMs":   outcome.DurationMs,
		},
	}
	if !outcome.Passed {
		ev.Type = models.EventExecutionFailed
		if reason, kind := firstFailure(outcome); reason != "" {
			ev.ErrorMessage = reason
			ev.ErrorKind = models.KindPtr(kind)
		}
	}
	e.appendEvent(sc, ev)
}

// firstFailure surfaces the first failed or errored step's reason.
func firstFailure(outcome models.ScenarioOutcome) (string, models.ErrorKind) {
	for _, r := range outcome.Steps {
		if r.Status == models.StepStatusFailed || r.Status == models.StepStatusErrored {
			kind := models.ErrKindAssertion
			if r.ErrorKind != nil {
				kind = *r.ErrorKind
			}
			return r.FailureReason, kind
		}
	}
	return "", ""
}

func tallyOutcomes(outcomes []models.ScenarioOutcome) (passed, failed, errored int) {
	for _, o := range outcomes {
		switch {
		case o.Passed:
			passed++
		case o.Errored:
			errored++
		default:
			failed++
		}
	}
	return passed, failed, errored
}

// ────────────────────────────────────────────────────────────
// QA evaluation stage
// ────────────────────────────────────────────────────────────

// runEvaluationStage computes coverage and the QA summary, then closes the
// run. Evaluation is fail-open: a coverage or summary persistence fault
// journals QA_EVAL_FAILED and the run still completes; the execution
// record stands on its own.
func (e *Executor) runEvaluationStage(ctx context.Context, sc *runScope, scenarios []models.Scenario, outcomes []models.ScenarioOutcome) *queue.ExecutionResult {
	run := sc.run

	if _, err := e.runs.Transition(ctx, run.ID, models.RunStatusQAEvalInProgress, models.AppendEventRequest{
		Type:    models.EventQAEvalStarted,
		Payload: map[string]any{"scenarioCount": len(outcomes)},
	}); err != nil {
		return e.reconcileTransitionFailure(sc, err)
	}

	coverage := report.BuildCoverage(run.ID, e.coverageDoc(sc), outcomes)
	if _, err := sc.reports.SaveCoverage(ctx, coverage); err != nil {
		sc.logger.Error("Pipeline: failed to persist coverage", "error", err)
		e.appendEvent(sc, models.AppendEventRequest{
			Type:         models.EventQAEvalFailed,
			ErrorMessage: "coverage snapshot not persisted: " + err.Error(),
			ErrorKind:    models.KindPtr(models.ErrKindInternal),
		})
	}

	summary := report.NewSummaryBuilder(e.aiClient, sc.logger).Build(ctx, report.SummaryInput{
		RunID:             run.ID,
		Scenarios:         scenarios,
		Outcomes:          outcomes,
		Coverage:          coverage,
		CoverageThreshold: sc.cfg.CoverageThreshold,
	})
	if _, err := sc.reports.SaveSummary(ctx, summary); err != nil {
		sc.logger.Error("Pipeline: failed to persist summary", "error", err)
		e.appendEvent(sc, models.AppendEventRequest{
			Type:         models.EventQAEvalFailed,
			ErrorMessage: "qa summary not persisted: " + err.Error(),
			ErrorKind:    models.KindPtr(models.ErrKindInternal),
		})
	}

	if r := e.mapCancellation(ctx, sc); r != nil {
		return r
	}

	if _, err := e.runs.Transition(ctx, run.ID, models.RunStatusQAEvalDone, models.AppendEventRequest{
		Type: models.EventQAEvalDone,
		Payload: map[string]any{
			"verdict":         string(summary.OverallVerdict),
			"coveragePercent": coverage.CoveragePercent(),
			"qualityScore":    summary.QualityScore,
			"narrativeSource": string(summary.NarrativeSource),
		},
	}); err != nil {
		return e.reconcileTransitionFailure(sc, err)
	}

	// 5. Terminal COMPLETE
	final, err := e.runs.Transition(ctx, run.ID, models.RunStatusComplete, models.AppendEventRequest{
		Type: models.EventComplete,
		Payload: map[string]any{
			"verdict":         string(summary.OverallVerdict),
			"scenariosPassed": summary.PassedScenarios,
			"scenariosFailed": summary.FailedScenarios,
		},
	})
	if err != nil {
		return e.reconcileTransitionFailure(sc, err)
	}

	sc.logger.Info("Pipeline: run complete",
		"verdict", summary.OverallVerdict,
		"coverage_percent", coverage.CoveragePercent(),
		"quality_score", summary.QualityScore,
		"duration_ms", deref64(final.DurationMs))
	return &queue.ExecutionResult{Status: models.RunStatusComplete}
}

// coverageDoc trims the spec document to the operations that actually
// entered generation, so the denominator matches the enumeration budget.
// Replayed runs have no document and report empty coverage.
func (e *Executor) coverageDoc(sc *runScope) *openapi.Document {
	if sc.doc == nil {
		return nil
	}
	trimmed := *sc.doc
	trimmed.Operations = sc.doc.Operations[:sc.enumerated]
	return &trimmed
}

func deref64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
