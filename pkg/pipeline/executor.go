// Package pipeline drives claimed runs through the streaming execution
// stages (spec fetch, AI scenario generation, execution against the
// target system, QA evaluation) until the run reaches a terminal
// status. Every stage boundary goes through the run service so the
// status change and its journal event commit atomically.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/pkg/ai"
	"github.com/qawave/qawave/pkg/config"
	"github.com/qawave/qawave/pkg/masking"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
	"github.com/qawave/qawave/pkg/queue"
	"github.com/qawave/qawave/pkg/resilience"
	"github.com/qawave/qawave/pkg/runner"
	"github.com/qawave/qawave/pkg/services"
)

// Executor is the streaming pipeline orchestrator. It owns the entire run
// lifecycle after the claim: stages run inside the worker's run-scoped
// context and write results progressively, so the queue worker only has to
// verify a terminal state was reached.
type Executor struct {
	cfg       *config.Config
	dbClient  *ent.Client
	runs      *services.RunService
	fetcher   *openapi.Fetcher
	aiClient  ai.Client
	sanitizer *masking.Sanitizer
}

// NewExecutor creates the production pipeline executor.
func NewExecutor(cfg *config.Config, dbClient *ent.Client, runService *services.RunService, fetcher *openapi.Fetcher, aiClient ai.Client) *Executor {
	return &Executor{
		cfg:       cfg,
		dbClient:  dbClient,
		runs:      runService,
		fetcher:   fetcher,
		aiClient:  aiClient,
		sanitizer: masking.NewSanitizer(),
	}
}

// ────────────────────────────────────────────────────────────
// Run scope: everything one run's stages share
// ────────────────────────────────────────────────────────────

// runScope bundles the per-run state threaded through the stages: the
// effective config, persistence handles, the protection envelopes, and the
// run-scoped logger. Built once at Execute entry, torn down with the run.
type runScope struct {
	run    *ent.QARun
	cfg    models.RunConfig
	logger *slog.Logger

	scenarios *services.ScenarioService
	results   *services.ResultService
	payloads  *services.PayloadService
	reports   *services.ReportService

	generator *ai.Generator
	aiGuard   *resilience.Envelope[*ai.GenerationResult]
	scenRun   *runner.ScenarioExecutor
	policy    runner.Policy

	// doc is the parsed spec, populated by the fetch stage. Replayed runs
	// leave it nil: they execute the stored payload, not the document.
	doc *openapi.Document
	// enumerated is how many operations entered the generation stage.
	enumerated int
}

func (e *Executor) newRunScope(run *ent.QARun) *runScope {
	cfg := run.Config.WithDefaults()
	logger := slog.With("run_id", run.ID, "mode", run.Mode, "base_url", run.BaseURL)

	guard := runner.NewTargetGuard(cfg.AllowInternal)
	doer := e.guardedDoer(runner.NewSUTClient(), cfg, logger)
	steps := runner.NewStepExecutor(doer, guard, logger)

	policy := runner.PolicyFromConfig(cfg)
	if limit := e.cfg.Runs.BodyTruncateBytes; limit > 0 {
		policy.BodyTruncateBytes = limit
	}

	return &runScope{
		run:       run,
		cfg:       cfg,
		logger:    logger,
		scenarios: services.NewScenarioService(e.dbClient),
		results:   services.NewResultService(e.dbClient),
		payloads:  services.NewPayloadService(e.dbClient),
		reports:   services.NewReportService(e.dbClient),
		generator: ai.NewGenerator(e.aiClient, logger),
		aiGuard:   e.aiEnvelope(cfg, logger),
		scenRun:   runner.NewScenarioExecutor(steps, logger),
		policy:    policy,
	}
}

// aiEnvelope builds the per-run protection envelope for provider calls.
// The bulkhead width follows the run's AI concurrency; rate and breaker
// tuning come from the daemon config.
func (e *Executor) aiEnvelope(cfg models.RunConfig, logger *slog.Logger) *resilience.Envelope[*ai.GenerationResult] {
	rc := e.cfg.Resilience.AI
	return resilience.New[*ai.GenerationResult](resilience.Config{
		Name:                 "ai-provider",
		MaxConcurrent:        cfg.AIConcurrency,
		AcquireTimeout:       rc.AcquireTimeout,
		RatePerSecond:        rc.RatePerSecond,
		Burst:                rc.Burst,
		MaxRetries:           rc.MaxRetries,
		RetryBaseDelay:       rc.RetryBaseDelay,
		BreakerMinRequests:   rc.BreakerMinRequests,
		BreakerFailureRatio:  rc.BreakerFailureRatio,
		BreakerOpenTimeout:   rc.BreakerOpenTimeout,
		BreakerHalfOpenCalls: rc.BreakerHalfOpenCalls,
	},
		resilience.WithRetryClassifier[*ai.GenerationResult](aiRetryable),
		resilience.WithLogger[*ai.GenerationResult](logger))
}

// guardedDoer wraps the SUT transport in its own envelope. Retries stay
// with the step executor, which classifies transport faults and records
// attempt counts on the step result; the envelope contributes the
// bulkhead, rate limiter, and breaker.
func (e *Executor) guardedDoer(client runner.Doer, cfg models.RunConfig, logger *slog.Logger) runner.Doer {
	rc := e.cfg.Resilience.SUT
	env := resilience.New[*runner.HTTPResponse](resilience.Config{
		Name:                 "sut-http",
		MaxConcurrent:        cfg.ExecConcurrency,
		AcquireTimeout:       rc.AcquireTimeout,
		RatePerSecond:        rc.RatePerSecond,
		Burst:                rc.Burst,
		MaxRetries:           0,
		BreakerMinRequests:   rc.BreakerMinRequests,
		BreakerFailureRatio:  rc.BreakerFailureRatio,
		BreakerOpenTimeout:   rc.BreakerOpenTimeout,
		BreakerHalfOpenCalls: rc.BreakerHalfOpenCalls,
	}, resilience.WithLogger[*runner.HTTPResponse](logger))
	return &envelopedDoer{client: client, env: env}
}

// envelopedDoer funnels every SUT request through a shared envelope.
type envelopedDoer struct {
	client runner.Doer
	env    *resilience.Envelope[*runner.HTTPResponse]
}

func (d *envelopedDoer) Do(ctx context.Context, req *runner.HTTPRequest) (*runner.HTTPResponse, error) {
	return d.env.Execute(ctx, func(ctx context.Context) (*runner.HTTPResponse, error) {
		return d.client.Do(ctx, req)
	})
}

// aiRetryable keeps provider-level transient faults inside the envelope's
// retry budget and hands everything else straight back. Verification
// exhaustion is the generator's verdict, not a transport fault; retrying
// it would re-run the whole corrective loop.
func aiRetryable(err error) bool {
	var pe *ai.ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	return false
}

// ────────────────────────────────────────────────────────────
// Execute: main entry point (stage choreography)
// ────────────────────────────────────────────────────────────

// Execute runs one claimed run to a terminal state. The stages are:
// spec fetch (serial), AI generation (fan-out), execution (fan-out),
// QA evaluation (serial). Replayed runs skip generation and execute the
// stored payload. Execute itself journals every transition; the returned
// result only tells the worker what the pipeline concluded.
func (e *Executor) Execute(ctx context.Context, run *ent.QARun) *queue.ExecutionResult {
	sc := e.newRunScope(run)
	sc.logger.Info("Pipeline: starting run",
		"status", run.Status,
		"spec_source", run.SpecSource,
		"replay", run.ReplayOf != nil)

	// Replays re-execute the stored payload; the AI stage never runs.
	if run.ReplayOf != nil {
		return e.executeReplay(ctx, sc)
	}

	// 1. Fetch and enumerate the spec
	doc, err := e.fetchSpec(ctx, sc)
	if err != nil {
		if r := e.mapCancellation(ctx, sc); r != nil {
			return r
		}
		return e.failRun(sc, models.RunStatusFailedSpecFetch, models.AppendEventRequest{
			Type:         models.EventSpecFetchFailed,
			ErrorMessage: err.Error(),
			ErrorKind:    models.KindPtr(specFailureKind(err)),
		}, err)
	}
	sc.doc = doc

	if r := e.mapCancellation(ctx, sc); r != nil {
		return r
	}

	// 2. AI stage: one generation per enumerated operation
	gen, err := e.runGenerationStage(ctx, sc)
	if err != nil {
		if r := e.mapCancellation(ctx, sc); r != nil {
			return r
		}
		return e.failRun(sc, models.RunStatusFailedGeneration, models.AppendEventRequest{
			Type:         models.EventAIFailed,
			Payload:      gen.journalPayload(),
			ErrorMessage: err.Error(),
			ErrorKind:    models.KindPtr(gen.failureKind()),
		}, err)
	}

	// 3. Persist the canonical payload, then enter AI_SUCCESS
	e.persistPayload(sc, gen.scenarios)
	if _, err := e.runs.Transition(ctx, run.ID, models.RunStatusAISuccess, models.AppendEventRequest{
		Type:    models.EventAISuccess,
		Payload: gen.journalPayload(),
	}); err != nil {
		return e.reconcileTransitionFailure(sc, err)
	}

	// 4. Execution stage onwards is shared with replays
	return e.executeScenarios(ctx, sc, gen.scenarios)
}

// ────────────────────────────────────────────────────────────
// Replay: execute a stored payload, generation skipped
// ────────────────────────────────────────────────────────────

// executeReplay materializes the stored payload into scenario rows and
// enters the execution stage. SPEC_FETCHED passes vacuously (the hash is
// already known); the final SCENARIO_CREATED rides the AI_SUCCESS status
// change, so a replay journal never contains an AI_SUCCESS event.
func (e *Executor) executeReplay(ctx context.Context, sc *runScope) *queue.ExecutionResult {
	run := sc.run

	doc, err := sc.payloads.GetPayload(ctx, run.ID)
	if err != nil {
		return e.failRun(sc, models.RunStatusFailedExecution, models.AppendEventRequest{
			Type:         models.EventFailed,
			ErrorMessage: fmt.Sprintf("replay payload unavailable: %v", err),
			ErrorKind:    models.KindPtr(models.ErrKindInternal),
		}, err)
	}

	if _, err := e.runs.Transition(ctx, run.ID, models.RunStatusSpecFetched, models.AppendEventRequest{
		Type: models.EventSpecFetched,
		Payload: map[string]any{
			"replay":   true,
			"replayOf": deref(run.ReplayOf),
			"specHash": doc.SpecHash,
		},
	}); err != nil {
		return e.reconcileTransitionFailure(sc, err)
	}

	records := make([]services.ScenarioRecord, len(doc.Scenarios))
	for i, s := range doc.Scenarios {
		records[i] = services.ScenarioRecord{Scenario: s}
	}
	rows, err := sc.scenarios.SaveScenarios(ctx, run.ID, records)
	if err != nil {
		return e.failRun(sc, models.RunStatusFailedExecution, models.AppendEventRequest{
			Type:         models.EventFailed,
			ErrorMessage: fmt.Sprintf("replay scenarios not persisted: %v", err),
			ErrorKind:    models.KindPtr(models.ErrKindInternal),
		}, err)
	}

	scenarios := make([]models.Scenario, len(rows))
	for i, row := range rows {
		scenarios[i] = services.ScenarioFromEnt(row)
		ev := models.AppendEventRequest{
			Type:       models.EventScenarioCreated,
			ScenarioID: scenarios[i].ID,
			Payload: map[string]any{
				"name":   scenarios[i].Name,
				"source": string(models.ScenarioSourceReplayed),
			},
		}
		if i < len(rows)-1 {
			e.appendEvent(sc, ev)
			continue
		}
		if _, err := e.runs.Transition(ctx, run.ID, models.RunStatusAISuccess, ev); err != nil {
			return e.reconcileTransitionFailure(sc, err)
		}
	}
	if len(rows) == 0 {
		if _, err := e.runs.Transition(ctx, run.ID, models.RunStatusAISuccess, models.AppendEventRequest{
			Type:    models.EventScenarioCreated,
			Payload: map[string]any{"replay": true, "scenarioCount": 0},
		}); err != nil {
			return e.reconcileTransitionFailure(sc, err)
		}
	}

	sc.logger.Info("Pipeline: replay scenarios materialized",
		"replay_of", deref(run.ReplayOf),
		"scenario_count", len(scenarios))

	return e.executeScenarios(ctx, sc, scenarios)
}

// ────────────────────────────────────────────────────────────
// Terminal handling
// ────────────────────────────────────────────────────────────

// failRun journals a failure transition and shapes the worker result.
// Transition races (an external cancel landing first) are reconciled
// against the stored run instead of being reported as new failures.
func (e *Executor) failRun(sc *runScope, status models.RunStatus, ev models.AppendEventRequest, cause error) *queue.ExecutionResult {
	sc.logger.Warn("Pipeline: run failed",
		"terminal_status", status,
		"error_kind", kindString(ev.ErrorKind),
		"error", cause)

	if _, err := e.runs.Transition(context.Background(), sc.run.ID, status, ev); err != nil {
		if r := e.reconcileTransitionFailure(sc, err); r != nil {
			return r
		}
	}
	return &queue.ExecutionResult{Status: status, Error: cause}
}

// cancelRun drives the run to CANCELLED unless a terminal state already
// landed. The write uses a background context: the run context is the
// thing that was just cancelled.
func (e *Executor) cancelRun(sc *runScope, kind models.ErrorKind, reason string) *queue.ExecutionResult {
	sc.logger.Info("Pipeline: run cancelled", "reason", reason, "error_kind", string(kind))

	_, err := e.runs.Transition(context.Background(), sc.run.ID, models.RunStatusCancelled, models.AppendEventRequest{
		Type:         models.EventCancelled,
		Payload:      map[string]any{"reason": reason},
		ErrorMessage: reason,
		ErrorKind:    models.KindPtr(kind),
	})
	if err != nil && !terminalAlreadyReached(err) {
		sc.logger.Error("Pipeline: failed to journal cancellation", "error", err)
	}
	return &queue.ExecutionResult{Status: models.RunStatusCancelled, Error: errors.New(reason)}
}

// mapCancellation translates a tripped run context into the CANCELLED
// terminal, or returns nil while the context is still live.
func (e *Executor) mapCancellation(ctx context.Context, sc *runScope) *queue.ExecutionResult {
	if ctx.Err() == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return e.cancelRun(sc, models.ErrKindTimeout, "run deadline exceeded")
	}
	return e.cancelRun(sc, models.ErrKindCancelled, "run cancelled")
}

// reconcileTransitionFailure resolves a rejected transition against the
// stored run. A run that is already terminal (an external cancel won the
// race) is reported as-is; anything else is a real pipeline fault.
func (e *Executor) reconcileTransitionFailure(sc *runScope, cause error) *queue.ExecutionResult {
	run, err := e.runs.GetRun(context.Background(), sc.run.ID, false)
	if err == nil {
		if st := models.RunStatus(run.Status); st.Terminal() {
			sc.logger.Info("Pipeline: run reached terminal state externally", "status", st)
			return &queue.ExecutionResult{Status: st, Error: cause}
		}
	}
	sc.logger.Error("Pipeline: transition failed", "error", cause)
	return &queue.ExecutionResult{Status: models.RunStatusFailedExecution, Error: cause}
}

// appendEvent journals a plain event, best-effort. Append failures are
// logged and swallowed: losing a progress event must not abort the run.
// A terminal-run rejection is the expected tail of a cancellation race
// and only logged at debug.
func (e *Executor) appendEvent(sc *runScope, ev models.AppendEventRequest) {
	if _, err := e.runs.AppendEvent(context.Background(), sc.run.ID, ev); err != nil {
		if errors.Is(err, services.ErrRunTerminal) {
			sc.logger.Debug("Pipeline: event dropped, run already terminal", "event_type", ev.Type)
			return
		}
		sc.logger.Warn("Pipeline: failed to append event",
			"event_type", ev.Type,
			"scenario_id", ev.ScenarioID,
			"error", err)
	}
}

// ────────────────────────────────────────────────────────────
// Small mappers
// ────────────────────────────────────────────────────────────

// terminalAlreadyReached reports whether a transition was rejected only
// because the run is already terminal.
func terminalAlreadyReached(err error) bool {
	return errors.Is(err, services.ErrInvalidTransition)
}

// specFailureKind separates an invalid document from a fetch fault.
func specFailureKind(err error) models.ErrorKind {
	if errors.Is(err, openapi.ErrSpecInvalid) {
		return models.ErrKindSpecInvalid
	}
	return models.ErrKindSpecFetch
}

func kindString(k *models.ErrorKind) string {
	if k == nil {
		return ""
	}
	return string(*k)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
