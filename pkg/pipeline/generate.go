package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/pkg/ai"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
	"github.com/qawave/qawave/pkg/payload"
	"github.com/qawave/qawave/pkg/services"
)

// ────────────────────────────────────────────────────────────
// Spec fetch stage
// ────────────────────────────────────────────────────────────

// fetchSpec loads and enumerates the OpenAPI document, then journals the
// SPEC_FETCHED transition with the document fingerprint. The enumeration
// order is the document's own stable ordering; the scenario budget decides
// how many operations proceed to generation.
func (e *Executor) fetchSpec(ctx context.Context, sc *runScope) (*openapi.Document, error) {
	run := sc.run

	doc, err := e.fetcher.Fetch(ctx, models.SpecSourceKind(run.SpecSource), deref(run.SpecURL), deref(run.SpecInline))
	if err != nil {
		return nil, err
	}

	sc.enumerated = min(len(doc.Operations), sc.cfg.ScenarioBudget())
	sc.logger.Info("Pipeline: spec fetched",
		"spec_hash", doc.Hash,
		"title", doc.Title,
		"operations", len(doc.Operations),
		"enumerated", sc.enumerated)

	if _, err := e.runs.TransitionSpecFetched(ctx, run.ID, doc.Hash, models.AppendEventRequest{
		Type: models.EventSpecFetched,
		Payload: map[string]any{
			"specHash":      doc.Hash,
			"title":         doc.Title,
			"version":       doc.Version,
			"opsTotal":      len(doc.Operations),
			"opsEnumerated": sc.enumerated,
		},
	}); err != nil {
		return nil, fmt.Errorf("recording spec fetch: %w", err)
	}
	return doc, nil
}

// ────────────────────────────────────────────────────────────
// AI generation stage
// ────────────────────────────────────────────────────────────

// opGeneration is one operation's outcome leaving an AI worker. Exactly
// one of result, genErr, or fallback is populated; cause carries the
// provider fault behind a fallback.
type opGeneration struct {
	op       openapi.Operation
	result   *ai.GenerationResult
	genErr   *ai.GenerationError
	fallback []models.Scenario
	cause    error
}

// generationOutcome aggregates the stage for journaling and the verdict.
type generationOutcome struct {
	scenarios    []models.Scenario
	opsGenerated int
	opsFallback  int
	opsFailed    int
	attempts     int
	kinds        map[models.ErrorKind]int
}

func (g *generationOutcome) journalPayload() map[string]any {
	p := map[string]any{
		"scenarioCount": len(g.scenarios),
		"opsGenerated":  g.opsGenerated,
		"opsFailed":     g.opsFailed,
		"attempts":      g.attempts,
	}
	if g.opsFallback > 0 {
		p["opsFallback"] = g.opsFallback
	}
	if len(g.kinds) > 0 {
		kinds := make(map[string]int, len(g.kinds))
		for k, n := range g.kinds {
			kinds[string(k)] = n
		}
		p["failureKinds"] = kinds
	}
	return p
}

// failureKind picks the dominant failure kind for the AI_FAILED record.
func (g *generationOutcome) failureKind() models.ErrorKind {
	var top models.ErrorKind
	max := 0
	for k, n := range g.kinds {
		if n > max || (n == max && k < top) {
			top, max = k, n
		}
	}
	if top == "" {
		return models.ErrKindInternal
	}
	return top
}

// runGenerationStage fans the enumerated operations out over AI workers
// and drains their results serially. The drain loop is the only journal
// writer of the stage, so scenario persistence and SCENARIO_CREATED
// events arrive in a single ordered stream while generations overlap.
//
// The stage succeeds as long as at least one operation produced a
// scenario; per-operation failures degrade coverage instead of failing
// the run. A zero budget succeeds vacuously with no scenarios.
func (e *Executor) runGenerationStage(ctx context.Context, sc *runScope) (*generationOutcome, error) {
	out := &generationOutcome{kinds: make(map[models.ErrorKind]int)}
	ops := sc.doc.Operations[:sc.enumerated]
	if len(ops) == 0 {
		sc.logger.Info("Pipeline: no operations to generate", "budget", sc.cfg.ScenarioBudget())
		return out, nil
	}

	// 1. Pre-fill the bounded work queue and start the workers
	opsCh := make(chan openapi.Operation, len(ops))
	for _, op := range ops {
		opsCh <- op
	}
	close(opsCh)

	resultCh := make(chan opGeneration, 2*sc.cfg.AIConcurrency)
	workers := min(sc.cfg.AIConcurrency, len(ops))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for op := range opsCh {
				if ctx.Err() != nil {
					return
				}
				g := e.generateOperation(ctx, sc, op)
				select {
				case resultCh <- g:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// 2. Drain serially: persist scenarios, journal per-operation events
	var stageErr error
	names := make(map[string]int)
	for g := range resultCh {
		if stageErr != nil || ctx.Err() != nil {
			continue // keep draining so the workers can exit
		}
		if err := e.recordGeneration(ctx, sc, out, names, g); err != nil {
			stageErr = err
		}
	}

	switch {
	case ctx.Err() != nil:
		return out, ctx.Err()
	case stageErr != nil:
		return out, stageErr
	case len(out.scenarios) == 0 && out.opsFailed > 0:
		return out, fmt.Errorf("all %d enumerated operations failed generation", out.opsFailed)
	}

	sc.logger.Info("Pipeline: generation stage complete",
		"scenarios", len(out.scenarios),
		"ops_generated", out.opsGenerated,
		"ops_fallback", out.opsFallback,
		"ops_failed", out.opsFailed,
		"attempts", out.attempts)
	return out, nil
}

// generateOperation runs one operation through the protection envelope.
// Verification exhaustion surfaces as-is; provider unavailability (circuit
// open, bulkhead full, provider fault) degrades to a synthetic fallback
// scenario so the operation still gets executable coverage.
func (e *Executor) generateOperation(ctx context.Context, sc *runScope, op openapi.Operation) opGeneration {
	res, err := sc.aiGuard.Execute(ctx, func(ctx context.Context) (*ai.GenerationResult, error) {
		return sc.generator.Generate(ctx, ai.GenerateInput{
			Requirement: requirementFor(sc.run),
			Doc:         sc.doc,
			Focus:       []openapi.Operation{op},
			BaseURL:     sc.run.BaseURL,
			Environment: sc.cfg.Environment,
			Config:      sc.cfg,
		})
	})
	if err == nil {
		return opGeneration{op: op, result: res}
	}

	var genErr *ai.GenerationError
	if errors.As(err, &genErr) {
		return opGeneration{op: op, genErr: genErr}
	}
	if ctx.Err() != nil {
		return opGeneration{op: op, cause: ctx.Err()}
	}

	sc.logger.Warn("Pipeline: provider unavailable, falling back to synthetic scenario",
		"operation", op.Ref().Key(),
		"error", err)
	view := *sc.doc
	view.Operations = []openapi.Operation{op}
	return opGeneration{op: op, fallback: ai.FallbackScenarios(&view), cause: err}
}

// recordGeneration persists one operation's outcome and journals it.
func (e *Executor) recordGeneration(ctx context.Context, sc *runScope, out *generationOutcome, names map[string]int, g opGeneration) error {
	opKey := g.op.Ref().Key()

	switch {
	case g.genErr != nil:
		out.opsFailed++
		out.attempts += len(g.genErr.Attempts)
		out.kinds[g.genErr.Kind]++
		e.appendEvent(sc, models.AppendEventRequest{
			Type: models.EventScenarioGenerationFailed,
			Payload: map[string]any{
				"operation":  opKey,
				"kind":       string(g.genErr.Kind),
				"attempts":   len(g.genErr.Attempts),
				"violations": g.genErr.Violations,
			},
			ErrorMessage: fmt.Sprintf("generation failed for %s after %d attempts", opKey, len(g.genErr.Attempts)),
			ErrorKind:    models.KindPtr(g.genErr.Kind),
		})
		return nil

	case g.cause != nil && len(g.fallback) == 0:
		// Cancelled mid-generation; the stage exit handles the context.
		return nil
	}

	scenarios := g.fallback
	records := make([]services.ScenarioRecord, len(scenarios))
	if g.result != nil {
		scenarios = g.result.Scenarios
		records = make([]services.ScenarioRecord, len(scenarios))
		for i := range scenarios {
			records[i] = services.ScenarioRecord{
				Scenario:           scenarios[i],
				GenerationAttempts: len(g.result.Attempts),
				FailureKinds:       rejectedKinds(g.result.Attempts),
			}
		}
		out.opsGenerated++
		out.attempts += len(g.result.Attempts)
	} else {
		for i := range scenarios {
			scenarios[i].Source = models.ScenarioSourceFallback
			records[i] = services.ScenarioRecord{Scenario: scenarios[i]}
		}
		out.opsFallback++
		out.kinds[models.ErrKindAIProvider]++
	}

	rows, err := sc.scenarios.SaveScenarios(ctx, sc.run.ID, records)
	if err != nil {
		return fmt.Errorf("persisting scenarios for %s: %w", opKey, err)
	}

	for _, row := range rows {
		s := services.ScenarioFromEnt(row)
		if names[s.Name] > 0 {
			sc.logger.Warn("Pipeline: duplicate scenario name", "name", s.Name, "operation", opKey)
		}
		names[s.Name]++
		out.scenarios = append(out.scenarios, s)

		ev := models.AppendEventRequest{
			Type:       models.EventScenarioCreated,
			ScenarioID: s.ID,
			Payload: map[string]any{
				"name":      s.Name,
				"operation": opKey,
				"source":    string(s.Source),
				"steps":     len(s.Steps),
			},
		}
		if g.result != nil {
			ev.Payload["attempts"] = len(g.result.Attempts)
		} else {
			ev.Payload["cause"] = g.cause.Error()
		}
		e.appendEvent(sc, ev)
	}
	return nil
}

// persistPayload stores the canonical replay payload. Losing it degrades
// replay for this run only, so failures are logged and the run proceeds.
func (e *Executor) persistPayload(sc *runScope, scenarios []models.Scenario) {
	doc := &payload.Document{
		RunID:       sc.run.ID,
		Scenarios:   scenarios,
		Environment: sc.cfg.Environment,
		Config:      sc.cfg,
	}
	if sc.doc != nil {
		doc.SpecHash = sc.doc.Hash
	}
	if _, err := sc.payloads.SavePayload(context.Background(), doc); err != nil {
		sc.logger.Error("Pipeline: failed to persist replay payload", "error", err)
	}
}

// rejectedKinds lists the verifier kind of each rejected attempt.
func rejectedKinds(attempts []ai.VerifyAttempt) []string {
	var kinds []string
	for _, a := range attempts {
		if !a.OK {
			kinds = append(kinds, string(a.Kind))
		}
	}
	return kinds
}

// requirementFor picks the generation requirement text for a run.
func requirementFor(run *ent.QARun) string {
	if run.RequirementText != nil && *run.RequirementText != "" {
		return *run.RequirementText
	}
	if run.Description != nil && *run.Description != "" {
		return *run.Description
	}
	return run.Name
}
