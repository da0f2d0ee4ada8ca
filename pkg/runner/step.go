package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/qawave/qawave/pkg/assertion"
	"github.com/qawave/qawave/pkg/models"
)

const (
	retryBaseDelay  = 100 * time.Millisecond
	retryMultiplier = 2
	retryJitter     = 0.2

	// DefaultBodyTruncateBytes caps the stored response body copy. The
	// body digest always covers the full body.
	DefaultBodyTruncateBytes = 64 * 1024
)

// Policy bundles the per-run knobs the step loop consults.
type Policy struct {
	StepTimeout        time.Duration
	MaxRetries         int
	StopOnFirstFailure bool
	BodyTruncateBytes  int
}

// PolicyFromConfig derives the execution policy from a run configuration.
func PolicyFromConfig(cfg models.RunConfig) Policy {
	return Policy{
		StepTimeout:        time.Duration(cfg.StepTimeoutMs) * time.Millisecond,
		MaxRetries:         cfg.MaxRetries,
		StopOnFirstFailure: cfg.StopOnFailure(),
		BodyTruncateBytes:  DefaultBodyTruncateBytes,
	}
}

// CompiledExtraction pairs an extraction variable with its parsed locator.
// A nil locator records a declaration whose path failed to parse; it
// extracts nothing.
type CompiledExtraction struct {
	Name    string
	Locator *assertion.Locator
}

// CompiledStep is a step with its expectation tokens and extraction paths
// parsed once at scenario load.
type CompiledStep struct {
	Step        models.Step
	Expectation *assertion.Compiled
	Extractions []CompiledExtraction
	// References lists the distinct placeholder names the step uses
	// anywhere in its templates and assertion tokens.
	References []string
}

// CompileStep parses expectation tokens and extraction paths ahead of
// execution. Invalid tokens surface later as failed assertions; invalid
// extraction paths yield no value.
func CompileStep(step models.Step) *CompiledStep {
	cs := &CompiledStep{
		Step:        step,
		Expectation: assertion.Compile(step.Expected),
		References:  models.StepPlaceholderNames(&step),
	}
	names := make([]string, 0, len(step.Extractions))
	for name := range step.Extractions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		loc, err := assertion.ParseLocator(step.Extractions[name])
		if err != nil {
			loc = nil
		}
		cs.Extractions = append(cs.Extractions, CompiledExtraction{Name: name, Locator: loc})
	}
	return cs
}

// StepExecutor dispatches compiled steps against the system under test. It
// is stateless across steps; mutable state lives in the ExecutionContext.
type StepExecutor struct {
	client Doer
	guard  *TargetGuard
	logger *slog.Logger
}

// NewStepExecutor wires a step executor. A nil logger falls back to
// slog.Default.
func NewStepExecutor(client Doer, guard *TargetGuard, logger *slog.Logger) *StepExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &StepExecutor{client: client, guard: guard, logger: logger}
}

// Execute runs one step to completion: resolve placeholders, guard the
// target, dispatch with retries, extract, evaluate. Unresolved placeholders
// and guard rejections fail the step without dispatch; transport failures
// that survive all retries produce an errored result.
func (e *StepExecutor) Execute(ctx context.Context, cs *CompiledStep, ec *ExecutionContext, baseURL string, policy Policy) models.StepResult {
	step := cs.Step
	started := time.Now()
	result := models.StepResult{
		StepIndex: step.Index,
		Name:      step.Name,
		Method:    step.Method,
		Endpoint:  step.Endpoint,
		StartedAt: started,
	}
	finish := func(status models.StepStatus) models.StepResult {
		result.Status = status
		result.FinishedAt = time.Now()
		result.DurationMs = result.FinishedAt.Sub(started).Milliseconds()
		return result
	}

	endpoint, headers, body, unresolved := resolveRequest(step, ec)
	if len(unresolved) > 0 {
		result.Unresolved = unresolved
		result.ErrorKind = models.KindPtr(models.ErrKindPlaceholderUnresolved)
		result.FailureReason = "unresolved placeholders: " + strings.Join(unresolved, ", ")
		return finish(models.StepStatusFailed)
	}

	target := JoinBaseURL(baseURL, endpoint)
	result.Endpoint = target

	if err := e.guard.CheckURL(ctx, target); err != nil {
		result.ErrorKind = models.KindPtr(models.ErrKindSSRFBlocked)
		result.FailureReason = err.Error()
		return finish(models.StepStatusFailed)
	}

	req := &HTTPRequest{Method: step.Method, URL: target, Headers: headers, Body: body}
	resp, attempts, kind, err := e.send(ctx, req, policy)
	result.Attempts = attempts
	if err != nil {
		result.ErrorKind = models.KindPtr(kind)
		result.FailureReason = err.Error()
		return finish(models.StepStatusErrored)
	}

	obs := assertion.NewObservation(resp.StatusCode, resp.Headers, resp.Body)
	result.ActualStatusCode = resp.StatusCode
	result.ActualHeaders = resp.Headers
	result.BodyDigest = models.SHA256Hex(resp.Body)
	result.ActualBody = truncateBody(resp.Body, policy.BodyTruncateBytes)
	result.Extracted = extract(cs, obs)

	passed, checks := cs.Expectation.Evaluate(obs, ec.Lookup)
	result.AssertionResults = checks
	if !passed {
		result.ErrorKind = models.KindPtr(models.ErrKindAssertion)
		result.FailureReason = summarizeFailures(checks)
		return finish(models.StepStatusFailed)
	}
	return finish(models.StepStatusPassed)
}

// resolveRequest substitutes context variables into the step templates.
// Header keys are walked in sorted order so the unresolved list is stable.
func resolveRequest(step models.Step, ec *ExecutionContext) (endpoint string, headers map[string]string, body []byte, unresolved []string) {
	var missing []string
	endpoint, miss := ec.Resolve(step.Endpoint)
	missing = append(missing, miss...)

	if len(step.Headers) > 0 {
		headers = make(map[string]string, len(step.Headers))
		keys := make([]string, 0, len(step.Headers))
		for k := range step.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v, miss := ec.Resolve(step.Headers[k])
			headers[k] = v
			missing = append(missing, miss...)
		}
	}

	if raw := step.BodyString(); raw != "" {
		resolved, miss := ec.Resolve(raw)
		body = []byte(resolved)
		missing = append(missing, miss...)
	}
	return endpoint, headers, body, dedupe(missing)
}

// send dispatches with retries on transient transport failures. Delays grow
// exponentially from the base with jitter; run cancellation aborts both
// in-flight calls and backoff sleeps.
func (e *StepExecutor) send(ctx context.Context, req *HTTPRequest, policy Policy) (*HTTPResponse, int, models.ErrorKind, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryBaseDelay
	bo.Multiplier = retryMultiplier
	bo.RandomizationFactor = retryJitter
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 0
	bo.Reset()

	attempts := 0
	for {
		attempts++
		attemptCtx, cancel := context.WithTimeout(ctx, policy.StepTimeout)
		resp, err := e.client.Do(attemptCtx, req)
		cancel()
		if err == nil {
			return resp, attempts, "", nil
		}
		if ctx.Err() != nil {
			kind := models.ErrKindCancelled
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				kind = models.ErrKindTimeout
			}
			return nil, attempts, kind, ctx.Err()
		}
		kind := ClassifyTransportError(err)
		if !RetryableTransport(kind) || attempts > policy.MaxRetries {
			return nil, attempts, kind, err
		}
		delay := bo.NextBackOff()
		e.logger.Warn("step dispatch failed, retrying",
			"method", req.Method,
			"url", req.URL,
			"attempt", attempts,
			"max_retries", policy.MaxRetries,
			"delay", delay,
			"error_kind", string(kind),
			"error", err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, attempts, models.ErrKindCancelled, ctx.Err()
		}
	}
}

func extract(cs *CompiledStep, obs *assertion.Observation) map[string]string {
	var out map[string]string
	for _, ex := range cs.Extractions {
		if ex.Locator == nil {
			continue
		}
		v, ok := obs.ResolveLocator(ex.Locator)
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[ex.Name] = assertion.Render(v)
	}
	return out
}

func summarizeFailures(checks []models.AssertionResult) string {
	failed := 0
	first := ""
	for _, c := range checks {
		if c.Passed {
			continue
		}
		failed++
		if first != "" {
			continue
		}
		if c.Reason != "" {
			first = fmt.Sprintf("%s: %s", c.Locator, c.Reason)
		} else {
			first = fmt.Sprintf("%s: expected %s, got %s", c.Locator, c.Expected, c.Actual)
		}
	}
	switch failed {
	case 0:
		return ""
	case 1:
		return first
	default:
		return fmt.Sprintf("%d assertions failed; first: %s", failed, first)
	}
}

// JoinBaseURL joins base and endpoint, normalizing duplicate slashes at the
// boundary. Absolute endpoints are returned unchanged.
func JoinBaseURL(base, endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	base = strings.TrimRight(base, "/")
	if endpoint == "" {
		return base
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return base + endpoint
}

func truncateBody(body []byte, limit int) string {
	if limit > 0 && len(body) > limit {
		return string(body[:limit])
	}
	return string(body)
}

func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
