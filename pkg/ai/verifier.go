package ai

import (
	"fmt"

	"github.com/qawave/qawave/pkg/assertion"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
)

// CheckName identifies one verifier check.
type CheckName string

const (
	CheckSchema       CheckName = "schema"
	CheckAlignment    CheckName = "alignment"
	CheckPlaceholders CheckName = "placeholders"
	CheckShape        CheckName = "shape"
)

// checkOrder fixes both evaluation order and which failure determines the
// reported error kind.
var checkOrder = []CheckName{CheckSchema, CheckAlignment, CheckPlaceholders, CheckShape}

var checkKinds = map[CheckName]models.ErrorKind{
	CheckSchema:       models.ErrKindAISchema,
	CheckAlignment:    models.ErrKindAIAlignment,
	CheckPlaceholders: models.ErrKindAIPlaceholder,
	CheckShape:        models.ErrKindAIShape,
}

// CheckResult is the outcome of one verifier check.
type CheckResult struct {
	Name       CheckName `json:"name"`
	OK         bool      `json:"ok"`
	Violations []string  `json:"violations,omitempty"`
}

// VerifyReport is the outcome of a full verification pass. All checks run
// even after a failure so the correction prompt can list every violation;
// FailedKind comes from the first failed check in order.
type VerifyReport struct {
	Checks     []CheckResult    `json:"checks"`
	OK         bool             `json:"ok"`
	FailedKind models.ErrorKind `json:"failed_kind,omitempty"`
	Violations []string         `json:"violations,omitempty"`
}

// VerifyLimits bounds the accepted document shape.
type VerifyLimits struct {
	MaxScenarios        int
	MaxStepsPerScenario int
	MaxBodyBytes        int
	MaxHeaders          int
	MaxEndpointLength   int
}

const (
	defaultMaxBodyBytes      = 1 << 20
	defaultMaxHeaders        = 64
	defaultMaxEndpointLength = 2048
)

// LimitsFromConfig derives shape limits from a run configuration.
func LimitsFromConfig(cfg models.RunConfig) VerifyLimits {
	return VerifyLimits{
		MaxScenarios:        cfg.ScenarioBudget(),
		MaxStepsPerScenario: cfg.MaxStepsPerScenario,
		MaxBodyBytes:        defaultMaxBodyBytes,
		MaxHeaders:          defaultMaxHeaders,
		MaxEndpointLength:   defaultMaxEndpointLength,
	}
}

// Verifier validates generated scenario documents against the contract,
// the spec document, and the shape limits.
type Verifier struct {
	limits VerifyLimits
}

// NewVerifier creates a verifier with the given limits.
func NewVerifier(limits VerifyLimits) *Verifier {
	return &Verifier{limits: limits}
}

// Verify runs all checks against the decoded scenarios.
func (v *Verifier) Verify(scenarios []models.Scenario, doc *openapi.Document) VerifyReport {
	results := map[CheckName][]string{
		CheckSchema:       v.checkSchema(scenarios),
		CheckAlignment:    v.checkAlignment(scenarios, doc),
		CheckPlaceholders: v.checkPlaceholders(scenarios),
		CheckShape:        v.checkShape(scenarios),
	}

	report := VerifyReport{OK: true}
	for _, name := range checkOrder {
		violations := results[name]
		report.Checks = append(report.Checks, CheckResult{
			Name:       name,
			OK:         len(violations) == 0,
			Violations: violations,
		})
		if len(violations) == 0 {
			continue
		}
		if report.OK {
			report.OK = false
			report.FailedKind = checkKinds[name]
		}
		for _, violation := range violations {
			report.Violations = append(report.Violations, fmt.Sprintf("%s: %s", name, violation))
		}
	}
	return report
}

// checkSchema validates the structural contract: names, methods, endpoints,
// expectations, and the parseability of every token and path.
func (v *Verifier) checkSchema(scenarios []models.Scenario) []string {
	var violations []string
	add := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	if len(scenarios) == 0 {
		add("document contains no scenarios")
		return violations
	}
	for si, sc := range scenarios {
		where := fmt.Sprintf("scenario %d (%q)", si, sc.Name)
		if sc.Name == "" {
			add("scenario %d has no name", si)
		}
		if len(sc.Steps) == 0 {
			add("%s has no steps", where)
			continue
		}
		for ti, step := range sc.Steps {
			at := fmt.Sprintf("%s step %d", where, ti)
			if !step.Method.Valid() {
				add("%s has invalid method %q", at, step.Method)
			}
			if step.Endpoint == "" {
				add("%s has an empty endpoint", at)
			}
			if step.Expected.Status == "" {
				add("%s is missing expected.status", at)
			} else if _, err := assertion.ParseToken(string(step.Expected.Status)); err != nil {
				add("%s expected.status %q does not parse: %v", at, step.Expected.Status, err)
			}
			for path, token := range step.Expected.BodyFields {
				if _, err := assertion.ParseLocator(path); err != nil {
					add("%s bodyFields path %q does not parse: %v", at, path, err)
				}
				if _, err := assertion.ParseToken(token); err != nil {
					add("%s bodyFields value %q does not parse: %v", at, token, err)
				}
			}
			for name, token := range step.Expected.Headers {
				if _, err := assertion.ParseToken(token); err != nil {
					add("%s header expectation %q=%q does not parse: %v", at, name, token, err)
				}
			}
			for name, path := range step.Extractions {
				if name == "" {
					add("%s has an extraction with an empty variable name", at)
				}
				if _, err := assertion.ParseLocator(path); err != nil {
					add("%s extraction %q path %q does not parse: %v", at, name, path, err)
				}
			}
		}
	}
	return violations
}

// checkAlignment requires every step to target an operation the spec
// actually defines.
func (v *Verifier) checkAlignment(scenarios []models.Scenario, doc *openapi.Document) []string {
	if doc == nil {
		return nil
	}
	operationIDs := make(map[string]bool, len(doc.Operations))
	for _, op := range doc.Operations {
		if op.OperationID != "" {
			operationIDs[op.OperationID] = true
		}
	}

	var violations []string
	for si, sc := range scenarios {
		if sc.OperationID != "" && !operationIDs[sc.OperationID] {
			violations = append(violations, fmt.Sprintf(
				"scenario %d (%q) names operationId %q which the spec does not define", si, sc.Name, sc.OperationID))
		}
		for ti, step := range sc.Steps {
			if step.Endpoint == "" || !step.Method.Valid() {
				continue // already a schema violation
			}
			if _, ok := doc.MatchOperation(step.Method, step.Endpoint); !ok {
				violations = append(violations, fmt.Sprintf(
					"scenario %d (%q) step %d targets %s %s which matches no spec operation",
					si, sc.Name, ti, step.Method, step.Endpoint))
			}
		}
	}
	return violations
}

// checkPlaceholders requires every ${var} reference to be satisfiable:
// an environment reference, a documented synthetic, or an extraction
// declared by a strictly earlier step of the same scenario.
func (v *Verifier) checkPlaceholders(scenarios []models.Scenario) []string {
	var violations []string
	for si, sc := range scenarios {
		declared := make(map[string]bool)
		for ti := range sc.Steps {
			step := sc.Steps[ti]
			for _, name := range models.StepPlaceholderNames(&step) {
				switch {
				case models.IsEnvPlaceholder(name):
				case models.IsSyntheticPlaceholder(name):
				case declared[name]:
				default:
					violations = append(violations, fmt.Sprintf(
						"scenario %d (%q) step %d references ${%s} which no earlier step extracts",
						si, sc.Name, ti, name))
				}
			}
			for name := range step.Extractions {
				declared[name] = true
			}
		}
	}
	return violations
}

// checkShape bounds the document size.
func (v *Verifier) checkShape(scenarios []models.Scenario) []string {
	var violations []string
	if v.limits.MaxScenarios > 0 && len(scenarios) > v.limits.MaxScenarios {
		violations = append(violations, fmt.Sprintf(
			"document has %d scenarios, limit is %d", len(scenarios), v.limits.MaxScenarios))
	}
	for si, sc := range scenarios {
		if v.limits.MaxStepsPerScenario > 0 && len(sc.Steps) > v.limits.MaxStepsPerScenario {
			violations = append(violations, fmt.Sprintf(
				"scenario %d (%q) has %d steps, limit is %d", si, sc.Name, len(sc.Steps), v.limits.MaxStepsPerScenario))
		}
		for ti, step := range sc.Steps {
			if v.limits.MaxBodyBytes > 0 && len(step.Body) > v.limits.MaxBodyBytes {
				violations = append(violations, fmt.Sprintf(
					"scenario %d (%q) step %d body is %d bytes, limit is %d", si, sc.Name, ti, len(step.Body), v.limits.MaxBodyBytes))
			}
			if v.limits.MaxHeaders > 0 && len(step.Headers) > v.limits.MaxHeaders {
				violations = append(violations, fmt.Sprintf(
					"scenario %d (%q) step %d has %d headers, limit is %d", si, sc.Name, ti, len(step.Headers), v.limits.MaxHeaders))
			}
			if v.limits.MaxEndpointLength > 0 && len(step.Endpoint) > v.limits.MaxEndpointLength {
				violations = append(violations, fmt.Sprintf(
					"scenario %d (%q) step %d endpoint is %d characters, limit is %d", si, sc.Name, ti, len(step.Endpoint), v.limits.MaxEndpointLength))
			}
		}
	}
	return violations
}
