package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
)

// GenerateInput carries everything a generation call needs.
type GenerateInput struct {
	Requirement string
	Doc         *openapi.Document
	// Focus narrows the prompt to a subset of the document's operations.
	// Verification always runs against the full document, so focused
	// scenarios may still chain steps across other spec operations.
	Focus   []openapi.Operation
	BaseURL string
	// Environment exposes variable NAMES to the prompt; values stay out.
	Environment map[string]string
	Config      models.RunConfig
}

// VerifyAttempt records one generate-verify round for the journal.
type VerifyAttempt struct {
	Attempt    int              `json:"attempt"`
	OK         bool             `json:"ok"`
	Kind       models.ErrorKind `json:"kind,omitempty"`
	Violations []string         `json:"violations,omitempty"`
	Raw        string           `json:"-"`
}

// GenerationResult is a verified scenario set plus provenance.
type GenerationResult struct {
	Scenarios    []models.Scenario
	Attempts     []VerifyAttempt
	RawResponse  string
	Model        string
	InputTokens  int
	OutputTokens int
}

// GenerationError reports that every verification attempt failed. Kind is
// the first failed check of the final attempt.
type GenerationError struct {
	Kind       models.ErrorKind
	Attempts   []VerifyAttempt
	Violations []string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("scenario generation failed after %d attempts (%s): %s",
		len(e.Attempts), e.Kind, strings.Join(e.Violations, "; "))
}

// Generator drives the generate-verify-correct loop against a completion
// provider.
type Generator struct {
	client Client
	logger *slog.Logger
}

// NewGenerator wires a generator. A nil logger falls back to slog.Default.
func NewGenerator(client Client, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{client: client, logger: logger}
}

// Generate produces a verified scenario set. Rejected documents are sent
// back to the provider with corrective hints up to the configured retry
// budget. Provider failures return unwrapped so the caller's resilience
// policy decides; verification exhaustion returns a *GenerationError.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (*GenerationResult, error) {
	verifier := NewVerifier(LimitsFromConfig(in.Config))
	system, user := BuildGenerationPrompt(in)

	result := &GenerationResult{}
	maxAttempts := in.Config.AIVerifyRetries + 1
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		completion, err := g.client.Complete(ctx, CompletionRequest{System: system, User: user})
		if err != nil {
			return nil, fmt.Errorf("completion attempt %d: %w", attempt, err)
		}
		if completion.Model != "" {
			result.Model = completion.Model
		}
		result.InputTokens += completion.InputTokens
		result.OutputTokens += completion.OutputTokens

		scenarios, report := g.decodeAndVerify(verifier, in.Doc, completion.Content)
		va := VerifyAttempt{
			Attempt:    attempt,
			OK:         report.OK,
			Violations: report.Violations,
			Raw:        completion.Content,
		}
		if !report.OK {
			va.Kind = report.FailedKind
		}
		result.Attempts = append(result.Attempts, va)

		if report.OK {
			for i := range scenarios {
				scenarios[i].Source = models.ScenarioSourceAIGenerated
				scenarios[i].Status = models.ScenarioStatusReady
				if scenarios[i].Version == 0 {
					scenarios[i].Version = 1
				}
			}
			result.Scenarios = scenarios
			result.RawResponse = completion.Content
			g.logger.Info("scenario generation verified",
				"attempt", attempt,
				"scenarios", len(scenarios))
			return result, nil
		}

		g.logger.Warn("scenario verification failed",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"kind", string(report.FailedKind),
			"violations", len(report.Violations))
		if attempt < maxAttempts {
			user = BuildCorrectionPrompt(completion.Content, report.Violations)
		}
	}

	last := result.Attempts[len(result.Attempts)-1]
	return nil, &GenerationError{
		Kind:       last.Kind,
		Attempts:   result.Attempts,
		Violations: last.Violations,
	}
}

// decodeAndVerify turns raw completion content into verified scenarios.
// Extraction and decode failures are reported as schema violations so the
// correction loop can recover from malformed output.
func (g *Generator) decodeAndVerify(verifier *Verifier, doc *openapi.Document, content string) ([]models.Scenario, VerifyReport) {
	raw, err := ExtractJSON(content)
	if err != nil {
		return nil, schemaFailure(fmt.Sprintf("response is not a JSON document: %v", err))
	}
	scenarios, err := models.DecodeScenarioDocument(raw)
	if err != nil {
		return nil, schemaFailure(fmt.Sprintf("document does not decode: %v", err))
	}
	for i := range scenarios {
		scenarios[i].NormalizeStepIndices()
	}
	return scenarios, verifier.Verify(scenarios, doc)
}

func schemaFailure(violation string) VerifyReport {
	violation = string(CheckSchema) + ": " + violation
	return VerifyReport{
		Checks: []CheckResult{{
			Name:       CheckSchema,
			OK:         false,
			Violations: []string{violation},
		}},
		OK:         false,
		FailedKind: models.ErrKindAISchema,
		Violations: []string{violation},
	}
}
