package ai

import (
	"strings"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
)

// FallbackScenarios synthesizes the minimal scenario used when generation
// is unavailable and the resilience fallback engages: one smoke step
// against the most accessible operation. Parameterless GETs are preferred;
// template parameters are filled with "1". Returns nil when the document
// has no operations.
func FallbackScenarios(doc *openapi.Document) []models.Scenario {
	op, ok := pickFallbackOperation(doc)
	if !ok {
		return nil
	}
	scenario := models.Scenario{
		Name:        "fallback smoke test",
		Description: "Synthetic single-step check generated without AI assistance.",
		Source:      models.ScenarioSourceFallback,
		OperationID: op.OperationID,
		Status:      models.ScenarioStatusReady,
		Version:     1,
		Steps: []models.Step{{
			Index:    0,
			Name:     "smoke " + strings.ToLower(string(op.Method)) + " " + op.Path,
			Method:   op.Method,
			Endpoint: fillTemplateParams(op.Path),
			// Any HTTP response proves the endpoint is reachable.
			Expected: models.Expectation{Status: ">=100"},
		}},
	}
	return []models.Scenario{scenario}
}

func pickFallbackOperation(doc *openapi.Document) (openapi.Operation, bool) {
	if doc == nil || len(doc.Operations) == 0 {
		return openapi.Operation{}, false
	}
	for _, op := range doc.Operations {
		if op.Method == models.MethodGet && !strings.Contains(op.Path, "{") {
			return op, true
		}
	}
	for _, op := range doc.Operations {
		if op.Method == models.MethodGet {
			return op, true
		}
	}
	return doc.Operations[0], true
}

// fillTemplateParams substitutes every {param} segment with a literal "1"
// so the synthetic step is dispatchable.
func fillTemplateParams(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = "1"
		}
	}
	return strings.Join(segments, "/")
}
