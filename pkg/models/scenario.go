package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ScenarioSource records where a scenario came from.
type ScenarioSource string

const (
	ScenarioSourceAIGenerated ScenarioSource = "ai_generated"
	ScenarioSourceManual      ScenarioSource = "manual"
	ScenarioSourceImported    ScenarioSource = "imported"
	ScenarioSourceReplayed    ScenarioSource = "replayed"
	// ScenarioSourceFallback marks synthetic scenarios produced when the AI
	// provider was unavailable and the resilience fallback engaged.
	ScenarioSourceFallback ScenarioSource = "fallback"
)

// ScenarioStatus is the verification lifecycle of a scenario.
type ScenarioStatus string

const (
	ScenarioStatusPending  ScenarioStatus = "pending"
	ScenarioStatusReady    ScenarioStatus = "ready"
	ScenarioStatusInvalid  ScenarioStatus = "invalid"
	ScenarioStatusDisabled ScenarioStatus = "disabled"
)

// Scenario is one ordered test case. The JSON form is the stable contract
// between AI generation and execution.
type Scenario struct {
	ID          string         `json:"id,omitempty"`
	RunID       string         `json:"runId,omitempty"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Source      ScenarioSource `json:"source,omitempty"`
	OperationID string         `json:"operationId,omitempty"`
	Steps       []Step         `json:"steps"`
	Status      ScenarioStatus `json:"status,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Priority    int            `json:"priority,omitempty"`
	Version     int            `json:"version,omitempty"`
}

// DecodeScenarioDocument parses an AI response document. The top level may
// be a single scenario object or an array of scenarios.
func DecodeScenarioDocument(data []byte) ([]Scenario, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty scenario document")
	}
	switch trimmed[0] {
	case '[':
		var list []Scenario
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("scenario array does not parse: %w", err)
		}
		return list, nil
	case '{':
		var one Scenario
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, fmt.Errorf("scenario object does not parse: %w", err)
		}
		return []Scenario{one}, nil
	default:
		return nil, fmt.Errorf("scenario document must be an object or array")
	}
}

// NormalizeStepIndices rewrites step indices to the contiguous 0..n-1 form
// required by the contract. Step order is preserved.
func (s *Scenario) NormalizeStepIndices() {
	for i := range s.Steps {
		s.Steps[i].Index = i
	}
}

// StepsHash is a stable digest of the scenario's step structure, used when
// callers need to compare scenarios regardless of id or name.
func (s *Scenario) StepsHash() (string, error) {
	clone := Scenario{Steps: s.Steps}
	raw, err := json.Marshal(clone.Steps)
	if err != nil {
		return "", fmt.Errorf("marshal steps: %w", err)
	}
	return SHA256Hex(raw), nil
}
