package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HTTPMethod is the verb of a step. Only the values listed in AllHTTPMethods
// are accepted by the verifier.
type HTTPMethod string

const (
	MethodGet     HTTPMethod = "GET"
	MethodPost    HTTPMethod = "POST"
	MethodPut     HTTPMethod = "PUT"
	MethodPatch   HTTPMethod = "PATCH"
	MethodDelete  HTTPMethod = "DELETE"
	MethodHead    HTTPMethod = "HEAD"
	MethodOptions HTTPMethod = "OPTIONS"
)

// AllHTTPMethods lists the accepted step verbs.
var AllHTTPMethods = []HTTPMethod{
	MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodHead, MethodOptions,
}

// Valid reports whether m is an accepted verb.
func (m HTTPMethod) Valid() bool {
	for _, v := range AllHTTPMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Expectation declares what a step must observe. Status accepts an integer
// or a predicate string (">n", "!=n", ...); bodyFields and headers map
// locators / header names to assertion tokens.
type Expectation struct {
	Status     StatusExpectation `json:"status"`
	BodyFields map[string]string `json:"bodyFields,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// StatusExpectation holds the raw status expectation. The wire form may be
// a JSON number or a predicate string; both normalize to the string form
// ("201", ">=200", ...).
type StatusExpectation string

// UnmarshalJSON accepts both int and string status expectations.
func (s *StatusExpectation) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StatusExpectation(str)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("status expectation must be an integer or predicate string: %w", err)
	}
	*s = StatusExpectation(fmt.Sprintf("%d", n))
	return nil
}

// MarshalJSON emits the normalized string form.
func (s StatusExpectation) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// Step is one HTTP action inside a scenario. Body is kept as raw JSON so
// object bodies survive canonicalization untouched; string bodies stay
// strings.
type Step struct {
	Index       int               `json:"index"`
	Name        string            `json:"name"`
	Method      HTTPMethod        `json:"method"`
	Endpoint    string            `json:"endpoint"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        json.RawMessage   `json:"body,omitempty"`
	Expected    Expectation       `json:"expected"`
	Extractions map[string]string `json:"extractions,omitempty"`
}

// BodyString renders the step body as the template string handed to the
// placeholder resolver: JSON strings are unquoted, objects/arrays keep
// their JSON text, absent bodies are empty.
func (s *Step) BodyString() string {
	if len(s.Body) == 0 {
		return ""
	}
	trimmed := bytes.TrimSpace(s.Body)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return ""
	}
	if trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(trimmed, &str); err == nil {
			return str
		}
	}
	return string(trimmed)
}
