package ai

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
)

const testAPISpec = `{
  "openapi": "3.0.3",
  "info": {"title": "User Service", "version": "1.0.0"},
  "paths": {
    "/users": {
      "get": {"operationId": "listUsers", "responses": {"200": {"description": "OK"}}},
      "post": {"operationId": "createUser", "responses": {"201": {"description": "Created"}}}
    },
    "/users/{id}": {
      "get": {"operationId": "getUser", "responses": {"200": {"description": "OK"}}}
    }
  }
}`

func testDocument(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.Parse(context.Background(), []byte(testAPISpec))
	require.NoError(t, err)
	return doc
}

func testLimits() VerifyLimits {
	return LimitsFromConfig(models.DefaultRunConfig())
}

const validScenarioDoc = `[
  {
    "name": "create and fetch user",
    "operationId": "createUser",
    "steps": [
      {
        "index": 0,
        "name": "create",
        "method": "POST",
        "endpoint": "/users",
        "body": {"email": "${random.email}"},
        "expected": {"status": 201, "bodyFields": {"$.id": "<any>"}},
        "extractions": {"userId": "$.id"}
      },
      {
        "index": 1,
        "name": "fetch",
        "method": "GET",
        "endpoint": "/users/${userId}",
        "expected": {"status": 200, "bodyFields": {"$.id": "${userId}"}}
      }
    ]
  }
]`

func decodeScenarios(t *testing.T, doc string) []models.Scenario {
	t.Helper()
	scenarios, err := models.DecodeScenarioDocument([]byte(doc))
	require.NoError(t, err)
	return scenarios
}

func TestVerifierAcceptsValidDocument(t *testing.T) {
	report := NewVerifier(testLimits()).Verify(decodeScenarios(t, validScenarioDoc), testDocument(t))

	require.True(t, report.OK, "violations: %v", report.Violations)
	require.Len(t, report.Checks, 4)
	for _, check := range report.Checks {
		assert.True(t, check.OK, "check %s: %v", check.Name, check.Violations)
	}
	assert.Empty(t, report.FailedKind)
}

func TestVerifierSchemaViolations(t *testing.T) {
	scenarios := []models.Scenario{{
		Name: "",
		Steps: []models.Step{{
			Method:   "FETCH",
			Endpoint: "",
			Expected: models.Expectation{
				Status:     "",
				BodyFields: map[string]string{"$.[": "regex:["},
			},
			Extractions: map[string]string{"x": "$.["},
		}},
	}}

	report := NewVerifier(testLimits()).Verify(scenarios, testDocument(t))

	require.False(t, report.OK)
	assert.Equal(t, models.ErrKindAISchema, report.FailedKind)
	joined := strings.Join(report.Violations, "\n")
	assert.Contains(t, joined, "has no name")
	assert.Contains(t, joined, "invalid method")
	assert.Contains(t, joined, "empty endpoint")
	assert.Contains(t, joined, "expected.status")
	assert.Contains(t, joined, "does not parse")
}

func TestVerifierAlignmentViolations(t *testing.T) {
	scenarios := []models.Scenario{{
		Name:        "wrong targets",
		OperationID: "deleteEverything",
		Steps: []models.Step{
			{Method: models.MethodGet, Endpoint: "/orders/1", Expected: models.Expectation{Status: "200"}},
			{Method: models.MethodDelete, Endpoint: "/users/1", Expected: models.Expectation{Status: "204"}},
		},
	}}

	report := NewVerifier(testLimits()).Verify(scenarios, testDocument(t))

	require.False(t, report.OK)
	assert.Equal(t, models.ErrKindAIAlignment, report.FailedKind)
	joined := strings.Join(report.Violations, "\n")
	assert.Contains(t, joined, "deleteEverything")
	assert.Contains(t, joined, "/orders/1")
	assert.Contains(t, joined, "DELETE /users/1")
}

func TestVerifierPlaceholderViolations(t *testing.T) {
	scenarios := []models.Scenario{{
		Name: "dangling references",
		Steps: []models.Step{
			{
				Method:   models.MethodGet,
				Endpoint: "/users/${userId}",
				Headers:  map[string]string{"Authorization": "Bearer ${env.TOKEN}"},
				Expected: models.Expectation{Status: "200"},
				// Own-step extraction must not satisfy its own reference.
				Extractions: map[string]string{"userId": "$.id"},
			},
			{
				Method:   models.MethodGet,
				Endpoint: "/users/${userId}",
				Expected: models.Expectation{Status: "200", BodyFields: map[string]string{"$.id": "${userId}"}},
			},
		},
	}}

	report := NewVerifier(testLimits()).Verify(scenarios, testDocument(t))

	require.False(t, report.OK)
	assert.Equal(t, models.ErrKindAIPlaceholder, report.FailedKind)
	joined := strings.Join(report.Violations, "\n")
	assert.Contains(t, joined, "step 0 references ${userId}")
	// env.TOKEN is legal and the second step's references are satisfied.
	assert.NotContains(t, joined, "env.TOKEN")
	assert.NotContains(t, joined, "step 1")
}

func TestVerifierShapeViolations(t *testing.T) {
	limits := testLimits()
	limits.MaxScenarios = 1
	limits.MaxStepsPerScenario = 1
	limits.MaxBodyBytes = 8
	limits.MaxEndpointLength = 10

	bigBody, _ := json.Marshal(map[string]string{"k": strings.Repeat("v", 64)})
	scenarios := []models.Scenario{
		{
			Name: "first",
			Steps: []models.Step{
				{Method: models.MethodGet, Endpoint: "/users", Expected: models.Expectation{Status: "200"}},
				{Method: models.MethodPost, Endpoint: "/users", Body: bigBody, Expected: models.Expectation{Status: "201"}},
			},
		},
		{
			Name: "second",
			Steps: []models.Step{
				{Method: models.MethodGet, Endpoint: "/users/{id}/friends", Expected: models.Expectation{Status: "200"}},
			},
		},
	}

	report := NewVerifier(limits).Verify(scenarios, nil)

	require.False(t, report.OK)
	assert.Equal(t, models.ErrKindAIShape, report.FailedKind)
	joined := strings.Join(report.Violations, "\n")
	assert.Contains(t, joined, "2 scenarios, limit is 1")
	assert.Contains(t, joined, "2 steps, limit is 1")
	assert.Contains(t, joined, "body is")
	assert.Contains(t, joined, "endpoint is")
}

func TestVerifierFirstFailedCheckDeterminesKind(t *testing.T) {
	// Both a schema violation (bad method) and a shape violation (too many
	// scenarios): the earlier check wins.
	limits := testLimits()
	limits.MaxScenarios = 1
	scenarios := []models.Scenario{
		{Name: "a", Steps: []models.Step{{Method: "FETCH", Endpoint: "/users", Expected: models.Expectation{Status: "200"}}}},
		{Name: "b", Steps: []models.Step{{Method: models.MethodGet, Endpoint: "/users", Expected: models.Expectation{Status: "200"}}}},
	}

	report := NewVerifier(limits).Verify(scenarios, nil)

	require.False(t, report.OK)
	assert.Equal(t, models.ErrKindAISchema, report.FailedKind)

	var names []CheckName
	for _, check := range report.Checks {
		if !check.OK {
			names = append(names, check.Name)
		}
	}
	assert.Equal(t, []CheckName{CheckSchema, CheckShape}, names)
}

func TestVerifierEmptyDocument(t *testing.T) {
	report := NewVerifier(testLimits()).Verify(nil, testDocument(t))
	require.False(t, report.OK)
	assert.Equal(t, models.ErrKindAISchema, report.FailedKind)
}

func TestFallbackScenarios(t *testing.T) {
	doc := testDocument(t)
	scenarios := FallbackScenarios(doc)

	require.Len(t, scenarios, 1)
	sc := scenarios[0]
	assert.Equal(t, models.ScenarioSourceFallback, sc.Source)
	require.Len(t, sc.Steps, 1)
	// /users is the parameterless GET.
	assert.Equal(t, models.MethodGet, sc.Steps[0].Method)
	assert.Equal(t, "/users", sc.Steps[0].Endpoint)
	assert.Equal(t, "listUsers", sc.OperationID)

	// The synthetic scenario must itself pass verification.
	report := NewVerifier(testLimits()).Verify(scenarios, doc)
	assert.True(t, report.OK, "violations: %v", report.Violations)

	assert.Nil(t, FallbackScenarios(nil))
}
