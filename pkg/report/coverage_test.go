package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
)

const userAPISpec = `{
  "openapi": "3.0.3",
  "info": {"title": "User Service", "version": "1.0.0"},
  "paths": {
    "/users": {
      "get": {"operationId": "listUsers", "responses": {"200": {"description": "ok"}}},
      "post": {"operationId": "createUser", "responses": {"201": {"description": "created"}}}
    },
    "/users/{id}": {
      "get": {
        "operationId": "getUser",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func userAPIDoc(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.Parse(context.Background(), []byte(userAPISpec))
	require.NoError(t, err)
	return doc
}

func step(method, endpoint string, status models.StepStatus) models.StepResult {
	return models.StepResult{
		Method:   models.HTTPMethod(method),
		Endpoint: endpoint,
		Status:   status,
	}
}

func TestBuildCoverageClassifiesOperations(t *testing.T) {
	doc := userAPIDoc(t)
	outcomes := []models.ScenarioOutcome{
		{
			Passed: true,
			Steps: []models.StepResult{
				step("POST", "/users", models.StepStatusPassed),
				step("GET", "/users/42", models.StepStatusPassed),
			},
		},
		{
			Passed: false,
			Steps: []models.StepResult{
				step("GET", "/users", models.StepStatusFailed),
			},
		},
	}

	snap := BuildCoverage("run-1", doc, outcomes)

	assert.Equal(t, 3, snap.OpsTotal)
	assert.Equal(t, 2, snap.OpsCovered)
	assert.Equal(t, 1, snap.OpsFailed)
	assert.Empty(t, snap.UncoveredOps)
	assert.Equal(t, models.OpCovered, snap.PerOpStatus["POST /users"])
	assert.Equal(t, models.OpCovered, snap.PerOpStatus["GET /users/{id}"])
	assert.Equal(t, models.OpFailed, snap.PerOpStatus["GET /users"])
	assert.Equal(t, 1, snap.ScenariosPassed)
	assert.Equal(t, 1, snap.ScenariosFailed)
}

func TestBuildCoveragePassedStepOutranksFailed(t *testing.T) {
	doc := userAPIDoc(t)
	outcomes := []models.ScenarioOutcome{
		{Steps: []models.StepResult{step("GET", "/users", models.StepStatusFailed)}},
		{Passed: true, Steps: []models.StepResult{step("GET", "/users", models.StepStatusPassed)}},
	}

	snap := BuildCoverage("run-1", doc, outcomes)

	assert.Equal(t, models.OpCovered, snap.PerOpStatus["GET /users"])
	assert.Equal(t, 1, snap.OpsCovered)
}

func TestBuildCoverageSkippedStepsExerciseNothing(t *testing.T) {
	doc := userAPIDoc(t)
	outcomes := []models.ScenarioOutcome{
		{
			Steps: []models.StepResult{
				step("POST", "/users", models.StepStatusFailed),
				step("GET", "/users/1", models.StepStatusSkipped),
			},
		},
	}

	snap := BuildCoverage("run-1", doc, outcomes)

	assert.Equal(t, models.OpFailed, snap.PerOpStatus["POST /users"])
	assert.Equal(t, models.OpUntested, snap.PerOpStatus["GET /users/{id}"])
	assert.Contains(t, snap.UncoveredOps, models.OperationRef{Method: "GET", Path: "/users/{id}"})
}

func TestBuildCoverageUnknownEndpointsIgnored(t *testing.T) {
	doc := userAPIDoc(t)
	outcomes := []models.ScenarioOutcome{
		{Passed: true, Steps: []models.StepResult{step("GET", "/orders/7", models.StepStatusPassed)}},
	}

	snap := BuildCoverage("run-1", doc, outcomes)

	assert.Equal(t, 0, snap.OpsCovered)
	assert.Equal(t, 0, snap.OpsFailed)
	assert.Len(t, snap.UncoveredOps, 3)
}

func TestBuildCoverageNilDocument(t *testing.T) {
	outcomes := []models.ScenarioOutcome{
		{Passed: true},
		{Passed: false},
	}

	snap := BuildCoverage("run-1", nil, outcomes)

	assert.Zero(t, snap.OpsTotal)
	assert.Empty(t, snap.PerOpStatus)
	assert.Equal(t, 1, snap.ScenariosPassed)
	assert.Equal(t, 1, snap.ScenariosFailed)
	assert.Zero(t, snap.CoveragePercent())
}

func TestBuildCoverageErroredStepMapsOperation(t *testing.T) {
	doc := userAPIDoc(t)
	outcomes := []models.ScenarioOutcome{
		{Errored: true, Steps: []models.StepResult{step("GET", "/users", models.StepStatusErrored)}},
	}

	snap := BuildCoverage("run-1", doc, outcomes)

	assert.Equal(t, models.OpFailed, snap.PerOpStatus["GET /users"])
}
