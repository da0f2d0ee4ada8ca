package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

func internalScenarioExecutor() *ScenarioExecutor {
	return NewScenarioExecutor(internalExecutor(), nil)
}

func TestScenarioExecutorExtractionFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 42}`)
	})
	mux.HandleFunc("GET /users/42", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id": 42, "name": "Ada"}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	scenario := &models.Scenario{
		ID:    "sc-1",
		RunID: "run-1",
		Name:  "create then fetch",
		Steps: []models.Step{
			{
				Index:       0,
				Name:        "create",
				Method:      models.MethodPost,
				Endpoint:    "/users",
				Body:        json.RawMessage(`{"name":"Ada"}`),
				Expected:    models.Expectation{Status: "201"},
				Extractions: map[string]string{"userId": "$.id"},
			},
			{
				Index:    1,
				Name:     "fetch",
				Method:   models.MethodGet,
				Endpoint: "/users/${userId}",
				Expected: models.Expectation{
					Status:     "200",
					BodyFields: map[string]string{"$.id": "${userId}", "$.name": "Ada"},
				},
			},
		},
	}

	var seen []models.StepResult
	outcome := internalScenarioExecutor().Execute(context.Background(), scenario, server.URL, nil, testPolicy(), func(r models.StepResult) {
		seen = append(seen, r)
	})

	require.True(t, outcome.Passed, "outcome: %+v", outcome)
	require.Len(t, outcome.Steps, 2)
	assert.Equal(t, models.StepStatusPassed, outcome.Steps[0].Status)
	assert.Equal(t, models.StepStatusPassed, outcome.Steps[1].Status, "reason: %s", outcome.Steps[1].FailureReason)
	assert.Equal(t, server.URL+"/users/42", outcome.Steps[1].Endpoint)

	require.Len(t, seen, 2)
	assert.Equal(t, "run-1", seen[0].RunID)
	assert.Equal(t, "sc-1", seen[0].ScenarioID)
	assert.Equal(t, 0, seen[0].StepIndex)
	assert.Equal(t, 1, seen[1].StepIndex)
}

func TestScenarioExecutorStopOnFirstFailure(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	scenario := &models.Scenario{
		ID:   "sc-stop",
		Name: "fails early",
		Steps: []models.Step{
			{Index: 0, Name: "first", Method: models.MethodGet, Endpoint: "/a", Expected: models.Expectation{Status: "200"}},
			{Index: 1, Name: "second", Method: models.MethodGet, Endpoint: "/b", Expected: models.Expectation{Status: "200"}},
			{Index: 2, Name: "third", Method: models.MethodGet, Endpoint: "/c", Expected: models.Expectation{Status: "200"}},
		},
	}

	outcome := internalScenarioExecutor().Execute(context.Background(), scenario, server.URL, nil, testPolicy(), nil)

	require.False(t, outcome.Passed)
	require.Len(t, outcome.Steps, 3)
	assert.Equal(t, models.StepStatusFailed, outcome.Steps[0].Status)
	assert.Equal(t, models.StepStatusSkipped, outcome.Steps[1].Status)
	assert.Equal(t, models.StepStatusSkipped, outcome.Steps[2].Status)
	assert.Equal(t, "previous step failed", outcome.Steps[1].FailureReason)
	assert.Equal(t, "previous step failed", outcome.Steps[2].FailureReason)
	assert.Equal(t, int32(1), hits.Load(), "skipped steps must not dispatch")
}

func TestScenarioExecutorContinuesWhenConfigured(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	scenario := &models.Scenario{
		Name: "keeps going",
		Steps: []models.Step{
			{Index: 0, Method: models.MethodGet, Endpoint: "/a", Expected: models.Expectation{Status: "200"}},
			{Index: 1, Method: models.MethodGet, Endpoint: "/b", Expected: models.Expectation{Status: "200"}},
		},
	}

	policy := testPolicy()
	policy.StopOnFirstFailure = false
	outcome := internalScenarioExecutor().Execute(context.Background(), scenario, server.URL, nil, policy, nil)

	require.False(t, outcome.Passed)
	require.Len(t, outcome.Steps, 2)
	assert.Equal(t, models.StepStatusFailed, outcome.Steps[0].Status)
	assert.Equal(t, models.StepStatusFailed, outcome.Steps[1].Status)
	assert.Equal(t, int32(2), hits.Load())
}

func TestScenarioExecutorExtractionMissing(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		// The declared extraction path $.token is absent from this body.
		fmt.Fprint(w, `{"id": 1}`)
	}))
	defer server.Close()

	scenario := &models.Scenario{
		Name: "missing extraction",
		Steps: []models.Step{
			{
				Index:       0,
				Name:        "login",
				Method:      models.MethodPost,
				Endpoint:    "/login",
				Expected:    models.Expectation{Status: "200"},
				Extractions: map[string]string{"token": "$.token"},
			},
			{
				Index:    1,
				Name:     "authed call",
				Method:   models.MethodGet,
				Endpoint: "/me",
				Headers:  map[string]string{"Authorization": "Bearer ${token}"},
				Expected: models.Expectation{Status: "200"},
			},
		},
	}

	policy := testPolicy()
	policy.StopOnFirstFailure = false
	outcome := internalScenarioExecutor().Execute(context.Background(), scenario, server.URL, nil, policy, nil)

	require.False(t, outcome.Passed)
	require.Len(t, outcome.Steps, 2)
	assert.Equal(t, models.StepStatusPassed, outcome.Steps[0].Status)

	second := outcome.Steps[1]
	require.Equal(t, models.StepStatusFailed, second.Status)
	require.NotNil(t, second.ErrorKind)
	assert.Equal(t, models.ErrKindExtractionMissing, *second.ErrorKind)
	assert.Contains(t, second.FailureReason, "token")
	assert.Equal(t, int32(1), hits.Load(), "second step must not dispatch")
}

func TestScenarioExecutorUndeclaredReferenceIsUnresolved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	scenario := &models.Scenario{
		Name: "undeclared reference",
		Steps: []models.Step{
			{Index: 0, Method: models.MethodGet, Endpoint: "/items/${never}", Expected: models.Expectation{Status: "200"}},
		},
	}

	outcome := internalScenarioExecutor().Execute(context.Background(), scenario, server.URL, nil, testPolicy(), nil)

	require.Len(t, outcome.Steps, 1)
	require.NotNil(t, outcome.Steps[0].ErrorKind)
	assert.Equal(t, models.ErrKindPlaceholderUnresolved, *outcome.Steps[0].ErrorKind)
}

func TestScenarioExecutorSeedsEnvironment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-seeded" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	scenario := &models.Scenario{
		Name: "env header",
		Steps: []models.Step{
			{
				Index:    0,
				Method:   models.MethodGet,
				Endpoint: "/secure",
				Headers:  map[string]string{"Authorization": "Bearer ${env.API_KEY}"},
				Expected: models.Expectation{Status: "200"},
			},
		},
	}

	env := map[string]string{"API_KEY": "sk-seeded"}
	outcome := internalScenarioExecutor().Execute(context.Background(), scenario, server.URL, env, testPolicy(), nil)
	require.True(t, outcome.Passed, "outcome: %+v", outcome.Steps)
}

func TestScenarioExecutorContextsAreIsolated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			fmt.Fprint(w, `{"token": "tok-1"}`)
			return
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	first := &models.Scenario{
		Name: "extracts token",
		Steps: []models.Step{
			{Index: 0, Method: models.MethodPost, Endpoint: "/login", Expected: models.Expectation{Status: "200"}, Extractions: map[string]string{"token": "$.token"}},
		},
	}
	second := &models.Scenario{
		Name: "cannot see it",
		Steps: []models.Step{
			{Index: 0, Method: models.MethodGet, Endpoint: "/use/${token}", Expected: models.Expectation{Status: "200"}},
		},
	}

	se := internalScenarioExecutor()
	require.True(t, se.Execute(context.Background(), first, server.URL, nil, testPolicy(), nil).Passed)

	outcome := se.Execute(context.Background(), second, server.URL, nil, testPolicy(), nil)
	require.Len(t, outcome.Steps, 1)
	require.NotNil(t, outcome.Steps[0].ErrorKind)
	assert.Equal(t, models.ErrKindPlaceholderUnresolved, *outcome.Steps[0].ErrorKind,
		"extracted variables must not leak across scenarios")
}
