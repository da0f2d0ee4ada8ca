package runner

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

func testPolicy() Policy {
	return Policy{
		StepTimeout:        5 * time.Second,
		MaxRetries:         0,
		StopOnFirstFailure: true,
		BodyTruncateBytes:  DefaultBodyTruncateBytes,
	}
}

// internalExecutor targets httptest servers on 127.0.0.1, so the guard
// must allow internal addresses.
func internalExecutor() *StepExecutor {
	return NewStepExecutor(NewSUTClient(), NewTargetGuard(true), nil)
}

func TestStepExecutorPassingStep(t *testing.T) {
	var gotContentType, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42, "email": "new@example.com"}`))
	}))
	defer server.Close()

	step := models.Step{
		Index:    0,
		Name:     "create user",
		Method:   models.MethodPost,
		Endpoint: "/users",
		Body:     json.RawMessage(`{"email":"new@example.com"}`),
		Expected: models.Expectation{
			Status: "201",
			BodyFields: map[string]string{
				"$.id":    "<any>",
				"$.email": "new@example.com",
			},
		},
		Extractions: map[string]string{"userId": "$.id"},
	}

	ec := NewExecutionContext(nil)
	result := internalExecutor().Execute(context.Background(), CompileStep(step), ec, server.URL, testPolicy())

	require.Equal(t, models.StepStatusPassed, result.Status, "reason: %s", result.FailureReason)
	assert.Equal(t, 201, result.ActualStatusCode)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, server.URL+"/users", result.Endpoint)
	assert.Equal(t, map[string]string{"userId": "42"}, result.Extracted)
	assert.Len(t, result.AssertionResults, 3)
	assert.Equal(t, models.SHA256Hex([]byte(`{"id": 42, "email": "new@example.com"}`)), result.BodyDigest)
	assert.Equal(t, "application/json", gotContentType)
	assert.True(t, strings.HasPrefix(gotUserAgent, "qawave/"), "user agent %q", gotUserAgent)
	assert.Nil(t, result.ErrorKind)
}

func TestStepExecutorAssertionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	step := models.Step{
		Method:   models.MethodGet,
		Endpoint: "/users/7",
		Expected: models.Expectation{
			Status:     "200",
			BodyFields: map[string]string{"$.error": "<any>"},
		},
	}

	result := internalExecutor().Execute(context.Background(), CompileStep(step), NewExecutionContext(nil), server.URL, testPolicy())

	require.Equal(t, models.StepStatusFailed, result.Status)
	require.NotNil(t, result.ErrorKind)
	assert.Equal(t, models.ErrKindAssertion, *result.ErrorKind)
	assert.NotEmpty(t, result.FailureReason)
	// Both checks ran even though the status check failed first.
	assert.Len(t, result.AssertionResults, 2)
}

func TestStepExecutorUnresolvedPlaceholderSkipsDispatch(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	step := models.Step{
		Method:   models.MethodGet,
		Endpoint: "/users/${missing}",
		Expected: models.Expectation{Status: "200"},
	}

	result := internalExecutor().Execute(context.Background(), CompileStep(step), NewExecutionContext(nil), server.URL, testPolicy())

	require.Equal(t, models.StepStatusFailed, result.Status)
	require.NotNil(t, result.ErrorKind)
	assert.Equal(t, models.ErrKindPlaceholderUnresolved, *result.ErrorKind)
	assert.Equal(t, []string{"missing"}, result.Unresolved)
	assert.Equal(t, int32(0), hits.Load(), "no request may be sent")
	assert.Equal(t, "/users/${missing}", result.Endpoint)
}

func TestStepExecutorBlockedTargetSkipsDispatch(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	step := models.Step{
		Method:   models.MethodGet,
		Endpoint: "/health",
		Expected: models.Expectation{Status: "200"},
	}

	// Guard with internal targets disallowed rejects the loopback server.
	executor := NewStepExecutor(NewSUTClient(), NewTargetGuard(false), nil)
	result := executor.Execute(context.Background(), CompileStep(step), NewExecutionContext(nil), server.URL, testPolicy())

	require.Equal(t, models.StepStatusFailed, result.Status)
	require.NotNil(t, result.ErrorKind)
	assert.Equal(t, models.ErrKindSSRFBlocked, *result.ErrorKind)
	assert.Equal(t, int32(0), hits.Load())
}

type scriptedDoer struct {
	calls    int
	failures int
	failWith error
	response *HTTPResponse
}

func (d *scriptedDoer) Do(context.Context, *HTTPRequest) (*HTTPResponse, error) {
	d.calls++
	if d.calls <= d.failures {
		return nil, d.failWith
	}
	return d.response, nil
}

func TestStepExecutorRetriesTransientFailures(t *testing.T) {
	doer := &scriptedDoer{
		failures: 2,
		failWith: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
		response: &HTTPResponse{StatusCode: 200, Body: []byte(`{"ok":true}`)},
	}
	executor := NewStepExecutor(doer, NewTargetGuard(true), nil)

	step := models.Step{
		Method:   models.MethodGet,
		Endpoint: "/health",
		Expected: models.Expectation{Status: "200"},
	}
	policy := testPolicy()
	policy.MaxRetries = 2

	result := executor.Execute(context.Background(), CompileStep(step), NewExecutionContext(nil), "http://sut.test", policy)

	require.Equal(t, models.StepStatusPassed, result.Status, "reason: %s", result.FailureReason)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, 3, doer.calls)
}

func TestStepExecutorExhaustsRetries(t *testing.T) {
	doer := &scriptedDoer{
		failures: 10,
		failWith: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
	}
	executor := NewStepExecutor(doer, NewTargetGuard(true), nil)

	step := models.Step{
		Method:   models.MethodGet,
		Endpoint: "/health",
		Expected: models.Expectation{Status: "200"},
	}
	policy := testPolicy()
	policy.MaxRetries = 2

	result := executor.Execute(context.Background(), CompileStep(step), NewExecutionContext(nil), "http://sut.test", policy)

	require.Equal(t, models.StepStatusErrored, result.Status)
	require.NotNil(t, result.ErrorKind)
	assert.Equal(t, models.ErrKindNetwork, *result.ErrorKind)
	assert.Equal(t, 3, result.Attempts)
}

func TestStepExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	step := models.Step{
		Method:   models.MethodGet,
		Endpoint: "/slow",
		Expected: models.Expectation{Status: "200"},
	}
	policy := testPolicy()
	policy.StepTimeout = 30 * time.Millisecond

	result := internalExecutor().Execute(context.Background(), CompileStep(step), NewExecutionContext(nil), server.URL, policy)

	require.Equal(t, models.StepStatusErrored, result.Status)
	require.NotNil(t, result.ErrorKind)
	assert.Equal(t, models.ErrKindTimeout, *result.ErrorKind)
}

func TestStepExecutorCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	step := models.Step{
		Method:   models.MethodGet,
		Endpoint: "/hang",
		Expected: models.Expectation{Status: "200"},
	}

	result := internalExecutor().Execute(ctx, CompileStep(step), NewExecutionContext(nil), server.URL, testPolicy())

	require.Equal(t, models.StepStatusErrored, result.Status)
	require.NotNil(t, result.ErrorKind)
	assert.Equal(t, models.ErrKindCancelled, *result.ErrorKind)
}

func TestStepExecutorTruncatesStoredBody(t *testing.T) {
	body := strings.Repeat("a", 4096)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	step := models.Step{
		Method:   models.MethodGet,
		Endpoint: "/big",
		Expected: models.Expectation{Status: "200"},
	}
	policy := testPolicy()
	policy.BodyTruncateBytes = 128

	result := internalExecutor().Execute(context.Background(), CompileStep(step), NewExecutionContext(nil), server.URL, policy)

	require.Equal(t, models.StepStatusPassed, result.Status)
	assert.Len(t, result.ActualBody, 128)
	assert.Equal(t, models.SHA256Hex([]byte(body)), result.BodyDigest)
}

func TestJoinBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		endpoint string
		want     string
	}{
		{"plain join", "http://sut.test", "/users", "http://sut.test/users"},
		{"trailing slash on base", "http://sut.test/", "/users", "http://sut.test/users"},
		{"missing leading slash", "http://sut.test", "users", "http://sut.test/users"},
		{"both slashes", "http://sut.test/", "users", "http://sut.test/users"},
		{"base with path", "http://sut.test/api/", "/v1/users", "http://sut.test/api/v1/users"},
		{"empty endpoint", "http://sut.test/", "", "http://sut.test"},
		{"absolute endpoint wins", "http://sut.test", "https://other.test/x", "https://other.test/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinBaseURL(tt.base, tt.endpoint))
		})
	}
}
