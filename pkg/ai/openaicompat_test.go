package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientComplete(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": "qa-model-1",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "[]"}},
			},
			"usage": map[string]any{"prompt_tokens": 120, "completion_tokens": 30},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPClientConfig{
		BaseURL:     server.URL + "/",
		APIKey:      "sk-qa",
		Model:       "qa-model-1",
		Temperature: 0.2,
		MaxTokens:   4096,
	})

	completion, err := client.Complete(context.Background(), CompletionRequest{
		System: "you are a tester",
		User:   "generate scenarios",
	})
	require.NoError(t, err)

	assert.Equal(t, "[]", completion.Content)
	assert.Equal(t, "qa-model-1", completion.Model)
	assert.Equal(t, 120, completion.InputTokens)
	assert.Equal(t, 30, completion.OutputTokens)

	assert.Equal(t, "Bearer sk-qa", gotAuth)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "qa-model-1", gotBody["model"])
	assert.InDelta(t, 0.2, gotBody["temperature"], 1e-9)
	assert.EqualValues(t, 4096, gotBody["max_tokens"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	second := messages[1].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "user", second["role"])
	assert.Equal(t, "generate scenarios", second["content"])
}

func TestHTTPClientProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPClientConfig{BaseURL: server.URL, APIKey: "sk-qa", Model: "m"})

	_, err := client.Complete(context.Background(), CompletionRequest{User: "hi"})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrProvider)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusTooManyRequests, provErr.StatusCode)
	assert.Equal(t, "rate limited", provErr.Message)
	assert.True(t, provErr.Retryable())
}

func TestHTTPClientRejectsEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"model": "m", "choices": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPClientConfig{BaseURL: server.URL, Model: "m"})
	_, err := client.Complete(context.Background(), CompletionRequest{User: "hi"})
	require.ErrorIs(t, err, ErrProvider)
}

func TestProviderErrorRetryability(t *testing.T) {
	assert.True(t, (&ProviderError{StatusCode: 429}).Retryable())
	assert.True(t, (&ProviderError{StatusCode: 500}).Retryable())
	assert.True(t, (&ProviderError{StatusCode: 503}).Retryable())
	assert.True(t, (&ProviderError{Timeout: true}).Retryable())
	assert.False(t, (&ProviderError{StatusCode: 400}).Retryable())
	assert.False(t, (&ProviderError{StatusCode: 401}).Retryable())
}

func TestHTTPClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewHTTPClient(HTTPClientConfig{
		BaseURL:        server.URL,
		Model:          "m",
		RequestTimeout: 20 * time.Millisecond,
	})

	_, err := client.Complete(context.Background(), CompletionRequest{User: "hi"})
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.True(t, provErr.Timeout)
	assert.True(t, provErr.Retryable())
}

// roundTripperFunc adapts a function to http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestHTTPClientTransportFault(t *testing.T) {
	client := NewHTTPClient(HTTPClientConfig{BaseURL: "http://provider.test", Model: "m"})
	client.OverrideHTTPClientForTest(&http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset by peer")
		}),
	})

	_, err := client.Complete(context.Background(), CompletionRequest{User: "hi"})
	require.ErrorIs(t, err, ErrProvider)

	// A network fault is not a provider timeout; it carries no
	// retryable classification and degrades to the fallback path.
	var provErr *ProviderError
	assert.False(t, errors.As(err, &provErr))
}
