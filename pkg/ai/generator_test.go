package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

// scriptedClient replays canned completions and records the requests it
// received.
type scriptedClient struct {
	contents []string
	err      error
	requests []CompletionRequest
}

func (c *scriptedClient) Complete(_ context.Context, req CompletionRequest) (*Completion, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	idx := len(c.requests) - 1
	if idx >= len(c.contents) {
		idx = len(c.contents) - 1
	}
	return &Completion{Content: c.contents[idx], Model: "test-model", InputTokens: 100, OutputTokens: 50}, nil
}

func generateInput(t *testing.T) GenerateInput {
	return GenerateInput{
		Requirement: "Verify user creation and retrieval",
		Doc:         testDocument(t),
		BaseURL:     "http://sut.test",
		Environment: map[string]string{"API_KEY": "secret-value"},
		Config:      models.DefaultRunConfig(),
	}
}

func TestGeneratorSucceedsFirstAttempt(t *testing.T) {
	client := &scriptedClient{contents: []string{"```json\n" + validScenarioDoc + "\n```"}}
	gen := NewGenerator(client, nil)

	result, err := gen.Generate(context.Background(), generateInput(t))
	require.NoError(t, err)

	require.Len(t, result.Scenarios, 1)
	sc := result.Scenarios[0]
	assert.Equal(t, models.ScenarioSourceAIGenerated, sc.Source)
	assert.Equal(t, models.ScenarioStatusReady, sc.Status)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, 0, sc.Steps[0].Index)
	assert.Equal(t, 1, sc.Steps[1].Index)

	require.Len(t, result.Attempts, 1)
	assert.True(t, result.Attempts[0].OK)
	assert.Equal(t, "test-model", result.Model)
	assert.Equal(t, 100, result.InputTokens)

	// Prompt hygiene: the requirement and operation list are present,
	// environment names are exposed but values never are.
	require.Len(t, client.requests, 1)
	prompt := client.requests[0].User
	assert.Contains(t, prompt, "Verify user creation and retrieval")
	assert.Contains(t, prompt, "POST /users")
	assert.Contains(t, prompt, "API_KEY")
	assert.NotContains(t, prompt, "secret-value")
	assert.NotEmpty(t, client.requests[0].System)
}

func TestGeneratorCorrectsAfterRejection(t *testing.T) {
	// First response references a variable nothing extracts; second is valid.
	bad := `[{"name": "broken", "steps": [{"index": 0, "method": "GET", "endpoint": "/users/${ghost}", "expected": {"status": 200}}]}]`
	client := &scriptedClient{contents: []string{bad, validScenarioDoc}}
	gen := NewGenerator(client, nil)

	result, err := gen.Generate(context.Background(), generateInput(t))
	require.NoError(t, err)

	require.Len(t, result.Attempts, 2)
	first, second := result.Attempts[0], result.Attempts[1]
	assert.False(t, first.OK)
	assert.Equal(t, models.ErrKindAIPlaceholder, first.Kind)
	assert.True(t, second.OK)

	// The correction prompt carries the violations and the prior response.
	require.Len(t, client.requests, 2)
	correction := client.requests[1].User
	assert.Contains(t, correction, "${ghost}")
	assert.Contains(t, correction, "broken")
}

func TestGeneratorExhaustsRetries(t *testing.T) {
	bad := `[{"name": "still broken", "steps": [{"index": 0, "method": "GET", "endpoint": "/nowhere", "expected": {"status": 200}}]}]`
	client := &scriptedClient{contents: []string{bad}}
	gen := NewGenerator(client, nil)

	in := generateInput(t)
	in.Config.AIVerifyRetries = 2

	_, err := gen.Generate(context.Background(), in)
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, models.ErrKindAIAlignment, genErr.Kind)
	assert.Len(t, genErr.Attempts, 3)
	assert.Len(t, client.requests, 3)
}

func TestGeneratorUnparseableResponseIsSchemaFailure(t *testing.T) {
	client := &scriptedClient{contents: []string{"I cannot help with that."}}
	gen := NewGenerator(client, nil)

	in := generateInput(t)
	in.Config.AIVerifyRetries = 0

	_, err := gen.Generate(context.Background(), in)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, models.ErrKindAISchema, genErr.Kind)
}

func TestGeneratorPropagatesProviderErrors(t *testing.T) {
	client := &scriptedClient{err: &ProviderError{StatusCode: 503, Message: "overloaded"}}
	gen := NewGenerator(client, nil)

	_, err := gen.Generate(context.Background(), generateInput(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)

	var genErr *GenerationError
	assert.False(t, errors.As(err, &genErr), "provider failures are not generation errors")
	// No verification retry burned on a transport failure.
	assert.Len(t, client.requests, 1)
}
