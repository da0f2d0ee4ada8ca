package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScenarioDocument(t *testing.T) {
	t.Run("single object wraps into a slice", func(t *testing.T) {
		doc := `{
			"name": "create order",
			"steps": [
				{"index": 0, "name": "post order", "method": "POST", "endpoint": "/orders", "expected": {"status": 201}}
			]
		}`

		scenarios, err := DecodeScenarioDocument([]byte(doc))
		require.NoError(t, err)
		require.Len(t, scenarios, 1)
		assert.Equal(t, "create order", scenarios[0].Name)
		require.Len(t, scenarios[0].Steps, 1)
		assert.Equal(t, MethodPost, scenarios[0].Steps[0].Method)
		assert.Equal(t, StatusExpectation("201"), scenarios[0].Steps[0].Expected.Status)
	})

	t.Run("array decodes in order", func(t *testing.T) {
		doc := `[
			{"name": "first", "steps": []},
			{"name": "second", "steps": []}
		]`

		scenarios, err := DecodeScenarioDocument([]byte(doc))
		require.NoError(t, err)
		require.Len(t, scenarios, 2)
		assert.Equal(t, "first", scenarios[0].Name)
		assert.Equal(t, "second", scenarios[1].Name)
	})

	tests := []struct {
		name   string
		doc    string
		errMsg string
	}{
		{
			name:   "empty document",
			doc:    "",
			errMsg: "empty scenario document",
		},
		{
			name:   "whitespace only",
			doc:    "  \n\t",
			errMsg: "empty scenario document",
		},
		{
			name:   "scalar top level",
			doc:    `"just a string"`,
			errMsg: "must be an object or array",
		},
		{
			name:   "malformed array",
			doc:    `[{"name": "broken"`,
			errMsg: "does not parse",
		},
		{
			name:   "malformed object",
			doc:    `{"name": }`,
			errMsg: "does not parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeScenarioDocument([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNormalizeStepIndices(t *testing.T) {
	s := Scenario{
		Steps: []Step{
			{Index: 4, Name: "login"},
			{Index: 2, Name: "create"},
			{Index: 9, Name: "verify"},
		},
	}

	s.NormalizeStepIndices()

	require.Len(t, s.Steps, 3)
	for i, step := range s.Steps {
		assert.Equal(t, i, step.Index)
	}
	// Order is positional, never index-sorted.
	assert.Equal(t, "login", s.Steps[0].Name)
	assert.Equal(t, "create", s.Steps[1].Name)
	assert.Equal(t, "verify", s.Steps[2].Name)
}

func TestStepsHash(t *testing.T) {
	steps := []Step{
		{Index: 0, Name: "post", Method: MethodPost, Endpoint: "/orders"},
		{Index: 1, Name: "get", Method: MethodGet, Endpoint: "/orders/${extract.id}"},
	}

	a := Scenario{ID: "a", Name: "one", Steps: steps}
	b := Scenario{ID: "b", Name: "completely different", Steps: steps}

	hashA, err := a.StepsHash()
	require.NoError(t, err)
	hashB, err := b.StepsHash()
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB, "identity fields must not affect the hash")

	c := b
	c.Steps = []Step{{Index: 0, Name: "post", Method: MethodDelete, Endpoint: "/orders"}}
	hashC, err := c.StepsHash()
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashC)
}

func TestSHA256Hex(t *testing.T) {
	// Known vectors.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		SHA256Hex(nil))
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		SHA256Hex([]byte("abc")))
}
