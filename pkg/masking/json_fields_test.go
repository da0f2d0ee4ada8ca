package masking

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFieldMaskerAppliesTo(t *testing.T) {
	m := &JSONFieldMasker{}

	tests := []struct {
		name    string
		data    string
		applies bool
	}{
		{
			name:    "json object with token field",
			data:    `{"token": "abc"}`,
			applies: true,
		},
		{
			name:    "json array with password",
			data:    `[{"password": "x"}]`,
			applies: true,
		},
		{
			name:    "json without sensitive markers",
			data:    `{"id": 1, "name": "alice"}`,
			applies: false,
		},
		{
			name:    "non-json text with token word",
			data:    "the token is hidden",
			applies: false,
		},
		{
			name:    "empty string",
			data:    "",
			applies: false,
		},
		{
			name:    "marker matched case-insensitively",
			data:    `{"Token": "abc"}`,
			applies: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.applies, m.AppliesTo(tt.data))
		})
	}
}

func TestJSONFieldMaskerMask(t *testing.T) {
	m := &JSONFieldMasker{}

	t.Run("masks top-level sensitive fields", func(t *testing.T) {
		out := m.Mask(`{"token": "secret-value", "id": "user-1"}`)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, MaskedFieldValue, doc["token"])
		assert.Equal(t, "user-1", doc["id"])
	})

	t.Run("masks nested fields and arrays", func(t *testing.T) {
		in := `{"users": [{"name": "a", "api_key": "k1"}, {"name": "b", "api_key": "k2"}], "page": {"refresh_token": "r1"}}`
		out := m.Mask(in)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))

		users := doc["users"].([]any)
		for _, u := range users {
			assert.Equal(t, MaskedFieldValue, u.(map[string]any)["api_key"])
		}
		assert.Equal(t, MaskedFieldValue, doc["page"].(map[string]any)["refresh_token"])
	})

	t.Run("masks numeric and boolean sensitive values", func(t *testing.T) {
		out := m.Mask(`{"secret": 123456, "token": true}`)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, MaskedFieldValue, doc["secret"])
		assert.Equal(t, MaskedFieldValue, doc["token"])
	})

	t.Run("name variants match", func(t *testing.T) {
		out := m.Mask(`{"Api-Key": "k", "ACCESS_TOKEN": "t", "x-api-key": "x", "user_password": "p"}`)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		for key, val := range doc {
			assert.Equal(t, MaskedFieldValue, val, "field %s should be masked", key)
		}
	})

	t.Run("returns original on parse failure", func(t *testing.T) {
		in := `{"token": "abc", "rows": [1, 2` // truncated
		assert.Equal(t, in, m.Mask(in))
	})

	t.Run("returns original when nothing sensitive found", func(t *testing.T) {
		in := `{"id": 1, "monkey": "bars"}`
		assert.Equal(t, in, m.Mask(in))
	})

	t.Run("preserves trailing newline", func(t *testing.T) {
		out := m.Mask("{\"token\": \"abc\"}\n")
		assert.True(t, strings.HasSuffix(out, "\n"))
	})
}

func TestIsSensitiveField(t *testing.T) {
	tests := []struct {
		key       string
		sensitive bool
	}{
		{"password", true},
		{"PASSWORD", true},
		{"api_key", true},
		{"Api-Key", true},
		{"x-api-key", true},
		{"client_secret", true},
		{"next_page_token", true}, // opaque server token, masked by suffix
		{"id", false},
		{"name", false},
		{"monkey", false}, // "key" alone is not in the name set
		{"public_key_fingerprint", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.sensitive, isSensitiveField(tt.key))
		})
	}
}
