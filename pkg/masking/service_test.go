package masking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

func TestSanitizeHeaders(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name    string
		headers map[string]string
		want    map[string]string
	}{
		{
			name:    "nil stays nil",
			headers: nil,
			want:    nil,
		},
		{
			name:    "authorization masked, content type kept",
			headers: map[string]string{"Authorization": "Bearer abc123", "Content-Type": "application/json"},
			want:    map[string]string{"Authorization": "__MASKED__", "Content-Type": "application/json"},
		},
		{
			name:    "header names match case-insensitively",
			headers: map[string]string{"AUTHORIZATION": "Basic dXNlcjpwYXNz", "x-api-key": "sk-123"},
			want:    map[string]string{"AUTHORIZATION": "__MASKED__", "x-api-key": "__MASKED__"},
		},
		{
			name:    "set-cookie masked",
			headers: map[string]string{"Set-Cookie": "session=deadbeef; HttpOnly"},
			want:    map[string]string{"Set-Cookie": "__MASKED__"},
		},
		{
			name:    "plain headers untouched",
			headers: map[string]string{"X-Request-Id": "req-42", "Cache-Control": "no-store"},
			want:    map[string]string{"X-Request-Id": "req-42", "Cache-Control": "no-store"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.SanitizeHeaders(tt.headers))
		})
	}
}

func TestSanitizeHeadersDoesNotMutateInput(t *testing.T) {
	s := NewSanitizer()
	in := map[string]string{"Authorization": "Bearer abc123"}

	_ = s.SanitizeHeaders(in)

	assert.Equal(t, "Bearer abc123", in["Authorization"], "input map must not be mutated")
}

func TestSanitizeBody(t *testing.T) {
	s := NewSanitizer()

	t.Run("json field masking catches nested tokens", func(t *testing.T) {
		body := `{"user":{"name":"alice","password":"hunter2secret"},"meta":{"request_id":"r-1"}}`
		masked := s.SanitizeBody(body)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(masked), &doc))
		user := doc["user"].(map[string]any)
		assert.Equal(t, MaskedFieldValue, user["password"])
		assert.Equal(t, "alice", user["name"])
		assert.Equal(t, "r-1", doc["meta"].(map[string]any)["request_id"])
	})

	t.Run("truncated json falls through to regex sweep", func(t *testing.T) {
		// Cut mid-object: unparsable, but the sweep still finds the key.
		body := `{"data": "ok", "api_key": "sk_live_4242424242424242", "rows": [1, 2`
		masked := s.SanitizeBody(body)

		assert.NotContains(t, masked, "sk_live_4242424242424242")
		assert.Contains(t, masked, "__MASKED_API_KEY__")
	})

	t.Run("clean body unchanged", func(t *testing.T) {
		body := `{"users": [{"id": 1, "name": "alice"}], "total": 1}`
		assert.Equal(t, body, s.SanitizeBody(body))
	})

	t.Run("empty body unchanged", func(t *testing.T) {
		assert.Equal(t, "", s.SanitizeBody(""))
	})

	t.Run("non-json with embedded jwt swept", func(t *testing.T) {
		body := "session started: eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig0123 ok"
		masked := s.SanitizeBody(body)
		assert.Contains(t, masked, "__MASKED_JWT__")
		assert.NotContains(t, masked, "eyJhbGciOiJIUzI1NiJ9")
	})
}

func TestSanitizeResult(t *testing.T) {
	s := NewSanitizer()

	r := models.StepResult{
		RunID:      "run-1",
		ScenarioID: "scen-1",
		StepIndex:  0,
		Status:     models.StepStatusPassed,
		ActualHeaders: map[string]string{
			"Authorization": "Bearer abc123def456",
			"Content-Type":  "application/json",
		},
		ActualBody: `{"token":"eyJhbGciOiJIUzI1NiJ9abcdef","id":"user-7"}`,
		BodyDigest: "sha256:feedface",
		Extracted: map[string]string{
			"auth_token": "eyJhbGciOiJIUzI1NiJ9.payload.sig",
			"user_id":    "user-7",
		},
	}

	s.SanitizeResult(&r)

	assert.Equal(t, "__MASKED__", r.ActualHeaders["Authorization"])
	assert.Equal(t, "application/json", r.ActualHeaders["Content-Type"])

	assert.NotContains(t, r.ActualBody, "eyJhbGciOiJIUzI1NiJ9abcdef")
	assert.Contains(t, r.ActualBody, "user-7")

	// Extraction named like a credential is masked wholesale; the id survives.
	assert.Equal(t, MaskedFieldValue, r.Extracted["auth_token"])
	assert.Equal(t, "user-7", r.Extracted["user_id"])

	// The digest identifies the raw body and stays.
	assert.Equal(t, "sha256:feedface", r.BodyDigest)
}

func TestSanitizeExtractedSweepsUnnamedCredentials(t *testing.T) {
	s := NewSanitizer()

	r := models.StepResult{
		Extracted: map[string]string{
			// Innocent name, credential value: the sweep still catches it.
			"next_ref": "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig99",
		},
	}
	s.SanitizeResult(&r)

	assert.Equal(t, "__MASKED_JWT__", r.Extracted["next_ref"])
}
