package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMethodValid(t *testing.T) {
	for _, m := range AllHTTPMethods {
		assert.True(t, m.Valid(), "method %q should be valid", m)
	}
	assert.False(t, HTTPMethod("TRACE").Valid())
	assert.False(t, HTTPMethod("get").Valid(), "verbs are uppercase on the wire")
	assert.False(t, HTTPMethod("").Valid())
}

func TestStatusExpectationUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    StatusExpectation
		wantErr bool
	}{
		{
			name: "integer normalizes to string form",
			raw:  `201`,
			want: "201",
		},
		{
			name: "predicate string passes through",
			raw:  `">=200"`,
			want: ">=200",
		},
		{
			name: "not-equal predicate passes through",
			raw:  `"!=500"`,
			want: "!=500",
		},
		{
			name: "null becomes empty",
			raw:  `null`,
			want: "",
		},
		{
			name:    "object is rejected",
			raw:     `{"code":200}`,
			wantErr: true,
		},
		{
			name:    "float is rejected",
			raw:     `200.5`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StatusExpectation
			err := json.Unmarshal([]byte(tt.raw), &s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}

	t.Run("round trip emits string form", func(t *testing.T) {
		var exp Expectation
		require.NoError(t, json.Unmarshal([]byte(`{"status": 404}`), &exp))
		assert.Equal(t, StatusExpectation("404"), exp.Status)

		out, err := json.Marshal(exp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"404"}`, string(out))
	})
}

func TestStepBodyString(t *testing.T) {
	tests := []struct {
		name string
		body json.RawMessage
		want string
	}{
		{
			name: "absent body",
			body: nil,
			want: "",
		},
		{
			name: "null body",
			body: json.RawMessage(`null`),
			want: "",
		},
		{
			name: "whitespace only",
			body: json.RawMessage("  \n"),
			want: "",
		},
		{
			name: "string body is unquoted",
			body: json.RawMessage(`"plain text with ${env.KEY}"`),
			want: "plain text with ${env.KEY}",
		},
		{
			name: "object body keeps its JSON text",
			body: json.RawMessage(`{"sku":"A-1","qty":2}`),
			want: `{"sku":"A-1","qty":2}`,
		},
		{
			name: "array body keeps its JSON text",
			body: json.RawMessage(`[1,2,3]`),
			want: `[1,2,3]`,
		},
		{
			name: "surrounding whitespace is trimmed",
			body: json.RawMessage("  {\"a\":1}\n"),
			want: `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Step{Body: tt.body}
			assert.Equal(t, tt.want, s.BodyString())
		})
	}
}
