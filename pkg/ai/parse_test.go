package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"bare array", `[{"a": 1}]`, `[{"a": 1}]`},
		{"fenced with language", "```json\n[{\"a\": 1}]\n```", `[{"a": 1}]`},
		{"fenced without language", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose around document", "Here are the scenarios:\n[{\"a\": 1}]\nLet me know!", `[{"a": 1}]`},
		{"braces inside strings", `[{"name": "uses { and } and \" freely"}]`, `[{"name": "uses { and } and \" freely"}]`},
		{"nested structures", `{"a": {"b": [1, {"c": 2}]}}`, `{"a": {"b": [1, {"c": 2}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestExtractJSONFailures(t *testing.T) {
	for _, content := range []string{"", "no json here", `{"unclosed": 1`, "```json\n```"} {
		_, err := ExtractJSON(content)
		assert.Error(t, err, "content %q", content)
	}
}
