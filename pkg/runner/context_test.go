package runner

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSubstitutesNamespaces(t *testing.T) {
	ec := NewExecutionContext(map[string]string{"API_KEY": "sk-test", "BASE": "https://api.test"})
	ec.Set("userId", "42")
	ec.Set("token", "abc")

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"no placeholders", "/users/all", "/users/all"},
		{"extracted", "/users/${userId}", "/users/42"},
		{"multiple", "/users/${userId}/tokens/${token}", "/users/42/tokens/abc"},
		{"environment", "Bearer ${env.API_KEY}", "Bearer sk-test"},
		{"mixed", "${env.BASE}/users/${userId}", "https://api.test/users/42"},
		{"adjacent text", "id=${userId}&t=${token}", "id=42&t=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unresolved := ec.Resolve(tt.template)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, unresolved)
		})
	}
}

func TestResolveIsSinglePass(t *testing.T) {
	ec := NewExecutionContext(nil)
	ec.Set("outer", "${inner}")
	ec.Set("inner", "should-not-appear")

	got, unresolved := ec.Resolve("value=${outer}")
	assert.Equal(t, "value=${inner}", got)
	assert.Empty(t, unresolved)
}

func TestResolveReportsUnresolved(t *testing.T) {
	ec := NewExecutionContext(map[string]string{"KNOWN": "x"})
	ec.Set("have", "1")

	got, unresolved := ec.Resolve("/a/${have}/${missing}/${env.ABSENT}/${missing}")
	assert.Equal(t, "/a/1/${missing}/${env.ABSENT}/${missing}", got)
	assert.Equal(t, []string{"missing", "env.ABSENT"}, unresolved)
}

func TestResolveLeavesMalformedReferencesAlone(t *testing.T) {
	ec := NewExecutionContext(nil)
	ec.Set("x", "1")

	// No closing brace, empty name, leading digit: none match the
	// placeholder grammar, none are substituted or reported.
	for _, template := range []string{"${x", "${}", "${1bad}", "$x"} {
		got, unresolved := ec.Resolve(template)
		assert.Equal(t, template, got)
		assert.Empty(t, unresolved)
	}
}

func TestLookupSynthetics(t *testing.T) {
	ec := NewExecutionContext(nil)

	v, ok := ec.Lookup("random.uuid")
	require.True(t, ok)
	_, err := uuid.Parse(v)
	require.NoError(t, err)

	v, ok = ec.Lookup("random.email")
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(v, "@example.com"), "got %q", v)

	v, ok = ec.Lookup("random.string")
	require.True(t, ok)
	assert.Len(t, v, 12)

	v, ok = ec.Lookup("random.int")
	require.True(t, ok)
	assert.NotEmpty(t, v)

	_, ok = ec.Lookup("random.unsupported")
	assert.False(t, ok)
}

func TestSnapshotIsACopy(t *testing.T) {
	ec := NewExecutionContext(nil)
	ec.Set("a", "1")

	snap := ec.Snapshot()
	snap["a"] = "mutated"
	snap["b"] = "new"

	v, ok := ec.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.False(t, ec.Has("b"))
}
