package assertion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocator(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "root", raw: "$"},
		{name: "dotted keys", raw: "$.a.b"},
		{name: "bracket index", raw: "$.items[0]"},
		{name: "bracket key double quotes", raw: `$["content-type"]`},
		{name: "bracket key single quotes", raw: "$['a.b']"},
		{name: "mixed", raw: `$.data.items[2]["id"]`},
		{name: "empty", raw: "", wantErr: true},
		{name: "missing dollar", raw: ".a.b", wantErr: true},
		{name: "empty key", raw: "$..b", wantErr: true},
		{name: "unterminated bracket", raw: "$.a[0", wantErr: true},
		{name: "negative index", raw: "$.a[-1]", wantErr: true},
		{name: "non-numeric index", raw: "$.a[x]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseLocator(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, loc.String())
		})
	}
}

func TestLocatorResolve(t *testing.T) {
	var doc any
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "u-1",
		"count": 3,
		"tags": ["a", "b"],
		"nested": {"deep": {"value": null}},
		"items": [{"id": 1}, {"id": 2}]
	}`), &doc))

	tests := []struct {
		name   string
		raw    string
		want   any
		wantOK bool
	}{
		{name: "root returns document", raw: "$", want: doc, wantOK: true},
		{name: "top-level key", raw: "$.id", want: "u-1", wantOK: true},
		{name: "number", raw: "$.count", want: float64(3), wantOK: true},
		{name: "array index", raw: "$.tags[1]", want: "b", wantOK: true},
		{name: "nested object key", raw: "$.items[0].id", want: float64(1), wantOK: true},
		{name: "null resolves", raw: "$.nested.deep.value", want: nil, wantOK: true},
		{name: "missing key", raw: "$.absent", wantOK: false},
		{name: "index out of range", raw: "$.tags[5]", wantOK: false},
		{name: "key into array", raw: "$.tags.x", wantOK: false},
		{name: "index into object", raw: "$.nested[0]", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseLocator(tt.raw)
			require.NoError(t, err)
			got, ok := loc.Resolve(doc)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLocatorIsRoot(t *testing.T) {
	root, err := ParseLocator("$")
	require.NoError(t, err)
	assert.True(t, root.IsRoot())

	nested, err := ParseLocator("$.a")
	require.NoError(t, err)
	assert.False(t, nested.IsRoot())
}
