package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

func TestParseTokenKinds(t *testing.T) {
	tests := []struct {
		raw  string
		kind TokenKind
		vn   string
	}{
		{raw: "<any>", kind: TokenAny},
		{raw: "contains:needle", kind: TokenContains},
		{raw: "regex:[a-z]+", kind: TokenRegex},
		{raw: ">200", kind: TokenComparator},
		{raw: ">=200", kind: TokenComparator},
		{raw: "<=404", kind: TokenComparator},
		{raw: "!=0", kind: TokenComparator},
		{raw: "< 100", kind: TokenComparator},
		{raw: "${userId}", kind: TokenPlaceholder, vn: "userId"},
		{raw: "${env.API_KEY}", kind: TokenPlaceholder, vn: "env.API_KEY"},
		{raw: "plain value", kind: TokenLiteral},
		{raw: "42", kind: TokenLiteral},
		{raw: "${not valid", kind: TokenLiteral},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tok, err := ParseToken(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, tok.Kind)
			assert.Equal(t, tt.vn, tok.VarName())
		})
	}
}

func TestParseTokenInvalidRegex(t *testing.T) {
	_, err := ParseToken("regex:[unclosed")
	assert.Error(t, err)
}

func evaluateOne(t *testing.T, exp models.Expectation, status int, headers map[string]string, body string, lookup Lookup) (bool, []models.AssertionResult) {
	t.Helper()
	compiled := Compile(exp)
	return compiled.Evaluate(NewObservation(status, headers, []byte(body)), lookup)
}

func TestEvaluateStatus(t *testing.T) {
	tests := []struct {
		name   string
		status models.StatusExpectation
		actual int
		want   bool
	}{
		{name: "exact match", status: "201", actual: 201, want: true},
		{name: "exact mismatch", status: "201", actual: 200, want: false},
		{name: "greater", status: ">199", actual: 200, want: true},
		{name: "greater-equal boundary", status: ">=200", actual: 200, want: true},
		{name: "less", status: "<300", actual: 299, want: true},
		{name: "not-equal", status: "!=500", actual: 200, want: true},
		{name: "not-equal violated", status: "!=500", actual: 500, want: false},
		{name: "garbage expectation", status: "abc", actual: 200, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, results := evaluateOne(t, models.Expectation{Status: tt.status}, tt.actual, nil, "", nil)
			assert.Equal(t, tt.want, passed)
			require.Len(t, results, 1)
			assert.Equal(t, "status", results[0].Locator)
		})
	}
}

func TestEvaluateBodyFields(t *testing.T) {
	body := `{"id":"u-1","count":3,"score":9.5,"active":true,"missing_value":null,
		"tags":["alpha","beta"],"nested":{"inner":"x"},"email":"dev@example.com"}`

	tests := []struct {
		name    string
		locator string
		token   string
		want    bool
	}{
		{name: "any resolves", locator: "$.id", token: "<any>", want: true},
		{name: "any on null", locator: "$.missing_value", token: "<any>", want: true},
		{name: "any unresolved", locator: "$.absent", token: "<any>", want: false},
		{name: "literal string", locator: "$.id", token: "u-1", want: true},
		{name: "literal string mismatch", locator: "$.id", token: "u-2", want: false},
		{name: "literal number", locator: "$.count", token: "3", want: true},
		{name: "literal float", locator: "$.score", token: "9.5", want: true},
		{name: "literal bool", locator: "$.active", token: "true", want: true},
		{name: "literal null", locator: "$.missing_value", token: "null", want: true},
		{name: "literal object", locator: "$.nested", token: `{"inner":"x"}`, want: true},
		{name: "contains substring", locator: "$.email", token: "contains:@example.", want: true},
		{name: "contains substring miss", locator: "$.email", token: "contains:@other.", want: false},
		{name: "contains array element", locator: "$.tags", token: "contains:alpha", want: true},
		{name: "contains array miss", locator: "$.tags", token: "contains:gamma", want: false},
		{name: "contains object key", locator: "$.nested", token: "contains:inner", want: true},
		{name: "regex full match", locator: "$.id", token: "regex:u-\\d+", want: true},
		{name: "regex partial is not full", locator: "$.email", token: "regex:dev", want: false},
		{name: "comparator greater", locator: "$.count", token: ">2", want: true},
		{name: "comparator on string number", locator: "$.id", token: ">0", want: false},
		{name: "comparator on non-numeric", locator: "$.tags", token: ">0", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := models.Expectation{
				Status:     "200",
				BodyFields: map[string]string{tt.locator: tt.token},
			}
			passed, results := evaluateOne(t, exp, 200, nil, body, nil)
			assert.Equal(t, tt.want, passed)
			require.Len(t, results, 2)
		})
	}
}

func TestEvaluateAllChecksRunOnFailure(t *testing.T) {
	exp := models.Expectation{
		Status: "200",
		BodyFields: map[string]string{
			"$.a": "1",
			"$.b": "2",
		},
	}
	passed, results := evaluateOne(t, exp, 500, nil, `{"a":1,"b":2}`, nil)
	assert.False(t, passed)
	// Status failed, but both body checks were still evaluated.
	require.Len(t, results, 3)
	assert.False(t, results[0].Passed)
	assert.True(t, results[1].Passed)
	assert.True(t, results[2].Passed)
}

func TestEvaluateHeaders(t *testing.T) {
	headers := map[string]string{"Content-Type": "application/json; charset=utf-8"}

	exp := models.Expectation{
		Status:  "200",
		Headers: map[string]string{"content-type": "contains:application/json"},
	}
	passed, results := evaluateOne(t, exp, 200, headers, "", nil)
	assert.True(t, passed)
	require.Len(t, results, 2)
	assert.Equal(t, "header:content-type", results[1].Locator)

	exp = models.Expectation{
		Status:  "200",
		Headers: map[string]string{"x-request-id": "<any>"},
	}
	passed, results = evaluateOne(t, exp, 200, headers, "", nil)
	assert.False(t, passed)
	assert.Contains(t, results[1].Reason, "not present")
}

func TestEvaluatePlaceholderToken(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "userId" {
			return "u-42", true
		}
		return "", false
	}

	exp := models.Expectation{
		Status:     "200",
		BodyFields: map[string]string{"$.id": "${userId}"},
	}
	passed, _ := evaluateOne(t, exp, 200, nil, `{"id":"u-42"}`, lookup)
	assert.True(t, passed)

	passed, results := evaluateOne(t, exp, 200, nil, `{"id":"u-43"}`, lookup)
	assert.False(t, passed)
	assert.Contains(t, results[1].Reason, "${userId}")

	exp = models.Expectation{
		Status:     "200",
		BodyFields: map[string]string{"$.id": "${unknown}"},
	}
	passed, results = evaluateOne(t, exp, 200, nil, `{"id":"u-42"}`, lookup)
	assert.False(t, passed)
	assert.Contains(t, results[1].Reason, "not defined")
}

func TestEvaluateNonJSONBody(t *testing.T) {
	exp := models.Expectation{
		Status:     "200",
		BodyFields: map[string]string{"$": "contains:pong"},
	}
	passed, _ := evaluateOne(t, exp, 200, nil, "ping pong", nil)
	assert.True(t, passed)

	exp = models.Expectation{
		Status:     "200",
		BodyFields: map[string]string{"$.field": "<any>"},
	}
	passed, results := evaluateOne(t, exp, 200, nil, "plain text", nil)
	assert.False(t, passed)
	assert.Equal(t, "locator unresolved", results[1].Reason)
}

func TestEvaluateResultsAreDeterministic(t *testing.T) {
	exp := models.Expectation{
		Status: "200",
		BodyFields: map[string]string{
			"$.c": "<any>",
			"$.a": "<any>",
			"$.b": "<any>",
		},
	}
	_, first := evaluateOne(t, exp, 200, nil, `{"a":1,"b":2,"c":3}`, nil)
	_, second := evaluateOne(t, exp, 200, nil, `{"a":1,"b":2,"c":3}`, nil)
	require.Equal(t, first, second)
	assert.Equal(t, "$.a", first[1].Locator)
	assert.Equal(t, "$.b", first[2].Locator)
	assert.Equal(t, "$.c", first[3].Locator)
}
