// Package assertion compares observed HTTP responses against declared
// expectations. Expectations are compiled once per scenario load (tokens and
// locators parse to small ASTs) and evaluated per response. All declared
// checks run even when an earlier one fails; the step verdict is the
// conjunction.
package assertion

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/qawave/qawave/pkg/models"
)

// Lookup resolves a context variable for ${var} tokens.
type Lookup func(name string) (string, bool)

// NoLookup is the empty context for expectations without placeholder tokens.
func NoLookup(string) (string, bool) { return "", false }

// Observation is the observed side of an evaluation.
type Observation struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte

	doc    any
	isJSON bool
}

// NewObservation wraps a response; the body is JSON-parsed once here.
func NewObservation(statusCode int, headers map[string]string, body []byte) *Observation {
	o := &Observation{StatusCode: statusCode, Headers: headers, Body: body}
	trimmed := strings.TrimSpace(string(body))
	if trimmed != "" && (trimmed[0] == '{' || trimmed[0] == '[' || looksScalarJSON(trimmed)) {
		var doc any
		if err := json.Unmarshal([]byte(trimmed), &doc); err == nil {
			o.doc = doc
			o.isJSON = true
		}
	}
	return o
}

// looksScalarJSON guards against treating arbitrary text bodies as JSON:
// only quoted strings, numbers, booleans and null qualify.
func looksScalarJSON(s string) bool {
	switch s[0] {
	case '"', '-', 't', 'f', 'n':
		return json.Valid([]byte(s))
	default:
		return s[0] >= '0' && s[0] <= '9' && json.Valid([]byte(s))
	}
}

// ResolveLocator resolves loc against the parsed body document. Non-JSON
// bodies resolve only at the root, yielding the raw text.
func (o *Observation) ResolveLocator(loc *Locator) (any, bool) {
	if !o.isJSON {
		if loc.IsRoot() {
			return string(o.Body), true
		}
		return nil, false
	}
	return loc.Resolve(o.doc)
}

// Render formats a resolved value for storage and reporting: strings pass
// through unquoted, everything else is JSON-encoded.
func Render(v any) string { return renderValue(v) }

// header performs a case-insensitive header lookup.
func (o *Observation) header(name string) (string, bool) {
	for k, v := range o.Headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// compiledEntry is one declared check with its parsed token (and locator,
// for body checks). Parse failures are retained and reported as failed
// assertions at evaluation time.
type compiledEntry struct {
	key      string
	token    *Token
	locator  *Locator
	parseErr string
}

// Compiled is a parsed Expectation ready for repeated evaluation.
type Compiled struct {
	statusRaw   string
	statusToken *Token
	hasStatus   bool

	headers []compiledEntry
	body    []compiledEntry
}

// Compile parses every token and locator of exp. Header and body checks are
// ordered by key so results are deterministic across runs and replays.
func Compile(exp models.Expectation) *Compiled {
	c := &Compiled{statusRaw: string(exp.Status)}
	if c.statusRaw != "" {
		c.hasStatus = true
		if tok, err := ParseToken(c.statusRaw); err == nil &&
			(tok.Kind == TokenComparator || tok.Kind == TokenLiteral) {
			c.statusToken = tok
		}
	}

	for _, name := range sortedKeys(exp.Headers) {
		entry := compiledEntry{key: name}
		tok, err := ParseToken(exp.Headers[name])
		if err != nil {
			entry.parseErr = err.Error()
		} else {
			entry.token = tok
		}
		c.headers = append(c.headers, entry)
	}

	for _, rawLoc := range sortedKeys(exp.BodyFields) {
		entry := compiledEntry{key: rawLoc}
		loc, err := ParseLocator(rawLoc)
		if err != nil {
			entry.parseErr = err.Error()
		} else {
			entry.locator = loc
		}
		if entry.parseErr == "" {
			tok, err := ParseToken(exp.BodyFields[rawLoc])
			if err != nil {
				entry.parseErr = err.Error()
			} else {
				entry.token = tok
			}
		}
		c.body = append(c.body, entry)
	}
	return c
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Evaluate runs every declared check against obs. The bool result is true
// iff all checks passed.
func (c *Compiled) Evaluate(obs *Observation, lookup Lookup) (bool, []models.AssertionResult) {
	if lookup == nil {
		lookup = NoLookup
	}
	var results []models.AssertionResult
	passed := true

	if c.hasStatus {
		res := c.evaluateStatus(obs.StatusCode)
		passed = passed && res.Passed
		results = append(results, res)
	}

	for _, entry := range c.headers {
		res := models.AssertionResult{
			Locator:  "header:" + entry.key,
			Expected: entryExpected(entry),
		}
		if entry.parseErr != "" {
			res.Reason = entry.parseErr
		} else if value, ok := obs.header(entry.key); !ok {
			res.Reason = fmt.Sprintf("header %q not present", entry.key)
		} else {
			res.Actual = value
			res.Passed, res.Reason = entry.token.match(value, lookup)
		}
		passed = passed && res.Passed
		results = append(results, res)
	}

	for _, entry := range c.body {
		res := models.AssertionResult{
			Locator:  entry.key,
			Expected: entryExpected(entry),
		}
		switch {
		case entry.parseErr != "":
			res.Reason = entry.parseErr
		default:
			value, ok := c.resolveBody(entry.locator, obs)
			if !ok {
				res.Reason = "locator unresolved"
			} else {
				res.Actual = renderValue(value)
				res.Passed, res.Reason = entry.token.match(value, lookup)
			}
		}
		passed = passed && res.Passed
		results = append(results, res)
	}

	return passed, results
}

// resolveBody resolves a body locator. Non-JSON bodies expose only the root
// locator, which matches the raw body text.
func (c *Compiled) resolveBody(loc *Locator, obs *Observation) (any, bool) {
	return obs.ResolveLocator(loc)
}

func (c *Compiled) evaluateStatus(observed int) models.AssertionResult {
	res := models.AssertionResult{
		Locator:  "status",
		Expected: c.statusRaw,
		Actual:   strconv.Itoa(observed),
	}
	tok := c.statusToken
	if tok == nil {
		res.Reason = fmt.Sprintf("invalid status expectation %q", c.statusRaw)
		return res
	}
	switch tok.Kind {
	case TokenComparator:
		res.Passed = tok.compare(float64(observed))
	default:
		want, err := strconv.Atoi(strings.TrimSpace(tok.literal))
		if err != nil {
			res.Reason = fmt.Sprintf("invalid status expectation %q", c.statusRaw)
			return res
		}
		res.Passed = observed == want
	}
	if !res.Passed && res.Reason == "" {
		res.Reason = fmt.Sprintf("status %d does not satisfy %q", observed, c.statusRaw)
	}
	return res
}

func entryExpected(entry compiledEntry) string {
	if entry.token != nil {
		return entry.token.String()
	}
	return ""
}

// match applies the token to an observed value.
func (t *Token) match(observed any, lookup Lookup) (bool, string) {
	switch t.Kind {
	case TokenAny:
		return true, ""
	case TokenLiteral:
		if literalEqual(t.literal, observed) {
			return true, ""
		}
		return false, fmt.Sprintf("expected %q, got %s", t.literal, renderValue(observed))
	case TokenContains:
		return containsMatch(t.needle, observed)
	case TokenRegex:
		str, ok := observed.(string)
		if !ok {
			str = renderValue(observed)
		}
		if t.pattern.MatchString(str) {
			return true, ""
		}
		return false, fmt.Sprintf("value %q does not match %s", str, t.raw)
	case TokenComparator:
		num, ok := asFiniteNumber(observed)
		if !ok {
			return false, fmt.Sprintf("value %s is not a finite number", renderValue(observed))
		}
		if t.compare(num) {
			return true, ""
		}
		return false, fmt.Sprintf("value %v does not satisfy %s", num, t.raw)
	case TokenPlaceholder:
		resolved, ok := lookup(t.varName)
		if !ok {
			return false, fmt.Sprintf("context variable %q not defined", t.varName)
		}
		if literalEqual(resolved, observed) {
			return true, ""
		}
		return false, fmt.Sprintf("expected %q (from ${%s}), got %s", resolved, t.varName, renderValue(observed))
	}
	return false, "unknown token kind"
}

// literalEqual implements structural equality between a literal token and
// an observed JSON value.
func literalEqual(expect string, observed any) bool {
	switch v := observed.(type) {
	case nil:
		return expect == "null"
	case bool:
		if v {
			return expect == "true"
		}
		return expect == "false"
	case float64:
		num, err := strconv.ParseFloat(strings.TrimSpace(expect), 64)
		return err == nil && num == v
	case string:
		return expect == v
	default:
		var parsed any
		if err := json.Unmarshal([]byte(expect), &parsed); err != nil {
			return false
		}
		return reflect.DeepEqual(parsed, observed)
	}
}

// containsMatch tests substring membership for strings, JSON-equal element
// membership for arrays, and key membership for objects.
func containsMatch(needle string, observed any) (bool, string) {
	switch v := observed.(type) {
	case string:
		if strings.Contains(v, needle) {
			return true, ""
		}
		return false, fmt.Sprintf("%q does not contain %q", v, needle)
	case []any:
		var parsed any
		if err := json.Unmarshal([]byte(needle), &parsed); err != nil {
			parsed = needle
		}
		for _, elem := range v {
			if reflect.DeepEqual(parsed, elem) || literalEqual(needle, elem) {
				return true, ""
			}
		}
		return false, fmt.Sprintf("array has no element equal to %q", needle)
	case map[string]any:
		if _, ok := v[needle]; ok {
			return true, ""
		}
		return false, fmt.Sprintf("object has no key %q", needle)
	default:
		return false, "contains: requires a string, array, or object"
	}
}

// asFiniteNumber coerces observed to a finite float64 when possible.
func asFiniteNumber(observed any) (float64, bool) {
	switch v := observed.(type) {
	case float64:
		return v, !math.IsInf(v, 0) && !math.IsNaN(v)
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
			return 0, false
		}
		return num, true
	default:
		return 0, false
	}
}

// renderValue produces the display form of an observed value.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(raw)
	}
}
