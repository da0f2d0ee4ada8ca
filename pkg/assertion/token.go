package assertion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TokenKind discriminates parsed assertion tokens.
type TokenKind int

const (
	TokenAny TokenKind = iota
	TokenLiteral
	TokenContains
	TokenRegex
	TokenComparator
	TokenPlaceholder
)

// comparatorPattern matches numeric comparator tokens (">=200", "!=0", ...).
var comparatorPattern = regexp.MustCompile(`^(>=|<=|!=|>|<)\s*(-?\d+(?:\.\d+)?)$`)

// placeholderToken matches tokens that are exactly one ${name} reference.
var placeholderToken = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_.]*)\}$`)

// Token is one parsed assertion token. Decoded once at scenario load time;
// Match is safe for concurrent use.
type Token struct {
	Kind TokenKind
	raw  string

	literal string         // TokenLiteral
	needle  string         // TokenContains
	pattern *regexp.Regexp // TokenRegex
	op      string         // TokenComparator
	operand float64        // TokenComparator
	varName string         // TokenPlaceholder
}

// ParseToken decodes a raw token string into its tagged form.
//
// Forms, checked in order: "<any>", "contains:needle", "regex:PATTERN"
// (full-match, anchored both ends), numeric comparators, a lone "${var}"
// reference, and finally a literal scalar.
func ParseToken(raw string) (*Token, error) {
	switch {
	case raw == "<any>":
		return &Token{Kind: TokenAny, raw: raw}, nil
	case strings.HasPrefix(raw, "contains:"):
		return &Token{Kind: TokenContains, raw: raw, needle: raw[len("contains:"):]}, nil
	case strings.HasPrefix(raw, "regex:"):
		expr := raw[len("regex:"):]
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return nil, fmt.Errorf("invalid regex token %q: %w", raw, err)
		}
		return &Token{Kind: TokenRegex, raw: raw, pattern: re}, nil
	}
	if m := comparatorPattern.FindStringSubmatch(raw); m != nil {
		operand, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid comparator operand in %q: %w", raw, err)
		}
		return &Token{Kind: TokenComparator, raw: raw, op: m[1], operand: operand}, nil
	}
	if m := placeholderToken.FindStringSubmatch(raw); m != nil {
		return &Token{Kind: TokenPlaceholder, raw: raw, varName: m[1]}, nil
	}
	return &Token{Kind: TokenLiteral, raw: raw, literal: raw}, nil
}

// String returns the original token text.
func (t *Token) String() string { return t.raw }

// VarName returns the referenced context variable for placeholder tokens.
func (t *Token) VarName() string { return t.varName }

// compare applies the comparator to an observed number.
func (t *Token) compare(observed float64) bool {
	switch t.op {
	case ">":
		return observed > t.operand
	case "<":
		return observed < t.operand
	case ">=":
		return observed >= t.operand
	case "<=":
		return observed <= t.operand
	case "!=":
		return observed != t.operand
	}
	return false
}
