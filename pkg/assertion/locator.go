package assertion

import (
	"fmt"
	"strconv"
	"strings"
)

// segKind discriminates locator path segments.
type segKind int

const (
	segKey segKind = iota
	segIndex
)

type segment struct {
	kind  segKind
	key   string
	index int
}

// Locator is a parsed response locator: "$" followed by dotted keys,
// bracket indices, and bracket keys ($.a.b[0]["k"]). Parsed once at load
// time and reused across evaluations.
type Locator struct {
	raw  string
	segs []segment
}

// ParseLocator parses raw into a Locator.
func ParseLocator(raw string) (*Locator, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty locator")
	}
	if !strings.HasPrefix(raw, "$") {
		return nil, fmt.Errorf("locator %q must start with $", raw)
	}
	loc := &Locator{raw: raw}
	rest := raw[1:]
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := 0
			for end < len(rest) && rest[end] != '.' && rest[end] != '[' {
				end++
			}
			if end == 0 {
				return nil, fmt.Errorf("locator %q has an empty key segment", raw)
			}
			loc.segs = append(loc.segs, segment{kind: segKey, key: rest[:end]})
			rest = rest[end:]
		case '[':
			close := strings.IndexByte(rest, ']')
			if close < 0 {
				return nil, fmt.Errorf("locator %q has an unterminated bracket", raw)
			}
			inner := rest[1:close]
			rest = rest[close+1:]
			if len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\'') {
				if inner[len(inner)-1] != inner[0] {
					return nil, fmt.Errorf("locator %q has a mismatched quote", raw)
				}
				loc.segs = append(loc.segs, segment{kind: segKey, key: inner[1 : len(inner)-1]})
				continue
			}
			idx, err := strconv.Atoi(inner)
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("locator %q has an invalid index %q", raw, inner)
			}
			loc.segs = append(loc.segs, segment{kind: segIndex, index: idx})
		default:
			return nil, fmt.Errorf("locator %q has an unexpected character %q", raw, rest[0])
		}
	}
	return loc, nil
}

// String returns the original locator text.
func (l *Locator) String() string { return l.raw }

// IsRoot reports whether the locator addresses the whole document.
func (l *Locator) IsRoot() bool { return len(l.segs) == 0 }

// Resolve walks doc (the encoding/json generic form) and returns the
// addressed value. The second return is false when any segment fails to
// resolve; a resolved null is (nil, true).
func (l *Locator) Resolve(doc any) (any, bool) {
	cur := doc
	for _, seg := range l.segs {
		switch seg.kind {
		case segKey:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			val, ok := obj[seg.key]
			if !ok {
				return nil, false
			}
			cur = val
		case segIndex:
			arr, ok := cur.([]any)
			if !ok || seg.index >= len(arr) {
				return nil, false
			}
			cur = arr[seg.index]
		}
	}
	return cur, true
}
