package ai

import (
	"fmt"
	"strings"
)

// ExtractJSON pulls the scenario document out of a completion. Providers
// wrap documents in markdown fences or surround them with prose; this
// strips fences and returns the first balanced top-level object or array.
func ExtractJSON(content string) ([]byte, error) {
	text := strings.TrimSpace(content)
	if text == "" {
		return nil, fmt.Errorf("completion is empty")
	}
	text = stripFences(text)

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return nil, fmt.Errorf("completion contains no JSON document")
	}
	end, err := matchBalanced(text, start)
	if err != nil {
		return nil, err
	}
	return []byte(text[start : end+1]), nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	rest := text[3:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	}
	if i := strings.LastIndex(rest, "```"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}

// matchBalanced finds the closing bracket for the opener at start,
// honoring JSON string literals and escapes.
func matchBalanced(text string, start int) (int, error) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("JSON document is not balanced")
}
