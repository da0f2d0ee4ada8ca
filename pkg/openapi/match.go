package openapi

import (
	"net/url"
	"strings"

	"github.com/qawave/qawave/pkg/models"
)

// MatchOperation maps an executed endpoint to the document operation it
// exercises. The method must match exactly; paths match segment-wise, with
// spec template segments ({id}) and unresolved placeholder segments
// (${userId}) each matching any single segment. Query strings, fragments,
// and the scheme/host of absolute endpoints are ignored. When several
// templates fit, the closest wins: literal segment matches outrank
// parameter matches, remaining ties break by path order.
func (d *Document) MatchOperation(method models.HTTPMethod, endpoint string) (Operation, bool) {
	segments := splitPathSegments(normalizeEndpointPath(endpoint))

	best := -1
	var bestOp Operation
	for _, op := range d.Operations {
		if op.Method != method {
			continue
		}
		score, ok := matchSegments(splitPathSegments(op.Path), segments)
		if ok && score > best {
			best = score
			bestOp = op
		}
	}
	if best < 0 {
		return Operation{}, false
	}
	return bestOp, true
}

// normalizeEndpointPath reduces an endpoint to its path: absolute URLs are
// stripped to the path component, query and fragment are dropped, and a
// trailing slash is removed except at the root.
func normalizeEndpointPath(endpoint string) string {
	path := endpoint
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		if u, err := url.Parse(endpoint); err == nil {
			path = u.Path
		}
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		path = "/"
	}
	return path
}

func splitPathSegments(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// matchSegments compares a template path against an endpoint path. It
// returns a closeness score and whether every segment is compatible:
// literal matches score 2, parameter matches score 1, and an unresolved
// placeholder against a literal template segment is compatible but scores
// nothing, so it never beats a real parameter.
func matchSegments(template, endpoint []string) (int, bool) {
	if len(template) != len(endpoint) {
		return 0, false
	}
	score := 0
	for i := range template {
		tmpl, got := template[i], endpoint[i]
		switch {
		case isTemplateParam(tmpl):
			score++
		case tmpl == got:
			score += 2
		case isPlaceholderSegment(got):
		default:
			return 0, false
		}
	}
	return score, true
}

func isTemplateParam(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

func isPlaceholderSegment(segment string) bool {
	return strings.Contains(segment, "${")
}
