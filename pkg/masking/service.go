package masking

import (
	"log/slog"
	"strings"

	"github.com/qawave/qawave/pkg/models"
)

// MaskedHeaderValue replaces the value of a credential-bearing header.
const MaskedHeaderValue = "__MASKED__"

// sensitiveHeaders are HTTP header names (lowercased) whose stored values
// are always masked. The live response is untouched; assertions and
// extractions run before sanitization.
var sensitiveHeaders = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"cookie":              {},
	"set-cookie":          {},
	"x-api-key":           {},
	"x-auth-token":        {},
	"x-access-token":      {},
	"api-key":             {},
}

// Sanitizer scrubs credentials out of step results before they are stored.
// It runs strictly after assertion evaluation and variable extraction, so
// the pipeline sees raw responses and only the persisted record is masked.
// Created once at startup; thread-safe and stateless aside from compiled
// patterns.
type Sanitizer struct {
	patterns []*CompiledPattern // Regex sweep, applied second
	maskers  []Masker           // Structural maskers, applied first
}

// NewSanitizer creates a sanitizer with compiled patterns and registered
// maskers. All patterns are compiled eagerly at creation time.
func NewSanitizer() *Sanitizer {
	s := &Sanitizer{
		patterns: compilePatterns(),
		maskers:  []Masker{&JSONFieldMasker{}},
	}

	slog.Info("Sanitizer initialized",
		"patterns", len(s.patterns),
		"code_maskers", len(s.maskers))

	return s
}

// SanitizeResult scrubs one step result in place: stored headers, the body
// excerpt, and extracted values. The digest is left alone; it has to
// keep identifying the raw body.
func (s *Sanitizer) SanitizeResult(r *models.StepResult) {
	r.ActualHeaders = s.SanitizeHeaders(r.ActualHeaders)
	r.ActualBody = s.SanitizeBody(r.ActualBody)
	r.Extracted = s.sanitizeExtracted(r.Extracted)
}

// SanitizeHeaders returns a copy of headers with credential-bearing values
// masked. Header name matching is case-insensitive. Nil stays nil.
func (s *Sanitizer) SanitizeHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers))
	for name, value := range headers {
		if _, sensitive := sensitiveHeaders[strings.ToLower(name)]; sensitive {
			out[name] = MaskedHeaderValue
			continue
		}
		out[name] = value
	}
	return out
}

// SanitizeBody masks credentials in a stored body excerpt: the structural
// pass first (field-name aware, JSON only), then the regex sweep. The sweep
// also covers excerpts the structural pass could not parse, such as
// truncated JSON.
func (s *Sanitizer) SanitizeBody(body string) string {
	if body == "" {
		return body
	}

	masked := body

	for _, masker := range s.maskers {
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}

	for _, pattern := range s.patterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}

	return masked
}

// sanitizeExtracted masks extraction values whose NAME marks them as
// credentials, and sweeps the remaining values for embedded tokens. The
// names themselves stay: the record still shows what was extracted.
func (s *Sanitizer) sanitizeExtracted(extracted map[string]string) map[string]string {
	if extracted == nil {
		return nil
	}
	out := make(map[string]string, len(extracted))
	for name, value := range extracted {
		if isSensitiveField(name) {
			out[name] = MaskedFieldValue
			continue
		}
		masked := value
		for _, pattern := range s.patterns {
			masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
		}
		out[name] = masked
	}
	return out
}
