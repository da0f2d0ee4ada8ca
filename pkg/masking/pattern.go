package masking

import (
	"log/slog"
	"regexp"
	"sort"
)

// CompiledPattern is a ready-to-run redaction regex and its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// maskingPattern is the source form of a built-in pattern before compilation.
type maskingPattern struct {
	Pattern     string
	Replacement string
	Description string
}

// builtinPatterns are the regex sweeps applied to stored body excerpts.
// They target credentials that commonly appear in API traffic. Deliberately
// absent: broad base64 and email sweeps; API responses are full of
// legitimate base64 blobs and test-fixture emails, and masking those would
// gut the stored record.
func builtinPatterns() map[string]maskingPattern {
	return map[string]maskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{16,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:access[_-]?token|refresh[_-]?token|id[_-]?token|token)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"bearer": {
			Pattern:     `(?i)\bbearer\s+([A-Za-z0-9_\-\.=]{8,})`,
			Replacement: `Bearer __MASKED_TOKEN__`,
			Description: "Bearer credentials embedded in text",
		},
		"basic_auth": {
			Pattern:     `(?i)\bbasic\s+([A-Za-z0-9+/=]{12,})`,
			Replacement: `Basic __MASKED_CREDENTIALS__`,
			Description: "Basic auth credentials embedded in text",
		},
		"jwt": {
			Pattern:     `\beyJ[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`,
			Replacement: `__MASKED_JWT__`,
			Description: "JWTs (three dot-joined base64url segments)",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "PEM blocks",
		},
		"private_key": {
			Pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
			Replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
			Description: "Private keys",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key|client[_-]?secret)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
			Replacement: `"secret": "__MASKED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
		"aws_access_key": {
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: `__MASKED_AWS_KEY__`,
			Description: "AWS access key IDs",
		},
	}
}

// compilePatterns builds the built-in pattern set. A pattern that fails to
// compile is logged and dropped rather than taking the engine down.
func compilePatterns() []*CompiledPattern {
	source := builtinPatterns()
	compiled := make([]*CompiledPattern, 0, len(source))
	for name, pattern := range source {
		re, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Built-in masking pattern does not compile, dropped",
				"pattern", name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		})
	}
	// Stable sweep order regardless of map iteration.
	sort.Slice(compiled, func(i, j int) bool { return compiled[i].Name < compiled[j].Name })
	return compiled
}
