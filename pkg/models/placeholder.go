package models

import (
	"regexp"
	"strings"
)

// PlaceholderPattern matches ${NAME} references. NAME admits dotted
// namespaces (env.KEY, random.uuid).
var PlaceholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_.]*)\}`)

// PlaceholderNames returns the distinct placeholder names referenced by
// template, in first-appearance order.
func PlaceholderNames(template string) []string {
	matches := PlaceholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// EnvPlaceholderPrefix marks environment-namespace references.
const EnvPlaceholderPrefix = "env."

// RandomPlaceholderPrefix marks the documented synthetic namespace.
const RandomPlaceholderPrefix = "random."

// syntheticPlaceholders is the documented set of ${random.*} generators.
var syntheticPlaceholders = map[string]bool{
	"random.uuid":   true,
	"random.email":  true,
	"random.string": true,
	"random.int":    true,
}

// IsEnvPlaceholder reports whether name addresses the environment namespace.
func IsEnvPlaceholder(name string) bool {
	return strings.HasPrefix(name, EnvPlaceholderPrefix) && len(name) > len(EnvPlaceholderPrefix)
}

// IsSyntheticPlaceholder reports whether name is a documented synthetic.
func IsSyntheticPlaceholder(name string) bool {
	return syntheticPlaceholders[name]
}

// StepPlaceholderNames returns the distinct placeholder names referenced
// anywhere in a step: endpoint, header values, body, and ${var} assertion
// tokens in the expectation.
func StepPlaceholderNames(step *Step) []string {
	seen := make(map[string]bool)
	var names []string
	collect := func(template string) {
		for _, name := range PlaceholderNames(template) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	collect(step.Endpoint)
	for _, v := range step.Headers {
		collect(v)
	}
	collect(step.BodyString())
	for _, token := range step.Expected.BodyFields {
		collect(token)
	}
	for _, token := range step.Expected.Headers {
		collect(token)
	}
	return names
}
