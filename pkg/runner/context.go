// Package runner executes verified scenarios against the system under test:
// placeholder resolution, HTTP dispatch with retries, response extraction,
// and assertion evaluation, producing step results in declaration order.
package runner

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/qawave/qawave/pkg/models"
)

// ExecutionContext carries the variable state of one scenario execution:
// values extracted from earlier responses plus the run's frozen environment.
// It is owned by a single scenario goroutine and is not safe for concurrent
// use.
type ExecutionContext struct {
	extracted   map[string]string
	environment map[string]string
}

// NewExecutionContext returns a context seeded with the run environment.
// The environment map is copied; later mutation of the argument does not
// leak into the context.
func NewExecutionContext(environment map[string]string) *ExecutionContext {
	env := make(map[string]string, len(environment))
	for k, v := range environment {
		env[k] = v
	}
	return &ExecutionContext{
		extracted:   make(map[string]string),
		environment: env,
	}
}

// Set records an extracted variable, overwriting any earlier value of the
// same name.
func (ec *ExecutionContext) Set(name, value string) {
	ec.extracted[name] = value
}

// Lookup resolves a placeholder name against the context namespaces:
// env.KEY reads the run environment, random.* generates a synthetic value,
// anything else reads extracted variables.
func (ec *ExecutionContext) Lookup(name string) (string, bool) {
	switch {
	case models.IsEnvPlaceholder(name):
		v, ok := ec.environment[strings.TrimPrefix(name, models.EnvPlaceholderPrefix)]
		return v, ok
	case models.IsSyntheticPlaceholder(name):
		return syntheticValue(name), true
	default:
		v, ok := ec.extracted[name]
		return v, ok
	}
}

// Has reports whether name would resolve without generating a value.
func (ec *ExecutionContext) Has(name string) bool {
	if models.IsSyntheticPlaceholder(name) {
		return true
	}
	_, ok := ec.Lookup(name)
	return ok
}

// Resolve substitutes ${NAME} references in template in a single
// left-to-right pass. Substituted values are never re-scanned, so a value
// containing ${...} text passes through literally. Names that resolve in no
// namespace are left in place and returned in first-appearance order.
func (ec *ExecutionContext) Resolve(template string) (string, []string) {
	if !strings.Contains(template, "${") {
		return template, nil
	}
	var unresolved []string
	seen := make(map[string]bool)
	resolved := models.PlaceholderPattern.ReplaceAllStringFunc(template, func(ref string) string {
		name := ref[2 : len(ref)-1]
		if v, ok := ec.Lookup(name); ok {
			return v
		}
		if !seen[name] {
			seen[name] = true
			unresolved = append(unresolved, name)
		}
		return ref
	})
	return resolved, unresolved
}

// Snapshot returns a copy of the extracted variables, for journaling.
func (ec *ExecutionContext) Snapshot() map[string]string {
	out := make(map[string]string, len(ec.extracted))
	for k, v := range ec.extracted {
		out[k] = v
	}
	return out
}

const syntheticAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func syntheticValue(name string) string {
	switch name {
	case "random.uuid":
		return uuid.NewString()
	case "random.email":
		return fmt.Sprintf("qa-%s@example.com", randomString(8))
	case "random.int":
		return fmt.Sprintf("%d", rand.IntN(1000000))
	case "random.string":
		return randomString(12)
	default:
		return ""
	}
}

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = syntheticAlphabet[rand.IntN(len(syntheticAlphabet))]
	}
	return string(b)
}
