package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for the load and validation phases. Callers match with
// errors.Is; the wrapping types below add section and file context.
var (
	ErrConfigNotFound       = errors.New("configuration file not found")
	ErrInvalidYAML          = errors.New("invalid YAML syntax")
	ErrValidationFailed     = errors.New("configuration validation failed")
	ErrMissingRequiredField = errors.New("required field not set")
	ErrInvalidValue         = errors.New("invalid field value")
)

// ValidationError pins a validation failure to its section (ai, queue,
// resilience, runs, retention) and, when known, the offending field.
type ValidationError struct {
	Section string
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %v", e.Section, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Section, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError; field may be empty when the
// failure concerns the section as a whole.
func NewValidationError(section, field string, err error) *ValidationError {
	return &ValidationError{
		Section: section,
		Field:   field,
		Err:     err,
	}
}

// LoadError records which file failed to load along with the cause.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps err with the file it came from.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{
		File: file,
		Err:  err,
	}
}
