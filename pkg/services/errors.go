package services

import (
	"errors"
	"fmt"
)

// Service-level sentinels. API and queue code matches on these with
// errors.Is to pick status codes and recovery behavior.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")

	// ErrInvalidTransition: the requested status move is not an edge of
	// the run lifecycle graph; the prior state is left intact.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrRunTerminal: the run already reached a terminal status, so its
	// journal is sealed and the terminal event stays last.
	ErrRunTerminal = errors.New("run already terminal")
)

// ValidationError names the field an input failed on.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field '%s': %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError reports whether err is a ValidationError anywhere in
// its chain.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
