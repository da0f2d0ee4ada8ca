package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name     string
		err      *ValidationError
		contains []string
	}{
		{
			name: "full error",
			err:  NewValidationError("queue", "worker_count", baseErr),
			contains: []string{
				"queue",
				"worker_count",
				"base error",
			},
		},
		{
			name: "section-only error",
			err:  NewValidationError("resilience", "", errors.New("resilience configuration is nil")),
			contains: []string{
				"resilience",
				"configuration is nil",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, errStr, substr)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	validationErr := NewValidationError("runs", "body_truncate_bytes", baseErr)

	unwrapped := validationErr.Unwrap()
	assert.Equal(t, baseErr, unwrapped)
	assert.True(t, errors.Is(validationErr, baseErr))
}

func TestLoadErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *LoadError
		contains []string
	}{
		{
			name: "file load error",
			err: &LoadError{
				File: "qawave.yaml",
				Err:  errors.New("file not found"),
			},
			contains: []string{
				"failed to load",
				"qawave.yaml",
				"file not found",
			},
		},
		{
			name: "parse error",
			err: &LoadError{
				File: "qawave.yaml",
				Err:  errors.New("yaml: unmarshal error"),
			},
			contains: []string{
				"failed to load",
				"qawave.yaml",
				"unmarshal error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, errStr, substr)
			}
		})
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	loadErr := &LoadError{
		File: "test.yaml",
		Err:  baseErr,
	}

	unwrapped := loadErr.Unwrap()
	assert.Equal(t, baseErr, unwrapped)
	assert.True(t, errors.Is(loadErr, baseErr))
}
