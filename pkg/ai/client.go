// Package ai generates and verifies test scenarios through an
// OpenAI-compatible chat completions provider. The generator drives a
// verify-correct loop; the verifier enforces the scenario contract before
// anything reaches the executor.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// ErrProvider marks transport or provider-side completion failures.
var ErrProvider = errors.New("ai provider failure")

// CompletionRequest is one chat completion call: an instruction block and a
// user message.
type CompletionRequest struct {
	System      string  `json:"system,omitempty"`
	User        string  `json:"user"`
	Model       string  `json:"model,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// Completion is the provider's reply.
type Completion struct {
	Content      string `json:"content"`
	Model        string `json:"model,omitempty"`
	InputTokens  int    `json:"input_tokens,omitempty"`
	OutputTokens int    `json:"output_tokens,omitempty"`
}

// Client abstracts the completion provider so tests can script replies.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// ProviderError carries the failure class of a provider call.
type ProviderError struct {
	// StatusCode is the provider's HTTP status, zero for timeouts.
	StatusCode int
	// Timeout marks a call that exceeded the per-request deadline.
	Timeout bool
	Message string
}

func (e *ProviderError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("provider call timed out: %s", e.Message)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error { return ErrProvider }

// Retryable reports whether the failure class is worth retrying:
// rate limits, server-side errors, and timeouts are, client errors
// and network faults are not.
func (e *ProviderError) Retryable() bool {
	return e.Timeout || e.StatusCode == 429 || e.StatusCode >= 500
}
