package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qawave/qawave/pkg/ai"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/openapi"
	"github.com/qawave/qawave/pkg/services"
)

func TestAIRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "rate limited provider call retries",
			err:  &ai.ProviderError{StatusCode: 429, Message: "slow down"},
			want: true,
		},
		{
			name: "server error retries",
			err:  &ai.ProviderError{StatusCode: 503, Message: "overloaded"},
			want: true,
		},
		{
			name: "provider timeout retries",
			err:  &ai.ProviderError{Timeout: true, Message: "deadline exceeded"},
			want: true,
		},
		{
			name: "client error does not retry",
			err:  &ai.ProviderError{StatusCode: 401, Message: "bad key"},
			want: false,
		},
		{
			name: "wrapped provider error is still seen",
			err:  fmt.Errorf("completion attempt 2: %w", &ai.ProviderError{StatusCode: 500}),
			want: true,
		},
		{
			name: "verification exhaustion is final",
			err:  &ai.GenerationError{Kind: models.ErrKindAISchema},
			want: false,
		},
		{
			name: "plain error is final",
			err:  errors.New("boom"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aiRetryable(tt.err))
		})
	}
}

func TestSpecFailureKind(t *testing.T) {
	invalid := fmt.Errorf("parsing document: %w", openapi.ErrSpecInvalid)
	assert.Equal(t, models.ErrKindSpecInvalid, specFailureKind(invalid))

	assert.Equal(t, models.ErrKindSpecFetch, specFailureKind(errors.New("dial tcp: connection refused")))
}

func TestTerminalAlreadyReached(t *testing.T) {
	assert.True(t, terminalAlreadyReached(fmt.Errorf("transition: %w", services.ErrInvalidTransition)))
	assert.False(t, terminalAlreadyReached(services.ErrNotFound))
	assert.False(t, terminalAlreadyReached(errors.New("network down")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "", kindString(nil))
	assert.Equal(t, "TIMEOUT", kindString(models.KindPtr(models.ErrKindTimeout)))
}
