package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunChannel(t *testing.T) {
	tests := []struct {
		name  string
		runID string
		want  string
	}{
		{
			name:  "formats run channel correctly",
			runID: "abc-123",
			want:  "run:abc-123",
		},
		{
			name:  "handles UUID format",
			runID: "550e8400-e29b-41d4-a716-446655440000",
			want:  "run:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "handles empty string",
			runID: "",
			want:  "run:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunChannel(tt.runID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunsChannel(t *testing.T) {
	assert.Equal(t, "runs", RunsChannel)

	// The global channel name must never collide with a per-run channel.
	assert.NotEqual(t, RunsChannel, RunChannel(""))
}
