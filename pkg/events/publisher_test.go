package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		ev := models.RunEvent{
			RunID: "run-123",
			Seq:   3,
			Type:  models.EventSpecFetched,
			Payload: map[string]any{
				"specHash": "sha256:abc",
				"title":    "Orders API",
			},
		}
		payload, err := json.Marshal(ev)
		require.NoError(t, err)

		result, err := truncateIfNeeded(ev, payload)
		require.NoError(t, err)
		assert.Contains(t, result, "SPEC_FETCHED")
		assert.Contains(t, result, "run-123")
		assert.Contains(t, result, "Orders API")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		ev := models.RunEvent{
			RunID: "run-123",
			Seq:   7,
			Type:  models.EventScenarioCreated,
			Payload: map[string]any{
				"body": strings.Repeat("a", 8000),
			},
		}
		payload, err := json.Marshal(ev)
		require.NoError(t, err)

		result, err := truncateIfNeeded(ev, payload)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
		assert.NotContains(t, result, "aaaa")
	})

	t.Run("envelope carries journal coordinates", func(t *testing.T) {
		ev := models.RunEvent{
			RunID: "run-789",
			Seq:   42,
			Type:  models.EventExecutionFailed,
			Payload: map[string]any{
				"body": strings.Repeat("x", 8000),
			},
		}
		payload, err := json.Marshal(ev)
		require.NoError(t, err)

		result, err := truncateIfNeeded(ev, payload)
		require.NoError(t, err)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &envelope))
		assert.Equal(t, "run-789", envelope["run_id"])
		assert.Equal(t, float64(42), envelope["seq"])
		assert.Equal(t, "EXECUTION_FAILED", envelope["type"])
		assert.Equal(t, true, envelope["truncated"])
		assert.Len(t, envelope, 4, "envelope should carry only routing fields")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the fixed overhead first, then size the payload body so
		// the marshaled event lands just under maxNotifyBytes. The 20-byte
		// safety margin keeps the test stable if RunEvent grows fields with
		// non-zero defaults.
		base, err := json.Marshal(models.RunEvent{RunID: "r", Type: models.EventComplete, Payload: map[string]any{"body": ""}})
		require.NoError(t, err)
		ev := models.RunEvent{
			RunID:   "r",
			Type:    models.EventComplete,
			Payload: map[string]any{"body": strings.Repeat("b", maxNotifyBytes-len(base)-20)},
		}
		payload, err := json.Marshal(ev)
		require.NoError(t, err)
		require.LessOrEqual(t, len(payload), maxNotifyBytes, "test payload should be under limit")

		result, err := truncateIfNeeded(ev, payload)
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})
}

func TestIsLifecycle(t *testing.T) {
	tests := []struct {
		name string
		ev   models.RunEvent
		want bool
	}{
		{
			name: "requested is a lifecycle event",
			ev:   models.RunEvent{Type: models.EventRequested},
			want: true,
		},
		{
			name: "run-level execution started is a lifecycle event",
			ev:   models.RunEvent{Type: models.EventExecutionStarted},
			want: true,
		},
		{
			name: "scenario-scoped execution started is not",
			ev:   models.RunEvent{Type: models.EventExecutionStarted, ScenarioID: "scn-1"},
			want: false,
		},
		{
			name: "scenario-scoped scenario created is not",
			ev:   models.RunEvent{Type: models.EventScenarioCreated, ScenarioID: "scn-1"},
			want: false,
		},
		{
			name: "replay transition scenario created is",
			ev:   models.RunEvent{Type: models.EventScenarioCreated},
			want: true,
		},
		{
			name: "generation failure advisory is not",
			ev:   models.RunEvent{Type: models.EventScenarioGenerationFailed},
			want: false,
		},
		{
			name: "qa eval advisory failure is not",
			ev:   models.RunEvent{Type: models.EventQAEvalFailed},
			want: false,
		},
		{
			name: "step-scoped event is not",
			ev:   models.RunEvent{Type: models.EventExecutionSuccess, StepResultID: "step-1"},
			want: false,
		},
		{
			name: "cancelled is a lifecycle event",
			ev:   models.RunEvent{Type: models.EventCancelled},
			want: true,
		},
		{
			name: "terminal failure is a lifecycle event",
			ev:   models.RunEvent{Type: models.EventFailed},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLifecycle(tt.ev))
		})
	}
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
