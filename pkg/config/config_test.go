package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg.AI)
	require.NotNil(t, cfg.Queue)
	require.NotNil(t, cfg.Resilience)
	require.NotNil(t, cfg.Runs)
	require.NotNil(t, cfg.Retention)

	// The built-in defaults must themselves be valid.
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestDefaultAIConfig(t *testing.T) {
	cfg := DefaultAIConfig()

	assert.Equal(t, "http://localhost:11434", cfg.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "QAWAVE_AI_API_KEY", cfg.APIKeyEnv)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
}

func TestAIConfigAPIKey(t *testing.T) {
	t.Run("resolves from environment", func(t *testing.T) {
		t.Setenv("QAWAVE_TEST_KEY", "sk-test-123")
		cfg := &AIConfig{APIKeyEnv: "QAWAVE_TEST_KEY"}
		assert.Equal(t, "sk-test-123", cfg.APIKey())
	})

	t.Run("empty when variable unset", func(t *testing.T) {
		cfg := &AIConfig{APIKeyEnv: "QAWAVE_DEFINITELY_UNSET_KEY"}
		assert.Empty(t, cfg.APIKey())
	})

	t.Run("empty when no variable configured", func(t *testing.T) {
		cfg := &AIConfig{}
		assert.Empty(t, cfg.APIKey())
	})
}

func TestDefaultResilienceConfig(t *testing.T) {
	cfg := DefaultResilienceConfig()

	// AI envelope is the conservative one.
	assert.Equal(t, 2, cfg.AI.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.AI.RetryBaseDelay)
	assert.Equal(t, float64(2), cfg.AI.RatePerSecond)

	// SUT envelope admits more throughput and never retries at this layer.
	assert.Equal(t, 0, cfg.SUT.MaxRetries)
	assert.Equal(t, float64(50), cfg.SUT.RatePerSecond)
	assert.Greater(t, cfg.SUT.BreakerFailureRatio, cfg.AI.BreakerFailureRatio)
}
