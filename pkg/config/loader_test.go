package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a qawave.yaml into a fresh temp dir and returns the dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "qawave.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return configDir
}

func TestInitialize(t *testing.T) {
	configDir := writeConfig(t, `
ai:
  base_url: "https://models.example.com/v1"
  model: "gpt-4o"
queue:
  worker_count: 3
  run_timeout: 10m
runs:
  body_truncate_bytes: 32768
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// User values override defaults.
	assert.Equal(t, "https://models.example.com/v1", cfg.AI.BaseURL)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.RunTimeout)
	assert.Equal(t, 32768, cfg.Runs.BodyTruncateBytes)

	// Unset fields keep their built-in defaults.
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentRuns)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, DefaultAIConfig().Temperature, cfg.AI.Temperature)
	assert.Equal(t, DefaultResilienceConfig().AI.MaxRetries, cfg.Resilience.AI.MaxRetries)
	assert.Equal(t, DefaultRetentionConfig().RunRetentionDays, cfg.Retention.RunRetentionDays)

	assert.Equal(t, configDir, cfg.ConfigDir())
}

func TestInitializeOmittedSectionsKeepDefaults(t *testing.T) {
	// A file configuring only the AI section leaves everything else at defaults.
	configDir := writeConfig(t, `
ai:
  model: "llama3.1:70b"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.Equal(t, "llama3.1:70b", cfg.AI.Model)
	assert.Equal(t, DefaultAIConfig().BaseURL, cfg.AI.BaseURL)
	assert.Equal(t, DefaultQueueConfig().WorkerCount, cfg.Queue.WorkerCount)
	assert.Equal(t, DefaultRunsConfig().BodyTruncateBytes, cfg.Runs.BodyTruncateBytes)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeConfig(t, "queue: [not: a: mapping")

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := writeConfig(t, `
queue:
  worker_count: 500
`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "worker_count")
}

func TestInitializeExpandsEnvTemplates(t *testing.T) {
	t.Setenv("TEST_AI_HOST", "inference.internal")

	configDir := writeConfig(t, `
ai:
  base_url: "https://{{.TEST_AI_HOST}}/v1"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, "https://inference.internal/v1", cfg.AI.BaseURL)
}

func TestInitializePreservesDollarPlaceholders(t *testing.T) {
	// ${...} must survive the file verbatim: scenario templates rely on it.
	configDir := writeConfig(t, `
ai:
  extra_headers:
    X-Tenant: "${extract.tenant_id}"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, "${extract.tenant_id}", cfg.AI.ExtraHeaders["X-Tenant"])
}
