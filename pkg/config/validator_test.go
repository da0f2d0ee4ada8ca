package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAI(t *testing.T) {
	tests := []struct {
		name    string
		ai      *AIConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			ai:      DefaultAIConfig(),
			wantErr: false,
		},
		{
			name:    "nil AI config",
			ai:      nil,
			wantErr: true,
			errMsg:  "AI configuration is nil",
		},
		{
			name: "missing base URL",
			ai: func() *AIConfig {
				a := DefaultAIConfig()
				a.BaseURL = ""
				return a
			}(),
			wantErr: true,
			errMsg:  "base_url",
		},
		{
			name: "base URL with unsupported scheme",
			ai: func() *AIConfig {
				a := DefaultAIConfig()
				a.BaseURL = "ftp://models.example.com"
				return a
			}(),
			wantErr: true,
			errMsg:  "must be an http(s) URL",
		},
		{
			name: "base URL without host",
			ai: func() *AIConfig {
				a := DefaultAIConfig()
				a.BaseURL = "http://"
				return a
			}(),
			wantErr: true,
			errMsg:  "must be an http(s) URL",
		},
		{
			name: "missing model",
			ai: func() *AIConfig {
				a := DefaultAIConfig()
				a.Model = ""
				return a
			}(),
			wantErr: true,
			errMsg:  "model",
		},
		{
			name: "temperature below range",
			ai: func() *AIConfig {
				a := DefaultAIConfig()
				a.Temperature = -0.1
				return a
			}(),
			wantErr: true,
			errMsg:  "temperature",
		},
		{
			name: "temperature above range",
			ai: func() *AIConfig {
				a := DefaultAIConfig()
				a.Temperature = 2.5
				return a
			}(),
			wantErr: true,
			errMsg:  "temperature",
		},
		{
			name: "negative max tokens",
			ai: func() *AIConfig {
				a := DefaultAIConfig()
				a.MaxTokens = -1
				return a
			}(),
			wantErr: true,
			errMsg:  "max_tokens",
		},
		{
			name: "https base URL is valid",
			ai: func() *AIConfig {
				a := DefaultAIConfig()
				a.BaseURL = "https://api.openai.com/v1"
				return a
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AI: tt.ai}
			validator := NewValidator(cfg)
			err := validator.validateAI()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateResilience(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ResilienceConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(*ResilienceConfig) {},
			wantErr: false,
		},
		{
			name: "negative acquire timeout",
			mutate: func(r *ResilienceConfig) {
				r.AI.AcquireTimeout = -1 * time.Second
			},
			wantErr: true,
			errMsg:  "acquire_timeout",
		},
		{
			name: "negative rate",
			mutate: func(r *ResilienceConfig) {
				r.SUT.RatePerSecond = -10
			},
			wantErr: true,
			errMsg:  "rate_per_second",
		},
		{
			name: "rate set without burst",
			mutate: func(r *ResilienceConfig) {
				r.SUT.RatePerSecond = 25
				r.SUT.Burst = 0
			},
			wantErr: true,
			errMsg:  "burst must be positive when rate_per_second is set",
		},
		{
			name: "negative retries",
			mutate: func(r *ResilienceConfig) {
				r.AI.MaxRetries = -1
			},
			wantErr: true,
			errMsg:  "max_retries",
		},
		{
			name: "failure ratio above one",
			mutate: func(r *ResilienceConfig) {
				r.AI.BreakerFailureRatio = 1.5
			},
			wantErr: true,
			errMsg:  "breaker_failure_ratio",
		},
		{
			name: "zero rate disables limiting and is valid",
			mutate: func(r *ResilienceConfig) {
				r.AI.RatePerSecond = 0
				r.AI.Burst = 0
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultResilienceConfig()
			tt.mutate(r)

			cfg := &Config{Resilience: r}
			validator := NewValidator(cfg)
			err := validator.validateResilience()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRetention(t *testing.T) {
	tests := []struct {
		name      string
		retention *RetentionConfig
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid defaults",
			retention: DefaultRetentionConfig(),
			wantErr:   false,
		},
		{
			name:      "nil retention",
			retention: nil,
			wantErr:   true,
			errMsg:    "retention configuration is nil",
		},
		{
			name: "run retention below one day",
			retention: func() *RetentionConfig {
				r := DefaultRetentionConfig()
				r.RunRetentionDays = 0
				return r
			}(),
			wantErr: true,
			errMsg:  "run_retention_days",
		},
		{
			name: "body retention zero",
			retention: func() *RetentionConfig {
				r := DefaultRetentionConfig()
				r.BodyRetention = 0
				return r
			}(),
			wantErr: true,
			errMsg:  "body_retention",
		},
		{
			name: "cleanup interval zero",
			retention: func() *RetentionConfig {
				r := DefaultRetentionConfig()
				r.CleanupInterval = 0
				return r
			}(),
			wantErr: true,
			errMsg:  "cleanup_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Retention: tt.retention}
			validator := NewValidator(cfg)
			err := validator.validateRetention()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	t.Run("default config passes", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("fails fast on first invalid section", func(t *testing.T) {
		cfg := Default()
		cfg.AI.Model = ""
		cfg.Queue.WorkerCount = 0

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		// AI is validated before queue, so its error surfaces first.
		assert.Contains(t, err.Error(), "AI provider validation failed")
		assert.NotContains(t, err.Error(), "worker_count")
	})

	t.Run("negative body truncate rejected", func(t *testing.T) {
		cfg := Default()
		cfg.Runs.BodyTruncateBytes = -1

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "body_truncate_bytes")
	})
}
