package config

import (
	"os"
	"time"
)

// AIConfig describes the scenario-generation provider. The daemon speaks
// the OpenAI chat completions wire format, so any compatible endpoint
// works; only the API key stays out of the file, referenced by the name of
// the environment variable that holds it.
type AIConfig struct {
	// BaseURL is the provider root, e.g. "https://api.openai.com".
	BaseURL string `yaml:"base_url"`

	// Model is the model identifier sent with every completion.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Path overrides the completions endpoint path when the provider
	// deviates from /v1/chat/completions.
	Path string `yaml:"path,omitempty"`

	// Temperature for generation calls. Zero means provider default.
	Temperature float64 `yaml:"temperature,omitempty"`

	// MaxTokens caps each completion. Zero means provider default.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// RequestTimeout bounds a single completion call.
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`

	// ExtraHeaders are sent verbatim with every provider request
	// (organization IDs, routing hints).
	ExtraHeaders map[string]string `yaml:"extra_headers,omitempty"`
}

// DefaultAIConfig returns the built-in AI provider defaults.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		BaseURL:        "http://localhost:11434",
		Model:          "gpt-4o-mini",
		APIKeyEnv:      "QAWAVE_AI_API_KEY",
		Temperature:    0.2,
		MaxTokens:      4096,
		RequestTimeout: 2 * time.Minute,
	}
}

// APIKey resolves the key from the configured environment variable.
// Empty when unset; providers that require no auth accept that.
func (c *AIConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}
