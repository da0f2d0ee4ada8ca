package config

// Config is the umbrella configuration object for the daemon: the AI
// provider, the run queue, the resilience envelopes, run processing
// defaults, and data retention. This is the primary object returned by
// Initialize() and threaded into the pipeline executor and worker pool.
//
// Per-run behavior (scenario budgets, concurrency, step timeouts) does NOT
// live here; that is models.RunConfig, carried on each run at creation time.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// AI provider connection and generation defaults
	AI *AIConfig

	// Queue and worker pool tuning
	Queue *QueueConfig

	// Protection envelopes for the AI provider and the system under test
	Resilience *ResilienceConfig

	// Run processing limits
	Runs *RunsConfig

	// Data retention and cleanup
	Retention *RetentionConfig
}

// ConfigDir is the directory this configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Default returns a Config with every section at its built-in defaults.
// Tests and embedded harnesses start here and override what they need;
// the daemon goes through Initialize instead.
func Default() *Config {
	return &Config{
		AI:         DefaultAIConfig(),
		Queue:      DefaultQueueConfig(),
		Resilience: DefaultResilienceConfig(),
		Runs:       DefaultRunsConfig(),
		Retention:  DefaultRetentionConfig(),
	}
}
