package config

// RunsConfig holds daemon-wide run processing limits. These are storage
// and safety ceilings, not per-run behavior; per-run options travel in
// models.RunConfig.
type RunsConfig struct {
	// BodyTruncateBytes caps the stored copy of a step's response body.
	// The full body's digest is always recorded; only the stored excerpt
	// is cut. Zero keeps the built-in default.
	BodyTruncateBytes int `yaml:"body_truncate_bytes"`
}

// DefaultRunsConfig returns the built-in run processing defaults.
func DefaultRunsConfig() *RunsConfig {
	return &RunsConfig{
		BodyTruncateBytes: 64 * 1024,
	}
}
