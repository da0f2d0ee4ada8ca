package config

import "time"

// RetentionConfig decides how long finished run data survives.
type RetentionConfig struct {
	// RunRetentionDays is how many days to keep terminal runs before
	// deleting them. Deleting a run cascades to its scenarios, step
	// results, events, payload, and reports.
	RunRetentionDays int `yaml:"run_retention_days"`

	// BodyRetention is how long raw response body excerpts stay on step
	// results. Older results keep their digest and assertion record but
	// lose the stored body excerpt.
	BodyRetention time.Duration `yaml:"body_retention"`

	// CleanupInterval is the period of the retention loop.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig is the built-in retention policy.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays: 180,
		BodyRetention:    7 * 24 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}
