package config

import "time"

// QueueConfig tunes how runs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is how many claim goroutines each replica runs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns caps in-flight runs across every replica at once,
	// enforced by a database count before each claim.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base wait between queue checks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter widens each wait to a uniform pick from
	// PollInterval plus or minus this value.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a worker refreshes the claim
	// liveness marker of the run it is processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// RunTimeout is the whole-run deadline: the maximum time a claimed
	// run may spend in the pipeline before it is cancelled.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active runs
	// to complete during shutdown. Should match RunTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is the period of the orphan scan.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is the heartbeat silence after which a claimed run
	// counts as orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig is the built-in queue tuning.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		RunTimeout:              30 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
