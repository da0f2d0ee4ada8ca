package config

import (
	"fmt"
	"net/url"
)

// Bounds for queue tuning. Values outside these ranges are almost always
// configuration mistakes (e.g. seconds written where milliseconds were
// meant) and are rejected rather than silently accepted.
const (
	minWorkerCount = 1
	maxWorkerCount = 50

	minConcurrentRuns = 1
)

// ConfigValidator walks every section of a merged Config and reports the
// first problem it finds, tagged with the section and field it belongs to.
type ConfigValidator struct {
	cfg *Config
}

// NewValidator binds a validator to cfg.
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll checks the sections in order and fails fast on the first error.
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateAI(); err != nil {
		return fmt.Errorf("AI provider validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateResilience(); err != nil {
		return fmt.Errorf("resilience validation failed: %w", err)
	}

	if err := v.validateRuns(); err != nil {
		return fmt.Errorf("runs validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateAI() error {
	ai := v.cfg.AI
	if ai == nil {
		return NewValidationError("ai", "", fmt.Errorf("AI configuration is nil"))
	}

	if ai.BaseURL == "" {
		return NewValidationError("ai", "base_url", ErrMissingRequiredField)
	}
	u, err := url.Parse(ai.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewValidationError("ai", "base_url", fmt.Errorf("%w: must be an http(s) URL, got %q", ErrInvalidValue, ai.BaseURL))
	}

	if ai.Model == "" {
		return NewValidationError("ai", "model", ErrMissingRequiredField)
	}

	if ai.Temperature < 0 || ai.Temperature > 2 {
		return NewValidationError("ai", "temperature", fmt.Errorf("%w: must be within 0..2, got %v", ErrInvalidValue, ai.Temperature))
	}
	if ai.MaxTokens < 0 {
		return NewValidationError("ai", "max_tokens", fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidValue, ai.MaxTokens))
	}
	if ai.RequestTimeout < 0 {
		return NewValidationError("ai", "request_timeout", fmt.Errorf("%w: must be >= 0, got %v", ErrInvalidValue, ai.RequestTimeout))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	queue := v.cfg.Queue
	if queue == nil {
		return NewValidationError("queue", "", fmt.Errorf("queue configuration is nil"))
	}

	if queue.WorkerCount < minWorkerCount || queue.WorkerCount > maxWorkerCount {
		return NewValidationError("queue", "worker_count",
			fmt.Errorf("%w: worker_count must be between %d and %d, got %d", ErrInvalidValue, minWorkerCount, maxWorkerCount, queue.WorkerCount))
	}

	if queue.MaxConcurrentRuns < minConcurrentRuns {
		return NewValidationError("queue", "max_concurrent_runs",
			fmt.Errorf("%w: max_concurrent_runs must be at least %d, got %d", ErrInvalidValue, minConcurrentRuns, queue.MaxConcurrentRuns))
	}

	if queue.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval",
			fmt.Errorf("%w: poll_interval must be positive, got %v", ErrInvalidValue, queue.PollInterval))
	}
	if queue.PollIntervalJitter < 0 {
		return NewValidationError("queue", "poll_interval_jitter",
			fmt.Errorf("%w: poll_interval_jitter must be non-negative, got %v", ErrInvalidValue, queue.PollIntervalJitter))
	}
	if queue.PollIntervalJitter >= queue.PollInterval {
		return NewValidationError("queue", "poll_interval_jitter",
			fmt.Errorf("%w: poll_interval_jitter (%v) must be less than poll_interval (%v)", ErrInvalidValue, queue.PollIntervalJitter, queue.PollInterval))
	}

	if queue.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval",
			fmt.Errorf("%w: heartbeat_interval must be positive, got %v", ErrInvalidValue, queue.HeartbeatInterval))
	}
	if queue.RunTimeout <= 0 {
		return NewValidationError("queue", "run_timeout",
			fmt.Errorf("%w: run_timeout must be positive, got %v", ErrInvalidValue, queue.RunTimeout))
	}
	if queue.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "graceful_shutdown_timeout",
			fmt.Errorf("%w: graceful_shutdown_timeout must be positive, got %v", ErrInvalidValue, queue.GracefulShutdownTimeout))
	}

	if queue.OrphanDetectionInterval <= 0 {
		return NewValidationError("queue", "orphan_detection_interval",
			fmt.Errorf("%w: orphan_detection_interval must be positive, got %v", ErrInvalidValue, queue.OrphanDetectionInterval))
	}
	if queue.OrphanThreshold <= 0 {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Errorf("%w: orphan_threshold must be positive, got %v", ErrInvalidValue, queue.OrphanThreshold))
	}
	// Healthy runs must heartbeat well inside the threshold, or they get
	// recovered out from under live workers.
	if queue.HeartbeatInterval >= queue.OrphanThreshold {
		return NewValidationError("queue", "heartbeat_interval",
			fmt.Errorf("%w: heartbeat_interval (%v) must be less than orphan_threshold (%v)", ErrInvalidValue, queue.HeartbeatInterval, queue.OrphanThreshold))
	}

	return nil
}

func (v *ConfigValidator) validateResilience() error {
	r := v.cfg.Resilience
	if r == nil {
		return NewValidationError("resilience", "", fmt.Errorf("resilience configuration is nil"))
	}

	if err := v.validateEnvelope("resilience.ai", &r.AI); err != nil {
		return err
	}
	return v.validateEnvelope("resilience.sut", &r.SUT)
}

func (v *ConfigValidator) validateEnvelope(section string, e *EnvelopeSettings) error {
	if e.AcquireTimeout < 0 {
		return NewValidationError(section, "acquire_timeout",
			fmt.Errorf("%w: must be >= 0, got %v", ErrInvalidValue, e.AcquireTimeout))
	}
	if e.RatePerSecond < 0 {
		return NewValidationError(section, "rate_per_second",
			fmt.Errorf("%w: must be >= 0, got %v", ErrInvalidValue, e.RatePerSecond))
	}
	if e.Burst < 0 {
		return NewValidationError(section, "burst",
			fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidValue, e.Burst))
	}
	if e.RatePerSecond > 0 && e.Burst == 0 {
		return NewValidationError(section, "burst",
			fmt.Errorf("%w: burst must be positive when rate_per_second is set", ErrInvalidValue))
	}
	if e.MaxRetries < 0 {
		return NewValidationError(section, "max_retries",
			fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidValue, e.MaxRetries))
	}
	if e.RetryBaseDelay < 0 {
		return NewValidationError(section, "retry_base_delay",
			fmt.Errorf("%w: must be >= 0, got %v", ErrInvalidValue, e.RetryBaseDelay))
	}
	if e.BreakerFailureRatio < 0 || e.BreakerFailureRatio > 1 {
		return NewValidationError(section, "breaker_failure_ratio",
			fmt.Errorf("%w: must be within 0..1, got %v", ErrInvalidValue, e.BreakerFailureRatio))
	}
	if e.BreakerOpenTimeout < 0 {
		return NewValidationError(section, "breaker_open_timeout",
			fmt.Errorf("%w: must be >= 0, got %v", ErrInvalidValue, e.BreakerOpenTimeout))
	}
	return nil
}

func (v *ConfigValidator) validateRuns() error {
	runs := v.cfg.Runs
	if runs == nil {
		return NewValidationError("runs", "", fmt.Errorf("runs configuration is nil"))
	}

	if runs.BodyTruncateBytes < 0 {
		return NewValidationError("runs", "body_truncate_bytes",
			fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidValue, runs.BodyTruncateBytes))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	retention := v.cfg.Retention
	if retention == nil {
		return NewValidationError("retention", "", fmt.Errorf("retention configuration is nil"))
	}

	if retention.RunRetentionDays < 1 {
		return NewValidationError("retention", "run_retention_days",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, retention.RunRetentionDays))
	}
	if retention.BodyRetention <= 0 {
		return NewValidationError("retention", "body_retention",
			fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, retention.BodyRetention))
	}
	if retention.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval",
			fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, retention.CleanupInterval))
	}

	return nil
}
