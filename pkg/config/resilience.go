package config

import "time"

// EnvelopeSettings tunes one protection envelope (bulkhead wait, rate
// limiter, circuit breaker, retry budget). Concurrency bounds come from
// the run's own config at pipeline start; everything else is daemon-wide.
type EnvelopeSettings struct {
	// AcquireTimeout bounds how long a call waits for a bulkhead slot
	// before it is rejected as overloaded.
	AcquireTimeout time.Duration `yaml:"acquire_timeout"`

	// RatePerSecond smooths the outbound call rate. Zero disables the
	// rate limiter.
	RatePerSecond float64 `yaml:"rate_per_second"`

	// Burst is the rate limiter bucket size.
	Burst int `yaml:"burst"`

	// MaxRetries bounds retry attempts after the first call.
	MaxRetries int `yaml:"max_retries"`

	// RetryBaseDelay seeds the exponential backoff between retries.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`

	// BreakerMinRequests is the minimum call count in the closed window
	// before the failure ratio can trip the breaker.
	BreakerMinRequests uint32 `yaml:"breaker_min_requests"`

	// BreakerFailureRatio trips the breaker at or above this ratio.
	BreakerFailureRatio float64 `yaml:"breaker_failure_ratio"`

	// BreakerOpenTimeout is how long the breaker stays open before probing.
	BreakerOpenTimeout time.Duration `yaml:"breaker_open_timeout"`

	// BreakerHalfOpenCalls is the probe budget in half-open state.
	BreakerHalfOpenCalls uint32 `yaml:"breaker_half_open_calls"`
}

// ResilienceConfig groups the two envelopes the pipeline carries: one
// around AI provider calls, one around outbound HTTP to the system under
// test.
type ResilienceConfig struct {
	AI  EnvelopeSettings `yaml:"ai"`
	SUT EnvelopeSettings `yaml:"sut"`
}

// DefaultResilienceConfig returns the built-in envelope defaults. The AI
// profile is conservative (providers rate-limit hard); the SUT profile
// admits more throughput and leaves retries to the step executor, which
// classifies transport faults itself.
func DefaultResilienceConfig() *ResilienceConfig {
	return &ResilienceConfig{
		AI: EnvelopeSettings{
			AcquireTimeout:       30 * time.Second,
			RatePerSecond:        2,
			Burst:                4,
			MaxRetries:           2,
			RetryBaseDelay:       500 * time.Millisecond,
			BreakerMinRequests:   5,
			BreakerFailureRatio:  0.5,
			BreakerOpenTimeout:   30 * time.Second,
			BreakerHalfOpenCalls: 3,
		},
		SUT: EnvelopeSettings{
			AcquireTimeout:       10 * time.Second,
			RatePerSecond:        50,
			Burst:                100,
			MaxRetries:           0,
			BreakerMinRequests:   10,
			BreakerFailureRatio:  0.8,
			BreakerOpenTimeout:   15 * time.Second,
			BreakerHalfOpenCalls: 3,
		},
	}
}
