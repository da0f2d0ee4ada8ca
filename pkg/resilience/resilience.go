// Package resilience shields outbound dependencies (the AI provider, the
// system under test) behind a composed protection envelope: a bulkhead
// bounds concurrency, a rate limiter smooths call rate, a circuit breaker
// sheds load from a failing dependency, retries absorb transient faults,
// and an optional fallback supplies a degraded result.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var (
	// ErrOverloaded is returned when the bulkhead cannot admit the call
	// within its bounded wait.
	ErrOverloaded = errors.New("dependency at capacity")
	// ErrCircuitOpen is returned when the circuit breaker is shedding load.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// Config tunes one envelope. Zero values disable the corresponding layer
// except the breaker, which is always armed.
type Config struct {
	// Name labels the breaker in logs and state change events.
	Name string
	// MaxConcurrent bounds in-flight calls; 0 disables the bulkhead.
	MaxConcurrent int
	// AcquireTimeout bounds the bulkhead wait before ErrOverloaded.
	AcquireTimeout time.Duration
	// RatePerSecond smooths the call rate; 0 disables the limiter.
	RatePerSecond float64
	// Burst is the limiter bucket size; defaults to 1 when rate limited.
	Burst int
	// MaxRetries bounds retry attempts after the first call.
	MaxRetries int
	// RetryBaseDelay seeds the exponential backoff between retries.
	RetryBaseDelay time.Duration

	// BreakerMinRequests is the minimum closed-window call count before
	// the failure ratio can trip the breaker.
	BreakerMinRequests uint32
	// BreakerFailureRatio trips the breaker at or above this ratio.
	BreakerFailureRatio float64
	// BreakerOpenTimeout is how long the breaker stays open before
	// probing.
	BreakerOpenTimeout time.Duration
	// BreakerHalfOpenCalls is the probe budget in half-open state.
	BreakerHalfOpenCalls uint32
}

// DefaultConfig returns the standard protection profile.
func DefaultConfig(name string) Config {
	return Config{
		Name:                 name,
		MaxConcurrent:        10,
		AcquireTimeout:       10 * time.Second,
		MaxRetries:           2,
		RetryBaseDelay:       100 * time.Millisecond,
		BreakerMinRequests:   5,
		BreakerFailureRatio:  0.5,
		BreakerOpenTimeout:   30 * time.Second,
		BreakerHalfOpenCalls: 3,
	}
}

func (c Config) withDefaults() Config {
	if c.AcquireTimeout <= 0 {
		c.AcquireTimeout = 10 * time.Second
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = 100 * time.Millisecond
	}
	if c.Burst <= 0 {
		c.Burst = 1
	}
	if c.BreakerMinRequests == 0 {
		c.BreakerMinRequests = 5
	}
	if c.BreakerFailureRatio <= 0 {
		c.BreakerFailureRatio = 0.5
	}
	if c.BreakerOpenTimeout <= 0 {
		c.BreakerOpenTimeout = 30 * time.Second
	}
	if c.BreakerHalfOpenCalls == 0 {
		c.BreakerHalfOpenCalls = 3
	}
	return c
}

// Envelope composes the protection layers around calls producing a T.
// Calls pass the bulkhead, then the rate limiter, then the breaker; retries
// run inside the breaker so one admitted call counts once against it.
type Envelope[T any] struct {
	cfg      Config
	sem      *semaphore.Weighted
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[T]
	logger   *slog.Logger
	retry    func(error) bool
	fallback func(ctx context.Context, cause error) (T, error)
	onEvent  func(Event)
}

// Event reports envelope activity for journaling.
type Event struct {
	// Kind is one of "retry", "breaker_state", "fallback".
	Kind    string
	Name    string
	Attempt int
	State   string
	Cause   error
}

// Option customizes an Envelope.
type Option[T any] func(*Envelope[T])

// WithRetryClassifier sets the predicate deciding which errors retry.
// The default retries everything except context cancellation.
func WithRetryClassifier[T any](classify func(error) bool) Option[T] {
	return func(e *Envelope[T]) { e.retry = classify }
}

// WithFallback sets the degraded-result producer engaged after the other
// layers give up.
func WithFallback[T any](fallback func(ctx context.Context, cause error) (T, error)) Option[T] {
	return func(e *Envelope[T]) { e.fallback = fallback }
}

// WithEventHook observes retries, breaker transitions, and fallback
// engagement.
func WithEventHook[T any](hook func(Event)) Option[T] {
	return func(e *Envelope[T]) { e.onEvent = hook }
}

// WithLogger overrides the envelope logger.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(e *Envelope[T]) { e.logger = logger }
}

// New builds an envelope from config.
func New[T any](cfg Config, opts ...Option[T]) *Envelope[T] {
	cfg = cfg.withDefaults()
	e := &Envelope[T]{
		cfg:    cfg,
		logger: slog.Default(),
		retry:  defaultRetryClassifier,
	}
	for _, opt := range opts {
		opt(e)
	}
	if cfg.MaxConcurrent > 0 {
		e.sem = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}
	if cfg.RatePerSecond > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst)
	}
	e.breaker = gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.BreakerHalfOpenCalls,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.BreakerFailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			e.logger.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
			e.emit(Event{Kind: "breaker_state", Name: name, State: to.String()})
		},
	})
	return e
}

// Execute runs op under the full envelope.
func (e *Envelope[T]) Execute(ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if e.sem != nil {
		acquireCtx, cancel := context.WithTimeout(ctx, e.cfg.AcquireTimeout)
		err := e.sem.Acquire(acquireCtx, 1)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return e.engageFallback(ctx, ctx.Err())
			}
			return e.engageFallback(ctx, fmt.Errorf("%w: %s", ErrOverloaded, e.cfg.Name))
		}
		defer e.sem.Release(1)
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return zero, err
		}
	}

	result, err := e.breaker.Execute(func() (T, error) {
		return e.executeWithRetry(ctx, op)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %s", ErrCircuitOpen, e.cfg.Name)
		}
		return e.engageFallback(ctx, err)
	}
	return result, nil
}

func (e *Envelope[T]) executeWithRetry(ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = e.cfg.RetryBaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0.2
	bo.MaxElapsedTime = 0
	bo.Reset()

	var zero T
	attempt := 0
	for {
		attempt++
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if attempt > e.cfg.MaxRetries || !e.retry(err) {
			return zero, err
		}
		delay := bo.NextBackOff()
		e.logger.Warn("retrying after failure",
			"name", e.cfg.Name,
			"attempt", attempt,
			"max_retries", e.cfg.MaxRetries,
			"delay", delay,
			"error", err)
		e.emit(Event{Kind: "retry", Name: e.cfg.Name, Attempt: attempt, Cause: err})
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

func (e *Envelope[T]) engageFallback(ctx context.Context, cause error) (T, error) {
	if e.fallback == nil || errors.Is(cause, context.Canceled) {
		var zero T
		return zero, cause
	}
	e.logger.Warn("fallback engaged", "name", e.cfg.Name, "cause", cause)
	e.emit(Event{Kind: "fallback", Name: e.cfg.Name, Cause: cause})
	return e.fallback(ctx, cause)
}

// State exposes the breaker state for health reporting.
func (e *Envelope[T]) State() string {
	return e.breaker.State().String()
}

func (e *Envelope[T]) emit(ev Event) {
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}

func defaultRetryClassifier(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
