package resilience

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(name string) Config {
	cfg := DefaultConfig(name)
	cfg.RetryBaseDelay = time.Millisecond
	cfg.AcquireTimeout = 50 * time.Millisecond
	return cfg
}

func TestEnvelopePassesResultThrough(t *testing.T) {
	env := New[string](testConfig("pass"))

	result, err := env.Execute(context.Background(), func(ctx context.Context) (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestEnvelopeBulkheadRejectsWhenSaturated(t *testing.T) {
	cfg := testConfig("bulkhead")
	cfg.MaxConcurrent = 1
	cfg.AcquireTimeout = 20 * time.Millisecond
	env := New[int](cfg)

	release := make(chan struct{})
	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = env.Execute(context.Background(), func(ctx context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started

	_, err := env.Execute(context.Background(), func(ctx context.Context) (int, error) {
		return 2, nil
	})
	require.ErrorIs(t, err, ErrOverloaded)

	close(release)
	wg.Wait()

	// Capacity is released once the first call finishes.
	result, err := env.Execute(context.Background(), func(ctx context.Context) (int, error) {
		return 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result)
}

func TestEnvelopeRetriesTransientFailures(t *testing.T) {
	cfg := testConfig("retry")
	cfg.MaxRetries = 2
	env := New[string](cfg)

	calls := 0
	result, err := env.Execute(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "recovered", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 3, calls)
}

func TestEnvelopeExhaustsRetries(t *testing.T) {
	cfg := testConfig("exhaust")
	cfg.MaxRetries = 2
	env := New[string](cfg)

	calls := 0
	_, err := env.Execute(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("still broken")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestEnvelopeRespectsRetryClassifier(t *testing.T) {
	cfg := testConfig("classifier")
	cfg.MaxRetries = 5
	permanent := errors.New("permanent")
	env := New[string](cfg, WithRetryClassifier[string](func(err error) bool {
		return !errors.Is(err, permanent)
	}))

	calls := 0
	_, err := env.Execute(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", permanent
	})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls, "permanent errors must not retry")
}

func TestEnvelopeBreakerOpensAfterFailures(t *testing.T) {
	cfg := testConfig("breaker")
	cfg.MaxRetries = 0
	cfg.BreakerMinRequests = 3
	env := New[int](cfg)

	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		_, err := env.Execute(context.Background(), func(ctx context.Context) (int, error) {
			return 0, boom
		})
		require.ErrorIs(t, err, boom)
	}
	assert.Equal(t, "open", env.State())

	calls := 0
	_, err := env.Execute(context.Background(), func(ctx context.Context) (int, error) {
		calls++
		return 0, nil
	})
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Zero(t, calls, "open breaker must shed the call before it runs")
}

func TestEnvelopeBreakerRecoversAfterTimeout(t *testing.T) {
	cfg := testConfig("recover")
	cfg.MaxRetries = 0
	cfg.BreakerMinRequests = 2
	cfg.BreakerOpenTimeout = 20 * time.Millisecond
	env := New[int](cfg)

	boom := errors.New("boom")
	for i := 0; i < 2; i++ {
		_, _ = env.Execute(context.Background(), func(ctx context.Context) (int, error) {
			return 0, boom
		})
	}
	require.Equal(t, "open", env.State())

	time.Sleep(30 * time.Millisecond)

	result, err := env.Execute(context.Background(), func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, result)
}

func TestEnvelopeFallbackEngagesOnFailure(t *testing.T) {
	cfg := testConfig("fallback")
	cfg.MaxRetries = 1
	var events []Event
	env := New[string](cfg,
		WithFallback[string](func(ctx context.Context, cause error) (string, error) {
			return "degraded", nil
		}),
		WithEventHook[string](func(ev Event) {
			events = append(events, ev)
		}))

	result, err := env.Execute(context.Background(), func(ctx context.Context) (string, error) {
		return "", errors.New("down")
	})

	require.NoError(t, err)
	assert.Equal(t, "degraded", result)

	var kinds []string
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Contains(t, kinds, "retry")
	assert.Contains(t, kinds, "fallback")
}

func TestEnvelopeFallbackEngagesWhenOverloaded(t *testing.T) {
	cfg := testConfig("overloaded-fallback")
	cfg.MaxConcurrent = 1
	cfg.AcquireTimeout = 10 * time.Millisecond
	env := New[string](cfg, WithFallback[string](func(ctx context.Context, cause error) (string, error) {
		if errors.Is(cause, ErrOverloaded) {
			return "shed", nil
		}
		return "", cause
	}))

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _ = env.Execute(context.Background(), func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "", nil
		})
	}()
	<-started
	defer close(release)

	result, err := env.Execute(context.Background(), func(ctx context.Context) (string, error) {
		return "never", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "shed", result)
}

func TestEnvelopeCancellationSkipsRetryAndFallback(t *testing.T) {
	cfg := testConfig("cancel")
	cfg.MaxRetries = 5
	fallbackCalled := false
	env := New[string](cfg, WithFallback[string](func(ctx context.Context, cause error) (string, error) {
		fallbackCalled = true
		return "degraded", nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := env.Execute(ctx, func(ctx context.Context) (string, error) {
		calls++
		cancel()
		return "", errors.New("interrupted")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.False(t, fallbackCalled, "cancellation is not a dependency failure")
}

func TestEnvelopeRateLimiterSmoothsCalls(t *testing.T) {
	cfg := testConfig("ratelimit")
	cfg.RatePerSecond = 50
	cfg.Burst = 1
	env := New[int](cfg)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := env.Execute(context.Background(), func(ctx context.Context) (int, error) {
			return i, nil
		})
		require.NoError(t, err)
	}
	// Burst of 1 at 50/s forces two waits of ~20ms each.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
