package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStatusValid(t *testing.T) {
	for _, s := range AllRunStatuses {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, RunStatus("").Valid())
	assert.False(t, RunStatus("paused").Valid())
}

func TestRunStatusTerminal(t *testing.T) {
	terminals := []RunStatus{
		RunStatusComplete,
		RunStatusCancelled,
		RunStatusFailedSpecFetch,
		RunStatusFailedGeneration,
		RunStatusFailedExecution,
	}
	for _, s := range terminals {
		assert.True(t, s.Terminal(), "status %q should be terminal", s)
	}

	nonTerminals := []RunStatus{
		RunStatusRequested,
		RunStatusSpecFetched,
		RunStatusAISuccess,
		RunStatusExecutionInProgress,
		RunStatusExecutionComplete,
		RunStatusQAEvalInProgress,
		RunStatusQAEvalDone,
	}
	for _, s := range nonTerminals {
		assert.False(t, s.Terminal(), "status %q should not be terminal", s)
	}
}

func TestRunStatusCanTransitionTo(t *testing.T) {
	t.Run("happy path chain", func(t *testing.T) {
		chain := []RunStatus{
			RunStatusRequested,
			RunStatusSpecFetched,
			RunStatusAISuccess,
			RunStatusExecutionInProgress,
			RunStatusExecutionComplete,
			RunStatusQAEvalInProgress,
			RunStatusQAEvalDone,
			RunStatusComplete,
		}
		for i := 0; i < len(chain)-1; i++ {
			assert.True(t, chain[i].CanTransitionTo(chain[i+1]),
				"%q -> %q should be legal", chain[i], chain[i+1])
		}
	})

	t.Run("failure branches", func(t *testing.T) {
		assert.True(t, RunStatusRequested.CanTransitionTo(RunStatusFailedSpecFetch))
		assert.True(t, RunStatusSpecFetched.CanTransitionTo(RunStatusFailedGeneration))
		assert.True(t, RunStatusAISuccess.CanTransitionTo(RunStatusFailedExecution))
		assert.True(t, RunStatusExecutionInProgress.CanTransitionTo(RunStatusFailedExecution))

		// Once execution finished, only evaluation or cancellation remain.
		assert.False(t, RunStatusExecutionComplete.CanTransitionTo(RunStatusFailedExecution))
	})

	t.Run("cancel from any non-terminal", func(t *testing.T) {
		for _, s := range AllRunStatuses {
			if s.Terminal() {
				continue
			}
			assert.True(t, s.CanTransitionTo(RunStatusCancelled),
				"%q -> cancelled should be legal", s)
		}
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		for _, from := range AllRunStatuses {
			if !from.Terminal() {
				continue
			}
			for _, to := range AllRunStatuses {
				assert.False(t, from.CanTransitionTo(to),
					"%q -> %q should be rejected", from, to)
			}
		}
	})

	t.Run("skipping and reversing are illegal", func(t *testing.T) {
		assert.False(t, RunStatusRequested.CanTransitionTo(RunStatusAISuccess))
		assert.False(t, RunStatusSpecFetched.CanTransitionTo(RunStatusExecutionInProgress))
		assert.False(t, RunStatusSpecFetched.CanTransitionTo(RunStatusRequested))
		assert.False(t, RunStatusQAEvalDone.CanTransitionTo(RunStatusQAEvalInProgress))
		assert.False(t, RunStatusRequested.CanTransitionTo(RunStatusRequested))
	})
}

func TestRunConfigWithDefaults(t *testing.T) {
	t.Run("empty config resolves to documented defaults", func(t *testing.T) {
		c := RunConfig{}.WithDefaults()

		assert.Equal(t, 10, c.ScenarioBudget())
		assert.True(t, c.Parallel())
		assert.True(t, c.StopOnFailure())
		assert.Equal(t, 10, c.MaxStepsPerScenario)
		assert.Equal(t, 5, c.AIConcurrency)
		assert.Equal(t, 10, c.ExecConcurrency)
		assert.Equal(t, 30000, c.StepTimeoutMs)
		assert.Equal(t, 2, c.AIVerifyRetries)
		assert.Equal(t, 2, c.MaxRetries)
		assert.Equal(t, float64(80), c.CoverageThreshold)
	})

	t.Run("explicit zero budget survives defaulting", func(t *testing.T) {
		zero := 0
		c := RunConfig{MaxScenarios: &zero}.WithDefaults()
		assert.Equal(t, 0, c.ScenarioBudget())
	})

	t.Run("explicit false booleans survive defaulting", func(t *testing.T) {
		f := false
		c := RunConfig{ParallelExecution: &f, StopOnFirstFailure: &f}.WithDefaults()
		assert.False(t, c.Parallel())
		assert.False(t, c.StopOnFailure())
	})

	t.Run("set fields are preserved", func(t *testing.T) {
		c := RunConfig{StepTimeoutMs: 5000, ExecConcurrency: 2}.WithDefaults()
		assert.Equal(t, 5000, c.StepTimeoutMs)
		assert.Equal(t, 2, c.ExecConcurrency)
		assert.Equal(t, 5, c.AIConcurrency)
	})
}

func TestRunConfigValidate(t *testing.T) {
	valid := DefaultRunConfig()
	require.NoError(t, valid.Validate())

	t.Run("zero budget is legal", func(t *testing.T) {
		zero := 0
		c := DefaultRunConfig()
		c.MaxScenarios = &zero
		assert.NoError(t, c.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*RunConfig)
		errMsg string
	}{
		{
			name: "negative scenario budget",
			mutate: func(c *RunConfig) {
				n := -1
				c.MaxScenarios = &n
			},
			errMsg: "maxScenarios",
		},
		{
			name:   "zero steps per scenario",
			mutate: func(c *RunConfig) { c.MaxStepsPerScenario = 0 },
			errMsg: "maxStepsPerScenario",
		},
		{
			name:   "zero ai concurrency",
			mutate: func(c *RunConfig) { c.AIConcurrency = 0 },
			errMsg: "aiConcurrency",
		},
		{
			name:   "zero exec concurrency",
			mutate: func(c *RunConfig) { c.ExecConcurrency = 0 },
			errMsg: "execConcurrency",
		},
		{
			name:   "zero step timeout",
			mutate: func(c *RunConfig) { c.StepTimeoutMs = 0 },
			errMsg: "stepTimeoutMs",
		},
		{
			name:   "negative verify retries",
			mutate: func(c *RunConfig) { c.AIVerifyRetries = -1 },
			errMsg: "aiVerifyRetries",
		},
		{
			name:   "negative transport retries",
			mutate: func(c *RunConfig) { c.MaxRetries = -2 },
			errMsg: "maxRetries",
		},
		{
			name:   "coverage threshold above 100",
			mutate: func(c *RunConfig) { c.CoverageThreshold = 101 },
			errMsg: "coverageThreshold",
		},
		{
			name:   "negative coverage threshold",
			mutate: func(c *RunConfig) { c.CoverageThreshold = -0.5 },
			errMsg: "coverageThreshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultRunConfig()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		errMsg  string
	}{
		{
			name: "https URL",
			url:  "https://api.example.com",
		},
		{
			name: "http URL with port and path",
			url:  "http://localhost:8080/v2",
		},
		{
			name:    "ftp scheme rejected",
			url:     "ftp://api.example.com/spec",
			wantErr: true,
			errMsg:  "scheme",
		},
		{
			name:    "missing scheme rejected",
			url:     "api.example.com/v1",
			wantErr: true,
			errMsg:  "scheme",
		},
		{
			name:    "missing host rejected",
			url:     "http://",
			wantErr: true,
			errMsg:  "no host",
		},
		{
			name:    "malformed URL rejected",
			url:     "://broken",
			wantErr: true,
			errMsg:  "malformed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}
