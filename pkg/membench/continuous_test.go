package membench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/membench/pkg/membench"
)

// TestRunContinuous_ConfigurationErrors verifies rejection of invalid
// session configurations, including the missing-stop-condition case.
func TestRunContinuous_ConfigurationErrors(t *testing.T) {
	type testCase struct {
		name        string
		config      membench.ContinuousConfig
		expectedErr error
	}

	testCases := []testCase{
		{
			name: "Zero Buffer Size",
			config: membench.ContinuousConfig{
				BufferSizeBytes:  0,
				IterationsPerRun: 10,
				MaxRuns:          5,
			},
			expectedErr: membench.ErrZeroBufferSize,
		},
		{
			name: "Zero Iterations Per Run",
			config: membench.ContinuousConfig{
				BufferSizeBytes:  4096,
				IterationsPerRun: 0,
				MaxRuns:          5,
			},
			expectedErr: membench.ErrZeroIterations,
		},
		{
			name: "No Stopping Condition",
			config: membench.ContinuousConfig{
				BufferSizeBytes:  4096,
				IterationsPerRun: 10,
			},
			expectedErr: membench.ErrNoStopCondition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := membench.RunContinuous(tc.config)

			require.ErrorIs(t, err, tc.expectedErr)
			assert.Zero(t, results.Timing.SampleCount)
			assert.True(t, results.VerificationPassed)
		})
	}
}

// TestRunContinuous_RunCountBound verifies the canonical run-count session:
// exactly MaxRuns runs complete and the aggregate iteration count is the
// product of runs and iterations per run.
func TestRunContinuous_RunCountBound(t *testing.T) {
	results, err := membench.RunContinuous(membench.ContinuousConfig{
		BufferSizeBytes:  4096,
		IterationsPerRun: 10,
		MaxRuns:          5,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, results.Timing.SampleCount, "expected exactly 5 completed runs")
	assert.Equal(t, 50, results.Iterations)
	assert.True(t, results.VerificationPassed)
	assert.Zero(t, results.VerificationErrors)

	// Run-level extremes must bracket the mean of per-run averages.
	assert.LessOrEqual(t, results.Timing.MinNs, results.Timing.AvgNs)
	assert.LessOrEqual(t, results.Timing.AvgNs, results.Timing.MaxNs)
	assert.Greater(t, results.Timing.MinNs, 0.0, "min must be seeded from a real run, not zero")
	assert.Greater(t, results.ThroughputMBps, 0.0)
}

// TestRunContinuous_DurationBound verifies the wall-clock stopping policy.
// The duration check happens only between runs, so a workload much longer
// than the budget completes exactly one run and must not loop forever.
func TestRunContinuous_DurationBound(t *testing.T) {
	// Each run moves ~400 MB (buffer * iterations * 3 passes), far more
	// than 1 ms of memory traffic on any current hardware.
	results, err := membench.RunContinuous(membench.ContinuousConfig{
		BufferSizeBytes:    4 * 1024 * 1024,
		IterationsPerRun:   32,
		MaxDurationSeconds: 0.001,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, results.Timing.SampleCount, "expected exactly one overshooting run")
	assert.Equal(t, 32, results.Iterations)

	// A single completed run has no run-level dispersion.
	assert.Zero(t, results.Timing.VarianceNs2)
	assert.Zero(t, results.Timing.StdDevNs)
}

// TestRunContinuous_BothBounds verifies that whichever bound triggers first
// wins. A generous duration with a small run cap stops on the cap.
func TestRunContinuous_BothBounds(t *testing.T) {
	results, err := membench.RunContinuous(membench.ContinuousConfig{
		BufferSizeBytes:    4096,
		IterationsPerRun:   5,
		MaxRuns:            3,
		MaxDurationSeconds: 3600,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, results.Timing.SampleCount)
	assert.Equal(t, 15, results.Iterations)
}
