package membench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/membench/pkg/membench"
)

// TestRun_ConfigurationErrors verifies that invalid inputs are rejected
// before any allocation or timing happens, and that the returned Results
// value is detectably "did not run".
func TestRun_ConfigurationErrors(t *testing.T) {
	// testCase defines the structure for our table-driven tests.
	type testCase struct {
		name        string
		bufferSize  int
		iterations  int
		expectedErr error
	}

	testCases := []testCase{
		{
			name:        "Zero Buffer Size",
			bufferSize:  0,
			iterations:  10,
			expectedErr: membench.ErrZeroBufferSize,
		},
		{
			name:        "Negative Buffer Size",
			bufferSize:  -1,
			iterations:  10,
			expectedErr: membench.ErrZeroBufferSize,
		},
		{
			name:        "Zero Iterations",
			bufferSize:  4096,
			iterations:  0,
			expectedErr: membench.ErrZeroIterations,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := membench.Run(tc.bufferSize, tc.iterations)

			require.ErrorIs(t, err, tc.expectedErr)
			// "Did not run" must be distinguishable from "ran clean".
			assert.Zero(t, results.Timing.SampleCount, "rejected run must have no samples")
			assert.True(t, results.VerificationPassed, "rejected run must not report corruption")
			assert.Zero(t, results.ThroughputMBps)
		})
	}
}

// TestRun_Statistics verifies the core invariants of a successful run.
func TestRun_Statistics(t *testing.T) {
	const bufferSize, iterations = 4096, 10

	results, err := membench.Run(bufferSize, iterations)
	require.NoError(t, err)

	assert.Equal(t, bufferSize, results.BufferSizeBytes)
	assert.Equal(t, iterations, results.Iterations)
	assert.Equal(t, iterations, results.Timing.SampleCount)

	// The latency extremes must bracket the average.
	assert.LessOrEqual(t, results.Timing.MinNs, results.Timing.AvgNs)
	assert.LessOrEqual(t, results.Timing.AvgNs, results.Timing.MaxNs)
	assert.Greater(t, results.Timing.MinNs, 0.0, "a full cycle cannot take zero time")

	assert.GreaterOrEqual(t, results.Timing.VarianceNs2, 0.0)
	assert.Greater(t, results.Timing.TotalSeconds, 0.0)
	assert.Greater(t, results.ThroughputMBps, 0.0)

	// A healthy in-process buffer always verifies clean.
	assert.True(t, results.VerificationPassed)
	assert.Zero(t, results.VerificationErrors)
}

// TestRun_SingleIteration verifies the n=1 short circuit: one sample has
// no dispersion and must not divide by zero.
func TestRun_SingleIteration(t *testing.T) {
	results, err := membench.Run(4096, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, results.Timing.SampleCount)
	assert.Zero(t, results.Timing.VarianceNs2)
	assert.Zero(t, results.Timing.StdDevNs)

	// With a single sample, min, max and avg are the same measurement.
	assert.Equal(t, results.Timing.MinNs, results.Timing.AvgNs)
	assert.Equal(t, results.Timing.MaxNs, results.Timing.AvgNs)
}

// TestRun_ThroughputSanity is a weak sanity check: with iterations held
// fixed, a much larger buffer should not make throughput collapse. A wide
// noise margin keeps this stable on loaded machines.
func TestRun_ThroughputSanity(t *testing.T) {
	const iterations = 50

	small, err := membench.Run(4096, iterations)
	require.NoError(t, err)

	large, err := membench.Run(8192, iterations)
	require.NoError(t, err)

	assert.Greater(t, small.ThroughputMBps, 0.0)
	assert.Greater(t, large.ThroughputMBps, small.ThroughputMBps/10,
		"doubling the buffer should not collapse throughput")
}
