package membench

import (
	"github.com/shivanshkc/membench/pkg/stats"
	"github.com/shivanshkc/membench/pkg/timer"
)

// ContinuousConfig bounds a continuous benchmark session.
//
// At least one of MaxRuns or MaxDurationSeconds must be positive; when
// both are set, whichever triggers first ends the session. The duration
// bound is checked between runs only, so the last run may overshoot it.
type ContinuousConfig struct {
	BufferSizeBytes    int
	IterationsPerRun   int
	MaxRuns            int
	MaxDurationSeconds float64
}

func (c ContinuousConfig) validate() error {
	if c.BufferSizeBytes <= 0 {
		return ErrZeroBufferSize
	}
	if c.IterationsPerRun <= 0 {
		return ErrZeroIterations
	}
	if c.MaxRuns <= 0 && c.MaxDurationSeconds <= 0 {
		return ErrNoStopCondition
	}
	return nil
}

// shouldContinue is the single stopping predicate for the session loop,
// combining the run-count and wall-clock bounds. Keeping it in one place
// makes the stopping policy testable in isolation.
func (c ContinuousConfig) shouldContinue(completedRuns int, elapsedSeconds float64) bool {
	if c.MaxRuns > 0 && completedRuns >= c.MaxRuns {
		return false
	}
	if c.MaxDurationSeconds > 0 && elapsedSeconds >= c.MaxDurationSeconds {
		return false
	}
	return true
}

// RunContinuous repeats a fixed single-run workload under the configured
// stopping policy and aggregates run-level statistics: min/max latency
// across all runs, variance over the per-run average latencies, and
// throughput over the total bytes processed by all completed runs.
//
// The reported Iterations is IterationsPerRun times the number of
// completed runs, and Timing.SampleCount is the number of completed runs.
func RunContinuous(cfg ContinuousConfig) (Results, error) {
	results := Results{
		BufferSizeBytes:    cfg.BufferSizeBytes,
		VerificationPassed: true,
	}

	if err := cfg.validate(); err != nil {
		return results, err
	}

	// One buffer for the whole session. Reallocating per run would mix
	// allocator latency into the figures being measured, and the memory
	// under test must be the same region run to run.
	buf := make([]byte, cfg.BufferSizeBytes)

	var wall timer.Timer
	wall.Start()

	var (
		completedRuns int
		totalErrors   uint64
		totalSeconds  float64
		minNs, maxNs  float64
		runAverages   stats.Samples
	)

	for cfg.shouldContinue(completedRuns, wall.ElapsedSeconds()) {
		run := runWithBuffer(buf, cfg.IterationsPerRun)

		// A run that produced no samples rejected its own inputs; bail out
		// rather than loop forever.
		if run.Timing.SampleCount == 0 {
			break
		}

		// Seed the extremes from the first completed run, so a min of 0
		// never masquerades as a real latency floor.
		if completedRuns == 0 {
			minNs, maxNs = run.Timing.MinNs, run.Timing.MaxNs
		} else {
			if run.Timing.MinNs < minNs {
				minNs = run.Timing.MinNs
			}
			if run.Timing.MaxNs > maxNs {
				maxNs = run.Timing.MaxNs
			}
		}

		completedRuns++
		totalErrors += run.VerificationErrors
		totalSeconds += run.Timing.TotalSeconds
		runAverages = append(runAverages, run.Timing.AvgNs)
	}

	if completedRuns == 0 {
		return results, ErrNoRunsCompleted
	}

	avgNs := runAverages.Mean()
	variance, stdDev := runAverages.Variance(avgNs)

	results.Iterations = cfg.IterationsPerRun * completedRuns
	results.Timing = TimingStats{
		MinNs:        minNs,
		MaxNs:        maxNs,
		AvgNs:        avgNs,
		TotalSeconds: totalSeconds,
		VarianceNs2:  variance,
		StdDevNs:     stdDev,
		SampleCount:  completedRuns,
	}
	results.VerificationErrors = totalErrors
	results.VerificationPassed = totalErrors == 0

	if totalSeconds > 0 {
		totalBytes := float64(cfg.BufferSizeBytes) * float64(results.Iterations) * 3
		results.ThroughputMBps = totalBytes / totalSeconds / (1024 * 1024)
	}

	return results, nil
}
