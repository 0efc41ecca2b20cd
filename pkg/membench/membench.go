// Package membench implements the memory benchmark core: a timed
// read-write-verify cycle over a contiguous byte buffer, single-run
// orchestration, and a continuous multi-run mode that aggregates
// statistics across repeated trials.
//
// Everything in this package is single-threaded and synchronous. The timed
// regions own the calling goroutine until they finish, because any
// interleaved work would corrupt the latency signal being measured.
package membench

import (
	"errors"

	"github.com/shivanshkc/membench/pkg/stats"
	"github.com/shivanshkc/membench/pkg/timer"
)

// Configuration errors. An operation returning one of these also returns a
// Results whose Timing.SampleCount is 0, so callers can tell "did not run"
// apart from "ran clean" without inspecting the error.
var (
	// ErrZeroBufferSize is returned when the buffer size is not positive.
	ErrZeroBufferSize = errors.New("buffer size must be greater than 0")
	// ErrZeroIterations is returned when the iteration count is not positive.
	ErrZeroIterations = errors.New("iterations must be greater than 0")
	// ErrNoStopCondition is returned when continuous mode has neither a run
	// count nor a duration bound.
	ErrNoStopCondition = errors.New("continuous mode requires a max run count or a max duration")
	// ErrNoRunsCompleted is returned when a continuous session finishes
	// without a single completed run.
	ErrNoRunsCompleted = errors.New("no runs completed")
)

// Run executes a single memory benchmark: `iterations` read-write-verify
// cycles against one freshly allocated buffer of `bufferSizeBytes`.
//
// Configuration errors are reported before any allocation or timing
// happens. Verification mismatches are never errors; they are counted into
// the Results and the loop continues, because stopping early would bias
// the timing statistics.
func Run(bufferSizeBytes, iterations int) (Results, error) {
	results := Results{
		BufferSizeBytes:    bufferSizeBytes,
		Iterations:         iterations,
		VerificationPassed: true,
	}

	if bufferSizeBytes <= 0 {
		return results, ErrZeroBufferSize
	}
	if iterations <= 0 {
		return results, ErrZeroIterations
	}

	// Allocation stays outside the timed region.
	buf := make([]byte, bufferSizeBytes)
	return runWithBuffer(buf, iterations), nil
}

// runWithBuffer drives the cycle loop against a caller-owned buffer. Inputs
// are assumed validated. The wall timer covers only the loop itself.
func runWithBuffer(buf []byte, iterations int) Results {
	latencies := make(stats.Samples, 0, iterations)

	var wall timer.Timer
	wall.Start()

	var totalErrors uint64
	var sumNs, minNs, maxNs float64

	for i := 0; i < iterations; i++ {
		errs, ns := verifyCycle(buf)
		totalErrors += errs

		lat := float64(ns)
		latencies = append(latencies, lat)
		sumNs += lat

		if i == 0 || lat < minNs {
			minNs = lat
		}
		if i == 0 || lat > maxNs {
			maxNs = lat
		}
	}

	elapsedSeconds := wall.ElapsedSeconds()

	avgNs := sumNs / float64(iterations)
	variance, stdDev := latencies.Variance(avgNs)

	results := Results{
		BufferSizeBytes: len(buf),
		Iterations:      iterations,
		Timing: TimingStats{
			MinNs:        minNs,
			MaxNs:        maxNs,
			AvgNs:        avgNs,
			TotalSeconds: elapsedSeconds,
			VarianceNs2:  variance,
			StdDevNs:     stdDev,
			SampleCount:  iterations,
		},
		VerificationErrors: totalErrors,
		VerificationPassed: totalErrors == 0,
	}

	// One write pass plus two read passes per cycle, hence the factor 3.
	if elapsedSeconds > 0 {
		totalBytes := float64(len(buf)) * float64(iterations) * 3
		results.ThroughputMBps = totalBytes / elapsedSeconds / (1024 * 1024)
	}

	return results
}
