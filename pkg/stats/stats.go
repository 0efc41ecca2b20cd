// Package stats implements the summary statistics shared by every
// aggregation level of the benchmarks.
package stats

import "math"

// Samples is a sequence of float64 measurements.
//
// One type serves both aggregation levels of the memory benchmark: the
// per-cycle latencies within a single run, and the per-run average
// latencies across a continuous session. Both call sites share the same
// variance implementation instead of duplicating the formula.
type Samples []float64

// Mean returns the arithmetic mean, or 0 for an empty sequence.
func (s Samples) Mean() float64 {
	if len(s) == 0 {
		return 0
	}

	var total float64
	for _, v := range s {
		total += v
	}
	return total / float64(len(s))
}

// Min returns the smallest sample, or 0 for an empty sequence.
func (s Samples) Min() float64 {
	if len(s) == 0 {
		return 0
	}

	m := s[0]
	for _, v := range s {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest sample, or 0 for an empty sequence.
func (s Samples) Max() float64 {
	if len(s) == 0 {
		return 0
	}

	m := s[0]
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}

// Variance returns the sample variance and standard deviation of s around
// the given precomputed mean.
//
// The estimator divides by n-1 (Bessel's correction): the samples are a
// finite trial drawn from an unbounded population of possible timings, so
// the unbiased estimator is required for the coefficient-of-variation
// metric used to judge measurement stability. With fewer than two samples
// there is no dispersion to estimate and both results are 0.
func (s Samples) Variance(mean float64) (variance, stdDev float64) {
	if len(s) <= 1 {
		return 0, 0
	}

	var sumSquares float64
	for _, v := range s {
		d := v - mean
		sumSquares += d * d
	}

	variance = sumSquares / float64(len(s)-1)
	return variance, math.Sqrt(variance)
}
