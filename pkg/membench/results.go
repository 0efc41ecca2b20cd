package membench

// TimingStats summarizes the latency distribution of one benchmark
// aggregation level. For a single run the samples are per-cycle latencies;
// for a continuous session they are per-run average latencies.
//
// Invariants: MinNs <= AvgNs <= MaxNs whenever SampleCount >= 1, and both
// dispersion fields are 0 when SampleCount <= 1. A TimingStats is computed
// once and never mutated afterwards.
type TimingStats struct {
	MinNs        float64 `json:"min_ns"`
	MaxNs        float64 `json:"max_ns"`
	AvgNs        float64 `json:"avg_ns"`
	TotalSeconds float64 `json:"total_seconds"`
	VarianceNs2  float64 `json:"variance_ns2"`
	StdDevNs     float64 `json:"std_dev_ns"`
	SampleCount  int     `json:"sample_count"`
}

// CoefficientOfVariation returns the standard deviation as a fraction of
// the mean latency, the stability metric for repeat trials. Returns 0 when
// the mean is 0.
func (t TimingStats) CoefficientOfVariation() float64 {
	if t.AvgNs == 0 {
		return 0
	}
	return t.StdDevNs / t.AvgNs
}

// Results holds the outcome of a benchmark run or continuous session.
//
// A Results value is owned exclusively by the caller that requested it.
// Callers must check Timing.SampleCount to distinguish "did not run" from
// "ran with zero errors": a rejected configuration leaves SampleCount at 0
// with VerificationPassed still true.
type Results struct {
	BufferSizeBytes    int         `json:"buffer_size_bytes"`
	Iterations         int         `json:"iterations"`
	Timing             TimingStats `json:"timing"`
	ThroughputMBps     float64     `json:"throughput_mbps"`
	VerificationPassed bool        `json:"verification_passed"`
	VerificationErrors uint64      `json:"verification_errors"`
}
