// Package cpubench generates a mixed CPU workload and measures time per
// operation. Its output feeds the cross-domain comparison next to the
// memory benchmark as an opaque timing source.
package cpubench

import (
	"errors"
	"math"

	"github.com/shivanshkc/membench/pkg/timer"
)

// ErrZeroIterations is returned when the iteration count is not positive.
var ErrZeroIterations = errors.New("iterations must be greater than 0")

// Results holds the outcome of one CPU benchmark.
//
// Callers should check Successful rather than assuming nonzero metrics: a
// rejected configuration leaves every timing field at 0.
type Results struct {
	Iterations    int     `json:"iterations"`
	BenchmarkType string  `json:"benchmark_type"`
	TotalSeconds  float64 `json:"total_seconds"`
	OpsPerSecond  float64 `json:"ops_per_second"`
	TimePerOpNs   float64 `json:"time_per_op_ns"`
	Successful    bool    `json:"successful"`
}

// Workload results land here so the compiler cannot elide the passes.
var (
	sinkUint  uint64
	sinkFloat float64
)

// Run executes the three CPU workloads (integer, floating-point, and
// memory-bound) back to back, `iterations` times each, and reports
// aggregate throughput and time per operation.
func Run(iterations int) (Results, error) {
	results := Results{Iterations: iterations, BenchmarkType: "Mixed CPU Workload"}

	if iterations <= 0 {
		return results, ErrZeroIterations
	}

	var t timer.Timer
	t.Start()

	intResult := integerWorkload(iterations)
	floatResult := floatWorkload(iterations)
	memResult := memoryWorkload(iterations)

	elapsedSeconds := t.ElapsedSeconds()

	sinkUint = intResult ^ memResult
	sinkFloat = floatResult

	// Three workloads, so three operations per iteration.
	ops := float64(iterations) * 3
	results.TotalSeconds = elapsedSeconds
	if elapsedSeconds > 0 {
		results.OpsPerSecond = ops / elapsedSeconds
		results.TimePerOpNs = elapsedSeconds / ops * 1e9
	}
	results.Successful = true

	return results, nil
}

// integerWorkload exercises modular multiplication and bit operations.
func integerWorkload(iterations int) uint64 {
	result := uint64(1)
	for i := 0; i < iterations; i++ {
		result = (result*31 + 17) % 1000000007
		result ^= result<<13 | result>>19
	}
	return result
}

// floatWorkload exercises transcendental and square-root operations.
func floatWorkload(iterations int) float64 {
	result := 1.0
	for i := 0; i < iterations; i++ {
		result = math.Sin(result+float64(i)) * math.Cos(result)
		result = math.Sqrt(math.Abs(result) + 1)
		result = math.Exp(result*0.1) - 1
	}
	return result
}

// memoryWorkload exercises strided reads and writes over a small array.
func memoryWorkload(iterations int) uint64 {
	const arraySize = 1024

	data := make([]uint64, arraySize)
	for i := range data {
		data[i] = uint64(i)*31 + 17
	}

	var result uint64
	for i := 0; i < iterations; i++ {
		index := (i * 7) % arraySize
		result += data[index]
		data[index] = (result * 13) % 1000000007
	}
	return result
}
