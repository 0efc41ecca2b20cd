// Package timer provides a minimal monotonic stopwatch for benchmark timing.
//
// Go's time.Time carries a monotonic clock reading since 1.9, so Elapsed is
// immune to wall-clock adjustments. The type exists so every timed region in
// the benchmarks reads time the same way, in whichever unit it needs.
package timer

import "time"

// Timer measures elapsed time against the monotonic clock.
//
// The zero value is a stopped timer: every elapsed query returns 0 until
// Start is called. Start may be called again at any point to reset.
type Timer struct {
	start   time.Time
	started bool
}

// Start begins (or restarts) the measurement.
func (t *Timer) Start() {
	t.start = time.Now()
	t.started = true
}

// Elapsed returns the time since Start, or 0 if the timer was never started.
func (t *Timer) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	return time.Since(t.start)
}

// ElapsedSeconds returns the elapsed time in seconds.
func (t *Timer) ElapsedSeconds() float64 {
	return t.Elapsed().Seconds()
}

// ElapsedMilliseconds returns the elapsed time in milliseconds.
func (t *Timer) ElapsedMilliseconds() float64 {
	return float64(t.Elapsed().Nanoseconds()) / 1e6
}

// ElapsedNanoseconds returns the elapsed time in nanoseconds.
func (t *Timer) ElapsedNanoseconds() int64 {
	return t.Elapsed().Nanoseconds()
}
