package timer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shivanshkc/membench/pkg/timer"
)

// TestTimer_ZeroValue verifies that an unstarted timer reports 0 in every
// unit instead of a bogus elapsed time.
func TestTimer_ZeroValue(t *testing.T) {
	var tm timer.Timer

	assert.Zero(t, tm.Elapsed())
	assert.Zero(t, tm.ElapsedSeconds())
	assert.Zero(t, tm.ElapsedMilliseconds())
	assert.Zero(t, tm.ElapsedNanoseconds())
}

// TestTimer_Elapsed verifies that elapsed time moves forward and that the
// unit conversions agree with each other.
func TestTimer_Elapsed(t *testing.T) {
	var tm timer.Timer
	tm.Start()

	time.Sleep(10 * time.Millisecond)

	ns := tm.ElapsedNanoseconds()
	assert.GreaterOrEqual(t, ns, int64(10*time.Millisecond),
		"elapsed time should cover the sleep")

	// The three units describe the same instant within measurement slack.
	assert.InDelta(t, float64(ns)/1e6, tm.ElapsedMilliseconds(), 5.0)
	assert.InDelta(t, float64(ns)/1e9, tm.ElapsedSeconds(), 0.005)
}

// TestTimer_Restart verifies that Start resets the measurement.
func TestTimer_Restart(t *testing.T) {
	var tm timer.Timer
	tm.Start()

	time.Sleep(5 * time.Millisecond)
	first := tm.ElapsedNanoseconds()

	tm.Start()
	second := tm.ElapsedNanoseconds()

	assert.Less(t, second, first, "restart should reset the elapsed time")
}
