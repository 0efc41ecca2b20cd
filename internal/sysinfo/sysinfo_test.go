package sysinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shivanshkc/membench/internal/sysinfo"
)

// TestCollect verifies that collection never fails outright and that the
// fields with no external dependency are always populated.
func TestCollect(t *testing.T) {
	info := sysinfo.Collect()

	assert.NotEmpty(t, info.GoVersion)
	assert.GreaterOrEqual(t, info.TimerResolutionNs, int64(0))

	// The gopsutil probes are best effort, but memory detection works on
	// every platform the tool targets.
	assert.Greater(t, info.TotalMemoryBytes, uint64(0))
}
