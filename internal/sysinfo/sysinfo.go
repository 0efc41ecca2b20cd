// Package sysinfo collects a snapshot of the host environment for display
// before benchmark runs, so results can be read in context.
package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/shivanshkc/membench/pkg/timer"
)

// Info is a point-in-time snapshot of the host environment.
type Info struct {
	CPUModel             string  `json:"cpu_model"`
	CPUCores             int     `json:"cpu_cores"`
	CPUMHz               float64 `json:"cpu_mhz"`
	TotalMemoryBytes     uint64  `json:"total_memory_bytes"`
	AvailableMemoryBytes uint64  `json:"available_memory_bytes"`
	Platform             string  `json:"platform"`
	KernelVersion        string  `json:"kernel_version"`
	GoVersion            string  `json:"go_version"`
	TimerResolutionNs    int64   `json:"timer_resolution_ns"`
}

// Collect gathers the snapshot. Probes that fail leave their fields zeroed
// rather than failing the whole collection: partial environment info is
// still better than none before a benchmark.
func Collect() Info {
	info := Info{GoVersion: runtime.Version()}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
		info.CPUCores = int(cpus[0].Cores)
		info.CPUMHz = cpus[0].Mhz
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemoryBytes = vm.Total
		info.AvailableMemoryBytes = vm.Available
	}

	if h, err := host.Info(); err == nil {
		info.Platform = fmt.Sprintf("%s %s (%s)", h.Platform, h.PlatformVersion, h.OS)
		info.KernelVersion = h.KernelVersion
	}

	info.TimerResolutionNs = timerResolution()

	return info
}

var resolutionSink int

// timerResolution times a trivial loop as a rough probe of how fine a
// measurement the clock supports on this host.
func timerResolution() int64 {
	var t timer.Timer
	t.Start()

	acc := 0
	for i := 0; i < 1000; i++ {
		acc += i
	}
	resolutionSink = acc

	return t.ElapsedNanoseconds()
}
