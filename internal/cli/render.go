package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/shivanshkc/membench/internal/sysinfo"
	"github.com/shivanshkc/membench/pkg/cpubench"
	"github.com/shivanshkc/membench/pkg/membench"
	"github.com/shivanshkc/membench/pkg/netbench"
	"github.com/shivanshkc/membench/pkg/utils/miscutils"
)

// renderMemResults writes the memory benchmark results as a table.
// Continuous sessions additionally report run-level dispersion, since that
// is the whole point of repeating the workload.
func renderMemResults(w io.Writer, results membench.Results, continuous bool) {
	t := newResultsTable(w, "Memory Benchmark")

	t.AppendRows([]table.Row{
		{"Buffer Size", miscutils.FormatBytes(uint64(results.BufferSizeBytes))},
		{"Iterations", results.Iterations},
		{"Total Time", miscutils.FormatDuration(time.Duration(results.Timing.TotalSeconds * float64(time.Second)))},
		{"Average Latency", fmt.Sprintf("%.2f ns", results.Timing.AvgNs)},
		{"Min Latency", fmt.Sprintf("%.2f ns", results.Timing.MinNs)},
		{"Max Latency", fmt.Sprintf("%.2f ns", results.Timing.MaxNs)},
		{"Std Deviation", fmt.Sprintf("%.2f ns", results.Timing.StdDevNs)},
		{"Samples", results.Timing.SampleCount},
		{"Throughput", fmt.Sprintf("%.2f MB/s", results.ThroughputMBps)},
	})

	if continuous {
		cv := results.Timing.CoefficientOfVariation() * 100
		t.AppendRow(table.Row{"Run-to-run CV", fmt.Sprintf("%.2f %%", cv)})
	}

	t.AppendRow(table.Row{"Verification", verificationCell(results)})
	t.Render()
}

// renderCPUResults writes the CPU benchmark results as a table.
func renderCPUResults(w io.Writer, results cpubench.Results) {
	t := newResultsTable(w, "CPU Benchmark")

	t.AppendRows([]table.Row{
		{"Workload", results.BenchmarkType},
		{"Iterations", results.Iterations},
		{"Total Time", miscutils.FormatDuration(time.Duration(results.TotalSeconds * float64(time.Second)))},
		{"Operations/Second", fmt.Sprintf("%.2f", results.OpsPerSecond)},
		{"Time/Operation", fmt.Sprintf("%.2f ns", results.TimePerOpNs)},
	})

	t.Render()
}

// renderNetResults writes the network probe results as a table.
func renderNetResults(w io.Writer, results netbench.Results) {
	t := newResultsTable(w, "Network Probe")

	t.AppendRows([]table.Row{
		{"Target", fmt.Sprintf("%s:%d", results.TargetHost, results.TargetPort)},
		{"Payload Size", miscutils.FormatBytes(uint64(results.PayloadSizeBytes))},
		{"Connection Cycles", results.Iterations},
		{"Avg Connection Time", fmt.Sprintf("%.2f ms", results.AvgConnectionTimeMs)},
		{"Min Connection Time", fmt.Sprintf("%.2f ms", results.MinConnectionTimeMs)},
		{"Max Connection Time", fmt.Sprintf("%.2f ms", results.MaxConnectionTimeMs)},
		{"Round Trip Time", fmt.Sprintf("%.2f ms", results.RoundTripTimeMs)},
	})

	t.Render()
}

// renderComparison places the memory cycle latency next to the CPU and
// network probe figures. The CPU and network values are opaque scalars
// produced elsewhere; zero means the probe did not run and its row is
// skipped.
func renderComparison(w io.Writer, mem membench.Results, cpuNsPerOp, netRTTMs float64) {
	t := newResultsTable(w, "Latency Comparison")
	t.AppendHeader(table.Row{"Probe", "Latency"})

	t.AppendRow(table.Row{"Memory cycle (avg)", fmt.Sprintf("%.2f ns", mem.Timing.AvgNs)})
	if cpuNsPerOp > 0 {
		t.AppendRow(table.Row{"CPU operation", fmt.Sprintf("%.2f ns", cpuNsPerOp)})
	}
	if netRTTMs > 0 {
		t.AppendRow(table.Row{"Network round trip", fmt.Sprintf("%.2f ms", netRTTMs)})
	}

	t.Render()
}

// renderSysInfo writes the host environment snapshot as a table.
func renderSysInfo(w io.Writer, info sysinfo.Info) {
	t := newResultsTable(w, "Host Environment")

	t.AppendRows([]table.Row{
		{"CPU Model", info.CPUModel},
		{"CPU Cores", info.CPUCores},
		{"CPU Frequency", fmt.Sprintf("%.2f MHz", info.CPUMHz)},
		{"Total Memory", miscutils.FormatBytes(info.TotalMemoryBytes)},
		{"Available Memory", miscutils.FormatBytes(info.AvailableMemoryBytes)},
		{"Platform", info.Platform},
		{"Kernel", info.KernelVersion},
		{"Go Runtime", info.GoVersion},
		{"Timer Resolution", fmt.Sprintf("~%d ns", info.TimerResolutionNs)},
	})

	t.Render()
}

// newResultsTable creates a table writer with the shared look.
func newResultsTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	return t
}

// verificationCell colors the verification verdict.
func verificationCell(results membench.Results) string {
	if results.VerificationPassed {
		return text.FgGreen.Sprint("PASSED")
	}
	return text.FgRed.Sprintf("FAILED (%d errors)", results.VerificationErrors)
}

// writeJSON emits any result value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
