package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/membench/pkg/cpubench"
	"github.com/shivanshkc/membench/pkg/membench"
	"github.com/shivanshkc/membench/pkg/netbench"
)

// allResults bundles the outcome of a combined benchmark session for the
// JSON output mode. The network section is omitted when the probe did not
// run.
type allResults struct {
	Memory  membench.Results  `json:"memory"`
	CPU     cpubench.Results  `json:"cpu"`
	Network *netbench.Results `json:"network,omitempty"`
}

// allCmd represents the `all` command: the memory benchmark followed by
// the comparative CPU and network probes.
//
// The three benchmarks run strictly in sequence, never interleaved;
// concurrent probes would corrupt each other's latency signal.
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the memory benchmark with comparative CPU and network probes.",
	Long: `Run the memory benchmark with comparative CPU and network probes.
The network probe runs only when --host is given. Results are summarized in
a comparison table placing memory cycle latency next to CPU time per
operation and network round-trip time.`,
	Run: func(cmd *cobra.Command, args []string) {
		if message := validateAllFlags(); message != "" {
			fmt.Println(message)
			os.Exit(1)
		}

		memResults, err := runMem()
		if err != nil {
			fmt.Println("Memory benchmark failed:", err)
			os.Exit(1)
		}

		cpuResults, err := cpubench.Run(cpuIterations)
		if err != nil {
			fmt.Println("CPU benchmark failed:", err)
			os.Exit(1)
		}

		// The network probe is optional and best effort: a failure must not
		// discard the memory and CPU results already gathered.
		var netResults *netbench.Results
		if netHost != "" {
			probed, err := netbench.ProbeLoop(
				cmd.Context(), netHost, netPort, netIterations, netPayloadSize)
			if err != nil {
				fmt.Println("Network probe failed:", err)
			} else {
				netResults = &probed
			}
		}

		if rootJSON {
			combined := allResults{Memory: memResults, CPU: cpuResults, Network: netResults}
			if err := writeJSON(os.Stdout, combined); err != nil {
				fmt.Println("Failed to encode results:", err)
				os.Exit(1)
			}
			return
		}

		renderMemResults(os.Stdout, memResults, memContinuous)
		renderCPUResults(os.Stdout, cpuResults)
		if netResults != nil {
			renderNetResults(os.Stdout, *netResults)
		}

		// The comparison consumes only opaque scalars from the collaborators;
		// zero means "not available" and the row is skipped.
		cpuNsPerOp := cpuResults.TimePerOpNs
		var netRTTMs float64
		if netResults != nil {
			netRTTMs = netResults.RoundTripTimeMs
		}
		renderComparison(os.Stdout, memResults, cpuNsPerOp, netRTTMs)
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
	registerMemFlags(allCmd)
	registerCPUFlags(allCmd)
	registerNetFlags(allCmd)
}
