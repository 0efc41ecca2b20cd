package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/membench/pkg/cpubench"
)

var cpuIterations int

// cpuCmd represents the `cpu` command.
var cpuCmd = &cobra.Command{
	Use:   "cpu",
	Short: "Benchmark CPU performance with a mixed workload.",
	Long: `Benchmark CPU performance with a mixed workload.
Runs integer, floating-point and memory-bound passes and reports aggregate
operations per second and time per operation.`,
	Run: func(cmd *cobra.Command, args []string) {
		if message := validateCPUFlags(); message != "" {
			fmt.Println(message)
			os.Exit(1)
		}

		results, err := cpubench.Run(cpuIterations)
		if err != nil {
			fmt.Println("Benchmark failed:", err)
			os.Exit(1)
		}

		if rootJSON {
			if err := writeJSON(os.Stdout, results); err != nil {
				fmt.Println("Failed to encode results:", err)
				os.Exit(1)
			}
			return
		}

		renderCPUResults(os.Stdout, results)
	},
}

// registerCPUFlags wires the CPU benchmark flags onto a command, so the
// `all` command can carry the same set.
func registerCPUFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&cpuIterations, "cpu-iterations",
		10000, "Iterations per CPU workload.")
}

func init() {
	rootCmd.AddCommand(cpuCmd)
	registerCPUFlags(cpuCmd)
}
