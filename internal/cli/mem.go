package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/membench/pkg/membench"
)

var (
	memBufferSize  int
	memIterations  int
	memContinuous  bool
	memMaxRuns     int
	memMaxDuration float64
)

// memCmd represents the `mem` command: the core memory benchmark.
//
// In one-shot mode it runs a single benchmark of --iterations cycles. With
// --continuous it repeats that workload against one reused buffer until
// --max-runs or --max-duration triggers, and reports cross-run statistics.
var memCmd = &cobra.Command{
	Use:   "mem",
	Short: "Benchmark memory read/write/verify performance.",
	Long: `Benchmark memory read/write/verify performance.
Each cycle reads the whole buffer, rewrites the verification pattern and
re-reads it counting mismatches. Continuous mode repeats the workload and
reports how stable the measurement is across runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if message := validateMemFlags(); message != "" {
			fmt.Println(message)
			os.Exit(1)
		}

		results, err := runMem()
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

		renderMemResults(os.Stdout, results, memContinuous)
	},
}

// runMem dispatches to the one-shot or continuous orchestrator based on the
// mem command's flags. It is shared with the `all` command.
func runMem() (membench.Results, error) {
	if memContinuous {
		return membench.RunContinuous(membench.ContinuousConfig{
			BufferSizeBytes:    memBufferSize,
			IterationsPerRun:   memIterations,
			MaxRuns:            memMaxRuns,
			MaxDurationSeconds: memMaxDuration,
		})
	}

	return membench.Run(memBufferSize, memIterations)
}

// registerMemFlags wires the memory benchmark flags onto a command, so the
// `all` command can carry the same set.
func registerMemFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&memBufferSize, "buffer-size", "b",
		1024*1024, "Buffer size in bytes.")

	cmd.Flags().IntVarP(&memIterations, "iterations", "i",
		100, "Read-write-verify cycles per run.")

	cmd.Flags().BoolVarP(&memContinuous, "continuous", "c",
		false, "Repeat the workload under a stopping policy and aggregate across runs.")

	cmd.Flags().IntVar(&memMaxRuns, "max-runs",
		5, "Maximum runs in continuous mode (0 = unbounded).")

	cmd.Flags().Float64Var(&memMaxDuration, "max-duration",
		0, "Maximum continuous-mode duration in seconds (0 = unbounded).")
}

func init() {
	rootCmd.AddCommand(memCmd)
	registerMemFlags(memCmd)
}
