package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/membench/pkg/netbench"
)

var (
	netHost        string
	netPort        int
	netPayloadSize int
	netIterations  int
)

// netCmd represents the `net` command.
var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Probe TCP round-trip time against a host.",
	Long: `Probe TCP round-trip time against a host.
Performs repeated connect-send-close cycles and reports min/avg/max
connection time across the successful ones.`,
	Run: func(cmd *cobra.Command, args []string) {
		if message := validateNetFlags(); message != "" {
			fmt.Println(message)
			os.Exit(1)
		}

		results, err := netbench.ProbeLoop(
			cmd.Context(), netHost, netPort, netIterations, netPayloadSize)
		if err != nil {
			fmt.Println("Probe failed:", err)
			os.Exit(1)
		}

		if rootJSON {
			if err := writeJSON(os.Stdout, results); err != nil {
				fmt.Println("Failed to encode results:", err)
				os.Exit(1)
			}
			return
		}

		renderNetResults(os.Stdout, results)
	},
}

// registerNetFlags wires the network probe flags onto a command, so the
// `all` command can carry the same set.
func registerNetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&netHost, "host",
		"", "Target host to probe.")

	cmd.Flags().IntVar(&netPort, "port",
		80, "Target TCP port.")

	cmd.Flags().IntVar(&netPayloadSize, "payload-size",
		512, "Payload size in bytes per probe.")

	cmd.Flags().IntVar(&netIterations, "net-iterations",
		3, "Number of connection cycles.")
}

func init() {
	rootCmd.AddCommand(netCmd)
	registerNetFlags(netCmd)
}
