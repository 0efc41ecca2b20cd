package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/membench/internal/sysinfo"
)

// infoCmd represents the `info` command.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the host environment a benchmark would run in.",
	Long: `Show the host environment a benchmark would run in:
CPU model and cores, memory, platform and a timer resolution probe.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := sysinfo.Collect()

		if rootJSON {
			if err := writeJSON(os.Stdout, info); err != nil {
				fmt.Println("Failed to encode environment info:", err)
				os.Exit(1)
			}
			return
		}

		renderSysInfo(os.Stdout, info)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
