// Package cli contains all the command-line interface logic for the
// application, powered by the cobra library. It defines the root command,
// subcommands, and their respective flags.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/membench/internal/priority"
)

var (
	// rootJSON and rootRaisePriority hold the values from the root command's
	// persistent flags. Defining them at the package level allows all
	// subcommands within this package to access these shared values directly.
	rootJSON          bool
	rootRaisePriority bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point and parent for all other commands.
var rootCmd = &cobra.Command{
	Use:   "membench",
	Short: "Measure memory subsystem performance with repeat-trial statistics.",
	Long: `Measure memory subsystem performance with repeat-trial statistics.
This CLI provides subcommands for memory, CPU and network benchmarks, plus a
host environment report. The memory benchmark is the core: a timed
read-write-verify loop reporting latency, throughput and stability metrics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !rootRaisePriority {
			return
		}

		// Best effort, consumed once before any benchmark runs. Failure is
		// reported and ignored: the benchmarks work at any priority, just
		// with more scheduler noise in the numbers.
		nice, err := priority.Raise()
		switch {
		case err == nil:
			fmt.Printf("Process priority raised (nice %d).\n", nice)
		case errors.Is(err, priority.ErrNotSupported):
			fmt.Println("Priority adjustment is not supported on this platform.")
		default:
			fmt.Println("Could not raise process priority:", err)
		}
	},
}

// Execute is the primary entry point for the CLI application, called by main.go.
//
// It sets up a single, root cancellable context and wires it up to respond
// to OS interruption signals (like Ctrl+C or SIGTERM). This context is then
// passed down to all cobra commands. Note that the timed benchmark loops do
// not poll it: a run proceeds to its natural stopping condition, and the
// context matters only at probe boundaries (e.g. network dials).
func Execute() error {
	// Create a root context that can be canceled.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel() // Ensure cancel is called on exit to clean up context resources.

	// Set up a channel to listen for specific OS signals.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	// Unregister the signal handler on exit. This is good hygiene and
	// prevents resource leaks in more complex application lifecycles.
	defer signal.Stop(signals)

	// Launch a goroutine to cancel the context upon receiving a signal.
	go func() {
		<-signals
		cancel()
	}()

	// Execute the root command with the cancellable context.
	return rootCmd.ExecuteContext(ctx)
}

// init configures the application's flags.
//
// Using `PersistentFlags` on the root command is the ideal way to handle
// flags that are shared across multiple subcommands, like output settings.
func init() {
	rootCmd.PersistentFlags().BoolVar(&rootJSON, "json",
		false, "Emit results as indented JSON instead of tables.")

	rootCmd.PersistentFlags().BoolVar(&rootRaisePriority, "raise-priority",
		false, "Attempt to raise process scheduling priority before running (best effort).")
}
