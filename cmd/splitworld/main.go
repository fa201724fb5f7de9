// Command splitworld runs the splitting world simulation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "splitworld",
		Short: "Turn-based simulation of civilizations on a drifting world",
		Long: `splitworld grows races on a graph of tiles that splits and
rejoins as eras pass. Each century every tile takes one turn: it grows,
drifts culturally, trades ideas, raids, spreads, declines or falls to ruin.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newTopologyCmd(),
		newRunsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "splitworld version %s\n", version)
		},
	}
}
