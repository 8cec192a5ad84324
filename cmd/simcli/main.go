// Command simcli runs propagation and sensitivity analysis against a
// model file from the command line, without standing up the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "simcli",
		Short: "Run structural causal model simulations from the command line",
		Long: `simcli loads a causal model from a YAML or JSON file and runs it
through the propagation engine or the sensitivity analyzer, printing the
result to stdout.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPropagateCmd(),
		newAnalyzeCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "simcli version %s\n", version)
		},
	}
}
