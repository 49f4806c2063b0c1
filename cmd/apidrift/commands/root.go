// Package commands implements the apidrift command line interface.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	command := &cobra.Command{
		Use:           "apidrift",
		Short:         "apidrift compares two versions of an OpenAPI document and reports compatibility violations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(diffCmd())
	command.AddCommand(routesCmd())
	command.AddCommand(mcpCmd())
	command.AddCommand(versionCmd())

	return command
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
