package commands

import (
	"github.com/spf13/cobra"

	"github.com/apidrift/apidrift/internal/mcpserver"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the comparison engine as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
