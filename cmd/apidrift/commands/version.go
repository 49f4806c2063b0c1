package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apidrift/apidrift"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apidrift",
		Run: func(command *cobra.Command, args []string) {
			fmt.Println(apidrift.Version())
		},
	}
}
