package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apidrift/apidrift/differ"
	"github.com/apidrift/apidrift/parser"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes <spec>",
		Short: "List every route with the component schemas it references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parser.New().Parse(args[0])
			if err != nil {
				return err
			}
			for _, info := range differ.AllRoutes(doc) {
				fmt.Println(differ.RouteKey(info.Method, info.Path))
				for _, usage := range info.Schemas {
					if usage.Location == differ.UsageRequestBody {
						fmt.Printf("  request:  %s (%s)\n", usage.SchemaName, usage.ContentType)
					} else {
						fmt.Printf("  response: %s (%s, %s)\n", usage.SchemaName, usage.ContentType, usage.Status)
					}
				}
			}
			return nil
		},
	}
}
