package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/apidrift/apidrift/differ"
	"github.com/apidrift/apidrift/parser"
	"github.com/apidrift/apidrift/report"
)

func diffCmd() *cobra.Command {
	var (
		output         string
		format         string
		failOnBreaking bool
		verbose        bool
	)

	command := &cobra.Command{
		Use:   "diff <base> <current>",
		Short: "Compare two OpenAPI documents and write a compatibility report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], output, format, failOnBreaking, verbose)
		},
	}

	command.Flags().StringVarP(&output, "output", "o", "", "write the report to this file instead of stdout")
	command.Flags().StringVarP(&format, "format", "f", "html", "report format: html or json")
	command.Flags().BoolVar(&failOnBreaking, "fail-on-breaking", false, "exit non-zero when breaking changes are detected")
	command.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return command
}

func runDiff(basePath, currentPath, output, format string, failOnBreaking, verbose bool) error {
	renderer, err := newRenderer(format)
	if err != nil {
		return err
	}

	opts := []differ.Option{
		differ.WithBaseFilePath(basePath),
		differ.WithCurrentFilePath(currentPath),
	}
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, differ.WithLogger(parser.NewSlogAdapter(slog.New(handler))))
	}

	result, err := differ.CompareWithOptions(opts...)
	if err != nil {
		return err
	}

	data, err := renderer.Render(result)
	if err != nil {
		return err
	}

	if output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "report written to %s\n", output)
	}

	fmt.Fprintf(os.Stderr, "%d violations: %d breaking, %d warnings, %d changes\n",
		result.ViolationCount(), result.BreakingCount, result.WarningCount, result.ChangeCount)

	if failOnBreaking && result.HasBreakingChanges {
		return fmt.Errorf("%d breaking change(s) detected", result.BreakingCount)
	}
	return nil
}

func newRenderer(format string) (report.Renderer, error) {
	switch format {
	case "html":
		return report.NewHTMLRenderer()
	case "json":
		return report.NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: html, json)", format)
	}
}
