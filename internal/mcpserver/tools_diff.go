package mcpserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apidrift/apidrift/differ"
	"github.com/apidrift/apidrift/parser"
)

type diffInput struct {
	Base         string `json:"base"                    jsonschema:"File path of the base/original OpenAPI document"`
	Current      string `json:"current"                 jsonschema:"File path of the current OpenAPI document to compare against the base"`
	BreakingOnly bool   `json:"breaking_only,omitempty" jsonschema:"Only show breaking violations"`
}

type diffViolation struct {
	Subject     string `json:"subject"`
	Rule        string `json:"rule"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type diffOutput struct {
	TotalViolations int             `json:"total_violations"`
	BreakingCount   int             `json:"breaking_count"`
	WarningCount    int             `json:"warning_count"`
	ChangeCount     int             `json:"change_count"`
	Violations      []diffViolation `json:"violations,omitempty"`
	Summary         string          `json:"summary"`
}

func handleDiff(_ context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	result, err := differ.CompareWithOptions(
		differ.WithBaseFilePath(input.Base),
		differ.WithCurrentFilePath(input.Current),
	)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	output := diffOutput{
		Violations: makeSlice[diffViolation](result.ViolationCount()),
	}

	for _, results := range [][]differ.MatchResult{result.Schemas, result.Routes} {
		for _, match := range results {
			for _, v := range match.Violations {
				if input.BreakingOnly && v.Level != differ.SeverityBreaking {
					continue
				}

				output.Violations = append(output.Violations, diffViolation{
					Subject:     match.Name,
					Rule:        v.RuleName,
					Severity:    v.Level.String(),
					Description: v.Description,
				})

				// Count by severity from the displayed violations.
				switch v.Level {
				case differ.SeverityBreaking:
					output.BreakingCount++
				case differ.SeverityWarning:
					output.WarningCount++
				default:
					output.ChangeCount++
				}
			}
		}
	}

	output.TotalViolations = len(output.Violations)
	output.Summary = buildDiffSummary(output)

	return nil, output, nil
}

func buildDiffSummary(output diffOutput) string {
	if output.TotalViolations == 0 {
		return "No changes detected."
	}

	summary := ""
	if output.BreakingCount > 0 {
		summary = "Breaking changes detected. "
	}

	summary += formatCount(output.TotalViolations, "violation") + " found"
	if output.BreakingCount > 0 {
		summary += " (" + formatCount(output.BreakingCount, "breaking change") + ")."
	} else {
		summary += "."
	}

	return summary
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

type routesInput struct {
	Spec string `json:"spec" jsonschema:"File path of the OpenAPI document to list routes from"`
}

type routeEntry struct {
	Route   string   `json:"route"`
	Schemas []string `json:"schemas,omitempty"`
}

type routesOutput struct {
	TotalRoutes int          `json:"total_routes"`
	Routes      []routeEntry `json:"routes,omitempty"`
}

func handleRoutes(_ context.Context, _ *mcp.CallToolRequest, input routesInput) (*mcp.CallToolResult, routesOutput, error) {
	doc, err := parser.New().Parse(input.Spec)
	if err != nil {
		return errResult(err), routesOutput{}, nil
	}

	infos := differ.AllRoutes(doc)
	output := routesOutput{
		TotalRoutes: len(infos),
		Routes:      makeSlice[routeEntry](len(infos)),
	}
	for _, info := range infos {
		entry := routeEntry{Route: differ.RouteKey(info.Method, info.Path)}
		seen := make(map[string]bool, len(info.Schemas))
		for _, usage := range info.Schemas {
			if seen[usage.SchemaName] {
				continue
			}
			seen[usage.SchemaName] = true
			entry.Schemas = append(entry.Schemas, usage.SchemaName)
		}
		output.Routes = append(output.Routes, entry)
	}

	return nil, output, nil
}
