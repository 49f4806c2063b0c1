// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the apidrift comparison engine as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apidrift/apidrift"
)

const serverInstructions = `apidrift MCP server: compares two versions of an OpenAPI document and reports compatibility violations.

The diff tool takes base and current spec file paths (JSON or YAML) and returns severity-classified violations: breaking (removed schemas/routes, new required inputs, stricter types), warning (format changes, removed response statuses), and change (compatible additions). Use breaking_only=true to focus on breaking changes first.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidrift", Version: apidrift.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare two versions of an OpenAPI document and report compatibility violations. Detects breaking changes, warnings, and compatible changes at schema and route level, and cross-links schema instability onto the routes that use each schema. Both base and current must be provided as file paths.",
	}, handleDiff)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "routes",
		Description: "List every route in an OpenAPI document together with the named component schemas its request and response bodies reference. Useful for impact analysis before changing a schema.",
	}, handleRoutes)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
