// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes cfgprint over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/cfgprint"
)

const serverInstructions = `cfgprint MCP server: resolves ${...} variable references in YAML/JSON configuration files and prints the result.

Configuration: defaults are set with CFGPRINT_* environment variables in your MCP client config.

Key settings:
- CFGPRINT_MAX_DEPTH (default: 64) - substitution limit per value before a reference is reported as circular
- CFGPRINT_DEFAULT_FORMAT (default: yaml) - output format when a call does not set one
- CFGPRINT_MAX_INLINE_SIZE (default: 10485760) - largest inline content accepted, in bytes
- CFGPRINT_ALLOW_PRIVATE_IPS (default: false) - allow url inputs that resolve to private addresses`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "cfgprint", Version: cfgprint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "print",
		Description: "Resolve variable references in a configuration document and print it. References use ${source:path} syntax: self:a.b looks up a path in the same document, opt:name reads an option, and comma-separated fallbacks may end in a quoted literal, e.g. ${opt:stage, 'dev'}. Pass option values in options (stage and region have shortcuts). Use path to print one value (dot-separated, numeric segments index lists), transform=keys to list a mapping's keys, and format yaml, json, or text.",
	}, handlePrint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "references",
		Description: "List every variable reference in a configuration document with its location and whether it resolves with the given options. Use this to find which options a config needs before calling print.",
	}, handleReferences)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages so
// MCP clients do not see the server's directory layout.
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
