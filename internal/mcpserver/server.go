// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes phpscoper capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/phpscoper"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `phpscoper MCP server: prefixes the namespaces of PHP dependency files.

The scope tool takes a file path and its contents. vendor/composer/installed.json has the autoload namespaces of every package prefixed; other files are returned unchanged.

Configuration: PHPSCOPER_MCP_PREFIX sets the default prefix, PHPSCOPER_MCP_MAX_BYTES bounds the size of inline contents (default 10 MiB).`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "phpscoper", Version: phpscoper.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scope",
		Description: "Scope a single PHP dependency file. For vendor/composer/installed.json (slash or backslash separated), the PSR-4 and PSR-0 namespaces of every package's autoload and autoload-dev sections are prefixed and the document is re-encoded with stable formatting. Other files are returned unchanged. Fails if installed.json is not a JSON object with a packages field.",
	}, handleScope)
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
