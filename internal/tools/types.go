// Package tools holds what every MCP tool handler shares: the handler
// signature, conversion of az results to MCP results, the non-destructive
// gate and the audit wrapper.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-azure-devops/internal/azcli"
	"github.com/giantswarm/mcp-azure-devops/internal/server"
)

// ToolHandler is the signature for MCP tool handler functions that take ServerContext.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error)

// ResultFromAz converts an az outcome to an MCP result without touching the
// text: output on success, the diagnostic with isError set on failure.
func ResultFromAz(result azcli.Result) *mcp.CallToolResult {
	if result.IsError {
		return mcp.NewToolResultError(result.Message)
	}
	return mcp.NewToolResultText(result.Output)
}

// ResultText returns the text of the first text content in result, or "".
func ResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	if text, ok := result.Content[0].(mcp.TextContent); ok {
		return text.Text
	}
	return ""
}
