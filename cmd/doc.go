// Package cmd provides the command-line interface for mcp-azure-devops.
//
// This package implements a Cobra-based CLI with multiple subcommands:
//   - serve: Starts the MCP server (default behavior when no subcommand is provided)
//   - toolsets: Lists the toolsets that serve can enable
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// Command Structure:
//
//	mcp-azure-devops [flags]                 # Starts the MCP server (default)
//	mcp-azure-devops serve [flags]           # Explicitly starts the MCP server
//	mcp-azure-devops toolsets [--tools]      # Lists toolsets and their tools
//	mcp-azure-devops version                 # Shows version information
//	mcp-azure-devops self-update             # Updates to latest release
//
// The serve command supports multiple transport options:
//   - stdio: Standard input/output (default) - for command-line integration
//   - sse: Server-Sent Events over HTTP - for web-based clients
//   - streamable-http: Streamable HTTP transport - for HTTP-based integration
//
// Transport Configuration Examples:
//
//	mcp-azure-devops serve --transport stdio
//	mcp-azure-devops serve --transport sse --http-addr :8080 --sse-endpoint /sse
//	mcp-azure-devops serve --transport streamable-http --http-addr :9000 --http-endpoint /mcp
//
// The personal access token is only read from AZURE_DEVOPS_PAT.
package cmd
