// Package logging provides structured logging utilities for mcp-azure-devops.
//
// All output goes through log/slog. The helpers here keep attribute names
// consistent between the az runner, the tool handlers and the transports.
//
// # Usage Patterns
//
// Build the process logger once from the serve flags:
//
//	logger, err := logging.New(logging.Options{Format: "json", Debug: true})
//	slog.SetDefault(logger)
//
// Attach standard attributes:
//
//	logging.WithTool(logger, "repos_list").Info("tool call finished",
//	    logging.Project("Fabrikam"),
//	    logging.Status(logging.StatusSuccess))
//
// # Security Considerations
//
// Personal access tokens are never logged; use SanitizeToken to report
// whether one is configured. Organization URLs pointing at a bare IP
// (typical of on-premises Azure DevOps Server) are redacted by
// Organization.
package logging
