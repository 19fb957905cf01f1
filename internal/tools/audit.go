package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/instrumentation"
	"github.com/giantswarm/mcp-azure-devops/internal/logging"
	"github.com/giantswarm/mcp-azure-devops/internal/server"
)

// WrapWithAuditLogging wraps a tool handler so that every call:
//   - runs inside a tool.<name> span
//   - is counted and timed in the tool call metrics
//   - produces exactly one audit record
//
// operation is the tool's mutating verb, or "" for read-only tools.
func WrapWithAuditLogging(
	toolName string,
	operation string,
	handler ToolHandler,
	sc *server.ServerContext,
) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project := effectiveProject(request.GetArguments(), sc)
		mutating := IsMutatingOperation(operation)

		ctx, span := instrumentation.StartToolSpan(ctx, toolName,
			instrumentation.NewSpanAttributeBuilder().
				WithOperation(operation).
				WithProject(project).
				WithMutating(mutating).
				Build()...)
		defer span.End()

		invocation := instrumentation.NewToolInvocation(toolName).
			WithOperation(operation, mutating).
			WithProject(project).
			WithSpanContext(ctx)

		result, err := handler(ctx, request, sc)

		switch {
		case err != nil:
			invocation.CompleteWithError(err)
			instrumentation.SetSpanError(span, err)
		case result != nil && result.IsError:
			msg := ResultText(result)
			invocation.CompleteWithError(errors.New(msg))
			instrumentation.SetSpanError(span, errors.New(msg))
		default:
			invocation.CompleteSuccess()
			instrumentation.SetSpanSuccess(span)
		}

		sc.Metrics().RecordToolCall(ctx, toolName, invocation.Status(), invocation.Duration)
		sc.AuditLogger().LogToolInvocation(ctx, invocation)
		sc.Logger().Debug("tool call finished",
			logging.Tool(toolName),
			logging.Status(invocation.Status()),
			logging.Duration(invocation.Duration))

		return result, err
	}
}

// effectiveProject is the project the call will target: the explicit
// argument, else the configured default.
func effectiveProject(args map[string]any, sc *server.ServerContext) string {
	if project, ok := args["project"].(string); ok && project != "" {
		return project
	}
	return sc.Config().Project
}
