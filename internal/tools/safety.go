package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
)

// Operation verbs attached to tools that change remote state.
const (
	OperationCreate  = "create"
	OperationUpdate  = "update"
	OperationDelete  = "delete"
	OperationRun     = "run"
	OperationVote    = "vote"
	OperationPublish = "publish"
)

// MutatingOperations lists every verb the non-destructive gate knows about.
var MutatingOperations = []string{
	OperationCreate,
	OperationUpdate,
	OperationDelete,
	OperationRun,
	OperationVote,
	OperationPublish,
}

// IsMutatingOperation reports whether operation is one of MutatingOperations.
func IsMutatingOperation(operation string) bool {
	return lo.Contains(MutatingOperations, operation)
}

// CheckMutatingOperation returns an error result when toolName performs a
// mutating operation that the current configuration forbids, and nil when
// the call may proceed.
//
// Calls are allowed if:
//   - the operation is empty or not a mutating verb, OR
//   - NonDestructiveMode is disabled, OR
//   - the operation is explicitly listed in AllowedOperations
func CheckMutatingOperation(ctx context.Context, sc *server.ServerContext, toolName, operation string) *mcp.CallToolResult {
	if !IsMutatingOperation(operation) {
		return nil
	}

	config := sc.Config()
	if !config.NonDestructiveMode || lo.Contains(config.AllowedOperations, operation) {
		return nil
	}

	sc.Metrics().RecordToolCallBlocked(ctx, toolName, operation)

	return mcp.NewToolResultError(fmt.Sprintf(
		"%s operations are not allowed in non-destructive mode (add %q to --allowed-operations to permit them)",
		cases.Title(language.English).String(operation),
		operation,
	))
}
