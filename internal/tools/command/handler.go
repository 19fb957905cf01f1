package command

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-azure-devops/internal/azcli"
	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
)

// Handler returns the generic handler for s:
//  1. validate arguments
//  2. check the PAT
//  3. apply the non-destructive gate
//  4. build argv
//  5. run az with the PAT in the environment
//  6. return the az result as-is
//
// Every failure is reported as an MCP error result with a nil Go error.
func (s Spec) Handler() tools.ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := s.Validate(args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		pat := sc.Config().PAT
		if failure := azcli.ValidatePAT(pat); failure != nil {
			return tools.ResultFromAz(*failure), nil
		}

		if blocked := tools.CheckMutatingOperation(ctx, sc, s.Name, s.Operation); blocked != nil {
			return blocked, nil
		}

		argv, err := s.BuildArgs(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result := sc.Runner().Run(ctx, azcli.Request{
			Args: argv,
			Env:  azcli.PATEnv(pat),
		})
		return tools.ResultFromAz(result), nil
	}
}
