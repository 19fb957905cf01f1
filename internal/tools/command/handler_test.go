package command

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-azure-devops/internal/azcli"
	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/testdata"
)

func newServerContext(t *testing.T, runner azcli.Runner, opts ...server.Option) *server.ServerContext {
	t.Helper()
	sc, err := testdata.NewServerContext(runner, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "test"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", result.Content[0])
	return text.Text
}

var prArgs = map[string]any{"repository": "api", "title": "Fix"}

func TestHandler_Success(t *testing.T) {
	runner := testdata.NewMockRunner()
	runner.Result = azcli.Success(`{"pullRequestId":7}`)
	sc := newServerContext(t, runner)

	result, err := prCreate.Handler()(context.Background(), callRequest(prArgs), sc)

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, `{"pullRequestId":7}`, resultText(t, result))

	requests := runner.Requests()
	require.Len(t, requests, 1)
	wantArgs := []string{"repos", "pr", "create", "--repository", "api", "--title", "Fix", "--output", "json"}
	if diff := cmp.Diff(wantArgs, requests[0].Args); diff != "" {
		t.Errorf("argv mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]string{
		azcli.EnvExtPAT: "test-pat",
		azcli.EnvPAT:    "test-pat",
	}, requests[0].Env)
}

func TestHandler_FailurePassesThrough(t *testing.T) {
	runner := testdata.NewMockRunner()
	runner.Result = azcli.Failure("ERROR: TF401019: The Git repository with name or identifier api does not exist")
	sc := newServerContext(t, runner)

	result, err := prCreate.Handler()(context.Background(), callRequest(prArgs), sc)

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, runner.Result.Message, resultText(t, result))
}

func TestHandler_ShortCircuits(t *testing.T) {
	boardsQuery := Spec{
		Name:    "boards_query",
		Command: "boards query",
		Params:  []Param{String("id", "--id", ""), String("wiql", "--wiql", "")},
		OneOf:   []string{"id", "wiql"},
	}

	tests := []struct {
		name    string
		spec    Spec
		args    map[string]any
		opts    []server.Option
		wantMsg string
	}{
		{
			name:    "missing PAT",
			spec:    prCreate,
			args:    prArgs,
			opts:    []server.Option{server.WithPAT("")},
			wantMsg: azcli.MissingPATMessage,
		},
		{
			name:    "invalid arguments",
			spec:    prCreate,
			args:    map[string]any{"repository": "api"},
			wantMsg: `invalid parameter "title": is required`,
		},
		{
			name:    "invalid arguments before missing PAT",
			spec:    prCreate,
			args:    map[string]any{"repository": 5, "title": "x"},
			opts:    []server.Option{server.WithPAT("")},
			wantMsg: `invalid parameter "repository": must be a string`,
		},
		{
			name:    "non-destructive mode",
			spec:    prCreate,
			args:    prArgs,
			opts:    []server.Option{server.WithNonDestructiveMode(true)},
			wantMsg: `Create operations are not allowed in non-destructive mode (add "create" to --allowed-operations to permit them)`,
		},
		{
			name:    "one-of unset",
			spec:    boardsQuery,
			args:    map[string]any{},
			wantMsg: "Must specify either 'id' or 'wiql' parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testdata.NewMockRunner()
			sc := newServerContext(t, runner, tt.opts...)

			result, err := tt.spec.Handler()(context.Background(), callRequest(tt.args), sc)

			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Equal(t, tt.wantMsg, resultText(t, result))
			assert.Zero(t, runner.Calls(), "az must not be launched")
		})
	}
}

func TestHandler_AllowedOperationPasses(t *testing.T) {
	runner := testdata.NewMockRunner()
	sc := newServerContext(t, runner,
		server.WithNonDestructiveMode(true),
		server.WithAllowedOperations([]string{"create"}),
	)

	result, err := prCreate.Handler()(context.Background(), callRequest(prArgs), sc)

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, 1, runner.Calls())
}

func TestHandler_Stateless(t *testing.T) {
	runner := testdata.NewMockRunner()
	sc := newServerContext(t, runner)
	handler := prCreate.Handler()

	_, _ = handler(context.Background(), callRequest(map[string]any{"repository": "a", "title": "t", "draft": true}), sc)
	_, _ = handler(context.Background(), callRequest(map[string]any{"repository": "b", "title": "t"}), sc)

	requests := runner.Requests()
	require.Len(t, requests, 2)
	assert.Contains(t, requests[0].Args, "--draft")
	assert.NotContains(t, requests[1].Args, "--draft")
}

// rpc sends one JSON-RPC message to s and decodes the response.
func rpc(t *testing.T, s *mcpserver.MCPServer, id int, method string, params any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": id, "method": method, "params": params})
	require.NoError(t, err)

	encoded, err := json.Marshal(s.HandleMessage(context.Background(), raw))
	require.NoError(t, err)

	var response map[string]any
	require.NoError(t, json.Unmarshal(encoded, &response))
	require.Nil(t, response["error"], "rpc %s failed: %v", method, response["error"])
	return response["result"].(map[string]any)
}

func TestRegister_ServesTools(t *testing.T) {
	runner := testdata.NewMockRunner()
	sc := newServerContext(t, runner)
	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(true))

	vote := Spec{
		Name:        "repos_pr_set_vote",
		Description: "Set vote on a pull request",
		Command:     "repos pr set-vote",
		Params: []Param{
			Number("id", "--id", "Pull request ID").AsRequired(),
			String("vote", "--vote", "Vote value").WithEnum("approve", "reject").AsRequired(),
			Project(),
		},
		Operation: "vote",
	}
	require.NoError(t, Register(s, sc, "repos", []Spec{prCreate, vote}))
	assert.Equal(t, map[string]int{"repos": 2}, sc.RegisteredTools())

	listed := rpc(t, s, 1, "tools/list", map[string]any{})
	toolsByName := map[string]map[string]any{}
	for _, raw := range listed["tools"].([]any) {
		tool := raw.(map[string]any)
		toolsByName[tool["name"].(string)] = tool
	}
	require.Contains(t, toolsByName, "repos_pr_set_vote")

	schema := toolsByName["repos_pr_set_vote"]["inputSchema"].(map[string]any)
	assert.ElementsMatch(t, []any{"id", "vote"}, schema["required"])
	props := schema["properties"].(map[string]any)
	assert.Equal(t, []any{"approve", "reject"}, props["vote"].(map[string]any)["enum"])
	assert.Equal(t, ProjectDescription, props["project"].(map[string]any)["description"])

	called := rpc(t, s, 2, "tools/call", map[string]any{
		"name":      "repos_pr_set_vote",
		"arguments": map[string]any{"id": 7, "vote": "approve"},
	})
	assert.NotEqual(t, true, called["isError"])
	assert.Equal(t, []string{"repos", "pr", "set-vote", "--id", "7", "--vote", "approve", "--output", "json"}, runner.LastArgs())
}

func TestRegister_RejectsInvalidTable(t *testing.T) {
	sc := newServerContext(t, testdata.NewMockRunner())
	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(true))

	err := Register(s, sc, "broken", []Spec{prCreate, prCreate})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTool)
	assert.Empty(t, sc.RegisteredTools())
	assert.Equal(t, fmt.Sprintf("toolset broken: %v", CheckAll([]Spec{prCreate, prCreate})), err.Error())
}
