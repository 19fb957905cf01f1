package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/testdata"
)

func newContext(t *testing.T, opts ...server.Option) *server.ServerContext {
	t.Helper()
	sc, err := testdata.NewServerContext(testdata.NewMockRunner(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestCheckMutatingOperation_BlockedInNonDestructiveMode(t *testing.T) {
	sc := newContext(t, server.WithNonDestructiveMode(true))

	for _, op := range MutatingOperations {
		t.Run(op+" is blocked", func(t *testing.T) {
			result := CheckMutatingOperation(context.Background(), sc, "some_tool", op)
			require.NotNil(t, result, "%s should be blocked in non-destructive mode", op)
			assert.True(t, result.IsError)
			assert.Contains(t, ResultText(result), "non-destructive mode")
		})
	}
}

func TestCheckMutatingOperation_TitleCasesOperation(t *testing.T) {
	sc := newContext(t, server.WithNonDestructiveMode(true))

	result := CheckMutatingOperation(context.Background(), sc, "pipelines_delete", OperationDelete)

	require.NotNil(t, result)
	assert.Equal(t,
		`Delete operations are not allowed in non-destructive mode (add "delete" to --allowed-operations to permit them)`,
		ResultText(result))
}

func TestCheckMutatingOperation_AllowedOperations(t *testing.T) {
	sc := newContext(t,
		server.WithNonDestructiveMode(true),
		server.WithAllowedOperations([]string{OperationCreate, OperationVote}),
	)

	assert.Nil(t, CheckMutatingOperation(context.Background(), sc, "repos_pr_create", OperationCreate))
	assert.Nil(t, CheckMutatingOperation(context.Background(), sc, "repos_pr_set_vote", OperationVote))
	assert.NotNil(t, CheckMutatingOperation(context.Background(), sc, "repos_update", OperationUpdate))
}

func TestCheckMutatingOperation_DisabledByDefault(t *testing.T) {
	sc := newContext(t)

	for _, op := range MutatingOperations {
		assert.Nil(t, CheckMutatingOperation(context.Background(), sc, "some_tool", op), op)
	}
}

func TestCheckMutatingOperation_ReadOnlyNeverBlocked(t *testing.T) {
	sc := newContext(t, server.WithNonDestructiveMode(true))

	assert.Nil(t, CheckMutatingOperation(context.Background(), sc, "repos_list", ""))
	assert.Nil(t, CheckMutatingOperation(context.Background(), sc, "repos_list", "download"))
}
