// Package repos exposes Azure Repos repositories and pull requests.
package repos

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

const Toolset = "repos"

var (
	repository = command.String("repository", "--repository", "Repository name or ID").AsRequired()
	prID       = command.Number("id", "--id", "Pull request ID").AsRequired()
)

// Commands is the repos tool table.
var Commands = []command.Spec{
	{
		Name:        "repos_list",
		Description: "List repositories in the project",
		Command:     "repos list",
		Params:      []command.Param{command.Project()},
	},
	{
		Name:        "repo_show",
		Description: "Show details for a specific repository",
		Command:     "repos show",
		Params:      []command.Param{repository, command.Project()},
	},
	{
		Name:        "repos_create",
		Description: "Create a new repository",
		Command:     "repos create",
		Params: []command.Param{
			command.String("name", "--name", "Repository name").AsRequired(),
			command.SwitchTrue("detectFormat", "--detect", "Detect file format from first file"),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "repos_update",
		Description: "Update a repository",
		Command:     "repos update",
		Params: []command.Param{
			repository,
			command.String("name", "--name", "New repository name"),
			command.String("defaultBranch", "--default-branch", "Default branch name"),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "repos_pr_list",
		Description: "List pull requests",
		Command:     "repos pr list",
		Params: []command.Param{
			command.String("repository", "--repository", "Repository name or ID"),
			command.String("status", "--status", "PR status filter").WithEnum("active", "abandoned", "completed", "all"),
			command.String("createdBy", "--creator", "Filter by PR creator"),
			command.String("reviewer", "--reviewer", "Filter by reviewer"),
			command.String("sourceBranch", "--source-branch", "Filter by source branch"),
			command.String("targetBranch", "--target-branch", "Filter by target branch"),
			command.Number("top", "--top", "Maximum number of PRs to return"),
			command.Project(),
		},
	},
	{
		Name:        "repos_pr_show",
		Description: "Show pull request details",
		Command:     "repos pr show",
		Params:      []command.Param{prID, command.Project()},
	},
	{
		Name:        "repos_pr_create",
		Description: "Create a pull request",
		Command:     "repos pr create",
		Params: []command.Param{
			repository,
			command.String("sourceBranch", "--source-branch", "Source branch name").AsRequired(),
			command.String("targetBranch", "--target-branch", "Target branch name").AsRequired(),
			command.String("title", "--title", "Pull request title").AsRequired(),
			command.String("description", "--description", "Pull request description"),
			command.List("reviewers", "--reviewers", "List of reviewers"),
			command.List("workItems", "--work-items", "List of work item IDs to link"),
			command.SwitchTrue("draft", "--draft", "Create as draft pull request"),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "repos_pr_update",
		Description: "Update a pull request",
		Command:     "repos pr update",
		Params: []command.Param{
			prID,
			command.String("title", "--title", "New pull request title"),
			command.String("description", "--description", "New pull request description"),
			command.String("status", "--status", "New pull request status").WithEnum("abandoned", "active", "completed"),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "repos_pr_set_vote",
		Description: "Set vote on a pull request",
		Command:     "repos pr set-vote",
		Params: []command.Param{
			prID,
			command.String("vote", "--vote", "Vote value").
				WithEnum("approve", "approve-with-suggestions", "reject", "reset", "wait-for-author").
				AsRequired(),
			command.Project(),
		},
		Operation: tools.OperationVote,
	},
	{
		Name:        "repos_pr_reviewer_add",
		Description: "Add reviewers to a pull request",
		Command:     "repos pr reviewer add",
		Params: []command.Param{
			prID,
			command.List("reviewers", "--reviewers", "List of reviewers to add").AsRequired(),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "repos_pr_reviewer_remove",
		Description: "Remove reviewers from a pull request",
		Command:     "repos pr reviewer remove",
		Params: []command.Param{
			prID,
			command.List("reviewers", "--reviewers", "List of reviewers to remove").AsRequired(),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
}

// RegisterReposTools registers all repos tools with the MCP server.
func RegisterReposTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
