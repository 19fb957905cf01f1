// Package pipelines exposes Azure Pipelines definitions, runs and
// pipeline variables.
package pipelines

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

const Toolset = "pipelines"

var (
	pipelineID         = command.Number("id", "--id", "Pipeline ID").AsRequired()
	variablePipelineID = command.Number("pipelineId", "--pipeline-id", "Pipeline ID").AsRequired()
	variableName       = command.String("name", "--name", "Variable name").AsRequired()
)

// Commands is the pipelines tool table.
var Commands = []command.Spec{
	{
		Name:        "pipelines_list",
		Description: "List pipelines in the project",
		Command:     "pipelines list",
		Params: []command.Param{
			command.Project(),
			command.String("name", "--name", "Filter pipelines by name"),
			command.String("folder", "--folder-path", "Filter pipelines by folder path"),
		},
	},
	{
		Name:        "pipeline_show",
		Description: "Show details for a specific pipeline",
		Command:     "pipelines show",
		Params:      []command.Param{pipelineID, command.Project()},
	},
	{
		Name:        "pipelines_create",
		Description: "Create a new pipeline",
		Command:     "pipelines create",
		Params: []command.Param{
			command.String("name", "--name", "Pipeline name").AsRequired(),
			command.String("repository", "--repository", "Repository name").AsRequired(),
			command.String("repositoryType", "--repository-type", "Repository type (default: tfsgit)").WithEnum("github", "tfsgit", "bitbucket"),
			command.String("branch", "--branch", "Branch name (default: main)"),
			command.String("yamlPath", "--yaml-path", "Path to YAML file (default: azure-pipelines.yml)"),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "pipelines_run",
		Description: "Run a pipeline",
		Command:     "pipelines run",
		Params: []command.Param{
			pipelineID,
			command.String("branch", "--branch", "Branch to run from"),
			command.String("commit", "--commit", "Commit ID to run from"),
			command.Pairs("variables", "--variables", "Variables to pass to the pipeline"),
			command.Project(),
		},
		Operation: tools.OperationRun,
	},
	{
		Name:        "pipelines_update",
		Description: "Update a pipeline",
		Command:     "pipelines update",
		Params: []command.Param{
			pipelineID,
			command.String("name", "--name", "New pipeline name"),
			command.String("description", "--description", "New pipeline description"),
			command.String("branch", "--branch", "Default branch"),
			command.String("yamlPath", "--yaml-path", "Path to YAML file"),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "pipelines_delete",
		Description: "Delete a pipeline",
		Command:     "pipelines delete",
		Params:      []command.Param{pipelineID, command.Project()},
		Confirm:     true,
		Operation:   tools.OperationDelete,
	},
	{
		Name:        "pipelines_runs_list",
		Description: "List pipeline runs",
		Command:     "pipelines runs list",
		Params: []command.Param{
			command.Number("pipelineId", "--pipeline-ids", "Pipeline ID to filter runs"),
			command.String("branch", "--branch", "Branch name to filter runs"),
			command.String("status", "--status", "Status to filter runs").WithEnum("completed", "inProgress", "notStarted", "cancelling", "postponed"),
			command.Number("top", "--top", "Maximum number of runs to return"),
			command.Project(),
		},
	},
	{
		Name:        "pipelines_runs_show",
		Description: "Show pipeline run details",
		Command:     "pipelines runs show",
		Params: []command.Param{
			command.Number("id", "--id", "Pipeline run ID").AsRequired(),
			command.Project(),
		},
	},
	{
		Name:        "pipelines_variable_list",
		Description: "List variables for a pipeline",
		Command:     "pipelines variable list",
		Params:      []command.Param{variablePipelineID, command.Project()},
	},
	{
		Name:        "pipelines_variable_create",
		Description: "Create a pipeline variable",
		Command:     "pipelines variable create",
		Params: []command.Param{
			variablePipelineID,
			variableName,
			command.String("value", "--value", "Variable value").AsRequired(),
			command.SwitchTrue("secret", "--secret", "Mark variable as secret"),
			command.SwitchTrue("allowOverride", "--allow-override", "Allow variable to be overridden at queue time"),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "pipelines_variable_update",
		Description: "Update a pipeline variable",
		Command:     "pipelines variable update",
		Params: []command.Param{
			variablePipelineID,
			variableName,
			command.String("value", "--value", "New variable value"),
			command.Bool("secret", "--secret", "Mark variable as secret"),
			command.Bool("allowOverride", "--allow-override", "Allow variable to be overridden at queue time"),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
}

// RegisterPipelinesTools registers all pipelines tools with the MCP server.
func RegisterPipelinesTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
