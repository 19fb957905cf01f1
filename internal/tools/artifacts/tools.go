// Package artifacts exposes Azure Artifacts feeds and universal packages.
// The toolset is opt-in.
package artifacts

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

const Toolset = "artifacts"

var (
	feed    = command.String("feed", "--feed", "Feed name or ID").AsRequired()
	pkgName = command.String("name", "--name", "Package name").AsRequired()
	version = command.String("version", "--version", "Package version").AsRequired()
)

// Commands is the artifacts tool table.
var Commands = []command.Spec{
	{
		Name:        "artifacts_feeds_list",
		Description: "List artifact feeds in the project or organization",
		Command:     "artifacts universal list",
		Params: []command.Param{
			command.Project(),
			command.String("scope", "--scope", "Scope of feeds to list (default: project)").WithEnum("project", "organization"),
		},
	},
	{
		Name:        "artifacts_feed_create",
		Description: "Create an artifact feed",
		Command:     "artifacts universal create",
		Params: []command.Param{
			command.String("name", "--name", "Feed name").AsRequired(),
			command.String("description", "--description", "Feed description"),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "artifacts_universal_publish",
		Description: "Publish a universal package",
		Command:     "artifacts universal publish",
		Params: []command.Param{
			feed,
			pkgName,
			version,
			command.String("path", "--path", "Directory path to publish").AsRequired(),
			command.String("description", "--description", "Package description"),
			command.Project(),
		},
		Operation: tools.OperationPublish,
	},
	{
		Name:        "artifacts_universal_download",
		Description: "Download a universal package",
		Command:     "artifacts universal download",
		Params: []command.Param{
			feed,
			pkgName,
			version,
			command.String("path", "--path", "Directory path to download to").AsRequired(),
			command.Project(),
		},
	},
}

// RegisterArtifactsTools registers all artifacts tools with the MCP server.
func RegisterArtifactsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
