// Package wiki exposes project wikis and their pages.
package wiki

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

const Toolset = "wiki"

var (
	wikiName = command.String("wiki", "--wiki", "Wiki name or ID").AsRequired()
	pagePath = command.String("path", "--path", "Page path").AsRequired()
)

// Commands is the wiki tool table.
var Commands = []command.Spec{
	{
		Name:        "wiki_list",
		Description: "List wikis in the project",
		Command:     "devops wiki list",
		Params:      []command.Param{command.Project()},
	},
	{
		Name:        "wiki_show",
		Description: "View wiki details",
		Command:     "devops wiki show",
		Params:      []command.Param{wikiName, command.Project()},
	},
	{
		Name:        "wiki_page_create",
		Description: "Add a wiki page",
		Command:     "devops wiki page create",
		Params: []command.Param{
			wikiName,
			pagePath,
			command.String("content", "--content", "Page content (markdown)").AsRequired(),
			command.String("comment", "--comment", "Commit comment"),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "wiki_page_show",
		Description: "View a wiki page",
		Command:     "devops wiki page show",
		Params: []command.Param{
			wikiName,
			pagePath,
			command.String("version", "--version", "Version to show"),
			command.Switch("includeContent", "--include-content", "Include page content"),
			command.Project(),
		},
	},
}

// RegisterWikiTools registers all wiki tools with the MCP server.
func RegisterWikiTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
