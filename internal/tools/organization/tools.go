// Package organization exposes projects, teams and users of the
// configured Azure DevOps organization.
package organization

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

// Toolset is the name these tools are registered under.
const Toolset = "organization"

// Commands is the organization tool table.
var Commands = []command.Spec{
	{
		Name:        "list_projects",
		Description: "List Azure DevOps projects using az cli (uses configured defaults)",
		Command:     "devops project list",
	},
	{
		Name:        "project_show",
		Description: "Show details for a specific project",
		Command:     "devops project show",
		Params:      []command.Param{command.Project()},
	},
	{
		Name:        "teams_list",
		Description: "List teams in the project",
		Command:     "devops team list",
		Params:      []command.Param{command.Project()},
	},
	{
		Name:        "team_show",
		Description: "Show details for a specific team",
		Command:     "devops team show",
		Params: []command.Param{
			command.String("team", "--team", "Team name or ID").AsRequired(),
			command.Project(),
		},
	},
	{
		Name:        "team_members_list",
		Description: "List members of a team",
		Command:     "devops team list-member",
		Params: []command.Param{
			command.String("team", "--team", "Team name or ID").AsRequired(),
			command.Project(),
		},
	},
	{
		Name:        "users_list",
		Description: "List users in the organization",
		Command:     "devops user list",
		Params: []command.Param{
			command.Number("top", "--top", "Maximum number of users to return"),
			command.Number("skip", "--skip", "Number of users to skip"),
		},
	},
	{
		Name:        "user_show",
		Description: "Show user details",
		Command:     "devops user show",
		Params: []command.Param{
			command.String("user", "--user", "User email or ID").AsRequired(),
		},
	},
}

// RegisterOrganizationTools registers all organization tools with the MCP server.
func RegisterOrganizationTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
