// Package banner exposes organization-wide banners. The toolset is opt-in.
package banner

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

const Toolset = "banners"

var bannerID = command.String("id", "--id", "Banner ID").AsRequired()

// Commands is the banner tool table.
var Commands = []command.Spec{
	{
		Name:        "banner_list",
		Description: "List banners in the organization",
		Command:     "devops admin banner list",
	},
	{
		Name:        "banner_show",
		Description: "Show banner details",
		Command:     "devops admin banner show",
		Params:      []command.Param{bannerID},
	},
	{
		Name:        "banner_add",
		Description: "Add a new banner",
		Command:     "devops admin banner add",
		Params: []command.Param{
			command.String("message", "--message", "Banner message").AsRequired(),
			command.String("type", "--type", "Banner type (default: info)").WithEnum("error", "info", "warning"),
			command.String("expiration", "--expiration", "Banner expiration date (YYYY-MM-DD)"),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "banner_update",
		Description: "Update a banner",
		Command:     "devops admin banner update",
		Params: []command.Param{
			bannerID,
			command.String("message", "--message", "New banner message"),
			command.String("type", "--type", "New banner type").WithEnum("error", "info", "warning"),
			command.String("expiration", "--expiration", "New banner expiration date (YYYY-MM-DD)"),
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "banner_remove",
		Description: "Remove a banner",
		Command:     "devops admin banner remove",
		Params:      []command.Param{bannerID},
		Confirm:     true,
		Operation:   tools.OperationDelete,
	},
}

// RegisterBannerTools registers all banner tools with the MCP server.
func RegisterBannerTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
