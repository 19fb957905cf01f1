// Package serviceendpoint exposes service connections. The toolset is opt-in.
package serviceendpoint

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

const Toolset = "service-endpoints"

var (
	endpointID   = command.String("id", "--id", "Service endpoint ID").AsRequired()
	endpointName = command.String("name", "--name", "Service endpoint name").AsRequired()
)

// Commands is the service endpoint tool table.
var Commands = []command.Spec{
	{
		Name:        "service_endpoint_list",
		Description: "List service endpoints",
		Command:     "devops service-endpoint list",
		Params:      []command.Param{command.Project()},
	},
	{
		Name:        "service_endpoint_show",
		Description: "Show details of a service endpoint",
		Command:     "devops service-endpoint show",
		Params:      []command.Param{endpointID, command.Project()},
	},
	{
		Name:        "service_endpoint_azurerm_create",
		Description: "Create an Azure Resource Manager service endpoint",
		Command:     "devops service-endpoint azurerm create",
		Params: []command.Param{
			endpointName,
			command.String("azureRmSubscriptionId", "--azure-rm-subscription-id", "Azure subscription ID").AsRequired(),
			command.String("azureRmSubscriptionName", "--azure-rm-subscription-name", "Azure subscription name").AsRequired(),
			command.String("azureRmTenantId", "--azure-rm-tenant-id", "Azure tenant ID").AsRequired(),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "service_endpoint_github_create",
		Description: "Create a GitHub service endpoint",
		Command:     "devops service-endpoint github create",
		Params: []command.Param{
			endpointName,
			command.String("githubUrl", "--github-url", "GitHub URL").AsRequired(),
			command.String("githubAccessToken", "--github-access-token", "GitHub access token").AsRequired(),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "service_endpoint_update",
		Description: "Update a service endpoint",
		Command:     "devops service-endpoint update",
		Params: []command.Param{
			endpointID,
			command.String("name", "--name", "New service endpoint name"),
			command.String("description", "--description", "New service endpoint description"),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "service_endpoint_delete",
		Description: "Delete a service endpoint",
		Command:     "devops service-endpoint delete",
		Params:      []command.Param{endpointID, command.Project()},
		Confirm:     true,
		Operation:   tools.OperationDelete,
	},
}

// RegisterServiceEndpointTools registers all service endpoint tools with the MCP server.
func RegisterServiceEndpointTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
