// Package security exposes security groups, group memberships and
// permissions. The toolset is opt-in.
package security

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

const Toolset = "security"

var (
	groupID     = command.String("id", "--id", "Security group ID").AsRequired()
	subjectID   = command.String("id", "--id", "User or group ID").AsRequired()
	namespaceID = command.String("namespaceId", "--namespace-id", "Security namespace ID").AsRequired()
	token       = command.String("token", "--token", "Security token").AsRequired()
	membership  = []command.Param{
		command.String("groupId", "--group-id", "Security group ID").AsRequired(),
		command.String("memberId", "--member-id", "Member ID (user or group)").AsRequired(),
		command.Project(),
	}
)

// Commands is the security tool table.
var Commands = []command.Spec{
	{
		Name:        "security_group_list",
		Description: "List security groups",
		Command:     "devops security group list",
		Params: []command.Param{
			command.Project(),
			command.String("subject", "--subject", "Filter by subject"),
			command.String("scope", "--scope", "Scope of groups to list").WithEnum("local", "server"),
		},
	},
	{
		Name:        "security_group_show",
		Description: "Show details of a security group",
		Command:     "devops security group show",
		Params:      []command.Param{groupID, command.Project()},
	},
	{
		Name:        "security_group_create",
		Description: "Create a security group",
		Command:     "devops security group create",
		Params: []command.Param{
			command.String("name", "--name", "Security group name").AsRequired(),
			command.String("description", "--description", "Security group description"),
			command.Project(),
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "security_group_update",
		Description: "Update a security group",
		Command:     "devops security group update",
		Params: []command.Param{
			groupID,
			command.String("name", "--name", "New security group name"),
			command.String("description", "--description", "New security group description"),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "security_group_delete",
		Description: "Delete a security group",
		Command:     "devops security group delete",
		Params:      []command.Param{groupID, command.Project()},
		Confirm:     true,
		Operation:   tools.OperationDelete,
	},
	{
		Name:        "security_group_membership_add",
		Description: "Add a member to a security group",
		Command:     "devops security group membership add",
		Params:      membership,
		Operation:   tools.OperationUpdate,
	},
	{
		Name:        "security_group_membership_remove",
		Description: "Remove a member from a security group",
		Command:     "devops security group membership remove",
		Params:      membership,
		Operation:   tools.OperationUpdate,
	},
	{
		Name:        "security_group_membership_list",
		Description: "List the memberships for a group or user",
		Command:     "devops security group membership list",
		Params: []command.Param{
			command.String("id", "--id", "Group or user ID").AsRequired(),
			command.String("relationship", "--relationship", "Type of relationship to list").WithEnum("members", "memberof"),
			command.Project(),
		},
	},
	{
		Name:        "security_permission_namespace_list",
		Description: "List all available namespaces for an organization",
		Command:     "devops security permission namespace list",
		Params:      []command.Param{command.Project()},
	},
	{
		Name:        "security_permission_namespace_show",
		Description: "Show details of permissions available in each namespace",
		Command:     "devops security permission namespace show",
		Params:      []command.Param{namespaceID, command.Project()},
	},
	{
		Name:        "security_permission_list",
		Description: "List tokens for specified user or group and namespace",
		Command:     "devops security permission list",
		Params: []command.Param{
			subjectID,
			namespaceID,
			command.String("token", "--token", "Security token"),
			command.Project(),
		},
	},
	{
		Name:        "security_permission_show",
		Description: "Show permissions for specified token, namespace, and user or group",
		Command:     "devops security permission show",
		Params:      []command.Param{subjectID, namespaceID, token, command.Project()},
	},
	{
		Name:        "security_permission_update",
		Description: "Assign allow or deny permission to specified user or group",
		Command:     "devops security permission update",
		Params: []command.Param{
			subjectID,
			namespaceID,
			token,
			command.Number("allowBit", "--allow-bit", "Allow bit").WithZero(),
			command.Number("denyBit", "--deny-bit", "Deny bit").WithZero(),
			command.SwitchTrue("merge", "--merge", "Merge permissions"),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "security_permission_reset",
		Description: "Clear all permissions of this token for a user or group",
		Command:     "devops security permission reset-all",
		Params:      []command.Param{subjectID, namespaceID, token, command.Project()},
		Operation:   tools.OperationUpdate,
	},
	{
		Name:        "security_permission_reset_bit",
		Description: "Reset permission for specified permission bit(s)",
		Command:     "devops security permission reset",
		Params: []command.Param{
			subjectID,
			namespaceID,
			token,
			command.Number("permissionBit", "--permission-bit", "Permission bit to reset").AsRequired(),
			command.Project(),
		},
		Operation: tools.OperationUpdate,
	},
}

// RegisterSecurityTools registers all security tools with the MCP server.
func RegisterSecurityTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
