// Package boards exposes Azure Boards work items, queries, areas and
// iterations.
package boards

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
)

const Toolset = "boards"

var (
	assignedTo = command.String("assignedTo", "--assigned-to", "Assign work item to user (email or display name)")
	area       = command.String("area", "--area", "Area path for the work item")
	iteration  = command.String("iteration", "--iteration", "Iteration path for the work item")
)

// Commands is the boards tool table.
var Commands = []command.Spec{
	{
		Name:        "boards_query",
		Description: "Query Azure Boards work items using WIQL (Work Item Query Language) or existing query ID/path",
		Command:     "boards query",
		Params: []command.Param{
			command.String("id", "--id", "The ID of an existing query"),
			command.String("path", "--path", "The path of an existing query (ignored if ID is specified)"),
			command.String("wiql", "--wiql", "Work Item Query Language (WIQL) query string (ignored if ID or path specified)"),
		},
		OneOf: []string{"id", "path", "wiql"},
	},
	{
		Name:        "boards_work_item_show",
		Description: "Show details for a specific work item by ID",
		Command:     "boards work-item show",
		Params: []command.Param{
			command.Number("id", "--id", "Work item ID").AsRequired(),
		},
	},
	{
		Name:        "boards_work_item_create",
		Description: "Create a new work item",
		Command:     "boards work-item create",
		Params: []command.Param{
			command.String("type", "--type", "Work item type (e.g., 'Bug', 'User Story', 'Task', 'Feature')").AsRequired(),
			command.String("title", "--title", "Work item title").AsRequired(),
			command.String("description", "--description", "Work item description"),
			assignedTo,
			area,
			iteration,
		},
		Operation: tools.OperationCreate,
	},
	{
		Name:        "boards_work_item_update",
		Description: "Update an existing work item",
		Command:     "boards work-item update",
		Params: []command.Param{
			command.Number("id", "--id", "Work item ID to update").AsRequired(),
			command.String("title", "--title", "New work item title"),
			command.String("description", "--description", "New work item description"),
			command.String("state", "--state", "New work item state (e.g., 'New', 'Active', 'Resolved', 'Closed')"),
			assignedTo,
			area,
			iteration,
		},
		Operation: tools.OperationUpdate,
	},
	{
		Name:        "boards_work_item_delete",
		Description: "Delete a work item (moves to recycle bin)",
		Command:     "boards work-item delete",
		Params: []command.Param{
			command.Number("id", "--id", "Work item ID to delete").AsRequired(),
			command.Switch("destroy", "--destroy", "Permanently delete instead of moving to recycle bin"),
		},
		Confirm:   true,
		Operation: tools.OperationDelete,
	},
	{
		Name:        "boards_area_list",
		Description: "List area paths for the project",
		Command:     "boards area project list",
		Params: []command.Param{
			command.Number("depth", "--depth", "Depth of the area paths to list (default: 1)"),
		},
	},
	{
		Name:        "boards_iteration_list",
		Description: "List iteration paths for the project",
		Command:     "boards iteration project list",
		Params: []command.Param{
			command.Number("depth", "--depth", "Depth of the iteration paths to list (default: 1)"),
		},
	},
	{
		Name:        "boards_work_item_relation_types",
		Description: "List supported work item relation types in the organization",
		Command:     "boards work-item relation list-type",
	},
	{
		Name:        "boards_work_item_relation_add",
		Description: "Add relation(s) to a work item",
		Command:     "boards work-item relation add",
		Params: []command.Param{
			command.Number("id", "--id", "Work item ID to add relations to").AsRequired(),
			command.String("relationName", "--relation-type", "Relation type name (e.g., 'parent', 'child', 'related', 'duplicate')").AsRequired(),
			command.Number("targetId", "--target-id", "Target work item ID for the relation").AsRequired(),
		},
		Operation: tools.OperationUpdate,
	},
}

// RegisterBoardsTools registers all boards tools with the MCP server.
func RegisterBoardsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	return command.Register(s, sc, Toolset, Commands)
}
