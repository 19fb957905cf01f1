// Package toolsets groups the tool tables into named toolsets and decides
// which of them a server registers.
package toolsets

import (
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"

	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/artifacts"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/banner"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/boards"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/organization"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/pipelines"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/repos"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/security"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/serviceendpoint"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/wiki"
)

// All selects every toolset, opt-in ones included.
const All = "all"

// Toolset is a named group of tools registered together.
type Toolset struct {
	Name        string
	Description string
	Default     bool
	Commands    []command.Spec
	Register    func(s *mcpserver.MCPServer, sc *server.ServerContext) error
}

// Catalog lists every toolset in registration order.
var Catalog = []Toolset{
	{
		Name:        organization.Toolset,
		Description: "Projects, teams and users",
		Default:     true,
		Commands:    organization.Commands,
		Register:    organization.RegisterOrganizationTools,
	},
	{
		Name:        boards.Toolset,
		Description: "Work items, queries, areas and iterations",
		Default:     true,
		Commands:    boards.Commands,
		Register:    boards.RegisterBoardsTools,
	},
	{
		Name:        pipelines.Toolset,
		Description: "Pipelines, runs and pipeline variables",
		Default:     true,
		Commands:    pipelines.Commands,
		Register:    pipelines.RegisterPipelinesTools,
	},
	{
		Name:        repos.Toolset,
		Description: "Repositories and pull requests",
		Default:     true,
		Commands:    repos.Commands,
		Register:    repos.RegisterReposTools,
	},
	{
		Name:        wiki.Toolset,
		Description: "Wikis and wiki pages",
		Default:     true,
		Commands:    wiki.Commands,
		Register:    wiki.RegisterWikiTools,
	},
	{
		Name:        artifacts.Toolset,
		Description: "Artifact feeds and universal packages",
		Commands:    artifacts.Commands,
		Register:    artifacts.RegisterArtifactsTools,
	},
	{
		Name:        security.Toolset,
		Description: "Security groups, memberships and permissions",
		Commands:    security.Commands,
		Register:    security.RegisterSecurityTools,
	},
	{
		Name:        serviceendpoint.Toolset,
		Description: "Service connections",
		Commands:    serviceendpoint.Commands,
		Register:    serviceendpoint.RegisterServiceEndpointTools,
	},
	{
		Name:        banner.Toolset,
		Description: "Organization banners",
		Commands:    banner.Commands,
		Register:    banner.RegisterBannerTools,
	},
}

// Names returns every toolset name.
func Names() []string {
	return lo.Map(Catalog, func(t Toolset, _ int) string { return t.Name })
}

// DefaultNames returns the toolsets enabled when none are requested.
func DefaultNames() []string {
	return lo.FilterMap(Catalog, func(t Toolset, _ int) (string, bool) { return t.Name, t.Default })
}

// Parse splits a comma separated toolset list, trimming blanks and case.
func Parse(raw string) []string {
	names := lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	return lo.Uniq(lo.Compact(names))
}

// Resolve maps requested names to toolsets in catalog order. No names
// selects the defaults; "all" selects everything.
func Resolve(requested []string) ([]Toolset, error) {
	if len(requested) == 0 {
		return lo.Filter(Catalog, func(t Toolset, _ int) bool { return t.Default }), nil
	}
	if lo.Contains(requested, All) {
		return Catalog, nil
	}

	if unknown, _ := lo.Difference(requested, Names()); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown toolsets %s (valid: %s, %s)",
			strings.Join(unknown, ", "), strings.Join(Names(), ", "), All)
	}
	return lo.Filter(Catalog, func(t Toolset, _ int) bool { return lo.Contains(requested, t.Name) }), nil
}

// RegisterAll registers the toolsets selected by the server configuration.
func RegisterAll(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	selected, err := Resolve(sc.Config().Toolsets)
	if err != nil {
		return err
	}

	for _, toolset := range selected {
		if err := toolset.Register(s, sc); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", toolset.Name, err)
		}
		sc.Logger().Debug("registered toolset", "toolset", toolset.Name, "tools", len(toolset.Commands))
	}
	return nil
}
