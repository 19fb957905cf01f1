package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/mcp-azure-devops/internal/tools/command"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/toolsets"
)

// newToolsetsCmd lists the toolsets and, with --tools, every tool in them.
func newToolsetsCmd() *cobra.Command {
	var showTools bool

	cmd := &cobra.Command{
		Use:   "toolsets",
		Short: "List the available toolsets",
		Long:  `Lists every toolset that can be passed to 'serve --toolsets' and marks the ones enabled by default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, ts := range toolsets.Catalog {
				marker := " "
				if ts.Default {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %-18s %3d  %s\n", marker, ts.Name, len(ts.Commands), ts.Description)
				if showTools {
					for _, name := range command.Names(ts.Commands) {
						_, _ = fmt.Fprintf(out, "    %s\n", name)
					}
				}
			}
			_, _ = fmt.Fprintf(out, "\n* enabled by default; use %q to enable every toolset\n", toolsets.All)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTools, "tools", false, "Also list the tools in each toolset")
	return cmd
}
