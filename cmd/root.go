package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the mcp-azure-devops application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mcp-azure-devops",
	Short: "MCP server for Azure DevOps operations",
	Long: heredoc.Doc(`
		mcp-azure-devops is a Model Context Protocol (MCP) server that exposes
		Azure DevOps operations as tools. Every tool runs one az CLI command
		(with the azure-devops extension) and returns its JSON output.

		Boards, pipelines, repositories, wikis and organization tools are
		enabled by default. Artifacts, security, service endpoints and banners
		can be enabled with --toolsets.

		When run without subcommands, it starts the MCP server (equivalent to 'mcp-azure-devops serve').
	`),
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// It is called from the main package to inject the version set at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mcp-azure-devops version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newToolsetsCmd())
}
