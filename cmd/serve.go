package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/giantswarm/mcp-azure-devops/internal/azcli"
	"github.com/giantswarm/mcp-azure-devops/internal/instrumentation"
	"github.com/giantswarm/mcp-azure-devops/internal/logging"
	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/toolsets"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		config      ServeConfig
		toolsetsRaw string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Azure DevOps server",
		Long: heredoc.Doc(`
			Start the MCP Azure DevOps server to provide tools for working with
			Azure DevOps via the Model Context Protocol.

			Supports multiple transport types:
			  - stdio: Standard input/output (default)
			  - sse: Server-Sent Events over HTTP
			  - streamable-http: Streamable HTTP transport

			The HTTP transports do not authenticate callers. Bind them to a
			private address or serve them behind an authenticating proxy.

			Every tool runs the az CLI. The personal access token is read from the
			AZURE_DEVOPS_PAT environment variable and handed to each az process;
			tool calls fail with an error result while it is unset.

			Settings not given as flags fall back to AZURE_DEVOPS_ORG,
			AZURE_DEVOPS_PROJECT, AZ_PATH, MCP_TOOLSETS and METRICS_ADDR.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("toolsets") {
				config.Toolsets = toolsets.Parse(toolsetsRaw)
			}
			loadEnvFallbacks(cmd, &config, os.Getenv)
			if err := config.Validate(); err != nil {
				return err
			}
			return runServe(config)
		},
	}

	cmd.Flags().StringVar(&config.Transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&config.HTTPAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&config.SSEEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.MessageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.HTTPEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	cmd.Flags().StringVar(&config.Organization, "organization", "", "Azure DevOps organization URL, e.g. https://dev.azure.com/contoso (env: AZURE_DEVOPS_ORG)")
	cmd.Flags().StringVar(&config.Project, "project", "", "Default Azure DevOps project (env: AZURE_DEVOPS_PROJECT)")
	cmd.Flags().StringVar(&config.AzPath, "az-path", "", "Path to the az executable (env: AZ_PATH)")
	cmd.Flags().StringVar(&toolsetsRaw, "toolsets", "", fmt.Sprintf("Comma separated toolsets to enable, or %q (default: %v; env: MCP_TOOLSETS)", toolsets.All, toolsets.DefaultNames()))

	cmd.Flags().BoolVar(&config.NonDestructiveMode, "non-destructive", false, "Block tools that create, update, delete, run, vote or publish")
	cmd.Flags().StringSliceVar(&config.AllowedOperations, "allowed-operations", nil, "Mutating operations still permitted in non-destructive mode (e.g. create,update)")

	cmd.Flags().BoolVar(&config.DebugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&config.LogFormat, "log-format", logging.FormatText, "Log format: text or json")

	cmd.Flags().BoolVar(&config.Metrics.Enabled, "enable-metrics-server", true, "Serve /metrics on a dedicated address alongside HTTP transports")
	cmd.Flags().StringVar(&config.Metrics.Addr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address (env: METRICS_ADDR)")

	return cmd
}

// runServe contains the main server logic with support for multiple transports.
func runServe(config ServeConfig) error {
	logger, err := logging.New(logging.Options{Format: config.LogFormat, Debug: config.DebugMode})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	// Listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	instrumentationConfig := instrumentation.DefaultConfig()
	instrumentationConfig.ServiceVersion = rootCmd.Version
	provider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	provider.SetAuditLogger(logger)
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Error("error during instrumentation shutdown", logging.Err(err))
		}
	}()
	if provider.Enabled() {
		logger.Info("OpenTelemetry instrumentation enabled",
			"metrics_exporter", instrumentationConfig.MetricsExporter,
			"tracing_exporter", instrumentationConfig.TracingExporter)
	}

	runner := azcli.NewExecRunner(
		azcli.WithExecutable(config.AzPath),
		azcli.WithLogger(logger),
		azcli.WithMetrics(provider.Metrics()),
	)

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithRunner(runner),
		server.WithLogger(logging.NewSlogAdapter(logger)),
		server.WithConfig(config.serverConfig(rootCmd.Version)),
		server.WithInstrumentationProvider(provider),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			logger.Error("error during server context shutdown", logging.Err(err))
		}
	}()

	if config.PAT == "" {
		logger.Warn("AZURE_DEVOPS_PAT is not set; every tool call will return an error until it is")
	} else {
		logger.Debug("personal access token configured", "token", logging.SanitizeToken(config.PAT))
	}
	configureAzDefaults(shutdownCtx, logger, runner, config)

	mcpSrv := newMCPServer(serverContext)
	if err := toolsets.RegisterAll(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}
	logger.Info("tools registered",
		"toolsets", serverContext.RegisteredTools(),
		logging.Transport(config.Transport))

	switch config.Transport {
	case transportStdio:
		return runStdioServer(mcpSrv)
	case transportSSE:
		return runSSEServer(shutdownCtx, mcpSrv, config, provider)
	case transportStreamableHTTP:
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, config, provider, serverContext)
	default:
		return fmt.Errorf("%w: %s", errUnsupportedTransport, config.Transport)
	}
}

// newMCPServer creates the MCP server with tool support enabled.
func newMCPServer(sc *server.ServerContext) *mcpserver.MCPServer {
	return mcpserver.NewMCPServer(sc.Config().ServerName, sc.Config().Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)
}

// configureAzDefaults points az at the configured organization and project.
// A failure is logged and startup continues.
func configureAzDefaults(ctx context.Context, logger *slog.Logger, runner azcli.Runner, config ServeConfig) {
	result, attempted := azcli.ConfigureDefaults(ctx, runner, config.PAT, config.Organization, config.Project)
	switch {
	case !attempted:
		logger.Info("AZURE_DEVOPS_ORG not set - skipping az devops configure")
	case result.IsError:
		logger.Warn("failed to configure Azure DevOps defaults",
			logging.Organization(config.Organization),
			"error", result.Message)
	default:
		logger.Info("Azure DevOps defaults configured",
			logging.Organization(config.Organization),
			logging.Project(config.Project))
	}
}
