package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/giantswarm/mcp-azure-devops/internal/logging"
	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/server/middleware"
	"github.com/giantswarm/mcp-azure-devops/internal/tools"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/toolsets"
)

// Environment variables read by the serve command.
const (
	envOrganization = "AZURE_DEVOPS_ORG"
	envProject      = "AZURE_DEVOPS_PROJECT"
	envPAT          = "AZURE_DEVOPS_PAT"
	envAzPath       = "AZ_PATH"
	envToolsets     = "MCP_TOOLSETS"
	envMetricsAddr  = "METRICS_ADDR"
	envEnableHSTS   = "ENABLE_HSTS"
	envOrigins      = "ALLOWED_ORIGINS"
)

// envValueTrue is the string value used to enable boolean environment variables.
const envValueTrue = "true"

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Azure DevOps settings
	Organization string
	Project      string
	PAT          string
	AzPath       string

	// Tool selection
	Toolsets           []string
	NonDestructiveMode bool
	AllowedOperations  []string

	// Logging
	DebugMode bool
	LogFormat string

	// HTTP hardening
	EnableHSTS bool
	// AllowedOrigins is the raw comma separated CORS origin list.
	AllowedOrigins string

	Metrics MetricsServeConfig
}

// MetricsServeConfig controls the dedicated metrics server.
type MetricsServeConfig struct {
	Enabled bool
	Addr    string
}

// loadEnvFallbacks fills settings whose flag was not explicitly set from the
// environment. The token is only ever read from the environment.
func loadEnvFallbacks(cmd *cobra.Command, config *ServeConfig, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	fromEnv := func(flag string, target *string, key string) {
		if cmd.Flags().Changed(flag) {
			return
		}
		if v := getenv(key); v != "" {
			*target = v
		}
	}

	fromEnv("organization", &config.Organization, envOrganization)
	fromEnv("project", &config.Project, envProject)
	fromEnv("az-path", &config.AzPath, envAzPath)
	fromEnv("metrics-addr", &config.Metrics.Addr, envMetricsAddr)

	if !cmd.Flags().Changed("toolsets") {
		if v := getenv(envToolsets); v != "" {
			config.Toolsets = toolsets.Parse(v)
		}
	}

	config.PAT = getenv(envPAT)
	config.EnableHSTS = getenv(envEnableHSTS) == envValueTrue
	config.AllowedOrigins = getenv(envOrigins)
}

var errUnsupportedTransport = errors.New("unsupported transport type")

// Validate reports every configuration problem at once.
func (c *ServeConfig) Validate() error {
	var result *multierror.Error

	switch c.Transport {
	case transportStdio, transportSSE, transportStreamableHTTP:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %s (supported: %s, %s, %s)",
			errUnsupportedTransport, c.Transport, transportStdio, transportSSE, transportStreamableHTTP))
	}

	if _, err := toolsets.Resolve(c.Toolsets); err != nil {
		result = multierror.Append(result, err)
	}

	if unknown, _ := lo.Difference(c.AllowedOperations, tools.MutatingOperations); len(unknown) > 0 {
		result = multierror.Append(result, fmt.Errorf("unknown allowed operations %s (valid: %s)",
			strings.Join(unknown, ", "), strings.Join(tools.MutatingOperations, ", ")))
	}

	switch strings.ToLower(c.LogFormat) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		result = multierror.Append(result, fmt.Errorf("unsupported log format %q", c.LogFormat))
	}

	if _, err := middleware.ValidateAllowedOrigins(c.AllowedOrigins); err != nil {
		result = multierror.Append(result, err)
	}

	for _, endpoint := range []string{c.SSEEndpoint, c.MessageEndpoint, c.HTTPEndpoint} {
		if endpoint != "" && !strings.HasPrefix(endpoint, "/") {
			result = multierror.Append(result, fmt.Errorf("endpoint %q must start with /", endpoint))
		}
	}

	return result.ErrorOrNil()
}

// serverConfig converts the serve settings into the configuration shared
// with every tool handler.
func (c *ServeConfig) serverConfig(version string) *server.Config {
	cfg := server.NewDefaultConfig()
	cfg.Version = version
	cfg.Transport = c.Transport
	cfg.Organization = c.Organization
	cfg.Project = c.Project
	cfg.PAT = c.PAT
	cfg.Toolsets = c.Toolsets
	cfg.NonDestructiveMode = c.NonDestructiveMode
	cfg.AllowedOperations = c.AllowedOperations
	if c.DebugMode {
		cfg.LogLevel = "debug"
	}
	if c.LogFormat != "" {
		cfg.LogFormat = c.LogFormat
	}
	return cfg
}
