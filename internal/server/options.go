package server

import (
	"errors"

	"github.com/giantswarm/mcp-azure-devops/internal/azcli"
	"github.com/giantswarm/mcp-azure-devops/internal/instrumentation"
)

// Option is a functional option for configuring ServerContext.
type Option func(*ServerContext) error

// WithRunner sets the az process runner.
func WithRunner(runner azcli.Runner) Option {
	return func(sc *ServerContext) error {
		if runner == nil {
			return ErrMissingRunner
		}
		sc.runner = runner
		return nil
	}
}

// WithLogger sets the logger for the ServerContext.
func WithLogger(logger Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the ServerContext.
func WithConfig(config *Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return ErrMissingConfig
		}
		sc.config = config.Clone()
		return nil
	}
}

// withConfigField lazily creates the config and applies set to it.
func withConfigField(set func(*Config)) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		set(sc.config)
		return nil
	}
}

// WithServerName sets the server name in the configuration.
func WithServerName(name string) Option {
	return withConfigField(func(c *Config) { c.ServerName = name })
}

// WithVersion sets the version reported to clients.
func WithVersion(version string) Option {
	return withConfigField(func(c *Config) { c.Version = version })
}

// WithOrganization sets the Azure DevOps organization URL.
func WithOrganization(organization string) Option {
	return withConfigField(func(c *Config) { c.Organization = organization })
}

// WithProject sets the default project used when a call names none.
func WithProject(project string) Option {
	return withConfigField(func(c *Config) { c.Project = project })
}

// WithPAT sets the personal access token handed to every az invocation.
func WithPAT(pat string) Option {
	return withConfigField(func(c *Config) { c.PAT = pat })
}

// WithToolsets restricts registration to the named toolsets.
func WithToolsets(toolsets []string) Option {
	return withConfigField(func(c *Config) {
		c.Toolsets = append([]string(nil), toolsets...)
	})
}

// WithNonDestructiveMode enables or disables non-destructive mode.
func WithNonDestructiveMode(enabled bool) Option {
	return withConfigField(func(c *Config) { c.NonDestructiveMode = enabled })
}

// WithAllowedOperations sets the mutating operations still permitted in
// non-destructive mode.
func WithAllowedOperations(operations []string) Option {
	return withConfigField(func(c *Config) {
		c.AllowedOperations = append([]string(nil), operations...)
	})
}

// WithLogLevel sets the logging level.
func WithLogLevel(level string) Option {
	return withConfigField(func(c *Config) { c.LogLevel = level })
}

// WithInstrumentationProvider sets the OpenTelemetry instrumentation provider.
func WithInstrumentationProvider(provider *instrumentation.Provider) Option {
	return func(sc *ServerContext) error {
		sc.instrumentationProvider = provider
		return nil
	}
}

// Error definitions for ServerContext validation and operations.
var (
	ErrMissingRunner  = errors.New("az runner is required")
	ErrMissingLogger  = errors.New("logger is required")
	ErrMissingConfig  = errors.New("configuration is required")
	ErrServerShutdown = errors.New("server context has been shutdown")
)
