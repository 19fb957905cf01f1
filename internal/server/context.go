package server

import (
	"context"
	"sort"
	"sync"

	"github.com/giantswarm/mcp-azure-devops/internal/azcli"
	"github.com/giantswarm/mcp-azure-devops/internal/instrumentation"
	"github.com/giantswarm/mcp-azure-devops/internal/logging"
)

// ServerContext encapsulates all dependencies needed by the MCP server
// and provides a clean abstraction for dependency injection and lifecycle management.
type ServerContext struct {
	runner                  azcli.Runner
	logger                  Logger
	config                  *Config
	instrumentationProvider *instrumentation.Provider

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	shutdown bool

	toolsMu sync.RWMutex
	tools   map[string][]string
}

// NewServerContext creates a new ServerContext with default values.
// Use the provided functional options to customize the context.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	serverCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    serverCtx,
		cancel: cancel,
		config: NewDefaultConfig(),
		logger: logging.DefaultLogger(),
		tools:  make(map[string][]string),
	}

	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}

	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}

	return sc, nil
}

// Context returns the server context for cancellation and deadlines.
func (sc *ServerContext) Context() context.Context {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ctx
}

// Runner returns the az process runner shared by all tools.
func (sc *ServerContext) Runner() azcli.Runner {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.runner
}

// Logger returns the logger interface.
func (sc *ServerContext) Logger() Logger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// InstrumentationProvider returns the OpenTelemetry provider, which may be nil.
func (sc *ServerContext) InstrumentationProvider() *instrumentation.Provider {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.instrumentationProvider
}

// Metrics returns the metrics recorder. It is a no-op recorder when
// instrumentation is not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.InstrumentationProvider().Metrics()
}

// AuditLogger returns the audit logger for tool invocations.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	return sc.InstrumentationProvider().AuditLogger()
}

// RecordRegisteredTools remembers which tools a toolset registered so the
// detailed health endpoint can report them.
func (sc *ServerContext) RecordRegisteredTools(toolset string, names ...string) {
	sc.toolsMu.Lock()
	defer sc.toolsMu.Unlock()
	sc.tools[toolset] = append(sc.tools[toolset], names...)
}

// RegisteredTools returns the number of registered tools per toolset.
func (sc *ServerContext) RegisteredTools() map[string]int {
	sc.toolsMu.RLock()
	defer sc.toolsMu.RUnlock()

	counts := make(map[string]int, len(sc.tools))
	for toolset, names := range sc.tools {
		counts[toolset] = len(names)
	}
	return counts
}

// RegisteredToolNames returns every registered tool name, sorted.
func (sc *ServerContext) RegisteredToolNames() []string {
	sc.toolsMu.RLock()
	defer sc.toolsMu.RUnlock()

	var names []string
	for _, toolset := range sc.tools {
		names = append(names, toolset...)
	}
	sort.Strings(names)
	return names
}

// Shutdown gracefully shuts down the server context.
// This cancels the context and releases any resources.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.logger.Info("Shutting down server context")

	if sc.cancel != nil {
		sc.cancel()
	}
	sc.shutdown = true

	sc.logger.Info("Server context shutdown complete")
	return nil
}

// IsShutdown returns true if the server context has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// validate ensures all required dependencies are set.
func (sc *ServerContext) validate() error {
	if sc.runner == nil {
		return ErrMissingRunner
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.config == nil {
		return ErrMissingConfig
	}
	return nil
}

// Logger defines the interface for logging operations. Arguments are slog
// key/value pairs.
type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Config holds the server configuration.
type Config struct {
	// Server settings
	ServerName string `json:"serverName"`
	Version    string `json:"version"`
	Transport  string `json:"transport"`

	// Azure DevOps settings
	Organization string `json:"organization"`
	Project      string `json:"project"`
	PAT          string `json:"-"`

	// Tool selection. Empty Toolsets enables the default toolsets.
	Toolsets []string `json:"toolsets"`

	// Non-destructive mode settings
	NonDestructiveMode bool     `json:"nonDestructiveMode"`
	AllowedOperations  []string `json:"allowedOperations"`

	// Logging settings
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// NewDefaultConfig creates a configuration with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName: "mcp-azure-devops",
		Version:    "0.1.0",
		Transport:  "stdio",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.Toolsets != nil {
		clone.Toolsets = append([]string(nil), c.Toolsets...)
	}
	if c.AllowedOperations != nil {
		clone.AllowedOperations = append([]string(nil), c.AllowedOperations...)
	}
	return &clone
}
