package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/giantswarm/mcp-azure-devops/internal/logging"
)

// resolver is implemented by runners that can report where az lives.
type resolver interface {
	Executable() string
	Resolve() (string, error)
}

// HealthChecker provides health check endpoints for container probes.
type HealthChecker struct {
	ready         atomic.Bool
	serverContext *ServerContext
	startTime     time.Time
}

// NewHealthChecker creates a new HealthChecker. It starts out ready.
func NewHealthChecker(sc *ServerContext) *HealthChecker {
	h := &HealthChecker{
		serverContext: sc,
		startTime:     time.Now(),
	}
	h.ready.Store(true)
	return h
}

// SetReady sets the readiness state of the server.
func (h *HealthChecker) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady returns whether the server is ready to receive traffic.
func (h *HealthChecker) IsReady() bool {
	return h.ready.Load()
}

// HealthResponse represents the JSON response for health endpoints.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Version string            `json:"version,omitempty"`
}

// DetailedHealthResponse describes the server's configuration and dependencies.
type DetailedHealthResponse struct {
	Status             string                      `json:"status"`
	Version            string                      `json:"version,omitempty"`
	Uptime             string                      `json:"uptime"`
	Organization       string                      `json:"organization,omitempty"`
	DefaultProject     string                      `json:"default_project,omitempty"`
	PATConfigured      bool                        `json:"pat_configured"`
	NonDestructiveMode bool                        `json:"non_destructive_mode"`
	AzCLI              *AzCLIStatus                `json:"az_cli,omitempty"`
	Tools              *ToolsStatus                `json:"tools,omitempty"`
	Instrumentation    *InstrumentationHealthCheck `json:"instrumentation,omitempty"`
}

// AzCLIStatus reports whether the az executable can be found.
type AzCLIStatus struct {
	Executable string `json:"executable"`
	Path       string `json:"path,omitempty"`
	Available  bool   `json:"available"`
	Error      string `json:"error,omitempty"`
}

// ToolsStatus reports how many tools each toolset registered.
type ToolsStatus struct {
	Total    int            `json:"total"`
	Toolsets map[string]int `json:"toolsets"`
}

// InstrumentationHealthCheck provides health information about instrumentation.
type InstrumentationHealthCheck struct {
	Enabled         bool   `json:"enabled"`
	MetricsExporter string `json:"metrics_exporter,omitempty"`
	TracingExporter string `json:"tracing_exporter,omitempty"`
}

// LivenessHandler returns an HTTP handler for the /healthz endpoint.
func (h *HealthChecker) LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		response := HealthResponse{Status: "ok"}
		if h.serverContext != nil && h.serverContext.Config() != nil {
			response.Version = h.serverContext.Config().Version
		}

		_ = json.NewEncoder(w).Encode(response)
	})
}

// ReadinessHandler returns an HTTP handler for the /readyz endpoint.
// A runner that can resolve az must find it for the server to be ready.
func (h *HealthChecker) ReadinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		checks := make(map[string]string)
		allOk := true

		if !h.ready.Load() {
			checks["ready"] = "not ready"
			allOk = false
		} else {
			checks["ready"] = "ok"
		}

		if h.serverContext != nil && h.serverContext.IsShutdown() {
			checks["shutdown"] = "shutting down"
			allOk = false
		} else {
			checks["shutdown"] = "ok"
		}

		if h.serverContext != nil {
			if status := h.getAzCLIStatus(); status != nil {
				if status.Available {
					checks["az"] = "ok"
				} else {
					checks["az"] = "not found"
					allOk = false
				}
			}

			if provider := h.serverContext.InstrumentationProvider(); provider != nil {
				if provider.Enabled() {
					checks["instrumentation"] = "ok"
				} else {
					checks["instrumentation"] = "disabled"
				}
			}
		}

		response := HealthResponse{Checks: checks}
		if allOk {
			response.Status = "ok"
			w.WriteHeader(http.StatusOK)
		} else {
			response.Status = "not ready"
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(response)
	})
}

// RegisterHealthEndpoints registers health check endpoints on the given mux.
func (h *HealthChecker) RegisterHealthEndpoints(mux *http.ServeMux) {
	mux.Handle("/healthz", h.LivenessHandler())
	mux.Handle("/readyz", h.ReadinessHandler())
	mux.Handle("/healthz/detailed", h.DetailedHealthHandler())
}

// DetailedHealthHandler returns an HTTP handler for the /healthz/detailed endpoint.
// The personal access token is reported only as present or absent.
func (h *HealthChecker) DetailedHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		response := DetailedHealthResponse{
			Status: "ok",
			Uptime: time.Since(h.startTime).Truncate(time.Second).String(),
		}

		if h.serverContext != nil {
			if cfg := h.serverContext.Config(); cfg != nil {
				response.Version = cfg.Version
				if cfg.Organization != "" {
					response.Organization = logging.Organization(cfg.Organization).Value.String()
				}
				response.DefaultProject = cfg.Project
				response.PATConfigured = cfg.PAT != ""
				response.NonDestructiveMode = cfg.NonDestructiveMode
			}
			response.AzCLI = h.getAzCLIStatus()
			response.Tools = h.getToolsStatus()
			response.Instrumentation = h.getInstrumentationStatus()
		}

		switch {
		case !h.ready.Load():
			response.Status = "not ready"
			w.WriteHeader(http.StatusServiceUnavailable)
		case h.serverContext != nil && h.serverContext.IsShutdown():
			response.Status = "shutting down"
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(response)
	})
}

// getAzCLIStatus returns nil when the runner cannot resolve executables.
func (h *HealthChecker) getAzCLIStatus() *AzCLIStatus {
	r, ok := h.serverContext.Runner().(resolver)
	if !ok {
		return nil
	}

	status := &AzCLIStatus{Executable: r.Executable()}
	path, err := r.Resolve()
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Path = path
	status.Available = true
	return status
}

func (h *HealthChecker) getToolsStatus() *ToolsStatus {
	counts := h.serverContext.RegisteredTools()
	total := 0
	for _, n := range counts {
		total += n
	}
	return &ToolsStatus{Total: total, Toolsets: counts}
}

func (h *HealthChecker) getInstrumentationStatus() *InstrumentationHealthCheck {
	provider := h.serverContext.InstrumentationProvider()
	if provider == nil {
		return &InstrumentationHealthCheck{Enabled: false}
	}

	status := &InstrumentationHealthCheck{Enabled: provider.Enabled()}
	if provider.Enabled() {
		status.MetricsExporter = provider.Config().MetricsExporter
		status.TracingExporter = provider.Config().TracingExporter
	}
	return status
}
