package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/mcp-azure-devops/internal/instrumentation"
	"github.com/giantswarm/mcp-azure-devops/internal/logging"
	"github.com/giantswarm/mcp-azure-devops/internal/server"
	"github.com/giantswarm/mcp-azure-devops/internal/server/middleware"
)

// newHTTPHandler builds the streamable HTTP handler with health endpoints
// and the middleware chain applied.
func newHTTPHandler(mcpSrv *mcpserver.MCPServer, config ServeConfig, provider *instrumentation.Provider, sc *server.ServerContext) (http.Handler, error) {
	origins, err := middleware.ValidateAllowedOrigins(config.AllowedOrigins)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(config.HTTPEndpoint, mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath(config.HTTPEndpoint),
	))
	server.NewHealthChecker(sc).RegisterHealthEndpoints(mux)

	var handler http.Handler = mux
	handler = middleware.MaxRequestSize(middleware.DefaultMaxRequestBytes)(handler)
	handler = middleware.CORS(origins)(handler)
	handler = middleware.SecurityHeaders(middleware.SecurityHeadersConfig{EnableHSTS: config.EnableHSTS})(handler)
	handler = middleware.HTTPMetrics(provider.Metrics())(handler)
	return handler, nil
}

// newStreamableHTTPServer wraps handler in an http.Server. There is no write
// timeout: a tool call answers only once its az process exits, however long
// that takes.
func newStreamableHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: server.DefaultReadHeaderTimeout,
		IdleTimeout:       server.DefaultIdleTimeout,
	}
}

// runStreamableHTTPServer runs the server with Streamable HTTP transport
func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, config ServeConfig, provider *instrumentation.Provider, sc *server.ServerContext) error {
	handler, err := newHTTPHandler(mcpSrv, config, provider, sc)
	if err != nil {
		return err
	}

	httpServer := newStreamableHTTPServer(config.HTTPAddr, handler)

	metricsServer, err := newMetricsServer(config.Metrics, provider)
	if err != nil {
		return err
	}

	slog.Info("streamable HTTP server starting",
		"addr", config.HTTPAddr,
		"endpoint", config.HTTPEndpoint,
		"health_endpoints", []string{"/healthz", "/readyz", "/healthz/detailed"})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		return nil
	})
	if metricsServer != nil {
		g.Go(func() error { return serveMetrics(metricsServer) })
	}
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()

		shutdownMetrics(shutdownCtx, metricsServer)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("HTTP server stopped", logging.Err(err))
		return err
	}
	slog.Info("HTTP server gracefully stopped")
	return nil
}

// newMetricsServer returns nil when the metrics server is disabled or
// instrumentation is off.
func newMetricsServer(config MetricsServeConfig, provider *instrumentation.Provider) (*server.MetricsServer, error) {
	if !config.Enabled || !provider.Enabled() {
		return nil, nil
	}
	metricsServer, err := server.NewMetricsServer(server.MetricsServerConfig{
		Addr:                    config.Addr,
		InstrumentationProvider: provider,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics server: %w", err)
	}
	return metricsServer, nil
}

func serveMetrics(metricsServer *server.MetricsServer) error {
	slog.Info("metrics server started", "addr", metricsServer.Addr(), "endpoint", "/metrics")
	if err := metricsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server stopped with error: %w", err)
	}
	return nil
}

func shutdownMetrics(ctx context.Context, metricsServer *server.MetricsServer) {
	if metricsServer == nil {
		return
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		slog.Error("error shutting down metrics server", logging.Err(err))
	}
}
