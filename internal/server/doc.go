// Package server provides the ServerContext and the HTTP infrastructure
// shared by the MCP transports.
//
// ServerContext carries the dependencies every tool handler needs: the az
// runner, the configuration (organization, default project, personal access
// token, non-destructive mode), the logger and the instrumentation provider.
// Dependencies are injected with functional options:
//
//	sc, err := server.NewServerContext(ctx,
//		server.WithRunner(azcli.NewExecRunner()),
//		server.WithLogger(logging.NewSlogAdapter(logger)),
//		server.WithOrganization("https://dev.azure.com/contoso"),
//		server.WithProject("Fabrikam"),
//		server.WithPAT(os.Getenv(azcli.EnvPAT)),
//	)
//	if err != nil {
//		return err
//	}
//	defer sc.Shutdown()
//
// The personal access token is excluded from the Config JSON form and is
// reported by the health endpoints only as configured or not.
//
// HealthChecker serves /healthz, /readyz and /healthz/detailed for the HTTP
// transports. MetricsServer exposes Prometheus metrics on its own listener.
package server
