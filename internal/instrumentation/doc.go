// Package instrumentation provides OpenTelemetry metrics, tracing and audit
// logging for the mcp-azure-devops server.
//
// # Metrics
//
// HTTP transport metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Tool metrics:
//   - mcp_tool_calls_total: Counter of tool calls by tool and status
//   - mcp_tool_call_duration_seconds: Histogram of tool call durations
//   - mcp_tool_calls_blocked_total: Counter of calls rejected by non-destructive mode
//
// Process metrics:
//   - az_invocations_total: Counter of az runs by command group and status
//   - az_invocation_duration_seconds: Histogram of az wall time
//
// The command label is the leading subcommand words ("repos pr"), never the
// full argument list, which may carry work item titles or WIQL text.
//
// # Tracing
//
// Every tool call opens a server span "tool.<name>" and every az run a child
// client span "az.<group>".
//
// # Configuration
//
// Instrumentation is configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable instrumentation (default: false)
//   - METRICS_EXPORTER: prometheus, otlp, stdout (default: prometheus)
//   - TRACING_EXPORTER: otlp, stdout, none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP/HTTP collector URL
//   - OTEL_EXPORTER_OTLP_INSECURE: Disable TLS for OTLP (default: false)
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: mcp-azure-devops)
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	provider.Metrics().RecordToolCall(ctx, "repos_list", instrumentation.StatusSuccess, time.Since(start))
package instrumentation
