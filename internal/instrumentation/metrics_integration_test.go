package instrumentation

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestAllMetricsExposedViaPrometheus records every metric once and checks
// that each one appears on the provider's scrape handler.
func TestAllMetricsExposedViaPrometheus(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-metrics-integration",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: ExporterPrometheus,
		TracingExporter: ExporterNone,
	})
	if err != nil {
		t.Fatalf("Failed to create instrumentation provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	metrics := provider.Metrics()
	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 200, 15*time.Millisecond)
	metrics.RecordToolCall(ctx, "repos_list", StatusSuccess, 300*time.Millisecond)
	metrics.RecordToolCallBlocked(ctx, "repos_create", "create")
	metrics.RecordAzInvocation(ctx, "repos list", StatusSuccess, 290*time.Millisecond)

	handler := provider.PrometheusHandler()
	if handler == nil {
		t.Fatal("PrometheusHandler should not be nil for the prometheus exporter")
	}
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch metrics: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read metrics body: %v", err)
	}
	output := string(body)

	expected := []string{
		"http_requests_total",
		"http_request_duration_seconds_bucket",
		"mcp_tool_calls_total",
		"mcp_tool_call_duration_seconds_bucket",
		"mcp_tool_calls_blocked_total",
		"az_invocations_total",
		"az_invocation_duration_seconds_bucket",
	}
	for _, name := range expected {
		if !strings.Contains(output, name) {
			t.Errorf("metric %s not exposed", name)
		}
	}

	if !strings.Contains(output, `tool="repos_list"`) {
		t.Error("tool label missing from scrape output")
	}
	if !strings.Contains(output, `command="repos list"`) {
		t.Error("command label missing from scrape output")
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.Enabled() {
		t.Error("provider should report disabled")
	}
	if provider.Metrics() == nil {
		t.Fatal("Metrics should never be nil")
	}
	if provider.PrometheusHandler() != nil {
		t.Error("disabled provider should not expose a scrape handler")
	}
	if provider.AuditLogger() == nil {
		t.Error("AuditLogger should never be nil")
	}

	provider.Metrics().RecordToolCall(ctx, "repos_list", StatusSuccess, time.Millisecond)

	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown of disabled provider returned %v", err)
	}
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Enabled: true, MetricsExporter: "graphite"})
	if err == nil {
		t.Fatal("expected error for unsupported exporter")
	}
	if !strings.Contains(err.Error(), "graphite") {
		t.Errorf("error %q should name the exporter", err)
	}
}

func TestNewProvider_StdoutExporters(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, Config{
		ServiceName:       "test-stdout",
		Enabled:           true,
		MetricsExporter:   ExporterStdout,
		TracingExporter:   ExporterStdout,
		TraceSamplingRate: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !provider.Enabled() {
		t.Error("provider should report enabled")
	}
	if provider.PrometheusHandler() != nil {
		t.Error("stdout exporter should not expose a scrape handler")
	}

	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown returned %v", err)
	}
}

func TestNilProvider(t *testing.T) {
	var provider *Provider

	if provider.Enabled() {
		t.Error("nil provider should be disabled")
	}
	if provider.Metrics() == nil {
		t.Error("nil provider should return no-op metrics")
	}
	if provider.AuditLogger() == nil {
		t.Error("nil provider should return a default audit logger")
	}
	if err := provider.Shutdown(context.Background()); err != nil {
		t.Errorf("nil provider Shutdown returned %v", err)
	}
}
