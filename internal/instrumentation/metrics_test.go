package instrumentation

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	metrics, err := NewMetrics(provider.Meter("test"))
	if err != nil {
		t.Fatalf("expected no error creating metrics, got %v", err)
	}
	return metrics, reader
}

// counterValues collects a counter's data points keyed by the given attribute set.
func counterValues(t *testing.T, reader *sdkmetric.ManualReader, name string) map[attribute.Distinct]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}

	values := make(map[attribute.Distinct]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s is %T, not an int64 sum", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				values[dp.Attributes.Equivalent()] = dp.Value
			}
		}
	}
	return values
}

func attrSet(kv ...attribute.KeyValue) attribute.Distinct {
	s := attribute.NewSet(kv...)
	return s.Equivalent()
}

func TestNewMetrics(t *testing.T) {
	metrics, _ := newTestMetrics(t)

	if metrics.httpRequestsTotal == nil || metrics.httpRequestDuration == nil {
		t.Error("expected HTTP instruments to be initialized")
	}
	if metrics.toolCallsTotal == nil || metrics.toolCallDuration == nil || metrics.toolCallsBlocked == nil {
		t.Error("expected tool instruments to be initialized")
	}
	if metrics.azInvocationsTotal == nil || metrics.azInvocationDuration == nil {
		t.Error("expected az instruments to be initialized")
	}
}

func TestMetrics_RecordToolCall(t *testing.T) {
	metrics, reader := newTestMetrics(t)
	ctx := context.Background()

	metrics.RecordToolCall(ctx, "repos_list", StatusSuccess, 120*time.Millisecond)
	metrics.RecordToolCall(ctx, "repos_list", StatusSuccess, 80*time.Millisecond)
	metrics.RecordToolCall(ctx, "boards_query", StatusError, time.Second)

	values := counterValues(t, reader, "mcp_tool_calls_total")

	if got := values[attrSet(attribute.String("tool", "repos_list"), attribute.String("status", "success"))]; got != 2 {
		t.Errorf("repos_list success = %d, want 2", got)
	}
	if got := values[attrSet(attribute.String("tool", "boards_query"), attribute.String("status", "error"))]; got != 1 {
		t.Errorf("boards_query error = %d, want 1", got)
	}
}

func TestMetrics_RecordAzInvocation(t *testing.T) {
	metrics, reader := newTestMetrics(t)

	metrics.RecordAzInvocation(context.Background(), "pipelines runs", StatusSuccess, 2*time.Second)

	values := counterValues(t, reader, "az_invocations_total")
	if got := values[attrSet(attribute.String("command", "pipelines runs"), attribute.String("status", "success"))]; got != 1 {
		t.Errorf("az_invocations_total = %d, want 1", got)
	}
}

func TestMetrics_RecordToolCallBlocked(t *testing.T) {
	metrics, reader := newTestMetrics(t)

	metrics.RecordToolCallBlocked(context.Background(), "boards_work_item_delete", "delete")

	values := counterValues(t, reader, "mcp_tool_calls_blocked_total")
	if got := values[attrSet(attribute.String("tool", "boards_work_item_delete"), attribute.String("operation", "delete"))]; got != 1 {
		t.Errorf("mcp_tool_calls_blocked_total = %d, want 1", got)
	}
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	metrics, reader := newTestMetrics(t)
	ctx := context.Background()

	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 500, 200*time.Millisecond)

	values := counterValues(t, reader, "http_requests_total")
	if got := values[attrSet(attribute.String("method", "POST"), attribute.String("path", "/mcp"), attribute.String("status", "500"))]; got != 1 {
		t.Errorf("POST /mcp 500 = %d, want 1", got)
	}
}

func TestMetrics_ZeroValueIsNoop(t *testing.T) {
	ctx := context.Background()
	for _, metrics := range []*Metrics{{}, nil} {
		metrics.RecordHTTPRequest(ctx, "GET", "/healthz", 200, time.Millisecond)
		metrics.RecordToolCall(ctx, "repos_list", StatusSuccess, time.Millisecond)
		metrics.RecordToolCallBlocked(ctx, "repos_create", "create")
		metrics.RecordAzInvocation(ctx, "repos list", StatusSuccess, time.Millisecond)
	}
}

func TestMetrics_ConcurrentRecording(t *testing.T) {
	metrics, reader := newTestMetrics(t)
	ctx := context.Background()

	const goroutines = 20
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metrics.RecordToolCall(ctx, "wiki_list", StatusSuccess, time.Millisecond)
			metrics.RecordAzInvocation(ctx, "devops wiki", StatusSuccess, time.Millisecond)
		}()
	}
	wg.Wait()

	values := counterValues(t, reader, "mcp_tool_calls_total")
	if got := values[attrSet(attribute.String("tool", "wiki_list"), attribute.String("status", "success"))]; got != goroutines {
		t.Errorf("wiki_list = %d, want %d", got, goroutines)
	}
}
