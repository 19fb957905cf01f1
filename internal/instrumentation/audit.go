package instrumentation

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Access classes used to bucket operations in low-cardinality logs.
const (
	AccessRead  = "read"
	AccessWrite = "write"
)

// ToolInvocation captures one MCP tool call from start to completion.
type ToolInvocation struct {
	Tool      string
	Operation string
	Project   string
	Mutating  bool

	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string

	TraceID string
	SpanID  string
}

// NewToolInvocation starts timing a tool call.
func NewToolInvocation(tool string) *ToolInvocation {
	return &ToolInvocation{
		Tool:      tool,
		StartTime: time.Now(),
	}
}

// WithOperation records the operation verb and whether it mutates remote state.
func (ti *ToolInvocation) WithOperation(operation string, mutating bool) *ToolInvocation {
	ti.Operation = operation
	ti.Mutating = mutating
	return ti
}

// WithProject records the project the call targets.
func (ti *ToolInvocation) WithProject(project string) *ToolInvocation {
	ti.Project = project
	return ti
}

// WithSpanContext copies trace and span IDs from the span in ctx, if any.
func (ti *ToolInvocation) WithSpanContext(ctx context.Context) *ToolInvocation {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.IsValid() {
		ti.TraceID = sc.TraceID().String()
		ti.SpanID = sc.SpanID().String()
	}
	return ti
}

// Complete stops the clock and records the outcome.
func (ti *ToolInvocation) Complete(success bool, err error) *ToolInvocation {
	ti.Duration = time.Since(ti.StartTime)
	ti.Success = success
	if err != nil {
		ti.Error = err.Error()
	}
	return ti
}

// CompleteSuccess is Complete(true, nil).
func (ti *ToolInvocation) CompleteSuccess() *ToolInvocation {
	return ti.Complete(true, nil)
}

// CompleteWithError is Complete(false, err).
func (ti *ToolInvocation) CompleteWithError(err error) *ToolInvocation {
	return ti.Complete(false, err)
}

// Status returns StatusSuccess or StatusError.
func (ti *ToolInvocation) Status() string {
	if ti.Success {
		return StatusSuccess
	}
	return StatusError
}

// Access returns AccessWrite for mutating calls and AccessRead otherwise.
func (ti *ToolInvocation) Access() string {
	if ti.Mutating {
		return AccessWrite
	}
	return AccessRead
}

// LogAttrs returns bounded-cardinality attributes suitable for operational logs.
// Project names and error text are left out.
func (ti *ToolInvocation) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("tool", ti.Tool),
		slog.String("operation", ti.Operation),
		slog.String("access", ti.Access()),
		slog.Duration("duration", ti.Duration),
		slog.Bool("success", ti.Success),
	}
}

// LogAuditAttrs returns the full attribute set for the audit trail.
func (ti *ToolInvocation) LogAuditAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("tool", ti.Tool),
		slog.String("operation", ti.Operation),
		slog.String("access", ti.Access()),
		slog.Duration("duration", ti.Duration),
		slog.Bool("success", ti.Success),
	}
	if ti.Project != "" {
		attrs = append(attrs, slog.String("project", ti.Project))
	}
	if ti.Error != "" {
		attrs = append(attrs, slog.String("error", ti.Error))
	}
	if ti.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", ti.TraceID))
	}
	if ti.SpanID != "" {
		attrs = append(attrs, slog.String("span_id", ti.SpanID))
	}
	return attrs
}

// AuditLogger writes one structured record per tool invocation.
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger returns an AuditLogger writing to logger, or slog.Default() when nil.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{logger: logger.With(slog.String("log_type", "audit"))}
}

// LogToolInvocation logs ti at INFO when it succeeded and WARN otherwise.
func (al *AuditLogger) LogToolInvocation(ctx context.Context, ti *ToolInvocation) {
	level := slog.LevelInfo
	if !ti.Success {
		level = slog.LevelWarn
	}
	al.logger.LogAttrs(ctx, level, "tool_invocation", ti.LogAuditAttrs()...)
}

// TraceIDFromContext returns the trace ID of the span in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	return GetTraceID(ctx)
}
