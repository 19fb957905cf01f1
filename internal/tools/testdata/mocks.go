// Package testdata provides test doubles shared by the tool packages.
package testdata

import (
	"context"
	"sync"

	"github.com/giantswarm/mcp-azure-devops/internal/azcli"
	"github.com/giantswarm/mcp-azure-devops/internal/server"
)

var (
	_ azcli.Runner  = (*MockRunner)(nil)
	_ server.Logger = (*MockLogger)(nil)
)

// MockRunner records every request and answers with Result. It never
// launches a process.
type MockRunner struct {
	Result azcli.Result

	mu       sync.Mutex
	requests []azcli.Request
}

// NewMockRunner returns a MockRunner that answers with a successful "[]".
func NewMockRunner() *MockRunner {
	return &MockRunner{Result: azcli.Success("[]")}
}

// Run implements azcli.Runner.
func (m *MockRunner) Run(_ context.Context, req azcli.Request) azcli.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	return m.Result
}

// Requests returns a copy of the recorded requests.
func (m *MockRunner) Requests() []azcli.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]azcli.Request(nil), m.requests...)
}

// Calls returns how many times Run was called.
func (m *MockRunner) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastArgs returns the argv of the most recent request, or nil.
func (m *MockRunner) LastArgs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1].Args
}

// MockLogger implements server.Logger for testing.
type MockLogger struct{}

// Info implements server.Logger.
func (m *MockLogger) Info(_ string, _ ...interface{}) {}

// Debug implements server.Logger.
func (m *MockLogger) Debug(_ string, _ ...interface{}) {}

// Warn implements server.Logger.
func (m *MockLogger) Warn(_ string, _ ...interface{}) {}

// Error implements server.Logger.
func (m *MockLogger) Error(_ string, _ ...interface{}) {}

// NewServerContext builds a ServerContext around runner with the PAT set.
// Extra options are applied last.
func NewServerContext(runner azcli.Runner, opts ...server.Option) (*server.ServerContext, error) {
	base := []server.Option{
		server.WithRunner(runner),
		server.WithLogger(&MockLogger{}),
		server.WithPAT("test-pat"),
	}
	return server.NewServerContext(context.Background(), append(base, opts...)...)
}
