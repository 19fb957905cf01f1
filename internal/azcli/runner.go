package azcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/cli/safeexec"

	"github.com/giantswarm/mcp-azure-devops/internal/instrumentation"
	"github.com/giantswarm/mcp-azure-devops/internal/logging"
)

// DefaultExecutable is the az executable name on every platform but windows.
const DefaultExecutable = "az"

// Runner executes one az invocation to completion.
type Runner interface {
	Run(ctx context.Context, req Request) Result
}

// MetricsRecorder receives one observation per finished invocation.
type MetricsRecorder interface {
	RecordAzInvocation(ctx context.Context, group, status string, duration time.Duration)
}

// ExecRunner is a Runner backed by os/exec. It holds no per-call state and
// is safe for concurrent use.
type ExecRunner struct {
	executable string
	environ    func() []string
	lookPath   func(file string) (string, error)
	launch     func(cmd *exec.Cmd) error
	logger     *slog.Logger
	metrics    MetricsRecorder
}

// ExecOption configures an ExecRunner.
type ExecOption func(*ExecRunner)

// WithExecutable overrides the executable name or path.
func WithExecutable(executable string) ExecOption {
	return func(r *ExecRunner) {
		if executable != "" {
			r.executable = executable
		}
	}
}

// WithEnviron overrides the ambient environment source.
func WithEnviron(environ func() []string) ExecOption {
	return func(r *ExecRunner) {
		if environ != nil {
			r.environ = environ
		}
	}
}

// WithLookPath overrides how the executable is resolved.
func WithLookPath(lookPath func(file string) (string, error)) ExecOption {
	return func(r *ExecRunner) {
		if lookPath != nil {
			r.lookPath = lookPath
		}
	}
}

// WithLaunch overrides how a prepared command is started and awaited.
// The function must behave like (*exec.Cmd).Run.
func WithLaunch(launch func(cmd *exec.Cmd) error) ExecOption {
	return func(r *ExecRunner) {
		if launch != nil {
			r.launch = launch
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) ExecOption {
	return func(r *ExecRunner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the recorder for invocation metrics.
func WithMetrics(metrics MetricsRecorder) ExecOption {
	return func(r *ExecRunner) {
		r.metrics = metrics
	}
}

// NewExecRunner creates an ExecRunner for the platform's az executable.
func NewExecRunner(opts ...ExecOption) *ExecRunner {
	r := &ExecRunner{
		executable: ExecutableName(runtime.GOOS),
		environ:    os.Environ,
		lookPath:   safeexec.LookPath,
		launch:     (*exec.Cmd).Run,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ExecutableName returns the az executable name for the given GOOS.
func ExecutableName(goos string) string {
	if goos == "windows" {
		return DefaultExecutable + ".cmd"
	}
	return DefaultExecutable
}

// Executable returns the configured executable name or path.
func (r *ExecRunner) Executable() string {
	return r.executable
}

// Resolve reports where the executable would be loaded from.
func (r *ExecRunner) Resolve() (string, error) {
	return r.lookPath(r.executable)
}

// Run executes req and waits for the child to exit. ctx is used for tracing
// only; cancelling it does not stop the child.
func (r *ExecRunner) Run(ctx context.Context, req Request) Result {
	group := CommandGroup(req.Args)
	ctx, span := instrumentation.StartAzSpan(ctx, group)
	defer span.End()

	start := time.Now()
	result, exitCode := r.run(req)
	duration := time.Since(start)

	status := instrumentation.StatusSuccess
	if result.IsError {
		status = instrumentation.StatusError
		instrumentation.SetSpanError(span, fmt.Errorf("%s", result.Message))
	} else {
		instrumentation.SetSpanSuccess(span)
	}
	if r.metrics != nil {
		r.metrics.RecordAzInvocation(ctx, group, status, duration)
	}

	r.logger.Debug("az invocation finished",
		logging.Command(group),
		logging.ExitCode(exitCode),
		logging.Status(status),
		logging.Duration(duration))

	return result
}

// run returns the normalized result and the exit code, or -1 when the
// process never started.
func (r *ExecRunner) run(req Request) (Result, int) {
	path, err := r.lookPath(r.executable)
	if err != nil {
		return spawnFailure(err), -1
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, req.Args...)
	cmd.Env = MergeEnv(r.environ(), req.Env)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = r.launch(cmd)
	if err == nil {
		return Success(stdout.String()), 0
	}

	exitErr, exited := err.(interface{ ExitCode() int })
	if !exited {
		return spawnFailure(err), -1
	}

	code := exitErr.ExitCode()
	if stderr.Len() > 0 {
		return Failure(stderr.String()), code
	}
	return Failure(exitMessage(err, code)), code
}

// exitMessage describes a failed run that left nothing on stderr. A child
// killed by a signal has no exit code, so the signal is named instead.
func exitMessage(err error, code int) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return fmt.Sprintf("az terminated by signal %d (%s)", int(status.Signal()), status.Signal())
		}
	}
	return fmt.Sprintf("az exited with code %d", code)
}

func spawnFailure(err error) Result {
	return Failure(fmt.Sprintf("Error spawning az: %v", err))
}

// CommandGroup returns the leading subcommand words of args, up to two and
// stopping at the first flag. It is used as a low-cardinality label.
func CommandGroup(args []string) string {
	words := make([]string, 0, 2)
	for _, a := range args {
		if strings.HasPrefix(a, "-") || len(words) == 2 {
			break
		}
		words = append(words, a)
	}
	if len(words) == 0 {
		return "az"
	}
	return strings.Join(words, " ")
}
