// Package azcli runs the Azure CLI (`az`) as a child process and normalizes
// its outcome into a Result.
//
// Every call spawns exactly one process. Standard output and standard error
// are captured into separate buffers, the caller's environment overlay is
// merged over the ambient environment, and the exit status is folded into
// one of two variants:
//
//   - Success: the process exited with status 0; Output holds its stdout.
//   - Failure: the process exited non-zero, or could not be started; Message
//     holds its stderr or a synthesized diagnostic.
//
// No timeout, retry or cancellation is applied. Once started, a child runs
// until it exits; the request context only carries tracing information.
//
// # Usage
//
//	runner := azcli.NewExecRunner(azcli.WithLogger(logger))
//	if failure := azcli.ValidatePAT(pat); failure != nil {
//	    return *failure
//	}
//	result := runner.Run(ctx, azcli.Request{
//	    Args: []string{"devops", "project", "list", "--output", "json"},
//	    Env:  azcli.PATEnv(pat),
//	})
package azcli
