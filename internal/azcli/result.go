package azcli

// Request is a single invocation of the az executable.
type Request struct {
	// Args are passed to the executable verbatim, in order.
	Args []string

	// Env is merged over the ambient environment. Entries here win on
	// key collision.
	Env map[string]string
}

// Result is the normalized outcome of one invocation. Exactly one of Output
// or Message is meaningful, selected by IsError.
type Result struct {
	Output  string
	Message string
	IsError bool
}

// Success returns a successful Result carrying the captured standard output.
func Success(output string) Result {
	return Result{Output: output}
}

// Failure returns a failed Result carrying a diagnostic message.
func Failure(message string) Result {
	return Result{Message: message, IsError: true}
}

// Text returns the populated variant's text.
func (r Result) Text() string {
	if r.IsError {
		return r.Message
	}
	return r.Output
}
