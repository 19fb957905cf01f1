package azcli

import "context"

// ConfigureDefaults sets the organization and, optionally, the project that
// az devops commands fall back to when no --org or --project is given.
//
// It reports attempted=false without running anything when organization is
// empty. The result is informational: callers log it and keep serving, since
// every tool also accepts the project per call.
func ConfigureDefaults(ctx context.Context, runner Runner, pat, organization, project string) (Result, bool) {
	if organization == "" {
		return Result{}, false
	}

	args := []string{"devops", "configure", "--defaults", "organization=" + organization}
	if project != "" {
		args = append(args, "project="+project)
	}

	return runner.Run(ctx, Request{Args: args, Env: PATEnv(pat)}), true
}
