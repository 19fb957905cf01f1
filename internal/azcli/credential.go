package azcli

// MissingPATMessage is returned when no personal access token is configured.
const MissingPATMessage = "AZURE_DEVOPS_PAT not set in environment"

// ValidatePAT gates an invocation on the presence of a token. It returns a
// Failure for an empty token and nil otherwise; callers must return the
// Failure without invoking a Runner.
func ValidatePAT(pat string) *Result {
	if pat == "" {
		failure := Failure(MissingPATMessage)
		return &failure
	}
	return nil
}
