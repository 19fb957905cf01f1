package azcli

import (
	"sort"
	"strings"
)

// Environment variable names the az devops extension reads the personal
// access token from.
const (
	EnvExtPAT = "AZURE_DEVOPS_EXT_PAT"
	EnvPAT    = "AZURE_DEVOPS_PAT"
)

// PATEnv returns the environment overlay that hands the token to az.
// It returns nil for an empty token.
func PATEnv(pat string) map[string]string {
	if pat == "" {
		return nil
	}
	return map[string]string{
		EnvExtPAT: pat,
		EnvPAT:    pat,
	}
}

// MergeEnv merges overlay over base, where base is in os.Environ form.
// Entries of base whose key is not in overlay keep their original order;
// overlay entries follow, sorted by key.
func MergeEnv(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		merged := make([]string, len(base))
		copy(merged, base)
		return merged
	}

	merged := make([]string, 0, len(base)+len(overlay))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := overlay[key]; overridden {
			continue
		}
		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+overlay[k])
	}

	return merged
}
