package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfUpdateCmd(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "dev version", version: "dev"},
		{name: "empty version", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalVersion := rootCmd.Version
			defer func() {
				rootCmd.Version = originalVersion
			}()
			rootCmd.Version = tt.version

			cmd := newSelfUpdateCmd()
			cmd.SetArgs(nil)

			err := cmd.Execute()

			assert.ErrorIs(t, err, errDevelopmentVersion)
		})
	}
}

func TestSelfUpdateCmdProperties(t *testing.T) {
	cmd := newSelfUpdateCmd()

	assert.Equal(t, "self-update", cmd.Use)
	assert.Equal(t, "Update mcp-azure-devops to the latest version", cmd.Short)
	assert.Contains(t, cmd.Long, "mcp-azure-devops")
	assert.Contains(t, cmd.Long, "GitHub")
}

func TestGithubRepoSlug(t *testing.T) {
	assert.Equal(t, "giantswarm/mcp-azure-devops", githubRepoSlug)
}
