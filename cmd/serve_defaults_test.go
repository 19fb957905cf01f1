package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-azure-devops/internal/azcli"
	"github.com/giantswarm/mcp-azure-devops/internal/tools/testdata"
)

func TestConfigureAzDefaults(t *testing.T) {
	tests := []struct {
		name      string
		config    ServeConfig
		result    azcli.Result
		wantCalls int
		wantLog   string
	}{
		{
			name:    "no organization",
			config:  ServeConfig{PAT: "pat"},
			wantLog: "AZURE_DEVOPS_ORG not set - skipping az devops configure",
		},
		{
			name:      "configured",
			config:    ServeConfig{PAT: "pat", Organization: "https://dev.azure.com/contoso", Project: "Fabrikam"},
			result:    azcli.Success(""),
			wantCalls: 1,
			wantLog:   "Azure DevOps defaults configured",
		},
		{
			name:      "az failure is logged",
			config:    ServeConfig{PAT: "pat", Organization: "https://dev.azure.com/contoso"},
			result:    azcli.Failure("ERROR: extension not installed"),
			wantCalls: 1,
			wantLog:   "ERROR: extension not installed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			runner := testdata.NewMockRunner()
			runner.Result = tt.result

			configureAzDefaults(context.Background(), logger, runner, tt.config)

			require.Equal(t, tt.wantCalls, runner.Calls())
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}
