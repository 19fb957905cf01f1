package azcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePAT(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		failure := ValidatePAT("")
		require.NotNil(t, failure)
		assert.True(t, failure.IsError)
		assert.Equal(t, "AZURE_DEVOPS_PAT not set in environment", failure.Message)
	})

	t.Run("token present", func(t *testing.T) {
		assert.Nil(t, ValidatePAT("pat-value"))
	})
}

func TestResultText(t *testing.T) {
	assert.Equal(t, "[]", Success("[]").Text())
	assert.Equal(t, "boom", Failure("boom").Text())
	assert.False(t, Success("").IsError)
	assert.True(t, Failure("").IsError)
}
