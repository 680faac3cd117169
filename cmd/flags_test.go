package main

import (
	"testing"

	"ringtimer/internal/ui/preferences"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: appName}
	registerFlags(cmd)
	_ = cmd.Flags().Parse(args)
	return cmd
}

func TestApplyFlagsOverridesDuration(t *testing.T) {
	cmd := newTestCommand("--minutes", "0", "--seconds", "3")

	settings, err := applyFlags(cmd, preferences.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 0, settings.Minutes)
	assert.Equal(t, 3, settings.Seconds)
}

func TestApplyFlagsKeepsUnsetValues(t *testing.T) {
	cmd := newTestCommand("--seconds", "5")
	defaults := preferences.DefaultSettings()

	settings, err := applyFlags(cmd, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults.Minutes, settings.Minutes)
	assert.Equal(t, 5, settings.Seconds)
}

func TestApplyFlagsRejectsNegative(t *testing.T) {
	cmd := newTestCommand("--minutes=-1")

	_, err := applyFlags(cmd, preferences.DefaultSettings())
	assert.ErrorContains(t, err, "invalid duration flags")
}
