package main

import (
	"fmt"

	"ringtimer/internal/ui/preferences"

	"github.com/spf13/cobra"
)

// Flag names.
const (
	FlagMinutes = "minutes"
	FlagSeconds = "seconds"
	FlagConfig  = "config"
	FlagLogFile = "log-file"
	FlagVerbose = "verbose"
)

func registerFlags(cmd *cobra.Command) {
	cmd.Flags().Int(FlagMinutes, 0, "Countdown minutes (overrides settings)")
	cmd.Flags().Int(FlagSeconds, 0, "Countdown seconds (overrides settings)")
	cmd.Flags().String(FlagConfig, "", "Settings file path (default: <user config dir>/ringtimer/settings.yaml)")
	cmd.Flags().String(FlagLogFile, "", "Log file path (default: stderr)")
	cmd.Flags().BoolP(FlagVerbose, "v", false, "Enable verbose (debug) logging")
}

// applyFlags overlays explicitly set duration flags onto settings.
func applyFlags(cmd *cobra.Command, settings preferences.Settings) (preferences.Settings, error) {
	if cmd.Flags().Changed(FlagMinutes) {
		minutes, err := cmd.Flags().GetInt(FlagMinutes)
		if err != nil {
			return settings, err
		}
		settings.Minutes = minutes
	}
	if cmd.Flags().Changed(FlagSeconds) {
		seconds, err := cmd.Flags().GetInt(FlagSeconds)
		if err != nil {
			return settings, err
		}
		settings.Seconds = seconds
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid duration flags: %w", err)
	}
	return settings, nil
}
