package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ringtimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Minutes          *int     `yaml:"minutes,omitempty"`
	Seconds          *int     `yaml:"seconds,omitempty"`
	OuterCircleSize  *float32 `yaml:"outer_circle_size,omitempty"`
	InnerCircleSize  *float32 `yaml:"inner_circle_size,omitempty"`
	OuterCircleColor string   `yaml:"outer_circle_color,omitempty"`
	InnerCircleColor string   `yaml:"inner_circle_color,omitempty"`
	LabelTextSize    *float32 `yaml:"label_text_size,omitempty"`
	LabelTextColor   string   `yaml:"label_text_color,omitempty"`
}

// LoadSettings reads user preferences from the per-user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to the per-user config directory.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads settings from configPath. Missing or out of range
// values keep their defaults.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	if err := settings.Validate(); err != nil {
		return preferences.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettingsFile writes settings to configPath, creating parent directories.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Minutes:          &settings.Minutes,
		Seconds:          &settings.Seconds,
		OuterCircleSize:  &settings.OuterCircleSize,
		InnerCircleSize:  &settings.InnerCircleSize,
		OuterCircleColor: settings.OuterCircleColor,
		InnerCircleColor: settings.InnerCircleColor,
		LabelTextSize:    &settings.LabelTextSize,
		LabelTextColor:   settings.LabelTextColor,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Minutes != nil && *fileData.Minutes >= 0 {
		settings.Minutes = *fileData.Minutes
	}
	if fileData.Seconds != nil && *fileData.Seconds >= 0 {
		settings.Seconds = *fileData.Seconds
	}
	if fileData.OuterCircleSize != nil && *fileData.OuterCircleSize >= 0 {
		settings.OuterCircleSize = *fileData.OuterCircleSize
	}
	if fileData.InnerCircleSize != nil && *fileData.InnerCircleSize >= 0 {
		settings.InnerCircleSize = *fileData.InnerCircleSize
	}
	if fileData.LabelTextSize != nil && *fileData.LabelTextSize > 0 {
		settings.LabelTextSize = *fileData.LabelTextSize
	}

	if validColor(fileData.OuterCircleColor) {
		settings.OuterCircleColor = fileData.OuterCircleColor
	}
	if validColor(fileData.InnerCircleColor) {
		settings.InnerCircleColor = fileData.InnerCircleColor
	}
	if validColor(fileData.LabelTextColor) {
		settings.LabelTextColor = fileData.LabelTextColor
	}
}

func validColor(value string) bool {
	if value == "" {
		return false
	}
	_, err := preferences.ParseColor(value)
	return err == nil
}
