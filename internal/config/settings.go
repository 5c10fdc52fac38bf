package config

import (
	"github.com/watchfire-io/logaudit/internal/models"
)

// LoadSettings loads the global settings from ~/.logaudit/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom loads settings from an explicit path. Fields missing from
// the file keep their defaults.
func LoadSettingsFrom(path string) (*models.Settings, error) {
	s, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	return s, nil
}

// SaveSettings saves the global settings to ~/.logaudit/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
