// Package config handles settings loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// GlobalDirName is the name of the per-user logaudit directory.
	GlobalDirName = ".logaudit"

	// SettingsFileName is the settings file inside the global directory.
	SettingsFileName = "settings.yaml"

	// HomeEnv overrides the global directory location.
	HomeEnv = "LOGAUDIT_HOME"

	// SourceExt is the extension expected on work-log exports.
	SourceExt = ".csv"
)

// GlobalDir returns the path to the global directory (~/.logaudit/), or the
// value of LOGAUDIT_HOME when set.
func GlobalDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// IsFile reports whether path names an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// HasSourceExt reports whether path ends in .csv (case-sensitive).
func HasSourceExt(path string) bool {
	return strings.HasSuffix(path, SourceExt)
}

// DefaultReportPath replaces the extension of source with suffix,
// e.g. "logs/march.csv" -> "logs/march_report.pdf".
func DefaultReportPath(source, suffix string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + suffix
}
