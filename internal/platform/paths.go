// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides path and file helpers shared across the picker.
package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory name used under XDG locations.
const AppName = "theme-picker"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetThemesDir returns the default directory holding one subdirectory per theme.
func GetThemesDir() string {
	return filepath.Join(GetXDGConfigHome(), "themes")
}

// GetConfigPath returns the default picker configuration file.
func GetConfigPath() string {
	return filepath.Join(GetXDGConfigHome(), AppName, "config.toml")
}

// GetLockPath returns the path of the single-instance lock file.
func GetLockPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, AppName+".lock")
	}

	return filepath.Join(os.TempDir(), AppName+".lock")
}

// ExpandPath expands ~ and environment variables.
func ExpandPath(path string) string {
	return ExpandPathWithEnv(path, "")
}

// ExpandPathWithEnv expands paths with a custom XDG config home for testing.
func ExpandPathWithEnv(path, xdgConfigHome string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
		configHome := xdgConfigHome
		if configHome == "" {
			configHome = GetXDGConfigHome()
		}

		return configHome + after
	}

	return os.ExpandEnv(path)
}
