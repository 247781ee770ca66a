// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/OhadRubin/workspace-colors/constant"
	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable used to override the configuration directory.
const EnvConfigPath = "WSCOLORS_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the application configuration directory.
// WSCOLORS_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory holding log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Palette resolves the user palette file that overrides the built-in one.
func Palette() string {
	return filepath.Join(Config(), "colors.json")
}

// Recent resolves the registry of recently applied colors.
func Recent() string {
	return filepath.Join(Cache(), "recent.json")
}
