package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var testConfigDir string

func baseConfigPath() string {
	if testConfigDir != "" {
		return testConfigDir
	}

	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName)
	}

	// for windows, it should be in `%LOCALAPPDATA%/simpleterm/`
	// for linux and macOS, it should be in `$HOME/.config/simpleterm/`
	if runtime.GOOS == "windows" {
		return filepath.Join(localAppData(), appName)
	}

	return filepath.Join(HomeDir(), ".config", appName)
}

func baseDataPath() string {
	if testConfigDir != "" {
		return testConfigDir
	}

	xdgDataHome := os.Getenv("XDG_DATA_HOME")
	if xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName)
	}

	// for windows, it should be in `%LOCALAPPDATA%/simpleterm/`
	// for linux and macOS, it should be in `$HOME/.local/share/simpleterm/`
	if runtime.GOOS == "windows" {
		return filepath.Join(localAppData(), appName)
	}

	return filepath.Join(HomeDir(), ".local", "share", appName)
}

func localAppData() string {
	dir := os.Getenv("LOCALAPPDATA")
	if dir == "" {
		dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
	}
	return dir
}

// ConfigPath is the global configuration file.
func ConfigPath() string {
	return filepath.Join(baseConfigPath(), fmt.Sprintf("%s.json", appName))
}

// DefaultDataDirectory is used when options.data_directory is unset.
func DefaultDataDirectory() string {
	return baseDataPath()
}

func HomeDir() string {
	homeDir := os.Getenv("HOME")
	if homeDir == "" {
		homeDir = os.Getenv("USERPROFILE") // For Windows compatibility
	}
	if homeDir == "" {
		homeDir = os.Getenv("HOMEPATH") // Fallback for some environments
	}
	return homeDir
}

func joinData(dir string, elem ...string) string {
	return filepath.Join(append([]string{dir}, elem...)...)
}
