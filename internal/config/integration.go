package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// current is the process configuration installed by the CLI.
//
//nolint:gochecknoglobals // Process-wide configuration.
var current struct {
	sync.Mutex
	cfg *Config
}

// SetGlobalConfig installs cfg, typically the result of Load.
func SetGlobalConfig(cfg *Config) {
	current.Lock()
	defer current.Unlock()
	current.cfg = cfg
}

// GetGlobalConfig returns the installed configuration, or defaults when none
// was installed.
func GetGlobalConfig() *Config {
	current.Lock()
	defer current.Unlock()
	if current.cfg == nil {
		current.cfg = New()
	}
	return current.cfg
}

// ResetGlobalConfigForTest drops the installed configuration.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// GetLocale returns the configured output locale.
func GetLocale() string {
	return GetGlobalConfig().Output.Locale
}

// GetConfigDir returns $CALCKIT_HOME, or ~/.calckit.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(userHome, ".calckit"), nil
}

// ensureLogDirFor creates the directory holding a log file.
func ensureLogDirFor(file string) error {
	if file == "" {
		return nil
	}
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating log directory %q: %w", dir, err)
	}
	return nil
}
