package config

import (
	"reflect"
	"time"
)

// SetThen provides a utility to select the first value if set, otherwise defaults.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}

// GetSettingsHome returns the folder that holds the ignore-code config file.
func GetSettingsHome(cfg *Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.ShellCheck.SettingsFolder
}

// GetBundleFolder returns the configured bundled ShellCheck folder, empty when it should be derived.
func GetBundleFolder(cfg *Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.ShellCheck.BundleFolder
}

// GetLintTimeout returns the timeout for a single shellcheck run.
func GetLintTimeout(cfg *Config) time.Duration {
	if cfg == nil {
		return DefaultTimeout
	}
	return SetThen(cfg.ShellCheck.Timeout, DefaultTimeout)
}
