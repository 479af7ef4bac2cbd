package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/files"
)

const (
	DefaultTimeout = 30 * time.Second
	maxTimeout     = 10 * time.Minute
)

var validLogLevels = map[string]struct{}{
	"":      {},
	"TRACE": {},
	"DEBUG": {},
	"INFO":  {},
	"WARN":  {},
	"ERROR": {},
}

// ValidateConfig checks if the global configurations have valid values and fills in defaults.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if _, ok := validLogLevels[strings.ToUpper(cfg.Logger.Level)]; !ok {
		return fmt.Errorf("YAML global config: logger directive is invalid: unknown level %q", cfg.Logger.Level)
	}
	if err := ValidateShellCheckConfig(&cfg.ShellCheck); err != nil {
		return fmt.Errorf("YAML global config: shellcheck directive is invalid: %w", err)
	}
	return nil
}

// ValidateShellCheckConfig resolves folders from environment variables or defaults and checks the timeout.
func ValidateShellCheckConfig(sc *ShellCheck) error {
	if sc == nil {
		return fmt.Errorf("shellcheck configuration is nil")
	}
	if err := updateSettingsFolder(sc); err != nil {
		return fmt.Errorf("failed to update settings folder: %w", err)
	}
	if err := updateBundleFolder(sc); err != nil {
		return fmt.Errorf("failed to update bundle folder: %w", err)
	}
	if sc.Timeout == 0 {
		sc.Timeout = DefaultTimeout
	}
	if err := validateDuration(sc.Timeout, "timeout", maxTimeout); err != nil {
		return err
	}
	return nil
}

// validateDuration checks that a time.Duration is valid and within a specified maximum duration.
func validateDuration(d time.Duration, name string, max time.Duration) error {
	if d < 0 {
		return fmt.Errorf("invalid duration for %q: %v cannot be negative", name, d)
	}
	if d > max {
		return fmt.Errorf("%q duration is too long: %v exceeds maximum of %v", name, d, max)
	}
	return nil
}

// updateSettingsFolder sets the settings folder from SCANIO_SHELLCHECK_SETTINGS or a default under the user config dir.
// The folder is not created here; it appears when the default config is first written.
func updateSettingsFolder(sc *ShellCheck) error {
	if v := os.Getenv("SCANIO_SHELLCHECK_SETTINGS"); v != "" {
		sc.SettingsFolder = v
	} else if sc.SettingsFolder == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("unable to get user config folder: %w", err)
		}
		sc.SettingsFolder = filepath.Join(configDir, "scanio-shellcheck")
	}

	expanded, err := files.ExpandPath(sc.SettingsFolder)
	if err != nil {
		return fmt.Errorf("failed to expand settings path %q: %w", sc.SettingsFolder, err)
	}
	sc.SettingsFolder = expanded
	return nil
}

// updateBundleFolder applies SCANIO_SHELLCHECK_BUNDLE. An empty value keeps the folder computed from the binary location.
func updateBundleFolder(sc *ShellCheck) error {
	if v := os.Getenv("SCANIO_SHELLCHECK_BUNDLE"); v != "" {
		sc.BundleFolder = v
	}
	if sc.BundleFolder == "" {
		return nil
	}

	expanded, err := files.ExpandPath(sc.BundleFolder)
	if err != nil {
		return fmt.Errorf("failed to expand bundle path %q: %w", sc.BundleFolder, err)
	}
	sc.BundleFolder = expanded
	return nil
}
