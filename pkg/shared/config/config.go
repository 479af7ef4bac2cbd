package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config is the application configuration loaded from config.yml.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	ShellCheck ShellCheck `yaml:"shellcheck"`
}

type Logger struct {
	Level           string `yaml:"level"`
	JSONFormat      bool   `yaml:"json_format"`
	IncludeLocation bool   `yaml:"include_location"`
}

// ShellCheck holds the adapter and host settings.
type ShellCheck struct {
	SettingsFolder string        `yaml:"settings_folder"` // Folder holding shellcheck_config.json
	BundleFolder   string        `yaml:"bundle_folder"`   // Overrides the computed bundled ShellCheck folder
	Timeout        time.Duration `yaml:"timeout"`         // Upper bound for a single shellcheck run
}

// ValidateConfigPath checks that path exists and is not a directory.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the YAML configuration from configPath.
// A missing file is not an error: an empty configuration is returned and defaults apply during validation.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", configPath, err)
	}

	return config, nil
}
