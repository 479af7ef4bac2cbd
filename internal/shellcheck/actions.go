package shellcheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/files"
)

type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
)

// Host is what the adapter's menu actions need from the embedding application.
type Host interface {
	SettingsDir() string
	OpenFile(path string) error
	MessageBox(text string, kind MessageKind)
}

// DefaultConfig is written by OpenConfig when no config exists yet.
const DefaultConfig = `{
  "ignore_codes": [
    // unused variable
    "SC2034",
    // referenced but not assigned
    "SC2154",
    // quote to prevent word splitting
    "SC2086"
  ]
}
`

// HelpText is shown by ShowHelp.
const HelpText = `ShellCheck Linter for scanio

FEATURES:
- Auto-detection (PATH -> bundled)
- Configurable ignore rules (JSON)
- Multi-platform support
- Diagnostic logging

CONFIGURATION:
Run: scanio-shellcheck config
Edits shellcheck_config.json in the settings folder.

COMMON IGNORE CODES:
- SC2034: variable appears unused
- SC2154: variable referenced but not assigned
- SC2086: quote to prevent word splitting
- SC2046: quote command substitutions

INSTALLATION:
- Windows: Download shellcheck.exe from releases
- Linux: sudo apt install shellcheck
- macOS: brew install shellcheck

DOCUMENTATION:
https://github.com/koalaman/shellcheck/wiki`

// OpenConfig creates the default config when missing and asks the host to open it.
// A creation failure is shown to the user through the host before being returned.
func OpenConfig(host Host, logger hclog.Logger) error {
	path := ConfigPath(host.SettingsDir())

	if !files.IsRegularFile(path) {
		if err := writeDefaultConfig(path); err != nil {
			host.MessageBox(fmt.Sprintf("Failed to create config:\n%v", err), MessageError)
			logger.Error("config creation failed", "path", path, "error", err)
			return err
		}
		logger.Info("created default config", "path", path)
	}

	if err := host.OpenFile(path); err != nil {
		logger.Error("failed to open config file", "path", path, "error", err)
		return fmt.Errorf("failed to open config file %q: %w", path, err)
	}
	logger.Info("opened config file", "path", path)
	return nil
}

// ShowHelp presents the static help text.
func ShowHelp(host Host) {
	host.MessageBox(HelpText, MessageInfo)
}

func writeDefaultConfig(path string) error {
	if err := files.CreateFolderIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(DefaultConfig), 0644); err != nil {
		return fmt.Errorf("unable to write %q: %w", path, err)
	}
	return nil
}
