// Package shellcheck adapts the external shellcheck linter for an editor-like host.
//
// The adapter locates the executable, loads the user's ignore codes and exposes the command,
// diagnostic pattern and temp-file hints the host needs to run the tool itself.
package shellcheck

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ToolName is the bare executable name looked up in PATH.
const ToolName = "shellcheck"

// Syntaxes lists the lexer names the adapter is registered for.
var Syntaxes = []string{"Bash script", "Bash", "Shell script"}

// View is the host's handle to the buffer being linted.
type View interface {
	Filename() string
}

// Options configures a Linter.
type Options struct {
	Logger         hclog.Logger
	SettingsFolder string  // Folder holding shellcheck_config.json; empty disables config loading
	Locator        Locator // Zero value searches PATH, then the bundle next to the running binary
}

// Linter is the per-view adapter state. Fields are resolved once in New and not changed afterwards.
type Linter struct {
	Executable     string
	Cmd            []string
	Regex          *regexp.Regexp
	Multiline      bool
	TempfileSuffix string
	Syntaxes       []string

	IgnoreCodes []string
	Source      ExecutableSource

	view   View
	logger hclog.Logger
}

// New builds the adapter for view. It never fails: without an executable the linter is
// returned disabled, with default host values and no ignore codes.
func New(view View, opts Options) *Linter {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	l := &Linter{
		Executable:     ToolName,
		Cmd:            []string{ToolName, "-f", "gcc", "-"},
		Regex:          diagnosticRegexp,
		Multiline:      false,
		TempfileSuffix: DefaultTempfileSuffix,
		Syntaxes:       Syntaxes,
		IgnoreCodes:    []string{},
		Source:         SourceNone,
		view:           view,
		logger:         logger,
	}

	path, source := opts.Locator.Locate(logger)
	if path == "" {
		return l
	}

	if opts.SettingsFolder != "" {
		l.IgnoreCodes = LoadIgnoreCodes(ConfigPath(opts.SettingsFolder), logger)
	}

	l.Executable = path
	l.Source = source
	l.Cmd = BuildCommand(path, l.IgnoreCodes)
	logger.Info("command built", "cmd", strings.Join(l.Cmd, " "))

	l.logStatus()
	return l
}

// Enabled reports whether an executable was found.
func (l *Linter) Enabled() bool {
	return l.Source != SourceNone
}

// Command returns a copy of the command tokens.
func (l *Linter) Command() []string {
	return append([]string(nil), l.Cmd...)
}

func (l *Linter) filename() string {
	if l.view == nil {
		return ""
	}
	return l.view.Filename()
}
