package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/scan-io-git/scanio-shellcheck/internal/host"
	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared"
)

// LinterShellCheck serves the shellcheck adapter to a host process.
type LinterShellCheck struct {
	logger  hclog.Logger
	locator shellcheck.Locator
}

// Setup builds the adapter for the requested view and returns what the host needs to run it.
func (g *LinterShellCheck) Setup(req shared.LinterSetupRequest) (shared.LinterProfile, error) {
	if err := g.validateSetup(&req); err != nil {
		g.logger.Error("invalid setup request", "error", err)
		return shared.LinterProfile{}, err
	}

	locator := g.locator
	locator.BundleFolder = req.BundleFolder

	l := shellcheck.New(host.FileView{Path: req.Filename}, shellcheck.Options{
		Logger:         g.logger,
		SettingsFolder: req.SettingsFolder,
		Locator:        locator,
	})
	return profileOf(l), nil
}

// TempfileName names a temp file in req.Dir keeping the extension of req.Filename.
func (g *LinterShellCheck) TempfileName(req shared.TempfileRequest) (string, error) {
	if err := g.validateTempfile(&req); err != nil {
		g.logger.Error("invalid tempfile request", "error", err)
		return "", err
	}
	return shellcheck.TempfileNameFor(req.Dir, req.Filename)
}

func profileOf(l *shellcheck.Linter) shared.LinterProfile {
	return shared.LinterProfile{
		Enabled:        l.Enabled(),
		Executable:     l.Executable,
		Source:         string(l.Source),
		Cmd:            l.Command(),
		Regex:          l.Regex.String(),
		Multiline:      l.Multiline,
		TempfileSuffix: l.TempfileSuffix,
		Syntaxes:       append([]string(nil), l.Syntaxes...),
		IgnoreCodes:    append([]string(nil), l.IgnoreCodes...),
	}
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "shellcheck",
		Level:      hclog.Trace,
		Output:     os.Stderr,
		JSONFormat: true,
	})

	shellcheck.Init(logger)

	linter := &LinterShellCheck{
		logger: logger,
	}
	// pluginMap is the map of plugins we can dispense.
	var pluginMap = map[string]plugin.Plugin{
		shared.PluginTypeLinter: &shared.LinterPlugin{Impl: linter},
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: shared.HandshakeConfig,
		Plugins:         pluginMap,
	})
}
