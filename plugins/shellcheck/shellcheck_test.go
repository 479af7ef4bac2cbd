package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared"
)

func newTestLinter(lookPath func(string) (string, error)) *LinterShellCheck {
	return &LinterShellCheck{
		logger: hclog.NewNullLogger(),
		locator: shellcheck.Locator{
			LookPath: lookPath,
			Self:     func() (string, error) { return "", errors.New("no self") },
		},
	}
}

func foundAt(path string) func(string) (string, error) {
	return func(string) (string, error) { return path, nil }
}

func TestSetup(t *testing.T) {
	settings := t.TempDir()
	config := "// project wide\n{\"ignore_codes\": [\"SC2034\", \"bogus\", \"SC2086\"]}\n"
	require.NoError(t, os.WriteFile(filepath.Join(settings, shellcheck.ConfigFileName), []byte(config), 0644))

	linter := newTestLinter(foundAt("/usr/bin/shellcheck"))
	profile, err := linter.Setup(shared.LinterSetupRequest{
		Filename:       "deploy.bash",
		SettingsFolder: settings,
	})
	require.NoError(t, err)

	assert.True(t, profile.Enabled)
	assert.Equal(t, "/usr/bin/shellcheck", profile.Executable)
	assert.Equal(t, string(shellcheck.SourcePath), profile.Source)
	assert.Equal(t, []string{"/usr/bin/shellcheck", "-f", "gcc", "-", "-e", "SC2034", "-e", "SC2086"}, profile.Cmd)
	assert.Equal(t, []string{"SC2034", "SC2086"}, profile.IgnoreCodes)
	assert.Equal(t, shellcheck.DiagnosticPattern, profile.Regex)
	assert.False(t, profile.Multiline)
	assert.Equal(t, shellcheck.Syntaxes, profile.Syntaxes)
}

func TestSetupDisabled(t *testing.T) {
	linter := newTestLinter(func(string) (string, error) { return "", errors.New("not found") })

	profile, err := linter.Setup(shared.LinterSetupRequest{})
	require.NoError(t, err)
	assert.False(t, profile.Enabled)
	assert.Equal(t, string(shellcheck.SourceNone), profile.Source)
	assert.Equal(t, []string{"shellcheck", "-f", "gcc", "-"}, profile.Cmd)
	assert.Empty(t, profile.IgnoreCodes)
}

func TestSetupValidation(t *testing.T) {
	linter := newTestLinter(foundAt("/usr/bin/shellcheck"))

	tests := []struct {
		name    string
		req     shared.LinterSetupRequest
		wantErr string
	}{
		{
			name:    "relative settings folder",
			req:     shared.LinterSetupRequest{SettingsFolder: "settings"},
			wantErr: "settings folder must be an absolute path",
		},
		{
			name:    "relative bundle folder",
			req:     shared.LinterSetupRequest{BundleFolder: "bundle"},
			wantErr: "bundle folder must be an absolute path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := linter.Setup(tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTempfileName(t *testing.T) {
	linter := newTestLinter(foundAt("/usr/bin/shellcheck"))
	dir := t.TempDir()

	name, err := linter.TempfileName(shared.TempfileRequest{Dir: dir, Filename: "/src/install.ksh"})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(name))
	assert.True(t, strings.HasSuffix(name, ".ksh"))

	_, err = linter.TempfileName(shared.TempfileRequest{Filename: "install.ksh"})
	assert.Error(t, err)
}

func TestServeOverRPC(t *testing.T) {
	client, _ := plugin.TestPluginRPCConn(t, map[string]plugin.Plugin{
		shared.PluginTypeLinter: &shared.LinterPlugin{Impl: newTestLinter(foundAt("/opt/bin/shellcheck"))},
	}, nil)
	defer client.Close()

	raw, err := client.Dispense(shared.PluginTypeLinter)
	require.NoError(t, err)

	profile, err := raw.(shared.Linter).Setup(shared.LinterSetupRequest{Filename: "run.sh"})
	require.NoError(t, err)
	assert.True(t, profile.Enabled)
	assert.Equal(t, []string{"/opt/bin/shellcheck", "-f", "gcc", "-"}, profile.Cmd)
}
