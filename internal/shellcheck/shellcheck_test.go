package shellcheck

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnabled(t *testing.T) {
	logger, logs := newLogCapture(t)
	settings := t.TempDir()
	writeFile(t, ConfigPath(settings), []byte("# my overrides\n{\"ignore_codes\": [\"SC2034\", \"SC2086\"]}\n"))

	l := New(fakeView("deploy.bash"), Options{
		Logger:         logger,
		SettingsFolder: settings,
		Locator: Locator{
			LookPath: func(string) (string, error) { return "/usr/local/bin/shellcheck", nil },
		},
	})

	assert.True(t, l.Enabled())
	assert.Equal(t, SourcePath, l.Source)
	assert.Equal(t, "/usr/local/bin/shellcheck", l.Executable)
	assert.Equal(t, []string{"SC2034", "SC2086"}, l.IgnoreCodes)
	assert.Equal(t, []string{"/usr/local/bin/shellcheck", "-f", "gcc", "-", "-e", "SC2034", "-e", "SC2086"}, l.Cmd)
	assert.Equal(t, DefaultTempfileSuffix, l.TempfileSuffix)
	assert.Equal(t, Syntaxes, l.Syntaxes)

	built := logs.find("command built")
	require.Len(t, built, 1)
	assert.Equal(t, "/usr/local/bin/shellcheck -f gcc - -e SC2034 -e SC2086", built[0]["cmd"])

	active := logs.find("active with 2 ignore rules")
	require.Len(t, active, 1)
	assert.Equal(t, "path", active[0]["source"])

	ignoring := logs.find("ignoring")
	require.Len(t, ignoring, 1)
	assert.Equal(t, "SC2034, SC2086", ignoring[0]["codes"])
}

func TestNewStatusSingular(t *testing.T) {
	logger, logs := newLogCapture(t)
	settings := t.TempDir()
	writeFile(t, ConfigPath(settings), []byte(`{"ignore_codes": ["SC2034"]}`))

	New(fakeView("x.sh"), Options{
		Logger:         logger,
		SettingsFolder: settings,
		Locator:        Locator{LookPath: func(string) (string, error) { return "shellcheck", nil }},
	})

	assert.Len(t, logs.find("active with 1 ignore rule"), 1)
}

func TestNewWithoutConfig(t *testing.T) {
	logger, logs := newLogCapture(t)

	l := New(fakeView("x.sh"), Options{
		Logger:         logger,
		SettingsFolder: t.TempDir(),
		Locator:        Locator{LookPath: func(string) (string, error) { return "/bin/shellcheck", nil }},
	})

	assert.True(t, l.Enabled())
	assert.Empty(t, l.IgnoreCodes)
	assert.Equal(t, []string{"/bin/shellcheck", "-f", "gcc", "-"}, l.Cmd)
	assert.Len(t, logs.find("active with 0 ignore rules"), 1)
	assert.Empty(t, logs.find("ignoring"))
}

func TestNewDisabled(t *testing.T) {
	logger, logs := newLogCapture(t)
	root, self := installLayout(t, false)
	settings := filepath.Join(root, "settings")

	l := New(fakeView("x.sh"), Options{
		Logger:         logger,
		SettingsFolder: settings,
		Locator:        Locator{LookPath: notFound, Self: func() (string, error) { return self, nil }},
	})

	assert.False(t, l.Enabled())
	assert.Equal(t, SourceNone, l.Source)
	assert.Empty(t, l.IgnoreCodes)
	assert.NotNil(t, l.IgnoreCodes)
	assert.Equal(t, ToolName, l.Executable)
	assert.Equal(t, []string{ToolName, "-f", "gcc", "-"}, l.Cmd)
	assert.Empty(t, logs.find("command built"))
	assert.Len(t, logs.find("not found in PATH or bundled location"), 1)
}

func TestNewDisabledSkipsConfig(t *testing.T) {
	logger, logs := newLogCapture(t)
	settings := t.TempDir()
	writeFile(t, ConfigPath(settings), []byte(`{"ignore_codes": ["SC2034"]}`))

	l := New(fakeView("x.sh"), Options{
		Logger:         logger,
		SettingsFolder: settings,
		Locator:        Locator{LookPath: notFound, BundleFolder: t.TempDir()},
	})

	assert.False(t, l.Enabled())
	assert.Empty(t, l.IgnoreCodes)
	assert.Empty(t, logs.find("loaded ignore codes"))
}

func TestCommandReturnsCopy(t *testing.T) {
	l := New(nil, Options{Locator: Locator{LookPath: func(string) (string, error) { return "sc", nil }}})

	cmd := l.Command()
	cmd[0] = "changed"
	assert.Equal(t, "sc", l.Cmd[0])
}
