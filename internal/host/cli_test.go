package host

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
)

func TestFileView(t *testing.T) {
	assert.Equal(t, "", FileView{Path: "-"}.Filename())
	assert.Equal(t, "run.sh", FileView{Path: "run.sh"}.Filename())
}

func TestCLIMessageBox(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cli := NewCLI("/settings", &stdout, &stderr)

	cli.MessageBox("hello", shellcheck.MessageInfo)
	cli.MessageBox("broken", shellcheck.MessageError)

	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, "ERROR: broken\n", stderr.String())
	assert.Equal(t, "/settings", cli.SettingsDir())
}

func TestCLIOpenFileWithoutEditorPrintsPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cli := NewCLI("", &stdout, &stderr).WithEditor("")

	require.NoError(t, cli.OpenFile("/settings/shellcheck_config.json"))
	assert.Equal(t, "/settings/shellcheck_config.json\n", stdout.String())
}

func TestCLIOpenFileRunsEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("editor stub is a POSIX shell script")
	}
	dir := t.TempDir()
	marker := filepath.Join(dir, "opened.txt")
	editor := filepath.Join(dir, "editor")
	require.NoError(t, os.WriteFile(editor, []byte("#!/bin/sh\nprintf '%s' \"$*\" > "+marker+"\n"), 0755))

	var stdout, stderr bytes.Buffer
	cli := NewCLI("", &stdout, &stderr).WithEditor(editor + " --wait")

	require.NoError(t, cli.OpenFile("/cfg.json"))
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "--wait /cfg.json", string(data))
}

func TestCLIOpenFileEditorFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cli := NewCLI("", &stdout, &stderr).WithEditor(filepath.Join(t.TempDir(), "missing-editor"))

	err := cli.OpenFile("/cfg.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-editor")
}

func TestCLIOpenConfigEndToEnd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	settings := filepath.Join(t.TempDir(), "settings")
	cli := NewCLI(settings, &stdout, &stderr).WithEditor("")

	require.NoError(t, shellcheck.OpenConfig(cli, hclog.NewNullLogger()))
	assert.Equal(t, shellcheck.ConfigPath(settings)+"\n", stdout.String())
	assert.FileExists(t, shellcheck.ConfigPath(settings))
}

