package host

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
)

// FileView is a view backed by a file on disk, or by stdin when Path is "-".
type FileView struct {
	Path string
}

func (v FileView) Filename() string {
	if v.Path == stdinArg {
		return ""
	}
	return v.Path
}

// CLI is the terminal implementation of shellcheck.Host.
type CLI struct {
	settingsDir string
	editor      string
	stdout      io.Writer
	stderr      io.Writer
}

// NewCLI creates a terminal host. The editor is taken from VISUAL, then EDITOR.
func NewCLI(settingsDir string, stdout, stderr io.Writer) *CLI {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	return &CLI{
		settingsDir: settingsDir,
		editor:      editor,
		stdout:      stdout,
		stderr:      stderr,
	}
}

// WithEditor overrides the editor command.
func (c *CLI) WithEditor(editor string) *CLI {
	c.editor = editor
	return c
}

func (c *CLI) SettingsDir() string {
	return c.settingsDir
}

// OpenFile opens path in the configured editor, or prints it when no editor is set.
func (c *CLI) OpenFile(path string) error {
	parts := strings.Fields(c.editor)
	if len(parts) == 0 {
		_, err := fmt.Fprintln(c.stdout, path)
		return err
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", parts[0], err)
	}
	return nil
}

func (c *CLI) MessageBox(text string, kind shellcheck.MessageKind) {
	if kind == shellcheck.MessageError {
		fmt.Fprintf(c.stderr, "ERROR: %s\n", text)
		return
	}
	fmt.Fprintln(c.stdout, text)
}
