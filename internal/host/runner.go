package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
)

// stdinArg tells shellcheck to read the script from standard input.
const stdinArg = "-"

// Adapter is the part of a linter adapter the runner needs.
type Adapter interface {
	Enabled() bool
	Command() []string
	TempfileName(dir string) (string, error)
	Parse(r io.Reader) ([]shellcheck.Diagnostic, error)
}

// Runner executes an adapter's command and parses the output.
type Runner struct {
	logger  hclog.Logger
	timeout time.Duration
	tempDir string
}

// NewRunner creates a Runner. A zero timeout disables the per-run deadline.
func NewRunner(logger hclog.Logger, timeout time.Duration) *Runner {
	return &Runner{
		logger:  logger,
		timeout: timeout,
		tempDir: os.TempDir(),
	}
}

// WithTempDir sets the folder for temp files used by commands that do not read stdin.
func (r *Runner) WithTempDir(dir string) *Runner {
	r.tempDir = dir
	return r
}

// Lint runs the adapter on content. A disabled adapter is skipped without error.
// Exit status 1 means shellcheck found issues and is not treated as a failure.
func (r *Runner) Lint(ctx context.Context, a Adapter, content []byte) ([]shellcheck.Diagnostic, error) {
	if !a.Enabled() {
		r.logger.Debug("linter is disabled, skipping")
		return nil, nil
	}

	args := a.Command()
	if len(args) == 0 {
		return nil, fmt.Errorf("linter returned an empty command")
	}

	var stdin io.Reader
	if usesStdin(args) {
		stdin = bytes.NewReader(content)
	} else {
		tmp, err := r.writeTempfile(a, content)
		if err != nil {
			return nil, err
		}
		defer os.Remove(tmp)
		args = append(args, tmp)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	r.logger.Debug("debug info", "cmd", cmd.Args)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(r.logger.StandardWriter(&hclog.StandardLoggerOptions{
		InferLevels: true,
	}), &stderr)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%q execution aborted: %w", args[0], ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			r.logger.Error("shellcheck execution error", "error", err)
			return nil, fmt.Errorf("%q execution error: %w. Output: %s", args[0], err, stderr.String())
		}
	}

	diagnostics, err := a.Parse(&stdout)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("lint finished", "diagnostics", len(diagnostics))
	return diagnostics, nil
}

func (r *Runner) writeTempfile(a Adapter, content []byte) (string, error) {
	name, err := a.TempfileName(r.tempDir)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(name, content, 0600); err != nil {
		return "", fmt.Errorf("failed to write temp file %q: %w", name, err)
	}
	return name, nil
}

func usesStdin(args []string) bool {
	for _, arg := range args[1:] {
		if arg == stdinArg {
			return true
		}
	}
	return false
}
