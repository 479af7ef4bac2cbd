package shellcheck

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/files"
)

// BundleDirName is the folder holding the bundled executable, relative to the install root.
const BundleDirName = "ShellCheck"

// ExecutableSource records where the executable was found.
type ExecutableSource string

const (
	SourceNone    ExecutableSource = "none"
	SourcePath    ExecutableSource = "path"
	SourceBundled ExecutableSource = "bundled"
)

// Locator finds the shellcheck executable. Nil funcs fall back to exec.LookPath and os.Executable.
type Locator struct {
	LookPath     func(file string) (string, error)
	Self         func() (string, error)
	GOOS         string
	BundleFolder string // Overrides the folder derived from Self
}

// Locate returns the executable path and its source. PATH wins over the bundled copy.
// An empty path means nothing usable was found; the reason is logged, never returned.
func (l Locator) Locate(logger hclog.Logger) (string, ExecutableSource) {
	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if path, err := lookPath(ToolName); err == nil && path != "" {
		logger.Info("found in PATH", "path", path)
		return path, SourcePath
	}

	bundled, err := l.BundledPath()
	if err != nil {
		logger.Warn("cannot locate bundled version", "error", err)
		return "", SourceNone
	}

	if files.IsRegularFile(bundled) {
		logger.Info("using bundled version", "path", bundled)
		return bundled, SourceBundled
	}

	logger.Warn("not found in PATH or bundled location", "path", bundled)
	return "", SourceNone
}

// BundledPath computes <install root>/ShellCheck/shellcheck[.exe], where the install root
// is three levels above the running binary unless BundleFolder is set.
func (l Locator) BundledPath() (string, error) {
	folder := l.BundleFolder
	if folder == "" {
		self := l.Self
		if self == nil {
			self = os.Executable
		}
		exe, err := self()
		if err != nil {
			return "", fmt.Errorf("unable to resolve own location: %w", err)
		}
		if exe == "" {
			return "", fmt.Errorf("unable to resolve own location: empty path")
		}
		root := filepath.Dir(filepath.Dir(filepath.Dir(exe)))
		folder = filepath.Join(root, BundleDirName)
	}

	return filepath.Join(folder, executableName(l.goos())), nil
}

func (l Locator) goos() string {
	if l.GOOS != "" {
		return l.GOOS
	}
	return runtime.GOOS
}

func executableName(goos string) string {
	if goos == "windows" {
		return ToolName + ".exe"
	}
	return ToolName
}
