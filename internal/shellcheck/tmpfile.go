package shellcheck

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultTempfileSuffix is used when the buffer's file has no extension.
const DefaultTempfileSuffix = "sh"

// TempfileSuffix returns filename's extension with the dot, or ".sh" when it has none.
// Leading dots of the base name do not start an extension, so ".bashrc" gets ".sh".
func TempfileSuffix(filename string) string {
	base := strings.TrimLeft(filepath.Base(filename), ".")
	if ext := filepath.Ext(base); ext != "" {
		return ext
	}
	return "." + DefaultTempfileSuffix
}

// TempfileName returns a unique temp file path in dir that keeps the view's extension.
func (l *Linter) TempfileName(dir string) (string, error) {
	return TempfileNameFor(dir, l.filename())
}

// TempfileNameFor returns a unique temp file path in dir for a buffer backed by filename.
func TempfileNameFor(dir, filename string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate temp file name: %w", err)
	}
	return filepath.Join(dir, "scanio-shellcheck-"+id.String()+TempfileSuffix(filename)), nil
}
