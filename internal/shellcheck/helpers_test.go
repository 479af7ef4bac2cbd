package shellcheck

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]interface{}

func (e logEntry) message() string {
	s, _ := e["@message"].(string)
	return s
}

func (e logEntry) level() string {
	s, _ := e["@level"].(string)
	return s
}

type logCapture struct {
	t   *testing.T
	buf *bytes.Buffer
}

func newLogCapture(t *testing.T) (hclog.Logger, *logCapture) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "shellcheck",
		Level:      hclog.Trace,
		Output:     buf,
		JSONFormat: true,
	})
	return logger, &logCapture{t: t, buf: buf}
}

func (c *logCapture) entries() []logEntry {
	c.t.Helper()
	var out []logEntry
	scanner := bufio.NewScanner(bytes.NewReader(c.buf.Bytes()))
	for scanner.Scan() {
		var e logEntry
		require.NoError(c.t, json.Unmarshal(scanner.Bytes(), &e))
		out = append(out, e)
	}
	return out
}

func (c *logCapture) find(message string) []logEntry {
	var out []logEntry
	for _, e := range c.entries() {
		if e.message() == message {
			out = append(out, e)
		}
	}
	return out
}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0755))
}

func notFound(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

type fakeView string

func (v fakeView) Filename() string { return string(v) }

func createDir(path string) error {
	return os.MkdirAll(path, 0755)
}
