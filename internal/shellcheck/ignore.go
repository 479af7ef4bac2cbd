package shellcheck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/encoding/charmap"

	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/files"
)

// ConfigFileName is the ignore-code config file inside the settings folder.
const ConfigFileName = "shellcheck_config.json"

const ignoreCodesKey = "ignore_codes"

var ignoreCodePattern = regexp.MustCompile(`^SC[0-9]+$`)

// ConfigPath returns the config file location inside settingsFolder.
func ConfigPath(settingsFolder string) string {
	return filepath.Join(settingsFolder, ConfigFileName)
}

// IsValidIgnoreCode reports whether code looks like SC followed by digits.
func IsValidIgnoreCode(code string) bool {
	return ignoreCodePattern.MatchString(code)
}

// LoadIgnoreCodes reads the ignore codes from the config file at path.
// Every failure is logged and results in an empty set.
func LoadIgnoreCodes(path string, logger hclog.Logger) []string {
	if !files.IsRegularFile(path) {
		return []string{}
	}

	content, err := readConfigFile(path)
	if err != nil {
		logger.Error("failed to read config", "path", path, "error", err)
		return []string{}
	}
	if content == "" {
		return []string{}
	}

	return parseIgnoreCodes(content, logger)
}

// readConfigFile returns the file content with comment and blank lines removed.
// Content that is not valid UTF-8 is decoded as Windows-1252.
func readConfigFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var text string
	if utf8.Valid(data) {
		text = strings.TrimPrefix(string(data), "\ufeff")
	} else {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode with fallback encoding: %w", err)
		}
		text = string(decoded)
	}

	return stripCommentLines(text), nil
}

// stripCommentLines drops blank lines and lines starting with // or #, keeping line endings of the rest.
func stripCommentLines(text string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "//") || strings.HasPrefix(s, "#") {
			continue
		}
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String())
}

func parseIgnoreCodes(content string, logger hclog.Logger) []string {
	var doc interface{}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		logger.Error("invalid JSON in config", "error", err)
		return []string{}
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		logger.Error("config must be a JSON object", "got", jsonKind(doc))
		return []string{}
	}

	raw, ok := obj[ignoreCodesKey]
	if !ok {
		return []string{}
	}
	entries, ok := raw.([]interface{})
	if !ok {
		logger.Error("'ignore_codes' must be an array", "got", jsonKind(raw))
		return []string{}
	}

	valid := make([]string, 0, len(entries))
	var invalid []interface{}
	for _, entry := range entries {
		if code, ok := entry.(string); ok && IsValidIgnoreCode(code) {
			valid = append(valid, code)
			continue
		}
		invalid = append(invalid, entry)
	}

	if len(invalid) > 0 {
		logger.Warn("invalid codes ignored", "count", len(invalid), "codes", invalid)
	}
	if len(valid) > 0 {
		logger.Info("loaded ignore codes", "codes", valid)
	}

	return valid
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
