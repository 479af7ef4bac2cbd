package shellcheck

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// DiagnosticPattern matches one line of shellcheck's gcc output: file:line:col: level: message.
const DiagnosticPattern = `^.+:(?P<line>\d+):(?P<col>\d+): (?:(?P<error>error)|(?P<warning>warning|note)): (?P<message>.+)`

var (
	diagnosticRegexp = regexp.MustCompile(DiagnosticPattern)
	codeSuffix       = regexp.MustCompile(`\[(SC[0-9]+)\]\s*$`)
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Diagnostic is one finding reported by shellcheck.
type Diagnostic struct {
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Severity Severity `json:"severity"`
	Code     string   `json:"code,omitempty"`
	Message  string   `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
}

// Parse extracts diagnostics from the tool output using the linter's pattern.
func (l *Linter) Parse(r io.Reader) ([]Diagnostic, error) {
	return ParseOutputWith(l.Regex, r)
}

// ParseLine parses a single output line with the default pattern.
func ParseLine(line string) (Diagnostic, bool) {
	return ParseLineWith(diagnosticRegexp, line)
}

// ParseOutput parses every line of r with the default pattern, skipping lines that do not match.
func ParseOutput(r io.Reader) ([]Diagnostic, error) {
	return ParseOutputWith(diagnosticRegexp, r)
}

// ParseOutputWith parses r line by line with re. The pattern is expected to use the
// line, col, error, warning and message group names.
func ParseOutputWith(re *regexp.Regexp, r io.Reader) ([]Diagnostic, error) {
	var diagnostics []Diagnostic

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if d, ok := ParseLineWith(re, strings.TrimRight(scanner.Text(), "\r")); ok {
			diagnostics = append(diagnostics, d)
		}
	}
	if err := scanner.Err(); err != nil {
		return diagnostics, fmt.Errorf("failed to read shellcheck output: %w", err)
	}
	return diagnostics, nil
}

// ParseLineWith parses line with re.
func ParseLineWith(re *regexp.Regexp, line string) (Diagnostic, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return Diagnostic{}, false
	}

	group := func(name string) string {
		if i := re.SubexpIndex(name); i >= 0 && i < len(m) {
			return m[i]
		}
		return ""
	}

	lineNo, err := strconv.Atoi(group("line"))
	if err != nil {
		return Diagnostic{}, false
	}
	col, err := strconv.Atoi(group("col"))
	if err != nil {
		return Diagnostic{}, false
	}

	d := Diagnostic{
		Line:    lineNo,
		Column:  col,
		Message: group("message"),
	}
	switch {
	case group("error") != "":
		d.Severity = SeverityError
	case group("warning") == string(SeverityNote):
		d.Severity = SeverityNote
	default:
		d.Severity = SeverityWarning
	}
	if cm := codeSuffix.FindStringSubmatch(d.Message); cm != nil {
		d.Code = cm[1]
	}

	return d, true
}
