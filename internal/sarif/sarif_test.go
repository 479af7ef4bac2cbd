package sarif

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	gosarif "github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
)

func sampleDiagnostics() []FileDiagnostics {
	return []FileDiagnostics{
		{
			Path: "scripts/deploy.sh",
			Diagnostics: []shellcheck.Diagnostic{
				{Line: 3, Column: 1, Severity: shellcheck.SeverityNote, Code: "SC2086", Message: "Double quote to prevent globbing and word splitting. [SC2086]"},
				{Line: 5, Column: 7, Severity: shellcheck.SeverityError, Code: "SC1073", Message: "Couldn't parse this test expression. [SC1073]"},
			},
		},
		{
			Path: "install.sh",
			Diagnostics: []shellcheck.Diagnostic{
				{Line: 1, Column: 1, Severity: shellcheck.SeverityWarning, Code: "SC2086", Message: "Double quote to prevent globbing and word splitting. [SC2086]"},
				{Line: 9, Column: 2, Severity: shellcheck.SeverityWarning, Message: "no code here"},
			},
		},
	}
}

func TestNewReport(t *testing.T) {
	report, err := NewReport(hclog.NewNullLogger(), sampleDiagnostics())
	require.NoError(t, err)

	require.Len(t, report.Runs, 1)
	run := report.Runs[0]
	assert.Equal(t, "ShellCheck", run.Tool.Driver.Name)

	var ruleIDs []string
	for _, rule := range run.Tool.Driver.Rules {
		ruleIDs = append(ruleIDs, rule.ID)
	}
	assert.Equal(t, []string{"SC2086", "SC1073", "shellcheck"}, ruleIDs)
	require.NotNil(t, run.Tool.Driver.Rules[0].HelpURI)
	assert.Equal(t, "https://www.shellcheck.net/wiki/SC2086", *run.Tool.Driver.Rules[0].HelpURI)
	assert.Nil(t, run.Tool.Driver.Rules[2].HelpURI)

	require.Len(t, run.Results, 4)
	second := run.Results[1]
	assert.Equal(t, "SC1073", *second.RuleID)
	assert.Equal(t, "error", *second.Level)
	region := second.Locations[0].PhysicalLocation.Region
	assert.Equal(t, 5, *region.StartLine)
	assert.Equal(t, 7, *region.StartColumn)
	assert.Equal(t, "scripts/deploy.sh", *second.Locations[0].PhysicalLocation.ArtifactLocation.URI)
}

func TestNewReportEmpty(t *testing.T) {
	report, err := NewReport(hclog.NewNullLogger(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	runs := decoded["runs"].([]interface{})
	require.Len(t, runs, 1)
	assert.Equal(t, []interface{}{}, runs[0].(map[string]interface{})["results"])
}

func TestWriteAndReadReport(t *testing.T) {
	report, err := NewReport(hclog.NewNullLogger(), sampleDiagnostics())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "scanio-shellcheck-report.sarif")
	require.NoError(t, report.WriteReport(path))

	loaded, err := ReadReport(path, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, string(gosarif.Version210), loaded.Version)
	assert.Equal(t, map[string]int{"error": 1, "warning": 2, "note": 1, "total": 4}, loaded.CollectSeverityInfo())
}

func TestReadReportErrors(t *testing.T) {
	_, err := ReadReport(filepath.Join(t.TempDir(), "missing.sarif"), hclog.NewNullLogger())
	assert.Error(t, err)

	_, err = ReadReport(t.TempDir(), hclog.NewNullLogger())
	assert.Error(t, err)
}

func TestSortResultsByLevel(t *testing.T) {
	report, err := NewReport(hclog.NewNullLogger(), sampleDiagnostics())
	require.NoError(t, err)

	report.SortResultsByLevel()

	var levels []string
	var lines []int
	for _, result := range report.Runs[0].Results {
		levels = append(levels, *result.Level)
		lines = append(lines, *result.Locations[0].PhysicalLocation.Region.StartLine)
	}
	assert.Equal(t, []string{"error", "warning", "warning", "note"}, levels)
	assert.Equal(t, []int{5, 1, 9, 3}, lines)
}
