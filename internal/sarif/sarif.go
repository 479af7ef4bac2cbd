package sarif

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/files"
)

const (
	toolName      = "ShellCheck"
	toolURI       = "https://www.shellcheck.net"
	wikiURI       = "https://www.shellcheck.net/wiki/"
	genericRuleID = "shellcheck"
)

// Report wraps a SARIF report produced from shellcheck diagnostics.
type Report struct {
	*sarif.Report
	logger hclog.Logger
}

// FileDiagnostics holds the diagnostics reported for one file.
type FileDiagnostics struct {
	Path        string
	Diagnostics []shellcheck.Diagnostic
}

// NewReport builds a SARIF 2.1.0 report with one run, one rule per shellcheck code
// and one result per diagnostic.
func NewReport(logger hclog.Logger, results []FileDiagnostics) (*Report, error) {
	reportSarif, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	run.Results = make([]*sarif.Result, 0)

	for _, file := range results {
		uri := filepath.ToSlash(file.Path)
		for _, d := range file.Diagnostics {
			ruleID := d.Code
			if ruleID == "" {
				ruleID = genericRuleID
			}
			rule := run.AddRule(ruleID)
			if d.Code != "" {
				rule.WithHelpURI(wikiURI + d.Code)
			}

			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(uri)).
					WithRegion(sarif.NewRegion().WithStartLine(d.Line).WithStartColumn(d.Column)),
			)

			result := sarif.NewRuleResult(rule.ID).
				WithMessage(sarif.NewTextMessage(d.Message)).
				WithLevel(toSarifLevel(d.Severity)).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}
	reportSarif.AddRun(run)

	logger.Debug("SARIF report built", "results", len(run.Results), "rules", len(run.Tool.Driver.Rules))
	return &Report{Report: reportSarif, logger: logger}, nil
}

// ReadReport loads a SARIF report from inputPath.
func ReadReport(inputPath string, logger hclog.Logger) (*Report, error) {
	if err := files.ValidatePath(inputPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SARIF report %q: %w", inputPath, err)
	}

	var reportSarif sarif.Report
	if err := json.Unmarshal(data, &reportSarif); err != nil {
		return nil, fmt.Errorf("failed to parse SARIF report %q: %w", inputPath, err)
	}

	return &Report{Report: &reportSarif, logger: logger}, nil
}

// Encode writes the report as indented JSON.
func (r Report) Encode(w io.Writer) error {
	return r.PrettyWrite(w)
}

// WriteReport writes the report to outputPath, creating the parent folder when needed.
func (r Report) WriteReport(outputPath string) error {
	if err := files.CreateFolderIfNotExists(filepath.Dir(outputPath)); err != nil {
		return err
	}

	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := r.PrettyWrite(file); err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	r.logger.Info("result saved", "path", outputPath)
	return nil
}

// CollectSeverityInfo counts results per level plus a total.
func (r Report) CollectSeverityInfo() map[string]int {
	severityInfo := map[string]int{
		"error":   0,
		"warning": 0,
		"note":    0,
		"total":   0,
	}

	for _, run := range r.Runs {
		for _, result := range run.Results {
			severityInfo[resultLevel(result)]++
			severityInfo["total"]++
		}
	}

	return severityInfo
}

// SortResultsByLevel orders results error, warning, note, then anything else, keeping the original order within a level.
func (r Report) SortResultsByLevel() {
	levelOrder := map[string]int{
		"error":   0,
		"warning": 1,
		"note":    2,
		"none":    3,
	}
	rank := func(result *sarif.Result) int {
		if order, ok := levelOrder[resultLevel(result)]; ok {
			return order
		}
		return len(levelOrder)
	}

	for _, run := range r.Runs {
		results := run.Results
		sort.SliceStable(results, func(i, j int) bool {
			return rank(results[i]) < rank(results[j])
		})
	}
}

func resultLevel(result *sarif.Result) string {
	if result.Level == nil {
		return "none"
	}
	return *result.Level
}

func toSarifLevel(severity shellcheck.Severity) string {
	switch severity {
	case shellcheck.SeverityError:
		return "error"
	case shellcheck.SeverityWarning:
		return "warning"
	case shellcheck.SeverityNote:
		return "note"
	default:
		return "none"
	}
}
