package lint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/scanio-shellcheck/internal/host"
	"github.com/scan-io-git/scanio-shellcheck/internal/sarif"
	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/config"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/errors"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/files"
)

// Output formats supported by the lint command.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSarif = "sarif"
)

const stdinTarget = "-"

type fileResult = sarif.FileDiagnostics

// adapterFactory builds the adapter for one lint target.
type adapterFactory func(target string) (host.Adapter, error)

// localAdapterFactory builds in-process adapters from the app config.
func localAdapterFactory(logger hclog.Logger, cfg *config.Config) adapterFactory {
	return func(target string) (host.Adapter, error) {
		return shellcheck.New(host.FileView{Path: target}, shellcheck.Options{
			Logger:         logger,
			SettingsFolder: config.GetSettingsHome(cfg),
			Locator:        shellcheck.Locator{BundleFolder: config.GetBundleFolder(cfg)},
		}), nil
	}
}

// remoteAdapterFactory builds adapters backed by a plugin process.
func remoteAdapterFactory(linter shared.Linter, cfg *config.Config) adapterFactory {
	return func(target string) (host.Adapter, error) {
		return newRemoteAdapter(linter, shared.LinterSetupRequest{
			Filename:       host.FileView{Path: target}.Filename(),
			SettingsFolder: config.GetSettingsHome(cfg),
			BundleFolder:   config.GetBundleFolder(cfg),
		})
	}
}

// remoteAdapter implements host.Adapter on top of a profile returned by a plugin.
type remoteAdapter struct {
	linter   shared.Linter
	profile  shared.LinterProfile
	regex    *regexp.Regexp
	filename string
}

func newRemoteAdapter(linter shared.Linter, req shared.LinterSetupRequest) (*remoteAdapter, error) {
	profile, err := linter.Setup(req)
	if err != nil {
		return nil, fmt.Errorf("plugin setup failed: %w", err)
	}

	regex, err := regexp.Compile(profile.Regex)
	if err != nil {
		return nil, fmt.Errorf("plugin returned an invalid diagnostic pattern: %w", err)
	}

	return &remoteAdapter{
		linter:   linter,
		profile:  profile,
		regex:    regex,
		filename: req.Filename,
	}, nil
}

func (a *remoteAdapter) Enabled() bool {
	return a.profile.Enabled
}

func (a *remoteAdapter) Command() []string {
	return append([]string(nil), a.profile.Cmd...)
}

func (a *remoteAdapter) TempfileName(dir string) (string, error) {
	return a.linter.TempfileName(shared.TempfileRequest{Dir: dir, Filename: a.filename})
}

func (a *remoteAdapter) Parse(r io.Reader) ([]shellcheck.Diagnostic, error) {
	return shellcheck.ParseOutputWith(a.regex, r)
}

// lintTargets lints every target in order. A disabled adapter fails the run with ErrDisabled.
func lintTargets(ctx context.Context, runner *host.Runner, newAdapter adapterFactory, targets []string, stdin io.Reader) ([]fileResult, error) {
	results := make([]fileResult, 0, len(targets))
	for _, target := range targets {
		adapter, err := newAdapter(target)
		if err != nil {
			return nil, err
		}
		if !adapter.Enabled() {
			return nil, errors.ErrDisabled
		}

		content, err := readTarget(target, stdin)
		if err != nil {
			return nil, err
		}

		diagnostics, err := runner.Lint(ctx, adapter, content)
		if err != nil {
			return nil, fmt.Errorf("failed to lint %q: %w", target, err)
		}
		if diagnostics == nil {
			diagnostics = []shellcheck.Diagnostic{}
		}
		results = append(results, fileResult{Path: target, Diagnostics: diagnostics})
	}
	return results, nil
}

func readTarget(target string, stdin io.Reader) ([]byte, error) {
	if target == stdinTarget {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", target, err)
	}
	return content, nil
}

// countErrors returns the number of error-level diagnostics across all results.
func countErrors(results []fileResult) int {
	count := 0
	for _, result := range results {
		for _, d := range result.Diagnostics {
			if d.Severity == shellcheck.SeverityError {
				count++
			}
		}
	}
	return count
}

// writeResults renders results in the requested format to the output path, or to out when none is set.
func writeResults(logger hclog.Logger, options *RunOptionsLint, results []fileResult, out io.Writer) error {
	switch options.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		if options.OutputPath == "" {
			_, err = fmt.Fprintln(out, string(data))
			return err
		}
		path, err := outputFile(options.OutputPath, "shellcheck-results.json")
		if err != nil {
			return err
		}
		if err := files.WriteJsonFile(path, data); err != nil {
			return err
		}
		logger.Info("results saved", "path", path)
		return nil

	case FormatSarif:
		report, err := sarif.NewReport(logger, results)
		if err != nil {
			return err
		}
		report.SortResultsByLevel()
		if options.OutputPath == "" {
			return report.Encode(out)
		}
		path, err := outputFile(options.OutputPath, "shellcheck-results.sarif")
		if err != nil {
			return err
		}
		if err := report.WriteReport(path); err != nil {
			return err
		}
		logger.Debug("severity summary", "levels", report.CollectSeverityInfo())
		return nil

	default:
		for _, result := range results {
			for _, d := range result.Diagnostics {
				if _, err := fmt.Fprintf(out, "%s:%s\n", result.Path, d); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

func outputFile(outputPath, nameTemplate string) (string, error) {
	path, folder, err := files.DetermineFileFullPath(outputPath, nameTemplate)
	if err != nil {
		return "", err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return "", err
	}
	return path, nil
}
