package lint

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/scanio-shellcheck/internal/host"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/config"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/errors"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/logger"
)

// RunOptionsLint holds the arguments for the lint command.
type RunOptionsLint struct {
	Format     string
	OutputPath string
	PluginPath string
}

// Global variables for configuration and command arguments
var (
	AppConfig        *config.Config
	lintOptions      RunOptionsLint
	exampleLintUsage = `  # Lint a script and print diagnostics
  scanio-shellcheck lint deploy.sh

  # Lint a script read from stdin
  cat deploy.sh | scanio-shellcheck lint -

  # Lint several scripts and save a SARIF report
  scanio-shellcheck lint --format sarif --output /path/to/reports install.sh deploy.bash

  # Lint through an out-of-process adapter plugin
  scanio-shellcheck lint --plugin /path/to/plugins/shellcheck deploy.sh`
)

// LintCmd represents the lint command.
var LintCmd = &cobra.Command{
	Use:                   "lint [--format/-f text|json|sarif] [--output/-o PATH] [--plugin PATH] {FILE...|-}",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleLintUsage,
	Short:                 "Runs shellcheck on the given scripts with the configured ignore codes",
	Long: `Runs shellcheck on the given scripts with the ignore codes from shellcheck_config.json.

Exit codes:
  0  no error-level diagnostics
  1  at least one error-level diagnostic
  2  shellcheck could not be run`,
	RunE: runLintCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runLintCommand executes the lint command.
func runLintCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-lint")

	if err := validateLintArgs(&lintOptions, args); err != nil {
		logger.Error("invalid lint arguments", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	runner := host.NewRunner(logger, config.GetLintTimeout(AppConfig))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		results []fileResult
		err     error
	)
	if lintOptions.PluginPath != "" {
		err = shared.WithPlugin(AppConfig, "core-lint-plugin", lintOptions.PluginPath, func(linter shared.Linter) error {
			var lintErr error
			results, lintErr = lintTargets(ctx, runner, remoteAdapterFactory(linter, AppConfig), args, os.Stdin)
			return lintErr
		})
	} else {
		results, err = lintTargets(ctx, runner, localAdapterFactory(logger, AppConfig), args, os.Stdin)
	}
	if err != nil {
		logger.Error("lint command failed", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	if err := writeResults(logger, &lintOptions, results, cmd.OutOrStdout()); err != nil {
		logger.Error("failed to write result", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	if count := countErrors(results); count > 0 {
		return errors.NewFindingsError(count)
	}

	logger.Info("lint command completed successfully", "files", len(results))
	return nil
}

// Initialize flags for the lint command.
func init() {
	LintCmd.Flags().StringVarP(&lintOptions.Format, "format", "f", FormatText, "Output format: text, json or sarif.")
	LintCmd.Flags().BoolP("help", "h", false, "Show help for the lint command.")
	LintCmd.Flags().StringVarP(&lintOptions.OutputPath, "output", "o", "", "Path to the output file or directory. Results are printed to stdout when omitted.")
	LintCmd.Flags().StringVar(&lintOptions.PluginPath, "plugin", "", "Path to a shellcheck adapter plugin binary to use instead of the built-in adapter.")
}
