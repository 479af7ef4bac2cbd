package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/scan-io-git/scanio-shellcheck/internal/host"
	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/config"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/errors"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/logger"
)

// RunOptionsConfig holds the arguments for the config command.
type RunOptionsConfig struct {
	NoOpen bool
}

var (
	AppConfig          *config.Config
	configOptions      RunOptionsConfig
	exampleConfigUsage = `  # Create the ignore-code config if needed and open it in $VISUAL or $EDITOR
  scanio-shellcheck config

  # Create the config if needed and print its path
  scanio-shellcheck config --no-open`
)

// ConfigCmd represents the config command.
var ConfigCmd = &cobra.Command{
	Use:                   "config [--no-open]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleConfigUsage,
	Short:                 "Opens shellcheck_config.json, creating it with default ignore codes when missing",
	Args:                  cobra.NoArgs,
	RunE:                  runConfigCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func runConfigCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-config")

	cli := host.NewCLI(config.GetSettingsHome(AppConfig), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if configOptions.NoOpen {
		cli.WithEditor("")
	}

	if err := shellcheck.OpenConfig(cli, logger); err != nil {
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}
	return nil
}

func init() {
	ConfigCmd.Flags().BoolVar(&configOptions.NoOpen, "no-open", false, "Print the config path instead of launching an editor.")
	ConfigCmd.Flags().BoolP("help", "h", false, "Show help for the config command.")
}
