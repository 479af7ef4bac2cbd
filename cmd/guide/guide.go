package guide

import (
	"github.com/spf13/cobra"

	"github.com/scan-io-git/scanio-shellcheck/internal/host"
	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/config"
)

var AppConfig *config.Config

// GuideCmd represents the guide command.
var GuideCmd = &cobra.Command{
	Use:                   "guide",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Shows features, configuration and install instructions",
	Args:                  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		shellcheck.ShowHelp(host.NewCLI(config.GetSettingsHome(AppConfig), cmd.OutOrStdout(), cmd.ErrOrStderr()))
	},
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}
