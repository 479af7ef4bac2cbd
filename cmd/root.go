package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/scanio-shellcheck/cmd/configcmd"
	"github.com/scan-io-git/scanio-shellcheck/cmd/guide"
	"github.com/scan-io-git/scanio-shellcheck/cmd/lint"
	"github.com/scan-io-git/scanio-shellcheck/cmd/version"
	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/config"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/errors"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/logger"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "scanio-shellcheck [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Runs ShellCheck on shell scripts with a per-user list of ignored codes.",
		Long: `scanio-shellcheck locates the shellcheck executable in PATH or next to the installation,
	applies the ignore codes from shellcheck_config.json and reports diagnostics as text, JSON or SARIF.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file (default is config.yml)")
	rootCmd.AddCommand(lint.LintCmd)
	rootCmd.AddCommand(configcmd.ConfigCmd)
	rootCmd.AddCommand(guide.GuideCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		code := errors.ExitCode(err)
		if code != errors.ExitCodeFindings {
			fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		}
		return code
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Printf("initializing config file function is crashed - %v \n", err)
		os.Exit(errors.ExitCodeFailure)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Println(err)
		os.Exit(errors.ExitCodeFailure)
	}

	shellcheck.Init(logger.NewLogger(AppConfig, "shellcheck"))

	lint.Init(AppConfig)
	configcmd.Init(AppConfig)
	guide.Init(AppConfig)
	version.Init(AppConfig)
}
