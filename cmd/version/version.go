package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/scan-io-git/scanio-shellcheck/internal/shellcheck"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/config"
)

var (
	AppConfig     *config.Config
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
	outputJSON    bool
)

// Versions holds version information for the application and the located shellcheck.
type Versions struct {
	Version       string   `json:"version"`
	GolangVersion string   `json:"golang_version"`
	BuildTime     string   `json:"build_time"`
	ShellCheck    ToolMeta `json:"shellcheck"`
}

// ToolMeta describes where shellcheck was found.
type ToolMeta struct {
	Path   string `json:"path"`
	Source string `json:"source"`
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version [--json]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application and the shellcheck in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := Versions{
				Version:       CoreVersion,
				GolangVersion: GolangVersion,
				BuildTime:     BuildTime,
				ShellCheck:    locateTool(shellcheck.Locator{BundleFolder: config.GetBundleFolder(AppConfig)}),
			}
			return printVersionInfo(cmd.OutOrStdout(), &versions, outputJSON)
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Print version information as JSON.")
	return cmd
}

func locateTool(locator shellcheck.Locator) ToolMeta {
	path, source := locator.Locate(hclog.NewNullLogger())
	if path == "" {
		path = "not found"
	}
	return ToolMeta{Path: path, Source: string(source)}
}

// printVersionInfo prints the version information for the application and shellcheck.
func printVersionInfo(w io.Writer, versions *Versions, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(versions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "Core Version: v%s\n", versions.Version)
	fmt.Fprintf(w, "ShellCheck: %s (Source: %s)\n", versions.ShellCheck.Path, versions.ShellCheck.Source)
	fmt.Fprintf(w, "Go Version: %s\n", versions.GolangVersion)
	fmt.Fprintf(w, "Build Time: %s\n", versions.BuildTime)
	return nil
}
