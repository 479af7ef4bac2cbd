package lint

import (
	"fmt"
	"os"
)

// validateLintArgs validates the arguments provided to the lint command.
func validateLintArgs(options *RunOptionsLint, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one target file or '-' must be specified")
	}

	switch options.Format {
	case FormatText, FormatJSON, FormatSarif:
	default:
		return fmt.Errorf("unsupported format %q, expected one of %q, %q or %q", options.Format, FormatText, FormatJSON, FormatSarif)
	}

	if options.Format == FormatText && options.OutputPath != "" {
		return fmt.Errorf("the 'output' flag requires the json or sarif format")
	}

	stdinSeen := false
	for _, target := range args {
		if target == stdinTarget {
			if stdinSeen {
				return fmt.Errorf("stdin can be linted only once")
			}
			stdinSeen = true
			continue
		}

		info, err := os.Stat(target)
		if os.IsNotExist(err) {
			return fmt.Errorf("the target path does not exist: %v", target)
		} else if err != nil {
			return fmt.Errorf("unable to check target %q: %w", target, err)
		}
		if info.IsDir() {
			return fmt.Errorf("the target path is a directory: %v", target)
		}
	}

	if options.PluginPath != "" {
		if _, err := os.Stat(options.PluginPath); err != nil {
			return fmt.Errorf("the plugin path is not accessible: %w", err)
		}
	}

	return nil
}
