package validation

import (
	"fmt"
	"path/filepath"

	"github.com/scan-io-git/scanio-shellcheck/pkg/shared"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/files"
)

// ValidateSetupArgs expands the folders in LinterSetupRequest and checks that they are absolute.
// Empty folders are left as is.
func ValidateSetupArgs(args *shared.LinterSetupRequest) error {
	folders := []struct {
		name string
		path *string
	}{
		{"settings folder", &args.SettingsFolder},
		{"bundle folder", &args.BundleFolder},
	}

	for _, folder := range folders {
		if *folder.path == "" {
			continue
		}

		expandedPath, err := files.ExpandPath(*folder.path)
		if err != nil {
			return fmt.Errorf("failed to expand path '%s': %w", *folder.path, err)
		}
		if !filepath.IsAbs(expandedPath) {
			return fmt.Errorf("%s must be an absolute path: %q", folder.name, *folder.path)
		}
		*folder.path = expandedPath
	}
	return nil
}

// ValidateTempfileArgs checks the necessary fields in TempfileRequest.
func ValidateTempfileArgs(args *shared.TempfileRequest) error {
	if args.Dir == "" {
		return fmt.Errorf("the 'dir' field is required")
	}
	if _, err := files.ExpandPath(args.Dir); err != nil {
		return fmt.Errorf("failed to expand path '%s': %w", args.Dir, err)
	}
	return nil
}
