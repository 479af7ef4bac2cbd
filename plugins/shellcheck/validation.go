package main

import (
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/validation"
)

// validateSetup checks the folders in LinterSetupRequest and expands them in place.
func (g *LinterShellCheck) validateSetup(args *shared.LinterSetupRequest) error {
	if err := validation.ValidateSetupArgs(args); err != nil {
		return err
	}

	return nil
}

// validateTempfile checks the necessary fields in TempfileRequest.
func (g *LinterShellCheck) validateTempfile(args *shared.TempfileRequest) error {
	if err := validation.ValidateTempfileArgs(args); err != nil {
		return err
	}

	return nil
}
