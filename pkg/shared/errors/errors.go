package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitCodeFindings = 1
	ExitCodeFailure  = 2
)

// ErrDisabled is returned when an operation needs a located shellcheck executable.
var ErrDisabled = errors.New("shellcheck executable not found, linter is disabled")

// CommandError represents an error that occurred during command execution, carrying the process exit code.
type CommandError struct {
	ExitCode    int
	CommonError string
	Err         error
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError wrapping err with the given exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		Err:         err,
	}
}

// NewFindingsError reports that lint finished but error-level diagnostics were found.
func NewFindingsError(count int) *CommandError {
	return NewCommandError(fmt.Errorf("shellcheck reported %d error-level diagnostic(s)", count), ExitCodeFindings)
}

// ExitCode extracts the exit code from err, defaulting to ExitCodeFailure for foreign errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return ExitCodeFailure
}
