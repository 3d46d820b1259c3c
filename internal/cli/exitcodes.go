package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown project IDs (backend 404).
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: responses that cannot be decoded, unwritable export files.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid format, aggregation window, sort key or status values,
	// and actions refused because a project is disabled.
	ExitValidation = 5
)

// CommandError carries the process exit code of a failed command
type CommandError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	if err == nil {
		err = fmt.Errorf("exit status %d", code)
	}
	return &CommandError{Code: code, Err: err}
}

// ExitCodeOf returns the exit code carried by err, ExitError when it has none
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *CommandError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitError
}
