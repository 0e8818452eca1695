package cli

import (
	"errors"

	apperrors "github.com/yanqian/protoform/pkg/errors"
)

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitUsageError  = 2
	ExitInputError  = 3
	ExitConfigError = 4
)

// CLIError captures what the process reports when a command fails.
type CLIError struct {
	ExitCode int
	Code     string
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError is a helper to build a CLIError instance.
func NewCLIError(exitCode int, code, message string, err error) *CLIError {
	return &CLIError{ExitCode: exitCode, Code: code, Message: message, Err: err}
}

func asCLIError(err error) *CLIError {
	if err == nil {
		return nil
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	switch code := apperrors.CodeOf(err); code {
	case apperrors.CodeInvalidInput:
		return NewCLIError(ExitUsageError, code, "invalid input", err)
	case apperrors.CodeDataSourceError:
		return NewCLIError(ExitInputError, code, "cannot read input", err)
	case apperrors.CodeConfigError:
		return NewCLIError(ExitConfigError, code, "invalid configuration", err)
	case apperrors.CodeOutOfRange:
		return NewCLIError(ExitGeneral, code, "summary out of range", err)
	default:
		return NewCLIError(ExitGeneral, "internal_error", "something went wrong", err)
	}
}

// ExitCode maps an error returned by a command onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return asCLIError(err).ExitCode
}
