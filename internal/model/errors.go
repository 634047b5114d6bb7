package model

import "fmt"

// ExitCode defines the process exit codes returned by the pagesize CLI.
// Scripts can use these to tell a bad argument apart from a missing or
// malformed page-size file.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgument indicates a flag, argument, or page-size
	// definition was rejected (unknown preset, missing dimension, nil size).
	ExitInvalidArgument ExitCode = 2

	// ExitFileNotFound indicates the page-size file does not exist.
	ExitFileNotFound ExitCode = 3

	// ExitParseError indicates the page-size file could not be decoded
	// as JSON(C) or YAML.
	ExitParseError ExitCode = 4
)

// String returns a short name for the exit code, used in verbose output.
func (c ExitCode) String() string {
	switch c {
	case ExitSuccess:
		return "success"
	case ExitGeneralError:
		return "general-error"
	case ExitInvalidArgument:
		return "invalid-argument"
	case ExitFileNotFound:
		return "file-not-found"
	case ExitParseError:
		return "parse-error"
	default:
		return fmt.Sprintf("exit-%d", int(c))
	}
}

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
