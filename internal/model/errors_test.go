package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExitCode_String verifies the short names used in verbose output.
func TestExitCode_String(t *testing.T) {
	tests := []struct {
		code     ExitCode
		expected string
	}{
		{ExitSuccess, "success"},
		{ExitGeneralError, "general-error"},
		{ExitInvalidArgument, "invalid-argument"},
		{ExitFileNotFound, "file-not-found"},
		{ExitParseError, "parse-error"},
		{ExitCode(42), "exit-42"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.String())
		})
	}
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitInvalidArgument, "unknown preset")
		assert.Equal(t, ExitInvalidArgument, err.Code)
		assert.Equal(t, "unknown preset", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("unexpected end of JSON input")
		err := WrapCLIError(ExitParseError, "failed to parse page size file", inner)
		assert.Equal(t, ExitParseError, err.Code)
		assert.Equal(t, "failed to parse page size file: unexpected end of JSON input", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("no such file")
		err := WrapCLIError(ExitFileNotFound, "page size file not found", inner)
		assert.True(t, errors.Is(err, inner))
	})

	t.Run("errors.As recovers the exit code", func(t *testing.T) {
		var wrapped error = WrapCLIError(ExitParseError, "bad file", nil)
		var cliErr *CLIError
		assert.True(t, errors.As(wrapped, &cliErr))
		assert.Equal(t, ExitParseError, cliErr.Code)
	})
}
