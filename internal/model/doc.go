// Package model defines the CLI-facing error types for the pagesize
// command.
//
// The package defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
// Domain values (page sizes and presets) live in the paper package; this
// package only describes how failures surface to the shell.
package model
