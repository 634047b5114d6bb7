// Package cli implements the cobra-based CLI commands for pagesize.
//
// Each subcommand (presets, show, export) is defined in its own file
// within this package. This file defines the root command that serves as
// the parent for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/pagesize/internal/model"
	"github.com/shinji-kodama/pagesize/internal/paper"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, all output uses structured JSON format for machine consumption.
	// When false (default), output uses human-readable text format.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// logOutput is where VerboseLog writes. It starts as os.Stderr and is
// switched to the executing command's error writer before any RunE runs,
// so cmd.SetErr redirects verbose output as well.
var logOutput io.Writer = os.Stderr

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action; it only provides
// help text and global flags. Actual functionality is provided by
// subcommands (presets, show, export).
func NewRootCommand() *cobra.Command {
	// A fresh command tree starts logging to the process stderr; a
	// previous tree may have pointed logOutput at a test buffer.
	logOutput = os.Stderr

	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "pagesize",
		Short: "Inspect and export print page sizes",
		Long: `pagesize works with physical page sizes (height and width in centimeters)
used to configure print output.

It lists the standard presets (ISO A4, US Legal, ANSI Tabloid, US Letter),
shows the payload a printing backend receives for a size, and converts
page-size files between JSON(C) and YAML.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// PersistentPreRun is inherited by every subcommand. It points
		// VerboseLog at the command's error writer, which is os.Stderr
		// unless the caller used SetErr.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logOutput = cmd.ErrOrStderr()
			VerboseLog("Running %q", cmd.CommandPath())
		},
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags: any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Register subcommands. Each subcommand is defined in its own file
	// (presets.go, show.go, export.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewPresetsCommand())
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewExportCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// The process only exits explicitly on failure; on success Execute
// returns normally and main falls off the end with status 0.
func Execute(rootCmd *cobra.Command) {
	if code := run(rootCmd); code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// run executes rootCmd, reports any error on the command's error writer
// and returns the exit code to use. It is separated from Execute so the
// error rendering can be tested without terminating the test binary.
func run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	// Flag parsing errors happen before PersistentPreRun, so make sure
	// verbose output lands next to the error message.
	logOutput = rootCmd.ErrOrStderr()

	code := exitCodeFor(err)
	VerboseLog("exiting with %s (%d)", code, int(code))

	// errors.As finds a CLIError even when a command wrapped it further,
	// so its message and underlying error are reported separately.
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
	} else {
		printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	}
	return code
}

// exitCodeFor maps an error returned by a command to a process exit code.
//
// CLIError types carry their own exit codes. Errors wrapping
// paper.ErrInvalidArgument exit with ExitInvalidArgument; anything else
// exits with ExitGeneralError.
func exitCodeFor(err error) model.ExitCode {
	var cliErr *model.CLIError
	switch {
	case err == nil:
		return model.ExitSuccess
	case errors.As(err, &cliErr):
		return cliErr.Code
	case errors.Is(err, paper.ErrInvalidArgument):
		return model.ExitInvalidArgument
	default:
		return model.ExitGeneralError
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
//
// Errors are written to w, which is the command's stderr, even in JSON
// mode: stdout is reserved for successful command output so that
// `pagesize show --json | jq` never sees an error document.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		// JSON error format: {"error": {"message": ..., "detail": ...}}.
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// json.MarshalIndent produces human-readable JSON with indentation.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	// Text format: "Error: <message>" on stderr.
	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to the command's stderr only when verbose
// mode is enabled. Commands use it for trace output that helps users see
// which page size was resolved and where it was written.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(logOutput, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	// MarshalIndent produces human-readable JSON with 2-space indentation,
	// matching the payload written by pagefile.Marshal.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
