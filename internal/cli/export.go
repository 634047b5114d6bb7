// Package cli — export.go implements the "pagesize export" command.
//
// The export command reads a page-size file (JSONC or YAML), normalizes
// it to the {"height", "width"} payload and writes it as JSON or YAML,
// either to stdout or to the file given with --output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/pagesize/internal/model"
	"github.com/shinji-kodama/pagesize/internal/pagefile"
	"github.com/shinji-kodama/pagesize/internal/paper"
)

// exportFlags holds the flag values for the export command.
// These are bound to cobra flags in NewExportCommand.
type exportFlags struct {
	// format is the output serialization: "json" (default) or "yaml".
	format string

	// output is the destination file. Empty means stdout.
	output string
}

// NewExportCommand creates the "export" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Convert a page size file to a JSON or YAML payload",
		Long: `Read a page size definition and write its height/width payload.

The input file may be JSON with comments or YAML (.yaml/.yml) and names
either a preset or explicit dimensions:

  {"preset": "us-letter"}
  {"height": 29.7, "width": 21.0}

Dimensions are not range-checked. A YAML file may use .inf or .nan, but
such sizes can only be exported with --format yaml; JSON output fails
with an invalid-argument error.

Examples:
  pagesize export label.json
  pagesize export label.yaml --format json --output label.json`,
		// Exactly one positional argument: the input file path.
		Args: cobra.ExactArgs(1),

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, args[0])
		},
	}

	// --format defaults to JSON, the payload shape printing backends expect.
	cmd.Flags().StringVar(&flags.format, "format", string(pagefile.FormatJSON), "Output format: json, yaml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

// runExport is the main logic function for the export command.
// It validates the output format, loads and resolves the input file,
// takes a defensive copy and writes the serialized payload.
func runExport(cmd *cobra.Command, flags *exportFlags, path string) error {
	// Step 1: Validate --format before touching the filesystem.
	format, err := pagefile.ParseFormat(flags.format)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidArgument, "cannot export page size", err)
	}

	// Step 2: Load the file. Load already returns CLIError values with
	// file-not-found, parse or invalid-argument exit codes.
	loaded, err := pagefile.Load(path)
	if err != nil {
		return err
	}
	VerboseLog("Loaded %s from %s", loaded, path)

	// Step 3: Detach from whatever the loader returned before serializing.
	size, err := paper.SetPageSize(loaded)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidArgument, "cannot export page size", err)
	}

	// Step 4: Serialize. Marshal rejects non-finite sizes for JSON.
	data, err := pagefile.Marshal(size, format)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("cannot export %s as %s", path, format), err)
	}

	// Step 5: Write to stdout, or to --output when given.
	if flags.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(flags.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", flags.output, err)
	}
	VerboseLog("Wrote %s payload to %s", format, flags.output)
	return nil
}
