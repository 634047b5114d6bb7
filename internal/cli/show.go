// Package cli — show.go implements the "pagesize show" command.
//
// The show command prints a single page size: the default (ISO A4), a
// named preset, or a custom size given with --height and --width. Text
// output is the diagnostic string; JSON output is the payload a printing
// backend receives.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/pagesize/internal/model"
	"github.com/shinji-kodama/pagesize/internal/pagefile"
	"github.com/shinji-kodama/pagesize/internal/paper"
)

// showFlags holds the flag values for the show command.
// These are bound to cobra flags in NewShowCommand.
type showFlags struct {
	// height is the custom page height in centimeters.
	// Only used when the --height flag is explicitly set.
	height float64

	// width is the custom page width in centimeters.
	// Only used when the --width flag is explicitly set.
	width float64
}

// NewShowCommand creates the "show" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewShowCommand() *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show [preset]",
		Short: "Show a page size",
		Long: `Show the default page size, a named preset, or a custom size.

Dimensions are not range-checked, so NaN and Inf are accepted. JSON
cannot represent them, however: "--json" fails with an invalid-argument
error for such sizes.

Examples:
  pagesize show
  pagesize show us-letter --json
  pagesize show --height 10.16 --width 15.24`,

		// At most one positional argument: the preset name.
		Args: cobra.MaximumNArgs(1),

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := resolveShowSize(cmd, flags, args)
			if err != nil {
				return err
			}
			VerboseLog("Resolved %s", size)

			if IsJSONOutput() {
				// pagefile.Marshal produces the same payload export writes
				// and rejects dimensions JSON cannot encode.
				data, err := pagefile.Marshal(size, pagefile.FormatJSON)
				if err != nil {
					return model.WrapCLIError(model.ExitInvalidArgument, "cannot show page size as JSON", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), size.String())
			return err
		},
	}

	// Both flags default to 0, so cmd.Flags().Changed is used to tell an
	// explicit "--height 0" from an absent flag.
	cmd.Flags().Float64Var(&flags.height, "height", 0, "Custom page height in centimeters (requires --width)")
	cmd.Flags().Float64Var(&flags.width, "width", 0, "Custom page width in centimeters (requires --height)")

	return cmd
}

// resolveShowSize picks the page size to display from the positional
// preset argument or the dimension flags.
//
// Selection rules:
//   - --height and --width must be given together
//   - a preset argument cannot be combined with dimensions
//   - with neither, the default (ISO A4) size is shown
func resolveShowSize(cmd *cobra.Command, flags *showFlags, args []string) (*paper.PageSize, error) {
	heightSet := cmd.Flags().Changed("height")
	widthSet := cmd.Flags().Changed("width")

	switch {
	case heightSet != widthSet:
		return nil, model.NewCLIError(model.ExitInvalidArgument,
			"--height and --width must be given together")
	case heightSet && len(args) > 0:
		return nil, model.NewCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("preset %q cannot be combined with --height/--width", args[0]))
	case heightSet:
		// Stored verbatim: negative, zero and non-finite values pass.
		return paper.NewPageSize(flags.height, flags.width), nil
	case len(args) > 0:
		size, err := paper.ParsePreset(args[0])
		if err != nil {
			return nil, model.WrapCLIError(model.ExitInvalidArgument, "cannot show page size", err)
		}
		return size, nil
	default:
		return paper.New(), nil
	}
}
