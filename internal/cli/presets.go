// Package cli — presets.go implements the "pagesize presets" command.
//
// The presets command lists the named standard page sizes with their
// dimensions in centimeters, as a text table or a JSON document.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/pagesize/internal/paper"
)

// NewPresetsCommand creates the "presets" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named page size presets",
		Long: `List the standard page sizes known to pagesize.

Examples:
  pagesize presets
  pagesize presets --json`,
		// No positional arguments are accepted by the presets command.
		Args: cobra.NoArgs,

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := paper.Presets()
			VerboseLog("Listing %d presets", len(presets))
			return printPresets(cmd.OutOrStdout(), presets)
		},
	}
}

// presetJSON is the JSON output structure for a single preset.
// Dimensions are in centimeters, matching the ToMap payload keys.
type presetJSON struct {
	Name   string  `json:"name"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// printPresets writes the preset list in text or JSON format,
// depending on the global --json flag.
func printPresets(w io.Writer, presets []paper.NamedPreset) error {
	if IsJSONOutput() {
		// The top-level key is "presets". An empty slice (not nil) keeps
		// the output a JSON array even if the list were ever empty.
		result := struct {
			Presets []presetJSON `json:"presets"`
		}{Presets: make([]presetJSON, 0, len(presets))}

		for _, p := range presets {
			result.Presets = append(result.Presets, presetJSON{
				Name:   p.Name,
				Height: p.Size.Height(),
				Width:  p.Size.Width(),
			})
		}
		return writeJSON(w, result)
	}

	// The table format is:
	//
	//	NAME           HEIGHT    WIDTH
	//	iso-a4         29.7      21
	fmt.Fprintf(w, "%-14s %-9s %s\n", "NAME", "HEIGHT", "WIDTH")
	for _, p := range presets {
		fmt.Fprintf(w, "%-14s %-9v %v\n", p.Name, p.Size.Height(), p.Size.Width())
	}
	return nil
}
