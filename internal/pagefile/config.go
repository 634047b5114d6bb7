package pagefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/pagesize/internal/model"
	"github.com/shinji-kodama/pagesize/internal/paper"
)

// RawPageSize is the on-disk shape of a page-size file. Either Preset or
// both Height and Width must be set. Pointers let Resolve tell an absent
// dimension from an explicit zero.
type RawPageSize struct {
	// Preset is a preset name understood by paper.ParsePreset.
	Preset string `json:"preset,omitempty" yaml:"preset,omitempty"`

	// Height is the page height in centimeters.
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`

	// Width is the page width in centimeters.
	Width *float64 `json:"width,omitempty" yaml:"width,omitempty"`
}

// isYAML reports whether path should be decoded as YAML rather than JSONC.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadConfig reads a page-size file and decodes it into a RawPageSize.
//
// Files ending in .yaml or .yml are parsed as YAML; anything else is
// treated as JSONC. Returns a CLIError with ExitFileNotFound if the file
// does not exist and ExitParseError if it cannot be decoded.
func LoadConfig(path string) (*RawPageSize, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitFileNotFound,
				fmt.Sprintf("page size file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read page size file: %w", err)
	}

	var raw RawPageSize
	if isYAML(path) {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(jsonc.ToJSON(data), &raw)
	}
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitParseError,
			fmt.Sprintf("failed to parse page size file %s", path),
			err,
		)
	}

	return &raw, nil
}

// Resolve turns a decoded file into a page size. A preset and explicit
// dimensions are mutually exclusive, and dimensions must come as a pair.
// Magnitudes are passed through unchecked.
func Resolve(raw *RawPageSize) (*paper.PageSize, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: page size definition is empty", paper.ErrInvalidArgument)
	}

	hasDims := raw.Height != nil || raw.Width != nil
	switch {
	case raw.Preset != "" && hasDims:
		return nil, fmt.Errorf("%w: preset %q cannot be combined with height/width",
			paper.ErrInvalidArgument, raw.Preset)
	case raw.Preset != "":
		return paper.ParsePreset(raw.Preset)
	case raw.Height == nil || raw.Width == nil:
		return nil, fmt.Errorf("%w: page size needs a preset or both height and width",
			paper.ErrInvalidArgument)
	default:
		return paper.NewPageSize(*raw.Height, *raw.Width), nil
	}
}

// Load reads the file at path and resolves it to a page size. Resolution
// failures are reported as CLIError with ExitInvalidArgument.
func Load(path string) (*paper.PageSize, error) {
	raw, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	size, err := Resolve(raw)
	if err != nil {
		if errors.Is(err, paper.ErrInvalidArgument) {
			return nil, model.WrapCLIError(model.ExitInvalidArgument,
				fmt.Sprintf("invalid page size in %s", path), err)
		}
		return nil, err
	}
	return size, nil
}
