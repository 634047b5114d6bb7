package pagefile

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/pagesize/internal/paper"
)

// Format selects the serialization used by Marshal.
type Format string

const (
	// FormatJSON writes indented JSON.
	FormatJSON Format = "json"

	// FormatYAML writes YAML with a generated-file header.
	FormatYAML Format = "yaml"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format is one of the supported formats.
func (f Format) IsValid() bool {
	return f == FormatJSON || f == FormatYAML
}

// ParseFormat converts a string to a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: invalid output format %q (valid: json, yaml)", paper.ErrInvalidArgument, s)
	}
	return f, nil
}

// yamlHeader is prepended to YAML output so the file is recognizable as
// generated.
const yamlHeader = "# Generated by pagesize (dimensions in centimeters)\n"

// isFinite reports whether both dimensions of p are neither NaN nor
// infinite.
func isFinite(p *paper.PageSize) bool {
	for _, v := range []float64{p.Height(), p.Width()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Marshal serializes the ToMap payload of p in the given format.
// Output written in either format can be read back with Load.
//
// JSON has no representation for NaN or infinity, so such sizes are
// rejected with paper.ErrInvalidArgument in FormatJSON. YAML writes them
// as .nan and .inf.
func Marshal(p *paper.PageSize, format Format) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: page size cannot be nil", paper.ErrInvalidArgument)
	}

	switch format {
	case FormatJSON:
		if !isFinite(p) {
			return nil, fmt.Errorf("%w: %s has a non-finite dimension, which JSON cannot represent (use yaml)",
				paper.ErrInvalidArgument, p)
		}
		data, err := json.MarshalIndent(p.ToMap(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize page size JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(p.ToMap())
		if err != nil {
			return nil, fmt.Errorf("failed to serialize page size YAML: %w", err)
		}
		return append([]byte(yamlHeader), data...), nil
	default:
		return nil, fmt.Errorf("%w: invalid output format %q (valid: json, yaml)", paper.ErrInvalidArgument, format)
	}
}
