package paper

import (
	"fmt"
	"strings"
)

// Standard paper dimensions in centimeters.
// Reference: https://www.agooddaytoprint.com/page/paper-size-chart-faq
const (
	a4Height      = 29.7
	a4Width       = 21.0
	legalHeight   = 35.56
	legalWidth    = 21.59
	tabloidHeight = 43.18
	tabloidWidth  = 27.94
	letterHeight  = 27.94
	letterWidth   = 21.59
)

// ISOA4 returns the ISO A4 page size (29.7 x 21.0 cm).
func ISOA4() *PageSize { return NewPageSize(a4Height, a4Width) }

// USLegal returns the US Legal page size (35.56 x 21.59 cm).
func USLegal() *PageSize { return NewPageSize(legalHeight, legalWidth) }

// ANSITabloid returns the ANSI Tabloid page size (43.18 x 27.94 cm).
func ANSITabloid() *PageSize { return NewPageSize(tabloidHeight, tabloidWidth) }

// USLetter returns the US Letter page size (27.94 x 21.59 cm).
func USLetter() *PageSize { return NewPageSize(letterHeight, letterWidth) }

// Preset names accepted by ParsePreset.
const (
	PresetISOA4       = "iso-a4"
	PresetUSLegal     = "us-legal"
	PresetANSITabloid = "ansi-tabloid"
	PresetUSLetter    = "us-letter"
)

// NamedPreset pairs a preset name with its page size.
type NamedPreset struct {
	Name string
	Size *PageSize
}

// presets is ordered; Presets and error messages rely on it.
var presets = []struct {
	name string
	size func() *PageSize
}{
	{PresetISOA4, ISOA4},
	{PresetUSLegal, USLegal},
	{PresetANSITabloid, ANSITabloid},
	{PresetUSLetter, USLetter},
}

// Presets returns the named presets in a stable order. Every call builds
// new page sizes, so the result may be modified freely.
func Presets() []NamedPreset {
	out := make([]NamedPreset, 0, len(presets))
	for _, p := range presets {
		out = append(out, NamedPreset{Name: p.name, Size: p.size()})
	}
	return out
}

// PresetNames returns the preset names in the same order as Presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.name)
	}
	return names
}

// ParsePreset looks up a preset by name, ignoring case, and returns a new
// page size for it.
func ParsePreset(name string) (*PageSize, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if p.name == key {
			return p.size(), nil
		}
	}
	return nil, fmt.Errorf("%w: unknown page size preset %q (valid: %s)",
		ErrInvalidArgument, name, strings.Join(PresetNames(), ", "))
}
