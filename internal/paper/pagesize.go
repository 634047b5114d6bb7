package paper

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned (wrapped) when a page size argument is
// absent or cannot be interpreted.
var ErrInvalidArgument = errors.New("invalid argument")

// Keys of the serialized page size payload.
const (
	KeyHeight = "height"
	KeyWidth  = "width"
)

// PageSize is a physical page size in centimeters.
//
// The zero value is a 0x0 page; use New for the default (ISO A4) size.
type PageSize struct {
	height float64
	width  float64
}

// New returns a page size equal to the ISOA4 preset.
func New() *PageSize {
	return NewPageSize(a4Height, a4Width)
}

// NewPageSize returns a page size with the given height and width, in
// centimeters. The values are not validated.
func NewPageSize(height, width float64) *PageSize {
	return &PageSize{height: height, width: width}
}

// SetPageSize returns a copy of p. The result never aliases p.
// A nil p is rejected with an error wrapping ErrInvalidArgument.
func SetPageSize(p *PageSize) (*PageSize, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: page size cannot be nil", ErrInvalidArgument)
	}
	return NewPageSize(p.height, p.width), nil
}

// Height returns the page height in centimeters.
func (p *PageSize) Height() float64 {
	return p.height
}

// Width returns the page width in centimeters.
func (p *PageSize) Width() float64 {
	return p.width
}

// Equal reports whether p and other have the same dimensions.
// Two nil page sizes are equal.
func (p *PageSize) Equal(other *PageSize) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.height == other.height && p.width == other.width
}

// ToMap returns the page size as a two-entry map with the keys "height"
// and "width", ready to be embedded in a larger request payload.
func (p *PageSize) ToMap() map[string]any {
	return map[string]any{
		KeyHeight: p.height,
		KeyWidth:  p.width,
	}
}

// String returns a diagnostic representation of the form
// "PageSize[width=21, height=29.7]". It is not meant to be parsed.
func (p *PageSize) String() string {
	return fmt.Sprintf("PageSize[width=%v, height=%v]", p.width, p.height)
}

// pageSizeJSON is the wire form of a PageSize. Pointers distinguish a
// missing key from an explicit zero.
type pageSizeJSON struct {
	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
}

// MarshalJSON encodes the ToMap payload.
func (p *PageSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}

// ParseJSON decodes {"height": h, "width": w} into a new page size.
// Both keys are required. Decoding never writes into an existing value,
// so presets cannot be altered through JSON.
func ParseJSON(data []byte) (*PageSize, error) {
	var raw pageSizeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Height == nil || raw.Width == nil {
		return nil, fmt.Errorf("%w: page size requires both %q and %q", ErrInvalidArgument, KeyHeight, KeyWidth)
	}
	return NewPageSize(*raw.Height, *raw.Width), nil
}
