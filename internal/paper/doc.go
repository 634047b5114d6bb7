// Package paper defines PageSize, an immutable physical page size used to
// configure print output, together with the standard paper presets.
//
// All dimensions are in centimeters. A PageSize never changes after it has
// been constructed, so values can be shared freely between goroutines.
// The presets (ISOA4, USLegal, ANSITabloid, USLetter) are functions over
// package constants; each call returns a new PageSize.
//
// Dimensions are stored verbatim: the package does not reject negative,
// zero or non-finite values. Whether such a size is printable is left to
// the backend that consumes the ToMap payload.
package paper
