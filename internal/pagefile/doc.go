// Package pagefile reads and writes page-size definition files for the
// pagesize CLI.
//
// A page-size file names either a preset or explicit dimensions in
// centimeters:
//
//	// JSONC (comments and trailing commas allowed)
//	{ "preset": "us-letter" }
//	{ "height": 29.7, "width": 21.0, }
//
//	# YAML
//	height: 35.56
//	width: 21.59
//
// JSONC is supported via github.com/tidwall/jsonc, which strips comments
// before the standard encoding/json decoder runs. YAML files (.yaml, .yml)
// are decoded with gopkg.in/yaml.v3.
package pagefile
