// SPDX-License-Identifier: MIT

package persist

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects a snapshot encoding.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	// FormatBinary is the compressed, checksummed container.
	FormatBinary
	// FormatJSON is a plain JSON snapshot.
	FormatJSON
	// FormatYAML is a plain YAML snapshot.
	FormatYAML
	// FormatHCL is a hand-written graph definition. Decode only.
	FormatHCL
)

var formatNames = map[Format]string{
	FormatAuto:   "auto",
	FormatBinary: "binary",
	FormatJSON:   "json",
	FormatYAML:   "yaml",
	FormatHCL:    "hcl",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat maps a name ("auto", "binary", "json", "yaml", "yml", "hcl") to a
// Format. The empty string means FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "binary", "bin", "wgraph":
		return FormatBinary, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	}

	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFor infers the format from path's extension. Unknown extensions map to
// FormatBinary.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatBinary
	}
}

// resolve turns FormatAuto into a concrete format for path.
func resolve(f Format, path string) Format {
	if f == FormatAuto {
		return FormatFor(path)
	}

	return f
}
