// SPDX-License-Identifier: MIT

package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors returned by persist.
var (
	// ErrEmptyPath indicates Save or Load was called with an empty file name.
	ErrEmptyPath = errors.New("persist: empty path")

	// ErrNilGraph indicates Save or Encode was given a nil graph.
	ErrNilGraph = errors.New("persist: graph is nil")

	// ErrCorrupt indicates a binary container failed its structural or checksum
	// checks.
	ErrCorrupt = errors.New("persist: corrupt snapshot")

	// ErrUnknownFormat indicates an unrecognised format name or value.
	ErrUnknownFormat = errors.New("persist: unknown format")

	// ErrReadOnlyFormat indicates an attempt to encode into a decode-only format.
	ErrReadOnlyFormat = errors.New("persist: format is read-only")
)

// Encode writes g to w in format f. FormatAuto is treated as FormatBinary.
func Encode(w io.Writer, g *core.Graph, f Format) error {
	if g == nil {
		return ErrNilGraph
	}
	snap := g.Snapshot()

	switch f {
	case FormatAuto, FormatBinary:
		return encodeBinary(w, snap)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}

		return enc.Close()
	case FormatHCL:
		return fmt.Errorf("%w: %s", ErrReadOnlyFormat, f)
	}

	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Decode reads a graph from r in format f. FormatAuto is treated as
// FormatBinary. The returned graph is complete and validated, or nil.
func Decode(r io.Reader, f Format) (*core.Graph, error) {
	var (
		snap core.Snapshot
		err  error
	)
	switch f {
	case FormatAuto, FormatBinary:
		snap, err = decodeBinary(r)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&snap)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&snap)
		if errors.Is(err, io.EOF) {
			// Empty document: an empty graph.
			err = nil
		}
	case FormatHCL:
		return decodeHCL(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("persist: decode %s: %w", f, err)
	}

	return core.FromSnapshot(snap)
}

// readAll drains r; used by decoders that need the whole input at once.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
