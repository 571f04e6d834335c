// SPDX-License-Identifier: MIT

// Package persist saves and restores core.Graph values.
//
// A graph is captured as a core.Snapshot and written in one of several
// formats:
//
//   - FormatBinary: compact container, magic "WGRF", a version byte, the BLAKE3
//     digest of the payload, then the zstd-compressed JSON snapshot.
//   - FormatJSON and FormatYAML: human-readable snapshots.
//   - FormatHCL: read-only, hand-written definitions (nodes list plus edge blocks).
//
// Save is atomic: data goes to a temporary file in the destination directory
// which is renamed over the target only after a successful write.
// Load is all-or-nothing: the graph is built by core.FromSnapshot and returned
// only when the whole input decoded and validated.
package persist
