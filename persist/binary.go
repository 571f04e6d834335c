// SPDX-License-Identifier: MIT

package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"lukechampine.com/blake3"

	"github.com/katalvlaran/wgraph/core"
)

// Binary container layout:
//
//	[4 bytes: magic "WGRF"]
//	[1 byte: container version]
//	[32 bytes: BLAKE3-256 of the uncompressed payload]
//	[zstd stream: JSON-encoded core.Snapshot]
const (
	containerMagic   = "WGRF"
	containerVersion = 1
	digestSize       = 32
	headerSize       = len(containerMagic) + 1 + digestSize

	// MaxPayloadSize caps the decompressed payload to guard against zip bombs.
	MaxPayloadSize = 1 << 30
)

func encodeBinary(w io.Writer, snap core.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("persist: marshal snapshot: %w", err)
	}
	digest := blake3.Sum256(payload)

	header := make([]byte, 0, headerSize)
	header = append(header, containerMagic...)
	header = append(header, containerVersion)
	header = append(header, digest[:]...)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("persist: write header: %w", err)
	}

	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("persist: creating zstd encoder: %w", err)
	}
	if _, err := encoder.Write(payload); err != nil {
		encoder.Close()
		return fmt.Errorf("persist: compressing: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("persist: closing encoder: %w", err)
	}

	return nil
}

func decodeBinary(r io.Reader) (core.Snapshot, error) {
	var snap core.Snapshot

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return snap, fmt.Errorf("%w: short header: %v", ErrCorrupt, err)
	}
	if string(header[:len(containerMagic)]) != containerMagic {
		return snap, fmt.Errorf("%w: bad magic %q", ErrCorrupt, header[:len(containerMagic)])
	}
	if v := header[len(containerMagic)]; v != containerVersion {
		return snap, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}
	want := header[len(containerMagic)+1:]

	decoder, err := zstd.NewReader(r)
	if err != nil {
		return snap, fmt.Errorf("persist: creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	payload, err := io.ReadAll(io.LimitReader(decoder, MaxPayloadSize+1))
	if err != nil {
		return snap, fmt.Errorf("%w: decompressing: %v", ErrCorrupt, err)
	}
	if len(payload) > MaxPayloadSize {
		return snap, fmt.Errorf("%w: payload exceeds %d bytes", ErrCorrupt, MaxPayloadSize)
	}

	got := blake3.Sum256(payload)
	if !bytes.Equal(got[:], want) {
		return snap, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}
	if err := json.Unmarshal(payload, &snap); err != nil {
		return snap, fmt.Errorf("%w: parsing payload: %v", ErrCorrupt, err)
	}

	return snap, nil
}
