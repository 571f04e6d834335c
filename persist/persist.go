// SPDX-License-Identifier: MIT

package persist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
)

// Option configures Save and Load.
type Option func(*options)

type options struct {
	format Format
	log    *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{format: FormatAuto, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithFormat forces a format instead of inferring it from the extension.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithLogger attaches a logger. Nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Save writes g to path.
//
// The snapshot is written to a temporary file next to path, synced, and renamed
// over path; on any failure the temporary file is removed and path is left as
// it was.
func Save(path string, g *core.Graph, opts ...Option) (err error) {
	if path == "" {
		return ErrEmptyPath
	}
	if g == nil {
		return ErrNilGraph
	}
	o := newOptions(opts)
	f := resolve(o.format, path)
	if f == FormatHCL {
		return fmt.Errorf("%w: %s", ErrReadOnlyFormat, f)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("persist: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = Encode(bw, g, f); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("persist: flush: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("persist: sync: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("persist: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("persist: rename: %w", err)
	}

	o.log.Debug("graph saved",
		zap.String("path", path),
		zap.Stringer("format", f),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Uint64("revision", g.Revision()),
	)

	return nil
}

// Load reads a graph from path. On error the returned graph is nil; nothing is
// partially constructed.
func Load(path string, opts ...Option) (*core.Graph, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	o := newOptions(opts)
	f := resolve(o.format, path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persist: open: %w", err)
	}
	defer file.Close()

	g, err := Decode(bufio.NewReader(file), f)
	if err != nil {
		return nil, fmt.Errorf("persist: load %s: %w", path, err)
	}

	o.log.Debug("graph loaded",
		zap.String("path", path),
		zap.Stringer("format", f),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Uint64("revision", g.Revision()),
	)

	return g, nil
}
