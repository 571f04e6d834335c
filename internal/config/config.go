// SPDX-License-Identifier: MIT

// Package config loads wgraph CLI settings from a YAML file and the
// environment, and builds the zap logger they describe.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/persist"
)

// Environment variables that override file values.
const (
	EnvLogLevel       = "WGRAPH_LOG_LEVEL"
	EnvLogEncoding    = "WGRAPH_LOG_ENCODING"
	EnvSnapshotFormat = "WGRAPH_SNAPSHOT_FORMAT"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full CLI configuration.
type Config struct {
	Log      Log      `yaml:"log"`
	Snapshot Snapshot `yaml:"snapshot"`
}

// Log selects logger verbosity and output encoding.
type Log struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`
	// Encoding is "console" or "json".
	Encoding string `yaml:"encoding"`
}

// Snapshot holds persistence defaults.
type Snapshot struct {
	// Format is a persist format name; empty means "by extension".
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Encoding: "console"},
	}
}

// Load reads path (if non-empty) over the defaults, then applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
		}
	}
	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogEncoding); ok && v != "" {
		c.Log.Encoding = v
	}
	if v, ok := lookup(EnvSnapshotFormat); ok {
		c.Snapshot.Format = v
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.encoding %q (want console or json)", ErrInvalid, c.Log.Encoding)
	}
	if _, err := c.Snapshot.PersistFormat(); err != nil {
		return fmt.Errorf("%w: snapshot.format: %v", ErrInvalid, err)
	}

	return nil
}

// ZapLevel parses Level.
func (l Log) ZapLevel() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(l.Level))); err != nil {
		return lvl, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}

	return lvl, nil
}

// PersistFormat parses Format.
func (s Snapshot) PersistFormat() (persist.Format, error) {
	return persist.ParseFormat(s.Format)
}
