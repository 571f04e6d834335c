// SPDX-License-Identifier: MIT

package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a logger writing to stderr as described by cfg.
func NewLogger(cfg Config) (*zap.Logger, error) {
	return newLogger(cfg, zapcore.Lock(os.Stderr))
}

func newLogger(cfg Config, out zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := cfg.Log.ZapLevel()
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if cfg.Log.Encoding == "json" {
		ec := zap.NewProductionEncoderConfig()
		ec.TimeKey = "ts"
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, out, lvl)), nil
}
