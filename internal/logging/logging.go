// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap logger used for diagnostics. Diagnostics go
// to a separate writer (stderr in the CLI) so stdout carries only the
// document transcript.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/doc-manager/pkg/types"
)

// DefaultLevel keeps diagnostics quiet unless something goes wrong.
const DefaultLevel = "warn"

// New returns a console logger writing to w at the configured level.
func New(cfg types.LogConfig, w io.Writer) (*zap.Logger, error) {
	if w == nil {
		return zap.NewNop(), nil
	}
	lvl := cfg.Level
	if lvl == "" {
		lvl = DefaultLevel
	}
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(lvl)); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", lvl, err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)

	var opts []zap.Option
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}
	return zap.New(core, opts...), nil
}
