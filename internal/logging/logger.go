// Package logging builds the zap loggers used by the CLI.
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "warn"

// New constructs a console logger writing to w. An empty or invalid level
// falls back to warn.
func New(level string, w io.Writer) *zap.Logger {
	atom := zap.NewAtomicLevel()
	if err := atom.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil || level == "" {
		_ = atom.UnmarshalText([]byte(defaultLevel))
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "",
		NameKey:        "logger",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		atom,
	)
	return zap.New(core)
}

// Level maps the verbose flag and an explicit level to a level name.
// An explicit level wins.
func Level(verbose bool, explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	if verbose {
		return "debug"
	}
	return defaultLevel
}
