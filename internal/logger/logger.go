// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger builds the zap logger used by the CLI and adapts it to the
// plain log callback the processing core reports through.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

// Level is the severity attached to a core log message.
type Level string

const (
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Func receives every notable event of the processing core. Implementations
// must be safe for concurrent use when a monitor and a manual batch run
// share one processor.
type Func func(message string, level Level)

// Nop discards all messages.
func Nop(string, Level) {}

// New builds a zap logger from cfg. Format "json" selects the production
// encoder; anything else selects a human-readable console encoder.
func New(cfg types.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if strings.EqualFold(cfg.Format, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	zc.DisableStacktrace = true

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}

// Sink adapts a zap logger to Func.
func Sink(l *zap.Logger) Func {
	if l == nil {
		return Nop
	}
	return func(message string, level Level) {
		switch level {
		case Error:
			l.Error(message)
		case Warning:
			l.Warn(message)
		default:
			l.Info(message)
		}
	}
}
