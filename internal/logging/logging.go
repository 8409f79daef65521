// Package logging builds the zap loggers used by the rfc2org CLI.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging styles accepted by NewLogger.
const (
	StyleTerminal = "terminal"
	StyleJSON     = "json"
	StyleNoop     = "noop"
)

// Sentinel errors for logger construction.
var (
	ErrInvalidStyle = errors.New("invalid logging style")
	ErrInvalidLevel = errors.New("invalid logging level")
)

// NewLogger creates a zap logger for the given level and style. Empty
// values default to an info-level terminal logger; both configured
// styles log to stderr so converted documents on stdout stay clean.
func NewLogger(level, style string) (*zap.Logger, error) {
	logLevel := zapcore.InfoLevel
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
		}
		logLevel = lvl
	}

	if style == "" {
		style = StyleTerminal
	}

	switch style {
	case StyleNoop:
		return zap.NewNop(), nil
	case StyleJSON:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(logLevel)
		return cfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	case StyleTerminal:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(logLevel)
		return cfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	default:
		return nil, fmt.Errorf("%w: %q (must be one of: terminal, json, noop)", ErrInvalidStyle, style)
	}
}
