package main

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger builds the application logger at the configured level.
func newLogger(level string) (*zap.Logger, error) {
	zapConfig := zap.NewDevelopmentConfig()

	logLevel := zap.InfoLevel
	if level != "" {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	zapConfig.Level = zap.NewAtomicLevelAt(logLevel)
	zapConfig.DisableStacktrace = true

	return zapConfig.Build()
}
