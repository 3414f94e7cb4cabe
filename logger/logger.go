// Package logger owns the process-wide zap logger.
package logger

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

// L returns the process logger. It is a no-op logger until Init runs.
func L() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Init builds the process logger. Verbose selects a console logger at debug
// level; otherwise JSON at info level.
func Init(verbose bool) error {
	var config zap.Config
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
		config.DisableCaller = true
	}

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Set(l)
	return nil
}

// Set replaces the process logger. Tests use it with zaptest/observer.
func Set(l *zap.Logger) {
	current.Store(l)
}

// Sync flushes buffered entries.
func Sync() {
	_ = L().Sync()
}
