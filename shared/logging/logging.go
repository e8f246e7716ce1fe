package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Console builds a console-encoded logger writing to stdout at the given level.
func Console(level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(consoleCore)
}

// Default is the logger decorators report through when none is configured.
func Default() *zap.Logger {
	return Console(zap.InfoLevel)
}

// Nop discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// OrDefault returns logger, or Default when logger is nil.
func OrDefault(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return Default()
	}
	return logger
}

// Sync flushes logger, reporting a failure through the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Debug("failed to sync logger", zap.Error(err))
	}
}
