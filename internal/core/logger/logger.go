package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	level        = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init builds the global logger for the environment. An unparseable level
// leaves the environment's default in place.
func Init(environment string, lvl string) error {
	config := newConfig(environment)
	level.SetLevel(config.Level.Level())
	if l, err := zapcore.ParseLevel(lvl); err == nil {
		level.SetLevel(l)
	}
	config.Level = level

	l, err := config.Build(zap.Fields(zap.String("app", "dockyard")))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	globalLogger = l
	return nil
}

// newConfig returns JSON output with ISO8601 times for production and the
// colored console encoder otherwise.
func newConfig(environment string) zap.Config {
	if environment == "production" {
		c := zap.NewProductionConfig()
		c.EncoderConfig.TimeKey = "ts"
		c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return c
	}
	c := zap.NewDevelopmentConfig()
	c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return c
}

// SetLevel changes the level of the running logger.
func SetLevel(lvl string) error {
	l, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", lvl, err)
	}
	level.SetLevel(l)
	return nil
}

// Level reports the current level.
func Level() zapcore.Level {
	return level.Level()
}

// Get returns the global logger, or a no-op logger before Init.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Named returns a child logger tagged with the component name.
func Named(component string) *zap.Logger {
	return Get().Named(component)
}

// Sync flushes buffered entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
