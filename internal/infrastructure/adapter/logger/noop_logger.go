package logger

import (
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// NoopLogger discards every entry. Tests and tools that run without a log
// sink use it; the level is kept so callers reading it back see what they set.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger returns a discarding logger at info level
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

// With ignores fields; there is nothing to attach them to
func (l *NoopLogger) With(map[string]any) core.Logger { return l }

func (l *NoopLogger) Debug(string, map[string]any) {}

func (l *NoopLogger) Info(string, map[string]any) {}

func (l *NoopLogger) Warn(string, map[string]any) {}

func (l *NoopLogger) Error(string, map[string]any) {}

func (l *NoopLogger) Flush() error { return nil }
