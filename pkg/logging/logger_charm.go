package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// CharmLogger implements Logger on top of charmbracelet/log for
// human-readable terminal output
type CharmLogger struct {
	logger *log.Logger
}

// NewCharmLogger creates a terminal logger writing to w.
// Timestamps are formatted as "HH:MM:SS.ms".
func NewCharmLogger(w io.Writer, level Level) *CharmLogger {
	return &CharmLogger{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           toCharmLevel(level),
		}),
	}
}

func keyvals(fields []Field) []any {
	kv := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

func toCharmLevel(level Level) log.Level {
	switch level {
	case DebugLevel:
		return log.DebugLevel
	case WarnLevel:
		return log.WarnLevel
	case ErrorLevel:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func fromCharmLevel(level log.Level) Level {
	switch level {
	case log.DebugLevel:
		return DebugLevel
	case log.WarnLevel:
		return WarnLevel
	case log.ErrorLevel, log.FatalLevel:
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Debug logs a debug-level message
func (c *CharmLogger) Debug(msg string, fields ...Field) {
	c.logger.Debug(msg, keyvals(fields)...)
}

// Info logs an info-level message
func (c *CharmLogger) Info(msg string, fields ...Field) {
	c.logger.Info(msg, keyvals(fields)...)
}

// Warn logs a warning-level message
func (c *CharmLogger) Warn(msg string, fields ...Field) {
	c.logger.Warn(msg, keyvals(fields)...)
}

// Error logs an error-level message
func (c *CharmLogger) Error(msg string, fields ...Field) {
	c.logger.Error(msg, keyvals(fields)...)
}

// With creates a child logger with the given fields pre-set
func (c *CharmLogger) With(fields ...Field) Logger {
	return &CharmLogger{logger: c.logger.With(keyvals(fields)...)}
}

// SetLevel sets the minimum log level
func (c *CharmLogger) SetLevel(level Level) {
	c.logger.SetLevel(toCharmLevel(level))
}

// GetLevel returns the current log level
func (c *CharmLogger) GetLevel() Level {
	return fromCharmLevel(c.logger.GetLevel())
}
