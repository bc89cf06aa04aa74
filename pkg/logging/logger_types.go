package logging

import (
	"errors"
	"fmt"
	"strings"
)

// Level orders log entries by severity
type Level int

const (
	DebugLevel Level = iota // per-pass enforcer and strategy detail
	InfoLevel               // one entry per completed layout
	WarnLevel               // fallbacks and rescued positions
	ErrorLevel              // failures the caller sees
)

var levelNames = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// ErrUnknownLevel is returned by ParseLevel for names it does not recognise
var ErrUnknownLevel = errors.New("unknown log level")

func (l Level) String() string {
	if l < DebugLevel || l > ErrorLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel reads a level name in any case. "warning" is accepted for warn.
// Unknown names return InfoLevel together with ErrUnknownLevel.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return WarnLevel, nil
	}
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}
	return InfoLevel, fmt.Errorf("%w %q (want debug, info, warn or error)", ErrUnknownLevel, s)
}

// Field is a structured key-value pair attached to an entry
type Field struct {
	Key   string
	Value any
}

// Logger is implemented by JSONLogger, CharmLogger and NopLogger
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child that adds fields to every entry
	With(fields ...Field) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// NopLogger discards everything. Engines built without a logger use it.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (n NopLogger) With(...Field) Logger { return n }
func (NopLogger) SetLevel(Level)         {}
func (NopLogger) GetLevel() Level        { return InfoLevel }

// NewNopLogger returns a NopLogger as a Logger
func NewNopLogger() Logger {
	return NopLogger{}
}
