package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// LogEntry is one line of JSONLogger output
type LogEntry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// sink serialises writes from a logger and all of its children
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) writeLine(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Write(line)
}

// JSONLogger writes one JSON object per line. Children created with With
// share the parent's writer lock but keep their own level.
type JSONLogger struct {
	out    *sink
	level  atomic.Int32
	fields []Field
}

// NewJSONLogger creates a JSON logger writing entries at level and above
func NewJSONLogger(writer io.Writer, level Level) *JSONLogger {
	l := &JSONLogger{out: &sink{w: writer}}
	l.level.Store(int32(level))
	return l
}

// NewDefaultLogger creates a logger that writes to stderr at INFO level.
// Stdout is left to layout output.
func NewDefaultLogger() *JSONLogger {
	return NewJSONLogger(os.Stderr, InfoLevel)
}

// jsonValue makes a field value encodable. Coordinates and distances can be
// NaN or infinite, which encoding/json rejects, so they are written as text.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Sprint(x)
		}
	case float32:
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Sprint(f)
		}
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return v
}

func (l *JSONLogger) log(level Level, msg string, fields []Field) {
	if level < l.GetLevel() {
		return
	}

	entry := LogEntry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}
	if n := len(l.fields) + len(fields); n > 0 {
		entry.Fields = make(map[string]any, n)
		for _, f := range l.fields {
			entry.Fields[f.Key] = jsonValue(f.Value)
		}
		for _, f := range fields {
			entry.Fields[f.Key] = jsonValue(f.Value)
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		data = fmt.Appendf(nil, `{"level":"ERROR","msg":"unencodable log entry","error":%q}`, err.Error())
	}
	l.out.writeLine(append(data, '\n'))
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

// With returns a child logger. Parent fields come first so a child can
// override a key such as component.
func (l *JSONLogger) With(fields ...Field) Logger {
	child := &JSONLogger{
		out:    l.out,
		fields: append(append(make([]Field, 0, len(l.fields)+len(fields)), l.fields...), fields...),
	}
	child.level.Store(l.level.Load())
	return child
}

func (l *JSONLogger) SetLevel(level Level) { l.level.Store(int32(level)) }
func (l *JSONLogger) GetLevel() Level      { return Level(l.level.Load()) }

var (
	defaultLogger Logger
	once          sync.Once
)

// DefaultLogger returns the process logger. Until SetDefaultLogger is called
// it is a JSON logger on stderr at the LOG_LEVEL level; a LOG_LEVEL it cannot
// parse is reported once and INFO is used.
func DefaultLogger() Logger {
	once.Do(func() {
		raw := os.Getenv("LOG_LEVEL")
		level, err := InfoLevel, error(nil)
		if raw != "" {
			level, err = ParseLevel(raw)
		}
		defaultLogger = NewJSONLogger(os.Stderr, level)
		if err != nil {
			defaultLogger.Warn("ignoring LOG_LEVEL", Error(err))
		}
	})
	return defaultLogger
}

// SetDefaultLogger replaces the process logger
func SetDefaultLogger(logger Logger) {
	// Consume the lazy initializer so a later DefaultLogger call cannot overwrite logger
	once.Do(func() {})
	defaultLogger = logger
}

// ErrorLog logs through the default logger. It is not called Error because
// that name is the error field constructor.
func ErrorLog(msg string, fields ...Field) {
	DefaultLogger().Error(msg, fields...)
}

// With returns a child of the default logger
func With(fields ...Field) Logger {
	return DefaultLogger().With(fields...)
}
