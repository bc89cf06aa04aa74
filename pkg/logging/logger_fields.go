package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Layout field helpers
func Component(name string) Field {
	return String("component", name)
}

func LayoutID(id string) Field {
	return String("layout_id", id)
}

func Algorithm(name string) Field {
	return String("algorithm", name)
}

func NodeID(id string) Field {
	return String("node_id", id)
}

func NodeCount(n int) Field {
	return Int("nodes", n)
}

func EdgeCount(m int) Field {
	return Int("edges", m)
}

func Violations(n int) Field {
	return Int("violations", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
