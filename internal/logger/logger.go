// Package logger is the structured logging layer of the API. Call sites
// depend on the Logger interface; the slog backend lives in slog.go.
package logger

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"time"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel reads a level name case-insensitively. Unknown names fall back
// to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is one structured key/value pair.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err records err under the "error" key. A nil error logs as null.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is implemented by the logging backend.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger that adds fields to every entry.
	With(fields ...Field) Logger
	// WithContext returns a child logger carrying the request and user ids
	// stored in ctx.
	WithContext(ctx context.Context) Logger

	Level() Level
}

// Config selects level, format ("json" or "text") and destination.
type Config struct {
	Level  Level
	Format string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// DefaultConfig logs JSON at info level to stdout.
func DefaultConfig() Config {
	return Config{Level: LevelInfo, Format: "json"}
}

type holder struct{ l Logger }

var defaultLogger atomic.Pointer[holder]

// SetDefault replaces the process-wide logger. serve calls it once at
// startup; tests may swap it to capture output.
func SetDefault(l Logger) {
	defaultLogger.Store(&holder{l: l})
}

// Default returns the process-wide logger, creating a DefaultConfig logger
// on first use.
func Default() Logger {
	if h := defaultLogger.Load(); h != nil {
		return h.l
	}
	l := NewSlogLogger(DefaultConfig())
	if defaultLogger.CompareAndSwap(nil, &holder{l: l}) {
		return l
	}
	return defaultLogger.Load().l
}

func Debug(msg string, fields ...Field) { Default().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Default().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Default().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Default().Error(msg, fields...) }
func With(fields ...Field) Logger       { return Default().With(fields...) }
