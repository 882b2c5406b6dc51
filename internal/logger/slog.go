package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type slogLogger struct {
	logger *slog.Logger
	level  Level
}

// NewSlogLogger builds a Logger on log/slog.
func NewSlogLogger(cfg Config) Logger {
	var out io.Writer = os.Stdout
	if cfg.Output != nil {
		out = cfg.Output
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return &slogLogger{logger: slog.New(handler), level: cfg.Level}
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}

func (l *slogLogger) Debug(msg string, fields ...Field) { l.logger.Debug(msg, attrs(fields)...) }
func (l *slogLogger) Info(msg string, fields ...Field)  { l.logger.Info(msg, attrs(fields)...) }
func (l *slogLogger) Warn(msg string, fields ...Field)  { l.logger.Warn(msg, attrs(fields)...) }
func (l *slogLogger) Error(msg string, fields ...Field) { l.logger.Error(msg, attrs(fields)...) }

func (l *slogLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	return &slogLogger{logger: l.logger.With(attrs(fields)...), level: l.level}
}

func (l *slogLogger) WithContext(ctx context.Context) Logger {
	return l.With(contextFields(ctx)...)
}

func (l *slogLogger) Level() Level {
	return l.level
}
