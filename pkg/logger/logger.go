package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelCritical = slog.Level(12)

	serviceName = "band-practice"
)

type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
	Critical(message string, args ...any)
	// BusinessError records an expected failure (not found, bad input) at
	// warn level. A nil err is ignored.
	BusinessError(message string, err error, args ...any)
	// InternalError records a store or programming failure at error level.
	// A nil err is ignored.
	InternalError(message string, err error, args ...any)
	With(args ...any) Logger
}

type slogLogger struct {
	base *slog.Logger
}

// NewFromEnv reads LOG_LEVEL and LOG_FORMAT. Without LOG_LEVEL the level is
// debug when ENV=development and info otherwise.
func NewFromEnv() Logger {
	development := normalizeValue(os.Getenv("ENV")) == "development"
	level, ok := ParseLevel(os.Getenv("LOG_LEVEL"))
	if !ok {
		level = slog.LevelInfo
		if development {
			level = slog.LevelDebug
		}
	}

	log := New(os.Stdout, level, os.Getenv("LOG_FORMAT"))
	return log.With("service", serviceName)
}

// NewNop returns a logger that drops everything.
func NewNop() Logger {
	return New(io.Discard, LevelCritical+1, "text")
}

// New builds a logger writing to output. Format is "text" or "json";
// anything else means json.
func New(output io.Writer, level slog.Level, format string) Logger {
	options := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	if normalizeValue(format) == "text" {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}

	return &slogLogger{base: slog.New(handler)}
}

// ParseLevel understands the slog names plus "critical" and "fatal". The
// second result is false for an empty or unknown value.
func ParseLevel(value string) (slog.Level, bool) {
	value = normalizeValue(value)
	switch value {
	case "":
		return 0, false
	case "warning":
		return slog.LevelWarn, true
	case "critical", "fatal":
		return LevelCritical, true
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, false
	}
	return level, true
}

func (l *slogLogger) Debug(message string, args ...any) {
	l.base.Debug(message, args...)
}

func (l *slogLogger) Info(message string, args ...any) {
	l.base.Info(message, args...)
}

func (l *slogLogger) Warn(message string, args ...any) {
	l.base.Warn(message, args...)
}

func (l *slogLogger) Error(message string, args ...any) {
	l.base.Error(message, args...)
}

func (l *slogLogger) Critical(message string, args ...any) {
	l.base.Log(context.Background(), LevelCritical, message, args...)
}

func (l *slogLogger) BusinessError(message string, err error, args ...any) {
	l.logError(slog.LevelWarn, message, err, args)
}

func (l *slogLogger) InternalError(message string, err error, args ...any) {
	l.logError(slog.LevelError, message, err, args)
}

func (l *slogLogger) logError(level slog.Level, message string, err error, args []any) {
	if err == nil {
		return
	}
	l.base.Log(context.Background(), level, message, append([]any{"err", err}, args...)...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{base: l.base.With(args...)}
}

func normalizeValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func replaceAttr(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey {
		return attr
	}
	if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelCritical {
		attr.Value = slog.StringValue("CRITICAL")
	}
	return attr
}
