// Package logger wraps log/slog behind a small interface so handlers,
// services and the CLI share one structured logging surface. Request and
// user identifiers travel in the context and are attached on demand.
package logger

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Level is a log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "info"
}

// ParseLevel reads a level name case-insensitively. "warning" is accepted
// as an alias for warn.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	for lvl, n := range levelNames {
		if n == name {
			return lvl, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Field is one structured key/value attached to a log entry
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field                 { return Field{Key: key, Value: value} }
func Int(key string, value int) Field                { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field        { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field              { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }
func Time(key string, value time.Time) Field         { return Field{Key: key, Value: value} }
func Any(key string, value any) Field                { return Field{Key: key, Value: value} }

// Err records err under the "error" key. A nil error logs as null.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is the logging surface used across the backend
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger that adds fields to every entry
	With(fields ...Field) Logger
	// WithContext returns a child logger carrying the request_id and user_id
	// stored in ctx, if any
	WithContext(ctx context.Context) Logger

	Level() Level
}

// Config controls how New builds a Logger
type Config struct {
	Level     Level
	Format    string // "json" or "text"
	AddSource bool
	// Output defaults to os.Stdout
	Output io.Writer
}

// DefaultConfig logs JSON at info level to stdout
func DefaultConfig() Config {
	return Config{Level: LevelInfo, Format: "json"}
}

var defaultLogger Logger

// SetDefault replaces the process-wide logger
func SetDefault(l Logger) {
	defaultLogger = l
}

// Default returns the process-wide logger, building one from DefaultConfig
// on first use
func Default() Logger {
	if defaultLogger == nil {
		defaultLogger = New(DefaultConfig())
	}
	return defaultLogger
}

func Debug(msg string, fields ...Field) { Default().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Default().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Default().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Default().Error(msg, fields...) }
