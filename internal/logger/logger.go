package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog with key/value field helpers. A nil *Logger discards
// everything, so components may hold one unconditionally.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that always writes the supplied key/value pairs.
func (l *Logger) With(fields ...any) *Logger {
	if l == nil {
		return nil
	}
	builder := l.base.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		builder = builder.Interface(key, fields[i+1])
	}
	return &Logger{base: builder.Logger()}
}

// Debug writes a debug-level entry if enabled.
func (l *Logger) Debug(msg string, fields ...any) {
	if l == nil {
		return
	}
	write(l.base.Debug(), msg, fields)
}

// Info writes an informational entry.
func (l *Logger) Info(msg string, fields ...any) {
	if l == nil {
		return
	}
	write(l.base.Info(), msg, fields)
}

// Warn writes a warning entry.
func (l *Logger) Warn(msg string, fields ...any) {
	if l == nil {
		return
	}
	write(l.base.Warn(), msg, fields)
}

// Error writes an error entry including err when non-nil.
func (l *Logger) Error(err error, msg string, fields ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	write(event, msg, fields)
}

func write(event *zerolog.Event, msg string, fields []any) {
	if event == nil {
		return
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
