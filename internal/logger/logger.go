// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-appium-service application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"bytes"
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "appium-service", "launcher") writing JSON to os.Stderr.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
//
// Stdout is left to the command line tool's own output.
func NewLogger(role string) *Logger {
	return newLogger(os.Stderr, role)
}

// NewConsoleLogger is like NewLogger but writes human readable output,
// for interactive use of the command line tool.
func NewConsoleLogger(role string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithMinLevel returns a child logger that only emits entries at or above
// level. An empty level leaves the logger unchanged; an unknown level is
// reported as an error together with the unchanged logger.
func (l *Logger) WithMinLevel(level string) (*Logger, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return l, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return l, err
	}

	return &Logger{l.Level(lvl)}, nil
}

// Writer returns an io.Writer that logs every line written to it at the
// given level, tagged with a "stream" field, e.g. to forward the output of
// a child process.
func (l *Logger) Writer(level zerolog.Level, stream string) io.Writer {
	return &lineWriter{logger: l, level: level, stream: stream}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// lineWriter splits its input into lines and logs each non-empty one.
// A trailing partial line is buffered until the next write.
type lineWriter struct {
	logger  *Logger
	level   zerolog.Level
	stream  string
	pending []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimRight(string(w.pending[:i]), "\r")
		w.pending = w.pending[i+1:]
		if strings.TrimSpace(line) == "" {
			continue
		}
		w.logger.Logger.WithLevel(w.level).Str("stream", w.stream).Msg(line)
	}
	return len(p), nil
}
