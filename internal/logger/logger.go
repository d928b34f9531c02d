// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and run-scoped helpers used throughout the
// mirror.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and derive run-scoped
// loggers via WithRunID.
package logger

import (
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Options tune the output of a logger built with [New].
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Unknown or empty values fall back to info.
	Level string

	// Console switches from JSON lines to zerolog's human-readable
	// ConsoleWriter.
	Console bool

	// Output is the destination writer. Defaults to os.Stdout.
	Output io.Writer
}

// New constructs a *Logger for the given role label (e.g. "mirror",
// "sync-job").
//
// Every entry carries a "role" field, a "time" timestamp and a "func"
// caller field holding the fully-qualified function name. The global
// zerolog level is set from opts.Level.
func New(role string, opts Options) *Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewFileLogger constructs a *Logger that appends JSON lines to the file at
// path. If the file can't be opened the logger falls back to os.Stdout, so
// the caller always gets a usable logger.
func NewFileLogger(role, path string, opts Options) *Logger {
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout // fallback to stdout if file can't be opened
	}
	opts.Output = logFile

	return New(role, opts)
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithRunID returns a child logger that stamps every entry with run_id.
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{l.With().Str("run_id", runID).Logger()}
}

// Stopwatch starts timing an operation and returns a function that logs the
// elapsed time at debug level when called. Typical use:
//
//	defer log.Stopwatch("list_folder")()
func (l *Logger) Stopwatch(operation string) func() {
	started := time.Now()
	return func() {
		l.Debug().
			Str("operation", operation).
			Dur("elapsed", time.Since(started)).
			Msg("total elapsed time")
	}
}
