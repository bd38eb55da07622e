// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger is the zerolog setup shared by the API server and the
// command-line tools. Handlers pick up the request-scoped logger that the
// request middleware attaches, so every entry carries the request ID.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger; pass it by pointer.
type Logger struct {
	zerolog.Logger
}

// callerFuncName reports the caller as a function name rather than file:line.
func callerFuncName(pc uintptr, _ string, _ int) string {
	return runtime.FuncForPC(pc).Name()
}

// NewLogger returns the JSON logger used by long-running processes. Entries
// go to stdout and carry "role", "time" and "func" fields. It sets zerolog's
// global level to debug, so filtering is left to WithLevel.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = callerFuncName
	zerolog.CallerFieldName = "func"

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewConsoleLogger writes human-readable entries to stderr. Stdout stays
// free for command output such as tokens and hashes.
func NewConsoleLogger(role string) *Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}

	return &Logger{zerolog.New(out).With().Str("role", role).Timestamp().Logger()}
}

// WithLevel drops entries below level. Unknown or empty names return l as is.
func (l *Logger) WithLevel(level string) *Logger {
	if level == "" {
		return l
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return l
	}

	return &Logger{l.Level(lvl)}
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so callers can add fields without touching it.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns a disabled logger when ctx carries none.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
