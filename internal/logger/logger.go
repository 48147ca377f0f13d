// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the ledger client and the hosted
// backend.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Request- and pass-scoped loggers travel in context.Context and
// are recovered with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// ClientLogFile is the name of the log file the client writes next to its
// executable.
const ClientLogFile = "ledger.log"

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role, a timestamp and the calling function under the "func" field.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger that appends to [ClientLogFile] next to
// the running binary. Falls back to stdout when the file can't be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stdout

	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), ClientLogFile)
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(out).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithOwner returns a child logger tagged with the remote owner id. An empty
// id is rendered as "guest".
func (l *Logger) WithOwner(ownerID string) *Logger {
	if ownerID == "" {
		ownerID = "guest"
	}
	return &Logger{l.With().Str("owner_id", ownerID).Logger()}
}

// WithContext stores l in ctx so that FromContext can find it downstream.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when none is attached. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
