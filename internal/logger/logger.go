// Package logger provides diagnostic logging for cafeval on top of zerolog.
//
// Diagnostics are separate from the audit log in internal/log: they go to
// stderr, are human-oriented, and are silent unless --verbose is given or a
// long-running command (serve) needs them. stdout stays reserved for command
// output and MCP JSON-RPC messages.
package logger

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the
// full zerolog API (Debug, Info, Warn, Error) directly on *Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a console logger writing to w at the given level. Every entry
// carries a "role" field (e.g. "cli", "mcp") and a timestamp.
func New(role string, w io.Writer, level zerolog.Level) *Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	l := zerolog.New(out).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{l}
}

// Verbose returns a debug-level logger when verbose is set and a Nop logger
// otherwise.
func Verbose(role string, w io.Writer, verbose bool) *Logger {
	if !verbose {
		return Nop()
	}
	return New(role, w, zerolog.DebugLevel)
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx by WithContext. Without one,
// zerolog hands back a disabled logger, so this never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}
