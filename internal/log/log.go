// Package log provides the audit log of cafeval validations.
// Entries are stored in ~/.cafeval/log/cafeval-log.db and record every
// checked record, self-test run and MCP tool call.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	_, err := validate.Parse(record)
//	log.Event("cli:check", "check").
//		Author(cmd.Author()).
//		Input(record).
//		Write(err)
//
//	log.Event("cli:selftest", "selftest").
//		Detail("cases", res.Total).
//		Detail("passed", res.Passed).
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI commands
// or "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// ErrNotOpen is returned by queries when the log has not been opened.
var ErrNotOpen = errors.New("audit log not open")

// Entry represents a single log entry.
type Entry struct {
	ID     int64  `json:"id,omitempty"`
	Source string `json:"source"`           // e.g., "cli:check", "mcp:cafeval_validate"
	Author string `json:"author,omitempty"` // who performed the action
	Action string `json:"action"`           // check, normalise, selftest
	Input  string `json:"input,omitempty"`  // raw record as given
	Digest string `json:"digest,omitempty"` // blake2b of Input, groups repeated records

	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`          // record accepted / operation succeeded
	Error   string         `json:"error,omitempty"`  // rejection reason
	Detail  map[string]any `json:"detail,omitempty"` // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Input sets the raw record this operation examined.
func (b *Builder) Input(input string) *Builder {
	b.entry.Input = input
	b.entry.Digest = hash(input)
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry, deriving success/failure from err.
// For validations err is the rejection reason, so a nil err means the
// record was accepted.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries, newest first.
func Recent(limit int) ([]Entry, error) {
	return Since(time.Time{}, limit)
}

// Since returns up to limit entries started at or after t, newest first.
func Since(t time.Time, limit int) ([]Entry, error) {
	l, err := current()
	if err != nil {
		return nil, err
	}
	var since int64
	if !t.IsZero() {
		since = t.Unix()
	}
	return l.recent(limit, since)
}

// Prune deletes entries started before t and returns how many were removed.
func Prune(t time.Time) (int64, error) {
	l, err := current()
	if err != nil {
		return 0, err
	}
	return l.prune(t.Unix())
}

func current() (*Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return nil, ErrNotOpen
	}
	return global, nil
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
