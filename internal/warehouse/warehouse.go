// Package warehouse abstracts the SQL engine the presentation layer is
// built in. The curated views are plain SQL shipped as a script; backends
// only need to run statements, not read results.
package warehouse

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Executor runs one SQL statement against the warehouse. The returned id
// identifies the submitted statement on backends that track executions
// asynchronously; backends without that concept return "".
type Executor interface {
	Execute(ctx context.Context, stmt string) (string, error)
	Close()
}

// Config selects and parameterizes a backend.
type Config struct {
	// Kind is a registered backend kind ("redshift", "postgres", "mssql").
	Kind string

	// Region and Workgroup select the serverless Redshift target; Database
	// names the database on it. Used by the redshift backend only.
	Region    string
	Workgroup string
	Database  string

	// DSN is the connection string for the postgres and mssql backends.
	DSN string
}

type factory func(ctx context.Context, cfg Config) (Executor, error)

var (
	mu        sync.RWMutex
	factories = map[string]factory{}
)

// Register registers a backend factory under a kind. Registering a kind
// twice panics.
func Register(kind string, f factory) {
	mu.Lock()
	defer mu.Unlock()

	if kind == "" {
		panic("warehouse: Register called with empty kind")
	}
	if f == nil {
		panic("warehouse: Register called with nil factory")
	}
	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("warehouse: factory already registered for kind=%q", kind))
	}
	factories[kind] = f
}

// New constructs an Executor for the configured kind.
func New(ctx context.Context, cfg Config) (Executor, error) {
	if cfg.Kind == "" {
		return nil, fmt.Errorf("warehouse: missing kind")
	}

	mu.RLock()
	f := factories[cfg.Kind]
	mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("warehouse: unsupported kind=%q", cfg.Kind)
	}
	return f(ctx, cfg)
}

// SplitStatements splits a SQL script on ";" into trimmed, non-empty
// statements. The curated-view scripts carry no string literals containing
// semicolons, so a plain split holds.
func SplitStatements(script string) []string {
	parts := strings.Split(script, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Logger is the minimal logging surface RunScript needs. *log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// RunScript executes every statement of a script in order, stopping at the
// first failure. Each statement is logged by position and a truncated
// prefix of its text before it runs; the error carries the same reference.
func RunScript(ctx context.Context, e Executor, script string, logger Logger) (int, error) {
	stmts := SplitStatements(script)
	for i, stmt := range stmts {
		logger.Printf("executing statement %d/%d: %s", i+1, len(stmts), truncate(stmt, 200))
		id, err := e.Execute(ctx, stmt)
		if err != nil {
			return i, fmt.Errorf("statement %d/%d (%s): %w", i+1, len(stmts), truncate(stmt, 60), err)
		}
		if id != "" {
			logger.Printf("statement %d/%d submitted as %s", i+1, len(stmts), id)
		}
	}
	return len(stmts), nil
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
