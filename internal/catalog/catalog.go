// Package catalog abstracts the metastore that makes bronze and silver
// datasets queryable as external tables. Backends register by kind, same
// wiring as the store package.
package catalog

import (
	"context"
	"fmt"
	"sync"
)

// Formats understood by every backend.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Column is one typed column of a table definition.
type Column struct {
	Name string
	Type string
}

// TableDef describes one external table over a dataset prefix.
type TableDef struct {
	Name     string
	Columns  []Column
	Location string // dataset prefix, e.g. s3://bucket/crm/cust_info/
	Format   string // FormatCSV or FormatParquet
}

// Catalog is the metastore surface the pipeline needs. Both operations are
// idempotent: re-registering converges on the given definition instead of
// failing.
type Catalog interface {
	// EnsureDatabase creates the database if it does not exist.
	EnsureDatabase(ctx context.Context, name string) error

	// ApplyTable creates the table, or replaces its definition when it
	// already exists.
	ApplyTable(ctx context.Context, db string, def TableDef) error

	// Close releases backend resources.
	Close()
}

// Config selects and parameterizes a backend.
type Config struct {
	// Kind is a registered backend kind ("glue", "sqlite").
	Kind string

	// Region is used by the glue backend; ignored elsewhere.
	Region string

	// Path is the database file for the sqlite backend; ignored elsewhere.
	Path string
}

type factory func(ctx context.Context, cfg Config) (Catalog, error)

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
		panic("catalog: Register called with empty kind")
	}
	if f == nil {
		panic("catalog: Register called with nil factory")
	}
	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("catalog: factory already registered for kind=%q", kind))
	}
	factories[kind] = f
}

// New constructs a Catalog for the configured kind.
func New(ctx context.Context, cfg Config) (Catalog, error) {
	if cfg.Kind == "" {
		return nil, fmt.Errorf("catalog: missing kind")
	}

	mu.RLock()
	f := factories[cfg.Kind]
	mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("catalog: unsupported kind=%q", cfg.Kind)
	}
	return f(ctx, cfg)
}

func validate(def TableDef) error {
	if def.Name == "" {
		return fmt.Errorf("catalog: table definition missing name")
	}
	if len(def.Columns) == 0 {
		return fmt.Errorf("catalog: table %s has no columns", def.Name)
	}
	switch def.Format {
	case FormatCSV, FormatParquet:
	default:
		return fmt.Errorf("catalog: table %s has unsupported format %q", def.Name, def.Format)
	}
	return nil
}
