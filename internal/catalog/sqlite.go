package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

func init() {
	Register("sqlite", newSQLiteCatalog)
}

// sqliteCatalog keeps table definitions in a local SQLite file. It stands in
// for Glue during development runs so the whole pipeline works offline.
type sqliteCatalog struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS databases (
	name TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS tables (
	db       TEXT NOT NULL,
	name     TEXT NOT NULL,
	location TEXT NOT NULL,
	format   TEXT NOT NULL,
	columns  TEXT NOT NULL,
	PRIMARY KEY (db, name)
);`

func newSQLiteCatalog(ctx context.Context, cfg Config) (Catalog, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite catalog: missing path")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite catalog: open %s: %w", cfg.Path, err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite catalog: init schema: %w", err)
	}
	return &sqliteCatalog{db: db}, nil
}

func (c *sqliteCatalog) EnsureDatabase(ctx context.Context, name string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO databases (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("ensure database %s: %w", name, err)
	}
	return nil
}

func (c *sqliteCatalog) ApplyTable(ctx context.Context, db string, def TableDef) error {
	if err := validate(def); err != nil {
		return err
	}

	cols, err := json.Marshal(def.Columns)
	if err != nil {
		return fmt.Errorf("encode columns for %s: %w", def.Name, err)
	}

	_, err = c.db.ExecContext(ctx, `
INSERT INTO tables (db, name, location, format, columns)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (db, name) DO UPDATE SET
	location = excluded.location,
	format   = excluded.format,
	columns  = excluded.columns`,
		db, def.Name, def.Location, def.Format, string(cols))
	if err != nil {
		return fmt.Errorf("apply table %s.%s: %w", db, def.Name, err)
	}
	return nil
}

func (c *sqliteCatalog) Close() {
	c.db.Close()
}

// lookupTable reads a stored definition back; used by tests.
func (c *sqliteCatalog) lookupTable(ctx context.Context, db, name string) (TableDef, error) {
	var def TableDef
	var cols string

	row := c.db.QueryRowContext(ctx,
		`SELECT name, location, format, columns FROM tables WHERE db = ? AND name = ?`, db, name)
	if err := row.Scan(&def.Name, &def.Location, &def.Format, &cols); err != nil {
		return TableDef{}, fmt.Errorf("lookup table %s.%s: %w", db, name, err)
	}
	if err := json.Unmarshal([]byte(cols), &def.Columns); err != nil {
		return TableDef{}, fmt.Errorf("decode columns for %s.%s: %w", db, name, err)
	}
	return def, nil
}
