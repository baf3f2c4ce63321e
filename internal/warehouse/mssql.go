package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/microsoft/go-mssqldb"
)

func init() {
	Register("mssql", newMSSQLExecutor)
}

// mssqlExecutor runs statements on a SQL Server database, matching the
// engine the source CRM and ERP systems export from.
type mssqlExecutor struct {
	db *sql.DB
}

func newMSSQLExecutor(_ context.Context, cfg Config) (Executor, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("mssql executor: missing dsn")
	}

	db, err := sql.Open("sqlserver", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("mssql executor: open: %w", err)
	}
	return &mssqlExecutor{db: db}, nil
}

func (m *mssqlExecutor) Execute(ctx context.Context, stmt string) (string, error) {
	if _, err := m.db.ExecContext(ctx, stmt); err != nil {
		return "", fmt.Errorf("execute: %w", err)
	}
	return "", nil
}

func (m *mssqlExecutor) Close() {
	m.db.Close()
}
