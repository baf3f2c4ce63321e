package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func init() {
	Register("postgres", newPostgresExecutor)
}

// postgresExecutor runs statements on a Postgres database. Useful for
// development targets and for warehouses speaking the Postgres protocol
// directly.
type postgresExecutor struct {
	pool *pgxpool.Pool
}

func newPostgresExecutor(ctx context.Context, cfg Config) (Executor, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres executor: missing dsn")
	}

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres executor: connect: %w", err)
	}
	return &postgresExecutor{pool: pool}, nil
}

func (p *postgresExecutor) Execute(ctx context.Context, stmt string) (string, error) {
	if _, err := p.pool.Exec(ctx, stmt); err != nil {
		return "", fmt.Errorf("execute: %w", err)
	}
	return "", nil
}

func (p *postgresExecutor) Close() {
	p.pool.Close()
}
