package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rl1809/sale-recorder/internal/port"
)

// Store is the authoritative relational store plus the management surface the
// binaries need (schema creation, raw writes for bulk loading, teardown).
type Store interface {
	port.SaleRepository

	InitSchema(ctx context.Context) error
	Exec(ctx context.Context, query string, args ...interface{}) error
	Driver() string
	Close()
}

// Open connects to the configured store. driver is "mysql" or "postgres".
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "mysql":
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping mysql: %w", err)
		}
		return NewMySQLAdapter(db), nil

	case "postgres":
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return NewPostgresAdapter(pool), nil
	}

	return nil, fmt.Errorf("unsupported store driver: %q", driver)
}
