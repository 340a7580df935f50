// Package mssql applies generated DDL to Microsoft SQL Server using the
// go-mssqldb driver. The DSN is validated with msdsn before dialing so
// obvious mistakes fail fast.
package mssql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"

	"jsonddl/internal/storage"
)

// init registers the "mssql" backend with the factory.
func init() {
	storage.Register("mssql", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		return NewRepository(ctx, Config{DSN: cfg.DSN})
	})
}

// Config holds SQL Server connection settings.
type Config struct {
	// DSN is a sqlserver:// URL or ADO-style connection string.
	DSN string
}

// Repository executes statements against a SQL Server connection pool.
type Repository struct {
	db *sql.DB
}

// NewRepository validates the DSN, opens a connection pool, and pings it.
func NewRepository(ctx context.Context, cfg Config) (*Repository, error) {
	if _, err := msdsn.Parse(cfg.DSN); err != nil {
		return nil, fmt.Errorf("mssql: dsn: %w", err)
	}
	db, err := sql.Open("sqlserver", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("mssql: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mssql: ping: %w", err)
	}
	return &Repository{db: db}, nil
}

// Exec runs sql verbatim.
func (r *Repository) Exec(ctx context.Context, sql string) error {
	if _, err := r.db.ExecContext(ctx, sql); err != nil {
		return fmt.Errorf("mssql: exec: %w", err)
	}
	return nil
}

// Close closes the pool.
func (r *Repository) Close() { _ = r.db.Close() }
