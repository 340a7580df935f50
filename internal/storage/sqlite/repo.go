// Package sqlite applies generated DDL to SQLite via database/sql and the
// pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"jsonddl/internal/storage"
)

// init registers the "sqlite" backend with the factory.
func init() {
	storage.Register("sqlite", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		return NewRepository(ctx, Config{DSN: cfg.DSN})
	})
}

// Config holds SQLite connection settings.
type Config struct {
	// DSN is passed directly to database/sql; for example:
	//
	//	"file:jsonddl.db?cache=shared"
	//	"jsonddl.db"
	DSN string
}

// Repository executes statements against a SQLite database.
type Repository struct {
	db *sql.DB
}

// NewRepository opens the database and pings it to fail fast on invalid DSNs.
func NewRepository(ctx context.Context, cfg Config) (*Repository, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("sqlite: DSN must not be empty")
	}
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return &Repository{db: db}, nil
}

// Exec runs sql verbatim.
func (r *Repository) Exec(ctx context.Context, sql string) error {
	if _, err := r.db.ExecContext(ctx, sql); err != nil {
		return fmt.Errorf("sqlite: exec: %w", err)
	}
	return nil
}

// Close closes the database.
func (r *Repository) Close() { _ = r.db.Close() }
