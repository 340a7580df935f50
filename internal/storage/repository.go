// Package storage defines the storage-agnostic contract used to apply
// generated DDL to a target database, plus a factory registry that concrete
// backends (postgres, mysql, mssql, sqlite) hook into at init time.
//
// The rest of the application depends only on Repository and New; importing
// jsonddl/internal/storage/all (typically blank) makes every built-in backend
// available.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Config selects and configures a backend.
type Config struct {
	// Kind selects the registered backend, e.g. "postgres" or "sqlite".
	Kind string

	// DSN is the backend-specific connection string.
	DSN string
}

// Repository is the minimal surface the DDL apply step needs: execute a
// statement and release the connection.
type Repository interface {
	Exec(ctx context.Context, sql string) error
	Close()
}

// Factory constructs a Repository from a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register installs (or replaces) the factory for kind. Backends call it from
// their init functions.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = f
}

// New opens a Repository for cfg.Kind. Unregistered kinds return an error
// naming the kind so misconfigured pipelines fail loudly.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	f, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported storage.kind=%s", cfg.Kind)
	}
	return f(ctx, cfg)
}

// ListKinds returns the registered backend kinds in sorted order.
func ListKinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
