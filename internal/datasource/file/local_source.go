// Package file implements local filesystem helpers used to feed the
// pipeline: a context-aware file source, line-list reading, and JSON
// document discovery.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Local is a filesystem data source that opens a single file from disk.
type Local struct{ path string }

// NewLocal returns a Local data source bound to path. The value is safe for
// concurrent use as long as the underlying location allows concurrent reads.
func NewLocal(path string) *Local { return &Local{path: path} }

// Open opens the configured path for reading.
//
// If ctx is already canceled, Open returns the context error without touching
// the filesystem. Filesystem errors are wrapped with the path while remaining
// transparent to errors.Is checks (e.g. os.ErrNotExist).
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	return f, nil
}
