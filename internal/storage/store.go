// Package storage provides the key/value blob stores the timers repository
// persists into. A store knows nothing about timers: it moves named byte
// blobs in and out of a backend and overwrites them whole.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotFound is returned by Get when no blob exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is a named-blob store. Set replaces the previous value entirely.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DatabaseFile is the file name used by Open for the sqlite backend
const DatabaseFile = "timers.db"

// Open returns the store for backend rooted at dir.
// backend is "file" or "sqlite".
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(dir), nil
	case "sqlite":
		return NewSQLiteStore(filepath.Join(dir, DatabaseFile))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
