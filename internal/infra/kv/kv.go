// Package kv provides the key/value stores that hold all user state.
package kv

import (
	"context"
	"errors"
	"strings"
)

const (
	EngineMemory = "memory"
	EngineFile   = "file"
	EngineSQLite = "sqlite"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed byte value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all entries atomically.
	SetMany(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// New opens a local store by engine name. Postgres is opened separately
// because it needs a connection pool.
func New(engine, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return NewSQLiteStore(path)
	case EngineFile:
		return NewFileStore(path)
	case EngineMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}
