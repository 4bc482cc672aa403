package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Backends lists the names Open accepts.
var Backends = []string{BackendSQLite, BackendFile, BackendMemory}

var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend is a key-value store for serialized collections.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Open returns the backend with the given name, storing its data in dataDir.
func Open(name, dataDir string) (Backend, error) {
	switch name {
	case BackendSQLite:
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create data directory: %w", err)
		}
		return OpenSQLite(filepath.Join(dataDir, "expenses.db"))
	case BackendFile:
		return OpenFiles(dataDir)
	case BackendMemory:
		return NewMemory(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
