package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/expense-tracker/backend/internal/models"
)

var validKey = regexp.MustCompile("^[a-z0-9_-]+$")

var ErrInvalidKey = errors.New("blob keys may only contain lowercase letters, digits, dashes and underscores")

// Files stores each blob as <key>.json in a directory.
type Files struct {
	dir string
}

// OpenFiles creates the directory if needed.
func OpenFiles(dir string) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	return &Files{dir: dir}, nil
}

func (f *Files) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return filepath.Join(f.dir, key+".json"), nil
}

// Get returns the value stored under key.
func (f *Files) Get(_ context.Context, key string) ([]byte, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w blob for key %s", models.ErrResourceNotFound, key)
	}

	return data, err
}

// Put writes the value to a temporary file and renames it into place.
func (f *Files) Put(_ context.Context, key string, value []byte) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Ping checks that the directory is still there.
func (f *Files) Ping(_ context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", f.dir)
	}

	return nil
}

func (f *Files) Close() error {
	return nil
}
