// Package cli implements the expense-report command line tool.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/expense-tracker/backend/internal/database"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var ErrUnknownBackend = errors.New("storage_backend must be one of sqlite, file, memory")

// Settings configure where the tool reads expenses from and writes reports to.
type Settings struct {
	StorageBackend string `yaml:"storage_backend"`
	DataDir        string `yaml:"data_dir"`
	CurrencyMarker string `yaml:"currency_marker"` // Text written in front of amounts, e.g. INR
	OutDir         string `yaml:"out_dir"`         // Directory for PDF and XLSX files
}

// DefaultSettings match the defaults of the server.
func DefaultSettings() Settings {
	return Settings{
		StorageBackend: database.BackendSQLite,
		DataDir:        "data",
		OutDir:         ".",
	}
}

// LoadSettings reads a YAML settings file. Keys missing in the file keep
// their default. An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if !slices.Contains(database.Backends, s.StorageBackend) {
		return s, fmt.Errorf("%w, got %q", ErrUnknownBackend, s.StorageBackend)
	}

	return s, nil
}
