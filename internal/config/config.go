// Package config reads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
)

var (
	ErrAPIURLNotSet    = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid   = errors.New("environment variable API_URL must be a valid URL")
	ErrLogFormat       = errors.New("LOG_FORMAT must be one of human, json")
	ErrBackendNotKnown = errors.New("STORAGE_BACKEND must be one of sqlite, file, memory")
)

const (
	LogFormatHuman = "human"
	LogFormatJSON  = "json"
)

// Config is the server configuration.
type Config struct {
	GinMode          string   // gin mode, "release" unless set
	LogFormat        string   // human or json, empty means the default for the gin mode
	APIURL           *url.URL // External URL of the API, used for links and swagger
	CORSAllowOrigins []string // Unset disables CORS handling
	EnablePprof      bool
	StorageBackend   string
	DataDir          string
	CurrencyMarker   string
	ListenAddress    string // Address the HTTP server listens on
}

// Load reads a .env file if there is one, then the environment.
func Load() (Config, error) {
	// A missing .env file is fine, the environment may be set otherwise
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv reads the configuration from the environment and validates it.
func FromEnv() (Config, error) {
	c := Config{
		GinMode:        getEnv("GIN_MODE", "release"),
		LogFormat:      os.Getenv("LOG_FORMAT"),
		EnablePprof:    os.Getenv("ENABLE_PPROF") == "true",
		StorageBackend: getEnv("STORAGE_BACKEND", database.BackendSQLite),
		DataDir:        getEnv("DATA_DIR", "data"),
		CurrencyMarker: os.Getenv("CURRENCY_MARKER"),
		ListenAddress:  ":" + getEnv("PORT", "8080"),
	}

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		c.CORSAllowOrigins = strings.Fields(origins)
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		return c, ErrAPIURLNotSet
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return c, fmt.Errorf("%w: %q", ErrAPIURLInvalid, apiURL)
	}
	c.APIURL = u

	return c, c.Validate()
}

// Validate checks the values that FromEnv cannot check while parsing.
func (c Config) Validate() error {
	if c.LogFormat != "" && c.LogFormat != LogFormatHuman && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w, got %q", ErrLogFormat, c.LogFormat)
	}

	if !slices.Contains(database.Backends, c.StorageBackend) {
		return fmt.Errorf("%w, got %q", ErrBackendNotKnown, c.StorageBackend)
	}

	return nil
}

// HumanLogs reports whether logs are written for humans. That is the case
// when requested explicitly, or in debug mode without an explicit format.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}
	return c.LogFormat == LogFormatHuman
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
