package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"task-tracker/internal/services"
)

// Store backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store filenames used when store.filename is left empty
const (
	DefaultJSONFilename   = "tasks.json"
	DefaultSQLiteFilename = "tasks.db"
)

// Export formats
const (
	FormatJSON = services.FormatJSON
	FormatCSV  = services.FormatCSV
	FormatPDF  = services.FormatPDF
)

// Config holds all configuration options for the task tracker
type Config struct {
	Store       StoreConfig       `toml:"store"`
	Application ApplicationConfig `toml:"application"`
	Export      ExportConfig      `toml:"export"`
}

// StoreConfig holds task store configuration
type StoreConfig struct {
	Dir      string `toml:"dir" env:"TASKS_STORE_DIR"`
	Filename string `toml:"filename" env:"TASKS_STORE_FILENAME"`
	Backend  string `toml:"backend" env:"TASKS_STORE_BACKEND"`
	FileMode uint32 `toml:"file_mode" env:"TASKS_STORE_FILE_MODE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout Duration `toml:"timeout" env:"TASKS_APP_TIMEOUT"`
	Verbose bool     `toml:"verbose" env:"TASKS_APP_VERBOSE"`
}

// ExportConfig holds export command defaults
type ExportConfig struct {
	DefaultFormat string `toml:"default_format" env:"TASKS_EXPORT_FORMAT"`
}

// Duration lets TOML files spell timeouts as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Dir:      ".",
			Backend:  BackendJSON,
			FileMode: 0644,
		},
		Application: ApplicationConfig{
			Timeout: Duration{30 * time.Second},
			Verbose: false,
		},
		Export: ExportConfig{
			DefaultFormat: FormatJSON,
		},
	}
}

// StoreFilename returns the configured filename, or the backend's default
// when none was set
func (c *Config) StoreFilename() string {
	if c.Store.Filename != "" {
		return c.Store.Filename
	}
	if c.Store.Backend == BackendSQLite {
		return DefaultSQLiteFilename
	}
	return DefaultJSONFilename
}

// GetStorePath returns the full path to the task store file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Store.Dir, c.StoreFilename())
}

// GetTimeout returns the per-invocation timeout
func (c *Config) GetTimeout() time.Duration {
	return c.Application.Timeout.Duration
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if dir := os.Getenv("TASKS_STORE_DIR"); dir != "" {
		c.Store.Dir = dir
	}
	if filename := os.Getenv("TASKS_STORE_FILENAME"); filename != "" {
		c.Store.Filename = filename
	}
	if backend := os.Getenv("TASKS_STORE_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}
	if mode := os.Getenv("TASKS_STORE_FILE_MODE"); mode != "" {
		c.Store.FileMode = ParseUint32WithFallback(mode, 8, c.Store.FileMode)
	}

	// Application configuration
	if timeout := os.Getenv("TASKS_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout.Duration = ParseDurationWithFallback(timeout, c.Application.Timeout.Duration)
	}
	if verbose := os.Getenv("TASKS_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if os.Getenv("TASKS_DEBUG") != "" {
		c.Application.Verbose = true
	}

	// Export configuration
	if format := os.Getenv("TASKS_EXPORT_FORMAT"); format != "" {
		c.Export.DefaultFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Store.Dir == "" {
		return &ConfigError{Field: "store.dir", Message: "store directory cannot be empty"}
	}
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return &ConfigError{Field: "store.backend", Message: "backend must be one of json, sqlite"}
	}
	if c.Store.FileMode == 0 || c.Store.FileMode > 0777 {
		return &ConfigError{Field: "store.file_mode", Message: "file mode must be between 0001 and 0777"}
	}

	if c.Application.Timeout.Duration <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if !IsValidExportFormat(c.Export.DefaultFormat) {
		return &ConfigError{Field: "export.default_format", Message: "export format must be one of json, csv, pdf"}
	}

	return nil
}

// IsValidExportFormat reports whether format names a supported export format
func IsValidExportFormat(format string) bool {
	switch format {
	case FormatJSON, FormatCSV, FormatPDF:
		return true
	}
	return false
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
