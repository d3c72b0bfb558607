package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ConfigFileEnv points at a TOML config file outside the working directory
const ConfigFileEnv = "TASKS_CONFIG"

// DefaultConfigFile is picked up from the working directory when present
const DefaultConfigFile = "tasks.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithFile makes the loader read the given TOML file instead of searching for one
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if any
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	l.config = NewConfig()

	if path := l.configFile(); path != "" {
		if err := loadConfigFile(l.config, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		ApplyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// configFile returns the TOML file to read, or "" when there is none
func (l *Loader) configFile() string {
	if l.filePath != "" {
		return l.filePath
	}
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return path
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// loadConfigFile decodes a TOML file over the current values
func loadConfigFile(cfg *Config, path string) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StoreDir      *string
	StoreFilename *string
	Backend       *string
	Timeout       *time.Duration
	Verbose       *bool
}

// ApplyOverrides applies command line overrides to the configuration
func ApplyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StoreDir != nil {
		config.Store.Dir = *overrides.StoreDir
	}
	if overrides.StoreFilename != nil {
		config.Store.Filename = *overrides.StoreFilename
	}
	if overrides.Backend != nil {
		config.Store.Backend = *overrides.Backend
	}
	if overrides.Timeout != nil {
		config.Application.Timeout.Duration = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
