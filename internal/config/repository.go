package config

import (
	"context"
	"fmt"
	"io/fs"

	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
	"task-tracker/internal/repository/jsonfile"
	"task-tracker/internal/repository/sqlite"
)

// CreateStore creates the task store selected by the configuration
func CreateStore(ctx context.Context, config *Config) (repository.Store, error) {
	path := config.GetStorePath()
	logging.Debug("opening task store", "backend", config.Store.Backend, "path", path)

	switch config.Store.Backend {
	case BackendJSON:
		store, err := jsonfile.NewWithMode(path, fs.FileMode(config.Store.FileMode))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize json store: %w", err)
		}
		return store, nil
	case BackendSQLite:
		store, err := sqlite.New(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return store, nil
	default:
		return nil, &ConfigError{Field: "store.backend", Message: fmt.Sprintf("unknown backend %q", config.Store.Backend)}
	}
}
