// Package jsonfile keeps the task collection in a single JSON document.
package jsonfile

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"task-tracker/internal/domain"
	apperrors "task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

// DefaultFileMode is used when no mode is configured.
const DefaultFileMode fs.FileMode = 0644

// Store reads and writes the collection as one JSON array.
// Every Save rewrites the whole file; a failed write may leave it truncated.
type Store struct {
	path   string
	mode   fs.FileMode
	schema *jsonschema.Schema
}

// New creates a store backed by the file at path. The file need not exist.
func New(path string) (*Store, error) {
	return NewWithMode(path, DefaultFileMode)
}

// NewWithMode creates a store that writes its file with the given permissions.
func NewWithMode(path string, mode fs.FileMode) (*Store, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	return &Store{path: path, mode: mode, schema: schema}, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the collection. A missing file is an empty collection.
func (s *Store) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug("store file absent, starting empty", "path", s.path)
			return []domain.Task{}, nil
		}
		return nil, apperrors.NewIOError("read", s.path, err)
	}

	if err := validateDocument(s.schema, data); err != nil {
		return nil, apperrors.NewParseError(s.path, err)
	}
	tasks, err := domain.DecodeTasks(data)
	if err != nil {
		return nil, apperrors.NewParseError(s.path, err)
	}

	logging.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// Save overwrites the file with the full collection.
func (s *Store) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := domain.EncodeTasks(tasks)
	if err != nil {
		return apperrors.WrapError(err, apperrors.ErrorTypeIO, "encode tasks")
	}
	if err := os.WriteFile(s.path, data, s.mode); err != nil {
		return apperrors.NewIOError("write", s.path, err)
	}

	logging.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

// Close is a no-op; files are opened and released inside Load and Save.
func (s *Store) Close() error {
	return nil
}
