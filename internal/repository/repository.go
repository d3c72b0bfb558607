// Package repository defines the persistence boundary for the task collection.
package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// Store loads and saves the complete task collection.
//
// Load returns an empty collection when nothing has been stored yet.
// Save replaces whatever was stored before; there is no partial update.
type Store interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
	Close() error
}
