package services

import (
	"context"

	"task-tracker/internal/domain"
)

// StatusMatch is the outcome of a status lookup.
type StatusMatch struct {
	// CollectionEmpty is set when there were no tasks at all.
	CollectionEmpty bool
	// Task is the first task with the requested status, nil when none matched.
	Task *domain.Task
}

// TaskUpdate carries the fields an update overwrites. The update only
// applies when all three are present.
type TaskUpdate struct {
	Name        *string
	Description *string
	Status      *string
}

// Complete reports whether every field is present.
func (u TaskUpdate) Complete() bool {
	return u.Name != nil && u.Description != nil && u.Status != nil
}

// TaskService handles task lifecycle operations over the stored collection
type TaskService interface {
	// AddTask appends a new to-do task and saves the collection
	AddTask(ctx context.Context, name, description string) (*domain.Task, error)

	// ListTasks returns every task in creation order without saving
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// FirstByStatus returns the first task with exactly the given status
	FirstByStatus(ctx context.Context, status string) (*StatusMatch, error)

	// UpdateTask overwrites name, description and status of the task with id.
	// The collection is saved whether or not a task matched; the boolean
	// reports whether one did.
	UpdateTask(ctx context.Context, id int64, update TaskUpdate) (bool, error)

	// RemoveTask drops every task with id. A NotFound error is returned,
	// and nothing is saved, when no task had that id.
	RemoveTask(ctx context.Context, id int64) error
}

// ExportService writes the collection to a file outside the store
type ExportService interface {
	// Export loads the collection and writes it to path in the given format
	Export(ctx context.Context, path string, format string) (int, error)
}
