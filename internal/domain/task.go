package domain

import "time"

// StatusToDo is the status every new task starts with.
const StatusToDo = "to-do"

// Task represents a single to-do item in the domain model.
// Status is free-form; only StatusToDo has a meaning to the core.
type Task struct {
	ID          int64
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a to-do task stamped with the given creation time.
func NewTask(id int64, name, description string, now time.Time) Task {
	return Task{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      StatusToDo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply overwrites the editable fields and refreshes UpdatedAt.
// ID and CreatedAt are never touched.
func (t Task) Apply(name, description, status string, now time.Time) Task {
	t.Name = name
	t.Description = description
	t.Status = status
	t.UpdatedAt = now
	return t
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
