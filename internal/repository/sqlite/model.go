package sqlite

import "task-tracker/internal/domain"

// taskRow is a task as stored in the tasks table.
// Position preserves collection order; id is not unique on its own.
type taskRow struct {
	Position    int64
	ID          int64
	Name        string
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// toRow converts a domain task at the given collection position
func toRow(position int, task domain.Task) taskRow {
	return taskRow{
		Position:    int64(position),
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   FormatTimeForDB(task.CreatedAt),
		UpdatedAt:   FormatTimeForDB(task.UpdatedAt),
	}
}

// toDomain converts a stored row back into a domain task
func (r taskRow) toDomain() (domain.Task, error) {
	createdAt, err := ParseTimeFromDB(r.CreatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	updatedAt, err := ParseTimeFromDB(r.UpdatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
