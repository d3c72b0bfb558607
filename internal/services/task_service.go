package services

import (
	"context"
	"strconv"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
)

// timeNow is a variable that can be replaced in tests
var timeNow = func() time.Time {
	return time.Now().UTC()
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store repository.Store
}

// NewTaskService creates a new TaskService instance
func NewTaskService(store repository.Store) TaskService {
	return &taskServiceImpl{store: store}
}

// AddTask creates a task with the next id and status "to-do"
func (s *taskServiceImpl) AddTask(ctx context.Context, name, description string) (*domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(domain.NextID(tasks), name, description, timeNow())
	tasks = append(tasks, task)

	if err := s.store.Save(ctx, tasks); err != nil {
		return nil, err
	}

	logging.Debug("task added", "id", task.ID)
	return &task, nil
}

// ListTasks returns the whole collection
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.store.Load(ctx)
}

// FirstByStatus scans in collection order and stops at the first match
func (s *taskServiceImpl) FirstByStatus(ctx context.Context, status string) (*StatusMatch, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return &StatusMatch{CollectionEmpty: true}, nil
	}

	match := &StatusMatch{}
	if task, found := domain.FirstWithStatus(tasks, status); found {
		match.Task = &task
	}
	return match, nil
}

// UpdateTask applies a complete update to every task with id, then saves
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, update TaskUpdate) (bool, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}

	updated := false
	if update.Complete() {
		now := timeNow()
		for i := range tasks {
			if tasks[i].ID == id {
				tasks[i] = tasks[i].Apply(*update.Name, *update.Description, *update.Status, now)
				updated = true
			}
		}
	}

	if err := s.store.Save(ctx, tasks); err != nil {
		return false, err
	}

	logging.Debug("update applied", "id", id, "matched", updated)
	return updated, nil
}

// RemoveTask filters out the task with id and saves only if something changed
func (s *taskServiceImpl) RemoveTask(ctx context.Context, id int64) error {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	remaining := domain.WithoutID(tasks, id)
	if len(remaining) == len(tasks) {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}

	if err := s.store.Save(ctx, remaining); err != nil {
		return err
	}

	logging.Debug("task removed", "id", id, "remaining", len(remaining))
	return nil
}
