package cli

import (
	"bytes"
	"context"
	"strconv"
	"testing"
	"time"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/services"
)

// mockBusinessAPI implements the BusinessAPI interface over an in-memory slice
type mockBusinessAPI struct {
	tasks   []domain.Task
	exports []api.ExportResult
	err     error
	calls   int
}

// newMockBusinessAPI creates a new mock BusinessAPI instance
func newMockBusinessAPI(tasks ...domain.Task) *mockBusinessAPI {
	return &mockBusinessAPI{tasks: tasks}
}

func (m *mockBusinessAPI) AddTask(ctx context.Context, name, description string) (*domain.Task, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	task := domain.NewTask(domain.NextID(m.tasks), name, description, time.Now().UTC())
	m.tasks = append(m.tasks, task)
	return &task, nil
}

func (m *mockBusinessAPI) ListTasks(ctx context.Context) ([]domain.Task, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Task(nil), m.tasks...), nil
}

func (m *mockBusinessAPI) FirstTaskWithStatus(ctx context.Context, status string) (*services.StatusMatch, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.tasks) == 0 {
		return &services.StatusMatch{CollectionEmpty: true}, nil
	}
	match := &services.StatusMatch{}
	if task, ok := domain.FirstWithStatus(m.tasks, status); ok {
		match.Task = &task
	}
	return match, nil
}

func (m *mockBusinessAPI) UpdateTask(ctx context.Context, rawID, name, description, status string) error {
	m.calls++
	id, err := m.parseID(rawID)
	if err != nil {
		return err
	}
	if m.err != nil {
		return m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i] = m.tasks[i].Apply(name, description, status, time.Now().UTC())
		}
	}
	return nil
}

func (m *mockBusinessAPI) RemoveTask(ctx context.Context, rawID string) (int64, error) {
	m.calls++
	id, err := m.parseID(rawID)
	if err != nil {
		return 0, err
	}
	if m.err != nil {
		return id, m.err
	}
	remaining := domain.WithoutID(m.tasks, id)
	if len(remaining) == len(m.tasks) {
		return id, errors.NewNotFoundError("task", rawID)
	}
	m.tasks = remaining
	return id, nil
}

func (m *mockBusinessAPI) ExportTasks(ctx context.Context, filename, format string) (*api.ExportResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	result := api.ExportResult{Path: filename, Format: format, Count: len(m.tasks)}
	m.exports = append(m.exports, result)
	return &result, nil
}

func (m *mockBusinessAPI) parseID(rawID string) (int64, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", rawID, "must be an integer")
	}
	return id, nil
}

// setupTestAppWithMockBusinessAPI returns an app over the mock and its captured output
func setupTestAppWithMockBusinessAPI(t *testing.T, tasks ...domain.Task) (*App, *mockBusinessAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockBusinessAPI(tasks...)
	app := NewAppWithAPI(mock, nil)
	out := &bytes.Buffer{}
	app.SetOutput(out)
	return app, mock, out
}

func sampleTask(id int64, name, description, status string) domain.Task {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return domain.Task{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      status,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}
