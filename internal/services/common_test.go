package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-tracker/internal/domain"
)

// memoryStore is an in-memory repository.Store that records every save
type memoryStore struct {
	tasks   []domain.Task
	saves   int
	loadErr error
	saveErr error
}

func newMemoryStore(tasks ...domain.Task) *memoryStore {
	return &memoryStore{tasks: tasks}
}

func (m *memoryStore) Load(ctx context.Context) ([]domain.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]domain.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *memoryStore) Save(ctx context.Context, tasks []domain.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.tasks = make([]domain.Task, len(tasks))
	copy(m.tasks, tasks)
	return nil
}

func (m *memoryStore) Close() error {
	return nil
}

var errDisk = errors.New("disk full")

// fixedClock makes timeNow return successive instants one minute apart
func fixedClock(t *testing.T, start time.Time) {
	t.Helper()
	original := timeNow
	current := start
	timeNow = func() time.Time {
		now := current
		current = current.Add(time.Minute)
		return now
	}
	t.Cleanup(func() { timeNow = original })
}

func strPtr(s string) *string {
	return &s
}
