package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	task := NewTask(4, "Buy milk", "2L whole milk", now)

	assert.Equal(t, int64(4), task.ID)
	assert.Equal(t, "Buy milk", task.Name)
	assert.Equal(t, "2L whole milk", task.Description)
	assert.Equal(t, StatusToDo, task.Status)
	assert.Equal(t, now, task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestNewTask_AcceptsEmptyFields(t *testing.T) {
	task := NewTask(1, "", "", time.Now())

	assert.Equal(t, "", task.Name)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, StatusToDo, task.Status)
}

func TestTask_Apply(t *testing.T) {
	created := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	later := created.Add(90 * time.Minute)
	original := NewTask(2, "Write report", "Q1 numbers", created)

	updated := original.Apply("Write summary", "Q1 highlights", "done", later)

	assert.Equal(t, int64(2), updated.ID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, "Write summary", updated.Name)
	assert.Equal(t, "Q1 highlights", updated.Description)
	assert.Equal(t, "done", updated.Status)

	// value receiver: the original is untouched
	assert.Equal(t, "Write report", original.Name)
	assert.Equal(t, created, original.UpdatedAt)
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "Buy milk", Task{Name: "Buy milk"}.String())
}
