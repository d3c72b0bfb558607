package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// encodeIndent matches the layout of task files written by earlier releases.
const encodeIndent = "    "

// naiveTimestampLayout reads ISO-8601 timestamps that carry no zone.
// Fractional seconds are accepted after the seconds field when parsing.
const naiveTimestampLayout = "2006-01-02T15:04:05"

type taskRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// legacyTaskRecord also captures "updateAt", the key older files used.
type legacyTaskRecord struct {
	taskRecord
	LegacyUpdatedAt string `json:"updateAt"`
}

// MarshalJSON writes the task with RFC 3339 timestamps.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskRecord{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   FormatTimestamp(t.CreatedAt),
		UpdatedAt:   FormatTimestamp(t.UpdatedAt),
	})
}

// UnmarshalJSON reads a task, accepting the legacy "updateAt" key and
// zone-less timestamps.
func (t *Task) UnmarshalJSON(data []byte) error {
	var rec legacyTaskRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	updated := rec.UpdatedAt
	if updated == "" {
		updated = rec.LegacyUpdatedAt
	}

	createdAt, err := ParseTimestamp(rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("task %d createdAt: %w", rec.ID, err)
	}
	updatedAt, err := ParseTimestamp(updated)
	if err != nil {
		return fmt.Errorf("task %d updatedAt: %w", rec.ID, err)
	}

	*t = Task{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Status:      rec.Status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	return nil
}

// EncodeTasks serializes a whole collection. An empty or nil collection
// encodes as an empty array.
func EncodeTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	return json.MarshalIndent(tasks, "", encodeIndent)
}

// DecodeTasks parses a serialized collection.
func DecodeTasks(data []byte) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// FormatTimestamp formats a timestamp the way task files store it.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTimestamp parses an RFC 3339 timestamp, falling back to a zone-less
// ISO-8601 timestamp interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(naiveTimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}
