package sqlite

import (
	"time"

	"task-tracker/internal/domain"
)

// FormatTimeForDB formats a timestamp exactly as the JSON store does
func FormatTimeForDB(t time.Time) string {
	return domain.FormatTimestamp(t)
}

// ParseTimeFromDB parses a stored timestamp
func ParseTimeFromDB(s string) (time.Time, error) {
	return domain.ParseTimestamp(s)
}
