package postgres_test

import (
	"testing"
	"time"
)

// sqlmockTime is a fixed timestamp for rows that carry a created_at column.
func sqlmockTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
}
