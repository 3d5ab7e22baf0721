// utils/dates_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2024, time.June, 18, 15, 30, 45, 123, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 18, 0, 0, 0, 0, time.UTC), BeginningOfDay(ts))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, time.June, 15, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 18, 1, 0, 0, 0, time.UTC)

	// calendar days, not 24h periods
	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(end, end))
}
