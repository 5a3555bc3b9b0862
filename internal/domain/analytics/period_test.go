package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		p, err := ParsePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, Period(valid), p)
	}

	_, err := ParsePeriod("quarter")
	assert.Error(t, err)
	_, err = ParsePeriod("")
	assert.Error(t, err)
}

func TestPeriodStart_Day(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 42, 7, 0, time.UTC)
	start := PeriodDay.Start(now)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), start)
}

func TestPeriodStart_Week(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 42, 7, 0, time.UTC)
	start := PeriodWeek.Start(now)

	// Rolling 7 days, wall clock preserved.
	assert.Equal(t, time.Date(2026, 8, 22, 15, 42, 7, 0, time.UTC), start)
}

func TestPeriodStart_Month(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	start := PeriodMonth.Start(now)

	assert.Equal(t, time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC), start)
}

func TestPeriodStart_MonthClampsToLastValidDay(t *testing.T) {
	// March 31 has no counterpart in February.
	now := time.Date(2026, 3, 31, 10, 30, 0, 0, time.UTC)
	start := PeriodMonth.Start(now)
	assert.Equal(t, time.Date(2026, 2, 28, 10, 30, 0, 0, time.UTC), start)

	// Leap year February.
	now = time.Date(2028, 3, 31, 10, 30, 0, 0, time.UTC)
	start = PeriodMonth.Start(now)
	assert.Equal(t, time.Date(2028, 2, 29, 10, 30, 0, 0, time.UTC), start)

	// July 31 -> June 30.
	now = time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	start = PeriodMonth.Start(now)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), start)
}

func TestPeriodStart_MonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	start := PeriodMonth.Start(now)

	assert.Equal(t, time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC), start)
}
