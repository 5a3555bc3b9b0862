package analytics

import (
	"time"

	"minipos/internal/core/apperror"
)

// Period is a relative reporting time window.
type Period string

const (
	// PeriodDay starts at local midnight of the reference moment.
	PeriodDay Period = "day"

	// PeriodWeek is a rolling 7 days back, not calendar-aligned.
	PeriodWeek Period = "week"

	// PeriodMonth is one calendar month back, day-of-month preserved.
	PeriodMonth Period = "month"
)

// ParsePeriod validates a period selector string.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(s), nil
	}
	return "", apperror.NewValidation("unknown period").
		WithDetail("field", "period").
		WithDetail("value", s)
}

// Start computes the window start for the given reference moment.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case PeriodMonth:
		return monthBack(now)
	}
	return now
}

// monthBack returns the same wall-clock moment one calendar month
// earlier. When the previous month is shorter the day-of-month is
// clamped to its last valid day (Mar 31 -> Feb 28/29), rather than the
// normalization overflow time.AddDate would produce.
func monthBack(t time.Time) time.Time {
	y, m, d := t.Date()

	// Day 0 of month m is the last day of month m-1.
	lastDay := time.Date(y, m, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > lastDay {
		d = lastDay
	}

	hh, mm, ss := t.Clock()
	return time.Date(y, m-1, d, hh, mm, ss, t.Nanosecond(), t.Location())
}
