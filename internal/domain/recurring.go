package domain

import (
	"fmt"
	"strings"
	"time"
)

// Interval represents the recurrence cadence of a recurring task.
type Interval string

const (
	IntervalDaily  Interval = "daily"
	IntervalWeekly Interval = "weekly"

	// IntervalMonthly advances by exactly 30 days, not a calendar month.
	IntervalMonthly Interval = "monthly"
)

// ParseInterval normalizes case-insensitive input to a canonical interval.
func ParseInterval(s string) (Interval, error) {
	switch i := Interval(strings.ToLower(strings.TrimSpace(s))); i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return i, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
}

// Advance returns t moved forward by one interval step.
func (i Interval) Advance(t time.Time) time.Time {
	switch i {
	case IntervalDaily:
		return t.Add(24 * time.Hour)
	case IntervalWeekly:
		return t.Add(7 * 24 * time.Hour)
	case IntervalMonthly:
		return t.Add(30 * 24 * time.Hour)
	default:
		return t
	}
}

// RecurringTask is a template reference plus an interval that periodically
// spawns concrete task instances.
// Fields are ordered to minimize memory padding.
type RecurringTask struct {
	NextOccurrence time.Time // When the next instance is due
	Interval       Interval  // daily / weekly / monthly
	ID             int       // Store-generated surrogate key
	TemplateTaskID int       // Task copied when an occurrence is due
}
