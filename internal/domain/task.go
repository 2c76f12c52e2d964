// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// SystemUser is the user id recorded for actions performed by the system itself.
const SystemUser = "system"

// DeadlineLayout is the wire format for deadlines in commands and seed files.
const DeadlineLayout = "2006-01-02 15:04:05"

// Task represents a unit of work with an owner, priority, deadline and
// lifecycle status.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  // Creation time
	UpdatedAt   time.Time  // Last mutation time, never before CreatedAt
	Deadline    *time.Time // Due time (nil = no deadline)
	SpawnKey    *string    // Occurrence key, set only on recurring-engine instances
	Title       string     // Title (required)
	Description string     // Description (optional)
	Owner       string     // Owning user id
	Priority    Priority   // low / medium / high
	Status      Status     // Current lifecycle status
	ID          int        // Store-generated surrogate key
}

// IsOverdue reports whether the task's deadline has passed and the task is not
// yet completed. A task with no deadline is never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil {
		return false
	}
	return t.Deadline.Before(now) && t.Status != StatusCompleted
}

// DisplayDescription returns the description, or a placeholder when absent.
func (t *Task) DisplayDescription() string {
	if t.Description == "" {
		return "No description provided"
	}
	return t.Description
}

// SpawnKeyFor derives the identifier recorded for a recurring occurrence.
// The key is deterministic per (template, occurrence), so reprocessing the
// same occurrence can never create a second instance.
func SpawnKeyFor(templateID int, occurrence time.Time) string {
	return fmt.Sprintf("rt-%d-%s", templateID, occurrence.UTC().Format(time.RFC3339))
}

// ParseDeadline parses a deadline string in DeadlineLayout.
func ParseDeadline(s string) (time.Time, error) {
	t, err := time.Parse(DeadlineLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (use %q)", ErrInvalidDeadline, s, DeadlineLayout)
	}
	return t, nil
}

// TaskResponse is an append-only record of a user's action on a task.
// Fields are ordered to minimize memory padding.
type TaskResponse struct {
	Time     time.Time // Response time
	UserID   string    // Responding user
	Action   string    // Status the response produced (e.g. "Accepted")
	Comments string    // Free-text comments
	TaskID   int       // Task the response belongs to
	ID       int       // Store-generated surrogate key
}
