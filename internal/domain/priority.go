package domain

import (
	"fmt"
	"strings"
)

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes case-insensitive input to a canonical priority.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

// Display returns the priority capitalized for display.
func (p Priority) Display() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p)[:1]) + string(p)[1:]
}
