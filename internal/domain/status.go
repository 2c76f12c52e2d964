package domain

import "fmt"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "Pending"     // Created, awaiting a response
	StatusAccepted   Status = "Accepted"    // Owner accepted the task
	StatusInProgress Status = "In Progress" // Work underway (set by delegation)
	StatusRefused    Status = "Refused"     // Declined, terminal
	StatusCompleted  Status = "Completed"   // Work finished, awaiting verification
	StatusVerified   Status = "Verified"    // Verified with feedback, terminal
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusAccepted,
		StatusInProgress,
		StatusRefused,
		StatusCompleted,
		StatusVerified,
	}
}

// transitions defines the allowed status transitions.
// Flow: Pending → Accepted → In Progress → Completed → Verified,
// with Refused reachable until work is completed.
var transitions = map[Status][]Status{
	StatusPending:    {StatusAccepted, StatusInProgress, StatusRefused},
	StatusAccepted:   {StatusInProgress, StatusCompleted, StatusRefused},
	StatusInProgress: {StatusCompleted, StatusRefused},
	StatusCompleted:  {StatusVerified},
	StatusRefused:    {},
	StatusVerified:   {},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusRefused || s == StatusVerified
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress, StatusRefused, StatusCompleted, StatusVerified:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status name. Matching is exact on the canonical form,
// with "InProgress" accepted as a command-line friendly spelling.
func ParseStatus(s string) (Status, error) {
	if s == "InProgress" {
		return StatusInProgress, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}
