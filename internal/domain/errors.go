package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrTagNotFound       = errors.New("tag not found")
	ErrRecurringNotFound = errors.New("recurring task not found")
	ErrUserExists        = errors.New("user already exists")
	ErrTagExists         = errors.New("tag already exists")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidInterval   = errors.New("invalid interval")
	ErrInvalidDeadline   = errors.New("invalid deadline")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrFeedbackTooShort  = errors.New("feedback must be at least 10 words")
	ErrEmptyMessage      = errors.New("message cannot be empty")
)

// IsNotFound reports whether err is one of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTagNotFound) ||
		errors.Is(err, ErrRecurringNotFound)
}

// IsValidation reports whether err is a bad-input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidPriority) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidInterval) ||
		errors.Is(err, ErrInvalidDeadline) ||
		errors.Is(err, ErrFeedbackTooShort) ||
		errors.Is(err, ErrEmptyMessage)
}
