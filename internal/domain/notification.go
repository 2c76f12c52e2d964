package domain

import "time"

// Notification is an append-only message addressed to a user, optionally
// tied to a task.
// Fields are ordered to minimize memory padding.
type Notification struct {
	Timestamp time.Time // When the notification was recorded
	Recipient string    // Addressed user id
	Message   string    // Message text
	TaskID    *int      // Referenced task (nil = general notification)
	ID        int       // Store-generated surrogate key
}

// Tag is a named label tasks can be classified with.
type Tag struct {
	Name string // Unique name
	ID   int    // Store-generated surrogate key
}
