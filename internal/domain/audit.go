package domain

import "time"

// Audit action names recorded for mutations.
const (
	ActionCreation     = "creation"
	ActionStatusUpdate = "status_update"
	ActionDelegated    = "delegated"
	ActionAccepted     = "accepted"
	ActionVerified     = "verified"
	ActionDeletion     = "deletion"
	ActionTagAssigned  = "tag_assignment"
	ActionNotified     = "notification_sent"
	ActionRecurringAdd = "recurring_task_added"
)

// Audited entity names.
const (
	EntityTasks          = "Tasks"
	EntityUsers          = "Users"
	EntityTags           = "Tags"
	EntityTaskTags       = "TaskTags"
	EntityNotifications  = "Notifications"
	EntityRecurringTasks = "RecurringTasks"
)

// AuditLog is an immutable record of who did what to which entity and when.
// Fields are ordered to minimize memory padding.
type AuditLog struct {
	Timestamp   time.Time // When the action happened
	Entity      string    // Entity kind (EntityTasks, ...)
	EntityID    string    // Identifier of the mutated row
	Action      string    // Action name (ActionCreation, ...)
	PerformedBy string    // User id responsible for the mutation
	ID          int       // Store-generated surrogate key
}
