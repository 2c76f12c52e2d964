package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the schema if it doesn't exist.
	// With force, existing tables are dropped first.
	Initialize(force bool) error
}

// Store provides scoped transactions over the persistent store.
// Every mutating operation performs its primary mutation and its audit
// append inside one WithTx call, so the two commit or roll back together.
type Store interface {
	// WithTx runs fn inside a single transaction. The transaction commits
	// when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx exposes the repositories bound to one transaction.
type Tx interface {
	Tasks() TaskRepository
	Users() UserRepository
	Tags() TagRepository
	Notifications() NotificationRepository
	Recurring() RecurringTaskRepository
	Audits() AuditLogRepository
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves all tasks, ordered by ID.
	List() ([]*Task, error)

	// ListOverdue retrieves tasks whose deadline precedes now and whose
	// status is not Completed. Tasks without a deadline are excluded.
	ListOverdue(now time.Time) ([]*Task, error)

	// Create inserts a task and returns the generated ID.
	Create(task *Task) (int, error)

	// CreateSpawned inserts a recurring-engine instance keyed by its spawn
	// key. Returns created=false when the occurrence already exists.
	CreateSpawned(task *Task) (id int, created bool, err error)

	// Update rewrites a task's mutable columns. Returns ErrTaskNotFound
	// if no row was affected.
	Update(task *Task) error

	// Delete removes a task and its responses and tag assignments.
	// Returns ErrTaskNotFound if no row was affected.
	Delete(id int) error

	// AddResponse appends a task response.
	AddResponse(resp *TaskResponse) error

	// ListResponses retrieves responses for a task, oldest first.
	ListResponses(taskID int) ([]*TaskResponse, error)
}

// UserRepository manages user persistence.
type UserRepository interface {
	// Get retrieves a user by ID. Returns nil if not found.
	Get(id string) (*User, error)

	// Create inserts a user.
	Create(user *User) error
}

// TagRepository manages tags and their task assignments.
type TagRepository interface {
	// GetByName retrieves a tag by its unique name. Returns nil if not found.
	GetByName(name string) (*Tag, error)

	// Create inserts a tag and returns the generated ID.
	Create(name string) (int, error)

	// Assign links a tag to a task.
	Assign(taskID, tagID int) error

	// ListForTask retrieves tag names assigned to a task.
	ListForTask(taskID int) ([]string, error)
}

// NotificationRepository manages notification persistence.
type NotificationRepository interface {
	// Add appends a notification.
	Add(n *Notification) error

	// ListFor retrieves notifications for a recipient, most recent first.
	ListFor(recipient string) ([]*Notification, error)
}

// RecurringTaskRepository manages recurring task templates.
type RecurringTaskRepository interface {
	// Get retrieves a recurring task by ID. Returns nil if not found.
	Get(id int) (*RecurringTask, error)

	// List retrieves all recurring tasks, ordered by ID.
	List() ([]*RecurringTask, error)

	// ListDue retrieves recurring tasks with next_occurrence <= now.
	ListDue(now time.Time) ([]*RecurringTask, error)

	// Create inserts a recurring task and returns the generated ID.
	Create(rt *RecurringTask) (int, error)

	// UpdateNextOccurrence advances a template's next occurrence.
	// Returns ErrRecurringNotFound if no row was affected.
	UpdateNextOccurrence(id int, next time.Time) error
}

// AuditLogRepository appends immutable audit records.
type AuditLogRepository interface {
	// Record appends one audit entry.
	Record(entry *AuditLog) error

	// List retrieves all audit entries, oldest first.
	List() ([]*AuditLog, error)
}

// Logger provides leveled logging, optionally scoped to a task.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when the
	// config file does not exist.
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Store     StoreConfig     // [store] settings
	Log       LogConfig       // [log] settings
	Scheduler SchedulerConfig // [scheduler] settings
	Seed      SeedConfig      // [seed] settings
}

// StoreConfig holds store settings from the [store] section.
type StoreConfig struct {
	Path string // SQLite database path
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
	Path  string // Log file path (empty disables file logging)
}

// SchedulerConfig holds scheduler settings from the [scheduler] section.
type SchedulerConfig struct {
	Interval string // Tick interval for the recurring engine, e.g. "1h"
}

// SeedConfig holds seed settings from the [seed] section.
type SeedConfig struct {
	Path string // YAML seed file (empty uses the built-in defaults)
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Store:     StoreConfig{Path: "gary.db"},
		Log:       LogConfig{Level: "info", Path: "gary.log"},
		Scheduler: SchedulerConfig{Interval: "1h"},
	}
}

// SchedulerInterval parses the configured scheduler interval,
// falling back to one hour on bad input.
func (c *Config) SchedulerInterval() time.Duration {
	d, err := time.ParseDuration(c.Scheduler.Interval)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
