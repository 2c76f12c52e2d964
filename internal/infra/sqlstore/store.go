// Package sqlstore implements the persistent store on SQLite.
// All entity state lives in eight relations; repositories are bound to a
// single transaction so a mutation and its audit entry commit together.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/nydiokar/Gary/internal/domain"
)

// Ensure Store implements the domain ports.
var (
	_ domain.Store            = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)

// Store holds the database handle. Transactions are acquired per operation
// via WithTx; nothing outside a transaction mutates entity state.
type Store struct {
	db *sql.DB
}

// New opens (creating if necessary) the SQLite database at path.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite supports one writer; serializing through a single connection
	// avoids SQLITE_BUSY under concurrent use.
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS TaskResponses;`,
	`DROP TABLE IF EXISTS Notifications;`,
	`DROP TABLE IF EXISTS RecurringTasks;`,
	`DROP TABLE IF EXISTS TaskTags;`,
	`DROP TABLE IF EXISTS Tags;`,
	`DROP TABLE IF EXISTS AuditLogs;`,
	`DROP TABLE IF EXISTS Tasks;`,
	`DROP TABLE IF EXISTS Users;`,
}

const schema = `
	CREATE TABLE IF NOT EXISTS Users (
		user_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS Tasks (
		task_id INTEGER PRIMARY KEY AUTOINCREMENT,
		spawn_key TEXT UNIQUE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'low',
		owner TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		deadline DATETIME,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (owner) REFERENCES Users(user_id)
	);

	CREATE TABLE IF NOT EXISTS Tags (
		tag_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS TaskTags (
		task_id INTEGER NOT NULL,
		tag_id INTEGER NOT NULL,
		UNIQUE (task_id, tag_id),
		FOREIGN KEY (task_id) REFERENCES Tasks(task_id),
		FOREIGN KEY (tag_id) REFERENCES Tags(tag_id)
	);

	CREATE TABLE IF NOT EXISTS TaskResponses (
		response_id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id INTEGER NOT NULL,
		user_id TEXT NOT NULL,
		action TEXT NOT NULL,
		response_time DATETIME NOT NULL,
		comments TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (task_id) REFERENCES Tasks(task_id),
		FOREIGN KEY (user_id) REFERENCES Users(user_id)
	);

	CREATE TABLE IF NOT EXISTS Notifications (
		notification_id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id INTEGER,
		recipient TEXT NOT NULL,
		message TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		FOREIGN KEY (recipient) REFERENCES Users(user_id)
	);

	CREATE TABLE IF NOT EXISTS RecurringTasks (
		recurring_task_id INTEGER PRIMARY KEY AUTOINCREMENT,
		template_task_id INTEGER NOT NULL,
		interval TEXT NOT NULL,
		next_occurrence DATETIME NOT NULL,
		FOREIGN KEY (template_task_id) REFERENCES Tasks(task_id)
	);

	CREATE TABLE IF NOT EXISTS AuditLogs (
		log_id INTEGER PRIMARY KEY AUTOINCREMENT,
		entity TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		action TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		performed_by TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_status ON Tasks (status);
	CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON Tasks (deadline);
	CREATE INDEX IF NOT EXISTS idx_tasks_status_deadline ON Tasks (status, deadline);
	CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON Notifications (recipient);
	CREATE INDEX IF NOT EXISTS idx_recurring_next ON RecurringTasks (next_occurrence);
`

// Initialize creates the schema and indexes. With force, all existing
// tables are dropped first.
func (s *Store) Initialize(force bool) error {
	if force {
		for _, stmt := range dropStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("drop tables: %w", err)
			}
		}
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// WithTx runs fn inside a single transaction. The transaction commits when
// fn returns nil and rolls back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx domain.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&storeTx{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// storeTx binds all repositories to one *sql.Tx.
type storeTx struct {
	tx *sql.Tx
}

// utc normalizes a time before it is bound as a query argument. go-sqlite3
// stores time.Time as text carrying its zone offset, and DATETIME columns
// compare as strings; binding mixed zones would compare wall clocks rather
// than instants.
func utc(t time.Time) time.Time { return t.UTC() }

func (t *storeTx) Tasks() domain.TaskRepository                 { return &taskRepo{tx: t.tx} }
func (t *storeTx) Users() domain.UserRepository                 { return &userRepo{tx: t.tx} }
func (t *storeTx) Tags() domain.TagRepository                   { return &tagRepo{tx: t.tx} }
func (t *storeTx) Notifications() domain.NotificationRepository { return &notificationRepo{tx: t.tx} }
func (t *storeTx) Recurring() domain.RecurringTaskRepository    { return &recurringRepo{tx: t.tx} }
func (t *storeTx) Audits() domain.AuditLogRepository            { return &auditRepo{tx: t.tx} }
