package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

type notificationRepo struct {
	tx *sql.Tx
}

func (r *notificationRepo) Add(n *domain.Notification) error {
	var taskID any
	if n.TaskID != nil {
		taskID = *n.TaskID
	}
	_, err := r.tx.Exec(`
		INSERT INTO Notifications (task_id, recipient, message, timestamp)
		VALUES (?, ?, ?, ?)`,
		taskID, n.Recipient, n.Message, utc(n.Timestamp))
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *notificationRepo) ListFor(recipient string) ([]*domain.Notification, error) {
	rows, err := r.tx.Query(`
		SELECT notification_id, task_id, recipient, message, timestamp
		FROM Notifications WHERE recipient = ?
		ORDER BY timestamp DESC, notification_id DESC`, recipient)
	if err != nil {
		return nil, fmt.Errorf("list notifications for %s: %w", recipient, err)
	}
	defer func() { _ = rows.Close() }()

	var ns []*domain.Notification
	for rows.Next() {
		var (
			n      domain.Notification
			taskID sql.NullInt64
		)
		if err := rows.Scan(&n.ID, &taskID, &n.Recipient, &n.Message, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if taskID.Valid {
			id := int(taskID.Int64)
			n.TaskID = &id
		}
		ns = append(ns, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return ns, nil
}
