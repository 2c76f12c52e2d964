package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

type auditRepo struct {
	tx *sql.Tx
}

func (r *auditRepo) Record(entry *domain.AuditLog) error {
	_, err := r.tx.Exec(`
		INSERT INTO AuditLogs (entity, entity_id, action, timestamp, performed_by)
		VALUES (?, ?, ?, ?, ?)`,
		entry.Entity, entry.EntityID, entry.Action, utc(entry.Timestamp), entry.PerformedBy)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *auditRepo) List() ([]*domain.AuditLog, error) {
	rows, err := r.tx.Query(`
		SELECT log_id, entity, entity_id, action, timestamp, performed_by
		FROM AuditLogs ORDER BY log_id`)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*domain.AuditLog
	for rows.Next() {
		var e domain.AuditLog
		if err := rows.Scan(&e.ID, &e.Entity, &e.EntityID, &e.Action, &e.Timestamp, &e.PerformedBy); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
