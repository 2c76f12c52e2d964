package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

type tagRepo struct {
	tx *sql.Tx
}

func (r *tagRepo) GetByName(name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.tx.QueryRow(`SELECT tag_id, name FROM Tags WHERE name = ?`, name).
		Scan(&tag.ID, &tag.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query tag %q: %w", name, err)
	}
	return &tag, nil
}

func (r *tagRepo) Create(name string) (int, error) {
	res, err := r.tx.Exec(`INSERT INTO Tags (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("insert tag %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("tag insert id: %w", err)
	}
	return int(id), nil
}

func (r *tagRepo) Assign(taskID, tagID int) error {
	_, err := r.tx.Exec(`
		INSERT INTO TaskTags (task_id, tag_id) VALUES (?, ?)
		ON CONFLICT(task_id, tag_id) DO NOTHING`, taskID, tagID)
	if err != nil {
		return fmt.Errorf("assign tag %d to task %d: %w", tagID, taskID, err)
	}
	return nil
}

func (r *tagRepo) ListForTask(taskID int) ([]string, error) {
	rows, err := r.tx.Query(`
		SELECT t.name FROM Tags t
		JOIN TaskTags tt ON tt.tag_id = t.tag_id
		WHERE tt.task_id = ? ORDER BY t.name`, taskID)
	if err != nil {
		return nil, fmt.Errorf("list tags for task %d: %w", taskID, err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return names, nil
}
