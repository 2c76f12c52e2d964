package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nydiokar/Gary/internal/domain"
)

type taskRepo struct {
	tx *sql.Tx
}

const taskColumns = `task_id, spawn_key, title, description, priority, owner, status, deadline, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*domain.Task, error) {
	var (
		t        domain.Task
		spawnKey sql.NullString
		deadline sql.NullTime
		priority string
		status   string
	)
	err := row.Scan(&t.ID, &spawnKey, &t.Title, &t.Description, &priority, &t.Owner, &status, &deadline, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Priority = domain.Priority(priority)
	t.Status = domain.Status(status)
	if spawnKey.Valid {
		t.SpawnKey = &spawnKey.String
	}
	if deadline.Valid {
		d := deadline.Time
		t.Deadline = &d
	}
	return &t, nil
}

func (r *taskRepo) Get(id int) (*domain.Task, error) {
	row := r.tx.QueryRow(`SELECT `+taskColumns+` FROM Tasks WHERE task_id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query task %d: %w", id, err)
	}
	return task, nil
}

func (r *taskRepo) List() ([]*domain.Task, error) {
	rows, err := r.tx.Query(`SELECT ` + taskColumns + ` FROM Tasks ORDER BY task_id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return collectTasks(rows)
}

func (r *taskRepo) ListOverdue(now time.Time) ([]*domain.Task, error) {
	rows, err := r.tx.Query(`
		SELECT `+taskColumns+` FROM Tasks
		WHERE deadline IS NOT NULL AND deadline < ? AND status != ?
		ORDER BY task_id`,
		utc(now), string(domain.StatusCompleted))
	if err != nil {
		return nil, fmt.Errorf("list overdue tasks: %w", err)
	}
	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]*domain.Task, error) {
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepo) Create(task *domain.Task) (int, error) {
	res, err := r.tx.Exec(`
		INSERT INTO Tasks (title, description, priority, owner, status, deadline, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, string(task.Priority), task.Owner,
		string(task.Status), deadlineArg(task.Deadline), utc(task.CreatedAt), utc(task.UpdatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task insert id: %w", err)
	}
	return int(id), nil
}

func (r *taskRepo) CreateSpawned(task *domain.Task) (int, bool, error) {
	if task.SpawnKey == nil {
		return 0, false, errors.New("spawned task requires a spawn key")
	}
	res, err := r.tx.Exec(`
		INSERT INTO Tasks (spawn_key, title, description, priority, owner, status, deadline, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(spawn_key) DO NOTHING`,
		*task.SpawnKey, task.Title, task.Description, string(task.Priority), task.Owner,
		string(task.Status), deadlineArg(task.Deadline), utc(task.CreatedAt), utc(task.UpdatedAt))
	if err != nil {
		return 0, false, fmt.Errorf("insert spawned task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("spawned task rows: %w", err)
	}
	if n == 0 {
		// Occurrence already materialized.
		return 0, false, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("spawned task insert id: %w", err)
	}
	return int(id), true, nil
}

func (r *taskRepo) Update(task *domain.Task) error {
	res, err := r.tx.Exec(`
		UPDATE Tasks
		SET title = ?, description = ?, priority = ?, owner = ?, status = ?, deadline = ?, updated_at = ?
		WHERE task_id = ?`,
		task.Title, task.Description, string(task.Priority), task.Owner,
		string(task.Status), deadlineArg(task.Deadline), utc(task.UpdatedAt), task.ID)
	if err != nil {
		return fmt.Errorf("update task %d: %w", task.ID, err)
	}
	return requireRow(res, domain.ErrTaskNotFound)
}

func (r *taskRepo) Delete(id int) error {
	// Responses and tag assignments go with the task; leaving them behind
	// would orphan rows that nothing can reach.
	if _, err := r.tx.Exec(`DELETE FROM TaskResponses WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("delete task responses: %w", err)
	}
	if _, err := r.tx.Exec(`DELETE FROM TaskTags WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("delete task tags: %w", err)
	}
	res, err := r.tx.Exec(`DELETE FROM Tasks WHERE task_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return requireRow(res, domain.ErrTaskNotFound)
}

func (r *taskRepo) AddResponse(resp *domain.TaskResponse) error {
	_, err := r.tx.Exec(`
		INSERT INTO TaskResponses (task_id, user_id, action, response_time, comments)
		VALUES (?, ?, ?, ?, ?)`,
		resp.TaskID, resp.UserID, resp.Action, utc(resp.Time), resp.Comments)
	if err != nil {
		return fmt.Errorf("insert task response: %w", err)
	}
	return nil
}

func (r *taskRepo) ListResponses(taskID int) ([]*domain.TaskResponse, error) {
	rows, err := r.tx.Query(`
		SELECT response_id, task_id, user_id, action, response_time, comments
		FROM TaskResponses WHERE task_id = ? ORDER BY response_id`, taskID)
	if err != nil {
		return nil, fmt.Errorf("list task responses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var resps []*domain.TaskResponse
	for rows.Next() {
		var resp domain.TaskResponse
		if err := rows.Scan(&resp.ID, &resp.TaskID, &resp.UserID, &resp.Action, &resp.Time, &resp.Comments); err != nil {
			return nil, fmt.Errorf("scan task response: %w", err)
		}
		resps = append(resps, &resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task responses: %w", err)
	}
	return resps, nil
}

func deadlineArg(deadline *time.Time) any {
	if deadline == nil {
		return nil
	}
	return utc(*deadline)
}

// requireRow maps a zero-row mutation to notFound.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
