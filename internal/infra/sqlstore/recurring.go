package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nydiokar/Gary/internal/domain"
)

type recurringRepo struct {
	tx *sql.Tx
}

const recurringColumns = `recurring_task_id, template_task_id, interval, next_occurrence`

func scanRecurring(row interface{ Scan(...any) error }) (*domain.RecurringTask, error) {
	var (
		rt       domain.RecurringTask
		interval string
	)
	if err := row.Scan(&rt.ID, &rt.TemplateTaskID, &interval, &rt.NextOccurrence); err != nil {
		return nil, err
	}
	rt.Interval = domain.Interval(interval)
	return &rt, nil
}

func (r *recurringRepo) Get(id int) (*domain.RecurringTask, error) {
	row := r.tx.QueryRow(`SELECT `+recurringColumns+` FROM RecurringTasks WHERE recurring_task_id = ?`, id)
	rt, err := scanRecurring(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query recurring task %d: %w", id, err)
	}
	return rt, nil
}

func (r *recurringRepo) List() ([]*domain.RecurringTask, error) {
	rows, err := r.tx.Query(`SELECT ` + recurringColumns + ` FROM RecurringTasks ORDER BY recurring_task_id`)
	if err != nil {
		return nil, fmt.Errorf("list recurring tasks: %w", err)
	}
	return collectRecurring(rows)
}

func (r *recurringRepo) ListDue(now time.Time) ([]*domain.RecurringTask, error) {
	rows, err := r.tx.Query(`
		SELECT `+recurringColumns+` FROM RecurringTasks
		WHERE next_occurrence <= ?
		ORDER BY recurring_task_id`, utc(now))
	if err != nil {
		return nil, fmt.Errorf("list due recurring tasks: %w", err)
	}
	return collectRecurring(rows)
}

func collectRecurring(rows *sql.Rows) ([]*domain.RecurringTask, error) {
	defer func() { _ = rows.Close() }()

	var rts []*domain.RecurringTask
	for rows.Next() {
		rt, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recurring task: %w", err)
		}
		rts = append(rts, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recurring tasks: %w", err)
	}
	return rts, nil
}

func (r *recurringRepo) Create(rt *domain.RecurringTask) (int, error) {
	res, err := r.tx.Exec(`
		INSERT INTO RecurringTasks (template_task_id, interval, next_occurrence)
		VALUES (?, ?, ?)`,
		rt.TemplateTaskID, string(rt.Interval), utc(rt.NextOccurrence))
	if err != nil {
		return 0, fmt.Errorf("insert recurring task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("recurring task insert id: %w", err)
	}
	return int(id), nil
}

func (r *recurringRepo) UpdateNextOccurrence(id int, next time.Time) error {
	res, err := r.tx.Exec(`UPDATE RecurringTasks SET next_occurrence = ? WHERE recurring_task_id = ?`, utc(next), id)
	if err != nil {
		return fmt.Errorf("advance recurring task %d: %w", id, err)
	}
	return requireRow(res, domain.ErrRecurringNotFound)
}
