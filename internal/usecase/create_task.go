// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nydiokar/Gary/internal/domain"
)

// CreateTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	Deadline    *time.Time // Deadline (optional)
	Title       string     // Task title (required)
	Description string     // Task description (optional)
	Priority    string     // low / medium / high, case-insensitive
	Owner       string     // Owning user id (must exist)
}

// CreateTaskOutput contains the result of creating a new task.
type CreateTaskOutput struct {
	TaskID int // The ID of the created task
}

// CreateTask is the use case for creating a new task.
type CreateTask struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(store domain.Store, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{store: store, clock: clock, logger: logger}
}

// Execute creates a new task with status Pending and records an audit entry,
// both inside one transaction.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	priority, err := domain.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Owner:       in.Owner,
		Status:      domain.StatusPending,
		Deadline:    in.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var id int
	err = uc.store.WithTx(ctx, func(tx domain.Tx) error {
		owner, err := tx.Users().Get(in.Owner)
		if err != nil {
			return fmt.Errorf("get owner: %w", err)
		}
		if owner == nil {
			return fmt.Errorf("owner %q: %w", in.Owner, domain.ErrUserNotFound)
		}

		id, err = tx.Tasks().Create(task)
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityTasks,
			EntityID:    fmt.Sprintf("%d", id),
			Action:      domain.ActionCreation,
			PerformedBy: in.Owner,
			Timestamp:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("created: %q", in.Title))
	}

	return &CreateTaskOutput{TaskID: id}, nil
}
