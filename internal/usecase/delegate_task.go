package usecase

import (
	"context"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

// DelegateTaskInput contains the parameters for delegating a task.
type DelegateTaskInput struct {
	NewOwner    string // User id the task is reassigned to (must exist)
	PerformedBy string // Acting user id (defaults to the system user)
	TaskID      int    // Task to delegate
}

// DelegateTaskOutput contains the delegated task.
type DelegateTaskOutput struct {
	Task *domain.Task
}

// DelegateTask is the use case for reassigning a task to another owner.
// Delegation moves the task to In Progress through the transition table;
// a task already in progress keeps its status.
type DelegateTask struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewDelegateTask creates a new DelegateTask use case.
func NewDelegateTask(store domain.Store, clock domain.Clock, logger domain.Logger) *DelegateTask {
	return &DelegateTask{store: store, clock: clock, logger: logger}
}

// Execute reassigns the task, notifies the new owner and records an audit
// entry, all in one transaction.
func (uc *DelegateTask) Execute(ctx context.Context, in DelegateTaskInput) (*DelegateTaskOutput, error) {
	performedBy := in.PerformedBy
	if performedBy == "" {
		performedBy = domain.SystemUser
	}

	var task *domain.Task
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		var err error
		task, err = tx.Tasks().Get(in.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task == nil {
			return fmt.Errorf("task %d: %w", in.TaskID, domain.ErrTaskNotFound)
		}

		owner, err := tx.Users().Get(in.NewOwner)
		if err != nil {
			return fmt.Errorf("get new owner: %w", err)
		}
		if owner == nil {
			return fmt.Errorf("new owner %q: %w", in.NewOwner, domain.ErrUserNotFound)
		}

		if task.Status != domain.StatusInProgress {
			if !task.Status.CanTransitionTo(domain.StatusInProgress) {
				return fmt.Errorf("cannot delegate task %d in %s status: %w",
					in.TaskID, task.Status, domain.ErrInvalidTransition)
			}
			task.Status = domain.StatusInProgress
		}

		now := uc.clock.Now()
		task.Owner = in.NewOwner
		task.UpdatedAt = now
		if err := tx.Tasks().Update(task); err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		if err := tx.Notifications().Add(&domain.Notification{
			TaskID:    &task.ID,
			Recipient: in.NewOwner,
			Message:   fmt.Sprintf("Task %d has been delegated to you.", task.ID),
			Timestamp: now,
		}); err != nil {
			return fmt.Errorf("notify new owner: %w", err)
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityTasks,
			EntityID:    fmt.Sprintf("%d", in.TaskID),
			Action:      domain.ActionDelegated,
			PerformedBy: performedBy,
			Timestamp:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("delegated to %s", in.NewOwner))
	}

	return &DelegateTaskOutput{Task: task}, nil
}
