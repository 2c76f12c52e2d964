package usecase

import (
	"context"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

// UpdateStatusInput contains the parameters for a status change.
// Fields are ordered to minimize memory padding.
type UpdateStatusInput struct {
	Status      string // Target status name
	PerformedBy string // Acting user id (defaults to the system user)
	TaskID      int    // Task to update
	Force       bool   // Administrative override of the transition table
}

// UpdateStatusOutput contains the updated task.
type UpdateStatusOutput struct {
	Task *domain.Task
}

// UpdateStatus is the use case for changing a task's status. Transitions
// route through the status table; Force bypasses it for administrative
// correction.
type UpdateStatus struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewUpdateStatus creates a new UpdateStatus use case.
func NewUpdateStatus(store domain.Store, clock domain.Clock, logger domain.Logger) *UpdateStatus {
	return &UpdateStatus{store: store, clock: clock, logger: logger}
}

// Execute applies the status change and records an audit entry in one
// transaction.
func (uc *UpdateStatus) Execute(ctx context.Context, in UpdateStatusInput) (*UpdateStatusOutput, error) {
	target, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	performedBy := in.PerformedBy
	if performedBy == "" {
		performedBy = domain.SystemUser
	}

	var task *domain.Task
	err = uc.store.WithTx(ctx, func(tx domain.Tx) error {
		task, err = tx.Tasks().Get(in.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task == nil {
			return fmt.Errorf("task %d: %w", in.TaskID, domain.ErrTaskNotFound)
		}

		if !in.Force && !task.Status.CanTransitionTo(target) {
			return fmt.Errorf("cannot move task %d from %s to %s: %w",
				in.TaskID, task.Status, target, domain.ErrInvalidTransition)
		}

		now := uc.clock.Now()
		task.Status = target
		task.UpdatedAt = now
		if err := tx.Tasks().Update(task); err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityTasks,
			EntityID:    fmt.Sprintf("%d", in.TaskID),
			Action:      domain.ActionStatusUpdate,
			PerformedBy: performedBy,
			Timestamp:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("status updated to %s", target))
	}

	return &UpdateStatusOutput{Task: task}, nil
}
