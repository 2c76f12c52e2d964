package usecase

import (
	"context"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	PerformedBy string // Acting user id (defaults to the system user)
	TaskID      int    // Task to delete
}

// DeleteTask is the use case for removing a task. Its responses and tag
// assignments are removed in the same transaction.
type DeleteTask struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.Store, clock domain.Clock, logger domain.Logger) *DeleteTask {
	return &DeleteTask{store: store, clock: clock, logger: logger}
}

// Execute deletes the task and records an audit entry in one transaction.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) error {
	performedBy := in.PerformedBy
	if performedBy == "" {
		performedBy = domain.SystemUser
	}

	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		if err := tx.Tasks().Delete(in.TaskID); err != nil {
			return fmt.Errorf("delete task %d: %w", in.TaskID, err)
		}
		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityTasks,
			EntityID:    fmt.Sprintf("%d", in.TaskID),
			Action:      domain.ActionDeletion,
			PerformedBy: performedBy,
			Timestamp:   uc.clock.Now(),
		})
	})
	if err != nil {
		return err
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", "deleted")
	}
	return nil
}
