package usecase

import (
	"context"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

// AcceptTaskInput contains the parameters for accepting a task.
type AcceptTaskInput struct {
	UserID   string // Accepting user id
	Comments string // Free-text comments (optional)
	TaskID   int    // Task to accept
}

// AcceptTaskOutput contains the accepted task.
type AcceptTaskOutput struct {
	Task *domain.Task
}

// AcceptTask is the use case for accepting a pending task. Acceptance is
// legal only from Pending; it appends a task response and notifies the
// task owner.
type AcceptTask struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewAcceptTask creates a new AcceptTask use case.
func NewAcceptTask(store domain.Store, clock domain.Clock, logger domain.Logger) *AcceptTask {
	return &AcceptTask{store: store, clock: clock, logger: logger}
}

// Execute accepts the task, appending the response, the owner notification
// and the audit entry in one transaction.
func (uc *AcceptTask) Execute(ctx context.Context, in AcceptTaskInput) (*AcceptTaskOutput, error) {
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
		if task.Status != domain.StatusPending {
			return fmt.Errorf("task %d is not in Pending state: %w", in.TaskID, domain.ErrInvalidTransition)
		}

		now := uc.clock.Now()
		task.Status = domain.StatusAccepted
		task.UpdatedAt = now
		if err := tx.Tasks().Update(task); err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		if err := tx.Tasks().AddResponse(&domain.TaskResponse{
			TaskID:   in.TaskID,
			UserID:   in.UserID,
			Action:   string(domain.StatusAccepted),
			Comments: in.Comments,
			Time:     now,
		}); err != nil {
			return fmt.Errorf("add response: %w", err)
		}

		if err := tx.Notifications().Add(&domain.Notification{
			TaskID:    &task.ID,
			Recipient: task.Owner,
			Message:   fmt.Sprintf("Task %d has been accepted by %s.", task.ID, in.UserID),
			Timestamp: now,
		}); err != nil {
			return fmt.Errorf("notify owner: %w", err)
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityTasks,
			EntityID:    fmt.Sprintf("%d", in.TaskID),
			Action:      domain.ActionAccepted,
			PerformedBy: in.UserID,
			Timestamp:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("accepted by %s", in.UserID))
	}

	return &AcceptTaskOutput{Task: task}, nil
}
