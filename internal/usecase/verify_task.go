package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nydiokar/Gary/internal/domain"
)

// MinFeedbackWords is the minimum feedback length for verification.
const MinFeedbackWords = 10

// VerifyTaskInput contains the parameters for verifying a task.
type VerifyTaskInput struct {
	UserID   string // Verifying user id
	Feedback string // Verification feedback, at least MinFeedbackWords words
	TaskID   int    // Task to verify
}

// VerifyTaskOutput contains the verified task.
type VerifyTaskOutput struct {
	Task *domain.Task
}

// VerifyTask is the use case for verifying a completed task. Verification is
// legal only from Completed and requires substantive feedback; short feedback
// is rejected before any state changes.
type VerifyTask struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewVerifyTask creates a new VerifyTask use case.
func NewVerifyTask(store domain.Store, clock domain.Clock, logger domain.Logger) *VerifyTask {
	return &VerifyTask{store: store, clock: clock, logger: logger}
}

// Execute verifies the task, appending the response and the audit entry in
// one transaction.
func (uc *VerifyTask) Execute(ctx context.Context, in VerifyTaskInput) (*VerifyTaskOutput, error) {
	if len(strings.Fields(in.Feedback)) < MinFeedbackWords {
		return nil, domain.ErrFeedbackTooShort
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
		if task.Status != domain.StatusCompleted {
			return fmt.Errorf("task %d is not in Completed state: %w", in.TaskID, domain.ErrInvalidTransition)
		}

		now := uc.clock.Now()
		task.Status = domain.StatusVerified
		task.UpdatedAt = now
		if err := tx.Tasks().Update(task); err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		if err := tx.Tasks().AddResponse(&domain.TaskResponse{
			TaskID:   in.TaskID,
			UserID:   in.UserID,
			Action:   string(domain.StatusVerified),
			Comments: in.Feedback,
			Time:     now,
		}); err != nil {
			return fmt.Errorf("add response: %w", err)
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityTasks,
			EntityID:    fmt.Sprintf("%d", in.TaskID),
			Action:      domain.ActionVerified,
			PerformedBy: in.UserID,
			Timestamp:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("verified by %s", in.UserID))
	}

	return &VerifyTaskOutput{Task: task}, nil
}
