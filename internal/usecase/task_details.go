package usecase

import (
	"context"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

// TaskDetailsInput identifies the task to project.
type TaskDetailsInput struct {
	TaskID int
}

// TaskDetailsOutput is the full projection of one task.
type TaskDetailsOutput struct {
	Task      *domain.Task
	Tags      []string
	Responses []*domain.TaskResponse
}

// TaskDetails is the use case for inspecting a single task.
type TaskDetails struct {
	store domain.Store
}

// NewTaskDetails creates a new TaskDetails use case.
func NewTaskDetails(store domain.Store) *TaskDetails {
	return &TaskDetails{store: store}
}

// Execute retrieves the task with its tags and responses.
func (uc *TaskDetails) Execute(ctx context.Context, in TaskDetailsInput) (*TaskDetailsOutput, error) {
	out := &TaskDetailsOutput{}
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		task, err := tx.Tasks().Get(in.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task == nil {
			return fmt.Errorf("task %d: %w", in.TaskID, domain.ErrTaskNotFound)
		}
		out.Task = task

		if out.Tags, err = tx.Tags().ListForTask(in.TaskID); err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		if out.Responses, err = tx.Tasks().ListResponses(in.TaskID); err != nil {
			return fmt.Errorf("list responses: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
