package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nydiokar/Gary/internal/domain"
)

// ListTasksOutput contains all tasks, ordered by ID.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for listing every task.
type ListTasks struct {
	store domain.Store
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.Store) *ListTasks {
	return &ListTasks{store: store}
}

// Execute retrieves all tasks.
func (uc *ListTasks) Execute(ctx context.Context) (*ListTasksOutput, error) {
	var tasks []*domain.Task
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		var err error
		tasks, err = tx.Tasks().List()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}

// ListOverdueInput bounds the overdue scan at a point in time.
type ListOverdueInput struct {
	Now time.Time // Reference time (zero = clock now)
}

// ListOverdueOutput contains the overdue tasks.
type ListOverdueOutput struct {
	Tasks []*domain.Task
}

// ListOverdue is the use case for finding tasks whose deadline has passed
// and which are not yet completed.
type ListOverdue struct {
	store domain.Store
	clock domain.Clock
}

// NewListOverdue creates a new ListOverdue use case.
func NewListOverdue(store domain.Store, clock domain.Clock) *ListOverdue {
	return &ListOverdue{store: store, clock: clock}
}

// Execute retrieves overdue tasks as of the given time.
func (uc *ListOverdue) Execute(ctx context.Context, in ListOverdueInput) (*ListOverdueOutput, error) {
	now := in.Now
	if now.IsZero() {
		now = uc.clock.Now()
	}

	var tasks []*domain.Task
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		var err error
		tasks, err = tx.Tasks().ListOverdue(now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list overdue tasks: %w", err)
	}
	return &ListOverdueOutput{Tasks: tasks}, nil
}
