package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nydiokar/Gary/internal/domain"
)

// ScheduleRecurringInput contains the parameters for a new recurring task.
type ScheduleRecurringInput struct {
	NextOccurrence time.Time // First occurrence
	Interval       string    // daily / weekly / monthly
	TemplateTaskID int       // Task copied on each occurrence (must exist)
}

// ScheduleRecurringOutput contains the created recurring task ID.
type ScheduleRecurringOutput struct {
	RecurringTaskID int
}

// ScheduleRecurring is the use case for registering a recurring template.
// The interval is validated here, so the processing engine never sees an
// unknown interval.
type ScheduleRecurring struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewScheduleRecurring creates a new ScheduleRecurring use case.
func NewScheduleRecurring(store domain.Store, clock domain.Clock, logger domain.Logger) *ScheduleRecurring {
	return &ScheduleRecurring{store: store, clock: clock, logger: logger}
}

// Execute registers the template and records an audit entry in one
// transaction.
func (uc *ScheduleRecurring) Execute(ctx context.Context, in ScheduleRecurringInput) (*ScheduleRecurringOutput, error) {
	interval, err := domain.ParseInterval(in.Interval)
	if err != nil {
		return nil, err
	}

	var id int
	err = uc.store.WithTx(ctx, func(tx domain.Tx) error {
		template, err := tx.Tasks().Get(in.TemplateTaskID)
		if err != nil {
			return fmt.Errorf("get template task: %w", err)
		}
		if template == nil {
			return fmt.Errorf("template task %d: %w", in.TemplateTaskID, domain.ErrTaskNotFound)
		}

		id, err = tx.Recurring().Create(&domain.RecurringTask{
			TemplateTaskID: in.TemplateTaskID,
			Interval:       interval,
			NextOccurrence: in.NextOccurrence,
		})
		if err != nil {
			return fmt.Errorf("create recurring task: %w", err)
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityRecurringTasks,
			EntityID:    fmt.Sprintf("%d", id),
			Action:      domain.ActionRecurringAdd,
			PerformedBy: domain.SystemUser,
			Timestamp:   uc.clock.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(in.TemplateTaskID, "recurring", fmt.Sprintf("scheduled %s recurrence #%d", interval, id))
	}

	return &ScheduleRecurringOutput{RecurringTaskID: id}, nil
}

// ListRecurringOutput contains all recurring templates.
type ListRecurringOutput struct {
	Recurring []*domain.RecurringTask
}

// ListRecurring is the use case for listing recurring templates.
type ListRecurring struct {
	store domain.Store
}

// NewListRecurring creates a new ListRecurring use case.
func NewListRecurring(store domain.Store) *ListRecurring {
	return &ListRecurring{store: store}
}

// Execute retrieves all recurring templates.
func (uc *ListRecurring) Execute(ctx context.Context) (*ListRecurringOutput, error) {
	var rts []*domain.RecurringTask
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		var err error
		rts, err = tx.Recurring().List()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list recurring tasks: %w", err)
	}
	return &ListRecurringOutput{Recurring: rts}, nil
}
