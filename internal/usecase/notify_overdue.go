package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nydiokar/Gary/internal/domain"
)

// NotifyOverdueInput bounds the overdue scan at a point in time.
type NotifyOverdueInput struct {
	Now time.Time // Reference time (zero = clock now)
}

// NotifyOverdueOutput reports how many owners were notified.
type NotifyOverdueOutput struct {
	Notified int
}

// NotifyOverdue is the use case for reminding owners about overdue tasks.
type NotifyOverdue struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewNotifyOverdue creates a new NotifyOverdue use case.
func NewNotifyOverdue(store domain.Store, clock domain.Clock, logger domain.Logger) *NotifyOverdue {
	return &NotifyOverdue{store: store, clock: clock, logger: logger}
}

// Execute sends a notification to the owner of every overdue task. Each
// notification and its audit entry commit together.
func (uc *NotifyOverdue) Execute(ctx context.Context, in NotifyOverdueInput) (*NotifyOverdueOutput, error) {
	now := in.Now
	if now.IsZero() {
		now = uc.clock.Now()
	}

	out := &NotifyOverdueOutput{}
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		overdue, err := tx.Tasks().ListOverdue(now)
		if err != nil {
			return err
		}
		for _, task := range overdue {
			taskID := task.ID
			if err := tx.Notifications().Add(&domain.Notification{
				TaskID:    &taskID,
				Recipient: task.Owner,
				Message:   fmt.Sprintf("Task %d is overdue! Please take action.", task.ID),
				Timestamp: now,
			}); err != nil {
				return fmt.Errorf("notify owner of task %d: %w", task.ID, err)
			}
			if err := tx.Audits().Record(&domain.AuditLog{
				Entity:      domain.EntityNotifications,
				EntityID:    fmt.Sprintf("%d", task.ID),
				Action:      domain.ActionNotified,
				PerformedBy: domain.SystemUser,
				Timestamp:   now,
			}); err != nil {
				return err
			}
			out.Notified++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil && out.Notified > 0 {
		uc.logger.Info(0, "notify", fmt.Sprintf("sent %d overdue reminder(s)", out.Notified))
	}
	return out, nil
}
