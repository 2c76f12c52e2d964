package usecase

import (
	"context"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

// SendNotificationInput contains the parameters for sending a notification.
type SendNotificationInput struct {
	TaskID    *int   // Referenced task (optional)
	Recipient string // Addressed user id
	Message   string // Message text (required)
}

// SendNotification is the use case for recording a notification.
type SendNotification struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewSendNotification creates a new SendNotification use case.
func NewSendNotification(store domain.Store, clock domain.Clock, logger domain.Logger) *SendNotification {
	return &SendNotification{store: store, clock: clock, logger: logger}
}

// Execute appends the notification and its audit entry in one transaction.
// Store failures propagate to the caller; nothing is swallowed.
func (uc *SendNotification) Execute(ctx context.Context, in SendNotificationInput) error {
	if in.Message == "" {
		return domain.ErrEmptyMessage
	}

	now := uc.clock.Now()
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		if err := tx.Notifications().Add(&domain.Notification{
			TaskID:    in.TaskID,
			Recipient: in.Recipient,
			Message:   in.Message,
			Timestamp: now,
		}); err != nil {
			return fmt.Errorf("add notification: %w", err)
		}

		entityID := "general"
		if in.TaskID != nil {
			entityID = fmt.Sprintf("%d", *in.TaskID)
		}
		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityNotifications,
			EntityID:    entityID,
			Action:      domain.ActionNotified,
			PerformedBy: domain.SystemUser,
			Timestamp:   now,
		})
	})
	if err != nil {
		return err
	}

	if uc.logger != nil {
		uc.logger.Info(0, "notify", fmt.Sprintf("notified %s: %s", in.Recipient, in.Message))
	}
	return nil
}

// ListNotificationsInput identifies the recipient.
type ListNotificationsInput struct {
	Recipient string
}

// ListNotificationsOutput contains notifications, most recent first.
type ListNotificationsOutput struct {
	Notifications []*domain.Notification
}

// ListNotifications is the use case for reading a user's notifications.
type ListNotifications struct {
	store domain.Store
}

// NewListNotifications creates a new ListNotifications use case.
func NewListNotifications(store domain.Store) *ListNotifications {
	return &ListNotifications{store: store}
}

// Execute retrieves the recipient's notifications, most recent first.
func (uc *ListNotifications) Execute(ctx context.Context, in ListNotificationsInput) (*ListNotificationsOutput, error) {
	var ns []*domain.Notification
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		var err error
		ns, err = tx.Notifications().ListFor(in.Recipient)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return &ListNotificationsOutput{Notifications: ns}, nil
}
