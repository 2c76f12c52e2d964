package usecase

import (
	"context"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

// AddUserInput contains the parameters for registering a user.
type AddUserInput struct {
	UserID string // Unique identifier
	Name   string // Display name
	Role   string // Manager / Expert / User / System
}

// AddUser is the use case for registering a new user.
type AddUser struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewAddUser creates a new AddUser use case.
func NewAddUser(store domain.Store, clock domain.Clock, logger domain.Logger) *AddUser {
	return &AddUser{store: store, clock: clock, logger: logger}
}

// Execute registers the user and records an audit entry in one transaction.
func (uc *AddUser) Execute(ctx context.Context, in AddUserInput) error {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return err
	}

	now := uc.clock.Now()
	err = uc.store.WithTx(ctx, func(tx domain.Tx) error {
		existing, err := tx.Users().Get(in.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("user %q: %w", in.UserID, domain.ErrUserExists)
		}

		if err := tx.Users().Create(&domain.User{
			ID:        in.UserID,
			Name:      in.Name,
			Role:      role,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityUsers,
			EntityID:    in.UserID,
			Action:      domain.ActionCreation,
			PerformedBy: domain.SystemUser,
			Timestamp:   now,
		})
	})
	if err != nil {
		return err
	}

	if uc.logger != nil {
		uc.logger.Info(0, "user", fmt.Sprintf("added %q (%s)", in.Name, role))
	}
	return nil
}
