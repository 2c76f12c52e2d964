package usecase

import (
	"context"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

// AddTagInput contains the parameters for creating a tag.
type AddTagInput struct {
	Name string // Unique tag name
}

// AddTagOutput contains the created tag ID.
type AddTagOutput struct {
	TagID int
}

// AddTag is the use case for creating a tag.
type AddTag struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTag creates a new AddTag use case.
func NewAddTag(store domain.Store, clock domain.Clock, logger domain.Logger) *AddTag {
	return &AddTag{store: store, clock: clock, logger: logger}
}

// Execute creates the tag and records an audit entry in one transaction.
func (uc *AddTag) Execute(ctx context.Context, in AddTagInput) (*AddTagOutput, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("tag name: %w", domain.ErrEmptyTitle)
	}

	var id int
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		existing, err := tx.Tags().GetByName(in.Name)
		if err != nil {
			return fmt.Errorf("get tag: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("tag %q: %w", in.Name, domain.ErrTagExists)
		}

		id, err = tx.Tags().Create(in.Name)
		if err != nil {
			return err
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityTags,
			EntityID:    fmt.Sprintf("%d", id),
			Action:      domain.ActionCreation,
			PerformedBy: domain.SystemUser,
			Timestamp:   uc.clock.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(0, "tag", fmt.Sprintf("added %q", in.Name))
	}
	return &AddTagOutput{TagID: id}, nil
}

// AssignTagInput contains the parameters for tagging a task.
type AssignTagInput struct {
	TagName string // Tag to assign (must exist)
	TaskID  int    // Task to tag (must exist)
}

// AssignTag is the use case for linking a tag to a task.
type AssignTag struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewAssignTag creates a new AssignTag use case.
func NewAssignTag(store domain.Store, clock domain.Clock, logger domain.Logger) *AssignTag {
	return &AssignTag{store: store, clock: clock, logger: logger}
}

// Execute links the tag and records an audit entry in one transaction.
func (uc *AssignTag) Execute(ctx context.Context, in AssignTagInput) error {
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		task, err := tx.Tasks().Get(in.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task == nil {
			return fmt.Errorf("task %d: %w", in.TaskID, domain.ErrTaskNotFound)
		}

		tag, err := tx.Tags().GetByName(in.TagName)
		if err != nil {
			return fmt.Errorf("get tag: %w", err)
		}
		if tag == nil {
			return fmt.Errorf("tag %q: %w", in.TagName, domain.ErrTagNotFound)
		}

		if err := tx.Tags().Assign(in.TaskID, tag.ID); err != nil {
			return err
		}

		return tx.Audits().Record(&domain.AuditLog{
			Entity:      domain.EntityTaskTags,
			EntityID:    fmt.Sprintf("%d:%d", in.TaskID, tag.ID),
			Action:      domain.ActionTagAssigned,
			PerformedBy: domain.SystemUser,
			Timestamp:   uc.clock.Now(),
		})
	})
	if err != nil {
		return err
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "tag", fmt.Sprintf("assigned %q", in.TagName))
	}
	return nil
}
