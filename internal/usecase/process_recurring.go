package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nydiokar/Gary/internal/domain"
)

// ProcessRecurringInput bounds a processing pass at a point in time.
type ProcessRecurringInput struct {
	Now time.Time // Reference time (zero = clock now)
}

// ProcessRecurringOutput reports what a pass did.
type ProcessRecurringOutput struct {
	Spawned int // Tasks materialized this pass
	Skipped int // Templates skipped (missing template task or duplicate occurrence)
}

// ProcessRecurring is the recurring task engine. For every template whose
// next occurrence is due it spawns a concrete task instance and advances the
// occurrence by the template's interval.
//
// Each template is processed in its own transaction: the spawned task and
// the advanced occurrence commit together or not at all, so a crash
// mid-batch never duplicates or loses an occurrence. The spawned task
// carries a deterministic spawn key, making re-runs of the same occurrence
// no-ops.
type ProcessRecurring struct {
	store  domain.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewProcessRecurring creates a new ProcessRecurring use case.
func NewProcessRecurring(store domain.Store, clock domain.Clock, logger domain.Logger) *ProcessRecurring {
	return &ProcessRecurring{store: store, clock: clock, logger: logger}
}

// Execute runs one processing pass. A template with a missing task is
// logged and skipped; it never aborts the batch.
func (uc *ProcessRecurring) Execute(ctx context.Context, in ProcessRecurringInput) (*ProcessRecurringOutput, error) {
	now := in.Now
	if now.IsZero() {
		now = uc.clock.Now()
	}

	var due []*domain.RecurringTask
	err := uc.store.WithTx(ctx, func(tx domain.Tx) error {
		var err error
		due, err = tx.Recurring().ListDue(now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list due templates: %w", err)
	}

	out := &ProcessRecurringOutput{}
	for _, rt := range due {
		if err := uc.processOne(ctx, rt, now, out); err != nil {
			return out, err
		}
	}

	if uc.logger != nil {
		uc.logger.Info(0, "recurring", fmt.Sprintf("processed %d template(s), spawned %d task(s)", len(due), out.Spawned))
	}
	return out, nil
}

// processOne spawns the due occurrence for one template and advances its
// next occurrence, atomically.
func (uc *ProcessRecurring) processOne(ctx context.Context, rt *domain.RecurringTask, now time.Time, out *ProcessRecurringOutput) error {
	return uc.store.WithTx(ctx, func(tx domain.Tx) error {
		// Re-read inside the transaction; another pass may have advanced it.
		current, err := tx.Recurring().Get(rt.ID)
		if err != nil {
			return fmt.Errorf("get recurring task %d: %w", rt.ID, err)
		}
		if current == nil || current.NextOccurrence.After(now) {
			out.Skipped++
			return nil
		}

		template, err := tx.Tasks().Get(current.TemplateTaskID)
		if err != nil {
			return fmt.Errorf("get template task %d: %w", current.TemplateTaskID, err)
		}
		if template == nil {
			// A missing template must not block the rest of the batch.
			if uc.logger != nil {
				uc.logger.Warn(0, "recurring",
					fmt.Sprintf("template task %d not found, skipping recurring task %d", current.TemplateTaskID, rt.ID))
			}
			out.Skipped++
			return nil
		}

		key := domain.SpawnKeyFor(current.TemplateTaskID, current.NextOccurrence)
		spawned := &domain.Task{
			SpawnKey:    &key,
			Title:       template.Title,
			Description: template.Description,
			Priority:    template.Priority,
			Owner:       template.Owner,
			Status:      domain.StatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		id, created, err := tx.Tasks().CreateSpawned(spawned)
		if err != nil {
			return fmt.Errorf("spawn task for recurring task %d: %w", rt.ID, err)
		}
		if created {
			if err := tx.Audits().Record(&domain.AuditLog{
				Entity:      domain.EntityTasks,
				EntityID:    fmt.Sprintf("%d", id),
				Action:      domain.ActionCreation,
				PerformedBy: domain.SystemUser,
				Timestamp:   now,
			}); err != nil {
				return err
			}
			out.Spawned++
		} else {
			out.Skipped++
		}

		next := current.Interval.Advance(current.NextOccurrence)
		if err := tx.Recurring().UpdateNextOccurrence(current.ID, next); err != nil {
			return fmt.Errorf("advance recurring task %d: %w", rt.ID, err)
		}
		return nil
	})
}
