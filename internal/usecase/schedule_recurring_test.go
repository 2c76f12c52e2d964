package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nydiokar/Gary/internal/domain"
	"github.com/nydiokar/Gary/internal/testutil"
)

func TestScheduleRecurring_Execute_Success(t *testing.T) {
	store := testutil.NewMockStore()
	template := store.AddTask(&domain.Task{Title: "Backup check", Status: domain.StatusPending, Owner: "user2"})
	clock := &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}

	uc := NewScheduleRecurring(store, clock, nil)

	first := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), ScheduleRecurringInput{
		TemplateTaskID: template.ID,
		Interval:       "weekly",
		NextOccurrence: first,
	})
	require.NoError(t, err)

	rt := store.RecurringByID[out.RecurringTaskID]
	require.NotNil(t, rt)
	assert.Equal(t, template.ID, rt.TemplateTaskID)
	assert.Equal(t, domain.IntervalWeekly, rt.Interval)
	assert.Equal(t, first, rt.NextOccurrence)

	require.Len(t, store.Audits, 1)
	assert.Equal(t, domain.ActionRecurringAdd, store.Audits[0].Action)
	assert.Equal(t, domain.EntityRecurringTasks, store.Audits[0].Entity)
}

func TestScheduleRecurring_Execute_UnknownInterval(t *testing.T) {
	store := testutil.NewMockStore()
	template := store.AddTask(&domain.Task{Title: "Backup check", Status: domain.StatusPending, Owner: "user2"})

	uc := NewScheduleRecurring(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), ScheduleRecurringInput{
		TemplateTaskID: template.ID,
		Interval:       "fortnightly",
		NextOccurrence: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
	assert.Empty(t, store.RecurringByID)
}

func TestScheduleRecurring_Execute_TemplateNotFound(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewScheduleRecurring(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), ScheduleRecurringInput{
		TemplateTaskID: 77,
		Interval:       "daily",
		NextOccurrence: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Empty(t, store.Audits)
}

func TestListRecurring_Execute(t *testing.T) {
	store := testutil.NewMockStore()
	store.RecurringByID[1] = &domain.RecurringTask{ID: 1, TemplateTaskID: 1, Interval: domain.IntervalDaily}
	store.RecurringByID[2] = &domain.RecurringTask{ID: 2, TemplateTaskID: 2, Interval: domain.IntervalMonthly}

	uc := NewListRecurring(store)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Recurring, 2)
	assert.Equal(t, 1, out.Recurring[0].ID)
	assert.Equal(t, 2, out.Recurring[1].ID)
}
