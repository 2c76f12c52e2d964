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

func TestListTasks_Execute_OrderedByID(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddTask(&domain.Task{Title: "first", Status: domain.StatusPending})
	store.AddTask(&domain.Task{Title: "second", Status: domain.StatusAccepted})
	store.AddTask(&domain.Task{Title: "third", Status: domain.StatusCompleted})

	uc := NewListTasks(store)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, "first", out.Tasks[0].Title)
	assert.Equal(t, "third", out.Tasks[2].Title)
}

func TestListOverdue_Execute_FiltersCompletedAndFuture(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	store := testutil.NewMockStore()
	store.AddTask(&domain.Task{Title: "overdue", Status: domain.StatusPending, Deadline: &past})
	store.AddTask(&domain.Task{Title: "done", Status: domain.StatusCompleted, Deadline: &past})
	store.AddTask(&domain.Task{Title: "upcoming", Status: domain.StatusPending, Deadline: &future})
	store.AddTask(&domain.Task{Title: "no deadline", Status: domain.StatusPending})

	uc := NewListOverdue(store, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), ListOverdueInput{})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "overdue", out.Tasks[0].Title)
}

func TestListOverdue_Execute_ExplicitReferenceTime(t *testing.T) {
	deadline := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	store := testutil.NewMockStore()
	store.AddTask(&domain.Task{Title: "task", Status: domain.StatusPending, Deadline: &deadline})

	uc := NewListOverdue(store, &testutil.MockClock{NowTime: deadline.Add(48 * time.Hour)})

	// Before the deadline nothing is overdue, regardless of the clock.
	out, err := uc.Execute(context.Background(), ListOverdueInput{Now: deadline.Add(-time.Minute)})
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)

	out, err = uc.Execute(context.Background(), ListOverdueInput{Now: deadline.Add(time.Minute)})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 1)
}
