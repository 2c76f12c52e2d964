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

func TestCreateTask_Execute_Success(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddUser("user1", "Manager", domain.RoleManager)
	clock := &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	logger := &testutil.MockLogger{}

	uc := NewCreateTask(store, clock, logger)

	deadline := time.Date(2024, 5, 10, 17, 0, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), CreateTaskInput{
		Title:       "Prepare quarterly report",
		Description: "Numbers for Q2",
		Priority:    "high",
		Owner:       "user1",
		Deadline:    &deadline,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	task := store.TasksByID[out.TaskID]
	require.NotNil(t, task)
	assert.Equal(t, "Prepare quarterly report", task.Title)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, "user1", task.Owner)
	assert.Equal(t, clock.NowTime, task.CreatedAt)

	require.Len(t, store.Audits, 1)
	assert.Equal(t, domain.EntityTasks, store.Audits[0].Entity)
	assert.Equal(t, domain.ActionCreation, store.Audits[0].Action)
	assert.Equal(t, "user1", store.Audits[0].PerformedBy)
}

func TestCreateTask_Execute_EmptyTitle(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewCreateTask(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), CreateTaskInput{Priority: "low", Owner: "user1"})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, store.TasksByID)
	assert.Empty(t, store.Audits)
}

func TestCreateTask_Execute_InvalidPriority(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddUser("user1", "Manager", domain.RoleManager)
	uc := NewCreateTask(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), CreateTaskInput{
		Title:    "Task",
		Priority: "urgent",
		Owner:    "user1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Empty(t, store.TasksByID)
}

func TestCreateTask_Execute_UnknownOwner(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewCreateTask(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), CreateTaskInput{
		Title:    "Task",
		Priority: "medium",
		Owner:    "ghost",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, store.TasksByID)
	assert.Empty(t, store.Audits)
}
