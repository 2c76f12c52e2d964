package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nydiokar/Gary/internal/domain"
	"github.com/nydiokar/Gary/internal/testutil"
)

func TestDelegateTask_Execute_Success(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddUser("user1", "Manager", domain.RoleManager)
	store.AddUser("user3", "Gary", domain.RoleUser)
	task := store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})
	clock := &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}

	uc := NewDelegateTask(store, clock, nil)

	out, err := uc.Execute(context.Background(), DelegateTaskInput{
		TaskID:      task.ID,
		NewOwner:    "user3",
		PerformedBy: "user1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user3", out.Task.Owner)
	assert.Equal(t, domain.StatusInProgress, out.Task.Status)

	require.Len(t, store.Notifications, 1)
	assert.Equal(t, "user3", store.Notifications[0].Recipient)
	assert.Equal(t, fmt.Sprintf("Task %d has been delegated to you.", task.ID), store.Notifications[0].Message)

	require.Len(t, store.Audits, 1)
	assert.Equal(t, domain.ActionDelegated, store.Audits[0].Action)
	assert.Equal(t, "user1", store.Audits[0].PerformedBy)
}

func TestDelegateTask_Execute_InProgressKeepsStatus(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddUser("user4", "Lary", domain.RoleUser)
	task := store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusInProgress, Owner: "user3"})

	uc := NewDelegateTask(store, &testutil.MockClock{NowTime: time.Now()}, nil)

	out, err := uc.Execute(context.Background(), DelegateTaskInput{TaskID: task.ID, NewOwner: "user4"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, out.Task.Status)
	assert.Equal(t, "user4", out.Task.Owner)
}

func TestDelegateTask_Execute_TerminalStatus(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddUser("user3", "Gary", domain.RoleUser)
	task := store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusVerified, Owner: "user1"})

	uc := NewDelegateTask(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), DelegateTaskInput{TaskID: task.ID, NewOwner: "user3"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, "user1", store.TasksByID[task.ID].Owner)
	assert.Empty(t, store.Notifications)
	assert.Empty(t, store.Audits)
}

func TestDelegateTask_Execute_UnknownNewOwner(t *testing.T) {
	store := testutil.NewMockStore()
	task := store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})

	uc := NewDelegateTask(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), DelegateTaskInput{TaskID: task.ID, NewOwner: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, "user1", store.TasksByID[task.ID].Owner)
	assert.Equal(t, domain.StatusPending, store.TasksByID[task.ID].Status)
	assert.Empty(t, store.Notifications)
	assert.Empty(t, store.Audits)
}

func TestDelegateTask_Execute_TaskNotFound(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddUser("user3", "Gary", domain.RoleUser)

	uc := NewDelegateTask(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), DelegateTaskInput{TaskID: 99, NewOwner: "user3"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
