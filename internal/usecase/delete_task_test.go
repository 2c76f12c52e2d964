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

func TestDeleteTask_Execute_Success(t *testing.T) {
	store := testutil.NewMockStore()
	task := store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})
	store.Responses[task.ID] = []*domain.TaskResponse{{TaskID: task.ID, UserID: "user2", Action: "Accepted"}}
	clock := &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}

	uc := NewDeleteTask(store, clock, nil)

	err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: task.ID, PerformedBy: "user1"})
	require.NoError(t, err)

	assert.NotContains(t, store.TasksByID, task.ID)
	assert.Empty(t, store.Responses[task.ID])

	require.Len(t, store.Audits, 1)
	assert.Equal(t, domain.ActionDeletion, store.Audits[0].Action)
	assert.Equal(t, "user1", store.Audits[0].PerformedBy)
}

func TestDeleteTask_Execute_NotFound(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewDeleteTask(store, &testutil.MockClock{}, nil)

	err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 404})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Empty(t, store.Audits)
}
