package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nydiokar/Gary/internal/domain"
	"github.com/nydiokar/Gary/internal/testutil"
)

func TestTaskDetails_Execute_Success(t *testing.T) {
	store := testutil.NewMockStore()
	task := store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusAccepted, Owner: "user2"})
	store.TagsByName["urgent"] = &domain.Tag{ID: 1, Name: "urgent"}
	store.TagsByName["review"] = &domain.Tag{ID: 2, Name: "review"}
	store.TaskTags[task.ID] = []int{1, 2}
	store.Responses[task.ID] = []*domain.TaskResponse{
		{TaskID: task.ID, UserID: "user2", Action: "Accepted", Comments: "taking it"},
	}

	uc := NewTaskDetails(store)

	out, err := uc.Execute(context.Background(), TaskDetailsInput{TaskID: task.ID})
	require.NoError(t, err)
	assert.Equal(t, "Task", out.Task.Title)
	assert.Equal(t, []string{"review", "urgent"}, out.Tags)
	require.Len(t, out.Responses, 1)
	assert.Equal(t, "taking it", out.Responses[0].Comments)
}

func TestTaskDetails_Execute_NotFound(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewTaskDetails(store)

	_, err := uc.Execute(context.Background(), TaskDetailsInput{TaskID: 9})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
