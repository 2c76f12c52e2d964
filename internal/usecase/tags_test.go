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

func TestAddTag_Execute_Success(t *testing.T) {
	store := testutil.NewMockStore()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}

	uc := NewAddTag(store, clock, nil)

	out, err := uc.Execute(context.Background(), AddTagInput{Name: "urgent"})
	require.NoError(t, err)
	assert.Equal(t, out.TagID, store.TagsByName["urgent"].ID)

	require.Len(t, store.Audits, 1)
	assert.Equal(t, domain.EntityTags, store.Audits[0].Entity)
	assert.Equal(t, domain.ActionCreation, store.Audits[0].Action)
}

func TestAddTag_Execute_Duplicate(t *testing.T) {
	store := testutil.NewMockStore()
	store.TagsByName["urgent"] = &domain.Tag{ID: 1, Name: "urgent"}

	uc := NewAddTag(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), AddTagInput{Name: "urgent"})
	assert.ErrorIs(t, err, domain.ErrTagExists)
	assert.Empty(t, store.Audits)
}

func TestAddTag_Execute_EmptyName(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewAddTag(store, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), AddTagInput{})
	assert.Error(t, err)
	assert.Empty(t, store.TagsByName)
}

func TestAssignTag_Execute_Success(t *testing.T) {
	store := testutil.NewMockStore()
	task := store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})
	store.TagsByName["bug"] = &domain.Tag{ID: 4, Name: "bug"}

	uc := NewAssignTag(store, &testutil.MockClock{NowTime: time.Now()}, nil)

	err := uc.Execute(context.Background(), AssignTagInput{TaskID: task.ID, TagName: "bug"})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, store.TaskTags[task.ID])

	require.Len(t, store.Audits, 1)
	assert.Equal(t, domain.EntityTaskTags, store.Audits[0].Entity)
	assert.Equal(t, domain.ActionTagAssigned, store.Audits[0].Action)
}

func TestAssignTag_Execute_TagNotFound(t *testing.T) {
	store := testutil.NewMockStore()
	task := store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})

	uc := NewAssignTag(store, &testutil.MockClock{}, nil)

	err := uc.Execute(context.Background(), AssignTagInput{TaskID: task.ID, TagName: "ghost"})
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
	assert.Empty(t, store.TaskTags[task.ID])
}

func TestAssignTag_Execute_TaskNotFound(t *testing.T) {
	store := testutil.NewMockStore()
	store.TagsByName["bug"] = &domain.Tag{ID: 4, Name: "bug"}

	uc := NewAssignTag(store, &testutil.MockClock{}, nil)

	err := uc.Execute(context.Background(), AssignTagInput{TaskID: 12, TagName: "bug"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Empty(t, store.Audits)
}
