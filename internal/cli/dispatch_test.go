package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/domain"
	"github.com/nydiokar/Gary/internal/testutil"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *testutil.MockStore) {
	t.Helper()
	store := testutil.NewMockStore()
	store.AddUser("user1", "Manager", domain.RoleManager)
	store.AddUser("user2", "Expert", domain.RoleExpert)

	c := &app.Container{
		Store:  store,
		Clock:  &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		Logger: &testutil.MockLogger{},
	}
	return NewDispatcher(c), store
}

func TestDispatch_AddTask(t *testing.T) {
	d, store := newTestDispatcher(t)

	out, quit := d.Dispatch(context.Background(),
		"/add_task 'Prepare report' 'Q2 numbers' high user1 '2024-05-10 17:00:00'")
	assert.False(t, quit)
	assert.Equal(t, "Task 'Prepare report' created with ID: 1", out)

	task := store.TasksByID[1]
	require.NotNil(t, task)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.StatusPending, task.Status)
}

func TestDispatch_AddTask_BadSyntax(t *testing.T) {
	d, store := newTestDispatcher(t)

	out, _ := d.Dispatch(context.Background(), "/add_task missing quotes")
	assert.Equal(t, "Error: Invalid syntax for /add_task. Use: /add_task 'title' 'description' priority owner 'deadline'", out)
	assert.Empty(t, store.TasksByID)
}

func TestDispatch_AddTask_BadDeadline(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out, _ := d.Dispatch(context.Background(), "/add_task 'T' 'D' low user1 'tomorrow'")
	assert.Contains(t, out, "Error:")
}

func TestDispatch_UpdateTask(t *testing.T) {
	d, store := newTestDispatcher(t)
	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})

	out, _ := d.Dispatch(context.Background(), "/update_task 1 Accepted")
	assert.Equal(t, "Task 1 updated to status: Accepted", out)
	assert.Equal(t, domain.StatusAccepted, store.TasksByID[1].Status)
}

func TestDispatch_UpdateTask_IllegalTransition(t *testing.T) {
	d, store := newTestDispatcher(t)
	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})

	out, _ := d.Dispatch(context.Background(), "/update_task 1 Verified")
	assert.Contains(t, out, "Error:")
	assert.Equal(t, domain.StatusPending, store.TasksByID[1].Status)
}

func TestDispatch_DelegateTask(t *testing.T) {
	d, store := newTestDispatcher(t)
	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})

	out, _ := d.Dispatch(context.Background(), "/delegate_task 1 user2")
	assert.Equal(t, "Task 1 delegated to user2.", out)
	assert.Equal(t, "user2", store.TasksByID[1].Owner)
	require.Len(t, store.Notifications, 1)
}

func TestDispatch_AcceptAndVerify(t *testing.T) {
	d, store := newTestDispatcher(t)
	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})

	out, _ := d.Dispatch(context.Background(), "/accept_task 1 user2")
	assert.Equal(t, "Task 1 has been accepted by user2.", out)

	_, _ = d.Dispatch(context.Background(), "/update_task 1 Completed")

	out, _ = d.Dispatch(context.Background(),
		"/verify_task 1 user1 'Everything checks out and the write up is clear and complete'")
	assert.Equal(t, "Task 1 verified.", out)
	assert.Equal(t, domain.StatusVerified, store.TasksByID[1].Status)
}

func TestDispatch_VerifyTask_ShortFeedback(t *testing.T) {
	d, store := newTestDispatcher(t)
	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusCompleted, Owner: "user1"})

	out, _ := d.Dispatch(context.Background(), "/verify_task 1 user1 'too short'")
	assert.Contains(t, out, "Error:")
	assert.Equal(t, domain.StatusCompleted, store.TasksByID[1].Status)
}

func TestDispatch_VerifyTask_RepromptsUntilLongEnough(t *testing.T) {
	d, store := newTestDispatcher(t)
	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusCompleted, Owner: "user1"})

	replies := []string{
		"still not enough",
		"the report is accurate complete and well structured so this is approved",
	}
	var prompts []string
	d.prompt = func(msg string) (string, bool) {
		prompts = append(prompts, msg)
		reply := replies[0]
		replies = replies[1:]
		return reply, true
	}

	out, _ := d.Dispatch(context.Background(), "/verify_task 1 user1 'too short'")
	assert.Equal(t, "Task 1 verified.", out)
	assert.Equal(t, domain.StatusVerified, store.TasksByID[1].Status)
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[0], "Feedback must be at least 10 words. Try again.")
	assert.Contains(t, prompts[1], "Verification comments (minimum 10 words): ")
}

func TestDispatch_VerifyTask_RepromptEndOfInput(t *testing.T) {
	d, store := newTestDispatcher(t)
	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusCompleted, Owner: "user1"})

	d.prompt = func(string) (string, bool) { return "", false }

	out, _ := d.Dispatch(context.Background(), "/verify_task 1 user1 'too short'")
	assert.Contains(t, out, "Error:")
	assert.Equal(t, domain.StatusCompleted, store.TasksByID[1].Status)
}

func TestDispatch_DeleteTask(t *testing.T) {
	d, store := newTestDispatcher(t)
	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1"})

	out, _ := d.Dispatch(context.Background(), "/delete_task 1")
	assert.Equal(t, "Task 1 deleted.", out)
	assert.Empty(t, store.TasksByID)
}

func TestDispatch_ListTasks(t *testing.T) {
	d, store := newTestDispatcher(t)

	out, _ := d.Dispatch(context.Background(), "/list_tasks")
	assert.Equal(t, "No tasks found.", out)

	store.AddTask(&domain.Task{Title: "Task", Status: domain.StatusPending, Owner: "user1", Priority: domain.PriorityLow})
	out, _ = d.Dispatch(context.Background(), "/list_tasks")
	assert.Contains(t, out, "task_1: Task (Owner: user1")
}

func TestDispatch_OverdueTasks(t *testing.T) {
	d, store := newTestDispatcher(t)
	past := time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC)
	store.AddTask(&domain.Task{Title: "Late", Status: domain.StatusPending, Owner: "user2", Deadline: &past})

	out, _ := d.Dispatch(context.Background(), "/overdue_tasks")
	assert.Equal(t, "task_1: Late (Owner: user2) - Overdue!", out)
}

func TestDispatch_TaskDetails(t *testing.T) {
	d, store := newTestDispatcher(t)

	out, _ := d.Dispatch(context.Background(), "/task_details 5")
	assert.Equal(t, "Task 5 not found.", out)

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	store.AddTask(&domain.Task{
		Title: "Task", Status: domain.StatusPending, Owner: "user1",
		Priority: domain.PriorityMedium, CreatedAt: now, UpdatedAt: now,
	})
	out, _ = d.Dispatch(context.Background(), "/task_details 1")
	assert.Contains(t, out, "Task ID: task_1")
	assert.Contains(t, out, "Description: No description provided")
	assert.Contains(t, out, "Priority: Medium Priority")
	assert.Contains(t, out, "Deadline: None")
}

func TestDispatch_Notifications(t *testing.T) {
	d, store := newTestDispatcher(t)

	out, _ := d.Dispatch(context.Background(), "/notifications user2")
	assert.Equal(t, "No notifications for user2.", out)

	store.Notifications = append(store.Notifications, &domain.Notification{
		Recipient: "user2",
		Message:   "Task 1 has been delegated to you.",
		Timestamp: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	})
	out, _ = d.Dispatch(context.Background(), "/notifications user2")
	assert.Contains(t, out, "Task 1 has been delegated to you.")
}

func TestDispatch_RecurringTasks(t *testing.T) {
	d, store := newTestDispatcher(t)

	out, _ := d.Dispatch(context.Background(), "/recurring_tasks")
	assert.Equal(t, "No recurring tasks.", out)

	store.RecurringByID[1] = &domain.RecurringTask{
		ID:             1,
		TemplateTaskID: 2,
		Interval:       domain.IntervalWeekly,
		NextOccurrence: time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC),
	}
	out, _ = d.Dispatch(context.Background(), "/recurring_tasks")
	assert.Contains(t, out, "recurring_1: task_2 every weekly")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out, quit := d.Dispatch(context.Background(), "/frobnicate")
	assert.False(t, quit)
	assert.Equal(t, "Unknown command. Please use a valid command.", out)
}

func TestDispatch_HelpAndQuit(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out, quit := d.Dispatch(context.Background(), "/help")
	assert.False(t, quit)
	assert.Contains(t, out, "/add_task")

	out, quit = d.Dispatch(context.Background(), "/quit")
	assert.True(t, quit)
	assert.Equal(t, "Bye.", out)
}

func TestDispatch_BlankLine(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out, quit := d.Dispatch(context.Background(), "   ")
	assert.False(t, quit)
	assert.Empty(t, out)
}
