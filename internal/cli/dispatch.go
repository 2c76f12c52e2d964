package cli

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/domain"
	"github.com/nydiokar/Gary/internal/usecase"
)

// Dispatcher maps slash commands onto use cases for the interactive shell.
type Dispatcher struct {
	c *app.Container

	// prompt reads one extra line of input, printing msg first. The shell
	// wires it to its scanner; when nil, commands that would re-prompt
	// report the error instead.
	prompt func(msg string) (string, bool)
}

// NewDispatcher creates a Dispatcher backed by the container.
func NewDispatcher(c *app.Container) *Dispatcher {
	return &Dispatcher{c: c}
}

var (
	addTaskRe       = regexp.MustCompile(`^/add_task '(.+)' '(.+)' (\w+) (\w+) '(.+)'$`)
	updateTaskRe    = regexp.MustCompile(`^/update_task (\d+) (\w+)$`)
	delegateTaskRe  = regexp.MustCompile(`^/delegate_task (\d+) (\w+)$`)
	deleteTaskRe    = regexp.MustCompile(`^/delete_task (\d+)$`)
	taskDetailsRe   = regexp.MustCompile(`^/task_details (\d+)$`)
	acceptTaskRe    = regexp.MustCompile(`^/accept_task (\d+) (\w+)$`)
	verifyTaskRe    = regexp.MustCompile(`^/verify_task (\d+) (\w+) '(.+)'$`)
	notificationsRe = regexp.MustCompile(`^/notifications (\w+)$`)
)

const helpText = `Available commands:
  /add_task 'title' 'description' priority owner 'deadline'
  /update_task task_id status
  /delegate_task task_id owner
  /accept_task task_id user
  /verify_task task_id user 'feedback'
  /delete_task task_id
  /list_tasks
  /overdue_tasks
  /task_details task_id
  /notifications user
  /recurring_tasks
  /help
  /quit`

// Dispatch executes one slash command. It returns the response text and
// whether the shell should exit. Errors are rendered as text; the shell
// never aborts on a bad command.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (string, bool) {
	command := strings.TrimSpace(line)
	switch {
	case command == "":
		return "", false

	case command == "/quit" || command == "/exit":
		return "Bye.", true

	case command == "/help":
		return helpText, false

	case strings.HasPrefix(command, "/add_task"):
		return d.addTask(ctx, command), false

	case strings.HasPrefix(command, "/update_task"):
		return d.updateTask(ctx, command), false

	case strings.HasPrefix(command, "/delegate_task"):
		return d.delegateTask(ctx, command), false

	case strings.HasPrefix(command, "/accept_task"):
		return d.acceptTask(ctx, command), false

	case strings.HasPrefix(command, "/verify_task"):
		return d.verifyTask(ctx, command), false

	case strings.HasPrefix(command, "/delete_task"):
		return d.deleteTask(ctx, command), false

	case strings.HasPrefix(command, "/list_tasks"):
		return d.listTasks(ctx), false

	case strings.HasPrefix(command, "/overdue_tasks"):
		return d.overdueTasks(ctx), false

	case strings.HasPrefix(command, "/task_details"):
		return d.taskDetails(ctx, command), false

	case strings.HasPrefix(command, "/notifications"):
		return d.notifications(ctx, command), false

	case strings.HasPrefix(command, "/recurring_tasks"):
		return d.recurringTasks(ctx), false

	default:
		return "Unknown command. Please use a valid command.", false
	}
}

func (d *Dispatcher) addTask(ctx context.Context, command string) string {
	m := addTaskRe.FindStringSubmatch(command)
	if m == nil {
		return "Error: Invalid syntax for /add_task. Use: /add_task 'title' 'description' priority owner 'deadline'"
	}
	title, description, priority, owner, rawDeadline := m[1], m[2], m[3], m[4], m[5]

	deadline, err := domain.ParseDeadline(rawDeadline)
	if err != nil {
		return renderError(err)
	}

	out, err := d.c.CreateTaskUseCase().Execute(ctx, usecase.CreateTaskInput{
		Title:       title,
		Description: description,
		Priority:    priority,
		Owner:       owner,
		Deadline:    &deadline,
	})
	if err != nil {
		return renderError(err)
	}
	return fmt.Sprintf("Task '%s' created with ID: %d", title, out.TaskID)
}

func (d *Dispatcher) updateTask(ctx context.Context, command string) string {
	m := updateTaskRe.FindStringSubmatch(command)
	if m == nil {
		return "Error: Invalid syntax for /update_task. Use: /update_task task_id status"
	}
	id, _ := strconv.Atoi(m[1])

	out, err := d.c.UpdateStatusUseCase().Execute(ctx, usecase.UpdateStatusInput{TaskID: id, Status: m[2]})
	if err != nil {
		return renderError(err)
	}
	return fmt.Sprintf("Task %d updated to status: %s", id, out.Task.Status)
}

func (d *Dispatcher) delegateTask(ctx context.Context, command string) string {
	m := delegateTaskRe.FindStringSubmatch(command)
	if m == nil {
		return "Error: Invalid syntax for /delegate_task. Use: /delegate_task task_id owner"
	}
	id, _ := strconv.Atoi(m[1])

	if _, err := d.c.DelegateTaskUseCase().Execute(ctx, usecase.DelegateTaskInput{TaskID: id, NewOwner: m[2]}); err != nil {
		return renderError(err)
	}
	return fmt.Sprintf("Task %d delegated to %s.", id, m[2])
}

func (d *Dispatcher) acceptTask(ctx context.Context, command string) string {
	m := acceptTaskRe.FindStringSubmatch(command)
	if m == nil {
		return "Error: Invalid syntax for /accept_task. Use: /accept_task task_id user"
	}
	id, _ := strconv.Atoi(m[1])

	if _, err := d.c.AcceptTaskUseCase().Execute(ctx, usecase.AcceptTaskInput{TaskID: id, UserID: m[2]}); err != nil {
		return renderError(err)
	}
	return fmt.Sprintf("Task %d has been accepted by %s.", id, m[2])
}

func (d *Dispatcher) verifyTask(ctx context.Context, command string) string {
	m := verifyTaskRe.FindStringSubmatch(command)
	if m == nil {
		return "Error: Invalid syntax for /verify_task. Use: /verify_task task_id user 'feedback'"
	}
	id, _ := strconv.Atoi(m[1])
	userID, feedback := m[2], m[3]

	// Short feedback re-prompts until enough words arrive, as long as
	// more input is available.
	for {
		_, err := d.c.VerifyTaskUseCase().Execute(ctx, usecase.VerifyTaskInput{TaskID: id, UserID: userID, Feedback: feedback})
		if err == nil {
			return fmt.Sprintf("Task %d verified.", id)
		}
		if !errors.Is(err, domain.ErrFeedbackTooShort) || d.prompt == nil {
			return renderError(err)
		}
		next, ok := d.prompt("Feedback must be at least 10 words. Try again.\nVerification comments (minimum 10 words): ")
		if !ok {
			return renderError(err)
		}
		feedback = next
	}
}

func (d *Dispatcher) deleteTask(ctx context.Context, command string) string {
	m := deleteTaskRe.FindStringSubmatch(command)
	if m == nil {
		return "Error: Invalid syntax for /delete_task. Use: /delete_task task_id"
	}
	id, _ := strconv.Atoi(m[1])

	if err := d.c.DeleteTaskUseCase().Execute(ctx, usecase.DeleteTaskInput{TaskID: id}); err != nil {
		return renderError(err)
	}
	return fmt.Sprintf("Task %d deleted.", id)
}

func (d *Dispatcher) listTasks(ctx context.Context) string {
	out, err := d.c.ListTasksUseCase().Execute(ctx)
	if err != nil {
		return renderError(err)
	}
	if len(out.Tasks) == 0 {
		return "No tasks found."
	}

	lines := make([]string, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		lines = append(lines, fmt.Sprintf("task_%d: %s (Owner: %s, Status: %s, Priority: %s)",
			t.ID, t.Title, t.Owner, t.Status, t.Priority.Display()))
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) overdueTasks(ctx context.Context) string {
	out, err := d.c.ListOverdueUseCase().Execute(ctx, usecase.ListOverdueInput{})
	if err != nil {
		return renderError(err)
	}
	if len(out.Tasks) == 0 {
		return "No overdue tasks."
	}

	lines := make([]string, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		lines = append(lines, fmt.Sprintf("task_%d: %s (Owner: %s) - Overdue!", t.ID, t.Title, t.Owner))
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) taskDetails(ctx context.Context, command string) string {
	m := taskDetailsRe.FindStringSubmatch(command)
	if m == nil {
		return "Error: Invalid syntax for /task_details. Use: /task_details task_id"
	}
	id, _ := strconv.Atoi(m[1])

	out, err := d.c.TaskDetailsUseCase().Execute(ctx, usecase.TaskDetailsInput{TaskID: id})
	if err != nil {
		if domain.IsNotFound(err) {
			return fmt.Sprintf("Task %d not found.", id)
		}
		return renderError(err)
	}

	t := out.Task
	deadline := "None"
	if t.Deadline != nil {
		deadline = t.Deadline.Format(domain.DeadlineLayout)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Task ID: task_%d\n", t.ID)
	fmt.Fprintf(&b, "Title: %s\n", t.Title)
	fmt.Fprintf(&b, "Description: %s\n", t.DisplayDescription())
	fmt.Fprintf(&b, "Priority: %s Priority\n", t.Priority.Display())
	fmt.Fprintf(&b, "Owner: %s\n", t.Owner)
	fmt.Fprintf(&b, "Status: %s\n", t.Status)
	fmt.Fprintf(&b, "Deadline: %s\n", deadline)
	fmt.Fprintf(&b, "Created At: %s\n", t.CreatedAt.Format(domain.DeadlineLayout))
	fmt.Fprintf(&b, "Updated At: %s", t.UpdatedAt.Format(domain.DeadlineLayout))
	if len(out.Tags) > 0 {
		fmt.Fprintf(&b, "\nTags: %s", strings.Join(out.Tags, ", "))
	}
	return b.String()
}

func (d *Dispatcher) notifications(ctx context.Context, command string) string {
	m := notificationsRe.FindStringSubmatch(command)
	if m == nil {
		return "Error: Invalid syntax for /notifications. Use: /notifications user"
	}

	out, err := d.c.ListNotificationsUseCase().Execute(ctx, usecase.ListNotificationsInput{Recipient: m[1]})
	if err != nil {
		return renderError(err)
	}
	if len(out.Notifications) == 0 {
		return fmt.Sprintf("No notifications for %s.", m[1])
	}

	lines := make([]string, 0, len(out.Notifications))
	for _, n := range out.Notifications {
		lines = append(lines, fmt.Sprintf("[%s] %s", n.Timestamp.Format("2006-01-02 15:04"), n.Message))
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) recurringTasks(ctx context.Context) string {
	out, err := d.c.ListRecurringUseCase().Execute(ctx)
	if err != nil {
		return renderError(err)
	}
	if len(out.Recurring) == 0 {
		return "No recurring tasks."
	}

	lines := make([]string, 0, len(out.Recurring))
	for _, rt := range out.Recurring {
		lines = append(lines, fmt.Sprintf("recurring_%d: task_%d every %s, next at %s",
			rt.ID, rt.TemplateTaskID, rt.Interval, rt.NextOccurrence.Format(domain.DeadlineLayout)))
	}
	return strings.Join(lines, "\n")
}

// renderError formats a use case error for shell output.
func renderError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
