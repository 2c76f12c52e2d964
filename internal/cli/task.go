package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/domain"
	"github.com/nydiokar/Gary/internal/usecase"
)

// newTaskCommand creates the task command with its subcommands.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Create and manage tasks",
	}
	cmd.AddCommand(
		newTaskNewCommand(c),
		newTaskListCommand(c),
		newTaskShowCommand(c),
		newTaskStatusCommand(c),
		newTaskDelegateCommand(c),
		newTaskAcceptCommand(c),
		newTaskVerifyCommand(c),
		newTaskDeleteCommand(c),
		newTaskOverdueCommand(c),
	)
	return cmd
}

func newTaskNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Owner       string
		Deadline    string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task with status Pending.

Examples:
  gary task new --title "Prepare report" --owner user1
  gary task new --title "Fix login bug" --owner user2 --priority high \
      --deadline "2026-09-15 17:00:00"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    opts.Priority,
				Owner:       opts.Owner,
			}
			if opts.Deadline != "" {
				deadline, err := domain.ParseDeadline(opts.Deadline)
				if err != nil {
					return err
				}
				input.Deadline = &deadline
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "medium", "Priority: low, medium, high")
	cmd.Flags().StringVarP(&opts.Owner, "owner", "o", "", "Owning user id (required)")
	cmd.Flags().StringVar(&opts.Deadline, "deadline", "", `Deadline, e.g. "2026-09-15 17:00:00"`)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			renderTaskTable(cmd.OutOrStdout(), out.Tasks, c.Clock.Now())
			return nil
		},
	}
}

func newTaskOverdueCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List overdue tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListOverdueUseCase().Execute(cmd.Context(), usecase.ListOverdueInput{})
			if err != nil {
				return err
			}
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No overdue tasks.")
				return nil
			}
			renderTaskTable(cmd.OutOrStdout(), out.Tasks, c.Clock.Now())
			return nil
		},
	}
}

func newTaskShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.TaskDetailsUseCase().Execute(cmd.Context(), usecase.TaskDetailsInput{TaskID: id})
			if err != nil {
				return err
			}
			renderTaskDetails(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newTaskStatusCommand(c *app.Container) *cobra.Command {
	var performedBy string
	var force bool

	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update a task's status",
		Long: `Update a task's status through the lifecycle transition table.

Valid statuses: Pending, Accepted, "In Progress", Refused, Completed, Verified.
Use --force to bypass the transition table for administrative correction.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.UpdateStatusUseCase().Execute(cmd.Context(), usecase.UpdateStatusInput{
				TaskID:      id,
				Status:      args[1],
				PerformedBy: performedBy,
				Force:       force,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", out.Task.ID, renderStatus(out.Task.Status))
			return nil
		},
	}

	cmd.Flags().StringVarP(&performedBy, "by", "b", "", "Acting user id")
	cmd.Flags().BoolVar(&force, "force", false, "Bypass the transition table")
	return cmd
}

func newTaskDelegateCommand(c *app.Container) *cobra.Command {
	var performedBy string

	cmd := &cobra.Command{
		Use:   "delegate <id> <user>",
		Short: "Delegate a task to another user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.DelegateTaskUseCase().Execute(cmd.Context(), usecase.DelegateTaskInput{
				TaskID:      id,
				NewOwner:    args[1],
				PerformedBy: performedBy,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d delegated to %s\n", out.Task.ID, out.Task.Owner)
			return nil
		},
	}

	cmd.Flags().StringVarP(&performedBy, "by", "b", "", "Acting user id")
	return cmd
}

func newTaskAcceptCommand(c *app.Container) *cobra.Command {
	var comments string

	cmd := &cobra.Command{
		Use:   "accept <id> <user>",
		Short: "Accept a pending task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.AcceptTaskUseCase().Execute(cmd.Context(), usecase.AcceptTaskInput{
				TaskID:   id,
				UserID:   args[1],
				Comments: comments,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d accepted by %s\n", out.Task.ID, args[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&comments, "comments", "c", "", "Optional comments")
	return cmd
}

func newTaskVerifyCommand(c *app.Container) *cobra.Command {
	var feedback string

	cmd := &cobra.Command{
		Use:   "verify <id> <user>",
		Short: "Verify a completed task",
		Long: fmt.Sprintf(`Verify a completed task.

Verification requires substantive feedback of at least %d words.`, usecase.MinFeedbackWords),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.VerifyTaskUseCase().Execute(cmd.Context(), usecase.VerifyTaskInput{
				TaskID:   id,
				UserID:   args[1],
				Feedback: feedback,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d verified\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&feedback, "feedback", "f", "", "Verification feedback (required)")
	_ = cmd.MarkFlagRequired("feedback")
	return cmd
}

func newTaskDeleteCommand(c *app.Container) *cobra.Command {
	var performedBy string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{
				TaskID:      id,
				PerformedBy: performedBy,
			}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&performedBy, "by", "b", "", "Acting user id")
	return cmd
}

// parseTaskID parses a task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// renderTaskTable writes tasks as an aligned table.
func renderTaskTable(w io.Writer, tasks []*domain.Task, now time.Time) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, headerStyle.Render("ID\tTITLE\tSTATUS\tPRIORITY\tOWNER\tDEADLINE"))
	for _, t := range tasks {
		deadline := "-"
		if t.Deadline != nil {
			deadline = t.Deadline.Format(domain.DeadlineLayout)
			if t.IsOverdue(now) {
				deadline = overdueStyle.Render(deadline + " (overdue)")
			}
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			idStyle.Render(fmt.Sprintf("#%d", t.ID)),
			t.Title,
			renderStatus(t.Status),
			renderPriority(t.Priority),
			t.Owner,
			deadline,
		)
	}
	_ = tw.Flush()
}

// renderTaskDetails writes the full projection of one task.
func renderTaskDetails(w io.Writer, out *usecase.TaskDetailsOutput) {
	t := out.Task
	_, _ = fmt.Fprintf(w, "%s %s\n", headerStyle.Render(fmt.Sprintf("Task #%d:", t.ID)), t.Title)
	_, _ = fmt.Fprintf(w, "  Status:      %s\n", renderStatus(t.Status))
	_, _ = fmt.Fprintf(w, "  Priority:    %s\n", renderPriority(t.Priority))
	_, _ = fmt.Fprintf(w, "  Owner:       %s\n", t.Owner)
	_, _ = fmt.Fprintf(w, "  Description: %s\n", t.DisplayDescription())
	if t.Deadline != nil {
		_, _ = fmt.Fprintf(w, "  Deadline:    %s\n", t.Deadline.Format(domain.DeadlineLayout))
	}
	if len(out.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "  Tags:        %v\n", out.Tags)
	}
	if len(out.Responses) > 0 {
		_, _ = fmt.Fprintln(w, "  Responses:")
		for _, r := range out.Responses {
			_, _ = fmt.Fprintf(w, "    [%s] %s by %s", r.Time.Format(domain.DeadlineLayout), r.Action, r.UserID)
			if r.Comments != "" {
				_, _ = fmt.Fprintf(w, ": %s", r.Comments)
			}
			_, _ = fmt.Fprintln(w)
		}
	}
}
