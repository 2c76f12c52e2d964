package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/domain"
	"github.com/nydiokar/Gary/internal/usecase"
)

// newRecurringCommand creates the recurring command with its subcommands.
func newRecurringCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring task templates",
	}
	cmd.AddCommand(newRecurringAddCommand(c), newRecurringListCommand(c), newRecurringProcessCommand(c))
	return cmd
}

func newRecurringAddCommand(c *app.Container) *cobra.Command {
	var interval string
	var first string

	cmd := &cobra.Command{
		Use:   "add <template-task-id>",
		Short: "Schedule a recurring task",
		Long: `Schedule a recurring task.

The template task is copied into a fresh Pending task on every
occurrence. Intervals: daily, weekly, monthly. The first occurrence
defaults to now.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			next := c.Clock.Now()
			if first != "" {
				next, err = domain.ParseDeadline(first)
				if err != nil {
					return err
				}
			}

			out, err := c.ScheduleRecurringUseCase().Execute(cmd.Context(), usecase.ScheduleRecurringInput{
				TemplateTaskID: id,
				Interval:       interval,
				NextOccurrence: next,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Scheduled recurring task #%d (%s)\n", out.RecurringTaskID, interval)
			return nil
		},
	}

	cmd.Flags().StringVarP(&interval, "interval", "i", "", "Recurrence interval: daily, weekly, monthly (required)")
	cmd.Flags().StringVar(&first, "first", "", `First occurrence, e.g. "2026-09-01 09:00:00"`)
	_ = cmd.MarkFlagRequired("interval")
	return cmd
}

func newRecurringListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring task templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListRecurringUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(out.Recurring) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No recurring tasks.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, headerStyle.Render("ID\tTEMPLATE\tINTERVAL\tNEXT OCCURRENCE"))
			for _, rt := range out.Recurring {
				_, _ = fmt.Fprintf(tw, "#%d\t#%d\t%s\t%s\n",
					rt.ID, rt.TemplateTaskID, rt.Interval, rt.NextOccurrence.Format(domain.DeadlineLayout))
			}
			return tw.Flush()
		},
	}
}

func newRecurringProcessCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Run one recurring processing pass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ProcessRecurringUseCase().Execute(cmd.Context(), usecase.ProcessRecurringInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Spawned %d task(s), skipped %d\n", out.Spawned, out.Skipped)
			return nil
		},
	}
}
