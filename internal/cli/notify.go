package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/usecase"
)

// newNotifyCommand creates the notify command with its subcommands.
func newNotifyCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send and read notifications",
	}
	cmd.AddCommand(newNotifySendCommand(c), newNotifyListCommand(c), newNotifyOverdueCommand(c))
	return cmd
}

func newNotifySendCommand(c *app.Container) *cobra.Command {
	var taskID int

	cmd := &cobra.Command{
		Use:   "send <user> <message>",
		Short: "Send a notification to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.SendNotificationInput{
				Recipient: args[0],
				Message:   args[1],
			}
			if taskID > 0 {
				input.TaskID = &taskID
			}
			if err := c.SendNotificationUseCase().Execute(cmd.Context(), input); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Notified %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().IntVarP(&taskID, "task", "t", 0, "Referenced task id")
	return cmd
}

func newNotifyListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list <user>",
		Short: "List a user's notifications, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ListNotificationsUseCase().Execute(cmd.Context(), usecase.ListNotificationsInput{
				Recipient: args[0],
			})
			if err != nil {
				return err
			}
			if len(out.Notifications) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No notifications for %s.\n", args[0])
				return nil
			}
			for _, n := range out.Notifications {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", n.Timestamp.Format("2006-01-02 15:04"), n.Message)
			}
			return nil
		},
	}
}

func newNotifyOverdueCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "Notify owners of every overdue task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.NotifyOverdueUseCase().Execute(cmd.Context(), usecase.NotifyOverdueInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sent %d overdue reminder(s)\n", out.Notified)
			return nil
		},
	}
}
