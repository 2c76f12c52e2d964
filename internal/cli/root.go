// Package cli provides the command-line interface for gary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupSchedule = "schedule"
)

// NewRootCommand creates the root command for gary.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "gary",
		Short: "Task tracking for small teams",
		Long: `gary is a slash-command driven task tracker backed by SQLite.

Tasks move through a fixed lifecycle (Pending, Accepted, In Progress,
Refused, Completed, Verified), every change is audited, and recurring
templates spawn fresh task instances on schedule.

Run 'gary shell' for the interactive slash-command session, or use the
subcommands directly.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSchedule, Title: "Scheduling & Notifications:"},
	)

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	shellCmd := newShellCommand(c)
	shellCmd.GroupID = groupSetup

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTask

	userCmd := newUserCommand(c)
	userCmd.GroupID = groupTask

	tagCmd := newTagCommand(c)
	tagCmd.GroupID = groupTask

	notifyCmd := newNotifyCommand(c)
	notifyCmd.GroupID = groupSchedule

	recurringCmd := newRecurringCommand(c)
	recurringCmd.GroupID = groupSchedule

	watchCmd := newWatchCommand(c)
	watchCmd.GroupID = groupSchedule

	root.AddCommand(initCmd, shellCmd, taskCmd, userCmd, tagCmd, notifyCmd, recurringCmd, watchCmd)
	return root
}
