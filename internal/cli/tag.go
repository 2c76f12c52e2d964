package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/usecase"
)

// newTagCommand creates the tag command with its subcommands.
func newTagCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}
	cmd.AddCommand(newTagAddCommand(c), newTagAssignCommand(c))
	return cmd
}

func newTagAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTagUseCase().Execute(cmd.Context(), usecase.AddTagInput{Name: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added tag %q (#%d)\n", args[0], out.TagID)
			return nil
		},
	}
}

func newTagAssignCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <task-id> <tag>",
		Short: "Assign a tag to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if err := c.AssignTagUseCase().Execute(cmd.Context(), usecase.AssignTagInput{
				TaskID:  id,
				TagName: args[1],
			}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tagged task #%d with %q\n", id, args[1])
			return nil
		},
	}
}
