package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/usecase"
)

// newUserCommand creates the user command with its subcommands.
func newUserCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(newUserAddCommand(c))
	return cmd
}

func newUserAddCommand(c *app.Container) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Register a new user",
		Long: `Register a new user.

Roles: manager, expert, user, system.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.AddUserUseCase().Execute(cmd.Context(), usecase.AddUserInput{
				UserID: args[0],
				Name:   args[1],
				Role:   role,
			}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added user %s (%s)\n", args[0], role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "user", "User role")
	return cmd
}
