package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
)

// newShellCommand creates the interactive shell command.
func newShellCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive slash-command shell",
		Long: `Start the interactive slash-command shell.

Type /help for the command list and /quit to exit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, NewDispatcher(c))
		},
	}
}

// runShell reads slash commands line by line and prints dispatcher output.
func runShell(cmd *cobra.Command, d *Dispatcher) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "gary shell. Type /help for commands, /quit to exit.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	d.prompt = func(msg string) (string, bool) {
		_, _ = fmt.Fprint(out, msg)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		_, _ = fmt.Fprint(out, "gary> ")
		if !scanner.Scan() {
			break
		}

		response, quit := d.Dispatch(cmd.Context(), scanner.Text())
		if response != "" {
			_, _ = fmt.Fprintln(out, response)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
