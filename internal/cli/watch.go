package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/usecase"
)

// newWatchCommand creates the watch command, the recurring scheduler loop.
func newWatchCommand(c *app.Container) *cobra.Command {
	var interval time.Duration
	var notifyOverdue bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the recurring task scheduler",
		Long: `Run the recurring task scheduler in the foreground.

Every tick the scheduler spawns due recurring tasks and, with
--notify-overdue, reminds owners of overdue tasks. On SIGINT or
SIGTERM the current pass finishes before the process exits. The
tick interval comes from [scheduler] interval in gary.toml unless
overridden with --interval.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tick := interval
			if tick <= 0 {
				tick = c.Config.SchedulerInterval()
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			runPass := func() {
				out, err := c.ProcessRecurringUseCase().Execute(cmd.Context(), usecase.ProcessRecurringInput{})
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "recurring pass failed: %v\n", err)
					return
				}
				if out.Spawned > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Spawned %d task(s)\n", out.Spawned)
				}
				if notifyOverdue {
					reminded, err := c.NotifyOverdueUseCase().Execute(cmd.Context(), usecase.NotifyOverdueInput{})
					if err != nil {
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "overdue reminders failed: %v\n", err)
						return
					}
					if reminded.Notified > 0 {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sent %d overdue reminder(s)\n", reminded.Notified)
					}
				}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching every %s. Ctrl-C to stop.\n", tick)
			runPass()

			ticker := time.NewTicker(tick)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					runPass()
				case <-sigCh:
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Stopping.")
					return nil
				case <-cmd.Context().Done():
					return nil
				}
			}
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Tick interval (overrides config)")
	cmd.Flags().BoolVar(&notifyOverdue, "notify-overdue", false, "Also send overdue reminders each tick")
	return cmd
}
