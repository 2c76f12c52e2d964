package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nydiokar/Gary/internal/app"
	"github.com/nydiokar/Gary/internal/infra/seed"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var force bool
	var skipSeed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the task store",
		Long: `Initialize the SQLite task store.

Creates the database schema and seeds the default users and tags
(override the seed file via [seed] path in gary.toml). Re-running
init on an existing store only fills in missing seed rows; use
--force to drop and recreate everything.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.StoreInitializer.Initialize(force); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}

			if !skipSeed {
				data, err := seed.Load(c.Config.Seed.Path)
				if err != nil {
					return err
				}
				if err := seed.Apply(cmd.Context(), c.Store, c.Clock, data); err != nil {
					return fmt.Errorf("seed store: %w", err)
				}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized task store at %s\n", c.Config.Store.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Drop existing tables and recreate the schema")
	cmd.Flags().BoolVar(&skipSeed, "no-seed", false, "Skip seeding default users and tags")
	return cmd
}
