// Command seed loads sample data into the database for demos and local
// development. Connection settings come from the same DB_* environment
// variables the server uses.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coachlab/evaluator/internal/database/database"
	"github.com/coachlab/evaluator/internal/database/migrate"
	"github.com/coachlab/evaluator/internal/fixtures"
	"github.com/coachlab/evaluator/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:   "seed",
		Short: "Load sample data into the evaluator database",
	}

	var runMigrations bool
	root.PersistentFlags().BoolVar(&runMigrations, "migrate", false, "run schema migrations before seeding")

	root.AddCommand(
		&cobra.Command{
			Use:   "all",
			Short: "Seed coach, teams, rosters, catalogs and performance history",
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), runMigrations, func(ctx context.Context, s *fixtures.Seeder) error {
					return s.SeedAll(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "catalog <team_id>",
			Short: "Seed the cricket metric catalog into one team",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), runMigrations, func(ctx context.Context, s *fixtures.Seeder) error {
					return s.SeedCatalog(ctx, args[0])
				})
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, runMigrations bool, fn func(context.Context, *fixtures.Seeder) error) error {
	log, err := logger.New()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	db, err := database.New()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if runMigrations {
		if err := migrate.Migrate(db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	return fn(ctx, fixtures.New(db, log))
}
