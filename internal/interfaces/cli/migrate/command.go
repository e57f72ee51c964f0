package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/lrsproject/lrs/internal/infrastructure/config"
	"github.com/lrsproject/lrs/internal/infrastructure/database"
	"github.com/lrsproject/lrs/internal/infrastructure/migration"
	"github.com/lrsproject/lrs/internal/interfaces/cli/bootstrap"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

// NewCommand groups the goose-backed schema commands.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the statement store schema",
	}
	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending schema migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStrategy(env, func(cfg *config.Config, log logger.Interface, s *migration.GooseStrategy, gdb *gorm.DB) error {
					log.Infow("applying migrations", "environment", env, "driver", cfg.Database.Driver)
					if err := s.Migrate(gdb); err != nil {
						return fmt.Errorf("apply migrations: %w", err)
					}
					log.Infow("schema is up to date")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStrategy(env, func(cfg *config.Config, _ logger.Interface, s *migration.GooseStrategy, gdb *gorm.DB) error {
					version, err := s.GetVersion(gdb)
					if err != nil {
						return fmt.Errorf("read schema version: %w", err)
					}

					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "version: %d\nenvironment: %s\ndriver: %s\n", version, env, cfg.Database.Driver)

					if err := s.Status(gdb); err != nil {
						return fmt.Errorf("list migrations: %w", err)
					}
					return nil
				})
			},
		},
	)

	return cmd
}

func withStrategy(env string, fn func(*config.Config, logger.Interface, *migration.GooseStrategy, *gorm.DB) error) error {
	cfg, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		return err
	}
	if err := fn(cfg, log, strategy, database.Get()); err != nil {
		log.Errorw("migration command failed", "error", err)
		return err
	}
	return nil
}
