package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/lrsproject/lrs/internal/infrastructure/config"
	"github.com/lrsproject/lrs/internal/infrastructure/database"
	"github.com/lrsproject/lrs/internal/infrastructure/migration"
	"github.com/lrsproject/lrs/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/lrsproject/lrs/internal/interfaces/http"
	"github.com/lrsproject/lrs/internal/shared/goroutine"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/version"
)

type options struct {
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
}

func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the learning record store HTTP API with the specified configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&opts.autoMigrate, "auto-migrate", false, "Apply pending migrations on startup")
	cmd.Flags().BoolVar(&opts.skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(opts *options) error {
	cfg, log, err := bootstrap.Init(opts.env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server",
		"environment", opts.env,
		"mode", cfg.Server.Mode,
		"version", version.String(),
		"auto_migrate", opts.autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(cfg, log, opts); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return err
	}
	router := httpRouter.NewRouter(container)
	router.SetupRoutes()

	faults := make(chan error, 1)
	goroutine.Supervise(log, "http-server", func() error {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "base_path", cfg.Server.BasePath)
		return router.Run()
	}, func(err error) {
		faults <- err
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var fault error
	select {
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	case fault = <-faults:
		log.Errorw("server failed, shutting down", "error", fault)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := router.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}
	if fault != nil {
		return fault
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(cfg *config.Config, log logger.Interface, opts *options) error {
	if opts.skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if opts.autoMigrate {
		manager, err := migration.NewManager(cfg.Server.Mode, cfg.Database.Driver)
		if err != nil {
			return err
		}
		return manager.Migrate(database.Get())
	}

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		return err
	}
	current, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", current)

	return nil
}
