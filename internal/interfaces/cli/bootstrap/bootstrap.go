// Package bootstrap prepares the process for a CLI command: configuration,
// logging and the database connection, in that order.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/lrsproject/lrs/internal/infrastructure/config"
	"github.com/lrsproject/lrs/internal/infrastructure/database"
	"github.com/lrsproject/lrs/internal/shared/constants"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

// Init loads configuration for env, initializes the logger and opens the
// database. Callers must defer database.Close.
func Init(env string) (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(ModeFor(env))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == constants.ModeDebug); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// ModeFor maps an environment name onto a server mode.
func ModeFor(env string) string {
	switch env {
	case "production", "prod", constants.ModeRelease:
		return constants.ModeRelease
	case "test", "testing":
		return constants.ModeTest
	default:
		return constants.ModeDebug
	}
}
