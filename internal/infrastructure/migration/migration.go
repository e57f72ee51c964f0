package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lrsproject/lrs/internal/infrastructure/persistence/models"
	"github.com/lrsproject/lrs/internal/shared/constants"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager uses gorm AutoMigrate in debug mode and the versioned goose
// scripts everywhere else.
func NewManager(mode, driver string) (*Manager, error) {
	var strategy Strategy
	if strings.EqualFold(mode, constants.ModeDebug) {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		goose, err := NewGooseStrategy(driver)
		if err != nil {
			return nil, err
		}
		strategy = goose
	}
	return NewManagerWithStrategy(strategy), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate brings the schema up to date for every persistence model.
func (m *Manager) Migrate(db *gorm.DB) error {
	modelsToMigrate := models.All()
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(modelsToMigrate))

	if err := m.strategy.Migrate(db, modelsToMigrate...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
