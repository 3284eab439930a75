package migration

import (
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose scripts for MySQL and AutoMigrate for SQLite, or
// AutoMigrate for any driver when autoMigrate is set.
func NewManager(driver string, autoMigrate bool) *Manager {
	var strategy Strategy
	if autoMigrate || driver == "sqlite" {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		strategy = NewGooseStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Goose returns the goose strategy when that is what the manager runs.
func (m *Manager) Goose() (*GooseStrategy, bool) {
	g, ok := m.strategy.(*GooseStrategy)
	return g, ok
}
