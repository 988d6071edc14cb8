package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"officetools/internal/shared/config"
	"officetools/internal/shared/logger"
)

// Manager runs the strategy selected by database.migration_strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for cfg. golang-migrate only ships MySQL
// scripts, so it is rejected for sqlite.
func NewManager(cfg *config.DatabaseConfig, log logger.Interface) (*Manager, error) {
	driver := strings.ToLower(cfg.Driver)
	if driver == "" {
		driver = "mysql"
	}

	var strategy Strategy
	switch strings.ToLower(cfg.MigrationStrategy) {
	case "", StrategyGoose:
		strategy = NewGooseStrategy(driver, log)
	case StrategyGolangMigrate:
		if driver != "mysql" {
			return nil, fmt.Errorf("migration strategy %s requires the mysql driver, got %s", StrategyGolangMigrate, driver)
		}
		strategy = NewGolangMigrateStrategy(log)
	case StrategyAutoMigrate, "auto":
		strategy = NewGormAutoMigrateStrategy(log)
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", cfg.MigrationStrategy)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// Rollback reverts steps versions when the strategy tracks versions.
func (m *Manager) Rollback(db *gorm.DB, steps int) error {
	v, ok := m.strategy.(Versioned)
	if !ok {
		return fmt.Errorf("strategy %s does not support rollback", m.strategy.GetName())
	}
	return v.MigrateDown(db, steps)
}

// Version returns the applied version, or ok=false for unversioned strategies.
func (m *Manager) Version(db *gorm.DB) (version int64, ok bool, err error) {
	v, isVersioned := m.strategy.(Versioned)
	if !isVersioned {
		return 0, false, nil
	}
	version, err = v.GetVersion(db)
	return version, true, err
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
