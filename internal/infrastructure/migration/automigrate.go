package migration

import (
	"fmt"

	"gorm.io/gorm"

	"officetools/internal/infrastructure/persistence/models"
	"officetools/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ReviewModel{},
		&models.OrderModel{},
		&models.SubscriptionModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Used for local sqlite databases and tests.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	models := AutoMigrateModels()
	s.logger.Infow("running gorm auto migrate", "models", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return StrategyAutoMigrate
}
