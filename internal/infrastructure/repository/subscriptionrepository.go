package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"officetools/internal/domain/subscription"
	"officetools/internal/infrastructure/persistence/mappers"
	"officetools/internal/infrastructure/persistence/models"
	"officetools/internal/shared/db"
	apperrors "officetools/internal/shared/errors"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) GetByEmail(ctx context.Context, email string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.SubscriptionToDomain(&model), nil
}

// Upsert writes the subscription keyed by its unique email. On conflict the
// plan, period and active flag are replaced.
func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(sub)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan_name", "activated_at", "expires_at", "active", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	var stored models.SubscriptionModel
	if err := tx.Select("id").Where("email = ?", model.Email).First(&stored).Error; err != nil {
		return fmt.Errorf("failed to reload subscription: %w", err)
	}
	sub.SetID(stored.ID)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(sub)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plan_name":    model.PlanName,
			"activated_at": model.ActivatedAt,
			"expires_at":   model.ExpiresAt,
			"active":       model.Active,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepository) ListExpired(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	var rows []models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ? AND expires_at <= ?", true, now).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired subscriptions: %w", err)
	}

	subs := make([]*subscription.Subscription, len(rows))
	for i := range rows {
		subs[i] = mappers.SubscriptionToDomain(&rows[i])
	}
	return subs, nil
}
