package mappers

import (
	"officetools/internal/domain/subscription"
	"officetools/internal/infrastructure/persistence/models"
)

func SubscriptionToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:          s.ID(),
		Email:       s.Email(),
		PlanName:    s.PlanName(),
		ActivatedAt: s.ActivatedAt(),
		ExpiresAt:   s.ExpiresAt(),
		Active:      s.Active(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func SubscriptionToDomain(m *models.SubscriptionModel) *subscription.Subscription {
	return subscription.ReconstructSubscription(
		m.ID, m.Email, m.PlanName,
		m.ActivatedAt.UTC(), m.ExpiresAt.UTC(), m.Active,
		m.CreatedAt.UTC(), m.UpdatedAt.UTC(),
	)
}
