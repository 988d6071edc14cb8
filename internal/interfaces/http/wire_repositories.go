package http

import (
	"gorm.io/gorm"

	"officetools/internal/domain/order"
	"officetools/internal/domain/review"
	"officetools/internal/domain/subscription"
	"officetools/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	orderRepo        order.Repository
	subscriptionRepo subscription.Repository
	reviewRepo       review.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		orderRepo:        repository.NewOrderRepository(db),
		subscriptionRepo: repository.NewSubscriptionRepository(db),
		reviewRepo:       repository.NewReviewRepository(db),
	}
}
