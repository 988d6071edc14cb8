package usecases

import (
	"context"
	"fmt"
	"time"

	"officetools/internal/domain/order"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/biztime"
	"officetools/internal/shared/logger"
)

const staleOrderReason = "payment not received in time"

// ExpireSubscriptionsUseCase is the periodic sweep. It clears the active
// flag on lapsed subscriptions and fails gateway orders nobody paid.
type ExpireSubscriptionsUseCase struct {
	subRepo    subscription.Repository
	orderRepo  order.Repository
	pendingTTL time.Duration
	logger     logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subRepo subscription.Repository,
	orderRepo order.Repository,
	pendingTTL time.Duration,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	if pendingTTL <= 0 {
		pendingTTL = 24 * time.Hour
	}
	return &ExpireSubscriptionsUseCase{
		subRepo:    subRepo,
		orderRepo:  orderRepo,
		pendingTTL: pendingTTL,
		logger:     logger,
	}
}

// Execute returns how many rows were changed. A failure on one row is
// logged and the sweep moves on.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()

	expired, err := uc.subRepo.ListExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired subscriptions: %w", err)
	}

	changed := 0
	for _, sub := range expired {
		sub.Deactivate()
		if err := uc.subRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to deactivate subscription", "email", sub.Email(), "error", err)
			continue
		}
		changed++
	}

	stale, err := uc.orderRepo.ListStalePending(ctx, now.Add(-uc.pendingTTL))
	if err != nil {
		return changed, fmt.Errorf("failed to list stale orders: %w", err)
	}

	for _, o := range stale {
		if !o.IsStale(now, uc.pendingTTL) {
			continue
		}
		if err := o.MarkFailed(staleOrderReason); err != nil {
			uc.logger.Warnw("skipping stale order", "invoice_id", o.InvoiceID(), "error", err)
			continue
		}
		if err := uc.orderRepo.Update(ctx, o); err != nil {
			uc.logger.Errorw("failed to expire stale order", "invoice_id", o.InvoiceID(), "error", err)
			continue
		}
		changed++
	}

	if len(expired) > 0 || len(stale) > 0 {
		uc.logger.Infow("subscription sweep finished",
			"expired_subscriptions", len(expired),
			"stale_orders", len(stale),
			"changed", changed,
		)
	}
	return changed, nil
}
