package usecases

import (
	"context"
	"fmt"

	"officetools/internal/domain/order"
	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/biztime"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/goroutine"
	"officetools/internal/shared/logger"
)

// subscriptionActivator completes an order and grants its plan in one
// transaction. Approval, gateway callbacks and reconciliation share it.
type subscriptionActivator struct {
	orderRepo order.Repository
	subRepo   subscription.Repository
	plans     PlanLookup
	txMgr     TransactionRunner
	mailer    OrderMailer
	logger    logger.Interface
}

// activate returns the stored subscription, or nil when the order was
// already completed and nothing was written.
func (a *subscriptionActivator) activate(ctx context.Context, o *order.Order, source, reference string) (*subscription.Subscription, error) {
	switch o.Status() {
	case vo.OrderStatusCompleted:
		return nil, nil
	case vo.OrderStatusFailed:
		return nil, errors.NewValidationError(fmt.Sprintf("order %s has already failed", o.InvoiceID()))
	}

	plan, ok := a.plans.Get(o.PlanName())
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("plan %s is no longer offered", o.PlanName()))
	}

	var sub *subscription.Subscription
	err := a.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		now := biztime.NowUTC()

		existing, err := a.subRepo.GetByEmail(txCtx, o.Email())
		switch {
		case err == nil:
			if err := existing.Renew(plan.Name, now, plan.Duration); err != nil {
				return err
			}
			sub = existing
		case errors.IsNotFoundError(err):
			sub, err = subscription.NewSubscription(o.Email(), plan.Name, now, plan.Duration)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("failed to load subscription: %w", err)
		}

		if err := a.subRepo.Upsert(txCtx, sub); err != nil {
			return fmt.Errorf("failed to save subscription: %w", err)
		}

		if err := o.MarkCompleted(source, reference); err != nil {
			return err
		}
		if err := a.orderRepo.Update(txCtx, o); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Infow("subscription activated",
		"invoice_id", o.InvoiceID(),
		"email", sub.Email(),
		"plan", sub.PlanName(),
		"expires_at", sub.ExpiresAt(),
		"source", source,
	)

	activated := sub
	goroutine.SafeGo(a.logger, "activation-email", func() {
		if err := a.mailer.SendSubscriptionActivated(activated); err != nil {
			a.logger.Warnw("failed to send activation email", "email", activated.Email(), "error", err)
		}
	})

	return sub, nil
}
