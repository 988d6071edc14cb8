package usecases

import (
	"context"

	"officetools/internal/domain/catalog"
	"officetools/internal/domain/order"
	"officetools/internal/domain/subscription"
)

// TransactionRunner is satisfied by *db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderMailer sends the transactional mails of the order flow. Callers
// treat every send as best effort.
type OrderMailer interface {
	SendOrderReceipt(o *order.Order) error
	SendAdminManualOrderNotice(o *order.Order) error
	SendSubscriptionActivated(sub *subscription.Subscription) error
	SendPaymentRejected(o *order.Order, reason string) error
}

type PlanLookup interface {
	Get(name string) (catalog.Plan, bool)
}
