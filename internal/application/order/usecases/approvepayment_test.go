package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officetools/internal/domain/order"
	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/biztime"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

func TestApprovePaymentUseCase_NewSubscription(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	restore := biztime.SetNowForTest(now)
	defer restore()

	o := newTestOrder(t, vo.PaymentMethodBankTransfer)
	var updated *order.Order
	orders := &mockOrderRepository{
		GetByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (*order.Order, error) {
			assert.Equal(t, o.InvoiceID(), invoiceID)
			return o, nil
		},
		UpdateFunc: func(ctx context.Context, o *order.Order) error {
			updated = o
			return nil
		},
	}
	var saved *subscription.Subscription
	subs := &mockSubscriptionRepository{
		UpsertFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			saved = sub
			return nil
		},
	}
	tx := &mockTxRunner{}
	mailer := &mockMailer{}

	uc := NewApprovePaymentUseCase(orders, subs, testPlans(t), tx, mailer, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), ApprovePaymentCommand{InvoiceID: o.InvoiceID(), ApprovedBy: "admin"})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.False(t, result.AlreadyCompleted)
	assert.Equal(t, "completed", result.Status)
	require.NotNil(t, updated)
	assert.Equal(t, vo.OrderStatusCompleted, updated.Status())
	assert.Equal(t, "admin", updated.Metadata()[order.MetaApprovedBy])

	require.NotNil(t, saved)
	assert.Equal(t, "buyer@example.com", saved.Email())
	assert.Equal(t, "pro", saved.PlanName())
	assert.True(t, saved.ExpiresAt().Equal(now.Add(30*24*time.Hour)))
	require.NotNil(t, result.ExpiresAt)
	assert.True(t, result.ExpiresAt.Equal(saved.ExpiresAt()))

	assert.Eventually(t, func() bool { return len(mailer.Sent()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestApprovePaymentUseCase_RenewsExistingSubscription(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	restore := biztime.SetNowForTest(now)
	defer restore()

	o := newTestOrder(t, vo.PaymentMethodCard)
	existing := subscription.ReconstructSubscription(3, "buyer@example.com", "basic",
		now.Add(-10*24*time.Hour), now.Add(20*24*time.Hour), true, now, now)

	var saved *subscription.Subscription
	subs := &mockSubscriptionRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*subscription.Subscription, error) {
			return existing, nil
		},
		UpsertFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			saved = sub
			return nil
		},
	}
	orders := &mockOrderRepository{
		GetByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (*order.Order, error) { return o, nil },
	}

	uc := NewApprovePaymentUseCase(orders, subs, testPlans(t), &mockTxRunner{}, &mockMailer{}, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), ApprovePaymentCommand{InvoiceID: o.InvoiceID()})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, uint(3), saved.ID())
	assert.Equal(t, "pro", saved.PlanName())
	// expiry restarts from now rather than extending the old period
	assert.True(t, saved.ExpiresAt().Equal(now.Add(30*24*time.Hour)))
}

func TestApprovePaymentUseCase_AlreadyCompletedIsIdempotent(t *testing.T) {
	o := newTestOrder(t, vo.PaymentMethodBankTransfer)
	require.NoError(t, o.MarkCompleted("admin", ""))

	orders := &mockOrderRepository{
		GetByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (*order.Order, error) { return o, nil },
		UpdateFunc: func(ctx context.Context, o *order.Order) error {
			t.Fatal("completed order must not be written again")
			return nil
		},
	}
	subs := &mockSubscriptionRepository{
		UpsertFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			t.Fatal("subscription must not be written again")
			return nil
		},
	}
	tx := &mockTxRunner{}

	uc := NewApprovePaymentUseCase(orders, subs, testPlans(t), tx, &mockMailer{}, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), ApprovePaymentCommand{InvoiceID: o.InvoiceID()})

	require.NoError(t, err)
	assert.True(t, result.AlreadyCompleted)
	assert.Nil(t, result.ExpiresAt)
	assert.Equal(t, 0, tx.calls)
}

func TestApprovePaymentUseCase_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc := NewApprovePaymentUseCase(&mockOrderRepository{}, &mockSubscriptionRepository{}, testPlans(t), &mockTxRunner{}, &mockMailer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), ApprovePaymentCommand{InvoiceID: "inv_missing"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("failed order", func(t *testing.T) {
		o := newTestOrder(t, vo.PaymentMethodCard)
		require.NoError(t, o.MarkFailed("declined"))
		orders := &mockOrderRepository{
			GetByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (*order.Order, error) { return o, nil },
		}
		uc := NewApprovePaymentUseCase(orders, &mockSubscriptionRepository{}, testPlans(t), &mockTxRunner{}, &mockMailer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), ApprovePaymentCommand{InvoiceID: o.InvoiceID()})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("transaction rolls back on upsert failure", func(t *testing.T) {
		o := newTestOrder(t, vo.PaymentMethodCard)
		orders := &mockOrderRepository{
			GetByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (*order.Order, error) { return o, nil },
			UpdateFunc: func(ctx context.Context, o *order.Order) error {
				t.Fatal("order must not be updated when the subscription write fails")
				return nil
			},
		}
		subs := &mockSubscriptionRepository{
			UpsertFunc: func(ctx context.Context, sub *subscription.Subscription) error {
				return assert.AnError
			},
		}
		uc := NewApprovePaymentUseCase(orders, subs, testPlans(t), &mockTxRunner{}, &mockMailer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), ApprovePaymentCommand{InvoiceID: o.InvoiceID()})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRejectPaymentUseCase_Execute(t *testing.T) {
	o := newTestOrder(t, vo.PaymentMethodMobileWallet)
	var updated *order.Order
	orders := &mockOrderRepository{
		GetByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (*order.Order, error) { return o, nil },
		UpdateFunc: func(ctx context.Context, o *order.Order) error {
			updated = o
			return nil
		},
	}
	mailer := &mockMailer{}

	uc := NewRejectPaymentUseCase(orders, mailer, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), RejectPaymentCommand{
		InvoiceID: o.InvoiceID(), Reason: "reference not found", RejectedBy: "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "failed", result.Status)
	require.NotNil(t, updated)
	assert.Equal(t, "reference not found", updated.Metadata()[order.MetaFailureReason])
	assert.Eventually(t, func() bool { return len(mailer.Sent()) == 1 }, time.Second, 5*time.Millisecond)

	// rejecting again is a validation error
	_, err = uc.Execute(context.Background(), RejectPaymentCommand{InvoiceID: o.InvoiceID()})
	assert.True(t, errors.IsValidationError(err))
}
