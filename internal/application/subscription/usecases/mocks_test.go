package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"officetools/internal/domain/catalog"
	"officetools/internal/domain/order"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/config"
	"officetools/internal/shared/errors"
)

type mockSubscriptionRepository struct {
	GetByEmailFunc  func(ctx context.Context, email string) (*subscription.Subscription, error)
	UpsertFunc      func(ctx context.Context, sub *subscription.Subscription) error
	UpdateFunc      func(ctx context.Context, sub *subscription.Subscription) error
	ListExpiredFunc func(ctx context.Context, now time.Time) ([]*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) GetByEmail(ctx context.Context, email string) (*subscription.Subscription, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) Upsert(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) ListExpired(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	if m.ListExpiredFunc != nil {
		return m.ListExpiredFunc(ctx, now)
	}
	return nil, nil
}

type mockOrderRepository struct {
	UpdateFunc           func(ctx context.Context, o *order.Order) error
	ListStalePendingFunc func(ctx context.Context, createdBefore time.Time) ([]*order.Order, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error { return nil }

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*order.Order, error) {
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) GetBySessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	return nil, 0, nil
}

func (m *mockOrderRepository) ListStalePending(ctx context.Context, createdBefore time.Time) ([]*order.Order, error) {
	if m.ListStalePendingFunc != nil {
		return m.ListStalePendingFunc(ctx, createdBefore)
	}
	return nil, nil
}

func testPlans(t *testing.T) *catalog.PlanCatalog {
	t.Helper()
	plans, err := catalog.NewPlanCatalog([]config.PlanConfig{
		{Name: "basic", Price: "4.99", DurationDays: 30, Rank: 1},
		{Name: "pro", Price: "9.99", DurationDays: 30, Rank: 2},
	}, "USD")
	require.NoError(t, err)
	return plans
}

func testTools(t *testing.T) *catalog.ToolCatalog {
	t.Helper()
	tools, err := catalog.ParseToolCatalog([]byte(`
tools:
  - slug: word-counter
    name: Word Counter
    category: text
  - slug: image-converter
    name: Image Converter
    category: image
    required_plan: basic
  - slug: batch-ocr
    name: Batch OCR
    category: image
    required_plan: pro
  - slug: legacy-tool
    name: Legacy Tool
    category: text
    required_plan: enterprise
`))
	require.NoError(t, err)
	return tools
}

func activeSub(email, plan string, now time.Time) *subscription.Subscription {
	return subscription.ReconstructSubscription(1, email, plan, now.Add(-24*time.Hour), now.Add(24*time.Hour), true, now, now)
}
